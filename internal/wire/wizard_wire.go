package wire

import (
	"freight-booking/internal/adaptor"
	"freight-booking/pkg/middleware"
	"freight-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWizard(
	r chi.Router,
	wizardHandler *adaptor.WizardHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/estimate - Flat price for a service type
	r.Get("/api/estimate", wizardHandler.Estimate)

	// ==================== WIZARD ROUTES (auth optional) ====================
	// Guests may fill the whole wizard; login is requested on submit.
	r.Route("/api/wizards", func(r chi.Router) {
		r.Use(middleware.OptionalAuth(config.JWT.Secret, log))

		r.Post("/", wizardHandler.Start)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", wizardHandler.Get)
			r.Patch("/", wizardHandler.Update)
			r.Delete("/", wizardHandler.Abandon)

			r.Post("/next", wizardHandler.Next)
			r.Post("/back", wizardHandler.Back)

			// Submissions hit the logistics backend, so they are rate limited per IP.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RateLimit(config.RateLimit.SubmitPerMinute, config.RateLimit.SubmitBurst, log))

				r.Post("/submit", wizardHandler.Submit)

				// The identity provider redirects the browser here after login.
				r.Get("/resume", wizardHandler.Resume)
				r.Post("/resume", wizardHandler.Resume)
			})
		})
	})
}
