package wire

import (
	"freight-booking/internal/adaptor"
	"freight-booking/pkg/middleware"
	"freight-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireQuote(
	r chi.Router,
	quoteHandler *adaptor.QuoteHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/quote-settings", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.RequireAuth(config.JWT.Secret, log))
		r.Use(middleware.Admin(log))

		r.Get("/", quoteHandler.GetSettings)
		r.Put("/", quoteHandler.UpdateSettings)
	})
}
