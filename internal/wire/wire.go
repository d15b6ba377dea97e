package wire

import (
	"net/http"

	"freight-booking/internal/adaptor"
	"freight-booking/internal/data/repository"
	"freight-booking/internal/gateway"
	"freight-booking/internal/usecase"
	"freight-booking/pkg/middleware"
	"freight-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds the gateway clients, services and router.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	// Order submissions run without a client timeout; see booking.Flow.Submit.
	orders := gateway.NewOrderClient(config.Backend.BaseURL, nil, logger)
	login := gateway.NewLoginRedirector(config.Identity.LoginURL, config.App.PublicBaseURL)

	service := usecase.NewService(repo, orders, login, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	if config.App.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.AllowedOrigins))

	wireWizard(r, handler.Wizard, config, logger)
	wireQuote(r, handler.Quote, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
