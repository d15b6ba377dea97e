package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"freight-booking/internal/dto/request"
	"freight-booking/internal/usecase"
	"freight-booking/pkg/utils"

	"go.uber.org/zap"
)

type QuoteHandler struct {
	service usecase.QuoteService
	log     *zap.Logger
}

func NewQuoteHandler(service usecase.QuoteService, log *zap.Logger) *QuoteHandler {
	return &QuoteHandler{
		service: service,
		log:     log.With(zap.String("handler", "quote")),
	}
}

// GetSettings handles GET /api/admin/quote-settings (admin)
func (h *QuoteHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.GetSettings(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get quote settings")
		return
	}

	utils.ResponseSuccess(w, "success", settings)
}

// UpdateSettings handles PUT /api/admin/quote-settings (admin)
func (h *QuoteHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetCustomerIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required", nil)
		return
	}

	var req request.UpdateQuoteSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	settings, err := h.service.UpdateSettings(r.Context(), &req, adminID)
	if err != nil {
		h.handleServiceError(w, err, "update quote settings")
		return
	}

	utils.ResponseSuccess(w, "Quote settings updated", settings)
}

func (h *QuoteHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var ve *utils.ValidationError

	switch {
	case errors.As(err, &ve):
		utils.ResponseBadRequest(w, "Validation failed", ve.Fields)

	case errors.Is(err, usecase.ErrQuoteSettingsNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Quote settings not found")

	default:
		h.log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
