package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"freight-booking/internal/booking"
	"freight-booking/internal/dto/request"
	"freight-booking/internal/dto/response"
	"freight-booking/internal/usecase"
	"freight-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type WizardHandler struct {
	service usecase.WizardService
	log     *zap.Logger
}

func NewWizardHandler(service usecase.WizardService, log *zap.Logger) *WizardHandler {
	return &WizardHandler{
		service: service,
		log:     log.With(zap.String("handler", "wizard")),
	}
}

// Start handles POST /api/wizards
func (h *WizardHandler) Start(w http.ResponseWriter, r *http.Request) {
	wizard, err := h.service.Start(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "start wizard")
		return
	}

	utils.ResponseCreated(w, "success", wizard)
}

// Get handles GET /api/wizards/{id}
func (h *WizardHandler) Get(w http.ResponseWriter, r *http.Request) {
	wizard, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "get wizard")
		return
	}

	utils.ResponseSuccess(w, "success", wizard)
}

// Update handles PATCH /api/wizards/{id}
func (h *WizardHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateWizardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	wizard, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleServiceError(w, err, "update wizard")
		return
	}

	utils.ResponseSuccess(w, "success", wizard)
}

// Next handles POST /api/wizards/{id}/next
func (h *WizardHandler) Next(w http.ResponseWriter, r *http.Request) {
	wizard, err := h.service.Next(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "next step")
		return
	}

	utils.ResponseSuccess(w, "success", wizard)
}

// Back handles POST /api/wizards/{id}/back
func (h *WizardHandler) Back(w http.ResponseWriter, r *http.Request) {
	wizard, err := h.service.Back(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "previous step")
		return
	}

	utils.ResponseSuccess(w, "success", wizard)
}

// Submit handles POST /api/wizards/{id}/submit
func (h *WizardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.service.Submit(r.Context(), id, sessionFromRequest(r))
	if err != nil {
		h.handleSubmitError(w, err, id, "submit booking")
		return
	}

	utils.ResponseCreated(w, "Booking created", result)
}

// Resume handles GET and POST /api/wizards/{id}/resume. GET is the login
// redirect target; the booking is submitted at most once either way.
func (h *WizardHandler) Resume(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.service.Resume(r.Context(), id, sessionFromRequest(r))
	if err != nil {
		h.handleSubmitError(w, err, id, "resume booking")
		return
	}

	utils.ResponseCreated(w, "Booking created", result)
}

// Abandon handles DELETE /api/wizards/{id}
func (h *WizardHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Abandon(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, err, "abandon wizard")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// Estimate handles GET /api/estimate?service_type=
func (h *WizardHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	estimate, err := h.service.Estimate(r.Context(), r.URL.Query().Get("service_type"))
	if err != nil {
		h.handleServiceError(w, err, "estimate price")
		return
	}

	utils.ResponseSuccess(w, "success", estimate)
}

func sessionFromRequest(r *http.Request) *booking.Session {
	customerID, ok := utils.GetCustomerIDFromContext(r.Context())
	if !ok {
		return nil
	}
	token, _ := utils.GetTokenFromContext(r.Context())
	return &booking.Session{CustomerID: customerID, Token: token}
}

func (h *WizardHandler) handleSubmitError(w http.ResponseWriter, err error, id, operation string) {
	var authErr *booking.AuthRequiredError
	if errors.As(err, &authErr) {
		utils.ResponseUnauthorized(w, "Authentication required", response.LoginRequiredResponse{
			WizardID: id,
			Step:     booking.ConfirmStep{}.Number(),
			LoginURL: authErr.Challenge.RedirectURL,
		})
		return
	}

	h.handleServiceError(w, err, operation)
}

// handleServiceError maps wizard errors to HTTP responses
func (h *WizardHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrWizardNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Wizard not found")

	case errors.Is(err, utils.ErrValidation):
		utils.ResponseBadRequest(w, "Validation failed", booking.ValidationFields(err))

	case errors.Is(err, booking.ErrFieldNotOnStep),
		errors.Is(err, booking.ErrUnknownServiceType),
		errors.Is(err, booking.ErrInvalidDateTime):
		h.log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, booking.ErrSubmissionInFlight),
		errors.Is(err, booking.ErrNoNextStep),
		errors.Is(err, booking.ErrNotConfirmStep),
		errors.Is(err, booking.ErrFlowCompleted),
		errors.Is(err, booking.ErrNoPendingSubmission):
		h.log.Warn(operation+" failed - invalid state", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, booking.ErrSubmissionFailed):
		utils.ResponseBadGateway(w, "Booking failed")

	default:
		h.log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
