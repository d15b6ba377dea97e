package adaptor

import (
	"freight-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Wizard *WizardHandler
	Quote  *QuoteHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Wizard: NewWizardHandler(service.Wizard, log),
		Quote:  NewQuoteHandler(service.Quote, log),
	}
}
