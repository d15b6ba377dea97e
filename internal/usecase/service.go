package usecase

import (
	"freight-booking/internal/booking"
	"freight-booking/internal/data/repository"
	"freight-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Wizard WizardService
	Quote  QuoteService
}

func NewService(
	repo *repository.Repository,
	submitter booking.OrderSubmitter,
	login booking.LoginRequester,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Wizard: NewWizardService(repo.Wizard, submitter, login, log),
		Quote:  NewQuoteService(repo.QuoteSettings, log),
	}
}
