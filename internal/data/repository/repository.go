package repository

import (
	"freight-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Wizard        WizardRepository
	QuoteSettings QuoteSettingsRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Wizard:        NewWizardRepository(log),
		QuoteSettings: NewQuoteSettingsRepository(db, log),
	}
}
