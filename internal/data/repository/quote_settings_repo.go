package repository

import (
	"context"
	"errors"
	"fmt"

	"freight-booking/internal/data/entity"
	"freight-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type QuoteSettingsRepository interface {
	Get(ctx context.Context) (*entity.QuoteSettings, error)
	Upsert(ctx context.Context, settings *entity.QuoteSettings) error
}

type quoteSettingsRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewQuoteSettingsRepository(db database.PgxIface, log *zap.Logger) QuoteSettingsRepository {
	return &quoteSettingsRepository{
		db:  db,
		log: log.With(zap.String("repository", "quote_settings")),
	}
}

func (r *quoteSettingsRepository) Get(ctx context.Context) (*entity.QuoteSettings, error) {
	query := `
		SELECT id, base_fee::text, per_km_rate::text, per_kg_rate::text, minimum_charge::text,
		       residential_moving_multiplier::text, office_relocation_multiplier::text,
		       pallet_delivery_multiplier::text, small_deliveries_multiplier::text,
		       updated_by, created_at, updated_at
		FROM quote_calculator_settings
		WHERE id = $1
	`

	var s entity.QuoteSettings
	err := r.db.QueryRow(ctx, query, entity.QuoteSettingsID).Scan(
		&s.ID,
		&s.BaseFee,
		&s.PerKmRate,
		&s.PerKgRate,
		&s.MinimumCharge,
		&s.ResidentialMovingMultiplier,
		&s.OfficeRelocationMultiplier,
		&s.PalletDeliveryMultiplier,
		&s.SmallDeliveriesMultiplier,
		&s.UpdatedBy,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to load quote settings", zap.Error(err))
		return nil, fmt.Errorf("find quote settings: %w", err)
	}

	return &s, nil
}

// Upsert stores s and reloads it with the values as stored, after the
// columns' numeric scale has been applied.
func (r *quoteSettingsRepository) Upsert(ctx context.Context, s *entity.QuoteSettings) error {
	query := `
		INSERT INTO quote_calculator_settings (
			id, base_fee, per_km_rate, per_kg_rate, minimum_charge,
			residential_moving_multiplier, office_relocation_multiplier,
			pallet_delivery_multiplier, small_deliveries_multiplier,
			updated_by, created_at, updated_at
		)
		VALUES ($1, $2::numeric, $3::numeric, $4::numeric, $5::numeric,
		        $6::numeric, $7::numeric, $8::numeric, $9::numeric, $10, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			base_fee = EXCLUDED.base_fee,
			per_km_rate = EXCLUDED.per_km_rate,
			per_kg_rate = EXCLUDED.per_kg_rate,
			minimum_charge = EXCLUDED.minimum_charge,
			residential_moving_multiplier = EXCLUDED.residential_moving_multiplier,
			office_relocation_multiplier = EXCLUDED.office_relocation_multiplier,
			pallet_delivery_multiplier = EXCLUDED.pallet_delivery_multiplier,
			small_deliveries_multiplier = EXCLUDED.small_deliveries_multiplier,
			updated_by = EXCLUDED.updated_by,
			updated_at = NOW()
		RETURNING base_fee::text, per_km_rate::text, per_kg_rate::text, minimum_charge::text,
		          residential_moving_multiplier::text, office_relocation_multiplier::text,
		          pallet_delivery_multiplier::text, small_deliveries_multiplier::text,
		          created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		entity.QuoteSettingsID,
		s.BaseFee.String(),
		s.PerKmRate.String(),
		s.PerKgRate.String(),
		s.MinimumCharge.String(),
		s.ResidentialMovingMultiplier.String(),
		s.OfficeRelocationMultiplier.String(),
		s.PalletDeliveryMultiplier.String(),
		s.SmallDeliveriesMultiplier.String(),
		s.UpdatedBy,
	).Scan(
		&s.BaseFee,
		&s.PerKmRate,
		&s.PerKgRate,
		&s.MinimumCharge,
		&s.ResidentialMovingMultiplier,
		&s.OfficeRelocationMultiplier,
		&s.PalletDeliveryMultiplier,
		&s.SmallDeliveriesMultiplier,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to save quote settings", zap.Error(err))
		return fmt.Errorf("upsert quote settings: %w", err)
	}

	s.ID = entity.QuoteSettingsID
	return nil
}
