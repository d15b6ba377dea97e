package usecase

import (
	"context"
	"errors"
	"fmt"

	"freight-booking/internal/data/entity"
	"freight-booking/internal/data/repository"
	"freight-booking/internal/dto/request"
	"freight-booking/internal/dto/response"
	"freight-booking/pkg/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrQuoteSettingsNotFound = errors.New("quote calculator settings not found")

type QuoteService interface {
	GetSettings(ctx context.Context) (*response.QuoteSettingsResponse, error)
	UpdateSettings(ctx context.Context, req *request.UpdateQuoteSettingsRequest, adminID string) (*response.QuoteSettingsResponse, error)
}

type quoteService struct {
	repo repository.QuoteSettingsRepository
	log  *zap.Logger
}

func NewQuoteService(repo repository.QuoteSettingsRepository, log *zap.Logger) QuoteService {
	return &quoteService{
		repo: repo,
		log:  log.With(zap.String("service", "quote")),
	}
}

func (s *quoteService) GetSettings(ctx context.Context) (*response.QuoteSettingsResponse, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, ErrQuoteSettingsNotFound
	}

	resp := response.QuoteSettingsToResponse(settings)
	return &resp, nil
}

func (s *quoteService) UpdateSettings(ctx context.Context, req *request.UpdateQuoteSettingsRequest, adminID string) (*response.QuoteSettingsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Quote settings validation failed", zap.Any("errors", errs))
		return nil, &utils.ValidationError{Fields: errs}
	}
	if errs := checkQuoteSettings(req); len(errs) > 0 {
		s.log.Warn("Quote settings out of range", zap.Any("errors", errs))
		return nil, &utils.ValidationError{Fields: errs}
	}

	settings := &entity.QuoteSettings{
		BaseFee:                     *req.BaseFee,
		PerKmRate:                   *req.PerKmRate,
		PerKgRate:                   *req.PerKgRate,
		MinimumCharge:               *req.MinimumCharge,
		ResidentialMovingMultiplier: *req.ResidentialMovingMultiplier,
		OfficeRelocationMultiplier:  *req.OfficeRelocationMultiplier,
		PalletDeliveryMultiplier:    *req.PalletDeliveryMultiplier,
		SmallDeliveriesMultiplier:   *req.SmallDeliveriesMultiplier,
	}
	if adminID != "" {
		settings.UpdatedBy = &adminID
	}

	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("save quote settings: %w", err)
	}

	s.log.Info("Quote settings updated", zap.String("admin_id", adminID))

	resp := response.QuoteSettingsToResponse(settings)
	return &resp, nil
}

// Decimal places of the quote_calculator_settings columns.
const (
	feeScale        = 2
	rateScale       = 4
	multiplierScale = 3
)

type scaledValue struct {
	value *decimal.Decimal
	scale int32
}

// checkQuoteSettings enforces the ranges and scales the settings table
// stores: fees and rates are non-negative, multipliers strictly positive.
func checkQuoteSettings(req *request.UpdateQuoteSettingsRequest) map[string]string {
	errs := make(map[string]string)

	for field, v := range map[string]scaledValue{
		"base_fee":       {req.BaseFee, feeScale},
		"per_km_rate":    {req.PerKmRate, rateScale},
		"per_kg_rate":    {req.PerKgRate, rateScale},
		"minimum_charge": {req.MinimumCharge, feeScale},
	} {
		switch {
		case v.value.IsNegative():
			errs[field] = "Must not be negative"
		case !fitsScale(*v.value, v.scale):
			errs[field] = fmt.Sprintf("At most %d decimal places", v.scale)
		}
	}

	for field, v := range map[string]*decimal.Decimal{
		"residential_moving_multiplier": req.ResidentialMovingMultiplier,
		"office_relocation_multiplier":  req.OfficeRelocationMultiplier,
		"pallet_delivery_multiplier":    req.PalletDeliveryMultiplier,
		"small_deliveries_multiplier":   req.SmallDeliveriesMultiplier,
	} {
		switch {
		case !v.IsPositive():
			errs[field] = "Must be greater than zero"
		case !fitsScale(*v, multiplierScale):
			errs[field] = fmt.Sprintf("At most %d decimal places", multiplierScale)
		}
	}

	return errs
}

func fitsScale(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Truncate(places))
}
