package response

import (
	"time"

	"freight-booking/internal/data/entity"
)

type QuoteSettingsResponse struct {
	BaseFee                     string    `json:"base_fee"`
	PerKmRate                   string    `json:"per_km_rate"`
	PerKgRate                   string    `json:"per_kg_rate"`
	MinimumCharge               string    `json:"minimum_charge"`
	ResidentialMovingMultiplier string    `json:"residential_moving_multiplier"`
	OfficeRelocationMultiplier  string    `json:"office_relocation_multiplier"`
	PalletDeliveryMultiplier    string    `json:"pallet_delivery_multiplier"`
	SmallDeliveriesMultiplier   string    `json:"small_deliveries_multiplier"`
	UpdatedBy                   *string   `json:"updated_by,omitempty"`
	UpdatedAt                   time.Time `json:"updated_at"`
}

func QuoteSettingsToResponse(s *entity.QuoteSettings) QuoteSettingsResponse {
	return QuoteSettingsResponse{
		BaseFee:                     s.BaseFee.StringFixed(2),
		PerKmRate:                   s.PerKmRate.String(),
		PerKgRate:                   s.PerKgRate.String(),
		MinimumCharge:               s.MinimumCharge.StringFixed(2),
		ResidentialMovingMultiplier: s.ResidentialMovingMultiplier.String(),
		OfficeRelocationMultiplier:  s.OfficeRelocationMultiplier.String(),
		PalletDeliveryMultiplier:    s.PalletDeliveryMultiplier.String(),
		SmallDeliveriesMultiplier:   s.SmallDeliveriesMultiplier.String(),
		UpdatedBy:                   s.UpdatedBy,
		UpdatedAt:                   s.UpdatedAt,
	}
}
