package request

import "github.com/shopspring/decimal"

type UpdateQuoteSettingsRequest struct {
	BaseFee                     *decimal.Decimal `json:"base_fee" validate:"required"`
	PerKmRate                   *decimal.Decimal `json:"per_km_rate" validate:"required"`
	PerKgRate                   *decimal.Decimal `json:"per_kg_rate" validate:"required"`
	MinimumCharge               *decimal.Decimal `json:"minimum_charge" validate:"required"`
	ResidentialMovingMultiplier *decimal.Decimal `json:"residential_moving_multiplier" validate:"required"`
	OfficeRelocationMultiplier  *decimal.Decimal `json:"office_relocation_multiplier" validate:"required"`
	PalletDeliveryMultiplier    *decimal.Decimal `json:"pallet_delivery_multiplier" validate:"required"`
	SmallDeliveriesMultiplier   *decimal.Decimal `json:"small_deliveries_multiplier" validate:"required"`
}
