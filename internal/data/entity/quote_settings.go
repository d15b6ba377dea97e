package entity

import (
	"github.com/shopspring/decimal"
)

// QuoteSettingsID is the key of the single settings row.
const QuoteSettingsID = 1

// QuoteSettings are the inputs of the backend's quote calculator, edited
// from the operations dashboard. They do not affect the booking wizard's
// flat estimate.
type QuoteSettings struct {
	Timestamps
	ID                          int             `db:"id"`
	BaseFee                     decimal.Decimal `db:"base_fee"`
	PerKmRate                   decimal.Decimal `db:"per_km_rate"`
	PerKgRate                   decimal.Decimal `db:"per_kg_rate"`
	MinimumCharge               decimal.Decimal `db:"minimum_charge"`
	ResidentialMovingMultiplier decimal.Decimal `db:"residential_moving_multiplier"`
	OfficeRelocationMultiplier  decimal.Decimal `db:"office_relocation_multiplier"`
	PalletDeliveryMultiplier    decimal.Decimal `db:"pallet_delivery_multiplier"`
	SmallDeliveriesMultiplier   decimal.Decimal `db:"small_deliveries_multiplier"`
	UpdatedBy                   *string         `db:"updated_by"`
}
