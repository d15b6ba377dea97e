package booking

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BaseFee is charged on every booking regardless of service type.
var BaseFee = decimal.RequireFromString("50.00")

var surcharges = map[ServiceType]decimal.Decimal{
	ServiceResidentialMoving: decimal.RequireFromString("250.00"),
	ServiceOfficeRelocation:  decimal.RequireFromString("400.00"),
	ServicePalletDelivery:    decimal.RequireFromString("100.00"),
	ServiceSmallDeliveries:   decimal.Zero,
}

// Surcharge returns the flat amount added on top of BaseFee for t.
func Surcharge(t ServiceType) (decimal.Decimal, error) {
	s, ok := surcharges[t]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownServiceType, string(t))
	}
	return s, nil
}

// EstimatePrice is the wizard's flat estimate: base fee plus the service
// surcharge. Distance, weight and date do not participate; the authoritative
// quote is computed by the backend.
func EstimatePrice(t ServiceType) (decimal.Decimal, error) {
	s, err := Surcharge(t)
	if err != nil {
		return decimal.Zero, err
	}
	return BaseFee.Add(s), nil
}
