package booking

import (
	"fmt"
	"strings"
)

// ServiceType is the shipment category chosen in the first wizard step.
type ServiceType string

const (
	ServiceResidentialMoving ServiceType = "RESIDENTIAL_MOVING"
	ServiceOfficeRelocation  ServiceType = "OFFICE_RELOCATION"
	ServicePalletDelivery    ServiceType = "PALLET_DELIVERY"
	ServiceSmallDeliveries   ServiceType = "SMALL_DELIVERIES"
)

var ServiceTypes = []ServiceType{
	ServiceResidentialMoving,
	ServiceOfficeRelocation,
	ServicePalletDelivery,
	ServiceSmallDeliveries,
}

func (t ServiceType) IsValid() bool {
	switch t {
	case ServiceResidentialMoving, ServiceOfficeRelocation, ServicePalletDelivery, ServiceSmallDeliveries:
		return true
	}
	return false
}

func (t ServiceType) String() string {
	return string(t)
}

// ParseServiceType accepts the canonical names in any case.
func ParseServiceType(s string) (ServiceType, error) {
	t := ServiceType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownServiceType, s)
	}
	return t, nil
}
