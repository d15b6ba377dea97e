package booking

import (
	"fmt"

	"freight-booking/pkg/utils"

	"github.com/shopspring/decimal"
)

// Step is the wizard cursor. Only the three step types below implement it.
type Step interface {
	Number() int
	Name() string
	isStep()
}

// ServiceDetailsStep is step 1: service type and cargo description.
type ServiceDetailsStep struct{}

// LogisticsStep is step 2: pickup, delivery and requested pickup time.
type LogisticsStep struct{}

// ConfirmStep is step 3. It carries the estimate computed when step 2 was
// completed and is the only step an Order can be built from.
type ConfirmStep struct {
	Price decimal.Decimal
}

func (ServiceDetailsStep) Number() int { return 1 }
func (LogisticsStep) Number() int      { return 2 }
func (ConfirmStep) Number() int        { return 3 }

func (ServiceDetailsStep) Name() string { return "service_details" }
func (LogisticsStep) Name() string      { return "logistics" }
func (ConfirmStep) Name() string        { return "confirm" }

func (ServiceDetailsStep) isStep() {}
func (LogisticsStep) isStep()      {}
func (ConfirmStep) isStep()        {}

// Next gates on the service details of d.
func (ServiceDetailsStep) Next(d Draft) (LogisticsStep, error) {
	if err := validateServiceDetails(d.ServiceDetails); err != nil {
		return LogisticsStep{}, err
	}
	return LogisticsStep{}, nil
}

// Next gates on the logistics fields of d and prices the booking.
func (LogisticsStep) Next(d Draft) (ConfirmStep, error) {
	if err := validateLogistics(d.Logistics); err != nil {
		return ConfirmStep{}, err
	}

	price, err := EstimatePrice(d.ServiceType)
	if err != nil {
		return ConfirmStep{}, &utils.ValidationError{
			Fields: map[string]string{"service_type": serviceTypeMessage()},
		}
	}
	return ConfirmStep{Price: price}, nil
}

func (LogisticsStep) Back() ServiceDetailsStep { return ServiceDetailsStep{} }

func (ConfirmStep) Back() LogisticsStep { return LogisticsStep{} }

// Order assembles the submission payload for customerID.
func (c ConfirmStep) Order(d Draft, customerID string) (Order, error) {
	pickupAt, err := ParsePickupDateTime(d.RequestedPickupDateTime)
	if err != nil {
		return Order{}, fmt.Errorf("build order: %w", err)
	}

	return Order{
		CustomerID:        customerID,
		ServiceType:       d.ServiceType,
		CargoDescription:  d.CargoDescription,
		Pickup:            d.Pickup,
		Delivery:          d.Delivery,
		RequestedPickupAt: pickupAt,
		EstimatedPrice:    c.Price,
		PickupCity:        CityFromAddress(d.Pickup.Address),
		DeliveryCity:      CityFromAddress(d.Delivery.Address),
	}, nil
}

// owns reports whether the patch only touches fields rendered on s.
func owns(s Step, p DraftPatch) bool {
	switch s.(type) {
	case ServiceDetailsStep:
		return !p.touchesLogistics()
	case LogisticsStep:
		return !p.touchesServiceDetails()
	default:
		return !p.touchesServiceDetails() && !p.touchesLogistics()
	}
}
