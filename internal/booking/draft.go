package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contact is one end of the shipment.
type Contact struct {
	Address      string `json:"address" validate:"required,min=5"`
	ContactName  string `json:"contact_name" validate:"required,min=2"`
	ContactPhone string `json:"contact_phone" validate:"required,min=10"`
}

// ServiceDetails holds the fields owned by the first step.
type ServiceDetails struct {
	ServiceType      ServiceType `json:"service_type" validate:"required,service_type"`
	CargoDescription string      `json:"cargo_description" validate:"required,min=10"`
}

// Logistics holds the fields owned by the second step.
type Logistics struct {
	Pickup                  Contact `json:"pickup"`
	Delivery                Contact `json:"delivery"`
	RequestedPickupDateTime string  `json:"requested_pickup_date_time" validate:"required,pickup_datetime"`
}

// Draft is the in-progress booking of one wizard session. It is never
// persisted.
type Draft struct {
	ServiceDetails
	Logistics

	// EstimatedPrice is set only when the logistics step is completed.
	EstimatedPrice decimal.NullDecimal `json:"estimated_price"`
}

// DraftPatch carries a partial update; nil fields are left untouched.
type DraftPatch struct {
	ServiceType             *ServiceType
	CargoDescription        *string
	Pickup                  *ContactPatch
	Delivery                *ContactPatch
	RequestedPickupDateTime *string
}

type ContactPatch struct {
	Address      *string
	ContactName  *string
	ContactPhone *string
}

func (p DraftPatch) touchesServiceDetails() bool {
	return p.ServiceType != nil || p.CargoDescription != nil
}

func (p DraftPatch) touchesLogistics() bool {
	return p.Pickup != nil || p.Delivery != nil || p.RequestedPickupDateTime != nil
}

func (d *Draft) apply(p DraftPatch) {
	if p.ServiceType != nil {
		d.ServiceType = *p.ServiceType
	}
	if p.CargoDescription != nil {
		d.CargoDescription = *p.CargoDescription
	}
	if p.Pickup != nil {
		d.Pickup.apply(*p.Pickup)
	}
	if p.Delivery != nil {
		d.Delivery.apply(*p.Delivery)
	}
	if p.RequestedPickupDateTime != nil {
		d.RequestedPickupDateTime = *p.RequestedPickupDateTime
	}
}

func (c *Contact) apply(p ContactPatch) {
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.ContactName != nil {
		c.ContactName = *p.ContactName
	}
	if p.ContactPhone != nil {
		c.ContactPhone = *p.ContactPhone
	}
}

// Order is the assembled booking sent to the order-creation endpoint.
type Order struct {
	CustomerID        string
	ServiceType       ServiceType
	CargoDescription  string
	Pickup            Contact
	Delivery          Contact
	RequestedPickupAt time.Time
	EstimatedPrice    decimal.Decimal
	PickupCity        string
	DeliveryCity      string
}
