package request

import "freight-booking/internal/booking"

// UpdateWizardRequest is a partial draft edit; omitted fields are unchanged.
type UpdateWizardRequest struct {
	ServiceType             *string         `json:"service_type,omitempty"`
	CargoDescription        *string         `json:"cargo_description,omitempty"`
	Pickup                  *ContactRequest `json:"pickup,omitempty"`
	Delivery                *ContactRequest `json:"delivery,omitempty"`
	RequestedPickupDateTime *string         `json:"requested_pickup_date_time,omitempty"`
}

type ContactRequest struct {
	Address      *string `json:"address,omitempty"`
	ContactName  *string `json:"contact_name,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
}

// ToPatch converts the request into a draft patch. Known service types are
// normalised like the estimate endpoint does; unknown values are kept as typed
// and rejected when the step is advanced.
func (r *UpdateWizardRequest) ToPatch() booking.DraftPatch {
	patch := booking.DraftPatch{
		CargoDescription:        r.CargoDescription,
		RequestedPickupDateTime: r.RequestedPickupDateTime,
		Pickup:                  r.Pickup.toPatch(),
		Delivery:                r.Delivery.toPatch(),
	}
	if r.ServiceType != nil {
		st, err := booking.ParseServiceType(*r.ServiceType)
		if err != nil {
			st = booking.ServiceType(*r.ServiceType)
		}
		patch.ServiceType = &st
	}
	return patch
}

func (c *ContactRequest) toPatch() *booking.ContactPatch {
	if c == nil {
		return nil
	}
	return &booking.ContactPatch{
		Address:      c.Address,
		ContactName:  c.ContactName,
		ContactPhone: c.ContactPhone,
	}
}
