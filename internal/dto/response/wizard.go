package response

import (
	"freight-booking/internal/booking"
)

type ContactResponse struct {
	Address      string `json:"address"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
}

type DraftResponse struct {
	ServiceType             string          `json:"service_type"`
	CargoDescription        string          `json:"cargo_description"`
	Pickup                  ContactResponse `json:"pickup"`
	Delivery                ContactResponse `json:"delivery"`
	RequestedPickupDateTime string          `json:"requested_pickup_date_time"`
	EstimatedPrice          *string         `json:"estimated_price"`
}

type WizardResponse struct {
	ID           string        `json:"id"`
	Step         int           `json:"step"`
	StepName     string        `json:"step_name"`
	Draft        DraftResponse `json:"draft"`
	AwaitingAuth bool          `json:"awaiting_auth"`
	Submitting   bool          `json:"submitting"`
}

// SubmissionResponse is returned once the backend accepted the order. The
// portal navigates to RedirectTo afterwards.
type SubmissionResponse struct {
	WizardID       string `json:"wizard_id"`
	ServiceType    string `json:"service_type"`
	EstimatedPrice string `json:"estimated_price"`
	PickupCity     string `json:"pickup_city"`
	DeliveryCity   string `json:"delivery_city"`
	RedirectTo     string `json:"redirect_to"`
}

type LoginRequiredResponse struct {
	WizardID string `json:"wizard_id"`
	Step     int    `json:"step"`
	LoginURL string `json:"login_url"`
}

type EstimateResponse struct {
	ServiceType    string `json:"service_type"`
	BaseFee        string `json:"base_fee"`
	Surcharge      string `json:"surcharge"`
	EstimatedPrice string `json:"estimated_price"`
}

func WizardToResponse(s booking.Snapshot) WizardResponse {
	d := s.Draft
	draft := DraftResponse{
		ServiceType:             string(d.ServiceType),
		CargoDescription:        d.CargoDescription,
		Pickup:                  contactToResponse(d.Pickup),
		Delivery:                contactToResponse(d.Delivery),
		RequestedPickupDateTime: d.RequestedPickupDateTime,
	}
	if d.EstimatedPrice.Valid {
		price := d.EstimatedPrice.Decimal.StringFixed(2)
		draft.EstimatedPrice = &price
	}

	return WizardResponse{
		ID:           s.ID,
		Step:         s.Step.Number(),
		StepName:     s.Step.Name(),
		Draft:        draft,
		AwaitingAuth: s.AwaitingAuth,
		Submitting:   s.Submitting,
	}
}

func SubmissionToResponse(wizardID string, o booking.Order, redirectTo string) SubmissionResponse {
	return SubmissionResponse{
		WizardID:       wizardID,
		ServiceType:    string(o.ServiceType),
		EstimatedPrice: o.EstimatedPrice.StringFixed(2),
		PickupCity:     o.PickupCity,
		DeliveryCity:   o.DeliveryCity,
		RedirectTo:     redirectTo,
	}
}

func contactToResponse(c booking.Contact) ContactResponse {
	return ContactResponse{
		Address:      c.Address,
		ContactName:  c.ContactName,
		ContactPhone: c.ContactPhone,
	}
}
