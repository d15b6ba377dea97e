package booking

import (
	"fmt"
	"strings"
	"time"

	"freight-booking/pkg/utils"

	"github.com/go-playground/validator/v10"
)

const (
	tagServiceType    = "service_type"
	tagPickupDateTime = "pickup_datetime"
)

// pickupLayouts are tried in order; the HTML datetime-local form comes second.
var pickupLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := utils.NewValidator()
	mustRegister(v, tagServiceType, func(fl validator.FieldLevel) bool {
		return ServiceType(fl.Field().String()).IsValid()
	})
	mustRegister(v, tagPickupDateTime, func(fl validator.FieldLevel) bool {
		_, err := ParsePickupDateTime(fl.Field().String())
		return err == nil
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("booking: register validation %q: %v", tag, err))
	}
}

// ParsePickupDateTime parses the requested pickup moment.
func ParsePickupDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range pickupLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
}

func validateServiceDetails(d ServiceDetails) error {
	return fieldErrors(validate.Struct(d))
}

func validateLogistics(l Logistics) error {
	return fieldErrors(validate.Struct(l))
}

func fieldErrors(err error) error {
	if err == nil {
		return nil
	}
	fields := utils.CollectFieldErrors(err, fieldMessage)
	if len(fields) == 0 {
		return err
	}
	return &utils.ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case tagServiceType:
		return serviceTypeMessage()
	case tagPickupDateTime:
		return "Must be a valid date and time"
	default:
		return utils.FieldErrorMessage(fe)
	}
}

func serviceTypeMessage() string {
	names := make([]string, len(ServiceTypes))
	for i, t := range ServiceTypes {
		names[i] = string(t)
	}
	return "Must be one of: " + strings.Join(names, ", ")
}
