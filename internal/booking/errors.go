package booking

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownServiceType = errors.New("unknown service type")
	ErrInvalidDateTime    = errors.New("invalid pickup date/time")
)

var (
	ErrNoNextStep          = errors.New("wizard is already on the confirm step")
	ErrNotConfirmStep      = errors.New("booking can only be submitted from the confirm step")
	ErrFieldNotOnStep      = errors.New("field cannot be edited on this step")
	ErrFlowCompleted       = errors.New("booking has already been submitted")
	ErrNoPendingSubmission = errors.New("no submission is waiting for authentication")
)

var (
	ErrAuthRequired       = errors.New("authentication required")
	ErrSubmissionInFlight = errors.New("booking submission already in progress")
	ErrSubmissionFailed   = errors.New("booking failed")
)

// LoginChallenge tells the caller where to send the user to authenticate.
type LoginChallenge struct {
	RedirectURL string
}

// AuthRequiredError is returned when a submit is paused for authentication.
type AuthRequiredError struct {
	Challenge LoginChallenge
}

func (e *AuthRequiredError) Error() string {
	return fmt.Sprintf("%s: login at %s", ErrAuthRequired, e.Challenge.RedirectURL)
}

func (e *AuthRequiredError) Unwrap() error {
	return ErrAuthRequired
}
