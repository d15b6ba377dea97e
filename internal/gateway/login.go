package gateway

import (
	"context"
	"fmt"
	"net/url"

	"freight-booking/internal/booking"
)

// LoginRedirector sends users to the identity provider and asks it to return
// them to the wizard's resume endpoint.
type LoginRedirector struct {
	loginURL      string
	publicBaseURL string
}

func NewLoginRedirector(loginURL, publicBaseURL string) *LoginRedirector {
	return &LoginRedirector{loginURL: loginURL, publicBaseURL: publicBaseURL}
}

// RequestLogin implements booking.LoginRequester.
func (l *LoginRedirector) RequestLogin(ctx context.Context, flowID string) (booking.LoginChallenge, error) {
	u, err := url.Parse(l.loginURL)
	if err != nil {
		return booking.LoginChallenge{}, fmt.Errorf("parse login url: %w", err)
	}

	q := u.Query()
	q.Set("return_to", fmt.Sprintf("%s/api/wizards/%s/resume", l.publicBaseURL, url.PathEscape(flowID)))
	u.RawQuery = q.Encode()

	return booking.LoginChallenge{RedirectURL: u.String()}, nil
}
