package utils

import (
	"github.com/google/uuid"
)

// GenerateWizardID returns a fresh wizard session identifier.
func GenerateWizardID() string {
	return uuid.New().String()
}

// ParseWizardID normalizes a client-supplied wizard id.
func ParseWizardID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}
