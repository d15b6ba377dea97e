package request

import (
	"testing"

	"freight-booking/internal/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func TestUpdateWizardRequest_ToPatchNormalisesServiceType(t *testing.T) {
	for _, in := range []string{"office_relocation", " Office_Relocation ", "OFFICE_RELOCATION"} {
		patch := (&UpdateWizardRequest{ServiceType: str(in)}).ToPatch()
		require.NotNil(t, patch.ServiceType, in)
		assert.Equal(t, booking.ServiceOfficeRelocation, *patch.ServiceType, in)
	}
}

func TestUpdateWizardRequest_ToPatchKeepsUnknownServiceType(t *testing.T) {
	patch := (&UpdateWizardRequest{ServiceType: str("hovercraft")}).ToPatch()

	require.NotNil(t, patch.ServiceType)
	assert.Equal(t, booking.ServiceType("hovercraft"), *patch.ServiceType)
	assert.False(t, patch.ServiceType.IsValid())
}

func TestUpdateWizardRequest_ToPatchContacts(t *testing.T) {
	patch := (&UpdateWizardRequest{
		Pickup:                  &ContactRequest{Address: str("1 A St, Metropolis, CA")},
		RequestedPickupDateTime: str("2026-11-02"),
	}).ToPatch()

	assert.Nil(t, patch.ServiceType)
	assert.Nil(t, patch.Delivery)
	require.NotNil(t, patch.Pickup)
	assert.Equal(t, "1 A St, Metropolis, CA", *patch.Pickup.Address)
	assert.Nil(t, patch.Pickup.ContactName)
	assert.Equal(t, "2026-11-02", *patch.RequestedPickupDateTime)
}
