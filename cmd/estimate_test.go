package cmd

import (
	"bytes"
	"strings"
	"testing"

	"freight-booking/internal/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintEstimates(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printEstimates(&buf, booking.ServiceTypes))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "ESTIMATE")
	assert.Contains(t, buf.String(), "OFFICE_RELOCATION")
	assert.Contains(t, buf.String(), "450.00")
	assert.Contains(t, buf.String(), "300.00")
}

func TestPrintEstimates_UnknownType(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, printEstimates(&buf, []booking.ServiceType{"BARGE"}), booking.ErrUnknownServiceType)
}
