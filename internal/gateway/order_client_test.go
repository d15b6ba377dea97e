package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"freight-booking/internal/booking"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleOrder() booking.Order {
	return booking.Order{
		CustomerID:       "cust-42",
		ServiceType:      booking.ServiceOfficeRelocation,
		CargoDescription: "Ten boxes of files",
		Pickup: booking.Contact{
			Address: "1 A St, Metropolis, CA", ContactName: "Alice", ContactPhone: "5551234567",
		},
		Delivery: booking.Contact{
			Address: "2 B Ave, Gotham, NY", ContactName: "Bob", ContactPhone: "5557654321",
		},
		RequestedPickupAt: time.Date(2026, 11, 2, 9, 30, 0, 0, time.UTC),
		EstimatedPrice:    decimal.RequireFromString("450.00"),
		PickupCity:        "Metropolis",
		DeliveryCity:      "Gotham",
	}
}

func TestOrderClient_SubmitOrder(t *testing.T) {
	var gotBody map[string]any
	var gotAuth, gotPath, gotMethod string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewOrderClient(srv.URL, srv.Client(), zap.NewNop())

	err := client.SubmitOrder(context.Background(), "tok-1", sampleOrder())

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/book/", gotPath)
	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.Equal(t, "cust-42", gotBody["customer_id"])
	assert.Equal(t, "OFFICE_RELOCATION", gotBody["service_type"])
	assert.Equal(t, "Metropolis", gotBody["pickup_city"])
	assert.Equal(t, "Gotham", gotBody["delivery_city"])
	assert.Equal(t, "1 A St, Metropolis, CA", gotBody["pickup_address"])
	assert.Equal(t, "5557654321", gotBody["delivery_contact_phone"])
	assert.Equal(t, "2026-11-02T09:30:00Z", gotBody["requested_pickup_date_time"])
	assert.Equal(t, 450.0, gotBody["estimated_price"])
}

func TestOrderClient_NonSuccessStatusFails(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"detail":"nope"}`, status)
		}))

		client := NewOrderClient(srv.URL, srv.Client(), zap.NewNop())
		err := client.SubmitOrder(context.Background(), "", sampleOrder())

		assert.Error(t, err, status)
		srv.Close()
	}
}

func TestOrderClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewOrderClient(srv.URL, nil, zap.NewNop())
	err := client.SubmitOrder(context.Background(), "", sampleOrder())

	assert.Error(t, err)
}

func TestLoginRedirector_RequestLogin(t *testing.T) {
	l := NewLoginRedirector("https://id.example.com/login?client=portal", "https://book.example.com")

	challenge, err := l.RequestLogin(context.Background(), "abc-123")
	require.NoError(t, err)

	u, err := url.Parse(challenge.RedirectURL)
	require.NoError(t, err)
	assert.Equal(t, "id.example.com", u.Host)
	assert.Equal(t, "portal", u.Query().Get("client"))
	assert.Equal(t, "https://book.example.com/api/wizards/abc-123/resume", u.Query().Get("return_to"))
}
