package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"freight-booking/internal/booking"

	"go.uber.org/zap"
)

const bookPath = "/book/"

// bookRequest is the flattened body the logistics backend expects on POST /book/.
type bookRequest struct {
	CustomerID              string  `json:"customer_id"`
	ServiceType             string  `json:"service_type"`
	CargoDescription        string  `json:"cargo_description"`
	PickupAddress           string  `json:"pickup_address"`
	PickupContactName       string  `json:"pickup_contact_name"`
	PickupContactPhone      string  `json:"pickup_contact_phone"`
	DeliveryAddress         string  `json:"delivery_address"`
	DeliveryContactName     string  `json:"delivery_contact_name"`
	DeliveryContactPhone    string  `json:"delivery_contact_phone"`
	RequestedPickupDateTime string  `json:"requested_pickup_date_time"`
	EstimatedPrice          float64 `json:"estimated_price"`
	PickupCity              string  `json:"pickup_city"`
	DeliveryCity            string  `json:"delivery_city"`
}

func newBookRequest(o booking.Order) bookRequest {
	return bookRequest{
		CustomerID:              o.CustomerID,
		ServiceType:             string(o.ServiceType),
		CargoDescription:        o.CargoDescription,
		PickupAddress:           o.Pickup.Address,
		PickupContactName:       o.Pickup.ContactName,
		PickupContactPhone:      o.Pickup.ContactPhone,
		DeliveryAddress:         o.Delivery.Address,
		DeliveryContactName:     o.Delivery.ContactName,
		DeliveryContactPhone:    o.Delivery.ContactPhone,
		RequestedPickupDateTime: o.RequestedPickupAt.Format(time.RFC3339),
		EstimatedPrice:          o.EstimatedPrice.Round(2).InexactFloat64(),
		PickupCity:              o.PickupCity,
		DeliveryCity:            o.DeliveryCity,
	}
}

// OrderClient creates orders on the logistics backend.
type OrderClient struct {
	httpClient *http.Client
	baseURL    string
	log        *zap.Logger
}

// NewOrderClient builds a client for baseURL. A nil httpClient gets one
// without a timeout: order creation is awaited until the transport reports.
func NewOrderClient(baseURL string, httpClient *http.Client, log *zap.Logger) *OrderClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &OrderClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		log:        log.With(zap.String("gateway", "orders")),
	}
}

// SubmitOrder implements booking.OrderSubmitter. Any non-2xx status is a failure.
func (c *OrderClient) SubmitOrder(ctx context.Context, token string, order booking.Order) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(newBookRequest(order)); err != nil {
		return fmt.Errorf("encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+bookPath, &buf)
	if err != nil {
		return fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Order request failed",
			zap.Error(err),
			zap.String("customer_id", order.CustomerID),
		)
		return fmt.Errorf("post %s: %w", bookPath, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("Order rejected by backend",
			zap.Int("status", resp.StatusCode),
			zap.String("customer_id", order.CustomerID),
			zap.ByteString("body", body),
		)
		return fmt.Errorf("backend rejected order: status=%d", resp.StatusCode)
	}

	c.log.Info("Order created",
		zap.String("customer_id", order.CustomerID),
		zap.String("service_type", string(order.ServiceType)),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}
