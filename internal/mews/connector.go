package mews

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Maxito7/booking_gateway/internal/config"
	"github.com/Maxito7/booking_gateway/internal/domain"
)

// Connector is the client for the PMS connector API (rates, reservations,
// customers). Every request body is augmented with the client and access
// tokens before sending.
type Connector struct {
	baseURL     string
	clientToken string
	accessToken string
	clientName  string
	httpClient  *http.Client
}

// NewConnector creates a connector client from the process configuration.
func NewConnector(cfg *config.Config) *Connector {
	return &Connector{
		baseURL:     cfg.MewsBaseURL,
		clientToken: cfg.ClientToken,
		accessToken: cfg.AccessToken,
		clientName:  cfg.ClientName,
		httpClient:  &http.Client{Timeout: defaultTimeout},
	}
}

func (c *Connector) post(ctx context.Context, endpoint string, body map[string]any, out any) error {
	payload := map[string]any{
		"ClientToken": c.clientToken,
		"AccessToken": c.accessToken,
		"Client":      c.clientName,
	}
	for k, v := range body {
		payload[k] = v
	}

	url := fmt.Sprintf("%s/api/connector/v1/%s", c.baseURL, endpoint)

	return postJSON(ctx, c.httpClient, url, endpoint, payload, out)
}

// RatesGetAll fetches the full rate list for one service, base rate fields
// only (no restrictions, no groups) to keep the payload small.
func (c *Connector) RatesGetAll(ctx context.Context, serviceID string) (*RatesGetAllResponse, error) {
	var resp RatesGetAllResponse
	err := c.post(ctx, "rates/getAll", map[string]any{
		"ServiceIds": []string{serviceID},
		"Extent": map[string]bool{
			"Rates":            true,
			"RateGroups":       false,
			"RateRestrictions": false,
		},
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// ReservationsGetAll fetches reservations for one service in the given
// window, with the customer extent for the display join.
func (c *Connector) ReservationsGetAll(ctx context.Context, serviceID, startUTC, endUTC string) (*ReservationsGetAllResponse, error) {
	var resp ReservationsGetAllResponse
	err := c.post(ctx, "reservations/getAll", map[string]any{
		"ServiceIds": []string{serviceID},
		"StartUtc":   startUTC,
		"EndUtc":     endUTC,
		"Extent": map[string]bool{
			"Reservations": true,
			"Customers":    true,
		},
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// CustomersAdd creates one customer upstream and returns the created record.
func (c *Connector) CustomersAdd(ctx context.Context, customer domain.NewCustomer) (*Customer, error) {
	var resp Customer
	err := c.post(ctx, "customers/add", map[string]any{
		"FirstName": customer.FirstName,
		"LastName":  customer.LastName,
		"Email":     customer.Email,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// ReservationsAdd creates one reservation upstream. The created record is
// returned as raw JSON since the upstream owns its shape and we only echo it.
func (c *Connector) ReservationsAdd(ctx context.Context, serviceID string, res domain.NewReservation) (json.RawMessage, error) {
	reservation := map[string]any{
		"ServiceId":  serviceID,
		"RatePlanId": res.RatePlanID,
		"StartUtc":   res.StartUTC,
		"EndUtc":     res.EndUTC,
		"AdultCount": res.AdultCount,
		"ChildCount": res.ChildCount,
	}
	if res.CustomerID != "" {
		reservation["CustomerId"] = res.CustomerID
	}

	var resp json.RawMessage
	err := c.post(ctx, "reservations/add", map[string]any{
		"Reservations": []map[string]any{reservation},
	}, &resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}
