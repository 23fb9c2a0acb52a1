package mews

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Maxito7/booking_gateway/internal/config"
)

// BookingEngine is the client for the distributor API (hotel metadata and
// availability/pricing). Unlike the connector it only identifies itself with
// a client string.
type BookingEngine struct {
	baseURL    string
	clientName string
	httpClient *http.Client
}

// NewBookingEngine creates a booking-engine client from the process
// configuration.
func NewBookingEngine(cfg *config.Config) *BookingEngine {
	return &BookingEngine{
		baseURL:    cfg.MewsBaseURL,
		clientName: cfg.BookingEngineClient,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

func (b *BookingEngine) post(ctx context.Context, endpoint string, body map[string]any, out any) error {
	payload := map[string]any{
		"Client": b.clientName,
	}
	for k, v := range body {
		payload[k] = v
	}

	url := fmt.Sprintf("%s/api/distributor/v1/%s", b.baseURL, endpoint)

	return postJSON(ctx, b.httpClient, url, endpoint, payload, out)
}

// HotelsGet fetches the hotel metadata, including all room categories.
func (b *BookingEngine) HotelsGet(ctx context.Context, hotelID string) (*HotelsGetResponse, error) {
	var resp HotelsGetResponse
	err := b.post(ctx, "hotels/get", map[string]any{
		"HotelId": hotelID,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// HotelsGetAvailability fetches availability and pricing per room category
// for one date range and occupancy.
func (b *BookingEngine) HotelsGetAvailability(ctx context.Context, hotelID, configurationID, startUTC, endUTC string, adults, children int) (*HotelsGetAvailabilityResponse, error) {
	var resp HotelsGetAvailabilityResponse
	err := b.post(ctx, "hotels/getAvailability", map[string]any{
		"HotelId":         hotelID,
		"ConfigurationId": configurationID,
		"StartUtc":        startUTC,
		"EndUtc":          endUTC,
		"AdultCount":      adults,
		"ChildCount":      children,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}
