package application

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Maxito7/booking_gateway/internal/config"
	"github.com/Maxito7/booking_gateway/internal/domain"
	"github.com/Maxito7/booking_gateway/internal/mews"
)

// stubConnector implements ConnectorAPI with pluggable function fields.
type stubConnector struct {
	ratesGetAll        func(ctx context.Context, serviceID string) (*mews.RatesGetAllResponse, error)
	reservationsGetAll func(ctx context.Context, serviceID, startUTC, endUTC string) (*mews.ReservationsGetAllResponse, error)
	customersAdd       func(ctx context.Context, customer domain.NewCustomer) (*mews.Customer, error)
	reservationsAdd    func(ctx context.Context, serviceID string, res domain.NewReservation) (json.RawMessage, error)
}

func (s *stubConnector) RatesGetAll(ctx context.Context, serviceID string) (*mews.RatesGetAllResponse, error) {
	if s.ratesGetAll == nil {
		return nil, errors.New("ratesGetAll not stubbed")
	}
	return s.ratesGetAll(ctx, serviceID)
}

func (s *stubConnector) ReservationsGetAll(ctx context.Context, serviceID, startUTC, endUTC string) (*mews.ReservationsGetAllResponse, error) {
	if s.reservationsGetAll == nil {
		return nil, errors.New("reservationsGetAll not stubbed")
	}
	return s.reservationsGetAll(ctx, serviceID, startUTC, endUTC)
}

func (s *stubConnector) CustomersAdd(ctx context.Context, customer domain.NewCustomer) (*mews.Customer, error) {
	if s.customersAdd == nil {
		return nil, errors.New("customersAdd not stubbed")
	}
	return s.customersAdd(ctx, customer)
}

func (s *stubConnector) ReservationsAdd(ctx context.Context, serviceID string, res domain.NewReservation) (json.RawMessage, error) {
	if s.reservationsAdd == nil {
		return nil, errors.New("reservationsAdd not stubbed")
	}
	return s.reservationsAdd(ctx, serviceID, res)
}

// stubBookingEngine implements BookingEngineAPI with pluggable function
// fields.
type stubBookingEngine struct {
	hotelsGet             func(ctx context.Context, hotelID string) (*mews.HotelsGetResponse, error)
	hotelsGetAvailability func(ctx context.Context, hotelID, configurationID, startUTC, endUTC string, adults, children int) (*mews.HotelsGetAvailabilityResponse, error)
}

func (s *stubBookingEngine) HotelsGet(ctx context.Context, hotelID string) (*mews.HotelsGetResponse, error) {
	if s.hotelsGet == nil {
		return nil, errors.New("hotelsGet not stubbed")
	}
	return s.hotelsGet(ctx, hotelID)
}

func (s *stubBookingEngine) HotelsGetAvailability(ctx context.Context, hotelID, configurationID, startUTC, endUTC string, adults, children int) (*mews.HotelsGetAvailabilityResponse, error) {
	if s.hotelsGetAvailability == nil {
		return nil, errors.New("hotelsGetAvailability not stubbed")
	}
	return s.hotelsGetAvailability(ctx, hotelID, configurationID, startUTC, endUTC, adults, children)
}

func testConfig() *config.Config {
	return &config.Config{
		StaysServiceID:    "service-1",
		HotelID:           "hotel-1",
		ConfigurationID:   "configuration-1",
		ImageBaseURL:      "https://cdn.example.com/Media/Image",
		PrimaryLocale:     "en-US",
		SecondaryLocale:   "en-GB",
		PrimaryCurrency:   "USD",
		SecondaryCurrency: "EUR",
		FeaturedRateIDs:   []string{"rate-a", "rate-c"},
	}
}
