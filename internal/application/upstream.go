package application

import (
	"context"
	"encoding/json"

	"github.com/Maxito7/booking_gateway/internal/domain"
	"github.com/Maxito7/booking_gateway/internal/mews"
)

// ConnectorAPI is the slice of the PMS connector surface the services use.
type ConnectorAPI interface {
	RatesGetAll(ctx context.Context, serviceID string) (*mews.RatesGetAllResponse, error)
	ReservationsGetAll(ctx context.Context, serviceID, startUTC, endUTC string) (*mews.ReservationsGetAllResponse, error)
	CustomersAdd(ctx context.Context, customer domain.NewCustomer) (*mews.Customer, error)
	ReservationsAdd(ctx context.Context, serviceID string, res domain.NewReservation) (json.RawMessage, error)
}

// BookingEngineAPI is the slice of the distributor surface the services use.
type BookingEngineAPI interface {
	HotelsGet(ctx context.Context, hotelID string) (*mews.HotelsGetResponse, error)
	HotelsGetAvailability(ctx context.Context, hotelID, configurationID, startUTC, endUTC string, adults, children int) (*mews.HotelsGetAvailabilityResponse, error)
}

var (
	_ ConnectorAPI     = (*mews.Connector)(nil)
	_ BookingEngineAPI = (*mews.BookingEngine)(nil)
)
