package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Maxito7/booking_gateway/internal/config"
	"github.com/Maxito7/booking_gateway/internal/domain"
	"github.com/Maxito7/booking_gateway/internal/mews"
)

// Reservation read-model window: fixed 30 days back, 90 days forward,
// capped at 50 rows.
const (
	reservationWindowBack    = 30 * 24 * time.Hour
	reservationWindowForward = 90 * 24 * time.Hour
	reservationListCap       = 50
)

// ReservationsOverview is the reservation read model: recent reservations
// plus a customer-id lookup map for display.
type ReservationsOverview struct {
	Reservations []domain.Reservation              `json:"reservations"`
	Customers    map[string]domain.CustomerSummary `json:"customers"`
}

// ReservationService creates customers and reservations upstream and exposes
// the reservation read model. The upstream PMS stays the system of record;
// nothing is persisted here.
type ReservationService struct {
	connector ConnectorAPI
	cfg       *config.Config
}

// NewReservationService creates a reservation service for the configured
// stays service.
func NewReservationService(connector ConnectorAPI, cfg *config.Config) *ReservationService {
	return &ReservationService{
		connector: connector,
		cfg:       cfg,
	}
}

// CreateCustomer creates one customer upstream. First name, last name and
// email are all required.
func (s *ReservationService) CreateCustomer(ctx context.Context, customer domain.NewCustomer) (*mews.Customer, error) {
	customer.FirstName = strings.TrimSpace(customer.FirstName)
	customer.LastName = strings.TrimSpace(customer.LastName)
	customer.Email = strings.TrimSpace(customer.Email)

	if customer.FirstName == "" {
		return nil, domain.NewValidationError("firstName", "is required")
	}
	if customer.LastName == "" {
		return nil, domain.NewValidationError("lastName", "is required")
	}
	if customer.Email == "" {
		return nil, domain.NewValidationError("email", "is required")
	}

	created, err := s.connector.CustomersAdd(ctx, customer)
	if err != nil {
		return nil, fmt.Errorf("error creating customer: %w", err)
	}

	return created, nil
}

// CreateReservation creates one reservation upstream. Rate plan and both
// instants are required; occupancy defaults to 1 adult, 0 children. The
// customer link is optional.
func (s *ReservationService) CreateReservation(ctx context.Context, res domain.NewReservation) (json.RawMessage, error) {
	if res.RatePlanID == "" {
		return nil, domain.NewValidationError("ratePlanId", "is required")
	}
	if res.StartUTC == "" {
		return nil, domain.NewValidationError("startUtc", "is required")
	}
	if res.EndUTC == "" {
		return nil, domain.NewValidationError("endUtc", "is required")
	}
	if res.AdultCount <= 0 {
		res.AdultCount = 1
	}
	if res.ChildCount < 0 {
		res.ChildCount = 0
	}

	created, err := s.connector.ReservationsAdd(ctx, s.cfg.StaysServiceID, res)
	if err != nil {
		return nil, fmt.Errorf("error creating reservation: %w", err)
	}

	return created, nil
}

// ListReservations returns the recent reservation window joined with its
// customer summaries.
func (s *ReservationService) ListReservations(ctx context.Context) (*ReservationsOverview, error) {
	now := time.Now().UTC()
	startUTC := now.Add(-reservationWindowBack).Format(time.RFC3339)
	endUTC := now.Add(reservationWindowForward).Format(time.RFC3339)

	resp, err := s.connector.ReservationsGetAll(ctx, s.cfg.StaysServiceID, startUTC, endUTC)
	if err != nil {
		return nil, fmt.Errorf("error fetching reservations: %w", err)
	}

	rows := resp.Reservations
	if len(rows) > reservationListCap {
		rows = rows[:reservationListCap]
	}

	reservations := make([]domain.Reservation, 0, len(rows))
	for _, r := range rows {
		reservations = append(reservations, domain.Reservation{
			ID:         r.ID,
			State:      r.State,
			StartUTC:   r.StartUTC,
			EndUTC:     r.EndUTC,
			AdultCount: r.AdultCount,
			ChildCount: r.ChildCount,
			CustomerID: r.CustomerID,
			RatePlanID: r.RatePlanID,
			CreatedUTC: r.CreatedUTC,
		})
	}

	customers := make(map[string]domain.CustomerSummary, len(resp.Customers))
	for _, c := range resp.Customers {
		customers[c.ID] = domain.CustomerSummary{
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
		}
	}

	return &ReservationsOverview{
		Reservations: reservations,
		Customers:    customers,
	}, nil
}
