package http

import (
	"log"

	"github.com/Maxito7/booking_gateway/internal/application"
	"github.com/Maxito7/booking_gateway/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type ReservationHandler struct {
	service *application.ReservationService
}

func NewReservationHandler(service *application.ReservationService) *ReservationHandler {
	return &ReservationHandler{
		service: service,
	}
}

type createCustomerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// CreateCustomer creates a customer upstream and echoes the created record.
func (h *ReservationHandler) CreateCustomer(c *fiber.Ctx) error {
	var req createCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	customer, err := h.service.CreateCustomer(c.UserContext(), domain.NewCustomer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		log.Printf("CreateCustomer error: %v", err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"customer": customer})
}

type createReservationRequest struct {
	RatePlanID string `json:"ratePlanId"`
	StartUTC   string `json:"startUtc"`
	EndUTC     string `json:"endUtc"`
	AdultCount int    `json:"adultCount"`
	ChildCount int    `json:"childCount"`
	CustomerID string `json:"customerId"`
}

// CreateReservation creates a reservation upstream and echoes the created
// record as returned by the PMS.
func (h *ReservationHandler) CreateReservation(c *fiber.Ctx) error {
	var req createReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	created, err := h.service.CreateReservation(c.UserContext(), domain.NewReservation{
		RatePlanID: req.RatePlanID,
		StartUTC:   req.StartUTC,
		EndUTC:     req.EndUTC,
		AdultCount: req.AdultCount,
		ChildCount: req.ChildCount,
		CustomerID: req.CustomerID,
	})
	if err != nil {
		log.Printf("CreateReservation error: %v", err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"reservation": created})
}

// GetReservations returns the recent reservation window with its customer
// lookup map.
func (h *ReservationHandler) GetReservations(c *fiber.Ctx) error {
	overview, err := h.service.ListReservations(c.UserContext())
	if err != nil {
		log.Printf("Error listing reservations: %v", err)
		return respondError(c, err)
	}

	return c.JSON(overview)
}
