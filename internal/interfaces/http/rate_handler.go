package http

import (
	"log"

	"github.com/Maxito7/booking_gateway/internal/application"
	"github.com/gofiber/fiber/v2"
)

type RateHandler struct {
	service *application.RateService
}

func NewRateHandler(service *application.RateService) *RateHandler {
	return &RateHandler{
		service: service,
	}
}

// GetRates lists the bookable rates, featured first.
func (h *RateHandler) GetRates(c *fiber.Ctx) error {
	rates, err := h.service.ListRates(c.UserContext())
	if err != nil {
		log.Printf("Error listing rates: %v", err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"rates": rates})
}
