package http

import (
	"errors"
	"strconv"

	"github.com/Maxito7/booking_gateway/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// respondError maps the error taxonomy onto HTTP statuses: validation 400,
// not found 404, workflow 409, upstream 502.
func respondError(c *fiber.Ctx, err error) error {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Error()})
	}

	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	var workflowErr *domain.WorkflowError
	if errors.As(err, &workflowErr) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": workflowErr.Error()})
	}

	var upstreamErr *domain.UpstreamError
	if errors.As(err, &upstreamErr) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": upstreamErr.Error()})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// parseStayQuery reads the optional startUtc/endUtc/adults/children query
// parameters. Both instants must be present for a stay to be considered
// requested; occupancy defaults to 2 adults, 0 children.
func parseStayQuery(c *fiber.Ctx) (*domain.StayQuery, error) {
	startUTC := c.Query("startUtc")
	endUTC := c.Query("endUtc")

	if startUTC == "" && endUTC == "" {
		return nil, nil
	}
	if startUTC == "" || endUTC == "" {
		return nil, domain.NewValidationError("startUtc/endUtc", "must both be present")
	}

	adults, err := strconv.Atoi(c.Query("adults", "2"))
	if err != nil {
		return nil, domain.NewValidationError("adults", "must be an integer")
	}
	children, err := strconv.Atoi(c.Query("children", "0"))
	if err != nil {
		return nil, domain.NewValidationError("children", "must be an integer")
	}

	return &domain.StayQuery{
		StartUTC: startUTC,
		EndUTC:   endUTC,
		Adults:   adults,
		Children: children,
	}, nil
}
