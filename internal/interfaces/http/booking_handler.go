package http

import (
	"log"

	"github.com/Maxito7/booking_gateway/internal/application"
	"github.com/gofiber/fiber/v2"
)

type BookingHandler struct {
	workflow *application.BookingWorkflow
}

func NewBookingHandler(workflow *application.BookingWorkflow) *BookingHandler {
	return &BookingHandler{
		workflow: workflow,
	}
}

type startDraftRequest struct {
	RoomID string `json:"roomId"`
}

// StartDraft opens a booking draft for a room.
func (h *BookingHandler) StartDraft(c *fiber.Ctx) error {
	var req startDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	draft, err := h.workflow.StartDraft(c.UserContext(), req.RoomID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(draft.View())
}

// GetDraft returns the current draft state.
func (h *BookingHandler) GetDraft(c *fiber.Ctx) error {
	draft, err := h.workflow.GetDraft(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(draft.View())
}

type submitDatesRequest struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
}

// SubmitDates advances the draft from the dates step to the rate step.
func (h *BookingHandler) SubmitDates(c *fiber.Ctx) error {
	var req submitDatesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	draft, err := h.workflow.SubmitDates(c.UserContext(), c.Params("id"), req.CheckIn, req.CheckOut, req.Adults, req.Children)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(draft.View())
}

type selectRateRequest struct {
	RateID string `json:"rateId"`
}

// SelectRate advances the draft from the rate step to the details step.
func (h *BookingHandler) SelectRate(c *fiber.Ctx) error {
	var req selectRateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	draft, err := h.workflow.SelectRate(c.Params("id"), req.RateID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(draft.View())
}

type submitDetailsRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// SubmitDetails advances the draft from the details step to confirm.
func (h *BookingHandler) SubmitDetails(c *fiber.Ctx) error {
	var req submitDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	draft, err := h.workflow.SubmitDetails(c.Params("id"), req.FirstName, req.LastName, req.Email)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(draft.View())
}

// Back moves the draft one step backwards.
func (h *BookingHandler) Back(c *fiber.Ctx) error {
	draft, err := h.workflow.Back(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(draft.View())
}

// Commit runs the two-call booking sequence. The resulting draft state is
// returned either way; on failure the mapped upstream/workflow status comes
// with it.
func (h *BookingHandler) Commit(c *fiber.Ctx) error {
	draft, err := h.workflow.Commit(c.UserContext(), c.Params("id"))
	if err != nil {
		if draft == nil {
			return respondError(c, err)
		}
		log.Printf("Booking commit for draft %s failed: %v", c.Params("id"), err)
		view := draft.View()
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error(), "draft": view})
	}

	return c.JSON(draft.View())
}

// Reset starts a new booking on a committed draft.
func (h *BookingHandler) Reset(c *fiber.Ctx) error {
	draft, err := h.workflow.Reset(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(draft.View())
}

// Discard drops a draft.
func (h *BookingHandler) Discard(c *fiber.Ctx) error {
	h.workflow.DiscardDraft(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
