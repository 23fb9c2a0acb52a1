package http

import (
	"log"

	"github.com/Maxito7/booking_gateway/internal/application"
	"github.com/gofiber/fiber/v2"
)

type RoomHandler struct {
	service *application.RoomService
}

func NewRoomHandler(service *application.RoomService) *RoomHandler {
	return &RoomHandler{
		service: service,
	}
}

// GetRooms lists every room category, with availability and pricing merged
// in when a date range is supplied.
func (h *RoomHandler) GetRooms(c *fiber.Ctx) error {
	stay, err := parseStayQuery(c)
	if err != nil {
		return respondError(c, err)
	}

	rooms, err := h.service.ListRooms(c.UserContext(), stay)
	if err != nil {
		log.Printf("Error listing rooms: %v", err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"rooms": rooms})
}

// GetRoomByID returns one room view or 404 when the id is not in the
// current catalog.
func (h *RoomHandler) GetRoomByID(c *fiber.Ctx) error {
	stay, err := parseStayQuery(c)
	if err != nil {
		return respondError(c, err)
	}

	room, err := h.service.GetRoom(c.UserContext(), c.Params("id"), stay)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"room": room})
}
