package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/api/dto"
	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/service"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

// HotelsHandler exposes the hotel catalog.
type HotelsHandler struct {
	catalog *service.CatalogService
}

// NewHotelsHandler constructs handler.
func NewHotelsHandler(catalog *service.CatalogService) *HotelsHandler {
	return &HotelsHandler{catalog: catalog}
}

// List handles GET /hotels.
func (h *HotelsHandler) List(c *fiber.Ctx) error {
	hotels, err := h.catalog.ListHotels(c.UserContext(), domain.HotelFilter{Location: c.Query("location")})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewHotelListResponse(hotels))
}

// Get handles GET /hotels/:hotel_id.
func (h *HotelsHandler) Get(c *fiber.Ctx) error {
	id, err := hotelID(c)
	if err != nil {
		return err
	}
	hotel, err := h.catalog.GetHotel(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewHotelResponse(hotel))
}

// Rooms handles GET /hotels/:hotel_id/rooms.
func (h *HotelsHandler) Rooms(c *fiber.Ctx) error {
	id, err := hotelID(c)
	if err != nil {
		return err
	}
	rooms, err := h.catalog.ListRooms(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewRoomListResponse(rooms))
}

func hotelID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("hotel_id")
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid hotel id", map[string]any{"hotel_id": c.Params("hotel_id")})
	}
	return int64(id), nil
}
