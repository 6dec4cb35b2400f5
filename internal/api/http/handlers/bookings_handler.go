package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/api/dto"
	"github.com/spec-kit/booking-service/internal/auth"
	"github.com/spec-kit/booking-service/internal/service"
)

// BookingsHandler exposes the caller's reservations.
type BookingsHandler struct {
	bookings *service.BookingService
}

// NewBookingsHandler constructs handler.
func NewBookingsHandler(bookings *service.BookingService) *BookingsHandler {
	return &BookingsHandler{bookings: bookings}
}

// List handles GET /bookings.
func (h *BookingsHandler) List(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c.UserContext())
	if !ok {
		return auth.ErrTokenAbsent
	}
	bookings, err := h.bookings.ListForUser(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewBookingListResponse(bookings))
}
