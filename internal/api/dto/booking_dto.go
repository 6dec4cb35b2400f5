package dto

import "github.com/spec-kit/booking-service/internal/domain"

const dateLayout = "2006-01-02"

// BookingResponse is the public view of a booking.
type BookingResponse struct {
	ID        int64  `json:"id"`
	RoomID    *int64 `json:"room_id"`
	UserID    *int64 `json:"user_id"`
	DateFrom  string `json:"date_from"`
	DateTo    string `json:"date_to"`
	Price     int    `json:"price"`
	TotalCost int    `json:"total_cost"`
	TotalDays int    `json:"total_days"`
}

// NewBookingListResponse maps domain bookings.
func NewBookingListResponse(bookings []domain.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, BookingResponse{
			ID:        b.ID,
			RoomID:    b.RoomID,
			UserID:    b.UserID,
			DateFrom:  b.DateFrom.Format(dateLayout),
			DateTo:    b.DateTo.Format(dateLayout),
			Price:     b.Price,
			TotalCost: b.TotalCost,
			TotalDays: b.TotalDays,
		})
	}
	return result
}
