package service

import (
	"context"

	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/repository"
)

// BookingService exposes a user's reservations.
type BookingService struct {
	bookings repository.BookingRepository
}

// NewBookingService builds the service.
func NewBookingService(bookings repository.BookingRepository) *BookingService {
	return &BookingService{bookings: bookings}
}

// ListForUser returns the bookings owned by userID.
func (s *BookingService) ListForUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings, nil
}
