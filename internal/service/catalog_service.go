package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/repository"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

// CatalogService serves hotels and their rooms.
type CatalogService struct {
	hotels repository.HotelRepository
	rooms  repository.RoomRepository
}

// NewCatalogService builds the service.
func NewCatalogService(hotels repository.HotelRepository, rooms repository.RoomRepository) *CatalogService {
	return &CatalogService{hotels: hotels, rooms: rooms}
}

// ListHotels returns hotels matching filter; an empty filter lists everything.
func (s *CatalogService) ListHotels(ctx context.Context, filter domain.HotelFilter) ([]domain.Hotel, error) {
	hotels, err := s.hotels.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if hotels == nil {
		hotels = []domain.Hotel{}
	}
	return hotels, nil
}

// GetHotel returns a single hotel.
func (s *CatalogService) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	hotel, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("hotel", map[string]any{"hotel_id": id})
		}
		return nil, err
	}
	return hotel, nil
}

// ListRooms returns the rooms of an existing hotel.
func (s *CatalogService) ListRooms(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	if _, err := s.GetHotel(ctx, hotelID); err != nil {
		return nil, err
	}
	rooms, err := s.rooms.ListByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if rooms == nil {
		rooms = []domain.Room{}
	}
	return rooms, nil
}
