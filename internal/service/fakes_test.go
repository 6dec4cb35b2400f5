package service

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/booking-service/internal/domain"
)

type memoryUsers struct {
	mu        sync.Mutex
	byID      map[int64]*domain.User
	nextID    int64
	createErr error
	lookupErr error
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byID: map[int64]*domain.User{}}
}

func (m *memoryUsers) Create(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now().UTC()
	stored := *user
	m.byID[user.ID] = &stored
	return nil
}

func (m *memoryUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	user, ok := m.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	found := *user
	return &found, nil
}

func (m *memoryUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	for _, user := range m.byID {
		if user.Email == email {
			found := *user
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memoryUsers) List(_ context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]domain.User, 0, len(m.byID))
	for id := int64(1); id <= m.nextID; id++ {
		if user, ok := m.byID[id]; ok {
			result = append(result, *user)
		}
	}
	return result, nil
}

type memoryHotels struct {
	hotels []domain.Hotel
}

func (m *memoryHotels) List(_ context.Context, _ domain.HotelFilter) ([]domain.Hotel, error) {
	return m.hotels, nil
}

func (m *memoryHotels) GetByID(_ context.Context, id int64) (*domain.Hotel, error) {
	for i := range m.hotels {
		if m.hotels[i].ID == id {
			return &m.hotels[i], nil
		}
	}
	return nil, pgx.ErrNoRows
}

type memoryRooms struct {
	rooms []domain.Room
}

func (m *memoryRooms) ListByHotel(_ context.Context, hotelID int64) ([]domain.Room, error) {
	var result []domain.Room
	for _, room := range m.rooms {
		if room.HotelID == hotelID {
			result = append(result, room)
		}
	}
	return result, nil
}

type memoryBookings struct {
	bookings []domain.Booking
}

func (m *memoryBookings) ListByUser(_ context.Context, userID int64) ([]domain.Booking, error) {
	var result []domain.Booking
	for _, booking := range m.bookings {
		if booking.UserID != nil && *booking.UserID == userID {
			result = append(result, booking)
		}
	}
	return result, nil
}
