package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/booking-service/internal/domain"
)

// RoomRepository reads room types.
type RoomRepository interface {
	ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error)
}

type roomRepository struct {
	pool *pgxpool.Pool
}

// NewRoomRepository returns a Postgres-backed implementation.
func NewRoomRepository(pool *pgxpool.Pool) RoomRepository {
	return &roomRepository{pool: pool}
}

func (r *roomRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	const query = `
        SELECT id, hotel_id, name, description, price, services, quantity, image_id
        FROM rooms WHERE hotel_id=$1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Room
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(
			&room.ID,
			&room.HotelID,
			&room.Name,
			&room.Description,
			&room.Price,
			&room.Services,
			&room.Quantity,
			&room.ImageID,
		); err != nil {
			return nil, err
		}
		result = append(result, room)
	}
	return result, rows.Err()
}
