package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/booking-service/internal/domain"
)

// HotelRepository reads the hotel catalog.
type HotelRepository interface {
	List(ctx context.Context, filter domain.HotelFilter) ([]domain.Hotel, error)
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

type hotelRepository struct {
	pool *pgxpool.Pool
}

// NewHotelRepository returns a Postgres-backed implementation.
func NewHotelRepository(pool *pgxpool.Pool) HotelRepository {
	return &hotelRepository{pool: pool}
}

func (r *hotelRepository) List(ctx context.Context, filter domain.HotelFilter) ([]domain.Hotel, error) {
	query, args := hotelListQuery(filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Hotel
	for rows.Next() {
		hotel, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *hotel)
	}
	return result, rows.Err()
}

func (r *hotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	const query = `
        SELECT id, name, location, services, rooms_quantity, image_id
        FROM hotels WHERE id=$1`
	return scanHotel(r.pool.QueryRow(ctx, query, id))
}

// hotelListQuery matches location as a plain substring; LIKE wildcards in
// the filter have no special meaning.
func hotelListQuery(filter domain.HotelFilter) (string, []any) {
	base := `SELECT id, name, location, services, rooms_quantity, image_id FROM hotels`
	clauses := []string{"1=1"}
	args := []any{}

	if location := strings.TrimSpace(filter.Location); location != "" {
		args = append(args, strings.ToLower(location))
		clauses = append(clauses, fmt.Sprintf("strpos(LOWER(location), $%d) > 0", len(args)))
	}

	return fmt.Sprintf(`%s WHERE %s ORDER BY id`, base, strings.Join(clauses, " AND ")), args
}

func scanHotel(row pgx.Row) (*domain.Hotel, error) {
	var hotel domain.Hotel
	if err := row.Scan(
		&hotel.ID,
		&hotel.Name,
		&hotel.Location,
		&hotel.Services,
		&hotel.RoomsQuantity,
		&hotel.ImageID,
	); err != nil {
		return nil, err
	}
	return &hotel, nil
}
