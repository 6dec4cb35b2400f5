package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/booking-service/internal/domain"
)

const hotelListKeyPrefix = "hotels:list:"

type cachedHotelRepository struct {
	next   HotelRepository
	client redis.UniversalClient
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedHotelRepository caches hotel listings in Redis. Redis failures are
// logged and the call falls through to next. A nil client or zero ttl disables caching.
func NewCachedHotelRepository(next HotelRepository, client redis.UniversalClient, ttl time.Duration, logger *zap.Logger) HotelRepository {
	if client == nil || ttl <= 0 {
		return next
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &cachedHotelRepository{next: next, client: client, ttl: ttl, logger: logger}
}

func (r *cachedHotelRepository) List(ctx context.Context, filter domain.HotelFilter) ([]domain.Hotel, error) {
	key := hotelListKey(filter)

	cached, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var hotels []domain.Hotel
		if jsonErr := json.Unmarshal(cached, &hotels); jsonErr == nil {
			return hotels, nil
		}
		r.logger.Warn("discarding corrupt hotel cache entry", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		r.logger.Warn("hotel cache read failed", zap.String("key", key), zap.Error(err))
	}

	hotels, err := r.next.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(hotels)
	if err != nil {
		return hotels, nil
	}
	if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		r.logger.Warn("hotel cache write failed", zap.String("key", key), zap.Error(err))
	}
	return hotels, nil
}

func (r *cachedHotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	return r.next.GetByID(ctx, id)
}

func hotelListKey(filter domain.HotelFilter) string {
	return hotelListKeyPrefix + strings.ToLower(strings.TrimSpace(filter.Location))
}
