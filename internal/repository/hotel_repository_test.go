package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/booking-service/internal/domain"
)

func TestHotelListQuery(t *testing.T) {
	query, args := hotelListQuery(domain.HotelFilter{})
	assert.NotContains(t, query, "strpos")
	assert.Empty(t, args)

	query, args = hotelListQuery(domain.HotelFilter{Location: "  Altai "})
	assert.Contains(t, query, "strpos(LOWER(location), $1) > 0")
	assert.NotContains(t, query, "LIKE")
	assert.Equal(t, []any{"altai"}, args)
}

func TestHotelListQueryKeepsWildcardsLiteral(t *testing.T) {
	for _, location := range []string{"%", "_", "a%b"} {
		query, args := hotelListQuery(domain.HotelFilter{Location: location})
		assert.NotContains(t, query, "LIKE", location)
		assert.Equal(t, []any{location}, args, location)
	}
}
