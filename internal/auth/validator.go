package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/booking-service/internal/domain"
)

// UserLookup resolves a token subject to a stored user.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Validator turns a presented token into the user it was issued for.
type Validator struct {
	tokens *TokenManager
	users  UserLookup
}

// NewValidator constructs a validator.
func NewValidator(tokens *TokenManager, users UserLookup) *Validator {
	return &Validator{tokens: tokens, users: users}
}

// Validate runs presence, signature, expiry and subject checks and then loads
// the user. Every call decodes the token and hits the lookup once.
func (v *Validator) Validate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := v.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, newError(KindSubjectMissing, err)
	}

	user, err := v.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubjectMissing
		}
		return nil, fmt.Errorf("resolve token subject: %w", err)
	}
	return user, nil
}
