package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/domain"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	User *domain.User
}

// AuthMiddleware validates session cookies and loads principals.
type AuthMiddleware struct {
	validator *Validator
	cookie    SessionCookie
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(validator *Validator, cookie SessionCookie) *AuthMiddleware {
	return &AuthMiddleware{validator: validator, cookie: cookie}
}

// Handle enforces authentication for protected routes. The resolved user is
// stored in fiber locals and in the request context for downstream handlers.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	user, err := m.validator.Validate(c.UserContext(), m.cookie.Read(c))
	if err != nil {
		return err
	}

	c.Locals(principalKey, &Principal{User: user})
	c.SetUserContext(ContextWithUser(c.UserContext(), user))
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok && principal.User != nil
}
