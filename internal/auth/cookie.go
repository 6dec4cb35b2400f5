package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/config"
)

// DefaultCookieName is the session cookie used when none is configured.
const DefaultCookieName = "booking_access_token"

// SessionCookie carries the session token between client and server.
type SessionCookie struct {
	Name     string
	Secure   bool
	SameSite string
}

// NewSessionCookie builds the carrier from auth configuration.
func NewSessionCookie(cfg config.AuthConfig) SessionCookie {
	name := cfg.CookieName
	if name == "" {
		name = DefaultCookieName
	}
	sameSite := cfg.CookieSameSite
	if sameSite == "" {
		sameSite = fiber.CookieSameSiteLaxMode
	}
	return SessionCookie{Name: name, Secure: cfg.CookieSecure, SameSite: sameSite}
}

// Set writes the token cookie, expiring together with the token.
func (s SessionCookie) Set(c *fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     s.Name,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   s.Secure,
		SameSite: s.SameSite,
	})
}

// Clear instructs the client to drop the token cookie.
func (s SessionCookie) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     s.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0).UTC(),
		HTTPOnly: true,
		Secure:   s.Secure,
		SameSite: s.SameSite,
	})
}

// Read returns the raw token presented by the client, or "".
func (s SessionCookie) Read(c *fiber.Ctx) string {
	return c.Cookies(s.Name)
}
