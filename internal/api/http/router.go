package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/booking-service/internal/api/http/handlers"
	"github.com/spec-kit/booking-service/internal/auth"
	"github.com/spec-kit/booking-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Hotels         *handlers.HotelsHandler
	Bookings       *handlers.BookingsHandler
	AuthMiddleware *auth.AuthMiddleware
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	if cfg.Health != nil {
		app.Get("/health/live", cfg.Health.Live)
		app.Get("/health/ready", cfg.Health.Ready)
	}
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)
	authGroup.Post("/logout", cfg.Users.Logout)

	session := cfg.AuthMiddleware.Handle
	authGroup.Get("/me", session, cfg.Users.Me)
	authGroup.Get("/all", session, auth.RequireRole(auth.RoleAdmin), cfg.Users.All)

	hotels := app.Group("/hotels")
	hotels.Get("", cfg.Hotels.List)
	hotels.Get("/:hotel_id", cfg.Hotels.Get)
	hotels.Get("/:hotel_id/rooms", cfg.Hotels.Rooms)

	app.Get("/bookings", session, cfg.Bookings.List)
}
