package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/event-seating/internal/config"     // config carries the rate limit settings
	"github.com/iliyamo/event-seating/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/event-seating/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// The health endpoint lets load balancers and monitoring verify that
	// the service is up.
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the reservation-form endpoints.  They carry
// no authentication: the form is open to every visitor.  The Redis
// token bucket guards the mutating routes so one client cannot flood
// the inventory.
func RegisterPublic(e *echo.Echo, r *handler.ReservationHandler, s *handler.SeatHandler, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	limit := middleware.NewTokenBucket(rlCfg, rdb)

	// Room geometry, fixed for the event.
	e.GET("/v1/layout", s.Layout)
	// Current occupancy for rendering the floor plan; ?free=true lists
	// the free seats instead.
	e.GET("/v1/seat-statuses", s.Statuses)
	// Full reservation list, shown on the form's summary view.
	e.GET("/v1/reservations", r.List)
	// Create a reservation: auto-assigned by pack or from an explicit
	// seat selection.
	e.POST("/v1/reservations", r.Create, limit)
	// Preview which seats a pack would get right now, without holding them.
	e.POST("/v1/seats/assign", s.AssignPreview, limit)
}

// RegisterAdmin registers the admin-panel endpoints under /v1/admin.
// Tokens are issued by the event back office; this service only
// verifies them and requires the ADMIN role.
func RegisterAdmin(e *echo.Echo, r *handler.ReservationHandler, s *handler.SeatHandler, jwtSecret string) {
	g := e.Group("/v1/admin")
	// Verify the bearer token before any admin handler runs.
	g.Use(middleware.JWTAuth(jwtSecret))
	// Only back-office administrators may edit the inventory.
	g.Use(middleware.RequireRole("ADMIN"))

	// Edit a reservation: new contact fields, new pack, optional pinned seat.
	g.PUT("/reservations/:id", r.Update)
	// Delete a reservation and free exactly its seats.
	g.DELETE("/reservations/:id", r.Delete)
	// Direct seat operations for the floor-plan editor.
	g.POST("/seats/book", s.Book)
	g.POST("/seats/unbook", s.Unbook)
	g.POST("/seats/:table/:seat/toggle", s.Toggle)
}
