// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/campus-facility-reservation/internal/handler"
	"github.com/iliyamo/campus-facility-reservation/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring systems use this endpoint to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies
// the necessary middleware.  Unauthenticated operations live under
// /v1/auth, while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, r *handler.ReservationHandler, jwtSecret string) {
	// Operations that do not require an existing session: register,
	// login and the two refresh flavors.  Each handler generates or
	// exchanges tokens on its own.
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// /refresh rotates the refresh token; /refresh-access issues a new
	// access token while leaving the refresh token untouched.
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout does not require JWT authentication: possession of the
	// refresh token in the body is the credential.
	g.POST("/logout", a.Logout)

	// Routes on this group require a valid access token.  The JWTAuth
	// middleware runs before every handler registered here.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)

	// Booking endpoints.  Creation re-validates under row locks inside
	// the handler, so no extra middleware is involved here.
	auth.POST("/reservations/meeting", r.CreateMeeting)
	auth.POST("/reservations/seat", r.CreateSeat)
	auth.GET("/reservations", r.ListMine)
	auth.DELETE("/reservations/:id", r.Cancel)
}

// RegisterPublic registers the unauthenticated browse endpoints: room
// and seat catalogs, slot schedules and per-date availability.  These
// return no caller-specific data, so the Redis response cache is
// applied to the whole set when one is configured.
func RegisterPublic(e *echo.Echo, f *handler.FacilityHandler, cache echo.MiddlewareFunc) {
	mws := []echo.MiddlewareFunc{}
	if cache != nil {
		mws = append(mws, cache)
	}
	e.GET("/v1/rooms", f.GetRooms, mws...)
	e.GET("/v1/seats", f.GetSeats, mws...)
	e.GET("/v1/slots", f.GetSlots, mws...)
	e.GET("/v1/availability", f.GetAvailability, mws...)
}
