package middleware

// identity.go holds the shared helper that derives a key-safe caller
// identity for the cache and rate-limit middleware.  Unauthenticated
// requests all share the "guest" identity.

import "github.com/labstack/echo/v4"

// callerIdentity returns the authenticated student number from the
// context, or "guest" when the request carries no valid token.
func callerIdentity(c echo.Context) string {
	if v := c.Get("student_id"); v != nil {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return "guest"
}
