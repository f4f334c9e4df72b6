// Package handler implements the HTTP endpoints.  Handlers bundle the
// repositories they need, assume JWT middleware has already run on
// protected routes, and reply with echo.Map error bodies.
package handler

import (
	"errors"

	"github.com/labstack/echo/v4"
)

// getStudentID extracts the authenticated student number placed in the
// context by the JWT middleware.
func getStudentID(c echo.Context) (string, error) {
	if s, ok := c.Get("student_id").(string); ok && s != "" {
		return s, nil
	}
	return "", errors.New("missing student_id in context")
}
