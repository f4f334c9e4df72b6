// Package repository implements the data access layer on top of
// database/sql.  Sentinel errors defined here let handlers map failure
// scenarios onto HTTP statuses without inspecting driver errors.
package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist.
// Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the caller attempts an operation on a
// reservation owned by someone else.  Handlers should translate this
// into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrStudentExists is returned when registering a student number that
// is already taken.  Handlers should translate this into 409.
var ErrStudentExists = errors.New("student number already registered")
