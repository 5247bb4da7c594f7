// Package services contains the business logic between handlers and
// repositories.
package services

import "errors"

// Domain errors. Handlers translate these to response codes in one place;
// anything else surfaces as a generic request failure without leaking
// internals.
var (
	// ErrInvalidCredentials covers both unknown email and password mismatch,
	// deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("wrong email or password")
	// ErrEmailExists is returned when a signup collides with an existing
	// account, whether found by the pre-check or by the unique index.
	ErrEmailExists = errors.New("email already exists")
	// ErrInvalidRole is returned when a role value is outside the closed set
	ErrInvalidRole = errors.New("role not allowed")
	// ErrValidation is returned on malformed or missing input
	ErrValidation = errors.New("invalid input")
	// ErrNotFound is returned when an owner-scoped record does not exist
	ErrNotFound = errors.New("not found")
)
