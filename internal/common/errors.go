// Package common defines shared constants and sentinel errors used across
// the sportactive client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Transport-level errors.
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")

	// Validation errors, raised before any remote call is made.
	ErrValidation = errors.New("validation error")

	// Session errors.
	ErrNoSession      = errors.New("no stored session")
	ErrSessionExpired = errors.New("session expired")
)
