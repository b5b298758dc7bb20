// Package common defines sentinel errors shared across service layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Auth errors (invalid, expired or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
