// Package common contains shared constants and sentinel errors used across
// shopkeeper components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal      = errors.New("internal error")
	ErrorAlreadyExists = errors.New("already exists")

	// Authenticate fails with the same error for an unknown identifier and
	// for a wrong secret, so callers cannot probe for account existence.
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
