// Package common defines shared constants and sentinel errors used across
// client and server layers of itemvault. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Auth and policy errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Malformed or rejected input. Services wrap this with a reason,
	// e.g. fmt.Errorf("%w: title must not be empty", ErrorValidation).
	ErrorValidation = errors.New("validation error")
)
