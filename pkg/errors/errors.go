// ================== pkg/errors/errors.go =================
package errors

import "errors"

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")

	// Backing table failures. ErrUnavailable is transient and surfaced as "try again".
	ErrUnavailable        = errors.New("report store unavailable")
	ErrDuplicateReference = errors.New("reference already exists")
	ErrStaleHandle        = errors.New("report was modified elsewhere")

	ErrInvalidTransition = errors.New("invalid status transition")
)
