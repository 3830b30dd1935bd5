package reports

import (
	"fmt"
	"strings"

	apperrors "github.com/xyz-asif/dropwatch/pkg/errors"
)

// Re-exported so callers of this package need not import pkg/errors.
var (
	ErrNotFound           = apperrors.ErrNotFound
	ErrValidation         = apperrors.ErrValidation
	ErrUnavailable        = apperrors.ErrUnavailable
	ErrDuplicateReference = apperrors.ErrDuplicateReference
	ErrStaleHandle        = apperrors.ErrStaleHandle
	ErrInvalidTransition  = apperrors.ErrInvalidTransition
)

// InvalidTransitionError names the rejected transition.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	if e.From.Terminal() {
		return fmt.Sprintf("cannot change status from %q to %q: %q is final", e.From, e.To, e.From)
	}
	return fmt.Sprintf("cannot change status from %q to %q", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

// FieldError is one rejected submission field.
type FieldError struct {
	Field   string `json:"field" example:"contact"`
	Message string `json:"message" example:"must be a valid email address"`
}

// ValidationError collects every rejected field of a submission.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
