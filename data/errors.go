package data

import (
	"errors"
	"fmt"
)

// Typed failures the HTTP boundary maps onto status codes. Store methods
// wrap these with %w so callers branch with errors.Is.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("conflict")
	ErrDuplicate = errors.New("already exists")
)

// ValidationError reports user-correctable bad input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
