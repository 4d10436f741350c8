package engine

import (
	"errors"

	"github.com/wetonku/go-weton/internal/config"
)

// ValidationError reports an invalid user input. Its reason is a complete,
// human-readable sentence and is surfaced to the user verbatim; inputs are
// rejected, never silently corrected.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// newValidationError wraps a config message constant as a ValidationError.
func newValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrNotLeapDayBirth signals a caller contract violation: the leap-day
// birthday resolver was invoked for a date that is not February 29.
var ErrNotLeapDayBirth = errors.New(config.ErrNotLeapDay)
