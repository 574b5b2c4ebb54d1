/*
errors.go - Error types for the wage engine

PURPOSE:
  All calculation errors in one place. There are exactly two error kinds:
  a time string failing the HH:MM pattern, and a rate that is not a
  positive number. Both are terminal for the calculation attempt and are
  returned as values - the engine never panics across its boundary.

USAGE:
  Callers match either the sentinel or the structured form:

    if errors.Is(err, wage.ErrInvalidTimeFormat) { ... }

    var timeErr *wage.InvalidTimeError
    if errors.As(err, &timeErr) {
        // timeErr.Field is "start" or "end"
    }

SEE ALSO:
  - engine.go: Produces these errors
  - api/handlers.go: Maps them to HTTP status codes
*/
package wage

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidTimeFormat is returned when a time string does not match
	// the strict HH:MM 24-hour pattern.
	ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

	// ErrInvalidRate is returned when the rate is not a number or is
	// zero or negative.
	ErrInvalidRate = errors.New("invalid rate: must be a positive number")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// Shift input field names, used by InvalidTimeError and the API layer.
const (
	FieldStart = "start"
	FieldEnd   = "end"
)

// InvalidTimeError reports which shift field failed time validation.
type InvalidTimeError struct {
	Field string // FieldStart or FieldEnd
	Input string
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("%s time %q: %v", e.Field, e.Input, ErrInvalidTimeFormat)
}

func (e *InvalidTimeError) Unwrap() error {
	return ErrInvalidTimeFormat
}

// InvalidRateError reports a rate that failed validation.
type InvalidRateError struct {
	Input string
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("rate %q: %v", e.Input, ErrInvalidRate)
}

func (e *InvalidRateError) Unwrap() error {
	return ErrInvalidRate
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
// Every engine error currently is; the helper keeps the HTTP layer's
// 400-vs-500 mapping explicit.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidTimeFormat) ||
		errors.Is(err, ErrInvalidRate)
}
