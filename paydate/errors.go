/*
errors.go - Error types for the paydate engine

ERROR CATEGORIES:
  1. Usage errors - bad model token, unparsable date, negative count
  2. Consistency errors - adjustment could not find a valid day

USAGE:
  Callers match with errors.Is / errors.As:

    if errors.Is(err, paydate.ErrInvalidModel) {
        ...
    }

SEE ALSO:
  - engine.go: Returns these errors
  - api/handlers.go: Maps them to HTTP status codes
*/
package paydate

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidModel is returned when a model token is not MONTHLY,
	// BIWEEKLY or WEEKLY.
	ErrInvalidModel = errors.New("invalid paydate model")

	// ErrUnparsableDate is returned when a date string is not YYYY-MM-DD.
	ErrUnparsableDate = errors.New("unparsable date")

	// ErrInvalidCount is returned when a negative number of paydates is requested.
	ErrInvalidCount = errors.New("invalid paydate count")

	// ErrAdjustmentLimit is returned when adjustment walks more days than the
	// engine's limit without reaching a valid paydate. Only a holiday set
	// covering a long contiguous span triggers it.
	ErrAdjustmentLimit = errors.New("adjustment limit exceeded")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidModelError names the rejected token.
type InvalidModelError struct {
	Value string
}

func (e *InvalidModelError) Error() string {
	return fmt.Sprintf("invalid paydate model %q (want MONTHLY, BIWEEKLY or WEEKLY)", e.Value)
}

func (e *InvalidModelError) Unwrap() error {
	return ErrInvalidModel
}

// DateParseError carries the rejected input and the underlying parse failure.
type DateParseError struct {
	Input string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("unparsable date %q (use YYYY-MM-DD)", e.Input)
}

func (e *DateParseError) Unwrap() []error {
	return []error{ErrUnparsableDate, e.Err}
}

// AdjustmentLimitError reports where a runaway adjustment started.
type AdjustmentLimitError struct {
	Start Date
	Steps int
}

func (e *AdjustmentLimitError) Error() string {
	return fmt.Sprintf("no valid paydate within %d days of %s", e.Steps, e.Start)
}

func (e *AdjustmentLimitError) Unwrap() error {
	return ErrAdjustmentLimit
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidModel) ||
		errors.Is(err, ErrUnparsableDate) ||
		errors.Is(err, ErrInvalidCount)
}
