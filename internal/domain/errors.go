package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound signals a lookup miss (unknown room id, expired draft).
var ErrNotFound = errors.New("not found")

// ValidationError reports bad client input. It is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// UpstreamError carries the HTTP status and raw body of a failed PMS or
// booking-engine call. It bubbles unmodified to the caller except for the
// availability fetch, which absorbs it.
type UpstreamError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// WorkflowError reports a rejected booking-workflow transition: an unmet
// guard or a re-entrant commit attempt.
type WorkflowError struct {
	Step   BookingStep
	Reason string
}

func (e *WorkflowError) Error() string {
	return fmt.Sprintf("workflow: cannot advance from %q: %s", e.Step, e.Reason)
}
