// File: services/scheduling/errors.go
package scheduling

import (
	"fmt"

	"slotify/models"
)

// ValidationError reports malformed input: a bad interval, a duration below
// the slot granularity, a creation date in the past. Raised before any
// conflict check runs.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// ConflictError reports that a proposed interval overlaps existing
// non-cancelled bookings. It carries every colliding booking so the caller
// can offer alternatives; it is never auto-resolved or retried.
type ConflictError struct {
	Conflicts []models.BookingRef
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("proposed interval overlaps %d existing booking(s)", len(e.Conflicts))
}

// NotFoundError reports that a referenced provider, customer, service or
// booking does not exist in the acting scope.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// InvalidTransitionError reports a status change the state machine does not
// permit.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}
