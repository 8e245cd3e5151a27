// File: services/notification/interface.go
package notification

import (
	"context"

	"slotify/models"
)

// Sink receives booking state-change events. The lifecycle manager treats it
// as optional: a nil Sink disables eventing without affecting scheduling
// correctness.
type Sink interface {
	Publish(ctx context.Context, event models.BookingEvent) error
}
