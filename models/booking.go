package models

import "time"

// Booking status values.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Booking represents an appointment record. Duration and Price are copied
// from the service at creation time so later service edits do not alter
// historical bookings.
type Booking struct {
	ID         string  `bson:"id" json:"id"`
	ProviderID string  `bson:"provider_id" json:"provider_id"`
	CustomerID string  `bson:"customer_id" json:"customer_id"`
	ServiceID  string  `bson:"service_id" json:"service_id"`
	Date       string  `bson:"date" json:"date"`         // "YYYY-MM-DD"
	Time       string  `bson:"time" json:"time"`         // start clock time, "HH:MM"
	Duration   int     `bson:"duration" json:"duration"` // minutes
	Price      float64 `bson:"price" json:"price"`
	Status     string  `bson:"status" json:"status"`

	Interval         TimeInterval  `bson:"interval" json:"interval"`
	OriginalInterval *TimeInterval `bson:"original_interval,omitempty" json:"original_interval,omitempty"`

	// HasConflicts/ConflictsWith are a denormalized snapshot of conflict
	// state at last save, kept for display. The conflict detector is the
	// authority at every decision point.
	HasConflicts  bool     `bson:"has_conflicts" json:"has_conflicts"`
	ConflictsWith []string `bson:"conflicts_with,omitempty" json:"conflicts_with,omitempty"`

	Reschedule *RescheduleMetadata `bson:"reschedule,omitempty" json:"reschedule,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// RescheduleMetadata records who moved a booking, when, and why.
type RescheduleMetadata struct {
	RescheduledAt time.Time `bson:"rescheduled_at" json:"rescheduled_at"`
	RescheduledBy string    `bson:"rescheduled_by" json:"rescheduled_by"`
	Reason        string    `bson:"reason,omitempty" json:"reason,omitempty"`
}

// BookingRef identifies a colliding booking in a conflict report.
type BookingRef struct {
	ID       string       `json:"id"`
	Interval TimeInterval `json:"interval"`
}

// IsTerminal reports whether no further status transitions are possible.
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}
