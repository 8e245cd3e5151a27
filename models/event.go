package models

import "time"

// Booking event types emitted to the notification sink.
const (
	EventBookingCreated     = "booking:created"
	EventBookingStatus      = "booking:status_changed"
	EventBookingRescheduled = "booking:rescheduled"
	EventBookingCancelled   = "booking:cancelled"
)

// BookingEvent is the payload handed to the notification sink on every
// booking state change.
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	ProviderID string    `json:"provider_id"`
	CustomerID string    `json:"customer_id"`
	Status     string    `json:"status"`
	Date       string    `json:"date"`
	OccurredAt time.Time `json:"occurred_at"`
}
