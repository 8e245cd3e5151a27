package models

import "time"

// Customer holds the customer profile plus a denormalized booking-stats
// projection maintained by the scheduling core on each successful create.
type Customer struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Email           string    `bson:"email" json:"email,omitempty"`
	Phone           string    `bson:"phone,omitempty" json:"phone,omitempty"`
	BookingCount    int       `bson:"booking_count" json:"booking_count"`
	LastBookingDate string    `bson:"last_booking_date,omitempty" json:"last_booking_date,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
