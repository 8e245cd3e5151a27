package models

import "time"

// Service is a bookable offering. Duration and Price are the values copied
// onto bookings at creation time.
type Service struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"provider_id" json:"provider_id"`
	Name       string    `bson:"name" json:"name"`
	Duration   int       `bson:"duration" json:"duration"` // minutes
	Price      float64   `bson:"price" json:"price"`
	Active     bool      `bson:"active" json:"active"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
