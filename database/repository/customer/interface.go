// File: database/repository/customer/interface.go
package customerRepo

import (
	"context"

	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CustomerRepository exposes the customer profile and its booking-stats
// projection. IncrementStats is a fire-and-forget projection update, not
// required for scheduling correctness.
type CustomerRepository interface {
	GetByID(ctx context.Context, customerID string) (*models.Customer, error)
	IncrementStats(ctx context.Context, customerID, bookingDate string) error
	EnsureIndexes() error
}

type mongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo constructs a new MongoDB CustomerRepository.
func NewMongoCustomerRepo() CustomerRepository {
	return &mongoCustomerRepo{
		coll: database.DB().Collection("customers"),
	}
}
