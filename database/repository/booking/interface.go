// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is the persistence contract consumed by the scheduling
// core. GetActiveBookings excludes cancelled bookings; GetCustomerHistory
// returns completed bookings only, most recent first.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	GetActiveBookings(ctx context.Context, providerID, date string) ([]models.Booking, error)
	GetCustomerHistory(ctx context.Context, customerID string, limit int) ([]models.Booking, error)
	CountCompletedByTimeOfDay(ctx context.Context, providerID string) (map[string]int, error)
	UpdateStatus(ctx context.Context, bookingID, status string) error
	UpdateSchedule(ctx context.Context, booking *models.Booking) error
	UpdateConflictSnapshot(ctx context.Context, bookingID string, hasConflicts bool, conflictsWith []string) error
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}
