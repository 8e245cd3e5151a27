// File: services/scheduling/interface.go
package scheduling

import (
	"context"
	"time"

	bookingRepo "slotify/database/repository/booking"
	customerRepo "slotify/database/repository/customer"
	providerRepo "slotify/database/repository/provider"
	serviceRepo "slotify/database/repository/service"
	"slotify/models"
	"slotify/services/notification"

	"github.com/go-redis/redis/v8"
)

// SlotGranularity is the fixed step at which candidate slots are generated,
// matching how providers configure working hours.
const SlotGranularity = 30 * time.Minute

// CreateBookingRequest carries the inputs of a booking request (public or
// authenticated).
type CreateBookingRequest struct {
	ProviderID string `json:"provider_id" binding:"required"`
	CustomerID string `json:"customer_id" binding:"required"`
	ServiceID  string `json:"service_id" binding:"required"`
	Date       string `json:"date" binding:"required"` // "YYYY-MM-DD"
	Time       string `json:"time" binding:"required"` // "HH:MM"
}

// ConflictCheckRequest is a dry-run conflict query; it performs no write.
type ConflictCheckRequest struct {
	ProviderID       string `json:"provider_id" binding:"required"`
	Date             string `json:"date" binding:"required"`
	Time             string `json:"time" binding:"required"`
	Duration         int    `json:"duration" binding:"required"` // minutes
	ExcludeBookingID string `json:"exclude_booking_id,omitempty"`
}

// ConflictReport is the result of a conflict query.
type ConflictReport struct {
	HasConflicts bool                `json:"has_conflicts"`
	Conflicts    []models.BookingRef `json:"conflicts,omitempty"`
}

// RescheduleRequest moves a booking to a new start; the duration is
// unchanged.
type RescheduleRequest struct {
	BookingID string
	NewStart  time.Time
	ActorID   string
	Reason    string
}

// RecommendationRequest asks for ranked candidate slots.
type RecommendationRequest struct {
	ProviderID    string
	CustomerID    string
	ServiceID     string
	Date          string
	PreferredTime string // optional, "HH:MM"
}

// SchedulingService is the scheduling core: availability discovery, conflict
// detection, the booking lifecycle and slot recommendations.
type SchedulingService interface {
	GetAvailableSlots(ctx context.Context, providerID, date string, durationMin int) (*models.DayAvailability, error)
	CheckConflicts(ctx context.Context, req ConflictCheckRequest) (*ConflictReport, error)
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID, newStatus string) (*models.Booking, error)
	RescheduleBooking(ctx context.Context, req RescheduleRequest) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	GetRecommendations(ctx context.Context, req RecommendationRequest) ([]models.ScoredSlot, error)
	RecomputeConflictSnapshot(ctx context.Context, bookingID string) (*models.Booking, error)
}

// DefaultSchedulingService is the production implementation. Notifier and
// Cache are optional; a nil Notifier disables eventing and a nil Cache
// disables the availability read cache.
type DefaultSchedulingService struct {
	BookingRepo  bookingRepo.BookingRepository
	ProviderRepo providerRepo.ProviderRepository
	CustomerRepo customerRepo.CustomerRepository
	ServiceRepo  serviceRepo.ServiceRepository
	Notifier     notification.Sink
	Cache        *redis.Client
	CacheTTL     time.Duration

	locks providerLocks
}
