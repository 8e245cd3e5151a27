// File: handlers/bundle.go
package handlers

import (
	providerRepoPkg "slotify/database/repository/provider"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	ProviderRepo providerRepoPkg.ProviderRepository

	// Booking lifecycle endpoints
	CreateBookingHandler      gin.HandlerFunc
	GetBookingHandler         gin.HandlerFunc
	CheckConflictsHandler     gin.HandlerFunc
	UpdateStatusHandler       gin.HandlerFunc
	RescheduleBookingHandler  gin.HandlerFunc
	CancelBookingHandler      gin.HandlerFunc
	RecomputeConflictsHandler gin.HandlerFunc

	// Availability endpoints
	GetSlotsHandler           gin.HandlerFunc
	GetRecommendationsHandler gin.HandlerFunc

	// Provider endpoints
	GetWorkingHoursHandler    gin.HandlerFunc
	UpdateWorkingHoursHandler gin.HandlerFunc
	ListServicesHandler       gin.HandlerFunc
}

// NewHandlerBundle wires the concrete handlers into a bundle for route
// registration.
func NewHandlerBundle(booking *BookingHandler, availability *AvailabilityHandler, provider *ProviderHandler) *HandlerBundle {
	return &HandlerBundle{
		ProviderRepo: provider.Providers,

		CreateBookingHandler:      booking.CreateBookingHandler,
		GetBookingHandler:         booking.GetBookingHandler,
		CheckConflictsHandler:     booking.CheckConflictsHandler,
		UpdateStatusHandler:       booking.UpdateStatusHandler,
		RescheduleBookingHandler:  booking.RescheduleBookingHandler,
		CancelBookingHandler:      booking.CancelBookingHandler,
		RecomputeConflictsHandler: booking.RecomputeConflictsHandler,

		GetSlotsHandler:           availability.GetSlotsHandler,
		GetRecommendationsHandler: availability.GetRecommendationsHandler,

		GetWorkingHoursHandler:    provider.GetWorkingHoursHandler,
		UpdateWorkingHoursHandler: provider.UpdateWorkingHoursHandler,
		ListServicesHandler:       provider.ListServicesHandler,
	}
}
