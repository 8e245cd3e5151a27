package routes

import (
	"slotify/handlers"
	"slotify/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking lifecycle.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/bookings")
	{
		booking.POST("", hb.CreateBookingHandler)
		booking.POST("/check-conflicts", hb.CheckConflictsHandler)
		booking.GET("/:id", hb.GetBookingHandler)
		booking.POST("/:id/cancel", hb.CancelBookingHandler)
		booking.POST("/:id/reschedule", hb.RescheduleBookingHandler)

		// Status transitions and snapshot recomputation are provider actions.
		protected := booking.Group("")
		protected.Use(middleware.JWTAuthProviderMiddleware(hb.ProviderRepo))
		protected.PATCH("/:id/status", hb.UpdateStatusHandler)
		protected.POST("/:id/recompute-conflicts", hb.RecomputeConflictsHandler)
	}
}
