// File: handlers/availability.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slotify/services/scheduling"
)

// AvailabilityHandler serves slot and recommendation queries for a provider.
type AvailabilityHandler struct {
	Service scheduling.SchedulingService
	Logger  *zap.Logger
}

func NewAvailabilityHandler(svc scheduling.SchedulingService, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Logger: logger}
}

// GetSlotsHandler lists the free start times for a provider on a date.
// GET /api/providers/:id/slots?date=2006-01-02&duration=60
func (h *AvailabilityHandler) GetSlotsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	durationMin := int(scheduling.SlotGranularity.Minutes())
	if raw := c.Query("duration"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be a positive number of minutes"})
			return
		}
		durationMin = parsed
	}

	day, err := h.Service.GetAvailableSlots(c.Request.Context(), c.Param("id"), date, durationMin)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// GetRecommendationsHandler returns the top scored slots for a customer on a
// date. The slot length comes from the requested service; the customer is
// optional, and without one history and preference scoring stay neutral.
// GET /api/providers/:id/recommendations?date=2006-01-02&serviceId=...&customerId=...&preferredTime=10:00
func (h *AvailabilityHandler) GetRecommendationsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}
	serviceID := c.Query("serviceId")
	if serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "serviceId query parameter is required"})
		return
	}

	req := scheduling.RecommendationRequest{
		ProviderID:    c.Param("id"),
		CustomerID:    c.Query("customerId"),
		ServiceID:     serviceID,
		Date:          date,
		PreferredTime: c.Query("preferredTime"),
	}

	slots, err := h.Service.GetRecommendations(c.Request.Context(), req)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	h.Logger.Debug("recommendations served",
		zap.String("providerID", req.ProviderID),
		zap.String("date", req.Date),
		zap.Int("count", len(slots)))
	c.JSON(http.StatusOK, gin.H{"date": date, "recommendations": slots})
}
