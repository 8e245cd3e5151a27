// File: handlers/booking.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slotify/services/scheduling"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Service scheduling.SchedulingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc scheduling.SchedulingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBookingHandler admits a new booking request (public or
// authenticated). A conflict returns 409 with the colliding bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req scheduling.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking, err := h.Service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	h.Logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("providerID", booking.ProviderID),
		zap.String("date", booking.Date),
		zap.String("time", booking.Time))
	c.JSON(http.StatusCreated, booking)
}

// GetBookingHandler fetches a single booking.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	booking, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CheckConflictsHandler runs a dry-run conflict query; no write happens.
func (h *BookingHandler) CheckConflictsHandler(c *gin.Context) {
	var req scheduling.ConflictCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	report, err := h.Service.CheckConflicts(c.Request.Context(), req)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// UpdateStatusHandler applies a state-machine transition.
func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking, err := h.Service.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// RescheduleBookingHandler moves a booking to a new start time. The response
// carries both the new interval and the captured original interval.
func (h *BookingHandler) RescheduleBookingHandler(c *gin.Context) {
	var input struct {
		NewStart time.Time `json:"new_start" binding:"required"`
		Reason   string    `json:"reason,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	actorID := c.GetString("providerID")
	if actorID == "" {
		actorID = "customer"
	}

	booking, err := h.Service.RescheduleBooking(c.Request.Context(), scheduling.RescheduleRequest{
		BookingID: c.Param("id"),
		NewStart:  input.NewStart,
		ActorID:   actorID,
		Reason:    input.Reason,
	})
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	h.Logger.Info("booking rescheduled",
		zap.String("bookingID", booking.ID),
		zap.String("newStart", booking.Interval.Start.Format(time.RFC3339)))
	c.JSON(http.StatusOK, booking)
}

// CancelBookingHandler cancels from any non-terminal state. The record is
// retained.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	booking, err := h.Service.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	h.Logger.Info("booking cancelled", zap.String("bookingID", booking.ID))
	c.JSON(http.StatusOK, booking)
}

// RecomputeConflictsHandler refreshes the denormalized display-only conflict
// snapshot from a live query.
func (h *BookingHandler) RecomputeConflictsHandler(c *gin.Context) {
	booking, err := h.Service.RecomputeConflictSnapshot(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":             booking.ID,
		"has_conflicts":  booking.HasConflicts,
		"conflicts_with": booking.ConflictsWith,
	})
}
