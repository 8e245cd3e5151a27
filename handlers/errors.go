// File: handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"slotify/services/scheduling"
)

// respondSchedulingError maps the scheduling core's typed errors onto HTTP.
// Conflicts carry the full colliding-booking list so clients can offer
// alternatives.
func respondSchedulingError(c *gin.Context, err error) {
	var validationErr *scheduling.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"field":   validationErr.Field,
			"details": validationErr.Message,
		})
		return
	}

	var conflictErr *scheduling.ConflictError
	if errors.As(err, &conflictErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":     "scheduling conflict",
			"conflicts": conflictErr.Conflicts,
		})
		return
	}

	var notFoundErr *scheduling.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":    "not found",
			"resource": notFoundErr.Resource,
			"id":       notFoundErr.ID,
		})
		return
	}

	var transitionErr *scheduling.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "invalid status transition",
			"from":  transitionErr.From,
			"to":    transitionErr.To,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "details": err.Error()})
}
