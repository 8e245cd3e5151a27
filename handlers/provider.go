// File: handlers/provider.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	providerRepo "slotify/database/repository/provider"
	serviceRepo "slotify/database/repository/service"
	"slotify/models"
	"slotify/utils"
)

// ProviderHandler exposes the provider profile pieces the scheduling surface
// needs: the working-hours template and the service catalogue.
type ProviderHandler struct {
	Providers providerRepo.ProviderRepository
	Services  serviceRepo.ServiceRepository
	Logger    *zap.Logger
}

func NewProviderHandler(providers providerRepo.ProviderRepository, services serviceRepo.ServiceRepository, logger *zap.Logger) *ProviderHandler {
	return &ProviderHandler{Providers: providers, Services: services, Logger: logger}
}

// GetWorkingHoursHandler returns the weekly template for a provider.
func (h *ProviderHandler) GetWorkingHoursHandler(c *gin.Context) {
	providerID := c.Param("id")

	hours, err := h.Providers.GetWorkingHours(c.Request.Context(), providerID)
	if err != nil {
		h.Logger.Error("failed to fetch working hours", zap.String("providerID", providerID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch working hours", err.Error())
		return
	}
	// The repository reports a missing provider as a nil template, not an error.
	if hours == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
		return
	}
	c.JSON(http.StatusOK, hours)
}

// UpdateWorkingHoursHandler replaces the weekly template. Requires provider
// auth; a provider may only edit its own hours.
func (h *ProviderHandler) UpdateWorkingHoursHandler(c *gin.Context) {
	providerID := c.Param("id")
	if authed := c.GetString("providerID"); authed != providerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot edit another provider's hours"})
		return
	}

	var hours models.WorkingHours
	if err := c.ShouldBindJSON(&hours); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	for _, day := range hours {
		if !day.IsOpen {
			continue
		}
		if day.Open == "" || day.Close == "" || day.Open >= day.Close {
			c.JSON(http.StatusBadRequest, gin.H{"error": "open days need an open time before the close time"})
			return
		}
	}

	if err := h.Providers.UpdateWorkingHours(c.Request.Context(), providerID, hours); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
			return
		}
		h.Logger.Error("failed to update working hours", zap.String("providerID", providerID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update working hours", err.Error())
		return
	}

	h.Logger.Info("working hours updated", zap.String("providerID", providerID))
	c.JSON(http.StatusOK, gin.H{"message": "working hours updated"})
}

// ListServicesHandler returns the provider's bookable services.
func (h *ProviderHandler) ListServicesHandler(c *gin.Context) {
	providerID := c.Param("id")

	services, err := h.Services.GetByProviderID(c.Request.Context(), providerID)
	if err != nil {
		h.Logger.Error("failed to list services", zap.String("providerID", providerID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}
