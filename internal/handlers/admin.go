package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"turfbook/internal/models"
)

// Admin catalog management. All routes here sit behind RequireAdmin.

// CreateLocation - POST /api/admin/locations
func (h *Handlers) CreateLocation(c *gin.Context) {
	var req models.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loc, err := h.services.Turfs.CreateLocation(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, loc)
}

// SetLocationActive - PATCH /api/admin/locations/:id/active
func (h *Handlers) SetLocationActive(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location id"})
		return
	}

	var req struct {
		Active bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.services.Turfs.SetLocationActive(c.Request.Context(), id, req.Active); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"active": req.Active})
}

// CreateService - POST /api/admin/services
func (h *Handlers) CreateService(c *gin.Context) {
	var req models.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := h.services.Turfs.CreateService(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, svc)
}

// CreateTurf - POST /api/admin/turfs
func (h *Handlers) CreateTurf(c *gin.Context) {
	var req models.CreateTurfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	turf, err := h.services.Turfs.CreateTurf(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, turf)
}

// SetTurfAvailable - PATCH /api/admin/turfs/:id/available
func (h *Handlers) SetTurfAvailable(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid turf id"})
		return
	}

	var req struct {
		Available bool `json:"available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.services.Turfs.SetTurfAvailable(c.Request.Context(), id, req.Available); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": req.Available})
}

// UpsertPricing - PUT /api/admin/turfs/:id/pricing
func (h *Handlers) UpsertPricing(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid turf id"})
		return
	}

	var req models.UpsertPricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, slot := range req.Slots {
		if slot.Hour < 0 || slot.Hour > 23 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "hour must be between 0 and 23"})
			return
		}
		if slot.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price cannot be negative"})
			return
		}
	}

	if err := h.services.Turfs.UpsertPricing(c.Request.Context(), id, &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": len(req.Slots)})
}

// DeletePricing - DELETE /api/admin/turfs/:id/pricing/:hour
func (h *Handlers) DeletePricing(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid turf id"})
		return
	}

	hour, err := strconv.Atoi(c.Param("hour"))
	if err != nil || hour < 0 || hour > 23 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hour"})
		return
	}

	if err := h.services.Turfs.DeletePricing(c.Request.Context(), id, hour); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// SetActiveGateway - PUT /api/admin/settings/gateway
func (h *Handlers) SetActiveGateway(c *gin.Context) {
	var req struct {
		Gateway string `json:"gateway" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.services.Payments.SetActiveGateway(c.Request.Context(), req.Gateway); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"gateway": req.Gateway})
}
