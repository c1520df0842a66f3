package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"turfbook/internal/models"
)

// ListTurfs - GET /api/turfs?location_id=&q=&city=&page=&page_size=
// With a q or city parameter the request goes through the search index;
// otherwise it is a plain catalog listing.
func (h *Handlers) ListTurfs(c *gin.Context) {
	query := c.Query("q")
	city := c.Query("city")

	if query != "" || city != "" {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

		items, err := h.services.Turfs.SearchTurfs(c.Request.Context(), query, city, page, pageSize)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
		return
	}

	locationID, _ := strconv.ParseInt(c.Query("location_id"), 10, 64)

	turfs, err := h.services.Turfs.ListTurfs(c.Request.Context(), locationID)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]models.ListTurfsResponseItem, len(turfs))
	for i, t := range turfs {
		items[i] = models.ListTurfsResponseItem{
			ID:           t.ID,
			Name:         t.Name,
			LocationID:   t.LocationID,
			LocationName: t.LocationName,
			ServiceName:  t.ServiceName,
			IsAvailable:  t.IsAvailable,
		}
	}
	c.JSON(http.StatusOK, items)
}

// GetTurf - GET /api/turfs/:id
func (h *Handlers) GetTurf(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid turf id"})
		return
	}

	turf, err := h.services.Turfs.GetTurf(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, turf)
}

// GetAvailability - GET /api/turfs/:id/availability?date=YYYY-MM-DD
func (h *Handlers) GetAvailability(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid turf id"})
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	resp, err := h.services.Turfs.GetAvailability(c.Request.Context(), id, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListLocations - GET /api/locations
func (h *Handlers) ListLocations(c *gin.Context) {
	locations, err := h.services.Turfs.ListLocations(c.Request.Context(), true)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

// ListServices - GET /api/services
func (h *Handlers) ListServices(c *gin.Context) {
	services, err := h.services.Turfs.ListServices(c.Request.Context(), true)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}
