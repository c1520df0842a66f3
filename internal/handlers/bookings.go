package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"turfbook/internal/models"
)

// CreateBooking - POST /api/bookings
func (h *Handlers) CreateBooking(c *gin.Context) {
	userID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.services.Bookings.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListBookings - GET /api/bookings (the caller's own bookings)
func (h *Handlers) ListBookings(c *gin.Context) {
	userID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	bookings, err := h.services.Bookings.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingList(bookings))
}

// GetBooking - GET /api/bookings/:id
func (h *Handlers) GetBooking(c *gin.Context) {
	userID, identity, ok := requestIdentity(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	booking, err := h.services.Bookings.GetForUser(c.Request.Context(), id, userID, identity.IsStaff())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// CancelBooking - PATCH /api/bookings/cancel
func (h *Handlers) CancelBooking(c *gin.Context) {
	userID, identity, ok := requestIdentity(c)
	if !ok {
		return
	}

	var req models.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.services.Bookings.Cancel(c.Request.Context(), req.BookingID, userID, identity.IsStaff()); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// ListLocationBookings - GET /api/staff/bookings?location_id=&date=
func (h *Handlers) ListLocationBookings(c *gin.Context) {
	_, identity, ok := requestIdentity(c)
	if !ok {
		return
	}

	locationID, err := strconv.ParseInt(c.Query("location_id"), 10, 64)
	if err != nil || locationID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location_id query parameter is required"})
		return
	}

	if !identity.CanAccessLocation(locationID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	bookings, err := h.services.Bookings.ListForLocationAndDate(c.Request.Context(), locationID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingList(bookings))
}

// UpdateBookingStatus - PATCH /api/staff/bookings/:id/status
func (h *Handlers) UpdateBookingStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.services.Bookings.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

func toBookingList(bookings []models.Booking) []models.BookingListItem {
	items := make([]models.BookingListItem, len(bookings))
	for i, b := range bookings {
		items[i] = models.BookingListItem{
			ID:             b.ID,
			BookingCode:    b.BookingCode,
			TurfID:         b.TurfID,
			BookingDate:    b.BookingDate.Format("2006-01-02"),
			Hours:          b.Hours,
			TotalAmount:    b.TotalAmount,
			ReceivedAmount: b.ReceivedAmount,
			PaymentStatus:  b.PaymentStatus,
			BookingStatus:  b.BookingStatus,
		}
	}
	return items
}
