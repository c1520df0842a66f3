package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"turfbook/internal/models"
)

// InitiatePayment - POST /api/payments/initiate
func (h *Handlers) InitiatePayment(c *gin.Context) {
	userID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	var req models.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.services.Payments.InitiatePayment(c.Request.Context(), userID, req.BookingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// PaymentWebhook - POST /api/payments/webhook
// Gateways retry on non-2xx, so processing errors for known orders are
// the only case that returns one.
func (h *Handlers) PaymentWebhook(c *gin.Context) {
	var payload models.PaymentWebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.services.Payments.HandleWebhook(c.Request.Context(), &payload); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListBookingPayments - GET /api/staff/bookings/:id/payments
func (h *Handlers) ListBookingPayments(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	payments, err := h.services.Payments.ListPayments(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}

// UpdateBalance - PATCH /api/staff/bookings/:id/balance
func (h *Handlers) UpdateBalance(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	var req models.UpdateBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.services.Payments.UpdateBalance(c.Request.Context(), id, req.ReceivedAmount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}
