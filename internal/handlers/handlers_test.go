package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "turfbook/internal/errors"
	"turfbook/internal/models"
)

func TestRespondErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"turf not found", apperrors.ErrTurfNotFound, http.StatusNotFound, `{"error":"Turf not found"}`},
		{"booking not found", apperrors.ErrBookingNotFound, http.StatusNotFound, `{"error":"booking not found"}`},
		{"slot taken", apperrors.ErrSlotTaken, http.StatusConflict, `{"error":"slot no longer available"}`},
		{"forbidden", apperrors.ErrForbidden, http.StatusForbidden, `{"error":"Forbidden"}`},
		{"past date", apperrors.ErrPastDate, http.StatusBadRequest, `{"error":"Cannot book for past dates"}`},
		{"past time slot", apperrors.ErrPastTimeSlot, http.StatusBadRequest, `{"error":"Cannot book past time slots. Please select a future time slot."}`},
		{"cancelled booking", apperrors.ErrCancelledBooking, http.StatusBadRequest, `{"error":"Cannot change status of a cancelled booking."}`},
		{"unknown error hidden", errors.New("pq: connection refused"), http.StatusInternalServerError, `{"error":"Internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestToBookingList(t *testing.T) {
	bookings := []models.Booking{
		{
			ID:             1,
			BookingCode:    "TB20260901120000-abcd",
			TurfID:         3,
			BookingDate:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			Hours:          []int{17, 18},
			TotalAmount:    1000,
			ReceivedAmount: 300,
			PaymentStatus:  models.PaymentStatusPartial,
			BookingStatus:  models.BookingStatusConfirmed,
		},
	}

	items := toBookingList(bookings)

	assert.Len(t, items, 1)
	assert.Equal(t, "2026-09-01", items[0].BookingDate)
	assert.Equal(t, []int{17, 18}, items[0].Hours)
	assert.Equal(t, models.PaymentStatusPartial, items[0].PaymentStatus)
}
