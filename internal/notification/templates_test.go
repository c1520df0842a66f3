package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turfbook/internal/models"
)

func TestRender(t *testing.T) {
	params := map[string]string{
		"customer_name": "Ravi",
		"booking_code":  "TB20260901-4F2A",
		"turf_name":     "Green Arena",
		"location_name": "Koramangala",
		"date":          "01 Sep 2026",
		"hours":         "5 PM - 7 PM",
		"due_amount":    "350.00",
	}

	body, ok := Render(TemplateBookingCreated, params)
	require.True(t, ok)
	assert.Equal(t,
		"Hi Ravi, your booking TB20260901-4F2A at Green Arena, Koramangala is confirmed for 01 Sep 2026 (5 PM - 7 PM). Amount due: ₹350.00.",
		body)
}

func TestRenderMissingParamIsEmpty(t *testing.T) {
	body, ok := Render(TemplateBookingCancelled, map[string]string{
		"customer_name": "Ravi",
	})
	require.True(t, ok)
	assert.Equal(t, "Hi Ravi, your booking  at  for  has been cancelled.", body)
	assert.NotContains(t, body, "{{")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, ok := Render("no_such_template", nil)
	assert.False(t, ok)
}

func TestSnapshotParams(t *testing.T) {
	snap := &models.NotificationSnapshot{
		BookingCode:    "TB20260901-4F2A",
		CustomerName:   "Ravi",
		LocationName:   "Koramangala",
		TurfName:       "Green Arena",
		BookingDate:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Hours:          []int{17, 18},
		TotalAmount:    1000,
		ReceivedAmount: 300,
	}

	params := SnapshotParams(snap)

	assert.Equal(t, "Ravi", params["customer_name"])
	assert.Equal(t, "01 Sep 2026", params["date"])
	assert.Equal(t, "5 PM - 7 PM", params["hours"])
	assert.Equal(t, "300.00", params["amount"])
	assert.Equal(t, "700.00", params["due_amount"])
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		name  string
		hours []int
		want  string
	}{
		{"empty", nil, ""},
		{"single hour", []int{9}, "9 AM - 10 AM"},
		{"contiguous run", []int{17, 18, 19}, "5 PM - 8 PM"},
		{"split runs", []int{6, 7, 20}, "6 AM - 8 AM, 8 PM - 9 PM"},
		{"unsorted input", []int{18, 17}, "5 PM - 7 PM"},
		{"midnight boundary", []int{23}, "11 PM - 12 AM"},
		{"noon", []int{11, 12}, "11 AM - 1 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatHours(tt.hours))
		})
	}
}
