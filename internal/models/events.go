package models

import "time"

// NATS subjects. Booking and payment mutations publish these; the
// consumers process delivers the matching WhatsApp notification.
const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
	EventPaymentRecorded  = "payment.recorded"
	EventBookingReminder  = "booking.reminder"
)

// BookingCreatedEvent is published after the reservation transaction commits.
type BookingCreatedEvent struct {
	BookingID int64     `json:"booking_id"`
	TurfID    int64     `json:"turf_id"`
	UserID    int64     `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

// BookingCancelledEvent is published after slots are released.
type BookingCancelledEvent struct {
	BookingID int64     `json:"booking_id"`
	TurfID    int64     `json:"turf_id"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// PaymentRecordedEvent is published whenever the received amount moves
// forward, from either the manual balance updater or a gateway webhook.
type PaymentRecordedEvent struct {
	BookingID     int64     `json:"booking_id"`
	Amount        float64   `json:"amount"`
	NewReceived   float64   `json:"new_received"`
	PaymentStatus string    `json:"payment_status"`
	Timestamp     time.Time `json:"timestamp"`
}

// BookingReminderEvent is published by the reminder job for next-day
// confirmed bookings.
type BookingReminderEvent struct {
	BookingID int64     `json:"booking_id"`
	Timestamp time.Time `json:"timestamp"`
}
