package models

import (
	"time"
)

// Payment status values on a booking header.
const (
	PaymentStatusPending = "pending_payment"
	PaymentStatusPartial = "partial"
	PaymentStatusPaid    = "paid"
	PaymentStatusRefund  = "refunded"
)

// Booking lifecycle statuses. Cancelled is terminal.
const (
	BookingStatusPending   = "pending_payment"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Payment ledger row types and gateways.
const (
	PaymentTypeAdvance   = "advance"
	PaymentTypeFull      = "full"
	PaymentTypeRemaining = "remaining"
	PaymentTypeManual    = "manual"

	GatewayRazorpay  = "razorpay"
	GatewayPayGlocal = "payglocal"
	GatewayManual    = "manual"

	LedgerStatusPending = "pending"
	LedgerStatusSuccess = "success"
	LedgerStatusFailed  = "failed"
	LedgerStatusRefund  = "refunded"
)

// Slot row statuses. Released slots belonged to a cancelled or expired
// booking and no longer occupy the hour.
const (
	SlotStatusActive   = "active"
	SlotStatusReleased = "released"
)

// User represents a platform user. Authentication lives with the
// external identity provider; this is the profile the booking flow needs.
type User struct {
	ID        int64     `json:"id" db:"id"`
	FullName  string    `json:"full_name" db:"full_name"`
	Email     string    `json:"email" db:"email"`
	Phone     *string   `json:"phone" db:"phone"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Location is a branch that owns turfs.
type Location struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	AddressLine *string   `json:"address_line" db:"address_line"`
	City        *string   `json:"city" db:"city"`
	State       *string   `json:"state" db:"state"`
	Pincode     *string   `json:"pincode" db:"pincode"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Service is a sport/activity type (football, badminton, ...).
type Service struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	ImageURL    *string   `json:"image_url" db:"image_url"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Turf is one bookable physical unit at a location.
type Turf struct {
	ID          int64     `json:"id" db:"id"`
	LocationID  int64     `json:"location_id" db:"location_id"`
	ServiceID   int64     `json:"service_id" db:"service_id"`
	Name        string    `json:"name" db:"name"`
	IsAvailable bool      `json:"is_available" db:"is_available"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	// Joined names, filled by list queries.
	LocationName string `json:"location_name,omitempty"`
	ServiceName  string `json:"service_name,omitempty"`
}

// HourlyPricing is the price for one hour-of-day on a turf. Absence of
// a row means the hour is not bookable.
type HourlyPricing struct {
	ID     int64   `json:"id" db:"id"`
	TurfID int64   `json:"turf_id" db:"turf_id"`
	Hour   int     `json:"hour" db:"hour"`
	Price  float64 `json:"price" db:"price"`
}

// Booking is the header row for a reservation.
type Booking struct {
	ID             int64     `json:"id" db:"id"`
	BookingCode    string    `json:"booking_code" db:"booking_code"`
	UserID         int64     `json:"user_id" db:"user_id"`
	TurfID         int64     `json:"turf_id" db:"turf_id"`
	BookingDate    time.Time `json:"booking_date" db:"booking_date"`
	TotalAmount    float64   `json:"total_amount" db:"total_amount"`
	AdvanceAmount  float64   `json:"advance_amount" db:"advance_amount"`
	ReceivedAmount float64   `json:"received_amount" db:"received_amount"`
	PaymentStatus  string    `json:"payment_status" db:"payment_status"`
	BookingStatus  string    `json:"booking_status" db:"booking_status"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`

	// Not from the bookings table, filled separately.
	Hours []int `json:"hours,omitempty"`
}

// BookingSlot is one reserved hour on a booking. turf_id and
// booking_date are denormalized so the active-slot unique index can
// enforce exclusivity without a join.
type BookingSlot struct {
	ID          int64     `json:"id" db:"id"`
	BookingID   int64     `json:"booking_id" db:"booking_id"`
	TurfID      int64     `json:"turf_id" db:"turf_id"`
	BookingDate time.Time `json:"booking_date" db:"booking_date"`
	Hour        int       `json:"hour" db:"hour"`
	Status      string    `json:"status" db:"status"`
	ReservedAt  time.Time `json:"reserved_at" db:"reserved_at"`
}

// Payment is one append-only ledger row. Amounts are deltas, not
// cumulative; bookings.received_amount caches the running sum.
type Payment struct {
	ID               int64     `json:"id" db:"id"`
	BookingID        int64     `json:"booking_id" db:"booking_id"`
	Amount           float64   `json:"amount" db:"amount"`
	Type             string    `json:"type" db:"type"`
	Gateway          string    `json:"gateway" db:"gateway"`
	GatewayOrderID   *string   `json:"gateway_order_id" db:"gateway_order_id"`
	GatewayPaymentID *string   `json:"gateway_payment_id" db:"gateway_payment_id"`
	Status           string    `json:"status" db:"status"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// Role and permission lookups.
type Role struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	IsSystem bool   `json:"is_system" db:"is_system"`
}

type Permission struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// NotificationSnapshot is the denormalized view of a booking the
// dispatcher renders templates from.
type NotificationSnapshot struct {
	BookingID      int64
	BookingCode    string
	CustomerName   string
	CustomerPhone  string
	LocationName   string
	ServiceName    string
	TurfName       string
	BookingDate    time.Time
	Hours          []int
	TotalAmount    float64
	ReceivedAmount float64
}
