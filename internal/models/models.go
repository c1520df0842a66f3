package models

// Request/response models for the HTTP API. Validation tags follow
// gin's binding conventions.

// CreateLocationRequest - POST /api/admin/locations
type CreateLocationRequest struct {
	Name        string  `json:"name" binding:"required"`
	AddressLine *string `json:"address_line"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Pincode     *string `json:"pincode"`
}

// CreateServiceRequest - POST /api/admin/services
type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

// CreateTurfRequest - POST /api/admin/turfs
type CreateTurfRequest struct {
	LocationID int64  `json:"location_id" binding:"required"`
	ServiceID  int64  `json:"service_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
}

// UpsertPricingRequest - PUT /api/admin/turfs/:id/pricing
// One entry per hour; at most one price row per (turf, hour) survives.
type UpsertPricingRequest struct {
	Slots []PricingSlot `json:"slots" binding:"required"`
}

type PricingSlot struct {
	Hour  int     `json:"hour"`
	Price float64 `json:"price"`
}

// CreateResponse - generic created-entity response
type CreateResponse struct {
	ID int64 `json:"id"`
}

// AvailabilitySlot is one of the 24 hour entries for a turf/date.
// Available means the hour is neither taken nor in the past; Priced
// means a pricing row exists. Both must hold for the hour to be
// bookable.
type AvailabilitySlot struct {
	Hour      int      `json:"hour"`
	Available bool     `json:"available"`
	Priced    bool     `json:"priced"`
	Price     *float64 `json:"price,omitempty"`
}

// AvailabilityResponse - GET /api/turfs/:id/availability?date=YYYY-MM-DD
type AvailabilityResponse struct {
	TurfID int64              `json:"turf_id"`
	Date   string             `json:"date"`
	Slots  []AvailabilitySlot `json:"slots"`
}

// CreateBookingRequest - POST /api/bookings
type CreateBookingRequest struct {
	TurfID      int64  `json:"turf_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Hours       []int  `json:"hours" binding:"required"`
	PaymentType string `json:"payment_type" binding:"required,oneof=advance full"`
}

// CreateBookingResponse - booking header as created
type CreateBookingResponse struct {
	ID            int64   `json:"id"`
	BookingCode   string  `json:"booking_code"`
	TotalAmount   float64 `json:"total_amount"`
	AdvanceAmount float64 `json:"advance_amount"`
	PaymentStatus string  `json:"payment_status"`
	BookingStatus string  `json:"booking_status"`
}

// CancelBookingRequest - PATCH /api/bookings/cancel
type CancelBookingRequest struct {
	BookingID int64 `json:"booking_id" binding:"required"`
}

// UpdateBalanceRequest - PATCH /api/staff/bookings/:id/balance
// ReceivedAmount is the new cumulative total, not a delta.
type UpdateBalanceRequest struct {
	ReceivedAmount float64 `json:"received_amount"`
}

// UpdateStatusRequest - PATCH /api/staff/bookings/:id/status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending_payment confirmed completed cancelled"`
}

// InitiatePaymentRequest - POST /api/payments/initiate
type InitiatePaymentRequest struct {
	BookingID int64 `json:"booking_id" binding:"required"`
}

// InitiatePaymentResponse carries the gateway order for client checkout.
type InitiatePaymentResponse struct {
	Gateway        string  `json:"gateway"`
	GatewayOrderID string  `json:"gateway_order_id"`
	Amount         float64 `json:"amount"`
}

// PaymentWebhookPayload - POST /api/payments/webhook
type PaymentWebhookPayload struct {
	Gateway   string `json:"gateway"`
	OrderID   string `json:"order_id" binding:"required"`
	PaymentID string `json:"payment_id"`
	Status    string `json:"status" binding:"required"`
}

// ListTurfsResponseItem - element of GET /api/turfs
type ListTurfsResponseItem struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	LocationID   int64  `json:"location_id"`
	LocationName string `json:"location_name"`
	ServiceName  string `json:"service_name"`
	IsAvailable  bool   `json:"is_available"`
}

// BookingListItem - element of booking listings
type BookingListItem struct {
	ID             int64   `json:"id"`
	BookingCode    string  `json:"booking_code"`
	TurfID         int64   `json:"turf_id"`
	TurfName       string  `json:"turf_name,omitempty"`
	BookingDate    string  `json:"booking_date"`
	Hours          []int   `json:"hours"`
	TotalAmount    float64 `json:"total_amount"`
	ReceivedAmount float64 `json:"received_amount"`
	PaymentStatus  string  `json:"payment_status"`
	BookingStatus  string  `json:"booking_status"`
}
