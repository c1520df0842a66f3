package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	apperrors "turfbook/internal/errors"
	"turfbook/internal/external"
	"turfbook/internal/messaging"
	"turfbook/internal/metrics"
	"turfbook/internal/models"
	"turfbook/internal/repository"
)

// BalanceStore is the booking-side state a payment touches.
type BalanceStore interface {
	GetByID(ctx context.Context, id int64) (*models.Booking, error)
	UpdateBalance(ctx context.Context, id int64, received float64, paymentStatus string) error
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// PaymentLedger is the append-only payment history.
type PaymentLedger interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByBookingID(ctx context.Context, bookingID int64) ([]models.Payment, error)
	GetPendingByOrderID(ctx context.Context, orderID string) (*models.Payment, error)
	UpdateStatus(ctx context.Context, id int64, status string, gatewayPaymentID *string) error
}

// SettingsStore holds platform-wide key/value settings.
type SettingsStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type PaymentService struct {
	bookings BalanceStore
	payments PaymentLedger
	settings SettingsStore
	nats     *messaging.NATSClient
	gateways map[string]external.PaymentGateway
}

func NewPaymentService(bookings BalanceStore, payments PaymentLedger, settings SettingsStore, nats *messaging.NATSClient, gateways map[string]external.PaymentGateway) *PaymentService {
	return &PaymentService{bookings: bookings, payments: payments, settings: settings, nats: nats, gateways: gateways}
}

// UpdateBalance sets the cumulative received amount on a booking. A
// positive delta gets a manual ledger row; a decrease only rewrites the
// header, with no compensating negative entry. The ledger row is
// written before the header, so a failed header write leaves the old
// cumulative amount in place and the whole call can be retried.
func (s *PaymentService) UpdateBalance(ctx context.Context, bookingID int64, newReceived float64) (*models.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperrors.ErrBookingNotFound
	}
	if booking.BookingStatus == models.BookingStatusCancelled {
		return nil, apperrors.ErrCancelledBooking
	}

	if newReceived < 0 {
		return nil, apperrors.ErrNegativeAmount
	}
	if newReceived > booking.TotalAmount {
		return nil, apperrors.ErrAmountExceedsTotal
	}

	delta := newReceived - booking.ReceivedAmount
	status := derivePaymentStatus(newReceived, booking.TotalAmount)

	if delta > 0 {
		payment := &models.Payment{
			BookingID: bookingID,
			Amount:    delta,
			Type:      models.PaymentTypeManual,
			Gateway:   models.GatewayManual,
			Status:    models.LedgerStatusSuccess,
		}
		if err := s.payments.Create(ctx, payment); err != nil {
			return nil, err
		}
	}

	if err := s.bookings.UpdateBalance(ctx, bookingID, newReceived, status); err != nil {
		return nil, err
	}

	if delta > 0 {
		s.publish(models.EventPaymentRecorded, models.PaymentRecordedEvent{
			BookingID:     bookingID,
			Amount:        delta,
			NewReceived:   newReceived,
			PaymentStatus: status,
			Timestamp:     time.Now(),
		})
	}

	booking.ReceivedAmount = newReceived
	booking.PaymentStatus = status
	return booking, nil
}

// InitiatePayment creates a collect order with the active gateway. The
// first payment collects the advance; later ones collect the remaining
// balance.
func (s *PaymentService) InitiatePayment(ctx context.Context, userID, bookingID int64) (*models.InitiatePaymentResponse, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperrors.ErrBookingNotFound
	}
	if booking.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	if booking.BookingStatus == models.BookingStatusCancelled {
		return nil, apperrors.ErrCancelledBooking
	}

	amount := booking.AdvanceAmount
	paymentType := models.PaymentTypeAdvance
	if booking.ReceivedAmount > 0 {
		amount = booking.TotalAmount - booking.ReceivedAmount
		paymentType = models.PaymentTypeRemaining
	}
	if amount <= 0 {
		return nil, fmt.Errorf("booking %s is already fully paid", booking.BookingCode)
	}

	gateway, err := s.activeGateway(ctx)
	if err != nil {
		return nil, err
	}

	order, err := gateway.CreateOrder(ctx, amount, booking.BookingCode)
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway order: %w", err)
	}

	payment := &models.Payment{
		BookingID:      bookingID,
		Amount:         amount,
		Type:           paymentType,
		Gateway:        gateway.Name(),
		GatewayOrderID: &order.OrderID,
		Status:         models.LedgerStatusPending,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	return &models.InitiatePaymentResponse{
		Gateway:        gateway.Name(),
		GatewayOrderID: order.OrderID,
		Amount:         amount,
	}, nil
}

// HandleWebhook settles a gateway callback against its pending ledger
// row. Successful payments roll the received amount forward and confirm
// a pending booking; unknown orders are acknowledged and dropped so the
// gateway stops retrying.
func (s *PaymentService) HandleWebhook(ctx context.Context, payload *models.PaymentWebhookPayload) error {
	payment, err := s.payments.GetPendingByOrderID(ctx, payload.OrderID)
	if err != nil {
		return err
	}
	if payment == nil {
		metrics.PaymentWebhooks.WithLabelValues("unknown").Inc()
		slog.Warn("Webhook for unknown order", "order_id", payload.OrderID, "gateway", payload.Gateway)
		return nil
	}

	if !isSuccessStatus(payload.Status) {
		metrics.PaymentWebhooks.WithLabelValues("failed").Inc()
		return s.payments.UpdateStatus(ctx, payment.ID, models.LedgerStatusFailed, nil)
	}

	var gatewayPaymentID *string
	if payload.PaymentID != "" {
		gatewayPaymentID = &payload.PaymentID
	}
	if err := s.payments.UpdateStatus(ctx, payment.ID, models.LedgerStatusSuccess, gatewayPaymentID); err != nil {
		return err
	}

	booking, err := s.bookings.GetByID(ctx, payment.BookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		return apperrors.ErrBookingNotFound
	}

	newReceived := booking.ReceivedAmount + payment.Amount
	if newReceived > booking.TotalAmount {
		newReceived = booking.TotalAmount
	}
	status := derivePaymentStatus(newReceived, booking.TotalAmount)

	if err := s.bookings.UpdateBalance(ctx, booking.ID, newReceived, status); err != nil {
		return err
	}

	if booking.BookingStatus == models.BookingStatusPending {
		if err := s.bookings.UpdateStatus(ctx, booking.ID, models.BookingStatusConfirmed); err != nil {
			return err
		}
	}

	metrics.PaymentWebhooks.WithLabelValues("success").Inc()
	s.publish(models.EventPaymentRecorded, models.PaymentRecordedEvent{
		BookingID:     booking.ID,
		Amount:        payment.Amount,
		NewReceived:   newReceived,
		PaymentStatus: status,
		Timestamp:     time.Now(),
	})

	return nil
}

func (s *PaymentService) ListPayments(ctx context.Context, bookingID int64) ([]models.Payment, error) {
	return s.payments.GetByBookingID(ctx, bookingID)
}

// SetActiveGateway switches the provider used for new collect orders.
func (s *PaymentService) SetActiveGateway(ctx context.Context, name string) error {
	if _, ok := s.gateways[name]; !ok {
		return fmt.Errorf("unknown payment gateway: %s", name)
	}
	return s.settings.Set(ctx, repository.SettingActiveGateway, name)
}

func (s *PaymentService) activeGateway(ctx context.Context) (external.PaymentGateway, error) {
	name, err := s.settings.Get(ctx, repository.SettingActiveGateway)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = models.GatewayRazorpay
	}

	gateway, ok := s.gateways[name]
	if !ok {
		return nil, fmt.Errorf("payment gateway %s is not configured", name)
	}
	return gateway, nil
}

func (s *PaymentService) publish(subject string, event interface{}) {
	if s.nats == nil {
		return
	}
	if err := s.nats.Publish(subject, event); err != nil {
		slog.Error("Failed to publish event", "subject", subject, "error", err)
	}
}

// derivePaymentStatus classifies the cumulative received amount.
func derivePaymentStatus(received, total float64) string {
	switch {
	case received >= total && total > 0:
		return models.PaymentStatusPaid
	case received > 0:
		return models.PaymentStatusPartial
	default:
		return models.PaymentStatusPending
	}
}

func isSuccessStatus(status string) bool {
	switch status {
	case "success", "paid", "captured", "SENT_FOR_CAPTURE":
		return true
	}
	return false
}
