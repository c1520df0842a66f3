package consumers

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nats-io/stan.go"

	"turfbook/internal/models"
	"turfbook/internal/notification"
	"turfbook/internal/repository"
	"turfbook/internal/worker"
)

type natsHandler = stan.MsgHandler

// Handlers process the notification events. Sends are retried with
// backoff; a message that still fails after the last attempt is acked
// and dropped so it cannot poison the queue.
type Handlers struct {
	repos      *repository.Repositories
	dispatcher *notification.Dispatcher
	retry      worker.RetryPolicy
}

func NewHandlers(repos *repository.Repositories, dispatcher *notification.Dispatcher) *Handlers {
	return &Handlers{
		repos:      repos,
		dispatcher: dispatcher,
		retry:      worker.DefaultRetryPolicy(),
	}
}

func (h *Handlers) HandleBookingCreated(m *stan.Msg) {
	var event models.BookingCreatedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal booking created event", "error", err)
		m.Ack()
		return
	}

	h.notify(event.BookingID, notification.TemplateBookingCreated)
	m.Ack()
}

func (h *Handlers) HandleBookingCancelled(m *stan.Msg) {
	var event models.BookingCancelledEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal booking cancelled event", "error", err)
		m.Ack()
		return
	}

	h.notify(event.BookingID, notification.TemplateBookingCancelled)
	m.Ack()
}

func (h *Handlers) HandlePaymentRecorded(m *stan.Msg) {
	var event models.PaymentRecordedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal payment recorded event", "error", err)
		m.Ack()
		return
	}

	h.notify(event.BookingID, notification.TemplatePaymentRecorded)
	m.Ack()
}

func (h *Handlers) HandleBookingReminder(m *stan.Msg) {
	var event models.BookingReminderEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal booking reminder event", "error", err)
		m.Ack()
		return
	}

	h.notify(event.BookingID, notification.TemplateBookingReminder)
	m.Ack()
}

// notify loads the booking snapshot and delivers the template, retrying
// transient send failures.
func (h *Handlers) notify(bookingID int64, template string) {
	ctx := context.Background()

	snap, err := h.repos.Bookings.GetSnapshot(ctx, bookingID)
	if err != nil {
		slog.Error("Failed to load booking snapshot", "booking_id", bookingID, "error", err)
		return
	}
	if snap == nil {
		slog.Warn("Booking vanished before notification", "booking_id", bookingID, "template", template)
		return
	}
	if snap.CustomerPhone == "" {
		slog.Info("Customer has no phone, skipping notification", "booking_id", bookingID, "template", template)
		return
	}

	err = h.retry.Do(ctx, "notification:"+template, func(ctx context.Context) error {
		return h.dispatcher.Send(ctx, template, snap)
	})
	if err != nil {
		slog.Error("Giving up on notification",
			"booking_id", bookingID, "template", template, "error", err)
	}
}
