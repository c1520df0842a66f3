package notification

import (
	"context"
	"fmt"
	"log/slog"

	"turfbook/internal/external"
	"turfbook/internal/metrics"
	"turfbook/internal/models"
)

// Dispatcher renders booking templates and pushes them out over
// WhatsApp. It is the single egress point for customer messages so the
// consumers stay transport-agnostic.
type Dispatcher struct {
	whatsapp *external.WhatsAppClient
	language string
}

func NewDispatcher(whatsapp *external.WhatsAppClient, language string) *Dispatcher {
	if language == "" {
		language = "en"
	}
	return &Dispatcher{whatsapp: whatsapp, language: language}
}

// Send renders the named template against the booking snapshot and
// delivers it to the customer's phone.
func (d *Dispatcher) Send(ctx context.Context, template string, snap *models.NotificationSnapshot) error {
	params := SnapshotParams(snap)

	body, ok := Render(template, params)
	if !ok {
		metrics.NotificationsSent.WithLabelValues("failed").Inc()
		return fmt.Errorf("unknown notification template: %s", template)
	}

	result := d.whatsapp.SendTemplate(ctx, snap.CustomerPhone, template, d.language, orderedParams(params))
	if !result.Success {
		metrics.NotificationsSent.WithLabelValues("failed").Inc()
		return fmt.Errorf("failed to send %s for booking %s: %s", template, snap.BookingCode, result.Error)
	}

	metrics.NotificationsSent.WithLabelValues("sent").Inc()
	slog.Info("Notification sent",
		"template", template,
		"booking_code", snap.BookingCode,
		"message_id", result.MessageID,
		"preview", body)

	return nil
}

// orderedParams fixes the positional parameter order the approved
// WhatsApp templates expect.
func orderedParams(params map[string]string) []string {
	return []string{
		params["customer_name"],
		params["booking_code"],
		params["turf_name"],
		params["location_name"],
		params["date"],
		params["hours"],
		params["amount"],
		params["due_amount"],
	}
}
