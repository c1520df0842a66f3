package notification

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"turfbook/internal/models"
)

const (
	TemplateBookingCreated   = "booking_created"
	TemplateBookingCancelled = "booking_cancelled"
	TemplatePaymentRecorded  = "payment_recorded"
	TemplateBookingReminder  = "booking_reminder"
)

var templates = map[string]string{
	TemplateBookingCreated:   "Hi {{customer_name}}, your booking {{booking_code}} at {{turf_name}}, {{location_name}} is confirmed for {{date}} ({{hours}}). Amount due: ₹{{due_amount}}.",
	TemplateBookingCancelled: "Hi {{customer_name}}, your booking {{booking_code}} at {{turf_name}} for {{date}} has been cancelled.",
	TemplatePaymentRecorded:  "Hi {{customer_name}}, we received ₹{{amount}} towards booking {{booking_code}}. Balance due: ₹{{due_amount}}.",
	TemplateBookingReminder:  "Hi {{customer_name}}, reminder: your booking {{booking_code}} at {{turf_name}}, {{location_name}} is tomorrow, {{date}} ({{hours}}).",
}

var placeholderRe = regexp.MustCompile(`\{\{([a-z_]+)\}\}`)

// Render substitutes {{name}} placeholders from params. Placeholders
// without a matching param render as empty strings rather than leaking
// template syntax into customer messages.
func Render(template string, params map[string]string) (string, bool) {
	text, ok := templates[template]
	if !ok {
		return "", false
	}

	rendered := placeholderRe.ReplaceAllStringFunc(text, func(match string) string {
		name := placeholderRe.FindStringSubmatch(match)[1]
		return params[name]
	})

	return rendered, true
}

// SnapshotParams flattens a booking snapshot into template parameters.
func SnapshotParams(snap *models.NotificationSnapshot) map[string]string {
	return map[string]string{
		"customer_name": snap.CustomerName,
		"booking_code":  snap.BookingCode,
		"turf_name":     snap.TurfName,
		"location_name": snap.LocationName,
		"date":          snap.BookingDate.Format("02 Jan 2006"),
		"hours":         formatHours(snap.Hours),
		"amount":        formatAmount(snap.ReceivedAmount),
		"due_amount":    formatAmount(snap.TotalAmount - snap.ReceivedAmount),
	}
}

// formatHours renders booked hours as human ranges, e.g. "5 PM - 7 PM".
func formatHours(hours []int) string {
	if len(hours) == 0 {
		return ""
	}

	sorted := make([]int, len(hours))
	copy(sorted, hours)
	sort.Ints(sorted)

	var parts []string
	start := sorted[0]
	prev := sorted[0]
	for _, h := range sorted[1:] {
		if h == prev+1 {
			prev = h
			continue
		}
		parts = append(parts, fmt.Sprintf("%s - %s", clockLabel(start), clockLabel(prev+1)))
		start, prev = h, h
	}
	parts = append(parts, fmt.Sprintf("%s - %s", clockLabel(start), clockLabel(prev+1)))

	return strings.Join(parts, ", ")
}

func clockLabel(hour int) string {
	h := hour % 24
	switch {
	case h == 0:
		return "12 AM"
	case h < 12:
		return fmt.Sprintf("%d AM", h)
	case h == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", h-12)
	}
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
