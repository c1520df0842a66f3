package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "turfbook_bookings_created_total",
		Help: "Bookings successfully created.",
	})

	BookingConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "turfbook_booking_conflicts_total",
		Help: "Booking attempts rejected because a slot was already taken.",
	})

	BookingsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "turfbook_bookings_cancelled_total",
		Help: "Bookings cancelled by customers or staff.",
	})

	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "turfbook_notifications_sent_total",
		Help: "Notification delivery attempts by outcome.",
	}, []string{"status"})

	PaymentWebhooks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "turfbook_payment_webhooks_total",
		Help: "Gateway webhook callbacks by outcome.",
	}, []string{"status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "turfbook_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
