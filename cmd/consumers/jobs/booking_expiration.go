package jobs

import (
	"context"
	"log/slog"
	"time"

	"turfbook/internal/messaging"
	"turfbook/internal/models"
	"turfbook/internal/repository"
)

const BookingExpirationTimeout = 30 * time.Minute

// BookingExpirationJob cancels bookings that never paid their advance.
// Releasing the slots puts the hours back on sale.
type BookingExpirationJob struct {
	bookingRepo *repository.BookingRepository
	natsClient  *messaging.NATSClient
	ticker      *time.Ticker
	done        chan bool
}

func NewBookingExpirationJob(bookingRepo *repository.BookingRepository, natsClient *messaging.NATSClient) *BookingExpirationJob {
	return &BookingExpirationJob{
		bookingRepo: bookingRepo,
		natsClient:  natsClient,
		done:        make(chan bool),
	}
}

// Start runs the expiration check every minute.
func (j *BookingExpirationJob) Start(ctx context.Context) {
	slog.Info("Starting booking expiration job", "check_interval", "1m", "timeout", BookingExpirationTimeout)

	j.ticker = time.NewTicker(time.Minute)

	go j.checkExpiredBookings(ctx)

	go func() {
		for {
			select {
			case <-j.ticker.C:
				go j.checkExpiredBookings(ctx)
			case <-j.done:
				slog.Info("Booking expiration job stopped")
				return
			}
		}
	}()
}

func (j *BookingExpirationJob) Stop() {
	if j.ticker != nil {
		j.ticker.Stop()
	}
	close(j.done)
}

func (j *BookingExpirationJob) checkExpiredBookings(ctx context.Context) {
	cutoff := time.Now().Add(-BookingExpirationTimeout)

	expired, err := j.bookingRepo.GetExpired(ctx, cutoff)
	if err != nil {
		slog.Error("Failed to get expired bookings", "error", err)
		return
	}

	if len(expired) == 0 {
		slog.Debug("No expired bookings found")
		return
	}

	slog.Info("Found expired bookings to process", "count", len(expired))

	for _, booking := range expired {
		if err := j.expireBooking(ctx, &booking); err != nil {
			slog.Error("Failed to expire booking",
				"error", err,
				"booking_id", booking.ID,
				"created_at", booking.CreatedAt)
			continue
		}
		slog.Info("Expired booking",
			"booking_id", booking.ID,
			"booking_code", booking.BookingCode,
			"elapsed_time", time.Since(booking.CreatedAt).String())
	}
}

// expireBooking cancels the booking, releasing its slots in the same
// transaction as the status change.
func (j *BookingExpirationJob) expireBooking(ctx context.Context, booking *models.Booking) error {
	if err := j.bookingRepo.Cancel(ctx, booking.ID); err != nil {
		return err
	}

	event := models.BookingCancelledEvent{
		BookingID: booking.ID,
		TurfID:    booking.TurfID,
		Reason:    "payment window expired",
		Timestamp: time.Now(),
	}

	if err := j.natsClient.Publish(models.EventBookingCancelled, event); err != nil {
		slog.Error("Failed to publish booking cancelled event",
			"error", err, "booking_id", booking.ID)
		// Expiration itself already succeeded.
	}

	return nil
}
