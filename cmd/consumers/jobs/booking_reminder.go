package jobs

import (
	"context"
	"log/slog"
	"time"

	"turfbook/internal/messaging"
	"turfbook/internal/models"
	"turfbook/internal/repository"
)

// ReminderHour is the local hour at which next-day reminders go out.
const ReminderHour = 18

// BookingReminderJob publishes a reminder event for every confirmed
// booking scheduled for tomorrow, once per day.
type BookingReminderJob struct {
	bookingRepo *repository.BookingRepository
	natsClient  *messaging.NATSClient
	ticker      *time.Ticker
	done        chan bool
	lastRunDay  string
}

func NewBookingReminderJob(bookingRepo *repository.BookingRepository, natsClient *messaging.NATSClient) *BookingReminderJob {
	return &BookingReminderJob{
		bookingRepo: bookingRepo,
		natsClient:  natsClient,
		done:        make(chan bool),
	}
}

// Start checks every 10 minutes whether the send window has been
// reached today.
func (j *BookingReminderJob) Start(ctx context.Context) {
	slog.Info("Starting booking reminder job", "send_hour", ReminderHour)

	j.ticker = time.NewTicker(10 * time.Minute)

	go func() {
		for {
			select {
			case <-j.ticker.C:
				j.maybeSendReminders(ctx)
			case <-j.done:
				slog.Info("Booking reminder job stopped")
				return
			}
		}
	}()
}

func (j *BookingReminderJob) Stop() {
	if j.ticker != nil {
		j.ticker.Stop()
	}
	close(j.done)
}

func (j *BookingReminderJob) maybeSendReminders(ctx context.Context) {
	now := time.Now()
	today := now.Format("2006-01-02")

	if now.Hour() < ReminderHour || j.lastRunDay == today {
		return
	}
	j.lastRunDay = today

	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)

	bookings, err := j.bookingRepo.GetConfirmedForDate(ctx, tomorrow)
	if err != nil {
		slog.Error("Failed to load bookings for reminders", "error", err)
		j.lastRunDay = "" // retry on the next tick
		return
	}

	slog.Info("Publishing booking reminders", "count", len(bookings), "date", tomorrow.Format("2006-01-02"))

	for _, booking := range bookings {
		event := models.BookingReminderEvent{
			BookingID: booking.ID,
			Timestamp: now,
		}
		if err := j.natsClient.Publish(models.EventBookingReminder, event); err != nil {
			slog.Error("Failed to publish reminder", "booking_id", booking.ID, "error", err)
		}
	}
}
