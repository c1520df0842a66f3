package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"turfbook/internal/cache"
	apperrors "turfbook/internal/errors"
	"turfbook/internal/messaging"
	"turfbook/internal/metrics"
	"turfbook/internal/models"
	"turfbook/internal/pricing"
)

// BookingStore is the booking persistence the service drives.
type BookingStore interface {
	CreateWithSlots(ctx context.Context, booking *models.Booking, hours []int) error
	GetByID(ctx context.Context, id int64) (*models.Booking, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.Booking, error)
	GetByLocationAndDate(ctx context.Context, locationID int64, date time.Time) ([]models.Booking, error)
	GetHours(ctx context.Context, bookingID int64) ([]int, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Cancel(ctx context.Context, id int64) error
}

// TurfCatalog is the slice of the turf repository bookings read from.
type TurfCatalog interface {
	GetByID(ctx context.Context, id int64) (*models.Turf, error)
	GetPricing(ctx context.Context, turfID int64) (map[int]float64, error)
}

type BookingService struct {
	bookings BookingStore
	turfs    TurfCatalog
	nats     *messaging.NATSClient
	cache    *cache.AvailabilityCache
}

func NewBookingService(bookings BookingStore, turfs TurfCatalog, nats *messaging.NATSClient, availCache *cache.AvailabilityCache) *BookingService {
	return &BookingService{bookings: bookings, turfs: turfs, nats: nats, cache: availCache}
}

// Create validates the request, prices the selected hours and reserves
// them in one transaction. Slot exclusivity is enforced inside the
// database, so a concurrent winner surfaces here as ErrSlotTaken.
func (s *BookingService) Create(ctx context.Context, userID int64, req *models.CreateBookingRequest) (*models.CreateBookingResponse, error) {
	day, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", req.Date)
	}

	hours, err := normalizeHours(req.Hours)
	if err != nil {
		return nil, err
	}

	if err := validateBookingTime(day, hours, time.Now()); err != nil {
		return nil, err
	}

	turf, err := s.turfs.GetByID(ctx, req.TurfID)
	if err != nil {
		return nil, err
	}
	if turf == nil {
		return nil, apperrors.ErrTurfNotFound
	}

	prices, err := s.turfs.GetPricing(ctx, req.TurfID)
	if err != nil {
		return nil, err
	}

	quote := pricing.Calculate(hours, prices, req.PaymentType)

	booking := &models.Booking{
		BookingCode:   generateBookingCode(),
		UserID:        userID,
		TurfID:        req.TurfID,
		BookingDate:   day,
		TotalAmount:   quote.Total,
		AdvanceAmount: quote.Advance,
		PaymentStatus: models.PaymentStatusPending,
		BookingStatus: models.BookingStatusPending,
	}

	if err := s.bookings.CreateWithSlots(ctx, booking, hours); err != nil {
		if errors.Is(err, apperrors.ErrSlotTaken) {
			metrics.BookingConflicts.Inc()
		}
		return nil, err
	}

	metrics.BookingsCreated.Inc()
	s.invalidateAvailability(ctx, req.TurfID, req.Date)
	s.publish(models.EventBookingCreated, models.BookingCreatedEvent{
		BookingID: booking.ID,
		TurfID:    booking.TurfID,
		UserID:    booking.UserID,
		Timestamp: time.Now(),
	})

	return &models.CreateBookingResponse{
		ID:            booking.ID,
		BookingCode:   booking.BookingCode,
		TotalAmount:   booking.TotalAmount,
		AdvanceAmount: booking.AdvanceAmount,
		PaymentStatus: booking.PaymentStatus,
		BookingStatus: booking.BookingStatus,
	}, nil
}

// Cancel releases the booking's slots. Customers may only cancel their
// own bookings; staff can cancel any. Cancelled is terminal.
func (s *BookingService) Cancel(ctx context.Context, bookingID, actorID int64, actorIsStaff bool) error {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		return apperrors.ErrBookingNotFound
	}
	if booking.BookingStatus == models.BookingStatusCancelled {
		return apperrors.ErrCancelledBooking
	}
	if !actorIsStaff && booking.UserID != actorID {
		return apperrors.ErrForbidden
	}

	if err := s.bookings.Cancel(ctx, bookingID); err != nil {
		return err
	}

	metrics.BookingsCancelled.Inc()
	s.invalidateAvailability(ctx, booking.TurfID, booking.BookingDate.Format(dateLayout))
	s.publish(models.EventBookingCancelled, models.BookingCancelledEvent{
		BookingID: booking.ID,
		TurfID:    booking.TurfID,
		Timestamp: time.Now(),
	})

	return nil
}

// UpdateStatus moves a booking through its lifecycle. Cancellation must
// go through Cancel so slots are released; every other transition is a
// plain status write. A cancelled booking never changes again.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID int64, status string) error {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		return apperrors.ErrBookingNotFound
	}
	if booking.BookingStatus == models.BookingStatusCancelled {
		return apperrors.ErrCancelledBooking
	}

	if status == models.BookingStatusCancelled {
		if err := s.bookings.Cancel(ctx, bookingID); err != nil {
			return err
		}
		metrics.BookingsCancelled.Inc()
		s.invalidateAvailability(ctx, booking.TurfID, booking.BookingDate.Format(dateLayout))
		s.publish(models.EventBookingCancelled, models.BookingCancelledEvent{
			BookingID: booking.ID,
			TurfID:    booking.TurfID,
			Timestamp: time.Now(),
		})
		return nil
	}

	return s.bookings.UpdateStatus(ctx, bookingID, status)
}

func (s *BookingService) GetForUser(ctx context.Context, bookingID, userID int64, isStaff bool) (*models.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperrors.ErrBookingNotFound
	}
	if !isStaff && booking.UserID != userID {
		return nil, apperrors.ErrForbidden
	}

	booking.Hours, err = s.bookings.GetHours(ctx, bookingID)
	return booking, err
}

func (s *BookingService) ListForUser(ctx context.Context, userID int64) ([]models.Booking, error) {
	bookings, err := s.bookings.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.fillHours(ctx, bookings)
}

func (s *BookingService) ListForLocationAndDate(ctx context.Context, locationID int64, date string) ([]models.Booking, error) {
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	bookings, err := s.bookings.GetByLocationAndDate(ctx, locationID, day)
	if err != nil {
		return nil, err
	}
	return s.fillHours(ctx, bookings)
}

func (s *BookingService) fillHours(ctx context.Context, bookings []models.Booking) ([]models.Booking, error) {
	for i := range bookings {
		hours, err := s.bookings.GetHours(ctx, bookings[i].ID)
		if err != nil {
			return nil, err
		}
		bookings[i].Hours = hours
	}
	return bookings, nil
}

func (s *BookingService) invalidateAvailability(ctx context.Context, turfID int64, date string) {
	if err := s.cache.Invalidate(ctx, turfID, date); err != nil {
		slog.Warn("Availability cache invalidation failed", "turf_id", turfID, "date", date, "error", err)
	}
}

// publish is fire-and-forget: a broker outage must not fail the booking
// that already committed.
func (s *BookingService) publish(subject string, event interface{}) {
	if s.nats == nil {
		return
	}
	if err := s.nats.Publish(subject, event); err != nil {
		slog.Error("Failed to publish event", "subject", subject, "error", err)
	}
}

// normalizeHours sorts, deduplicates and range-checks the selection.
func normalizeHours(hours []int) ([]int, error) {
	if len(hours) == 0 {
		return nil, fmt.Errorf("at least one hour must be selected")
	}

	seen := make(map[int]bool, len(hours))
	var out []int
	for _, h := range hours {
		if h < 0 || h > 23 {
			return nil, fmt.Errorf("invalid hour %d, must be between 0 and 23", h)
		}
		if seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, h)
	}
	sort.Ints(out)

	return out, nil
}

// validateBookingTime rejects past dates and, for same-day bookings,
// any hour at or before the current one.
func validateBookingTime(day time.Time, hours []int, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayOnly := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())

	if dayOnly.Before(today) {
		return apperrors.ErrPastDate
	}

	if dayOnly.Equal(today) {
		for _, h := range hours {
			if h <= now.Hour() {
				return apperrors.ErrPastTimeSlot
			}
		}
	}

	return nil
}

// generateBookingCode builds a human-readable reference from the
// creation timestamp plus a short random suffix. Uniqueness is not
// enforced; the numeric ID is the real key.
func generateBookingCode() string {
	return fmt.Sprintf("TB%s-%s",
		time.Now().Format("20060102150405"),
		uuid.New().String()[:4])
}
