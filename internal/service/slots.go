package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	apperrors "turfbook/internal/errors"
	"turfbook/internal/models"
)

const dateLayout = "2006-01-02"

// GetAvailability builds the 24-hour grid for a turf and date. An hour
// is Available when no active slot holds it and it is not in the past;
// Priced when a price row exists. Both flags must be true for the hour
// to be bookable, and the client is expected to enforce the same rule.
func (s *TurfService) GetAvailability(ctx context.Context, turfID int64, date string) (*models.AvailabilityResponse, error) {
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	turf, err := s.repos.Turfs.GetByID(ctx, turfID)
	if err != nil {
		return nil, err
	}
	if turf == nil {
		return nil, apperrors.ErrTurfNotFound
	}

	if cached, hit, err := s.cache.GetAvailability(ctx, turfID, date); err != nil {
		slog.Warn("Availability cache read failed", "turf_id", turfID, "error", err)
	} else if hit {
		return &models.AvailabilityResponse{TurfID: turfID, Date: date, Slots: cached}, nil
	}

	occupied, err := s.repos.Bookings.GetOccupiedHours(ctx, turfID, day)
	if err != nil {
		return nil, err
	}

	prices, err := s.repos.Turfs.GetPricing(ctx, turfID)
	if err != nil {
		return nil, err
	}

	slots := buildAvailability(day, occupied, prices, time.Now())

	if err := s.cache.SetAvailability(ctx, turfID, date, slots); err != nil {
		slog.Warn("Availability cache write failed", "turf_id", turfID, "error", err)
	}

	return &models.AvailabilityResponse{TurfID: turfID, Date: date, Slots: slots}, nil
}

// buildAvailability marks occupied hours unavailable. On the current
// day every hour up to and including the current one is excluded, so
// only hours strictly after now remain bookable; past days yield a
// fully unavailable grid.
func buildAvailability(day time.Time, occupied map[int]bool, prices map[int]float64, now time.Time) []models.AvailabilitySlot {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayOnly := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())

	slots := make([]models.AvailabilitySlot, 24)
	for hour := 0; hour < 24; hour++ {
		price, priced := prices[hour]

		available := !occupied[hour]
		switch {
		case dayOnly.Before(today):
			available = false
		case dayOnly.Equal(today) && hour <= now.Hour():
			available = false
		}

		slot := models.AvailabilitySlot{Hour: hour, Available: available, Priced: priced}
		if priced {
			p := price
			slot.Price = &p
		}
		slots[hour] = slot
	}

	return slots
}
