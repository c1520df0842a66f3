package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "turfbook/internal/errors"
	"turfbook/internal/models"
)

type fakeBookingStore struct {
	booking   *models.Booking
	cancelled bool
	statusSet string
}

func (f *fakeBookingStore) CreateWithSlots(ctx context.Context, booking *models.Booking, hours []int) error {
	return nil
}

func (f *fakeBookingStore) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, nil
	}
	cp := *f.booking
	return &cp, nil
}

func (f *fakeBookingStore) GetByUserID(ctx context.Context, userID int64) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingStore) GetByLocationAndDate(ctx context.Context, locationID int64, date time.Time) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingStore) GetHours(ctx context.Context, bookingID int64) ([]int, error) {
	return nil, nil
}

func (f *fakeBookingStore) UpdateStatus(ctx context.Context, id int64, status string) error {
	f.statusSet = status
	f.booking.BookingStatus = status
	return nil
}

func (f *fakeBookingStore) Cancel(ctx context.Context, id int64) error {
	f.cancelled = true
	f.booking.BookingStatus = models.BookingStatusCancelled
	return nil
}

func newLifecycleFixture(status string) (*BookingService, *fakeBookingStore) {
	store := &fakeBookingStore{booking: &models.Booking{
		ID:            1,
		UserID:        7,
		TurfID:        3,
		BookingDate:   time.Date(2026, 9, 5, 0, 0, 0, 0, time.Local),
		BookingStatus: status,
	}}
	return NewBookingService(store, nil, nil, nil), store
}

func TestUpdateStatusRejectsCancelledBooking(t *testing.T) {
	svc, store := newLifecycleFixture(models.BookingStatusCancelled)

	err := svc.UpdateStatus(context.Background(), 1, models.BookingStatusCompleted)
	assert.ErrorIs(t, err, apperrors.ErrCancelledBooking)
	assert.Empty(t, store.statusSet)
	assert.False(t, store.cancelled)
}

func TestUpdateStatusCancelReleasesSlots(t *testing.T) {
	svc, store := newLifecycleFixture(models.BookingStatusConfirmed)

	err := svc.UpdateStatus(context.Background(), 1, models.BookingStatusCancelled)
	require.NoError(t, err)

	// Cancellation goes through Cancel, never a plain status write.
	assert.True(t, store.cancelled)
	assert.Empty(t, store.statusSet)
}

func TestCancelRejectsCancelledBooking(t *testing.T) {
	svc, _ := newLifecycleFixture(models.BookingStatusCancelled)

	err := svc.Cancel(context.Background(), 1, 7, false)
	assert.ErrorIs(t, err, apperrors.ErrCancelledBooking)
}

func TestCancelRejectsOtherUsersBooking(t *testing.T) {
	svc, store := newLifecycleFixture(models.BookingStatusConfirmed)

	err := svc.Cancel(context.Background(), 1, 8, false)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.False(t, store.cancelled)
}

func TestValidateBookingTime(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 30, 0, 0, time.Local)

	tests := []struct {
		name    string
		day     time.Time
		hours   []int
		wantErr error
	}{
		{
			name:  "future date",
			day:   time.Date(2026, 9, 5, 0, 0, 0, 0, time.Local),
			hours: []int{0, 23},
		},
		{
			name:    "yesterday",
			day:     time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local),
			hours:   []int{20},
			wantErr: apperrors.ErrPastDate,
		},
		{
			name:  "today future hours",
			day:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local),
			hours: []int{15, 16},
		},
		{
			name:    "today current hour rejected",
			day:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local),
			hours:   []int{14},
			wantErr: apperrors.ErrPastTimeSlot,
		},
		{
			name:    "today past hour rejected",
			day:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local),
			hours:   []int{9, 15},
			wantErr: apperrors.ErrPastTimeSlot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBookingTime(tt.day, tt.hours, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNormalizeHours(t *testing.T) {
	hours, err := normalizeHours([]int{18, 17, 18})
	require.NoError(t, err)
	assert.Equal(t, []int{17, 18}, hours)

	_, err = normalizeHours([]int{24})
	assert.Error(t, err)

	_, err = normalizeHours([]int{-1})
	assert.Error(t, err)

	_, err = normalizeHours(nil)
	assert.Error(t, err)
}

func TestGenerateBookingCode(t *testing.T) {
	code := generateBookingCode()

	assert.True(t, strings.HasPrefix(code, "TB"))
	parts := strings.Split(code, "-")
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], 16)
	assert.Len(t, parts[1], 4)
}
