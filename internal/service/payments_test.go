package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "turfbook/internal/errors"
	"turfbook/internal/models"
)

type fakeBalanceStore struct {
	booking          *models.Booking
	updateBalanceErr error
	balanceWrites    int
	statusWrites     []string
}

func (f *fakeBalanceStore) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, nil
	}
	cp := *f.booking
	return &cp, nil
}

func (f *fakeBalanceStore) UpdateBalance(ctx context.Context, id int64, received float64, paymentStatus string) error {
	f.balanceWrites++
	if f.updateBalanceErr != nil {
		return f.updateBalanceErr
	}
	f.booking.ReceivedAmount = received
	f.booking.PaymentStatus = paymentStatus
	return nil
}

func (f *fakeBalanceStore) UpdateStatus(ctx context.Context, id int64, status string) error {
	f.statusWrites = append(f.statusWrites, status)
	f.booking.BookingStatus = status
	return nil
}

type fakePaymentLedger struct {
	rows      []models.Payment
	createErr error
	pending   *models.Payment
}

func (f *fakePaymentLedger) Create(ctx context.Context, payment *models.Payment) error {
	if f.createErr != nil {
		return f.createErr
	}
	payment.ID = int64(len(f.rows) + 1)
	f.rows = append(f.rows, *payment)
	return nil
}

func (f *fakePaymentLedger) GetByBookingID(ctx context.Context, bookingID int64) ([]models.Payment, error) {
	return f.rows, nil
}

func (f *fakePaymentLedger) GetPendingByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	return f.pending, nil
}

func (f *fakePaymentLedger) UpdateStatus(ctx context.Context, id int64, status string, gatewayPaymentID *string) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].Status = status
		}
	}
	return nil
}

type fakeSettingsStore struct {
	values map[string]string
}

func (f *fakeSettingsStore) Get(ctx context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeSettingsStore) Set(ctx context.Context, key, value string) error {
	if f.values == nil {
		f.values = map[string]string{}
	}
	f.values[key] = value
	return nil
}

func newBalanceFixture(received float64, bookingStatus string) (*PaymentService, *fakeBalanceStore, *fakePaymentLedger) {
	store := &fakeBalanceStore{booking: &models.Booking{
		ID:             1,
		BookingCode:    "TB20260829120000-ab12",
		TotalAmount:    1000,
		ReceivedAmount: received,
		PaymentStatus:  derivePaymentStatus(received, 1000),
		BookingStatus:  bookingStatus,
	}}
	ledger := &fakePaymentLedger{}
	svc := NewPaymentService(store, ledger, &fakeSettingsStore{}, nil, nil)
	return svc, store, ledger
}

func TestUpdateBalanceAppendsLedgerRow(t *testing.T) {
	svc, store, ledger := newBalanceFixture(0, models.BookingStatusConfirmed)

	booking, err := svc.UpdateBalance(context.Background(), 1, 400)
	require.NoError(t, err)

	require.Len(t, ledger.rows, 1)
	assert.Equal(t, 400.0, ledger.rows[0].Amount)
	assert.Equal(t, models.PaymentTypeManual, ledger.rows[0].Type)
	assert.Equal(t, models.GatewayManual, ledger.rows[0].Gateway)
	assert.Equal(t, models.LedgerStatusSuccess, ledger.rows[0].Status)

	assert.Equal(t, 400.0, store.booking.ReceivedAmount)
	assert.Equal(t, models.PaymentStatusPartial, booking.PaymentStatus)
}

func TestUpdateBalanceRepeatedAmountWritesNoSecondRow(t *testing.T) {
	svc, _, ledger := newBalanceFixture(0, models.BookingStatusConfirmed)

	_, err := svc.UpdateBalance(context.Background(), 1, 400)
	require.NoError(t, err)
	_, err = svc.UpdateBalance(context.Background(), 1, 400)
	require.NoError(t, err)

	assert.Len(t, ledger.rows, 1)
}

func TestUpdateBalanceLedgerFailureLeavesHeaderUntouched(t *testing.T) {
	svc, store, ledger := newBalanceFixture(0, models.BookingStatusConfirmed)
	ledger.createErr = errors.New("insert failed")

	_, err := svc.UpdateBalance(context.Background(), 1, 400)
	require.Error(t, err)
	assert.Equal(t, 0, store.balanceWrites)
	assert.Equal(t, 0.0, store.booking.ReceivedAmount)

	// The old cumulative amount is still on the header, so the retry
	// computes the same delta and the payment lands in the ledger.
	ledger.createErr = nil
	_, err = svc.UpdateBalance(context.Background(), 1, 400)
	require.NoError(t, err)
	require.Len(t, ledger.rows, 1)
	assert.Equal(t, 400.0, ledger.rows[0].Amount)
	assert.Equal(t, 400.0, store.booking.ReceivedAmount)
}

func TestUpdateBalanceDecreaseSkipsLedger(t *testing.T) {
	svc, store, ledger := newBalanceFixture(400, models.BookingStatusConfirmed)

	booking, err := svc.UpdateBalance(context.Background(), 1, 200)
	require.NoError(t, err)

	assert.Empty(t, ledger.rows)
	assert.Equal(t, 200.0, store.booking.ReceivedAmount)
	assert.Equal(t, models.PaymentStatusPartial, booking.PaymentStatus)
}

func TestUpdateBalanceRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		wantErr error
	}{
		{"negative", -50, apperrors.ErrNegativeAmount},
		{"exceeds total", 1500, apperrors.ErrAmountExceedsTotal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, ledger := newBalanceFixture(0, models.BookingStatusConfirmed)

			_, err := svc.UpdateBalance(context.Background(), 1, tt.amount)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, ledger.rows)
			assert.Equal(t, 0, store.balanceWrites)
		})
	}
}

func TestUpdateBalanceRejectsCancelledBooking(t *testing.T) {
	svc, store, ledger := newBalanceFixture(0, models.BookingStatusCancelled)

	_, err := svc.UpdateBalance(context.Background(), 1, 400)
	assert.ErrorIs(t, err, apperrors.ErrCancelledBooking)
	assert.Empty(t, ledger.rows)
	assert.Equal(t, 0, store.balanceWrites)
}

func TestDerivePaymentStatus(t *testing.T) {
	tests := []struct {
		name     string
		received float64
		total    float64
		want     string
	}{
		{"nothing received", 0, 1000, models.PaymentStatusPending},
		{"partial", 300, 1000, models.PaymentStatusPartial},
		{"exactly total", 1000, 1000, models.PaymentStatusPaid},
		{"over total", 1200, 1000, models.PaymentStatusPaid},
		{"zero total zero received", 0, 0, models.PaymentStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, derivePaymentStatus(tt.received, tt.total))
		})
	}
}

func TestIsSuccessStatus(t *testing.T) {
	assert.True(t, isSuccessStatus("success"))
	assert.True(t, isSuccessStatus("paid"))
	assert.True(t, isSuccessStatus("captured"))
	assert.False(t, isSuccessStatus("failed"))
	assert.False(t, isSuccessStatus(""))
}
