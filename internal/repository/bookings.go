package repository

import (
	"context"
	"database/sql"
	"time"

	"turfbook/internal/database"
	apperrors "turfbook/internal/errors"
	"turfbook/internal/models"
)

type BookingRepository struct {
	db *database.DB
}

func NewBookingRepository(db *database.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// CreateWithSlots inserts the booking header and one slot row per hour
// in a single transaction. The turf row is locked first so concurrent
// bookings for the same turf serialize; the partial unique index on
// active slots is the backstop. A losing writer gets ErrSlotTaken and
// the whole transaction rolls back.
func (r *BookingRepository) CreateWithSlots(ctx context.Context, booking *models.Booking, hours []int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var turfID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM turfs WHERE id = $1 FOR UPDATE`, booking.TurfID).Scan(&turfID)
	if err == sql.ErrNoRows {
		return apperrors.ErrTurfNotFound
	}
	if err != nil {
		return err
	}

	headerQuery := `
		INSERT INTO bookings (booking_code, user_id, turf_id, booking_date,
		                      total_amount, advance_amount, received_amount,
		                      payment_status, booking_status)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8)
		RETURNING id, created_at, updated_at`

	err = tx.QueryRowContext(ctx, headerQuery,
		booking.BookingCode,
		booking.UserID,
		booking.TurfID,
		booking.BookingDate,
		booking.TotalAmount,
		booking.AdvanceAmount,
		booking.PaymentStatus,
		booking.BookingStatus,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		return err
	}

	slotQuery := `
		INSERT INTO booking_slots (booking_id, turf_id, booking_date, hour)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (turf_id, booking_date, hour) WHERE status = 'active' DO NOTHING`

	for _, hour := range hours {
		res, err := tx.ExecContext(ctx, slotQuery, booking.ID, booking.TurfID, booking.BookingDate, hour)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperrors.ErrSlotTaken
		}
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	booking := &models.Booking{}
	query := `
		SELECT id, booking_code, user_id, turf_id, booking_date,
		       total_amount, advance_amount, received_amount,
		       payment_status, booking_status, created_at, updated_at
		FROM bookings
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&booking.ID,
		&booking.BookingCode,
		&booking.UserID,
		&booking.TurfID,
		&booking.BookingDate,
		&booking.TotalAmount,
		&booking.AdvanceAmount,
		&booking.ReceivedAmount,
		&booking.PaymentStatus,
		&booking.BookingStatus,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return booking, err
}

func (r *BookingRepository) GetByUserID(ctx context.Context, userID int64) ([]models.Booking, error) {
	query := `
		SELECT id, booking_code, user_id, turf_id, booking_date,
		       total_amount, advance_amount, received_amount,
		       payment_status, booking_status, created_at, updated_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC`

	return r.queryBookings(ctx, query, userID)
}

func (r *BookingRepository) GetByLocationAndDate(ctx context.Context, locationID int64, date time.Time) ([]models.Booking, error) {
	query := `
		SELECT b.id, b.booking_code, b.user_id, b.turf_id, b.booking_date,
		       b.total_amount, b.advance_amount, b.received_amount,
		       b.payment_status, b.booking_status, b.created_at, b.updated_at
		FROM bookings b
		JOIN turfs t ON t.id = b.turf_id
		WHERE t.location_id = $1 AND b.booking_date = $2
		ORDER BY b.created_at DESC`

	return r.queryBookings(ctx, query, locationID, date)
}

func (r *BookingRepository) queryBookings(ctx context.Context, query string, args ...interface{}) ([]models.Booking, error) {
	var bookings []models.Booking

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var booking models.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.BookingCode,
			&booking.UserID,
			&booking.TurfID,
			&booking.BookingDate,
			&booking.TotalAmount,
			&booking.AdvanceAmount,
			&booking.ReceivedAmount,
			&booking.PaymentStatus,
			&booking.BookingStatus,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

// GetHours returns the reserved hours of a booking, including released
// ones, so cancelled bookings still render their original slots.
func (r *BookingRepository) GetHours(ctx context.Context, bookingID int64) ([]int, error) {
	query := `SELECT hour FROM booking_slots WHERE booking_id = $1 ORDER BY hour`

	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hours []int
	for rows.Next() {
		var hour int
		if err := rows.Scan(&hour); err != nil {
			return nil, err
		}
		hours = append(hours, hour)
	}

	return hours, rows.Err()
}

// GetOccupiedHours returns hours held by active slots for a turf/date.
func (r *BookingRepository) GetOccupiedHours(ctx context.Context, turfID int64, date time.Time) (map[int]bool, error) {
	query := `
		SELECT hour FROM booking_slots
		WHERE turf_id = $1 AND booking_date = $2 AND status = 'active'`

	rows, err := r.db.QueryContext(ctx, query, turfID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	occupied := make(map[int]bool)
	for rows.Next() {
		var hour int
		if err := rows.Scan(&hour); err != nil {
			return nil, err
		}
		occupied[hour] = true
	}

	return occupied, rows.Err()
}

// UpdateBalance writes the new cumulative received amount and derived
// payment status to the header.
func (r *BookingRepository) UpdateBalance(ctx context.Context, id int64, received float64, paymentStatus string) error {
	query := `
		UPDATE bookings
		SET received_amount = $1, payment_status = $2, updated_at = NOW()
		WHERE id = $3`

	_, err := r.db.ExecContext(ctx, query, received, paymentStatus, id)
	return err
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `
		UPDATE bookings
		SET booking_status = $1, updated_at = NOW()
		WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}

// Cancel marks the booking cancelled and releases its active slots in
// one transaction, freeing the hours for rebooking.
func (r *BookingRepository) Cancel(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	statusQuery := `
		UPDATE bookings
		SET booking_status = 'cancelled', updated_at = NOW()
		WHERE id = $1`
	if _, err := tx.ExecContext(ctx, statusQuery, id); err != nil {
		return err
	}

	releaseQuery := `
		UPDATE booking_slots
		SET status = 'released'
		WHERE booking_id = $1 AND status = 'active'`
	if _, err := tx.ExecContext(ctx, releaseQuery, id); err != nil {
		return err
	}

	return tx.Commit()
}

// GetExpired returns pending-payment bookings created before the cutoff.
func (r *BookingRepository) GetExpired(ctx context.Context, cutoff time.Time) ([]models.Booking, error) {
	query := `
		SELECT id, booking_code, user_id, turf_id, booking_date,
		       total_amount, advance_amount, received_amount,
		       payment_status, booking_status, created_at, updated_at
		FROM bookings
		WHERE booking_status = 'pending_payment'
		  AND payment_status = 'pending_payment'
		  AND created_at < $1
		ORDER BY created_at ASC`

	return r.queryBookings(ctx, query, cutoff)
}

// GetConfirmedForDate returns confirmed bookings on a date, used by the
// reminder job.
func (r *BookingRepository) GetConfirmedForDate(ctx context.Context, date time.Time) ([]models.Booking, error) {
	query := `
		SELECT id, booking_code, user_id, turf_id, booking_date,
		       total_amount, advance_amount, received_amount,
		       payment_status, booking_status, created_at, updated_at
		FROM bookings
		WHERE booking_status = 'confirmed' AND booking_date = $1
		ORDER BY turf_id`

	return r.queryBookings(ctx, query, date)
}

// GetSnapshot loads the denormalized view the notification dispatcher
// renders from.
func (r *BookingRepository) GetSnapshot(ctx context.Context, bookingID int64) (*models.NotificationSnapshot, error) {
	snap := &models.NotificationSnapshot{}
	var phone sql.NullString

	query := `
		SELECT b.id, b.booking_code, u.full_name, COALESCE(u.phone, ''),
		       l.name, s.name, t.name, b.booking_date,
		       b.total_amount, b.received_amount
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		JOIN turfs t ON t.id = b.turf_id
		JOIN locations l ON l.id = t.location_id
		JOIN services s ON s.id = t.service_id
		WHERE b.id = $1`

	err := r.db.QueryRowContext(ctx, query, bookingID).Scan(
		&snap.BookingID,
		&snap.BookingCode,
		&snap.CustomerName,
		&phone,
		&snap.LocationName,
		&snap.ServiceName,
		&snap.TurfName,
		&snap.BookingDate,
		&snap.TotalAmount,
		&snap.ReceivedAmount,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	snap.CustomerPhone = phone.String

	hours, err := r.GetHours(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	snap.Hours = hours

	return snap, nil
}
