package repository

import (
	"context"
	"database/sql"

	"turfbook/internal/database"
	"turfbook/internal/models"
)

type PaymentRepository struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (booking_id, amount, type, gateway,
		                      gateway_order_id, gateway_payment_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		payment.BookingID,
		payment.Amount,
		payment.Type,
		payment.Gateway,
		payment.GatewayOrderID,
		payment.GatewayPaymentID,
		payment.Status,
	).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)

	return err
}

func (r *PaymentRepository) GetByBookingID(ctx context.Context, bookingID int64) ([]models.Payment, error) {
	var payments []models.Payment
	query := `
		SELECT id, booking_id, amount, type, gateway,
		       gateway_order_id, gateway_payment_id, status, created_at, updated_at
		FROM payments
		WHERE booking_id = $1
		ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var payment models.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.BookingID,
			&payment.Amount,
			&payment.Type,
			&payment.Gateway,
			&payment.GatewayOrderID,
			&payment.GatewayPaymentID,
			&payment.Status,
			&payment.CreatedAt,
			&payment.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}

	return payments, rows.Err()
}

// GetPendingByOrderID resolves a gateway webhook back to its ledger row.
func (r *PaymentRepository) GetPendingByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	payment := &models.Payment{}
	query := `
		SELECT id, booking_id, amount, type, gateway,
		       gateway_order_id, gateway_payment_id, status, created_at, updated_at
		FROM payments
		WHERE gateway_order_id = $1 AND status = 'pending'`

	err := r.db.QueryRowContext(ctx, query, orderID).Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.Amount,
		&payment.Type,
		&payment.Gateway,
		&payment.GatewayOrderID,
		&payment.GatewayPaymentID,
		&payment.Status,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return payment, err
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, id int64, status string, gatewayPaymentID *string) error {
	query := `
		UPDATE payments
		SET status = $1, gateway_payment_id = COALESCE($2, gateway_payment_id), updated_at = NOW()
		WHERE id = $3`

	_, err := r.db.ExecContext(ctx, query, status, gatewayPaymentID, id)
	return err
}
