package repository

import (
	"context"
	"database/sql"

	"turfbook/internal/database"
	"turfbook/internal/models"
)

type TurfRepository struct {
	db *database.DB
}

func NewTurfRepository(db *database.DB) *TurfRepository {
	return &TurfRepository{db: db}
}

func (r *TurfRepository) Create(ctx context.Context, turf *models.Turf) error {
	query := `
		INSERT INTO turfs (location_id, service_id, name, is_available)
		VALUES ($1, $2, $3, TRUE)
		RETURNING id, is_available, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		turf.LocationID,
		turf.ServiceID,
		turf.Name,
	).Scan(&turf.ID, &turf.IsAvailable, &turf.CreatedAt, &turf.UpdatedAt)

	return err
}

func (r *TurfRepository) GetByID(ctx context.Context, id int64) (*models.Turf, error) {
	turf := &models.Turf{}
	query := `
		SELECT t.id, t.location_id, t.service_id, t.name, t.is_available,
		       t.created_at, t.updated_at, l.name, s.name
		FROM turfs t
		JOIN locations l ON l.id = t.location_id
		JOIN services s ON s.id = t.service_id
		WHERE t.id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&turf.ID,
		&turf.LocationID,
		&turf.ServiceID,
		&turf.Name,
		&turf.IsAvailable,
		&turf.CreatedAt,
		&turf.UpdatedAt,
		&turf.LocationName,
		&turf.ServiceName,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return turf, err
}

func (r *TurfRepository) List(ctx context.Context, locationID int64) ([]models.Turf, error) {
	var turfs []models.Turf
	var args []interface{}

	query := `
		SELECT t.id, t.location_id, t.service_id, t.name, t.is_available,
		       t.created_at, t.updated_at, l.name, s.name
		FROM turfs t
		JOIN locations l ON l.id = t.location_id
		JOIN services s ON s.id = t.service_id
		WHERE l.is_active = TRUE`

	if locationID > 0 {
		query += ` AND t.location_id = $1`
		args = append(args, locationID)
	}
	query += ` ORDER BY l.name, t.name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var turf models.Turf
		err := rows.Scan(
			&turf.ID,
			&turf.LocationID,
			&turf.ServiceID,
			&turf.Name,
			&turf.IsAvailable,
			&turf.CreatedAt,
			&turf.UpdatedAt,
			&turf.LocationName,
			&turf.ServiceName,
		)
		if err != nil {
			return nil, err
		}
		turfs = append(turfs, turf)
	}

	return turfs, rows.Err()
}

func (r *TurfRepository) SetAvailable(ctx context.Context, id int64, available bool) error {
	query := `UPDATE turfs SET is_available = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, available, id)
	return err
}

// GetPricing returns the sparse hour→price table for a turf. Hours with
// no row are not bookable.
func (r *TurfRepository) GetPricing(ctx context.Context, turfID int64) (map[int]float64, error) {
	query := `SELECT hour, price FROM hourly_pricing WHERE turf_id = $1 ORDER BY hour`

	rows, err := r.db.QueryContext(ctx, query, turfID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := make(map[int]float64)
	for rows.Next() {
		var hour int
		var price float64
		if err := rows.Scan(&hour, &price); err != nil {
			return nil, err
		}
		prices[hour] = price
	}

	return prices, rows.Err()
}

// UpsertPricing replaces the price for each given hour. The unique
// constraint on (turf_id, hour) keeps at most one row per hour.
func (r *TurfRepository) UpsertPricing(ctx context.Context, turfID int64, slots []models.PricingSlot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO hourly_pricing (turf_id, hour, price)
		VALUES ($1, $2, $3)
		ON CONFLICT (turf_id, hour) DO UPDATE SET price = EXCLUDED.price`

	for _, slot := range slots {
		if _, err := tx.ExecContext(ctx, query, turfID, slot.Hour, slot.Price); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *TurfRepository) DeletePricing(ctx context.Context, turfID int64, hour int) error {
	query := `DELETE FROM hourly_pricing WHERE turf_id = $1 AND hour = $2`
	_, err := r.db.ExecContext(ctx, query, turfID, hour)
	return err
}
