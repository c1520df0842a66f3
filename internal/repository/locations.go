package repository

import (
	"context"
	"database/sql"

	"turfbook/internal/database"
	"turfbook/internal/models"
)

type LocationRepository struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) Create(ctx context.Context, loc *models.Location) error {
	query := `
		INSERT INTO locations (name, address_line, city, state, pincode, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING id, is_active, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		loc.Name,
		loc.AddressLine,
		loc.City,
		loc.State,
		loc.Pincode,
	).Scan(&loc.ID, &loc.IsActive, &loc.CreatedAt, &loc.UpdatedAt)

	return err
}

func (r *LocationRepository) GetByID(ctx context.Context, id int64) (*models.Location, error) {
	loc := &models.Location{}
	query := `
		SELECT id, name, address_line, city, state, pincode, is_active, created_at, updated_at
		FROM locations
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&loc.ID,
		&loc.Name,
		&loc.AddressLine,
		&loc.City,
		&loc.State,
		&loc.Pincode,
		&loc.IsActive,
		&loc.CreatedAt,
		&loc.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return loc, err
}

func (r *LocationRepository) List(ctx context.Context, activeOnly bool) ([]models.Location, error) {
	var locations []models.Location
	query := `
		SELECT id, name, address_line, city, state, pincode, is_active, created_at, updated_at
		FROM locations`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var loc models.Location
		err := rows.Scan(
			&loc.ID,
			&loc.Name,
			&loc.AddressLine,
			&loc.City,
			&loc.State,
			&loc.Pincode,
			&loc.IsActive,
			&loc.CreatedAt,
			&loc.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}

	return locations, rows.Err()
}

func (r *LocationRepository) SetActive(ctx context.Context, id int64, active bool) error {
	query := `UPDATE locations SET is_active = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, active, id)
	return err
}
