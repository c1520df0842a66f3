package repository

import (
	"context"
	"database/sql"

	"turfbook/internal/database"
	"turfbook/internal/models"
)

type ServiceRepository struct {
	db *database.DB
}

func NewServiceRepository(db *database.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, svc *models.Service) error {
	query := `
		INSERT INTO services (name, description, image_url, is_active)
		VALUES ($1, $2, $3, TRUE)
		RETURNING id, is_active, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		svc.Name,
		svc.Description,
		svc.ImageURL,
	).Scan(&svc.ID, &svc.IsActive, &svc.CreatedAt, &svc.UpdatedAt)

	return err
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*models.Service, error) {
	svc := &models.Service{}
	query := `
		SELECT id, name, description, image_url, is_active, created_at, updated_at
		FROM services
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&svc.ID,
		&svc.Name,
		&svc.Description,
		&svc.ImageURL,
		&svc.IsActive,
		&svc.CreatedAt,
		&svc.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return svc, err
}

func (r *ServiceRepository) List(ctx context.Context, activeOnly bool) ([]models.Service, error) {
	var services []models.Service
	query := `
		SELECT id, name, description, image_url, is_active, created_at, updated_at
		FROM services`
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
		var svc models.Service
		err := rows.Scan(
			&svc.ID,
			&svc.Name,
			&svc.Description,
			&svc.ImageURL,
			&svc.IsActive,
			&svc.CreatedAt,
			&svc.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}

	return services, rows.Err()
}
