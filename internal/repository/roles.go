package repository

import (
	"context"

	"turfbook/internal/database"
)

type RoleRepository struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// GetRoleNamesForUser returns the union of the user's global and
// location-scoped role assignments, deduplicated by name. Callers apply
// the customer default when the result is empty.
func (r *RoleRepository) GetRoleNamesForUser(ctx context.Context, userID int64) ([]string, error) {
	query := `
		SELECT r.name FROM user_roles ur
		JOIN roles r ON r.id = ur.role_id
		WHERE ur.user_id = $1
		UNION
		SELECT r.name FROM user_role_locations url
		JOIN roles r ON r.id = url.role_id
		WHERE url.user_id = $1
		ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// GetPermissionNamesForUser joins the user's roles (both assignment
// tables) through role_permissions to the permission lookup.
func (r *RoleRepository) GetPermissionNamesForUser(ctx context.Context, userID int64) ([]string, error) {
	query := `
		SELECT DISTINCT p.name
		FROM permissions p
		JOIN role_permissions rp ON rp.permission_id = p.id
		WHERE rp.role_id IN (
			SELECT role_id FROM user_roles WHERE user_id = $1
			UNION
			SELECT role_id FROM user_role_locations WHERE user_id = $1
		)
		ORDER BY p.name`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// GetLocationIDsForUser returns the locations a location-scoped
// assignment grants the user, for staff views.
func (r *RoleRepository) GetLocationIDsForUser(ctx context.Context, userID int64) ([]int64, error) {
	query := `
		SELECT DISTINCT location_id FROM user_role_locations
		WHERE user_id = $1
		ORDER BY location_id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
