package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"turfbook/internal/authz"
	"turfbook/internal/config"
	"turfbook/internal/database"
	"turfbook/internal/logger"
	"turfbook/internal/models"
	"turfbook/internal/repository"
)

var demo = flag.Bool("demo", false, "Seed demo locations, turfs and pricing in addition to roles")

type Seeder struct {
	db    *database.DB
	repos *repository.Repositories
}

func main() {
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, "text")

	slog.Info("Starting seeder...")

	db, err := database.Connect(cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	seeder := &Seeder{db: db, repos: repository.NewRepositories(db)}
	ctx := context.Background()

	if err := seeder.seedRolesAndPermissions(ctx); err != nil {
		slog.Error("Failed to seed roles", "error", err)
		os.Exit(1)
	}

	if *demo {
		if err := seeder.seedDemoCatalog(ctx); err != nil {
			slog.Error("Failed to seed demo catalog", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Seeding completed successfully!")
}

// seedRolesAndPermissions installs the built-in role and permission
// rows. Idempotent: reruns are no-ops.
func (s *Seeder) seedRolesAndPermissions(ctx context.Context) error {
	roles := []string{authz.RoleAdmin, authz.RoleSubAdmin, authz.RoleEmployee, authz.RoleCustomer}
	for _, name := range roles {
		if _, err := s.db.ExecContext(ctx, `
			INSERT INTO roles (name, is_system) VALUES ($1, TRUE)
			ON CONFLICT (name) DO NOTHING`, name); err != nil {
			return fmt.Errorf("failed to insert role %s: %w", name, err)
		}
	}

	permissions := []string{
		authz.PermissionManageBookings,
		authz.PermissionManageTurfs,
		authz.PermissionManageLocations,
		authz.PermissionViewReports,
	}
	for _, name := range permissions {
		if _, err := s.db.ExecContext(ctx, `
			INSERT INTO permissions (name) VALUES ($1)
			ON CONFLICT (name) DO NOTHING`, name); err != nil {
			return fmt.Errorf("failed to insert permission %s: %w", name, err)
		}
	}

	grants := map[string][]string{
		authz.RoleAdmin:    permissions,
		authz.RoleSubAdmin: {authz.PermissionManageBookings, authz.PermissionManageTurfs, authz.PermissionViewReports},
		authz.RoleEmployee: {authz.PermissionManageBookings},
	}
	for role, perms := range grants {
		for _, perm := range perms {
			if _, err := s.db.ExecContext(ctx, `
				INSERT INTO role_permissions (role_id, permission_id)
				SELECT r.id, p.id FROM roles r, permissions p
				WHERE r.name = $1 AND p.name = $2
				ON CONFLICT DO NOTHING`, role, perm); err != nil {
				return fmt.Errorf("failed to grant %s to %s: %w", perm, role, err)
			}
		}
	}

	slog.Info("Seeded roles and permissions", "roles", len(roles), "permissions", len(permissions))
	return nil
}

// seedDemoCatalog creates a small browsable catalog for local
// development.
func (s *Seeder) seedDemoCatalog(ctx context.Context) error {
	city := "Bengaluru"
	loc := &models.Location{Name: "Koramangala Sports Hub", City: &city}
	if err := s.repos.Locations.Create(ctx, loc); err != nil {
		return err
	}

	football := &models.Service{Name: "Football"}
	if err := s.repos.Services.Create(ctx, football); err != nil {
		return err
	}
	cricket := &models.Service{Name: "Box Cricket"}
	if err := s.repos.Services.Create(ctx, cricket); err != nil {
		return err
	}

	turfs := []*models.Turf{
		{LocationID: loc.ID, ServiceID: football.ID, Name: "Turf A (5-a-side)"},
		{LocationID: loc.ID, ServiceID: football.ID, Name: "Turf B (7-a-side)"},
		{LocationID: loc.ID, ServiceID: cricket.ID, Name: "Cricket Cage 1"},
	}

	for _, turf := range turfs {
		if err := s.repos.Turfs.Create(ctx, turf); err != nil {
			return err
		}

		// Morning and evening hours priced; evenings cost more.
		var slots []models.PricingSlot
		for hour := 6; hour < 23; hour++ {
			price := 800.0
			if hour >= 17 {
				price = 1200.0
			}
			slots = append(slots, models.PricingSlot{Hour: hour, Price: price})
		}
		if err := s.repos.Turfs.UpsertPricing(ctx, turf.ID, slots); err != nil {
			return err
		}

		slog.Info("Seeded turf", "turf_id", turf.ID, "name", turf.Name)
	}

	return nil
}
