package database

import (
	"fmt"
	"log/slog"
)

func (db *DB) RunMigrations() error {
	slog.Info("Running database migrations...")

	migrations := []string{
		createUsersTable,
		createLocationsTable,
		createServicesTable,
		createTurfsTable,
		createHourlyPricingTable,
		createBookingsTable,
		createBookingSlotsTable,
		createActiveSlotIndex,
		createPaymentsTable,
		createRolesTables,
		createSettingsTable,
		createBookingDateIndex,
	}

	for i, migration := range migrations {
		slog.Info("Running migration", "step", i+1)
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	slog.Info("All migrations completed successfully")
	return nil
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    full_name VARCHAR(200) NOT NULL,
    email VARCHAR(255) UNIQUE NOT NULL,
    phone VARCHAR(20),
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createLocationsTable = `
CREATE TABLE IF NOT EXISTS locations (
    id SERIAL PRIMARY KEY,
    name VARCHAR(200) NOT NULL,
    address_line VARCHAR(500),
    city VARCHAR(100),
    state VARCHAR(100),
    pincode VARCHAR(10),
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createServicesTable = `
CREATE TABLE IF NOT EXISTS services (
    id SERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    description TEXT,
    image_url VARCHAR(500),
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createTurfsTable = `
CREATE TABLE IF NOT EXISTS turfs (
    id SERIAL PRIMARY KEY,
    location_id INTEGER NOT NULL REFERENCES locations(id) ON DELETE CASCADE,
    service_id INTEGER NOT NULL REFERENCES services(id),
    name VARCHAR(200) NOT NULL,
    is_available BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createHourlyPricingTable = `
CREATE TABLE IF NOT EXISTS hourly_pricing (
    id SERIAL PRIMARY KEY,
    turf_id INTEGER NOT NULL REFERENCES turfs(id) ON DELETE CASCADE,
    hour INTEGER NOT NULL,
    price DECIMAL(10,2) NOT NULL,

    UNIQUE(turf_id, hour),
    CHECK (hour >= 0 AND hour <= 23)
);`

const createBookingsTable = `
CREATE TABLE IF NOT EXISTS bookings (
    id SERIAL PRIMARY KEY,
    booking_code VARCHAR(40) UNIQUE NOT NULL,
    user_id INTEGER NOT NULL REFERENCES users(id),
    turf_id INTEGER NOT NULL REFERENCES turfs(id),
    booking_date DATE NOT NULL,
    total_amount DECIMAL(10,2) NOT NULL DEFAULT 0,
    advance_amount DECIMAL(10,2) NOT NULL DEFAULT 0,
    received_amount DECIMAL(10,2) NOT NULL DEFAULT 0,
    payment_status VARCHAR(20) NOT NULL DEFAULT 'pending_payment',
    booking_status VARCHAR(20) NOT NULL DEFAULT 'pending_payment',
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (payment_status IN ('pending_payment', 'partial', 'paid', 'refunded')),
    CHECK (booking_status IN ('pending_payment', 'confirmed', 'completed', 'cancelled')),
    CHECK (received_amount <= total_amount)
);`

const createBookingSlotsTable = `
CREATE TABLE IF NOT EXISTS booking_slots (
    id SERIAL PRIMARY KEY,
    booking_id INTEGER NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
    turf_id INTEGER NOT NULL REFERENCES turfs(id),
    booking_date DATE NOT NULL,
    hour INTEGER NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'active',
    reserved_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (hour >= 0 AND hour <= 23),
    CHECK (status IN ('active', 'released'))
);`

// Exclusivity of a turf/date/hour across concurrent bookers. Released
// slots (cancelled bookings) fall out of the index so the hour can be
// booked again.
const createActiveSlotIndex = `
CREATE UNIQUE INDEX IF NOT EXISTS booking_slots_active_idx
ON booking_slots (turf_id, booking_date, hour)
WHERE status = 'active';`

const createPaymentsTable = `
CREATE TABLE IF NOT EXISTS payments (
    id SERIAL PRIMARY KEY,
    booking_id INTEGER NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
    amount DECIMAL(10,2) NOT NULL,
    type VARCHAR(20) NOT NULL,
    gateway VARCHAR(20) NOT NULL DEFAULT 'manual',
    gateway_order_id VARCHAR(255),
    gateway_payment_id VARCHAR(255),
    status VARCHAR(20) NOT NULL DEFAULT 'pending',
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (type IN ('advance', 'full', 'remaining', 'manual')),
    CHECK (gateway IN ('razorpay', 'payglocal', 'manual')),
    CHECK (status IN ('pending', 'success', 'failed', 'refunded'))
);`

const createRolesTables = `
CREATE TABLE IF NOT EXISTS roles (
    id SERIAL PRIMARY KEY,
    name VARCHAR(100) UNIQUE NOT NULL,
    is_system BOOLEAN NOT NULL DEFAULT FALSE
);
CREATE TABLE IF NOT EXISTS permissions (
    id SERIAL PRIMARY KEY,
    name VARCHAR(100) UNIQUE NOT NULL
);
CREATE TABLE IF NOT EXISTS role_permissions (
    id SERIAL PRIMARY KEY,
    role_id INTEGER NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
    permission_id INTEGER NOT NULL REFERENCES permissions(id) ON DELETE CASCADE,

    UNIQUE(role_id, permission_id)
);
CREATE TABLE IF NOT EXISTS user_roles (
    id SERIAL PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    role_id INTEGER NOT NULL REFERENCES roles(id) ON DELETE CASCADE,

    UNIQUE(user_id, role_id)
);
CREATE TABLE IF NOT EXISTS user_role_locations (
    id SERIAL PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    role_id INTEGER NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
    location_id INTEGER NOT NULL REFERENCES locations(id) ON DELETE CASCADE,

    UNIQUE(user_id, role_id, location_id)
);`

const createSettingsTable = `
CREATE TABLE IF NOT EXISTS settings (
    key VARCHAR(100) PRIMARY KEY,
    value VARCHAR(500) NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createBookingDateIndex = `
CREATE INDEX IF NOT EXISTS bookings_turf_date_idx
ON bookings (turf_id, booking_date);`
