package repository

import (
	"turfbook/internal/database"
	"turfbook/internal/search"
)

type Repositories struct {
	Locations *LocationRepository
	Services  *ServiceRepository
	Turfs     *TurfRepository
	TurfIndex *TurfSearchRepository
	Bookings  *BookingRepository
	Payments  *PaymentRepository
	Roles     *RoleRepository
	Users     *UserRepository
	Settings  *SettingsRepository
}

func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Locations: NewLocationRepository(db),
		Services:  NewServiceRepository(db),
		Turfs:     NewTurfRepository(db),
		TurfIndex: nil, // Set when the Elasticsearch client is available
		Bookings:  NewBookingRepository(db),
		Payments:  NewPaymentRepository(db),
		Roles:     NewRoleRepository(db),
		Users:     NewUserRepository(db),
		Settings:  NewSettingsRepository(db),
	}
}

func NewRepositoriesWithSearch(db *database.DB, es *search.ElasticsearchClient) *Repositories {
	repos := NewRepositories(db)
	repos.TurfIndex = NewTurfSearchRepository(es)
	return repos
}
