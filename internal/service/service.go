package service

import (
	"turfbook/internal/cache"
	"turfbook/internal/external"
	"turfbook/internal/messaging"
	"turfbook/internal/repository"
)

// Services bundles the business-logic layer. Handlers talk to these,
// never to repositories directly.
type Services struct {
	Turfs    *TurfService
	Bookings *BookingService
	Payments *PaymentService
	Authz    *AuthzService
}

type Deps struct {
	Repos    *repository.Repositories
	NATS     *messaging.NATSClient
	Cache    *cache.AvailabilityCache
	Gateways map[string]external.PaymentGateway
}

func NewServices(deps Deps) *Services {
	return &Services{
		Turfs:    NewTurfService(deps.Repos, deps.Cache),
		Bookings: NewBookingService(deps.Repos.Bookings, deps.Repos.Turfs, deps.NATS, deps.Cache),
		Payments: NewPaymentService(deps.Repos.Bookings, deps.Repos.Payments, deps.Repos.Settings, deps.NATS, deps.Gateways),
		Authz:    NewAuthzService(deps.Repos),
	}
}
