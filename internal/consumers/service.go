package consumers

import (
	"context"
	"log/slog"

	"turfbook/internal/config"
	"turfbook/internal/database"
	"turfbook/internal/external"
	"turfbook/internal/messaging"
	"turfbook/internal/models"
	"turfbook/internal/notification"
	"turfbook/internal/repository"
)

// ConsumerService runs the durable queue subscriptions that turn
// booking and payment events into customer notifications.
type ConsumerService struct {
	db       *database.DB
	nats     *messaging.NATSClient
	repos    *repository.Repositories
	handlers *Handlers
}

func NewConsumerService(cfg *config.Config) (*ConsumerService, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}

	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		return nil, err
	}

	repos := repository.NewRepositories(db)

	whatsapp := external.NewWhatsAppClient(cfg.WhatsApp)
	dispatcher := notification.NewDispatcher(whatsapp, "en")

	handlers := NewHandlers(repos, dispatcher)

	return &ConsumerService{
		db:       db,
		nats:     natsClient,
		repos:    repos,
		handlers: handlers,
	}, nil
}

// Repos exposes the repositories for the background jobs that share
// this process.
func (cs *ConsumerService) Repos() *repository.Repositories {
	return cs.repos
}

// NATS exposes the broker connection for the background jobs.
func (cs *ConsumerService) NATS() *messaging.NATSClient {
	return cs.nats
}

func (cs *ConsumerService) Start() error {
	slog.Info("Starting NATS consumers...")

	subjects := map[string]func(*Handlers) natsHandler{
		models.EventBookingCreated:   func(h *Handlers) natsHandler { return h.HandleBookingCreated },
		models.EventBookingCancelled: func(h *Handlers) natsHandler { return h.HandleBookingCancelled },
		models.EventPaymentRecorded:  func(h *Handlers) natsHandler { return h.HandlePaymentRecorded },
		models.EventBookingReminder:  func(h *Handlers) natsHandler { return h.HandleBookingReminder },
	}

	for subject, handler := range subjects {
		if _, err := cs.nats.SubscribeQueue(subject, "notifications", handler(cs.handlers)); err != nil {
			return err
		}
	}

	slog.Info("All consumers started successfully")
	return nil
}

func (cs *ConsumerService) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down consumer service...")

	if cs.nats != nil {
		if err := cs.nats.Close(); err != nil {
			slog.Error("Error closing NATS connection", "error", err)
		}
	}

	if cs.db != nil {
		if err := cs.db.Close(); err != nil {
			slog.Error("Error closing database connection", "error", err)
			return err
		}
	}

	return nil
}
