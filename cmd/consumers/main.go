package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"turfbook/cmd/consumers/jobs"
	"turfbook/internal/config"
	"turfbook/internal/consumers"
	"turfbook/internal/logger"
)

func main() {
	log.Println("Starting consumers service...")

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	// Consumers need their own NATS client identity.
	cfg.NATS.ClientID = "turfbook-consumers"

	consumerService, err := consumers.NewConsumerService(cfg)
	if err != nil {
		log.Fatalf("Failed to create consumer service: %v", err)
	}

	if err := consumerService.Start(); err != nil {
		log.Fatalf("Failed to start consumers: %v", err)
	}

	jobCtx, cancelJobs := context.WithCancel(context.Background())

	expirationJob := jobs.NewBookingExpirationJob(consumerService.Repos().Bookings, consumerService.NATS())
	expirationJob.Start(jobCtx)

	reminderJob := jobs.NewBookingReminderJob(consumerService.Repos().Bookings, consumerService.NATS())
	reminderJob.Start(jobCtx)

	log.Println("Consumers service started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down consumers service...")

	expirationJob.Stop()
	reminderJob.Stop()
	cancelJobs()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := consumerService.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Consumers service stopped")
}
