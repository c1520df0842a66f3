package api

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"turfbook/internal/authz"
	"turfbook/internal/cache"
	"turfbook/internal/config"
	"turfbook/internal/database"
	"turfbook/internal/external"
	"turfbook/internal/handlers"
	"turfbook/internal/messaging"
	"turfbook/internal/middleware"
	"turfbook/internal/repository"
	"turfbook/internal/search"
	"turfbook/internal/service"
)

type Server struct {
	router   *gin.Engine
	config   *config.Config
	db       *database.DB
	nats     *messaging.NATSClient
	cache    *cache.AvailabilityCache
	services *service.Services
	repos    *repository.Repositories
}

// NewServer wires the whole API process. The database is mandatory;
// NATS, Redis and Elasticsearch degrade gracefully when unreachable so
// a local instance can run with just Postgres.
func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		slog.Warn("NATS unavailable, events will not be published", "error", err)
		natsClient = nil
	}

	availCache, err := cache.NewAvailabilityCache(cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, availability cache disabled", "error", err)
		availCache = nil
	}

	var repos *repository.Repositories
	esClient, err := search.NewElasticsearchClient(cfg.Elasticsearch)
	if err != nil {
		slog.Warn("Elasticsearch unavailable, turf search falls back to Postgres", "error", err)
		repos = repository.NewRepositories(db)
	} else {
		repos = repository.NewRepositoriesWithSearch(db, esClient)
	}

	gateways := map[string]external.PaymentGateway{}
	razorpay := external.NewRazorpayClient(cfg.Razorpay)
	gateways[razorpay.Name()] = razorpay
	payglocal := external.NewPayGlocalClient(cfg.PayGlocal)
	gateways[payglocal.Name()] = payglocal

	services := service.NewServices(service.Deps{
		Repos:    repos,
		NATS:     natsClient,
		Cache:    availCache,
		Gateways: gateways,
	})

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())

	server := &Server{
		router:   router,
		config:   cfg,
		db:       db,
		nats:     natsClient,
		cache:    availCache,
		services: services,
		repos:    repos,
	}

	server.setupRoutes()

	return server
}

func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.services)

	// Public catalog: browsing needs no login.
	public := s.router.Group("/api")
	{
		public.GET("/locations", h.ListLocations)
		public.GET("/services", h.ListServices)
		public.GET("/turfs", h.ListTurfs)
		public.GET("/turfs/:id", h.GetTurf)
		public.GET("/turfs/:id/availability", h.GetAvailability)

		// Gateways call this; they authenticate via the signed order id.
		public.POST("/payments/webhook", h.PaymentWebhook)
	}

	// Authenticated routes resolve roles and permissions once up front.
	authed := s.router.Group("/api")
	authed.Use(middleware.JWTAuth(s.config.JWTSecret))
	authed.Use(middleware.ResolveIdentity(s.services.Authz))
	{
		bookings := authed.Group("/bookings")
		{
			bookings.POST("", h.CreateBooking)
			bookings.GET("", h.ListBookings)
			bookings.GET("/:id", h.GetBooking)
			bookings.PATCH("/cancel", h.CancelBooking)
		}

		authed.POST("/payments/initiate", h.InitiatePayment)

		staff := authed.Group("/staff")
		staff.Use(middleware.RequirePermission(authz.PermissionManageBookings))
		{
			staff.GET("/bookings", h.ListLocationBookings)
			staff.GET("/bookings/:id/payments", h.ListBookingPayments)
			staff.PATCH("/bookings/:id/balance", h.UpdateBalance)
			staff.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
		}

		admin := authed.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/locations", h.CreateLocation)
			admin.PATCH("/locations/:id/active", h.SetLocationActive)
			admin.POST("/services", h.CreateService)
			admin.POST("/turfs", h.CreateTurf)
			admin.PATCH("/turfs/:id/available", h.SetTurfAvailable)
			admin.PUT("/turfs/:id/pricing", h.UpsertPricing)
			admin.DELETE("/turfs/:id/pricing/:hour", h.DeletePricing)
			admin.PUT("/settings/gateway", h.SetActiveGateway)
		}
	}

	s.router.GET("/health", s.healthCheck)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "turfbook-api",
		"version": "1.0.0",
	})
}

func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	return s.router.Run(addr)
}

// GetRouter exposes the router for tests.
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

func (s *Server) Cleanup() error {
	if s.nats != nil {
		if err := s.nats.Close(); err != nil {
			log.Printf("Error closing NATS connection: %v", err)
		}
	}

	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			log.Printf("Error closing database connection: %v", err)
			return err
		}
	}

	return nil
}
