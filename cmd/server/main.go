package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"rently-backend/internal/auth"
	"rently-backend/internal/cache"
	"rently-backend/internal/config"
	"rently-backend/internal/database"
	"rently-backend/internal/db"
	"rently-backend/internal/events/kafka"
	"rently-backend/internal/handlers"
	"rently-backend/internal/health"
	h "rently-backend/internal/http"
	"rently-backend/internal/middleware"
	"rently-backend/internal/monitoring"
	"rently-backend/internal/repositories"
	"rently-backend/internal/services"
	"rently-backend/internal/storage"
	"rently-backend/migrations"
)

func main() {
	// Parse command-line flags
	mode := flag.String("mode", "landlord", "Server mode: landlord or renter")
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()

	// Override port if specified
	if *port != 0 {
		cfg.Server.Port = *port
	} else if *mode == "renter" {
		// Landlord mode uses the config port (8080)
		cfg.Server.Port = 8081
	}

	pool := db.Connect(cfg)
	defer pool.Close()

	// Initialize Redis cache (optional - graceful fallback if unavailable)
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (listing searches will hit the provider directly)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Run database migrations on startup from the embedded filesystem
	log.Println("Running database migrations...")
	migrator := database.NewMigrator(pool, migrations.FS)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize health checker
	healthChecker := health.NewHealthChecker(pool)

	// Start ops dashboard server in background
	go monitoring.NewMonitoringServer(pool, 9090).Start()

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(pool)
	unitRepo := repositories.NewUnitRepository(pool)
	leaseRepo := repositories.NewLeaseRepository(pool)
	ledgerRepo := repositories.NewLedgerRepository(pool)
	favoriteRepo := repositories.NewFavoriteRepository(pool)
	onlineTransactionRepo := repositories.NewOnlineTransactionRepository(pool)

	// Seed demo accounts on a fresh database
	if err := database.SeedDemoData(ctx, userRepo, unitRepo, leaseRepo, ledgerRepo); err != nil {
		log.Printf("[Seed] Demo data seeding failed: %v", err)
	}

	// Initialize services
	balanceService := services.NewBalanceService(leaseRepo, ledgerRepo)
	if cfg.Kafka.Brokers != "" {
		brokers := strings.Split(cfg.Kafka.Brokers, ",")
		publisher := kafka.NewPublisher(brokers, cfg.Kafka.Topic)
		balanceService.SetPublisher(publisher)
		defer publisher.Close()
		log.Printf("[Kafka] Publishing ledger entries to %s", cfg.Kafka.Topic)
	}

	registry := services.NewLeaseService(unitRepo, leaseRepo, balanceService)
	receiptService := services.NewReceiptService(leaseRepo, ledgerRepo)
	totpService := services.NewTOTPService(userRepo)
	userService := services.NewUserService(userRepo, jwtManager, totpService)

	// Photo storage is optional
	var photoStore *storage.PhotoStore
	if ps, err := storage.NewPhotoStore(ctx, storage.PhotoStoreConfig{
		Endpoint:  cfg.Photos.Endpoint,
		Region:    cfg.Photos.Region,
		Bucket:    cfg.Photos.Bucket,
		AccessKey: cfg.Photos.AccessKey,
		SecretKey: cfg.Photos.SecretKey,
	}); err != nil {
		log.Printf("[Photos] Photo storage disabled: %v", err)
	} else {
		photoStore = ps
	}

	// Initialize middleware and shared handlers
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)
	healthHandler := handlers.NewHealthHandler(healthChecker)
	authHandler := handlers.NewAuthHandler(userService)
	ledgerHandler := handlers.NewLedgerHandler(balanceService, receiptService)

	var handler http.Handler

	if *mode == "renter" {
		log.Println("Starting in RENTER PORTAL mode")

		listingService := services.NewListingService(cfg.Listings.BaseURL, cfg.Listings.APIKey, cfg.Listings.CacheTTLSeconds)
		favoriteService := services.NewFavoriteService(favoriteRepo)
		razorpayService := services.NewRazorpayService(
			cfg.Razorpay.KeyID,
			cfg.Razorpay.KeySecret,
			cfg.Razorpay.WebhookSecret,
			onlineTransactionRepo,
			balanceService,
			leaseRepo,
		)
		renterPortal := services.NewRenterPortalService(registry)

		router := h.NewRenterRouter(
			authHandler,
			handlers.NewListingHandler(listingService),
			handlers.NewFavoriteHandler(favoriteService),
			ledgerHandler,
			handlers.NewRenterPortalHandler(renterPortal),
			handlers.NewRazorpayHandler(razorpayService),
			healthHandler,
			authMiddleware,
		)

		handler = middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	} else {
		log.Println("Starting in LANDLORD mode")

		landlordPortal := services.NewLandlordPortalService(registry, balanceService)

		router := h.NewLandlordRouter(
			authHandler,
			handlers.NewTOTPHandler(totpService, userService),
			handlers.NewUnitHandler(registry, photoStore),
			handlers.NewLeaseHandler(registry),
			ledgerHandler,
			handlers.NewLandlordPortalHandler(landlordPortal),
			healthHandler,
			authMiddleware,
		)

		handler = middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
