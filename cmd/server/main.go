package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "council-rental-backend/internal/api/http"
	"council-rental-backend/internal/config"
	"council-rental-backend/internal/logger"
	"council-rental-backend/internal/metrics"
	"council-rental-backend/internal/notify"
	"council-rental-backend/internal/repository/postgres"
	"council-rental-backend/internal/security"
	"council-rental-backend/internal/service"
	"council-rental-backend/internal/storage"

	"github.com/prometheus/client_golang/prometheus"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Council Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryMinutes)

	// Initialize Storage
	var blobStore storage.Storage
	switch cfg.Storage.Type {
	case "", "local":
		logger.Info("Using local storage", "upload_dir", cfg.Storage.UploadDir)
		localStore, err := storage.NewLocalStorage(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize local storage", "error", err)
			log.Fatalf("Failed to initialize local storage: %v", err)
		}
		blobStore = localStore
	case "gcs":
		logger.Info("Using Google Cloud Storage", "bucket", cfg.Storage.Bucket)
		gcsStore, err := storage.NewGCSStorage(context.Background(), cfg.Storage.Bucket, cfg.Storage.CredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize GCS storage", "error", err)
			log.Fatalf("Failed to initialize GCS storage: %v", err)
		}
		blobStore = gcsStore
	default:
		log.Fatalf("Storage type '%s' not supported", cfg.Storage.Type)
	}

	// Initialize Notifier and Email
	notifier := notify.NewDiscordNotifier(cfg.Discord.WebhookURL, cfg.Discord.Username)
	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	// Initialize Services
	penaltySvc := service.NewPenaltyService(
		store.PenaltyRepository,
		store.UserRepository,
		store.RentalRepository,
		store.ItemRepository,
		notifier,
		emailSvc,
	)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.ItemRepository,
		store.UserRepository,
		store.LockboxRepository,
		store.PhotoRepository,
		penaltySvc,
		notifier,
		blobStore,
	)
	itemSvc := service.NewItemService(store.ItemRepository)
	contentSvc := service.NewContentService(store.NoticeRepository, store.EventRepository)
	userSvc := service.NewUserService(store.UserRepository)
	lockboxSvc := service.NewLockboxService(store.LockboxRepository)
	authSvc := service.NewAuthService(store.AdminRepository, tokenManager)

	// Initialize Metrics
	m := metrics.New(prometheus.DefaultRegisterer)

	// Initialize HTTP handlers
	handlers := httpapi.Handlers{
		Auth:    httpapi.NewAuthHandler(authSvc),
		Content: httpapi.NewContentHandler(contentSvc),
		Item:    httpapi.NewItemHandler(itemSvc),
		Rental:  httpapi.NewRentalHandler(rentalSvc, penaltySvc),
		Admin:   httpapi.NewAdminHandler(userSvc, penaltySvc, lockboxSvc, notifier),
	}
	if cfg.Storage.Type == "" || cfg.Storage.Type == "local" {
		handlers.File = httpapi.NewFileHandler(blobStore)
	}

	router := httpapi.NewRouter(handlers, tokenManager, m)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
