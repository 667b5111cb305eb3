package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/placeprep/readiness-service/internal/cache"
	"github.com/placeprep/readiness-service/internal/config"
	"github.com/placeprep/readiness-service/internal/events"
	"github.com/placeprep/readiness-service/internal/handlers"
	"github.com/placeprep/readiness-service/internal/repositories/postgres"
	"github.com/placeprep/readiness-service/internal/services"
	"github.com/placeprep/readiness-service/internal/session"
	"github.com/placeprep/readiness-service/internal/utils"
	"github.com/placeprep/readiness-service/internal/validator"
	"github.com/placeprep/readiness-service/pkg"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	slogLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	logger := utils.NewSlogLogger(slogLogger)

	// Initialize database
	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize Redis. Sessions live here, so the service cannot start
	// without it.
	redisClient, err := pkg.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}

	// Initialize repositories
	repoManager := postgres.NewRepositoryManager(postgres.RepositoryConfig{DB: db})
	if err := repoManager.Initialize(); err != nil {
		log.Fatalf("Failed to initialize repositories: %v", err)
	}

	// Initialize event publisher
	var publisher events.EventPublisher
	if len(cfg.Events.KafkaBrokers) > 0 {
		publisher, err = events.NewKafkaPublisher(cfg.Events.KafkaBrokers, cfg.Events.Topic, slogLogger)
		if err != nil {
			log.Fatalf("Failed to initialize Kafka publisher: %v", err)
		}
	} else {
		publisher = events.NewInProcessPublisher(cfg.Events.Topic, slogLogger)
	}

	// Initialize validator
	validator := validator.New()

	// Initialize services
	statsCache := cache.NewStatsCache(redisClient)
	serviceManager := services.NewDefaultServiceManager(
		repoManager.GetRepository(),
		statsCache,
		publisher,
		slogLogger,
		validator,
		services.ServiceManagerConfig{
			Admin:      cfg.Admin,
			TierPreset: cfg.Readiness.TierPreset,
			ExportDir:  cfg.ExportDir,
		},
	)
	if err := serviceManager.Initialize(context.Background()); err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	// Initialize sessions and handlers
	sessions := session.NewManager(redisClient, cfg.SessionTTL)
	handlerManager := handlers.NewHandlerManager(serviceManager, sessions, handlers.HandlerConfig{
		UploadDir:         cfg.UploadDir,
		SessionTTLSeconds: int(cfg.SessionTTL.Seconds()),
	}, logger)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Setup middleware
	handlers.SetupMiddleware(router, logger)

	// Setup routes
	handlerManager.SetupRoutes(router)

	// Create HTTP server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	// Shutdown services
	if err := serviceManager.Shutdown(ctx); err != nil {
		log.Printf("Failed to shutdown services: %v", err)
	}

	// Close database connection
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	// Close Redis connection
	redisClient.Close()

	logger.Info("Server exited")
}
