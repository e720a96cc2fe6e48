package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"go-landdeals-backend/config"
	_ "go-landdeals-backend/docs" // Important for Swagger
	v1 "go-landdeals-backend/internal/delivery/http/v1"
	"go-landdeals-backend/internal/session"
	"go-landdeals-backend/internal/usecase"
	"go-landdeals-backend/pkg/email"
	"go-landdeals-backend/pkg/logger"
	"go-landdeals-backend/pkg/redis"
)

// @title           Himachal Land Deals API
// @version         1.0
// @description     Backend for the Himachal Land Deals marketing site and enquiry workflow.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting land deals backend", "port", cfg.Port)

	// 3. Setup Redis (rate limiting backend; optional)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 4. Setup Notifier
	notifier := email.NewNotifier(cfg.Notifier())
	if !notifier.IsConfigured() {
		logger.Log.Warn("Email not fully configured - enquiry submission will be unavailable")
	}

	// 5. Setup Sessions
	sessions := session.NewStore(12 * time.Hour)

	// 6. Setup UseCases
	validate := validator.New()
	listingUC := usecase.NewListingUsecase(cfg)
	enquiryUC := usecase.NewEnquiryUsecase(notifier, validate)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ListingUC: listingUC,
		EnquiryUC: enquiryUC,
		Sessions:  sessions,
		Config:    cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
