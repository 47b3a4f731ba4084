package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"breachguard-backend/config"
	httpHandler "breachguard-backend/internal/adapter/http/handler"
	"breachguard-backend/internal/adapter/mpesa"
	pgStorage "breachguard-backend/internal/adapter/storage/postgres"
	redisStorage "breachguard-backend/internal/adapter/storage/redis"
	"breachguard-backend/internal/core/ports"
	"breachguard-backend/internal/scheduler"
	"breachguard-backend/internal/service"
	"breachguard-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("mpesa_env", cfg.Mpesa.Environment).
		Msg("Starting BreachGuard backend")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	paymentRepo := pgStorage.NewPaymentRepo(pool)
	checkLogRepo := pgStorage.NewCheckLogRepo(pool)

	// Initialize M-Pesa client
	mpesaClient := mpesa.NewClient(cfg.Mpesa, &http.Client{Timeout: cfg.Mpesa.HTTPTimeout}, log)
	if !cfg.Mpesa.HasCredentials() && !cfg.Mpesa.IsProduction() {
		log.Warn().Msg("M-Pesa credentials absent, sandbox simulation mode active")
	}

	// Initialize business services
	paymentSvc := service.NewPaymentService(paymentRepo, mpesaClient, cfg.Reaper, log)
	checkLogSvc := service.NewCheckLogService(checkLogRepo, log)

	// Initialize rate limit store
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Start the pending payment reaper
	reaper := scheduler.NewPendingReaper(paymentSvc, cfg.Reaper, log)
	if err := reaper.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start pending reaper")
	}
	defer reaper.Stop()

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		PaymentSvc:     paymentSvc,
		CheckLogSvc:    checkLogSvc,
		CallbackSecret: cfg.Mpesa.CallbackSecret,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
