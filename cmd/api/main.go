package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Bhatia06/MEWallet/config"
	httpHandler "github.com/Bhatia06/MEWallet/internal/adapter/http/handler"
	pgStorage "github.com/Bhatia06/MEWallet/internal/adapter/storage/postgres"
	redisStorage "github.com/Bhatia06/MEWallet/internal/adapter/storage/redis"
	"github.com/Bhatia06/MEWallet/internal/core/ports"
	"github.com/Bhatia06/MEWallet/internal/notify"
	"github.com/Bhatia06/MEWallet/internal/scheduler"
	"github.com/Bhatia06/MEWallet/internal/service"
	"github.com/Bhatia06/MEWallet/pkg/logger"
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
		Msg("Starting MEWallet")

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
	merchantRepo := pgStorage.NewMerchantRepo(pool)
	userRepo := pgStorage.NewUserRepo(pool)
	linkRepo := pgStorage.NewLinkRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	requestRepo := pgStorage.NewRequestRepo(pool)
	reminderRepo := pgStorage.NewReminderRepo(pool)
	transactor := pgStorage.NewTransactor(pool)
	otpStore := redisStorage.NewOTPStore(rdb)

	// Notification fanout and request lifecycle schedulers
	hub := notify.NewHub(log)
	purger := scheduler.NewPurger(requestRepo, cfg.Workflow.PurgeGrace, log)
	defer purger.Stop()

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	sweeper := scheduler.NewSweeper(requestRepo, reminderRepo, cfg.Workflow.PurgeGrace, cfg.Workflow.SweepInterval, log)
	go sweeper.Run(sweepCtx)

	// Initialize core services
	hashSvc := service.NewBcryptHashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize business services
	authSvc := service.NewAuthService(merchantRepo, userRepo, linkRepo, txRepo, requestRepo, transactor, hashSvc, tokenSvc, log)
	ledgerSvc := service.NewLedgerService(linkRepo, txRepo, transactor, hashSvc, hub, log)
	workflowSvc := service.NewWorkflowService(requestRepo, linkRepo, txRepo, merchantRepo, userRepo, transactor, hashSvc, hub, purger, log)
	reminderSvc := service.NewReminderService(reminderRepo, linkRepo, hub, log)
	otpSvc := service.NewOTPService(otpStore, cfg.OTP.TTL, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		LedgerSvc:      ledgerSvc,
		WorkflowSvc:    workflowSvc,
		ReminderSvc:    reminderSvc,
		OTPSvc:         otpSvc,
		TokenSvc:       tokenSvc,
		Hub:            hub,
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
