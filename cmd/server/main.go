package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"token-arena/internal/auth"
	"token-arena/internal/config"
	"token-arena/internal/database"
	"token-arena/internal/events"
	"token-arena/internal/handler"
	"token-arena/internal/logger"
	"token-arena/internal/repository/postgres"
	"token-arena/internal/service"
	"token-arena/internal/worker"

	"github.com/joho/godotenv"

	_ "token-arena/docs"
)

// @title Token Arena API
// @version 1.0
// @description Token ledger, head-to-head matches and matchmaking
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Optional .env for local runs
	_ = godotenv.Load()

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(config.LogConfig{Pretty: true, Level: "info"})
		bootLog.Fatal().Err(err).Msg("Failed to load config")
	}

	// Setup logger
	log := logger.New(cfg.Log)

	if cfg.Database.MigrateOnStart {
		if err := database.MigrateUp(cfg.Database.DatabaseURL()); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
		log.Info().Msg("Database migrations applied")
	}

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	// Match events are optional
	var publisher service.EventPublisher = service.NopPublisher{}
	var subscriber events.Subscriber
	if cfg.Redis.URL != "" {
		rdb, err := events.Connect(dbCtx, cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()

		broker := events.NewRedisBroker(rdb, log)
		publisher = broker
		subscriber = broker
		log.Info().Msg("Match events enabled")
	}

	// Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	transactionRepo := postgres.NewTransactionRepository(dbPool)
	gameRepo := postgres.NewGameRepository(dbPool)
	matchRepo := postgres.NewMatchRepository(dbPool)
	queueRepo := postgres.NewQueueRepository(dbPool)
	purchaseRepo := postgres.NewPurchaseRepository(dbPool)

	// Transaction manager used by services
	txManager := postgres.NewTransactionManager(dbPool)

	prices, err := service.NewPriceTable(cfg.Purchase.Denominations, cfg.Purchase.Prices)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid purchase price table")
	}

	// Services
	ledger := service.NewLedgerService(userRepo, transactionRepo, txManager, log)
	matchService := service.NewMatchService(matchRepo, gameRepo, userRepo, ledger, txManager, publisher, log)
	matchmaking := service.NewMatchmakingService(queueRepo, matchRepo, gameRepo, userRepo, ledger, txManager, publisher, cfg.Matchmaking.QueueTTL, log)
	purchases := service.NewPurchaseService(purchaseRepo, userRepo, ledger, txManager, prices, log)
	transfers := service.NewTransferService(userRepo, ledger, log)
	reconciliation := service.NewReconciliationService(queueRepo, matchRepo, matchService, matchmaking, service.SweepConfig{
		QueueRetention:    cfg.Matchmaking.QueueRetention,
		StaleMatchTimeout: cfg.Matchmaking.StaleMatchTimeout,
		BatchSize:         cfg.Worker.SweepBatchSize,
	}, log)
	audit := service.NewAuditService(transactionRepo, log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Worker for queue expiry and abandoned match refunds
	sweepWorker := worker.NewSweepWorker(reconciliation, cfg.Worker.SweepInterval, log)
	sweepWorker.Start(ctx)
	defer sweepWorker.Stop()

	auditScheduler, err := worker.NewAuditScheduler(audit, cfg.Worker.AuditInterval, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create audit scheduler")
	}
	if err := auditScheduler.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to start audit scheduler")
	}
	defer func() {
		if err := auditScheduler.Stop(); err != nil {
			log.Error().Err(err).Msg("audit scheduler shutdown error")
		}
	}()

	// http handler
	h := handler.NewHandler(handler.Services{
		Ledger:         ledger,
		Matches:        matchService,
		Matchmaking:    matchmaking,
		Purchases:      purchases,
		Transfers:      transfers,
		Reconciliation: reconciliation,
	}, auth.NewVerifier(cfg.Auth.JWTSecret), subscriber, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
