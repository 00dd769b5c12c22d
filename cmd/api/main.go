package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solana-money-mover/config"
	"solana-money-mover/internal/adapter/chain"
	"solana-money-mover/internal/adapter/discord"
	httpHandler "solana-money-mover/internal/adapter/http/handler"
	"solana-money-mover/internal/adapter/price"
	memStorage "solana-money-mover/internal/adapter/storage/memory"
	pgStorage "solana-money-mover/internal/adapter/storage/postgres"
	redisStorage "solana-money-mover/internal/adapter/storage/redis"
	"solana-money-mover/internal/core/ports"
	"solana-money-mover/internal/service"
	"solana-money-mover/pkg/logger"

	"github.com/robfig/cron/v3"
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
		Msg("Starting Solana Money Mover")

	ctx := context.Background()

	// Session store: Redis when available, in-memory with a cron sweep
	// otherwise. Single-instance deployments run fine without Redis.
	var (
		sessionStore   ports.SessionStore
		rateLimitStore *redisStorage.RateLimitStore
		checkers       []ports.HealthChecker
		sweeper        *cron.Cron
	)
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, using in-memory session store")
		memStore := memStorage.NewSessionStore()
		sessionStore = memStore

		sweeper = cron.New(cron.WithSeconds())
		if _, err := sweeper.AddFunc(cfg.Session.SweepSchedule, func() {
			if n := memStore.Sweep(); n > 0 {
				log.Debug().Int("evicted", n).Msg("session sweep")
			}
		}); err != nil {
			log.Fatal().Err(err).Str("schedule", cfg.Session.SweepSchedule).Msg("Invalid session sweep schedule")
		}
		sweeper.Start()
		defer sweeper.Stop()
	} else {
		defer rdb.Close()
		sessionStore = redisStorage.NewSessionStore(rdb)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	}

	// Transfer history and audit persistence are best-effort; the workflow
	// runs without PostgreSQL.
	var (
		transferRepo ports.TransferRepository
		auditRepo    ports.AuditRepository
	)
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Warn().Err(err).Msg("PostgreSQL unavailable, transfer history disabled")
	} else {
		defer pool.Close()
		transferRepo = pgStorage.NewTransferRepo(pool)
		auditRepo = pgStorage.NewAuditRepo(pool)
		checkers = append(checkers, pgStorage.NewHealthCheck(pool))
	}

	// Outbound adapters
	chainClient := chain.NewSolanaClient(cfg.Solana, nil, log)
	oracle := price.NewJupiterClient(cfg.Price, nil, log)
	broadcaster := chain.NewDryRunBroadcaster(log)
	discordNotifier := discord.NewNotifier(cfg.Discord, nil, log)

	// Core services
	notifier := service.NewAuditFanout(discordNotifier, auditRepo, log)
	sessionSvc := service.NewSessionService(sessionStore, notifier, cfg.Session.TTL, log)
	scanner := service.NewChainScanner(chainClient, log)
	valuer := service.NewValuationFilter(oracle, cfg.Mover.MinTransferValueUSD, cfg.Mover.NativeFeeReserve, log)
	moverSvc := service.NewMoverService(sessionSvc, scanner, valuer, broadcaster, notifier, transferRepo, log)
	feeSvc := service.NewFeeService()

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		SessionSvc:     sessionSvc,
		MoverSvc:       moverSvc,
		FeeSvc:         feeSvc,
		PriceOracle:    oracle,
		TransferRepo:   transferRepo,
		RateLimitStore: rateLimitStore,
		HealthCheckers: checkers,
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
