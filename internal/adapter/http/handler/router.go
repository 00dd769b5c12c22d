package handler

import (
	"solana-money-mover/internal/adapter/http/middleware"
	redisStore "solana-money-mover/internal/adapter/storage/redis"
	"solana-money-mover/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	SessionSvc     ports.SessionService
	MoverSvc       ports.MoverService
	FeeSvc         ports.FeeService
	PriceOracle    ports.PriceOracle
	TransferRepo   ports.TransferRepository   // nil = history listing disabled
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis when wired)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	walletHandler := NewWalletHandler(deps.SessionSvc)
	wallet := v1.Group("/wallet")
	{
		wallet.POST("/connect", rl("connect"), walletHandler.Connect)
	}

	transferHandler := NewTransferHandler(deps.MoverSvc, deps.TransferRepo)
	transfer := v1.Group("/transfer")
	{
		transfer.POST("", rl("transfer"), transferHandler.TransferAll)
		transfer.GET("/history", rl("transfer"), transferHandler.History)
	}

	priceHandler := NewPriceHandler(deps.PriceOracle)
	v1.GET("/prices", rl("prices"), priceHandler.GetPrices)

	feeHandler := NewFeeHandler(deps.FeeSvc)
	fees := v1.Group("/fees")
	{
		fees.POST("/quote", rl("fees"), feeHandler.Quote)
	}

	return r
}
