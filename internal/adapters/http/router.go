package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/evmscan/explorer-gateway/internal/adapters/http/handlers"
	"github.com/evmscan/explorer-gateway/internal/adapters/http/middleware"
	"github.com/evmscan/explorer-gateway/internal/platform/config"
	"github.com/evmscan/explorer-gateway/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AuthConfig contains authentication header configuration.
	AuthConfig *config.AuthConfig

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// ChainStatusHandler handles the per-chain reachability endpoint.
	ChainStatusHandler *handlers.ChainStatusHandler

	// AccountHandler handles account explorer endpoints.
	AccountHandler *handlers.AccountHandler

	// ContractHandler handles verified-contract endpoints.
	ContractHandler *handlers.ContractHandler

	// TokenHandler handles token endpoints.
	TokenHandler *handlers.TokenHandler

	// TransactionHandler handles transaction endpoints.
	TransactionHandler *handlers.TransactionHandler

	// LogHandler handles the event-log endpoint.
	LogHandler *handlers.LogHandler

	// ProxyHandler handles node JSON-RPC relay endpoints.
	ProxyHandler *handlers.ProxyHandler

	// Timeout is the default request timeout.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips health endpoints)
//  6. Timeout - request deadline (applied per-route or globally)
//
// Route groups:
//   - /-/ (internal): Health endpoints, no auth required
//   - /api/v1/ (public API): Explorer and proxy endpoints
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	// Apply global middleware in order
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(cfg.Logger),
	)

	// Register health endpoints (no auth, no timeout for probes)
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	// The chain sweep probes every upstream, so it gets the API timeout
	// rather than running unbounded.
	if cfg.ChainStatusHandler != nil {
		operational := engine.Group("/-")
		if cfg.Timeout > 0 {
			operational.Use(middleware.SimpleTimeout(cfg.Timeout))
		}
		cfg.ChainStatusHandler.RegisterChainStatusRoutes(operational)
	}

	// Setup API v1 routes with timeout
	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	// Register API routes
	setupAPIRoutes(apiV1, cfg)
}

// setupAPIRoutes registers the explorer and proxy API routes.
func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.AccountHandler != nil {
		cfg.AccountHandler.RegisterAccountRoutes(rg)
	}
	if cfg.ContractHandler != nil {
		cfg.ContractHandler.RegisterContractRoutes(rg)
	}
	if cfg.TokenHandler != nil {
		cfg.TokenHandler.RegisterTokenRoutes(rg)
	}
	if cfg.TransactionHandler != nil {
		cfg.TransactionHandler.RegisterTransactionRoutes(rg)
	}
	if cfg.LogHandler != nil {
		cfg.LogHandler.RegisterLogRoutes(rg)
	}
	if cfg.ProxyHandler != nil {
		cfg.ProxyHandler.RegisterProxyRoutes(rg)
	}
}

// SetupMinimalRouter sets up a minimal router with just health endpoints.
// Useful for testing or lightweight deployments.
func SetupMinimalRouter(engine *gin.Engine, logger *slog.Logger, healthHandler *handlers.HealthHandler) {
	engine.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
	)

	if healthHandler != nil {
		healthHandler.RegisterHealthRoutesOnEngine(engine)
	}
}

// NewDefaultRouterConfig creates a RouterConfig with sensible defaults.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	authCfg *config.AuthConfig,
	healthHandler *handlers.HealthHandler,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		AuthConfig:    authCfg,
		AppConfig:     appCfg,
		HealthHandler: healthHandler,
		Timeout:       DefaultRequestTimeout,
	}
}
