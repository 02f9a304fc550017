// Package main is the entry point for the service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/evmscan/explorer-gateway/internal/adapters/clients"
	"github.com/evmscan/explorer-gateway/internal/adapters/clients/etherscan"
	"github.com/evmscan/explorer-gateway/internal/adapters/flags"
	"github.com/evmscan/explorer-gateway/internal/adapters/http"
	"github.com/evmscan/explorer-gateway/internal/adapters/http/handlers"
	"github.com/evmscan/explorer-gateway/internal/app"
	"github.com/evmscan/explorer-gateway/internal/platform/config"
	"github.com/evmscan/explorer-gateway/internal/platform/logging"
	"github.com/evmscan/explorer-gateway/internal/platform/telemetry"
	"github.com/evmscan/explorer-gateway/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logCfg := logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
	}

	var logger *slog.Logger
	if cfg.Log.File.Enabled {
		logger = logging.NewWithFile(logCfg, logging.FileConfig{
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		})
	} else {
		logger = logging.New(logCfg)
	}
	slog.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Create health registry
	healthRegistry := ports.NewHealthRegistry()

	// 6. Create the instrumented HTTP client shared by all upstream calls
	httpClient, err := clients.New(&clients.Config{
		ServiceName: "etherscan",
		Timeout:     cfg.Client.Timeout,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("creating HTTP client: %w", err)
	}

	// 7. Create the explorer adapter: endpoint resolver, dispatcher, facade
	resolver, err := buildResolver(cfg.Explorer.Endpoints)
	if err != nil {
		return fmt.Errorf("building endpoint resolver: %w", err)
	}

	dispatcher := etherscan.NewDispatcher(etherscan.DispatcherConfig{
		Client:   httpClient,
		Resolver: resolver,
		APIKey:   cfg.Explorer.APIKey,
		Logger:   logger,
	})

	explorerClient := etherscan.NewClient(etherscan.ClientConfig{
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	// Register the explorer client as a health checker
	if err := healthRegistry.Register(explorerClient); err != nil {
		return fmt.Errorf("registering explorer health check: %w", err)
	}

	// 8. Create the explorer service (application layer)
	explorerService := app.NewExplorerService(app.ExplorerServiceConfig{
		Explorer: explorerClient,
		Flags:    flags.NewStatic(cfg.Flags),
		Logger:   logger,
	})

	// 9. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)

	routerCfg := http.RouterConfig{
		Logger:             logger,
		AuthConfig:         &cfg.Auth,
		AppConfig:          &cfg.App,
		HealthHandler:      handlers.NewHealthHandler(healthRegistry, buildInfo),
		ChainStatusHandler: handlers.NewChainStatusHandler(explorerService),
		AccountHandler:     handlers.NewAccountHandler(explorerService),
		ContractHandler:    handlers.NewContractHandler(explorerService),
		TokenHandler:       handlers.NewTokenHandler(explorerService),
		TransactionHandler: handlers.NewTransactionHandler(explorerService),
		LogHandler:         handlers.NewLogHandler(explorerService),
		ProxyHandler:       handlers.NewProxyHandler(explorerService),
		Timeout:            http.DefaultRequestTimeout,
	}

	// 10. Create HTTP server and set up routes
	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), routerCfg)

	// 11. Start server (non-blocking)
	serverErr := server.Start()

	// 12. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// buildResolver converts the configured endpoint overrides, keyed by decimal
// chain ID, into a resolver over the merged endpoint table.
func buildResolver(overrides map[string]string) (*etherscan.Resolver, error) {
	if len(overrides) == 0 {
		return etherscan.NewResolver(), nil
	}

	parsed := make(map[int64]string, len(overrides))
	for key, base := range overrides {
		chainID, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid chain ID %q: %w", key, err)
		}
		parsed[chainID] = base
	}

	return etherscan.NewResolverWithOverrides(parsed), nil
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	// Listen for OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		// Server error during startup or runtime
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	// Graceful shutdown sequence
	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	// Stop accepting new requests, drain in-flight
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
