package etherscan

import (
	"context"
	"log/slog"

	"github.com/evmscan/explorer-gateway/internal/domain"
)

// healthCheckChainID is the chain probed by the readiness check.
const healthCheckChainID = 1

// ClientConfig contains configuration for the explorer client facade.
type ClientConfig struct {
	// Dispatcher performs the outbound calls.
	Dispatcher *Dispatcher

	// Logger is the structured logger.
	Logger *slog.Logger
}

// Client is the operation facade over the explorer API: one method per
// supported operation. Each method builds its parameter set, enforces the
// upstream's cross-field preconditions, and delegates to the Dispatcher.
// Result payloads are decoded into their typed shapes but never
// reinterpreted.
type Client struct {
	dispatcher *Dispatcher
	logger     *slog.Logger
}

// NewClient creates the explorer client facade.
// Panics if Dispatcher is nil. Defaults logger to slog.Default() if nil.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Dispatcher == nil {
		panic("Client: Dispatcher is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		dispatcher: cfg.Dispatcher,
		logger:     logger,
	}
}

// SupportedChains returns the sorted set of supported chain identifiers.
func (c *Client) SupportedChains() []int64 {
	return c.dispatcher.Resolver().Supported()
}

// decodeResult gives a typed view of an envelope's result. A payload that
// does not match the operation's schema is a malformed upstream response.
func decodeResult[T any](env *domain.Envelope) (T, error) {
	result, err := domain.DecodeResult[T](env)
	if err != nil {
		var zero T

		return zero, domain.NewProtocolError("unexpected result shape: "+err.Error(), truncate(env.Result))
	}

	return result, nil
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *Client) Name() string {
	return "etherscan"
}

// Check performs a health check by requesting the current block number on
// mainnet. Implements ports.HealthChecker.
func (c *Client) Check(ctx context.Context) error {
	_, err := c.BlockNumber(ctx, healthCheckChainID)

	return err
}
