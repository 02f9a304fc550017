package etherscan

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/evmscan/explorer-gateway/internal/adapters/clients"
	"github.com/evmscan/explorer-gateway/internal/domain"
)

// maxResponseBytes bounds how much of an upstream body is read. Verified
// source-code lookups can return large payloads; anything beyond this is
// not a legitimate explorer reply.
const maxResponseBytes = 16 << 20

// Dispatcher orchestrates one explorer call: resolve endpoint, attach
// credential, perform the request, and hand the raw body to the
// normalizer. It holds no call-scoped state, so concurrent calls do not
// interfere.
type Dispatcher struct {
	client   *clients.Client
	resolver *Resolver
	apiKey   string
	logger   *slog.Logger
}

// DispatcherConfig contains the dispatcher dependencies.
type DispatcherConfig struct {
	// Client is the instrumented HTTP client to use for requests.
	Client *clients.Client

	// Resolver maps chain identifiers to base URLs. Defaults to the
	// built-in endpoint table if nil.
	Resolver *Resolver

	// APIKey is the credential attached to every outbound request.
	// It is never logged.
	APIKey string

	// Logger is the structured logger.
	Logger *slog.Logger
}

// NewDispatcher creates a dispatcher.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewDispatcher(cfg DispatcherConfig) *Dispatcher {
	if cfg.Client == nil {
		panic("Dispatcher: Client is required")
	}

	resolver := cfg.Resolver
	if resolver == nil {
		resolver = NewResolver()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Dispatcher{
		client:   cfg.Client,
		resolver: resolver,
		apiKey:   cfg.APIKey,
		logger:   logger.With(slog.String("component", "etherscan.Dispatcher")),
	}
}

// Resolver returns the endpoint resolver in use.
func (d *Dispatcher) Resolver() *Resolver {
	return d.resolver
}

// Get dispatches a read operation. All parameters travel in the query
// string. Returns exactly one envelope or one classified error.
func (d *Dispatcher) Get(ctx context.Context, chainID int64, params *Params) (*domain.Envelope, error) {
	base, err := d.resolver.Resolve(chainID)
	if err != nil {
		return nil, err
	}

	rawURL := base + "?" + params.query(d.apiKey).Encode()

	resp, err := d.client.Get(ctx, rawURL)
	if err != nil {
		return nil, domain.NewNetworkError(params.Operation(), scrubCredential(err))
	}

	return d.consume(resp, params)
}

// Post dispatches a write-shaped operation. The routing parameters and
// credential stay in the query string - the upstream authenticates and
// routes via query string even on POST - while the operation arguments
// travel as a form-urlencoded body.
func (d *Dispatcher) Post(ctx context.Context, chainID int64, params *Params) (*domain.Envelope, error) {
	base, err := d.resolver.Resolve(chainID)
	if err != nil {
		return nil, err
	}

	rawURL := base + "?" + params.routing(d.apiKey).Encode()

	resp, err := d.client.PostForm(ctx, rawURL, params.body())
	if err != nil {
		return nil, domain.NewNetworkError(params.Operation(), scrubCredential(err))
	}

	return d.consume(resp, params)
}

// consume classifies the HTTP status, reads the body, and normalizes it.
func (d *Dispatcher) consume(resp *http.Response, params *Params) (*domain.Envelope, error) {
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		fragment, _ := clients.ReadBody(resp, maxDiagnosticBytes)

		return nil, domain.NewHTTPError(resp.StatusCode, string(fragment))
	}

	body, err := clients.ReadBody(resp, maxResponseBytes)
	if err != nil {
		// The connection died mid-body: no usable response was received.
		return nil, domain.NewNetworkError(params.Operation(), err)
	}

	env, err := Normalize(body, params.IsProxy())
	if err != nil {
		var appErr *domain.ApplicationError
		if errors.As(err, &appErr) {
			d.logger.Debug("upstream reported failure",
				slog.String("operation", params.Operation()),
				slog.String("message", appErr.Message),
			)
		}

		return nil, err
	}

	return env, nil
}

// credentialPattern matches the apikey query value wherever it appears
// inside an error message, most notably the request URL that *url.Error
// embeds verbatim.
var credentialPattern = regexp.MustCompile(`(?i)(apikey=)[^&\s"]+`)

// scrubCredential masks the API key in a transport error's message.
// Classified network errors are echoed to callers and serialized into
// chain status reports, so the credential must not survive the wrap.
// The original error stays in the chain for errors.Is and errors.As.
func scrubCredential(err error) error {
	msg := err.Error()

	clean := credentialPattern.ReplaceAllString(msg, "${1}REDACTED")
	if clean == msg {
		return err
	}

	return &redactedError{msg: clean, cause: err}
}

type redactedError struct {
	msg   string
	cause error
}

func (e *redactedError) Error() string { return e.msg }

func (e *redactedError) Unwrap() error { return e.cause }
