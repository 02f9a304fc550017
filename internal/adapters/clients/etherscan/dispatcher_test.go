package etherscan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evmscan/explorer-gateway/internal/adapters/clients"
	"github.com/evmscan/explorer-gateway/internal/domain"
)

const testChainID = int64(1)

// newTestDispatcher wires a dispatcher against a fake upstream and counts
// how many requests actually reach it.
func newTestDispatcher(t *testing.T, handler http.HandlerFunc) (*Dispatcher, *atomic.Int64) {
	t.Helper()

	var hits atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client, err := clients.New(&clients.Config{
		ServiceName: "etherscan-test",
		Timeout:     2 * time.Second,
	})
	require.NoError(t, err)

	dispatcher := NewDispatcher(DispatcherConfig{
		Client:   client,
		Resolver: NewStaticResolver(map[int64]string{testChainID: server.URL}),
		APIKey:   "test-key",
	})

	return dispatcher, &hits
}

func TestDispatcher_GetMergesRoutingAndArguments(t *testing.T) {
	var captured *http.Request

	dispatcher, _ := newTestDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(context.Background())
		_, _ = w.Write([]byte(`{"status":"1","message":"OK","result":"100"}`))
	})

	params := NewParams(moduleAccount, "balance").
		Set("address", "0xde0b295669a9fd93d5f28d9ec85e40f4cb697bae").
		Set("tag", "latest")

	env, err := dispatcher.Get(context.Background(), testChainID, params)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, env.Status)

	require.NotNil(t, captured)
	assert.Equal(t, http.MethodGet, captured.Method)

	query := captured.URL.Query()
	assert.Equal(t, "account", query.Get("module"))
	assert.Equal(t, "balance", query.Get("action"))
	assert.Equal(t, "test-key", query.Get("apikey"))
	assert.Equal(t, "0xde0b295669a9fd93d5f28d9ec85e40f4cb697bae", query.Get("address"))
	assert.Equal(t, "latest", query.Get("tag"))
}

func TestDispatcher_PostSplitsRoutingAndBody(t *testing.T) {
	var (
		capturedQuery map[string][]string
		capturedForm  map[string][]string
		capturedType  string
	)

	dispatcher, _ := newTestDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
		capturedQuery = r.URL.Query()
		capturedType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseForm())
		capturedForm = r.PostForm
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"0xtxhash"}`))
	})

	params := NewParams(moduleProxy, "eth_sendRawTransaction").
		Set("hex", "0xf86c0a85...")

	env, err := dispatcher.Post(context.Background(), testChainID, params)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, env.Status)

	// Routing and credential stay in the query string on POST.
	assert.Equal(t, "proxy", capturedQuery["module"][0])
	assert.Equal(t, "eth_sendRawTransaction", capturedQuery["action"][0])
	assert.Equal(t, "test-key", capturedQuery["apikey"][0])
	assert.NotContains(t, capturedQuery, "hex")

	// Operation arguments travel only in the form body.
	assert.Equal(t, "application/x-www-form-urlencoded", capturedType)
	assert.Equal(t, "0xf86c0a85...", capturedForm["hex"][0])
	assert.NotContains(t, capturedForm, "module")
	assert.NotContains(t, capturedForm, "apikey")
}

func TestDispatcher_UnsupportedChainSkipsTransport(t *testing.T) {
	dispatcher, hits := newTestDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"1","message":"OK","result":"1"}`))
	})

	_, err := dispatcher.Get(context.Background(), 999999, NewParams(moduleAccount, "balance"))

	require.ErrorIs(t, err, domain.ErrUnsupportedChain)
	assert.Equal(t, int64(0), hits.Load(), "no request must be made for an unsupported chain")
}

func TestDispatcher_HTTPFailure(t *testing.T) {
	dispatcher, hits := newTestDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	})

	_, err := dispatcher.Get(context.Background(), testChainID, NewParams(moduleAccount, "balance"))

	require.ErrorIs(t, err, domain.ErrHTTP)
	assert.Equal(t, int64(1), hits.Load(), "a failed request must not be retried")

	var httpErr *domain.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
	assert.Contains(t, httpErr.Body, "upstream exploded")
}

func TestDispatcher_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client, err := clients.New(&clients.Config{
		ServiceName: "etherscan-test",
		Timeout:     time.Second,
	})
	require.NoError(t, err)

	dispatcher := NewDispatcher(DispatcherConfig{
		Client:   client,
		Resolver: NewStaticResolver(map[int64]string{testChainID: server.URL}),
		APIKey:   "test-key",
	})

	_, err = dispatcher.Get(context.Background(), testChainID, NewParams(moduleStats, "tokensupply"))

	require.ErrorIs(t, err, domain.ErrNetwork)

	var netErr *domain.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, "stats.tokensupply", netErr.Operation)
	assert.NotNil(t, netErr.Cause)
}

func TestDispatcher_NetworkFailureRedactsCredential(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client, err := clients.New(&clients.Config{
		ServiceName: "etherscan-test",
		Timeout:     time.Second,
	})
	require.NoError(t, err)

	const secret = "SUPERSECRETKEY"

	dispatcher := NewDispatcher(DispatcherConfig{
		Client:   client,
		Resolver: NewStaticResolver(map[int64]string{testChainID: server.URL}),
		APIKey:   secret,
	})

	_, getErr := dispatcher.Get(context.Background(), testChainID,
		NewParams(moduleAccount, "balance").Set("address", "0xde0b295669a9fd93d5f28d9ec85e40f4cb697bae"))
	_, postErr := dispatcher.Post(context.Background(), testChainID,
		NewParams(moduleProxy, "eth_sendRawTransaction").Set("hex", "0xf86c01"))

	for _, err := range []error{getErr, postErr} {
		require.ErrorIs(t, err, domain.ErrNetwork)
		assert.NotContains(t, err.Error(), secret, "the credential must never reach callers")
		assert.Contains(t, err.Error(), "apikey=REDACTED")

		// Redaction must not break the cause chain.
		var urlErr *url.Error
		assert.ErrorAs(t, err, &urlErr)
	}
}

func TestDispatcher_Timeout(t *testing.T) {
	dispatcher, _ := newTestDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(3 * time.Second)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := dispatcher.Get(ctx, testChainID, NewParams(moduleProxy, "eth_blockNumber"))

	require.ErrorIs(t, err, domain.ErrNetwork)
	assert.Less(t, time.Since(start), time.Second, "the call must respect the deadline")
}

func TestDispatcher_ApplicationFailurePassesThrough(t *testing.T) {
	dispatcher, _ := newTestDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"0","message":"NOTOK","result":"Max rate limit reached"}`))
	})

	_, err := dispatcher.Get(context.Background(), testChainID, NewParams(moduleAccount, "txlist"))

	require.ErrorIs(t, err, domain.ErrApplication)
	assert.Contains(t, err.Error(), "Max rate limit reached")
}

func TestDispatcher_MalformedBody(t *testing.T) {
	dispatcher, _ := newTestDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	})

	_, err := dispatcher.Get(context.Background(), testChainID, NewParams(moduleAccount, "balance"))

	require.ErrorIs(t, err, domain.ErrProtocol)
}
