package federator

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transparencia-ai/veritas/pkg/apperr"
	"github.com/transparencia-ai/veritas/pkg/cache"
	"github.com/transparencia-ai/veritas/pkg/config"
	"github.com/transparencia-ai/veritas/pkg/logging"
	"github.com/transparencia-ai/veritas/pkg/metrics"
	"github.com/transparencia-ai/veritas/pkg/registry"
)

func testFederator(t *testing.T, specs []registry.EndpointSpec, keys map[string]string) *Federator {
	t.Helper()
	reg, err := registry.New(specs)
	require.NoError(t, err)

	m := metrics.New(prometheus.NewRegistry())
	h := cache.NewHierarchy(config.CacheConfig{
		L1Size:    64,
		TTLShort:  5 * time.Minute,
		TTLMedium: time.Hour,
		TTLLong:   24 * time.Hour,
	}, nil, nil, m, slog.Default())

	return New(reg, h, keys, m)
}

func endpointSpec(name, baseURL string) registry.EndpointSpec {
	return registry.EndpointSpec{
		Name:           name,
		BaseURL:        baseURL,
		AuthMode:       registry.AuthNone,
		TTLClass:       registry.TTLMedium,
		RatePerMin:     6000,
		TypicalLatency: time.Millisecond,
		Capabilities:   []string{"test"},
	}
}

func TestFetchCachesResponses(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	f := testFederator(t, []registry.EndpointSpec{endpointSpec("ep", srv.URL)}, nil)
	ctx := context.Background()

	first, err := f.Fetch(ctx, "ep", map[string]string{"ano": "2024"})
	require.NoError(t, err)
	assert.False(t, first.FromCache)
	assert.Equal(t, []byte(`{"items":[]}`), first.Body)

	second, err := f.Fetch(ctx, "ep", map[string]string{"ano": "2024"})
	require.NoError(t, err)
	assert.True(t, second.FromCache)

	assert.Equal(t, int64(1), calls.Load())
}

func TestFetchRestrictedUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	f := testFederator(t, []registry.EndpointSpec{endpointSpec("blocked", srv.URL)}, nil)

	payload, err := f.Fetch(context.Background(), "blocked", nil)
	require.NoError(t, err)
	assert.True(t, payload.Restricted)
	assert.Equal(t, http.StatusForbidden, payload.StatusCode)
	assert.Empty(t, payload.Body)

	// Repeated 403s never open the breaker.
	for i := 0; i < 10; i++ {
		_, err := f.Fetch(context.Background(), "blocked", nil)
		require.NoError(t, err)
	}
	assert.Equal(t, "closed", f.BreakerState("blocked"))
}

func TestFetchRetriesOn5xx(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`ok`))
	}))
	defer srv.Close()

	f := testFederator(t, []registry.EndpointSpec{endpointSpec("flaky", srv.URL)}, nil)

	payload, err := f.Fetch(context.Background(), "flaky", nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), payload.Body)
	assert.Equal(t, int64(3), calls.Load())
}

func TestFetchTerminal4xx(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	f := testFederator(t, []registry.EndpointSpec{endpointSpec("auth", srv.URL)}, nil)

	_, err := f.Fetch(context.Background(), "auth", nil)
	require.Error(t, err)
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
	assert.Equal(t, http.StatusUnauthorized, apperr.UpstreamStatusOf(err))
	// No retry on 4xx.
	assert.Equal(t, int64(1), calls.Load())
}

func TestFetchBreakerOpensAndFastFails(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := testFederator(t, []registry.EndpointSpec{endpointSpec("down", srv.URL)}, nil)
	ctx := context.Background()

	// Two fetches of three attempts each push the breaker past its
	// threshold; the second aborts mid-retry on the open circuit.
	_, err := f.Fetch(ctx, "down", map[string]string{"p": "1"})
	require.Error(t, err)
	_, err = f.Fetch(ctx, "down", map[string]string{"p": "2"})
	require.Error(t, err)
	assert.Equal(t, "open", f.BreakerState("down"))

	before := calls.Load()
	_, err = f.Fetch(ctx, "down", map[string]string{"p": "3"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindCircuitOpen, apperr.KindOf(err))
	// Fast fail: no outbound call while open.
	assert.Equal(t, before, calls.Load())
}

func TestFetchUnknownEndpoint(t *testing.T) {
	f := testFederator(t, nil, nil)
	_, err := f.Fetch(context.Background(), "nope", nil)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestFetchSendsAPIKeyAndCorrelationID(t *testing.T) {
	var gotKey, gotCID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("chave-api-dados")
		gotCID = r.Header.Get("X-Correlation-ID")
		w.Write([]byte("{}"))
	}))
	defer srv.Close()

	spec := endpointSpec("keyed", srv.URL)
	spec.AuthMode = registry.AuthAPIKey
	spec.AuthHeader = "chave-api-dados"

	f := testFederator(t, []registry.EndpointSpec{spec}, map[string]string{"keyed": "secret-key"})

	ctx := logging.WithCorrelationID(context.Background(), "cid-123")
	_, err := f.Fetch(ctx, "keyed", nil)
	require.NoError(t, err)
	assert.Equal(t, "secret-key", gotKey)
	assert.Equal(t, "cid-123", gotCID)
}

func TestBuildURL(t *testing.T) {
	t.Run("query params in sorted order", func(t *testing.T) {
		u, err := buildURL("https://api.example.org/contratos", map[string]string{"uf": "MG", "ano": "2024"})
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.org/contratos?ano=2024&uf=MG", u)
	})

	t.Run("path placeholders resolved", func(t *testing.T) {
		u, err := buildURL("https://api.example.org/deputados/{id}/despesas", map[string]string{"id": "204554", "ano": "2024"})
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.org/deputados/204554/despesas?ano=2024", u)
	})

	t.Run("unresolved placeholder is an error", func(t *testing.T) {
		_, err := buildURL("https://api.example.org/{cnpj}", nil)
		require.Error(t, err)
	})
}
