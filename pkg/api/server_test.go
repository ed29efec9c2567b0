package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transparencia-ai/veritas/ent"
	"github.com/transparencia-ai/veritas/pkg/config"
	"github.com/transparencia-ai/veritas/pkg/database"
	"github.com/transparencia-ai/veritas/pkg/events"
	"github.com/transparencia-ai/veritas/pkg/metrics"
	"github.com/transparencia-ai/veritas/pkg/models"
	"github.com/transparencia-ai/veritas/pkg/services"
)

func testServer(dbHealth func(ctx context.Context) (*database.PoolHealth, error)) *Server {
	return NewServer(Deps{
		Settings: &config.Settings{
			HTTPPort: "0",
			RateGate: config.RateGateConfig{PerMinute: 60},
		},
		Warnings: services.NewSystemWarningsService(),
		DBHealth: dbHealth,
	})
}

func healthyPool(context.Context) (*database.PoolHealth, error) {
	return &database.PoolHealth{Reachable: true, Open: 3, InUse: 1, Idle: 2}, nil
}

func TestHealthIsConstantTime(t *testing.T) {
	s := testServer(func(context.Context) (*database.PoolHealth, error) {
		t.Fatal("liveness must not touch dependencies")
		return nil, nil
	})

	rec := httptest.NewRecorder()
	start := time.Now()
	s.srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Less(t, time.Since(start), 10*time.Millisecond)
}

func TestReady(t *testing.T) {
	t.Run("ready when database answers", func(t *testing.T) {
		s := testServer(healthyPool)
		rec := httptest.NewRecorder()
		s.srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "ready", body["status"])

		// Pool pressure rides along on the readiness payload.
		pool, ok := body["database"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, pool["reachable"])
		assert.Equal(t, float64(3), pool["open"])
	})

	t.Run("degraded when warnings exist", func(t *testing.T) {
		s := testServer(healthyPool)
		s.deps.Warnings.Add(services.WarningCategoryUpstream, "upstream probe failing", "")

		rec := httptest.NewRecorder()
		s.srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "degraded", body["status"])
		assert.NotEmpty(t, body["degraded"])
	})

	t.Run("unavailable when database is down", func(t *testing.T) {
		s := testServer(func(context.Context) (*database.PoolHealth, error) {
			return &database.PoolHealth{Reachable: false}, errors.New("connection refused")
		})
		rec := httptest.NewRecorder()
		s.srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	s := testServer(healthyPool)

	rec := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/investigations", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

type fakeInvestigations struct {
	mu        sync.Mutex
	cancelled []string
}

func (f *fakeInvestigations) Create(_ context.Context, req *models.CreateInvestigationRequest) (*ent.Investigation, error) {
	return &ent.Investigation{ID: req.InvestigationID, UserID: req.UserID}, nil
}

func (f *fakeInvestigations) Get(_ context.Context, principal services.Principal, id string) (*ent.Investigation, error) {
	return &ent.Investigation{ID: id, UserID: principal.UserID}, nil
}

func (f *fakeInvestigations) List(context.Context, services.Principal, models.InvestigationFilter) ([]*ent.Investigation, int, error) {
	return nil, 0, nil
}

func (f *fakeInvestigations) Stats(context.Context, services.Principal, string) (*models.InvestigationStats, error) {
	return &models.InvestigationStats{}, nil
}

func (f *fakeInvestigations) Cancel(_ context.Context, _ services.Principal, id string) (*ent.Investigation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, id)
	return &ent.Investigation{ID: id}, nil
}

func (f *fakeInvestigations) cancelCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cancelled)
}

func TestWebSocketCancelFrame(t *testing.T) {
	fake := &fakeInvestigations{}
	s := NewServer(Deps{
		Settings: &config.Settings{
			HTTPPort: "0",
			RateGate: config.RateGateConfig{PerMinute: 60},
		},
		Investigations: fake,
		Manager:        events.NewManager(nil, metrics.New(prometheus.NewRegistry())),
		Warnings:       services.NewSystemWarningsService(),
		DBHealth:       healthyPool,
	})
	srv := httptest.NewServer(s.srv.Handler)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/investigations/inv-1"
	conn, _, err := websocket.Dial(ctx, url, &websocket.DialOptions{
		HTTPHeader: http.Header{"X-User-ID": []string{"alice"}},
	})
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	require.NoError(t, wsjson.Write(ctx, conn, wsClientFrame{Action: "cancel"}))

	require.Eventually(t, func() bool { return fake.cancelCount() == 1 },
		2*time.Second, 10*time.Millisecond)
	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Equal(t, []string{"inv-1"}, fake.cancelled)
}

func TestRateGate(t *testing.T) {
	g := newRateGate(config.RateGateConfig{PerMinute: 6})

	// Burst of one, then the bucket is dry for this minute.
	assert.True(t, g.allow("alice"))
	assert.False(t, g.allow("alice"))

	// Principals are gated independently.
	assert.True(t, g.allow("bob"))
}

func TestRateGateHourAndDayQuotas(t *testing.T) {
	t.Run("hour quota caps a generous minute limit", func(t *testing.T) {
		g := newRateGate(config.RateGateConfig{PerMinute: 600, PerHour: 2})

		assert.True(t, g.allow("alice"))
		assert.True(t, g.allow("alice"))
		assert.False(t, g.allow("alice"))

		// Other principals still have their full quota.
		assert.True(t, g.allow("bob"))
	})

	t.Run("day quota caps below the hour quota", func(t *testing.T) {
		g := newRateGate(config.RateGateConfig{PerMinute: 600, PerHour: 100, PerDay: 1})

		assert.True(t, g.allow("alice"))
		assert.False(t, g.allow("alice"))
	})
}
