package workers

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transparencia-ai/veritas/pkg/apperr"
	"github.com/transparencia-ai/veritas/pkg/config"
	"github.com/transparencia-ai/veritas/pkg/metrics"
	"github.com/transparencia-ai/veritas/pkg/models"
)

// countingWorker tracks lifecycle calls for pool tests.
type countingWorker struct {
	kind      string
	initCount *atomic.Int64
	downCount *atomic.Int64
	process   func(ctx context.Context, msg *models.WorkerMessage) (*models.WorkerResponse, error)
	reflect   func(ctx context.Context, resp *models.WorkerResponse) (*models.Reflection, error)
}

func (w *countingWorker) Kind() string { return w.kind }

func (w *countingWorker) Initialize(context.Context) error {
	w.initCount.Add(1)
	return nil
}

func (w *countingWorker) Shutdown(context.Context) error {
	w.downCount.Add(1)
	return nil
}

func (w *countingWorker) Process(ctx context.Context, msg *models.WorkerMessage) (*models.WorkerResponse, error) {
	if w.process != nil {
		return w.process(ctx, msg)
	}
	return &models.WorkerResponse{Status: models.ResponseOK, QualityScore: 1}, nil
}

func (w *countingWorker) Reflect(ctx context.Context, resp *models.WorkerResponse) (*models.Reflection, error) {
	if w.reflect != nil {
		return w.reflect(ctx, resp)
	}
	return &models.Reflection{QualityScore: resp.QualityScore, GiveUp: true}, nil
}

func testCatalog() *Catalog {
	return NewCatalog(config.WorkersConfig{
		QualityThresholdDefault: 0.8,
		MaxReflectionIterations: 3,
		IdleTTL:                 time.Minute,
	})
}

func testPool(t *testing.T, factory Factory) *Pool {
	t.Helper()
	m := metrics.New(prometheus.NewRegistry())
	return NewPool(testCatalog(), factory, Deps{}, time.Minute, m, slog.Default())
}

func countingFactory(inits, downs *atomic.Int64) Factory {
	return func(spec *KindSpec, _ Deps) (Worker, error) {
		return &countingWorker{kind: spec.Name, initCount: inits, downCount: downs}, nil
	}
}

func TestPoolLazyInstantiationAndReuse(t *testing.T) {
	var inits, downs atomic.Int64
	p := testPool(t, countingFactory(&inits, &downs))
	ctx := context.Background()

	assert.Equal(t, int64(0), inits.Load())

	h, err := p.Acquire(ctx, "aggregator")
	require.NoError(t, err)
	assert.Equal(t, int64(1), inits.Load())
	h.Release()

	// A released instance is reused, not re-created.
	h2, err := p.Acquire(ctx, "aggregator")
	require.NoError(t, err)
	assert.Equal(t, int64(1), inits.Load())
	h2.Release()
}

func TestPoolEnforcesMaxConcurrent(t *testing.T) {
	var inits, downs atomic.Int64
	p := testPool(t, countingFactory(&inits, &downs))
	ctx := context.Background()

	spec, err := testCatalog().Lookup("security_auditor")
	require.NoError(t, err)
	require.Equal(t, int64(2), spec.MaxConcurrent)

	h1, err := p.Acquire(ctx, "security_auditor")
	require.NoError(t, err)
	h2, err := p.Acquire(ctx, "security_auditor")
	require.NoError(t, err)

	// Saturated: a bounded wait surfaces PoolExhausted.
	shortCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, err = p.Acquire(shortCtx, "security_auditor")
	require.Error(t, err)
	assert.Equal(t, apperr.KindPoolExhausted, apperr.KindOf(err))

	h1.Release()
	h3, err := p.Acquire(ctx, "security_auditor")
	require.NoError(t, err)
	h3.Release()
	h2.Release()
}

func TestPoolBlockedAcquireUnblocksOnRelease(t *testing.T) {
	var inits, downs atomic.Int64
	p := testPool(t, countingFactory(&inits, &downs))
	ctx := context.Background()

	h1, err := p.Acquire(ctx, "security_auditor")
	require.NoError(t, err)
	h2, err := p.Acquire(ctx, "security_auditor")
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	acquired := make(chan struct{})
	go func() {
		defer wg.Done()
		h, err := p.Acquire(ctx, "security_auditor")
		assert.NoError(t, err)
		close(acquired)
		h.Release()
	}()

	time.Sleep(20 * time.Millisecond)
	h1.Release()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("blocked acquire did not resume after release")
	}
	wg.Wait()
	h2.Release()
}

func TestPoolUnknownKind(t *testing.T) {
	p := testPool(t, countingFactory(&atomic.Int64{}, &atomic.Int64{}))
	_, err := p.Acquire(context.Background(), "no_such_kind")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestPoolReapsIdleWorkers(t *testing.T) {
	var inits, downs atomic.Int64
	m := metrics.New(prometheus.NewRegistry())
	p := NewPool(testCatalog(), countingFactory(&inits, &downs), Deps{}, 10*time.Millisecond, m, slog.Default())
	ctx := context.Background()

	h, err := p.Acquire(ctx, "aggregator")
	require.NoError(t, err)
	h.Release()

	time.Sleep(20 * time.Millisecond)
	p.reapIdle(ctx)
	assert.Equal(t, int64(1), downs.Load())

	// Next acquire builds a fresh instance.
	h2, err := p.Acquire(ctx, "aggregator")
	require.NoError(t, err)
	assert.Equal(t, int64(2), inits.Load())
	h2.Release()
}

func TestPoolShutdownTearsDownParked(t *testing.T) {
	var inits, downs atomic.Int64
	p := testPool(t, countingFactory(&inits, &downs))
	ctx := context.Background()

	h, err := p.Acquire(ctx, "aggregator")
	require.NoError(t, err)
	h.Release()
	h2, err := p.Acquire(ctx, "memory")
	require.NoError(t, err)
	h2.Release()

	p.Shutdown(ctx)
	assert.Equal(t, int64(2), downs.Load())
}

func TestCatalogDefaults(t *testing.T) {
	c := testCatalog()

	t.Run("sixteen kinds", func(t *testing.T) {
		assert.Len(t, c.All(), 16)
	})

	t.Run("config defaults applied", func(t *testing.T) {
		spec, err := c.Lookup("anomaly_detector")
		require.NoError(t, err)
		assert.Equal(t, 0.8, spec.QualityThreshold)
		assert.Equal(t, 3, spec.MaxReflectionIterations)
	})

	t.Run("capability lookup", func(t *testing.T) {
		kinds := c.ByCapability("anomaly_detection")
		names := make([]string, 0, len(kinds))
		for _, k := range kinds {
			names = append(names, k.Name)
		}
		assert.Contains(t, names, "anomaly_detector")
		assert.Contains(t, names, "corruption_detector")
	})
}
