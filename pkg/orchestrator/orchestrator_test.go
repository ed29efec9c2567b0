package orchestrator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transparencia-ai/veritas/ent"
	"github.com/transparencia-ai/veritas/pkg/apperr"
	"github.com/transparencia-ai/veritas/pkg/config"
	"github.com/transparencia-ai/veritas/pkg/events"
	"github.com/transparencia-ai/veritas/pkg/metrics"
	"github.com/transparencia-ai/veritas/pkg/models"
	"github.com/transparencia-ai/veritas/pkg/planner"
	"github.com/transparencia-ai/veritas/pkg/services"
	"github.com/transparencia-ai/veritas/pkg/workers"
)

type fakeExecutor struct {
	mu        sync.Mutex
	responses map[string]func(ctx context.Context, msg *models.WorkerMessage) (*models.WorkerResponse, error)
	calls     []string
	payloads  map[string]map[string]any
}

func newFakeExecutor() *fakeExecutor {
	return &fakeExecutor{
		responses: make(map[string]func(ctx context.Context, msg *models.WorkerMessage) (*models.WorkerResponse, error)),
		payloads:  make(map[string]map[string]any),
	}
}

func (f *fakeExecutor) respond(kind string, resp *models.WorkerResponse) {
	f.responses[kind] = func(context.Context, *models.WorkerMessage) (*models.WorkerResponse, error) { return resp, nil }
}

func (f *fakeExecutor) Execute(ctx context.Context, kind string, msg *models.WorkerMessage) (*models.WorkerResponse, error) {
	f.mu.Lock()
	f.calls = append(f.calls, kind)
	f.payloads[kind] = msg.Payload
	fn := f.responses[kind]
	f.mu.Unlock()
	if fn == nil {
		return &models.WorkerResponse{Status: models.ResponseOK, QualityScore: 0.9}, nil
	}
	return fn(ctx, msg)
}

type fakeStore struct {
	mu               sync.Mutex
	progress         []float64
	completed        *services.CompletionResult
	failed           bool
	failKind         apperr.Kind
	partial          []models.Finding
	cancelled        bool
	cancelRecorded   bool
	cancelledPartial []models.Finding
}

func (f *fakeStore) UpdateProgress(_ context.Context, _ string, progress float64, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.progress = append(f.progress, progress)
	return nil
}

func (f *fakeStore) Complete(_ context.Context, _ string, result *services.CompletionResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completed = result
	return nil
}

func (f *fakeStore) Fail(_ context.Context, _ string, kind apperr.Kind, _ string, partial []models.Finding) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failed = true
	f.failKind = kind
	f.partial = partial
	return nil
}

func (f *fakeStore) IsCancelled(_ context.Context, _ string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cancelled, nil
}

func (f *fakeStore) RecordCancellation(_ context.Context, _ string, partial []models.Finding) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelRecorded = true
	f.cancelledPartial = partial
	return nil
}

type fakePublisher struct {
	mu    sync.Mutex
	types []string
}

func (f *fakePublisher) Publish(_ context.Context, _, eventType string, _ map[string]any) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.types = append(f.types, eventType)
	return len(f.types), nil
}

func (f *fakePublisher) published(eventType string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, t := range f.types {
		if t == eventType {
			n++
		}
	}
	return n
}

func testPlan(t *testing.T, kinds ...string) *planner.Plan {
	t.Helper()
	catalog := workers.NewCatalog(config.WorkersConfig{
		QualityThresholdDefault: 0.8,
		MaxReflectionIterations: 3,
		IdleTTL:                 time.Minute,
	})
	p := planner.New(catalog, 10*time.Minute)
	plan, err := p.Build(models.Intent{Kind: models.IntentInvestigate, Confidence: 0.9}, nil, kinds)
	require.NoError(t, err)
	return plan
}

func testInvestigation() *ent.Investigation {
	return &ent.Investigation{
		ID:            "inv-1",
		QueryText:     "investigar contratos",
		CorrelationID: "cid-1",
	}
}

func okResponse(quality float64, findings ...models.Finding) *models.WorkerResponse {
	return &models.WorkerResponse{
		Status:       models.ResponseOK,
		QualityScore: quality,
		Findings:     findings,
	}
}

func finding(kind string) models.Finding {
	return models.Finding{ID: kind, Kind: kind, Severity: models.SeverityMedium, Confidence: 0.7, Description: kind}
}

func TestRunHappyPath(t *testing.T) {
	exec := newFakeExecutor()
	exec.respond("orchestrator_master", okResponse(0.95))
	exec.respond("anomaly_detector", okResponse(0.85, finding("price_outlier")))
	exec.respond("corruption_detector", okResponse(0.9, finding("supplier_concentration")))
	exec.respond("aggregator", okResponse(0.9, finding("price_outlier"), finding("supplier_concentration")))
	exec.respond("report_writer", &models.WorkerResponse{
		Status: models.ResponseOK, QualityScore: 0.88, Summary: "Resumo executivo",
	})

	store := &fakeStore{}
	pub := &fakePublisher{}
	o := New(exec, store, pub, metrics.New(prometheus.NewRegistry()))

	plan := testPlan(t, "anomaly_detector", "corruption_detector", "aggregator", "report_writer")
	require.NoError(t, o.Run(context.Background(), testInvestigation(), plan))

	require.NotNil(t, store.completed)
	assert.False(t, store.failed)
	assert.Equal(t, "Resumo executivo", store.completed.Summary)
	// Aggregated findings supersede raw worker output.
	assert.Len(t, store.completed.Findings, 2)
	// Confidence is the minimum quality over required steps.
	assert.InDelta(t, 0.88, store.completed.Confidence, 1e-9)

	t.Run("progress is monotonic over required steps", func(t *testing.T) {
		require.NotEmpty(t, store.progress)
		for i := 1; i < len(store.progress); i++ {
			assert.GreaterOrEqual(t, store.progress[i], store.progress[i-1])
		}
		assert.InDelta(t, 1.0, store.progress[len(store.progress)-1], 1e-9)
	})

	t.Run("events cover the lifecycle", func(t *testing.T) {
		assert.Equal(t, len(plan.Steps), pub.published(events.TypeStepStarted))
		assert.Equal(t, 1, pub.published(events.TypeInvestigationCompleted))
		assert.Zero(t, pub.published(events.TypeInvestigationFailed))
	})
}

func TestRunConsumersReceiveUpstreamFindings(t *testing.T) {
	exec := newFakeExecutor()
	exec.respond("anomaly_detector", okResponse(0.85, finding("price_outlier")))

	store := &fakeStore{}
	o := New(exec, store, &fakePublisher{}, metrics.New(prometheus.NewRegistry()))

	plan := testPlan(t, "anomaly_detector", "corruption_detector", "aggregator", "report_writer")
	require.NoError(t, o.Run(context.Background(), testInvestigation(), plan))

	payload := exec.payloads["aggregator"]
	require.NotNil(t, payload)
	upstream, ok := payload["findings"].([]models.Finding)
	require.True(t, ok)
	assert.NotEmpty(t, upstream)
}

func TestRunRequiredFailureCompensatesSaga(t *testing.T) {
	exec := newFakeExecutor()
	exec.respond("anomaly_detector", okResponse(0.85, finding("price_outlier")))
	exec.respond("corruption_detector", okResponse(0.9, finding("supplier_concentration")))
	exec.responses["aggregator"] = func(context.Context, *models.WorkerMessage) (*models.WorkerResponse, error) {
		return nil, apperr.New(apperr.KindInternal, "aggregation blew up")
	}

	store := &fakeStore{}
	pub := &fakePublisher{}
	o := New(exec, store, pub, metrics.New(prometheus.NewRegistry()))

	plan := testPlan(t, "anomaly_detector", "corruption_detector", "aggregator", "report_writer")
	require.NoError(t, o.Run(context.Background(), testInvestigation(), plan))

	assert.True(t, store.failed)
	assert.Nil(t, store.completed)
	// Saga compensation discarded the detectors' partial findings.
	assert.Empty(t, store.partial)
	assert.Equal(t, 1, pub.published(events.TypeInvestigationFailed))

	// report_writer never ran downstream of the failure.
	for _, call := range exec.calls {
		assert.NotEqual(t, "report_writer", call)
	}
}

func TestRunOptionalFailureDegrades(t *testing.T) {
	exec := newFakeExecutor()
	exec.responses["anomaly_detector"] = func(context.Context, *models.WorkerMessage) (*models.WorkerResponse, error) {
		return &models.WorkerResponse{Status: models.ResponseFailed, Error: "upstream unavailable"}, nil
	}
	exec.respond("corruption_detector", okResponse(0.9, finding("supplier_concentration")))

	store := &fakeStore{}
	o := New(exec, store, &fakePublisher{}, metrics.New(prometheus.NewRegistry()))

	plan := testPlan(t, "anomaly_detector", "corruption_detector", "aggregator", "report_writer")
	require.NoError(t, o.Run(context.Background(), testInvestigation(), plan))

	// A best-effort probe failing does not fail the investigation.
	assert.False(t, store.failed)
	require.NotNil(t, store.completed)
}

func TestRunCancellationStopsDispatch(t *testing.T) {
	exec := newFakeExecutor()
	store := &fakeStore{cancelled: true}
	pub := &fakePublisher{}
	o := New(exec, store, pub, metrics.New(prometheus.NewRegistry()))

	plan := testPlan(t, "anomaly_detector", "corruption_detector", "aggregator", "report_writer")
	require.NoError(t, o.Run(context.Background(), testInvestigation(), plan))

	assert.Nil(t, store.completed)
	assert.False(t, store.failed)
	assert.True(t, store.cancelRecorded)
	assert.Equal(t, 1, pub.published(events.TypeInvestigationCancelled))
	// Only the root dispatched before the cancellation check fired.
	assert.Less(t, len(exec.calls), len(plan.Steps))
}

func TestRunCancellationRetainsPartialFindingsAndAbortsSteps(t *testing.T) {
	exec := newFakeExecutor()
	store := &fakeStore{}
	stepAborted := make(chan struct{})

	// The fast detector produces a finding, then the cancel lands.
	exec.responses["anomaly_detector"] = func(_ context.Context, _ *models.WorkerMessage) (*models.WorkerResponse, error) {
		store.mu.Lock()
		store.cancelled = true
		store.mu.Unlock()
		return okResponse(0.85, finding("price_outlier")), nil
	}
	// The slow detector must be aborted, not left to run out its timeout.
	exec.responses["corruption_detector"] = func(ctx context.Context, _ *models.WorkerMessage) (*models.WorkerResponse, error) {
		select {
		case <-ctx.Done():
			close(stepAborted)
			return nil, ctx.Err()
		case <-time.After(5 * time.Second):
			return okResponse(0.9), nil
		}
	}

	pub := &fakePublisher{}
	o := New(exec, store, pub, metrics.New(prometheus.NewRegistry()))

	plan := testPlan(t, "anomaly_detector", "corruption_detector", "aggregator", "report_writer")
	require.NoError(t, o.Run(context.Background(), testInvestigation(), plan))

	select {
	case <-stepAborted:
	default:
		t.Fatal("in-flight step kept running after cancellation")
	}

	// Findings produced before the cancel survive on the cancelled row.
	require.Len(t, store.cancelledPartial, 1)
	assert.Equal(t, "price_outlier", store.cancelledPartial[0].Kind)
	assert.Nil(t, store.completed)
	assert.False(t, store.failed)
	assert.Equal(t, 1, pub.published(events.TypeInvestigationCancelled))
}
