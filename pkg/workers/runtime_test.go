package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transparencia-ai/veritas/pkg/apperr"
	"github.com/transparencia-ai/veritas/pkg/metrics"
	"github.com/transparencia-ai/veritas/pkg/models"
)

func testRuntime(t *testing.T, factory Factory) *Runtime {
	t.Helper()
	m := metrics.New(prometheus.NewRegistry())
	pool := testPool(t, factory)
	return NewRuntime(pool, m)
}

func msgFor(action string) *models.WorkerMessage {
	return &models.WorkerMessage{
		ID:            "msg-1",
		CorrelationID: "cid-1",
		Action:        action,
		Payload:       map[string]any{},
	}
}

func TestRuntimeReturnsWhenQualityMet(t *testing.T) {
	var processCalls atomic.Int64
	factory := func(spec *KindSpec, _ Deps) (Worker, error) {
		return &countingWorker{
			kind: spec.Name, initCount: &atomic.Int64{}, downCount: &atomic.Int64{},
			process: func(ctx context.Context, msg *models.WorkerMessage) (*models.WorkerResponse, error) {
				processCalls.Add(1)
				return &models.WorkerResponse{Status: models.ResponseOK, QualityScore: 0.95}, nil
			},
		}, nil
	}
	r := testRuntime(t, factory)

	resp, err := r.Execute(context.Background(), "aggregator", msgFor("aggregate"))
	require.NoError(t, err)
	assert.Equal(t, models.ResponseOK, resp.Status)
	assert.Equal(t, "cid-1", resp.CorrelationID)
	assert.Equal(t, int64(1), processCalls.Load())
}

func TestRuntimeReflectionImprovesQuality(t *testing.T) {
	var processCalls atomic.Int64
	factory := func(spec *KindSpec, _ Deps) (Worker, error) {
		return &countingWorker{
			kind: spec.Name, initCount: &atomic.Int64{}, downCount: &atomic.Int64{},
			process: func(ctx context.Context, msg *models.WorkerMessage) (*models.WorkerResponse, error) {
				processCalls.Add(1)
				quality := 0.5
				if msg.Payload["improvement_hint"] != nil {
					quality = 0.9
				}
				return &models.WorkerResponse{Status: models.ResponseOK, QualityScore: quality}, nil
			},
			reflect: func(ctx context.Context, resp *models.WorkerResponse) (*models.Reflection, error) {
				return &models.Reflection{QualityScore: resp.QualityScore, ImprovementHint: "dig deeper"}, nil
			},
		}, nil
	}
	r := testRuntime(t, factory)

	resp, err := r.Execute(context.Background(), "aggregator", msgFor("aggregate"))
	require.NoError(t, err)
	assert.Equal(t, models.ResponseOK, resp.Status)
	assert.Equal(t, 0.9, resp.QualityScore)
	assert.Equal(t, int64(2), processCalls.Load())
}

func TestRuntimeBoundedIterations(t *testing.T) {
	var processCalls atomic.Int64
	factory := func(spec *KindSpec, _ Deps) (Worker, error) {
		return &countingWorker{
			kind: spec.Name, initCount: &atomic.Int64{}, downCount: &atomic.Int64{},
			process: func(ctx context.Context, msg *models.WorkerMessage) (*models.WorkerResponse, error) {
				processCalls.Add(1)
				return &models.WorkerResponse{Status: models.ResponseOK, QualityScore: 0.1}, nil
			},
			reflect: func(ctx context.Context, resp *models.WorkerResponse) (*models.Reflection, error) {
				return &models.Reflection{QualityScore: resp.QualityScore, ImprovementHint: "again"}, nil
			},
		}, nil
	}
	r := testRuntime(t, factory)

	resp, err := r.Execute(context.Background(), "aggregator", msgFor("aggregate"))
	require.NoError(t, err)
	// Below threshold after the final iteration: degraded, never an error.
	assert.Equal(t, models.ResponseDegraded, resp.Status)
	// max_reflection_iterations=3 bounds the loop to 4 process calls.
	assert.LessOrEqual(t, processCalls.Load(), int64(4))
}

func TestRuntimeMarksRetriedResponses(t *testing.T) {
	var processCalls atomic.Int64
	factory := func(spec *KindSpec, _ Deps) (Worker, error) {
		return &countingWorker{
			kind: spec.Name, initCount: &atomic.Int64{}, downCount: &atomic.Int64{},
			process: func(ctx context.Context, msg *models.WorkerMessage) (*models.WorkerResponse, error) {
				processCalls.Add(1)
				return &models.WorkerResponse{
					Status:       models.ResponseOK,
					QualityScore: 0.1,
					Metrics:      map[string]float64{"records_analyzed": 0},
				}, nil
			},
			reflect: func(ctx context.Context, resp *models.WorkerResponse) (*models.Reflection, error) {
				return reflectOnCoverage(resp)
			},
		}, nil
	}
	r := testRuntime(t, factory)

	resp, err := r.Execute(context.Background(), "aggregator", msgFor("aggregate"))
	require.NoError(t, err)
	assert.Equal(t, models.ResponseDegraded, resp.Status)
	// One widened retry, then the still-empty result gives up.
	assert.Equal(t, int64(2), processCalls.Load())
	assert.Equal(t, 1.0, resp.Metrics["reflection_iteration"])
}

func TestRuntimeGiveUpStopsIterating(t *testing.T) {
	var processCalls atomic.Int64
	factory := func(spec *KindSpec, _ Deps) (Worker, error) {
		return &countingWorker{
			kind: spec.Name, initCount: &atomic.Int64{}, downCount: &atomic.Int64{},
			process: func(ctx context.Context, msg *models.WorkerMessage) (*models.WorkerResponse, error) {
				processCalls.Add(1)
				return &models.WorkerResponse{Status: models.ResponseOK, QualityScore: 0.4}, nil
			},
			reflect: func(ctx context.Context, resp *models.WorkerResponse) (*models.Reflection, error) {
				return &models.Reflection{QualityScore: resp.QualityScore, GiveUp: true}, nil
			},
		}, nil
	}
	r := testRuntime(t, factory)

	resp, err := r.Execute(context.Background(), "aggregator", msgFor("aggregate"))
	require.NoError(t, err)
	assert.Equal(t, models.ResponseDegraded, resp.Status)
	assert.Equal(t, int64(1), processCalls.Load())
}

func TestRuntimeRetriesTransientProcessFailure(t *testing.T) {
	var processCalls atomic.Int64
	factory := func(spec *KindSpec, _ Deps) (Worker, error) {
		return &countingWorker{
			kind: spec.Name, initCount: &atomic.Int64{}, downCount: &atomic.Int64{},
			process: func(ctx context.Context, msg *models.WorkerMessage) (*models.WorkerResponse, error) {
				if processCalls.Add(1) < 2 {
					return nil, apperr.New(apperr.KindTimeout, "transient")
				}
				return &models.WorkerResponse{Status: models.ResponseOK, QualityScore: 0.9}, nil
			},
		}, nil
	}
	r := testRuntime(t, factory)

	resp, err := r.Execute(context.Background(), "aggregator", msgFor("aggregate"))
	require.NoError(t, err)
	assert.Equal(t, models.ResponseOK, resp.Status)
	assert.Equal(t, int64(2), processCalls.Load())
}

func TestRuntimeExhaustedRetriesYieldFailedResponse(t *testing.T) {
	factory := func(spec *KindSpec, _ Deps) (Worker, error) {
		return &countingWorker{
			kind: spec.Name, initCount: &atomic.Int64{}, downCount: &atomic.Int64{},
			process: func(ctx context.Context, msg *models.WorkerMessage) (*models.WorkerResponse, error) {
				return nil, errors.New("unexpected panic-equivalent")
			},
		}, nil
	}
	r := testRuntime(t, factory)

	resp, err := r.Execute(context.Background(), "aggregator", msgFor("aggregate"))
	require.NoError(t, err)
	assert.Equal(t, models.ResponseFailed, resp.Status)
	assert.NotEmpty(t, resp.Error)
}

func TestRuntimeDeadlineSurfacesTimeout(t *testing.T) {
	factory := func(spec *KindSpec, _ Deps) (Worker, error) {
		return &countingWorker{
			kind: spec.Name, initCount: &atomic.Int64{}, downCount: &atomic.Int64{},
			process: func(ctx context.Context, msg *models.WorkerMessage) (*models.WorkerResponse, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
		}, nil
	}
	r := testRuntime(t, factory)

	msg := msgFor("aggregate")
	msg.Deadline = time.Now().Add(30 * time.Millisecond)

	_, err := r.Execute(context.Background(), "aggregator", msg)
	require.Error(t, err)
	assert.Equal(t, apperr.KindTimeout, apperr.KindOf(err))
}
