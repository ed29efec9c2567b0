package workers

import (
	"context"
	"time"

	"github.com/transparencia-ai/veritas/pkg/apperr"
	"github.com/transparencia-ai/veritas/pkg/logging"
	"github.com/transparencia-ai/veritas/pkg/metrics"
	"github.com/transparencia-ai/veritas/pkg/models"
)

// callState tracks one in-flight worker call through its state machine.
// Transitions are the only place call-level logs and metrics are emitted.
type callState string

const (
	callIdle     callState = "idle"
	callThinking callState = "thinking"
	callActing   callState = "acting"
	callDone     callState = "completed"
	callError    callState = "error"
)

const (
	processRetries      = 2
	processRetryBackoff = 500 * time.Millisecond
)

// Runtime executes worker calls: it leases an instance from the pool,
// drives the reflection loop and guarantees bounded termination.
type Runtime struct {
	pool *Pool
	m    *metrics.Metrics
}

// NewRuntime builds a runtime over the pool.
func NewRuntime(pool *Pool, m *metrics.Metrics) *Runtime {
	return &Runtime{pool: pool, m: m}
}

// Execute runs one worker call end to end. The context deadline bounds the
// whole call including pool acquisition. Quality below threshold after the
// final iteration yields a degraded response, not an error.
func (r *Runtime) Execute(ctx context.Context, kind string, msg *models.WorkerMessage) (*models.WorkerResponse, error) {
	if !msg.Deadline.IsZero() {
		var cancel context.CancelFunc
		ctx, cancel = context.WithDeadline(ctx, msg.Deadline)
		defer cancel()
	}

	handle, err := r.pool.Acquire(ctx, kind)
	if err != nil {
		return nil, err
	}

	resp, err := r.run(ctx, handle, msg)
	if err != nil {
		// The instance may be mid-operation; do not reuse it.
		handle.Discard(context.WithoutCancel(ctx))
		return nil, err
	}
	handle.Release()
	return resp, nil
}

func (r *Runtime) run(ctx context.Context, handle *Handle, msg *models.WorkerMessage) (*models.WorkerResponse, error) {
	spec := handle.Spec
	log := logging.FromContext(ctx).With("worker_kind", spec.Name, "message_id", msg.ID)

	state := callIdle
	transition := func(to callState) {
		log.Debug("Worker call transition", "from", state, "to", to)
		state = to
	}

	start := time.Now()
	iterations := 0
	var resp *models.WorkerResponse

	for {
		iterations++
		transition(callActing)

		var err error
		resp, err = r.processWithRetry(ctx, handle.Worker, msg, log)
		if err != nil {
			transition(callError)
			r.m.ObserveRequest("worker_runtime", spec.Name, "error", time.Since(start), string(apperr.KindOf(err)))
			return nil, err
		}
		resp.CorrelationID = msg.CorrelationID
		if iterations > 1 {
			// Reflections see which retry produced the response.
			if resp.Metrics == nil {
				resp.Metrics = make(map[string]float64)
			}
			resp.Metrics["reflection_iteration"] = float64(iterations - 1)
		}

		if resp.Status == models.ResponseFailed {
			break
		}
		if resp.QualityScore >= spec.QualityThreshold || iterations > spec.MaxReflectionIterations {
			break
		}

		transition(callThinking)
		reflection, err := handle.Worker.Reflect(ctx, resp)
		if err != nil {
			log.Warn("Reflection failed, keeping current response", "error", err)
			break
		}
		if reflection.GiveUp || reflection.ImprovementHint == "" {
			break
		}
		if msg.Payload == nil {
			msg.Payload = make(map[string]any)
		}
		msg.Payload["improvement_hint"] = reflection.ImprovementHint
		log.Info("Reflection iteration",
			"iteration", iterations,
			"quality_score", resp.QualityScore,
			"threshold", spec.QualityThreshold)
	}

	if resp.QualityScore < spec.QualityThreshold && resp.Status == models.ResponseOK {
		resp.Status = models.ResponseDegraded
	}
	transition(callDone)

	r.m.ObserveReflection(spec.Name, iterations, resp.QualityScore)
	r.m.ObserveRequest("worker_runtime", spec.Name, string(resp.Status), time.Since(start), "")
	return resp, nil
}

// processWithRetry retries transient Process failures with a short
// backoff. Exhaustion surfaces a failed response rather than an error so
// the orchestrator can degrade non-required steps.
func (r *Runtime) processWithRetry(ctx context.Context, w Worker, msg *models.WorkerMessage, log interface {
	Warn(msg string, args ...any)
}) (*models.WorkerResponse, error) {
	var lastErr error
	for attempt := 0; attempt <= processRetries; attempt++ {
		if attempt > 0 {
			backoff := processRetryBackoff << (attempt - 1)
			select {
			case <-ctx.Done():
				return nil, apperr.Wrap(apperr.KindTimeout, "process retry", ctx.Err())
			case <-time.After(backoff):
			}
		}

		resp, err := w.Process(ctx, msg)
		if err == nil {
			return resp, nil
		}
		if ctx.Err() != nil {
			return nil, apperr.Wrap(apperr.KindTimeout, "worker process", ctx.Err())
		}
		if !apperr.Retriable(err) && apperr.KindOf(err) != apperr.KindInternal {
			return nil, err
		}
		lastErr = err
		log.Warn("Worker process failed, retrying", "attempt", attempt+1, "error", err)
	}

	return &models.WorkerResponse{
		CorrelationID: msg.CorrelationID,
		Status:        models.ResponseFailed,
		Error:         lastErr.Error(),
	}, nil
}
