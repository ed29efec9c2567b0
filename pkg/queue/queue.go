package queue

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/transparencia-ai/veritas/ent"
	"github.com/transparencia-ai/veritas/pkg/apperr"
	"github.com/transparencia-ai/veritas/pkg/config"
	"github.com/transparencia-ai/veritas/pkg/logging"
	"github.com/transparencia-ai/veritas/pkg/metrics"
	"github.com/transparencia-ai/veritas/pkg/models"
)

// Store is the claim/lease surface over the investigations table.
// *services.InvestigationService satisfies it.
type Store interface {
	ClaimPending(ctx context.Context, podID string, limit int) ([]*ent.Investigation, error)
	MarkProcessing(ctx context.Context, id string) error
	Heartbeat(ctx context.Context, id, podID string) error
	RequeueOrphans(ctx context.Context, staleAfter time.Duration) (int, error)
	Fail(ctx context.Context, id string, kind apperr.Kind, message string, partial []models.Finding) error
}

// Queue is the per-replica worker pool over the investigations table.
// Claims are leased by heartbeat: a replica that stops beating forfeits
// its rows to the orphan scanner.
type Queue struct {
	cfg       config.QueueConfig
	store     Store
	processor Processor
	m         *metrics.Metrics
	log       *slog.Logger
	podID     string

	slots chan struct{}
	wg    sync.WaitGroup
}

// New builds a queue for this pod.
func New(cfg config.QueueConfig, store Store, processor Processor, podID string, m *metrics.Metrics) *Queue {
	return &Queue{
		cfg:       cfg,
		store:     store,
		processor: processor,
		m:         m,
		log:       slog.Default().With("component", "queue", "pod_id", podID),
		podID:     podID,
		slots:     make(chan struct{}, cfg.MaxConcurrentRuns),
	}
}

// Run polls for pending work until ctx is cancelled, then drains in-flight
// investigations within the graceful shutdown budget.
func (q *Queue) Run(ctx context.Context) error {
	q.log.Info("Queue started",
		"max_concurrent", q.cfg.MaxConcurrentRuns,
		"poll_interval", q.cfg.PollInterval)

	scanCtx, stopScan := context.WithCancel(ctx)
	defer stopScan()
	go q.scanOrphans(scanCtx)

	for {
		select {
		case <-ctx.Done():
			return q.drain()
		case <-time.After(q.pollDelay()):
		}
		q.claimAndDispatch(ctx)
	}
}

// pollDelay jitters the poll interval so replicas do not thundering-herd
// the claim query.
func (q *Queue) pollDelay() time.Duration {
	jitter := time.Duration(rand.Int63n(int64(q.cfg.PollIntervalJitter) + 1))
	return q.cfg.PollInterval + jitter
}

func (q *Queue) claimAndDispatch(ctx context.Context) {
	free := cap(q.slots) - len(q.slots)
	if free == 0 {
		return
	}
	// One poll claims at most a worker-count batch so a burst of backlog
	// spreads across replicas instead of piling onto the first poller.
	if free > q.cfg.WorkerCount {
		free = q.cfg.WorkerCount
	}

	claimed, err := q.store.ClaimPending(ctx, q.podID, free)
	if err != nil {
		if ctx.Err() == nil {
			q.log.Error("Failed to claim pending investigations", "error", err)
		}
		return
	}

	for _, inv := range claimed {
		select {
		case q.slots <- struct{}{}:
		case <-ctx.Done():
			return
		}
		q.wg.Add(1)
		go func(inv *ent.Investigation) {
			defer q.wg.Done()
			defer func() { <-q.slots }()
			q.runOne(ctx, inv)
		}(inv)
	}
}

// runOne executes one claimed investigation with heartbeating. The run
// context is detached from the poll loop so shutdown drains rather than
// aborts; the investigation timeout still bounds it.
func (q *Queue) runOne(ctx context.Context, inv *ent.Investigation) {
	runCtx := logging.WithCorrelationID(context.WithoutCancel(ctx), inv.CorrelationID)
	runCtx, cancel := context.WithTimeout(runCtx, q.cfg.InvestigationTimeout)
	defer cancel()

	log := logging.FromContext(runCtx).With("investigation_id", inv.ID)
	start := time.Now()

	if err := q.store.MarkProcessing(runCtx, inv.ID); err != nil {
		// Another replica or a cancel beat us to it.
		log.Warn("Skipping claimed investigation", "error", err)
		return
	}

	stopBeat := q.heartbeat(runCtx, inv.ID)
	defer stopBeat()

	if err := q.processor.Process(runCtx, inv); err != nil {
		log.Error("Investigation processing failed", "error", err)
		kind := apperr.KindOf(err)
		if runCtx.Err() != nil {
			kind = apperr.KindTimeout
		}
		if failErr := q.store.Fail(context.WithoutCancel(runCtx), inv.ID, kind, err.Error(), nil); failErr != nil {
			log.Error("Failed to persist investigation failure", "error", failErr)
		}
		q.m.ObserveRequest("queue", "process", "error", time.Since(start), string(kind))
		return
	}
	q.m.ObserveRequest("queue", "process", "ok", time.Since(start), "")
}

// heartbeat refreshes the claim until the returned stop func runs.
func (q *Queue) heartbeat(ctx context.Context, id string) func() {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(q.cfg.HeartbeatInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := q.store.Heartbeat(ctx, id, q.podID); err != nil {
					q.log.Warn("Heartbeat failed", "investigation_id", id, "error", err)
				}
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}

// scanOrphans periodically returns investigations with stale heartbeats
// to the pending state.
func (q *Queue) scanOrphans(ctx context.Context) {
	ticker := time.NewTicker(q.cfg.OrphanScanInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := q.store.RequeueOrphans(ctx, q.cfg.OrphanThreshold); err != nil && ctx.Err() == nil {
				q.log.Error("Orphan scan failed", "error", err)
			}
		}
	}
}

// drain waits for in-flight investigations up to the shutdown budget.
// Anything still running is abandoned; its heartbeat stops and the orphan
// scanner on a surviving replica reclaims it.
func (q *Queue) drain() error {
	q.log.Info("Queue draining", "timeout", q.cfg.GracefulShutdownTimeout)
	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		q.log.Info("Queue drained cleanly")
		return nil
	case <-time.After(q.cfg.GracefulShutdownTimeout):
		q.log.Warn("Queue drain timed out, abandoning in-flight work")
		return nil
	}
}
