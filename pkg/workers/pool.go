package workers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/transparencia-ai/veritas/pkg/apperr"
	"github.com/transparencia-ai/veritas/pkg/metrics"
)

// Pool hands out worker instances bounded by each kind's MaxConcurrent.
// Instances are created lazily on first acquire, parked on release and
// torn down after sitting idle past the soft TTL.
type Pool struct {
	catalog *Catalog
	factory Factory
	deps    Deps
	idleTTL time.Duration
	m       *metrics.Metrics
	log     *slog.Logger

	mu   sync.Mutex
	sems map[string]*semaphore.Weighted
	idle map[string][]*idleWorker
}

type idleWorker struct {
	worker   Worker
	parkedAt time.Time
}

// Handle is a leased worker. Callers must Release it exactly once.
type Handle struct {
	Worker Worker
	Spec   *KindSpec
	pool   *Pool
	done   bool
}

// NewPool builds a pool over the catalog.
func NewPool(catalog *Catalog, factory Factory, deps Deps, idleTTL time.Duration, m *metrics.Metrics, log *slog.Logger) *Pool {
	return &Pool{
		catalog: catalog,
		factory: factory,
		deps:    deps,
		idleTTL: idleTTL,
		m:       m,
		log:     log.With("component", "worker_pool"),
		sems:    make(map[string]*semaphore.Weighted),
		idle:    make(map[string][]*idleWorker),
	}
}

// Acquire leases a worker of the given kind, waiting up to the context
// deadline when the kind is saturated. Saturation past the deadline
// surfaces as PoolExhausted.
func (p *Pool) Acquire(ctx context.Context, kind string) (*Handle, error) {
	spec, err := p.catalog.Lookup(kind)
	if err != nil {
		return nil, err
	}

	if err := p.semFor(spec).Acquire(ctx, 1); err != nil {
		p.m.PoolExhausted(kind)
		return nil, apperr.Wrap(apperr.KindPoolExhausted, "worker pool saturated for kind "+kind, err)
	}

	worker, err := p.takeOrCreate(ctx, spec)
	if err != nil {
		p.semFor(spec).Release(1)
		return nil, err
	}

	p.m.PoolAcquired(kind)
	return &Handle{Worker: worker, Spec: spec, pool: p}, nil
}

// Release parks the worker for reuse and frees its concurrency slot.
func (h *Handle) Release() {
	if h.done {
		return
	}
	h.done = true
	h.pool.park(h.Spec, h.Worker)
	h.pool.semFor(h.Spec).Release(1)
	h.pool.m.PoolReleased(h.Spec.Name)
}

// Discard tears the worker down instead of parking it, for instances left
// in an unknown state by a failure.
func (h *Handle) Discard(ctx context.Context) {
	if h.done {
		return
	}
	h.done = true
	if err := h.Worker.Shutdown(ctx); err != nil {
		h.pool.log.Warn("Worker shutdown failed", "kind", h.Spec.Name, "error", err)
	}
	h.pool.semFor(h.Spec).Release(1)
	h.pool.m.PoolReleased(h.Spec.Name)
}

func (p *Pool) semFor(spec *KindSpec) *semaphore.Weighted {
	p.mu.Lock()
	defer p.mu.Unlock()
	sem, ok := p.sems[spec.Name]
	if !ok {
		sem = semaphore.NewWeighted(spec.MaxConcurrent)
		p.sems[spec.Name] = sem
	}
	return sem
}

func (p *Pool) takeOrCreate(ctx context.Context, spec *KindSpec) (Worker, error) {
	p.mu.Lock()
	parked := p.idle[spec.Name]
	if n := len(parked); n > 0 {
		w := parked[n-1].worker
		p.idle[spec.Name] = parked[:n-1]
		p.mu.Unlock()
		return w, nil
	}
	p.mu.Unlock()

	worker, err := p.factory(spec, p.deps)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "instantiate worker "+spec.Name, err)
	}
	if err := worker.Initialize(ctx); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "initialize worker "+spec.Name, err)
	}
	p.log.Debug("Worker instantiated", "kind", spec.Name)
	return worker, nil
}

func (p *Pool) park(spec *KindSpec, w Worker) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.idle[spec.Name] = append(p.idle[spec.Name], &idleWorker{worker: w, parkedAt: time.Now()})
}

// StartReaper tears down workers idle past the soft TTL until ctx ends.
func (p *Pool) StartReaper(ctx context.Context) {
	interval := p.idleTTL / 2
	if interval < time.Second {
		interval = time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.reapIdle(ctx)
			}
		}
	}()
}

func (p *Pool) reapIdle(ctx context.Context) {
	cutoff := time.Now().Add(-p.idleTTL)

	var stale []Worker
	p.mu.Lock()
	for kind, parked := range p.idle {
		kept := parked[:0]
		for _, iw := range parked {
			if iw.parkedAt.Before(cutoff) {
				stale = append(stale, iw.worker)
			} else {
				kept = append(kept, iw)
			}
		}
		p.idle[kind] = kept
	}
	p.mu.Unlock()

	for _, w := range stale {
		if err := w.Shutdown(ctx); err != nil {
			p.log.Warn("Idle worker shutdown failed", "kind", w.Kind(), "error", err)
		} else {
			p.log.Debug("Idle worker torn down", "kind", w.Kind())
		}
	}
}

// Shutdown tears down every parked worker. Leased workers are the
// leaseholder's responsibility.
func (p *Pool) Shutdown(ctx context.Context) {
	p.mu.Lock()
	var all []Worker
	for _, parked := range p.idle {
		for _, iw := range parked {
			all = append(all, iw.worker)
		}
	}
	p.idle = make(map[string][]*idleWorker)
	p.mu.Unlock()

	for _, w := range all {
		if err := w.Shutdown(ctx); err != nil {
			p.log.Warn("Worker shutdown failed", "kind", w.Kind(), "error", err)
		}
	}
}
