package queue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transparencia-ai/veritas/ent"
	"github.com/transparencia-ai/veritas/pkg/apperr"
	"github.com/transparencia-ai/veritas/pkg/config"
	"github.com/transparencia-ai/veritas/pkg/metrics"
	"github.com/transparencia-ai/veritas/pkg/models"
)

type fakeStore struct {
	mu         sync.Mutex
	pending    []*ent.Investigation
	processing map[string]bool
	failed     map[string]apperr.Kind
	heartbeats atomic.Int64
	requeues   atomic.Int64
}

func newFakeStore(ids ...string) *fakeStore {
	s := &fakeStore{
		processing: make(map[string]bool),
		failed:     make(map[string]apperr.Kind),
	}
	for _, id := range ids {
		s.pending = append(s.pending, &ent.Investigation{ID: id, QueryText: "q", CorrelationID: "cid-" + id})
	}
	return s
}

func (s *fakeStore) ClaimPending(_ context.Context, _ string, limit int) ([]*ent.Investigation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := limit
	if n > len(s.pending) {
		n = len(s.pending)
	}
	claimed := s.pending[:n]
	s.pending = s.pending[n:]
	return claimed, nil
}

func (s *fakeStore) MarkProcessing(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processing[id] = true
	return nil
}

func (s *fakeStore) Heartbeat(context.Context, string, string) error {
	s.heartbeats.Add(1)
	return nil
}

func (s *fakeStore) RequeueOrphans(context.Context, time.Duration) (int, error) {
	s.requeues.Add(1)
	return 0, nil
}

func (s *fakeStore) Fail(_ context.Context, id string, kind apperr.Kind, _ string, _ []models.Finding) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed[id] = kind
	return nil
}

type fakeProcessor struct {
	mu        sync.Mutex
	processed []string
	inFlight  atomic.Int64
	maxSeen   atomic.Int64
	block     time.Duration
	err       error
}

func (p *fakeProcessor) Process(_ context.Context, inv *ent.Investigation) error {
	cur := p.inFlight.Add(1)
	defer p.inFlight.Add(-1)
	for {
		seen := p.maxSeen.Load()
		if cur <= seen || p.maxSeen.CompareAndSwap(seen, cur) {
			break
		}
	}
	if p.block > 0 {
		time.Sleep(p.block)
	}
	p.mu.Lock()
	p.processed = append(p.processed, inv.ID)
	p.mu.Unlock()
	return p.err
}

func testConfig() config.QueueConfig {
	return config.QueueConfig{
		WorkerCount:             4,
		MaxConcurrentRuns:       2,
		PollInterval:            10 * time.Millisecond,
		PollIntervalJitter:      time.Millisecond,
		InvestigationTimeout:    time.Second,
		HeartbeatInterval:       10 * time.Millisecond,
		OrphanThreshold:         time.Minute,
		OrphanScanInterval:      20 * time.Millisecond,
		GracefulShutdownTimeout: time.Second,
	}
}

func runQueue(t *testing.T, q *Queue, d time.Duration) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	require.NoError(t, q.Run(ctx))
}

func TestQueueProcessesClaimedWork(t *testing.T) {
	store := newFakeStore("inv-1", "inv-2", "inv-3")
	proc := &fakeProcessor{}
	q := New(testConfig(), store, proc, "pod-a", metrics.New(prometheus.NewRegistry()))

	runQueue(t, q, 300*time.Millisecond)

	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.ElementsMatch(t, []string{"inv-1", "inv-2", "inv-3"}, proc.processed)
	assert.True(t, store.processing["inv-1"])
}

func TestQueueBoundsConcurrency(t *testing.T) {
	store := newFakeStore("a", "b", "c", "d", "e", "f")
	proc := &fakeProcessor{block: 30 * time.Millisecond}
	q := New(testConfig(), store, proc, "pod-a", metrics.New(prometheus.NewRegistry()))

	runQueue(t, q, 500*time.Millisecond)

	assert.LessOrEqual(t, proc.maxSeen.Load(), int64(2))
	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.Len(t, proc.processed, 6)
}

func TestQueuePersistsProcessorFailure(t *testing.T) {
	store := newFakeStore("inv-1")
	proc := &fakeProcessor{err: errors.New("planner exploded")}
	q := New(testConfig(), store, proc, "pod-a", metrics.New(prometheus.NewRegistry()))

	runQueue(t, q, 200*time.Millisecond)

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Equal(t, apperr.KindInternal, store.failed["inv-1"])
}

func TestQueueHeartbeatsAndScansOrphans(t *testing.T) {
	store := newFakeStore("inv-1")
	proc := &fakeProcessor{block: 100 * time.Millisecond}
	q := New(testConfig(), store, proc, "pod-a", metrics.New(prometheus.NewRegistry()))

	runQueue(t, q, 300*time.Millisecond)

	assert.Positive(t, store.heartbeats.Load())
	assert.Positive(t, store.requeues.Load())
}

func TestQueueDrainsInFlightOnShutdown(t *testing.T) {
	store := newFakeStore("inv-1")
	proc := &fakeProcessor{block: 80 * time.Millisecond}
	q := New(testConfig(), store, proc, "pod-a", metrics.New(prometheus.NewRegistry()))

	// Cancel while inv-1 is mid-flight; drain must let it finish.
	runQueue(t, q, 50*time.Millisecond)

	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.Equal(t, []string{"inv-1"}, proc.processed)
}
