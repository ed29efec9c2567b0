package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/transparencia-ai/veritas/ent"
	"github.com/transparencia-ai/veritas/ent/scheduledjob"
	"github.com/transparencia-ai/veritas/pkg/config"
	"github.com/transparencia-ai/veritas/pkg/metrics"
)

// JobHandler runs one firing of a scheduled job.
type JobHandler func(ctx context.Context, job *ent.ScheduledJob) error

// priorityRank orders firings within one tick; lower runs first.
var priorityRank = map[scheduledjob.Priority]int{
	scheduledjob.PriorityCritical:   0,
	scheduledjob.PriorityHigh:       1,
	scheduledjob.PriorityDefault:    2,
	scheduledjob.PriorityLow:        3,
	scheduledjob.PriorityBackground: 4,
}

// Scheduler ticks the job table on the leader replica.
type Scheduler struct {
	cfg      config.SchedulerConfig
	client   *ent.Client
	elector  *LeaderElector
	handlers map[string]JobHandler
	m        *metrics.Metrics
	log      *slog.Logger
}

// New builds a scheduler. Handlers are registered before Run.
func New(cfg config.SchedulerConfig, client *ent.Client, elector *LeaderElector, m *metrics.Metrics) *Scheduler {
	return &Scheduler{
		cfg:      cfg,
		client:   client,
		elector:  elector,
		handlers: make(map[string]JobHandler),
		m:        m,
		log:      slog.Default().With("component", "scheduler"),
	}
}

// Register binds a handler to a job kind.
func (s *Scheduler) Register(kind string, handler JobHandler) {
	s.handlers[kind] = handler
}

// EnsureJob creates the job row if it does not exist yet. Existing rows
// keep their operator-tuned interval and enabled flag.
func (s *Scheduler) EnsureJob(ctx context.Context, id, kind string, interval time.Duration, priority scheduledjob.Priority, params map[string]interface{}) error {
	err := s.client.ScheduledJob.Create().
		SetID(id).
		SetKind(kind).
		SetIntervalSeconds(int64(interval.Seconds())).
		SetPriority(priority).
		SetNextRunAt(time.Now().UTC().Add(interval)).
		SetParams(params).
		OnConflictColumns(scheduledjob.FieldID).
		Ignore().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to ensure job %s: %w", id, err)
	}
	return nil
}

// Run ticks until ctx is cancelled. Non-leader replicas keep contending
// for the lease so a dead leader is replaced within one TTL.
func (s *Scheduler) Run(ctx context.Context) error {
	s.log.Info("Scheduler started",
		"tick_interval", s.cfg.TickInterval, "lease_ttl", s.cfg.LeaderLeaseTTL)
	defer s.elector.Release(context.WithoutCancel(ctx))

	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		if !s.elector.TryAcquire(ctx) {
			continue
		}
		s.runDue(ctx)
	}
}

// runDue fires every enabled job whose next_run_at has passed, in
// (priority, next_run_at) order.
func (s *Scheduler) runDue(ctx context.Context) {
	now := time.Now().UTC()
	due, err := s.client.ScheduledJob.Query().
		Where(scheduledjob.Enabled(true), scheduledjob.NextRunAtLTE(now)).
		Order(ent.Asc(scheduledjob.FieldNextRunAt)).
		All(ctx)
	if err != nil {
		s.log.Error("Failed to query due jobs", "error", err)
		return
	}
	sort.SliceStable(due, func(i, j int) bool {
		return priorityRank[due[i].Priority] < priorityRank[due[j].Priority]
	})

	for _, job := range due {
		if ctx.Err() != nil {
			return
		}
		s.runJob(ctx, job)
	}
}

func (s *Scheduler) runJob(ctx context.Context, job *ent.ScheduledJob) {
	handler, ok := s.handlers[job.Kind]
	if !ok {
		s.log.Warn("No handler for job kind, disabling", "job_id", job.ID, "kind", job.Kind)
		_ = s.client.ScheduledJob.UpdateOne(job).SetEnabled(false).Exec(ctx)
		return
	}

	start := time.Now()
	err := handler(ctx, job)
	now := time.Now().UTC()
	interval := time.Duration(job.IntervalSeconds) * time.Second

	update := s.client.ScheduledJob.UpdateOne(job)
	if err != nil {
		failures := job.ConsecutiveFailures + 1
		s.m.JobRun(job.Kind, "error")
		s.log.Error("Scheduled job failed",
			"job_id", job.ID, "kind", job.Kind, "failures", failures, "error", err)
		if failures > s.cfg.MaxJobRetries {
			// Give up on this cycle; retry fresh on the next interval.
			update.SetConsecutiveFailures(0).SetNextRunAt(now.Add(interval))
		} else {
			backoff := s.cfg.RetryBackoff << (failures - 1)
			update.SetConsecutiveFailures(failures).SetNextRunAt(now.Add(backoff))
		}
	} else {
		s.m.JobRun(job.Kind, "ok")
		s.log.Info("Scheduled job completed",
			"job_id", job.ID, "kind", job.Kind, "duration", time.Since(start))
		// Advancing from now coalesces firings missed during downtime into
		// the single run that just happened.
		update.
			SetConsecutiveFailures(0).
			SetLastRunAt(now).
			SetNextRunAt(now.Add(interval))
	}
	if uerr := update.Exec(ctx); uerr != nil {
		s.log.Error("Failed to update job row", "job_id", job.ID, "error", uerr)
	}
}
