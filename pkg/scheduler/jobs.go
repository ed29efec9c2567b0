package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/transparencia-ai/veritas/ent"
	"github.com/transparencia-ai/veritas/ent/scheduledjob"
	"github.com/transparencia-ai/veritas/pkg/config"
	"github.com/transparencia-ai/veritas/pkg/federator"
	"github.com/transparencia-ai/veritas/pkg/logging"
	"github.com/transparencia-ai/veritas/pkg/models"
	"github.com/transparencia-ai/veritas/pkg/services"
)

// CachePruner is the durable cache tier's expiry sweep.
type CachePruner interface {
	PruneExpired(ctx context.Context) (int, error)
}

// JobDeps carries everything the built-in jobs touch.
type JobDeps struct {
	Federator      *federator.Federator
	Cache          CachePruner
	Investigations *services.InvestigationService
	Events         *services.EventService
	Warnings       *services.SystemWarningsService
	Retention      config.RetentionConfig
}

// scanEndpoints are refreshed periodically so interactive investigations
// start warm.
var scanEndpoints = []string{
	"transparencia_contratos",
	"transparencia_despesas",
	"transparencia_licitacoes",
}

// RegisterBuiltinJobs registers the standing jobs and seeds their rows.
func RegisterBuiltinJobs(ctx context.Context, s *Scheduler, deps JobDeps) error {
	s.Register("scan_new_data", scanNewData(deps))
	s.Register("upstream_health_probe", upstreamHealthProbe(deps))
	s.Register("reanalysis", reanalysis(deps))
	s.Register("retention_cleanup", retentionCleanup(deps))

	seeds := []struct {
		id       string
		kind     string
		interval time.Duration
		priority scheduledjob.Priority
	}{
		{"scan_new_data", "scan_new_data", 30 * time.Minute, scheduledjob.PriorityDefault},
		{"upstream_health_probe", "upstream_health_probe", 5 * time.Minute, scheduledjob.PriorityHigh},
		{"reanalysis", "reanalysis", 24 * time.Hour, scheduledjob.PriorityBackground},
		{"retention_cleanup", "retention_cleanup", time.Hour, scheduledjob.PriorityLow},
	}
	for _, seed := range seeds {
		if err := s.EnsureJob(ctx, seed.id, seed.kind, seed.interval, seed.priority, nil); err != nil {
			return err
		}
	}
	return nil
}

// scanNewData refreshes the cache for the high-traffic endpoints with the
// current year's data.
func scanNewData(deps JobDeps) JobHandler {
	return func(ctx context.Context, _ *ent.ScheduledJob) error {
		params := map[string]string{"ano": strconv.Itoa(time.Now().Year())}
		var lastErr error
		for _, endpoint := range scanEndpoints {
			if _, err := deps.Federator.Fetch(ctx, endpoint, params); err != nil {
				logging.FromContext(ctx).Warn("Scan fetch failed",
					"endpoint", endpoint, "error", err)
				lastErr = err
			}
		}
		return lastErr
	}
}

// upstreamHealthProbe hits a cheap unauthenticated endpoint and drives the
// upstream readiness warning.
func upstreamHealthProbe(deps JobDeps) JobHandler {
	return func(ctx context.Context, _ *ent.ScheduledJob) error {
		if _, err := deps.Federator.Fetch(ctx, "ibge_estados", nil); err != nil {
			deps.Warnings.Add(services.WarningCategoryUpstream,
				"upstream probe failing", err.Error())
			return err
		}
		deps.Warnings.Clear(services.WarningCategoryUpstream)
		return nil
	}
}

// reanalysis re-queues recent low-confidence completed investigations for
// another pass once fresher upstream data is likely available.
func reanalysis(deps JobDeps) JobHandler {
	const confidenceFloor = 0.5
	return func(ctx context.Context, _ *ent.ScheduledJob) error {
		rows, _, err := deps.Investigations.List(ctx, services.ServicePrincipal, models.InvestigationFilter{
			Status: "completed",
			Limit:  100,
		})
		if err != nil {
			return err
		}

		requeued := 0
		for _, inv := range rows {
			if inv.Confidence == nil || *inv.Confidence >= confidenceFloor {
				continue
			}
			if inv.InvestigationMetadata != nil && inv.InvestigationMetadata["reanalysis_of"] != nil {
				// One follow-up per investigation.
				continue
			}
			_, err := deps.Investigations.Create(ctx, &models.CreateInvestigationRequest{
				InvestigationID:      uuid.NewString(),
				UserID:               inv.UserID,
				QueryText:            inv.QueryText,
				DataSource:           inv.DataSource,
				RequestedWorkerKinds: inv.RequestedWorkerKinds,
				CorrelationID:        uuid.NewString(),
				Metadata:             map[string]any{"reanalysis_of": inv.ID},
			})
			if err != nil {
				return fmt.Errorf("failed to requeue %s: %w", inv.ID, err)
			}
			requeued++
		}
		if requeued > 0 {
			logging.FromContext(ctx).Info("Reanalysis requeued investigations", "count", requeued)
		}
		return nil
	}
}

// retentionCleanup applies the retention policy across stores.
func retentionCleanup(deps JobDeps) JobHandler {
	return func(ctx context.Context, _ *ent.ScheduledJob) error {
		log := logging.FromContext(ctx)

		age := time.Duration(deps.Retention.InvestigationRetentionDays) * 24 * time.Hour
		deleted, err := deps.Investigations.SoftDeleteOlderThan(ctx, age)
		if err != nil {
			return err
		}

		events, err := deps.Events.DeleteOlderThan(ctx, deps.Retention.EventTTL)
		if err != nil {
			return err
		}

		pruned, err := deps.Cache.PruneExpired(ctx)
		if err != nil {
			return err
		}

		log.Info("Retention cleanup finished",
			"investigations_deleted", deleted,
			"events_deleted", events,
			"cache_entries_pruned", pruned)
		return nil
	}
}
