// Package services implements the durable application services over ent:
// the investigation store with its monotonic progress guard and row-level
// access, the event catchup reader and the system warnings registry.
package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/transparencia-ai/veritas/ent"
	"github.com/transparencia-ai/veritas/ent/investigation"
	"github.com/transparencia-ai/veritas/pkg/apperr"
	"github.com/transparencia-ai/veritas/pkg/logging"
	"github.com/transparencia-ai/veritas/pkg/models"
)

// Principal identifies the caller for row-level access decisions. A
// service principal (scheduler, queue workers) sees every row.
type Principal struct {
	UserID  string
	Service bool
}

// ServicePrincipal is the internal caller used by autonomous components.
var ServicePrincipal = Principal{UserID: "system", Service: true}

// maxListLimit bounds page sizes.
const maxListLimit = 100

// InvestigationService is the CRUD and lifecycle surface over the
// investigations table.
type InvestigationService struct {
	client *ent.Client
}

// NewInvestigationService builds the service.
func NewInvestigationService(client *ent.Client) *InvestigationService {
	return &InvestigationService{client: client}
}

// Create inserts a pending investigation.
func (s *InvestigationService) Create(ctx context.Context, req *models.CreateInvestigationRequest) (*ent.Investigation, error) {
	if req.QueryText == "" {
		return nil, apperr.New(apperr.KindValidation, "query_text is required")
	}
	if req.UserID == "" {
		return nil, apperr.New(apperr.KindValidation, "user_id is required")
	}

	create := s.client.Investigation.Create().
		SetID(req.InvestigationID).
		SetUserID(req.UserID).
		SetQueryText(req.QueryText).
		SetCorrelationID(req.CorrelationID).
		SetStatus(investigation.StatusPending)
	if req.SessionID != "" {
		create.SetSessionID(req.SessionID)
	}
	if req.DataSource != "" {
		create.SetDataSource(req.DataSource)
	}
	if req.Filters != nil {
		create.SetFilters(req.Filters)
	}
	if len(req.RequestedWorkerKinds) > 0 {
		create.SetRequestedWorkerKinds(req.RequestedWorkerKinds)
	}
	if req.Metadata != nil {
		create.SetInvestigationMetadata(req.Metadata)
	}

	inv, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, apperr.Wrap(apperr.KindValidation, "investigation id already exists", err)
		}
		return nil, fmt.Errorf("failed to create investigation: %w", err)
	}

	logging.FromContext(ctx).Info("Investigation created",
		"investigation_id", inv.ID, "user_id", inv.UserID)
	return inv, nil
}

// Get returns one investigation, enforcing row-level access: users see
// only their own rows, the service principal sees all.
func (s *InvestigationService) Get(ctx context.Context, principal Principal, id string) (*ent.Investigation, error) {
	inv, err := s.client.Investigation.Query().
		Where(investigation.ID(id), investigation.DeletedAtIsNil()).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, apperr.Newf(apperr.KindNotFound, "investigation %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get investigation: %w", err)
	}
	if !principal.Service && inv.UserID != principal.UserID {
		// Indistinguishable from absent, so ids cannot be probed.
		return nil, apperr.Newf(apperr.KindNotFound, "investigation %s not found", id)
	}
	return inv, nil
}

// List returns a page of investigations matching the filter, newest
// first. Non-service principals are always scoped to their own rows.
func (s *InvestigationService) List(ctx context.Context, principal Principal, filter models.InvestigationFilter) ([]*ent.Investigation, int, error) {
	q := s.client.Investigation.Query().
		Where(investigation.DeletedAtIsNil())

	if !principal.Service {
		q = q.Where(investigation.UserID(principal.UserID))
	} else if filter.UserID != "" {
		q = q.Where(investigation.UserID(filter.UserID))
	}
	if filter.Status != "" {
		status := investigation.Status(filter.Status)
		if err := investigation.StatusValidator(status); err != nil {
			return nil, 0, apperr.Newf(apperr.KindValidation, "invalid status %q", filter.Status)
		}
		q = q.Where(investigation.StatusEQ(status))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count investigations: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := q.
		Order(ent.Desc(investigation.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list investigations: %w", err)
	}
	return rows, total, nil
}

// Stats aggregates a user's investigation history.
func (s *InvestigationService) Stats(ctx context.Context, principal Principal, userID string) (*models.InvestigationStats, error) {
	if !principal.Service && userID != principal.UserID {
		return nil, apperr.New(apperr.KindForbidden, "cannot read another user's stats")
	}

	rows, err := s.client.Investigation.Query().
		Where(investigation.UserID(userID), investigation.DeletedAtIsNil()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load investigations for stats: %w", err)
	}

	stats := &models.InvestigationStats{ByStatus: make(map[string]int)}
	confidenceSum := 0.0
	confidenceN := 0
	for _, inv := range rows {
		stats.Total++
		stats.ByStatus[string(inv.Status)]++
		stats.TotalFindings += inv.FindingsCount
		if inv.Confidence != nil {
			confidenceSum += *inv.Confidence
			confidenceN++
		}
	}
	if confidenceN > 0 {
		stats.AvgConfidence = confidenceSum / float64(confidenceN)
	}
	return stats, nil
}

// UpdateProgress advances progress and phase under a row lock. Regressions
// are rejected: progress is monotonically non-decreasing within a run.
func (s *InvestigationService) UpdateProgress(ctx context.Context, id string, progress float64, phase string) error {
	if progress < 0 || progress > 1 {
		return apperr.Newf(apperr.KindValidation, "progress %v outside [0,1]", progress)
	}

	return withTx(ctx, s.client, func(tx *ent.Tx) error {
		inv, err := tx.Investigation.Query().
			Where(investigation.ID(id)).
			ForUpdate().
			Only(ctx)
		if ent.IsNotFound(err) {
			return apperr.Newf(apperr.KindNotFound, "investigation %s not found", id)
		}
		if err != nil {
			return err
		}

		if progress < inv.Progress {
			return apperr.Newf(apperr.KindValidation,
				"progress regression: %v -> %v", inv.Progress, progress)
		}
		if inv.Status != investigation.StatusProcessing {
			// Terminal or not yet claimed; late updates are dropped.
			return apperr.Newf(apperr.KindValidation,
				"cannot update progress in status %s", inv.Status)
		}

		return tx.Investigation.UpdateOne(inv).
			SetProgress(progress).
			SetCurrentPhase(phase).
			Exec(ctx)
	})
}

// MarkProcessing transitions a claimed investigation into processing.
func (s *InvestigationService) MarkProcessing(ctx context.Context, id string) error {
	n, err := s.client.Investigation.Update().
		Where(investigation.ID(id), investigation.StatusEQ(investigation.StatusPending)).
		SetStatus(investigation.StatusProcessing).
		SetStartedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark investigation processing: %w", err)
	}
	if n == 0 {
		return apperr.Newf(apperr.KindValidation, "investigation %s is not pending", id)
	}
	return nil
}

// CompletionResult carries the final outputs written on success.
type CompletionResult struct {
	Findings        []models.Finding
	Summary         string
	Confidence      float64
	RecordsAnalyzed int
}

// Complete finalizes a successful investigation: findings, summary,
// confidence, progress pinned to 1.0.
func (s *InvestigationService) Complete(ctx context.Context, id string, result *CompletionResult) error {
	findings := make([]map[string]interface{}, 0, len(result.Findings))
	for _, f := range result.Findings {
		findings = append(findings, findingToMap(f))
	}

	n, err := s.client.Investigation.Update().
		Where(investigation.ID(id), investigation.StatusEQ(investigation.StatusProcessing)).
		SetStatus(investigation.StatusCompleted).
		SetProgress(1.0).
		SetCurrentPhase("completed").
		SetFindings(findings).
		SetFindingsCount(len(result.Findings)).
		SetSummaryText(result.Summary).
		SetConfidence(result.Confidence).
		SetRecordsAnalyzed(result.RecordsAnalyzed).
		SetCompletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete investigation: %w", err)
	}
	if n == 0 {
		return apperr.Newf(apperr.KindValidation, "investigation %s is not processing", id)
	}
	return nil
}

// Fail finalizes a failed investigation, preserving partial findings.
func (s *InvestigationService) Fail(ctx context.Context, id string, kind apperr.Kind, message string, partial []models.Finding) error {
	findings := make([]map[string]interface{}, 0, len(partial))
	for _, f := range partial {
		findings = append(findings, findingToMap(f))
	}

	n, err := s.client.Investigation.Update().
		Where(investigation.ID(id), investigation.StatusNotIn(
			investigation.StatusCompleted, investigation.StatusFailed, investigation.StatusCancelled)).
		SetStatus(investigation.StatusFailed).
		SetErrorKind(string(kind)).
		SetErrorMessage(message).
		SetFindings(findings).
		SetFindingsCount(len(partial)).
		SetCompletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark investigation failed: %w", err)
	}
	if n == 0 {
		return apperr.Newf(apperr.KindValidation, "investigation %s already terminal", id)
	}
	return nil
}

// Cancel requests cancellation. Cancelling an already terminal
// investigation is a no-op returning the terminal state.
func (s *InvestigationService) Cancel(ctx context.Context, principal Principal, id string) (*ent.Investigation, error) {
	inv, err := s.Get(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	switch inv.Status {
	case investigation.StatusCompleted, investigation.StatusFailed, investigation.StatusCancelled:
		return inv, nil
	}

	_, err = s.client.Investigation.Update().
		Where(investigation.ID(id), investigation.StatusNotIn(
			investigation.StatusCompleted, investigation.StatusFailed, investigation.StatusCancelled)).
		SetStatus(investigation.StatusCancelled).
		SetCompletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel investigation: %w", err)
	}

	logging.FromContext(ctx).Info("Investigation cancelled", "investigation_id", id)
	return s.Get(ctx, principal, id)
}

// RecordCancellation attaches the findings produced before cancellation
// took effect to the already-cancelled row.
func (s *InvestigationService) RecordCancellation(ctx context.Context, id string, partial []models.Finding) error {
	findings := make([]map[string]interface{}, 0, len(partial))
	for _, f := range partial {
		findings = append(findings, findingToMap(f))
	}

	n, err := s.client.Investigation.Update().
		Where(investigation.ID(id), investigation.StatusEQ(investigation.StatusCancelled)).
		SetFindings(findings).
		SetFindingsCount(len(partial)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record cancellation findings: %w", err)
	}
	if n == 0 {
		return apperr.Newf(apperr.KindValidation, "investigation %s is not cancelled", id)
	}
	return nil
}

// IsCancelled reports whether the investigation was cancelled, for
// cooperative checks at step boundaries.
func (s *InvestigationService) IsCancelled(ctx context.Context, id string) (bool, error) {
	status, err := s.client.Investigation.Query().
		Where(investigation.ID(id)).
		Select(investigation.FieldStatus).
		String(ctx)
	if err != nil {
		return false, err
	}
	return investigation.Status(status) == investigation.StatusCancelled, nil
}

// ClaimPending atomically claims up to limit pending investigations for
// this pod using FOR UPDATE SKIP LOCKED, so concurrent replicas never
// claim the same row.
func (s *InvestigationService) ClaimPending(ctx context.Context, podID string, limit int) ([]*ent.Investigation, error) {
	var claimed []*ent.Investigation
	err := withTx(ctx, s.client, func(tx *ent.Tx) error {
		rows, err := tx.Investigation.Query().
			Where(investigation.StatusEQ(investigation.StatusPending), investigation.DeletedAtIsNil()).
			Order(ent.Asc(investigation.FieldCreatedAt)).
			Limit(limit).
			ForUpdate(sql.WithLockAction(sql.SkipLocked)).
			All(ctx)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		for _, inv := range rows {
			updated, err := tx.Investigation.UpdateOne(inv).
				SetPodID(podID).
				SetLastHeartbeatAt(now).
				Save(ctx)
			if err != nil {
				return err
			}
			claimed = append(claimed, updated)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to claim pending investigations: %w", err)
	}
	return claimed, nil
}

// Heartbeat refreshes the claim of an in-flight investigation.
func (s *InvestigationService) Heartbeat(ctx context.Context, id, podID string) error {
	return s.client.Investigation.Update().
		Where(investigation.ID(id), investigation.PodID(podID)).
		SetLastHeartbeatAt(time.Now().UTC()).
		Exec(ctx)
}

// RequeueOrphans returns investigations stuck in processing whose claim
// went stale (pod died) back to pending for another worker to pick up.
func (s *InvestigationService) RequeueOrphans(ctx context.Context, staleAfter time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-staleAfter)
	n, err := s.client.Investigation.Update().
		Where(
			investigation.StatusEQ(investigation.StatusProcessing),
			investigation.LastHeartbeatAtLT(cutoff),
		).
		SetStatus(investigation.StatusPending).
		ClearPodID().
		ClearLastHeartbeatAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue orphans: %w", err)
	}
	if n > 0 {
		logging.FromContext(ctx).Warn("Requeued orphaned investigations", "count", n)
	}
	return n, nil
}

// SoftDeleteOlderThan marks investigations past the retention window as
// deleted. Run from the retention scheduler job.
func (s *InvestigationService) SoftDeleteOlderThan(ctx context.Context, age time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-age)
	n, err := s.client.Investigation.Update().
		Where(
			investigation.CreatedAtLT(cutoff),
			investigation.DeletedAtIsNil(),
			investigation.StatusIn(
				investigation.StatusCompleted, investigation.StatusFailed, investigation.StatusCancelled),
		).
		SetDeletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to apply retention: %w", err)
	}
	return n, nil
}

func findingToMap(f models.Finding) map[string]interface{} {
	m := map[string]interface{}{
		"id":                 f.ID,
		"kind":               f.Kind,
		"severity":           string(f.Severity),
		"confidence":         f.Confidence,
		"description":        f.Description,
		"produced_by_worker": f.ProducedByWorker,
		"produced_at":        f.ProducedAt.Format(time.RFC3339Nano),
	}
	if f.Evidence != nil {
		m["evidence"] = f.Evidence
	}
	if f.SourceRestricted {
		m["source_restricted"] = true
	}
	return m
}

// withTx runs fn in a transaction with rollback on error, the standard
// ent transaction wrapper.
func withTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
