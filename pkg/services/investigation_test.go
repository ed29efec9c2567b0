package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transparencia-ai/veritas/ent"
	"github.com/transparencia-ai/veritas/ent/investigation"
	"github.com/transparencia-ai/veritas/pkg/apperr"
	"github.com/transparencia-ai/veritas/pkg/models"
	testdb "github.com/transparencia-ai/veritas/test/database"
)

func newRequest(id, userID string) *models.CreateInvestigationRequest {
	return &models.CreateInvestigationRequest{
		InvestigationID: id,
		UserID:          userID,
		QueryText:       "investigar contratos de saúde",
		CorrelationID:   "cid-" + id,
	}
}

func TestInvestigationService(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test requires Docker")
	}
	client := testdb.NewTestClient(t)
	svc := NewInvestigationService(client.Client)
	ctx := context.Background()

	alice := Principal{UserID: "alice"}
	bob := Principal{UserID: "bob"}

	t.Run("create and get", func(t *testing.T) {
		created, err := svc.Create(ctx, newRequest("inv-1", "alice"))
		require.NoError(t, err)
		assert.Equal(t, investigation.StatusPending, created.Status)
		assert.Zero(t, created.Progress)

		got, err := svc.Get(ctx, alice, "inv-1")
		require.NoError(t, err)
		assert.Equal(t, "alice", got.UserID)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.Create(ctx, &models.CreateInvestigationRequest{InvestigationID: "inv-x", UserID: "alice"})
		assert.True(t, apperr.Is(err, apperr.KindValidation))

		// Duplicate id.
		_, err = svc.Create(ctx, newRequest("inv-1", "alice"))
		assert.True(t, apperr.Is(err, apperr.KindValidation))
	})

	t.Run("row-level access", func(t *testing.T) {
		// Another user's row reads as absent, not forbidden.
		_, err := svc.Get(ctx, bob, "inv-1")
		assert.True(t, apperr.Is(err, apperr.KindNotFound))

		// The service principal bypasses row scoping.
		_, err = svc.Get(ctx, ServicePrincipal, "inv-1")
		assert.NoError(t, err)
	})

	t.Run("list scoping", func(t *testing.T) {
		_, err := svc.Create(ctx, newRequest("inv-2", "bob"))
		require.NoError(t, err)

		rows, total, err := svc.List(ctx, alice, models.InvestigationFilter{})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		for _, row := range rows {
			assert.Equal(t, "alice", row.UserID)
		}

		_, total, err = svc.List(ctx, ServicePrincipal, models.InvestigationFilter{})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, total, 2)
	})

	t.Run("lifecycle", func(t *testing.T) {
		_, err := svc.Create(ctx, newRequest("inv-3", "alice"))
		require.NoError(t, err)

		// Progress updates only apply to processing rows.
		err = svc.UpdateProgress(ctx, "inv-3", 0.5, "anomaly_detector")
		assert.True(t, apperr.Is(err, apperr.KindValidation))

		require.NoError(t, svc.MarkProcessing(ctx, "inv-3"))
		require.NoError(t, svc.UpdateProgress(ctx, "inv-3", 0.5, "anomaly_detector"))

		// Monotonic: regressions are rejected.
		err = svc.UpdateProgress(ctx, "inv-3", 0.25, "aggregator")
		assert.True(t, apperr.Is(err, apperr.KindValidation))

		require.NoError(t, svc.Complete(ctx, "inv-3", &CompletionResult{
			Findings:   []models.Finding{{ID: "f1", Kind: "price_outlier", Severity: models.SeverityHigh, Confidence: 0.8, ProducedAt: time.Now()}},
			Summary:    "Resumo",
			Confidence: 0.85,
		}))

		got, err := svc.Get(ctx, alice, "inv-3")
		require.NoError(t, err)
		assert.Equal(t, investigation.StatusCompleted, got.Status)
		assert.InDelta(t, 1.0, got.Progress, 1e-9)
		assert.Equal(t, 1, got.FindingsCount)
		require.NotNil(t, got.CompletedAt)

		// Terminal rows reject further transitions.
		assert.Error(t, svc.Complete(ctx, "inv-3", &CompletionResult{}))
		assert.Error(t, svc.Fail(ctx, "inv-3", apperr.KindInternal, "late", nil))
	})

	t.Run("cancel", func(t *testing.T) {
		_, err := svc.Create(ctx, newRequest("inv-4", "alice"))
		require.NoError(t, err)

		cancelled, err := svc.Cancel(ctx, alice, "inv-4")
		require.NoError(t, err)
		assert.Equal(t, investigation.StatusCancelled, cancelled.Status)

		// Cancelling a terminal investigation is a no-op returning the
		// terminal state.
		again, err := svc.Cancel(ctx, alice, "inv-4")
		require.NoError(t, err)
		assert.Equal(t, investigation.StatusCancelled, again.Status)

		// Findings produced before the cancel landed are retained.
		require.NoError(t, svc.RecordCancellation(ctx, "inv-4", []models.Finding{
			{ID: "f1", Kind: "price_outlier", Severity: models.SeverityMedium, Confidence: 0.7, ProducedAt: time.Now()},
		}))
		got, err := svc.Get(ctx, alice, "inv-4")
		require.NoError(t, err)
		assert.Equal(t, 1, got.FindingsCount)

		// Only cancelled rows accept cancellation findings.
		err = svc.RecordCancellation(ctx, "inv-1", nil)
		assert.True(t, apperr.Is(err, apperr.KindValidation))
	})

	t.Run("claim heartbeat orphan", func(t *testing.T) {
		_, err := svc.Create(ctx, newRequest("inv-5", "carol"))
		require.NoError(t, err)

		claimed, err := svc.ClaimPending(ctx, "pod-a", 10)
		require.NoError(t, err)
		require.NotEmpty(t, claimed)
		var mine *ent.Investigation
		for _, inv := range claimed {
			if inv.ID == "inv-5" {
				mine = inv
			}
		}
		require.NotNil(t, mine)
		require.NotNil(t, mine.PodID)
		assert.Equal(t, "pod-a", *mine.PodID)

		// Claimed rows are no longer pending for other replicas once
		// processing starts.
		require.NoError(t, svc.MarkProcessing(ctx, "inv-5"))
		again, err := svc.ClaimPending(ctx, "pod-b", 10)
		require.NoError(t, err)
		for _, inv := range again {
			assert.NotEqual(t, "inv-5", inv.ID)
		}

		require.NoError(t, svc.Heartbeat(ctx, "inv-5", "pod-a"))

		// A fresh heartbeat is not an orphan.
		n, err := svc.RequeueOrphans(ctx, time.Minute)
		require.NoError(t, err)
		assert.Zero(t, n)

		// A stale one is requeued.
		n, err = svc.RequeueOrphans(ctx, -time.Second)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		got, err := svc.Get(ctx, ServicePrincipal, "inv-5")
		require.NoError(t, err)
		assert.Equal(t, investigation.StatusPending, got.Status)
	})

	t.Run("stats", func(t *testing.T) {
		stats, err := svc.Stats(ctx, alice, "alice")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, stats.Total, 3)
		assert.NotZero(t, stats.ByStatus["completed"])
		assert.Positive(t, stats.AvgConfidence)

		_, err = svc.Stats(ctx, bob, "alice")
		assert.True(t, apperr.Is(err, apperr.KindForbidden))
	})
}
