package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transparencia-ai/veritas/pkg/config"
	"github.com/transparencia-ai/veritas/pkg/models"
	"github.com/transparencia-ai/veritas/pkg/workers"
)

func testPlanner() *Planner {
	catalog := workers.NewCatalog(config.WorkersConfig{
		QualityThresholdDefault: 0.8,
		MaxReflectionIterations: 3,
		IdleTTL:                 time.Minute,
	})
	return New(catalog, 10*time.Minute)
}

func investigateIntent() models.Intent {
	return models.Intent{Kind: models.IntentInvestigate, Confidence: 0.9}
}

func TestBuildSingleWorkerPlan(t *testing.T) {
	p := testPlanner()

	plan, err := p.Build(models.Intent{Kind: models.IntentHelp, Confidence: 0.3}, nil, []string{"router"})
	require.NoError(t, err)
	require.Len(t, plan.Steps, 1)
	assert.Equal(t, "router", plan.Steps[0].WorkerKind)
	assert.True(t, plan.Steps[0].Required)
	assert.Empty(t, plan.Edges[0])
}

func TestBuildMultiWorkerPlan(t *testing.T) {
	p := testPlanner()
	kinds := []string{"anomaly_detector", "corruption_detector", "aggregator", "report_writer"}

	plan, err := p.Build(investigateIntent(), nil, kinds)
	require.NoError(t, err)

	byKind := make(map[string]int)
	for i, s := range plan.Steps {
		byKind[s.WorkerKind] = i
	}

	t.Run("orchestrator_master is the implicit single root", func(t *testing.T) {
		rootIdx, ok := byKind["orchestrator_master"]
		require.True(t, ok)
		assert.Equal(t, rootIdx, plan.Root())

		roots := 0
		for i := range plan.Steps {
			if len(plan.Edges[i]) == 0 {
				roots++
			}
		}
		assert.Equal(t, 1, roots)
	})

	t.Run("detectors hang off the root", func(t *testing.T) {
		root := plan.Root()
		assert.Equal(t, []int{root}, plan.Edges[byKind["anomaly_detector"]])
		assert.Equal(t, []int{root}, plan.Edges[byKind["corruption_detector"]])
	})

	t.Run("aggregator depends on its producers", func(t *testing.T) {
		deps := plan.Edges[byKind["aggregator"]]
		assert.Contains(t, deps, byKind["anomaly_detector"])
		assert.Contains(t, deps, byKind["corruption_detector"])
	})

	t.Run("report_writer is terminal", func(t *testing.T) {
		idx := byKind["report_writer"]
		assert.Equal(t, len(plan.Steps)-1, idx)
		assert.Len(t, plan.Edges[idx], len(plan.Steps)-1)

		// Nothing depends on it.
		for i, deps := range plan.Edges {
			if i == idx {
				continue
			}
			assert.NotContains(t, deps, idx)
		}
	})

	t.Run("acyclic", func(t *testing.T) {
		// Every dependency points at an earlier step.
		for i, deps := range plan.Edges {
			for _, d := range deps {
				assert.Less(t, d, i)
			}
		}
	})
}

func TestBuildTimeoutsShrinkUnderFanout(t *testing.T) {
	catalog := workers.NewCatalog(config.WorkersConfig{
		QualityThresholdDefault: 0.8,
		MaxReflectionIterations: 3,
		IdleTTL:                 time.Minute,
	})
	p := New(catalog, 4*time.Minute)

	plan, err := p.Build(investigateIntent(), nil,
		[]string{"anomaly_detector", "corruption_detector", "pattern_analyzer", "regional_analyst", "report_writer"})
	require.NoError(t, err)

	for _, s := range plan.Steps {
		if s.Composition == CompositionParallel || s.Composition == CompositionSaga {
			// Four parallel probes share the four-minute budget.
			assert.LessOrEqual(t, s.Timeout, time.Minute, "step %s", s.ID)
		}
	}
}

func TestBuildSagaCompositionForInvestigations(t *testing.T) {
	p := testPlanner()

	plan, err := p.Build(investigateIntent(), nil,
		[]string{"anomaly_detector", "corruption_detector", "report_writer"})
	require.NoError(t, err)

	for _, s := range plan.Steps {
		if s.WorkerKind == "anomaly_detector" || s.WorkerKind == "corruption_detector" {
			assert.Equal(t, CompositionSaga, s.Composition)
			assert.NotEmpty(t, s.Compensate)
		}
	}
}

func TestBuildDeterminism(t *testing.T) {
	p := testPlanner()
	entities := []models.Entity{
		{Type: models.EntityYear, Value: "2024"},
		{Type: models.EntityState, Value: "MG"},
	}
	kinds := []string{"report_writer", "anomaly_detector", "aggregator", "corruption_detector"}

	first, err := p.Build(investigateIntent(), entities, kinds)
	require.NoError(t, err)
	firstJSON, err := first.MarshalStable()
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		// Caller ordering must not matter.
		again, err := p.Build(investigateIntent(), entities,
			[]string{"corruption_detector", "aggregator", "anomaly_detector", "report_writer"})
		require.NoError(t, err)
		againJSON, err := again.MarshalStable()
		require.NoError(t, err)
		assert.Equal(t, string(firstJSON), string(againJSON))
	}
}

func TestBuildUnknownKind(t *testing.T) {
	p := testPlanner()
	_, err := p.Build(investigateIntent(), nil, []string{"nonexistent"})
	require.Error(t, err)
}
