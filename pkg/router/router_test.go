package router

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transparencia-ai/veritas/pkg/config"
	"github.com/transparencia-ai/veritas/pkg/models"
	"github.com/transparencia-ai/veritas/pkg/workers"
)

func testRouter() *Router {
	return New(workers.NewCatalog(config.WorkersConfig{
		QualityThresholdDefault: 0.8,
		MaxReflectionIterations: 3,
		IdleTTL:                 time.Minute,
	}))
}

func TestClassify(t *testing.T) {
	r := testRouter()

	tests := []struct {
		query string
		want  models.IntentKind
	}{
		{"investigar contratos de saúde em Minas Gerais por irregularidades", models.IntentInvestigate},
		{"analisar a evolução dos gastos com educação", models.IntentAnalyze},
		{"gere um relatório com resumo dos convênios de 2024", models.IntentReport},
		{"o que é uma licitação?", models.IntentExplain},
		{"bom dia!", models.IntentGreet},
		{"como usar esta ferramenta?", models.IntentHelp},
		{"audit health contracts for fraud", models.IntentInvestigate},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			intent := r.Classify(tt.query)
			assert.Equal(t, tt.want, intent.Kind)
			assert.GreaterOrEqual(t, intent.Confidence, 0.6)
		})
	}

	t.Run("empty query falls to help", func(t *testing.T) {
		intent := r.Classify("   ")
		assert.Equal(t, models.IntentHelp, intent.Kind)
		assert.Less(t, intent.Confidence, 0.6)
	})

	t.Run("gibberish falls to help with low confidence", func(t *testing.T) {
		intent := r.Classify("xyzzy plugh")
		assert.Equal(t, models.IntentHelp, intent.Kind)
		assert.Less(t, intent.Confidence, 0.6)
	})
}

func TestExtractEntities(t *testing.T) {
	t.Run("year state and source", func(t *testing.T) {
		entities := ExtractEntities("analisar contratos de 2024 em Minas Gerais")

		byType := map[models.EntityType][]string{}
		for _, e := range entities {
			byType[e.Type] = append(byType[e.Type], e.Value)
		}
		assert.Equal(t, []string{"2024"}, byType[models.EntityYear])
		assert.Equal(t, []string{"MG"}, byType[models.EntityState])
		assert.Equal(t, []string{"contracts"}, byType[models.EntityDataSource])
	})

	t.Run("uppercase UF code", func(t *testing.T) {
		entities := ExtractEntities("despesas do RJ em 2023")
		var states []string
		for _, e := range entities {
			if e.Type == models.EntityState {
				states = append(states, e.Value)
			}
		}
		assert.Equal(t, []string{"RJ"}, states)
	})

	t.Run("date range absorbs its years", func(t *testing.T) {
		entities := ExtractEntities("gastos de 2020 a 2023")
		var years, ranges []string
		for _, e := range entities {
			switch e.Type {
			case models.EntityYear:
				years = append(years, e.Value)
			case models.EntityDateRange:
				ranges = append(ranges, e.Value)
			}
		}
		assert.Equal(t, []string{"2020..2023"}, ranges)
		assert.Empty(t, years)
	})

	t.Run("cnpj identifier", func(t *testing.T) {
		entities := ExtractEntities("contratos do CNPJ 12.345.678/0001-90")
		var ids []string
		for _, e := range entities {
			if e.Type == models.EntityIdentifier {
				ids = append(ids, e.Value)
			}
		}
		assert.Equal(t, []string{"12.345.678/0001-90"}, ids)
	})

	t.Run("amount", func(t *testing.T) {
		entities := ExtractEntities("contratos acima de R$ 1.000.000,00")
		var amounts []string
		for _, e := range entities {
			if e.Type == models.EntityAmount {
				amounts = append(amounts, e.Value)
			}
		}
		require.Len(t, amounts, 1)
	})

	t.Run("longest alias claims the span", func(t *testing.T) {
		entities := ExtractEntities("contratos em mato grosso do sul")

		var states, sources []models.Entity
		for _, e := range entities {
			switch e.Type {
			case models.EntityState:
				states = append(states, e)
			case models.EntityDataSource:
				sources = append(sources, e)
			}
		}
		// "mato grosso do sul" must not also surface MT for the
		// "mato grosso" inside it.
		require.Len(t, states, 1)
		assert.Equal(t, "MS", states[0].Value)
		assert.Equal(t, [2]int{13, 31}, states[0].Span)
		// The plural form wins over its singular prefix.
		require.Len(t, sources, 1)
		assert.Equal(t, "contracts", sources[0].Value)
		assert.Equal(t, [2]int{0, 9}, sources[0].Span)
	})

	t.Run("deterministic order", func(t *testing.T) {
		q := "investigar contratos e convênios de 2024 em São Paulo e Minas Gerais do ministério da saúde"
		first := ExtractEntities(q)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, ExtractEntities(q))
		}
	})
}

func TestSelectWorkers(t *testing.T) {
	r := testRouter()

	t.Run("investigate pipeline", func(t *testing.T) {
		kinds := r.SelectWorkers(models.Intent{Kind: models.IntentInvestigate, Confidence: 0.9}, nil)
		assert.Equal(t, []string{"anomaly_detector", "corruption_detector", "aggregator", "report_writer"}, kinds)
	})

	t.Run("state entity adds regional analyst", func(t *testing.T) {
		kinds := r.SelectWorkers(
			models.Intent{Kind: models.IntentAnalyze, Confidence: 0.9},
			[]models.Entity{{Type: models.EntityState, Value: "MG"}},
		)
		assert.Contains(t, kinds, "regional_analyst")
		assert.Contains(t, kinds, "pattern_analyzer")
	})

	t.Run("low confidence forces help", func(t *testing.T) {
		kinds := r.SelectWorkers(models.Intent{Kind: models.IntentInvestigate, Confidence: 0.5}, nil)
		assert.Equal(t, []string{"router"}, kinds)
	})

	t.Run("deterministic given same inputs", func(t *testing.T) {
		intent := models.Intent{Kind: models.IntentInvestigate, Confidence: 0.9}
		entities := []models.Entity{
			{Type: models.EntityState, Value: "SP"},
			{Type: models.EntityIdentifier, Value: "12.345.678/0001-90"},
		}
		first := r.SelectWorkers(intent, entities)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, r.SelectWorkers(intent, entities))
		}
	})
}
