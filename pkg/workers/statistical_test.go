package workers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transparencia-ai/veritas/pkg/cache"
	"github.com/transparencia-ai/veritas/pkg/config"
	"github.com/transparencia-ai/veritas/pkg/federator"
	"github.com/transparencia-ai/veritas/pkg/metrics"
	"github.com/transparencia-ai/veritas/pkg/models"
	"github.com/transparencia-ai/veritas/pkg/registry"
)

func depsWithUpstream(t *testing.T, endpoint string, handler http.HandlerFunc) Deps {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	reg, err := registry.New([]registry.EndpointSpec{{
		Name:           endpoint,
		BaseURL:        srv.URL,
		AuthMode:       registry.AuthNone,
		TTLClass:       registry.TTLShort,
		RatePerMin:     6000,
		TypicalLatency: time.Millisecond,
		Capabilities:   []string{"test"},
	}})
	require.NoError(t, err)

	m := metrics.New(prometheus.NewRegistry())
	h := cache.NewHierarchy(config.CacheConfig{
		L1Size: 16, TTLShort: time.Minute, TTLMedium: time.Minute, TTLLong: time.Minute,
	}, nil, nil, m, slog.Default())

	return Deps{Federator: federator.New(reg, h, nil, m)}
}

func specFor(t *testing.T, name string) *KindSpec {
	t.Helper()
	spec, err := testCatalog().Lookup(name)
	require.NoError(t, err)
	return spec
}

func TestAnomalyDetector(t *testing.T) {
	t.Run("flags outlier amounts", func(t *testing.T) {
		deps := depsWithUpstream(t, "contracts", func(w http.ResponseWriter, r *http.Request) {
			// 11 ordinary contracts and one an order of magnitude larger.
			fmt.Fprint(w, `[
				{"valor": 100}, {"valor": 105}, {"valor": 98}, {"valor": 102},
				{"valor": 99}, {"valor": 101}, {"valor": 97}, {"valor": 103},
				{"valor": 100}, {"valor": 104}, {"valor": 96},
				{"valor": 1000, "nomeFornecedor": "Empresa X"}
			]`)
		})
		w := newAnomalyDetector(specFor(t, "anomaly_detector"), deps)

		msg := msgFor("analyze")
		msg.Payload["endpoints"] = []string{"contracts"}

		resp, err := w.Process(context.Background(), msg)
		require.NoError(t, err)
		require.NotEmpty(t, resp.Findings)
		assert.Equal(t, "price_outlier", resp.Findings[0].Kind)
		assert.Equal(t, "anomaly_detector", resp.Findings[0].ProducedByWorker)
		assert.GreaterOrEqual(t, resp.QualityScore, 0.8)
	})

	t.Run("restricted source degrades quality", func(t *testing.T) {
		deps := depsWithUpstream(t, "blocked", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "forbidden", http.StatusForbidden)
		})
		w := newAnomalyDetector(specFor(t, "anomaly_detector"), deps)

		msg := msgFor("analyze")
		msg.Payload["endpoints"] = []string{"blocked"}

		resp, err := w.Process(context.Background(), msg)
		require.NoError(t, err)
		assert.Less(t, resp.QualityScore, 0.8)
		require.NotEmpty(t, resp.Findings)
		assert.True(t, resp.Findings[0].SourceRestricted)
	})
}

func TestCorruptionDetector(t *testing.T) {
	deps := depsWithUpstream(t, "contracts", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"valor": 1000, "nomeFornecedor": "Alpha"},
			{"valor": 2000, "nomeFornecedor": "Alpha"},
			{"valor": 3000, "nomeFornecedor": "Alpha"},
			{"valor": 4000, "nomeFornecedor": "Alpha"},
			{"valor": 5000, "nomeFornecedor": "Alpha"},
			{"valor": 6000, "nomeFornecedor": "Alpha"},
			{"valor": 1234.56, "nomeFornecedor": "Beta"},
			{"valor": 2345.67, "nomeFornecedor": "Gamma"},
			{"valor": 7000, "nomeFornecedor": "Alpha"},
			{"valor": 8000, "nomeFornecedor": "Alpha"}
		]`)
	})
	w := newCorruptionDetector(specFor(t, "corruption_detector"), deps)

	msg := msgFor("analyze")
	msg.Payload["endpoints"] = []string{"contracts"}

	resp, err := w.Process(context.Background(), msg)
	require.NoError(t, err)

	kinds := make(map[string]bool)
	for _, f := range resp.Findings {
		kinds[f.Kind] = true
	}
	assert.True(t, kinds["supplier_concentration"], "expected supplier concentration finding")
	assert.True(t, kinds["round_amounts"], "expected round amounts finding")
}

func TestPatternAnalyzerSpike(t *testing.T) {
	deps := depsWithUpstream(t, "expenses", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items": [
			{"valor": 100, "mesAno": "2024-01"},
			{"valor": 110, "mesAno": "2024-02"},
			{"valor": 95, "mesAno": "2024-03"},
			{"valor": 105, "mesAno": "2024-04"},
			{"valor": 600, "mesAno": "2024-05"}
		]}`)
	})
	w := newPatternAnalyzer(specFor(t, "pattern_analyzer"), deps)

	msg := msgFor("analyze")
	msg.Payload["endpoints"] = []string{"expenses"}

	resp, err := w.Process(context.Background(), msg)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Findings)
	assert.Equal(t, "spending_spike", resp.Findings[0].Kind)
	assert.Equal(t, "2024-05", resp.Findings[0].Evidence["month"])
}

func TestRegionalAnalystDisparity(t *testing.T) {
	deps := depsWithUpstream(t, "transfers", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"valor": 1000000, "uf": "SP"},
			{"valor": 50000, "uf": "PI"}
		]`)
	})
	w := newRegionalAnalyst(specFor(t, "regional_analyst"), deps)

	msg := msgFor("analyze")
	msg.Payload["endpoints"] = []string{"transfers"}

	resp, err := w.Process(context.Background(), msg)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Findings)
	assert.Equal(t, "regional_disparity", resp.Findings[0].Kind)
}

func TestAggregator(t *testing.T) {
	w := newAggregator(specFor(t, "aggregator"))

	msg := msgFor("aggregate")
	msg.Payload["findings"] = []models.Finding{
		{Kind: "price_outlier", Severity: models.SeverityMedium, Confidence: 0.6, Description: "a"},
		{Kind: "supplier_concentration", Severity: models.SeverityHigh, Confidence: 0.9, Description: "b"},
		{Kind: "price_outlier", Severity: models.SeverityMedium, Confidence: 0.6, Description: "a"},
		{Kind: "round_amounts", Severity: models.SeverityMedium, Confidence: 0.8, Description: "c"},
	}

	resp, err := w.Process(context.Background(), msg)
	require.NoError(t, err)

	// Duplicate removed, highest severity first, then by confidence.
	require.Len(t, resp.Findings, 3)
	assert.Equal(t, "supplier_concentration", resp.Findings[0].Kind)
	assert.Equal(t, "round_amounts", resp.Findings[1].Kind)
	assert.Equal(t, "price_outlier", resp.Findings[2].Kind)
}

func TestReflectOnCoverage(t *testing.T) {
	t.Run("empty first pass suggests widening", func(t *testing.T) {
		r, err := reflectOnCoverage(&models.WorkerResponse{
			Summary: "0 registros analisados",
			Metrics: map[string]float64{"records_analyzed": 0},
		})
		require.NoError(t, err)
		assert.False(t, r.GiveUp)
		assert.Equal(t, "broaden_filters", r.ImprovementHint)
	})

	t.Run("empty retry gives up", func(t *testing.T) {
		r, err := reflectOnCoverage(&models.WorkerResponse{
			Summary: "0 registros analisados",
			Metrics: map[string]float64{"records_analyzed": 0, "reflection_iteration": 1},
		})
		require.NoError(t, err)
		assert.True(t, r.GiveUp)
	})

	t.Run("any coverage gives up", func(t *testing.T) {
		r, err := reflectOnCoverage(&models.WorkerResponse{
			Metrics: map[string]float64{"records_analyzed": 7},
		})
		require.NoError(t, err)
		assert.True(t, r.GiveUp)
	})
}

func TestFetchRecordsWidensFiltersOnRetry(t *testing.T) {
	var queries []string
	deps := depsWithUpstream(t, "contracts", func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.RawQuery)
		fmt.Fprint(w, `[]`)
	})
	w := newAnomalyDetector(specFor(t, "anomaly_detector"), deps)

	msg := msgFor("analyze")
	msg.Payload["endpoints"] = []string{"contracts"}
	msg.Payload["params"] = map[string]string{"ano": "2024", "uf": "SP"}

	_, err := w.Process(context.Background(), msg)
	require.NoError(t, err)

	// The reflection hint drops the narrowing filters but keeps the year.
	msg.Payload["improvement_hint"] = "broaden_filters"
	_, err = w.Process(context.Background(), msg)
	require.NoError(t, err)

	require.Len(t, queries, 2)
	assert.Contains(t, queries[0], "uf=SP")
	assert.Contains(t, queries[1], "ano=2024")
	assert.NotContains(t, queries[1], "uf=")
}

func TestDecodeRecords(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		recs := decodeRecords([]byte(`[{"valor": 1}]`))
		assert.Len(t, recs, 1)
	})

	t.Run("wrapped list", func(t *testing.T) {
		recs := decodeRecords([]byte(`{"data": [{"valor": 1}, {"valor": 2}]}`))
		assert.Len(t, recs, 2)
	})

	t.Run("garbage yields nothing", func(t *testing.T) {
		assert.Nil(t, decodeRecords([]byte(`not json`)))
	})
}

func TestAmountOf(t *testing.T) {
	t.Run("numeric field", func(t *testing.T) {
		v, ok := amountOf(map[string]any{"valor": 1234.5})
		require.True(t, ok)
		assert.Equal(t, 1234.5, v)
	})

	t.Run("brazilian decimal string", func(t *testing.T) {
		v, ok := amountOf(map[string]any{"valorTotal": "1.234.567,89"})
		require.True(t, ok)
		assert.InDelta(t, 1234567.89, v, 0.001)
	})

	t.Run("absent", func(t *testing.T) {
		_, ok := amountOf(map[string]any{"nome": "x"})
		assert.False(t, ok)
	})
}
