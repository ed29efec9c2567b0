package workers

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/transparencia-ai/veritas/pkg/models"
)

// The statistical workers are deterministic reference implementations:
// straightforward aggregate checks over federated records, behind the same
// I/O contract as the LLM-backed workers.

// anomalyDetector flags amounts far from the distribution of their batch.
type anomalyDetector struct {
	baseWorker
	deps Deps
}

func newAnomalyDetector(spec *KindSpec, deps Deps) *anomalyDetector {
	return &anomalyDetector{baseWorker: baseWorker{spec: spec}, deps: deps}
}

func (w *anomalyDetector) Process(ctx context.Context, msg *models.WorkerMessage) (*models.WorkerResponse, error) {
	fetched, err := fetchRecords(ctx, w.deps, msg, []string{"transparencia_contratos"})
	if err != nil {
		return nil, err
	}

	amounts := make([]float64, 0, len(fetched.records))
	indexed := make([]map[string]any, 0, len(fetched.records))
	for _, rec := range fetched.records {
		if v, ok := amountOf(rec); ok && v > 0 {
			amounts = append(amounts, v)
			indexed = append(indexed, rec)
		}
	}

	var findings []models.Finding
	if len(amounts) >= 3 {
		mean, stddev := meanStddev(amounts)
		for i, v := range amounts {
			if stddev == 0 {
				break
			}
			z := (v - mean) / stddev
			if z < 3 {
				continue
			}
			severity := models.SeverityMedium
			if z >= 5 {
				severity = models.SeverityHigh
			}
			findings = append(findings, models.Finding{
				ID:       uuid.NewString(),
				Kind:     "price_outlier",
				Severity: severity,
				// Confidence grows with distance but saturates.
				Confidence:  clamp01(0.5 + z/20),
				Description: fmt.Sprintf("Valor R$ %.2f está %.1f desvios-padrão acima da média (R$ %.2f)", v, z, mean),
				Evidence: map[string]any{
					"amount":   v,
					"mean":     mean,
					"stddev":   stddev,
					"z_score":  z,
					"supplier": fieldOf(indexed[i], "nomeFornecedor", "fornecedor", "razaoSocial"),
				},
				ProducedByWorker: w.spec.Name,
				ProducedAt:       time.Now().UTC(),
			})
		}
	}
	findings = appendRestrictedFinding(findings, fetched, w.spec.Name)

	return &models.WorkerResponse{
		Status:       models.ResponseOK,
		Findings:     findings,
		Summary:      fmt.Sprintf("%d registros analisados, %d anomalias de preço", len(amounts), len(findings)),
		Metrics:      map[string]float64{"records_analyzed": float64(len(amounts))},
		QualityScore: recordsQuality(len(amounts), fetched),
	}, nil
}

func (w *anomalyDetector) Reflect(ctx context.Context, resp *models.WorkerResponse) (*models.Reflection, error) {
	return reflectOnCoverage(resp)
}

// corruptionDetector checks structural red flags: supplier concentration
// and suspiciously round contract values.
type corruptionDetector struct {
	baseWorker
	deps Deps
}

func newCorruptionDetector(spec *KindSpec, deps Deps) *corruptionDetector {
	return &corruptionDetector{baseWorker: baseWorker{spec: spec}, deps: deps}
}

func (w *corruptionDetector) Process(ctx context.Context, msg *models.WorkerMessage) (*models.WorkerResponse, error) {
	fetched, err := fetchRecords(ctx, w.deps, msg, []string{"transparencia_contratos", "transparencia_licitacoes"})
	if err != nil {
		return nil, err
	}

	var findings []models.Finding
	now := time.Now().UTC()

	bySupplier := make(map[string]int)
	total := 0
	round := 0
	for _, rec := range fetched.records {
		supplier := fieldOf(rec, "nomeFornecedor", "fornecedor", "razaoSocial", "cnpjContratada")
		if supplier != "" {
			bySupplier[supplier]++
		}
		if v, ok := amountOf(rec); ok && v > 0 {
			total++
			if math.Mod(v, 1000) == 0 {
				round++
			}
		}
	}

	for supplier, count := range bySupplier {
		share := float64(count) / float64(len(fetched.records))
		if len(fetched.records) >= 5 && share > 0.5 {
			findings = append(findings, models.Finding{
				ID:          uuid.NewString(),
				Kind:        "supplier_concentration",
				Severity:    models.SeverityHigh,
				Confidence:  clamp01(share),
				Description: fmt.Sprintf("Fornecedor %q concentra %.0f%% dos contratos da amostra", supplier, share*100),
				Evidence:    map[string]any{"supplier": supplier, "contracts": count, "share": share},
				ProducedByWorker: w.spec.Name,
				ProducedAt:       now,
			})
		}
	}

	if total >= 10 {
		if share := float64(round) / float64(total); share > 0.4 {
			findings = append(findings, models.Finding{
				ID:          uuid.NewString(),
				Kind:        "round_amounts",
				Severity:    models.SeverityMedium,
				Confidence:  clamp01(share),
				Description: fmt.Sprintf("%.0f%% dos valores são múltiplos exatos de R$ 1.000, acima do esperado", share*100),
				Evidence:    map[string]any{"round_count": round, "total": total},
				ProducedByWorker: w.spec.Name,
				ProducedAt:       now,
			})
		}
	}
	findings = appendRestrictedFinding(findings, fetched, w.spec.Name)

	return &models.WorkerResponse{
		Status:       models.ResponseOK,
		Findings:     findings,
		Summary:      fmt.Sprintf("%d registros verificados, %d sinais estruturais", len(fetched.records), len(findings)),
		Metrics:      map[string]float64{"records_analyzed": float64(len(fetched.records))},
		QualityScore: recordsQuality(len(fetched.records), fetched),
	}, nil
}

func (w *corruptionDetector) Reflect(ctx context.Context, resp *models.WorkerResponse) (*models.Reflection, error) {
	return reflectOnCoverage(resp)
}

// patternAnalyzer looks at the temporal distribution of spending.
type patternAnalyzer struct {
	baseWorker
	deps Deps
}

func newPatternAnalyzer(spec *KindSpec, deps Deps) *patternAnalyzer {
	return &patternAnalyzer{baseWorker: baseWorker{spec: spec}, deps: deps}
}

func (w *patternAnalyzer) Process(ctx context.Context, msg *models.WorkerMessage) (*models.WorkerResponse, error) {
	fetched, err := fetchRecords(ctx, w.deps, msg, []string{"transparencia_despesas"})
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]float64)
	for _, rec := range fetched.records {
		v, ok := amountOf(rec)
		if !ok {
			continue
		}
		month := fieldOf(rec, "mesAno", "mes", "dataAssinatura", "data")
		if len(month) >= 7 {
			month = month[:7]
		}
		if month == "" {
			month = "unknown"
		}
		byMonth[month] += v
	}

	var findings []models.Finding
	if len(byMonth) >= 3 {
		values := make([]float64, 0, len(byMonth))
		peakMonth := ""
		peak := 0.0
		for month, v := range byMonth {
			values = append(values, v)
			if v > peak {
				peak, peakMonth = v, month
			}
		}
		sort.Float64s(values)
		median := values[len(values)/2]
		if median > 0 && peak > 2*median {
			findings = append(findings, models.Finding{
				ID:          uuid.NewString(),
				Kind:        "spending_spike",
				Severity:    models.SeverityMedium,
				Confidence:  clamp01(peak / (4 * median)),
				Description: fmt.Sprintf("Gasto de %s é %.1fx a mediana mensal", peakMonth, peak/median),
				Evidence:    map[string]any{"month": peakMonth, "peak": peak, "median": median},
				ProducedByWorker: w.spec.Name,
				ProducedAt:       time.Now().UTC(),
			})
		}
	}
	findings = appendRestrictedFinding(findings, fetched, w.spec.Name)

	return &models.WorkerResponse{
		Status:       models.ResponseOK,
		Findings:     findings,
		Summary:      fmt.Sprintf("%d registros em %d períodos analisados", len(fetched.records), len(byMonth)),
		Metrics:      map[string]float64{"records_analyzed": float64(len(fetched.records))},
		QualityScore: recordsQuality(len(fetched.records), fetched),
	}, nil
}

func (w *patternAnalyzer) Reflect(ctx context.Context, resp *models.WorkerResponse) (*models.Reflection, error) {
	return reflectOnCoverage(resp)
}

// regionalAnalyst aggregates spending by state/municipality and flags
// disparities.
type regionalAnalyst struct {
	baseWorker
	deps Deps
}

func newRegionalAnalyst(spec *KindSpec, deps Deps) *regionalAnalyst {
	return &regionalAnalyst{baseWorker: baseWorker{spec: spec}, deps: deps}
}

func (w *regionalAnalyst) Process(ctx context.Context, msg *models.WorkerMessage) (*models.WorkerResponse, error) {
	fetched, err := fetchRecords(ctx, w.deps, msg, []string{"transparencia_convenios", "ibge_municipios"})
	if err != nil {
		return nil, err
	}

	byRegion := make(map[string]float64)
	for _, rec := range fetched.records {
		region := fieldOf(rec, "uf", "siglaUf", "municipio", "nomeMunicipio")
		if region == "" {
			continue
		}
		if v, ok := amountOf(rec); ok {
			byRegion[region] += v
		}
	}

	var findings []models.Finding
	if len(byRegion) >= 2 {
		min, max := math.MaxFloat64, 0.0
		minR, maxR := "", ""
		for region, v := range byRegion {
			if v < min {
				min, minR = v, region
			}
			if v > max {
				max, maxR = v, region
			}
		}
		if min > 0 && max/min > 10 {
			findings = append(findings, models.Finding{
				ID:          uuid.NewString(),
				Kind:        "regional_disparity",
				Severity:    models.SeverityMedium,
				Confidence:  0.7,
				Description: fmt.Sprintf("Repasses para %s são %.0fx os de %s", maxR, max/min, minR),
				Evidence:    map[string]any{"max_region": maxR, "max": max, "min_region": minR, "min": min},
				ProducedByWorker: w.spec.Name,
				ProducedAt:       time.Now().UTC(),
			})
		}
	}
	findings = appendRestrictedFinding(findings, fetched, w.spec.Name)

	return &models.WorkerResponse{
		Status:       models.ResponseOK,
		Findings:     findings,
		Summary:      fmt.Sprintf("%d registros em %d regiões analisados", len(fetched.records), len(byRegion)),
		Metrics:      map[string]float64{"records_analyzed": float64(len(fetched.records))},
		QualityScore: recordsQuality(len(fetched.records), fetched),
	}, nil
}

func (w *regionalAnalyst) Reflect(ctx context.Context, resp *models.WorkerResponse) (*models.Reflection, error) {
	return reflectOnCoverage(resp)
}

func meanStddev(values []float64) (float64, float64) {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	varSum := 0.0
	for _, v := range values {
		varSum += (v - mean) * (v - mean)
	}
	return mean, math.Sqrt(varSum / float64(len(values)))
}

// recordsQuality scores coverage: plenty of records is good, a handful is
// workable, an all-restricted fetch is poor.
func recordsQuality(records int, fetched *fetchResult) float64 {
	switch {
	case records >= 20:
		return 0.9
	case records > 0:
		return 0.8
	case fetched.restricted > 0 && fetched.restricted == fetched.fetched:
		return 0.4
	default:
		return 0.3
	}
}

// reflectOnCoverage is the shared reflection for statistical workers: an
// empty first pass suggests widening the query; an empty retry gives up.
// The data will not improve by asking a third time.
func reflectOnCoverage(resp *models.WorkerResponse) (*models.Reflection, error) {
	if resp.Metrics["records_analyzed"] == 0 {
		return &models.Reflection{
			QualityScore:    resp.QualityScore,
			ImprovementHint: "broaden_filters",
			GiveUp:          resp.Metrics["reflection_iteration"] > 0,
		}, nil
	}
	return &models.Reflection{QualityScore: resp.QualityScore, GiveUp: true}, nil
}

// appendRestrictedFinding records blocked sources so downstream consumers
// can see why coverage is partial.
func appendRestrictedFinding(findings []models.Finding, fetched *fetchResult, worker string) []models.Finding {
	if fetched.restricted == 0 {
		return findings
	}
	return append(findings, models.Finding{
		ID:               uuid.NewString(),
		Kind:             "restricted_source",
		Severity:         models.SeverityLow,
		Confidence:       1,
		Description:      fmt.Sprintf("%d fonte(s) bloquearam acesso programático", fetched.restricted),
		Evidence:         map[string]any{"restricted_sources": fetched.restricted},
		ProducedByWorker: worker,
		ProducedAt:       time.Now().UTC(),
		SourceRestricted: true,
	})
}
