package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/transparencia-ai/veritas/pkg/models"
)

// aggregator merges the findings of upstream steps: deduplicates, orders by
// severity then confidence, and summarizes counts. Pure computation, no
// external calls.
type aggregator struct {
	baseWorker
}

func newAggregator(spec *KindSpec) *aggregator {
	return &aggregator{baseWorker: baseWorker{spec: spec}}
}

var severityRank = map[models.Severity]int{
	models.SeverityCritical: 3,
	models.SeverityHigh:     2,
	models.SeverityMedium:   1,
	models.SeverityLow:      0,
}

func (w *aggregator) Process(_ context.Context, msg *models.WorkerMessage) (*models.WorkerResponse, error) {
	findings := findingsPayload(msg.Payload)

	seen := make(map[string]bool, len(findings))
	merged := make([]models.Finding, 0, len(findings))
	bySeverity := make(map[string]float64)
	for _, f := range findings {
		key := f.Kind + "\x00" + f.Description
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, f)
		bySeverity[string(f.Severity)]++
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if severityRank[merged[i].Severity] != severityRank[merged[j].Severity] {
			return severityRank[merged[i].Severity] > severityRank[merged[j].Severity]
		}
		return merged[i].Confidence > merged[j].Confidence
	})

	return &models.WorkerResponse{
		Status:       models.ResponseOK,
		Findings:     merged,
		Summary:      fmt.Sprintf("%d achados consolidados de %d brutos", len(merged), len(findings)),
		Metrics:      bySeverity,
		QualityScore: 0.9,
	}, nil
}

func (w *aggregator) Reflect(_ context.Context, resp *models.WorkerResponse) (*models.Reflection, error) {
	// Deterministic merge; iterating cannot change the outcome.
	return &models.Reflection{QualityScore: resp.QualityScore, GiveUp: true}, nil
}

// findingsPayload decodes the upstream findings handed down by the
// orchestrator, tolerating both typed and JSON-roundtripped shapes.
func findingsPayload(payload map[string]any) []models.Finding {
	raw, ok := payload["findings"]
	if !ok {
		return nil
	}
	if typed, ok := raw.([]models.Finding); ok {
		return typed
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil
	}
	var findings []models.Finding
	if err := json.Unmarshal(encoded, &findings); err != nil {
		return nil
	}
	return findings
}
