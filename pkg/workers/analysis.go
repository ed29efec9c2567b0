package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/transparencia-ai/veritas/pkg/llm"
	"github.com/transparencia-ai/veritas/pkg/models"
)

// baseWorker provides the no-op lifecycle shared by stateless workers.
type baseWorker struct {
	spec *KindSpec
}

func (b *baseWorker) Kind() string                     { return b.spec.Name }
func (b *baseWorker) Initialize(context.Context) error { return nil }
func (b *baseWorker) Shutdown(context.Context) error   { return nil }

// analysisWorker is the generic LLM-backed worker used by kinds without a
// dedicated implementation (textual_analyzer, legal_checker, predictive,
// memory...). The model is asked for structured JSON; free text degrades
// gracefully into a summary-only response.
type analysisWorker struct {
	baseWorker
	deps Deps
}

func newAnalysisWorker(spec *KindSpec, deps Deps) *analysisWorker {
	return &analysisWorker{baseWorker: baseWorker{spec: spec}, deps: deps}
}

// llmAnalysis is the JSON shape requested from the model.
type llmAnalysis struct {
	Summary      string       `json:"summary"`
	QualityScore float64      `json:"quality_score"`
	Findings     []llmFinding `json:"findings"`
}

type llmFinding struct {
	Kind        string  `json:"kind"`
	Severity    string  `json:"severity"`
	Confidence  float64 `json:"confidence"`
	Description string  `json:"description"`
}

const analysisSystemPrompt = `Você é um analista de transparência pública brasileira.
Responda APENAS com JSON no formato:
{"summary": "...", "quality_score": 0.0, "findings": [{"kind": "...", "severity": "low|medium|high|critical", "confidence": 0.0, "description": "..."}]}`

func (w *analysisWorker) Process(ctx context.Context, msg *models.WorkerMessage) (*models.WorkerResponse, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Papel do analista: %s\n", w.spec.Name)
	fmt.Fprintf(&sb, "Consulta: %s\n", stringPayload(msg.Payload, "query_text"))
	if hint := stringPayload(msg.Payload, "improvement_hint"); hint != "" {
		fmt.Fprintf(&sb, "Melhore a análise anterior: %s\n", hint)
	}
	if data := stringPayload(msg.Payload, "data"); data != "" {
		fmt.Fprintf(&sb, "Dados:\n%s\n", data)
	}

	completion, err := w.deps.LLM.Complete(ctx, llm.Request{
		System: analysisSystemPrompt,
		Prompt: sb.String(),
	})
	if err != nil {
		return nil, err
	}

	return responseFromCompletion(w.spec.Name, completion.Text), nil
}

func (w *analysisWorker) Reflect(ctx context.Context, resp *models.WorkerResponse) (*models.Reflection, error) {
	prompt := fmt.Sprintf(`Avalie a análise abaixo. Responda APENAS com JSON:
{"quality_score": 0.0, "improvement_hint": "...", "give_up": false}

Resumo: %s
Achados: %d`, resp.Summary, len(resp.Findings))

	completion, err := w.deps.LLM.Complete(ctx, llm.Request{Prompt: prompt})
	if err != nil {
		return nil, err
	}

	var reflection models.Reflection
	if err := json.Unmarshal(extractJSON(completion.Text), &reflection); err != nil {
		// An unassessable response is not worth iterating on.
		return &models.Reflection{QualityScore: resp.QualityScore, GiveUp: true}, nil
	}
	return &reflection, nil
}

// responseFromCompletion parses the model's JSON into a WorkerResponse.
// Non-JSON output becomes a summary-only response with middling quality.
func responseFromCompletion(kind, text string) *models.WorkerResponse {
	var parsed llmAnalysis
	if err := json.Unmarshal(extractJSON(text), &parsed); err != nil {
		return &models.WorkerResponse{
			Status:       models.ResponseOK,
			Summary:      strings.TrimSpace(text),
			QualityScore: 0.6,
		}
	}

	findings := make([]models.Finding, 0, len(parsed.Findings))
	for _, f := range parsed.Findings {
		findings = append(findings, models.Finding{
			ID:               uuid.NewString(),
			Kind:             f.Kind,
			Severity:         severityOrDefault(f.Severity),
			Confidence:       clamp01(f.Confidence),
			Description:      f.Description,
			ProducedByWorker: kind,
			ProducedAt:       time.Now().UTC(),
		})
	}

	quality := clamp01(parsed.QualityScore)
	if quality == 0 {
		quality = 0.7
	}
	return &models.WorkerResponse{
		Status:       models.ResponseOK,
		Findings:     findings,
		Summary:      parsed.Summary,
		QualityScore: quality,
	}
}

// extractJSON returns the first {...} block in text, tolerating prose or
// code fences around the JSON.
func extractJSON(text string) []byte {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return []byte(text)
	}
	return []byte(text[start : end+1])
}

func severityOrDefault(s string) models.Severity {
	switch models.Severity(s) {
	case models.SeverityLow, models.SeverityMedium, models.SeverityHigh, models.SeverityCritical:
		return models.Severity(s)
	default:
		return models.SeverityLow
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func stringPayload(payload map[string]any, key string) string {
	if payload == nil {
		return ""
	}
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}

// stringsPayload reads a []string payload value, tolerating []any from
// JSON decoding.
func stringsPayload(payload map[string]any, key string) []string {
	if payload == nil {
		return nil
	}
	switch v := payload[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func paramsPayload(payload map[string]any) map[string]string {
	params := make(map[string]string)
	if typed, ok := payload["params"].(map[string]string); ok {
		for k, v := range typed {
			params[k] = v
		}
		return params
	}
	raw, ok := payload["params"].(map[string]any)
	if !ok {
		return params
	}
	for k, v := range raw {
		switch t := v.(type) {
		case string:
			params[k] = t
		case float64:
			params[k] = strconv.FormatFloat(t, 'f', -1, 64)
		case int:
			params[k] = strconv.Itoa(t)
		}
	}
	return params
}
