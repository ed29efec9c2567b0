package workers

import (
	"context"
	"fmt"
	"strings"

	"github.com/transparencia-ai/veritas/pkg/llm"
	"github.com/transparencia-ai/veritas/pkg/models"
)

// reportWriter turns the consolidated findings into an executive summary.
// Always a terminal step: it consumes, never produces, findings.
type reportWriter struct {
	baseWorker
	deps Deps
}

func newReportWriter(spec *KindSpec, deps Deps) *reportWriter {
	return &reportWriter{baseWorker: baseWorker{spec: spec}, deps: deps}
}

const reportSystemPrompt = `Você escreve sumários executivos de investigações de transparência pública.
Escreva em português claro, 2 a 4 parágrafos, citando números concretos dos achados.
Não invente dados que não estejam nos achados.`

func (w *reportWriter) Process(ctx context.Context, msg *models.WorkerMessage) (*models.WorkerResponse, error) {
	findings := findingsPayload(msg.Payload)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Consulta: %s\n", stringPayload(msg.Payload, "query_text"))
	if hint := stringPayload(msg.Payload, "improvement_hint"); hint != "" {
		fmt.Fprintf(&sb, "Revisão solicitada: %s\n", hint)
	}
	fmt.Fprintf(&sb, "Achados (%d):\n", len(findings))
	for i, f := range findings {
		fmt.Fprintf(&sb, "%d. [%s/%s] %s\n", i+1, f.Kind, f.Severity, f.Description)
	}
	if len(findings) == 0 {
		sb.WriteString("Nenhum achado relevante. Explique o que foi verificado e o resultado negativo.\n")
	}

	completion, err := w.deps.LLM.Complete(ctx, llm.Request{
		System: reportSystemPrompt,
		Prompt: sb.String(),
	})
	if err != nil {
		return nil, err
	}

	summary := strings.TrimSpace(completion.Text)
	quality := 0.9
	if summary == "" {
		quality = 0.2
	}

	return &models.WorkerResponse{
		Status:       models.ResponseOK,
		Summary:      summary,
		Metrics:      map[string]float64{"findings_reported": float64(len(findings))},
		QualityScore: quality,
	}, nil
}

func (w *reportWriter) Reflect(_ context.Context, resp *models.WorkerResponse) (*models.Reflection, error) {
	if resp.Summary == "" {
		return &models.Reflection{
			QualityScore:    resp.QualityScore,
			ImprovementHint: "escreva um sumário mesmo sem achados, descrevendo a verificação feita",
		}, nil
	}
	return &models.Reflection{QualityScore: resp.QualityScore, GiveUp: true}, nil
}
