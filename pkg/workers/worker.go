// Package workers implements the analytical worker catalog, the bounded
// per-kind pool and the quality-driven reflection runtime.
package workers

import (
	"context"

	"github.com/transparencia-ai/veritas/pkg/federator"
	"github.com/transparencia-ai/veritas/pkg/llm"
	"github.com/transparencia-ai/veritas/pkg/models"
)

// Worker is the contract every analytical worker implements. Process does
// the work; Reflect assesses a response and suggests how to improve it.
// Initialize and Shutdown bracket the instance lifecycle: the pool calls
// them on lazy instantiation and idle teardown.
type Worker interface {
	Kind() string
	Initialize(ctx context.Context) error
	Process(ctx context.Context, msg *models.WorkerMessage) (*models.WorkerResponse, error)
	Reflect(ctx context.Context, resp *models.WorkerResponse) (*models.Reflection, error)
	Shutdown(ctx context.Context) error
}

// Deps carries the shared collaborators workers draw on.
type Deps struct {
	Federator *federator.Federator
	LLM       *llm.Client
}

// Factory instantiates a worker for a kind. The pool calls it lazily on
// first acquire.
type Factory func(spec *KindSpec, deps Deps) (Worker, error)

// DefaultFactory builds the production worker for each kind. Kinds without
// a dedicated implementation get the generic LLM analysis worker.
func DefaultFactory(spec *KindSpec, deps Deps) (Worker, error) {
	switch spec.Name {
	case "anomaly_detector":
		return newAnomalyDetector(spec, deps), nil
	case "corruption_detector":
		return newCorruptionDetector(spec, deps), nil
	case "pattern_analyzer":
		return newPatternAnalyzer(spec, deps), nil
	case "regional_analyst":
		return newRegionalAnalyst(spec, deps), nil
	case "aggregator":
		return newAggregator(spec), nil
	case "report_writer":
		return newReportWriter(spec, deps), nil
	default:
		return newAnalysisWorker(spec, deps), nil
	}
}
