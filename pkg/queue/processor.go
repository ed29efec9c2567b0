// Package queue turns pending investigation rows into running pipelines.
// Replicas claim work with SKIP LOCKED, heartbeat their claims, and hand
// abandoned claims back when a pod dies.
package queue

import (
	"context"
	"fmt"

	"github.com/transparencia-ai/veritas/ent"
	"github.com/transparencia-ai/veritas/pkg/logging"
	"github.com/transparencia-ai/veritas/pkg/orchestrator"
	"github.com/transparencia-ai/veritas/pkg/planner"
	"github.com/transparencia-ai/veritas/pkg/router"
)

// Processor runs one claimed investigation end to end.
type Processor interface {
	Process(ctx context.Context, inv *ent.Investigation) error
}

// Pipeline is the standard processor: route, plan, orchestrate.
type Pipeline struct {
	router  *router.Router
	planner *planner.Planner
	orch    *orchestrator.Orchestrator
}

// NewPipeline wires the processing stages.
func NewPipeline(r *router.Router, p *planner.Planner, o *orchestrator.Orchestrator) *Pipeline {
	return &Pipeline{router: r, planner: p, orch: o}
}

// Process classifies the query, selects and plans workers, and executes
// the plan. The caller has already moved the row into processing.
func (p *Pipeline) Process(ctx context.Context, inv *ent.Investigation) error {
	log := logging.FromContext(ctx).With("investigation_id", inv.ID)

	intent := p.router.Classify(inv.QueryText)
	entities := router.ExtractEntities(inv.QueryText)

	kinds := inv.RequestedWorkerKinds
	if len(kinds) == 0 {
		kinds = p.router.SelectWorkers(intent, entities)
	}
	log.Info("Investigation routed",
		"intent", intent.Kind, "confidence", intent.Confidence, "worker_kinds", kinds)

	plan, err := p.planner.Build(intent, entities, kinds)
	if err != nil {
		return fmt.Errorf("failed to build plan: %w", err)
	}

	return p.orch.Run(ctx, inv, plan)
}
