// Package orchestrator executes investigation plans: topological dispatch
// over the step DAG with parallel fanout, sequential short-circuit on
// required failures, saga compensation for partially completed parallel
// groups, and progress/event emission along the way.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/transparencia-ai/veritas/ent"
	"github.com/transparencia-ai/veritas/pkg/apperr"
	"github.com/transparencia-ai/veritas/pkg/events"
	"github.com/transparencia-ai/veritas/pkg/logging"
	"github.com/transparencia-ai/veritas/pkg/metrics"
	"github.com/transparencia-ai/veritas/pkg/models"
	"github.com/transparencia-ai/veritas/pkg/planner"
	"github.com/transparencia-ai/veritas/pkg/services"
)

// Executor runs one worker call. *workers.Runtime satisfies it.
type Executor interface {
	Execute(ctx context.Context, kind string, msg *models.WorkerMessage) (*models.WorkerResponse, error)
}

// Store is the investigation lifecycle surface the orchestrator writes to.
type Store interface {
	UpdateProgress(ctx context.Context, id string, progress float64, phase string) error
	Complete(ctx context.Context, id string, result *services.CompletionResult) error
	Fail(ctx context.Context, id string, kind apperr.Kind, message string, partial []models.Finding) error
	IsCancelled(ctx context.Context, id string) (bool, error)
	RecordCancellation(ctx context.Context, id string, partial []models.Finding) error
}

// Publisher emits streaming events. *events.Publisher satisfies it.
type Publisher interface {
	Publish(ctx context.Context, investigationID, eventType string, payload map[string]any) (int, error)
}

// Orchestrator drives one plan per investigation.
type Orchestrator struct {
	executor  Executor
	store     Store
	publisher Publisher
	m         *metrics.Metrics
}

// New builds an orchestrator.
func New(executor Executor, store Store, publisher Publisher, m *metrics.Metrics) *Orchestrator {
	return &Orchestrator{executor: executor, store: store, publisher: publisher, m: m}
}

type stepOutcome struct {
	idx  int
	resp *models.WorkerResponse
	err  error
}

// Run executes the plan for an investigation already in processing state.
// It writes the terminal state (completed or failed) itself; the returned
// error reports infrastructure failures only.
func (o *Orchestrator) Run(ctx context.Context, inv *ent.Investigation, plan *planner.Plan) error {
	log := logging.FromContext(ctx).With("investigation_id", inv.ID)
	start := time.Now()

	n := len(plan.Steps)
	indegree := make([]int, n)
	dependents := make([][]int, n)
	for i, deps := range plan.Edges {
		indegree[i] = len(deps)
		for _, d := range deps {
			dependents[d] = append(dependents[d], i)
		}
	}

	totalRequired := 0
	for _, s := range plan.Steps {
		if s.Required {
			totalRequired++
		}
	}

	results := make([]*models.WorkerResponse, n)
	outcomes := make(chan stepOutcome, n)
	running := 0

	// Steps run under their own context so a cancel request aborts
	// in-flight upstream calls instead of waiting out step timeouts.
	stepCtx, cancelSteps := context.WithCancel(ctx)
	defer cancelSteps()

	launch := func(i int) {
		running++
		step := plan.Steps[i]
		o.publish(ctx, inv.ID, events.TypeStepStarted, map[string]any{
			"step": step.ID, "worker_kind": step.WorkerKind,
		})
		go func() {
			resp, err := o.runStep(stepCtx, inv, plan, i, results)
			outcomes <- stepOutcome{idx: i, resp: resp, err: err}
		}()
	}

	for i := 0; i < n; i++ {
		if indegree[i] == 0 {
			launch(i)
		}
	}

	var (
		failure         error
		failedStep      string
		completedReq    int
		confidence      = 1.0
		summary         string
		recordsAnalyzed int
		sagaCompleted   []int
		findingsByStep  = make([][]models.Finding, n)
		cancelled       bool
	)

	for running > 0 {
		out := <-outcomes
		running--
		step := plan.Steps[out.idx]

		failed := out.err != nil || (out.resp != nil && out.resp.Status == models.ResponseFailed)
		if failed {
			errMsg := ""
			if out.err != nil {
				errMsg = out.err.Error()
			} else {
				errMsg = out.resp.Error
			}
			o.publish(ctx, inv.ID, events.TypeStepFailed, map[string]any{
				"step": step.ID, "error": errMsg,
			})
			if step.Required && failure == nil {
				failure = fmt.Errorf("step %s failed: %s", step.ID, errMsg)
				failedStep = step.ID
				if out.err != nil {
					failure = out.err
				}
			}
			// Optional step failures degrade the result; dependents still run.
		} else {
			results[out.idx] = out.resp
			findingsByStep[out.idx] = out.resp.Findings
			if step.WorkerKind == "report_writer" {
				summary = out.resp.Summary
			}
			if records, ok := out.resp.Metrics["records_analyzed"]; ok {
				recordsAnalyzed += int(records)
			}
			if step.Composition == planner.CompositionSaga {
				sagaCompleted = append(sagaCompleted, out.idx)
			}
			if step.Required {
				completedReq++
				if out.resp.QualityScore < confidence {
					confidence = out.resp.QualityScore
				}
				progress := float64(completedReq) / float64(totalRequired)
				if err := o.store.UpdateProgress(ctx, inv.ID, progress, step.ID); err != nil {
					log.Warn("Progress update rejected", "step", step.ID, "error", err)
				}
				o.publish(ctx, inv.ID, events.TypeInvestigationProgress, map[string]any{
					"step": step.ID, "progress": progress,
				})
			}
			o.publish(ctx, inv.ID, events.TypeStepCompleted, map[string]any{
				"step": step.ID, "quality_score": out.resp.QualityScore, "status": string(out.resp.Status),
			})
		}

		if !cancelled {
			if isCancelled, err := o.store.IsCancelled(ctx, inv.ID); err == nil && isCancelled {
				cancelled = true
				cancelSteps()
				log.Info("Investigation cancelled, aborting in-flight steps")
			}
		}

		// Launch unblocked dependents unless the run is doomed.
		if failure == nil && !cancelled {
			for _, d := range dependents[out.idx] {
				indegree[d]--
				if indegree[d] == 0 {
					launch(d)
				}
			}
		}
	}

	if cancelled {
		var partial []models.Finding
		for _, fs := range findingsByStep {
			partial = append(partial, fs...)
		}
		if err := o.store.RecordCancellation(ctx, inv.ID, partial); err != nil {
			log.Error("Failed to persist findings of cancelled investigation", "error", err)
		}
		o.publish(ctx, inv.ID, events.TypeInvestigationCancelled, map[string]any{
			"findings_count": len(partial),
		})
		o.m.ObserveRequest("orchestrator", "run", "cancelled", time.Since(start), "")
		log.Info("Investigation cancelled", "partial_findings", len(partial))
		return nil
	}

	if failure != nil {
		partial := o.compensate(log, plan, sagaCompleted, findingsByStep)
		kind := apperr.KindOf(failure)
		if err := o.store.Fail(ctx, inv.ID, kind, failure.Error(), partial); err != nil {
			log.Error("Failed to persist failed investigation", "error", err)
		}
		o.publish(ctx, inv.ID, events.TypeInvestigationFailed, map[string]any{
			"step": failedStep, "error_kind": string(kind), "error": failure.Error(),
		})
		o.m.ObserveRequest("orchestrator", "run", "failed", time.Since(start), string(kind))
		log.Warn("Investigation failed", "step", failedStep, "error", failure)
		return nil
	}

	var all []models.Finding
	for _, fs := range findingsByStep {
		all = append(all, fs...)
	}
	if reported := reporterFindings(plan, results); reported != nil {
		// The aggregator's deduplicated set supersedes raw worker output.
		all = reported
	}
	if totalRequired == 0 {
		confidence = 0
	}

	result := &services.CompletionResult{
		Findings:        all,
		Summary:         summary,
		Confidence:      confidence,
		RecordsAnalyzed: recordsAnalyzed,
	}
	if err := o.store.Complete(ctx, inv.ID, result); err != nil {
		return fmt.Errorf("failed to persist completed investigation: %w", err)
	}
	o.publish(ctx, inv.ID, events.TypeInvestigationCompleted, map[string]any{
		"findings_count": len(all),
		"confidence":     confidence,
		"summary":        summary,
	})
	o.m.ObserveRequest("orchestrator", "run", "completed", time.Since(start), "")
	log.Info("Investigation completed",
		"findings", len(all), "confidence", confidence, "duration", time.Since(start))
	return nil
}

// runStep builds the worker message for one step and executes it.
func (o *Orchestrator) runStep(ctx context.Context, inv *ent.Investigation, plan *planner.Plan, idx int, results []*models.WorkerResponse) (*models.WorkerResponse, error) {
	step := plan.Steps[idx]

	payload := make(map[string]any, len(step.Inputs)+3)
	for k, v := range step.Inputs {
		payload[k] = v
	}
	payload["query_text"] = inv.QueryText
	if params := entityParams(step.Inputs); len(params) > 0 {
		payload["params"] = params
	}

	// Consumers see the findings their producers emitted.
	if len(plan.Edges[idx]) > 0 {
		var upstream []models.Finding
		for _, d := range plan.Edges[idx] {
			if results[d] != nil {
				upstream = append(upstream, results[d].Findings...)
			}
		}
		if upstream != nil {
			payload["findings"] = upstream
		}
	}

	msg := &models.WorkerMessage{
		ID:            uuid.NewString(),
		CorrelationID: inv.CorrelationID,
		Sender:        "orchestrator",
		Recipient:     step.WorkerKind,
		Action:        "process",
		Payload:       payload,
	}
	if step.Timeout > 0 {
		msg.Deadline = time.Now().Add(step.Timeout)
	}
	return o.executor.Execute(ctx, step.WorkerKind, msg)
}

// compensate unwinds completed saga steps in reverse completion order and
// returns the findings that survive compensation.
func (o *Orchestrator) compensate(log interface {
	Info(msg string, args ...any)
}, plan *planner.Plan, sagaCompleted []int, findingsByStep [][]models.Finding) []models.Finding {
	discarded := make(map[int]bool, len(sagaCompleted))
	for i := len(sagaCompleted) - 1; i >= 0; i-- {
		idx := sagaCompleted[i]
		step := plan.Steps[idx]
		if step.Compensate == "" {
			continue
		}
		log.Info("Compensating step", "step", step.ID, "action", step.Compensate)
		discarded[idx] = true
	}

	var partial []models.Finding
	for idx, fs := range findingsByStep {
		if discarded[idx] {
			continue
		}
		partial = append(partial, fs...)
	}
	return partial
}

// reporterFindings returns the aggregator's output when the plan has one.
func reporterFindings(plan *planner.Plan, results []*models.WorkerResponse) []models.Finding {
	for i, step := range plan.Steps {
		if step.WorkerKind == "aggregator" && results[i] != nil {
			return results[i].Findings
		}
	}
	return nil
}

// entityParams maps extracted entities onto the upstream query parameters
// the Portal APIs understand.
func entityParams(inputs map[string]any) map[string]string {
	entities, ok := inputs["entities"].(map[string][]string)
	if !ok {
		return nil
	}
	params := make(map[string]string)
	if years := entities["year"]; len(years) > 0 {
		params["ano"] = years[0]
	}
	if states := entities["state"]; len(states) > 0 {
		params["uf"] = states[0]
	}
	if agencies := entities["agency"]; len(agencies) > 0 {
		params["codigoOrgao"] = agencies[0]
	}
	return params
}

func (o *Orchestrator) publish(ctx context.Context, investigationID, eventType string, payload map[string]any) {
	if o.publisher == nil {
		return
	}
	if _, err := o.publisher.Publish(ctx, investigationID, eventType, payload); err != nil {
		logging.FromContext(ctx).Warn("Failed to publish event",
			"type", eventType, "error", err)
	}
}
