// Package planner builds the execution DAG for a set of selected worker
// kinds. Plans are deterministic: the same (intent, entities, kinds) input
// always produces the same plan, byte for byte when serialized.
package planner

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/transparencia-ai/veritas/pkg/models"
	"github.com/transparencia-ai/veritas/pkg/workers"
)

// Composition selects how a step relates to its group.
type Composition string

const (
	CompositionSequential Composition = "sequential"
	CompositionParallel   Composition = "parallel"
	CompositionSaga       Composition = "saga"
)

// Step is one unit of work in a plan.
type Step struct {
	ID          string         `json:"id"`
	WorkerKind  string         `json:"worker_kind"`
	Inputs      map[string]any `json:"inputs,omitempty"`
	Composition Composition    `json:"composition"`
	Timeout     time.Duration  `json:"timeout"`
	Required    bool           `json:"required"`
	// Compensate names the action run in reverse order when a saga step
	// downstream fails. Empty means nothing to undo.
	Compensate string `json:"compensate,omitempty"`
}

// Plan is an acyclic graph over steps. edges[i] lists the indexes of the
// steps that must complete before steps[i] starts.
type Plan struct {
	Steps []Step  `json:"steps"`
	Edges [][]int `json:"edges"`
}

// Root returns the index of the plan's root step (no dependencies). Plans
// built here always have exactly one root.
func (p *Plan) Root() int {
	for i := range p.Steps {
		if len(p.Edges[i]) == 0 {
			return i
		}
	}
	return -1
}

// MarshalStable serializes the plan deterministically for storage and
// replay. Steps are already in stable order; json.Marshal keeps struct
// field order fixed.
func (p *Plan) MarshalStable() ([]byte, error) {
	return json.Marshal(p)
}

// Planner derives plans from the worker catalog's declared capabilities
// and dependencies.
type Planner struct {
	catalog *workers.Catalog
	// queryDeadline bounds the whole investigation; step timeouts shrink
	// under parallel fanout so siblings share it fairly.
	queryDeadline time.Duration
}

// New builds a planner. queryDeadline is the per-investigation budget.
func New(catalog *workers.Catalog, queryDeadline time.Duration) *Planner {
	return &Planner{catalog: catalog, queryDeadline: queryDeadline}
}

// Build produces the plan for the selected worker kinds.
//
// Placement rules:
//   - orchestrator_master is the implicit root of multi-worker plans;
//   - read_only workers with no dependencies form one parallel group
//     under the root;
//   - a kind declaring depends_on(cap) goes downstream of every selected
//     producer of cap;
//   - report_writer is always terminal, downstream of every other step.
func (p *Planner) Build(intent models.Intent, entities []models.Entity, kinds []string) (*Plan, error) {
	specs := make([]*workers.KindSpec, 0, len(kinds))
	seen := make(map[string]bool, len(kinds))
	for _, kind := range kinds {
		if seen[kind] {
			continue
		}
		seen[kind] = true
		spec, err := p.catalog.Lookup(kind)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("no worker kinds selected")
	}

	// Stable order: analysis steps sort by name so identical inputs yield
	// identical plans regardless of caller ordering.
	sort.Slice(specs, func(i, j int) bool { return specs[i].Name < specs[j].Name })

	inputs := stepInputs(intent, entities)

	if len(specs) == 1 {
		step := p.makeStep(specs[0], inputs, CompositionSequential, 1)
		step.Required = true
		return &Plan{Steps: []Step{step}, Edges: [][]int{{}}}, nil
	}

	var plan Plan
	indexOf := make(map[string]int)

	addStep := func(s Step, deps []int) int {
		sort.Ints(deps)
		plan.Steps = append(plan.Steps, s)
		plan.Edges = append(plan.Edges, deps)
		idx := len(plan.Steps) - 1
		indexOf[s.WorkerKind] = idx
		return idx
	}

	// Implicit root.
	rootSpec, err := p.catalog.Lookup("orchestrator_master")
	if err != nil {
		return nil, err
	}
	root := p.makeStep(rootSpec, inputs, CompositionSequential, 1)
	root.Required = true
	rootIdx := addStep(root, nil)

	// Partition the remaining kinds: independent analysis steps, then
	// dependency-bearing consumers, then report_writer last.
	var analysis, consumers []*workers.KindSpec
	var reporter *workers.KindSpec
	for _, spec := range specs {
		switch {
		case spec.Name == "orchestrator_master":
			// Already the root.
		case spec.Name == "report_writer":
			reporter = spec
		case len(spec.DependsOn) > 0:
			consumers = append(consumers, spec)
		default:
			analysis = append(analysis, spec)
		}
	}

	fanout := len(analysis)
	if fanout == 0 {
		fanout = 1
	}
	composition := CompositionSequential
	if len(analysis) > 1 {
		composition = CompositionParallel
	}
	if intent.Kind == models.IntentInvestigate && len(analysis) > 1 {
		// Investigations roll partial work back when a required probe
		// fails mid-flight.
		composition = CompositionSaga
	}

	for _, spec := range analysis {
		step := p.makeStep(spec, inputs, composition, fanout)
		// Parallel read-only probes are best-effort; a lone analysis step
		// carries the investigation.
		step.Required = !spec.ReadOnly || len(analysis) == 1
		if composition == CompositionSaga {
			step.Compensate = "discard_partial_findings"
		}
		addStep(step, []int{rootIdx})
	}

	for _, spec := range consumers {
		deps := p.producerIndexes(spec, indexOf)
		if len(deps) == 0 {
			deps = []int{rootIdx}
		}
		step := p.makeStep(spec, inputs, CompositionSequential, 1)
		step.Required = true
		addStep(step, deps)
	}

	if reporter != nil {
		deps := make([]int, 0, len(plan.Steps))
		for i := range plan.Steps {
			deps = append(deps, i)
		}
		step := p.makeStep(reporter, inputs, CompositionSequential, 1)
		step.Required = true
		addStep(step, deps)
	}

	return &plan, nil
}

// producerIndexes finds the already-placed steps producing any of the
// capabilities spec depends on.
func (p *Planner) producerIndexes(spec *workers.KindSpec, indexOf map[string]int) []int {
	depSet := make(map[int]bool)
	for _, cap := range spec.DependsOn {
		for _, producer := range p.catalog.ByCapability(cap) {
			if idx, ok := indexOf[producer.Name]; ok {
				depSet[idx] = true
			}
		}
	}
	deps := make([]int, 0, len(depSet))
	for idx := range depSet {
		deps = append(deps, idx)
	}
	sort.Ints(deps)
	return deps
}

func (p *Planner) makeStep(spec *workers.KindSpec, inputs map[string]any, comp Composition, fanout int) Step {
	// Each step gets min(kind default, share of the query budget).
	timeout := spec.DefaultTimeout
	if share := p.queryDeadline / time.Duration(fanout); share < timeout {
		timeout = share
	}
	return Step{
		ID:          spec.Name,
		WorkerKind:  spec.Name,
		Inputs:      inputs,
		Composition: comp,
		Timeout:     timeout,
	}
}

// stepInputs snapshots intent and entities into the immutable step input
// map shared by every step. Entity values keep extraction order.
func stepInputs(intent models.Intent, entities []models.Entity) map[string]any {
	byType := make(map[string][]string)
	for _, e := range entities {
		key := string(e.Type)
		byType[key] = append(byType[key], e.Value)
	}
	return map[string]any{
		"intent":     string(intent.Kind),
		"confidence": intent.Confidence,
		"entities":   byType,
	}
}
