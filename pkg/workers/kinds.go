package workers

import (
	"time"

	"github.com/transparencia-ai/veritas/pkg/apperr"
	"github.com/transparencia-ai/veritas/pkg/config"
)

// KindSpec declares one worker kind's capabilities and runtime limits.
type KindSpec struct {
	Name         string
	Capabilities []string
	// ReadOnly workers on disjoint data sources may run in parallel.
	ReadOnly bool
	// DependsOn places the worker downstream of any producer of the
	// capability in the plan.
	DependsOn []string
	// Priority breaks ties in deterministic worker selection. Higher wins.
	Priority                int
	MaxConcurrent           int64
	DefaultTimeout          time.Duration
	QualityThreshold        float64
	MaxReflectionIterations int
}

// Catalog is the static worker kind registry.
type Catalog struct {
	byName map[string]*KindSpec
	order  []string
}

// NewCatalog seeds the catalog, applying config defaults to kinds that do
// not declare their own threshold or iteration cap.
func NewCatalog(cfg config.WorkersConfig) *Catalog {
	c := &Catalog{byName: make(map[string]*KindSpec, len(defaultKinds))}
	for i := range defaultKinds {
		spec := defaultKinds[i]
		if spec.QualityThreshold == 0 {
			spec.QualityThreshold = cfg.QualityThresholdDefault
		}
		if spec.MaxReflectionIterations == 0 {
			spec.MaxReflectionIterations = cfg.MaxReflectionIterations
		}
		c.byName[spec.Name] = &spec
		c.order = append(c.order, spec.Name)
	}
	return c
}

// Lookup returns the spec for a kind name.
func (c *Catalog) Lookup(name string) (*KindSpec, error) {
	spec, ok := c.byName[name]
	if !ok {
		return nil, apperr.Newf(apperr.KindNotFound, "unknown worker kind %q", name)
	}
	return spec, nil
}

// ByCapability returns kinds serving a capability, in seeded order.
func (c *Catalog) ByCapability(cap string) []*KindSpec {
	var out []*KindSpec
	for _, name := range c.order {
		spec := c.byName[name]
		for _, wc := range spec.Capabilities {
			if wc == cap {
				out = append(out, spec)
				break
			}
		}
	}
	return out
}

// All returns every kind in seeded order.
func (c *Catalog) All() []*KindSpec {
	out := make([]*KindSpec, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

var defaultKinds = []KindSpec{
	{
		Name:           "orchestrator_master",
		Capabilities:   []string{"coordination"},
		Priority:       100,
		MaxConcurrent:  8,
		DefaultTimeout: 5 * time.Minute,
	},
	{
		Name:           "anomaly_detector",
		Capabilities:   []string{"anomaly_detection", "statistics"},
		ReadOnly:       true,
		Priority:       90,
		MaxConcurrent:  6,
		DefaultTimeout: 2 * time.Minute,
	},
	{
		Name:           "corruption_detector",
		Capabilities:   []string{"corruption_signals", "anomaly_detection"},
		ReadOnly:       true,
		Priority:       88,
		MaxConcurrent:  4,
		DefaultTimeout: 2 * time.Minute,
	},
	{
		Name:           "pattern_analyzer",
		Capabilities:   []string{"pattern_analysis", "statistics"},
		ReadOnly:       true,
		Priority:       80,
		MaxConcurrent:  6,
		DefaultTimeout: 2 * time.Minute,
	},
	{
		Name:           "textual_analyzer",
		Capabilities:   []string{"text_analysis"},
		ReadOnly:       true,
		Priority:       70,
		MaxConcurrent:  6,
		DefaultTimeout: 90 * time.Second,
	},
	{
		Name:           "legal_checker",
		Capabilities:   []string{"legal_compliance"},
		ReadOnly:       true,
		Priority:       65,
		MaxConcurrent:  4,
		DefaultTimeout: 2 * time.Minute,
	},
	{
		Name:           "security_auditor",
		Capabilities:   []string{"security_audit"},
		ReadOnly:       true,
		Priority:       60,
		MaxConcurrent:  2,
		DefaultTimeout: 2 * time.Minute,
	},
	{
		Name:           "regional_analyst",
		Capabilities:   []string{"regional_analysis", "demographics"},
		ReadOnly:       true,
		Priority:       55,
		MaxConcurrent:  4,
		DefaultTimeout: 2 * time.Minute,
	},
	{
		Name:           "social_equity",
		Capabilities:   []string{"equity_analysis", "demographics"},
		ReadOnly:       true,
		Priority:       50,
		MaxConcurrent:  4,
		DefaultTimeout: 2 * time.Minute,
	},
	{
		Name:           "predictive",
		Capabilities:   []string{"forecasting"},
		ReadOnly:       true,
		Priority:       45,
		MaxConcurrent:  2,
		DefaultTimeout: 3 * time.Minute,
	},
	{
		Name:           "aggregator",
		Capabilities:   []string{"aggregation"},
		DependsOn:      []string{"anomaly_detection", "pattern_analysis"},
		Priority:       40,
		MaxConcurrent:  4,
		DefaultTimeout: time.Minute,
	},
	{
		Name:           "visualizer",
		Capabilities:   []string{"visualization"},
		DependsOn:      []string{"aggregation"},
		Priority:       30,
		MaxConcurrent:  4,
		DefaultTimeout: time.Minute,
	},
	{
		Name:           "report_writer",
		Capabilities:   []string{"reporting"},
		DependsOn:      []string{"anomaly_detection", "pattern_analysis", "aggregation"},
		Priority:       25,
		MaxConcurrent:  4,
		DefaultTimeout: 2 * time.Minute,
	},
	{
		Name:           "communicator",
		Capabilities:   []string{"communication"},
		DependsOn:      []string{"reporting"},
		Priority:       20,
		MaxConcurrent:  4,
		DefaultTimeout: time.Minute,
	},
	{
		Name:           "memory",
		Capabilities:   []string{"memory", "context"},
		ReadOnly:       true,
		Priority:       15,
		MaxConcurrent:  8,
		DefaultTimeout: 30 * time.Second,
	},
	{
		Name:           "router",
		Capabilities:   []string{"routing", "help"},
		ReadOnly:       true,
		Priority:       10,
		MaxConcurrent:  8,
		DefaultTimeout: 30 * time.Second,
	},
}
