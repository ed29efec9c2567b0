// Package metrics provides Prometheus instrumentation for every component
// boundary: request counters, latency histograms and error counters keyed
// by component and operation, plus gauges for breaker/pool/cache state.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus collectors for the process.
type Metrics struct {
	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	errorTotal      *prometheus.CounterVec

	breakerState     *prometheus.GaugeVec
	breakerOpens     *prometheus.CounterVec
	upstreamRequests *prometheus.CounterVec

	cacheHits   *prometheus.CounterVec
	cacheMisses *prometheus.CounterVec

	poolActive   *prometheus.GaugeVec
	poolAcquires *prometheus.CounterVec

	reflectionIterations *prometheus.HistogramVec
	workerQuality        *prometheus.HistogramVec

	eventsPublished *prometheus.CounterVec
	eventsDropped   *prometheus.CounterVec

	schedulerJobRuns *prometheus.CounterVec
	schedulerLeader  prometheus.Gauge
}

var (
	defaultMetrics *Metrics
	defaultOnce    sync.Once
)

// Default returns the process-wide Metrics instance registered on the
// default Prometheus registry.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = New(prometheus.DefaultRegisterer)
	})
	return defaultMetrics
}

// New creates and registers all collectors on the given registerer.
// Tests pass a private registry to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "veritas",
				Name:      "requests_total",
				Help:      "Operations per component partitioned by outcome.",
			},
			[]string{"component", "operation", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "veritas",
				Name:      "request_duration_seconds",
				Help:      "Operation latency per component.",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"component", "operation"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "veritas",
				Name:      "errors_total",
				Help:      "Errors per component partitioned by error kind.",
			},
			[]string{"component", "operation", "kind"},
		),
		breakerState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "veritas",
				Subsystem: "federator",
				Name:      "breaker_state",
				Help:      "Circuit breaker state per endpoint (0=closed, 1=half_open, 2=open).",
			},
			[]string{"endpoint"},
		),
		breakerOpens: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "veritas",
				Subsystem: "federator",
				Name:      "breaker_opens_total",
				Help:      "Circuit breaker open transitions per endpoint.",
			},
			[]string{"endpoint"},
		),
		upstreamRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "veritas",
				Subsystem: "federator",
				Name:      "upstream_requests_total",
				Help:      "Outbound upstream HTTP calls partitioned by result.",
			},
			[]string{"endpoint", "result"},
		),
		cacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "veritas",
				Subsystem: "cache",
				Name:      "hits_total",
				Help:      "Cache hits per tier.",
			},
			[]string{"tier"},
		),
		cacheMisses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "veritas",
				Subsystem: "cache",
				Name:      "misses_total",
				Help:      "Cache misses per tier.",
			},
			[]string{"tier"},
		),
		poolActive: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "veritas",
				Subsystem: "workers",
				Name:      "pool_active",
				Help:      "Active worker instances per kind.",
			},
			[]string{"kind"},
		),
		poolAcquires: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "veritas",
				Subsystem: "workers",
				Name:      "pool_acquires_total",
				Help:      "Pool acquire attempts partitioned by outcome.",
			},
			[]string{"kind", "result"},
		),
		reflectionIterations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "veritas",
				Subsystem: "workers",
				Name:      "reflection_iterations",
				Help:      "Reflection loop iterations per worker call.",
				Buckets:   []float64{1, 2, 3, 4, 5},
			},
			[]string{"kind"},
		),
		workerQuality: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "veritas",
				Subsystem: "workers",
				Name:      "quality_score",
				Help:      "Final quality score per worker call.",
				Buckets:   []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1},
			},
			[]string{"kind"},
		),
		eventsPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "veritas",
				Subsystem: "events",
				Name:      "published_total",
				Help:      "Events published per type.",
			},
			[]string{"type"},
		),
		eventsDropped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "veritas",
				Subsystem: "events",
				Name:      "dropped_total",
				Help:      "Events dropped for slow subscribers.",
			},
			[]string{"channel"},
		),
		schedulerJobRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "veritas",
				Subsystem: "scheduler",
				Name:      "job_runs_total",
				Help:      "Scheduled job firings partitioned by outcome.",
			},
			[]string{"kind", "result"},
		),
		schedulerLeader: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "veritas",
				Subsystem: "scheduler",
				Name:      "is_leader",
				Help:      "1 when this replica holds the leader lease.",
			},
		),
	}

	reg.MustRegister(
		m.requestTotal, m.requestDuration, m.errorTotal,
		m.breakerState, m.breakerOpens, m.upstreamRequests,
		m.cacheHits, m.cacheMisses,
		m.poolActive, m.poolAcquires,
		m.reflectionIterations, m.workerQuality,
		m.eventsPublished, m.eventsDropped,
		m.schedulerJobRuns, m.schedulerLeader,
	)
	return m
}

// ObserveRequest records one operation: count, latency and (when kind is
// non-empty) an error.
func (m *Metrics) ObserveRequest(component, operation, status string, d time.Duration, errKind string) {
	m.requestTotal.WithLabelValues(component, operation, status).Inc()
	m.requestDuration.WithLabelValues(component, operation).Observe(d.Seconds())
	if errKind != "" {
		m.errorTotal.WithLabelValues(component, operation, errKind).Inc()
	}
}

// SetBreakerState records a breaker transition (0=closed, 1=half_open, 2=open).
func (m *Metrics) SetBreakerState(endpoint string, state int) {
	m.breakerState.WithLabelValues(endpoint).Set(float64(state))
	if state == 2 {
		m.breakerOpens.WithLabelValues(endpoint).Inc()
	}
}

// ObserveUpstream records an outbound upstream call result.
func (m *Metrics) ObserveUpstream(endpoint, result string) {
	m.upstreamRequests.WithLabelValues(endpoint, result).Inc()
}

// CacheHit records a hit on a tier.
func (m *Metrics) CacheHit(tier string) { m.cacheHits.WithLabelValues(tier).Inc() }

// CacheMiss records a miss on a tier.
func (m *Metrics) CacheMiss(tier string) { m.cacheMisses.WithLabelValues(tier).Inc() }

// PoolAcquired tracks a successful acquire for a worker kind.
func (m *Metrics) PoolAcquired(kind string) {
	m.poolAcquires.WithLabelValues(kind, "ok").Inc()
	m.poolActive.WithLabelValues(kind).Inc()
}

// PoolExhausted tracks an acquire that failed on saturation.
func (m *Metrics) PoolExhausted(kind string) {
	m.poolAcquires.WithLabelValues(kind, "exhausted").Inc()
}

// PoolReleased tracks a release for a worker kind.
func (m *Metrics) PoolReleased(kind string) {
	m.poolActive.WithLabelValues(kind).Dec()
}

// ObserveReflection records the iteration count and final quality of one
// worker call.
func (m *Metrics) ObserveReflection(kind string, iterations int, quality float64) {
	m.reflectionIterations.WithLabelValues(kind).Observe(float64(iterations))
	m.workerQuality.WithLabelValues(kind).Observe(quality)
}

// EventPublished counts one published event.
func (m *Metrics) EventPublished(eventType string) {
	m.eventsPublished.WithLabelValues(eventType).Inc()
}

// EventDropped counts one event dropped for a slow subscriber.
func (m *Metrics) EventDropped(channel string) {
	m.eventsDropped.WithLabelValues(channel).Inc()
}

// JobRun counts one scheduled job firing.
func (m *Metrics) JobRun(kind, result string) {
	m.schedulerJobRuns.WithLabelValues(kind, result).Inc()
}

// SetLeader records leader lease possession.
func (m *Metrics) SetLeader(isLeader bool) {
	if isLeader {
		m.schedulerLeader.Set(1)
	} else {
		m.schedulerLeader.Set(0)
	}
}
