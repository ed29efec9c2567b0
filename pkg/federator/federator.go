// Package federator is the single entry point for all upstream API calls.
// Every fetch runs the same pipeline: fingerprint → cache → rate limiter →
// circuit breaker → HTTP, with bounded retry on transient failures. Upstream
// 403/404 responses are a normal outcome in this domain (many portals block
// programmatic access per-dataset) and surface as a restricted payload, not
// an error.
package federator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/transparencia-ai/veritas/pkg/apperr"
	"github.com/transparencia-ai/veritas/pkg/cache"
	"github.com/transparencia-ai/veritas/pkg/logging"
	"github.com/transparencia-ai/veritas/pkg/metrics"
	"github.com/transparencia-ai/veritas/pkg/registry"
)

// Payload is the result of a federated fetch. Bodies are opaque; decoding
// is the calling worker's responsibility.
type Payload struct {
	Body       []byte
	StatusCode int
	// Restricted is set for 403/404 upstream outcomes: the endpoint exists
	// but this dataset is blocked or absent. Body is empty.
	Restricted bool
	// FromCache reports whether the payload was served without an
	// upstream call.
	FromCache bool
	Endpoint  string
}

const maxResponseBytes = 16 << 20 // 16 MiB

// Federator coordinates per-endpoint breakers and rate limiters over a
// shared HTTP client and the cache hierarchy.
type Federator struct {
	reg    *registry.Registry
	cache  *cache.Hierarchy
	client *http.Client
	keys   map[string]string // endpoint name -> API key
	m      *metrics.Metrics

	mu       sync.Mutex
	breakers map[string]*breaker
	limiters map[string]*rate.Limiter

	group singleflight.Group
}

// New builds a Federator. keys maps endpoint names to their API keys; an
// endpoint with AuthMode api_key and no key still works against open
// endpoints but will typically come back 401.
func New(reg *registry.Registry, hierarchy *cache.Hierarchy, keys map[string]string, m *metrics.Metrics) *Federator {
	return &Federator{
		reg:   reg,
		cache: hierarchy,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		keys:     keys,
		m:        m,
		breakers: make(map[string]*breaker),
		limiters: make(map[string]*rate.Limiter),
	}
}

// Fetch resolves the endpoint, serves from cache when possible, and
// otherwise performs the rate-limited, breaker-guarded upstream call.
// Concurrent fetches for the same fingerprint share a single upstream call.
func (f *Federator) Fetch(ctx context.Context, endpointID string, params map[string]string) (*Payload, error) {
	start := time.Now()
	payload, err := f.fetch(ctx, endpointID, params)

	status := "ok"
	kind := ""
	if err != nil {
		status = "error"
		kind = string(apperr.KindOf(err))
	}
	f.m.ObserveRequest("federator", "fetch", status, time.Since(start), kind)
	return payload, err
}

func (f *Federator) fetch(ctx context.Context, endpointID string, params map[string]string) (*Payload, error) {
	spec, err := f.reg.Lookup(endpointID)
	if err != nil {
		return nil, err
	}

	fingerprint := cache.Fingerprint(endpointID, params)
	if entry, ok := f.cache.Get(ctx, fingerprint); ok {
		return &Payload{
			Body:       entry.Value,
			StatusCode: http.StatusOK,
			FromCache:  true,
			Endpoint:   endpointID,
		}, nil
	}

	// Only one in-flight origin fetch per fingerprint; latecomers share
	// the result.
	result, err, _ := f.group.Do(fingerprint, func() (any, error) {
		return f.fetchOrigin(ctx, spec, fingerprint, params)
	})
	if err != nil {
		return nil, err
	}
	return result.(*Payload), nil
}

func (f *Federator) fetchOrigin(ctx context.Context, spec *registry.EndpointSpec, fingerprint string, params map[string]string) (*Payload, error) {
	log := logging.FromContext(ctx).With("endpoint", spec.Name)

	if err := f.limiterFor(spec).Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return nil, apperr.Wrap(apperr.KindTimeout, "rate limit wait", ctx.Err())
		}
		return nil, apperr.Wrap(apperr.KindRateLimited, "rate limit wait exceeds deadline", err)
	}

	br := f.breakerFor(spec.Name)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			if err := sleepCtx(ctx, backoffDelay(attempt-1)); err != nil {
				return nil, apperr.Wrap(apperr.KindTimeout, "retry backoff", err)
			}
		}

		// Retry never crosses a circuit-open boundary.
		if !br.allow() {
			f.m.ObserveUpstream(spec.Name, "circuit_open")
			return nil, apperr.Newf(apperr.KindCircuitOpen, "circuit open for endpoint %s", spec.Name)
		}

		payload, err := f.doRequest(ctx, spec, params)
		if err == nil {
			br.recordSuccess()
			f.m.ObserveUpstream(spec.Name, "ok")
			if !payload.Restricted {
				f.cache.Put(ctx, fingerprint, payload.Body, string(spec.TTLClass), spec.Name)
			}
			return payload, nil
		}

		switch apperr.KindOf(err) {
		case apperr.KindUpstream:
			status := apperr.UpstreamStatusOf(err)
			if status >= 500 {
				br.recordFailure()
				f.m.ObserveUpstream(spec.Name, "upstream_5xx")
				lastErr = err
				log.Warn("Upstream call failed, retrying", "attempt", attempt, "status", status)
				continue
			}
			// Remaining 4xx (401, 422, 429...): terminal, never counted
			// against the breaker.
			br.releaseProbe()
			f.m.ObserveUpstream(spec.Name, "upstream_4xx")
			return nil, err
		case apperr.KindTimeout:
			br.recordFailure()
			f.m.ObserveUpstream(spec.Name, "timeout")
			lastErr = err
			log.Warn("Upstream call timed out, retrying", "attempt", attempt)
			continue
		default:
			// Network-level failure.
			br.recordFailure()
			f.m.ObserveUpstream(spec.Name, "network")
			lastErr = err
			log.Warn("Upstream call failed, retrying", "attempt", attempt, "error", err)
			continue
		}
	}
	return nil, lastErr
}

// doRequest performs one HTTP attempt. 403/404 yield a restricted payload
// with a nil error.
func (f *Federator) doRequest(ctx context.Context, spec *registry.EndpointSpec, params map[string]string) (*Payload, error) {
	reqURL, err := buildURL(spec.BaseURL, params)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "build upstream URL", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "build upstream request", err)
	}
	req.Header.Set("Accept", "application/json")
	if cid := logging.CorrelationID(ctx); cid != "" {
		req.Header.Set(logging.HeaderCorrelationID, cid)
	}
	switch spec.AuthMode {
	case registry.AuthAPIKey:
		if key := f.keys[spec.Name]; key != "" {
			req.Header.Set(spec.AuthHeader, key)
		}
	case registry.AuthBearer:
		if key := f.keys[spec.Name]; key != "" {
			req.Header.Set("Authorization", "Bearer "+key)
		}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return nil, apperr.Wrap(apperr.KindTimeout, "upstream call", err)
		}
		return nil, apperr.Wrap(apperr.KindUpstream, "upstream call", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusNotFound:
		// Blocked or absent dataset; a normal outcome here.
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return &Payload{
			StatusCode: resp.StatusCode,
			Restricted: true,
			Endpoint:   spec.Name,
		}, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		if err != nil {
			return nil, apperr.Wrap(apperr.KindUpstream, "read upstream body", err)
		}
		return &Payload{
			Body:       body,
			StatusCode: resp.StatusCode,
			Endpoint:   spec.Name,
		}, nil
	default:
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, apperr.Upstream(resp.StatusCode, fmt.Sprintf("endpoint %s returned %d", spec.Name, resp.StatusCode))
	}
}

// BreakerState exposes the current circuit state for an endpoint, for the
// readiness probe.
func (f *Federator) BreakerState(endpointID string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if br, ok := f.breakers[endpointID]; ok {
		return br.currentState().String()
	}
	return stateClosed.String()
}

func (f *Federator) breakerFor(name string) *breaker {
	f.mu.Lock()
	defer f.mu.Unlock()
	br, ok := f.breakers[name]
	if !ok {
		br = newBreaker(func(s breakerState) {
			f.m.SetBreakerState(name, int(s))
		})
		f.breakers[name] = br
	}
	return br
}

func (f *Federator) limiterFor(spec *registry.EndpointSpec) *rate.Limiter {
	f.mu.Lock()
	defer f.mu.Unlock()
	lim, ok := f.limiters[spec.Name]
	if !ok {
		perSec := rate.Limit(float64(spec.RatePerMin) / 60.0)
		burst := spec.RatePerMin / 6
		if burst < 1 {
			burst = 1
		}
		lim = rate.NewLimiter(perSec, burst)
		f.limiters[spec.Name] = lim
	}
	return lim
}

// buildURL substitutes {param} placeholders from params into the template;
// leftover params become the query string in sorted key order.
func buildURL(template string, params map[string]string) (string, error) {
	used := make(map[string]bool, len(params))
	out := template
	for k, v := range params {
		placeholder := "{" + k + "}"
		if strings.Contains(out, placeholder) {
			out = strings.ReplaceAll(out, placeholder, url.PathEscape(v))
			used[k] = true
		}
	}
	if i := strings.IndexByte(out, '{'); i >= 0 {
		return "", fmt.Errorf("unresolved placeholder in %s", out)
	}

	var keys []string
	for k := range params {
		if !used[k] {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return out, nil
	}
	sort.Strings(keys)

	q := url.Values{}
	for _, k := range keys {
		q.Set(k, params[k])
	}
	sep := "?"
	if strings.Contains(out, "?") {
		sep = "&"
	}
	return out + sep + q.Encode(), nil
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
