// Package registry holds the static catalog of upstream government data
// endpoints. It is the only place in the codebase that knows upstream URLs;
// every other component names endpoints by symbolic id.
package registry

import (
	"fmt"
	"sort"
	"time"

	"github.com/transparencia-ai/veritas/pkg/apperr"
)

// AuthMode declares how an endpoint authenticates outbound requests.
type AuthMode string

const (
	AuthNone   AuthMode = "none"
	AuthAPIKey AuthMode = "api_key"
	AuthBearer AuthMode = "bearer"
)

// TTLClass is the cache lifetime class the endpoint's payloads default to.
type TTLClass string

const (
	TTLShort  TTLClass = "short"
	TTLMedium TTLClass = "medium"
	TTLLong   TTLClass = "long"
)

// EndpointSpec describes one upstream API endpoint.
type EndpointSpec struct {
	// Name is the symbolic id used across the codebase.
	Name string
	// BaseURL is the URL template. Path parameters use {param} placeholders
	// resolved from the fetch params map.
	BaseURL string
	// AuthMode selects the outbound auth scheme. api_key endpoints read the
	// key from config and send it in AuthHeader.
	AuthMode AuthMode
	// AuthHeader is the header name carrying the credential, when any.
	AuthHeader string
	// TTLClass is the default cache class for responses.
	TTLClass TTLClass
	// RatePerMin bounds outbound request rate to this endpoint.
	RatePerMin int
	// TypicalLatency is a planning hint, not an enforced limit.
	TypicalLatency time.Duration
	// Capabilities tags the kind of data this endpoint serves.
	Capabilities []string
}

// HasCapability reports whether the endpoint serves the given capability tag.
func (e *EndpointSpec) HasCapability(cap string) bool {
	for _, c := range e.Capabilities {
		if c == cap {
			return true
		}
	}
	return false
}

// Registry is a read-only endpoint catalog seeded at boot.
type Registry struct {
	byName map[string]*EndpointSpec
	names  []string
}

// New builds a registry from the given specs. Duplicate names are an error.
func New(specs []EndpointSpec) (*Registry, error) {
	r := &Registry{byName: make(map[string]*EndpointSpec, len(specs))}
	for i := range specs {
		spec := specs[i]
		if spec.Name == "" {
			return nil, fmt.Errorf("endpoint spec %d has empty name", i)
		}
		if _, dup := r.byName[spec.Name]; dup {
			return nil, fmt.Errorf("duplicate endpoint name %q", spec.Name)
		}
		r.byName[spec.Name] = &spec
		r.names = append(r.names, spec.Name)
	}
	sort.Strings(r.names)
	return r, nil
}

// NewDefault builds the registry with the seeded production catalog.
func NewDefault() *Registry {
	r, err := New(defaultEndpoints)
	if err != nil {
		// The seeded catalog is a compile-time constant; a duplicate here
		// is a programming error.
		panic(err)
	}
	return r
}

// Lookup returns the endpoint spec for a symbolic name.
func (r *Registry) Lookup(name string) (*EndpointSpec, error) {
	spec, ok := r.byName[name]
	if !ok {
		return nil, apperr.Newf(apperr.KindNotFound, "unknown endpoint %q", name)
	}
	return spec, nil
}

// ByCapability returns every endpoint serving the capability, in stable
// name order.
func (r *Registry) ByCapability(cap string) []*EndpointSpec {
	var out []*EndpointSpec
	for _, name := range r.names {
		if spec := r.byName[name]; spec.HasCapability(cap) {
			out = append(out, spec)
		}
	}
	return out
}

// All returns every endpoint in stable name order.
func (r *Registry) All() []*EndpointSpec {
	out := make([]*EndpointSpec, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.byName[name])
	}
	return out
}

// Len returns the number of seeded endpoints.
func (r *Registry) Len() int { return len(r.byName) }
