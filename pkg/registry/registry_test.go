package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transparencia-ai/veritas/pkg/apperr"
)

func TestNew(t *testing.T) {
	t.Run("rejects duplicate names", func(t *testing.T) {
		_, err := New([]EndpointSpec{
			{Name: "a", BaseURL: "https://example.org"},
			{Name: "a", BaseURL: "https://example.com"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := New([]EndpointSpec{{BaseURL: "https://example.org"}})
		require.Error(t, err)
	})
}

func TestLookup(t *testing.T) {
	r := NewDefault()

	t.Run("known endpoint", func(t *testing.T) {
		spec, err := r.Lookup("transparencia_contratos")
		require.NoError(t, err)
		assert.Equal(t, AuthAPIKey, spec.AuthMode)
		assert.Equal(t, "chave-api-dados", spec.AuthHeader)
		assert.True(t, spec.HasCapability("contracts"))
	})

	t.Run("unknown endpoint is NotFound", func(t *testing.T) {
		_, err := r.Lookup("no_such_endpoint")
		require.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestByCapability(t *testing.T) {
	r := NewDefault()

	t.Run("contracts served by multiple upstreams", func(t *testing.T) {
		specs := r.ByCapability("contracts")
		require.NotEmpty(t, specs)
		names := make([]string, 0, len(specs))
		for _, s := range specs {
			names = append(names, s.Name)
		}
		assert.Contains(t, names, "transparencia_contratos")
		assert.Contains(t, names, "compras_contratos")
	})

	t.Run("stable order across calls", func(t *testing.T) {
		first := r.ByCapability("sanctions")
		second := r.ByCapability("sanctions")
		require.Equal(t, len(first), len(second))
		for i := range first {
			assert.Equal(t, first[i].Name, second[i].Name)
		}
	})

	t.Run("unknown capability returns empty", func(t *testing.T) {
		assert.Empty(t, r.ByCapability("weather"))
	})
}

func TestDefaultCatalog(t *testing.T) {
	r := NewDefault()

	assert.GreaterOrEqual(t, r.Len(), 30)

	for _, spec := range r.All() {
		assert.NotEmpty(t, spec.BaseURL, "endpoint %s", spec.Name)
		assert.NotEmpty(t, spec.Capabilities, "endpoint %s", spec.Name)
		assert.Greater(t, spec.RatePerMin, 0, "endpoint %s", spec.Name)
		assert.Greater(t, spec.TypicalLatency, time.Duration(0), "endpoint %s", spec.Name)
		if spec.AuthMode == AuthAPIKey {
			assert.NotEmpty(t, spec.AuthHeader, "endpoint %s", spec.Name)
		}
	}
}
