package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	t.Run("typed error", func(t *testing.T) {
		err := New(KindNotFound, "investigation missing")
		assert.Equal(t, KindNotFound, KindOf(err))
	})

	t.Run("wrapped typed error", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", New(KindValidation, "bad input"))
		assert.Equal(t, KindValidation, KindOf(err))
		assert.True(t, Is(err, KindValidation))
	})

	t.Run("untyped error defaults to internal", func(t *testing.T) {
		assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	})
}

func TestUpstream(t *testing.T) {
	err := Upstream(502, "bad gateway")
	assert.Equal(t, KindUpstream, KindOf(err))
	assert.Equal(t, 502, UpstreamStatusOf(err))
}

func TestRetriable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"timeout", New(KindTimeout, "deadline"), true},
		{"pool exhausted", New(KindPoolExhausted, "full"), true},
		{"upstream 503", Upstream(503, "unavailable"), true},
		{"upstream 403", Upstream(403, "blocked"), false},
		{"validation", New(KindValidation, "bad"), false},
		{"circuit open", New(KindCircuitOpen, "open"), false},
		{"untyped", errors.New("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Retriable(tt.err))
		})
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindUpstream, "upstream call", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}
