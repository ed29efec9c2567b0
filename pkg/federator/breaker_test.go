package federator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock drives the breaker deterministically.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestBreaker() (*breaker, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	b := newBreaker(nil)
	b.now = clock.now
	return b, clock
}

func TestBreakerOpensAfterThreshold(t *testing.T) {
	b, _ := newTestBreaker()

	for i := 0; i < defaultFailureThreshold-1; i++ {
		b.recordFailure()
		assert.Equal(t, stateClosed, b.currentState())
	}
	b.recordFailure()
	assert.Equal(t, stateOpen, b.currentState())
	assert.False(t, b.allow())
}

func TestBreakerWindowResetsCount(t *testing.T) {
	b, clock := newTestBreaker()

	for i := 0; i < defaultFailureThreshold-1; i++ {
		b.recordFailure()
	}
	// Failures older than the window no longer count toward the threshold.
	clock.advance(defaultFailureWindow + time.Second)
	b.recordFailure()
	assert.Equal(t, stateClosed, b.currentState())
}

func TestBreakerSuccessResetsCount(t *testing.T) {
	b, _ := newTestBreaker()

	for i := 0; i < defaultFailureThreshold-1; i++ {
		b.recordFailure()
	}
	b.recordSuccess()
	b.recordFailure()
	assert.Equal(t, stateClosed, b.currentState())
}

func TestBreakerHalfOpenSingleProbe(t *testing.T) {
	b, clock := newTestBreaker()

	for i := 0; i < defaultFailureThreshold; i++ {
		b.recordFailure()
	}
	assert.False(t, b.allow())

	clock.advance(defaultCooldown + time.Second)

	// First caller gets the probe; the second is rejected.
	assert.True(t, b.allow())
	assert.Equal(t, stateHalfOpen, b.currentState())
	assert.False(t, b.allow())

	b.recordSuccess()
	assert.Equal(t, stateClosed, b.currentState())
	assert.True(t, b.allow())
}

func TestBreakerFailedProbeDoublesCooldown(t *testing.T) {
	b, clock := newTestBreaker()

	for i := 0; i < defaultFailureThreshold; i++ {
		b.recordFailure()
	}

	clock.advance(defaultCooldown + time.Second)
	assert.True(t, b.allow())
	b.recordFailure()
	assert.Equal(t, stateOpen, b.currentState())
	assert.Equal(t, 2*defaultCooldown, b.cooldown)

	// Original cooldown is no longer enough.
	clock.advance(defaultCooldown + time.Second)
	assert.False(t, b.allow())

	clock.advance(defaultCooldown)
	assert.True(t, b.allow())
}

func TestBreakerCooldownCap(t *testing.T) {
	b, clock := newTestBreaker()

	for i := 0; i < defaultFailureThreshold; i++ {
		b.recordFailure()
	}
	for i := 0; i < 12; i++ {
		clock.advance(maxCooldown + time.Second)
		assert.True(t, b.allow())
		b.recordFailure()
	}
	assert.Equal(t, maxCooldown, b.cooldown)
}

func TestBreakerReleaseProbe(t *testing.T) {
	b, clock := newTestBreaker()

	for i := 0; i < defaultFailureThreshold; i++ {
		b.recordFailure()
	}
	clock.advance(defaultCooldown + time.Second)
	assert.True(t, b.allow())

	// An abandoned probe frees the slot for the next caller.
	b.releaseProbe()
	assert.True(t, b.allow())
}

func TestBreakerSuccessfulProbeResetsCooldown(t *testing.T) {
	b, clock := newTestBreaker()

	for i := 0; i < defaultFailureThreshold; i++ {
		b.recordFailure()
	}
	clock.advance(defaultCooldown + time.Second)
	assert.True(t, b.allow())
	b.recordFailure() // cooldown now doubled

	clock.advance(2*defaultCooldown + time.Second)
	assert.True(t, b.allow())
	b.recordSuccess()

	assert.Equal(t, defaultCooldown, b.cooldown)
	assert.Equal(t, stateClosed, b.currentState())
}
