package federator

import (
	"sync"
	"time"
)

// breakerState mirrors the three circuit states.
type breakerState int

const (
	stateClosed breakerState = iota
	stateHalfOpen
	stateOpen
)

func (s breakerState) String() string {
	switch s {
	case stateHalfOpen:
		return "half_open"
	case stateOpen:
		return "open"
	default:
		return "closed"
	}
}

const (
	defaultFailureThreshold = 5
	defaultFailureWindow    = 60 * time.Second
	defaultCooldown         = 30 * time.Second
	maxCooldown             = 10 * time.Minute
)

// breaker is the per-endpoint circuit breaker. Closed: calls flow, failures
// within the window accumulate. After the threshold the breaker opens and
// fast-fails for a cooldown that doubles on each reopen, capped. After the
// cooldown a single probe is let through; its outcome decides the next
// state. 4xx outcomes never reach the breaker (they are reported via
// recordSuccess or not at all).
type breaker struct {
	mu sync.Mutex

	state         breakerState
	failureCount  int
	lastFailureAt time.Time
	openedAt      time.Time
	cooldown      time.Duration
	probeInFlight bool

	threshold int
	window    time.Duration

	// onTransition is called with the new state while the lock is held;
	// keep it O(1).
	onTransition func(state breakerState)

	now func() time.Time
}

func newBreaker(onTransition func(breakerState)) *breaker {
	return &breaker{
		cooldown:     defaultCooldown,
		threshold:    defaultFailureThreshold,
		window:       defaultFailureWindow,
		onTransition: onTransition,
		now:          time.Now,
	}
}

// allow reports whether a call may proceed. In half-open state only one
// probe is granted; callers that were denied must fail fast with
// CircuitOpen.
func (b *breaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case stateClosed:
		return true
	case stateOpen:
		if b.now().Sub(b.openedAt) < b.cooldown {
			return false
		}
		b.transition(stateHalfOpen)
		b.probeInFlight = true
		return true
	case stateHalfOpen:
		if b.probeInFlight {
			return false
		}
		b.probeInFlight = true
		return true
	}
	return false
}

// recordSuccess resets failure tracking. A successful half-open probe
// closes the circuit and resets the cooldown to its base value.
func (b *breaker) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failureCount = 0
	if b.state == stateHalfOpen {
		b.probeInFlight = false
		b.cooldown = defaultCooldown
		b.transition(stateClosed)
	}
}

// recordFailure counts a 5xx/timeout/network outcome. Reaching the
// threshold within the window opens the circuit. A failed half-open probe
// reopens with a doubled cooldown.
func (b *breaker) recordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()

	switch b.state {
	case stateHalfOpen:
		b.probeInFlight = false
		b.cooldown *= 2
		if b.cooldown > maxCooldown {
			b.cooldown = maxCooldown
		}
		b.openedAt = now
		b.transition(stateOpen)
	case stateClosed:
		if !b.lastFailureAt.IsZero() && now.Sub(b.lastFailureAt) > b.window {
			b.failureCount = 0
		}
		b.failureCount++
		b.lastFailureAt = now
		if b.failureCount >= b.threshold {
			b.openedAt = now
			b.transition(stateOpen)
		}
	case stateOpen:
		// Late failure from a call admitted before opening; nothing to do.
	}
}

// releaseProbe returns an unused half-open probe slot, for callers that
// were admitted but abandoned the call before completing it.
func (b *breaker) releaseProbe() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == stateHalfOpen {
		b.probeInFlight = false
	}
}

func (b *breaker) currentState() breakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *breaker) transition(to breakerState) {
	if b.state == to {
		return
	}
	b.state = to
	if b.onTransition != nil {
		b.onTransition(to)
	}
}
