package federator

import (
	"context"
	"math/rand"
	"time"
)

const (
	maxAttempts   = 3
	baseBackoff   = 200 * time.Millisecond
	maxBackoff    = 5 * time.Second
	backoffJitter = 0.2
	backoffFactor = 2.0
)

// backoffDelay computes the delay before the given retry attempt (1-based):
// exponential growth with ±20% jitter, capped.
func backoffDelay(attempt int) time.Duration {
	d := float64(baseBackoff)
	for i := 1; i < attempt; i++ {
		d *= backoffFactor
	}
	if d > float64(maxBackoff) {
		d = float64(maxBackoff)
	}
	jitter := 1 + backoffJitter*(2*rand.Float64()-1)
	return time.Duration(d * jitter)
}

// sleepCtx waits for d or until ctx is done, returning ctx.Err() in the
// latter case.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
