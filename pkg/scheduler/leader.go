// Package scheduler runs the autonomous job timetable. Exactly one
// replica fires jobs at a time, coordinated through a Redis lease; due
// jobs run in priority order and missed firings coalesce into one.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/transparencia-ai/veritas/pkg/metrics"
)

const leaderKey = "veritas:scheduler:leader"

// renewScript extends the lease only while we still hold it, so a lease
// that expired and moved to another replica is never stolen back.
var renewScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("pexpire", KEYS[1], ARGV[2])
end
return 0
`)

// releaseScript deletes the lease only if we hold it.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// LeaderElector acquires and renews the scheduler leader lease.
type LeaderElector struct {
	rdb   *redis.Client
	podID string
	ttl   time.Duration
	m     *metrics.Metrics

	mu      sync.Mutex
	leading bool
}

// NewLeaderElector builds an elector for this pod.
func NewLeaderElector(rdb *redis.Client, podID string, ttl time.Duration, m *metrics.Metrics) *LeaderElector {
	return &LeaderElector{rdb: rdb, podID: podID, ttl: ttl, m: m}
}

// TryAcquire attempts to take or renew the lease and reports whether this
// pod is currently the leader.
func (e *LeaderElector) TryAcquire(ctx context.Context) bool {
	ok, err := e.rdb.SetNX(ctx, leaderKey, e.podID, e.ttl).Result()
	if err != nil {
		e.setLeading(false)
		return false
	}
	if ok {
		e.setLeading(true)
		return true
	}

	renewed, err := renewScript.Run(ctx, e.rdb, []string{leaderKey}, e.podID, e.ttl.Milliseconds()).Int()
	leading := err == nil && renewed == 1
	e.setLeading(leading)
	return leading
}

// Release gives up the lease, letting another replica take over without
// waiting for the TTL.
func (e *LeaderElector) Release(ctx context.Context) {
	_, _ = releaseScript.Run(ctx, e.rdb, []string{leaderKey}, e.podID).Result()
	e.setLeading(false)
}

// IsLeader reports the last observed lease state.
func (e *LeaderElector) IsLeader() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.leading
}

func (e *LeaderElector) setLeading(leading bool) {
	e.mu.Lock()
	e.leading = leading
	e.mu.Unlock()
	e.m.SetLeader(leading)
}
