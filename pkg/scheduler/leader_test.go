package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transparencia-ai/veritas/pkg/metrics"
)

func testRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestLeaderElection(t *testing.T) {
	_, rdb := testRedis(t)
	ctx := context.Background()
	m := metrics.New(prometheus.NewRegistry())

	a := NewLeaderElector(rdb, "pod-a", 30*time.Second, m)
	b := NewLeaderElector(rdb, "pod-b", 30*time.Second, m)

	require.True(t, a.TryAcquire(ctx))
	assert.True(t, a.IsLeader())

	// Only one leader at a time.
	assert.False(t, b.TryAcquire(ctx))
	assert.False(t, b.IsLeader())

	// The holder renews its own lease.
	assert.True(t, a.TryAcquire(ctx))
}

func TestLeaderLeaseExpiry(t *testing.T) {
	mr, rdb := testRedis(t)
	ctx := context.Background()
	m := metrics.New(prometheus.NewRegistry())

	a := NewLeaderElector(rdb, "pod-a", 10*time.Second, m)
	b := NewLeaderElector(rdb, "pod-b", 10*time.Second, m)

	require.True(t, a.TryAcquire(ctx))

	// Dead leader stops renewing; the lease lapses and B takes over.
	mr.FastForward(11 * time.Second)
	assert.True(t, b.TryAcquire(ctx))
	assert.False(t, a.TryAcquire(ctx))
}

func TestLeaderRelease(t *testing.T) {
	_, rdb := testRedis(t)
	ctx := context.Background()
	m := metrics.New(prometheus.NewRegistry())

	a := NewLeaderElector(rdb, "pod-a", 30*time.Second, m)
	b := NewLeaderElector(rdb, "pod-b", 30*time.Second, m)

	require.True(t, a.TryAcquire(ctx))
	a.Release(ctx)
	assert.False(t, a.IsLeader())
	assert.True(t, b.TryAcquire(ctx))

	// Releasing a lease we no longer hold must not evict the new holder.
	a.Release(ctx)
	assert.True(t, b.TryAcquire(ctx))
}

func TestPriorityRankOrdering(t *testing.T) {
	assert.Less(t, priorityRank["critical"], priorityRank["high"])
	assert.Less(t, priorityRank["high"], priorityRank["default"])
	assert.Less(t, priorityRank["default"], priorityRank["low"])
	assert.Less(t, priorityRank["low"], priorityRank["background"])
}
