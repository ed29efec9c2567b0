package database

import (
	"context"
	"time"
)

// PoolHealth is a point-in-time snapshot of database connectivity and
// connection pool pressure, surfaced on the readiness endpoint.
type PoolHealth struct {
	Reachable  bool  `json:"reachable"`
	PingMillis int64 `json:"ping_ms"`
	Open       int   `json:"open"`
	InUse      int   `json:"in_use"`
	Idle       int   `json:"idle"`
	WaitCount  int64 `json:"wait_count"`
	WaitMillis int64 `json:"wait_ms"`
	MaxOpen    int   `json:"max_open"`
}

// Health pings the database and snapshots the pool. The snapshot comes
// back even when the ping fails, so callers can report pool pressure
// alongside the outage.
func (c *Client) Health(ctx context.Context) (*PoolHealth, error) {
	start := time.Now()
	err := c.db.PingContext(ctx)
	stats := c.db.Stats()

	return &PoolHealth{
		Reachable:  err == nil,
		PingMillis: time.Since(start).Milliseconds(),
		Open:       stats.OpenConnections,
		InUse:      stats.InUse,
		Idle:       stats.Idle,
		WaitCount:  stats.WaitCount,
		WaitMillis: stats.WaitDuration.Milliseconds(),
		MaxOpen:    stats.MaxOpenConnections,
	}, err
}
