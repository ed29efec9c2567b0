package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const readyCheckTimeout = 2 * time.Second

// handleHealth is the liveness probe: constant-time, no dependency calls.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleReady is the readiness probe: the database must answer; Redis and
// other optional dependencies degrade the response without failing it.
func (s *Server) handleReady(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyCheckTimeout)
	defer cancel()

	var degraded []string

	pool, err := s.deps.DBHealth(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unavailable",
			"error":    "database unreachable",
			"database": pool,
		})
		return
	}

	if s.deps.Redis != nil {
		if err := s.deps.Redis.Ping(ctx).Err(); err != nil {
			degraded = append(degraded, "redis unreachable; running on L1/L3 cache only")
		}
	}
	for _, w := range s.deps.Warnings.List() {
		degraded = append(degraded, string(w.Category)+": "+w.Message)
	}

	status := "ready"
	if len(degraded) > 0 {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   status,
		"degraded": degraded,
		"database": pool,
	})
}
