package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/transparencia-ai/veritas/pkg/config"
	"github.com/transparencia-ai/veritas/pkg/logging"
	"github.com/transparencia-ai/veritas/pkg/metrics"
	"github.com/transparencia-ai/veritas/pkg/services"
)

const (
	headerUserID           = "X-User-ID"
	headerServicePrincipal = "X-Service-Principal"

	principalKey = "principal"
)

// metricsMiddleware records request counts and latency per route.
func metricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := "ok"
		if c.Writer.Status() >= 400 {
			status = "error"
		}
		m.ObserveRequest("api", c.Request.Method+" "+route, status, time.Since(start), "")
	}
}

// correlationMiddleware assigns or propagates the request correlation id
// and stores a derived logger on the request context.
func correlationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cid := c.GetHeader(logging.HeaderCorrelationID)
		if cid == "" {
			cid = logging.NewCorrelationID()
		}
		ctx := logging.WithCorrelationID(c.Request.Context(), cid)
		c.Request = c.Request.WithContext(ctx)
		c.Header(logging.HeaderCorrelationID, cid)
		c.Next()
	}
}

// authMiddleware resolves the caller principal from the trusted gateway
// headers. Identity verification happens at the edge; this service only
// consumes the asserted identity.
func authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(headerServicePrincipal) == "true" {
			c.Set(principalKey, services.ServicePrincipal)
			c.Next()
			return
		}
		userID := c.GetHeader(headerUserID)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing " + headerUserID + " header",
			})
			return
		}
		c.Set(principalKey, services.Principal{UserID: userID})
		c.Next()
	}
}

func principalFrom(c *gin.Context) services.Principal {
	p, _ := c.Get(principalKey)
	principal, _ := p.(services.Principal)
	return principal
}

// rateGate enforces per-principal minute, hour and day quotas. Buckets
// idle past the sweep horizon are evicted to bound memory.
type rateGate struct {
	cfg config.RateGateConfig

	mu      sync.Mutex
	buckets map[string]*principalBucket
}

type principalBucket struct {
	minute   *rate.Limiter
	hour     *rate.Limiter
	day      *rate.Limiter
	lastSeen time.Time
}

func newRateGate(cfg config.RateGateConfig) *rateGate {
	g := &rateGate{cfg: cfg, buckets: make(map[string]*principalBucket)}
	go g.sweep()
	return g
}

func (g *rateGate) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := principalFrom(c)
		if principal.Service {
			// Internal callers are not gated.
			c.Next()
			return
		}
		if !g.allow(principal.UserID) {
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}

func (g *rateGate) allow(userID string) bool {
	g.mu.Lock()
	bucket, ok := g.buckets[userID]
	if !ok {
		bucket = g.newBucket()
		g.buckets[userID] = bucket
	}
	bucket.lastSeen = time.Now()
	g.mu.Unlock()

	// Minute first: a request rejected for burstiness must not burn
	// hour or day quota.
	if !bucket.minute.Allow() {
		return false
	}
	if bucket.hour != nil && !bucket.hour.Allow() {
		return false
	}
	return bucket.day == nil || bucket.day.Allow()
}

// newBucket builds the per-window limiters. The minute limiter smooths
// bursts; the hour and day limiters carry the full quota as burst so a
// principal can spend it unevenly within the window.
func (g *rateGate) newBucket() *principalBucket {
	perMin := g.cfg.PerMinute
	if perMin < 1 {
		perMin = 1
	}
	burst := perMin / 6
	if burst < 1 {
		burst = 1
	}
	b := &principalBucket{
		minute: rate.NewLimiter(rate.Limit(float64(perMin)/60.0), burst),
	}
	if g.cfg.PerHour > 0 {
		b.hour = rate.NewLimiter(rate.Limit(float64(g.cfg.PerHour)/3600.0), g.cfg.PerHour)
	}
	if g.cfg.PerDay > 0 {
		b.day = rate.NewLimiter(rate.Limit(float64(g.cfg.PerDay)/86400.0), g.cfg.PerDay)
	}
	return b
}

func (g *rateGate) sweep() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-time.Hour)
		g.mu.Lock()
		for id, bucket := range g.buckets {
			if bucket.lastSeen.Before(cutoff) {
				delete(g.buckets, id)
			}
		}
		g.mu.Unlock()
	}
}
