// Package api exposes the HTTP surface: the investigation REST endpoints,
// the SSE and WebSocket event streams, and the health/readiness/metrics
// endpoints.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/transparencia-ai/veritas/ent"
	"github.com/transparencia-ai/veritas/pkg/config"
	"github.com/transparencia-ai/veritas/pkg/database"
	"github.com/transparencia-ai/veritas/pkg/events"
	"github.com/transparencia-ai/veritas/pkg/metrics"
	"github.com/transparencia-ai/veritas/pkg/models"
	"github.com/transparencia-ai/veritas/pkg/services"
)

const shutdownTimeout = 10 * time.Second

// InvestigationService is the investigation surface the handlers call.
// *services.InvestigationService satisfies it.
type InvestigationService interface {
	Create(ctx context.Context, req *models.CreateInvestigationRequest) (*ent.Investigation, error)
	Get(ctx context.Context, principal services.Principal, id string) (*ent.Investigation, error)
	List(ctx context.Context, principal services.Principal, filter models.InvestigationFilter) ([]*ent.Investigation, int, error)
	Stats(ctx context.Context, principal services.Principal, userID string) (*models.InvestigationStats, error)
	Cancel(ctx context.Context, principal services.Principal, id string) (*ent.Investigation, error)
}

// Deps carries everything the handlers touch.
type Deps struct {
	Settings       *config.Settings
	Investigations InvestigationService
	Events         *services.EventService
	Manager        *events.Manager
	Publisher      *events.Publisher
	Warnings       *services.SystemWarningsService
	Metrics        *metrics.Metrics
	DBHealth       func(ctx context.Context) (*database.PoolHealth, error)
	Redis          *redis.Client
}

// Server is the HTTP front end.
type Server struct {
	deps Deps
	srv  *http.Server
	log  *slog.Logger
}

// NewServer builds the router and server.
func NewServer(deps Deps) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	if deps.Metrics != nil {
		engine.Use(metricsMiddleware(deps.Metrics))
	}

	s := &Server{
		deps: deps,
		log:  slog.Default().With("component", "api"),
	}

	engine.GET("/health", s.handleHealth)
	engine.GET("/ready", s.handleReady)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	gate := newRateGate(deps.Settings.RateGate)
	v1 := engine.Group("/api/v1")
	v1.Use(correlationMiddleware(), authMiddleware(), gate.middleware())
	{
		v1.POST("/investigations", s.handleCreateInvestigation)
		v1.GET("/investigations", s.handleListInvestigations)
		v1.GET("/investigations/stats", s.handleInvestigationStats)
		v1.GET("/investigations/:id", s.handleGetInvestigation)
		v1.POST("/investigations/:id/cancel", s.handleCancelInvestigation)
		v1.GET("/investigations/:id/events", s.handleSSE)
	}

	// WebSocket upgrades bypass the rate gate; the stream itself is
	// bounded by the subscriber buffer.
	ws := engine.Group("/ws")
	ws.Use(correlationMiddleware(), authMiddleware())
	ws.GET("/investigations/:id", s.handleWebSocket)

	s.srv = &http.Server{
		Addr:              ":" + deps.Settings.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Run serves until ctx is cancelled, then drains connections.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}
