// Veritas is a multi-agent investigation service over Brazilian public
// transparency data: queries are routed to specialist workers, executed
// as a plan, and streamed back to clients as they progress.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/transparencia-ai/veritas/pkg/api"
	"github.com/transparencia-ai/veritas/pkg/cache"
	"github.com/transparencia-ai/veritas/pkg/config"
	"github.com/transparencia-ai/veritas/pkg/database"
	"github.com/transparencia-ai/veritas/pkg/events"
	"github.com/transparencia-ai/veritas/pkg/federator"
	"github.com/transparencia-ai/veritas/pkg/llm"
	"github.com/transparencia-ai/veritas/pkg/logging"
	"github.com/transparencia-ai/veritas/pkg/metrics"
	"github.com/transparencia-ai/veritas/pkg/orchestrator"
	"github.com/transparencia-ai/veritas/pkg/planner"
	"github.com/transparencia-ai/veritas/pkg/queue"
	"github.com/transparencia-ai/veritas/pkg/registry"
	"github.com/transparencia-ai/veritas/pkg/router"
	"github.com/transparencia-ai/veritas/pkg/scheduler"
	"github.com/transparencia-ai/veritas/pkg/services"
	"github.com/transparencia-ai/veritas/pkg/workers"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Step 1: Environment and logging.
	_ = godotenv.Load()
	log := logging.Setup()

	// Step 2: Configuration.
	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	log.Info("Configuration loaded", "pod_id", settings.PodID, "http_port", settings.HTTPPort)

	m := metrics.Default()
	warnings := services.NewSystemWarningsService()

	// Step 3: Redis. Optional; without it the cache runs L1/L3 only and
	// the scheduler stays disabled (no leader lease).
	rdb := redis.NewClient(&redis.Options{
		Addr:     settings.Cache.RedisAddr,
		Password: settings.Cache.RedisPassword,
	})
	redisUp := true
	if err := rdb.Ping(ctx).Err(); err != nil {
		redisUp = false
		warnings.Add(services.WarningCategoryRedis, "redis unreachable at startup", err.Error())
		log.Warn("Redis unreachable, degrading to L1/L3 cache", "error", err)
	}

	// Step 4: Database (runs embedded migrations).
	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}
	db, err := database.NewClient(ctx, dbCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()
	log.Info("Database initialized", "host", dbCfg.Host, "database", dbCfg.Database)

	// Step 5: API registry and cache hierarchy.
	apiRegistry := registry.NewDefault()
	log.Info("API registry loaded", "endpoints", apiRegistry.Len())

	var l2 cache.Tier
	if redisUp {
		l2 = cache.NewRedisTier(rdb)
	}
	l3 := cache.NewDurableTier(db.Client)
	hierarchy := cache.NewHierarchy(settings.Cache, l2, l3, m, log)

	// Step 6: HTTP federator.
	fed := federator.New(apiRegistry, hierarchy, config.UpstreamAPIKeys(), m)

	// Step 7: LLM client.
	llmClient, err := llm.NewClient(settings.LLM, m)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	log.Info("LLM client ready",
		"primary", settings.LLM.PrimaryProvider, "backup", settings.LLM.BackupProvider)

	// Step 8: Worker catalog, pool and runtime.
	catalog := workers.NewCatalog(settings.Workers)
	pool := workers.NewPool(catalog, workers.DefaultFactory, workers.Deps{
		Federator: fed,
		LLM:       llmClient,
	}, settings.Workers.IdleTTL, m, log)
	pool.StartReaper(ctx)
	runtime := workers.NewRuntime(pool, m)

	// Step 9: Services and event backbone.
	invService := services.NewInvestigationService(db.Client)
	eventService := services.NewEventService(db.Client)
	publisher := events.NewPublisher(db.DB(), m)
	manager := events.NewManager(eventService, m)
	listener := events.NewListener(dbCfg.DSN(), manager.HandleEnvelope)

	// Step 10: Routing, planning and orchestration.
	rt := router.New(catalog)
	pl := planner.New(catalog, settings.Queue.InvestigationTimeout)
	orch := orchestrator.New(runtime, invService, publisher, m)
	pipeline := queue.NewPipeline(rt, pl, orch)

	// Step 11: Investigation queue.
	q := queue.New(settings.Queue, invService, pipeline, settings.PodID, m)

	// Step 12: Scheduler (leader-elected, needs Redis).
	var sched *scheduler.Scheduler
	if settings.Scheduler.Enabled && redisUp {
		elector := scheduler.NewLeaderElector(rdb, settings.PodID, settings.Scheduler.LeaderLeaseTTL, m)
		sched = scheduler.New(settings.Scheduler, db.Client, elector, m)
		err := scheduler.RegisterBuiltinJobs(ctx, sched, scheduler.JobDeps{
			Federator:      fed,
			Cache:          l3,
			Investigations: invService,
			Events:         eventService,
			Warnings:       warnings,
			Retention:      settings.Retention,
		})
		if err != nil {
			return fmt.Errorf("failed to register scheduled jobs: %w", err)
		}
	} else if settings.Scheduler.Enabled {
		warnings.Add(services.WarningCategoryScheduler, "scheduler disabled: redis unavailable", "")
	}

	// Step 13: HTTP server.
	server := api.NewServer(api.Deps{
		Settings:       settings,
		Investigations: invService,
		Events:         eventService,
		Manager:        manager,
		Publisher:      publisher,
		Warnings:       warnings,
		Metrics:        m,
		DBHealth:       db.Health,
		Redis:          rdb,
	})

	// Step 14: Run everything; first error or signal stops the rest.
	var wg sync.WaitGroup
	errCh := make(chan error, 4)
	start := func(name string, fn func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(ctx); err != nil {
				errCh <- fmt.Errorf("%s: %w", name, err)
			}
		}()
	}

	start("event listener", listener.Run)
	start("queue", q.Run)
	if sched != nil {
		start("scheduler", sched.Run)
	}
	start("http server", server.Run)

	select {
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	case err := <-errCh:
		log.Error("Component failed, shutting down", "error", err)
		stop()
	}

	wg.Wait()
	pool.Shutdown(context.WithoutCancel(ctx))
	log.Info("Shutdown complete")
	return nil
}
