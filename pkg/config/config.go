// Package config assembles the immutable runtime settings for Veritas.
// Settings are read once at startup from the environment (optionally a
// .env file loaded by the caller) and passed down through component
// constructors — no package-level singletons.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Settings is the top-level configuration value. It is constructed at
// boot and never mutated afterwards.
type Settings struct {
	HTTPPort string
	PodID    string

	LLM       LLMConfig
	Cache     CacheConfig
	Queue     QueueConfig
	Scheduler SchedulerConfig
	Workers   WorkersConfig
	RateGate  RateGateConfig
	Retention RetentionConfig
}

// LLMConfig selects the model providers used by worker Process/Reflect
// calls. The backup provider is used automatically when the primary fails.
type LLMConfig struct {
	PrimaryProvider string // "anthropic", "openai" or "stub"
	BackupProvider  string // optional; empty disables failover
	APIKey          string
	BackupAPIKey    string
	Model           string
	BackupModel     string
	RequestTimeout  time.Duration
}

// CacheConfig holds cache hierarchy settings.
type CacheConfig struct {
	RedisAddr     string
	RedisPassword string
	L1Size        int
	TTLShort      time.Duration
	TTLMedium     time.Duration
	TTLLong       time.Duration
}

// TTLFor maps a TTL class name to its configured duration.
// Unknown classes fall back to the short TTL.
func (c CacheConfig) TTLFor(class string) time.Duration {
	switch class {
	case "medium":
		return c.TTLMedium
	case "long":
		return c.TTLLong
	default:
		return c.TTLShort
	}
}

// QueueConfig controls the investigation claim pipeline.
type QueueConfig struct {
	WorkerCount             int
	MaxConcurrentRuns       int
	PollInterval            time.Duration
	PollIntervalJitter      time.Duration
	InvestigationTimeout    time.Duration
	HeartbeatInterval       time.Duration
	OrphanThreshold         time.Duration
	OrphanScanInterval      time.Duration
	GracefulShutdownTimeout time.Duration
}

// SchedulerConfig controls the autonomous job scheduler.
type SchedulerConfig struct {
	Enabled        bool
	TickInterval   time.Duration
	LeaderLeaseTTL time.Duration
	MaxJobRetries  int
	RetryBackoff   time.Duration
}

// WorkersConfig carries reflection-loop defaults applied to worker kinds
// that do not declare their own.
type WorkersConfig struct {
	QualityThresholdDefault float64
	MaxReflectionIterations int
	IdleTTL                 time.Duration
}

// RateGateConfig bounds inbound API traffic per principal.
type RateGateConfig struct {
	PerMinute int
	PerHour   int
	PerDay    int
}

// RetentionConfig controls soft-delete retention and event row TTL.
type RetentionConfig struct {
	InvestigationRetentionDays int
	EventTTL                   time.Duration
}

// Load reads Settings from the environment.
func Load() (*Settings, error) {
	s := &Settings{
		HTTPPort: getEnv("HTTP_PORT", "8080"),
		PodID:    resolvePodID(),
		LLM: LLMConfig{
			PrimaryProvider: getEnv("PRIMARY_LLM_PROVIDER", "anthropic"),
			BackupProvider:  getEnv("BACKUP_LLM_PROVIDER", ""),
			APIKey:          os.Getenv("LLM_API_KEY"),
			BackupAPIKey:    os.Getenv("LLM_BACKUP_API_KEY"),
			Model:           getEnv("LLM_MODEL", "claude-sonnet-4-20250514"),
			BackupModel:     getEnv("LLM_BACKUP_MODEL", "gpt-4o-mini"),
			RequestTimeout:  getDuration("LLM_REQUEST_TIMEOUT", 60*time.Second),
		},
		Cache: CacheConfig{
			RedisAddr:     getEnv("CACHE_URL", "localhost:6379"),
			RedisPassword: os.Getenv("CACHE_PASSWORD"),
			L1Size:        getInt("CACHE_L1_SIZE", 2048),
			TTLShort:      getDuration("CACHE_TTL_SHORT", 5*time.Minute),
			TTLMedium:     getDuration("CACHE_TTL_MEDIUM", time.Hour),
			TTLLong:       getDuration("CACHE_TTL_LONG", 24*time.Hour),
		},
		Queue: QueueConfig{
			WorkerCount:             getInt("QUEUE_WORKER_COUNT", 4),
			MaxConcurrentRuns:       getInt("QUEUE_MAX_CONCURRENT", 10),
			PollInterval:            getDuration("QUEUE_POLL_INTERVAL", 2*time.Second),
			PollIntervalJitter:      getDuration("QUEUE_POLL_JITTER", 500*time.Millisecond),
			InvestigationTimeout:    getDuration("INVESTIGATION_TIMEOUT", 10*time.Minute),
			HeartbeatInterval:       getDuration("QUEUE_HEARTBEAT_INTERVAL", 15*time.Second),
			OrphanThreshold:         getDuration("QUEUE_ORPHAN_THRESHOLD", 2*time.Minute),
			OrphanScanInterval:      getDuration("QUEUE_ORPHAN_SCAN_INTERVAL", time.Minute),
			GracefulShutdownTimeout: getDuration("QUEUE_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Scheduler: SchedulerConfig{
			Enabled:        getBool("SCHEDULER_ENABLED", true),
			TickInterval:   getDuration("SCHEDULER_TICK_INTERVAL", 10*time.Second),
			LeaderLeaseTTL: getDuration("LEADER_LEASE_TTL", 30*time.Second),
			MaxJobRetries:  getInt("SCHEDULER_MAX_JOB_RETRIES", 3),
			RetryBackoff:   getDuration("SCHEDULER_RETRY_BACKOFF", 5*time.Second),
		},
		Workers: WorkersConfig{
			QualityThresholdDefault: getFloat("QUALITY_THRESHOLD_DEFAULT", 0.8),
			MaxReflectionIterations: getInt("MAX_REFLECTION_ITERATIONS", 3),
			IdleTTL:                 getDuration("WORKER_IDLE_TTL", 5*time.Minute),
		},
		RateGate: RateGateConfig{
			PerMinute: getInt("RATE_LIMIT_PER_MIN", 60),
			PerHour:   getInt("RATE_LIMIT_PER_HOUR", 1000),
			PerDay:    getInt("RATE_LIMIT_PER_DAY", 10000),
		},
		Retention: RetentionConfig{
			InvestigationRetentionDays: getInt("RETENTION_DAYS", 90),
			EventTTL:                   getDuration("EVENT_TTL", time.Hour),
		},
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) validate() error {
	if s.Queue.WorkerCount < 1 {
		return fmt.Errorf("QUEUE_WORKER_COUNT must be >= 1, got %d", s.Queue.WorkerCount)
	}
	if s.Workers.QualityThresholdDefault < 0 || s.Workers.QualityThresholdDefault > 1 {
		return fmt.Errorf("QUALITY_THRESHOLD_DEFAULT must be in [0,1], got %v", s.Workers.QualityThresholdDefault)
	}
	if s.Workers.MaxReflectionIterations < 0 {
		return fmt.Errorf("MAX_REFLECTION_ITERATIONS must be >= 0, got %d", s.Workers.MaxReflectionIterations)
	}
	switch s.LLM.PrimaryProvider {
	case "anthropic", "openai", "stub":
	default:
		return fmt.Errorf("unknown PRIMARY_LLM_PROVIDER %q", s.LLM.PrimaryProvider)
	}
	return nil
}

// UpstreamAPIKeys collects per-endpoint upstream credentials from the
// environment: UPSTREAM_API_KEY_TRANSPARENCIA_CONTRATOS=... maps to
// endpoint "transparencia_contratos".
func UpstreamAPIKeys() map[string]string {
	const prefix = "UPSTREAM_API_KEY_"
	keys := make(map[string]string)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, prefix) || value == "" {
			continue
		}
		endpoint := strings.ToLower(strings.TrimPrefix(name, prefix))
		keys[endpoint] = value
	}
	return keys
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
