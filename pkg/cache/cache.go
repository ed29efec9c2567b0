// Package cache implements the three-tier response cache: an in-process LRU
// (L1), a shared redis tier (L2) and a durable Postgres tier (L3) for
// long-lived entries that must survive restarts.
//
// Reads walk L1 → L2 → L3 and populate upward on hit. Writes go to every
// applicable tier. A put never shrinks the remaining TTL of an existing
// entry.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/transparencia-ai/veritas/pkg/config"
	"github.com/transparencia-ai/veritas/pkg/metrics"
)

// Entry is one cached upstream payload.
type Entry struct {
	Fingerprint string
	Value       []byte
	TTLClass    string
	OriginAPI   string
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// Expired reports whether the entry's lifetime has passed.
func (e *Entry) Expired(now time.Time) bool {
	return !e.ExpiresAt.After(now)
}

// Fingerprint computes the stable cache key for an endpoint call: a sha256
// over the endpoint name and the parameters in sorted key order. Identical
// logical requests always map to the same key regardless of map iteration
// order.
func Fingerprint(endpoint string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(endpoint)
	for _, k := range keys {
		b.WriteByte(0)
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	sum := sha256.Sum256([]byte(b.String()))
	return endpoint + ":" + hex.EncodeToString(sum[:16])
}

// Tier is the contract each cache level implements.
type Tier interface {
	Get(ctx context.Context, fingerprint string) (*Entry, error)
	Put(ctx context.Context, entry *Entry) error
	Invalidate(ctx context.Context, prefix string) error
}

// Hierarchy chains the tiers. L2 and L3 are optional; a nil tier is
// skipped, so the hierarchy degrades gracefully when redis is down at boot.
type Hierarchy struct {
	l1  *lruTier
	l2  Tier
	l3  Tier
	cfg config.CacheConfig
	m   *metrics.Metrics
	log *slog.Logger
}

// NewHierarchy assembles the cache from its tiers. l2 and l3 may be nil.
func NewHierarchy(cfg config.CacheConfig, l2, l3 Tier, m *metrics.Metrics, log *slog.Logger) *Hierarchy {
	return &Hierarchy{
		l1:  newLRUTier(cfg.L1Size),
		l2:  l2,
		l3:  l3,
		cfg: cfg,
		m:   m,
		log: log.With("component", "cache"),
	}
}

// Get walks the tiers in order and returns the first unexpired entry,
// populating the tiers above the hit so subsequent reads stay local.
func (h *Hierarchy) Get(ctx context.Context, fingerprint string) (*Entry, bool) {
	now := time.Now()

	if entry, _ := h.l1.Get(ctx, fingerprint); entry != nil && !entry.Expired(now) {
		h.m.CacheHit("l1")
		return entry, true
	}
	h.m.CacheMiss("l1")

	if h.l2 != nil {
		entry, err := h.l2.Get(ctx, fingerprint)
		if err != nil {
			h.log.Warn("L2 read failed", "fingerprint", fingerprint, "error", err)
		} else if entry != nil && !entry.Expired(now) {
			h.m.CacheHit("l2")
			_ = h.l1.Put(ctx, entry)
			return entry, true
		}
		h.m.CacheMiss("l2")
	}

	if h.l3 != nil {
		entry, err := h.l3.Get(ctx, fingerprint)
		if err != nil {
			h.log.Warn("L3 read failed", "fingerprint", fingerprint, "error", err)
		} else if entry != nil && !entry.Expired(now) {
			h.m.CacheHit("l3")
			_ = h.l1.Put(ctx, entry)
			if h.l2 != nil {
				if err := h.l2.Put(ctx, entry); err != nil {
					h.log.Warn("L2 backfill failed", "fingerprint", fingerprint, "error", err)
				}
			}
			return entry, true
		}
		h.m.CacheMiss("l3")
	}

	return nil, false
}

// Put stores the value in every applicable tier. Long-TTL entries
// additionally land in the durable tier. Tier write failures are logged and
// absorbed; caching is best-effort.
func (h *Hierarchy) Put(ctx context.Context, fingerprint string, value []byte, ttlClass, originAPI string) {
	now := time.Now()
	entry := &Entry{
		Fingerprint: fingerprint,
		Value:       value,
		TTLClass:    ttlClass,
		OriginAPI:   originAPI,
		CreatedAt:   now,
		ExpiresAt:   now.Add(h.cfg.TTLFor(ttlClass)),
	}

	_ = h.l1.Put(ctx, entry)
	if h.l2 != nil {
		if err := h.l2.Put(ctx, entry); err != nil {
			h.log.Warn("L2 write failed", "fingerprint", fingerprint, "error", err)
		}
	}
	if h.l3 != nil && ttlClass == "long" {
		if err := h.l3.Put(ctx, entry); err != nil {
			h.log.Warn("L3 write failed", "fingerprint", fingerprint, "error", err)
		}
	}
}

// Invalidate removes every entry whose fingerprint starts with prefix from
// all tiers.
func (h *Hierarchy) Invalidate(ctx context.Context, prefix string) error {
	_ = h.l1.Invalidate(ctx, prefix)
	if h.l2 != nil {
		if err := h.l2.Invalidate(ctx, prefix); err != nil {
			return err
		}
	}
	if h.l3 != nil {
		if err := h.l3.Invalidate(ctx, prefix); err != nil {
			return err
		}
	}
	return nil
}

// Warm promotes the given fingerprints from the lower tiers into L1 ahead
// of anticipated demand. Missing keys are skipped.
func (h *Hierarchy) Warm(ctx context.Context, fingerprints []string) int {
	warmed := 0
	for _, fp := range fingerprints {
		if _, ok := h.l1.peek(fp); ok {
			continue
		}
		if _, ok := h.Get(ctx, fp); ok {
			warmed++
		}
	}
	return warmed
}
