package cache

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transparencia-ai/veritas/pkg/config"
	"github.com/transparencia-ai/veritas/pkg/metrics"
)

func testConfig() config.CacheConfig {
	return config.CacheConfig{
		L1Size:    8,
		TTLShort:  5 * time.Minute,
		TTLMedium: time.Hour,
		TTLLong:   24 * time.Hour,
	}
}

func testHierarchy(t *testing.T, l2, l3 Tier) *Hierarchy {
	t.Helper()
	m := metrics.New(prometheus.NewRegistry())
	return NewHierarchy(testConfig(), l2, l3, m, slog.Default())
}

func redisTierForTest(t *testing.T) (Tier, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisTier(rdb), mr
}

func TestFingerprint(t *testing.T) {
	t.Run("stable across param order", func(t *testing.T) {
		a := Fingerprint("transparencia_contratos", map[string]string{"ano": "2024", "uf": "MG"})
		b := Fingerprint("transparencia_contratos", map[string]string{"uf": "MG", "ano": "2024"})
		assert.Equal(t, a, b)
	})

	t.Run("endpoint prefix allows invalidation by endpoint", func(t *testing.T) {
		fp := Fingerprint("ibge_municipios", nil)
		assert.Contains(t, fp, "ibge_municipios:")
	})

	t.Run("different params differ", func(t *testing.T) {
		a := Fingerprint("e", map[string]string{"ano": "2023"})
		b := Fingerprint("e", map[string]string{"ano": "2024"})
		assert.NotEqual(t, a, b)
	})
}

func TestLRUTier(t *testing.T) {
	ctx := context.Background()

	t.Run("evicts least recently used at capacity", func(t *testing.T) {
		l := newLRUTier(2)
		now := time.Now()
		exp := now.Add(time.Hour)

		require.NoError(t, l.Put(ctx, &Entry{Fingerprint: "a", ExpiresAt: exp}))
		require.NoError(t, l.Put(ctx, &Entry{Fingerprint: "b", ExpiresAt: exp}))

		// Touch "a" so "b" becomes the eviction candidate.
		_, err := l.Get(ctx, "a")
		require.NoError(t, err)

		require.NoError(t, l.Put(ctx, &Entry{Fingerprint: "c", ExpiresAt: exp}))
		assert.Equal(t, 2, l.len())

		got, _ := l.Get(ctx, "b")
		assert.Nil(t, got)
		got, _ = l.Get(ctx, "a")
		assert.NotNil(t, got)
	})

	t.Run("put never shrinks expiry", func(t *testing.T) {
		l := newLRUTier(8)
		far := time.Now().Add(24 * time.Hour)
		near := time.Now().Add(time.Minute)

		require.NoError(t, l.Put(ctx, &Entry{Fingerprint: "k", Value: []byte("v1"), ExpiresAt: far}))
		require.NoError(t, l.Put(ctx, &Entry{Fingerprint: "k", Value: []byte("v2"), ExpiresAt: near}))

		got, err := l.Get(ctx, "k")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, []byte("v2"), got.Value)
		assert.Equal(t, far, got.ExpiresAt)
	})

	t.Run("invalidate by prefix", func(t *testing.T) {
		l := newLRUTier(8)
		exp := time.Now().Add(time.Hour)
		require.NoError(t, l.Put(ctx, &Entry{Fingerprint: "ep1:aaa", ExpiresAt: exp}))
		require.NoError(t, l.Put(ctx, &Entry{Fingerprint: "ep1:bbb", ExpiresAt: exp}))
		require.NoError(t, l.Put(ctx, &Entry{Fingerprint: "ep2:ccc", ExpiresAt: exp}))

		require.NoError(t, l.Invalidate(ctx, "ep1:"))
		assert.Equal(t, 1, l.len())
	})
}

func TestRedisTier(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		l2, _ := redisTierForTest(t)
		entry := &Entry{
			Fingerprint: "ep:fp1",
			Value:       []byte(`{"data":[1,2,3]}`),
			TTLClass:    "medium",
			OriginAPI:   "ep",
			CreatedAt:   time.Now().UTC(),
			ExpiresAt:   time.Now().Add(time.Hour).UTC(),
		}
		require.NoError(t, l2.Put(ctx, entry))

		got, err := l2.Get(ctx, "ep:fp1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, entry.Value, got.Value)
		assert.Equal(t, "medium", got.TTLClass)
	})

	t.Run("missing key returns nil without error", func(t *testing.T) {
		l2, _ := redisTierForTest(t)
		got, err := l2.Get(ctx, "absent")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("expired entries are gone", func(t *testing.T) {
		l2, mr := redisTierForTest(t)
		entry := &Entry{
			Fingerprint: "ep:fp2",
			Value:       []byte("v"),
			ExpiresAt:   time.Now().Add(time.Minute),
		}
		require.NoError(t, l2.Put(ctx, entry))

		mr.FastForward(2 * time.Minute)

		got, err := l2.Get(ctx, "ep:fp2")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("invalidate by prefix", func(t *testing.T) {
		l2, _ := redisTierForTest(t)
		exp := time.Now().Add(time.Hour)
		require.NoError(t, l2.Put(ctx, &Entry{Fingerprint: "ep1:a", Value: []byte("1"), ExpiresAt: exp}))
		require.NoError(t, l2.Put(ctx, &Entry{Fingerprint: "ep1:b", Value: []byte("2"), ExpiresAt: exp}))
		require.NoError(t, l2.Put(ctx, &Entry{Fingerprint: "ep2:c", Value: []byte("3"), ExpiresAt: exp}))

		require.NoError(t, l2.Invalidate(ctx, "ep1:"))

		got, err := l2.Get(ctx, "ep1:a")
		require.NoError(t, err)
		assert.Nil(t, got)
		got, err = l2.Get(ctx, "ep2:c")
		require.NoError(t, err)
		assert.NotNil(t, got)
	})
}

func TestHierarchy(t *testing.T) {
	ctx := context.Background()

	t.Run("L2 hit populates L1", func(t *testing.T) {
		l2, _ := redisTierForTest(t)
		h := testHierarchy(t, l2, nil)

		require.NoError(t, l2.Put(ctx, &Entry{
			Fingerprint: "ep:x",
			Value:       []byte("from-l2"),
			ExpiresAt:   time.Now().Add(time.Hour),
		}))

		got, ok := h.Get(ctx, "ep:x")
		require.True(t, ok)
		assert.Equal(t, []byte("from-l2"), got.Value)

		// Now present in L1.
		local, _ := h.l1.Get(ctx, "ep:x")
		require.NotNil(t, local)
	})

	t.Run("put reaches both volatile tiers", func(t *testing.T) {
		l2, _ := redisTierForTest(t)
		h := testHierarchy(t, l2, nil)

		h.Put(ctx, "ep:y", []byte("payload"), "medium", "ep")

		got, err := l2.Get(ctx, "ep:y")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "ep", got.OriginAPI)
	})

	t.Run("miss returns false", func(t *testing.T) {
		h := testHierarchy(t, nil, nil)
		_, ok := h.Get(ctx, "never-stored")
		assert.False(t, ok)
	})

	t.Run("expired L1 entry is not served", func(t *testing.T) {
		h := testHierarchy(t, nil, nil)
		require.NoError(t, h.l1.Put(ctx, &Entry{
			Fingerprint: "ep:z",
			Value:       []byte("stale"),
			ExpiresAt:   time.Now().Add(-time.Minute),
		}))
		_, ok := h.Get(ctx, "ep:z")
		assert.False(t, ok)
	})

	t.Run("warm promotes from L2", func(t *testing.T) {
		l2, _ := redisTierForTest(t)
		h := testHierarchy(t, l2, nil)

		require.NoError(t, l2.Put(ctx, &Entry{
			Fingerprint: "ep:w",
			Value:       []byte("warmable"),
			ExpiresAt:   time.Now().Add(time.Hour),
		}))

		warmed := h.Warm(ctx, []string{"ep:w", "ep:absent"})
		assert.Equal(t, 1, warmed)

		local, _ := h.l1.Get(ctx, "ep:w")
		assert.NotNil(t, local)
	})
}
