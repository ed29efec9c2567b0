package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/transparencia-ai/veritas/test/database"
)

func TestDurableTier(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test requires Docker")
	}
	client := testdb.NewTestClient(t)
	l3 := NewDurableTier(client.Client)
	ctx := context.Background()

	t.Run("round trip records size", func(t *testing.T) {
		entry := &Entry{
			Fingerprint: "ep1:aaa",
			Value:       []byte(`{"data":[1,2,3]}`),
			TTLClass:    "long",
			OriginAPI:   "ep1",
			CreatedAt:   time.Now().UTC(),
			ExpiresAt:   time.Now().Add(time.Hour).UTC(),
		}
		require.NoError(t, l3.Put(ctx, entry))

		got, err := l3.Get(ctx, "ep1:aaa")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, entry.Value, got.Value)

		row, err := client.CacheEntry.Get(ctx, "ep1:aaa")
		require.NoError(t, err)
		assert.Equal(t, len(entry.Value), row.SizeBytes)
	})

	t.Run("put never shrinks expiry", func(t *testing.T) {
		far := time.Now().Add(24 * time.Hour).UTC()
		near := time.Now().Add(time.Minute).UTC()
		require.NoError(t, l3.Put(ctx, &Entry{
			Fingerprint: "ep1:bbb", Value: []byte("v1"), ExpiresAt: far, CreatedAt: time.Now().UTC(),
		}))
		require.NoError(t, l3.Put(ctx, &Entry{
			Fingerprint: "ep1:bbb", Value: []byte("v2"), ExpiresAt: near, CreatedAt: time.Now().UTC(),
		}))

		got, err := l3.Get(ctx, "ep1:bbb")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, []byte("v2"), got.Value)
		assert.WithinDuration(t, far, got.ExpiresAt, time.Second)
	})

	t.Run("invalidate by endpoint prefix", func(t *testing.T) {
		exp := time.Now().Add(time.Hour).UTC()
		require.NoError(t, l3.Put(ctx, &Entry{Fingerprint: "ep2:ccc", Value: []byte("1"), ExpiresAt: exp, CreatedAt: time.Now().UTC()}))
		require.NoError(t, l3.Put(ctx, &Entry{Fingerprint: "ep2:ddd", Value: []byte("2"), ExpiresAt: exp, CreatedAt: time.Now().UTC()}))

		require.NoError(t, l3.Invalidate(ctx, "ep2:"))

		got, err := l3.Get(ctx, "ep2:ccc")
		require.NoError(t, err)
		assert.Nil(t, got)
		// Other endpoints untouched.
		got, err = l3.Get(ctx, "ep1:aaa")
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("prune deletes only expired rows", func(t *testing.T) {
		require.NoError(t, l3.Put(ctx, &Entry{
			Fingerprint: "ep3:eee",
			Value:       []byte("old"),
			CreatedAt:   time.Now().Add(-2 * time.Hour).UTC(),
			ExpiresAt:   time.Now().Add(-time.Hour).UTC(),
		}))

		n, err := l3.PruneExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		got, err := l3.Get(ctx, "ep1:aaa")
		require.NoError(t, err)
		assert.NotNil(t, got)
	})
}
