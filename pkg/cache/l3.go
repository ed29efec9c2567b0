package cache

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/transparencia-ai/veritas/ent"
	"github.com/transparencia-ai/veritas/ent/cacheentry"
	"github.com/transparencia-ai/veritas/ent/predicate"
)

// nowFunc is a test seam for expiry checks.
var nowFunc = time.Now

// DurableTier is the Postgres-backed L3 cache for long-TTL entries that
// must survive process restarts.
type DurableTier struct {
	client *ent.Client
}

// NewDurableTier wraps an ent client as the L3 tier.
func NewDurableTier(client *ent.Client) *DurableTier {
	return &DurableTier{client: client}
}

func (d *DurableTier) Get(ctx context.Context, fingerprint string) (*Entry, error) {
	row, err := d.client.CacheEntry.Get(ctx, fingerprint)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("durable cache get: %w", err)
	}
	return &Entry{
		Fingerprint: row.ID,
		Value:       row.Value,
		TTLClass:    row.TTLClass,
		OriginAPI:   row.OriginAPI,
		CreatedAt:   row.CreatedAt,
		ExpiresAt:   row.ExpiresAt,
	}, nil
}

func (d *DurableTier) Put(ctx context.Context, entry *Entry) error {
	existing, err := d.client.CacheEntry.Get(ctx, entry.Fingerprint)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("durable cache lookup: %w", err)
	}

	if existing != nil {
		expiresAt := entry.ExpiresAt
		if existing.ExpiresAt.After(expiresAt) {
			expiresAt = existing.ExpiresAt
		}
		_, err := existing.Update().
			SetValue(entry.Value).
			SetTTLClass(entry.TTLClass).
			SetOriginAPI(entry.OriginAPI).
			SetSizeBytes(len(entry.Value)).
			SetExpiresAt(expiresAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("durable cache update: %w", err)
		}
		return nil
	}

	_, err = d.client.CacheEntry.Create().
		SetID(entry.Fingerprint).
		SetValue(entry.Value).
		SetTTLClass(entry.TTLClass).
		SetOriginAPI(entry.OriginAPI).
		SetSizeBytes(len(entry.Value)).
		SetCreatedAt(entry.CreatedAt).
		SetExpiresAt(entry.ExpiresAt).
		Save(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return fmt.Errorf("durable cache insert: %w", err)
	}
	return nil
}

func (d *DurableTier) Invalidate(ctx context.Context, prefix string) error {
	_, err := d.client.CacheEntry.Delete().
		Where(predicate.CacheEntry(sql.FieldHasPrefix(cacheentry.FieldID, prefix))).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("durable cache invalidate: %w", err)
	}
	return nil
}

// PruneExpired deletes entries past their expiry. Run from the retention
// scheduler job.
func (d *DurableTier) PruneExpired(ctx context.Context) (int, error) {
	n, err := d.client.CacheEntry.Delete().
		Where(cacheentry.ExpiresAtLT(nowFunc())).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("durable cache prune: %w", err)
	}
	return n, nil
}
