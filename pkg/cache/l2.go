package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "veritas:cache:"

// redisTier is the shared L2 cache. Entries are stored as JSON under
// prefixed keys with a redis-side TTL matching the entry expiry.
type redisTier struct {
	rdb *redis.Client
}

// NewRedisTier wraps a redis client as the L2 tier.
func NewRedisTier(rdb *redis.Client) Tier {
	return &redisTier{rdb: rdb}
}

func (r *redisTier) key(fingerprint string) string {
	return redisKeyPrefix + fingerprint
}

func (r *redisTier) Get(ctx context.Context, fingerprint string) (*Entry, error) {
	raw, err := r.rdb.Get(ctx, r.key(fingerprint)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		// A corrupt entry is dropped rather than served.
		_ = r.rdb.Del(ctx, r.key(fingerprint)).Err()
		return nil, fmt.Errorf("redis entry decode: %w", err)
	}
	return &entry, nil
}

func (r *redisTier) Put(ctx context.Context, entry *Entry) error {
	ttl := time.Until(entry.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	// An overwrite keeps the longer of the two remaining lifetimes.
	store := entry
	if existingTTL, err := r.rdb.PTTL(ctx, r.key(entry.Fingerprint)).Result(); err == nil && existingTTL > ttl {
		clone := *entry
		clone.ExpiresAt = time.Now().Add(existingTTL)
		store = &clone
		ttl = existingTTL
	}

	raw, err := json.Marshal(store)
	if err != nil {
		return fmt.Errorf("redis entry encode: %w", err)
	}
	if err := r.rdb.Set(ctx, r.key(entry.Fingerprint), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *redisTier) Invalidate(ctx context.Context, prefix string) error {
	iter := r.rdb.Scan(ctx, 0, r.key(prefix)+"*", 200).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
