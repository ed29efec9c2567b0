package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CacheEntry holds the schema definition for the CacheEntry entity: the
// durable L3 cache tier. Only long-TTL-class payloads land here; they must
// survive process restarts.
type CacheEntry struct {
	ent.Schema
}

// Fields of the CacheEntry.
func (CacheEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("fingerprint").
			Unique().
			Immutable().
			Comment("Stable hash over (endpoint, ordered params)"),
		field.Bytes("value"),
		field.String("ttl_class").
			Default("long"),
		field.String("origin_api").
			Comment("Symbolic endpoint id that produced the payload"),
		field.Int("size_bytes").
			Default(0),
		field.Time("created_at").
			Default(time.Now),
		field.Time("expires_at"),
	}
}

// Indexes of the CacheEntry.
func (CacheEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("expires_at"),
		index.Fields("origin_api"),
	}
}
