package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Investigation holds the schema definition for the Investigation entity:
// the durable record of one query's execution through the worker pipeline.
type Investigation struct {
	ent.Schema
}

// Fields of the Investigation.
func (Investigation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("investigation_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Comment("Owning principal; row-level access is enforced against this"),
		field.String("session_id").
			Optional().
			Nillable(),
		field.Text("query_text").
			Comment("Original natural-language query (full-text searchable)"),
		field.String("data_source").
			Optional().
			Comment("Symbolic endpoint id the query targets, if any"),
		field.JSON("filters", map[string]interface{}{}).
			Optional(),
		field.JSON("requested_worker_kinds", []string{}).
			Optional(),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed", "cancelled").
			Default("pending"),
		field.String("current_phase").
			Optional().
			Comment("Free-text phase label, typically the running step id"),
		field.Float("progress").
			Default(0).
			Comment("Monotonically non-decreasing in [0,1]; 1.0 iff completed"),
		field.JSON("findings", []map[string]interface{}{}).
			Optional(),
		field.Text("summary_text").
			Optional().
			Nillable(),
		field.Float("confidence").
			Optional().
			Nillable(),
		field.Int("records_analyzed").
			Default(0),
		field.Int("findings_count").
			Default(0),
		field.String("error_kind").
			Optional().
			Nillable().
			Comment("Set iff status=failed"),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.String("correlation_id").
			Comment("Propagated through every downstream call and log line"),
		field.JSON("investigation_metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a queue worker claimed the investigation"),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set iff status is terminal"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the Investigation.
func (Investigation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Investigation.
func (Investigation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("user_id"),
		index.Fields("correlation_id"),

		index.Fields("status", "created_at"),
		index.Fields("user_id", "status"),
		index.Fields("status", "last_heartbeat_at"),

		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
