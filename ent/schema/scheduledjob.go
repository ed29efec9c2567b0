package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScheduledJob holds the schema definition for the ScheduledJob entity:
// one autonomous job on the scheduler's timetable. The leader replica
// fires due jobs; next_run_at only ever moves forward.
type ScheduledJob struct {
	ent.Schema
}

// Fields of the ScheduledJob.
func (ScheduledJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("kind").
			Comment("Job handler key, e.g. scan_new_data"),
		field.Int64("interval_seconds").
			Comment("Fixed firing interval"),
		field.Enum("priority").
			Values("critical", "high", "default", "low", "background").
			Default("default"),
		field.Bool("enabled").
			Default(true),
		field.JSON("params", map[string]interface{}{}).
			Optional(),
		field.Time("last_run_at").
			Optional().
			Nillable(),
		field.Time("next_run_at"),
		field.Int("consecutive_failures").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ScheduledJob.
func (ScheduledJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enabled", "next_run_at"),
		index.Fields("kind"),
	}
}
