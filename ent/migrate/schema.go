// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CacheEntriesColumns holds the columns for the "cache_entries" table.
	CacheEntriesColumns = []*schema.Column{
		{Name: "fingerprint", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeBytes},
		{Name: "ttl_class", Type: field.TypeString, Default: "long"},
		{Name: "origin_api", Type: field.TypeString},
		{Name: "size_bytes", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// CacheEntriesTable holds the schema information for the "cache_entries" table.
	CacheEntriesTable = &schema.Table{
		Name:       "cache_entries",
		Columns:    CacheEntriesColumns,
		PrimaryKey: []*schema.Column{CacheEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cacheentry_expires_at",
				Unique:  false,
				Columns: []*schema.Column{CacheEntriesColumns[6]},
			},
			{
				Name:    "cacheentry_origin_api",
				Unique:  false,
				Columns: []*schema.Column{CacheEntriesColumns[3]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "investigation_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_investigations_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{InvestigationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_investigation_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
		},
	}
	// InvestigationsColumns holds the columns for the "investigations" table.
	InvestigationsColumns = []*schema.Column{
		{Name: "investigation_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "query_text", Type: field.TypeString, Size: 2147483647},
		{Name: "data_source", Type: field.TypeString, Nullable: true},
		{Name: "filters", Type: field.TypeJSON, Nullable: true},
		{Name: "requested_worker_kinds", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "current_phase", Type: field.TypeString, Nullable: true},
		{Name: "progress", Type: field.TypeFloat64, Default: 0},
		{Name: "findings", Type: field.TypeJSON, Nullable: true},
		{Name: "summary_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "records_analyzed", Type: field.TypeInt, Default: 0},
		{Name: "findings_count", Type: field.TypeInt, Default: 0},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "correlation_id", Type: field.TypeString},
		{Name: "investigation_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// InvestigationsTable holds the schema information for the "investigations" table.
	InvestigationsTable = &schema.Table{
		Name:       "investigations",
		Columns:    InvestigationsColumns,
		PrimaryKey: []*schema.Column{InvestigationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "investigation_status",
				Unique:  false,
				Columns: []*schema.Column{InvestigationsColumns[7]},
			},
			{
				Name:    "investigation_user_id",
				Unique:  false,
				Columns: []*schema.Column{InvestigationsColumns[1]},
			},
			{
				Name:    "investigation_correlation_id",
				Unique:  false,
				Columns: []*schema.Column{InvestigationsColumns[17]},
			},
			{
				Name:    "investigation_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{InvestigationsColumns[7], InvestigationsColumns[19]},
			},
			{
				Name:    "investigation_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{InvestigationsColumns[1], InvestigationsColumns[7]},
			},
			{
				Name:    "investigation_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{InvestigationsColumns[7], InvestigationsColumns[24]},
			},
			{
				Name:    "investigation_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{InvestigationsColumns[25]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// ScheduledJobsColumns holds the columns for the "scheduled_jobs" table.
	ScheduledJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "interval_seconds", Type: field.TypeInt64},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"critical", "high", "default", "low", "background"}, Default: "default"},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "params", Type: field.TypeJSON, Nullable: true},
		{Name: "last_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "next_run_at", Type: field.TypeTime},
		{Name: "consecutive_failures", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ScheduledJobsTable holds the schema information for the "scheduled_jobs" table.
	ScheduledJobsTable = &schema.Table{
		Name:       "scheduled_jobs",
		Columns:    ScheduledJobsColumns,
		PrimaryKey: []*schema.Column{ScheduledJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scheduledjob_enabled_next_run_at",
				Unique:  false,
				Columns: []*schema.Column{ScheduledJobsColumns[4], ScheduledJobsColumns[7]},
			},
			{
				Name:    "scheduledjob_kind",
				Unique:  false,
				Columns: []*schema.Column{ScheduledJobsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CacheEntriesTable,
		EventsTable,
		InvestigationsTable,
		ScheduledJobsTable,
	}
)

func init() {
	EventsTable.ForeignKeys[0].RefTable = InvestigationsTable
}
