// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/transparencia-ai/veritas/ent/cacheentry"
	"github.com/transparencia-ai/veritas/ent/event"
	"github.com/transparencia-ai/veritas/ent/investigation"
	"github.com/transparencia-ai/veritas/ent/scheduledjob"
	"github.com/transparencia-ai/veritas/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cacheentryFields := schema.CacheEntry{}.Fields()
	_ = cacheentryFields
	// cacheentryDescTTLClass is the schema descriptor for ttl_class field.
	cacheentryDescTTLClass := cacheentryFields[2].Descriptor()
	// cacheentry.DefaultTTLClass holds the default value on creation for the ttl_class field.
	cacheentry.DefaultTTLClass = cacheentryDescTTLClass.Default.(string)
	// cacheentryDescSizeBytes is the schema descriptor for size_bytes field.
	cacheentryDescSizeBytes := cacheentryFields[4].Descriptor()
	// cacheentry.DefaultSizeBytes holds the default value on creation for the size_bytes field.
	cacheentry.DefaultSizeBytes = cacheentryDescSizeBytes.Default.(int)
	// cacheentryDescCreatedAt is the schema descriptor for created_at field.
	cacheentryDescCreatedAt := cacheentryFields[5].Descriptor()
	// cacheentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	cacheentry.DefaultCreatedAt = cacheentryDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	investigationFields := schema.Investigation{}.Fields()
	_ = investigationFields
	// investigationDescProgress is the schema descriptor for progress field.
	investigationDescProgress := investigationFields[9].Descriptor()
	// investigation.DefaultProgress holds the default value on creation for the progress field.
	investigation.DefaultProgress = investigationDescProgress.Default.(float64)
	// investigationDescRecordsAnalyzed is the schema descriptor for records_analyzed field.
	investigationDescRecordsAnalyzed := investigationFields[13].Descriptor()
	// investigation.DefaultRecordsAnalyzed holds the default value on creation for the records_analyzed field.
	investigation.DefaultRecordsAnalyzed = investigationDescRecordsAnalyzed.Default.(int)
	// investigationDescFindingsCount is the schema descriptor for findings_count field.
	investigationDescFindingsCount := investigationFields[14].Descriptor()
	// investigation.DefaultFindingsCount holds the default value on creation for the findings_count field.
	investigation.DefaultFindingsCount = investigationDescFindingsCount.Default.(int)
	// investigationDescCreatedAt is the schema descriptor for created_at field.
	investigationDescCreatedAt := investigationFields[19].Descriptor()
	// investigation.DefaultCreatedAt holds the default value on creation for the created_at field.
	investigation.DefaultCreatedAt = investigationDescCreatedAt.Default.(func() time.Time)
	// investigationDescUpdatedAt is the schema descriptor for updated_at field.
	investigationDescUpdatedAt := investigationFields[20].Descriptor()
	// investigation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	investigation.DefaultUpdatedAt = investigationDescUpdatedAt.Default.(func() time.Time)
	// investigation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	investigation.UpdateDefaultUpdatedAt = investigationDescUpdatedAt.UpdateDefault.(func() time.Time)
	scheduledjobFields := schema.ScheduledJob{}.Fields()
	_ = scheduledjobFields
	// scheduledjobDescEnabled is the schema descriptor for enabled field.
	scheduledjobDescEnabled := scheduledjobFields[4].Descriptor()
	// scheduledjob.DefaultEnabled holds the default value on creation for the enabled field.
	scheduledjob.DefaultEnabled = scheduledjobDescEnabled.Default.(bool)
	// scheduledjobDescConsecutiveFailures is the schema descriptor for consecutive_failures field.
	scheduledjobDescConsecutiveFailures := scheduledjobFields[8].Descriptor()
	// scheduledjob.DefaultConsecutiveFailures holds the default value on creation for the consecutive_failures field.
	scheduledjob.DefaultConsecutiveFailures = scheduledjobDescConsecutiveFailures.Default.(int)
	// scheduledjobDescCreatedAt is the schema descriptor for created_at field.
	scheduledjobDescCreatedAt := scheduledjobFields[9].Descriptor()
	// scheduledjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	scheduledjob.DefaultCreatedAt = scheduledjobDescCreatedAt.Default.(func() time.Time)
}
