// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CacheEntry is the predicate function for cacheentry builders.
type CacheEntry func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Investigation is the predicate function for investigation builders.
type Investigation func(*sql.Selector)

// ScheduledJob is the predicate function for scheduledjob builders.
type ScheduledJob func(*sql.Selector)
