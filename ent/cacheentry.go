// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/transparencia-ai/veritas/ent/cacheentry"
)

// CacheEntry is the model entity for the CacheEntry schema.
type CacheEntry struct {
	config `json:"-"`
	// ID of the ent.
	// Stable hash over (endpoint, ordered params)
	ID string `json:"id,omitempty"`
	// Value holds the value of the "value" field.
	Value []byte `json:"value,omitempty"`
	// TTLClass holds the value of the "ttl_class" field.
	TTLClass string `json:"ttl_class,omitempty"`
	// Symbolic endpoint id that produced the payload
	OriginAPI string `json:"origin_api,omitempty"`
	// SizeBytes holds the value of the "size_bytes" field.
	SizeBytes int `json:"size_bytes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CacheEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cacheentry.FieldValue:
			values[i] = new([]byte)
		case cacheentry.FieldSizeBytes:
			values[i] = new(sql.NullInt64)
		case cacheentry.FieldID, cacheentry.FieldTTLClass, cacheentry.FieldOriginAPI:
			values[i] = new(sql.NullString)
		case cacheentry.FieldCreatedAt, cacheentry.FieldExpiresAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CacheEntry fields.
func (_m *CacheEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cacheentry.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case cacheentry.FieldValue:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value != nil {
				_m.Value = *value
			}
		case cacheentry.FieldTTLClass:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ttl_class", values[i])
			} else if value.Valid {
				_m.TTLClass = value.String
			}
		case cacheentry.FieldOriginAPI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field origin_api", values[i])
			} else if value.Valid {
				_m.OriginAPI = value.String
			}
		case cacheentry.FieldSizeBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field size_bytes", values[i])
			} else if value.Valid {
				_m.SizeBytes = int(value.Int64)
			}
		case cacheentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case cacheentry.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the CacheEntry.
// This includes values selected through modifiers, order, etc.
func (_m *CacheEntry) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CacheEntry.
// Note that you need to call CacheEntry.Unwrap() before calling this method if this CacheEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CacheEntry) Update() *CacheEntryUpdateOne {
	return NewCacheEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CacheEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CacheEntry) Unwrap() *CacheEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CacheEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CacheEntry) String() string {
	var builder strings.Builder
	builder.WriteString("CacheEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("value=")
	builder.WriteString(fmt.Sprintf("%v", _m.Value))
	builder.WriteString(", ")
	builder.WriteString("ttl_class=")
	builder.WriteString(_m.TTLClass)
	builder.WriteString(", ")
	builder.WriteString("origin_api=")
	builder.WriteString(_m.OriginAPI)
	builder.WriteString(", ")
	builder.WriteString("size_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.SizeBytes))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CacheEntries is a parsable slice of CacheEntry.
type CacheEntries []*CacheEntry
