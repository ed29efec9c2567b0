// Code generated by ent, DO NOT EDIT.

package cacheentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the cacheentry type in the database.
	Label = "cache_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "fingerprint"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldTTLClass holds the string denoting the ttl_class field in the database.
	FieldTTLClass = "ttl_class"
	// FieldOriginAPI holds the string denoting the origin_api field in the database.
	FieldOriginAPI = "origin_api"
	// FieldSizeBytes holds the string denoting the size_bytes field in the database.
	FieldSizeBytes = "size_bytes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// Table holds the table name of the cacheentry in the database.
	Table = "cache_entries"
)

// Columns holds all SQL columns for cacheentry fields.
var Columns = []string{
	FieldID,
	FieldValue,
	FieldTTLClass,
	FieldOriginAPI,
	FieldSizeBytes,
	FieldCreatedAt,
	FieldExpiresAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTTLClass holds the default value on creation for the "ttl_class" field.
	DefaultTTLClass string
	// DefaultSizeBytes holds the default value on creation for the "size_bytes" field.
	DefaultSizeBytes int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the CacheEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTTLClass orders the results by the ttl_class field.
func ByTTLClass(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTTLClass, opts...).ToFunc()
}

// ByOriginAPI orders the results by the origin_api field.
func ByOriginAPI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginAPI, opts...).ToFunc()
}

// BySizeBytes orders the results by the size_bytes field.
func BySizeBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSizeBytes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}
