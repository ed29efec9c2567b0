// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the event type in the database.
	Label = "event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldInvestigationID holds the string denoting the investigation_id field in the database.
	FieldInvestigationID = "investigation_id"
	// FieldChannel holds the string denoting the channel field in the database.
	FieldChannel = "channel"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeInvestigation holds the string denoting the investigation edge name in mutations.
	EdgeInvestigation = "investigation"
	// InvestigationFieldID holds the string denoting the ID field of the Investigation.
	InvestigationFieldID = "investigation_id"
	// Table holds the table name of the event in the database.
	Table = "events"
	// InvestigationTable is the table that holds the investigation relation/edge.
	InvestigationTable = "events"
	// InvestigationInverseTable is the table name for the Investigation entity.
	// It exists in this package in order to avoid circular dependency with the "investigation" package.
	InvestigationInverseTable = "investigations"
	// InvestigationColumn is the table column denoting the investigation relation/edge.
	InvestigationColumn = "investigation_id"
)

// Columns holds all SQL columns for event fields.
var Columns = []string{
	FieldID,
	FieldInvestigationID,
	FieldChannel,
	FieldPayload,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Event queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByInvestigationID orders the results by the investigation_id field.
func ByInvestigationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvestigationID, opts...).ToFunc()
}

// ByChannel orders the results by the channel field.
func ByChannel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannel, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByInvestigationField orders the results by investigation field.
func ByInvestigationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInvestigationStep(), sql.OrderByField(field, opts...))
	}
}
func newInvestigationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InvestigationInverseTable, InvestigationFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, InvestigationTable, InvestigationColumn),
	)
}
