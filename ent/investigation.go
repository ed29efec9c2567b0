// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/transparencia-ai/veritas/ent/investigation"
)

// Investigation is the model entity for the Investigation schema.
type Investigation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owning principal; row-level access is enforced against this
	UserID string `json:"user_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID *string `json:"session_id,omitempty"`
	// Original natural-language query (full-text searchable)
	QueryText string `json:"query_text,omitempty"`
	// Symbolic endpoint id the query targets, if any
	DataSource string `json:"data_source,omitempty"`
	// Filters holds the value of the "filters" field.
	Filters map[string]interface{} `json:"filters,omitempty"`
	// RequestedWorkerKinds holds the value of the "requested_worker_kinds" field.
	RequestedWorkerKinds []string `json:"requested_worker_kinds,omitempty"`
	// Status holds the value of the "status" field.
	Status investigation.Status `json:"status,omitempty"`
	// Free-text phase label, typically the running step id
	CurrentPhase string `json:"current_phase,omitempty"`
	// Monotonically non-decreasing in [0,1]; 1.0 iff completed
	Progress float64 `json:"progress,omitempty"`
	// Findings holds the value of the "findings" field.
	Findings []map[string]interface{} `json:"findings,omitempty"`
	// SummaryText holds the value of the "summary_text" field.
	SummaryText *string `json:"summary_text,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float64 `json:"confidence,omitempty"`
	// RecordsAnalyzed holds the value of the "records_analyzed" field.
	RecordsAnalyzed int `json:"records_analyzed,omitempty"`
	// FindingsCount holds the value of the "findings_count" field.
	FindingsCount int `json:"findings_count,omitempty"`
	// Set iff status=failed
	ErrorKind *string `json:"error_kind,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Propagated through every downstream call and log line
	CorrelationID string `json:"correlation_id,omitempty"`
	// InvestigationMetadata holds the value of the "investigation_metadata" field.
	InvestigationMetadata map[string]interface{} `json:"investigation_metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// When a queue worker claimed the investigation
	StartedAt *time.Time `json:"started_at,omitempty"`
	// Set iff status is terminal
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvestigationQuery when eager-loading is set.
	Edges        InvestigationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvestigationEdges holds the relations/edges for other nodes in the graph.
type InvestigationEdges struct {
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e InvestigationEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[0] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Investigation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case investigation.FieldFilters, investigation.FieldRequestedWorkerKinds, investigation.FieldFindings, investigation.FieldInvestigationMetadata:
			values[i] = new([]byte)
		case investigation.FieldProgress, investigation.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case investigation.FieldRecordsAnalyzed, investigation.FieldFindingsCount:
			values[i] = new(sql.NullInt64)
		case investigation.FieldID, investigation.FieldUserID, investigation.FieldSessionID, investigation.FieldQueryText, investigation.FieldDataSource, investigation.FieldStatus, investigation.FieldCurrentPhase, investigation.FieldSummaryText, investigation.FieldErrorKind, investigation.FieldErrorMessage, investigation.FieldCorrelationID, investigation.FieldPodID:
			values[i] = new(sql.NullString)
		case investigation.FieldCreatedAt, investigation.FieldUpdatedAt, investigation.FieldStartedAt, investigation.FieldCompletedAt, investigation.FieldLastHeartbeatAt, investigation.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Investigation fields.
func (_m *Investigation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case investigation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case investigation.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case investigation.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = new(string)
				*_m.SessionID = value.String
			}
		case investigation.FieldQueryText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field query_text", values[i])
			} else if value.Valid {
				_m.QueryText = value.String
			}
		case investigation.FieldDataSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field data_source", values[i])
			} else if value.Valid {
				_m.DataSource = value.String
			}
		case investigation.FieldFilters:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field filters", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Filters); err != nil {
					return fmt.Errorf("unmarshal field filters: %w", err)
				}
			}
		case investigation.FieldRequestedWorkerKinds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field requested_worker_kinds", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RequestedWorkerKinds); err != nil {
					return fmt.Errorf("unmarshal field requested_worker_kinds: %w", err)
				}
			}
		case investigation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = investigation.Status(value.String)
			}
		case investigation.FieldCurrentPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_phase", values[i])
			} else if value.Valid {
				_m.CurrentPhase = value.String
			}
		case investigation.FieldProgress:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field progress", values[i])
			} else if value.Valid {
				_m.Progress = value.Float64
			}
		case investigation.FieldFindings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field findings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Findings); err != nil {
					return fmt.Errorf("unmarshal field findings: %w", err)
				}
			}
		case investigation.FieldSummaryText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary_text", values[i])
			} else if value.Valid {
				_m.SummaryText = new(string)
				*_m.SummaryText = value.String
			}
		case investigation.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float64)
				*_m.Confidence = value.Float64
			}
		case investigation.FieldRecordsAnalyzed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field records_analyzed", values[i])
			} else if value.Valid {
				_m.RecordsAnalyzed = int(value.Int64)
			}
		case investigation.FieldFindingsCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field findings_count", values[i])
			} else if value.Valid {
				_m.FindingsCount = int(value.Int64)
			}
		case investigation.FieldErrorKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_kind", values[i])
			} else if value.Valid {
				_m.ErrorKind = new(string)
				*_m.ErrorKind = value.String
			}
		case investigation.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case investigation.FieldCorrelationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correlation_id", values[i])
			} else if value.Valid {
				_m.CorrelationID = value.String
			}
		case investigation.FieldInvestigationMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field investigation_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InvestigationMetadata); err != nil {
					return fmt.Errorf("unmarshal field investigation_metadata: %w", err)
				}
			}
		case investigation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case investigation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case investigation.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case investigation.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case investigation.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case investigation.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case investigation.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Investigation.
// This includes values selected through modifiers, order, etc.
func (_m *Investigation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvents queries the "events" edge of the Investigation entity.
func (_m *Investigation) QueryEvents() *EventQuery {
	return NewInvestigationClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this Investigation.
// Note that you need to call Investigation.Unwrap() before calling this method if this Investigation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Investigation) Update() *InvestigationUpdateOne {
	return NewInvestigationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Investigation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Investigation) Unwrap() *Investigation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Investigation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Investigation) String() string {
	var builder strings.Builder
	builder.WriteString("Investigation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	if v := _m.SessionID; v != nil {
		builder.WriteString("session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("query_text=")
	builder.WriteString(_m.QueryText)
	builder.WriteString(", ")
	builder.WriteString("data_source=")
	builder.WriteString(_m.DataSource)
	builder.WriteString(", ")
	builder.WriteString("filters=")
	builder.WriteString(fmt.Sprintf("%v", _m.Filters))
	builder.WriteString(", ")
	builder.WriteString("requested_worker_kinds=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestedWorkerKinds))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("current_phase=")
	builder.WriteString(_m.CurrentPhase)
	builder.WriteString(", ")
	builder.WriteString("progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.Progress))
	builder.WriteString(", ")
	builder.WriteString("findings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Findings))
	builder.WriteString(", ")
	if v := _m.SummaryText; v != nil {
		builder.WriteString("summary_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("records_analyzed=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecordsAnalyzed))
	builder.WriteString(", ")
	builder.WriteString("findings_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FindingsCount))
	builder.WriteString(", ")
	if v := _m.ErrorKind; v != nil {
		builder.WriteString("error_kind=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("correlation_id=")
	builder.WriteString(_m.CorrelationID)
	builder.WriteString(", ")
	builder.WriteString("investigation_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.InvestigationMetadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Investigations is a parsable slice of Investigation.
type Investigations []*Investigation
