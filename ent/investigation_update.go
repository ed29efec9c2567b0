// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/transparencia-ai/veritas/ent/event"
	"github.com/transparencia-ai/veritas/ent/investigation"
	"github.com/transparencia-ai/veritas/ent/predicate"
)

// InvestigationUpdate is the builder for updating Investigation entities.
type InvestigationUpdate struct {
	config
	hooks    []Hook
	mutation *InvestigationMutation
}

// Where appends a list predicates to the InvestigationUpdate builder.
func (_u *InvestigationUpdate) Where(ps ...predicate.Investigation) *InvestigationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *InvestigationUpdate) SetUserID(v string) *InvestigationUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableUserID(v *string) *InvestigationUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *InvestigationUpdate) SetSessionID(v string) *InvestigationUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableSessionID(v *string) *InvestigationUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *InvestigationUpdate) ClearSessionID() *InvestigationUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetQueryText sets the "query_text" field.
func (_u *InvestigationUpdate) SetQueryText(v string) *InvestigationUpdate {
	_u.mutation.SetQueryText(v)
	return _u
}

// SetNillableQueryText sets the "query_text" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableQueryText(v *string) *InvestigationUpdate {
	if v != nil {
		_u.SetQueryText(*v)
	}
	return _u
}

// SetDataSource sets the "data_source" field.
func (_u *InvestigationUpdate) SetDataSource(v string) *InvestigationUpdate {
	_u.mutation.SetDataSource(v)
	return _u
}

// SetNillableDataSource sets the "data_source" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableDataSource(v *string) *InvestigationUpdate {
	if v != nil {
		_u.SetDataSource(*v)
	}
	return _u
}

// ClearDataSource clears the value of the "data_source" field.
func (_u *InvestigationUpdate) ClearDataSource() *InvestigationUpdate {
	_u.mutation.ClearDataSource()
	return _u
}

// SetFilters sets the "filters" field.
func (_u *InvestigationUpdate) SetFilters(v map[string]interface{}) *InvestigationUpdate {
	_u.mutation.SetFilters(v)
	return _u
}

// ClearFilters clears the value of the "filters" field.
func (_u *InvestigationUpdate) ClearFilters() *InvestigationUpdate {
	_u.mutation.ClearFilters()
	return _u
}

// SetRequestedWorkerKinds sets the "requested_worker_kinds" field.
func (_u *InvestigationUpdate) SetRequestedWorkerKinds(v []string) *InvestigationUpdate {
	_u.mutation.SetRequestedWorkerKinds(v)
	return _u
}

// AppendRequestedWorkerKinds appends value to the "requested_worker_kinds" field.
func (_u *InvestigationUpdate) AppendRequestedWorkerKinds(v []string) *InvestigationUpdate {
	_u.mutation.AppendRequestedWorkerKinds(v)
	return _u
}

// ClearRequestedWorkerKinds clears the value of the "requested_worker_kinds" field.
func (_u *InvestigationUpdate) ClearRequestedWorkerKinds() *InvestigationUpdate {
	_u.mutation.ClearRequestedWorkerKinds()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvestigationUpdate) SetStatus(v investigation.Status) *InvestigationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableStatus(v *investigation.Status) *InvestigationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentPhase sets the "current_phase" field.
func (_u *InvestigationUpdate) SetCurrentPhase(v string) *InvestigationUpdate {
	_u.mutation.SetCurrentPhase(v)
	return _u
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableCurrentPhase(v *string) *InvestigationUpdate {
	if v != nil {
		_u.SetCurrentPhase(*v)
	}
	return _u
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (_u *InvestigationUpdate) ClearCurrentPhase() *InvestigationUpdate {
	_u.mutation.ClearCurrentPhase()
	return _u
}

// SetProgress sets the "progress" field.
func (_u *InvestigationUpdate) SetProgress(v float64) *InvestigationUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableProgress(v *float64) *InvestigationUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *InvestigationUpdate) AddProgress(v float64) *InvestigationUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetFindings sets the "findings" field.
func (_u *InvestigationUpdate) SetFindings(v []map[string]interface{}) *InvestigationUpdate {
	_u.mutation.SetFindings(v)
	return _u
}

// AppendFindings appends value to the "findings" field.
func (_u *InvestigationUpdate) AppendFindings(v []map[string]interface{}) *InvestigationUpdate {
	_u.mutation.AppendFindings(v)
	return _u
}

// ClearFindings clears the value of the "findings" field.
func (_u *InvestigationUpdate) ClearFindings() *InvestigationUpdate {
	_u.mutation.ClearFindings()
	return _u
}

// SetSummaryText sets the "summary_text" field.
func (_u *InvestigationUpdate) SetSummaryText(v string) *InvestigationUpdate {
	_u.mutation.SetSummaryText(v)
	return _u
}

// SetNillableSummaryText sets the "summary_text" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableSummaryText(v *string) *InvestigationUpdate {
	if v != nil {
		_u.SetSummaryText(*v)
	}
	return _u
}

// ClearSummaryText clears the value of the "summary_text" field.
func (_u *InvestigationUpdate) ClearSummaryText() *InvestigationUpdate {
	_u.mutation.ClearSummaryText()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *InvestigationUpdate) SetConfidence(v float64) *InvestigationUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableConfidence(v *float64) *InvestigationUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *InvestigationUpdate) AddConfidence(v float64) *InvestigationUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *InvestigationUpdate) ClearConfidence() *InvestigationUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetRecordsAnalyzed sets the "records_analyzed" field.
func (_u *InvestigationUpdate) SetRecordsAnalyzed(v int) *InvestigationUpdate {
	_u.mutation.ResetRecordsAnalyzed()
	_u.mutation.SetRecordsAnalyzed(v)
	return _u
}

// SetNillableRecordsAnalyzed sets the "records_analyzed" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableRecordsAnalyzed(v *int) *InvestigationUpdate {
	if v != nil {
		_u.SetRecordsAnalyzed(*v)
	}
	return _u
}

// AddRecordsAnalyzed adds value to the "records_analyzed" field.
func (_u *InvestigationUpdate) AddRecordsAnalyzed(v int) *InvestigationUpdate {
	_u.mutation.AddRecordsAnalyzed(v)
	return _u
}

// SetFindingsCount sets the "findings_count" field.
func (_u *InvestigationUpdate) SetFindingsCount(v int) *InvestigationUpdate {
	_u.mutation.ResetFindingsCount()
	_u.mutation.SetFindingsCount(v)
	return _u
}

// SetNillableFindingsCount sets the "findings_count" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableFindingsCount(v *int) *InvestigationUpdate {
	if v != nil {
		_u.SetFindingsCount(*v)
	}
	return _u
}

// AddFindingsCount adds value to the "findings_count" field.
func (_u *InvestigationUpdate) AddFindingsCount(v int) *InvestigationUpdate {
	_u.mutation.AddFindingsCount(v)
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *InvestigationUpdate) SetErrorKind(v string) *InvestigationUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableErrorKind(v *string) *InvestigationUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *InvestigationUpdate) ClearErrorKind() *InvestigationUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *InvestigationUpdate) SetErrorMessage(v string) *InvestigationUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableErrorMessage(v *string) *InvestigationUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *InvestigationUpdate) ClearErrorMessage() *InvestigationUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *InvestigationUpdate) SetCorrelationID(v string) *InvestigationUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableCorrelationID(v *string) *InvestigationUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// SetInvestigationMetadata sets the "investigation_metadata" field.
func (_u *InvestigationUpdate) SetInvestigationMetadata(v map[string]interface{}) *InvestigationUpdate {
	_u.mutation.SetInvestigationMetadata(v)
	return _u
}

// ClearInvestigationMetadata clears the value of the "investigation_metadata" field.
func (_u *InvestigationUpdate) ClearInvestigationMetadata() *InvestigationUpdate {
	_u.mutation.ClearInvestigationMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvestigationUpdate) SetUpdatedAt(v time.Time) *InvestigationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *InvestigationUpdate) SetStartedAt(v time.Time) *InvestigationUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableStartedAt(v *time.Time) *InvestigationUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *InvestigationUpdate) ClearStartedAt() *InvestigationUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *InvestigationUpdate) SetCompletedAt(v time.Time) *InvestigationUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableCompletedAt(v *time.Time) *InvestigationUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *InvestigationUpdate) ClearCompletedAt() *InvestigationUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *InvestigationUpdate) SetPodID(v string) *InvestigationUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillablePodID(v *string) *InvestigationUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *InvestigationUpdate) ClearPodID() *InvestigationUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *InvestigationUpdate) SetLastHeartbeatAt(v time.Time) *InvestigationUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableLastHeartbeatAt(v *time.Time) *InvestigationUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *InvestigationUpdate) ClearLastHeartbeatAt() *InvestigationUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *InvestigationUpdate) SetDeletedAt(v time.Time) *InvestigationUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableDeletedAt(v *time.Time) *InvestigationUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *InvestigationUpdate) ClearDeletedAt() *InvestigationUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *InvestigationUpdate) AddEventIDs(ids ...int) *InvestigationUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *InvestigationUpdate) AddEvents(v ...*Event) *InvestigationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the InvestigationMutation object of the builder.
func (_u *InvestigationUpdate) Mutation() *InvestigationMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *InvestigationUpdate) ClearEvents() *InvestigationUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *InvestigationUpdate) RemoveEventIDs(ids ...int) *InvestigationUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *InvestigationUpdate) RemoveEvents(v ...*Event) *InvestigationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvestigationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvestigationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvestigationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvestigationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvestigationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := investigation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvestigationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := investigation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Investigation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InvestigationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(investigation.Table, investigation.Columns, sqlgraph.NewFieldSpec(investigation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(investigation.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(investigation.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(investigation.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.QueryText(); ok {
		_spec.SetField(investigation.FieldQueryText, field.TypeString, value)
	}
	if value, ok := _u.mutation.DataSource(); ok {
		_spec.SetField(investigation.FieldDataSource, field.TypeString, value)
	}
	if _u.mutation.DataSourceCleared() {
		_spec.ClearField(investigation.FieldDataSource, field.TypeString)
	}
	if value, ok := _u.mutation.Filters(); ok {
		_spec.SetField(investigation.FieldFilters, field.TypeJSON, value)
	}
	if _u.mutation.FiltersCleared() {
		_spec.ClearField(investigation.FieldFilters, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequestedWorkerKinds(); ok {
		_spec.SetField(investigation.FieldRequestedWorkerKinds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequestedWorkerKinds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, investigation.FieldRequestedWorkerKinds, value)
		})
	}
	if _u.mutation.RequestedWorkerKindsCleared() {
		_spec.ClearField(investigation.FieldRequestedWorkerKinds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(investigation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentPhase(); ok {
		_spec.SetField(investigation.FieldCurrentPhase, field.TypeString, value)
	}
	if _u.mutation.CurrentPhaseCleared() {
		_spec.ClearField(investigation.FieldCurrentPhase, field.TypeString)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(investigation.FieldProgress, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(investigation.FieldProgress, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Findings(); ok {
		_spec.SetField(investigation.FieldFindings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFindings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, investigation.FieldFindings, value)
		})
	}
	if _u.mutation.FindingsCleared() {
		_spec.ClearField(investigation.FieldFindings, field.TypeJSON)
	}
	if value, ok := _u.mutation.SummaryText(); ok {
		_spec.SetField(investigation.FieldSummaryText, field.TypeString, value)
	}
	if _u.mutation.SummaryTextCleared() {
		_spec.ClearField(investigation.FieldSummaryText, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(investigation.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(investigation.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(investigation.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RecordsAnalyzed(); ok {
		_spec.SetField(investigation.FieldRecordsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecordsAnalyzed(); ok {
		_spec.AddField(investigation.FieldRecordsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FindingsCount(); ok {
		_spec.SetField(investigation.FieldFindingsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFindingsCount(); ok {
		_spec.AddField(investigation.FieldFindingsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(investigation.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(investigation.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(investigation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(investigation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(investigation.FieldCorrelationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvestigationMetadata(); ok {
		_spec.SetField(investigation.FieldInvestigationMetadata, field.TypeJSON, value)
	}
	if _u.mutation.InvestigationMetadataCleared() {
		_spec.ClearField(investigation.FieldInvestigationMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(investigation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(investigation.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(investigation.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(investigation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(investigation.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(investigation.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(investigation.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(investigation.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(investigation.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(investigation.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(investigation.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.EventsTable,
			Columns: []string{investigation.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.EventsTable,
			Columns: []string{investigation.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.EventsTable,
			Columns: []string{investigation.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{investigation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvestigationUpdateOne is the builder for updating a single Investigation entity.
type InvestigationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvestigationMutation
}

// SetUserID sets the "user_id" field.
func (_u *InvestigationUpdateOne) SetUserID(v string) *InvestigationUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableUserID(v *string) *InvestigationUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *InvestigationUpdateOne) SetSessionID(v string) *InvestigationUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableSessionID(v *string) *InvestigationUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *InvestigationUpdateOne) ClearSessionID() *InvestigationUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetQueryText sets the "query_text" field.
func (_u *InvestigationUpdateOne) SetQueryText(v string) *InvestigationUpdateOne {
	_u.mutation.SetQueryText(v)
	return _u
}

// SetNillableQueryText sets the "query_text" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableQueryText(v *string) *InvestigationUpdateOne {
	if v != nil {
		_u.SetQueryText(*v)
	}
	return _u
}

// SetDataSource sets the "data_source" field.
func (_u *InvestigationUpdateOne) SetDataSource(v string) *InvestigationUpdateOne {
	_u.mutation.SetDataSource(v)
	return _u
}

// SetNillableDataSource sets the "data_source" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableDataSource(v *string) *InvestigationUpdateOne {
	if v != nil {
		_u.SetDataSource(*v)
	}
	return _u
}

// ClearDataSource clears the value of the "data_source" field.
func (_u *InvestigationUpdateOne) ClearDataSource() *InvestigationUpdateOne {
	_u.mutation.ClearDataSource()
	return _u
}

// SetFilters sets the "filters" field.
func (_u *InvestigationUpdateOne) SetFilters(v map[string]interface{}) *InvestigationUpdateOne {
	_u.mutation.SetFilters(v)
	return _u
}

// ClearFilters clears the value of the "filters" field.
func (_u *InvestigationUpdateOne) ClearFilters() *InvestigationUpdateOne {
	_u.mutation.ClearFilters()
	return _u
}

// SetRequestedWorkerKinds sets the "requested_worker_kinds" field.
func (_u *InvestigationUpdateOne) SetRequestedWorkerKinds(v []string) *InvestigationUpdateOne {
	_u.mutation.SetRequestedWorkerKinds(v)
	return _u
}

// AppendRequestedWorkerKinds appends value to the "requested_worker_kinds" field.
func (_u *InvestigationUpdateOne) AppendRequestedWorkerKinds(v []string) *InvestigationUpdateOne {
	_u.mutation.AppendRequestedWorkerKinds(v)
	return _u
}

// ClearRequestedWorkerKinds clears the value of the "requested_worker_kinds" field.
func (_u *InvestigationUpdateOne) ClearRequestedWorkerKinds() *InvestigationUpdateOne {
	_u.mutation.ClearRequestedWorkerKinds()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvestigationUpdateOne) SetStatus(v investigation.Status) *InvestigationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableStatus(v *investigation.Status) *InvestigationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentPhase sets the "current_phase" field.
func (_u *InvestigationUpdateOne) SetCurrentPhase(v string) *InvestigationUpdateOne {
	_u.mutation.SetCurrentPhase(v)
	return _u
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableCurrentPhase(v *string) *InvestigationUpdateOne {
	if v != nil {
		_u.SetCurrentPhase(*v)
	}
	return _u
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (_u *InvestigationUpdateOne) ClearCurrentPhase() *InvestigationUpdateOne {
	_u.mutation.ClearCurrentPhase()
	return _u
}

// SetProgress sets the "progress" field.
func (_u *InvestigationUpdateOne) SetProgress(v float64) *InvestigationUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableProgress(v *float64) *InvestigationUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *InvestigationUpdateOne) AddProgress(v float64) *InvestigationUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetFindings sets the "findings" field.
func (_u *InvestigationUpdateOne) SetFindings(v []map[string]interface{}) *InvestigationUpdateOne {
	_u.mutation.SetFindings(v)
	return _u
}

// AppendFindings appends value to the "findings" field.
func (_u *InvestigationUpdateOne) AppendFindings(v []map[string]interface{}) *InvestigationUpdateOne {
	_u.mutation.AppendFindings(v)
	return _u
}

// ClearFindings clears the value of the "findings" field.
func (_u *InvestigationUpdateOne) ClearFindings() *InvestigationUpdateOne {
	_u.mutation.ClearFindings()
	return _u
}

// SetSummaryText sets the "summary_text" field.
func (_u *InvestigationUpdateOne) SetSummaryText(v string) *InvestigationUpdateOne {
	_u.mutation.SetSummaryText(v)
	return _u
}

// SetNillableSummaryText sets the "summary_text" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableSummaryText(v *string) *InvestigationUpdateOne {
	if v != nil {
		_u.SetSummaryText(*v)
	}
	return _u
}

// ClearSummaryText clears the value of the "summary_text" field.
func (_u *InvestigationUpdateOne) ClearSummaryText() *InvestigationUpdateOne {
	_u.mutation.ClearSummaryText()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *InvestigationUpdateOne) SetConfidence(v float64) *InvestigationUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableConfidence(v *float64) *InvestigationUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *InvestigationUpdateOne) AddConfidence(v float64) *InvestigationUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *InvestigationUpdateOne) ClearConfidence() *InvestigationUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetRecordsAnalyzed sets the "records_analyzed" field.
func (_u *InvestigationUpdateOne) SetRecordsAnalyzed(v int) *InvestigationUpdateOne {
	_u.mutation.ResetRecordsAnalyzed()
	_u.mutation.SetRecordsAnalyzed(v)
	return _u
}

// SetNillableRecordsAnalyzed sets the "records_analyzed" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableRecordsAnalyzed(v *int) *InvestigationUpdateOne {
	if v != nil {
		_u.SetRecordsAnalyzed(*v)
	}
	return _u
}

// AddRecordsAnalyzed adds value to the "records_analyzed" field.
func (_u *InvestigationUpdateOne) AddRecordsAnalyzed(v int) *InvestigationUpdateOne {
	_u.mutation.AddRecordsAnalyzed(v)
	return _u
}

// SetFindingsCount sets the "findings_count" field.
func (_u *InvestigationUpdateOne) SetFindingsCount(v int) *InvestigationUpdateOne {
	_u.mutation.ResetFindingsCount()
	_u.mutation.SetFindingsCount(v)
	return _u
}

// SetNillableFindingsCount sets the "findings_count" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableFindingsCount(v *int) *InvestigationUpdateOne {
	if v != nil {
		_u.SetFindingsCount(*v)
	}
	return _u
}

// AddFindingsCount adds value to the "findings_count" field.
func (_u *InvestigationUpdateOne) AddFindingsCount(v int) *InvestigationUpdateOne {
	_u.mutation.AddFindingsCount(v)
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *InvestigationUpdateOne) SetErrorKind(v string) *InvestigationUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableErrorKind(v *string) *InvestigationUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *InvestigationUpdateOne) ClearErrorKind() *InvestigationUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *InvestigationUpdateOne) SetErrorMessage(v string) *InvestigationUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableErrorMessage(v *string) *InvestigationUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *InvestigationUpdateOne) ClearErrorMessage() *InvestigationUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *InvestigationUpdateOne) SetCorrelationID(v string) *InvestigationUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableCorrelationID(v *string) *InvestigationUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// SetInvestigationMetadata sets the "investigation_metadata" field.
func (_u *InvestigationUpdateOne) SetInvestigationMetadata(v map[string]interface{}) *InvestigationUpdateOne {
	_u.mutation.SetInvestigationMetadata(v)
	return _u
}

// ClearInvestigationMetadata clears the value of the "investigation_metadata" field.
func (_u *InvestigationUpdateOne) ClearInvestigationMetadata() *InvestigationUpdateOne {
	_u.mutation.ClearInvestigationMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvestigationUpdateOne) SetUpdatedAt(v time.Time) *InvestigationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *InvestigationUpdateOne) SetStartedAt(v time.Time) *InvestigationUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableStartedAt(v *time.Time) *InvestigationUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *InvestigationUpdateOne) ClearStartedAt() *InvestigationUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *InvestigationUpdateOne) SetCompletedAt(v time.Time) *InvestigationUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableCompletedAt(v *time.Time) *InvestigationUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *InvestigationUpdateOne) ClearCompletedAt() *InvestigationUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *InvestigationUpdateOne) SetPodID(v string) *InvestigationUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillablePodID(v *string) *InvestigationUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *InvestigationUpdateOne) ClearPodID() *InvestigationUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *InvestigationUpdateOne) SetLastHeartbeatAt(v time.Time) *InvestigationUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *InvestigationUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *InvestigationUpdateOne) ClearLastHeartbeatAt() *InvestigationUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *InvestigationUpdateOne) SetDeletedAt(v time.Time) *InvestigationUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableDeletedAt(v *time.Time) *InvestigationUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *InvestigationUpdateOne) ClearDeletedAt() *InvestigationUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *InvestigationUpdateOne) AddEventIDs(ids ...int) *InvestigationUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *InvestigationUpdateOne) AddEvents(v ...*Event) *InvestigationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the InvestigationMutation object of the builder.
func (_u *InvestigationUpdateOne) Mutation() *InvestigationMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *InvestigationUpdateOne) ClearEvents() *InvestigationUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *InvestigationUpdateOne) RemoveEventIDs(ids ...int) *InvestigationUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *InvestigationUpdateOne) RemoveEvents(v ...*Event) *InvestigationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the InvestigationUpdate builder.
func (_u *InvestigationUpdateOne) Where(ps ...predicate.Investigation) *InvestigationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvestigationUpdateOne) Select(field string, fields ...string) *InvestigationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Investigation entity.
func (_u *InvestigationUpdateOne) Save(ctx context.Context) (*Investigation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvestigationUpdateOne) SaveX(ctx context.Context) *Investigation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvestigationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvestigationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvestigationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := investigation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvestigationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := investigation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Investigation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InvestigationUpdateOne) sqlSave(ctx context.Context) (_node *Investigation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(investigation.Table, investigation.Columns, sqlgraph.NewFieldSpec(investigation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Investigation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, investigation.FieldID)
		for _, f := range fields {
			if !investigation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != investigation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(investigation.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(investigation.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(investigation.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.QueryText(); ok {
		_spec.SetField(investigation.FieldQueryText, field.TypeString, value)
	}
	if value, ok := _u.mutation.DataSource(); ok {
		_spec.SetField(investigation.FieldDataSource, field.TypeString, value)
	}
	if _u.mutation.DataSourceCleared() {
		_spec.ClearField(investigation.FieldDataSource, field.TypeString)
	}
	if value, ok := _u.mutation.Filters(); ok {
		_spec.SetField(investigation.FieldFilters, field.TypeJSON, value)
	}
	if _u.mutation.FiltersCleared() {
		_spec.ClearField(investigation.FieldFilters, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequestedWorkerKinds(); ok {
		_spec.SetField(investigation.FieldRequestedWorkerKinds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequestedWorkerKinds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, investigation.FieldRequestedWorkerKinds, value)
		})
	}
	if _u.mutation.RequestedWorkerKindsCleared() {
		_spec.ClearField(investigation.FieldRequestedWorkerKinds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(investigation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentPhase(); ok {
		_spec.SetField(investigation.FieldCurrentPhase, field.TypeString, value)
	}
	if _u.mutation.CurrentPhaseCleared() {
		_spec.ClearField(investigation.FieldCurrentPhase, field.TypeString)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(investigation.FieldProgress, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(investigation.FieldProgress, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Findings(); ok {
		_spec.SetField(investigation.FieldFindings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFindings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, investigation.FieldFindings, value)
		})
	}
	if _u.mutation.FindingsCleared() {
		_spec.ClearField(investigation.FieldFindings, field.TypeJSON)
	}
	if value, ok := _u.mutation.SummaryText(); ok {
		_spec.SetField(investigation.FieldSummaryText, field.TypeString, value)
	}
	if _u.mutation.SummaryTextCleared() {
		_spec.ClearField(investigation.FieldSummaryText, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(investigation.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(investigation.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(investigation.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RecordsAnalyzed(); ok {
		_spec.SetField(investigation.FieldRecordsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecordsAnalyzed(); ok {
		_spec.AddField(investigation.FieldRecordsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FindingsCount(); ok {
		_spec.SetField(investigation.FieldFindingsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFindingsCount(); ok {
		_spec.AddField(investigation.FieldFindingsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(investigation.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(investigation.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(investigation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(investigation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(investigation.FieldCorrelationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvestigationMetadata(); ok {
		_spec.SetField(investigation.FieldInvestigationMetadata, field.TypeJSON, value)
	}
	if _u.mutation.InvestigationMetadataCleared() {
		_spec.ClearField(investigation.FieldInvestigationMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(investigation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(investigation.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(investigation.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(investigation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(investigation.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(investigation.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(investigation.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(investigation.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(investigation.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(investigation.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(investigation.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.EventsTable,
			Columns: []string{investigation.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.EventsTable,
			Columns: []string{investigation.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.EventsTable,
			Columns: []string{investigation.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Investigation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{investigation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
