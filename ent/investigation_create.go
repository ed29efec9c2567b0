// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/transparencia-ai/veritas/ent/event"
	"github.com/transparencia-ai/veritas/ent/investigation"
)

// InvestigationCreate is the builder for creating a Investigation entity.
type InvestigationCreate struct {
	config
	mutation *InvestigationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *InvestigationCreate) SetUserID(v string) *InvestigationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *InvestigationCreate) SetSessionID(v string) *InvestigationCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableSessionID(v *string) *InvestigationCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetQueryText sets the "query_text" field.
func (_c *InvestigationCreate) SetQueryText(v string) *InvestigationCreate {
	_c.mutation.SetQueryText(v)
	return _c
}

// SetDataSource sets the "data_source" field.
func (_c *InvestigationCreate) SetDataSource(v string) *InvestigationCreate {
	_c.mutation.SetDataSource(v)
	return _c
}

// SetNillableDataSource sets the "data_source" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableDataSource(v *string) *InvestigationCreate {
	if v != nil {
		_c.SetDataSource(*v)
	}
	return _c
}

// SetFilters sets the "filters" field.
func (_c *InvestigationCreate) SetFilters(v map[string]interface{}) *InvestigationCreate {
	_c.mutation.SetFilters(v)
	return _c
}

// SetRequestedWorkerKinds sets the "requested_worker_kinds" field.
func (_c *InvestigationCreate) SetRequestedWorkerKinds(v []string) *InvestigationCreate {
	_c.mutation.SetRequestedWorkerKinds(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *InvestigationCreate) SetStatus(v investigation.Status) *InvestigationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableStatus(v *investigation.Status) *InvestigationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentPhase sets the "current_phase" field.
func (_c *InvestigationCreate) SetCurrentPhase(v string) *InvestigationCreate {
	_c.mutation.SetCurrentPhase(v)
	return _c
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableCurrentPhase(v *string) *InvestigationCreate {
	if v != nil {
		_c.SetCurrentPhase(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *InvestigationCreate) SetProgress(v float64) *InvestigationCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableProgress(v *float64) *InvestigationCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetFindings sets the "findings" field.
func (_c *InvestigationCreate) SetFindings(v []map[string]interface{}) *InvestigationCreate {
	_c.mutation.SetFindings(v)
	return _c
}

// SetSummaryText sets the "summary_text" field.
func (_c *InvestigationCreate) SetSummaryText(v string) *InvestigationCreate {
	_c.mutation.SetSummaryText(v)
	return _c
}

// SetNillableSummaryText sets the "summary_text" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableSummaryText(v *string) *InvestigationCreate {
	if v != nil {
		_c.SetSummaryText(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *InvestigationCreate) SetConfidence(v float64) *InvestigationCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableConfidence(v *float64) *InvestigationCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetRecordsAnalyzed sets the "records_analyzed" field.
func (_c *InvestigationCreate) SetRecordsAnalyzed(v int) *InvestigationCreate {
	_c.mutation.SetRecordsAnalyzed(v)
	return _c
}

// SetNillableRecordsAnalyzed sets the "records_analyzed" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableRecordsAnalyzed(v *int) *InvestigationCreate {
	if v != nil {
		_c.SetRecordsAnalyzed(*v)
	}
	return _c
}

// SetFindingsCount sets the "findings_count" field.
func (_c *InvestigationCreate) SetFindingsCount(v int) *InvestigationCreate {
	_c.mutation.SetFindingsCount(v)
	return _c
}

// SetNillableFindingsCount sets the "findings_count" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableFindingsCount(v *int) *InvestigationCreate {
	if v != nil {
		_c.SetFindingsCount(*v)
	}
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *InvestigationCreate) SetErrorKind(v string) *InvestigationCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableErrorKind(v *string) *InvestigationCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *InvestigationCreate) SetErrorMessage(v string) *InvestigationCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableErrorMessage(v *string) *InvestigationCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *InvestigationCreate) SetCorrelationID(v string) *InvestigationCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetInvestigationMetadata sets the "investigation_metadata" field.
func (_c *InvestigationCreate) SetInvestigationMetadata(v map[string]interface{}) *InvestigationCreate {
	_c.mutation.SetInvestigationMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvestigationCreate) SetCreatedAt(v time.Time) *InvestigationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableCreatedAt(v *time.Time) *InvestigationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InvestigationCreate) SetUpdatedAt(v time.Time) *InvestigationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableUpdatedAt(v *time.Time) *InvestigationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *InvestigationCreate) SetStartedAt(v time.Time) *InvestigationCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableStartedAt(v *time.Time) *InvestigationCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *InvestigationCreate) SetCompletedAt(v time.Time) *InvestigationCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableCompletedAt(v *time.Time) *InvestigationCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *InvestigationCreate) SetPodID(v string) *InvestigationCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillablePodID(v *string) *InvestigationCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *InvestigationCreate) SetLastHeartbeatAt(v time.Time) *InvestigationCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableLastHeartbeatAt(v *time.Time) *InvestigationCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *InvestigationCreate) SetDeletedAt(v time.Time) *InvestigationCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableDeletedAt(v *time.Time) *InvestigationCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvestigationCreate) SetID(v string) *InvestigationCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *InvestigationCreate) AddEventIDs(ids ...int) *InvestigationCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *InvestigationCreate) AddEvents(v ...*Event) *InvestigationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the InvestigationMutation object of the builder.
func (_c *InvestigationCreate) Mutation() *InvestigationMutation {
	return _c.mutation
}

// Save creates the Investigation in the database.
func (_c *InvestigationCreate) Save(ctx context.Context) (*Investigation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvestigationCreate) SaveX(ctx context.Context) *Investigation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvestigationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvestigationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvestigationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := investigation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := investigation.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.RecordsAnalyzed(); !ok {
		v := investigation.DefaultRecordsAnalyzed
		_c.mutation.SetRecordsAnalyzed(v)
	}
	if _, ok := _c.mutation.FindingsCount(); !ok {
		v := investigation.DefaultFindingsCount
		_c.mutation.SetFindingsCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := investigation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := investigation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvestigationCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Investigation.user_id"`)}
	}
	if _, ok := _c.mutation.QueryText(); !ok {
		return &ValidationError{Name: "query_text", err: errors.New(`ent: missing required field "Investigation.query_text"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Investigation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := investigation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Investigation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "Investigation.progress"`)}
	}
	if _, ok := _c.mutation.RecordsAnalyzed(); !ok {
		return &ValidationError{Name: "records_analyzed", err: errors.New(`ent: missing required field "Investigation.records_analyzed"`)}
	}
	if _, ok := _c.mutation.FindingsCount(); !ok {
		return &ValidationError{Name: "findings_count", err: errors.New(`ent: missing required field "Investigation.findings_count"`)}
	}
	if _, ok := _c.mutation.CorrelationID(); !ok {
		return &ValidationError{Name: "correlation_id", err: errors.New(`ent: missing required field "Investigation.correlation_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Investigation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Investigation.updated_at"`)}
	}
	return nil
}

func (_c *InvestigationCreate) sqlSave(ctx context.Context) (*Investigation, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Investigation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvestigationCreate) createSpec() (*Investigation, *sqlgraph.CreateSpec) {
	var (
		_node = &Investigation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(investigation.Table, sqlgraph.NewFieldSpec(investigation.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(investigation.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(investigation.FieldSessionID, field.TypeString, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.QueryText(); ok {
		_spec.SetField(investigation.FieldQueryText, field.TypeString, value)
		_node.QueryText = value
	}
	if value, ok := _c.mutation.DataSource(); ok {
		_spec.SetField(investigation.FieldDataSource, field.TypeString, value)
		_node.DataSource = value
	}
	if value, ok := _c.mutation.Filters(); ok {
		_spec.SetField(investigation.FieldFilters, field.TypeJSON, value)
		_node.Filters = value
	}
	if value, ok := _c.mutation.RequestedWorkerKinds(); ok {
		_spec.SetField(investigation.FieldRequestedWorkerKinds, field.TypeJSON, value)
		_node.RequestedWorkerKinds = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(investigation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentPhase(); ok {
		_spec.SetField(investigation.FieldCurrentPhase, field.TypeString, value)
		_node.CurrentPhase = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(investigation.FieldProgress, field.TypeFloat64, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.Findings(); ok {
		_spec.SetField(investigation.FieldFindings, field.TypeJSON, value)
		_node.Findings = value
	}
	if value, ok := _c.mutation.SummaryText(); ok {
		_spec.SetField(investigation.FieldSummaryText, field.TypeString, value)
		_node.SummaryText = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(investigation.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.RecordsAnalyzed(); ok {
		_spec.SetField(investigation.FieldRecordsAnalyzed, field.TypeInt, value)
		_node.RecordsAnalyzed = value
	}
	if value, ok := _c.mutation.FindingsCount(); ok {
		_spec.SetField(investigation.FieldFindingsCount, field.TypeInt, value)
		_node.FindingsCount = value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(investigation.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(investigation.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(investigation.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.InvestigationMetadata(); ok {
		_spec.SetField(investigation.FieldInvestigationMetadata, field.TypeJSON, value)
		_node.InvestigationMetadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(investigation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(investigation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(investigation.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(investigation.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(investigation.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(investigation.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(investigation.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Investigation.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InvestigationUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *InvestigationCreate) OnConflict(opts ...sql.ConflictOption) *InvestigationUpsertOne {
	_c.conflict = opts
	return &InvestigationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Investigation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InvestigationCreate) OnConflictColumns(columns ...string) *InvestigationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InvestigationUpsertOne{
		create: _c,
	}
}

type (
	// InvestigationUpsertOne is the builder for "upsert"-ing
	//  one Investigation node.
	InvestigationUpsertOne struct {
		create *InvestigationCreate
	}

	// InvestigationUpsert is the "OnConflict" setter.
	InvestigationUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *InvestigationUpsert) SetUserID(v string) *InvestigationUpsert {
	u.Set(investigation.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateUserID() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldUserID)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *InvestigationUpsert) SetSessionID(v string) *InvestigationUpsert {
	u.Set(investigation.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateSessionID() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldSessionID)
	return u
}

// ClearSessionID clears the value of the "session_id" field.
func (u *InvestigationUpsert) ClearSessionID() *InvestigationUpsert {
	u.SetNull(investigation.FieldSessionID)
	return u
}

// SetQueryText sets the "query_text" field.
func (u *InvestigationUpsert) SetQueryText(v string) *InvestigationUpsert {
	u.Set(investigation.FieldQueryText, v)
	return u
}

// UpdateQueryText sets the "query_text" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateQueryText() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldQueryText)
	return u
}

// SetDataSource sets the "data_source" field.
func (u *InvestigationUpsert) SetDataSource(v string) *InvestigationUpsert {
	u.Set(investigation.FieldDataSource, v)
	return u
}

// UpdateDataSource sets the "data_source" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateDataSource() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldDataSource)
	return u
}

// ClearDataSource clears the value of the "data_source" field.
func (u *InvestigationUpsert) ClearDataSource() *InvestigationUpsert {
	u.SetNull(investigation.FieldDataSource)
	return u
}

// SetFilters sets the "filters" field.
func (u *InvestigationUpsert) SetFilters(v map[string]interface{}) *InvestigationUpsert {
	u.Set(investigation.FieldFilters, v)
	return u
}

// UpdateFilters sets the "filters" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateFilters() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldFilters)
	return u
}

// ClearFilters clears the value of the "filters" field.
func (u *InvestigationUpsert) ClearFilters() *InvestigationUpsert {
	u.SetNull(investigation.FieldFilters)
	return u
}

// SetRequestedWorkerKinds sets the "requested_worker_kinds" field.
func (u *InvestigationUpsert) SetRequestedWorkerKinds(v []string) *InvestigationUpsert {
	u.Set(investigation.FieldRequestedWorkerKinds, v)
	return u
}

// UpdateRequestedWorkerKinds sets the "requested_worker_kinds" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateRequestedWorkerKinds() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldRequestedWorkerKinds)
	return u
}

// ClearRequestedWorkerKinds clears the value of the "requested_worker_kinds" field.
func (u *InvestigationUpsert) ClearRequestedWorkerKinds() *InvestigationUpsert {
	u.SetNull(investigation.FieldRequestedWorkerKinds)
	return u
}

// SetStatus sets the "status" field.
func (u *InvestigationUpsert) SetStatus(v investigation.Status) *InvestigationUpsert {
	u.Set(investigation.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateStatus() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldStatus)
	return u
}

// SetCurrentPhase sets the "current_phase" field.
func (u *InvestigationUpsert) SetCurrentPhase(v string) *InvestigationUpsert {
	u.Set(investigation.FieldCurrentPhase, v)
	return u
}

// UpdateCurrentPhase sets the "current_phase" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateCurrentPhase() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldCurrentPhase)
	return u
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (u *InvestigationUpsert) ClearCurrentPhase() *InvestigationUpsert {
	u.SetNull(investigation.FieldCurrentPhase)
	return u
}

// SetProgress sets the "progress" field.
func (u *InvestigationUpsert) SetProgress(v float64) *InvestigationUpsert {
	u.Set(investigation.FieldProgress, v)
	return u
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateProgress() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldProgress)
	return u
}

// AddProgress adds v to the "progress" field.
func (u *InvestigationUpsert) AddProgress(v float64) *InvestigationUpsert {
	u.Add(investigation.FieldProgress, v)
	return u
}

// SetFindings sets the "findings" field.
func (u *InvestigationUpsert) SetFindings(v []map[string]interface{}) *InvestigationUpsert {
	u.Set(investigation.FieldFindings, v)
	return u
}

// UpdateFindings sets the "findings" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateFindings() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldFindings)
	return u
}

// ClearFindings clears the value of the "findings" field.
func (u *InvestigationUpsert) ClearFindings() *InvestigationUpsert {
	u.SetNull(investigation.FieldFindings)
	return u
}

// SetSummaryText sets the "summary_text" field.
func (u *InvestigationUpsert) SetSummaryText(v string) *InvestigationUpsert {
	u.Set(investigation.FieldSummaryText, v)
	return u
}

// UpdateSummaryText sets the "summary_text" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateSummaryText() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldSummaryText)
	return u
}

// ClearSummaryText clears the value of the "summary_text" field.
func (u *InvestigationUpsert) ClearSummaryText() *InvestigationUpsert {
	u.SetNull(investigation.FieldSummaryText)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *InvestigationUpsert) SetConfidence(v float64) *InvestigationUpsert {
	u.Set(investigation.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateConfidence() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *InvestigationUpsert) AddConfidence(v float64) *InvestigationUpsert {
	u.Add(investigation.FieldConfidence, v)
	return u
}

// ClearConfidence clears the value of the "confidence" field.
func (u *InvestigationUpsert) ClearConfidence() *InvestigationUpsert {
	u.SetNull(investigation.FieldConfidence)
	return u
}

// SetRecordsAnalyzed sets the "records_analyzed" field.
func (u *InvestigationUpsert) SetRecordsAnalyzed(v int) *InvestigationUpsert {
	u.Set(investigation.FieldRecordsAnalyzed, v)
	return u
}

// UpdateRecordsAnalyzed sets the "records_analyzed" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateRecordsAnalyzed() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldRecordsAnalyzed)
	return u
}

// AddRecordsAnalyzed adds v to the "records_analyzed" field.
func (u *InvestigationUpsert) AddRecordsAnalyzed(v int) *InvestigationUpsert {
	u.Add(investigation.FieldRecordsAnalyzed, v)
	return u
}

// SetFindingsCount sets the "findings_count" field.
func (u *InvestigationUpsert) SetFindingsCount(v int) *InvestigationUpsert {
	u.Set(investigation.FieldFindingsCount, v)
	return u
}

// UpdateFindingsCount sets the "findings_count" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateFindingsCount() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldFindingsCount)
	return u
}

// AddFindingsCount adds v to the "findings_count" field.
func (u *InvestigationUpsert) AddFindingsCount(v int) *InvestigationUpsert {
	u.Add(investigation.FieldFindingsCount, v)
	return u
}

// SetErrorKind sets the "error_kind" field.
func (u *InvestigationUpsert) SetErrorKind(v string) *InvestigationUpsert {
	u.Set(investigation.FieldErrorKind, v)
	return u
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateErrorKind() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldErrorKind)
	return u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *InvestigationUpsert) ClearErrorKind() *InvestigationUpsert {
	u.SetNull(investigation.FieldErrorKind)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *InvestigationUpsert) SetErrorMessage(v string) *InvestigationUpsert {
	u.Set(investigation.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateErrorMessage() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *InvestigationUpsert) ClearErrorMessage() *InvestigationUpsert {
	u.SetNull(investigation.FieldErrorMessage)
	return u
}

// SetCorrelationID sets the "correlation_id" field.
func (u *InvestigationUpsert) SetCorrelationID(v string) *InvestigationUpsert {
	u.Set(investigation.FieldCorrelationID, v)
	return u
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateCorrelationID() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldCorrelationID)
	return u
}

// SetInvestigationMetadata sets the "investigation_metadata" field.
func (u *InvestigationUpsert) SetInvestigationMetadata(v map[string]interface{}) *InvestigationUpsert {
	u.Set(investigation.FieldInvestigationMetadata, v)
	return u
}

// UpdateInvestigationMetadata sets the "investigation_metadata" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateInvestigationMetadata() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldInvestigationMetadata)
	return u
}

// ClearInvestigationMetadata clears the value of the "investigation_metadata" field.
func (u *InvestigationUpsert) ClearInvestigationMetadata() *InvestigationUpsert {
	u.SetNull(investigation.FieldInvestigationMetadata)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InvestigationUpsert) SetUpdatedAt(v time.Time) *InvestigationUpsert {
	u.Set(investigation.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateUpdatedAt() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldUpdatedAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *InvestigationUpsert) SetStartedAt(v time.Time) *InvestigationUpsert {
	u.Set(investigation.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateStartedAt() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *InvestigationUpsert) ClearStartedAt() *InvestigationUpsert {
	u.SetNull(investigation.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *InvestigationUpsert) SetCompletedAt(v time.Time) *InvestigationUpsert {
	u.Set(investigation.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateCompletedAt() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *InvestigationUpsert) ClearCompletedAt() *InvestigationUpsert {
	u.SetNull(investigation.FieldCompletedAt)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *InvestigationUpsert) SetPodID(v string) *InvestigationUpsert {
	u.Set(investigation.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdatePodID() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *InvestigationUpsert) ClearPodID() *InvestigationUpsert {
	u.SetNull(investigation.FieldPodID)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *InvestigationUpsert) SetLastHeartbeatAt(v time.Time) *InvestigationUpsert {
	u.Set(investigation.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateLastHeartbeatAt() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *InvestigationUpsert) ClearLastHeartbeatAt() *InvestigationUpsert {
	u.SetNull(investigation.FieldLastHeartbeatAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *InvestigationUpsert) SetDeletedAt(v time.Time) *InvestigationUpsert {
	u.Set(investigation.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateDeletedAt() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *InvestigationUpsert) ClearDeletedAt() *InvestigationUpsert {
	u.SetNull(investigation.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Investigation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(investigation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InvestigationUpsertOne) UpdateNewValues() *InvestigationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(investigation.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(investigation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Investigation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InvestigationUpsertOne) Ignore() *InvestigationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InvestigationUpsertOne) DoNothing() *InvestigationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InvestigationCreate.OnConflict
// documentation for more info.
func (u *InvestigationUpsertOne) Update(set func(*InvestigationUpsert)) *InvestigationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InvestigationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *InvestigationUpsertOne) SetUserID(v string) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateUserID() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateUserID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *InvestigationUpsertOne) SetSessionID(v string) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateSessionID() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *InvestigationUpsertOne) ClearSessionID() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearSessionID()
	})
}

// SetQueryText sets the "query_text" field.
func (u *InvestigationUpsertOne) SetQueryText(v string) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetQueryText(v)
	})
}

// UpdateQueryText sets the "query_text" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateQueryText() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateQueryText()
	})
}

// SetDataSource sets the "data_source" field.
func (u *InvestigationUpsertOne) SetDataSource(v string) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetDataSource(v)
	})
}

// UpdateDataSource sets the "data_source" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateDataSource() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateDataSource()
	})
}

// ClearDataSource clears the value of the "data_source" field.
func (u *InvestigationUpsertOne) ClearDataSource() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearDataSource()
	})
}

// SetFilters sets the "filters" field.
func (u *InvestigationUpsertOne) SetFilters(v map[string]interface{}) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetFilters(v)
	})
}

// UpdateFilters sets the "filters" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateFilters() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateFilters()
	})
}

// ClearFilters clears the value of the "filters" field.
func (u *InvestigationUpsertOne) ClearFilters() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearFilters()
	})
}

// SetRequestedWorkerKinds sets the "requested_worker_kinds" field.
func (u *InvestigationUpsertOne) SetRequestedWorkerKinds(v []string) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetRequestedWorkerKinds(v)
	})
}

// UpdateRequestedWorkerKinds sets the "requested_worker_kinds" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateRequestedWorkerKinds() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateRequestedWorkerKinds()
	})
}

// ClearRequestedWorkerKinds clears the value of the "requested_worker_kinds" field.
func (u *InvestigationUpsertOne) ClearRequestedWorkerKinds() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearRequestedWorkerKinds()
	})
}

// SetStatus sets the "status" field.
func (u *InvestigationUpsertOne) SetStatus(v investigation.Status) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateStatus() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateStatus()
	})
}

// SetCurrentPhase sets the "current_phase" field.
func (u *InvestigationUpsertOne) SetCurrentPhase(v string) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetCurrentPhase(v)
	})
}

// UpdateCurrentPhase sets the "current_phase" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateCurrentPhase() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateCurrentPhase()
	})
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (u *InvestigationUpsertOne) ClearCurrentPhase() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearCurrentPhase()
	})
}

// SetProgress sets the "progress" field.
func (u *InvestigationUpsertOne) SetProgress(v float64) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetProgress(v)
	})
}

// AddProgress adds v to the "progress" field.
func (u *InvestigationUpsertOne) AddProgress(v float64) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.AddProgress(v)
	})
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateProgress() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateProgress()
	})
}

// SetFindings sets the "findings" field.
func (u *InvestigationUpsertOne) SetFindings(v []map[string]interface{}) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetFindings(v)
	})
}

// UpdateFindings sets the "findings" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateFindings() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateFindings()
	})
}

// ClearFindings clears the value of the "findings" field.
func (u *InvestigationUpsertOne) ClearFindings() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearFindings()
	})
}

// SetSummaryText sets the "summary_text" field.
func (u *InvestigationUpsertOne) SetSummaryText(v string) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetSummaryText(v)
	})
}

// UpdateSummaryText sets the "summary_text" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateSummaryText() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateSummaryText()
	})
}

// ClearSummaryText clears the value of the "summary_text" field.
func (u *InvestigationUpsertOne) ClearSummaryText() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearSummaryText()
	})
}

// SetConfidence sets the "confidence" field.
func (u *InvestigationUpsertOne) SetConfidence(v float64) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *InvestigationUpsertOne) AddConfidence(v float64) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateConfidence() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateConfidence()
	})
}

// ClearConfidence clears the value of the "confidence" field.
func (u *InvestigationUpsertOne) ClearConfidence() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearConfidence()
	})
}

// SetRecordsAnalyzed sets the "records_analyzed" field.
func (u *InvestigationUpsertOne) SetRecordsAnalyzed(v int) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetRecordsAnalyzed(v)
	})
}

// AddRecordsAnalyzed adds v to the "records_analyzed" field.
func (u *InvestigationUpsertOne) AddRecordsAnalyzed(v int) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.AddRecordsAnalyzed(v)
	})
}

// UpdateRecordsAnalyzed sets the "records_analyzed" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateRecordsAnalyzed() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateRecordsAnalyzed()
	})
}

// SetFindingsCount sets the "findings_count" field.
func (u *InvestigationUpsertOne) SetFindingsCount(v int) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetFindingsCount(v)
	})
}

// AddFindingsCount adds v to the "findings_count" field.
func (u *InvestigationUpsertOne) AddFindingsCount(v int) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.AddFindingsCount(v)
	})
}

// UpdateFindingsCount sets the "findings_count" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateFindingsCount() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateFindingsCount()
	})
}

// SetErrorKind sets the "error_kind" field.
func (u *InvestigationUpsertOne) SetErrorKind(v string) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetErrorKind(v)
	})
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateErrorKind() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateErrorKind()
	})
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *InvestigationUpsertOne) ClearErrorKind() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearErrorKind()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *InvestigationUpsertOne) SetErrorMessage(v string) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateErrorMessage() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *InvestigationUpsertOne) ClearErrorMessage() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *InvestigationUpsertOne) SetCorrelationID(v string) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateCorrelationID() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateCorrelationID()
	})
}

// SetInvestigationMetadata sets the "investigation_metadata" field.
func (u *InvestigationUpsertOne) SetInvestigationMetadata(v map[string]interface{}) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetInvestigationMetadata(v)
	})
}

// UpdateInvestigationMetadata sets the "investigation_metadata" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateInvestigationMetadata() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateInvestigationMetadata()
	})
}

// ClearInvestigationMetadata clears the value of the "investigation_metadata" field.
func (u *InvestigationUpsertOne) ClearInvestigationMetadata() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearInvestigationMetadata()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InvestigationUpsertOne) SetUpdatedAt(v time.Time) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateUpdatedAt() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *InvestigationUpsertOne) SetStartedAt(v time.Time) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateStartedAt() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *InvestigationUpsertOne) ClearStartedAt() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *InvestigationUpsertOne) SetCompletedAt(v time.Time) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateCompletedAt() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *InvestigationUpsertOne) ClearCompletedAt() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearCompletedAt()
	})
}

// SetPodID sets the "pod_id" field.
func (u *InvestigationUpsertOne) SetPodID(v string) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdatePodID() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *InvestigationUpsertOne) ClearPodID() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearPodID()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *InvestigationUpsertOne) SetLastHeartbeatAt(v time.Time) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateLastHeartbeatAt() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *InvestigationUpsertOne) ClearLastHeartbeatAt() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *InvestigationUpsertOne) SetDeletedAt(v time.Time) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateDeletedAt() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *InvestigationUpsertOne) ClearDeletedAt() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *InvestigationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InvestigationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InvestigationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InvestigationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: InvestigationUpsertOne.ID is not supported by MySQL driver. Use InvestigationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InvestigationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InvestigationCreateBulk is the builder for creating many Investigation entities in bulk.
type InvestigationCreateBulk struct {
	config
	err      error
	builders []*InvestigationCreate
	conflict []sql.ConflictOption
}

// Save creates the Investigation entities in the database.
func (_c *InvestigationCreateBulk) Save(ctx context.Context) ([]*Investigation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Investigation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvestigationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InvestigationCreateBulk) SaveX(ctx context.Context) []*Investigation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvestigationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvestigationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Investigation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InvestigationUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *InvestigationCreateBulk) OnConflict(opts ...sql.ConflictOption) *InvestigationUpsertBulk {
	_c.conflict = opts
	return &InvestigationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Investigation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InvestigationCreateBulk) OnConflictColumns(columns ...string) *InvestigationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InvestigationUpsertBulk{
		create: _c,
	}
}

// InvestigationUpsertBulk is the builder for "upsert"-ing
// a bulk of Investigation nodes.
type InvestigationUpsertBulk struct {
	create *InvestigationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Investigation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(investigation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InvestigationUpsertBulk) UpdateNewValues() *InvestigationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(investigation.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(investigation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Investigation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InvestigationUpsertBulk) Ignore() *InvestigationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InvestigationUpsertBulk) DoNothing() *InvestigationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InvestigationCreateBulk.OnConflict
// documentation for more info.
func (u *InvestigationUpsertBulk) Update(set func(*InvestigationUpsert)) *InvestigationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InvestigationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *InvestigationUpsertBulk) SetUserID(v string) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateUserID() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateUserID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *InvestigationUpsertBulk) SetSessionID(v string) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateSessionID() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *InvestigationUpsertBulk) ClearSessionID() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearSessionID()
	})
}

// SetQueryText sets the "query_text" field.
func (u *InvestigationUpsertBulk) SetQueryText(v string) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetQueryText(v)
	})
}

// UpdateQueryText sets the "query_text" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateQueryText() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateQueryText()
	})
}

// SetDataSource sets the "data_source" field.
func (u *InvestigationUpsertBulk) SetDataSource(v string) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetDataSource(v)
	})
}

// UpdateDataSource sets the "data_source" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateDataSource() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateDataSource()
	})
}

// ClearDataSource clears the value of the "data_source" field.
func (u *InvestigationUpsertBulk) ClearDataSource() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearDataSource()
	})
}

// SetFilters sets the "filters" field.
func (u *InvestigationUpsertBulk) SetFilters(v map[string]interface{}) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetFilters(v)
	})
}

// UpdateFilters sets the "filters" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateFilters() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateFilters()
	})
}

// ClearFilters clears the value of the "filters" field.
func (u *InvestigationUpsertBulk) ClearFilters() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearFilters()
	})
}

// SetRequestedWorkerKinds sets the "requested_worker_kinds" field.
func (u *InvestigationUpsertBulk) SetRequestedWorkerKinds(v []string) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetRequestedWorkerKinds(v)
	})
}

// UpdateRequestedWorkerKinds sets the "requested_worker_kinds" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateRequestedWorkerKinds() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateRequestedWorkerKinds()
	})
}

// ClearRequestedWorkerKinds clears the value of the "requested_worker_kinds" field.
func (u *InvestigationUpsertBulk) ClearRequestedWorkerKinds() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearRequestedWorkerKinds()
	})
}

// SetStatus sets the "status" field.
func (u *InvestigationUpsertBulk) SetStatus(v investigation.Status) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateStatus() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateStatus()
	})
}

// SetCurrentPhase sets the "current_phase" field.
func (u *InvestigationUpsertBulk) SetCurrentPhase(v string) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetCurrentPhase(v)
	})
}

// UpdateCurrentPhase sets the "current_phase" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateCurrentPhase() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateCurrentPhase()
	})
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (u *InvestigationUpsertBulk) ClearCurrentPhase() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearCurrentPhase()
	})
}

// SetProgress sets the "progress" field.
func (u *InvestigationUpsertBulk) SetProgress(v float64) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetProgress(v)
	})
}

// AddProgress adds v to the "progress" field.
func (u *InvestigationUpsertBulk) AddProgress(v float64) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.AddProgress(v)
	})
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateProgress() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateProgress()
	})
}

// SetFindings sets the "findings" field.
func (u *InvestigationUpsertBulk) SetFindings(v []map[string]interface{}) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetFindings(v)
	})
}

// UpdateFindings sets the "findings" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateFindings() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateFindings()
	})
}

// ClearFindings clears the value of the "findings" field.
func (u *InvestigationUpsertBulk) ClearFindings() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearFindings()
	})
}

// SetSummaryText sets the "summary_text" field.
func (u *InvestigationUpsertBulk) SetSummaryText(v string) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetSummaryText(v)
	})
}

// UpdateSummaryText sets the "summary_text" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateSummaryText() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateSummaryText()
	})
}

// ClearSummaryText clears the value of the "summary_text" field.
func (u *InvestigationUpsertBulk) ClearSummaryText() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearSummaryText()
	})
}

// SetConfidence sets the "confidence" field.
func (u *InvestigationUpsertBulk) SetConfidence(v float64) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *InvestigationUpsertBulk) AddConfidence(v float64) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateConfidence() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateConfidence()
	})
}

// ClearConfidence clears the value of the "confidence" field.
func (u *InvestigationUpsertBulk) ClearConfidence() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearConfidence()
	})
}

// SetRecordsAnalyzed sets the "records_analyzed" field.
func (u *InvestigationUpsertBulk) SetRecordsAnalyzed(v int) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetRecordsAnalyzed(v)
	})
}

// AddRecordsAnalyzed adds v to the "records_analyzed" field.
func (u *InvestigationUpsertBulk) AddRecordsAnalyzed(v int) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.AddRecordsAnalyzed(v)
	})
}

// UpdateRecordsAnalyzed sets the "records_analyzed" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateRecordsAnalyzed() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateRecordsAnalyzed()
	})
}

// SetFindingsCount sets the "findings_count" field.
func (u *InvestigationUpsertBulk) SetFindingsCount(v int) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetFindingsCount(v)
	})
}

// AddFindingsCount adds v to the "findings_count" field.
func (u *InvestigationUpsertBulk) AddFindingsCount(v int) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.AddFindingsCount(v)
	})
}

// UpdateFindingsCount sets the "findings_count" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateFindingsCount() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateFindingsCount()
	})
}

// SetErrorKind sets the "error_kind" field.
func (u *InvestigationUpsertBulk) SetErrorKind(v string) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetErrorKind(v)
	})
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateErrorKind() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateErrorKind()
	})
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *InvestigationUpsertBulk) ClearErrorKind() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearErrorKind()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *InvestigationUpsertBulk) SetErrorMessage(v string) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateErrorMessage() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *InvestigationUpsertBulk) ClearErrorMessage() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *InvestigationUpsertBulk) SetCorrelationID(v string) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateCorrelationID() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateCorrelationID()
	})
}

// SetInvestigationMetadata sets the "investigation_metadata" field.
func (u *InvestigationUpsertBulk) SetInvestigationMetadata(v map[string]interface{}) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetInvestigationMetadata(v)
	})
}

// UpdateInvestigationMetadata sets the "investigation_metadata" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateInvestigationMetadata() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateInvestigationMetadata()
	})
}

// ClearInvestigationMetadata clears the value of the "investigation_metadata" field.
func (u *InvestigationUpsertBulk) ClearInvestigationMetadata() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearInvestigationMetadata()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InvestigationUpsertBulk) SetUpdatedAt(v time.Time) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateUpdatedAt() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *InvestigationUpsertBulk) SetStartedAt(v time.Time) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateStartedAt() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *InvestigationUpsertBulk) ClearStartedAt() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *InvestigationUpsertBulk) SetCompletedAt(v time.Time) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateCompletedAt() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *InvestigationUpsertBulk) ClearCompletedAt() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearCompletedAt()
	})
}

// SetPodID sets the "pod_id" field.
func (u *InvestigationUpsertBulk) SetPodID(v string) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdatePodID() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *InvestigationUpsertBulk) ClearPodID() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearPodID()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *InvestigationUpsertBulk) SetLastHeartbeatAt(v time.Time) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateLastHeartbeatAt() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *InvestigationUpsertBulk) ClearLastHeartbeatAt() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *InvestigationUpsertBulk) SetDeletedAt(v time.Time) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateDeletedAt() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *InvestigationUpsertBulk) ClearDeletedAt() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *InvestigationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the InvestigationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InvestigationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InvestigationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
