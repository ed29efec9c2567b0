// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/transparencia-ai/veritas/ent/predicate"
	"github.com/transparencia-ai/veritas/ent/scheduledjob"
)

// ScheduledJobUpdate is the builder for updating ScheduledJob entities.
type ScheduledJobUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduledJobMutation
}

// Where appends a list predicates to the ScheduledJobUpdate builder.
func (_u *ScheduledJobUpdate) Where(ps ...predicate.ScheduledJob) *ScheduledJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *ScheduledJobUpdate) SetKind(v string) *ScheduledJobUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableKind(v *string) *ScheduledJobUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetIntervalSeconds sets the "interval_seconds" field.
func (_u *ScheduledJobUpdate) SetIntervalSeconds(v int64) *ScheduledJobUpdate {
	_u.mutation.ResetIntervalSeconds()
	_u.mutation.SetIntervalSeconds(v)
	return _u
}

// SetNillableIntervalSeconds sets the "interval_seconds" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableIntervalSeconds(v *int64) *ScheduledJobUpdate {
	if v != nil {
		_u.SetIntervalSeconds(*v)
	}
	return _u
}

// AddIntervalSeconds adds value to the "interval_seconds" field.
func (_u *ScheduledJobUpdate) AddIntervalSeconds(v int64) *ScheduledJobUpdate {
	_u.mutation.AddIntervalSeconds(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ScheduledJobUpdate) SetPriority(v scheduledjob.Priority) *ScheduledJobUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillablePriority(v *scheduledjob.Priority) *ScheduledJobUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ScheduledJobUpdate) SetEnabled(v bool) *ScheduledJobUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableEnabled(v *bool) *ScheduledJobUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetParams sets the "params" field.
func (_u *ScheduledJobUpdate) SetParams(v map[string]interface{}) *ScheduledJobUpdate {
	_u.mutation.SetParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *ScheduledJobUpdate) ClearParams() *ScheduledJobUpdate {
	_u.mutation.ClearParams()
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *ScheduledJobUpdate) SetLastRunAt(v time.Time) *ScheduledJobUpdate {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableLastRunAt(v *time.Time) *ScheduledJobUpdate {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *ScheduledJobUpdate) ClearLastRunAt() *ScheduledJobUpdate {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *ScheduledJobUpdate) SetNextRunAt(v time.Time) *ScheduledJobUpdate {
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableNextRunAt(v *time.Time) *ScheduledJobUpdate {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *ScheduledJobUpdate) SetConsecutiveFailures(v int) *ScheduledJobUpdate {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableConsecutiveFailures(v *int) *ScheduledJobUpdate {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *ScheduledJobUpdate) AddConsecutiveFailures(v int) *ScheduledJobUpdate {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// Mutation returns the ScheduledJobMutation object of the builder.
func (_u *ScheduledJobUpdate) Mutation() *ScheduledJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduledJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduledJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledJobUpdate) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := scheduledjob.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "ScheduledJob.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduledJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledjob.Table, scheduledjob.Columns, sqlgraph.NewFieldSpec(scheduledjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(scheduledjob.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntervalSeconds(); ok {
		_spec.SetField(scheduledjob.FieldIntervalSeconds, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIntervalSeconds(); ok {
		_spec.AddField(scheduledjob.FieldIntervalSeconds, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(scheduledjob.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(scheduledjob.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(scheduledjob.FieldParams, field.TypeJSON, value)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(scheduledjob.FieldParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(scheduledjob.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(scheduledjob.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(scheduledjob.FieldNextRunAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(scheduledjob.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(scheduledjob.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduledJobUpdateOne is the builder for updating a single ScheduledJob entity.
type ScheduledJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduledJobMutation
}

// SetKind sets the "kind" field.
func (_u *ScheduledJobUpdateOne) SetKind(v string) *ScheduledJobUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableKind(v *string) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetIntervalSeconds sets the "interval_seconds" field.
func (_u *ScheduledJobUpdateOne) SetIntervalSeconds(v int64) *ScheduledJobUpdateOne {
	_u.mutation.ResetIntervalSeconds()
	_u.mutation.SetIntervalSeconds(v)
	return _u
}

// SetNillableIntervalSeconds sets the "interval_seconds" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableIntervalSeconds(v *int64) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetIntervalSeconds(*v)
	}
	return _u
}

// AddIntervalSeconds adds value to the "interval_seconds" field.
func (_u *ScheduledJobUpdateOne) AddIntervalSeconds(v int64) *ScheduledJobUpdateOne {
	_u.mutation.AddIntervalSeconds(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ScheduledJobUpdateOne) SetPriority(v scheduledjob.Priority) *ScheduledJobUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillablePriority(v *scheduledjob.Priority) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ScheduledJobUpdateOne) SetEnabled(v bool) *ScheduledJobUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableEnabled(v *bool) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetParams sets the "params" field.
func (_u *ScheduledJobUpdateOne) SetParams(v map[string]interface{}) *ScheduledJobUpdateOne {
	_u.mutation.SetParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *ScheduledJobUpdateOne) ClearParams() *ScheduledJobUpdateOne {
	_u.mutation.ClearParams()
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *ScheduledJobUpdateOne) SetLastRunAt(v time.Time) *ScheduledJobUpdateOne {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableLastRunAt(v *time.Time) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *ScheduledJobUpdateOne) ClearLastRunAt() *ScheduledJobUpdateOne {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *ScheduledJobUpdateOne) SetNextRunAt(v time.Time) *ScheduledJobUpdateOne {
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableNextRunAt(v *time.Time) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *ScheduledJobUpdateOne) SetConsecutiveFailures(v int) *ScheduledJobUpdateOne {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableConsecutiveFailures(v *int) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *ScheduledJobUpdateOne) AddConsecutiveFailures(v int) *ScheduledJobUpdateOne {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// Mutation returns the ScheduledJobMutation object of the builder.
func (_u *ScheduledJobUpdateOne) Mutation() *ScheduledJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduledJobUpdate builder.
func (_u *ScheduledJobUpdateOne) Where(ps ...predicate.ScheduledJob) *ScheduledJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduledJobUpdateOne) Select(field string, fields ...string) *ScheduledJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduledJob entity.
func (_u *ScheduledJobUpdateOne) Save(ctx context.Context) (*ScheduledJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledJobUpdateOne) SaveX(ctx context.Context) *ScheduledJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduledJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledJobUpdateOne) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := scheduledjob.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "ScheduledJob.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduledJobUpdateOne) sqlSave(ctx context.Context) (_node *ScheduledJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledjob.Table, scheduledjob.Columns, sqlgraph.NewFieldSpec(scheduledjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduledJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduledjob.FieldID)
		for _, f := range fields {
			if !scheduledjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheduledjob.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(scheduledjob.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntervalSeconds(); ok {
		_spec.SetField(scheduledjob.FieldIntervalSeconds, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIntervalSeconds(); ok {
		_spec.AddField(scheduledjob.FieldIntervalSeconds, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(scheduledjob.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(scheduledjob.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(scheduledjob.FieldParams, field.TypeJSON, value)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(scheduledjob.FieldParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(scheduledjob.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(scheduledjob.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(scheduledjob.FieldNextRunAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(scheduledjob.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(scheduledjob.FieldConsecutiveFailures, field.TypeInt, value)
	}
	_node = &ScheduledJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
