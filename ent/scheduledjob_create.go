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
	"github.com/transparencia-ai/veritas/ent/scheduledjob"
)

// ScheduledJobCreate is the builder for creating a ScheduledJob entity.
type ScheduledJobCreate struct {
	config
	mutation *ScheduledJobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetKind sets the "kind" field.
func (_c *ScheduledJobCreate) SetKind(v string) *ScheduledJobCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetIntervalSeconds sets the "interval_seconds" field.
func (_c *ScheduledJobCreate) SetIntervalSeconds(v int64) *ScheduledJobCreate {
	_c.mutation.SetIntervalSeconds(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *ScheduledJobCreate) SetPriority(v scheduledjob.Priority) *ScheduledJobCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillablePriority(v *scheduledjob.Priority) *ScheduledJobCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *ScheduledJobCreate) SetEnabled(v bool) *ScheduledJobCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableEnabled(v *bool) *ScheduledJobCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetParams sets the "params" field.
func (_c *ScheduledJobCreate) SetParams(v map[string]interface{}) *ScheduledJobCreate {
	_c.mutation.SetParams(v)
	return _c
}

// SetLastRunAt sets the "last_run_at" field.
func (_c *ScheduledJobCreate) SetLastRunAt(v time.Time) *ScheduledJobCreate {
	_c.mutation.SetLastRunAt(v)
	return _c
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableLastRunAt(v *time.Time) *ScheduledJobCreate {
	if v != nil {
		_c.SetLastRunAt(*v)
	}
	return _c
}

// SetNextRunAt sets the "next_run_at" field.
func (_c *ScheduledJobCreate) SetNextRunAt(v time.Time) *ScheduledJobCreate {
	_c.mutation.SetNextRunAt(v)
	return _c
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_c *ScheduledJobCreate) SetConsecutiveFailures(v int) *ScheduledJobCreate {
	_c.mutation.SetConsecutiveFailures(v)
	return _c
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableConsecutiveFailures(v *int) *ScheduledJobCreate {
	if v != nil {
		_c.SetConsecutiveFailures(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScheduledJobCreate) SetCreatedAt(v time.Time) *ScheduledJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableCreatedAt(v *time.Time) *ScheduledJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduledJobCreate) SetID(v string) *ScheduledJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ScheduledJobMutation object of the builder.
func (_c *ScheduledJobCreate) Mutation() *ScheduledJobMutation {
	return _c.mutation
}

// Save creates the ScheduledJob in the database.
func (_c *ScheduledJobCreate) Save(ctx context.Context) (*ScheduledJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduledJobCreate) SaveX(ctx context.Context) *ScheduledJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduledJobCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := scheduledjob.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := scheduledjob.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.ConsecutiveFailures(); !ok {
		v := scheduledjob.DefaultConsecutiveFailures
		_c.mutation.SetConsecutiveFailures(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scheduledjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduledJobCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ScheduledJob.kind"`)}
	}
	if _, ok := _c.mutation.IntervalSeconds(); !ok {
		return &ValidationError{Name: "interval_seconds", err: errors.New(`ent: missing required field "ScheduledJob.interval_seconds"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "ScheduledJob.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := scheduledjob.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "ScheduledJob.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "ScheduledJob.enabled"`)}
	}
	if _, ok := _c.mutation.NextRunAt(); !ok {
		return &ValidationError{Name: "next_run_at", err: errors.New(`ent: missing required field "ScheduledJob.next_run_at"`)}
	}
	if _, ok := _c.mutation.ConsecutiveFailures(); !ok {
		return &ValidationError{Name: "consecutive_failures", err: errors.New(`ent: missing required field "ScheduledJob.consecutive_failures"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScheduledJob.created_at"`)}
	}
	return nil
}

func (_c *ScheduledJobCreate) sqlSave(ctx context.Context) (*ScheduledJob, error) {
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
			return nil, fmt.Errorf("unexpected ScheduledJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduledJobCreate) createSpec() (*ScheduledJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduledJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scheduledjob.Table, sqlgraph.NewFieldSpec(scheduledjob.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(scheduledjob.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.IntervalSeconds(); ok {
		_spec.SetField(scheduledjob.FieldIntervalSeconds, field.TypeInt64, value)
		_node.IntervalSeconds = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(scheduledjob.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(scheduledjob.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.Params(); ok {
		_spec.SetField(scheduledjob.FieldParams, field.TypeJSON, value)
		_node.Params = value
	}
	if value, ok := _c.mutation.LastRunAt(); ok {
		_spec.SetField(scheduledjob.FieldLastRunAt, field.TypeTime, value)
		_node.LastRunAt = &value
	}
	if value, ok := _c.mutation.NextRunAt(); ok {
		_spec.SetField(scheduledjob.FieldNextRunAt, field.TypeTime, value)
		_node.NextRunAt = value
	}
	if value, ok := _c.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(scheduledjob.FieldConsecutiveFailures, field.TypeInt, value)
		_node.ConsecutiveFailures = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scheduledjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScheduledJob.Create().
//		SetKind(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScheduledJobUpsert) {
//			SetKind(v+v).
//		}).
//		Exec(ctx)
func (_c *ScheduledJobCreate) OnConflict(opts ...sql.ConflictOption) *ScheduledJobUpsertOne {
	_c.conflict = opts
	return &ScheduledJobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScheduledJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScheduledJobCreate) OnConflictColumns(columns ...string) *ScheduledJobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScheduledJobUpsertOne{
		create: _c,
	}
}

type (
	// ScheduledJobUpsertOne is the builder for "upsert"-ing
	//  one ScheduledJob node.
	ScheduledJobUpsertOne struct {
		create *ScheduledJobCreate
	}

	// ScheduledJobUpsert is the "OnConflict" setter.
	ScheduledJobUpsert struct {
		*sql.UpdateSet
	}
)

// SetKind sets the "kind" field.
func (u *ScheduledJobUpsert) SetKind(v string) *ScheduledJobUpsert {
	u.Set(scheduledjob.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ScheduledJobUpsert) UpdateKind() *ScheduledJobUpsert {
	u.SetExcluded(scheduledjob.FieldKind)
	return u
}

// SetIntervalSeconds sets the "interval_seconds" field.
func (u *ScheduledJobUpsert) SetIntervalSeconds(v int64) *ScheduledJobUpsert {
	u.Set(scheduledjob.FieldIntervalSeconds, v)
	return u
}

// UpdateIntervalSeconds sets the "interval_seconds" field to the value that was provided on create.
func (u *ScheduledJobUpsert) UpdateIntervalSeconds() *ScheduledJobUpsert {
	u.SetExcluded(scheduledjob.FieldIntervalSeconds)
	return u
}

// AddIntervalSeconds adds v to the "interval_seconds" field.
func (u *ScheduledJobUpsert) AddIntervalSeconds(v int64) *ScheduledJobUpsert {
	u.Add(scheduledjob.FieldIntervalSeconds, v)
	return u
}

// SetPriority sets the "priority" field.
func (u *ScheduledJobUpsert) SetPriority(v scheduledjob.Priority) *ScheduledJobUpsert {
	u.Set(scheduledjob.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ScheduledJobUpsert) UpdatePriority() *ScheduledJobUpsert {
	u.SetExcluded(scheduledjob.FieldPriority)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *ScheduledJobUpsert) SetEnabled(v bool) *ScheduledJobUpsert {
	u.Set(scheduledjob.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *ScheduledJobUpsert) UpdateEnabled() *ScheduledJobUpsert {
	u.SetExcluded(scheduledjob.FieldEnabled)
	return u
}

// SetParams sets the "params" field.
func (u *ScheduledJobUpsert) SetParams(v map[string]interface{}) *ScheduledJobUpsert {
	u.Set(scheduledjob.FieldParams, v)
	return u
}

// UpdateParams sets the "params" field to the value that was provided on create.
func (u *ScheduledJobUpsert) UpdateParams() *ScheduledJobUpsert {
	u.SetExcluded(scheduledjob.FieldParams)
	return u
}

// ClearParams clears the value of the "params" field.
func (u *ScheduledJobUpsert) ClearParams() *ScheduledJobUpsert {
	u.SetNull(scheduledjob.FieldParams)
	return u
}

// SetLastRunAt sets the "last_run_at" field.
func (u *ScheduledJobUpsert) SetLastRunAt(v time.Time) *ScheduledJobUpsert {
	u.Set(scheduledjob.FieldLastRunAt, v)
	return u
}

// UpdateLastRunAt sets the "last_run_at" field to the value that was provided on create.
func (u *ScheduledJobUpsert) UpdateLastRunAt() *ScheduledJobUpsert {
	u.SetExcluded(scheduledjob.FieldLastRunAt)
	return u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (u *ScheduledJobUpsert) ClearLastRunAt() *ScheduledJobUpsert {
	u.SetNull(scheduledjob.FieldLastRunAt)
	return u
}

// SetNextRunAt sets the "next_run_at" field.
func (u *ScheduledJobUpsert) SetNextRunAt(v time.Time) *ScheduledJobUpsert {
	u.Set(scheduledjob.FieldNextRunAt, v)
	return u
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *ScheduledJobUpsert) UpdateNextRunAt() *ScheduledJobUpsert {
	u.SetExcluded(scheduledjob.FieldNextRunAt)
	return u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (u *ScheduledJobUpsert) SetConsecutiveFailures(v int) *ScheduledJobUpsert {
	u.Set(scheduledjob.FieldConsecutiveFailures, v)
	return u
}

// UpdateConsecutiveFailures sets the "consecutive_failures" field to the value that was provided on create.
func (u *ScheduledJobUpsert) UpdateConsecutiveFailures() *ScheduledJobUpsert {
	u.SetExcluded(scheduledjob.FieldConsecutiveFailures)
	return u
}

// AddConsecutiveFailures adds v to the "consecutive_failures" field.
func (u *ScheduledJobUpsert) AddConsecutiveFailures(v int) *ScheduledJobUpsert {
	u.Add(scheduledjob.FieldConsecutiveFailures, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ScheduledJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(scheduledjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScheduledJobUpsertOne) UpdateNewValues() *ScheduledJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(scheduledjob.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(scheduledjob.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScheduledJob.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ScheduledJobUpsertOne) Ignore() *ScheduledJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScheduledJobUpsertOne) DoNothing() *ScheduledJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScheduledJobCreate.OnConflict
// documentation for more info.
func (u *ScheduledJobUpsertOne) Update(set func(*ScheduledJobUpsert)) *ScheduledJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScheduledJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetKind sets the "kind" field.
func (u *ScheduledJobUpsertOne) SetKind(v string) *ScheduledJobUpsertOne {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ScheduledJobUpsertOne) UpdateKind() *ScheduledJobUpsertOne {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.UpdateKind()
	})
}

// SetIntervalSeconds sets the "interval_seconds" field.
func (u *ScheduledJobUpsertOne) SetIntervalSeconds(v int64) *ScheduledJobUpsertOne {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.SetIntervalSeconds(v)
	})
}

// AddIntervalSeconds adds v to the "interval_seconds" field.
func (u *ScheduledJobUpsertOne) AddIntervalSeconds(v int64) *ScheduledJobUpsertOne {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.AddIntervalSeconds(v)
	})
}

// UpdateIntervalSeconds sets the "interval_seconds" field to the value that was provided on create.
func (u *ScheduledJobUpsertOne) UpdateIntervalSeconds() *ScheduledJobUpsertOne {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.UpdateIntervalSeconds()
	})
}

// SetPriority sets the "priority" field.
func (u *ScheduledJobUpsertOne) SetPriority(v scheduledjob.Priority) *ScheduledJobUpsertOne {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ScheduledJobUpsertOne) UpdatePriority() *ScheduledJobUpsertOne {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.UpdatePriority()
	})
}

// SetEnabled sets the "enabled" field.
func (u *ScheduledJobUpsertOne) SetEnabled(v bool) *ScheduledJobUpsertOne {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *ScheduledJobUpsertOne) UpdateEnabled() *ScheduledJobUpsertOne {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.UpdateEnabled()
	})
}

// SetParams sets the "params" field.
func (u *ScheduledJobUpsertOne) SetParams(v map[string]interface{}) *ScheduledJobUpsertOne {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.SetParams(v)
	})
}

// UpdateParams sets the "params" field to the value that was provided on create.
func (u *ScheduledJobUpsertOne) UpdateParams() *ScheduledJobUpsertOne {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.UpdateParams()
	})
}

// ClearParams clears the value of the "params" field.
func (u *ScheduledJobUpsertOne) ClearParams() *ScheduledJobUpsertOne {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.ClearParams()
	})
}

// SetLastRunAt sets the "last_run_at" field.
func (u *ScheduledJobUpsertOne) SetLastRunAt(v time.Time) *ScheduledJobUpsertOne {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.SetLastRunAt(v)
	})
}

// UpdateLastRunAt sets the "last_run_at" field to the value that was provided on create.
func (u *ScheduledJobUpsertOne) UpdateLastRunAt() *ScheduledJobUpsertOne {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.UpdateLastRunAt()
	})
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (u *ScheduledJobUpsertOne) ClearLastRunAt() *ScheduledJobUpsertOne {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.ClearLastRunAt()
	})
}

// SetNextRunAt sets the "next_run_at" field.
func (u *ScheduledJobUpsertOne) SetNextRunAt(v time.Time) *ScheduledJobUpsertOne {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.SetNextRunAt(v)
	})
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *ScheduledJobUpsertOne) UpdateNextRunAt() *ScheduledJobUpsertOne {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.UpdateNextRunAt()
	})
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (u *ScheduledJobUpsertOne) SetConsecutiveFailures(v int) *ScheduledJobUpsertOne {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.SetConsecutiveFailures(v)
	})
}

// AddConsecutiveFailures adds v to the "consecutive_failures" field.
func (u *ScheduledJobUpsertOne) AddConsecutiveFailures(v int) *ScheduledJobUpsertOne {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.AddConsecutiveFailures(v)
	})
}

// UpdateConsecutiveFailures sets the "consecutive_failures" field to the value that was provided on create.
func (u *ScheduledJobUpsertOne) UpdateConsecutiveFailures() *ScheduledJobUpsertOne {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.UpdateConsecutiveFailures()
	})
}

// Exec executes the query.
func (u *ScheduledJobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScheduledJobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScheduledJobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ScheduledJobUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ScheduledJobUpsertOne.ID is not supported by MySQL driver. Use ScheduledJobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ScheduledJobUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ScheduledJobCreateBulk is the builder for creating many ScheduledJob entities in bulk.
type ScheduledJobCreateBulk struct {
	config
	err      error
	builders []*ScheduledJobCreate
	conflict []sql.ConflictOption
}

// Save creates the ScheduledJob entities in the database.
func (_c *ScheduledJobCreateBulk) Save(ctx context.Context) ([]*ScheduledJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduledJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduledJobMutation)
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
func (_c *ScheduledJobCreateBulk) SaveX(ctx context.Context) []*ScheduledJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScheduledJob.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScheduledJobUpsert) {
//			SetKind(v+v).
//		}).
//		Exec(ctx)
func (_c *ScheduledJobCreateBulk) OnConflict(opts ...sql.ConflictOption) *ScheduledJobUpsertBulk {
	_c.conflict = opts
	return &ScheduledJobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScheduledJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScheduledJobCreateBulk) OnConflictColumns(columns ...string) *ScheduledJobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScheduledJobUpsertBulk{
		create: _c,
	}
}

// ScheduledJobUpsertBulk is the builder for "upsert"-ing
// a bulk of ScheduledJob nodes.
type ScheduledJobUpsertBulk struct {
	create *ScheduledJobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ScheduledJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(scheduledjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScheduledJobUpsertBulk) UpdateNewValues() *ScheduledJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(scheduledjob.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(scheduledjob.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScheduledJob.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ScheduledJobUpsertBulk) Ignore() *ScheduledJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScheduledJobUpsertBulk) DoNothing() *ScheduledJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScheduledJobCreateBulk.OnConflict
// documentation for more info.
func (u *ScheduledJobUpsertBulk) Update(set func(*ScheduledJobUpsert)) *ScheduledJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScheduledJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetKind sets the "kind" field.
func (u *ScheduledJobUpsertBulk) SetKind(v string) *ScheduledJobUpsertBulk {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ScheduledJobUpsertBulk) UpdateKind() *ScheduledJobUpsertBulk {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.UpdateKind()
	})
}

// SetIntervalSeconds sets the "interval_seconds" field.
func (u *ScheduledJobUpsertBulk) SetIntervalSeconds(v int64) *ScheduledJobUpsertBulk {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.SetIntervalSeconds(v)
	})
}

// AddIntervalSeconds adds v to the "interval_seconds" field.
func (u *ScheduledJobUpsertBulk) AddIntervalSeconds(v int64) *ScheduledJobUpsertBulk {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.AddIntervalSeconds(v)
	})
}

// UpdateIntervalSeconds sets the "interval_seconds" field to the value that was provided on create.
func (u *ScheduledJobUpsertBulk) UpdateIntervalSeconds() *ScheduledJobUpsertBulk {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.UpdateIntervalSeconds()
	})
}

// SetPriority sets the "priority" field.
func (u *ScheduledJobUpsertBulk) SetPriority(v scheduledjob.Priority) *ScheduledJobUpsertBulk {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ScheduledJobUpsertBulk) UpdatePriority() *ScheduledJobUpsertBulk {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.UpdatePriority()
	})
}

// SetEnabled sets the "enabled" field.
func (u *ScheduledJobUpsertBulk) SetEnabled(v bool) *ScheduledJobUpsertBulk {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *ScheduledJobUpsertBulk) UpdateEnabled() *ScheduledJobUpsertBulk {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.UpdateEnabled()
	})
}

// SetParams sets the "params" field.
func (u *ScheduledJobUpsertBulk) SetParams(v map[string]interface{}) *ScheduledJobUpsertBulk {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.SetParams(v)
	})
}

// UpdateParams sets the "params" field to the value that was provided on create.
func (u *ScheduledJobUpsertBulk) UpdateParams() *ScheduledJobUpsertBulk {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.UpdateParams()
	})
}

// ClearParams clears the value of the "params" field.
func (u *ScheduledJobUpsertBulk) ClearParams() *ScheduledJobUpsertBulk {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.ClearParams()
	})
}

// SetLastRunAt sets the "last_run_at" field.
func (u *ScheduledJobUpsertBulk) SetLastRunAt(v time.Time) *ScheduledJobUpsertBulk {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.SetLastRunAt(v)
	})
}

// UpdateLastRunAt sets the "last_run_at" field to the value that was provided on create.
func (u *ScheduledJobUpsertBulk) UpdateLastRunAt() *ScheduledJobUpsertBulk {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.UpdateLastRunAt()
	})
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (u *ScheduledJobUpsertBulk) ClearLastRunAt() *ScheduledJobUpsertBulk {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.ClearLastRunAt()
	})
}

// SetNextRunAt sets the "next_run_at" field.
func (u *ScheduledJobUpsertBulk) SetNextRunAt(v time.Time) *ScheduledJobUpsertBulk {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.SetNextRunAt(v)
	})
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *ScheduledJobUpsertBulk) UpdateNextRunAt() *ScheduledJobUpsertBulk {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.UpdateNextRunAt()
	})
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (u *ScheduledJobUpsertBulk) SetConsecutiveFailures(v int) *ScheduledJobUpsertBulk {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.SetConsecutiveFailures(v)
	})
}

// AddConsecutiveFailures adds v to the "consecutive_failures" field.
func (u *ScheduledJobUpsertBulk) AddConsecutiveFailures(v int) *ScheduledJobUpsertBulk {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.AddConsecutiveFailures(v)
	})
}

// UpdateConsecutiveFailures sets the "consecutive_failures" field to the value that was provided on create.
func (u *ScheduledJobUpsertBulk) UpdateConsecutiveFailures() *ScheduledJobUpsertBulk {
	return u.Update(func(s *ScheduledJobUpsert) {
		s.UpdateConsecutiveFailures()
	})
}

// Exec executes the query.
func (u *ScheduledJobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ScheduledJobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScheduledJobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScheduledJobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
