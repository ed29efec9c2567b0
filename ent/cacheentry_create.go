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
	"github.com/transparencia-ai/veritas/ent/cacheentry"
)

// CacheEntryCreate is the builder for creating a CacheEntry entity.
type CacheEntryCreate struct {
	config
	mutation *CacheEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetValue sets the "value" field.
func (_c *CacheEntryCreate) SetValue(v []byte) *CacheEntryCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetTTLClass sets the "ttl_class" field.
func (_c *CacheEntryCreate) SetTTLClass(v string) *CacheEntryCreate {
	_c.mutation.SetTTLClass(v)
	return _c
}

// SetNillableTTLClass sets the "ttl_class" field if the given value is not nil.
func (_c *CacheEntryCreate) SetNillableTTLClass(v *string) *CacheEntryCreate {
	if v != nil {
		_c.SetTTLClass(*v)
	}
	return _c
}

// SetOriginAPI sets the "origin_api" field.
func (_c *CacheEntryCreate) SetOriginAPI(v string) *CacheEntryCreate {
	_c.mutation.SetOriginAPI(v)
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *CacheEntryCreate) SetSizeBytes(v int) *CacheEntryCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_c *CacheEntryCreate) SetNillableSizeBytes(v *int) *CacheEntryCreate {
	if v != nil {
		_c.SetSizeBytes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CacheEntryCreate) SetCreatedAt(v time.Time) *CacheEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CacheEntryCreate) SetNillableCreatedAt(v *time.Time) *CacheEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *CacheEntryCreate) SetExpiresAt(v time.Time) *CacheEntryCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CacheEntryCreate) SetID(v string) *CacheEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CacheEntryMutation object of the builder.
func (_c *CacheEntryCreate) Mutation() *CacheEntryMutation {
	return _c.mutation
}

// Save creates the CacheEntry in the database.
func (_c *CacheEntryCreate) Save(ctx context.Context) (*CacheEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CacheEntryCreate) SaveX(ctx context.Context) *CacheEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CacheEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CacheEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CacheEntryCreate) defaults() {
	if _, ok := _c.mutation.TTLClass(); !ok {
		v := cacheentry.DefaultTTLClass
		_c.mutation.SetTTLClass(v)
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		v := cacheentry.DefaultSizeBytes
		_c.mutation.SetSizeBytes(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := cacheentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CacheEntryCreate) check() error {
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "CacheEntry.value"`)}
	}
	if _, ok := _c.mutation.TTLClass(); !ok {
		return &ValidationError{Name: "ttl_class", err: errors.New(`ent: missing required field "CacheEntry.ttl_class"`)}
	}
	if _, ok := _c.mutation.OriginAPI(); !ok {
		return &ValidationError{Name: "origin_api", err: errors.New(`ent: missing required field "CacheEntry.origin_api"`)}
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		return &ValidationError{Name: "size_bytes", err: errors.New(`ent: missing required field "CacheEntry.size_bytes"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CacheEntry.created_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "CacheEntry.expires_at"`)}
	}
	return nil
}

func (_c *CacheEntryCreate) sqlSave(ctx context.Context) (*CacheEntry, error) {
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
			return nil, fmt.Errorf("unexpected CacheEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CacheEntryCreate) createSpec() (*CacheEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &CacheEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cacheentry.Table, sqlgraph.NewFieldSpec(cacheentry.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(cacheentry.FieldValue, field.TypeBytes, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.TTLClass(); ok {
		_spec.SetField(cacheentry.FieldTTLClass, field.TypeString, value)
		_node.TTLClass = value
	}
	if value, ok := _c.mutation.OriginAPI(); ok {
		_spec.SetField(cacheentry.FieldOriginAPI, field.TypeString, value)
		_node.OriginAPI = value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(cacheentry.FieldSizeBytes, field.TypeInt, value)
		_node.SizeBytes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(cacheentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(cacheentry.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CacheEntry.Create().
//		SetValue(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CacheEntryUpsert) {
//			SetValue(v+v).
//		}).
//		Exec(ctx)
func (_c *CacheEntryCreate) OnConflict(opts ...sql.ConflictOption) *CacheEntryUpsertOne {
	_c.conflict = opts
	return &CacheEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CacheEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CacheEntryCreate) OnConflictColumns(columns ...string) *CacheEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CacheEntryUpsertOne{
		create: _c,
	}
}

type (
	// CacheEntryUpsertOne is the builder for "upsert"-ing
	//  one CacheEntry node.
	CacheEntryUpsertOne struct {
		create *CacheEntryCreate
	}

	// CacheEntryUpsert is the "OnConflict" setter.
	CacheEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetValue sets the "value" field.
func (u *CacheEntryUpsert) SetValue(v []byte) *CacheEntryUpsert {
	u.Set(cacheentry.FieldValue, v)
	return u
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *CacheEntryUpsert) UpdateValue() *CacheEntryUpsert {
	u.SetExcluded(cacheentry.FieldValue)
	return u
}

// SetTTLClass sets the "ttl_class" field.
func (u *CacheEntryUpsert) SetTTLClass(v string) *CacheEntryUpsert {
	u.Set(cacheentry.FieldTTLClass, v)
	return u
}

// UpdateTTLClass sets the "ttl_class" field to the value that was provided on create.
func (u *CacheEntryUpsert) UpdateTTLClass() *CacheEntryUpsert {
	u.SetExcluded(cacheentry.FieldTTLClass)
	return u
}

// SetOriginAPI sets the "origin_api" field.
func (u *CacheEntryUpsert) SetOriginAPI(v string) *CacheEntryUpsert {
	u.Set(cacheentry.FieldOriginAPI, v)
	return u
}

// UpdateOriginAPI sets the "origin_api" field to the value that was provided on create.
func (u *CacheEntryUpsert) UpdateOriginAPI() *CacheEntryUpsert {
	u.SetExcluded(cacheentry.FieldOriginAPI)
	return u
}

// SetSizeBytes sets the "size_bytes" field.
func (u *CacheEntryUpsert) SetSizeBytes(v int) *CacheEntryUpsert {
	u.Set(cacheentry.FieldSizeBytes, v)
	return u
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *CacheEntryUpsert) UpdateSizeBytes() *CacheEntryUpsert {
	u.SetExcluded(cacheentry.FieldSizeBytes)
	return u
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *CacheEntryUpsert) AddSizeBytes(v int) *CacheEntryUpsert {
	u.Add(cacheentry.FieldSizeBytes, v)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *CacheEntryUpsert) SetCreatedAt(v time.Time) *CacheEntryUpsert {
	u.Set(cacheentry.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CacheEntryUpsert) UpdateCreatedAt() *CacheEntryUpsert {
	u.SetExcluded(cacheentry.FieldCreatedAt)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *CacheEntryUpsert) SetExpiresAt(v time.Time) *CacheEntryUpsert {
	u.Set(cacheentry.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *CacheEntryUpsert) UpdateExpiresAt() *CacheEntryUpsert {
	u.SetExcluded(cacheentry.FieldExpiresAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CacheEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(cacheentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CacheEntryUpsertOne) UpdateNewValues() *CacheEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(cacheentry.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CacheEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CacheEntryUpsertOne) Ignore() *CacheEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CacheEntryUpsertOne) DoNothing() *CacheEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CacheEntryCreate.OnConflict
// documentation for more info.
func (u *CacheEntryUpsertOne) Update(set func(*CacheEntryUpsert)) *CacheEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CacheEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetValue sets the "value" field.
func (u *CacheEntryUpsertOne) SetValue(v []byte) *CacheEntryUpsertOne {
	return u.Update(func(s *CacheEntryUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *CacheEntryUpsertOne) UpdateValue() *CacheEntryUpsertOne {
	return u.Update(func(s *CacheEntryUpsert) {
		s.UpdateValue()
	})
}

// SetTTLClass sets the "ttl_class" field.
func (u *CacheEntryUpsertOne) SetTTLClass(v string) *CacheEntryUpsertOne {
	return u.Update(func(s *CacheEntryUpsert) {
		s.SetTTLClass(v)
	})
}

// UpdateTTLClass sets the "ttl_class" field to the value that was provided on create.
func (u *CacheEntryUpsertOne) UpdateTTLClass() *CacheEntryUpsertOne {
	return u.Update(func(s *CacheEntryUpsert) {
		s.UpdateTTLClass()
	})
}

// SetOriginAPI sets the "origin_api" field.
func (u *CacheEntryUpsertOne) SetOriginAPI(v string) *CacheEntryUpsertOne {
	return u.Update(func(s *CacheEntryUpsert) {
		s.SetOriginAPI(v)
	})
}

// UpdateOriginAPI sets the "origin_api" field to the value that was provided on create.
func (u *CacheEntryUpsertOne) UpdateOriginAPI() *CacheEntryUpsertOne {
	return u.Update(func(s *CacheEntryUpsert) {
		s.UpdateOriginAPI()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *CacheEntryUpsertOne) SetSizeBytes(v int) *CacheEntryUpsertOne {
	return u.Update(func(s *CacheEntryUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *CacheEntryUpsertOne) AddSizeBytes(v int) *CacheEntryUpsertOne {
	return u.Update(func(s *CacheEntryUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *CacheEntryUpsertOne) UpdateSizeBytes() *CacheEntryUpsertOne {
	return u.Update(func(s *CacheEntryUpsert) {
		s.UpdateSizeBytes()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *CacheEntryUpsertOne) SetCreatedAt(v time.Time) *CacheEntryUpsertOne {
	return u.Update(func(s *CacheEntryUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CacheEntryUpsertOne) UpdateCreatedAt() *CacheEntryUpsertOne {
	return u.Update(func(s *CacheEntryUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *CacheEntryUpsertOne) SetExpiresAt(v time.Time) *CacheEntryUpsertOne {
	return u.Update(func(s *CacheEntryUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *CacheEntryUpsertOne) UpdateExpiresAt() *CacheEntryUpsertOne {
	return u.Update(func(s *CacheEntryUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *CacheEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CacheEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CacheEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CacheEntryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CacheEntryUpsertOne.ID is not supported by MySQL driver. Use CacheEntryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CacheEntryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CacheEntryCreateBulk is the builder for creating many CacheEntry entities in bulk.
type CacheEntryCreateBulk struct {
	config
	err      error
	builders []*CacheEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the CacheEntry entities in the database.
func (_c *CacheEntryCreateBulk) Save(ctx context.Context) ([]*CacheEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CacheEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CacheEntryMutation)
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
func (_c *CacheEntryCreateBulk) SaveX(ctx context.Context) []*CacheEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CacheEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CacheEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CacheEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CacheEntryUpsert) {
//			SetValue(v+v).
//		}).
//		Exec(ctx)
func (_c *CacheEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *CacheEntryUpsertBulk {
	_c.conflict = opts
	return &CacheEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CacheEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CacheEntryCreateBulk) OnConflictColumns(columns ...string) *CacheEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CacheEntryUpsertBulk{
		create: _c,
	}
}

// CacheEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of CacheEntry nodes.
type CacheEntryUpsertBulk struct {
	create *CacheEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CacheEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(cacheentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CacheEntryUpsertBulk) UpdateNewValues() *CacheEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(cacheentry.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CacheEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CacheEntryUpsertBulk) Ignore() *CacheEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CacheEntryUpsertBulk) DoNothing() *CacheEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CacheEntryCreateBulk.OnConflict
// documentation for more info.
func (u *CacheEntryUpsertBulk) Update(set func(*CacheEntryUpsert)) *CacheEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CacheEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetValue sets the "value" field.
func (u *CacheEntryUpsertBulk) SetValue(v []byte) *CacheEntryUpsertBulk {
	return u.Update(func(s *CacheEntryUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *CacheEntryUpsertBulk) UpdateValue() *CacheEntryUpsertBulk {
	return u.Update(func(s *CacheEntryUpsert) {
		s.UpdateValue()
	})
}

// SetTTLClass sets the "ttl_class" field.
func (u *CacheEntryUpsertBulk) SetTTLClass(v string) *CacheEntryUpsertBulk {
	return u.Update(func(s *CacheEntryUpsert) {
		s.SetTTLClass(v)
	})
}

// UpdateTTLClass sets the "ttl_class" field to the value that was provided on create.
func (u *CacheEntryUpsertBulk) UpdateTTLClass() *CacheEntryUpsertBulk {
	return u.Update(func(s *CacheEntryUpsert) {
		s.UpdateTTLClass()
	})
}

// SetOriginAPI sets the "origin_api" field.
func (u *CacheEntryUpsertBulk) SetOriginAPI(v string) *CacheEntryUpsertBulk {
	return u.Update(func(s *CacheEntryUpsert) {
		s.SetOriginAPI(v)
	})
}

// UpdateOriginAPI sets the "origin_api" field to the value that was provided on create.
func (u *CacheEntryUpsertBulk) UpdateOriginAPI() *CacheEntryUpsertBulk {
	return u.Update(func(s *CacheEntryUpsert) {
		s.UpdateOriginAPI()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *CacheEntryUpsertBulk) SetSizeBytes(v int) *CacheEntryUpsertBulk {
	return u.Update(func(s *CacheEntryUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *CacheEntryUpsertBulk) AddSizeBytes(v int) *CacheEntryUpsertBulk {
	return u.Update(func(s *CacheEntryUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *CacheEntryUpsertBulk) UpdateSizeBytes() *CacheEntryUpsertBulk {
	return u.Update(func(s *CacheEntryUpsert) {
		s.UpdateSizeBytes()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *CacheEntryUpsertBulk) SetCreatedAt(v time.Time) *CacheEntryUpsertBulk {
	return u.Update(func(s *CacheEntryUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CacheEntryUpsertBulk) UpdateCreatedAt() *CacheEntryUpsertBulk {
	return u.Update(func(s *CacheEntryUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *CacheEntryUpsertBulk) SetExpiresAt(v time.Time) *CacheEntryUpsertBulk {
	return u.Update(func(s *CacheEntryUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *CacheEntryUpsertBulk) UpdateExpiresAt() *CacheEntryUpsertBulk {
	return u.Update(func(s *CacheEntryUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *CacheEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CacheEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CacheEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CacheEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
