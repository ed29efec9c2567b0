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
	"github.com/transparencia-ai/veritas/ent/cacheentry"
	"github.com/transparencia-ai/veritas/ent/predicate"
)

// CacheEntryUpdate is the builder for updating CacheEntry entities.
type CacheEntryUpdate struct {
	config
	hooks    []Hook
	mutation *CacheEntryMutation
}

// Where appends a list predicates to the CacheEntryUpdate builder.
func (_u *CacheEntryUpdate) Where(ps ...predicate.CacheEntry) *CacheEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetValue sets the "value" field.
func (_u *CacheEntryUpdate) SetValue(v []byte) *CacheEntryUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetTTLClass sets the "ttl_class" field.
func (_u *CacheEntryUpdate) SetTTLClass(v string) *CacheEntryUpdate {
	_u.mutation.SetTTLClass(v)
	return _u
}

// SetNillableTTLClass sets the "ttl_class" field if the given value is not nil.
func (_u *CacheEntryUpdate) SetNillableTTLClass(v *string) *CacheEntryUpdate {
	if v != nil {
		_u.SetTTLClass(*v)
	}
	return _u
}

// SetOriginAPI sets the "origin_api" field.
func (_u *CacheEntryUpdate) SetOriginAPI(v string) *CacheEntryUpdate {
	_u.mutation.SetOriginAPI(v)
	return _u
}

// SetNillableOriginAPI sets the "origin_api" field if the given value is not nil.
func (_u *CacheEntryUpdate) SetNillableOriginAPI(v *string) *CacheEntryUpdate {
	if v != nil {
		_u.SetOriginAPI(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *CacheEntryUpdate) SetSizeBytes(v int) *CacheEntryUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *CacheEntryUpdate) SetNillableSizeBytes(v *int) *CacheEntryUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *CacheEntryUpdate) AddSizeBytes(v int) *CacheEntryUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CacheEntryUpdate) SetCreatedAt(v time.Time) *CacheEntryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CacheEntryUpdate) SetNillableCreatedAt(v *time.Time) *CacheEntryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *CacheEntryUpdate) SetExpiresAt(v time.Time) *CacheEntryUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *CacheEntryUpdate) SetNillableExpiresAt(v *time.Time) *CacheEntryUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the CacheEntryMutation object of the builder.
func (_u *CacheEntryUpdate) Mutation() *CacheEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CacheEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CacheEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CacheEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CacheEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CacheEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(cacheentry.Table, cacheentry.Columns, sqlgraph.NewFieldSpec(cacheentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(cacheentry.FieldValue, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.TTLClass(); ok {
		_spec.SetField(cacheentry.FieldTTLClass, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginAPI(); ok {
		_spec.SetField(cacheentry.FieldOriginAPI, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(cacheentry.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(cacheentry.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(cacheentry.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(cacheentry.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cacheentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CacheEntryUpdateOne is the builder for updating a single CacheEntry entity.
type CacheEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CacheEntryMutation
}

// SetValue sets the "value" field.
func (_u *CacheEntryUpdateOne) SetValue(v []byte) *CacheEntryUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetTTLClass sets the "ttl_class" field.
func (_u *CacheEntryUpdateOne) SetTTLClass(v string) *CacheEntryUpdateOne {
	_u.mutation.SetTTLClass(v)
	return _u
}

// SetNillableTTLClass sets the "ttl_class" field if the given value is not nil.
func (_u *CacheEntryUpdateOne) SetNillableTTLClass(v *string) *CacheEntryUpdateOne {
	if v != nil {
		_u.SetTTLClass(*v)
	}
	return _u
}

// SetOriginAPI sets the "origin_api" field.
func (_u *CacheEntryUpdateOne) SetOriginAPI(v string) *CacheEntryUpdateOne {
	_u.mutation.SetOriginAPI(v)
	return _u
}

// SetNillableOriginAPI sets the "origin_api" field if the given value is not nil.
func (_u *CacheEntryUpdateOne) SetNillableOriginAPI(v *string) *CacheEntryUpdateOne {
	if v != nil {
		_u.SetOriginAPI(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *CacheEntryUpdateOne) SetSizeBytes(v int) *CacheEntryUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *CacheEntryUpdateOne) SetNillableSizeBytes(v *int) *CacheEntryUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *CacheEntryUpdateOne) AddSizeBytes(v int) *CacheEntryUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CacheEntryUpdateOne) SetCreatedAt(v time.Time) *CacheEntryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CacheEntryUpdateOne) SetNillableCreatedAt(v *time.Time) *CacheEntryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *CacheEntryUpdateOne) SetExpiresAt(v time.Time) *CacheEntryUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *CacheEntryUpdateOne) SetNillableExpiresAt(v *time.Time) *CacheEntryUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the CacheEntryMutation object of the builder.
func (_u *CacheEntryUpdateOne) Mutation() *CacheEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the CacheEntryUpdate builder.
func (_u *CacheEntryUpdateOne) Where(ps ...predicate.CacheEntry) *CacheEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CacheEntryUpdateOne) Select(field string, fields ...string) *CacheEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CacheEntry entity.
func (_u *CacheEntryUpdateOne) Save(ctx context.Context) (*CacheEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CacheEntryUpdateOne) SaveX(ctx context.Context) *CacheEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CacheEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CacheEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CacheEntryUpdateOne) sqlSave(ctx context.Context) (_node *CacheEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(cacheentry.Table, cacheentry.Columns, sqlgraph.NewFieldSpec(cacheentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CacheEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cacheentry.FieldID)
		for _, f := range fields {
			if !cacheentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cacheentry.FieldID {
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
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(cacheentry.FieldValue, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.TTLClass(); ok {
		_spec.SetField(cacheentry.FieldTTLClass, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginAPI(); ok {
		_spec.SetField(cacheentry.FieldOriginAPI, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(cacheentry.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(cacheentry.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(cacheentry.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(cacheentry.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &CacheEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cacheentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
