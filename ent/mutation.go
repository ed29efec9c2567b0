// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/transparencia-ai/veritas/ent/cacheentry"
	"github.com/transparencia-ai/veritas/ent/event"
	"github.com/transparencia-ai/veritas/ent/investigation"
	"github.com/transparencia-ai/veritas/ent/predicate"
	"github.com/transparencia-ai/veritas/ent/scheduledjob"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCacheEntry    = "CacheEntry"
	TypeEvent         = "Event"
	TypeInvestigation = "Investigation"
	TypeScheduledJob  = "ScheduledJob"
)

// CacheEntryMutation represents an operation that mutates the CacheEntry nodes in the graph.
type CacheEntryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	value         *[]byte
	ttl_class     *string
	origin_api    *string
	size_bytes    *int
	addsize_bytes *int
	created_at    *time.Time
	expires_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*CacheEntry, error)
	predicates    []predicate.CacheEntry
}

var _ ent.Mutation = (*CacheEntryMutation)(nil)

// cacheentryOption allows management of the mutation configuration using functional options.
type cacheentryOption func(*CacheEntryMutation)

// newCacheEntryMutation creates new mutation for the CacheEntry entity.
func newCacheEntryMutation(c config, op Op, opts ...cacheentryOption) *CacheEntryMutation {
	m := &CacheEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeCacheEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCacheEntryID sets the ID field of the mutation.
func withCacheEntryID(id string) cacheentryOption {
	return func(m *CacheEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *CacheEntry
		)
		m.oldValue = func(ctx context.Context) (*CacheEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CacheEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCacheEntry sets the old CacheEntry of the mutation.
func withCacheEntry(node *CacheEntry) cacheentryOption {
	return func(m *CacheEntryMutation) {
		m.oldValue = func(context.Context) (*CacheEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CacheEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CacheEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CacheEntry entities.
func (m *CacheEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CacheEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CacheEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CacheEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetValue sets the "value" field.
func (m *CacheEntryMutation) SetValue(b []byte) {
	m.value = &b
}

// Value returns the value of the "value" field in the mutation.
func (m *CacheEntryMutation) Value() (r []byte, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the CacheEntry entity.
// If the CacheEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CacheEntryMutation) OldValue(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *CacheEntryMutation) ResetValue() {
	m.value = nil
}

// SetTTLClass sets the "ttl_class" field.
func (m *CacheEntryMutation) SetTTLClass(s string) {
	m.ttl_class = &s
}

// TTLClass returns the value of the "ttl_class" field in the mutation.
func (m *CacheEntryMutation) TTLClass() (r string, exists bool) {
	v := m.ttl_class
	if v == nil {
		return
	}
	return *v, true
}

// OldTTLClass returns the old "ttl_class" field's value of the CacheEntry entity.
// If the CacheEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CacheEntryMutation) OldTTLClass(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTTLClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTTLClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTTLClass: %w", err)
	}
	return oldValue.TTLClass, nil
}

// ResetTTLClass resets all changes to the "ttl_class" field.
func (m *CacheEntryMutation) ResetTTLClass() {
	m.ttl_class = nil
}

// SetOriginAPI sets the "origin_api" field.
func (m *CacheEntryMutation) SetOriginAPI(s string) {
	m.origin_api = &s
}

// OriginAPI returns the value of the "origin_api" field in the mutation.
func (m *CacheEntryMutation) OriginAPI() (r string, exists bool) {
	v := m.origin_api
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginAPI returns the old "origin_api" field's value of the CacheEntry entity.
// If the CacheEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CacheEntryMutation) OldOriginAPI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginAPI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginAPI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginAPI: %w", err)
	}
	return oldValue.OriginAPI, nil
}

// ResetOriginAPI resets all changes to the "origin_api" field.
func (m *CacheEntryMutation) ResetOriginAPI() {
	m.origin_api = nil
}

// SetSizeBytes sets the "size_bytes" field.
func (m *CacheEntryMutation) SetSizeBytes(i int) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *CacheEntryMutation) SizeBytes() (r int, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the CacheEntry entity.
// If the CacheEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CacheEntryMutation) OldSizeBytes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *CacheEntryMutation) AddSizeBytes(i int) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *CacheEntryMutation) AddedSizeBytes() (r int, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *CacheEntryMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CacheEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CacheEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CacheEntry entity.
// If the CacheEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CacheEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CacheEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *CacheEntryMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *CacheEntryMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the CacheEntry entity.
// If the CacheEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CacheEntryMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *CacheEntryMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// Where appends a list predicates to the CacheEntryMutation builder.
func (m *CacheEntryMutation) Where(ps ...predicate.CacheEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CacheEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CacheEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CacheEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CacheEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CacheEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CacheEntry).
func (m *CacheEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CacheEntryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.value != nil {
		fields = append(fields, cacheentry.FieldValue)
	}
	if m.ttl_class != nil {
		fields = append(fields, cacheentry.FieldTTLClass)
	}
	if m.origin_api != nil {
		fields = append(fields, cacheentry.FieldOriginAPI)
	}
	if m.size_bytes != nil {
		fields = append(fields, cacheentry.FieldSizeBytes)
	}
	if m.created_at != nil {
		fields = append(fields, cacheentry.FieldCreatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, cacheentry.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CacheEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cacheentry.FieldValue:
		return m.Value()
	case cacheentry.FieldTTLClass:
		return m.TTLClass()
	case cacheentry.FieldOriginAPI:
		return m.OriginAPI()
	case cacheentry.FieldSizeBytes:
		return m.SizeBytes()
	case cacheentry.FieldCreatedAt:
		return m.CreatedAt()
	case cacheentry.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CacheEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cacheentry.FieldValue:
		return m.OldValue(ctx)
	case cacheentry.FieldTTLClass:
		return m.OldTTLClass(ctx)
	case cacheentry.FieldOriginAPI:
		return m.OldOriginAPI(ctx)
	case cacheentry.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case cacheentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case cacheentry.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown CacheEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CacheEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cacheentry.FieldValue:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case cacheentry.FieldTTLClass:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTTLClass(v)
		return nil
	case cacheentry.FieldOriginAPI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginAPI(v)
		return nil
	case cacheentry.FieldSizeBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case cacheentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case cacheentry.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown CacheEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CacheEntryMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, cacheentry.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CacheEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cacheentry.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CacheEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cacheentry.FieldSizeBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown CacheEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CacheEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CacheEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CacheEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CacheEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CacheEntryMutation) ResetField(name string) error {
	switch name {
	case cacheentry.FieldValue:
		m.ResetValue()
		return nil
	case cacheentry.FieldTTLClass:
		m.ResetTTLClass()
		return nil
	case cacheentry.FieldOriginAPI:
		m.ResetOriginAPI()
		return nil
	case cacheentry.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case cacheentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case cacheentry.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown CacheEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CacheEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CacheEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CacheEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CacheEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CacheEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CacheEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CacheEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CacheEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CacheEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CacheEntry edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	channel              *string
	payload              *map[string]interface{}
	created_at           *time.Time
	clearedFields        map[string]struct{}
	investigation        *string
	clearedinvestigation bool
	done                 bool
	oldValue             func(context.Context) (*Event, error)
	predicates           []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInvestigationID sets the "investigation_id" field.
func (m *EventMutation) SetInvestigationID(s string) {
	m.investigation = &s
}

// InvestigationID returns the value of the "investigation_id" field in the mutation.
func (m *EventMutation) InvestigationID() (r string, exists bool) {
	v := m.investigation
	if v == nil {
		return
	}
	return *v, true
}

// OldInvestigationID returns the old "investigation_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldInvestigationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvestigationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvestigationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvestigationID: %w", err)
	}
	return oldValue.InvestigationID, nil
}

// ResetInvestigationID resets all changes to the "investigation_id" field.
func (m *EventMutation) ResetInvestigationID() {
	m.investigation = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearInvestigation clears the "investigation" edge to the Investigation entity.
func (m *EventMutation) ClearInvestigation() {
	m.clearedinvestigation = true
	m.clearedFields[event.FieldInvestigationID] = struct{}{}
}

// InvestigationCleared reports if the "investigation" edge to the Investigation entity was cleared.
func (m *EventMutation) InvestigationCleared() bool {
	return m.clearedinvestigation
}

// InvestigationIDs returns the "investigation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InvestigationID instead. It exists only for internal usage by the builders.
func (m *EventMutation) InvestigationIDs() (ids []string) {
	if id := m.investigation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInvestigation resets all changes to the "investigation" edge.
func (m *EventMutation) ResetInvestigation() {
	m.investigation = nil
	m.clearedinvestigation = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.investigation != nil {
		fields = append(fields, event.FieldInvestigationID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldInvestigationID:
		return m.InvestigationID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldInvestigationID:
		return m.OldInvestigationID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldInvestigationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvestigationID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldInvestigationID:
		m.ResetInvestigationID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.investigation != nil {
		edges = append(edges, event.EdgeInvestigation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeInvestigation:
		if id := m.investigation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinvestigation {
		edges = append(edges, event.EdgeInvestigation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeInvestigation:
		return m.clearedinvestigation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeInvestigation:
		m.ClearInvestigation()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeInvestigation:
		m.ResetInvestigation()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// InvestigationMutation represents an operation that mutates the Investigation nodes in the graph.
type InvestigationMutation struct {
	config
	op                           Op
	typ                          string
	id                           *string
	user_id                      *string
	session_id                   *string
	query_text                   *string
	data_source                  *string
	filters                      *map[string]interface{}
	requested_worker_kinds       *[]string
	appendrequested_worker_kinds []string
	status                       *investigation.Status
	current_phase                *string
	progress                     *float64
	addprogress                  *float64
	findings                     *[]map[string]interface{}
	appendfindings               []map[string]interface{}
	summary_text                 *string
	confidence                   *float64
	addconfidence                *float64
	records_analyzed             *int
	addrecords_analyzed          *int
	findings_count               *int
	addfindings_count            *int
	error_kind                   *string
	error_message                *string
	correlation_id               *string
	investigation_metadata       *map[string]interface{}
	created_at                   *time.Time
	updated_at                   *time.Time
	started_at                   *time.Time
	completed_at                 *time.Time
	pod_id                       *string
	last_heartbeat_at            *time.Time
	deleted_at                   *time.Time
	clearedFields                map[string]struct{}
	events                       map[int]struct{}
	removedevents                map[int]struct{}
	clearedevents                bool
	done                         bool
	oldValue                     func(context.Context) (*Investigation, error)
	predicates                   []predicate.Investigation
}

var _ ent.Mutation = (*InvestigationMutation)(nil)

// investigationOption allows management of the mutation configuration using functional options.
type investigationOption func(*InvestigationMutation)

// newInvestigationMutation creates new mutation for the Investigation entity.
func newInvestigationMutation(c config, op Op, opts ...investigationOption) *InvestigationMutation {
	m := &InvestigationMutation{
		config:        c,
		op:            op,
		typ:           TypeInvestigation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvestigationID sets the ID field of the mutation.
func withInvestigationID(id string) investigationOption {
	return func(m *InvestigationMutation) {
		var (
			err   error
			once  sync.Once
			value *Investigation
		)
		m.oldValue = func(ctx context.Context) (*Investigation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Investigation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvestigation sets the old Investigation of the mutation.
func withInvestigation(node *Investigation) investigationOption {
	return func(m *InvestigationMutation) {
		m.oldValue = func(context.Context) (*Investigation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvestigationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvestigationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Investigation entities.
func (m *InvestigationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvestigationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvestigationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Investigation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *InvestigationMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *InvestigationMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *InvestigationMutation) ResetUserID() {
	m.user_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *InvestigationMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *InvestigationMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *InvestigationMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[investigation.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *InvestigationMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[investigation.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *InvestigationMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, investigation.FieldSessionID)
}

// SetQueryText sets the "query_text" field.
func (m *InvestigationMutation) SetQueryText(s string) {
	m.query_text = &s
}

// QueryText returns the value of the "query_text" field in the mutation.
func (m *InvestigationMutation) QueryText() (r string, exists bool) {
	v := m.query_text
	if v == nil {
		return
	}
	return *v, true
}

// OldQueryText returns the old "query_text" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldQueryText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueryText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueryText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueryText: %w", err)
	}
	return oldValue.QueryText, nil
}

// ResetQueryText resets all changes to the "query_text" field.
func (m *InvestigationMutation) ResetQueryText() {
	m.query_text = nil
}

// SetDataSource sets the "data_source" field.
func (m *InvestigationMutation) SetDataSource(s string) {
	m.data_source = &s
}

// DataSource returns the value of the "data_source" field in the mutation.
func (m *InvestigationMutation) DataSource() (r string, exists bool) {
	v := m.data_source
	if v == nil {
		return
	}
	return *v, true
}

// OldDataSource returns the old "data_source" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldDataSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataSource: %w", err)
	}
	return oldValue.DataSource, nil
}

// ClearDataSource clears the value of the "data_source" field.
func (m *InvestigationMutation) ClearDataSource() {
	m.data_source = nil
	m.clearedFields[investigation.FieldDataSource] = struct{}{}
}

// DataSourceCleared returns if the "data_source" field was cleared in this mutation.
func (m *InvestigationMutation) DataSourceCleared() bool {
	_, ok := m.clearedFields[investigation.FieldDataSource]
	return ok
}

// ResetDataSource resets all changes to the "data_source" field.
func (m *InvestigationMutation) ResetDataSource() {
	m.data_source = nil
	delete(m.clearedFields, investigation.FieldDataSource)
}

// SetFilters sets the "filters" field.
func (m *InvestigationMutation) SetFilters(value map[string]interface{}) {
	m.filters = &value
}

// Filters returns the value of the "filters" field in the mutation.
func (m *InvestigationMutation) Filters() (r map[string]interface{}, exists bool) {
	v := m.filters
	if v == nil {
		return
	}
	return *v, true
}

// OldFilters returns the old "filters" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldFilters(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilters: %w", err)
	}
	return oldValue.Filters, nil
}

// ClearFilters clears the value of the "filters" field.
func (m *InvestigationMutation) ClearFilters() {
	m.filters = nil
	m.clearedFields[investigation.FieldFilters] = struct{}{}
}

// FiltersCleared returns if the "filters" field was cleared in this mutation.
func (m *InvestigationMutation) FiltersCleared() bool {
	_, ok := m.clearedFields[investigation.FieldFilters]
	return ok
}

// ResetFilters resets all changes to the "filters" field.
func (m *InvestigationMutation) ResetFilters() {
	m.filters = nil
	delete(m.clearedFields, investigation.FieldFilters)
}

// SetRequestedWorkerKinds sets the "requested_worker_kinds" field.
func (m *InvestigationMutation) SetRequestedWorkerKinds(s []string) {
	m.requested_worker_kinds = &s
	m.appendrequested_worker_kinds = nil
}

// RequestedWorkerKinds returns the value of the "requested_worker_kinds" field in the mutation.
func (m *InvestigationMutation) RequestedWorkerKinds() (r []string, exists bool) {
	v := m.requested_worker_kinds
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedWorkerKinds returns the old "requested_worker_kinds" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldRequestedWorkerKinds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedWorkerKinds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedWorkerKinds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedWorkerKinds: %w", err)
	}
	return oldValue.RequestedWorkerKinds, nil
}

// AppendRequestedWorkerKinds adds s to the "requested_worker_kinds" field.
func (m *InvestigationMutation) AppendRequestedWorkerKinds(s []string) {
	m.appendrequested_worker_kinds = append(m.appendrequested_worker_kinds, s...)
}

// AppendedRequestedWorkerKinds returns the list of values that were appended to the "requested_worker_kinds" field in this mutation.
func (m *InvestigationMutation) AppendedRequestedWorkerKinds() ([]string, bool) {
	if len(m.appendrequested_worker_kinds) == 0 {
		return nil, false
	}
	return m.appendrequested_worker_kinds, true
}

// ClearRequestedWorkerKinds clears the value of the "requested_worker_kinds" field.
func (m *InvestigationMutation) ClearRequestedWorkerKinds() {
	m.requested_worker_kinds = nil
	m.appendrequested_worker_kinds = nil
	m.clearedFields[investigation.FieldRequestedWorkerKinds] = struct{}{}
}

// RequestedWorkerKindsCleared returns if the "requested_worker_kinds" field was cleared in this mutation.
func (m *InvestigationMutation) RequestedWorkerKindsCleared() bool {
	_, ok := m.clearedFields[investigation.FieldRequestedWorkerKinds]
	return ok
}

// ResetRequestedWorkerKinds resets all changes to the "requested_worker_kinds" field.
func (m *InvestigationMutation) ResetRequestedWorkerKinds() {
	m.requested_worker_kinds = nil
	m.appendrequested_worker_kinds = nil
	delete(m.clearedFields, investigation.FieldRequestedWorkerKinds)
}

// SetStatus sets the "status" field.
func (m *InvestigationMutation) SetStatus(i investigation.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *InvestigationMutation) Status() (r investigation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldStatus(ctx context.Context) (v investigation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InvestigationMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentPhase sets the "current_phase" field.
func (m *InvestigationMutation) SetCurrentPhase(s string) {
	m.current_phase = &s
}

// CurrentPhase returns the value of the "current_phase" field in the mutation.
func (m *InvestigationMutation) CurrentPhase() (r string, exists bool) {
	v := m.current_phase
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPhase returns the old "current_phase" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldCurrentPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPhase: %w", err)
	}
	return oldValue.CurrentPhase, nil
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (m *InvestigationMutation) ClearCurrentPhase() {
	m.current_phase = nil
	m.clearedFields[investigation.FieldCurrentPhase] = struct{}{}
}

// CurrentPhaseCleared returns if the "current_phase" field was cleared in this mutation.
func (m *InvestigationMutation) CurrentPhaseCleared() bool {
	_, ok := m.clearedFields[investigation.FieldCurrentPhase]
	return ok
}

// ResetCurrentPhase resets all changes to the "current_phase" field.
func (m *InvestigationMutation) ResetCurrentPhase() {
	m.current_phase = nil
	delete(m.clearedFields, investigation.FieldCurrentPhase)
}

// SetProgress sets the "progress" field.
func (m *InvestigationMutation) SetProgress(f float64) {
	m.progress = &f
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *InvestigationMutation) Progress() (r float64, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldProgress(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds f to the "progress" field.
func (m *InvestigationMutation) AddProgress(f float64) {
	if m.addprogress != nil {
		*m.addprogress += f
	} else {
		m.addprogress = &f
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *InvestigationMutation) AddedProgress() (r float64, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *InvestigationMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetFindings sets the "findings" field.
func (m *InvestigationMutation) SetFindings(value []map[string]interface{}) {
	m.findings = &value
	m.appendfindings = nil
}

// Findings returns the value of the "findings" field in the mutation.
func (m *InvestigationMutation) Findings() (r []map[string]interface{}, exists bool) {
	v := m.findings
	if v == nil {
		return
	}
	return *v, true
}

// OldFindings returns the old "findings" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldFindings(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFindings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFindings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFindings: %w", err)
	}
	return oldValue.Findings, nil
}

// AppendFindings adds value to the "findings" field.
func (m *InvestigationMutation) AppendFindings(value []map[string]interface{}) {
	m.appendfindings = append(m.appendfindings, value...)
}

// AppendedFindings returns the list of values that were appended to the "findings" field in this mutation.
func (m *InvestigationMutation) AppendedFindings() ([]map[string]interface{}, bool) {
	if len(m.appendfindings) == 0 {
		return nil, false
	}
	return m.appendfindings, true
}

// ClearFindings clears the value of the "findings" field.
func (m *InvestigationMutation) ClearFindings() {
	m.findings = nil
	m.appendfindings = nil
	m.clearedFields[investigation.FieldFindings] = struct{}{}
}

// FindingsCleared returns if the "findings" field was cleared in this mutation.
func (m *InvestigationMutation) FindingsCleared() bool {
	_, ok := m.clearedFields[investigation.FieldFindings]
	return ok
}

// ResetFindings resets all changes to the "findings" field.
func (m *InvestigationMutation) ResetFindings() {
	m.findings = nil
	m.appendfindings = nil
	delete(m.clearedFields, investigation.FieldFindings)
}

// SetSummaryText sets the "summary_text" field.
func (m *InvestigationMutation) SetSummaryText(s string) {
	m.summary_text = &s
}

// SummaryText returns the value of the "summary_text" field in the mutation.
func (m *InvestigationMutation) SummaryText() (r string, exists bool) {
	v := m.summary_text
	if v == nil {
		return
	}
	return *v, true
}

// OldSummaryText returns the old "summary_text" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldSummaryText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummaryText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummaryText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummaryText: %w", err)
	}
	return oldValue.SummaryText, nil
}

// ClearSummaryText clears the value of the "summary_text" field.
func (m *InvestigationMutation) ClearSummaryText() {
	m.summary_text = nil
	m.clearedFields[investigation.FieldSummaryText] = struct{}{}
}

// SummaryTextCleared returns if the "summary_text" field was cleared in this mutation.
func (m *InvestigationMutation) SummaryTextCleared() bool {
	_, ok := m.clearedFields[investigation.FieldSummaryText]
	return ok
}

// ResetSummaryText resets all changes to the "summary_text" field.
func (m *InvestigationMutation) ResetSummaryText() {
	m.summary_text = nil
	delete(m.clearedFields, investigation.FieldSummaryText)
}

// SetConfidence sets the "confidence" field.
func (m *InvestigationMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *InvestigationMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *InvestigationMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *InvestigationMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *InvestigationMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[investigation.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *InvestigationMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[investigation.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *InvestigationMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, investigation.FieldConfidence)
}

// SetRecordsAnalyzed sets the "records_analyzed" field.
func (m *InvestigationMutation) SetRecordsAnalyzed(i int) {
	m.records_analyzed = &i
	m.addrecords_analyzed = nil
}

// RecordsAnalyzed returns the value of the "records_analyzed" field in the mutation.
func (m *InvestigationMutation) RecordsAnalyzed() (r int, exists bool) {
	v := m.records_analyzed
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordsAnalyzed returns the old "records_analyzed" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldRecordsAnalyzed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordsAnalyzed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordsAnalyzed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordsAnalyzed: %w", err)
	}
	return oldValue.RecordsAnalyzed, nil
}

// AddRecordsAnalyzed adds i to the "records_analyzed" field.
func (m *InvestigationMutation) AddRecordsAnalyzed(i int) {
	if m.addrecords_analyzed != nil {
		*m.addrecords_analyzed += i
	} else {
		m.addrecords_analyzed = &i
	}
}

// AddedRecordsAnalyzed returns the value that was added to the "records_analyzed" field in this mutation.
func (m *InvestigationMutation) AddedRecordsAnalyzed() (r int, exists bool) {
	v := m.addrecords_analyzed
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecordsAnalyzed resets all changes to the "records_analyzed" field.
func (m *InvestigationMutation) ResetRecordsAnalyzed() {
	m.records_analyzed = nil
	m.addrecords_analyzed = nil
}

// SetFindingsCount sets the "findings_count" field.
func (m *InvestigationMutation) SetFindingsCount(i int) {
	m.findings_count = &i
	m.addfindings_count = nil
}

// FindingsCount returns the value of the "findings_count" field in the mutation.
func (m *InvestigationMutation) FindingsCount() (r int, exists bool) {
	v := m.findings_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFindingsCount returns the old "findings_count" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldFindingsCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFindingsCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFindingsCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFindingsCount: %w", err)
	}
	return oldValue.FindingsCount, nil
}

// AddFindingsCount adds i to the "findings_count" field.
func (m *InvestigationMutation) AddFindingsCount(i int) {
	if m.addfindings_count != nil {
		*m.addfindings_count += i
	} else {
		m.addfindings_count = &i
	}
}

// AddedFindingsCount returns the value that was added to the "findings_count" field in this mutation.
func (m *InvestigationMutation) AddedFindingsCount() (r int, exists bool) {
	v := m.addfindings_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFindingsCount resets all changes to the "findings_count" field.
func (m *InvestigationMutation) ResetFindingsCount() {
	m.findings_count = nil
	m.addfindings_count = nil
}

// SetErrorKind sets the "error_kind" field.
func (m *InvestigationMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *InvestigationMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldErrorKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *InvestigationMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[investigation.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *InvestigationMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[investigation.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *InvestigationMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, investigation.FieldErrorKind)
}

// SetErrorMessage sets the "error_message" field.
func (m *InvestigationMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *InvestigationMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *InvestigationMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[investigation.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *InvestigationMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[investigation.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *InvestigationMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, investigation.FieldErrorMessage)
}

// SetCorrelationID sets the "correlation_id" field.
func (m *InvestigationMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *InvestigationMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *InvestigationMutation) ResetCorrelationID() {
	m.correlation_id = nil
}

// SetInvestigationMetadata sets the "investigation_metadata" field.
func (m *InvestigationMutation) SetInvestigationMetadata(value map[string]interface{}) {
	m.investigation_metadata = &value
}

// InvestigationMetadata returns the value of the "investigation_metadata" field in the mutation.
func (m *InvestigationMutation) InvestigationMetadata() (r map[string]interface{}, exists bool) {
	v := m.investigation_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldInvestigationMetadata returns the old "investigation_metadata" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldInvestigationMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvestigationMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvestigationMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvestigationMetadata: %w", err)
	}
	return oldValue.InvestigationMetadata, nil
}

// ClearInvestigationMetadata clears the value of the "investigation_metadata" field.
func (m *InvestigationMutation) ClearInvestigationMetadata() {
	m.investigation_metadata = nil
	m.clearedFields[investigation.FieldInvestigationMetadata] = struct{}{}
}

// InvestigationMetadataCleared returns if the "investigation_metadata" field was cleared in this mutation.
func (m *InvestigationMutation) InvestigationMetadataCleared() bool {
	_, ok := m.clearedFields[investigation.FieldInvestigationMetadata]
	return ok
}

// ResetInvestigationMetadata resets all changes to the "investigation_metadata" field.
func (m *InvestigationMutation) ResetInvestigationMetadata() {
	m.investigation_metadata = nil
	delete(m.clearedFields, investigation.FieldInvestigationMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *InvestigationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvestigationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InvestigationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InvestigationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InvestigationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InvestigationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *InvestigationMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *InvestigationMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *InvestigationMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[investigation.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *InvestigationMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[investigation.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *InvestigationMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, investigation.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *InvestigationMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *InvestigationMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *InvestigationMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[investigation.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *InvestigationMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[investigation.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *InvestigationMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, investigation.FieldCompletedAt)
}

// SetPodID sets the "pod_id" field.
func (m *InvestigationMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *InvestigationMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *InvestigationMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[investigation.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *InvestigationMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[investigation.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *InvestigationMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, investigation.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *InvestigationMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *InvestigationMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *InvestigationMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[investigation.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *InvestigationMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[investigation.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *InvestigationMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, investigation.FieldLastHeartbeatAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *InvestigationMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *InvestigationMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *InvestigationMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[investigation.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *InvestigationMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[investigation.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *InvestigationMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, investigation.FieldDeletedAt)
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *InvestigationMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *InvestigationMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *InvestigationMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *InvestigationMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *InvestigationMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *InvestigationMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *InvestigationMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the InvestigationMutation builder.
func (m *InvestigationMutation) Where(ps ...predicate.Investigation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvestigationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvestigationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Investigation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvestigationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvestigationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Investigation).
func (m *InvestigationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvestigationMutation) Fields() []string {
	fields := make([]string, 0, 25)
	if m.user_id != nil {
		fields = append(fields, investigation.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, investigation.FieldSessionID)
	}
	if m.query_text != nil {
		fields = append(fields, investigation.FieldQueryText)
	}
	if m.data_source != nil {
		fields = append(fields, investigation.FieldDataSource)
	}
	if m.filters != nil {
		fields = append(fields, investigation.FieldFilters)
	}
	if m.requested_worker_kinds != nil {
		fields = append(fields, investigation.FieldRequestedWorkerKinds)
	}
	if m.status != nil {
		fields = append(fields, investigation.FieldStatus)
	}
	if m.current_phase != nil {
		fields = append(fields, investigation.FieldCurrentPhase)
	}
	if m.progress != nil {
		fields = append(fields, investigation.FieldProgress)
	}
	if m.findings != nil {
		fields = append(fields, investigation.FieldFindings)
	}
	if m.summary_text != nil {
		fields = append(fields, investigation.FieldSummaryText)
	}
	if m.confidence != nil {
		fields = append(fields, investigation.FieldConfidence)
	}
	if m.records_analyzed != nil {
		fields = append(fields, investigation.FieldRecordsAnalyzed)
	}
	if m.findings_count != nil {
		fields = append(fields, investigation.FieldFindingsCount)
	}
	if m.error_kind != nil {
		fields = append(fields, investigation.FieldErrorKind)
	}
	if m.error_message != nil {
		fields = append(fields, investigation.FieldErrorMessage)
	}
	if m.correlation_id != nil {
		fields = append(fields, investigation.FieldCorrelationID)
	}
	if m.investigation_metadata != nil {
		fields = append(fields, investigation.FieldInvestigationMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, investigation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, investigation.FieldUpdatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, investigation.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, investigation.FieldCompletedAt)
	}
	if m.pod_id != nil {
		fields = append(fields, investigation.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, investigation.FieldLastHeartbeatAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, investigation.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvestigationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case investigation.FieldUserID:
		return m.UserID()
	case investigation.FieldSessionID:
		return m.SessionID()
	case investigation.FieldQueryText:
		return m.QueryText()
	case investigation.FieldDataSource:
		return m.DataSource()
	case investigation.FieldFilters:
		return m.Filters()
	case investigation.FieldRequestedWorkerKinds:
		return m.RequestedWorkerKinds()
	case investigation.FieldStatus:
		return m.Status()
	case investigation.FieldCurrentPhase:
		return m.CurrentPhase()
	case investigation.FieldProgress:
		return m.Progress()
	case investigation.FieldFindings:
		return m.Findings()
	case investigation.FieldSummaryText:
		return m.SummaryText()
	case investigation.FieldConfidence:
		return m.Confidence()
	case investigation.FieldRecordsAnalyzed:
		return m.RecordsAnalyzed()
	case investigation.FieldFindingsCount:
		return m.FindingsCount()
	case investigation.FieldErrorKind:
		return m.ErrorKind()
	case investigation.FieldErrorMessage:
		return m.ErrorMessage()
	case investigation.FieldCorrelationID:
		return m.CorrelationID()
	case investigation.FieldInvestigationMetadata:
		return m.InvestigationMetadata()
	case investigation.FieldCreatedAt:
		return m.CreatedAt()
	case investigation.FieldUpdatedAt:
		return m.UpdatedAt()
	case investigation.FieldStartedAt:
		return m.StartedAt()
	case investigation.FieldCompletedAt:
		return m.CompletedAt()
	case investigation.FieldPodID:
		return m.PodID()
	case investigation.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case investigation.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvestigationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case investigation.FieldUserID:
		return m.OldUserID(ctx)
	case investigation.FieldSessionID:
		return m.OldSessionID(ctx)
	case investigation.FieldQueryText:
		return m.OldQueryText(ctx)
	case investigation.FieldDataSource:
		return m.OldDataSource(ctx)
	case investigation.FieldFilters:
		return m.OldFilters(ctx)
	case investigation.FieldRequestedWorkerKinds:
		return m.OldRequestedWorkerKinds(ctx)
	case investigation.FieldStatus:
		return m.OldStatus(ctx)
	case investigation.FieldCurrentPhase:
		return m.OldCurrentPhase(ctx)
	case investigation.FieldProgress:
		return m.OldProgress(ctx)
	case investigation.FieldFindings:
		return m.OldFindings(ctx)
	case investigation.FieldSummaryText:
		return m.OldSummaryText(ctx)
	case investigation.FieldConfidence:
		return m.OldConfidence(ctx)
	case investigation.FieldRecordsAnalyzed:
		return m.OldRecordsAnalyzed(ctx)
	case investigation.FieldFindingsCount:
		return m.OldFindingsCount(ctx)
	case investigation.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case investigation.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case investigation.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case investigation.FieldInvestigationMetadata:
		return m.OldInvestigationMetadata(ctx)
	case investigation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case investigation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case investigation.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case investigation.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case investigation.FieldPodID:
		return m.OldPodID(ctx)
	case investigation.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case investigation.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Investigation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvestigationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case investigation.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case investigation.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case investigation.FieldQueryText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueryText(v)
		return nil
	case investigation.FieldDataSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataSource(v)
		return nil
	case investigation.FieldFilters:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilters(v)
		return nil
	case investigation.FieldRequestedWorkerKinds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedWorkerKinds(v)
		return nil
	case investigation.FieldStatus:
		v, ok := value.(investigation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case investigation.FieldCurrentPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPhase(v)
		return nil
	case investigation.FieldProgress:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case investigation.FieldFindings:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFindings(v)
		return nil
	case investigation.FieldSummaryText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummaryText(v)
		return nil
	case investigation.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case investigation.FieldRecordsAnalyzed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordsAnalyzed(v)
		return nil
	case investigation.FieldFindingsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFindingsCount(v)
		return nil
	case investigation.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case investigation.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case investigation.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case investigation.FieldInvestigationMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvestigationMetadata(v)
		return nil
	case investigation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case investigation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case investigation.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case investigation.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case investigation.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case investigation.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case investigation.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Investigation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvestigationMutation) AddedFields() []string {
	var fields []string
	if m.addprogress != nil {
		fields = append(fields, investigation.FieldProgress)
	}
	if m.addconfidence != nil {
		fields = append(fields, investigation.FieldConfidence)
	}
	if m.addrecords_analyzed != nil {
		fields = append(fields, investigation.FieldRecordsAnalyzed)
	}
	if m.addfindings_count != nil {
		fields = append(fields, investigation.FieldFindingsCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvestigationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case investigation.FieldProgress:
		return m.AddedProgress()
	case investigation.FieldConfidence:
		return m.AddedConfidence()
	case investigation.FieldRecordsAnalyzed:
		return m.AddedRecordsAnalyzed()
	case investigation.FieldFindingsCount:
		return m.AddedFindingsCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvestigationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case investigation.FieldProgress:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	case investigation.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case investigation.FieldRecordsAnalyzed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecordsAnalyzed(v)
		return nil
	case investigation.FieldFindingsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFindingsCount(v)
		return nil
	}
	return fmt.Errorf("unknown Investigation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvestigationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(investigation.FieldSessionID) {
		fields = append(fields, investigation.FieldSessionID)
	}
	if m.FieldCleared(investigation.FieldDataSource) {
		fields = append(fields, investigation.FieldDataSource)
	}
	if m.FieldCleared(investigation.FieldFilters) {
		fields = append(fields, investigation.FieldFilters)
	}
	if m.FieldCleared(investigation.FieldRequestedWorkerKinds) {
		fields = append(fields, investigation.FieldRequestedWorkerKinds)
	}
	if m.FieldCleared(investigation.FieldCurrentPhase) {
		fields = append(fields, investigation.FieldCurrentPhase)
	}
	if m.FieldCleared(investigation.FieldFindings) {
		fields = append(fields, investigation.FieldFindings)
	}
	if m.FieldCleared(investigation.FieldSummaryText) {
		fields = append(fields, investigation.FieldSummaryText)
	}
	if m.FieldCleared(investigation.FieldConfidence) {
		fields = append(fields, investigation.FieldConfidence)
	}
	if m.FieldCleared(investigation.FieldErrorKind) {
		fields = append(fields, investigation.FieldErrorKind)
	}
	if m.FieldCleared(investigation.FieldErrorMessage) {
		fields = append(fields, investigation.FieldErrorMessage)
	}
	if m.FieldCleared(investigation.FieldInvestigationMetadata) {
		fields = append(fields, investigation.FieldInvestigationMetadata)
	}
	if m.FieldCleared(investigation.FieldStartedAt) {
		fields = append(fields, investigation.FieldStartedAt)
	}
	if m.FieldCleared(investigation.FieldCompletedAt) {
		fields = append(fields, investigation.FieldCompletedAt)
	}
	if m.FieldCleared(investigation.FieldPodID) {
		fields = append(fields, investigation.FieldPodID)
	}
	if m.FieldCleared(investigation.FieldLastHeartbeatAt) {
		fields = append(fields, investigation.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(investigation.FieldDeletedAt) {
		fields = append(fields, investigation.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvestigationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvestigationMutation) ClearField(name string) error {
	switch name {
	case investigation.FieldSessionID:
		m.ClearSessionID()
		return nil
	case investigation.FieldDataSource:
		m.ClearDataSource()
		return nil
	case investigation.FieldFilters:
		m.ClearFilters()
		return nil
	case investigation.FieldRequestedWorkerKinds:
		m.ClearRequestedWorkerKinds()
		return nil
	case investigation.FieldCurrentPhase:
		m.ClearCurrentPhase()
		return nil
	case investigation.FieldFindings:
		m.ClearFindings()
		return nil
	case investigation.FieldSummaryText:
		m.ClearSummaryText()
		return nil
	case investigation.FieldConfidence:
		m.ClearConfidence()
		return nil
	case investigation.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case investigation.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case investigation.FieldInvestigationMetadata:
		m.ClearInvestigationMetadata()
		return nil
	case investigation.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case investigation.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case investigation.FieldPodID:
		m.ClearPodID()
		return nil
	case investigation.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case investigation.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Investigation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvestigationMutation) ResetField(name string) error {
	switch name {
	case investigation.FieldUserID:
		m.ResetUserID()
		return nil
	case investigation.FieldSessionID:
		m.ResetSessionID()
		return nil
	case investigation.FieldQueryText:
		m.ResetQueryText()
		return nil
	case investigation.FieldDataSource:
		m.ResetDataSource()
		return nil
	case investigation.FieldFilters:
		m.ResetFilters()
		return nil
	case investigation.FieldRequestedWorkerKinds:
		m.ResetRequestedWorkerKinds()
		return nil
	case investigation.FieldStatus:
		m.ResetStatus()
		return nil
	case investigation.FieldCurrentPhase:
		m.ResetCurrentPhase()
		return nil
	case investigation.FieldProgress:
		m.ResetProgress()
		return nil
	case investigation.FieldFindings:
		m.ResetFindings()
		return nil
	case investigation.FieldSummaryText:
		m.ResetSummaryText()
		return nil
	case investigation.FieldConfidence:
		m.ResetConfidence()
		return nil
	case investigation.FieldRecordsAnalyzed:
		m.ResetRecordsAnalyzed()
		return nil
	case investigation.FieldFindingsCount:
		m.ResetFindingsCount()
		return nil
	case investigation.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case investigation.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case investigation.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case investigation.FieldInvestigationMetadata:
		m.ResetInvestigationMetadata()
		return nil
	case investigation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case investigation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case investigation.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case investigation.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case investigation.FieldPodID:
		m.ResetPodID()
		return nil
	case investigation.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case investigation.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Investigation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvestigationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.events != nil {
		edges = append(edges, investigation.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvestigationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case investigation.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvestigationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedevents != nil {
		edges = append(edges, investigation.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvestigationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case investigation.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvestigationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedevents {
		edges = append(edges, investigation.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvestigationMutation) EdgeCleared(name string) bool {
	switch name {
	case investigation.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvestigationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Investigation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvestigationMutation) ResetEdge(name string) error {
	switch name {
	case investigation.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Investigation edge %s", name)
}

// ScheduledJobMutation represents an operation that mutates the ScheduledJob nodes in the graph.
type ScheduledJobMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	kind                    *string
	interval_seconds        *int64
	addinterval_seconds     *int64
	priority                *scheduledjob.Priority
	enabled                 *bool
	params                  *map[string]interface{}
	last_run_at             *time.Time
	next_run_at             *time.Time
	consecutive_failures    *int
	addconsecutive_failures *int
	created_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*ScheduledJob, error)
	predicates              []predicate.ScheduledJob
}

var _ ent.Mutation = (*ScheduledJobMutation)(nil)

// scheduledjobOption allows management of the mutation configuration using functional options.
type scheduledjobOption func(*ScheduledJobMutation)

// newScheduledJobMutation creates new mutation for the ScheduledJob entity.
func newScheduledJobMutation(c config, op Op, opts ...scheduledjobOption) *ScheduledJobMutation {
	m := &ScheduledJobMutation{
		config:        c,
		op:            op,
		typ:           TypeScheduledJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduledJobID sets the ID field of the mutation.
func withScheduledJobID(id string) scheduledjobOption {
	return func(m *ScheduledJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ScheduledJob
		)
		m.oldValue = func(ctx context.Context) (*ScheduledJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScheduledJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScheduledJob sets the old ScheduledJob of the mutation.
func withScheduledJob(node *ScheduledJob) scheduledjobOption {
	return func(m *ScheduledJobMutation) {
		m.oldValue = func(context.Context) (*ScheduledJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduledJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduledJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScheduledJob entities.
func (m *ScheduledJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduledJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduledJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScheduledJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *ScheduledJobMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ScheduledJobMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ScheduledJobMutation) ResetKind() {
	m.kind = nil
}

// SetIntervalSeconds sets the "interval_seconds" field.
func (m *ScheduledJobMutation) SetIntervalSeconds(i int64) {
	m.interval_seconds = &i
	m.addinterval_seconds = nil
}

// IntervalSeconds returns the value of the "interval_seconds" field in the mutation.
func (m *ScheduledJobMutation) IntervalSeconds() (r int64, exists bool) {
	v := m.interval_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalSeconds returns the old "interval_seconds" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldIntervalSeconds(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalSeconds: %w", err)
	}
	return oldValue.IntervalSeconds, nil
}

// AddIntervalSeconds adds i to the "interval_seconds" field.
func (m *ScheduledJobMutation) AddIntervalSeconds(i int64) {
	if m.addinterval_seconds != nil {
		*m.addinterval_seconds += i
	} else {
		m.addinterval_seconds = &i
	}
}

// AddedIntervalSeconds returns the value that was added to the "interval_seconds" field in this mutation.
func (m *ScheduledJobMutation) AddedIntervalSeconds() (r int64, exists bool) {
	v := m.addinterval_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalSeconds resets all changes to the "interval_seconds" field.
func (m *ScheduledJobMutation) ResetIntervalSeconds() {
	m.interval_seconds = nil
	m.addinterval_seconds = nil
}

// SetPriority sets the "priority" field.
func (m *ScheduledJobMutation) SetPriority(s scheduledjob.Priority) {
	m.priority = &s
}

// Priority returns the value of the "priority" field in the mutation.
func (m *ScheduledJobMutation) Priority() (r scheduledjob.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldPriority(ctx context.Context) (v scheduledjob.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *ScheduledJobMutation) ResetPriority() {
	m.priority = nil
}

// SetEnabled sets the "enabled" field.
func (m *ScheduledJobMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *ScheduledJobMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *ScheduledJobMutation) ResetEnabled() {
	m.enabled = nil
}

// SetParams sets the "params" field.
func (m *ScheduledJobMutation) SetParams(value map[string]interface{}) {
	m.params = &value
}

// Params returns the value of the "params" field in the mutation.
func (m *ScheduledJobMutation) Params() (r map[string]interface{}, exists bool) {
	v := m.params
	if v == nil {
		return
	}
	return *v, true
}

// OldParams returns the old "params" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldParams(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParams: %w", err)
	}
	return oldValue.Params, nil
}

// ClearParams clears the value of the "params" field.
func (m *ScheduledJobMutation) ClearParams() {
	m.params = nil
	m.clearedFields[scheduledjob.FieldParams] = struct{}{}
}

// ParamsCleared returns if the "params" field was cleared in this mutation.
func (m *ScheduledJobMutation) ParamsCleared() bool {
	_, ok := m.clearedFields[scheduledjob.FieldParams]
	return ok
}

// ResetParams resets all changes to the "params" field.
func (m *ScheduledJobMutation) ResetParams() {
	m.params = nil
	delete(m.clearedFields, scheduledjob.FieldParams)
}

// SetLastRunAt sets the "last_run_at" field.
func (m *ScheduledJobMutation) SetLastRunAt(t time.Time) {
	m.last_run_at = &t
}

// LastRunAt returns the value of the "last_run_at" field in the mutation.
func (m *ScheduledJobMutation) LastRunAt() (r time.Time, exists bool) {
	v := m.last_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunAt returns the old "last_run_at" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldLastRunAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunAt: %w", err)
	}
	return oldValue.LastRunAt, nil
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (m *ScheduledJobMutation) ClearLastRunAt() {
	m.last_run_at = nil
	m.clearedFields[scheduledjob.FieldLastRunAt] = struct{}{}
}

// LastRunAtCleared returns if the "last_run_at" field was cleared in this mutation.
func (m *ScheduledJobMutation) LastRunAtCleared() bool {
	_, ok := m.clearedFields[scheduledjob.FieldLastRunAt]
	return ok
}

// ResetLastRunAt resets all changes to the "last_run_at" field.
func (m *ScheduledJobMutation) ResetLastRunAt() {
	m.last_run_at = nil
	delete(m.clearedFields, scheduledjob.FieldLastRunAt)
}

// SetNextRunAt sets the "next_run_at" field.
func (m *ScheduledJobMutation) SetNextRunAt(t time.Time) {
	m.next_run_at = &t
}

// NextRunAt returns the value of the "next_run_at" field in the mutation.
func (m *ScheduledJobMutation) NextRunAt() (r time.Time, exists bool) {
	v := m.next_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRunAt returns the old "next_run_at" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldNextRunAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRunAt: %w", err)
	}
	return oldValue.NextRunAt, nil
}

// ResetNextRunAt resets all changes to the "next_run_at" field.
func (m *ScheduledJobMutation) ResetNextRunAt() {
	m.next_run_at = nil
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (m *ScheduledJobMutation) SetConsecutiveFailures(i int) {
	m.consecutive_failures = &i
	m.addconsecutive_failures = nil
}

// ConsecutiveFailures returns the value of the "consecutive_failures" field in the mutation.
func (m *ScheduledJobMutation) ConsecutiveFailures() (r int, exists bool) {
	v := m.consecutive_failures
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveFailures returns the old "consecutive_failures" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldConsecutiveFailures(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveFailures: %w", err)
	}
	return oldValue.ConsecutiveFailures, nil
}

// AddConsecutiveFailures adds i to the "consecutive_failures" field.
func (m *ScheduledJobMutation) AddConsecutiveFailures(i int) {
	if m.addconsecutive_failures != nil {
		*m.addconsecutive_failures += i
	} else {
		m.addconsecutive_failures = &i
	}
}

// AddedConsecutiveFailures returns the value that was added to the "consecutive_failures" field in this mutation.
func (m *ScheduledJobMutation) AddedConsecutiveFailures() (r int, exists bool) {
	v := m.addconsecutive_failures
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveFailures resets all changes to the "consecutive_failures" field.
func (m *ScheduledJobMutation) ResetConsecutiveFailures() {
	m.consecutive_failures = nil
	m.addconsecutive_failures = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ScheduledJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScheduledJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScheduledJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ScheduledJobMutation builder.
func (m *ScheduledJobMutation) Where(ps ...predicate.ScheduledJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduledJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduledJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScheduledJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduledJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduledJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScheduledJob).
func (m *ScheduledJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduledJobMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.kind != nil {
		fields = append(fields, scheduledjob.FieldKind)
	}
	if m.interval_seconds != nil {
		fields = append(fields, scheduledjob.FieldIntervalSeconds)
	}
	if m.priority != nil {
		fields = append(fields, scheduledjob.FieldPriority)
	}
	if m.enabled != nil {
		fields = append(fields, scheduledjob.FieldEnabled)
	}
	if m.params != nil {
		fields = append(fields, scheduledjob.FieldParams)
	}
	if m.last_run_at != nil {
		fields = append(fields, scheduledjob.FieldLastRunAt)
	}
	if m.next_run_at != nil {
		fields = append(fields, scheduledjob.FieldNextRunAt)
	}
	if m.consecutive_failures != nil {
		fields = append(fields, scheduledjob.FieldConsecutiveFailures)
	}
	if m.created_at != nil {
		fields = append(fields, scheduledjob.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduledJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scheduledjob.FieldKind:
		return m.Kind()
	case scheduledjob.FieldIntervalSeconds:
		return m.IntervalSeconds()
	case scheduledjob.FieldPriority:
		return m.Priority()
	case scheduledjob.FieldEnabled:
		return m.Enabled()
	case scheduledjob.FieldParams:
		return m.Params()
	case scheduledjob.FieldLastRunAt:
		return m.LastRunAt()
	case scheduledjob.FieldNextRunAt:
		return m.NextRunAt()
	case scheduledjob.FieldConsecutiveFailures:
		return m.ConsecutiveFailures()
	case scheduledjob.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduledJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scheduledjob.FieldKind:
		return m.OldKind(ctx)
	case scheduledjob.FieldIntervalSeconds:
		return m.OldIntervalSeconds(ctx)
	case scheduledjob.FieldPriority:
		return m.OldPriority(ctx)
	case scheduledjob.FieldEnabled:
		return m.OldEnabled(ctx)
	case scheduledjob.FieldParams:
		return m.OldParams(ctx)
	case scheduledjob.FieldLastRunAt:
		return m.OldLastRunAt(ctx)
	case scheduledjob.FieldNextRunAt:
		return m.OldNextRunAt(ctx)
	case scheduledjob.FieldConsecutiveFailures:
		return m.OldConsecutiveFailures(ctx)
	case scheduledjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScheduledJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scheduledjob.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case scheduledjob.FieldIntervalSeconds:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalSeconds(v)
		return nil
	case scheduledjob.FieldPriority:
		v, ok := value.(scheduledjob.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case scheduledjob.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case scheduledjob.FieldParams:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParams(v)
		return nil
	case scheduledjob.FieldLastRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunAt(v)
		return nil
	case scheduledjob.FieldNextRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRunAt(v)
		return nil
	case scheduledjob.FieldConsecutiveFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveFailures(v)
		return nil
	case scheduledjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduledJobMutation) AddedFields() []string {
	var fields []string
	if m.addinterval_seconds != nil {
		fields = append(fields, scheduledjob.FieldIntervalSeconds)
	}
	if m.addconsecutive_failures != nil {
		fields = append(fields, scheduledjob.FieldConsecutiveFailures)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduledJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scheduledjob.FieldIntervalSeconds:
		return m.AddedIntervalSeconds()
	case scheduledjob.FieldConsecutiveFailures:
		return m.AddedConsecutiveFailures()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scheduledjob.FieldIntervalSeconds:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalSeconds(v)
		return nil
	case scheduledjob.FieldConsecutiveFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveFailures(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduledJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scheduledjob.FieldParams) {
		fields = append(fields, scheduledjob.FieldParams)
	}
	if m.FieldCleared(scheduledjob.FieldLastRunAt) {
		fields = append(fields, scheduledjob.FieldLastRunAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduledJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduledJobMutation) ClearField(name string) error {
	switch name {
	case scheduledjob.FieldParams:
		m.ClearParams()
		return nil
	case scheduledjob.FieldLastRunAt:
		m.ClearLastRunAt()
		return nil
	}
	return fmt.Errorf("unknown ScheduledJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduledJobMutation) ResetField(name string) error {
	switch name {
	case scheduledjob.FieldKind:
		m.ResetKind()
		return nil
	case scheduledjob.FieldIntervalSeconds:
		m.ResetIntervalSeconds()
		return nil
	case scheduledjob.FieldPriority:
		m.ResetPriority()
		return nil
	case scheduledjob.FieldEnabled:
		m.ResetEnabled()
		return nil
	case scheduledjob.FieldParams:
		m.ResetParams()
		return nil
	case scheduledjob.FieldLastRunAt:
		m.ResetLastRunAt()
		return nil
	case scheduledjob.FieldNextRunAt:
		m.ResetNextRunAt()
		return nil
	case scheduledjob.FieldConsecutiveFailures:
		m.ResetConsecutiveFailures()
		return nil
	case scheduledjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ScheduledJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduledJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduledJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduledJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduledJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduledJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduledJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduledJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScheduledJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduledJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScheduledJob edge %s", name)
}
