// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/transparencia-ai/veritas/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/transparencia-ai/veritas/ent/cacheentry"
	"github.com/transparencia-ai/veritas/ent/event"
	"github.com/transparencia-ai/veritas/ent/investigation"
	"github.com/transparencia-ai/veritas/ent/scheduledjob"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CacheEntry is the client for interacting with the CacheEntry builders.
	CacheEntry *CacheEntryClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// Investigation is the client for interacting with the Investigation builders.
	Investigation *InvestigationClient
	// ScheduledJob is the client for interacting with the ScheduledJob builders.
	ScheduledJob *ScheduledJobClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CacheEntry = NewCacheEntryClient(c.config)
	c.Event = NewEventClient(c.config)
	c.Investigation = NewInvestigationClient(c.config)
	c.ScheduledJob = NewScheduledJobClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		CacheEntry:    NewCacheEntryClient(cfg),
		Event:         NewEventClient(cfg),
		Investigation: NewInvestigationClient(cfg),
		ScheduledJob:  NewScheduledJobClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		CacheEntry:    NewCacheEntryClient(cfg),
		Event:         NewEventClient(cfg),
		Investigation: NewInvestigationClient(cfg),
		ScheduledJob:  NewScheduledJobClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CacheEntry.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.CacheEntry.Use(hooks...)
	c.Event.Use(hooks...)
	c.Investigation.Use(hooks...)
	c.ScheduledJob.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CacheEntry.Intercept(interceptors...)
	c.Event.Intercept(interceptors...)
	c.Investigation.Intercept(interceptors...)
	c.ScheduledJob.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CacheEntryMutation:
		return c.CacheEntry.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *InvestigationMutation:
		return c.Investigation.mutate(ctx, m)
	case *ScheduledJobMutation:
		return c.ScheduledJob.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CacheEntryClient is a client for the CacheEntry schema.
type CacheEntryClient struct {
	config
}

// NewCacheEntryClient returns a client for the CacheEntry from the given config.
func NewCacheEntryClient(c config) *CacheEntryClient {
	return &CacheEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cacheentry.Hooks(f(g(h())))`.
func (c *CacheEntryClient) Use(hooks ...Hook) {
	c.hooks.CacheEntry = append(c.hooks.CacheEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cacheentry.Intercept(f(g(h())))`.
func (c *CacheEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.CacheEntry = append(c.inters.CacheEntry, interceptors...)
}

// Create returns a builder for creating a CacheEntry entity.
func (c *CacheEntryClient) Create() *CacheEntryCreate {
	mutation := newCacheEntryMutation(c.config, OpCreate)
	return &CacheEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CacheEntry entities.
func (c *CacheEntryClient) CreateBulk(builders ...*CacheEntryCreate) *CacheEntryCreateBulk {
	return &CacheEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CacheEntryClient) MapCreateBulk(slice any, setFunc func(*CacheEntryCreate, int)) *CacheEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CacheEntryCreateBulk{err: fmt.Errorf("calling to CacheEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CacheEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CacheEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CacheEntry.
func (c *CacheEntryClient) Update() *CacheEntryUpdate {
	mutation := newCacheEntryMutation(c.config, OpUpdate)
	return &CacheEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CacheEntryClient) UpdateOne(_m *CacheEntry) *CacheEntryUpdateOne {
	mutation := newCacheEntryMutation(c.config, OpUpdateOne, withCacheEntry(_m))
	return &CacheEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CacheEntryClient) UpdateOneID(id string) *CacheEntryUpdateOne {
	mutation := newCacheEntryMutation(c.config, OpUpdateOne, withCacheEntryID(id))
	return &CacheEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CacheEntry.
func (c *CacheEntryClient) Delete() *CacheEntryDelete {
	mutation := newCacheEntryMutation(c.config, OpDelete)
	return &CacheEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CacheEntryClient) DeleteOne(_m *CacheEntry) *CacheEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CacheEntryClient) DeleteOneID(id string) *CacheEntryDeleteOne {
	builder := c.Delete().Where(cacheentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CacheEntryDeleteOne{builder}
}

// Query returns a query builder for CacheEntry.
func (c *CacheEntryClient) Query() *CacheEntryQuery {
	return &CacheEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCacheEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a CacheEntry entity by its id.
func (c *CacheEntryClient) Get(ctx context.Context, id string) (*CacheEntry, error) {
	return c.Query().Where(cacheentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CacheEntryClient) GetX(ctx context.Context, id string) *CacheEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CacheEntryClient) Hooks() []Hook {
	return c.hooks.CacheEntry
}

// Interceptors returns the client interceptors.
func (c *CacheEntryClient) Interceptors() []Interceptor {
	return c.inters.CacheEntry
}

func (c *CacheEntryClient) mutate(ctx context.Context, m *CacheEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CacheEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CacheEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CacheEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CacheEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CacheEntry mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInvestigation queries the investigation edge of a Event.
func (c *EventClient) QueryInvestigation(_m *Event) *InvestigationQuery {
	query := (&InvestigationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(investigation.Table, investigation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.InvestigationTable, event.InvestigationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// InvestigationClient is a client for the Investigation schema.
type InvestigationClient struct {
	config
}

// NewInvestigationClient returns a client for the Investigation from the given config.
func NewInvestigationClient(c config) *InvestigationClient {
	return &InvestigationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `investigation.Hooks(f(g(h())))`.
func (c *InvestigationClient) Use(hooks ...Hook) {
	c.hooks.Investigation = append(c.hooks.Investigation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `investigation.Intercept(f(g(h())))`.
func (c *InvestigationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Investigation = append(c.inters.Investigation, interceptors...)
}

// Create returns a builder for creating a Investigation entity.
func (c *InvestigationClient) Create() *InvestigationCreate {
	mutation := newInvestigationMutation(c.config, OpCreate)
	return &InvestigationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Investigation entities.
func (c *InvestigationClient) CreateBulk(builders ...*InvestigationCreate) *InvestigationCreateBulk {
	return &InvestigationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InvestigationClient) MapCreateBulk(slice any, setFunc func(*InvestigationCreate, int)) *InvestigationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InvestigationCreateBulk{err: fmt.Errorf("calling to InvestigationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InvestigationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InvestigationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Investigation.
func (c *InvestigationClient) Update() *InvestigationUpdate {
	mutation := newInvestigationMutation(c.config, OpUpdate)
	return &InvestigationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InvestigationClient) UpdateOne(_m *Investigation) *InvestigationUpdateOne {
	mutation := newInvestigationMutation(c.config, OpUpdateOne, withInvestigation(_m))
	return &InvestigationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InvestigationClient) UpdateOneID(id string) *InvestigationUpdateOne {
	mutation := newInvestigationMutation(c.config, OpUpdateOne, withInvestigationID(id))
	return &InvestigationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Investigation.
func (c *InvestigationClient) Delete() *InvestigationDelete {
	mutation := newInvestigationMutation(c.config, OpDelete)
	return &InvestigationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InvestigationClient) DeleteOne(_m *Investigation) *InvestigationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InvestigationClient) DeleteOneID(id string) *InvestigationDeleteOne {
	builder := c.Delete().Where(investigation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InvestigationDeleteOne{builder}
}

// Query returns a query builder for Investigation.
func (c *InvestigationClient) Query() *InvestigationQuery {
	return &InvestigationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInvestigation},
		inters: c.Interceptors(),
	}
}

// Get returns a Investigation entity by its id.
func (c *InvestigationClient) Get(ctx context.Context, id string) (*Investigation, error) {
	return c.Query().Where(investigation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InvestigationClient) GetX(ctx context.Context, id string) *Investigation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvents queries the events edge of a Investigation.
func (c *InvestigationClient) QueryEvents(_m *Investigation) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(investigation.Table, investigation.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, investigation.EventsTable, investigation.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InvestigationClient) Hooks() []Hook {
	return c.hooks.Investigation
}

// Interceptors returns the client interceptors.
func (c *InvestigationClient) Interceptors() []Interceptor {
	return c.inters.Investigation
}

func (c *InvestigationClient) mutate(ctx context.Context, m *InvestigationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InvestigationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InvestigationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InvestigationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InvestigationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Investigation mutation op: %q", m.Op())
	}
}

// ScheduledJobClient is a client for the ScheduledJob schema.
type ScheduledJobClient struct {
	config
}

// NewScheduledJobClient returns a client for the ScheduledJob from the given config.
func NewScheduledJobClient(c config) *ScheduledJobClient {
	return &ScheduledJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scheduledjob.Hooks(f(g(h())))`.
func (c *ScheduledJobClient) Use(hooks ...Hook) {
	c.hooks.ScheduledJob = append(c.hooks.ScheduledJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scheduledjob.Intercept(f(g(h())))`.
func (c *ScheduledJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScheduledJob = append(c.inters.ScheduledJob, interceptors...)
}

// Create returns a builder for creating a ScheduledJob entity.
func (c *ScheduledJobClient) Create() *ScheduledJobCreate {
	mutation := newScheduledJobMutation(c.config, OpCreate)
	return &ScheduledJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScheduledJob entities.
func (c *ScheduledJobClient) CreateBulk(builders ...*ScheduledJobCreate) *ScheduledJobCreateBulk {
	return &ScheduledJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScheduledJobClient) MapCreateBulk(slice any, setFunc func(*ScheduledJobCreate, int)) *ScheduledJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScheduledJobCreateBulk{err: fmt.Errorf("calling to ScheduledJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScheduledJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScheduledJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScheduledJob.
func (c *ScheduledJobClient) Update() *ScheduledJobUpdate {
	mutation := newScheduledJobMutation(c.config, OpUpdate)
	return &ScheduledJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScheduledJobClient) UpdateOne(_m *ScheduledJob) *ScheduledJobUpdateOne {
	mutation := newScheduledJobMutation(c.config, OpUpdateOne, withScheduledJob(_m))
	return &ScheduledJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScheduledJobClient) UpdateOneID(id string) *ScheduledJobUpdateOne {
	mutation := newScheduledJobMutation(c.config, OpUpdateOne, withScheduledJobID(id))
	return &ScheduledJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScheduledJob.
func (c *ScheduledJobClient) Delete() *ScheduledJobDelete {
	mutation := newScheduledJobMutation(c.config, OpDelete)
	return &ScheduledJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScheduledJobClient) DeleteOne(_m *ScheduledJob) *ScheduledJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScheduledJobClient) DeleteOneID(id string) *ScheduledJobDeleteOne {
	builder := c.Delete().Where(scheduledjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScheduledJobDeleteOne{builder}
}

// Query returns a query builder for ScheduledJob.
func (c *ScheduledJobClient) Query() *ScheduledJobQuery {
	return &ScheduledJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScheduledJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ScheduledJob entity by its id.
func (c *ScheduledJobClient) Get(ctx context.Context, id string) (*ScheduledJob, error) {
	return c.Query().Where(scheduledjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScheduledJobClient) GetX(ctx context.Context, id string) *ScheduledJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScheduledJobClient) Hooks() []Hook {
	return c.hooks.ScheduledJob
}

// Interceptors returns the client interceptors.
func (c *ScheduledJobClient) Interceptors() []Interceptor {
	return c.inters.ScheduledJob
}

func (c *ScheduledJobClient) mutate(ctx context.Context, m *ScheduledJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScheduledJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScheduledJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScheduledJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScheduledJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScheduledJob mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CacheEntry, Event, Investigation, ScheduledJob []ent.Hook
	}
	inters struct {
		CacheEntry, Event, Investigation, ScheduledJob []ent.Interceptor
	}
)
