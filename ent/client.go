// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/opencane/edged/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/opencane/edged/ent/devicebinding"
	"github.com/opencane/edged/ent/deviceoperation"
	"github.com/opencane/edged/ent/devicesession"
	"github.com/opencane/edged/ent/digitaltask"
	"github.com/opencane/edged/ent/lifelogcontext"
	"github.com/opencane/edged/ent/lifelogevent"
	"github.com/opencane/edged/ent/lifelogimage"
	"github.com/opencane/edged/ent/observabilitysample"
	"github.com/opencane/edged/ent/pushupdate"
	"github.com/opencane/edged/ent/telemetrysample"
	"github.com/opencane/edged/ent/thoughttrace"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DeviceBinding is the client for interacting with the DeviceBinding builders.
	DeviceBinding *DeviceBindingClient
	// DeviceOperation is the client for interacting with the DeviceOperation builders.
	DeviceOperation *DeviceOperationClient
	// DeviceSession is the client for interacting with the DeviceSession builders.
	DeviceSession *DeviceSessionClient
	// DigitalTask is the client for interacting with the DigitalTask builders.
	DigitalTask *DigitalTaskClient
	// LifelogContext is the client for interacting with the LifelogContext builders.
	LifelogContext *LifelogContextClient
	// LifelogEvent is the client for interacting with the LifelogEvent builders.
	LifelogEvent *LifelogEventClient
	// LifelogImage is the client for interacting with the LifelogImage builders.
	LifelogImage *LifelogImageClient
	// ObservabilitySample is the client for interacting with the ObservabilitySample builders.
	ObservabilitySample *ObservabilitySampleClient
	// PushUpdate is the client for interacting with the PushUpdate builders.
	PushUpdate *PushUpdateClient
	// TelemetrySample is the client for interacting with the TelemetrySample builders.
	TelemetrySample *TelemetrySampleClient
	// ThoughtTrace is the client for interacting with the ThoughtTrace builders.
	ThoughtTrace *ThoughtTraceClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DeviceBinding = NewDeviceBindingClient(c.config)
	c.DeviceOperation = NewDeviceOperationClient(c.config)
	c.DeviceSession = NewDeviceSessionClient(c.config)
	c.DigitalTask = NewDigitalTaskClient(c.config)
	c.LifelogContext = NewLifelogContextClient(c.config)
	c.LifelogEvent = NewLifelogEventClient(c.config)
	c.LifelogImage = NewLifelogImageClient(c.config)
	c.ObservabilitySample = NewObservabilitySampleClient(c.config)
	c.PushUpdate = NewPushUpdateClient(c.config)
	c.TelemetrySample = NewTelemetrySampleClient(c.config)
	c.ThoughtTrace = NewThoughtTraceClient(c.config)
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
		ctx:                 ctx,
		config:              cfg,
		DeviceBinding:       NewDeviceBindingClient(cfg),
		DeviceOperation:     NewDeviceOperationClient(cfg),
		DeviceSession:       NewDeviceSessionClient(cfg),
		DigitalTask:         NewDigitalTaskClient(cfg),
		LifelogContext:      NewLifelogContextClient(cfg),
		LifelogEvent:        NewLifelogEventClient(cfg),
		LifelogImage:        NewLifelogImageClient(cfg),
		ObservabilitySample: NewObservabilitySampleClient(cfg),
		PushUpdate:          NewPushUpdateClient(cfg),
		TelemetrySample:     NewTelemetrySampleClient(cfg),
		ThoughtTrace:        NewThoughtTraceClient(cfg),
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
		ctx:                 ctx,
		config:              cfg,
		DeviceBinding:       NewDeviceBindingClient(cfg),
		DeviceOperation:     NewDeviceOperationClient(cfg),
		DeviceSession:       NewDeviceSessionClient(cfg),
		DigitalTask:         NewDigitalTaskClient(cfg),
		LifelogContext:      NewLifelogContextClient(cfg),
		LifelogEvent:        NewLifelogEventClient(cfg),
		LifelogImage:        NewLifelogImageClient(cfg),
		ObservabilitySample: NewObservabilitySampleClient(cfg),
		PushUpdate:          NewPushUpdateClient(cfg),
		TelemetrySample:     NewTelemetrySampleClient(cfg),
		ThoughtTrace:        NewThoughtTraceClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DeviceBinding.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.DeviceBinding, c.DeviceOperation, c.DeviceSession, c.DigitalTask,
		c.LifelogContext, c.LifelogEvent, c.LifelogImage, c.ObservabilitySample,
		c.PushUpdate, c.TelemetrySample, c.ThoughtTrace,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.DeviceBinding, c.DeviceOperation, c.DeviceSession, c.DigitalTask,
		c.LifelogContext, c.LifelogEvent, c.LifelogImage, c.ObservabilitySample,
		c.PushUpdate, c.TelemetrySample, c.ThoughtTrace,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DeviceBindingMutation:
		return c.DeviceBinding.mutate(ctx, m)
	case *DeviceOperationMutation:
		return c.DeviceOperation.mutate(ctx, m)
	case *DeviceSessionMutation:
		return c.DeviceSession.mutate(ctx, m)
	case *DigitalTaskMutation:
		return c.DigitalTask.mutate(ctx, m)
	case *LifelogContextMutation:
		return c.LifelogContext.mutate(ctx, m)
	case *LifelogEventMutation:
		return c.LifelogEvent.mutate(ctx, m)
	case *LifelogImageMutation:
		return c.LifelogImage.mutate(ctx, m)
	case *ObservabilitySampleMutation:
		return c.ObservabilitySample.mutate(ctx, m)
	case *PushUpdateMutation:
		return c.PushUpdate.mutate(ctx, m)
	case *TelemetrySampleMutation:
		return c.TelemetrySample.mutate(ctx, m)
	case *ThoughtTraceMutation:
		return c.ThoughtTrace.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DeviceBindingClient is a client for the DeviceBinding schema.
type DeviceBindingClient struct {
	config
}

// NewDeviceBindingClient returns a client for the DeviceBinding from the given config.
func NewDeviceBindingClient(c config) *DeviceBindingClient {
	return &DeviceBindingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `devicebinding.Hooks(f(g(h())))`.
func (c *DeviceBindingClient) Use(hooks ...Hook) {
	c.hooks.DeviceBinding = append(c.hooks.DeviceBinding, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `devicebinding.Intercept(f(g(h())))`.
func (c *DeviceBindingClient) Intercept(interceptors ...Interceptor) {
	c.inters.DeviceBinding = append(c.inters.DeviceBinding, interceptors...)
}

// Create returns a builder for creating a DeviceBinding entity.
func (c *DeviceBindingClient) Create() *DeviceBindingCreate {
	mutation := newDeviceBindingMutation(c.config, OpCreate)
	return &DeviceBindingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DeviceBinding entities.
func (c *DeviceBindingClient) CreateBulk(builders ...*DeviceBindingCreate) *DeviceBindingCreateBulk {
	return &DeviceBindingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeviceBindingClient) MapCreateBulk(slice any, setFunc func(*DeviceBindingCreate, int)) *DeviceBindingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeviceBindingCreateBulk{err: fmt.Errorf("calling to DeviceBindingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeviceBindingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeviceBindingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DeviceBinding.
func (c *DeviceBindingClient) Update() *DeviceBindingUpdate {
	mutation := newDeviceBindingMutation(c.config, OpUpdate)
	return &DeviceBindingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeviceBindingClient) UpdateOne(_m *DeviceBinding) *DeviceBindingUpdateOne {
	mutation := newDeviceBindingMutation(c.config, OpUpdateOne, withDeviceBinding(_m))
	return &DeviceBindingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeviceBindingClient) UpdateOneID(id int) *DeviceBindingUpdateOne {
	mutation := newDeviceBindingMutation(c.config, OpUpdateOne, withDeviceBindingID(id))
	return &DeviceBindingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DeviceBinding.
func (c *DeviceBindingClient) Delete() *DeviceBindingDelete {
	mutation := newDeviceBindingMutation(c.config, OpDelete)
	return &DeviceBindingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeviceBindingClient) DeleteOne(_m *DeviceBinding) *DeviceBindingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeviceBindingClient) DeleteOneID(id int) *DeviceBindingDeleteOne {
	builder := c.Delete().Where(devicebinding.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeviceBindingDeleteOne{builder}
}

// Query returns a query builder for DeviceBinding.
func (c *DeviceBindingClient) Query() *DeviceBindingQuery {
	return &DeviceBindingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeviceBinding},
		inters: c.Interceptors(),
	}
}

// Get returns a DeviceBinding entity by its id.
func (c *DeviceBindingClient) Get(ctx context.Context, id int) (*DeviceBinding, error) {
	return c.Query().Where(devicebinding.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeviceBindingClient) GetX(ctx context.Context, id int) *DeviceBinding {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DeviceBindingClient) Hooks() []Hook {
	return c.hooks.DeviceBinding
}

// Interceptors returns the client interceptors.
func (c *DeviceBindingClient) Interceptors() []Interceptor {
	return c.inters.DeviceBinding
}

func (c *DeviceBindingClient) mutate(ctx context.Context, m *DeviceBindingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeviceBindingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeviceBindingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeviceBindingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeviceBindingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DeviceBinding mutation op: %q", m.Op())
	}
}

// DeviceOperationClient is a client for the DeviceOperation schema.
type DeviceOperationClient struct {
	config
}

// NewDeviceOperationClient returns a client for the DeviceOperation from the given config.
func NewDeviceOperationClient(c config) *DeviceOperationClient {
	return &DeviceOperationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deviceoperation.Hooks(f(g(h())))`.
func (c *DeviceOperationClient) Use(hooks ...Hook) {
	c.hooks.DeviceOperation = append(c.hooks.DeviceOperation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deviceoperation.Intercept(f(g(h())))`.
func (c *DeviceOperationClient) Intercept(interceptors ...Interceptor) {
	c.inters.DeviceOperation = append(c.inters.DeviceOperation, interceptors...)
}

// Create returns a builder for creating a DeviceOperation entity.
func (c *DeviceOperationClient) Create() *DeviceOperationCreate {
	mutation := newDeviceOperationMutation(c.config, OpCreate)
	return &DeviceOperationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DeviceOperation entities.
func (c *DeviceOperationClient) CreateBulk(builders ...*DeviceOperationCreate) *DeviceOperationCreateBulk {
	return &DeviceOperationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeviceOperationClient) MapCreateBulk(slice any, setFunc func(*DeviceOperationCreate, int)) *DeviceOperationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeviceOperationCreateBulk{err: fmt.Errorf("calling to DeviceOperationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeviceOperationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeviceOperationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DeviceOperation.
func (c *DeviceOperationClient) Update() *DeviceOperationUpdate {
	mutation := newDeviceOperationMutation(c.config, OpUpdate)
	return &DeviceOperationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeviceOperationClient) UpdateOne(_m *DeviceOperation) *DeviceOperationUpdateOne {
	mutation := newDeviceOperationMutation(c.config, OpUpdateOne, withDeviceOperation(_m))
	return &DeviceOperationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeviceOperationClient) UpdateOneID(id string) *DeviceOperationUpdateOne {
	mutation := newDeviceOperationMutation(c.config, OpUpdateOne, withDeviceOperationID(id))
	return &DeviceOperationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DeviceOperation.
func (c *DeviceOperationClient) Delete() *DeviceOperationDelete {
	mutation := newDeviceOperationMutation(c.config, OpDelete)
	return &DeviceOperationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeviceOperationClient) DeleteOne(_m *DeviceOperation) *DeviceOperationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeviceOperationClient) DeleteOneID(id string) *DeviceOperationDeleteOne {
	builder := c.Delete().Where(deviceoperation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeviceOperationDeleteOne{builder}
}

// Query returns a query builder for DeviceOperation.
func (c *DeviceOperationClient) Query() *DeviceOperationQuery {
	return &DeviceOperationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeviceOperation},
		inters: c.Interceptors(),
	}
}

// Get returns a DeviceOperation entity by its id.
func (c *DeviceOperationClient) Get(ctx context.Context, id string) (*DeviceOperation, error) {
	return c.Query().Where(deviceoperation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeviceOperationClient) GetX(ctx context.Context, id string) *DeviceOperation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DeviceOperationClient) Hooks() []Hook {
	return c.hooks.DeviceOperation
}

// Interceptors returns the client interceptors.
func (c *DeviceOperationClient) Interceptors() []Interceptor {
	return c.inters.DeviceOperation
}

func (c *DeviceOperationClient) mutate(ctx context.Context, m *DeviceOperationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeviceOperationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeviceOperationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeviceOperationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeviceOperationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DeviceOperation mutation op: %q", m.Op())
	}
}

// DeviceSessionClient is a client for the DeviceSession schema.
type DeviceSessionClient struct {
	config
}

// NewDeviceSessionClient returns a client for the DeviceSession from the given config.
func NewDeviceSessionClient(c config) *DeviceSessionClient {
	return &DeviceSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `devicesession.Hooks(f(g(h())))`.
func (c *DeviceSessionClient) Use(hooks ...Hook) {
	c.hooks.DeviceSession = append(c.hooks.DeviceSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `devicesession.Intercept(f(g(h())))`.
func (c *DeviceSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.DeviceSession = append(c.inters.DeviceSession, interceptors...)
}

// Create returns a builder for creating a DeviceSession entity.
func (c *DeviceSessionClient) Create() *DeviceSessionCreate {
	mutation := newDeviceSessionMutation(c.config, OpCreate)
	return &DeviceSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DeviceSession entities.
func (c *DeviceSessionClient) CreateBulk(builders ...*DeviceSessionCreate) *DeviceSessionCreateBulk {
	return &DeviceSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeviceSessionClient) MapCreateBulk(slice any, setFunc func(*DeviceSessionCreate, int)) *DeviceSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeviceSessionCreateBulk{err: fmt.Errorf("calling to DeviceSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeviceSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeviceSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DeviceSession.
func (c *DeviceSessionClient) Update() *DeviceSessionUpdate {
	mutation := newDeviceSessionMutation(c.config, OpUpdate)
	return &DeviceSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeviceSessionClient) UpdateOne(_m *DeviceSession) *DeviceSessionUpdateOne {
	mutation := newDeviceSessionMutation(c.config, OpUpdateOne, withDeviceSession(_m))
	return &DeviceSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeviceSessionClient) UpdateOneID(id int) *DeviceSessionUpdateOne {
	mutation := newDeviceSessionMutation(c.config, OpUpdateOne, withDeviceSessionID(id))
	return &DeviceSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DeviceSession.
func (c *DeviceSessionClient) Delete() *DeviceSessionDelete {
	mutation := newDeviceSessionMutation(c.config, OpDelete)
	return &DeviceSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeviceSessionClient) DeleteOne(_m *DeviceSession) *DeviceSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeviceSessionClient) DeleteOneID(id int) *DeviceSessionDeleteOne {
	builder := c.Delete().Where(devicesession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeviceSessionDeleteOne{builder}
}

// Query returns a query builder for DeviceSession.
func (c *DeviceSessionClient) Query() *DeviceSessionQuery {
	return &DeviceSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeviceSession},
		inters: c.Interceptors(),
	}
}

// Get returns a DeviceSession entity by its id.
func (c *DeviceSessionClient) Get(ctx context.Context, id int) (*DeviceSession, error) {
	return c.Query().Where(devicesession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeviceSessionClient) GetX(ctx context.Context, id int) *DeviceSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DeviceSessionClient) Hooks() []Hook {
	return c.hooks.DeviceSession
}

// Interceptors returns the client interceptors.
func (c *DeviceSessionClient) Interceptors() []Interceptor {
	return c.inters.DeviceSession
}

func (c *DeviceSessionClient) mutate(ctx context.Context, m *DeviceSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeviceSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeviceSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeviceSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeviceSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DeviceSession mutation op: %q", m.Op())
	}
}

// DigitalTaskClient is a client for the DigitalTask schema.
type DigitalTaskClient struct {
	config
}

// NewDigitalTaskClient returns a client for the DigitalTask from the given config.
func NewDigitalTaskClient(c config) *DigitalTaskClient {
	return &DigitalTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `digitaltask.Hooks(f(g(h())))`.
func (c *DigitalTaskClient) Use(hooks ...Hook) {
	c.hooks.DigitalTask = append(c.hooks.DigitalTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `digitaltask.Intercept(f(g(h())))`.
func (c *DigitalTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.DigitalTask = append(c.inters.DigitalTask, interceptors...)
}

// Create returns a builder for creating a DigitalTask entity.
func (c *DigitalTaskClient) Create() *DigitalTaskCreate {
	mutation := newDigitalTaskMutation(c.config, OpCreate)
	return &DigitalTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DigitalTask entities.
func (c *DigitalTaskClient) CreateBulk(builders ...*DigitalTaskCreate) *DigitalTaskCreateBulk {
	return &DigitalTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DigitalTaskClient) MapCreateBulk(slice any, setFunc func(*DigitalTaskCreate, int)) *DigitalTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DigitalTaskCreateBulk{err: fmt.Errorf("calling to DigitalTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DigitalTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DigitalTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DigitalTask.
func (c *DigitalTaskClient) Update() *DigitalTaskUpdate {
	mutation := newDigitalTaskMutation(c.config, OpUpdate)
	return &DigitalTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DigitalTaskClient) UpdateOne(_m *DigitalTask) *DigitalTaskUpdateOne {
	mutation := newDigitalTaskMutation(c.config, OpUpdateOne, withDigitalTask(_m))
	return &DigitalTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DigitalTaskClient) UpdateOneID(id string) *DigitalTaskUpdateOne {
	mutation := newDigitalTaskMutation(c.config, OpUpdateOne, withDigitalTaskID(id))
	return &DigitalTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DigitalTask.
func (c *DigitalTaskClient) Delete() *DigitalTaskDelete {
	mutation := newDigitalTaskMutation(c.config, OpDelete)
	return &DigitalTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DigitalTaskClient) DeleteOne(_m *DigitalTask) *DigitalTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DigitalTaskClient) DeleteOneID(id string) *DigitalTaskDeleteOne {
	builder := c.Delete().Where(digitaltask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DigitalTaskDeleteOne{builder}
}

// Query returns a query builder for DigitalTask.
func (c *DigitalTaskClient) Query() *DigitalTaskQuery {
	return &DigitalTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDigitalTask},
		inters: c.Interceptors(),
	}
}

// Get returns a DigitalTask entity by its id.
func (c *DigitalTaskClient) Get(ctx context.Context, id string) (*DigitalTask, error) {
	return c.Query().Where(digitaltask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DigitalTaskClient) GetX(ctx context.Context, id string) *DigitalTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DigitalTaskClient) Hooks() []Hook {
	return c.hooks.DigitalTask
}

// Interceptors returns the client interceptors.
func (c *DigitalTaskClient) Interceptors() []Interceptor {
	return c.inters.DigitalTask
}

func (c *DigitalTaskClient) mutate(ctx context.Context, m *DigitalTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DigitalTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DigitalTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DigitalTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DigitalTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DigitalTask mutation op: %q", m.Op())
	}
}

// LifelogContextClient is a client for the LifelogContext schema.
type LifelogContextClient struct {
	config
}

// NewLifelogContextClient returns a client for the LifelogContext from the given config.
func NewLifelogContextClient(c config) *LifelogContextClient {
	return &LifelogContextClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lifelogcontext.Hooks(f(g(h())))`.
func (c *LifelogContextClient) Use(hooks ...Hook) {
	c.hooks.LifelogContext = append(c.hooks.LifelogContext, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lifelogcontext.Intercept(f(g(h())))`.
func (c *LifelogContextClient) Intercept(interceptors ...Interceptor) {
	c.inters.LifelogContext = append(c.inters.LifelogContext, interceptors...)
}

// Create returns a builder for creating a LifelogContext entity.
func (c *LifelogContextClient) Create() *LifelogContextCreate {
	mutation := newLifelogContextMutation(c.config, OpCreate)
	return &LifelogContextCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LifelogContext entities.
func (c *LifelogContextClient) CreateBulk(builders ...*LifelogContextCreate) *LifelogContextCreateBulk {
	return &LifelogContextCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LifelogContextClient) MapCreateBulk(slice any, setFunc func(*LifelogContextCreate, int)) *LifelogContextCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LifelogContextCreateBulk{err: fmt.Errorf("calling to LifelogContextClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LifelogContextCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LifelogContextCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LifelogContext.
func (c *LifelogContextClient) Update() *LifelogContextUpdate {
	mutation := newLifelogContextMutation(c.config, OpUpdate)
	return &LifelogContextUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LifelogContextClient) UpdateOne(_m *LifelogContext) *LifelogContextUpdateOne {
	mutation := newLifelogContextMutation(c.config, OpUpdateOne, withLifelogContext(_m))
	return &LifelogContextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LifelogContextClient) UpdateOneID(id string) *LifelogContextUpdateOne {
	mutation := newLifelogContextMutation(c.config, OpUpdateOne, withLifelogContextID(id))
	return &LifelogContextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LifelogContext.
func (c *LifelogContextClient) Delete() *LifelogContextDelete {
	mutation := newLifelogContextMutation(c.config, OpDelete)
	return &LifelogContextDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LifelogContextClient) DeleteOne(_m *LifelogContext) *LifelogContextDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LifelogContextClient) DeleteOneID(id string) *LifelogContextDeleteOne {
	builder := c.Delete().Where(lifelogcontext.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LifelogContextDeleteOne{builder}
}

// Query returns a query builder for LifelogContext.
func (c *LifelogContextClient) Query() *LifelogContextQuery {
	return &LifelogContextQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLifelogContext},
		inters: c.Interceptors(),
	}
}

// Get returns a LifelogContext entity by its id.
func (c *LifelogContextClient) Get(ctx context.Context, id string) (*LifelogContext, error) {
	return c.Query().Where(lifelogcontext.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LifelogContextClient) GetX(ctx context.Context, id string) *LifelogContext {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LifelogContextClient) Hooks() []Hook {
	return c.hooks.LifelogContext
}

// Interceptors returns the client interceptors.
func (c *LifelogContextClient) Interceptors() []Interceptor {
	return c.inters.LifelogContext
}

func (c *LifelogContextClient) mutate(ctx context.Context, m *LifelogContextMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LifelogContextCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LifelogContextUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LifelogContextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LifelogContextDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LifelogContext mutation op: %q", m.Op())
	}
}

// LifelogEventClient is a client for the LifelogEvent schema.
type LifelogEventClient struct {
	config
}

// NewLifelogEventClient returns a client for the LifelogEvent from the given config.
func NewLifelogEventClient(c config) *LifelogEventClient {
	return &LifelogEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lifelogevent.Hooks(f(g(h())))`.
func (c *LifelogEventClient) Use(hooks ...Hook) {
	c.hooks.LifelogEvent = append(c.hooks.LifelogEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lifelogevent.Intercept(f(g(h())))`.
func (c *LifelogEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LifelogEvent = append(c.inters.LifelogEvent, interceptors...)
}

// Create returns a builder for creating a LifelogEvent entity.
func (c *LifelogEventClient) Create() *LifelogEventCreate {
	mutation := newLifelogEventMutation(c.config, OpCreate)
	return &LifelogEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LifelogEvent entities.
func (c *LifelogEventClient) CreateBulk(builders ...*LifelogEventCreate) *LifelogEventCreateBulk {
	return &LifelogEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LifelogEventClient) MapCreateBulk(slice any, setFunc func(*LifelogEventCreate, int)) *LifelogEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LifelogEventCreateBulk{err: fmt.Errorf("calling to LifelogEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LifelogEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LifelogEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LifelogEvent.
func (c *LifelogEventClient) Update() *LifelogEventUpdate {
	mutation := newLifelogEventMutation(c.config, OpUpdate)
	return &LifelogEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LifelogEventClient) UpdateOne(_m *LifelogEvent) *LifelogEventUpdateOne {
	mutation := newLifelogEventMutation(c.config, OpUpdateOne, withLifelogEvent(_m))
	return &LifelogEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LifelogEventClient) UpdateOneID(id string) *LifelogEventUpdateOne {
	mutation := newLifelogEventMutation(c.config, OpUpdateOne, withLifelogEventID(id))
	return &LifelogEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LifelogEvent.
func (c *LifelogEventClient) Delete() *LifelogEventDelete {
	mutation := newLifelogEventMutation(c.config, OpDelete)
	return &LifelogEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LifelogEventClient) DeleteOne(_m *LifelogEvent) *LifelogEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LifelogEventClient) DeleteOneID(id string) *LifelogEventDeleteOne {
	builder := c.Delete().Where(lifelogevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LifelogEventDeleteOne{builder}
}

// Query returns a query builder for LifelogEvent.
func (c *LifelogEventClient) Query() *LifelogEventQuery {
	return &LifelogEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLifelogEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LifelogEvent entity by its id.
func (c *LifelogEventClient) Get(ctx context.Context, id string) (*LifelogEvent, error) {
	return c.Query().Where(lifelogevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LifelogEventClient) GetX(ctx context.Context, id string) *LifelogEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LifelogEventClient) Hooks() []Hook {
	return c.hooks.LifelogEvent
}

// Interceptors returns the client interceptors.
func (c *LifelogEventClient) Interceptors() []Interceptor {
	return c.inters.LifelogEvent
}

func (c *LifelogEventClient) mutate(ctx context.Context, m *LifelogEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LifelogEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LifelogEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LifelogEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LifelogEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LifelogEvent mutation op: %q", m.Op())
	}
}

// LifelogImageClient is a client for the LifelogImage schema.
type LifelogImageClient struct {
	config
}

// NewLifelogImageClient returns a client for the LifelogImage from the given config.
func NewLifelogImageClient(c config) *LifelogImageClient {
	return &LifelogImageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lifelogimage.Hooks(f(g(h())))`.
func (c *LifelogImageClient) Use(hooks ...Hook) {
	c.hooks.LifelogImage = append(c.hooks.LifelogImage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lifelogimage.Intercept(f(g(h())))`.
func (c *LifelogImageClient) Intercept(interceptors ...Interceptor) {
	c.inters.LifelogImage = append(c.inters.LifelogImage, interceptors...)
}

// Create returns a builder for creating a LifelogImage entity.
func (c *LifelogImageClient) Create() *LifelogImageCreate {
	mutation := newLifelogImageMutation(c.config, OpCreate)
	return &LifelogImageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LifelogImage entities.
func (c *LifelogImageClient) CreateBulk(builders ...*LifelogImageCreate) *LifelogImageCreateBulk {
	return &LifelogImageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LifelogImageClient) MapCreateBulk(slice any, setFunc func(*LifelogImageCreate, int)) *LifelogImageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LifelogImageCreateBulk{err: fmt.Errorf("calling to LifelogImageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LifelogImageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LifelogImageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LifelogImage.
func (c *LifelogImageClient) Update() *LifelogImageUpdate {
	mutation := newLifelogImageMutation(c.config, OpUpdate)
	return &LifelogImageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LifelogImageClient) UpdateOne(_m *LifelogImage) *LifelogImageUpdateOne {
	mutation := newLifelogImageMutation(c.config, OpUpdateOne, withLifelogImage(_m))
	return &LifelogImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LifelogImageClient) UpdateOneID(id string) *LifelogImageUpdateOne {
	mutation := newLifelogImageMutation(c.config, OpUpdateOne, withLifelogImageID(id))
	return &LifelogImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LifelogImage.
func (c *LifelogImageClient) Delete() *LifelogImageDelete {
	mutation := newLifelogImageMutation(c.config, OpDelete)
	return &LifelogImageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LifelogImageClient) DeleteOne(_m *LifelogImage) *LifelogImageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LifelogImageClient) DeleteOneID(id string) *LifelogImageDeleteOne {
	builder := c.Delete().Where(lifelogimage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LifelogImageDeleteOne{builder}
}

// Query returns a query builder for LifelogImage.
func (c *LifelogImageClient) Query() *LifelogImageQuery {
	return &LifelogImageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLifelogImage},
		inters: c.Interceptors(),
	}
}

// Get returns a LifelogImage entity by its id.
func (c *LifelogImageClient) Get(ctx context.Context, id string) (*LifelogImage, error) {
	return c.Query().Where(lifelogimage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LifelogImageClient) GetX(ctx context.Context, id string) *LifelogImage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LifelogImageClient) Hooks() []Hook {
	return c.hooks.LifelogImage
}

// Interceptors returns the client interceptors.
func (c *LifelogImageClient) Interceptors() []Interceptor {
	return c.inters.LifelogImage
}

func (c *LifelogImageClient) mutate(ctx context.Context, m *LifelogImageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LifelogImageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LifelogImageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LifelogImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LifelogImageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LifelogImage mutation op: %q", m.Op())
	}
}

// ObservabilitySampleClient is a client for the ObservabilitySample schema.
type ObservabilitySampleClient struct {
	config
}

// NewObservabilitySampleClient returns a client for the ObservabilitySample from the given config.
func NewObservabilitySampleClient(c config) *ObservabilitySampleClient {
	return &ObservabilitySampleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `observabilitysample.Hooks(f(g(h())))`.
func (c *ObservabilitySampleClient) Use(hooks ...Hook) {
	c.hooks.ObservabilitySample = append(c.hooks.ObservabilitySample, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `observabilitysample.Intercept(f(g(h())))`.
func (c *ObservabilitySampleClient) Intercept(interceptors ...Interceptor) {
	c.inters.ObservabilitySample = append(c.inters.ObservabilitySample, interceptors...)
}

// Create returns a builder for creating a ObservabilitySample entity.
func (c *ObservabilitySampleClient) Create() *ObservabilitySampleCreate {
	mutation := newObservabilitySampleMutation(c.config, OpCreate)
	return &ObservabilitySampleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ObservabilitySample entities.
func (c *ObservabilitySampleClient) CreateBulk(builders ...*ObservabilitySampleCreate) *ObservabilitySampleCreateBulk {
	return &ObservabilitySampleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ObservabilitySampleClient) MapCreateBulk(slice any, setFunc func(*ObservabilitySampleCreate, int)) *ObservabilitySampleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ObservabilitySampleCreateBulk{err: fmt.Errorf("calling to ObservabilitySampleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ObservabilitySampleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ObservabilitySampleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ObservabilitySample.
func (c *ObservabilitySampleClient) Update() *ObservabilitySampleUpdate {
	mutation := newObservabilitySampleMutation(c.config, OpUpdate)
	return &ObservabilitySampleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ObservabilitySampleClient) UpdateOne(_m *ObservabilitySample) *ObservabilitySampleUpdateOne {
	mutation := newObservabilitySampleMutation(c.config, OpUpdateOne, withObservabilitySample(_m))
	return &ObservabilitySampleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ObservabilitySampleClient) UpdateOneID(id int) *ObservabilitySampleUpdateOne {
	mutation := newObservabilitySampleMutation(c.config, OpUpdateOne, withObservabilitySampleID(id))
	return &ObservabilitySampleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ObservabilitySample.
func (c *ObservabilitySampleClient) Delete() *ObservabilitySampleDelete {
	mutation := newObservabilitySampleMutation(c.config, OpDelete)
	return &ObservabilitySampleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ObservabilitySampleClient) DeleteOne(_m *ObservabilitySample) *ObservabilitySampleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ObservabilitySampleClient) DeleteOneID(id int) *ObservabilitySampleDeleteOne {
	builder := c.Delete().Where(observabilitysample.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ObservabilitySampleDeleteOne{builder}
}

// Query returns a query builder for ObservabilitySample.
func (c *ObservabilitySampleClient) Query() *ObservabilitySampleQuery {
	return &ObservabilitySampleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeObservabilitySample},
		inters: c.Interceptors(),
	}
}

// Get returns a ObservabilitySample entity by its id.
func (c *ObservabilitySampleClient) Get(ctx context.Context, id int) (*ObservabilitySample, error) {
	return c.Query().Where(observabilitysample.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ObservabilitySampleClient) GetX(ctx context.Context, id int) *ObservabilitySample {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ObservabilitySampleClient) Hooks() []Hook {
	return c.hooks.ObservabilitySample
}

// Interceptors returns the client interceptors.
func (c *ObservabilitySampleClient) Interceptors() []Interceptor {
	return c.inters.ObservabilitySample
}

func (c *ObservabilitySampleClient) mutate(ctx context.Context, m *ObservabilitySampleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ObservabilitySampleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ObservabilitySampleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ObservabilitySampleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ObservabilitySampleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ObservabilitySample mutation op: %q", m.Op())
	}
}

// PushUpdateClient is a client for the PushUpdate schema.
type PushUpdateClient struct {
	config
}

// NewPushUpdateClient returns a client for the PushUpdate from the given config.
func NewPushUpdateClient(c config) *PushUpdateClient {
	return &PushUpdateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pushupdate.Hooks(f(g(h())))`.
func (c *PushUpdateClient) Use(hooks ...Hook) {
	c.hooks.PushUpdate = append(c.hooks.PushUpdate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pushupdate.Intercept(f(g(h())))`.
func (c *PushUpdateClient) Intercept(interceptors ...Interceptor) {
	c.inters.PushUpdate = append(c.inters.PushUpdate, interceptors...)
}

// Create returns a builder for creating a PushUpdate entity.
func (c *PushUpdateClient) Create() *PushUpdateCreate {
	mutation := newPushUpdateMutation(c.config, OpCreate)
	return &PushUpdateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PushUpdate entities.
func (c *PushUpdateClient) CreateBulk(builders ...*PushUpdateCreate) *PushUpdateCreateBulk {
	return &PushUpdateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PushUpdateClient) MapCreateBulk(slice any, setFunc func(*PushUpdateCreate, int)) *PushUpdateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PushUpdateCreateBulk{err: fmt.Errorf("calling to PushUpdateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PushUpdateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PushUpdateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PushUpdate.
func (c *PushUpdateClient) Update() *PushUpdateUpdate {
	mutation := newPushUpdateMutation(c.config, OpUpdate)
	return &PushUpdateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PushUpdateClient) UpdateOne(_m *PushUpdate) *PushUpdateUpdateOne {
	mutation := newPushUpdateMutation(c.config, OpUpdateOne, withPushUpdate(_m))
	return &PushUpdateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PushUpdateClient) UpdateOneID(id string) *PushUpdateUpdateOne {
	mutation := newPushUpdateMutation(c.config, OpUpdateOne, withPushUpdateID(id))
	return &PushUpdateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PushUpdate.
func (c *PushUpdateClient) Delete() *PushUpdateDelete {
	mutation := newPushUpdateMutation(c.config, OpDelete)
	return &PushUpdateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PushUpdateClient) DeleteOne(_m *PushUpdate) *PushUpdateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PushUpdateClient) DeleteOneID(id string) *PushUpdateDeleteOne {
	builder := c.Delete().Where(pushupdate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PushUpdateDeleteOne{builder}
}

// Query returns a query builder for PushUpdate.
func (c *PushUpdateClient) Query() *PushUpdateQuery {
	return &PushUpdateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePushUpdate},
		inters: c.Interceptors(),
	}
}

// Get returns a PushUpdate entity by its id.
func (c *PushUpdateClient) Get(ctx context.Context, id string) (*PushUpdate, error) {
	return c.Query().Where(pushupdate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PushUpdateClient) GetX(ctx context.Context, id string) *PushUpdate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PushUpdateClient) Hooks() []Hook {
	return c.hooks.PushUpdate
}

// Interceptors returns the client interceptors.
func (c *PushUpdateClient) Interceptors() []Interceptor {
	return c.inters.PushUpdate
}

func (c *PushUpdateClient) mutate(ctx context.Context, m *PushUpdateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PushUpdateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PushUpdateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PushUpdateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PushUpdateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PushUpdate mutation op: %q", m.Op())
	}
}

// TelemetrySampleClient is a client for the TelemetrySample schema.
type TelemetrySampleClient struct {
	config
}

// NewTelemetrySampleClient returns a client for the TelemetrySample from the given config.
func NewTelemetrySampleClient(c config) *TelemetrySampleClient {
	return &TelemetrySampleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `telemetrysample.Hooks(f(g(h())))`.
func (c *TelemetrySampleClient) Use(hooks ...Hook) {
	c.hooks.TelemetrySample = append(c.hooks.TelemetrySample, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `telemetrysample.Intercept(f(g(h())))`.
func (c *TelemetrySampleClient) Intercept(interceptors ...Interceptor) {
	c.inters.TelemetrySample = append(c.inters.TelemetrySample, interceptors...)
}

// Create returns a builder for creating a TelemetrySample entity.
func (c *TelemetrySampleClient) Create() *TelemetrySampleCreate {
	mutation := newTelemetrySampleMutation(c.config, OpCreate)
	return &TelemetrySampleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TelemetrySample entities.
func (c *TelemetrySampleClient) CreateBulk(builders ...*TelemetrySampleCreate) *TelemetrySampleCreateBulk {
	return &TelemetrySampleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TelemetrySampleClient) MapCreateBulk(slice any, setFunc func(*TelemetrySampleCreate, int)) *TelemetrySampleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TelemetrySampleCreateBulk{err: fmt.Errorf("calling to TelemetrySampleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TelemetrySampleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TelemetrySampleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TelemetrySample.
func (c *TelemetrySampleClient) Update() *TelemetrySampleUpdate {
	mutation := newTelemetrySampleMutation(c.config, OpUpdate)
	return &TelemetrySampleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TelemetrySampleClient) UpdateOne(_m *TelemetrySample) *TelemetrySampleUpdateOne {
	mutation := newTelemetrySampleMutation(c.config, OpUpdateOne, withTelemetrySample(_m))
	return &TelemetrySampleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TelemetrySampleClient) UpdateOneID(id int) *TelemetrySampleUpdateOne {
	mutation := newTelemetrySampleMutation(c.config, OpUpdateOne, withTelemetrySampleID(id))
	return &TelemetrySampleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TelemetrySample.
func (c *TelemetrySampleClient) Delete() *TelemetrySampleDelete {
	mutation := newTelemetrySampleMutation(c.config, OpDelete)
	return &TelemetrySampleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TelemetrySampleClient) DeleteOne(_m *TelemetrySample) *TelemetrySampleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TelemetrySampleClient) DeleteOneID(id int) *TelemetrySampleDeleteOne {
	builder := c.Delete().Where(telemetrysample.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TelemetrySampleDeleteOne{builder}
}

// Query returns a query builder for TelemetrySample.
func (c *TelemetrySampleClient) Query() *TelemetrySampleQuery {
	return &TelemetrySampleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTelemetrySample},
		inters: c.Interceptors(),
	}
}

// Get returns a TelemetrySample entity by its id.
func (c *TelemetrySampleClient) Get(ctx context.Context, id int) (*TelemetrySample, error) {
	return c.Query().Where(telemetrysample.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TelemetrySampleClient) GetX(ctx context.Context, id int) *TelemetrySample {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TelemetrySampleClient) Hooks() []Hook {
	return c.hooks.TelemetrySample
}

// Interceptors returns the client interceptors.
func (c *TelemetrySampleClient) Interceptors() []Interceptor {
	return c.inters.TelemetrySample
}

func (c *TelemetrySampleClient) mutate(ctx context.Context, m *TelemetrySampleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TelemetrySampleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TelemetrySampleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TelemetrySampleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TelemetrySampleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TelemetrySample mutation op: %q", m.Op())
	}
}

// ThoughtTraceClient is a client for the ThoughtTrace schema.
type ThoughtTraceClient struct {
	config
}

// NewThoughtTraceClient returns a client for the ThoughtTrace from the given config.
func NewThoughtTraceClient(c config) *ThoughtTraceClient {
	return &ThoughtTraceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `thoughttrace.Hooks(f(g(h())))`.
func (c *ThoughtTraceClient) Use(hooks ...Hook) {
	c.hooks.ThoughtTrace = append(c.hooks.ThoughtTrace, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `thoughttrace.Intercept(f(g(h())))`.
func (c *ThoughtTraceClient) Intercept(interceptors ...Interceptor) {
	c.inters.ThoughtTrace = append(c.inters.ThoughtTrace, interceptors...)
}

// Create returns a builder for creating a ThoughtTrace entity.
func (c *ThoughtTraceClient) Create() *ThoughtTraceCreate {
	mutation := newThoughtTraceMutation(c.config, OpCreate)
	return &ThoughtTraceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ThoughtTrace entities.
func (c *ThoughtTraceClient) CreateBulk(builders ...*ThoughtTraceCreate) *ThoughtTraceCreateBulk {
	return &ThoughtTraceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ThoughtTraceClient) MapCreateBulk(slice any, setFunc func(*ThoughtTraceCreate, int)) *ThoughtTraceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ThoughtTraceCreateBulk{err: fmt.Errorf("calling to ThoughtTraceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ThoughtTraceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ThoughtTraceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ThoughtTrace.
func (c *ThoughtTraceClient) Update() *ThoughtTraceUpdate {
	mutation := newThoughtTraceMutation(c.config, OpUpdate)
	return &ThoughtTraceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ThoughtTraceClient) UpdateOne(_m *ThoughtTrace) *ThoughtTraceUpdateOne {
	mutation := newThoughtTraceMutation(c.config, OpUpdateOne, withThoughtTrace(_m))
	return &ThoughtTraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ThoughtTraceClient) UpdateOneID(id int) *ThoughtTraceUpdateOne {
	mutation := newThoughtTraceMutation(c.config, OpUpdateOne, withThoughtTraceID(id))
	return &ThoughtTraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ThoughtTrace.
func (c *ThoughtTraceClient) Delete() *ThoughtTraceDelete {
	mutation := newThoughtTraceMutation(c.config, OpDelete)
	return &ThoughtTraceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ThoughtTraceClient) DeleteOne(_m *ThoughtTrace) *ThoughtTraceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ThoughtTraceClient) DeleteOneID(id int) *ThoughtTraceDeleteOne {
	builder := c.Delete().Where(thoughttrace.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ThoughtTraceDeleteOne{builder}
}

// Query returns a query builder for ThoughtTrace.
func (c *ThoughtTraceClient) Query() *ThoughtTraceQuery {
	return &ThoughtTraceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeThoughtTrace},
		inters: c.Interceptors(),
	}
}

// Get returns a ThoughtTrace entity by its id.
func (c *ThoughtTraceClient) Get(ctx context.Context, id int) (*ThoughtTrace, error) {
	return c.Query().Where(thoughttrace.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ThoughtTraceClient) GetX(ctx context.Context, id int) *ThoughtTrace {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ThoughtTraceClient) Hooks() []Hook {
	return c.hooks.ThoughtTrace
}

// Interceptors returns the client interceptors.
func (c *ThoughtTraceClient) Interceptors() []Interceptor {
	return c.inters.ThoughtTrace
}

func (c *ThoughtTraceClient) mutate(ctx context.Context, m *ThoughtTraceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ThoughtTraceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ThoughtTraceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ThoughtTraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ThoughtTraceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ThoughtTrace mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DeviceBinding, DeviceOperation, DeviceSession, DigitalTask, LifelogContext,
		LifelogEvent, LifelogImage, ObservabilitySample, PushUpdate, TelemetrySample,
		ThoughtTrace []ent.Hook
	}
	inters struct {
		DeviceBinding, DeviceOperation, DeviceSession, DigitalTask, LifelogContext,
		LifelogEvent, LifelogImage, ObservabilitySample, PushUpdate, TelemetrySample,
		ThoughtTrace []ent.Interceptor
	}
)
