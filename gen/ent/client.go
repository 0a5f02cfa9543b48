// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"dtr-engine/gen/ent/migrate"

	"dtr-engine/gen/ent/dtrformat"
	"dtr-engine/gen/ent/unknowndtrformat"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DtrFormat is the client for interacting with the DtrFormat builders.
	DtrFormat *DtrFormatClient
	// UnknownDtrFormat is the client for interacting with the UnknownDtrFormat builders.
	UnknownDtrFormat *UnknownDtrFormatClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DtrFormat = NewDtrFormatClient(c.config)
	c.UnknownDtrFormat = NewUnknownDtrFormatClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		DtrFormat:        NewDtrFormatClient(cfg),
		UnknownDtrFormat: NewUnknownDtrFormatClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		DtrFormat:        NewDtrFormatClient(cfg),
		UnknownDtrFormat: NewUnknownDtrFormatClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DtrFormat.
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
	c.DtrFormat.Use(hooks...)
	c.UnknownDtrFormat.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.DtrFormat.Intercept(interceptors...)
	c.UnknownDtrFormat.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DtrFormatMutation:
		return c.DtrFormat.mutate(ctx, m)
	case *UnknownDtrFormatMutation:
		return c.UnknownDtrFormat.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DtrFormatClient is a client for the DtrFormat schema.
type DtrFormatClient struct {
	config
}

// NewDtrFormatClient returns a client for the DtrFormat from the given config.
func NewDtrFormatClient(c config) *DtrFormatClient {
	return &DtrFormatClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dtrformat.Hooks(f(g(h())))`.
func (c *DtrFormatClient) Use(hooks ...Hook) {
	c.hooks.DtrFormat = append(c.hooks.DtrFormat, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dtrformat.Intercept(f(g(h())))`.
func (c *DtrFormatClient) Intercept(interceptors ...Interceptor) {
	c.inters.DtrFormat = append(c.inters.DtrFormat, interceptors...)
}

// Create returns a builder for creating a DtrFormat entity.
func (c *DtrFormatClient) Create() *DtrFormatCreate {
	mutation := newDtrFormatMutation(c.config, OpCreate)
	return &DtrFormatCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DtrFormat entities.
func (c *DtrFormatClient) CreateBulk(builders ...*DtrFormatCreate) *DtrFormatCreateBulk {
	return &DtrFormatCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DtrFormatClient) MapCreateBulk(slice any, setFunc func(*DtrFormatCreate, int)) *DtrFormatCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DtrFormatCreateBulk{err: fmt.Errorf("calling to DtrFormatClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DtrFormatCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DtrFormatCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DtrFormat.
func (c *DtrFormatClient) Update() *DtrFormatUpdate {
	mutation := newDtrFormatMutation(c.config, OpUpdate)
	return &DtrFormatUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DtrFormatClient) UpdateOne(_m *DtrFormat) *DtrFormatUpdateOne {
	mutation := newDtrFormatMutation(c.config, OpUpdateOne, withDtrFormat(_m))
	return &DtrFormatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DtrFormatClient) UpdateOneID(id uuid.UUID) *DtrFormatUpdateOne {
	mutation := newDtrFormatMutation(c.config, OpUpdateOne, withDtrFormatID(id))
	return &DtrFormatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DtrFormat.
func (c *DtrFormatClient) Delete() *DtrFormatDelete {
	mutation := newDtrFormatMutation(c.config, OpDelete)
	return &DtrFormatDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DtrFormatClient) DeleteOne(_m *DtrFormat) *DtrFormatDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DtrFormatClient) DeleteOneID(id uuid.UUID) *DtrFormatDeleteOne {
	builder := c.Delete().Where(dtrformat.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DtrFormatDeleteOne{builder}
}

// Query returns a query builder for DtrFormat.
func (c *DtrFormatClient) Query() *DtrFormatQuery {
	return &DtrFormatQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDtrFormat},
		inters: c.Interceptors(),
	}
}

// Get returns a DtrFormat entity by its id.
func (c *DtrFormatClient) Get(ctx context.Context, id uuid.UUID) (*DtrFormat, error) {
	return c.Query().Where(dtrformat.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DtrFormatClient) GetX(ctx context.Context, id uuid.UUID) *DtrFormat {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DtrFormatClient) Hooks() []Hook {
	return c.hooks.DtrFormat
}

// Interceptors returns the client interceptors.
func (c *DtrFormatClient) Interceptors() []Interceptor {
	return c.inters.DtrFormat
}

func (c *DtrFormatClient) mutate(ctx context.Context, m *DtrFormatMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DtrFormatCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DtrFormatUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DtrFormatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DtrFormatDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DtrFormat mutation op: %q", m.Op())
	}
}

// UnknownDtrFormatClient is a client for the UnknownDtrFormat schema.
type UnknownDtrFormatClient struct {
	config
}

// NewUnknownDtrFormatClient returns a client for the UnknownDtrFormat from the given config.
func NewUnknownDtrFormatClient(c config) *UnknownDtrFormatClient {
	return &UnknownDtrFormatClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `unknowndtrformat.Hooks(f(g(h())))`.
func (c *UnknownDtrFormatClient) Use(hooks ...Hook) {
	c.hooks.UnknownDtrFormat = append(c.hooks.UnknownDtrFormat, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `unknowndtrformat.Intercept(f(g(h())))`.
func (c *UnknownDtrFormatClient) Intercept(interceptors ...Interceptor) {
	c.inters.UnknownDtrFormat = append(c.inters.UnknownDtrFormat, interceptors...)
}

// Create returns a builder for creating a UnknownDtrFormat entity.
func (c *UnknownDtrFormatClient) Create() *UnknownDtrFormatCreate {
	mutation := newUnknownDtrFormatMutation(c.config, OpCreate)
	return &UnknownDtrFormatCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UnknownDtrFormat entities.
func (c *UnknownDtrFormatClient) CreateBulk(builders ...*UnknownDtrFormatCreate) *UnknownDtrFormatCreateBulk {
	return &UnknownDtrFormatCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UnknownDtrFormatClient) MapCreateBulk(slice any, setFunc func(*UnknownDtrFormatCreate, int)) *UnknownDtrFormatCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UnknownDtrFormatCreateBulk{err: fmt.Errorf("calling to UnknownDtrFormatClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UnknownDtrFormatCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UnknownDtrFormatCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UnknownDtrFormat.
func (c *UnknownDtrFormatClient) Update() *UnknownDtrFormatUpdate {
	mutation := newUnknownDtrFormatMutation(c.config, OpUpdate)
	return &UnknownDtrFormatUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UnknownDtrFormatClient) UpdateOne(_m *UnknownDtrFormat) *UnknownDtrFormatUpdateOne {
	mutation := newUnknownDtrFormatMutation(c.config, OpUpdateOne, withUnknownDtrFormat(_m))
	return &UnknownDtrFormatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UnknownDtrFormatClient) UpdateOneID(id uuid.UUID) *UnknownDtrFormatUpdateOne {
	mutation := newUnknownDtrFormatMutation(c.config, OpUpdateOne, withUnknownDtrFormatID(id))
	return &UnknownDtrFormatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UnknownDtrFormat.
func (c *UnknownDtrFormatClient) Delete() *UnknownDtrFormatDelete {
	mutation := newUnknownDtrFormatMutation(c.config, OpDelete)
	return &UnknownDtrFormatDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UnknownDtrFormatClient) DeleteOne(_m *UnknownDtrFormat) *UnknownDtrFormatDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UnknownDtrFormatClient) DeleteOneID(id uuid.UUID) *UnknownDtrFormatDeleteOne {
	builder := c.Delete().Where(unknowndtrformat.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UnknownDtrFormatDeleteOne{builder}
}

// Query returns a query builder for UnknownDtrFormat.
func (c *UnknownDtrFormatClient) Query() *UnknownDtrFormatQuery {
	return &UnknownDtrFormatQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUnknownDtrFormat},
		inters: c.Interceptors(),
	}
}

// Get returns a UnknownDtrFormat entity by its id.
func (c *UnknownDtrFormatClient) Get(ctx context.Context, id uuid.UUID) (*UnknownDtrFormat, error) {
	return c.Query().Where(unknowndtrformat.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UnknownDtrFormatClient) GetX(ctx context.Context, id uuid.UUID) *UnknownDtrFormat {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UnknownDtrFormatClient) Hooks() []Hook {
	return c.hooks.UnknownDtrFormat
}

// Interceptors returns the client interceptors.
func (c *UnknownDtrFormatClient) Interceptors() []Interceptor {
	return c.inters.UnknownDtrFormat
}

func (c *UnknownDtrFormatClient) mutate(ctx context.Context, m *UnknownDtrFormatMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UnknownDtrFormatCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UnknownDtrFormatUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UnknownDtrFormatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UnknownDtrFormatDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UnknownDtrFormat mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DtrFormat, UnknownDtrFormat []ent.Hook
	}
	inters struct {
		DtrFormat, UnknownDtrFormat []ent.Interceptor
	}
)
