// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/docufill/docpipe/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docufill/docpipe/gen/ent/clientprofile"
	"github.com/docufill/docpipe/gen/ent/document"
	"github.com/docufill/docpipe/gen/ent/extractionresult"
	"github.com/docufill/docpipe/gen/ent/formtemplate"
	"github.com/docufill/docpipe/gen/ent/pipelinejob"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ClientProfile is the client for interacting with the ClientProfile builders.
	ClientProfile *ClientProfileClient
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// ExtractionResult is the client for interacting with the ExtractionResult builders.
	ExtractionResult *ExtractionResultClient
	// FormTemplate is the client for interacting with the FormTemplate builders.
	FormTemplate *FormTemplateClient
	// PipelineJob is the client for interacting with the PipelineJob builders.
	PipelineJob *PipelineJobClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ClientProfile = NewClientProfileClient(c.config)
	c.Document = NewDocumentClient(c.config)
	c.ExtractionResult = NewExtractionResultClient(c.config)
	c.FormTemplate = NewFormTemplateClient(c.config)
	c.PipelineJob = NewPipelineJobClient(c.config)
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
		ClientProfile:    NewClientProfileClient(cfg),
		Document:         NewDocumentClient(cfg),
		ExtractionResult: NewExtractionResultClient(cfg),
		FormTemplate:     NewFormTemplateClient(cfg),
		PipelineJob:      NewPipelineJobClient(cfg),
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
		ClientProfile:    NewClientProfileClient(cfg),
		Document:         NewDocumentClient(cfg),
		ExtractionResult: NewExtractionResultClient(cfg),
		FormTemplate:     NewFormTemplateClient(cfg),
		PipelineJob:      NewPipelineJobClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ClientProfile.
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
	c.ClientProfile.Use(hooks...)
	c.Document.Use(hooks...)
	c.ExtractionResult.Use(hooks...)
	c.FormTemplate.Use(hooks...)
	c.PipelineJob.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ClientProfile.Intercept(interceptors...)
	c.Document.Intercept(interceptors...)
	c.ExtractionResult.Intercept(interceptors...)
	c.FormTemplate.Intercept(interceptors...)
	c.PipelineJob.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ClientProfileMutation:
		return c.ClientProfile.mutate(ctx, m)
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *ExtractionResultMutation:
		return c.ExtractionResult.mutate(ctx, m)
	case *FormTemplateMutation:
		return c.FormTemplate.mutate(ctx, m)
	case *PipelineJobMutation:
		return c.PipelineJob.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ClientProfileClient is a client for the ClientProfile schema.
type ClientProfileClient struct {
	config
}

// NewClientProfileClient returns a client for the ClientProfile from the given config.
func NewClientProfileClient(c config) *ClientProfileClient {
	return &ClientProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clientprofile.Hooks(f(g(h())))`.
func (c *ClientProfileClient) Use(hooks ...Hook) {
	c.hooks.ClientProfile = append(c.hooks.ClientProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clientprofile.Intercept(f(g(h())))`.
func (c *ClientProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClientProfile = append(c.inters.ClientProfile, interceptors...)
}

// Create returns a builder for creating a ClientProfile entity.
func (c *ClientProfileClient) Create() *ClientProfileCreate {
	mutation := newClientProfileMutation(c.config, OpCreate)
	return &ClientProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClientProfile entities.
func (c *ClientProfileClient) CreateBulk(builders ...*ClientProfileCreate) *ClientProfileCreateBulk {
	return &ClientProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClientProfileClient) MapCreateBulk(slice any, setFunc func(*ClientProfileCreate, int)) *ClientProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClientProfileCreateBulk{err: fmt.Errorf("calling to ClientProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClientProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClientProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClientProfile.
func (c *ClientProfileClient) Update() *ClientProfileUpdate {
	mutation := newClientProfileMutation(c.config, OpUpdate)
	return &ClientProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClientProfileClient) UpdateOne(_m *ClientProfile) *ClientProfileUpdateOne {
	mutation := newClientProfileMutation(c.config, OpUpdateOne, withClientProfile(_m))
	return &ClientProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClientProfileClient) UpdateOneID(id uuid.UUID) *ClientProfileUpdateOne {
	mutation := newClientProfileMutation(c.config, OpUpdateOne, withClientProfileID(id))
	return &ClientProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClientProfile.
func (c *ClientProfileClient) Delete() *ClientProfileDelete {
	mutation := newClientProfileMutation(c.config, OpDelete)
	return &ClientProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClientProfileClient) DeleteOne(_m *ClientProfile) *ClientProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClientProfileClient) DeleteOneID(id uuid.UUID) *ClientProfileDeleteOne {
	builder := c.Delete().Where(clientprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClientProfileDeleteOne{builder}
}

// Query returns a query builder for ClientProfile.
func (c *ClientProfileClient) Query() *ClientProfileQuery {
	return &ClientProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClientProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a ClientProfile entity by its id.
func (c *ClientProfileClient) Get(ctx context.Context, id uuid.UUID) (*ClientProfile, error) {
	return c.Query().Where(clientprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClientProfileClient) GetX(ctx context.Context, id uuid.UUID) *ClientProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ClientProfileClient) Hooks() []Hook {
	return c.hooks.ClientProfile
}

// Interceptors returns the client interceptors.
func (c *ClientProfileClient) Interceptors() []Interceptor {
	return c.inters.ClientProfile
}

func (c *ClientProfileClient) mutate(ctx context.Context, m *ClientProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClientProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClientProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClientProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClientProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ClientProfile mutation op: %q", m.Op())
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id uuid.UUID) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id uuid.UUID) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id uuid.UUID) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a Document.
func (c *DocumentClient) QueryJobs(_m *Document) *PipelineJobQuery {
	query := (&PipelineJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(pipelinejob.Table, pipelinejob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.JobsTable, document.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResults queries the results edge of a Document.
func (c *DocumentClient) QueryResults(_m *Document) *ExtractionResultQuery {
	query := (&ExtractionResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(extractionresult.Table, extractionresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.ResultsTable, document.ResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// ExtractionResultClient is a client for the ExtractionResult schema.
type ExtractionResultClient struct {
	config
}

// NewExtractionResultClient returns a client for the ExtractionResult from the given config.
func NewExtractionResultClient(c config) *ExtractionResultClient {
	return &ExtractionResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractionresult.Hooks(f(g(h())))`.
func (c *ExtractionResultClient) Use(hooks ...Hook) {
	c.hooks.ExtractionResult = append(c.hooks.ExtractionResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractionresult.Intercept(f(g(h())))`.
func (c *ExtractionResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractionResult = append(c.inters.ExtractionResult, interceptors...)
}

// Create returns a builder for creating a ExtractionResult entity.
func (c *ExtractionResultClient) Create() *ExtractionResultCreate {
	mutation := newExtractionResultMutation(c.config, OpCreate)
	return &ExtractionResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractionResult entities.
func (c *ExtractionResultClient) CreateBulk(builders ...*ExtractionResultCreate) *ExtractionResultCreateBulk {
	return &ExtractionResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionResultClient) MapCreateBulk(slice any, setFunc func(*ExtractionResultCreate, int)) *ExtractionResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionResultCreateBulk{err: fmt.Errorf("calling to ExtractionResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractionResult.
func (c *ExtractionResultClient) Update() *ExtractionResultUpdate {
	mutation := newExtractionResultMutation(c.config, OpUpdate)
	return &ExtractionResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionResultClient) UpdateOne(_m *ExtractionResult) *ExtractionResultUpdateOne {
	mutation := newExtractionResultMutation(c.config, OpUpdateOne, withExtractionResult(_m))
	return &ExtractionResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionResultClient) UpdateOneID(id uuid.UUID) *ExtractionResultUpdateOne {
	mutation := newExtractionResultMutation(c.config, OpUpdateOne, withExtractionResultID(id))
	return &ExtractionResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractionResult.
func (c *ExtractionResultClient) Delete() *ExtractionResultDelete {
	mutation := newExtractionResultMutation(c.config, OpDelete)
	return &ExtractionResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionResultClient) DeleteOne(_m *ExtractionResult) *ExtractionResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionResultClient) DeleteOneID(id uuid.UUID) *ExtractionResultDeleteOne {
	builder := c.Delete().Where(extractionresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionResultDeleteOne{builder}
}

// Query returns a query builder for ExtractionResult.
func (c *ExtractionResultClient) Query() *ExtractionResultQuery {
	return &ExtractionResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractionResult},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractionResult entity by its id.
func (c *ExtractionResultClient) Get(ctx context.Context, id uuid.UUID) (*ExtractionResult, error) {
	return c.Query().Where(extractionresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionResultClient) GetX(ctx context.Context, id uuid.UUID) *ExtractionResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a ExtractionResult.
func (c *ExtractionResultClient) QueryDocument(_m *ExtractionResult) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionresult.Table, extractionresult.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractionresult.DocumentTable, extractionresult.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJob queries the job edge of a ExtractionResult.
func (c *ExtractionResultClient) QueryJob(_m *ExtractionResult) *PipelineJobQuery {
	query := (&PipelineJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionresult.Table, extractionresult.FieldID, id),
			sqlgraph.To(pipelinejob.Table, pipelinejob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractionresult.JobTable, extractionresult.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractionResultClient) Hooks() []Hook {
	return c.hooks.ExtractionResult
}

// Interceptors returns the client interceptors.
func (c *ExtractionResultClient) Interceptors() []Interceptor {
	return c.inters.ExtractionResult
}

func (c *ExtractionResultClient) mutate(ctx context.Context, m *ExtractionResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractionResult mutation op: %q", m.Op())
	}
}

// FormTemplateClient is a client for the FormTemplate schema.
type FormTemplateClient struct {
	config
}

// NewFormTemplateClient returns a client for the FormTemplate from the given config.
func NewFormTemplateClient(c config) *FormTemplateClient {
	return &FormTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `formtemplate.Hooks(f(g(h())))`.
func (c *FormTemplateClient) Use(hooks ...Hook) {
	c.hooks.FormTemplate = append(c.hooks.FormTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `formtemplate.Intercept(f(g(h())))`.
func (c *FormTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.FormTemplate = append(c.inters.FormTemplate, interceptors...)
}

// Create returns a builder for creating a FormTemplate entity.
func (c *FormTemplateClient) Create() *FormTemplateCreate {
	mutation := newFormTemplateMutation(c.config, OpCreate)
	return &FormTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FormTemplate entities.
func (c *FormTemplateClient) CreateBulk(builders ...*FormTemplateCreate) *FormTemplateCreateBulk {
	return &FormTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FormTemplateClient) MapCreateBulk(slice any, setFunc func(*FormTemplateCreate, int)) *FormTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FormTemplateCreateBulk{err: fmt.Errorf("calling to FormTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FormTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FormTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FormTemplate.
func (c *FormTemplateClient) Update() *FormTemplateUpdate {
	mutation := newFormTemplateMutation(c.config, OpUpdate)
	return &FormTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FormTemplateClient) UpdateOne(_m *FormTemplate) *FormTemplateUpdateOne {
	mutation := newFormTemplateMutation(c.config, OpUpdateOne, withFormTemplate(_m))
	return &FormTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FormTemplateClient) UpdateOneID(id uuid.UUID) *FormTemplateUpdateOne {
	mutation := newFormTemplateMutation(c.config, OpUpdateOne, withFormTemplateID(id))
	return &FormTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FormTemplate.
func (c *FormTemplateClient) Delete() *FormTemplateDelete {
	mutation := newFormTemplateMutation(c.config, OpDelete)
	return &FormTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FormTemplateClient) DeleteOne(_m *FormTemplate) *FormTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FormTemplateClient) DeleteOneID(id uuid.UUID) *FormTemplateDeleteOne {
	builder := c.Delete().Where(formtemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FormTemplateDeleteOne{builder}
}

// Query returns a query builder for FormTemplate.
func (c *FormTemplateClient) Query() *FormTemplateQuery {
	return &FormTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFormTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a FormTemplate entity by its id.
func (c *FormTemplateClient) Get(ctx context.Context, id uuid.UUID) (*FormTemplate, error) {
	return c.Query().Where(formtemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FormTemplateClient) GetX(ctx context.Context, id uuid.UUID) *FormTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a FormTemplate.
func (c *FormTemplateClient) QueryJobs(_m *FormTemplate) *PipelineJobQuery {
	query := (&PipelineJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(formtemplate.Table, formtemplate.FieldID, id),
			sqlgraph.To(pipelinejob.Table, pipelinejob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, formtemplate.JobsTable, formtemplate.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FormTemplateClient) Hooks() []Hook {
	return c.hooks.FormTemplate
}

// Interceptors returns the client interceptors.
func (c *FormTemplateClient) Interceptors() []Interceptor {
	return c.inters.FormTemplate
}

func (c *FormTemplateClient) mutate(ctx context.Context, m *FormTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FormTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FormTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FormTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FormTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FormTemplate mutation op: %q", m.Op())
	}
}

// PipelineJobClient is a client for the PipelineJob schema.
type PipelineJobClient struct {
	config
}

// NewPipelineJobClient returns a client for the PipelineJob from the given config.
func NewPipelineJobClient(c config) *PipelineJobClient {
	return &PipelineJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinejob.Hooks(f(g(h())))`.
func (c *PipelineJobClient) Use(hooks ...Hook) {
	c.hooks.PipelineJob = append(c.hooks.PipelineJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinejob.Intercept(f(g(h())))`.
func (c *PipelineJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineJob = append(c.inters.PipelineJob, interceptors...)
}

// Create returns a builder for creating a PipelineJob entity.
func (c *PipelineJobClient) Create() *PipelineJobCreate {
	mutation := newPipelineJobMutation(c.config, OpCreate)
	return &PipelineJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineJob entities.
func (c *PipelineJobClient) CreateBulk(builders ...*PipelineJobCreate) *PipelineJobCreateBulk {
	return &PipelineJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineJobClient) MapCreateBulk(slice any, setFunc func(*PipelineJobCreate, int)) *PipelineJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineJobCreateBulk{err: fmt.Errorf("calling to PipelineJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineJob.
func (c *PipelineJobClient) Update() *PipelineJobUpdate {
	mutation := newPipelineJobMutation(c.config, OpUpdate)
	return &PipelineJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineJobClient) UpdateOne(_m *PipelineJob) *PipelineJobUpdateOne {
	mutation := newPipelineJobMutation(c.config, OpUpdateOne, withPipelineJob(_m))
	return &PipelineJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineJobClient) UpdateOneID(id uuid.UUID) *PipelineJobUpdateOne {
	mutation := newPipelineJobMutation(c.config, OpUpdateOne, withPipelineJobID(id))
	return &PipelineJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineJob.
func (c *PipelineJobClient) Delete() *PipelineJobDelete {
	mutation := newPipelineJobMutation(c.config, OpDelete)
	return &PipelineJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineJobClient) DeleteOne(_m *PipelineJob) *PipelineJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineJobClient) DeleteOneID(id uuid.UUID) *PipelineJobDeleteOne {
	builder := c.Delete().Where(pipelinejob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineJobDeleteOne{builder}
}

// Query returns a query builder for PipelineJob.
func (c *PipelineJobClient) Query() *PipelineJobQuery {
	return &PipelineJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineJob},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineJob entity by its id.
func (c *PipelineJobClient) Get(ctx context.Context, id uuid.UUID) (*PipelineJob, error) {
	return c.Query().Where(pipelinejob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineJobClient) GetX(ctx context.Context, id uuid.UUID) *PipelineJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a PipelineJob.
func (c *PipelineJobClient) QueryDocument(_m *PipelineJob) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinejob.Table, pipelinejob.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pipelinejob.DocumentTable, pipelinejob.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTemplate queries the template edge of a PipelineJob.
func (c *PipelineJobClient) QueryTemplate(_m *PipelineJob) *FormTemplateQuery {
	query := (&FormTemplateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinejob.Table, pipelinejob.FieldID, id),
			sqlgraph.To(formtemplate.Table, formtemplate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pipelinejob.TemplateTable, pipelinejob.TemplateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResults queries the results edge of a PipelineJob.
func (c *PipelineJobClient) QueryResults(_m *PipelineJob) *ExtractionResultQuery {
	query := (&ExtractionResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinejob.Table, pipelinejob.FieldID, id),
			sqlgraph.To(extractionresult.Table, extractionresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pipelinejob.ResultsTable, pipelinejob.ResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PipelineJobClient) Hooks() []Hook {
	return c.hooks.PipelineJob
}

// Interceptors returns the client interceptors.
func (c *PipelineJobClient) Interceptors() []Interceptor {
	return c.inters.PipelineJob
}

func (c *PipelineJobClient) mutate(ctx context.Context, m *PipelineJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineJob mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ClientProfile, Document, ExtractionResult, FormTemplate, PipelineJob []ent.Hook
	}
	inters struct {
		ClientProfile, Document, ExtractionResult, FormTemplate,
		PipelineJob []ent.Interceptor
	}
)
