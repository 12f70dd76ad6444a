// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/dealpage/dealpage/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dealpage/dealpage/ent/crmcontact"
	"github.com/dealpage/dealpage/ent/crmintegration"
	"github.com/dealpage/dealpage/ent/deallink"
	"github.com/dealpage/dealpage/ent/proposal"
	"github.com/dealpage/dealpage/ent/stagemapping"
	"github.com/dealpage/dealpage/ent/user"
	"github.com/dealpage/dealpage/ent/webhooklog"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CRMContact is the client for interacting with the CRMContact builders.
	CRMContact *CRMContactClient
	// CRMIntegration is the client for interacting with the CRMIntegration builders.
	CRMIntegration *CRMIntegrationClient
	// DealLink is the client for interacting with the DealLink builders.
	DealLink *DealLinkClient
	// Proposal is the client for interacting with the Proposal builders.
	Proposal *ProposalClient
	// StageMapping is the client for interacting with the StageMapping builders.
	StageMapping *StageMappingClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// WebhookLog is the client for interacting with the WebhookLog builders.
	WebhookLog *WebhookLogClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CRMContact = NewCRMContactClient(c.config)
	c.CRMIntegration = NewCRMIntegrationClient(c.config)
	c.DealLink = NewDealLinkClient(c.config)
	c.Proposal = NewProposalClient(c.config)
	c.StageMapping = NewStageMappingClient(c.config)
	c.User = NewUserClient(c.config)
	c.WebhookLog = NewWebhookLogClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		CRMContact:     NewCRMContactClient(cfg),
		CRMIntegration: NewCRMIntegrationClient(cfg),
		DealLink:       NewDealLinkClient(cfg),
		Proposal:       NewProposalClient(cfg),
		StageMapping:   NewStageMappingClient(cfg),
		User:           NewUserClient(cfg),
		WebhookLog:     NewWebhookLogClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		CRMContact:     NewCRMContactClient(cfg),
		CRMIntegration: NewCRMIntegrationClient(cfg),
		DealLink:       NewDealLinkClient(cfg),
		Proposal:       NewProposalClient(cfg),
		StageMapping:   NewStageMappingClient(cfg),
		User:           NewUserClient(cfg),
		WebhookLog:     NewWebhookLogClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CRMContact.
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
		c.CRMContact, c.CRMIntegration, c.DealLink, c.Proposal, c.StageMapping, c.User,
		c.WebhookLog,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.CRMContact, c.CRMIntegration, c.DealLink, c.Proposal, c.StageMapping, c.User,
		c.WebhookLog,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CRMContactMutation:
		return c.CRMContact.mutate(ctx, m)
	case *CRMIntegrationMutation:
		return c.CRMIntegration.mutate(ctx, m)
	case *DealLinkMutation:
		return c.DealLink.mutate(ctx, m)
	case *ProposalMutation:
		return c.Proposal.mutate(ctx, m)
	case *StageMappingMutation:
		return c.StageMapping.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *WebhookLogMutation:
		return c.WebhookLog.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CRMContactClient is a client for the CRMContact schema.
type CRMContactClient struct {
	config
}

// NewCRMContactClient returns a client for the CRMContact from the given config.
func NewCRMContactClient(c config) *CRMContactClient {
	return &CRMContactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `crmcontact.Hooks(f(g(h())))`.
func (c *CRMContactClient) Use(hooks ...Hook) {
	c.hooks.CRMContact = append(c.hooks.CRMContact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `crmcontact.Intercept(f(g(h())))`.
func (c *CRMContactClient) Intercept(interceptors ...Interceptor) {
	c.inters.CRMContact = append(c.inters.CRMContact, interceptors...)
}

// Create returns a builder for creating a CRMContact entity.
func (c *CRMContactClient) Create() *CRMContactCreate {
	mutation := newCRMContactMutation(c.config, OpCreate)
	return &CRMContactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CRMContact entities.
func (c *CRMContactClient) CreateBulk(builders ...*CRMContactCreate) *CRMContactCreateBulk {
	return &CRMContactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CRMContactClient) MapCreateBulk(slice any, setFunc func(*CRMContactCreate, int)) *CRMContactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CRMContactCreateBulk{err: fmt.Errorf("calling to CRMContactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CRMContactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CRMContactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CRMContact.
func (c *CRMContactClient) Update() *CRMContactUpdate {
	mutation := newCRMContactMutation(c.config, OpUpdate)
	return &CRMContactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CRMContactClient) UpdateOne(_m *CRMContact) *CRMContactUpdateOne {
	mutation := newCRMContactMutation(c.config, OpUpdateOne, withCRMContact(_m))
	return &CRMContactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CRMContactClient) UpdateOneID(id int) *CRMContactUpdateOne {
	mutation := newCRMContactMutation(c.config, OpUpdateOne, withCRMContactID(id))
	return &CRMContactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CRMContact.
func (c *CRMContactClient) Delete() *CRMContactDelete {
	mutation := newCRMContactMutation(c.config, OpDelete)
	return &CRMContactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CRMContactClient) DeleteOne(_m *CRMContact) *CRMContactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CRMContactClient) DeleteOneID(id int) *CRMContactDeleteOne {
	builder := c.Delete().Where(crmcontact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CRMContactDeleteOne{builder}
}

// Query returns a query builder for CRMContact.
func (c *CRMContactClient) Query() *CRMContactQuery {
	return &CRMContactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCRMContact},
		inters: c.Interceptors(),
	}
}

// Get returns a CRMContact entity by its id.
func (c *CRMContactClient) Get(ctx context.Context, id int) (*CRMContact, error) {
	return c.Query().Where(crmcontact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CRMContactClient) GetX(ctx context.Context, id int) *CRMContact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryIntegration queries the integration edge of a CRMContact.
func (c *CRMContactClient) QueryIntegration(_m *CRMContact) *CRMIntegrationQuery {
	query := (&CRMIntegrationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(crmcontact.Table, crmcontact.FieldID, id),
			sqlgraph.To(crmintegration.Table, crmintegration.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, crmcontact.IntegrationTable, crmcontact.IntegrationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CRMContactClient) Hooks() []Hook {
	return c.hooks.CRMContact
}

// Interceptors returns the client interceptors.
func (c *CRMContactClient) Interceptors() []Interceptor {
	return c.inters.CRMContact
}

func (c *CRMContactClient) mutate(ctx context.Context, m *CRMContactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CRMContactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CRMContactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CRMContactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CRMContactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CRMContact mutation op: %q", m.Op())
	}
}

// CRMIntegrationClient is a client for the CRMIntegration schema.
type CRMIntegrationClient struct {
	config
}

// NewCRMIntegrationClient returns a client for the CRMIntegration from the given config.
func NewCRMIntegrationClient(c config) *CRMIntegrationClient {
	return &CRMIntegrationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `crmintegration.Hooks(f(g(h())))`.
func (c *CRMIntegrationClient) Use(hooks ...Hook) {
	c.hooks.CRMIntegration = append(c.hooks.CRMIntegration, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `crmintegration.Intercept(f(g(h())))`.
func (c *CRMIntegrationClient) Intercept(interceptors ...Interceptor) {
	c.inters.CRMIntegration = append(c.inters.CRMIntegration, interceptors...)
}

// Create returns a builder for creating a CRMIntegration entity.
func (c *CRMIntegrationClient) Create() *CRMIntegrationCreate {
	mutation := newCRMIntegrationMutation(c.config, OpCreate)
	return &CRMIntegrationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CRMIntegration entities.
func (c *CRMIntegrationClient) CreateBulk(builders ...*CRMIntegrationCreate) *CRMIntegrationCreateBulk {
	return &CRMIntegrationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CRMIntegrationClient) MapCreateBulk(slice any, setFunc func(*CRMIntegrationCreate, int)) *CRMIntegrationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CRMIntegrationCreateBulk{err: fmt.Errorf("calling to CRMIntegrationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CRMIntegrationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CRMIntegrationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CRMIntegration.
func (c *CRMIntegrationClient) Update() *CRMIntegrationUpdate {
	mutation := newCRMIntegrationMutation(c.config, OpUpdate)
	return &CRMIntegrationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CRMIntegrationClient) UpdateOne(_m *CRMIntegration) *CRMIntegrationUpdateOne {
	mutation := newCRMIntegrationMutation(c.config, OpUpdateOne, withCRMIntegration(_m))
	return &CRMIntegrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CRMIntegrationClient) UpdateOneID(id int) *CRMIntegrationUpdateOne {
	mutation := newCRMIntegrationMutation(c.config, OpUpdateOne, withCRMIntegrationID(id))
	return &CRMIntegrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CRMIntegration.
func (c *CRMIntegrationClient) Delete() *CRMIntegrationDelete {
	mutation := newCRMIntegrationMutation(c.config, OpDelete)
	return &CRMIntegrationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CRMIntegrationClient) DeleteOne(_m *CRMIntegration) *CRMIntegrationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CRMIntegrationClient) DeleteOneID(id int) *CRMIntegrationDeleteOne {
	builder := c.Delete().Where(crmintegration.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CRMIntegrationDeleteOne{builder}
}

// Query returns a query builder for CRMIntegration.
func (c *CRMIntegrationClient) Query() *CRMIntegrationQuery {
	return &CRMIntegrationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCRMIntegration},
		inters: c.Interceptors(),
	}
}

// Get returns a CRMIntegration entity by its id.
func (c *CRMIntegrationClient) Get(ctx context.Context, id int) (*CRMIntegration, error) {
	return c.Query().Where(crmintegration.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CRMIntegrationClient) GetX(ctx context.Context, id int) *CRMIntegration {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a CRMIntegration.
func (c *CRMIntegrationClient) QueryUser(_m *CRMIntegration) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(crmintegration.Table, crmintegration.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, crmintegration.UserTable, crmintegration.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStageMappings queries the stage_mappings edge of a CRMIntegration.
func (c *CRMIntegrationClient) QueryStageMappings(_m *CRMIntegration) *StageMappingQuery {
	query := (&StageMappingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(crmintegration.Table, crmintegration.FieldID, id),
			sqlgraph.To(stagemapping.Table, stagemapping.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, crmintegration.StageMappingsTable, crmintegration.StageMappingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDealLinks queries the deal_links edge of a CRMIntegration.
func (c *CRMIntegrationClient) QueryDealLinks(_m *CRMIntegration) *DealLinkQuery {
	query := (&DealLinkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(crmintegration.Table, crmintegration.FieldID, id),
			sqlgraph.To(deallink.Table, deallink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, crmintegration.DealLinksTable, crmintegration.DealLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryContacts queries the contacts edge of a CRMIntegration.
func (c *CRMIntegrationClient) QueryContacts(_m *CRMIntegration) *CRMContactQuery {
	query := (&CRMContactClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(crmintegration.Table, crmintegration.FieldID, id),
			sqlgraph.To(crmcontact.Table, crmcontact.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, crmintegration.ContactsTable, crmintegration.ContactsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CRMIntegrationClient) Hooks() []Hook {
	return c.hooks.CRMIntegration
}

// Interceptors returns the client interceptors.
func (c *CRMIntegrationClient) Interceptors() []Interceptor {
	return c.inters.CRMIntegration
}

func (c *CRMIntegrationClient) mutate(ctx context.Context, m *CRMIntegrationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CRMIntegrationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CRMIntegrationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CRMIntegrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CRMIntegrationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CRMIntegration mutation op: %q", m.Op())
	}
}

// DealLinkClient is a client for the DealLink schema.
type DealLinkClient struct {
	config
}

// NewDealLinkClient returns a client for the DealLink from the given config.
func NewDealLinkClient(c config) *DealLinkClient {
	return &DealLinkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deallink.Hooks(f(g(h())))`.
func (c *DealLinkClient) Use(hooks ...Hook) {
	c.hooks.DealLink = append(c.hooks.DealLink, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deallink.Intercept(f(g(h())))`.
func (c *DealLinkClient) Intercept(interceptors ...Interceptor) {
	c.inters.DealLink = append(c.inters.DealLink, interceptors...)
}

// Create returns a builder for creating a DealLink entity.
func (c *DealLinkClient) Create() *DealLinkCreate {
	mutation := newDealLinkMutation(c.config, OpCreate)
	return &DealLinkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DealLink entities.
func (c *DealLinkClient) CreateBulk(builders ...*DealLinkCreate) *DealLinkCreateBulk {
	return &DealLinkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DealLinkClient) MapCreateBulk(slice any, setFunc func(*DealLinkCreate, int)) *DealLinkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DealLinkCreateBulk{err: fmt.Errorf("calling to DealLinkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DealLinkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DealLinkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DealLink.
func (c *DealLinkClient) Update() *DealLinkUpdate {
	mutation := newDealLinkMutation(c.config, OpUpdate)
	return &DealLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DealLinkClient) UpdateOne(_m *DealLink) *DealLinkUpdateOne {
	mutation := newDealLinkMutation(c.config, OpUpdateOne, withDealLink(_m))
	return &DealLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DealLinkClient) UpdateOneID(id int) *DealLinkUpdateOne {
	mutation := newDealLinkMutation(c.config, OpUpdateOne, withDealLinkID(id))
	return &DealLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DealLink.
func (c *DealLinkClient) Delete() *DealLinkDelete {
	mutation := newDealLinkMutation(c.config, OpDelete)
	return &DealLinkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DealLinkClient) DeleteOne(_m *DealLink) *DealLinkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DealLinkClient) DeleteOneID(id int) *DealLinkDeleteOne {
	builder := c.Delete().Where(deallink.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DealLinkDeleteOne{builder}
}

// Query returns a query builder for DealLink.
func (c *DealLinkClient) Query() *DealLinkQuery {
	return &DealLinkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDealLink},
		inters: c.Interceptors(),
	}
}

// Get returns a DealLink entity by its id.
func (c *DealLinkClient) Get(ctx context.Context, id int) (*DealLink, error) {
	return c.Query().Where(deallink.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DealLinkClient) GetX(ctx context.Context, id int) *DealLink {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryIntegration queries the integration edge of a DealLink.
func (c *DealLinkClient) QueryIntegration(_m *DealLink) *CRMIntegrationQuery {
	query := (&CRMIntegrationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(deallink.Table, deallink.FieldID, id),
			sqlgraph.To(crmintegration.Table, crmintegration.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, deallink.IntegrationTable, deallink.IntegrationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProposal queries the proposal edge of a DealLink.
func (c *DealLinkClient) QueryProposal(_m *DealLink) *ProposalQuery {
	query := (&ProposalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(deallink.Table, deallink.FieldID, id),
			sqlgraph.To(proposal.Table, proposal.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, deallink.ProposalTable, deallink.ProposalColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DealLinkClient) Hooks() []Hook {
	return c.hooks.DealLink
}

// Interceptors returns the client interceptors.
func (c *DealLinkClient) Interceptors() []Interceptor {
	return c.inters.DealLink
}

func (c *DealLinkClient) mutate(ctx context.Context, m *DealLinkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DealLinkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DealLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DealLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DealLinkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DealLink mutation op: %q", m.Op())
	}
}

// ProposalClient is a client for the Proposal schema.
type ProposalClient struct {
	config
}

// NewProposalClient returns a client for the Proposal from the given config.
func NewProposalClient(c config) *ProposalClient {
	return &ProposalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `proposal.Hooks(f(g(h())))`.
func (c *ProposalClient) Use(hooks ...Hook) {
	c.hooks.Proposal = append(c.hooks.Proposal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `proposal.Intercept(f(g(h())))`.
func (c *ProposalClient) Intercept(interceptors ...Interceptor) {
	c.inters.Proposal = append(c.inters.Proposal, interceptors...)
}

// Create returns a builder for creating a Proposal entity.
func (c *ProposalClient) Create() *ProposalCreate {
	mutation := newProposalMutation(c.config, OpCreate)
	return &ProposalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Proposal entities.
func (c *ProposalClient) CreateBulk(builders ...*ProposalCreate) *ProposalCreateBulk {
	return &ProposalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProposalClient) MapCreateBulk(slice any, setFunc func(*ProposalCreate, int)) *ProposalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProposalCreateBulk{err: fmt.Errorf("calling to ProposalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProposalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProposalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Proposal.
func (c *ProposalClient) Update() *ProposalUpdate {
	mutation := newProposalMutation(c.config, OpUpdate)
	return &ProposalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProposalClient) UpdateOne(_m *Proposal) *ProposalUpdateOne {
	mutation := newProposalMutation(c.config, OpUpdateOne, withProposal(_m))
	return &ProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProposalClient) UpdateOneID(id int) *ProposalUpdateOne {
	mutation := newProposalMutation(c.config, OpUpdateOne, withProposalID(id))
	return &ProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Proposal.
func (c *ProposalClient) Delete() *ProposalDelete {
	mutation := newProposalMutation(c.config, OpDelete)
	return &ProposalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProposalClient) DeleteOne(_m *Proposal) *ProposalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProposalClient) DeleteOneID(id int) *ProposalDeleteOne {
	builder := c.Delete().Where(proposal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProposalDeleteOne{builder}
}

// Query returns a query builder for Proposal.
func (c *ProposalClient) Query() *ProposalQuery {
	return &ProposalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProposal},
		inters: c.Interceptors(),
	}
}

// Get returns a Proposal entity by its id.
func (c *ProposalClient) Get(ctx context.Context, id int) (*Proposal, error) {
	return c.Query().Where(proposal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProposalClient) GetX(ctx context.Context, id int) *Proposal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Proposal.
func (c *ProposalClient) QueryUser(_m *Proposal) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(proposal.Table, proposal.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, proposal.UserTable, proposal.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDealLinks queries the deal_links edge of a Proposal.
func (c *ProposalClient) QueryDealLinks(_m *Proposal) *DealLinkQuery {
	query := (&DealLinkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(proposal.Table, proposal.FieldID, id),
			sqlgraph.To(deallink.Table, deallink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, proposal.DealLinksTable, proposal.DealLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProposalClient) Hooks() []Hook {
	return c.hooks.Proposal
}

// Interceptors returns the client interceptors.
func (c *ProposalClient) Interceptors() []Interceptor {
	return c.inters.Proposal
}

func (c *ProposalClient) mutate(ctx context.Context, m *ProposalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProposalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProposalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProposalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Proposal mutation op: %q", m.Op())
	}
}

// StageMappingClient is a client for the StageMapping schema.
type StageMappingClient struct {
	config
}

// NewStageMappingClient returns a client for the StageMapping from the given config.
func NewStageMappingClient(c config) *StageMappingClient {
	return &StageMappingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stagemapping.Hooks(f(g(h())))`.
func (c *StageMappingClient) Use(hooks ...Hook) {
	c.hooks.StageMapping = append(c.hooks.StageMapping, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stagemapping.Intercept(f(g(h())))`.
func (c *StageMappingClient) Intercept(interceptors ...Interceptor) {
	c.inters.StageMapping = append(c.inters.StageMapping, interceptors...)
}

// Create returns a builder for creating a StageMapping entity.
func (c *StageMappingClient) Create() *StageMappingCreate {
	mutation := newStageMappingMutation(c.config, OpCreate)
	return &StageMappingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StageMapping entities.
func (c *StageMappingClient) CreateBulk(builders ...*StageMappingCreate) *StageMappingCreateBulk {
	return &StageMappingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StageMappingClient) MapCreateBulk(slice any, setFunc func(*StageMappingCreate, int)) *StageMappingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StageMappingCreateBulk{err: fmt.Errorf("calling to StageMappingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StageMappingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StageMappingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StageMapping.
func (c *StageMappingClient) Update() *StageMappingUpdate {
	mutation := newStageMappingMutation(c.config, OpUpdate)
	return &StageMappingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StageMappingClient) UpdateOne(_m *StageMapping) *StageMappingUpdateOne {
	mutation := newStageMappingMutation(c.config, OpUpdateOne, withStageMapping(_m))
	return &StageMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StageMappingClient) UpdateOneID(id int) *StageMappingUpdateOne {
	mutation := newStageMappingMutation(c.config, OpUpdateOne, withStageMappingID(id))
	return &StageMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StageMapping.
func (c *StageMappingClient) Delete() *StageMappingDelete {
	mutation := newStageMappingMutation(c.config, OpDelete)
	return &StageMappingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StageMappingClient) DeleteOne(_m *StageMapping) *StageMappingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StageMappingClient) DeleteOneID(id int) *StageMappingDeleteOne {
	builder := c.Delete().Where(stagemapping.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StageMappingDeleteOne{builder}
}

// Query returns a query builder for StageMapping.
func (c *StageMappingClient) Query() *StageMappingQuery {
	return &StageMappingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStageMapping},
		inters: c.Interceptors(),
	}
}

// Get returns a StageMapping entity by its id.
func (c *StageMappingClient) Get(ctx context.Context, id int) (*StageMapping, error) {
	return c.Query().Where(stagemapping.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StageMappingClient) GetX(ctx context.Context, id int) *StageMapping {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryIntegration queries the integration edge of a StageMapping.
func (c *StageMappingClient) QueryIntegration(_m *StageMapping) *CRMIntegrationQuery {
	query := (&CRMIntegrationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stagemapping.Table, stagemapping.FieldID, id),
			sqlgraph.To(crmintegration.Table, crmintegration.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stagemapping.IntegrationTable, stagemapping.IntegrationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StageMappingClient) Hooks() []Hook {
	return c.hooks.StageMapping
}

// Interceptors returns the client interceptors.
func (c *StageMappingClient) Interceptors() []Interceptor {
	return c.inters.StageMapping
}

func (c *StageMappingClient) mutate(ctx context.Context, m *StageMappingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StageMappingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StageMappingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StageMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StageMappingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StageMapping mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id int) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id int) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id int) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id int) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProposals queries the proposals edge of a User.
func (c *UserClient) QueryProposals(_m *User) *ProposalQuery {
	query := (&ProposalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(proposal.Table, proposal.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.ProposalsTable, user.ProposalsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCrmIntegrations queries the crm_integrations edge of a User.
func (c *UserClient) QueryCrmIntegrations(_m *User) *CRMIntegrationQuery {
	query := (&CRMIntegrationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(crmintegration.Table, crmintegration.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.CrmIntegrationsTable, user.CrmIntegrationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// WebhookLogClient is a client for the WebhookLog schema.
type WebhookLogClient struct {
	config
}

// NewWebhookLogClient returns a client for the WebhookLog from the given config.
func NewWebhookLogClient(c config) *WebhookLogClient {
	return &WebhookLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `webhooklog.Hooks(f(g(h())))`.
func (c *WebhookLogClient) Use(hooks ...Hook) {
	c.hooks.WebhookLog = append(c.hooks.WebhookLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `webhooklog.Intercept(f(g(h())))`.
func (c *WebhookLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.WebhookLog = append(c.inters.WebhookLog, interceptors...)
}

// Create returns a builder for creating a WebhookLog entity.
func (c *WebhookLogClient) Create() *WebhookLogCreate {
	mutation := newWebhookLogMutation(c.config, OpCreate)
	return &WebhookLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WebhookLog entities.
func (c *WebhookLogClient) CreateBulk(builders ...*WebhookLogCreate) *WebhookLogCreateBulk {
	return &WebhookLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WebhookLogClient) MapCreateBulk(slice any, setFunc func(*WebhookLogCreate, int)) *WebhookLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WebhookLogCreateBulk{err: fmt.Errorf("calling to WebhookLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WebhookLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WebhookLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WebhookLog.
func (c *WebhookLogClient) Update() *WebhookLogUpdate {
	mutation := newWebhookLogMutation(c.config, OpUpdate)
	return &WebhookLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WebhookLogClient) UpdateOne(_m *WebhookLog) *WebhookLogUpdateOne {
	mutation := newWebhookLogMutation(c.config, OpUpdateOne, withWebhookLog(_m))
	return &WebhookLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WebhookLogClient) UpdateOneID(id int) *WebhookLogUpdateOne {
	mutation := newWebhookLogMutation(c.config, OpUpdateOne, withWebhookLogID(id))
	return &WebhookLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WebhookLog.
func (c *WebhookLogClient) Delete() *WebhookLogDelete {
	mutation := newWebhookLogMutation(c.config, OpDelete)
	return &WebhookLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WebhookLogClient) DeleteOne(_m *WebhookLog) *WebhookLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WebhookLogClient) DeleteOneID(id int) *WebhookLogDeleteOne {
	builder := c.Delete().Where(webhooklog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WebhookLogDeleteOne{builder}
}

// Query returns a query builder for WebhookLog.
func (c *WebhookLogClient) Query() *WebhookLogQuery {
	return &WebhookLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWebhookLog},
		inters: c.Interceptors(),
	}
}

// Get returns a WebhookLog entity by its id.
func (c *WebhookLogClient) Get(ctx context.Context, id int) (*WebhookLog, error) {
	return c.Query().Where(webhooklog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WebhookLogClient) GetX(ctx context.Context, id int) *WebhookLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WebhookLogClient) Hooks() []Hook {
	return c.hooks.WebhookLog
}

// Interceptors returns the client interceptors.
func (c *WebhookLogClient) Interceptors() []Interceptor {
	return c.inters.WebhookLog
}

func (c *WebhookLogClient) mutate(ctx context.Context, m *WebhookLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WebhookLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WebhookLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WebhookLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WebhookLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WebhookLog mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CRMContact, CRMIntegration, DealLink, Proposal, StageMapping, User,
		WebhookLog []ent.Hook
	}
	inters struct {
		CRMContact, CRMIntegration, DealLink, Proposal, StageMapping, User,
		WebhookLog []ent.Interceptor
	}
)
