// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dealpage/dealpage/ent/crmcontact"
	"github.com/dealpage/dealpage/ent/crmintegration"
	"github.com/dealpage/dealpage/ent/deallink"
	"github.com/dealpage/dealpage/ent/predicate"
	"github.com/dealpage/dealpage/ent/stagemapping"
	"github.com/dealpage/dealpage/ent/user"
)

// CRMIntegrationQuery is the builder for querying CRMIntegration entities.
type CRMIntegrationQuery struct {
	config
	ctx               *QueryContext
	order             []crmintegration.OrderOption
	inters            []Interceptor
	predicates        []predicate.CRMIntegration
	withUser          *UserQuery
	withStageMappings *StageMappingQuery
	withDealLinks     *DealLinkQuery
	withContacts      *CRMContactQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CRMIntegrationQuery builder.
func (_q *CRMIntegrationQuery) Where(ps ...predicate.CRMIntegration) *CRMIntegrationQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CRMIntegrationQuery) Limit(limit int) *CRMIntegrationQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CRMIntegrationQuery) Offset(offset int) *CRMIntegrationQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CRMIntegrationQuery) Unique(unique bool) *CRMIntegrationQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CRMIntegrationQuery) Order(o ...crmintegration.OrderOption) *CRMIntegrationQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryUser chains the current query on the "user" edge.
func (_q *CRMIntegrationQuery) QueryUser() *UserQuery {
	query := (&UserClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(crmintegration.Table, crmintegration.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, crmintegration.UserTable, crmintegration.UserColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStageMappings chains the current query on the "stage_mappings" edge.
func (_q *CRMIntegrationQuery) QueryStageMappings() *StageMappingQuery {
	query := (&StageMappingClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(crmintegration.Table, crmintegration.FieldID, selector),
			sqlgraph.To(stagemapping.Table, stagemapping.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, crmintegration.StageMappingsTable, crmintegration.StageMappingsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDealLinks chains the current query on the "deal_links" edge.
func (_q *CRMIntegrationQuery) QueryDealLinks() *DealLinkQuery {
	query := (&DealLinkClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(crmintegration.Table, crmintegration.FieldID, selector),
			sqlgraph.To(deallink.Table, deallink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, crmintegration.DealLinksTable, crmintegration.DealLinksColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryContacts chains the current query on the "contacts" edge.
func (_q *CRMIntegrationQuery) QueryContacts() *CRMContactQuery {
	query := (&CRMContactClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(crmintegration.Table, crmintegration.FieldID, selector),
			sqlgraph.To(crmcontact.Table, crmcontact.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, crmintegration.ContactsTable, crmintegration.ContactsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CRMIntegration entity from the query.
// Returns a *NotFoundError when no CRMIntegration was found.
func (_q *CRMIntegrationQuery) First(ctx context.Context) (*CRMIntegration, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{crmintegration.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CRMIntegrationQuery) FirstX(ctx context.Context) *CRMIntegration {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CRMIntegration ID from the query.
// Returns a *NotFoundError when no CRMIntegration ID was found.
func (_q *CRMIntegrationQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{crmintegration.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CRMIntegrationQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CRMIntegration entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CRMIntegration entity is found.
// Returns a *NotFoundError when no CRMIntegration entities are found.
func (_q *CRMIntegrationQuery) Only(ctx context.Context) (*CRMIntegration, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{crmintegration.Label}
	default:
		return nil, &NotSingularError{crmintegration.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CRMIntegrationQuery) OnlyX(ctx context.Context) *CRMIntegration {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CRMIntegration ID in the query.
// Returns a *NotSingularError when more than one CRMIntegration ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CRMIntegrationQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{crmintegration.Label}
	default:
		err = &NotSingularError{crmintegration.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CRMIntegrationQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CRMIntegrations.
func (_q *CRMIntegrationQuery) All(ctx context.Context) ([]*CRMIntegration, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CRMIntegration, *CRMIntegrationQuery]()
	return withInterceptors[[]*CRMIntegration](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CRMIntegrationQuery) AllX(ctx context.Context) []*CRMIntegration {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CRMIntegration IDs.
func (_q *CRMIntegrationQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(crmintegration.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CRMIntegrationQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CRMIntegrationQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CRMIntegrationQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CRMIntegrationQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CRMIntegrationQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *CRMIntegrationQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CRMIntegrationQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CRMIntegrationQuery) Clone() *CRMIntegrationQuery {
	if _q == nil {
		return nil
	}
	return &CRMIntegrationQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]crmintegration.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.CRMIntegration{}, _q.predicates...),
		withUser:          _q.withUser.Clone(),
		withStageMappings: _q.withStageMappings.Clone(),
		withDealLinks:     _q.withDealLinks.Clone(),
		withContacts:      _q.withContacts.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithUser tells the query-builder to eager-load the nodes that are connected to
// the "user" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CRMIntegrationQuery) WithUser(opts ...func(*UserQuery)) *CRMIntegrationQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUser = query
	return _q
}

// WithStageMappings tells the query-builder to eager-load the nodes that are connected to
// the "stage_mappings" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CRMIntegrationQuery) WithStageMappings(opts ...func(*StageMappingQuery)) *CRMIntegrationQuery {
	query := (&StageMappingClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStageMappings = query
	return _q
}

// WithDealLinks tells the query-builder to eager-load the nodes that are connected to
// the "deal_links" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CRMIntegrationQuery) WithDealLinks(opts ...func(*DealLinkQuery)) *CRMIntegrationQuery {
	query := (&DealLinkClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDealLinks = query
	return _q
}

// WithContacts tells the query-builder to eager-load the nodes that are connected to
// the "contacts" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CRMIntegrationQuery) WithContacts(opts ...func(*CRMContactQuery)) *CRMIntegrationQuery {
	query := (&CRMContactClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withContacts = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID int `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CRMIntegration.Query().
//		GroupBy(crmintegration.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CRMIntegrationQuery) GroupBy(field string, fields ...string) *CRMIntegrationGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CRMIntegrationGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = crmintegration.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID int `json:"user_id,omitempty"`
//	}
//
//	client.CRMIntegration.Query().
//		Select(crmintegration.FieldUserID).
//		Scan(ctx, &v)
func (_q *CRMIntegrationQuery) Select(fields ...string) *CRMIntegrationSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CRMIntegrationSelect{CRMIntegrationQuery: _q}
	sbuild.label = crmintegration.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CRMIntegrationSelect configured with the given aggregations.
func (_q *CRMIntegrationQuery) Aggregate(fns ...AggregateFunc) *CRMIntegrationSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CRMIntegrationQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !crmintegration.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *CRMIntegrationQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CRMIntegration, error) {
	var (
		nodes       = []*CRMIntegration{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withUser != nil,
			_q.withStageMappings != nil,
			_q.withDealLinks != nil,
			_q.withContacts != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CRMIntegration).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CRMIntegration{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withUser; query != nil {
		if err := _q.loadUser(ctx, query, nodes, nil,
			func(n *CRMIntegration, e *User) { n.Edges.User = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStageMappings; query != nil {
		if err := _q.loadStageMappings(ctx, query, nodes,
			func(n *CRMIntegration) { n.Edges.StageMappings = []*StageMapping{} },
			func(n *CRMIntegration, e *StageMapping) { n.Edges.StageMappings = append(n.Edges.StageMappings, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDealLinks; query != nil {
		if err := _q.loadDealLinks(ctx, query, nodes,
			func(n *CRMIntegration) { n.Edges.DealLinks = []*DealLink{} },
			func(n *CRMIntegration, e *DealLink) { n.Edges.DealLinks = append(n.Edges.DealLinks, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withContacts; query != nil {
		if err := _q.loadContacts(ctx, query, nodes,
			func(n *CRMIntegration) { n.Edges.Contacts = []*CRMContact{} },
			func(n *CRMIntegration, e *CRMContact) { n.Edges.Contacts = append(n.Edges.Contacts, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CRMIntegrationQuery) loadUser(ctx context.Context, query *UserQuery, nodes []*CRMIntegration, init func(*CRMIntegration), assign func(*CRMIntegration, *User)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*CRMIntegration)
	for i := range nodes {
		fk := nodes[i].UserID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "user_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *CRMIntegrationQuery) loadStageMappings(ctx context.Context, query *StageMappingQuery, nodes []*CRMIntegration, init func(*CRMIntegration), assign func(*CRMIntegration, *StageMapping)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*CRMIntegration)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(stagemapping.FieldIntegrationID)
	}
	query.Where(predicate.StageMapping(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(crmintegration.StageMappingsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.IntegrationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "integration_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *CRMIntegrationQuery) loadDealLinks(ctx context.Context, query *DealLinkQuery, nodes []*CRMIntegration, init func(*CRMIntegration), assign func(*CRMIntegration, *DealLink)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*CRMIntegration)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(deallink.FieldIntegrationID)
	}
	query.Where(predicate.DealLink(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(crmintegration.DealLinksColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.IntegrationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "integration_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *CRMIntegrationQuery) loadContacts(ctx context.Context, query *CRMContactQuery, nodes []*CRMIntegration, init func(*CRMIntegration), assign func(*CRMIntegration, *CRMContact)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*CRMIntegration)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(crmcontact.FieldIntegrationID)
	}
	query.Where(predicate.CRMContact(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(crmintegration.ContactsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.IntegrationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "integration_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *CRMIntegrationQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CRMIntegrationQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(crmintegration.Table, crmintegration.Columns, sqlgraph.NewFieldSpec(crmintegration.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, crmintegration.FieldID)
		for i := range fields {
			if fields[i] != crmintegration.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withUser != nil {
			_spec.Node.AddColumnOnce(crmintegration.FieldUserID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *CRMIntegrationQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(crmintegration.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = crmintegration.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// CRMIntegrationGroupBy is the group-by builder for CRMIntegration entities.
type CRMIntegrationGroupBy struct {
	selector
	build *CRMIntegrationQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CRMIntegrationGroupBy) Aggregate(fns ...AggregateFunc) *CRMIntegrationGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CRMIntegrationGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CRMIntegrationQuery, *CRMIntegrationGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CRMIntegrationGroupBy) sqlScan(ctx context.Context, root *CRMIntegrationQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// CRMIntegrationSelect is the builder for selecting fields of CRMIntegration entities.
type CRMIntegrationSelect struct {
	*CRMIntegrationQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CRMIntegrationSelect) Aggregate(fns ...AggregateFunc) *CRMIntegrationSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CRMIntegrationSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CRMIntegrationQuery, *CRMIntegrationSelect](ctx, _s.CRMIntegrationQuery, _s, _s.inters, v)
}

func (_s *CRMIntegrationSelect) sqlScan(ctx context.Context, root *CRMIntegrationQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
