// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dealpage/dealpage/ent/crmcontact"
	"github.com/dealpage/dealpage/ent/crmintegration"
	"github.com/dealpage/dealpage/ent/deallink"
	"github.com/dealpage/dealpage/ent/stagemapping"
	"github.com/dealpage/dealpage/ent/user"
)

// CRMIntegrationCreate is the builder for creating a CRMIntegration entity.
type CRMIntegrationCreate struct {
	config
	mutation *CRMIntegrationMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *CRMIntegrationCreate) SetUserID(v int) *CRMIntegrationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *CRMIntegrationCreate) SetProvider(v crmintegration.Provider) *CRMIntegrationCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *CRMIntegrationCreate) SetActive(v bool) *CRMIntegrationCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *CRMIntegrationCreate) SetNillableActive(v *bool) *CRMIntegrationCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetAccessToken sets the "access_token" field.
func (_c *CRMIntegrationCreate) SetAccessToken(v string) *CRMIntegrationCreate {
	_c.mutation.SetAccessToken(v)
	return _c
}

// SetRefreshToken sets the "refresh_token" field.
func (_c *CRMIntegrationCreate) SetRefreshToken(v string) *CRMIntegrationCreate {
	_c.mutation.SetRefreshToken(v)
	return _c
}

// SetNillableRefreshToken sets the "refresh_token" field if the given value is not nil.
func (_c *CRMIntegrationCreate) SetNillableRefreshToken(v *string) *CRMIntegrationCreate {
	if v != nil {
		_c.SetRefreshToken(*v)
	}
	return _c
}

// SetTokenExpiresAt sets the "token_expires_at" field.
func (_c *CRMIntegrationCreate) SetTokenExpiresAt(v time.Time) *CRMIntegrationCreate {
	_c.mutation.SetTokenExpiresAt(v)
	return _c
}

// SetNillableTokenExpiresAt sets the "token_expires_at" field if the given value is not nil.
func (_c *CRMIntegrationCreate) SetNillableTokenExpiresAt(v *time.Time) *CRMIntegrationCreate {
	if v != nil {
		_c.SetTokenExpiresAt(*v)
	}
	return _c
}

// SetAccountID sets the "account_id" field.
func (_c *CRMIntegrationCreate) SetAccountID(v string) *CRMIntegrationCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetInstanceURL sets the "instance_url" field.
func (_c *CRMIntegrationCreate) SetInstanceURL(v string) *CRMIntegrationCreate {
	_c.mutation.SetInstanceURL(v)
	return _c
}

// SetNillableInstanceURL sets the "instance_url" field if the given value is not nil.
func (_c *CRMIntegrationCreate) SetNillableInstanceURL(v *string) *CRMIntegrationCreate {
	if v != nil {
		_c.SetInstanceURL(*v)
	}
	return _c
}

// SetAPIDomain sets the "api_domain" field.
func (_c *CRMIntegrationCreate) SetAPIDomain(v string) *CRMIntegrationCreate {
	_c.mutation.SetAPIDomain(v)
	return _c
}

// SetNillableAPIDomain sets the "api_domain" field if the given value is not nil.
func (_c *CRMIntegrationCreate) SetNillableAPIDomain(v *string) *CRMIntegrationCreate {
	if v != nil {
		_c.SetAPIDomain(*v)
	}
	return _c
}

// SetSyncDirection sets the "sync_direction" field.
func (_c *CRMIntegrationCreate) SetSyncDirection(v crmintegration.SyncDirection) *CRMIntegrationCreate {
	_c.mutation.SetSyncDirection(v)
	return _c
}

// SetNillableSyncDirection sets the "sync_direction" field if the given value is not nil.
func (_c *CRMIntegrationCreate) SetNillableSyncDirection(v *crmintegration.SyncDirection) *CRMIntegrationCreate {
	if v != nil {
		_c.SetSyncDirection(*v)
	}
	return _c
}

// SetAutoSyncContacts sets the "auto_sync_contacts" field.
func (_c *CRMIntegrationCreate) SetAutoSyncContacts(v bool) *CRMIntegrationCreate {
	_c.mutation.SetAutoSyncContacts(v)
	return _c
}

// SetNillableAutoSyncContacts sets the "auto_sync_contacts" field if the given value is not nil.
func (_c *CRMIntegrationCreate) SetNillableAutoSyncContacts(v *bool) *CRMIntegrationCreate {
	if v != nil {
		_c.SetAutoSyncContacts(*v)
	}
	return _c
}

// SetStatusSyncEvents sets the "status_sync_events" field.
func (_c *CRMIntegrationCreate) SetStatusSyncEvents(v []string) *CRMIntegrationCreate {
	_c.mutation.SetStatusSyncEvents(v)
	return _c
}

// SetLastSyncAt sets the "last_sync_at" field.
func (_c *CRMIntegrationCreate) SetLastSyncAt(v time.Time) *CRMIntegrationCreate {
	_c.mutation.SetLastSyncAt(v)
	return _c
}

// SetNillableLastSyncAt sets the "last_sync_at" field if the given value is not nil.
func (_c *CRMIntegrationCreate) SetNillableLastSyncAt(v *time.Time) *CRMIntegrationCreate {
	if v != nil {
		_c.SetLastSyncAt(*v)
	}
	return _c
}

// SetLastSyncError sets the "last_sync_error" field.
func (_c *CRMIntegrationCreate) SetLastSyncError(v string) *CRMIntegrationCreate {
	_c.mutation.SetLastSyncError(v)
	return _c
}

// SetNillableLastSyncError sets the "last_sync_error" field if the given value is not nil.
func (_c *CRMIntegrationCreate) SetNillableLastSyncError(v *string) *CRMIntegrationCreate {
	if v != nil {
		_c.SetLastSyncError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CRMIntegrationCreate) SetCreatedAt(v time.Time) *CRMIntegrationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CRMIntegrationCreate) SetNillableCreatedAt(v *time.Time) *CRMIntegrationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CRMIntegrationCreate) SetUpdatedAt(v time.Time) *CRMIntegrationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CRMIntegrationCreate) SetNillableUpdatedAt(v *time.Time) *CRMIntegrationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *CRMIntegrationCreate) SetUser(v *User) *CRMIntegrationCreate {
	return _c.SetUserID(v.ID)
}

// AddStageMappingIDs adds the "stage_mappings" edge to the StageMapping entity by IDs.
func (_c *CRMIntegrationCreate) AddStageMappingIDs(ids ...int) *CRMIntegrationCreate {
	_c.mutation.AddStageMappingIDs(ids...)
	return _c
}

// AddStageMappings adds the "stage_mappings" edges to the StageMapping entity.
func (_c *CRMIntegrationCreate) AddStageMappings(v ...*StageMapping) *CRMIntegrationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStageMappingIDs(ids...)
}

// AddDealLinkIDs adds the "deal_links" edge to the DealLink entity by IDs.
func (_c *CRMIntegrationCreate) AddDealLinkIDs(ids ...int) *CRMIntegrationCreate {
	_c.mutation.AddDealLinkIDs(ids...)
	return _c
}

// AddDealLinks adds the "deal_links" edges to the DealLink entity.
func (_c *CRMIntegrationCreate) AddDealLinks(v ...*DealLink) *CRMIntegrationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDealLinkIDs(ids...)
}

// AddContactIDs adds the "contacts" edge to the CRMContact entity by IDs.
func (_c *CRMIntegrationCreate) AddContactIDs(ids ...int) *CRMIntegrationCreate {
	_c.mutation.AddContactIDs(ids...)
	return _c
}

// AddContacts adds the "contacts" edges to the CRMContact entity.
func (_c *CRMIntegrationCreate) AddContacts(v ...*CRMContact) *CRMIntegrationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddContactIDs(ids...)
}

// Mutation returns the CRMIntegrationMutation object of the builder.
func (_c *CRMIntegrationCreate) Mutation() *CRMIntegrationMutation {
	return _c.mutation
}

// Save creates the CRMIntegration in the database.
func (_c *CRMIntegrationCreate) Save(ctx context.Context) (*CRMIntegration, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CRMIntegrationCreate) SaveX(ctx context.Context) *CRMIntegration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CRMIntegrationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CRMIntegrationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CRMIntegrationCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := crmintegration.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.SyncDirection(); !ok {
		v := crmintegration.DefaultSyncDirection
		_c.mutation.SetSyncDirection(v)
	}
	if _, ok := _c.mutation.AutoSyncContacts(); !ok {
		v := crmintegration.DefaultAutoSyncContacts
		_c.mutation.SetAutoSyncContacts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := crmintegration.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := crmintegration.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CRMIntegrationCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CRMIntegration.user_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "CRMIntegration.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := crmintegration.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "CRMIntegration.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "CRMIntegration.active"`)}
	}
	if _, ok := _c.mutation.AccessToken(); !ok {
		return &ValidationError{Name: "access_token", err: errors.New(`ent: missing required field "CRMIntegration.access_token"`)}
	}
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "CRMIntegration.account_id"`)}
	}
	if _, ok := _c.mutation.SyncDirection(); !ok {
		return &ValidationError{Name: "sync_direction", err: errors.New(`ent: missing required field "CRMIntegration.sync_direction"`)}
	}
	if v, ok := _c.mutation.SyncDirection(); ok {
		if err := crmintegration.SyncDirectionValidator(v); err != nil {
			return &ValidationError{Name: "sync_direction", err: fmt.Errorf(`ent: validator failed for field "CRMIntegration.sync_direction": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AutoSyncContacts(); !ok {
		return &ValidationError{Name: "auto_sync_contacts", err: errors.New(`ent: missing required field "CRMIntegration.auto_sync_contacts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CRMIntegration.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CRMIntegration.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "CRMIntegration.user"`)}
	}
	return nil
}

func (_c *CRMIntegrationCreate) sqlSave(ctx context.Context) (*CRMIntegration, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CRMIntegrationCreate) createSpec() (*CRMIntegration, *sqlgraph.CreateSpec) {
	var (
		_node = &CRMIntegration{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(crmintegration.Table, sqlgraph.NewFieldSpec(crmintegration.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(crmintegration.FieldProvider, field.TypeEnum, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(crmintegration.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.AccessToken(); ok {
		_spec.SetField(crmintegration.FieldAccessToken, field.TypeString, value)
		_node.AccessToken = value
	}
	if value, ok := _c.mutation.RefreshToken(); ok {
		_spec.SetField(crmintegration.FieldRefreshToken, field.TypeString, value)
		_node.RefreshToken = value
	}
	if value, ok := _c.mutation.TokenExpiresAt(); ok {
		_spec.SetField(crmintegration.FieldTokenExpiresAt, field.TypeTime, value)
		_node.TokenExpiresAt = &value
	}
	if value, ok := _c.mutation.AccountID(); ok {
		_spec.SetField(crmintegration.FieldAccountID, field.TypeString, value)
		_node.AccountID = value
	}
	if value, ok := _c.mutation.InstanceURL(); ok {
		_spec.SetField(crmintegration.FieldInstanceURL, field.TypeString, value)
		_node.InstanceURL = value
	}
	if value, ok := _c.mutation.APIDomain(); ok {
		_spec.SetField(crmintegration.FieldAPIDomain, field.TypeString, value)
		_node.APIDomain = value
	}
	if value, ok := _c.mutation.SyncDirection(); ok {
		_spec.SetField(crmintegration.FieldSyncDirection, field.TypeEnum, value)
		_node.SyncDirection = value
	}
	if value, ok := _c.mutation.AutoSyncContacts(); ok {
		_spec.SetField(crmintegration.FieldAutoSyncContacts, field.TypeBool, value)
		_node.AutoSyncContacts = value
	}
	if value, ok := _c.mutation.StatusSyncEvents(); ok {
		_spec.SetField(crmintegration.FieldStatusSyncEvents, field.TypeJSON, value)
		_node.StatusSyncEvents = value
	}
	if value, ok := _c.mutation.LastSyncAt(); ok {
		_spec.SetField(crmintegration.FieldLastSyncAt, field.TypeTime, value)
		_node.LastSyncAt = &value
	}
	if value, ok := _c.mutation.LastSyncError(); ok {
		_spec.SetField(crmintegration.FieldLastSyncError, field.TypeString, value)
		_node.LastSyncError = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(crmintegration.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(crmintegration.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   crmintegration.UserTable,
			Columns: []string{crmintegration.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StageMappingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   crmintegration.StageMappingsTable,
			Columns: []string{crmintegration.StageMappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagemapping.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DealLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   crmintegration.DealLinksTable,
			Columns: []string{crmintegration.DealLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deallink.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ContactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   crmintegration.ContactsTable,
			Columns: []string{crmintegration.ContactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(crmcontact.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CRMIntegrationCreateBulk is the builder for creating many CRMIntegration entities in bulk.
type CRMIntegrationCreateBulk struct {
	config
	err      error
	builders []*CRMIntegrationCreate
}

// Save creates the CRMIntegration entities in the database.
func (_c *CRMIntegrationCreateBulk) Save(ctx context.Context) ([]*CRMIntegration, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CRMIntegration, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CRMIntegrationMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *CRMIntegrationCreateBulk) SaveX(ctx context.Context) []*CRMIntegration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CRMIntegrationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CRMIntegrationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
