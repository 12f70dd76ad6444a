// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/dealpage/dealpage/ent/crmcontact"
	"github.com/dealpage/dealpage/ent/crmintegration"
	"github.com/dealpage/dealpage/ent/deallink"
	"github.com/dealpage/dealpage/ent/predicate"
	"github.com/dealpage/dealpage/ent/stagemapping"
	"github.com/dealpage/dealpage/ent/user"
)

// CRMIntegrationUpdate is the builder for updating CRMIntegration entities.
type CRMIntegrationUpdate struct {
	config
	hooks    []Hook
	mutation *CRMIntegrationMutation
}

// Where appends a list predicates to the CRMIntegrationUpdate builder.
func (_u *CRMIntegrationUpdate) Where(ps ...predicate.CRMIntegration) *CRMIntegrationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CRMIntegrationUpdate) SetUserID(v int) *CRMIntegrationUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CRMIntegrationUpdate) SetNillableUserID(v *int) *CRMIntegrationUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *CRMIntegrationUpdate) SetProvider(v crmintegration.Provider) *CRMIntegrationUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *CRMIntegrationUpdate) SetNillableProvider(v *crmintegration.Provider) *CRMIntegrationUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *CRMIntegrationUpdate) SetActive(v bool) *CRMIntegrationUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *CRMIntegrationUpdate) SetNillableActive(v *bool) *CRMIntegrationUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetAccessToken sets the "access_token" field.
func (_u *CRMIntegrationUpdate) SetAccessToken(v string) *CRMIntegrationUpdate {
	_u.mutation.SetAccessToken(v)
	return _u
}

// SetNillableAccessToken sets the "access_token" field if the given value is not nil.
func (_u *CRMIntegrationUpdate) SetNillableAccessToken(v *string) *CRMIntegrationUpdate {
	if v != nil {
		_u.SetAccessToken(*v)
	}
	return _u
}

// SetRefreshToken sets the "refresh_token" field.
func (_u *CRMIntegrationUpdate) SetRefreshToken(v string) *CRMIntegrationUpdate {
	_u.mutation.SetRefreshToken(v)
	return _u
}

// SetNillableRefreshToken sets the "refresh_token" field if the given value is not nil.
func (_u *CRMIntegrationUpdate) SetNillableRefreshToken(v *string) *CRMIntegrationUpdate {
	if v != nil {
		_u.SetRefreshToken(*v)
	}
	return _u
}

// ClearRefreshToken clears the value of the "refresh_token" field.
func (_u *CRMIntegrationUpdate) ClearRefreshToken() *CRMIntegrationUpdate {
	_u.mutation.ClearRefreshToken()
	return _u
}

// SetTokenExpiresAt sets the "token_expires_at" field.
func (_u *CRMIntegrationUpdate) SetTokenExpiresAt(v time.Time) *CRMIntegrationUpdate {
	_u.mutation.SetTokenExpiresAt(v)
	return _u
}

// SetNillableTokenExpiresAt sets the "token_expires_at" field if the given value is not nil.
func (_u *CRMIntegrationUpdate) SetNillableTokenExpiresAt(v *time.Time) *CRMIntegrationUpdate {
	if v != nil {
		_u.SetTokenExpiresAt(*v)
	}
	return _u
}

// ClearTokenExpiresAt clears the value of the "token_expires_at" field.
func (_u *CRMIntegrationUpdate) ClearTokenExpiresAt() *CRMIntegrationUpdate {
	_u.mutation.ClearTokenExpiresAt()
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *CRMIntegrationUpdate) SetAccountID(v string) *CRMIntegrationUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *CRMIntegrationUpdate) SetNillableAccountID(v *string) *CRMIntegrationUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetInstanceURL sets the "instance_url" field.
func (_u *CRMIntegrationUpdate) SetInstanceURL(v string) *CRMIntegrationUpdate {
	_u.mutation.SetInstanceURL(v)
	return _u
}

// SetNillableInstanceURL sets the "instance_url" field if the given value is not nil.
func (_u *CRMIntegrationUpdate) SetNillableInstanceURL(v *string) *CRMIntegrationUpdate {
	if v != nil {
		_u.SetInstanceURL(*v)
	}
	return _u
}

// ClearInstanceURL clears the value of the "instance_url" field.
func (_u *CRMIntegrationUpdate) ClearInstanceURL() *CRMIntegrationUpdate {
	_u.mutation.ClearInstanceURL()
	return _u
}

// SetAPIDomain sets the "api_domain" field.
func (_u *CRMIntegrationUpdate) SetAPIDomain(v string) *CRMIntegrationUpdate {
	_u.mutation.SetAPIDomain(v)
	return _u
}

// SetNillableAPIDomain sets the "api_domain" field if the given value is not nil.
func (_u *CRMIntegrationUpdate) SetNillableAPIDomain(v *string) *CRMIntegrationUpdate {
	if v != nil {
		_u.SetAPIDomain(*v)
	}
	return _u
}

// ClearAPIDomain clears the value of the "api_domain" field.
func (_u *CRMIntegrationUpdate) ClearAPIDomain() *CRMIntegrationUpdate {
	_u.mutation.ClearAPIDomain()
	return _u
}

// SetSyncDirection sets the "sync_direction" field.
func (_u *CRMIntegrationUpdate) SetSyncDirection(v crmintegration.SyncDirection) *CRMIntegrationUpdate {
	_u.mutation.SetSyncDirection(v)
	return _u
}

// SetNillableSyncDirection sets the "sync_direction" field if the given value is not nil.
func (_u *CRMIntegrationUpdate) SetNillableSyncDirection(v *crmintegration.SyncDirection) *CRMIntegrationUpdate {
	if v != nil {
		_u.SetSyncDirection(*v)
	}
	return _u
}

// SetAutoSyncContacts sets the "auto_sync_contacts" field.
func (_u *CRMIntegrationUpdate) SetAutoSyncContacts(v bool) *CRMIntegrationUpdate {
	_u.mutation.SetAutoSyncContacts(v)
	return _u
}

// SetNillableAutoSyncContacts sets the "auto_sync_contacts" field if the given value is not nil.
func (_u *CRMIntegrationUpdate) SetNillableAutoSyncContacts(v *bool) *CRMIntegrationUpdate {
	if v != nil {
		_u.SetAutoSyncContacts(*v)
	}
	return _u
}

// SetStatusSyncEvents sets the "status_sync_events" field.
func (_u *CRMIntegrationUpdate) SetStatusSyncEvents(v []string) *CRMIntegrationUpdate {
	_u.mutation.SetStatusSyncEvents(v)
	return _u
}

// AppendStatusSyncEvents appends value to the "status_sync_events" field.
func (_u *CRMIntegrationUpdate) AppendStatusSyncEvents(v []string) *CRMIntegrationUpdate {
	_u.mutation.AppendStatusSyncEvents(v)
	return _u
}

// ClearStatusSyncEvents clears the value of the "status_sync_events" field.
func (_u *CRMIntegrationUpdate) ClearStatusSyncEvents() *CRMIntegrationUpdate {
	_u.mutation.ClearStatusSyncEvents()
	return _u
}

// SetLastSyncAt sets the "last_sync_at" field.
func (_u *CRMIntegrationUpdate) SetLastSyncAt(v time.Time) *CRMIntegrationUpdate {
	_u.mutation.SetLastSyncAt(v)
	return _u
}

// SetNillableLastSyncAt sets the "last_sync_at" field if the given value is not nil.
func (_u *CRMIntegrationUpdate) SetNillableLastSyncAt(v *time.Time) *CRMIntegrationUpdate {
	if v != nil {
		_u.SetLastSyncAt(*v)
	}
	return _u
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (_u *CRMIntegrationUpdate) ClearLastSyncAt() *CRMIntegrationUpdate {
	_u.mutation.ClearLastSyncAt()
	return _u
}

// SetLastSyncError sets the "last_sync_error" field.
func (_u *CRMIntegrationUpdate) SetLastSyncError(v string) *CRMIntegrationUpdate {
	_u.mutation.SetLastSyncError(v)
	return _u
}

// SetNillableLastSyncError sets the "last_sync_error" field if the given value is not nil.
func (_u *CRMIntegrationUpdate) SetNillableLastSyncError(v *string) *CRMIntegrationUpdate {
	if v != nil {
		_u.SetLastSyncError(*v)
	}
	return _u
}

// ClearLastSyncError clears the value of the "last_sync_error" field.
func (_u *CRMIntegrationUpdate) ClearLastSyncError() *CRMIntegrationUpdate {
	_u.mutation.ClearLastSyncError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CRMIntegrationUpdate) SetUpdatedAt(v time.Time) *CRMIntegrationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *CRMIntegrationUpdate) SetUser(v *User) *CRMIntegrationUpdate {
	return _u.SetUserID(v.ID)
}

// AddStageMappingIDs adds the "stage_mappings" edge to the StageMapping entity by IDs.
func (_u *CRMIntegrationUpdate) AddStageMappingIDs(ids ...int) *CRMIntegrationUpdate {
	_u.mutation.AddStageMappingIDs(ids...)
	return _u
}

// AddStageMappings adds the "stage_mappings" edges to the StageMapping entity.
func (_u *CRMIntegrationUpdate) AddStageMappings(v ...*StageMapping) *CRMIntegrationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageMappingIDs(ids...)
}

// AddDealLinkIDs adds the "deal_links" edge to the DealLink entity by IDs.
func (_u *CRMIntegrationUpdate) AddDealLinkIDs(ids ...int) *CRMIntegrationUpdate {
	_u.mutation.AddDealLinkIDs(ids...)
	return _u
}

// AddDealLinks adds the "deal_links" edges to the DealLink entity.
func (_u *CRMIntegrationUpdate) AddDealLinks(v ...*DealLink) *CRMIntegrationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDealLinkIDs(ids...)
}

// AddContactIDs adds the "contacts" edge to the CRMContact entity by IDs.
func (_u *CRMIntegrationUpdate) AddContactIDs(ids ...int) *CRMIntegrationUpdate {
	_u.mutation.AddContactIDs(ids...)
	return _u
}

// AddContacts adds the "contacts" edges to the CRMContact entity.
func (_u *CRMIntegrationUpdate) AddContacts(v ...*CRMContact) *CRMIntegrationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContactIDs(ids...)
}

// Mutation returns the CRMIntegrationMutation object of the builder.
func (_u *CRMIntegrationUpdate) Mutation() *CRMIntegrationMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *CRMIntegrationUpdate) ClearUser() *CRMIntegrationUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearStageMappings clears all "stage_mappings" edges to the StageMapping entity.
func (_u *CRMIntegrationUpdate) ClearStageMappings() *CRMIntegrationUpdate {
	_u.mutation.ClearStageMappings()
	return _u
}

// RemoveStageMappingIDs removes the "stage_mappings" edge to StageMapping entities by IDs.
func (_u *CRMIntegrationUpdate) RemoveStageMappingIDs(ids ...int) *CRMIntegrationUpdate {
	_u.mutation.RemoveStageMappingIDs(ids...)
	return _u
}

// RemoveStageMappings removes "stage_mappings" edges to StageMapping entities.
func (_u *CRMIntegrationUpdate) RemoveStageMappings(v ...*StageMapping) *CRMIntegrationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageMappingIDs(ids...)
}

// ClearDealLinks clears all "deal_links" edges to the DealLink entity.
func (_u *CRMIntegrationUpdate) ClearDealLinks() *CRMIntegrationUpdate {
	_u.mutation.ClearDealLinks()
	return _u
}

// RemoveDealLinkIDs removes the "deal_links" edge to DealLink entities by IDs.
func (_u *CRMIntegrationUpdate) RemoveDealLinkIDs(ids ...int) *CRMIntegrationUpdate {
	_u.mutation.RemoveDealLinkIDs(ids...)
	return _u
}

// RemoveDealLinks removes "deal_links" edges to DealLink entities.
func (_u *CRMIntegrationUpdate) RemoveDealLinks(v ...*DealLink) *CRMIntegrationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDealLinkIDs(ids...)
}

// ClearContacts clears all "contacts" edges to the CRMContact entity.
func (_u *CRMIntegrationUpdate) ClearContacts() *CRMIntegrationUpdate {
	_u.mutation.ClearContacts()
	return _u
}

// RemoveContactIDs removes the "contacts" edge to CRMContact entities by IDs.
func (_u *CRMIntegrationUpdate) RemoveContactIDs(ids ...int) *CRMIntegrationUpdate {
	_u.mutation.RemoveContactIDs(ids...)
	return _u
}

// RemoveContacts removes "contacts" edges to CRMContact entities.
func (_u *CRMIntegrationUpdate) RemoveContacts(v ...*CRMContact) *CRMIntegrationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContactIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CRMIntegrationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CRMIntegrationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CRMIntegrationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CRMIntegrationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CRMIntegrationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := crmintegration.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CRMIntegrationUpdate) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := crmintegration.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "CRMIntegration.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SyncDirection(); ok {
		if err := crmintegration.SyncDirectionValidator(v); err != nil {
			return &ValidationError{Name: "sync_direction", err: fmt.Errorf(`ent: validator failed for field "CRMIntegration.sync_direction": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CRMIntegration.user"`)
	}
	return nil
}

func (_u *CRMIntegrationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(crmintegration.Table, crmintegration.Columns, sqlgraph.NewFieldSpec(crmintegration.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(crmintegration.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(crmintegration.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AccessToken(); ok {
		_spec.SetField(crmintegration.FieldAccessToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.RefreshToken(); ok {
		_spec.SetField(crmintegration.FieldRefreshToken, field.TypeString, value)
	}
	if _u.mutation.RefreshTokenCleared() {
		_spec.ClearField(crmintegration.FieldRefreshToken, field.TypeString)
	}
	if value, ok := _u.mutation.TokenExpiresAt(); ok {
		_spec.SetField(crmintegration.FieldTokenExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.TokenExpiresAtCleared() {
		_spec.ClearField(crmintegration.FieldTokenExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(crmintegration.FieldAccountID, field.TypeString, value)
	}
	if value, ok := _u.mutation.InstanceURL(); ok {
		_spec.SetField(crmintegration.FieldInstanceURL, field.TypeString, value)
	}
	if _u.mutation.InstanceURLCleared() {
		_spec.ClearField(crmintegration.FieldInstanceURL, field.TypeString)
	}
	if value, ok := _u.mutation.APIDomain(); ok {
		_spec.SetField(crmintegration.FieldAPIDomain, field.TypeString, value)
	}
	if _u.mutation.APIDomainCleared() {
		_spec.ClearField(crmintegration.FieldAPIDomain, field.TypeString)
	}
	if value, ok := _u.mutation.SyncDirection(); ok {
		_spec.SetField(crmintegration.FieldSyncDirection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AutoSyncContacts(); ok {
		_spec.SetField(crmintegration.FieldAutoSyncContacts, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StatusSyncEvents(); ok {
		_spec.SetField(crmintegration.FieldStatusSyncEvents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStatusSyncEvents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, crmintegration.FieldStatusSyncEvents, value)
		})
	}
	if _u.mutation.StatusSyncEventsCleared() {
		_spec.ClearField(crmintegration.FieldStatusSyncEvents, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastSyncAt(); ok {
		_spec.SetField(crmintegration.FieldLastSyncAt, field.TypeTime, value)
	}
	if _u.mutation.LastSyncAtCleared() {
		_spec.ClearField(crmintegration.FieldLastSyncAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSyncError(); ok {
		_spec.SetField(crmintegration.FieldLastSyncError, field.TypeString, value)
	}
	if _u.mutation.LastSyncErrorCleared() {
		_spec.ClearField(crmintegration.FieldLastSyncError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(crmintegration.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StageMappingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageMappingsIDs(); len(nodes) > 0 && !_u.mutation.StageMappingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageMappingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DealLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDealLinksIDs(); len(nodes) > 0 && !_u.mutation.DealLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DealLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContactsIDs(); len(nodes) > 0 && !_u.mutation.ContactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContactsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{crmintegration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CRMIntegrationUpdateOne is the builder for updating a single CRMIntegration entity.
type CRMIntegrationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CRMIntegrationMutation
}

// SetUserID sets the "user_id" field.
func (_u *CRMIntegrationUpdateOne) SetUserID(v int) *CRMIntegrationUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CRMIntegrationUpdateOne) SetNillableUserID(v *int) *CRMIntegrationUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *CRMIntegrationUpdateOne) SetProvider(v crmintegration.Provider) *CRMIntegrationUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *CRMIntegrationUpdateOne) SetNillableProvider(v *crmintegration.Provider) *CRMIntegrationUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *CRMIntegrationUpdateOne) SetActive(v bool) *CRMIntegrationUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *CRMIntegrationUpdateOne) SetNillableActive(v *bool) *CRMIntegrationUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetAccessToken sets the "access_token" field.
func (_u *CRMIntegrationUpdateOne) SetAccessToken(v string) *CRMIntegrationUpdateOne {
	_u.mutation.SetAccessToken(v)
	return _u
}

// SetNillableAccessToken sets the "access_token" field if the given value is not nil.
func (_u *CRMIntegrationUpdateOne) SetNillableAccessToken(v *string) *CRMIntegrationUpdateOne {
	if v != nil {
		_u.SetAccessToken(*v)
	}
	return _u
}

// SetRefreshToken sets the "refresh_token" field.
func (_u *CRMIntegrationUpdateOne) SetRefreshToken(v string) *CRMIntegrationUpdateOne {
	_u.mutation.SetRefreshToken(v)
	return _u
}

// SetNillableRefreshToken sets the "refresh_token" field if the given value is not nil.
func (_u *CRMIntegrationUpdateOne) SetNillableRefreshToken(v *string) *CRMIntegrationUpdateOne {
	if v != nil {
		_u.SetRefreshToken(*v)
	}
	return _u
}

// ClearRefreshToken clears the value of the "refresh_token" field.
func (_u *CRMIntegrationUpdateOne) ClearRefreshToken() *CRMIntegrationUpdateOne {
	_u.mutation.ClearRefreshToken()
	return _u
}

// SetTokenExpiresAt sets the "token_expires_at" field.
func (_u *CRMIntegrationUpdateOne) SetTokenExpiresAt(v time.Time) *CRMIntegrationUpdateOne {
	_u.mutation.SetTokenExpiresAt(v)
	return _u
}

// SetNillableTokenExpiresAt sets the "token_expires_at" field if the given value is not nil.
func (_u *CRMIntegrationUpdateOne) SetNillableTokenExpiresAt(v *time.Time) *CRMIntegrationUpdateOne {
	if v != nil {
		_u.SetTokenExpiresAt(*v)
	}
	return _u
}

// ClearTokenExpiresAt clears the value of the "token_expires_at" field.
func (_u *CRMIntegrationUpdateOne) ClearTokenExpiresAt() *CRMIntegrationUpdateOne {
	_u.mutation.ClearTokenExpiresAt()
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *CRMIntegrationUpdateOne) SetAccountID(v string) *CRMIntegrationUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *CRMIntegrationUpdateOne) SetNillableAccountID(v *string) *CRMIntegrationUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetInstanceURL sets the "instance_url" field.
func (_u *CRMIntegrationUpdateOne) SetInstanceURL(v string) *CRMIntegrationUpdateOne {
	_u.mutation.SetInstanceURL(v)
	return _u
}

// SetNillableInstanceURL sets the "instance_url" field if the given value is not nil.
func (_u *CRMIntegrationUpdateOne) SetNillableInstanceURL(v *string) *CRMIntegrationUpdateOne {
	if v != nil {
		_u.SetInstanceURL(*v)
	}
	return _u
}

// ClearInstanceURL clears the value of the "instance_url" field.
func (_u *CRMIntegrationUpdateOne) ClearInstanceURL() *CRMIntegrationUpdateOne {
	_u.mutation.ClearInstanceURL()
	return _u
}

// SetAPIDomain sets the "api_domain" field.
func (_u *CRMIntegrationUpdateOne) SetAPIDomain(v string) *CRMIntegrationUpdateOne {
	_u.mutation.SetAPIDomain(v)
	return _u
}

// SetNillableAPIDomain sets the "api_domain" field if the given value is not nil.
func (_u *CRMIntegrationUpdateOne) SetNillableAPIDomain(v *string) *CRMIntegrationUpdateOne {
	if v != nil {
		_u.SetAPIDomain(*v)
	}
	return _u
}

// ClearAPIDomain clears the value of the "api_domain" field.
func (_u *CRMIntegrationUpdateOne) ClearAPIDomain() *CRMIntegrationUpdateOne {
	_u.mutation.ClearAPIDomain()
	return _u
}

// SetSyncDirection sets the "sync_direction" field.
func (_u *CRMIntegrationUpdateOne) SetSyncDirection(v crmintegration.SyncDirection) *CRMIntegrationUpdateOne {
	_u.mutation.SetSyncDirection(v)
	return _u
}

// SetNillableSyncDirection sets the "sync_direction" field if the given value is not nil.
func (_u *CRMIntegrationUpdateOne) SetNillableSyncDirection(v *crmintegration.SyncDirection) *CRMIntegrationUpdateOne {
	if v != nil {
		_u.SetSyncDirection(*v)
	}
	return _u
}

// SetAutoSyncContacts sets the "auto_sync_contacts" field.
func (_u *CRMIntegrationUpdateOne) SetAutoSyncContacts(v bool) *CRMIntegrationUpdateOne {
	_u.mutation.SetAutoSyncContacts(v)
	return _u
}

// SetNillableAutoSyncContacts sets the "auto_sync_contacts" field if the given value is not nil.
func (_u *CRMIntegrationUpdateOne) SetNillableAutoSyncContacts(v *bool) *CRMIntegrationUpdateOne {
	if v != nil {
		_u.SetAutoSyncContacts(*v)
	}
	return _u
}

// SetStatusSyncEvents sets the "status_sync_events" field.
func (_u *CRMIntegrationUpdateOne) SetStatusSyncEvents(v []string) *CRMIntegrationUpdateOne {
	_u.mutation.SetStatusSyncEvents(v)
	return _u
}

// AppendStatusSyncEvents appends value to the "status_sync_events" field.
func (_u *CRMIntegrationUpdateOne) AppendStatusSyncEvents(v []string) *CRMIntegrationUpdateOne {
	_u.mutation.AppendStatusSyncEvents(v)
	return _u
}

// ClearStatusSyncEvents clears the value of the "status_sync_events" field.
func (_u *CRMIntegrationUpdateOne) ClearStatusSyncEvents() *CRMIntegrationUpdateOne {
	_u.mutation.ClearStatusSyncEvents()
	return _u
}

// SetLastSyncAt sets the "last_sync_at" field.
func (_u *CRMIntegrationUpdateOne) SetLastSyncAt(v time.Time) *CRMIntegrationUpdateOne {
	_u.mutation.SetLastSyncAt(v)
	return _u
}

// SetNillableLastSyncAt sets the "last_sync_at" field if the given value is not nil.
func (_u *CRMIntegrationUpdateOne) SetNillableLastSyncAt(v *time.Time) *CRMIntegrationUpdateOne {
	if v != nil {
		_u.SetLastSyncAt(*v)
	}
	return _u
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (_u *CRMIntegrationUpdateOne) ClearLastSyncAt() *CRMIntegrationUpdateOne {
	_u.mutation.ClearLastSyncAt()
	return _u
}

// SetLastSyncError sets the "last_sync_error" field.
func (_u *CRMIntegrationUpdateOne) SetLastSyncError(v string) *CRMIntegrationUpdateOne {
	_u.mutation.SetLastSyncError(v)
	return _u
}

// SetNillableLastSyncError sets the "last_sync_error" field if the given value is not nil.
func (_u *CRMIntegrationUpdateOne) SetNillableLastSyncError(v *string) *CRMIntegrationUpdateOne {
	if v != nil {
		_u.SetLastSyncError(*v)
	}
	return _u
}

// ClearLastSyncError clears the value of the "last_sync_error" field.
func (_u *CRMIntegrationUpdateOne) ClearLastSyncError() *CRMIntegrationUpdateOne {
	_u.mutation.ClearLastSyncError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CRMIntegrationUpdateOne) SetUpdatedAt(v time.Time) *CRMIntegrationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *CRMIntegrationUpdateOne) SetUser(v *User) *CRMIntegrationUpdateOne {
	return _u.SetUserID(v.ID)
}

// AddStageMappingIDs adds the "stage_mappings" edge to the StageMapping entity by IDs.
func (_u *CRMIntegrationUpdateOne) AddStageMappingIDs(ids ...int) *CRMIntegrationUpdateOne {
	_u.mutation.AddStageMappingIDs(ids...)
	return _u
}

// AddStageMappings adds the "stage_mappings" edges to the StageMapping entity.
func (_u *CRMIntegrationUpdateOne) AddStageMappings(v ...*StageMapping) *CRMIntegrationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageMappingIDs(ids...)
}

// AddDealLinkIDs adds the "deal_links" edge to the DealLink entity by IDs.
func (_u *CRMIntegrationUpdateOne) AddDealLinkIDs(ids ...int) *CRMIntegrationUpdateOne {
	_u.mutation.AddDealLinkIDs(ids...)
	return _u
}

// AddDealLinks adds the "deal_links" edges to the DealLink entity.
func (_u *CRMIntegrationUpdateOne) AddDealLinks(v ...*DealLink) *CRMIntegrationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDealLinkIDs(ids...)
}

// AddContactIDs adds the "contacts" edge to the CRMContact entity by IDs.
func (_u *CRMIntegrationUpdateOne) AddContactIDs(ids ...int) *CRMIntegrationUpdateOne {
	_u.mutation.AddContactIDs(ids...)
	return _u
}

// AddContacts adds the "contacts" edges to the CRMContact entity.
func (_u *CRMIntegrationUpdateOne) AddContacts(v ...*CRMContact) *CRMIntegrationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContactIDs(ids...)
}

// Mutation returns the CRMIntegrationMutation object of the builder.
func (_u *CRMIntegrationUpdateOne) Mutation() *CRMIntegrationMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *CRMIntegrationUpdateOne) ClearUser() *CRMIntegrationUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearStageMappings clears all "stage_mappings" edges to the StageMapping entity.
func (_u *CRMIntegrationUpdateOne) ClearStageMappings() *CRMIntegrationUpdateOne {
	_u.mutation.ClearStageMappings()
	return _u
}

// RemoveStageMappingIDs removes the "stage_mappings" edge to StageMapping entities by IDs.
func (_u *CRMIntegrationUpdateOne) RemoveStageMappingIDs(ids ...int) *CRMIntegrationUpdateOne {
	_u.mutation.RemoveStageMappingIDs(ids...)
	return _u
}

// RemoveStageMappings removes "stage_mappings" edges to StageMapping entities.
func (_u *CRMIntegrationUpdateOne) RemoveStageMappings(v ...*StageMapping) *CRMIntegrationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageMappingIDs(ids...)
}

// ClearDealLinks clears all "deal_links" edges to the DealLink entity.
func (_u *CRMIntegrationUpdateOne) ClearDealLinks() *CRMIntegrationUpdateOne {
	_u.mutation.ClearDealLinks()
	return _u
}

// RemoveDealLinkIDs removes the "deal_links" edge to DealLink entities by IDs.
func (_u *CRMIntegrationUpdateOne) RemoveDealLinkIDs(ids ...int) *CRMIntegrationUpdateOne {
	_u.mutation.RemoveDealLinkIDs(ids...)
	return _u
}

// RemoveDealLinks removes "deal_links" edges to DealLink entities.
func (_u *CRMIntegrationUpdateOne) RemoveDealLinks(v ...*DealLink) *CRMIntegrationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDealLinkIDs(ids...)
}

// ClearContacts clears all "contacts" edges to the CRMContact entity.
func (_u *CRMIntegrationUpdateOne) ClearContacts() *CRMIntegrationUpdateOne {
	_u.mutation.ClearContacts()
	return _u
}

// RemoveContactIDs removes the "contacts" edge to CRMContact entities by IDs.
func (_u *CRMIntegrationUpdateOne) RemoveContactIDs(ids ...int) *CRMIntegrationUpdateOne {
	_u.mutation.RemoveContactIDs(ids...)
	return _u
}

// RemoveContacts removes "contacts" edges to CRMContact entities.
func (_u *CRMIntegrationUpdateOne) RemoveContacts(v ...*CRMContact) *CRMIntegrationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContactIDs(ids...)
}

// Where appends a list predicates to the CRMIntegrationUpdate builder.
func (_u *CRMIntegrationUpdateOne) Where(ps ...predicate.CRMIntegration) *CRMIntegrationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CRMIntegrationUpdateOne) Select(field string, fields ...string) *CRMIntegrationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CRMIntegration entity.
func (_u *CRMIntegrationUpdateOne) Save(ctx context.Context) (*CRMIntegration, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CRMIntegrationUpdateOne) SaveX(ctx context.Context) *CRMIntegration {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CRMIntegrationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CRMIntegrationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CRMIntegrationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := crmintegration.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CRMIntegrationUpdateOne) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := crmintegration.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "CRMIntegration.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SyncDirection(); ok {
		if err := crmintegration.SyncDirectionValidator(v); err != nil {
			return &ValidationError{Name: "sync_direction", err: fmt.Errorf(`ent: validator failed for field "CRMIntegration.sync_direction": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CRMIntegration.user"`)
	}
	return nil
}

func (_u *CRMIntegrationUpdateOne) sqlSave(ctx context.Context) (_node *CRMIntegration, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(crmintegration.Table, crmintegration.Columns, sqlgraph.NewFieldSpec(crmintegration.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CRMIntegration.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, crmintegration.FieldID)
		for _, f := range fields {
			if !crmintegration.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != crmintegration.FieldID {
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
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(crmintegration.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(crmintegration.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AccessToken(); ok {
		_spec.SetField(crmintegration.FieldAccessToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.RefreshToken(); ok {
		_spec.SetField(crmintegration.FieldRefreshToken, field.TypeString, value)
	}
	if _u.mutation.RefreshTokenCleared() {
		_spec.ClearField(crmintegration.FieldRefreshToken, field.TypeString)
	}
	if value, ok := _u.mutation.TokenExpiresAt(); ok {
		_spec.SetField(crmintegration.FieldTokenExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.TokenExpiresAtCleared() {
		_spec.ClearField(crmintegration.FieldTokenExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(crmintegration.FieldAccountID, field.TypeString, value)
	}
	if value, ok := _u.mutation.InstanceURL(); ok {
		_spec.SetField(crmintegration.FieldInstanceURL, field.TypeString, value)
	}
	if _u.mutation.InstanceURLCleared() {
		_spec.ClearField(crmintegration.FieldInstanceURL, field.TypeString)
	}
	if value, ok := _u.mutation.APIDomain(); ok {
		_spec.SetField(crmintegration.FieldAPIDomain, field.TypeString, value)
	}
	if _u.mutation.APIDomainCleared() {
		_spec.ClearField(crmintegration.FieldAPIDomain, field.TypeString)
	}
	if value, ok := _u.mutation.SyncDirection(); ok {
		_spec.SetField(crmintegration.FieldSyncDirection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AutoSyncContacts(); ok {
		_spec.SetField(crmintegration.FieldAutoSyncContacts, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StatusSyncEvents(); ok {
		_spec.SetField(crmintegration.FieldStatusSyncEvents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStatusSyncEvents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, crmintegration.FieldStatusSyncEvents, value)
		})
	}
	if _u.mutation.StatusSyncEventsCleared() {
		_spec.ClearField(crmintegration.FieldStatusSyncEvents, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastSyncAt(); ok {
		_spec.SetField(crmintegration.FieldLastSyncAt, field.TypeTime, value)
	}
	if _u.mutation.LastSyncAtCleared() {
		_spec.ClearField(crmintegration.FieldLastSyncAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSyncError(); ok {
		_spec.SetField(crmintegration.FieldLastSyncError, field.TypeString, value)
	}
	if _u.mutation.LastSyncErrorCleared() {
		_spec.ClearField(crmintegration.FieldLastSyncError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(crmintegration.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StageMappingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageMappingsIDs(); len(nodes) > 0 && !_u.mutation.StageMappingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageMappingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DealLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDealLinksIDs(); len(nodes) > 0 && !_u.mutation.DealLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DealLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContactsIDs(); len(nodes) > 0 && !_u.mutation.ContactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContactsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CRMIntegration{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{crmintegration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
