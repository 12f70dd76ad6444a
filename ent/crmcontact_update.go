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
	"github.com/dealpage/dealpage/ent/crmcontact"
	"github.com/dealpage/dealpage/ent/crmintegration"
	"github.com/dealpage/dealpage/ent/predicate"
)

// CRMContactUpdate is the builder for updating CRMContact entities.
type CRMContactUpdate struct {
	config
	hooks    []Hook
	mutation *CRMContactMutation
}

// Where appends a list predicates to the CRMContactUpdate builder.
func (_u *CRMContactUpdate) Where(ps ...predicate.CRMContact) *CRMContactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIntegrationID sets the "integration_id" field.
func (_u *CRMContactUpdate) SetIntegrationID(v int) *CRMContactUpdate {
	_u.mutation.SetIntegrationID(v)
	return _u
}

// SetNillableIntegrationID sets the "integration_id" field if the given value is not nil.
func (_u *CRMContactUpdate) SetNillableIntegrationID(v *int) *CRMContactUpdate {
	if v != nil {
		_u.SetIntegrationID(*v)
	}
	return _u
}

// SetExternalContactID sets the "external_contact_id" field.
func (_u *CRMContactUpdate) SetExternalContactID(v string) *CRMContactUpdate {
	_u.mutation.SetExternalContactID(v)
	return _u
}

// SetNillableExternalContactID sets the "external_contact_id" field if the given value is not nil.
func (_u *CRMContactUpdate) SetNillableExternalContactID(v *string) *CRMContactUpdate {
	if v != nil {
		_u.SetExternalContactID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *CRMContactUpdate) SetEmail(v string) *CRMContactUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *CRMContactUpdate) SetNillableEmail(v *string) *CRMContactUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *CRMContactUpdate) ClearEmail() *CRMContactUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *CRMContactUpdate) SetFirstName(v string) *CRMContactUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *CRMContactUpdate) SetNillableFirstName(v *string) *CRMContactUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// ClearFirstName clears the value of the "first_name" field.
func (_u *CRMContactUpdate) ClearFirstName() *CRMContactUpdate {
	_u.mutation.ClearFirstName()
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *CRMContactUpdate) SetLastName(v string) *CRMContactUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *CRMContactUpdate) SetNillableLastName(v *string) *CRMContactUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *CRMContactUpdate) ClearLastName() *CRMContactUpdate {
	_u.mutation.ClearLastName()
	return _u
}

// SetCompany sets the "company" field.
func (_u *CRMContactUpdate) SetCompany(v string) *CRMContactUpdate {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *CRMContactUpdate) SetNillableCompany(v *string) *CRMContactUpdate {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *CRMContactUpdate) ClearCompany() *CRMContactUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *CRMContactUpdate) SetPhone(v string) *CRMContactUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *CRMContactUpdate) SetNillablePhone(v *string) *CRMContactUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *CRMContactUpdate) ClearPhone() *CRMContactUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CRMContactUpdate) SetUpdatedAt(v time.Time) *CRMContactUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIntegration sets the "integration" edge to the CRMIntegration entity.
func (_u *CRMContactUpdate) SetIntegration(v *CRMIntegration) *CRMContactUpdate {
	return _u.SetIntegrationID(v.ID)
}

// Mutation returns the CRMContactMutation object of the builder.
func (_u *CRMContactUpdate) Mutation() *CRMContactMutation {
	return _u.mutation
}

// ClearIntegration clears the "integration" edge to the CRMIntegration entity.
func (_u *CRMContactUpdate) ClearIntegration() *CRMContactUpdate {
	_u.mutation.ClearIntegration()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CRMContactUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CRMContactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CRMContactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CRMContactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CRMContactUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := crmcontact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CRMContactUpdate) check() error {
	if v, ok := _u.mutation.ExternalContactID(); ok {
		if err := crmcontact.ExternalContactIDValidator(v); err != nil {
			return &ValidationError{Name: "external_contact_id", err: fmt.Errorf(`ent: validator failed for field "CRMContact.external_contact_id": %w`, err)}
		}
	}
	if _u.mutation.IntegrationCleared() && len(_u.mutation.IntegrationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CRMContact.integration"`)
	}
	return nil
}

func (_u *CRMContactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(crmcontact.Table, crmcontact.Columns, sqlgraph.NewFieldSpec(crmcontact.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExternalContactID(); ok {
		_spec.SetField(crmcontact.FieldExternalContactID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(crmcontact.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(crmcontact.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(crmcontact.FieldFirstName, field.TypeString, value)
	}
	if _u.mutation.FirstNameCleared() {
		_spec.ClearField(crmcontact.FieldFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(crmcontact.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(crmcontact.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(crmcontact.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(crmcontact.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(crmcontact.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(crmcontact.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(crmcontact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.IntegrationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   crmcontact.IntegrationTable,
			Columns: []string{crmcontact.IntegrationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(crmintegration.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IntegrationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   crmcontact.IntegrationTable,
			Columns: []string{crmcontact.IntegrationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(crmintegration.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{crmcontact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CRMContactUpdateOne is the builder for updating a single CRMContact entity.
type CRMContactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CRMContactMutation
}

// SetIntegrationID sets the "integration_id" field.
func (_u *CRMContactUpdateOne) SetIntegrationID(v int) *CRMContactUpdateOne {
	_u.mutation.SetIntegrationID(v)
	return _u
}

// SetNillableIntegrationID sets the "integration_id" field if the given value is not nil.
func (_u *CRMContactUpdateOne) SetNillableIntegrationID(v *int) *CRMContactUpdateOne {
	if v != nil {
		_u.SetIntegrationID(*v)
	}
	return _u
}

// SetExternalContactID sets the "external_contact_id" field.
func (_u *CRMContactUpdateOne) SetExternalContactID(v string) *CRMContactUpdateOne {
	_u.mutation.SetExternalContactID(v)
	return _u
}

// SetNillableExternalContactID sets the "external_contact_id" field if the given value is not nil.
func (_u *CRMContactUpdateOne) SetNillableExternalContactID(v *string) *CRMContactUpdateOne {
	if v != nil {
		_u.SetExternalContactID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *CRMContactUpdateOne) SetEmail(v string) *CRMContactUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *CRMContactUpdateOne) SetNillableEmail(v *string) *CRMContactUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *CRMContactUpdateOne) ClearEmail() *CRMContactUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *CRMContactUpdateOne) SetFirstName(v string) *CRMContactUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *CRMContactUpdateOne) SetNillableFirstName(v *string) *CRMContactUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// ClearFirstName clears the value of the "first_name" field.
func (_u *CRMContactUpdateOne) ClearFirstName() *CRMContactUpdateOne {
	_u.mutation.ClearFirstName()
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *CRMContactUpdateOne) SetLastName(v string) *CRMContactUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *CRMContactUpdateOne) SetNillableLastName(v *string) *CRMContactUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *CRMContactUpdateOne) ClearLastName() *CRMContactUpdateOne {
	_u.mutation.ClearLastName()
	return _u
}

// SetCompany sets the "company" field.
func (_u *CRMContactUpdateOne) SetCompany(v string) *CRMContactUpdateOne {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *CRMContactUpdateOne) SetNillableCompany(v *string) *CRMContactUpdateOne {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *CRMContactUpdateOne) ClearCompany() *CRMContactUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *CRMContactUpdateOne) SetPhone(v string) *CRMContactUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *CRMContactUpdateOne) SetNillablePhone(v *string) *CRMContactUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *CRMContactUpdateOne) ClearPhone() *CRMContactUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CRMContactUpdateOne) SetUpdatedAt(v time.Time) *CRMContactUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIntegration sets the "integration" edge to the CRMIntegration entity.
func (_u *CRMContactUpdateOne) SetIntegration(v *CRMIntegration) *CRMContactUpdateOne {
	return _u.SetIntegrationID(v.ID)
}

// Mutation returns the CRMContactMutation object of the builder.
func (_u *CRMContactUpdateOne) Mutation() *CRMContactMutation {
	return _u.mutation
}

// ClearIntegration clears the "integration" edge to the CRMIntegration entity.
func (_u *CRMContactUpdateOne) ClearIntegration() *CRMContactUpdateOne {
	_u.mutation.ClearIntegration()
	return _u
}

// Where appends a list predicates to the CRMContactUpdate builder.
func (_u *CRMContactUpdateOne) Where(ps ...predicate.CRMContact) *CRMContactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CRMContactUpdateOne) Select(field string, fields ...string) *CRMContactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CRMContact entity.
func (_u *CRMContactUpdateOne) Save(ctx context.Context) (*CRMContact, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CRMContactUpdateOne) SaveX(ctx context.Context) *CRMContact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CRMContactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CRMContactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CRMContactUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := crmcontact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CRMContactUpdateOne) check() error {
	if v, ok := _u.mutation.ExternalContactID(); ok {
		if err := crmcontact.ExternalContactIDValidator(v); err != nil {
			return &ValidationError{Name: "external_contact_id", err: fmt.Errorf(`ent: validator failed for field "CRMContact.external_contact_id": %w`, err)}
		}
	}
	if _u.mutation.IntegrationCleared() && len(_u.mutation.IntegrationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CRMContact.integration"`)
	}
	return nil
}

func (_u *CRMContactUpdateOne) sqlSave(ctx context.Context) (_node *CRMContact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(crmcontact.Table, crmcontact.Columns, sqlgraph.NewFieldSpec(crmcontact.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CRMContact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, crmcontact.FieldID)
		for _, f := range fields {
			if !crmcontact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != crmcontact.FieldID {
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
	if value, ok := _u.mutation.ExternalContactID(); ok {
		_spec.SetField(crmcontact.FieldExternalContactID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(crmcontact.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(crmcontact.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(crmcontact.FieldFirstName, field.TypeString, value)
	}
	if _u.mutation.FirstNameCleared() {
		_spec.ClearField(crmcontact.FieldFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(crmcontact.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(crmcontact.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(crmcontact.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(crmcontact.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(crmcontact.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(crmcontact.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(crmcontact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.IntegrationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   crmcontact.IntegrationTable,
			Columns: []string{crmcontact.IntegrationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(crmintegration.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IntegrationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   crmcontact.IntegrationTable,
			Columns: []string{crmcontact.IntegrationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(crmintegration.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CRMContact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{crmcontact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
