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
)

// CRMContactCreate is the builder for creating a CRMContact entity.
type CRMContactCreate struct {
	config
	mutation *CRMContactMutation
	hooks    []Hook
}

// SetIntegrationID sets the "integration_id" field.
func (_c *CRMContactCreate) SetIntegrationID(v int) *CRMContactCreate {
	_c.mutation.SetIntegrationID(v)
	return _c
}

// SetExternalContactID sets the "external_contact_id" field.
func (_c *CRMContactCreate) SetExternalContactID(v string) *CRMContactCreate {
	_c.mutation.SetExternalContactID(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *CRMContactCreate) SetEmail(v string) *CRMContactCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *CRMContactCreate) SetNillableEmail(v *string) *CRMContactCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *CRMContactCreate) SetFirstName(v string) *CRMContactCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_c *CRMContactCreate) SetNillableFirstName(v *string) *CRMContactCreate {
	if v != nil {
		_c.SetFirstName(*v)
	}
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *CRMContactCreate) SetLastName(v string) *CRMContactCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_c *CRMContactCreate) SetNillableLastName(v *string) *CRMContactCreate {
	if v != nil {
		_c.SetLastName(*v)
	}
	return _c
}

// SetCompany sets the "company" field.
func (_c *CRMContactCreate) SetCompany(v string) *CRMContactCreate {
	_c.mutation.SetCompany(v)
	return _c
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_c *CRMContactCreate) SetNillableCompany(v *string) *CRMContactCreate {
	if v != nil {
		_c.SetCompany(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *CRMContactCreate) SetPhone(v string) *CRMContactCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *CRMContactCreate) SetNillablePhone(v *string) *CRMContactCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CRMContactCreate) SetCreatedAt(v time.Time) *CRMContactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CRMContactCreate) SetNillableCreatedAt(v *time.Time) *CRMContactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CRMContactCreate) SetUpdatedAt(v time.Time) *CRMContactCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CRMContactCreate) SetNillableUpdatedAt(v *time.Time) *CRMContactCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetIntegration sets the "integration" edge to the CRMIntegration entity.
func (_c *CRMContactCreate) SetIntegration(v *CRMIntegration) *CRMContactCreate {
	return _c.SetIntegrationID(v.ID)
}

// Mutation returns the CRMContactMutation object of the builder.
func (_c *CRMContactCreate) Mutation() *CRMContactMutation {
	return _c.mutation
}

// Save creates the CRMContact in the database.
func (_c *CRMContactCreate) Save(ctx context.Context) (*CRMContact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CRMContactCreate) SaveX(ctx context.Context) *CRMContact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CRMContactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CRMContactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CRMContactCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := crmcontact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := crmcontact.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CRMContactCreate) check() error {
	if _, ok := _c.mutation.IntegrationID(); !ok {
		return &ValidationError{Name: "integration_id", err: errors.New(`ent: missing required field "CRMContact.integration_id"`)}
	}
	if _, ok := _c.mutation.ExternalContactID(); !ok {
		return &ValidationError{Name: "external_contact_id", err: errors.New(`ent: missing required field "CRMContact.external_contact_id"`)}
	}
	if v, ok := _c.mutation.ExternalContactID(); ok {
		if err := crmcontact.ExternalContactIDValidator(v); err != nil {
			return &ValidationError{Name: "external_contact_id", err: fmt.Errorf(`ent: validator failed for field "CRMContact.external_contact_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CRMContact.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CRMContact.updated_at"`)}
	}
	if len(_c.mutation.IntegrationIDs()) == 0 {
		return &ValidationError{Name: "integration", err: errors.New(`ent: missing required edge "CRMContact.integration"`)}
	}
	return nil
}

func (_c *CRMContactCreate) sqlSave(ctx context.Context) (*CRMContact, error) {
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

func (_c *CRMContactCreate) createSpec() (*CRMContact, *sqlgraph.CreateSpec) {
	var (
		_node = &CRMContact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(crmcontact.Table, sqlgraph.NewFieldSpec(crmcontact.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ExternalContactID(); ok {
		_spec.SetField(crmcontact.FieldExternalContactID, field.TypeString, value)
		_node.ExternalContactID = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(crmcontact.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(crmcontact.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(crmcontact.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.Company(); ok {
		_spec.SetField(crmcontact.FieldCompany, field.TypeString, value)
		_node.Company = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(crmcontact.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(crmcontact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(crmcontact.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.IntegrationIDs(); len(nodes) > 0 {
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
		_node.IntegrationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CRMContactCreateBulk is the builder for creating many CRMContact entities in bulk.
type CRMContactCreateBulk struct {
	config
	err      error
	builders []*CRMContactCreate
}

// Save creates the CRMContact entities in the database.
func (_c *CRMContactCreateBulk) Save(ctx context.Context) ([]*CRMContact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CRMContact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CRMContactMutation)
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
func (_c *CRMContactCreateBulk) SaveX(ctx context.Context) []*CRMContact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CRMContactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CRMContactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
