// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dealpage/dealpage/ent/crmintegration"
	"github.com/dealpage/dealpage/ent/deallink"
	"github.com/dealpage/dealpage/ent/proposal"
)

// DealLinkCreate is the builder for creating a DealLink entity.
type DealLinkCreate struct {
	config
	mutation *DealLinkMutation
	hooks    []Hook
}

// SetIntegrationID sets the "integration_id" field.
func (_c *DealLinkCreate) SetIntegrationID(v int) *DealLinkCreate {
	_c.mutation.SetIntegrationID(v)
	return _c
}

// SetProposalID sets the "proposal_id" field.
func (_c *DealLinkCreate) SetProposalID(v int) *DealLinkCreate {
	_c.mutation.SetProposalID(v)
	return _c
}

// SetExternalDealID sets the "external_deal_id" field.
func (_c *DealLinkCreate) SetExternalDealID(v string) *DealLinkCreate {
	_c.mutation.SetExternalDealID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DealLinkCreate) SetCreatedAt(v time.Time) *DealLinkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DealLinkCreate) SetNillableCreatedAt(v *time.Time) *DealLinkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DealLinkCreate) SetUpdatedAt(v time.Time) *DealLinkCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DealLinkCreate) SetNillableUpdatedAt(v *time.Time) *DealLinkCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetIntegration sets the "integration" edge to the CRMIntegration entity.
func (_c *DealLinkCreate) SetIntegration(v *CRMIntegration) *DealLinkCreate {
	return _c.SetIntegrationID(v.ID)
}

// SetProposal sets the "proposal" edge to the Proposal entity.
func (_c *DealLinkCreate) SetProposal(v *Proposal) *DealLinkCreate {
	return _c.SetProposalID(v.ID)
}

// Mutation returns the DealLinkMutation object of the builder.
func (_c *DealLinkCreate) Mutation() *DealLinkMutation {
	return _c.mutation
}

// Save creates the DealLink in the database.
func (_c *DealLinkCreate) Save(ctx context.Context) (*DealLink, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DealLinkCreate) SaveX(ctx context.Context) *DealLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DealLinkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DealLinkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DealLinkCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := deallink.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := deallink.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DealLinkCreate) check() error {
	if _, ok := _c.mutation.IntegrationID(); !ok {
		return &ValidationError{Name: "integration_id", err: errors.New(`ent: missing required field "DealLink.integration_id"`)}
	}
	if _, ok := _c.mutation.ProposalID(); !ok {
		return &ValidationError{Name: "proposal_id", err: errors.New(`ent: missing required field "DealLink.proposal_id"`)}
	}
	if _, ok := _c.mutation.ExternalDealID(); !ok {
		return &ValidationError{Name: "external_deal_id", err: errors.New(`ent: missing required field "DealLink.external_deal_id"`)}
	}
	if v, ok := _c.mutation.ExternalDealID(); ok {
		if err := deallink.ExternalDealIDValidator(v); err != nil {
			return &ValidationError{Name: "external_deal_id", err: fmt.Errorf(`ent: validator failed for field "DealLink.external_deal_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DealLink.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DealLink.updated_at"`)}
	}
	if len(_c.mutation.IntegrationIDs()) == 0 {
		return &ValidationError{Name: "integration", err: errors.New(`ent: missing required edge "DealLink.integration"`)}
	}
	if len(_c.mutation.ProposalIDs()) == 0 {
		return &ValidationError{Name: "proposal", err: errors.New(`ent: missing required edge "DealLink.proposal"`)}
	}
	return nil
}

func (_c *DealLinkCreate) sqlSave(ctx context.Context) (*DealLink, error) {
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

func (_c *DealLinkCreate) createSpec() (*DealLink, *sqlgraph.CreateSpec) {
	var (
		_node = &DealLink{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deallink.Table, sqlgraph.NewFieldSpec(deallink.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ExternalDealID(); ok {
		_spec.SetField(deallink.FieldExternalDealID, field.TypeString, value)
		_node.ExternalDealID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(deallink.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(deallink.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.IntegrationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deallink.IntegrationTable,
			Columns: []string{deallink.IntegrationColumn},
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
	if nodes := _c.mutation.ProposalIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deallink.ProposalTable,
			Columns: []string{deallink.ProposalColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProposalID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DealLinkCreateBulk is the builder for creating many DealLink entities in bulk.
type DealLinkCreateBulk struct {
	config
	err      error
	builders []*DealLinkCreate
}

// Save creates the DealLink entities in the database.
func (_c *DealLinkCreateBulk) Save(ctx context.Context) ([]*DealLink, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DealLink, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DealLinkMutation)
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
func (_c *DealLinkCreateBulk) SaveX(ctx context.Context) []*DealLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DealLinkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DealLinkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
