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
	"github.com/dealpage/dealpage/ent/stagemapping"
)

// StageMappingCreate is the builder for creating a StageMapping entity.
type StageMappingCreate struct {
	config
	mutation *StageMappingMutation
	hooks    []Hook
}

// SetIntegrationID sets the "integration_id" field.
func (_c *StageMappingCreate) SetIntegrationID(v int) *StageMappingCreate {
	_c.mutation.SetIntegrationID(v)
	return _c
}

// SetProposalStatus sets the "proposal_status" field.
func (_c *StageMappingCreate) SetProposalStatus(v string) *StageMappingCreate {
	_c.mutation.SetProposalStatus(v)
	return _c
}

// SetExternalStageID sets the "external_stage_id" field.
func (_c *StageMappingCreate) SetExternalStageID(v string) *StageMappingCreate {
	_c.mutation.SetExternalStageID(v)
	return _c
}

// SetExternalStageName sets the "external_stage_name" field.
func (_c *StageMappingCreate) SetExternalStageName(v string) *StageMappingCreate {
	_c.mutation.SetExternalStageName(v)
	return _c
}

// SetNillableExternalStageName sets the "external_stage_name" field if the given value is not nil.
func (_c *StageMappingCreate) SetNillableExternalStageName(v *string) *StageMappingCreate {
	if v != nil {
		_c.SetExternalStageName(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StageMappingCreate) SetCreatedAt(v time.Time) *StageMappingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StageMappingCreate) SetNillableCreatedAt(v *time.Time) *StageMappingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StageMappingCreate) SetUpdatedAt(v time.Time) *StageMappingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StageMappingCreate) SetNillableUpdatedAt(v *time.Time) *StageMappingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetIntegration sets the "integration" edge to the CRMIntegration entity.
func (_c *StageMappingCreate) SetIntegration(v *CRMIntegration) *StageMappingCreate {
	return _c.SetIntegrationID(v.ID)
}

// Mutation returns the StageMappingMutation object of the builder.
func (_c *StageMappingCreate) Mutation() *StageMappingMutation {
	return _c.mutation
}

// Save creates the StageMapping in the database.
func (_c *StageMappingCreate) Save(ctx context.Context) (*StageMapping, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StageMappingCreate) SaveX(ctx context.Context) *StageMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageMappingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageMappingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StageMappingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stagemapping.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := stagemapping.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StageMappingCreate) check() error {
	if _, ok := _c.mutation.IntegrationID(); !ok {
		return &ValidationError{Name: "integration_id", err: errors.New(`ent: missing required field "StageMapping.integration_id"`)}
	}
	if _, ok := _c.mutation.ProposalStatus(); !ok {
		return &ValidationError{Name: "proposal_status", err: errors.New(`ent: missing required field "StageMapping.proposal_status"`)}
	}
	if v, ok := _c.mutation.ProposalStatus(); ok {
		if err := stagemapping.ProposalStatusValidator(v); err != nil {
			return &ValidationError{Name: "proposal_status", err: fmt.Errorf(`ent: validator failed for field "StageMapping.proposal_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExternalStageID(); !ok {
		return &ValidationError{Name: "external_stage_id", err: errors.New(`ent: missing required field "StageMapping.external_stage_id"`)}
	}
	if v, ok := _c.mutation.ExternalStageID(); ok {
		if err := stagemapping.ExternalStageIDValidator(v); err != nil {
			return &ValidationError{Name: "external_stage_id", err: fmt.Errorf(`ent: validator failed for field "StageMapping.external_stage_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StageMapping.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StageMapping.updated_at"`)}
	}
	if len(_c.mutation.IntegrationIDs()) == 0 {
		return &ValidationError{Name: "integration", err: errors.New(`ent: missing required edge "StageMapping.integration"`)}
	}
	return nil
}

func (_c *StageMappingCreate) sqlSave(ctx context.Context) (*StageMapping, error) {
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

func (_c *StageMappingCreate) createSpec() (*StageMapping, *sqlgraph.CreateSpec) {
	var (
		_node = &StageMapping{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stagemapping.Table, sqlgraph.NewFieldSpec(stagemapping.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ProposalStatus(); ok {
		_spec.SetField(stagemapping.FieldProposalStatus, field.TypeString, value)
		_node.ProposalStatus = value
	}
	if value, ok := _c.mutation.ExternalStageID(); ok {
		_spec.SetField(stagemapping.FieldExternalStageID, field.TypeString, value)
		_node.ExternalStageID = value
	}
	if value, ok := _c.mutation.ExternalStageName(); ok {
		_spec.SetField(stagemapping.FieldExternalStageName, field.TypeString, value)
		_node.ExternalStageName = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stagemapping.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(stagemapping.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.IntegrationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stagemapping.IntegrationTable,
			Columns: []string{stagemapping.IntegrationColumn},
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

// StageMappingCreateBulk is the builder for creating many StageMapping entities in bulk.
type StageMappingCreateBulk struct {
	config
	err      error
	builders []*StageMappingCreate
}

// Save creates the StageMapping entities in the database.
func (_c *StageMappingCreateBulk) Save(ctx context.Context) ([]*StageMapping, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StageMapping, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StageMappingMutation)
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
func (_c *StageMappingCreateBulk) SaveX(ctx context.Context) []*StageMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageMappingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageMappingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
