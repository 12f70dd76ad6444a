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
	"github.com/dealpage/dealpage/ent/crmintegration"
	"github.com/dealpage/dealpage/ent/predicate"
	"github.com/dealpage/dealpage/ent/stagemapping"
)

// StageMappingUpdate is the builder for updating StageMapping entities.
type StageMappingUpdate struct {
	config
	hooks    []Hook
	mutation *StageMappingMutation
}

// Where appends a list predicates to the StageMappingUpdate builder.
func (_u *StageMappingUpdate) Where(ps ...predicate.StageMapping) *StageMappingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIntegrationID sets the "integration_id" field.
func (_u *StageMappingUpdate) SetIntegrationID(v int) *StageMappingUpdate {
	_u.mutation.SetIntegrationID(v)
	return _u
}

// SetNillableIntegrationID sets the "integration_id" field if the given value is not nil.
func (_u *StageMappingUpdate) SetNillableIntegrationID(v *int) *StageMappingUpdate {
	if v != nil {
		_u.SetIntegrationID(*v)
	}
	return _u
}

// SetProposalStatus sets the "proposal_status" field.
func (_u *StageMappingUpdate) SetProposalStatus(v string) *StageMappingUpdate {
	_u.mutation.SetProposalStatus(v)
	return _u
}

// SetNillableProposalStatus sets the "proposal_status" field if the given value is not nil.
func (_u *StageMappingUpdate) SetNillableProposalStatus(v *string) *StageMappingUpdate {
	if v != nil {
		_u.SetProposalStatus(*v)
	}
	return _u
}

// SetExternalStageID sets the "external_stage_id" field.
func (_u *StageMappingUpdate) SetExternalStageID(v string) *StageMappingUpdate {
	_u.mutation.SetExternalStageID(v)
	return _u
}

// SetNillableExternalStageID sets the "external_stage_id" field if the given value is not nil.
func (_u *StageMappingUpdate) SetNillableExternalStageID(v *string) *StageMappingUpdate {
	if v != nil {
		_u.SetExternalStageID(*v)
	}
	return _u
}

// SetExternalStageName sets the "external_stage_name" field.
func (_u *StageMappingUpdate) SetExternalStageName(v string) *StageMappingUpdate {
	_u.mutation.SetExternalStageName(v)
	return _u
}

// SetNillableExternalStageName sets the "external_stage_name" field if the given value is not nil.
func (_u *StageMappingUpdate) SetNillableExternalStageName(v *string) *StageMappingUpdate {
	if v != nil {
		_u.SetExternalStageName(*v)
	}
	return _u
}

// ClearExternalStageName clears the value of the "external_stage_name" field.
func (_u *StageMappingUpdate) ClearExternalStageName() *StageMappingUpdate {
	_u.mutation.ClearExternalStageName()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StageMappingUpdate) SetUpdatedAt(v time.Time) *StageMappingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIntegration sets the "integration" edge to the CRMIntegration entity.
func (_u *StageMappingUpdate) SetIntegration(v *CRMIntegration) *StageMappingUpdate {
	return _u.SetIntegrationID(v.ID)
}

// Mutation returns the StageMappingMutation object of the builder.
func (_u *StageMappingUpdate) Mutation() *StageMappingMutation {
	return _u.mutation
}

// ClearIntegration clears the "integration" edge to the CRMIntegration entity.
func (_u *StageMappingUpdate) ClearIntegration() *StageMappingUpdate {
	_u.mutation.ClearIntegration()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StageMappingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageMappingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StageMappingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageMappingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StageMappingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stagemapping.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageMappingUpdate) check() error {
	if v, ok := _u.mutation.ProposalStatus(); ok {
		if err := stagemapping.ProposalStatusValidator(v); err != nil {
			return &ValidationError{Name: "proposal_status", err: fmt.Errorf(`ent: validator failed for field "StageMapping.proposal_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExternalStageID(); ok {
		if err := stagemapping.ExternalStageIDValidator(v); err != nil {
			return &ValidationError{Name: "external_stage_id", err: fmt.Errorf(`ent: validator failed for field "StageMapping.external_stage_id": %w`, err)}
		}
	}
	if _u.mutation.IntegrationCleared() && len(_u.mutation.IntegrationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StageMapping.integration"`)
	}
	return nil
}

func (_u *StageMappingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagemapping.Table, stagemapping.Columns, sqlgraph.NewFieldSpec(stagemapping.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProposalStatus(); ok {
		_spec.SetField(stagemapping.FieldProposalStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalStageID(); ok {
		_spec.SetField(stagemapping.FieldExternalStageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalStageName(); ok {
		_spec.SetField(stagemapping.FieldExternalStageName, field.TypeString, value)
	}
	if _u.mutation.ExternalStageNameCleared() {
		_spec.ClearField(stagemapping.FieldExternalStageName, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stagemapping.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.IntegrationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IntegrationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagemapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StageMappingUpdateOne is the builder for updating a single StageMapping entity.
type StageMappingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StageMappingMutation
}

// SetIntegrationID sets the "integration_id" field.
func (_u *StageMappingUpdateOne) SetIntegrationID(v int) *StageMappingUpdateOne {
	_u.mutation.SetIntegrationID(v)
	return _u
}

// SetNillableIntegrationID sets the "integration_id" field if the given value is not nil.
func (_u *StageMappingUpdateOne) SetNillableIntegrationID(v *int) *StageMappingUpdateOne {
	if v != nil {
		_u.SetIntegrationID(*v)
	}
	return _u
}

// SetProposalStatus sets the "proposal_status" field.
func (_u *StageMappingUpdateOne) SetProposalStatus(v string) *StageMappingUpdateOne {
	_u.mutation.SetProposalStatus(v)
	return _u
}

// SetNillableProposalStatus sets the "proposal_status" field if the given value is not nil.
func (_u *StageMappingUpdateOne) SetNillableProposalStatus(v *string) *StageMappingUpdateOne {
	if v != nil {
		_u.SetProposalStatus(*v)
	}
	return _u
}

// SetExternalStageID sets the "external_stage_id" field.
func (_u *StageMappingUpdateOne) SetExternalStageID(v string) *StageMappingUpdateOne {
	_u.mutation.SetExternalStageID(v)
	return _u
}

// SetNillableExternalStageID sets the "external_stage_id" field if the given value is not nil.
func (_u *StageMappingUpdateOne) SetNillableExternalStageID(v *string) *StageMappingUpdateOne {
	if v != nil {
		_u.SetExternalStageID(*v)
	}
	return _u
}

// SetExternalStageName sets the "external_stage_name" field.
func (_u *StageMappingUpdateOne) SetExternalStageName(v string) *StageMappingUpdateOne {
	_u.mutation.SetExternalStageName(v)
	return _u
}

// SetNillableExternalStageName sets the "external_stage_name" field if the given value is not nil.
func (_u *StageMappingUpdateOne) SetNillableExternalStageName(v *string) *StageMappingUpdateOne {
	if v != nil {
		_u.SetExternalStageName(*v)
	}
	return _u
}

// ClearExternalStageName clears the value of the "external_stage_name" field.
func (_u *StageMappingUpdateOne) ClearExternalStageName() *StageMappingUpdateOne {
	_u.mutation.ClearExternalStageName()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StageMappingUpdateOne) SetUpdatedAt(v time.Time) *StageMappingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIntegration sets the "integration" edge to the CRMIntegration entity.
func (_u *StageMappingUpdateOne) SetIntegration(v *CRMIntegration) *StageMappingUpdateOne {
	return _u.SetIntegrationID(v.ID)
}

// Mutation returns the StageMappingMutation object of the builder.
func (_u *StageMappingUpdateOne) Mutation() *StageMappingMutation {
	return _u.mutation
}

// ClearIntegration clears the "integration" edge to the CRMIntegration entity.
func (_u *StageMappingUpdateOne) ClearIntegration() *StageMappingUpdateOne {
	_u.mutation.ClearIntegration()
	return _u
}

// Where appends a list predicates to the StageMappingUpdate builder.
func (_u *StageMappingUpdateOne) Where(ps ...predicate.StageMapping) *StageMappingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StageMappingUpdateOne) Select(field string, fields ...string) *StageMappingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StageMapping entity.
func (_u *StageMappingUpdateOne) Save(ctx context.Context) (*StageMapping, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageMappingUpdateOne) SaveX(ctx context.Context) *StageMapping {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StageMappingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageMappingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StageMappingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stagemapping.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageMappingUpdateOne) check() error {
	if v, ok := _u.mutation.ProposalStatus(); ok {
		if err := stagemapping.ProposalStatusValidator(v); err != nil {
			return &ValidationError{Name: "proposal_status", err: fmt.Errorf(`ent: validator failed for field "StageMapping.proposal_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExternalStageID(); ok {
		if err := stagemapping.ExternalStageIDValidator(v); err != nil {
			return &ValidationError{Name: "external_stage_id", err: fmt.Errorf(`ent: validator failed for field "StageMapping.external_stage_id": %w`, err)}
		}
	}
	if _u.mutation.IntegrationCleared() && len(_u.mutation.IntegrationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StageMapping.integration"`)
	}
	return nil
}

func (_u *StageMappingUpdateOne) sqlSave(ctx context.Context) (_node *StageMapping, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagemapping.Table, stagemapping.Columns, sqlgraph.NewFieldSpec(stagemapping.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StageMapping.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stagemapping.FieldID)
		for _, f := range fields {
			if !stagemapping.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stagemapping.FieldID {
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
	if value, ok := _u.mutation.ProposalStatus(); ok {
		_spec.SetField(stagemapping.FieldProposalStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalStageID(); ok {
		_spec.SetField(stagemapping.FieldExternalStageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalStageName(); ok {
		_spec.SetField(stagemapping.FieldExternalStageName, field.TypeString, value)
	}
	if _u.mutation.ExternalStageNameCleared() {
		_spec.ClearField(stagemapping.FieldExternalStageName, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stagemapping.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.IntegrationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IntegrationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StageMapping{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagemapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
