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
	"github.com/dealpage/dealpage/ent/deallink"
	"github.com/dealpage/dealpage/ent/predicate"
	"github.com/dealpage/dealpage/ent/proposal"
)

// DealLinkUpdate is the builder for updating DealLink entities.
type DealLinkUpdate struct {
	config
	hooks    []Hook
	mutation *DealLinkMutation
}

// Where appends a list predicates to the DealLinkUpdate builder.
func (_u *DealLinkUpdate) Where(ps ...predicate.DealLink) *DealLinkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIntegrationID sets the "integration_id" field.
func (_u *DealLinkUpdate) SetIntegrationID(v int) *DealLinkUpdate {
	_u.mutation.SetIntegrationID(v)
	return _u
}

// SetNillableIntegrationID sets the "integration_id" field if the given value is not nil.
func (_u *DealLinkUpdate) SetNillableIntegrationID(v *int) *DealLinkUpdate {
	if v != nil {
		_u.SetIntegrationID(*v)
	}
	return _u
}

// SetProposalID sets the "proposal_id" field.
func (_u *DealLinkUpdate) SetProposalID(v int) *DealLinkUpdate {
	_u.mutation.SetProposalID(v)
	return _u
}

// SetNillableProposalID sets the "proposal_id" field if the given value is not nil.
func (_u *DealLinkUpdate) SetNillableProposalID(v *int) *DealLinkUpdate {
	if v != nil {
		_u.SetProposalID(*v)
	}
	return _u
}

// SetExternalDealID sets the "external_deal_id" field.
func (_u *DealLinkUpdate) SetExternalDealID(v string) *DealLinkUpdate {
	_u.mutation.SetExternalDealID(v)
	return _u
}

// SetNillableExternalDealID sets the "external_deal_id" field if the given value is not nil.
func (_u *DealLinkUpdate) SetNillableExternalDealID(v *string) *DealLinkUpdate {
	if v != nil {
		_u.SetExternalDealID(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DealLinkUpdate) SetUpdatedAt(v time.Time) *DealLinkUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIntegration sets the "integration" edge to the CRMIntegration entity.
func (_u *DealLinkUpdate) SetIntegration(v *CRMIntegration) *DealLinkUpdate {
	return _u.SetIntegrationID(v.ID)
}

// SetProposal sets the "proposal" edge to the Proposal entity.
func (_u *DealLinkUpdate) SetProposal(v *Proposal) *DealLinkUpdate {
	return _u.SetProposalID(v.ID)
}

// Mutation returns the DealLinkMutation object of the builder.
func (_u *DealLinkUpdate) Mutation() *DealLinkMutation {
	return _u.mutation
}

// ClearIntegration clears the "integration" edge to the CRMIntegration entity.
func (_u *DealLinkUpdate) ClearIntegration() *DealLinkUpdate {
	_u.mutation.ClearIntegration()
	return _u
}

// ClearProposal clears the "proposal" edge to the Proposal entity.
func (_u *DealLinkUpdate) ClearProposal() *DealLinkUpdate {
	_u.mutation.ClearProposal()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DealLinkUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DealLinkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DealLinkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DealLinkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DealLinkUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := deallink.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DealLinkUpdate) check() error {
	if v, ok := _u.mutation.ExternalDealID(); ok {
		if err := deallink.ExternalDealIDValidator(v); err != nil {
			return &ValidationError{Name: "external_deal_id", err: fmt.Errorf(`ent: validator failed for field "DealLink.external_deal_id": %w`, err)}
		}
	}
	if _u.mutation.IntegrationCleared() && len(_u.mutation.IntegrationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DealLink.integration"`)
	}
	if _u.mutation.ProposalCleared() && len(_u.mutation.ProposalIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DealLink.proposal"`)
	}
	return nil
}

func (_u *DealLinkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deallink.Table, deallink.Columns, sqlgraph.NewFieldSpec(deallink.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExternalDealID(); ok {
		_spec.SetField(deallink.FieldExternalDealID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(deallink.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.IntegrationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IntegrationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProposalCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProposalIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deallink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DealLinkUpdateOne is the builder for updating a single DealLink entity.
type DealLinkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DealLinkMutation
}

// SetIntegrationID sets the "integration_id" field.
func (_u *DealLinkUpdateOne) SetIntegrationID(v int) *DealLinkUpdateOne {
	_u.mutation.SetIntegrationID(v)
	return _u
}

// SetNillableIntegrationID sets the "integration_id" field if the given value is not nil.
func (_u *DealLinkUpdateOne) SetNillableIntegrationID(v *int) *DealLinkUpdateOne {
	if v != nil {
		_u.SetIntegrationID(*v)
	}
	return _u
}

// SetProposalID sets the "proposal_id" field.
func (_u *DealLinkUpdateOne) SetProposalID(v int) *DealLinkUpdateOne {
	_u.mutation.SetProposalID(v)
	return _u
}

// SetNillableProposalID sets the "proposal_id" field if the given value is not nil.
func (_u *DealLinkUpdateOne) SetNillableProposalID(v *int) *DealLinkUpdateOne {
	if v != nil {
		_u.SetProposalID(*v)
	}
	return _u
}

// SetExternalDealID sets the "external_deal_id" field.
func (_u *DealLinkUpdateOne) SetExternalDealID(v string) *DealLinkUpdateOne {
	_u.mutation.SetExternalDealID(v)
	return _u
}

// SetNillableExternalDealID sets the "external_deal_id" field if the given value is not nil.
func (_u *DealLinkUpdateOne) SetNillableExternalDealID(v *string) *DealLinkUpdateOne {
	if v != nil {
		_u.SetExternalDealID(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DealLinkUpdateOne) SetUpdatedAt(v time.Time) *DealLinkUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIntegration sets the "integration" edge to the CRMIntegration entity.
func (_u *DealLinkUpdateOne) SetIntegration(v *CRMIntegration) *DealLinkUpdateOne {
	return _u.SetIntegrationID(v.ID)
}

// SetProposal sets the "proposal" edge to the Proposal entity.
func (_u *DealLinkUpdateOne) SetProposal(v *Proposal) *DealLinkUpdateOne {
	return _u.SetProposalID(v.ID)
}

// Mutation returns the DealLinkMutation object of the builder.
func (_u *DealLinkUpdateOne) Mutation() *DealLinkMutation {
	return _u.mutation
}

// ClearIntegration clears the "integration" edge to the CRMIntegration entity.
func (_u *DealLinkUpdateOne) ClearIntegration() *DealLinkUpdateOne {
	_u.mutation.ClearIntegration()
	return _u
}

// ClearProposal clears the "proposal" edge to the Proposal entity.
func (_u *DealLinkUpdateOne) ClearProposal() *DealLinkUpdateOne {
	_u.mutation.ClearProposal()
	return _u
}

// Where appends a list predicates to the DealLinkUpdate builder.
func (_u *DealLinkUpdateOne) Where(ps ...predicate.DealLink) *DealLinkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DealLinkUpdateOne) Select(field string, fields ...string) *DealLinkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DealLink entity.
func (_u *DealLinkUpdateOne) Save(ctx context.Context) (*DealLink, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DealLinkUpdateOne) SaveX(ctx context.Context) *DealLink {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DealLinkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DealLinkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DealLinkUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := deallink.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DealLinkUpdateOne) check() error {
	if v, ok := _u.mutation.ExternalDealID(); ok {
		if err := deallink.ExternalDealIDValidator(v); err != nil {
			return &ValidationError{Name: "external_deal_id", err: fmt.Errorf(`ent: validator failed for field "DealLink.external_deal_id": %w`, err)}
		}
	}
	if _u.mutation.IntegrationCleared() && len(_u.mutation.IntegrationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DealLink.integration"`)
	}
	if _u.mutation.ProposalCleared() && len(_u.mutation.ProposalIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DealLink.proposal"`)
	}
	return nil
}

func (_u *DealLinkUpdateOne) sqlSave(ctx context.Context) (_node *DealLink, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deallink.Table, deallink.Columns, sqlgraph.NewFieldSpec(deallink.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DealLink.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deallink.FieldID)
		for _, f := range fields {
			if !deallink.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deallink.FieldID {
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
	if value, ok := _u.mutation.ExternalDealID(); ok {
		_spec.SetField(deallink.FieldExternalDealID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(deallink.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.IntegrationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IntegrationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProposalCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProposalIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DealLink{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deallink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
