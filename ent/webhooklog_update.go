// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dealpage/dealpage/ent/predicate"
	"github.com/dealpage/dealpage/ent/webhooklog"
)

// WebhookLogUpdate is the builder for updating WebhookLog entities.
type WebhookLogUpdate struct {
	config
	hooks    []Hook
	mutation *WebhookLogMutation
}

// Where appends a list predicates to the WebhookLogUpdate builder.
func (_u *WebhookLogUpdate) Where(ps ...predicate.WebhookLog) *WebhookLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *WebhookLogUpdate) SetProvider(v webhooklog.Provider) *WebhookLogUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *WebhookLogUpdate) SetNillableProvider(v *webhooklog.Provider) *WebhookLogUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *WebhookLogUpdate) SetEventType(v string) *WebhookLogUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *WebhookLogUpdate) SetNillableEventType(v *string) *WebhookLogUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WebhookLogUpdate) SetPayload(v map[string]interface{}) *WebhookLogUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *WebhookLogUpdate) ClearPayload() *WebhookLogUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetProcessed sets the "processed" field.
func (_u *WebhookLogUpdate) SetProcessed(v bool) *WebhookLogUpdate {
	_u.mutation.SetProcessed(v)
	return _u
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_u *WebhookLogUpdate) SetNillableProcessed(v *bool) *WebhookLogUpdate {
	if v != nil {
		_u.SetProcessed(*v)
	}
	return _u
}

// SetProcessingError sets the "processing_error" field.
func (_u *WebhookLogUpdate) SetProcessingError(v string) *WebhookLogUpdate {
	_u.mutation.SetProcessingError(v)
	return _u
}

// SetNillableProcessingError sets the "processing_error" field if the given value is not nil.
func (_u *WebhookLogUpdate) SetNillableProcessingError(v *string) *WebhookLogUpdate {
	if v != nil {
		_u.SetProcessingError(*v)
	}
	return _u
}

// ClearProcessingError clears the value of the "processing_error" field.
func (_u *WebhookLogUpdate) ClearProcessingError() *WebhookLogUpdate {
	_u.mutation.ClearProcessingError()
	return _u
}

// SetIntegrationID sets the "integration_id" field.
func (_u *WebhookLogUpdate) SetIntegrationID(v int) *WebhookLogUpdate {
	_u.mutation.ResetIntegrationID()
	_u.mutation.SetIntegrationID(v)
	return _u
}

// SetNillableIntegrationID sets the "integration_id" field if the given value is not nil.
func (_u *WebhookLogUpdate) SetNillableIntegrationID(v *int) *WebhookLogUpdate {
	if v != nil {
		_u.SetIntegrationID(*v)
	}
	return _u
}

// AddIntegrationID adds value to the "integration_id" field.
func (_u *WebhookLogUpdate) AddIntegrationID(v int) *WebhookLogUpdate {
	_u.mutation.AddIntegrationID(v)
	return _u
}

// ClearIntegrationID clears the value of the "integration_id" field.
func (_u *WebhookLogUpdate) ClearIntegrationID() *WebhookLogUpdate {
	_u.mutation.ClearIntegrationID()
	return _u
}

// Mutation returns the WebhookLogMutation object of the builder.
func (_u *WebhookLogUpdate) Mutation() *WebhookLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebhookLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebhookLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookLogUpdate) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := webhooklog.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "WebhookLog.provider": %w`, err)}
		}
	}
	return nil
}

func (_u *WebhookLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhooklog.Table, webhooklog.Columns, sqlgraph.NewFieldSpec(webhooklog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(webhooklog.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(webhooklog.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(webhooklog.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(webhooklog.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Processed(); ok {
		_spec.SetField(webhooklog.FieldProcessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProcessingError(); ok {
		_spec.SetField(webhooklog.FieldProcessingError, field.TypeString, value)
	}
	if _u.mutation.ProcessingErrorCleared() {
		_spec.ClearField(webhooklog.FieldProcessingError, field.TypeString)
	}
	if value, ok := _u.mutation.IntegrationID(); ok {
		_spec.SetField(webhooklog.FieldIntegrationID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntegrationID(); ok {
		_spec.AddField(webhooklog.FieldIntegrationID, field.TypeInt, value)
	}
	if _u.mutation.IntegrationIDCleared() {
		_spec.ClearField(webhooklog.FieldIntegrationID, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhooklog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebhookLogUpdateOne is the builder for updating a single WebhookLog entity.
type WebhookLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebhookLogMutation
}

// SetProvider sets the "provider" field.
func (_u *WebhookLogUpdateOne) SetProvider(v webhooklog.Provider) *WebhookLogUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *WebhookLogUpdateOne) SetNillableProvider(v *webhooklog.Provider) *WebhookLogUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *WebhookLogUpdateOne) SetEventType(v string) *WebhookLogUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *WebhookLogUpdateOne) SetNillableEventType(v *string) *WebhookLogUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WebhookLogUpdateOne) SetPayload(v map[string]interface{}) *WebhookLogUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *WebhookLogUpdateOne) ClearPayload() *WebhookLogUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetProcessed sets the "processed" field.
func (_u *WebhookLogUpdateOne) SetProcessed(v bool) *WebhookLogUpdateOne {
	_u.mutation.SetProcessed(v)
	return _u
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_u *WebhookLogUpdateOne) SetNillableProcessed(v *bool) *WebhookLogUpdateOne {
	if v != nil {
		_u.SetProcessed(*v)
	}
	return _u
}

// SetProcessingError sets the "processing_error" field.
func (_u *WebhookLogUpdateOne) SetProcessingError(v string) *WebhookLogUpdateOne {
	_u.mutation.SetProcessingError(v)
	return _u
}

// SetNillableProcessingError sets the "processing_error" field if the given value is not nil.
func (_u *WebhookLogUpdateOne) SetNillableProcessingError(v *string) *WebhookLogUpdateOne {
	if v != nil {
		_u.SetProcessingError(*v)
	}
	return _u
}

// ClearProcessingError clears the value of the "processing_error" field.
func (_u *WebhookLogUpdateOne) ClearProcessingError() *WebhookLogUpdateOne {
	_u.mutation.ClearProcessingError()
	return _u
}

// SetIntegrationID sets the "integration_id" field.
func (_u *WebhookLogUpdateOne) SetIntegrationID(v int) *WebhookLogUpdateOne {
	_u.mutation.ResetIntegrationID()
	_u.mutation.SetIntegrationID(v)
	return _u
}

// SetNillableIntegrationID sets the "integration_id" field if the given value is not nil.
func (_u *WebhookLogUpdateOne) SetNillableIntegrationID(v *int) *WebhookLogUpdateOne {
	if v != nil {
		_u.SetIntegrationID(*v)
	}
	return _u
}

// AddIntegrationID adds value to the "integration_id" field.
func (_u *WebhookLogUpdateOne) AddIntegrationID(v int) *WebhookLogUpdateOne {
	_u.mutation.AddIntegrationID(v)
	return _u
}

// ClearIntegrationID clears the value of the "integration_id" field.
func (_u *WebhookLogUpdateOne) ClearIntegrationID() *WebhookLogUpdateOne {
	_u.mutation.ClearIntegrationID()
	return _u
}

// Mutation returns the WebhookLogMutation object of the builder.
func (_u *WebhookLogUpdateOne) Mutation() *WebhookLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the WebhookLogUpdate builder.
func (_u *WebhookLogUpdateOne) Where(ps ...predicate.WebhookLog) *WebhookLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebhookLogUpdateOne) Select(field string, fields ...string) *WebhookLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WebhookLog entity.
func (_u *WebhookLogUpdateOne) Save(ctx context.Context) (*WebhookLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookLogUpdateOne) SaveX(ctx context.Context) *WebhookLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebhookLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookLogUpdateOne) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := webhooklog.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "WebhookLog.provider": %w`, err)}
		}
	}
	return nil
}

func (_u *WebhookLogUpdateOne) sqlSave(ctx context.Context) (_node *WebhookLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhooklog.Table, webhooklog.Columns, sqlgraph.NewFieldSpec(webhooklog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WebhookLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhooklog.FieldID)
		for _, f := range fields {
			if !webhooklog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != webhooklog.FieldID {
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
		_spec.SetField(webhooklog.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(webhooklog.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(webhooklog.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(webhooklog.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Processed(); ok {
		_spec.SetField(webhooklog.FieldProcessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProcessingError(); ok {
		_spec.SetField(webhooklog.FieldProcessingError, field.TypeString, value)
	}
	if _u.mutation.ProcessingErrorCleared() {
		_spec.ClearField(webhooklog.FieldProcessingError, field.TypeString)
	}
	if value, ok := _u.mutation.IntegrationID(); ok {
		_spec.SetField(webhooklog.FieldIntegrationID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntegrationID(); ok {
		_spec.AddField(webhooklog.FieldIntegrationID, field.TypeInt, value)
	}
	if _u.mutation.IntegrationIDCleared() {
		_spec.ClearField(webhooklog.FieldIntegrationID, field.TypeInt)
	}
	_node = &WebhookLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhooklog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
