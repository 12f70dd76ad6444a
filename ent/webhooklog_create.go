// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dealpage/dealpage/ent/webhooklog"
)

// WebhookLogCreate is the builder for creating a WebhookLog entity.
type WebhookLogCreate struct {
	config
	mutation *WebhookLogMutation
	hooks    []Hook
}

// SetProvider sets the "provider" field.
func (_c *WebhookLogCreate) SetProvider(v webhooklog.Provider) *WebhookLogCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *WebhookLogCreate) SetEventType(v string) *WebhookLogCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *WebhookLogCreate) SetPayload(v map[string]interface{}) *WebhookLogCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetProcessed sets the "processed" field.
func (_c *WebhookLogCreate) SetProcessed(v bool) *WebhookLogCreate {
	_c.mutation.SetProcessed(v)
	return _c
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_c *WebhookLogCreate) SetNillableProcessed(v *bool) *WebhookLogCreate {
	if v != nil {
		_c.SetProcessed(*v)
	}
	return _c
}

// SetProcessingError sets the "processing_error" field.
func (_c *WebhookLogCreate) SetProcessingError(v string) *WebhookLogCreate {
	_c.mutation.SetProcessingError(v)
	return _c
}

// SetNillableProcessingError sets the "processing_error" field if the given value is not nil.
func (_c *WebhookLogCreate) SetNillableProcessingError(v *string) *WebhookLogCreate {
	if v != nil {
		_c.SetProcessingError(*v)
	}
	return _c
}

// SetIntegrationID sets the "integration_id" field.
func (_c *WebhookLogCreate) SetIntegrationID(v int) *WebhookLogCreate {
	_c.mutation.SetIntegrationID(v)
	return _c
}

// SetNillableIntegrationID sets the "integration_id" field if the given value is not nil.
func (_c *WebhookLogCreate) SetNillableIntegrationID(v *int) *WebhookLogCreate {
	if v != nil {
		_c.SetIntegrationID(*v)
	}
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *WebhookLogCreate) SetReceivedAt(v time.Time) *WebhookLogCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_c *WebhookLogCreate) SetNillableReceivedAt(v *time.Time) *WebhookLogCreate {
	if v != nil {
		_c.SetReceivedAt(*v)
	}
	return _c
}

// Mutation returns the WebhookLogMutation object of the builder.
func (_c *WebhookLogCreate) Mutation() *WebhookLogMutation {
	return _c.mutation
}

// Save creates the WebhookLog in the database.
func (_c *WebhookLogCreate) Save(ctx context.Context) (*WebhookLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WebhookLogCreate) SaveX(ctx context.Context) *WebhookLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WebhookLogCreate) defaults() {
	if _, ok := _c.mutation.Processed(); !ok {
		v := webhooklog.DefaultProcessed
		_c.mutation.SetProcessed(v)
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		v := webhooklog.DefaultReceivedAt()
		_c.mutation.SetReceivedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WebhookLogCreate) check() error {
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "WebhookLog.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := webhooklog.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "WebhookLog.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "WebhookLog.event_type"`)}
	}
	if _, ok := _c.mutation.Processed(); !ok {
		return &ValidationError{Name: "processed", err: errors.New(`ent: missing required field "WebhookLog.processed"`)}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "WebhookLog.received_at"`)}
	}
	return nil
}

func (_c *WebhookLogCreate) sqlSave(ctx context.Context) (*WebhookLog, error) {
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

func (_c *WebhookLogCreate) createSpec() (*WebhookLog, *sqlgraph.CreateSpec) {
	var (
		_node = &WebhookLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(webhooklog.Table, sqlgraph.NewFieldSpec(webhooklog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(webhooklog.FieldProvider, field.TypeEnum, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(webhooklog.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(webhooklog.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Processed(); ok {
		_spec.SetField(webhooklog.FieldProcessed, field.TypeBool, value)
		_node.Processed = value
	}
	if value, ok := _c.mutation.ProcessingError(); ok {
		_spec.SetField(webhooklog.FieldProcessingError, field.TypeString, value)
		_node.ProcessingError = value
	}
	if value, ok := _c.mutation.IntegrationID(); ok {
		_spec.SetField(webhooklog.FieldIntegrationID, field.TypeInt, value)
		_node.IntegrationID = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(webhooklog.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	return _node, _spec
}

// WebhookLogCreateBulk is the builder for creating many WebhookLog entities in bulk.
type WebhookLogCreateBulk struct {
	config
	err      error
	builders []*WebhookLogCreate
}

// Save creates the WebhookLog entities in the database.
func (_c *WebhookLogCreateBulk) Save(ctx context.Context) ([]*WebhookLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WebhookLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WebhookLogMutation)
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
func (_c *WebhookLogCreateBulk) SaveX(ctx context.Context) []*WebhookLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
