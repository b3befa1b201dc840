// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abenov/mathai/ent/llmrequestevent"
)

// LLMRequestEventCreate is the builder for creating a LLMRequestEvent entity.
type LLMRequestEventCreate struct {
	config
	mutation *LLMRequestEventMutation
	hooks    []Hook
}

// SetTimestamp sets the "timestamp" field.
func (_c *LLMRequestEventCreate) SetTimestamp(v time.Time) *LLMRequestEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *LLMRequestEventCreate) SetNillableTimestamp(v *time.Time) *LLMRequestEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *LLMRequestEventCreate) SetProvider(v string) *LLMRequestEventCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *LLMRequestEventCreate) SetModel(v string) *LLMRequestEventCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetPurpose sets the "purpose" field.
func (_c *LLMRequestEventCreate) SetPurpose(v string) *LLMRequestEventCreate {
	_c.mutation.SetPurpose(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *LLMRequestEventCreate) SetInputTokens(v int) *LLMRequestEventCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *LLMRequestEventCreate) SetNillableInputTokens(v *int) *LLMRequestEventCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *LLMRequestEventCreate) SetOutputTokens(v int) *LLMRequestEventCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *LLMRequestEventCreate) SetNillableOutputTokens(v *int) *LLMRequestEventCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *LLMRequestEventCreate) SetLatencyMs(v int64) *LLMRequestEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *LLMRequestEventCreate) SetNillableLatencyMs(v *int64) *LLMRequestEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *LLMRequestEventCreate) SetSuccess(v bool) *LLMRequestEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *LLMRequestEventCreate) SetErrorMessage(v string) *LLMRequestEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *LLMRequestEventCreate) SetNillableErrorMessage(v *string) *LLMRequestEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the LLMRequestEventMutation object of the builder.
func (_c *LLMRequestEventCreate) Mutation() *LLMRequestEventMutation {
	return _c.mutation
}

// Save creates the LLMRequestEvent in the database.
func (_c *LLMRequestEventCreate) Save(ctx context.Context) (*LLMRequestEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LLMRequestEventCreate) SaveX(ctx context.Context) *LLMRequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMRequestEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMRequestEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LLMRequestEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := llmrequestevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := llmrequestevent.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := llmrequestevent.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := llmrequestevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := llmrequestevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LLMRequestEventCreate) check() error {
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "LLMRequestEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "LLMRequestEvent.provider"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "LLMRequestEvent.model"`)}
	}
	if _, ok := _c.mutation.Purpose(); !ok {
		return &ValidationError{Name: "purpose", err: errors.New(`ent: missing required field "LLMRequestEvent.purpose"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "LLMRequestEvent.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "LLMRequestEvent.output_tokens"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "LLMRequestEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "LLMRequestEvent.success"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "LLMRequestEvent.error_message"`)}
	}
	return nil
}

func (_c *LLMRequestEventCreate) sqlSave(ctx context.Context) (*LLMRequestEvent, error) {
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

func (_c *LLMRequestEventCreate) createSpec() (*LLMRequestEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &LLMRequestEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(llmrequestevent.Table, sqlgraph.NewFieldSpec(llmrequestevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(llmrequestevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(llmrequestevent.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(llmrequestevent.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Purpose(); ok {
		_spec.SetField(llmrequestevent.FieldPurpose, field.TypeString, value)
		_node.Purpose = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(llmrequestevent.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(llmrequestevent.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(llmrequestevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(llmrequestevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(llmrequestevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// LLMRequestEventCreateBulk is the builder for creating many LLMRequestEvent entities in bulk.
type LLMRequestEventCreateBulk struct {
	config
	err      error
	builders []*LLMRequestEventCreate
}

// Save creates the LLMRequestEvent entities in the database.
func (_c *LLMRequestEventCreateBulk) Save(ctx context.Context) ([]*LLMRequestEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LLMRequestEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LLMRequestEventMutation)
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
func (_c *LLMRequestEventCreateBulk) SaveX(ctx context.Context) []*LLMRequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMRequestEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMRequestEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
