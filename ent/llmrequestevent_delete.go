// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abenov/mathai/ent/llmrequestevent"
	"github.com/abenov/mathai/ent/predicate"
)

// LLMRequestEventDelete is the builder for deleting a LLMRequestEvent entity.
type LLMRequestEventDelete struct {
	config
	hooks    []Hook
	mutation *LLMRequestEventMutation
}

// Where appends a list predicates to the LLMRequestEventDelete builder.
func (_d *LLMRequestEventDelete) Where(ps ...predicate.LLMRequestEvent) *LLMRequestEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LLMRequestEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LLMRequestEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LLMRequestEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(llmrequestevent.Table, sqlgraph.NewFieldSpec(llmrequestevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// LLMRequestEventDeleteOne is the builder for deleting a single LLMRequestEvent entity.
type LLMRequestEventDeleteOne struct {
	_d *LLMRequestEventDelete
}

// Where appends a list predicates to the LLMRequestEventDelete builder.
func (_d *LLMRequestEventDeleteOne) Where(ps ...predicate.LLMRequestEvent) *LLMRequestEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LLMRequestEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{llmrequestevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LLMRequestEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
