// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abenov/mathai/ent/predicate"
	"github.com/abenov/mathai/ent/profilesnapshot"
)

// ProfileSnapshotDelete is the builder for deleting a ProfileSnapshot entity.
type ProfileSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *ProfileSnapshotMutation
}

// Where appends a list predicates to the ProfileSnapshotDelete builder.
func (_d *ProfileSnapshotDelete) Where(ps ...predicate.ProfileSnapshot) *ProfileSnapshotDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProfileSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProfileSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProfileSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(profilesnapshot.Table, sqlgraph.NewFieldSpec(profilesnapshot.FieldID, field.TypeInt))
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

// ProfileSnapshotDeleteOne is the builder for deleting a single ProfileSnapshot entity.
type ProfileSnapshotDeleteOne struct {
	_d *ProfileSnapshotDelete
}

// Where appends a list predicates to the ProfileSnapshotDelete builder.
func (_d *ProfileSnapshotDeleteOne) Where(ps ...predicate.ProfileSnapshot) *ProfileSnapshotDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProfileSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{profilesnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProfileSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
