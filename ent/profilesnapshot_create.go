// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abenov/mathai/ent/profilesnapshot"
)

// ProfileSnapshotCreate is the builder for creating a ProfileSnapshot entity.
type ProfileSnapshotCreate struct {
	config
	mutation *ProfileSnapshotMutation
	hooks    []Hook
}

// SetData sets the "data" field.
func (_c *ProfileSnapshotCreate) SetData(v string) *ProfileSnapshotCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetSavedAt sets the "saved_at" field.
func (_c *ProfileSnapshotCreate) SetSavedAt(v time.Time) *ProfileSnapshotCreate {
	_c.mutation.SetSavedAt(v)
	return _c
}

// SetNillableSavedAt sets the "saved_at" field if the given value is not nil.
func (_c *ProfileSnapshotCreate) SetNillableSavedAt(v *time.Time) *ProfileSnapshotCreate {
	if v != nil {
		_c.SetSavedAt(*v)
	}
	return _c
}

// Mutation returns the ProfileSnapshotMutation object of the builder.
func (_c *ProfileSnapshotCreate) Mutation() *ProfileSnapshotMutation {
	return _c.mutation
}

// Save creates the ProfileSnapshot in the database.
func (_c *ProfileSnapshotCreate) Save(ctx context.Context) (*ProfileSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProfileSnapshotCreate) SaveX(ctx context.Context) *ProfileSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProfileSnapshotCreate) defaults() {
	if _, ok := _c.mutation.SavedAt(); !ok {
		v := profilesnapshot.DefaultSavedAt()
		_c.mutation.SetSavedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProfileSnapshotCreate) check() error {
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "ProfileSnapshot.data"`)}
	}
	if _, ok := _c.mutation.SavedAt(); !ok {
		return &ValidationError{Name: "saved_at", err: errors.New(`ent: missing required field "ProfileSnapshot.saved_at"`)}
	}
	return nil
}

func (_c *ProfileSnapshotCreate) sqlSave(ctx context.Context) (*ProfileSnapshot, error) {
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

func (_c *ProfileSnapshotCreate) createSpec() (*ProfileSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &ProfileSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(profilesnapshot.Table, sqlgraph.NewFieldSpec(profilesnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(profilesnapshot.FieldData, field.TypeString, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.SavedAt(); ok {
		_spec.SetField(profilesnapshot.FieldSavedAt, field.TypeTime, value)
		_node.SavedAt = value
	}
	return _node, _spec
}

// ProfileSnapshotCreateBulk is the builder for creating many ProfileSnapshot entities in bulk.
type ProfileSnapshotCreateBulk struct {
	config
	err      error
	builders []*ProfileSnapshotCreate
}

// Save creates the ProfileSnapshot entities in the database.
func (_c *ProfileSnapshotCreateBulk) Save(ctx context.Context) ([]*ProfileSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProfileSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProfileSnapshotMutation)
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
func (_c *ProfileSnapshotCreateBulk) SaveX(ctx context.Context) []*ProfileSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
