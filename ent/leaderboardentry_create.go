// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sahajm/quizdeck/ent/leaderboardentry"
)

// LeaderboardEntryCreate is the builder for creating a LeaderboardEntry entity.
type LeaderboardEntryCreate struct {
	config
	mutation *LeaderboardEntryMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *LeaderboardEntryCreate) SetProfileID(v string) *LeaderboardEntryCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *LeaderboardEntryCreate) SetName(v string) *LeaderboardEntryCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPoints sets the "points" field.
func (_c *LeaderboardEntryCreate) SetPoints(v int) *LeaderboardEntryCreate {
	_c.mutation.SetPoints(v)
	return _c
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_c *LeaderboardEntryCreate) SetNillablePoints(v *int) *LeaderboardEntryCreate {
	if v != nil {
		_c.SetPoints(*v)
	}
	return _c
}

// SetBadges sets the "badges" field.
func (_c *LeaderboardEntryCreate) SetBadges(v []string) *LeaderboardEntryCreate {
	_c.mutation.SetBadges(v)
	return _c
}

// SetBoxCount sets the "box_count" field.
func (_c *LeaderboardEntryCreate) SetBoxCount(v int) *LeaderboardEntryCreate {
	_c.mutation.SetBoxCount(v)
	return _c
}

// SetNillableBoxCount sets the "box_count" field if the given value is not nil.
func (_c *LeaderboardEntryCreate) SetNillableBoxCount(v *int) *LeaderboardEntryCreate {
	if v != nil {
		_c.SetBoxCount(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LeaderboardEntryCreate) SetUpdatedAt(v time.Time) *LeaderboardEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LeaderboardEntryCreate) SetNillableUpdatedAt(v *time.Time) *LeaderboardEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the LeaderboardEntryMutation object of the builder.
func (_c *LeaderboardEntryCreate) Mutation() *LeaderboardEntryMutation {
	return _c.mutation
}

// Save creates the LeaderboardEntry in the database.
func (_c *LeaderboardEntryCreate) Save(ctx context.Context) (*LeaderboardEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeaderboardEntryCreate) SaveX(ctx context.Context) *LeaderboardEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeaderboardEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeaderboardEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeaderboardEntryCreate) defaults() {
	if _, ok := _c.mutation.Points(); !ok {
		v := leaderboardentry.DefaultPoints
		_c.mutation.SetPoints(v)
	}
	if _, ok := _c.mutation.BoxCount(); !ok {
		v := leaderboardentry.DefaultBoxCount
		_c.mutation.SetBoxCount(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := leaderboardentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeaderboardEntryCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "LeaderboardEntry.profile_id"`)}
	}
	if v, ok := _c.mutation.ProfileID(); ok {
		if err := leaderboardentry.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "LeaderboardEntry.profile_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "LeaderboardEntry.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := leaderboardentry.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "LeaderboardEntry.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Points(); !ok {
		return &ValidationError{Name: "points", err: errors.New(`ent: missing required field "LeaderboardEntry.points"`)}
	}
	if v, ok := _c.mutation.Points(); ok {
		if err := leaderboardentry.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "LeaderboardEntry.points": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BoxCount(); !ok {
		return &ValidationError{Name: "box_count", err: errors.New(`ent: missing required field "LeaderboardEntry.box_count"`)}
	}
	if v, ok := _c.mutation.BoxCount(); ok {
		if err := leaderboardentry.BoxCountValidator(v); err != nil {
			return &ValidationError{Name: "box_count", err: fmt.Errorf(`ent: validator failed for field "LeaderboardEntry.box_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LeaderboardEntry.updated_at"`)}
	}
	return nil
}

func (_c *LeaderboardEntryCreate) sqlSave(ctx context.Context) (*LeaderboardEntry, error) {
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

func (_c *LeaderboardEntryCreate) createSpec() (*LeaderboardEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &LeaderboardEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(leaderboardentry.Table, sqlgraph.NewFieldSpec(leaderboardentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ProfileID(); ok {
		_spec.SetField(leaderboardentry.FieldProfileID, field.TypeString, value)
		_node.ProfileID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(leaderboardentry.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Points(); ok {
		_spec.SetField(leaderboardentry.FieldPoints, field.TypeInt, value)
		_node.Points = value
	}
	if value, ok := _c.mutation.Badges(); ok {
		_spec.SetField(leaderboardentry.FieldBadges, field.TypeJSON, value)
		_node.Badges = value
	}
	if value, ok := _c.mutation.BoxCount(); ok {
		_spec.SetField(leaderboardentry.FieldBoxCount, field.TypeInt, value)
		_node.BoxCount = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(leaderboardentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LeaderboardEntryCreateBulk is the builder for creating many LeaderboardEntry entities in bulk.
type LeaderboardEntryCreateBulk struct {
	config
	err      error
	builders []*LeaderboardEntryCreate
}

// Save creates the LeaderboardEntry entities in the database.
func (_c *LeaderboardEntryCreateBulk) Save(ctx context.Context) ([]*LeaderboardEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LeaderboardEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeaderboardEntryMutation)
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
func (_c *LeaderboardEntryCreateBulk) SaveX(ctx context.Context) []*LeaderboardEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeaderboardEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeaderboardEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
