// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sahajm/quizdeck/ent/rewardevent"
)

// RewardEventCreate is the builder for creating a RewardEvent entity.
type RewardEventCreate struct {
	config
	mutation *RewardEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RewardEventCreate) SetSequence(v int64) *RewardEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RewardEventCreate) SetTimestamp(v time.Time) *RewardEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RewardEventCreate) SetNillableTimestamp(v *time.Time) *RewardEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetProfileID sets the "profile_id" field.
func (_c *RewardEventCreate) SetProfileID(v string) *RewardEventCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetBoxID sets the "box_id" field.
func (_c *RewardEventCreate) SetBoxID(v string) *RewardEventCreate {
	_c.mutation.SetBoxID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *RewardEventCreate) SetAction(v string) *RewardEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *RewardEventCreate) SetTier(v string) *RewardEventCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetRewardDescription sets the "reward_description" field.
func (_c *RewardEventCreate) SetRewardDescription(v string) *RewardEventCreate {
	_c.mutation.SetRewardDescription(v)
	return _c
}

// SetNillableRewardDescription sets the "reward_description" field if the given value is not nil.
func (_c *RewardEventCreate) SetNillableRewardDescription(v *string) *RewardEventCreate {
	if v != nil {
		_c.SetRewardDescription(*v)
	}
	return _c
}

// SetRewardPoints sets the "reward_points" field.
func (_c *RewardEventCreate) SetRewardPoints(v int) *RewardEventCreate {
	_c.mutation.SetRewardPoints(v)
	return _c
}

// SetNillableRewardPoints sets the "reward_points" field if the given value is not nil.
func (_c *RewardEventCreate) SetNillableRewardPoints(v *int) *RewardEventCreate {
	if v != nil {
		_c.SetRewardPoints(*v)
	}
	return _c
}

// Mutation returns the RewardEventMutation object of the builder.
func (_c *RewardEventCreate) Mutation() *RewardEventMutation {
	return _c.mutation
}

// Save creates the RewardEvent in the database.
func (_c *RewardEventCreate) Save(ctx context.Context) (*RewardEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RewardEventCreate) SaveX(ctx context.Context) *RewardEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RewardEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RewardEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RewardEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := rewardevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.RewardDescription(); !ok {
		v := rewardevent.DefaultRewardDescription
		_c.mutation.SetRewardDescription(v)
	}
	if _, ok := _c.mutation.RewardPoints(); !ok {
		v := rewardevent.DefaultRewardPoints
		_c.mutation.SetRewardPoints(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RewardEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RewardEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RewardEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "RewardEvent.profile_id"`)}
	}
	if v, ok := _c.mutation.ProfileID(); ok {
		if err := rewardevent.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.profile_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BoxID(); !ok {
		return &ValidationError{Name: "box_id", err: errors.New(`ent: missing required field "RewardEvent.box_id"`)}
	}
	if v, ok := _c.mutation.BoxID(); ok {
		if err := rewardevent.BoxIDValidator(v); err != nil {
			return &ValidationError{Name: "box_id", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.box_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "RewardEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := rewardevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "RewardEvent.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := rewardevent.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RewardDescription(); !ok {
		return &ValidationError{Name: "reward_description", err: errors.New(`ent: missing required field "RewardEvent.reward_description"`)}
	}
	if _, ok := _c.mutation.RewardPoints(); !ok {
		return &ValidationError{Name: "reward_points", err: errors.New(`ent: missing required field "RewardEvent.reward_points"`)}
	}
	return nil
}

func (_c *RewardEventCreate) sqlSave(ctx context.Context) (*RewardEvent, error) {
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

func (_c *RewardEventCreate) createSpec() (*RewardEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RewardEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rewardevent.Table, sqlgraph.NewFieldSpec(rewardevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(rewardevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(rewardevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ProfileID(); ok {
		_spec.SetField(rewardevent.FieldProfileID, field.TypeString, value)
		_node.ProfileID = value
	}
	if value, ok := _c.mutation.BoxID(); ok {
		_spec.SetField(rewardevent.FieldBoxID, field.TypeString, value)
		_node.BoxID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(rewardevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(rewardevent.FieldTier, field.TypeString, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.RewardDescription(); ok {
		_spec.SetField(rewardevent.FieldRewardDescription, field.TypeString, value)
		_node.RewardDescription = value
	}
	if value, ok := _c.mutation.RewardPoints(); ok {
		_spec.SetField(rewardevent.FieldRewardPoints, field.TypeInt, value)
		_node.RewardPoints = value
	}
	return _node, _spec
}

// RewardEventCreateBulk is the builder for creating many RewardEvent entities in bulk.
type RewardEventCreateBulk struct {
	config
	err      error
	builders []*RewardEventCreate
}

// Save creates the RewardEvent entities in the database.
func (_c *RewardEventCreateBulk) Save(ctx context.Context) ([]*RewardEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RewardEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RewardEventMutation)
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
func (_c *RewardEventCreateBulk) SaveX(ctx context.Context) []*RewardEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RewardEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RewardEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
