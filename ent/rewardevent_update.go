// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sahajm/quizdeck/ent/predicate"
	"github.com/sahajm/quizdeck/ent/rewardevent"
)

// RewardEventUpdate is the builder for updating RewardEvent entities.
type RewardEventUpdate struct {
	config
	hooks    []Hook
	mutation *RewardEventMutation
}

// Where appends a list predicates to the RewardEventUpdate builder.
func (_u *RewardEventUpdate) Where(ps ...predicate.RewardEvent) *RewardEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *RewardEventUpdate) SetProfileID(v string) *RewardEventUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableProfileID(v *string) *RewardEventUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetBoxID sets the "box_id" field.
func (_u *RewardEventUpdate) SetBoxID(v string) *RewardEventUpdate {
	_u.mutation.SetBoxID(v)
	return _u
}

// SetNillableBoxID sets the "box_id" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableBoxID(v *string) *RewardEventUpdate {
	if v != nil {
		_u.SetBoxID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *RewardEventUpdate) SetAction(v string) *RewardEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableAction(v *string) *RewardEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *RewardEventUpdate) SetTier(v string) *RewardEventUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableTier(v *string) *RewardEventUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetRewardDescription sets the "reward_description" field.
func (_u *RewardEventUpdate) SetRewardDescription(v string) *RewardEventUpdate {
	_u.mutation.SetRewardDescription(v)
	return _u
}

// SetNillableRewardDescription sets the "reward_description" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableRewardDescription(v *string) *RewardEventUpdate {
	if v != nil {
		_u.SetRewardDescription(*v)
	}
	return _u
}

// SetRewardPoints sets the "reward_points" field.
func (_u *RewardEventUpdate) SetRewardPoints(v int) *RewardEventUpdate {
	_u.mutation.ResetRewardPoints()
	_u.mutation.SetRewardPoints(v)
	return _u
}

// SetNillableRewardPoints sets the "reward_points" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableRewardPoints(v *int) *RewardEventUpdate {
	if v != nil {
		_u.SetRewardPoints(*v)
	}
	return _u
}

// AddRewardPoints adds value to the "reward_points" field.
func (_u *RewardEventUpdate) AddRewardPoints(v int) *RewardEventUpdate {
	_u.mutation.AddRewardPoints(v)
	return _u
}

// Mutation returns the RewardEventMutation object of the builder.
func (_u *RewardEventUpdate) Mutation() *RewardEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RewardEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RewardEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RewardEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RewardEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RewardEventUpdate) check() error {
	if v, ok := _u.mutation.ProfileID(); ok {
		if err := rewardevent.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.profile_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BoxID(); ok {
		if err := rewardevent.BoxIDValidator(v); err != nil {
			return &ValidationError{Name: "box_id", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.box_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := rewardevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := rewardevent.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *RewardEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rewardevent.Table, rewardevent.Columns, sqlgraph.NewFieldSpec(rewardevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(rewardevent.FieldProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BoxID(); ok {
		_spec.SetField(rewardevent.FieldBoxID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(rewardevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(rewardevent.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.RewardDescription(); ok {
		_spec.SetField(rewardevent.FieldRewardDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.RewardPoints(); ok {
		_spec.SetField(rewardevent.FieldRewardPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRewardPoints(); ok {
		_spec.AddField(rewardevent.FieldRewardPoints, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rewardevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RewardEventUpdateOne is the builder for updating a single RewardEvent entity.
type RewardEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RewardEventMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *RewardEventUpdateOne) SetProfileID(v string) *RewardEventUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableProfileID(v *string) *RewardEventUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetBoxID sets the "box_id" field.
func (_u *RewardEventUpdateOne) SetBoxID(v string) *RewardEventUpdateOne {
	_u.mutation.SetBoxID(v)
	return _u
}

// SetNillableBoxID sets the "box_id" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableBoxID(v *string) *RewardEventUpdateOne {
	if v != nil {
		_u.SetBoxID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *RewardEventUpdateOne) SetAction(v string) *RewardEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableAction(v *string) *RewardEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *RewardEventUpdateOne) SetTier(v string) *RewardEventUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableTier(v *string) *RewardEventUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetRewardDescription sets the "reward_description" field.
func (_u *RewardEventUpdateOne) SetRewardDescription(v string) *RewardEventUpdateOne {
	_u.mutation.SetRewardDescription(v)
	return _u
}

// SetNillableRewardDescription sets the "reward_description" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableRewardDescription(v *string) *RewardEventUpdateOne {
	if v != nil {
		_u.SetRewardDescription(*v)
	}
	return _u
}

// SetRewardPoints sets the "reward_points" field.
func (_u *RewardEventUpdateOne) SetRewardPoints(v int) *RewardEventUpdateOne {
	_u.mutation.ResetRewardPoints()
	_u.mutation.SetRewardPoints(v)
	return _u
}

// SetNillableRewardPoints sets the "reward_points" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableRewardPoints(v *int) *RewardEventUpdateOne {
	if v != nil {
		_u.SetRewardPoints(*v)
	}
	return _u
}

// AddRewardPoints adds value to the "reward_points" field.
func (_u *RewardEventUpdateOne) AddRewardPoints(v int) *RewardEventUpdateOne {
	_u.mutation.AddRewardPoints(v)
	return _u
}

// Mutation returns the RewardEventMutation object of the builder.
func (_u *RewardEventUpdateOne) Mutation() *RewardEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RewardEventUpdate builder.
func (_u *RewardEventUpdateOne) Where(ps ...predicate.RewardEvent) *RewardEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RewardEventUpdateOne) Select(field string, fields ...string) *RewardEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RewardEvent entity.
func (_u *RewardEventUpdateOne) Save(ctx context.Context) (*RewardEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RewardEventUpdateOne) SaveX(ctx context.Context) *RewardEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RewardEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RewardEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RewardEventUpdateOne) check() error {
	if v, ok := _u.mutation.ProfileID(); ok {
		if err := rewardevent.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.profile_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BoxID(); ok {
		if err := rewardevent.BoxIDValidator(v); err != nil {
			return &ValidationError{Name: "box_id", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.box_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := rewardevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := rewardevent.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *RewardEventUpdateOne) sqlSave(ctx context.Context) (_node *RewardEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rewardevent.Table, rewardevent.Columns, sqlgraph.NewFieldSpec(rewardevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RewardEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rewardevent.FieldID)
		for _, f := range fields {
			if !rewardevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rewardevent.FieldID {
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
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(rewardevent.FieldProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BoxID(); ok {
		_spec.SetField(rewardevent.FieldBoxID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(rewardevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(rewardevent.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.RewardDescription(); ok {
		_spec.SetField(rewardevent.FieldRewardDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.RewardPoints(); ok {
		_spec.SetField(rewardevent.FieldRewardPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRewardPoints(); ok {
		_spec.AddField(rewardevent.FieldRewardPoints, field.TypeInt, value)
	}
	_node = &RewardEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rewardevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
