// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/sahajm/quizdeck/ent/leaderboardentry"
	"github.com/sahajm/quizdeck/ent/predicate"
)

// LeaderboardEntryUpdate is the builder for updating LeaderboardEntry entities.
type LeaderboardEntryUpdate struct {
	config
	hooks    []Hook
	mutation *LeaderboardEntryMutation
}

// Where appends a list predicates to the LeaderboardEntryUpdate builder.
func (_u *LeaderboardEntryUpdate) Where(ps ...predicate.LeaderboardEntry) *LeaderboardEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *LeaderboardEntryUpdate) SetName(v string) *LeaderboardEntryUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LeaderboardEntryUpdate) SetNillableName(v *string) *LeaderboardEntryUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *LeaderboardEntryUpdate) SetPoints(v int) *LeaderboardEntryUpdate {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *LeaderboardEntryUpdate) SetNillablePoints(v *int) *LeaderboardEntryUpdate {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *LeaderboardEntryUpdate) AddPoints(v int) *LeaderboardEntryUpdate {
	_u.mutation.AddPoints(v)
	return _u
}

// SetBadges sets the "badges" field.
func (_u *LeaderboardEntryUpdate) SetBadges(v []string) *LeaderboardEntryUpdate {
	_u.mutation.SetBadges(v)
	return _u
}

// AppendBadges appends value to the "badges" field.
func (_u *LeaderboardEntryUpdate) AppendBadges(v []string) *LeaderboardEntryUpdate {
	_u.mutation.AppendBadges(v)
	return _u
}

// ClearBadges clears the value of the "badges" field.
func (_u *LeaderboardEntryUpdate) ClearBadges() *LeaderboardEntryUpdate {
	_u.mutation.ClearBadges()
	return _u
}

// SetBoxCount sets the "box_count" field.
func (_u *LeaderboardEntryUpdate) SetBoxCount(v int) *LeaderboardEntryUpdate {
	_u.mutation.ResetBoxCount()
	_u.mutation.SetBoxCount(v)
	return _u
}

// SetNillableBoxCount sets the "box_count" field if the given value is not nil.
func (_u *LeaderboardEntryUpdate) SetNillableBoxCount(v *int) *LeaderboardEntryUpdate {
	if v != nil {
		_u.SetBoxCount(*v)
	}
	return _u
}

// AddBoxCount adds value to the "box_count" field.
func (_u *LeaderboardEntryUpdate) AddBoxCount(v int) *LeaderboardEntryUpdate {
	_u.mutation.AddBoxCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeaderboardEntryUpdate) SetUpdatedAt(v time.Time) *LeaderboardEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LeaderboardEntryMutation object of the builder.
func (_u *LeaderboardEntryUpdate) Mutation() *LeaderboardEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeaderboardEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeaderboardEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeaderboardEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeaderboardEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeaderboardEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := leaderboardentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeaderboardEntryUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := leaderboardentry.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "LeaderboardEntry.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Points(); ok {
		if err := leaderboardentry.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "LeaderboardEntry.points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BoxCount(); ok {
		if err := leaderboardentry.BoxCountValidator(v); err != nil {
			return &ValidationError{Name: "box_count", err: fmt.Errorf(`ent: validator failed for field "LeaderboardEntry.box_count": %w`, err)}
		}
	}
	return nil
}

func (_u *LeaderboardEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(leaderboardentry.Table, leaderboardentry.Columns, sqlgraph.NewFieldSpec(leaderboardentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(leaderboardentry.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(leaderboardentry.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(leaderboardentry.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Badges(); ok {
		_spec.SetField(leaderboardentry.FieldBadges, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBadges(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, leaderboardentry.FieldBadges, value)
		})
	}
	if _u.mutation.BadgesCleared() {
		_spec.ClearField(leaderboardentry.FieldBadges, field.TypeJSON)
	}
	if value, ok := _u.mutation.BoxCount(); ok {
		_spec.SetField(leaderboardentry.FieldBoxCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBoxCount(); ok {
		_spec.AddField(leaderboardentry.FieldBoxCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(leaderboardentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leaderboardentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeaderboardEntryUpdateOne is the builder for updating a single LeaderboardEntry entity.
type LeaderboardEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeaderboardEntryMutation
}

// SetName sets the "name" field.
func (_u *LeaderboardEntryUpdateOne) SetName(v string) *LeaderboardEntryUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LeaderboardEntryUpdateOne) SetNillableName(v *string) *LeaderboardEntryUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *LeaderboardEntryUpdateOne) SetPoints(v int) *LeaderboardEntryUpdateOne {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *LeaderboardEntryUpdateOne) SetNillablePoints(v *int) *LeaderboardEntryUpdateOne {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *LeaderboardEntryUpdateOne) AddPoints(v int) *LeaderboardEntryUpdateOne {
	_u.mutation.AddPoints(v)
	return _u
}

// SetBadges sets the "badges" field.
func (_u *LeaderboardEntryUpdateOne) SetBadges(v []string) *LeaderboardEntryUpdateOne {
	_u.mutation.SetBadges(v)
	return _u
}

// AppendBadges appends value to the "badges" field.
func (_u *LeaderboardEntryUpdateOne) AppendBadges(v []string) *LeaderboardEntryUpdateOne {
	_u.mutation.AppendBadges(v)
	return _u
}

// ClearBadges clears the value of the "badges" field.
func (_u *LeaderboardEntryUpdateOne) ClearBadges() *LeaderboardEntryUpdateOne {
	_u.mutation.ClearBadges()
	return _u
}

// SetBoxCount sets the "box_count" field.
func (_u *LeaderboardEntryUpdateOne) SetBoxCount(v int) *LeaderboardEntryUpdateOne {
	_u.mutation.ResetBoxCount()
	_u.mutation.SetBoxCount(v)
	return _u
}

// SetNillableBoxCount sets the "box_count" field if the given value is not nil.
func (_u *LeaderboardEntryUpdateOne) SetNillableBoxCount(v *int) *LeaderboardEntryUpdateOne {
	if v != nil {
		_u.SetBoxCount(*v)
	}
	return _u
}

// AddBoxCount adds value to the "box_count" field.
func (_u *LeaderboardEntryUpdateOne) AddBoxCount(v int) *LeaderboardEntryUpdateOne {
	_u.mutation.AddBoxCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeaderboardEntryUpdateOne) SetUpdatedAt(v time.Time) *LeaderboardEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LeaderboardEntryMutation object of the builder.
func (_u *LeaderboardEntryUpdateOne) Mutation() *LeaderboardEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the LeaderboardEntryUpdate builder.
func (_u *LeaderboardEntryUpdateOne) Where(ps ...predicate.LeaderboardEntry) *LeaderboardEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeaderboardEntryUpdateOne) Select(field string, fields ...string) *LeaderboardEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LeaderboardEntry entity.
func (_u *LeaderboardEntryUpdateOne) Save(ctx context.Context) (*LeaderboardEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeaderboardEntryUpdateOne) SaveX(ctx context.Context) *LeaderboardEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeaderboardEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeaderboardEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeaderboardEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := leaderboardentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeaderboardEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := leaderboardentry.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "LeaderboardEntry.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Points(); ok {
		if err := leaderboardentry.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "LeaderboardEntry.points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BoxCount(); ok {
		if err := leaderboardentry.BoxCountValidator(v); err != nil {
			return &ValidationError{Name: "box_count", err: fmt.Errorf(`ent: validator failed for field "LeaderboardEntry.box_count": %w`, err)}
		}
	}
	return nil
}

func (_u *LeaderboardEntryUpdateOne) sqlSave(ctx context.Context) (_node *LeaderboardEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(leaderboardentry.Table, leaderboardentry.Columns, sqlgraph.NewFieldSpec(leaderboardentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LeaderboardEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, leaderboardentry.FieldID)
		for _, f := range fields {
			if !leaderboardentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != leaderboardentry.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(leaderboardentry.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(leaderboardentry.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(leaderboardentry.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Badges(); ok {
		_spec.SetField(leaderboardentry.FieldBadges, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBadges(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, leaderboardentry.FieldBadges, value)
		})
	}
	if _u.mutation.BadgesCleared() {
		_spec.ClearField(leaderboardentry.FieldBadges, field.TypeJSON)
	}
	if value, ok := _u.mutation.BoxCount(); ok {
		_spec.SetField(leaderboardentry.FieldBoxCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBoxCount(); ok {
		_spec.AddField(leaderboardentry.FieldBoxCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(leaderboardentry.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LeaderboardEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leaderboardentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
