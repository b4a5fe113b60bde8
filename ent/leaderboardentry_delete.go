// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sahajm/quizdeck/ent/leaderboardentry"
	"github.com/sahajm/quizdeck/ent/predicate"
)

// LeaderboardEntryDelete is the builder for deleting a LeaderboardEntry entity.
type LeaderboardEntryDelete struct {
	config
	hooks    []Hook
	mutation *LeaderboardEntryMutation
}

// Where appends a list predicates to the LeaderboardEntryDelete builder.
func (_d *LeaderboardEntryDelete) Where(ps ...predicate.LeaderboardEntry) *LeaderboardEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LeaderboardEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LeaderboardEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LeaderboardEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(leaderboardentry.Table, sqlgraph.NewFieldSpec(leaderboardentry.FieldID, field.TypeInt))
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

// LeaderboardEntryDeleteOne is the builder for deleting a single LeaderboardEntry entity.
type LeaderboardEntryDeleteOne struct {
	_d *LeaderboardEntryDelete
}

// Where appends a list predicates to the LeaderboardEntryDelete builder.
func (_d *LeaderboardEntryDeleteOne) Where(ps ...predicate.LeaderboardEntry) *LeaderboardEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LeaderboardEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{leaderboardentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LeaderboardEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
