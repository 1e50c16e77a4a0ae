// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bacdz/eduai/ent/gradebookentry"
	"github.com/bacdz/eduai/ent/predicate"
)

// GradebookEntryDelete is the builder for deleting a GradebookEntry entity.
type GradebookEntryDelete struct {
	config
	hooks    []Hook
	mutation *GradebookEntryMutation
}

// Where appends a list predicates to the GradebookEntryDelete builder.
func (_d *GradebookEntryDelete) Where(ps ...predicate.GradebookEntry) *GradebookEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GradebookEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GradebookEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GradebookEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(gradebookentry.Table, sqlgraph.NewFieldSpec(gradebookentry.FieldID, field.TypeInt))
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

// GradebookEntryDeleteOne is the builder for deleting a single GradebookEntry entity.
type GradebookEntryDeleteOne struct {
	_d *GradebookEntryDelete
}

// Where appends a list predicates to the GradebookEntryDelete builder.
func (_d *GradebookEntryDeleteOne) Where(ps ...predicate.GradebookEntry) *GradebookEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GradebookEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{gradebookentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GradebookEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
