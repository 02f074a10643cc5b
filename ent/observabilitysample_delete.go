// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencane/edged/ent/observabilitysample"
	"github.com/opencane/edged/ent/predicate"
)

// ObservabilitySampleDelete is the builder for deleting a ObservabilitySample entity.
type ObservabilitySampleDelete struct {
	config
	hooks    []Hook
	mutation *ObservabilitySampleMutation
}

// Where appends a list predicates to the ObservabilitySampleDelete builder.
func (_d *ObservabilitySampleDelete) Where(ps ...predicate.ObservabilitySample) *ObservabilitySampleDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ObservabilitySampleDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ObservabilitySampleDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ObservabilitySampleDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(observabilitysample.Table, sqlgraph.NewFieldSpec(observabilitysample.FieldID, field.TypeInt))
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

// ObservabilitySampleDeleteOne is the builder for deleting a single ObservabilitySample entity.
type ObservabilitySampleDeleteOne struct {
	_d *ObservabilitySampleDelete
}

// Where appends a list predicates to the ObservabilitySampleDelete builder.
func (_d *ObservabilitySampleDeleteOne) Where(ps ...predicate.ObservabilitySample) *ObservabilitySampleDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ObservabilitySampleDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{observabilitysample.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ObservabilitySampleDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
