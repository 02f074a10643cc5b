// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencane/edged/ent/observabilitysample"
	"github.com/opencane/edged/ent/predicate"
)

// ObservabilitySampleUpdate is the builder for updating ObservabilitySample entities.
type ObservabilitySampleUpdate struct {
	config
	hooks    []Hook
	mutation *ObservabilitySampleMutation
}

// Where appends a list predicates to the ObservabilitySampleUpdate builder.
func (_u *ObservabilitySampleUpdate) Where(ps ...predicate.ObservabilitySample) *ObservabilitySampleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScope sets the "scope" field.
func (_u *ObservabilitySampleUpdate) SetScope(v string) *ObservabilitySampleUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *ObservabilitySampleUpdate) SetNillableScope(v *string) *ObservabilitySampleUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetCounters sets the "counters" field.
func (_u *ObservabilitySampleUpdate) SetCounters(v map[string]interface{}) *ObservabilitySampleUpdate {
	_u.mutation.SetCounters(v)
	return _u
}

// SetTsMs sets the "ts_ms" field.
func (_u *ObservabilitySampleUpdate) SetTsMs(v int64) *ObservabilitySampleUpdate {
	_u.mutation.ResetTsMs()
	_u.mutation.SetTsMs(v)
	return _u
}

// SetNillableTsMs sets the "ts_ms" field if the given value is not nil.
func (_u *ObservabilitySampleUpdate) SetNillableTsMs(v *int64) *ObservabilitySampleUpdate {
	if v != nil {
		_u.SetTsMs(*v)
	}
	return _u
}

// AddTsMs adds value to the "ts_ms" field.
func (_u *ObservabilitySampleUpdate) AddTsMs(v int64) *ObservabilitySampleUpdate {
	_u.mutation.AddTsMs(v)
	return _u
}

// Mutation returns the ObservabilitySampleMutation object of the builder.
func (_u *ObservabilitySampleUpdate) Mutation() *ObservabilitySampleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ObservabilitySampleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ObservabilitySampleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ObservabilitySampleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ObservabilitySampleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ObservabilitySampleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(observabilitysample.Table, observabilitysample.Columns, sqlgraph.NewFieldSpec(observabilitysample.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(observabilitysample.FieldScope, field.TypeString, value)
	}
	if value, ok := _u.mutation.Counters(); ok {
		_spec.SetField(observabilitysample.FieldCounters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.TsMs(); ok {
		_spec.SetField(observabilitysample.FieldTsMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTsMs(); ok {
		_spec.AddField(observabilitysample.FieldTsMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{observabilitysample.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ObservabilitySampleUpdateOne is the builder for updating a single ObservabilitySample entity.
type ObservabilitySampleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ObservabilitySampleMutation
}

// SetScope sets the "scope" field.
func (_u *ObservabilitySampleUpdateOne) SetScope(v string) *ObservabilitySampleUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *ObservabilitySampleUpdateOne) SetNillableScope(v *string) *ObservabilitySampleUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetCounters sets the "counters" field.
func (_u *ObservabilitySampleUpdateOne) SetCounters(v map[string]interface{}) *ObservabilitySampleUpdateOne {
	_u.mutation.SetCounters(v)
	return _u
}

// SetTsMs sets the "ts_ms" field.
func (_u *ObservabilitySampleUpdateOne) SetTsMs(v int64) *ObservabilitySampleUpdateOne {
	_u.mutation.ResetTsMs()
	_u.mutation.SetTsMs(v)
	return _u
}

// SetNillableTsMs sets the "ts_ms" field if the given value is not nil.
func (_u *ObservabilitySampleUpdateOne) SetNillableTsMs(v *int64) *ObservabilitySampleUpdateOne {
	if v != nil {
		_u.SetTsMs(*v)
	}
	return _u
}

// AddTsMs adds value to the "ts_ms" field.
func (_u *ObservabilitySampleUpdateOne) AddTsMs(v int64) *ObservabilitySampleUpdateOne {
	_u.mutation.AddTsMs(v)
	return _u
}

// Mutation returns the ObservabilitySampleMutation object of the builder.
func (_u *ObservabilitySampleUpdateOne) Mutation() *ObservabilitySampleMutation {
	return _u.mutation
}

// Where appends a list predicates to the ObservabilitySampleUpdate builder.
func (_u *ObservabilitySampleUpdateOne) Where(ps ...predicate.ObservabilitySample) *ObservabilitySampleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ObservabilitySampleUpdateOne) Select(field string, fields ...string) *ObservabilitySampleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ObservabilitySample entity.
func (_u *ObservabilitySampleUpdateOne) Save(ctx context.Context) (*ObservabilitySample, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ObservabilitySampleUpdateOne) SaveX(ctx context.Context) *ObservabilitySample {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ObservabilitySampleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ObservabilitySampleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ObservabilitySampleUpdateOne) sqlSave(ctx context.Context) (_node *ObservabilitySample, err error) {
	_spec := sqlgraph.NewUpdateSpec(observabilitysample.Table, observabilitysample.Columns, sqlgraph.NewFieldSpec(observabilitysample.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ObservabilitySample.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, observabilitysample.FieldID)
		for _, f := range fields {
			if !observabilitysample.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != observabilitysample.FieldID {
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
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(observabilitysample.FieldScope, field.TypeString, value)
	}
	if value, ok := _u.mutation.Counters(); ok {
		_spec.SetField(observabilitysample.FieldCounters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.TsMs(); ok {
		_spec.SetField(observabilitysample.FieldTsMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTsMs(); ok {
		_spec.AddField(observabilitysample.FieldTsMs, field.TypeInt64, value)
	}
	_node = &ObservabilitySample{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{observabilitysample.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
