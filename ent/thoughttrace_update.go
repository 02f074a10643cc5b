// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencane/edged/ent/predicate"
	"github.com/opencane/edged/ent/thoughttrace"
)

// ThoughtTraceUpdate is the builder for updating ThoughtTrace entities.
type ThoughtTraceUpdate struct {
	config
	hooks    []Hook
	mutation *ThoughtTraceMutation
}

// Where appends a list predicates to the ThoughtTraceUpdate builder.
func (_u *ThoughtTraceUpdate) Where(ps ...predicate.ThoughtTrace) *ThoughtTraceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTraceID sets the "trace_id" field.
func (_u *ThoughtTraceUpdate) SetTraceID(v string) *ThoughtTraceUpdate {
	_u.mutation.SetTraceID(v)
	return _u
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_u *ThoughtTraceUpdate) SetNillableTraceID(v *string) *ThoughtTraceUpdate {
	if v != nil {
		_u.SetTraceID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ThoughtTraceUpdate) SetSessionID(v string) *ThoughtTraceUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ThoughtTraceUpdate) SetNillableSessionID(v *string) *ThoughtTraceUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ThoughtTraceUpdate) SetSource(v string) *ThoughtTraceUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ThoughtTraceUpdate) SetNillableSource(v *string) *ThoughtTraceUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *ThoughtTraceUpdate) SetStage(v string) *ThoughtTraceUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ThoughtTraceUpdate) SetNillableStage(v *string) *ThoughtTraceUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ThoughtTraceUpdate) SetPayload(v map[string]interface{}) *ThoughtTraceUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *ThoughtTraceUpdate) ClearPayload() *ThoughtTraceUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetTsMs sets the "ts_ms" field.
func (_u *ThoughtTraceUpdate) SetTsMs(v int64) *ThoughtTraceUpdate {
	_u.mutation.ResetTsMs()
	_u.mutation.SetTsMs(v)
	return _u
}

// SetNillableTsMs sets the "ts_ms" field if the given value is not nil.
func (_u *ThoughtTraceUpdate) SetNillableTsMs(v *int64) *ThoughtTraceUpdate {
	if v != nil {
		_u.SetTsMs(*v)
	}
	return _u
}

// AddTsMs adds value to the "ts_ms" field.
func (_u *ThoughtTraceUpdate) AddTsMs(v int64) *ThoughtTraceUpdate {
	_u.mutation.AddTsMs(v)
	return _u
}

// Mutation returns the ThoughtTraceMutation object of the builder.
func (_u *ThoughtTraceUpdate) Mutation() *ThoughtTraceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ThoughtTraceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ThoughtTraceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ThoughtTraceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ThoughtTraceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ThoughtTraceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(thoughttrace.Table, thoughttrace.Columns, sqlgraph.NewFieldSpec(thoughttrace.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TraceID(); ok {
		_spec.SetField(thoughttrace.FieldTraceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(thoughttrace.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(thoughttrace.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(thoughttrace.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(thoughttrace.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(thoughttrace.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.TsMs(); ok {
		_spec.SetField(thoughttrace.FieldTsMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTsMs(); ok {
		_spec.AddField(thoughttrace.FieldTsMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{thoughttrace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ThoughtTraceUpdateOne is the builder for updating a single ThoughtTrace entity.
type ThoughtTraceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ThoughtTraceMutation
}

// SetTraceID sets the "trace_id" field.
func (_u *ThoughtTraceUpdateOne) SetTraceID(v string) *ThoughtTraceUpdateOne {
	_u.mutation.SetTraceID(v)
	return _u
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_u *ThoughtTraceUpdateOne) SetNillableTraceID(v *string) *ThoughtTraceUpdateOne {
	if v != nil {
		_u.SetTraceID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ThoughtTraceUpdateOne) SetSessionID(v string) *ThoughtTraceUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ThoughtTraceUpdateOne) SetNillableSessionID(v *string) *ThoughtTraceUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ThoughtTraceUpdateOne) SetSource(v string) *ThoughtTraceUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ThoughtTraceUpdateOne) SetNillableSource(v *string) *ThoughtTraceUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *ThoughtTraceUpdateOne) SetStage(v string) *ThoughtTraceUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ThoughtTraceUpdateOne) SetNillableStage(v *string) *ThoughtTraceUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ThoughtTraceUpdateOne) SetPayload(v map[string]interface{}) *ThoughtTraceUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *ThoughtTraceUpdateOne) ClearPayload() *ThoughtTraceUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetTsMs sets the "ts_ms" field.
func (_u *ThoughtTraceUpdateOne) SetTsMs(v int64) *ThoughtTraceUpdateOne {
	_u.mutation.ResetTsMs()
	_u.mutation.SetTsMs(v)
	return _u
}

// SetNillableTsMs sets the "ts_ms" field if the given value is not nil.
func (_u *ThoughtTraceUpdateOne) SetNillableTsMs(v *int64) *ThoughtTraceUpdateOne {
	if v != nil {
		_u.SetTsMs(*v)
	}
	return _u
}

// AddTsMs adds value to the "ts_ms" field.
func (_u *ThoughtTraceUpdateOne) AddTsMs(v int64) *ThoughtTraceUpdateOne {
	_u.mutation.AddTsMs(v)
	return _u
}

// Mutation returns the ThoughtTraceMutation object of the builder.
func (_u *ThoughtTraceUpdateOne) Mutation() *ThoughtTraceMutation {
	return _u.mutation
}

// Where appends a list predicates to the ThoughtTraceUpdate builder.
func (_u *ThoughtTraceUpdateOne) Where(ps ...predicate.ThoughtTrace) *ThoughtTraceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ThoughtTraceUpdateOne) Select(field string, fields ...string) *ThoughtTraceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ThoughtTrace entity.
func (_u *ThoughtTraceUpdateOne) Save(ctx context.Context) (*ThoughtTrace, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ThoughtTraceUpdateOne) SaveX(ctx context.Context) *ThoughtTrace {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ThoughtTraceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ThoughtTraceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ThoughtTraceUpdateOne) sqlSave(ctx context.Context) (_node *ThoughtTrace, err error) {
	_spec := sqlgraph.NewUpdateSpec(thoughttrace.Table, thoughttrace.Columns, sqlgraph.NewFieldSpec(thoughttrace.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ThoughtTrace.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, thoughttrace.FieldID)
		for _, f := range fields {
			if !thoughttrace.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != thoughttrace.FieldID {
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
	if value, ok := _u.mutation.TraceID(); ok {
		_spec.SetField(thoughttrace.FieldTraceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(thoughttrace.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(thoughttrace.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(thoughttrace.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(thoughttrace.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(thoughttrace.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.TsMs(); ok {
		_spec.SetField(thoughttrace.FieldTsMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTsMs(); ok {
		_spec.AddField(thoughttrace.FieldTsMs, field.TypeInt64, value)
	}
	_node = &ThoughtTrace{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{thoughttrace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
