// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/opencane/edged/ent/digitaltask"
	"github.com/opencane/edged/ent/predicate"
)

// DigitalTaskUpdate is the builder for updating DigitalTask entities.
type DigitalTaskUpdate struct {
	config
	hooks    []Hook
	mutation *DigitalTaskMutation
}

// Where appends a list predicates to the DigitalTaskUpdate builder.
func (_u *DigitalTaskUpdate) Where(ps ...predicate.DigitalTask) *DigitalTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *DigitalTaskUpdate) SetSessionID(v string) *DigitalTaskUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DigitalTaskUpdate) SetNillableSessionID(v *string) *DigitalTaskUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDeviceID sets the "device_id" field.
func (_u *DigitalTaskUpdate) SetDeviceID(v string) *DigitalTaskUpdate {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *DigitalTaskUpdate) SetNillableDeviceID(v *string) *DigitalTaskUpdate {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// ClearDeviceID clears the value of the "device_id" field.
func (_u *DigitalTaskUpdate) ClearDeviceID() *DigitalTaskUpdate {
	_u.mutation.ClearDeviceID()
	return _u
}

// SetGoal sets the "goal" field.
func (_u *DigitalTaskUpdate) SetGoal(v string) *DigitalTaskUpdate {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *DigitalTaskUpdate) SetNillableGoal(v *string) *DigitalTaskUpdate {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DigitalTaskUpdate) SetStatus(v digitaltask.Status) *DigitalTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DigitalTaskUpdate) SetNillableStatus(v *digitaltask.Status) *DigitalTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSteps sets the "steps" field.
func (_u *DigitalTaskUpdate) SetSteps(v []map[string]interface{}) *DigitalTaskUpdate {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *DigitalTaskUpdate) AppendSteps(v []map[string]interface{}) *DigitalTaskUpdate {
	_u.mutation.AppendSteps(v)
	return _u
}

// ClearSteps clears the value of the "steps" field.
func (_u *DigitalTaskUpdate) ClearSteps() *DigitalTaskUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// SetResult sets the "result" field.
func (_u *DigitalTaskUpdate) SetResult(v string) *DigitalTaskUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *DigitalTaskUpdate) SetNillableResult(v *string) *DigitalTaskUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *DigitalTaskUpdate) ClearResult() *DigitalTaskUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DigitalTaskUpdate) SetErrorMessage(v string) *DigitalTaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DigitalTaskUpdate) SetNillableErrorMessage(v *string) *DigitalTaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DigitalTaskUpdate) ClearErrorMessage() *DigitalTaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *DigitalTaskUpdate) SetTimeoutSeconds(v int) *DigitalTaskUpdate {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *DigitalTaskUpdate) SetNillableTimeoutSeconds(v *int) *DigitalTaskUpdate {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *DigitalTaskUpdate) AddTimeoutSeconds(v int) *DigitalTaskUpdate {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// SetPushContext sets the "push_context" field.
func (_u *DigitalTaskUpdate) SetPushContext(v map[string]interface{}) *DigitalTaskUpdate {
	_u.mutation.SetPushContext(v)
	return _u
}

// ClearPushContext clears the value of the "push_context" field.
func (_u *DigitalTaskUpdate) ClearPushContext() *DigitalTaskUpdate {
	_u.mutation.ClearPushContext()
	return _u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_u *DigitalTaskUpdate) SetCreatedAtMs(v int64) *DigitalTaskUpdate {
	_u.mutation.ResetCreatedAtMs()
	_u.mutation.SetCreatedAtMs(v)
	return _u
}

// SetNillableCreatedAtMs sets the "created_at_ms" field if the given value is not nil.
func (_u *DigitalTaskUpdate) SetNillableCreatedAtMs(v *int64) *DigitalTaskUpdate {
	if v != nil {
		_u.SetCreatedAtMs(*v)
	}
	return _u
}

// AddCreatedAtMs adds value to the "created_at_ms" field.
func (_u *DigitalTaskUpdate) AddCreatedAtMs(v int64) *DigitalTaskUpdate {
	_u.mutation.AddCreatedAtMs(v)
	return _u
}

// SetUpdatedAtMs sets the "updated_at_ms" field.
func (_u *DigitalTaskUpdate) SetUpdatedAtMs(v int64) *DigitalTaskUpdate {
	_u.mutation.ResetUpdatedAtMs()
	_u.mutation.SetUpdatedAtMs(v)
	return _u
}

// SetNillableUpdatedAtMs sets the "updated_at_ms" field if the given value is not nil.
func (_u *DigitalTaskUpdate) SetNillableUpdatedAtMs(v *int64) *DigitalTaskUpdate {
	if v != nil {
		_u.SetUpdatedAtMs(*v)
	}
	return _u
}

// AddUpdatedAtMs adds value to the "updated_at_ms" field.
func (_u *DigitalTaskUpdate) AddUpdatedAtMs(v int64) *DigitalTaskUpdate {
	_u.mutation.AddUpdatedAtMs(v)
	return _u
}

// SetCompletedAtMs sets the "completed_at_ms" field.
func (_u *DigitalTaskUpdate) SetCompletedAtMs(v int64) *DigitalTaskUpdate {
	_u.mutation.ResetCompletedAtMs()
	_u.mutation.SetCompletedAtMs(v)
	return _u
}

// SetNillableCompletedAtMs sets the "completed_at_ms" field if the given value is not nil.
func (_u *DigitalTaskUpdate) SetNillableCompletedAtMs(v *int64) *DigitalTaskUpdate {
	if v != nil {
		_u.SetCompletedAtMs(*v)
	}
	return _u
}

// AddCompletedAtMs adds value to the "completed_at_ms" field.
func (_u *DigitalTaskUpdate) AddCompletedAtMs(v int64) *DigitalTaskUpdate {
	_u.mutation.AddCompletedAtMs(v)
	return _u
}

// ClearCompletedAtMs clears the value of the "completed_at_ms" field.
func (_u *DigitalTaskUpdate) ClearCompletedAtMs() *DigitalTaskUpdate {
	_u.mutation.ClearCompletedAtMs()
	return _u
}

// Mutation returns the DigitalTaskMutation object of the builder.
func (_u *DigitalTaskUpdate) Mutation() *DigitalTaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DigitalTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DigitalTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DigitalTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DigitalTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DigitalTaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := digitaltask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DigitalTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DigitalTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(digitaltask.Table, digitaltask.Columns, sqlgraph.NewFieldSpec(digitaltask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(digitaltask.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeviceID(); ok {
		_spec.SetField(digitaltask.FieldDeviceID, field.TypeString, value)
	}
	if _u.mutation.DeviceIDCleared() {
		_spec.ClearField(digitaltask.FieldDeviceID, field.TypeString)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(digitaltask.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(digitaltask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(digitaltask.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, digitaltask.FieldSteps, value)
		})
	}
	if _u.mutation.StepsCleared() {
		_spec.ClearField(digitaltask.FieldSteps, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(digitaltask.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(digitaltask.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(digitaltask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(digitaltask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(digitaltask.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(digitaltask.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PushContext(); ok {
		_spec.SetField(digitaltask.FieldPushContext, field.TypeJSON, value)
	}
	if _u.mutation.PushContextCleared() {
		_spec.ClearField(digitaltask.FieldPushContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAtMs(); ok {
		_spec.SetField(digitaltask.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCreatedAtMs(); ok {
		_spec.AddField(digitaltask.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAtMs(); ok {
		_spec.SetField(digitaltask.FieldUpdatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUpdatedAtMs(); ok {
		_spec.AddField(digitaltask.FieldUpdatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CompletedAtMs(); ok {
		_spec.SetField(digitaltask.FieldCompletedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompletedAtMs(); ok {
		_spec.AddField(digitaltask.FieldCompletedAtMs, field.TypeInt64, value)
	}
	if _u.mutation.CompletedAtMsCleared() {
		_spec.ClearField(digitaltask.FieldCompletedAtMs, field.TypeInt64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{digitaltask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DigitalTaskUpdateOne is the builder for updating a single DigitalTask entity.
type DigitalTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DigitalTaskMutation
}

// SetSessionID sets the "session_id" field.
func (_u *DigitalTaskUpdateOne) SetSessionID(v string) *DigitalTaskUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DigitalTaskUpdateOne) SetNillableSessionID(v *string) *DigitalTaskUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDeviceID sets the "device_id" field.
func (_u *DigitalTaskUpdateOne) SetDeviceID(v string) *DigitalTaskUpdateOne {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *DigitalTaskUpdateOne) SetNillableDeviceID(v *string) *DigitalTaskUpdateOne {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// ClearDeviceID clears the value of the "device_id" field.
func (_u *DigitalTaskUpdateOne) ClearDeviceID() *DigitalTaskUpdateOne {
	_u.mutation.ClearDeviceID()
	return _u
}

// SetGoal sets the "goal" field.
func (_u *DigitalTaskUpdateOne) SetGoal(v string) *DigitalTaskUpdateOne {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *DigitalTaskUpdateOne) SetNillableGoal(v *string) *DigitalTaskUpdateOne {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DigitalTaskUpdateOne) SetStatus(v digitaltask.Status) *DigitalTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DigitalTaskUpdateOne) SetNillableStatus(v *digitaltask.Status) *DigitalTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSteps sets the "steps" field.
func (_u *DigitalTaskUpdateOne) SetSteps(v []map[string]interface{}) *DigitalTaskUpdateOne {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *DigitalTaskUpdateOne) AppendSteps(v []map[string]interface{}) *DigitalTaskUpdateOne {
	_u.mutation.AppendSteps(v)
	return _u
}

// ClearSteps clears the value of the "steps" field.
func (_u *DigitalTaskUpdateOne) ClearSteps() *DigitalTaskUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// SetResult sets the "result" field.
func (_u *DigitalTaskUpdateOne) SetResult(v string) *DigitalTaskUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *DigitalTaskUpdateOne) SetNillableResult(v *string) *DigitalTaskUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *DigitalTaskUpdateOne) ClearResult() *DigitalTaskUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DigitalTaskUpdateOne) SetErrorMessage(v string) *DigitalTaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DigitalTaskUpdateOne) SetNillableErrorMessage(v *string) *DigitalTaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DigitalTaskUpdateOne) ClearErrorMessage() *DigitalTaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *DigitalTaskUpdateOne) SetTimeoutSeconds(v int) *DigitalTaskUpdateOne {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *DigitalTaskUpdateOne) SetNillableTimeoutSeconds(v *int) *DigitalTaskUpdateOne {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *DigitalTaskUpdateOne) AddTimeoutSeconds(v int) *DigitalTaskUpdateOne {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// SetPushContext sets the "push_context" field.
func (_u *DigitalTaskUpdateOne) SetPushContext(v map[string]interface{}) *DigitalTaskUpdateOne {
	_u.mutation.SetPushContext(v)
	return _u
}

// ClearPushContext clears the value of the "push_context" field.
func (_u *DigitalTaskUpdateOne) ClearPushContext() *DigitalTaskUpdateOne {
	_u.mutation.ClearPushContext()
	return _u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_u *DigitalTaskUpdateOne) SetCreatedAtMs(v int64) *DigitalTaskUpdateOne {
	_u.mutation.ResetCreatedAtMs()
	_u.mutation.SetCreatedAtMs(v)
	return _u
}

// SetNillableCreatedAtMs sets the "created_at_ms" field if the given value is not nil.
func (_u *DigitalTaskUpdateOne) SetNillableCreatedAtMs(v *int64) *DigitalTaskUpdateOne {
	if v != nil {
		_u.SetCreatedAtMs(*v)
	}
	return _u
}

// AddCreatedAtMs adds value to the "created_at_ms" field.
func (_u *DigitalTaskUpdateOne) AddCreatedAtMs(v int64) *DigitalTaskUpdateOne {
	_u.mutation.AddCreatedAtMs(v)
	return _u
}

// SetUpdatedAtMs sets the "updated_at_ms" field.
func (_u *DigitalTaskUpdateOne) SetUpdatedAtMs(v int64) *DigitalTaskUpdateOne {
	_u.mutation.ResetUpdatedAtMs()
	_u.mutation.SetUpdatedAtMs(v)
	return _u
}

// SetNillableUpdatedAtMs sets the "updated_at_ms" field if the given value is not nil.
func (_u *DigitalTaskUpdateOne) SetNillableUpdatedAtMs(v *int64) *DigitalTaskUpdateOne {
	if v != nil {
		_u.SetUpdatedAtMs(*v)
	}
	return _u
}

// AddUpdatedAtMs adds value to the "updated_at_ms" field.
func (_u *DigitalTaskUpdateOne) AddUpdatedAtMs(v int64) *DigitalTaskUpdateOne {
	_u.mutation.AddUpdatedAtMs(v)
	return _u
}

// SetCompletedAtMs sets the "completed_at_ms" field.
func (_u *DigitalTaskUpdateOne) SetCompletedAtMs(v int64) *DigitalTaskUpdateOne {
	_u.mutation.ResetCompletedAtMs()
	_u.mutation.SetCompletedAtMs(v)
	return _u
}

// SetNillableCompletedAtMs sets the "completed_at_ms" field if the given value is not nil.
func (_u *DigitalTaskUpdateOne) SetNillableCompletedAtMs(v *int64) *DigitalTaskUpdateOne {
	if v != nil {
		_u.SetCompletedAtMs(*v)
	}
	return _u
}

// AddCompletedAtMs adds value to the "completed_at_ms" field.
func (_u *DigitalTaskUpdateOne) AddCompletedAtMs(v int64) *DigitalTaskUpdateOne {
	_u.mutation.AddCompletedAtMs(v)
	return _u
}

// ClearCompletedAtMs clears the value of the "completed_at_ms" field.
func (_u *DigitalTaskUpdateOne) ClearCompletedAtMs() *DigitalTaskUpdateOne {
	_u.mutation.ClearCompletedAtMs()
	return _u
}

// Mutation returns the DigitalTaskMutation object of the builder.
func (_u *DigitalTaskUpdateOne) Mutation() *DigitalTaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the DigitalTaskUpdate builder.
func (_u *DigitalTaskUpdateOne) Where(ps ...predicate.DigitalTask) *DigitalTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DigitalTaskUpdateOne) Select(field string, fields ...string) *DigitalTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DigitalTask entity.
func (_u *DigitalTaskUpdateOne) Save(ctx context.Context) (*DigitalTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DigitalTaskUpdateOne) SaveX(ctx context.Context) *DigitalTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DigitalTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DigitalTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DigitalTaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := digitaltask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DigitalTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DigitalTaskUpdateOne) sqlSave(ctx context.Context) (_node *DigitalTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(digitaltask.Table, digitaltask.Columns, sqlgraph.NewFieldSpec(digitaltask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DigitalTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, digitaltask.FieldID)
		for _, f := range fields {
			if !digitaltask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != digitaltask.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(digitaltask.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeviceID(); ok {
		_spec.SetField(digitaltask.FieldDeviceID, field.TypeString, value)
	}
	if _u.mutation.DeviceIDCleared() {
		_spec.ClearField(digitaltask.FieldDeviceID, field.TypeString)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(digitaltask.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(digitaltask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(digitaltask.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, digitaltask.FieldSteps, value)
		})
	}
	if _u.mutation.StepsCleared() {
		_spec.ClearField(digitaltask.FieldSteps, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(digitaltask.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(digitaltask.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(digitaltask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(digitaltask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(digitaltask.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(digitaltask.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PushContext(); ok {
		_spec.SetField(digitaltask.FieldPushContext, field.TypeJSON, value)
	}
	if _u.mutation.PushContextCleared() {
		_spec.ClearField(digitaltask.FieldPushContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAtMs(); ok {
		_spec.SetField(digitaltask.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCreatedAtMs(); ok {
		_spec.AddField(digitaltask.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAtMs(); ok {
		_spec.SetField(digitaltask.FieldUpdatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUpdatedAtMs(); ok {
		_spec.AddField(digitaltask.FieldUpdatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CompletedAtMs(); ok {
		_spec.SetField(digitaltask.FieldCompletedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompletedAtMs(); ok {
		_spec.AddField(digitaltask.FieldCompletedAtMs, field.TypeInt64, value)
	}
	if _u.mutation.CompletedAtMsCleared() {
		_spec.ClearField(digitaltask.FieldCompletedAtMs, field.TypeInt64)
	}
	_node = &DigitalTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{digitaltask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
