// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencane/edged/ent/deviceoperation"
	"github.com/opencane/edged/ent/predicate"
)

// DeviceOperationUpdate is the builder for updating DeviceOperation entities.
type DeviceOperationUpdate struct {
	config
	hooks    []Hook
	mutation *DeviceOperationMutation
}

// Where appends a list predicates to the DeviceOperationUpdate builder.
func (_u *DeviceOperationUpdate) Where(ps ...predicate.DeviceOperation) *DeviceOperationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDeviceID sets the "device_id" field.
func (_u *DeviceOperationUpdate) SetDeviceID(v string) *DeviceOperationUpdate {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *DeviceOperationUpdate) SetNillableDeviceID(v *string) *DeviceOperationUpdate {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *DeviceOperationUpdate) SetSessionID(v string) *DeviceOperationUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DeviceOperationUpdate) SetNillableSessionID(v *string) *DeviceOperationUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *DeviceOperationUpdate) ClearSessionID() *DeviceOperationUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetOpType sets the "op_type" field.
func (_u *DeviceOperationUpdate) SetOpType(v string) *DeviceOperationUpdate {
	_u.mutation.SetOpType(v)
	return _u
}

// SetNillableOpType sets the "op_type" field if the given value is not nil.
func (_u *DeviceOperationUpdate) SetNillableOpType(v *string) *DeviceOperationUpdate {
	if v != nil {
		_u.SetOpType(*v)
	}
	return _u
}

// SetCommandType sets the "command_type" field.
func (_u *DeviceOperationUpdate) SetCommandType(v string) *DeviceOperationUpdate {
	_u.mutation.SetCommandType(v)
	return _u
}

// SetNillableCommandType sets the "command_type" field if the given value is not nil.
func (_u *DeviceOperationUpdate) SetNillableCommandType(v *string) *DeviceOperationUpdate {
	if v != nil {
		_u.SetCommandType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DeviceOperationUpdate) SetStatus(v deviceoperation.Status) *DeviceOperationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DeviceOperationUpdate) SetNillableStatus(v *deviceoperation.Status) *DeviceOperationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *DeviceOperationUpdate) SetPayload(v map[string]interface{}) *DeviceOperationUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *DeviceOperationUpdate) ClearPayload() *DeviceOperationUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetResult sets the "result" field.
func (_u *DeviceOperationUpdate) SetResult(v map[string]interface{}) *DeviceOperationUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *DeviceOperationUpdate) ClearResult() *DeviceOperationUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DeviceOperationUpdate) SetErrorMessage(v string) *DeviceOperationUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DeviceOperationUpdate) SetNillableErrorMessage(v *string) *DeviceOperationUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DeviceOperationUpdate) ClearErrorMessage() *DeviceOperationUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_u *DeviceOperationUpdate) SetCreatedAtMs(v int64) *DeviceOperationUpdate {
	_u.mutation.ResetCreatedAtMs()
	_u.mutation.SetCreatedAtMs(v)
	return _u
}

// SetNillableCreatedAtMs sets the "created_at_ms" field if the given value is not nil.
func (_u *DeviceOperationUpdate) SetNillableCreatedAtMs(v *int64) *DeviceOperationUpdate {
	if v != nil {
		_u.SetCreatedAtMs(*v)
	}
	return _u
}

// AddCreatedAtMs adds value to the "created_at_ms" field.
func (_u *DeviceOperationUpdate) AddCreatedAtMs(v int64) *DeviceOperationUpdate {
	_u.mutation.AddCreatedAtMs(v)
	return _u
}

// SetSentAtMs sets the "sent_at_ms" field.
func (_u *DeviceOperationUpdate) SetSentAtMs(v int64) *DeviceOperationUpdate {
	_u.mutation.ResetSentAtMs()
	_u.mutation.SetSentAtMs(v)
	return _u
}

// SetNillableSentAtMs sets the "sent_at_ms" field if the given value is not nil.
func (_u *DeviceOperationUpdate) SetNillableSentAtMs(v *int64) *DeviceOperationUpdate {
	if v != nil {
		_u.SetSentAtMs(*v)
	}
	return _u
}

// AddSentAtMs adds value to the "sent_at_ms" field.
func (_u *DeviceOperationUpdate) AddSentAtMs(v int64) *DeviceOperationUpdate {
	_u.mutation.AddSentAtMs(v)
	return _u
}

// ClearSentAtMs clears the value of the "sent_at_ms" field.
func (_u *DeviceOperationUpdate) ClearSentAtMs() *DeviceOperationUpdate {
	_u.mutation.ClearSentAtMs()
	return _u
}

// SetAckedAtMs sets the "acked_at_ms" field.
func (_u *DeviceOperationUpdate) SetAckedAtMs(v int64) *DeviceOperationUpdate {
	_u.mutation.ResetAckedAtMs()
	_u.mutation.SetAckedAtMs(v)
	return _u
}

// SetNillableAckedAtMs sets the "acked_at_ms" field if the given value is not nil.
func (_u *DeviceOperationUpdate) SetNillableAckedAtMs(v *int64) *DeviceOperationUpdate {
	if v != nil {
		_u.SetAckedAtMs(*v)
	}
	return _u
}

// AddAckedAtMs adds value to the "acked_at_ms" field.
func (_u *DeviceOperationUpdate) AddAckedAtMs(v int64) *DeviceOperationUpdate {
	_u.mutation.AddAckedAtMs(v)
	return _u
}

// ClearAckedAtMs clears the value of the "acked_at_ms" field.
func (_u *DeviceOperationUpdate) ClearAckedAtMs() *DeviceOperationUpdate {
	_u.mutation.ClearAckedAtMs()
	return _u
}

// Mutation returns the DeviceOperationMutation object of the builder.
func (_u *DeviceOperationUpdate) Mutation() *DeviceOperationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeviceOperationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeviceOperationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeviceOperationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeviceOperationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeviceOperationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := deviceoperation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DeviceOperation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DeviceOperationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deviceoperation.Table, deviceoperation.Columns, sqlgraph.NewFieldSpec(deviceoperation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DeviceID(); ok {
		_spec.SetField(deviceoperation.FieldDeviceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(deviceoperation.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(deviceoperation.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.OpType(); ok {
		_spec.SetField(deviceoperation.FieldOpType, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommandType(); ok {
		_spec.SetField(deviceoperation.FieldCommandType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(deviceoperation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(deviceoperation.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(deviceoperation.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(deviceoperation.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(deviceoperation.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(deviceoperation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(deviceoperation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAtMs(); ok {
		_spec.SetField(deviceoperation.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCreatedAtMs(); ok {
		_spec.AddField(deviceoperation.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SentAtMs(); ok {
		_spec.SetField(deviceoperation.FieldSentAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSentAtMs(); ok {
		_spec.AddField(deviceoperation.FieldSentAtMs, field.TypeInt64, value)
	}
	if _u.mutation.SentAtMsCleared() {
		_spec.ClearField(deviceoperation.FieldSentAtMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.AckedAtMs(); ok {
		_spec.SetField(deviceoperation.FieldAckedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAckedAtMs(); ok {
		_spec.AddField(deviceoperation.FieldAckedAtMs, field.TypeInt64, value)
	}
	if _u.mutation.AckedAtMsCleared() {
		_spec.ClearField(deviceoperation.FieldAckedAtMs, field.TypeInt64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deviceoperation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeviceOperationUpdateOne is the builder for updating a single DeviceOperation entity.
type DeviceOperationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeviceOperationMutation
}

// SetDeviceID sets the "device_id" field.
func (_u *DeviceOperationUpdateOne) SetDeviceID(v string) *DeviceOperationUpdateOne {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *DeviceOperationUpdateOne) SetNillableDeviceID(v *string) *DeviceOperationUpdateOne {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *DeviceOperationUpdateOne) SetSessionID(v string) *DeviceOperationUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DeviceOperationUpdateOne) SetNillableSessionID(v *string) *DeviceOperationUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *DeviceOperationUpdateOne) ClearSessionID() *DeviceOperationUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetOpType sets the "op_type" field.
func (_u *DeviceOperationUpdateOne) SetOpType(v string) *DeviceOperationUpdateOne {
	_u.mutation.SetOpType(v)
	return _u
}

// SetNillableOpType sets the "op_type" field if the given value is not nil.
func (_u *DeviceOperationUpdateOne) SetNillableOpType(v *string) *DeviceOperationUpdateOne {
	if v != nil {
		_u.SetOpType(*v)
	}
	return _u
}

// SetCommandType sets the "command_type" field.
func (_u *DeviceOperationUpdateOne) SetCommandType(v string) *DeviceOperationUpdateOne {
	_u.mutation.SetCommandType(v)
	return _u
}

// SetNillableCommandType sets the "command_type" field if the given value is not nil.
func (_u *DeviceOperationUpdateOne) SetNillableCommandType(v *string) *DeviceOperationUpdateOne {
	if v != nil {
		_u.SetCommandType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DeviceOperationUpdateOne) SetStatus(v deviceoperation.Status) *DeviceOperationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DeviceOperationUpdateOne) SetNillableStatus(v *deviceoperation.Status) *DeviceOperationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *DeviceOperationUpdateOne) SetPayload(v map[string]interface{}) *DeviceOperationUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *DeviceOperationUpdateOne) ClearPayload() *DeviceOperationUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetResult sets the "result" field.
func (_u *DeviceOperationUpdateOne) SetResult(v map[string]interface{}) *DeviceOperationUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *DeviceOperationUpdateOne) ClearResult() *DeviceOperationUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DeviceOperationUpdateOne) SetErrorMessage(v string) *DeviceOperationUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DeviceOperationUpdateOne) SetNillableErrorMessage(v *string) *DeviceOperationUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DeviceOperationUpdateOne) ClearErrorMessage() *DeviceOperationUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_u *DeviceOperationUpdateOne) SetCreatedAtMs(v int64) *DeviceOperationUpdateOne {
	_u.mutation.ResetCreatedAtMs()
	_u.mutation.SetCreatedAtMs(v)
	return _u
}

// SetNillableCreatedAtMs sets the "created_at_ms" field if the given value is not nil.
func (_u *DeviceOperationUpdateOne) SetNillableCreatedAtMs(v *int64) *DeviceOperationUpdateOne {
	if v != nil {
		_u.SetCreatedAtMs(*v)
	}
	return _u
}

// AddCreatedAtMs adds value to the "created_at_ms" field.
func (_u *DeviceOperationUpdateOne) AddCreatedAtMs(v int64) *DeviceOperationUpdateOne {
	_u.mutation.AddCreatedAtMs(v)
	return _u
}

// SetSentAtMs sets the "sent_at_ms" field.
func (_u *DeviceOperationUpdateOne) SetSentAtMs(v int64) *DeviceOperationUpdateOne {
	_u.mutation.ResetSentAtMs()
	_u.mutation.SetSentAtMs(v)
	return _u
}

// SetNillableSentAtMs sets the "sent_at_ms" field if the given value is not nil.
func (_u *DeviceOperationUpdateOne) SetNillableSentAtMs(v *int64) *DeviceOperationUpdateOne {
	if v != nil {
		_u.SetSentAtMs(*v)
	}
	return _u
}

// AddSentAtMs adds value to the "sent_at_ms" field.
func (_u *DeviceOperationUpdateOne) AddSentAtMs(v int64) *DeviceOperationUpdateOne {
	_u.mutation.AddSentAtMs(v)
	return _u
}

// ClearSentAtMs clears the value of the "sent_at_ms" field.
func (_u *DeviceOperationUpdateOne) ClearSentAtMs() *DeviceOperationUpdateOne {
	_u.mutation.ClearSentAtMs()
	return _u
}

// SetAckedAtMs sets the "acked_at_ms" field.
func (_u *DeviceOperationUpdateOne) SetAckedAtMs(v int64) *DeviceOperationUpdateOne {
	_u.mutation.ResetAckedAtMs()
	_u.mutation.SetAckedAtMs(v)
	return _u
}

// SetNillableAckedAtMs sets the "acked_at_ms" field if the given value is not nil.
func (_u *DeviceOperationUpdateOne) SetNillableAckedAtMs(v *int64) *DeviceOperationUpdateOne {
	if v != nil {
		_u.SetAckedAtMs(*v)
	}
	return _u
}

// AddAckedAtMs adds value to the "acked_at_ms" field.
func (_u *DeviceOperationUpdateOne) AddAckedAtMs(v int64) *DeviceOperationUpdateOne {
	_u.mutation.AddAckedAtMs(v)
	return _u
}

// ClearAckedAtMs clears the value of the "acked_at_ms" field.
func (_u *DeviceOperationUpdateOne) ClearAckedAtMs() *DeviceOperationUpdateOne {
	_u.mutation.ClearAckedAtMs()
	return _u
}

// Mutation returns the DeviceOperationMutation object of the builder.
func (_u *DeviceOperationUpdateOne) Mutation() *DeviceOperationMutation {
	return _u.mutation
}

// Where appends a list predicates to the DeviceOperationUpdate builder.
func (_u *DeviceOperationUpdateOne) Where(ps ...predicate.DeviceOperation) *DeviceOperationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeviceOperationUpdateOne) Select(field string, fields ...string) *DeviceOperationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DeviceOperation entity.
func (_u *DeviceOperationUpdateOne) Save(ctx context.Context) (*DeviceOperation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeviceOperationUpdateOne) SaveX(ctx context.Context) *DeviceOperation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeviceOperationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeviceOperationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeviceOperationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := deviceoperation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DeviceOperation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DeviceOperationUpdateOne) sqlSave(ctx context.Context) (_node *DeviceOperation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deviceoperation.Table, deviceoperation.Columns, sqlgraph.NewFieldSpec(deviceoperation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DeviceOperation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deviceoperation.FieldID)
		for _, f := range fields {
			if !deviceoperation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deviceoperation.FieldID {
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
	if value, ok := _u.mutation.DeviceID(); ok {
		_spec.SetField(deviceoperation.FieldDeviceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(deviceoperation.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(deviceoperation.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.OpType(); ok {
		_spec.SetField(deviceoperation.FieldOpType, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommandType(); ok {
		_spec.SetField(deviceoperation.FieldCommandType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(deviceoperation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(deviceoperation.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(deviceoperation.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(deviceoperation.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(deviceoperation.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(deviceoperation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(deviceoperation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAtMs(); ok {
		_spec.SetField(deviceoperation.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCreatedAtMs(); ok {
		_spec.AddField(deviceoperation.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SentAtMs(); ok {
		_spec.SetField(deviceoperation.FieldSentAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSentAtMs(); ok {
		_spec.AddField(deviceoperation.FieldSentAtMs, field.TypeInt64, value)
	}
	if _u.mutation.SentAtMsCleared() {
		_spec.ClearField(deviceoperation.FieldSentAtMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.AckedAtMs(); ok {
		_spec.SetField(deviceoperation.FieldAckedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAckedAtMs(); ok {
		_spec.AddField(deviceoperation.FieldAckedAtMs, field.TypeInt64, value)
	}
	if _u.mutation.AckedAtMsCleared() {
		_spec.ClearField(deviceoperation.FieldAckedAtMs, field.TypeInt64)
	}
	_node = &DeviceOperation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deviceoperation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
