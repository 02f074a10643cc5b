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
	"github.com/opencane/edged/ent/pushupdate"
)

// PushUpdateUpdate is the builder for updating PushUpdate entities.
type PushUpdateUpdate struct {
	config
	hooks    []Hook
	mutation *PushUpdateMutation
}

// Where appends a list predicates to the PushUpdateUpdate builder.
func (_u *PushUpdateUpdate) Where(ps ...predicate.PushUpdate) *PushUpdateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDeviceID sets the "device_id" field.
func (_u *PushUpdateUpdate) SetDeviceID(v string) *PushUpdateUpdate {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *PushUpdateUpdate) SetNillableDeviceID(v *string) *PushUpdateUpdate {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PushUpdateUpdate) SetSessionID(v string) *PushUpdateUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PushUpdateUpdate) SetNillableSessionID(v *string) *PushUpdateUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *PushUpdateUpdate) ClearSessionID() *PushUpdateUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *PushUpdateUpdate) SetTaskID(v string) *PushUpdateUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *PushUpdateUpdate) SetNillableTaskID(v *string) *PushUpdateUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetSendKey sets the "send_key" field.
func (_u *PushUpdateUpdate) SetSendKey(v string) *PushUpdateUpdate {
	_u.mutation.SetSendKey(v)
	return _u
}

// SetNillableSendKey sets the "send_key" field if the given value is not nil.
func (_u *PushUpdateUpdate) SetNillableSendKey(v *string) *PushUpdateUpdate {
	if v != nil {
		_u.SetSendKey(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *PushUpdateUpdate) SetPayload(v map[string]interface{}) *PushUpdateUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PushUpdateUpdate) SetStatus(v pushupdate.Status) *PushUpdateUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PushUpdateUpdate) SetNillableStatus(v *pushupdate.Status) *PushUpdateUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_u *PushUpdateUpdate) SetCreatedAtMs(v int64) *PushUpdateUpdate {
	_u.mutation.ResetCreatedAtMs()
	_u.mutation.SetCreatedAtMs(v)
	return _u
}

// SetNillableCreatedAtMs sets the "created_at_ms" field if the given value is not nil.
func (_u *PushUpdateUpdate) SetNillableCreatedAtMs(v *int64) *PushUpdateUpdate {
	if v != nil {
		_u.SetCreatedAtMs(*v)
	}
	return _u
}

// AddCreatedAtMs adds value to the "created_at_ms" field.
func (_u *PushUpdateUpdate) AddCreatedAtMs(v int64) *PushUpdateUpdate {
	_u.mutation.AddCreatedAtMs(v)
	return _u
}

// SetSentAtMs sets the "sent_at_ms" field.
func (_u *PushUpdateUpdate) SetSentAtMs(v int64) *PushUpdateUpdate {
	_u.mutation.ResetSentAtMs()
	_u.mutation.SetSentAtMs(v)
	return _u
}

// SetNillableSentAtMs sets the "sent_at_ms" field if the given value is not nil.
func (_u *PushUpdateUpdate) SetNillableSentAtMs(v *int64) *PushUpdateUpdate {
	if v != nil {
		_u.SetSentAtMs(*v)
	}
	return _u
}

// AddSentAtMs adds value to the "sent_at_ms" field.
func (_u *PushUpdateUpdate) AddSentAtMs(v int64) *PushUpdateUpdate {
	_u.mutation.AddSentAtMs(v)
	return _u
}

// ClearSentAtMs clears the value of the "sent_at_ms" field.
func (_u *PushUpdateUpdate) ClearSentAtMs() *PushUpdateUpdate {
	_u.mutation.ClearSentAtMs()
	return _u
}

// Mutation returns the PushUpdateMutation object of the builder.
func (_u *PushUpdateUpdate) Mutation() *PushUpdateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PushUpdateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PushUpdateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PushUpdateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PushUpdateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PushUpdateUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pushupdate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PushUpdate.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PushUpdateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pushupdate.Table, pushupdate.Columns, sqlgraph.NewFieldSpec(pushupdate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DeviceID(); ok {
		_spec.SetField(pushupdate.FieldDeviceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(pushupdate.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(pushupdate.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(pushupdate.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SendKey(); ok {
		_spec.SetField(pushupdate.FieldSendKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(pushupdate.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pushupdate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAtMs(); ok {
		_spec.SetField(pushupdate.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCreatedAtMs(); ok {
		_spec.AddField(pushupdate.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SentAtMs(); ok {
		_spec.SetField(pushupdate.FieldSentAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSentAtMs(); ok {
		_spec.AddField(pushupdate.FieldSentAtMs, field.TypeInt64, value)
	}
	if _u.mutation.SentAtMsCleared() {
		_spec.ClearField(pushupdate.FieldSentAtMs, field.TypeInt64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pushupdate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PushUpdateUpdateOne is the builder for updating a single PushUpdate entity.
type PushUpdateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PushUpdateMutation
}

// SetDeviceID sets the "device_id" field.
func (_u *PushUpdateUpdateOne) SetDeviceID(v string) *PushUpdateUpdateOne {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *PushUpdateUpdateOne) SetNillableDeviceID(v *string) *PushUpdateUpdateOne {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PushUpdateUpdateOne) SetSessionID(v string) *PushUpdateUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PushUpdateUpdateOne) SetNillableSessionID(v *string) *PushUpdateUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *PushUpdateUpdateOne) ClearSessionID() *PushUpdateUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *PushUpdateUpdateOne) SetTaskID(v string) *PushUpdateUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *PushUpdateUpdateOne) SetNillableTaskID(v *string) *PushUpdateUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetSendKey sets the "send_key" field.
func (_u *PushUpdateUpdateOne) SetSendKey(v string) *PushUpdateUpdateOne {
	_u.mutation.SetSendKey(v)
	return _u
}

// SetNillableSendKey sets the "send_key" field if the given value is not nil.
func (_u *PushUpdateUpdateOne) SetNillableSendKey(v *string) *PushUpdateUpdateOne {
	if v != nil {
		_u.SetSendKey(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *PushUpdateUpdateOne) SetPayload(v map[string]interface{}) *PushUpdateUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PushUpdateUpdateOne) SetStatus(v pushupdate.Status) *PushUpdateUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PushUpdateUpdateOne) SetNillableStatus(v *pushupdate.Status) *PushUpdateUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_u *PushUpdateUpdateOne) SetCreatedAtMs(v int64) *PushUpdateUpdateOne {
	_u.mutation.ResetCreatedAtMs()
	_u.mutation.SetCreatedAtMs(v)
	return _u
}

// SetNillableCreatedAtMs sets the "created_at_ms" field if the given value is not nil.
func (_u *PushUpdateUpdateOne) SetNillableCreatedAtMs(v *int64) *PushUpdateUpdateOne {
	if v != nil {
		_u.SetCreatedAtMs(*v)
	}
	return _u
}

// AddCreatedAtMs adds value to the "created_at_ms" field.
func (_u *PushUpdateUpdateOne) AddCreatedAtMs(v int64) *PushUpdateUpdateOne {
	_u.mutation.AddCreatedAtMs(v)
	return _u
}

// SetSentAtMs sets the "sent_at_ms" field.
func (_u *PushUpdateUpdateOne) SetSentAtMs(v int64) *PushUpdateUpdateOne {
	_u.mutation.ResetSentAtMs()
	_u.mutation.SetSentAtMs(v)
	return _u
}

// SetNillableSentAtMs sets the "sent_at_ms" field if the given value is not nil.
func (_u *PushUpdateUpdateOne) SetNillableSentAtMs(v *int64) *PushUpdateUpdateOne {
	if v != nil {
		_u.SetSentAtMs(*v)
	}
	return _u
}

// AddSentAtMs adds value to the "sent_at_ms" field.
func (_u *PushUpdateUpdateOne) AddSentAtMs(v int64) *PushUpdateUpdateOne {
	_u.mutation.AddSentAtMs(v)
	return _u
}

// ClearSentAtMs clears the value of the "sent_at_ms" field.
func (_u *PushUpdateUpdateOne) ClearSentAtMs() *PushUpdateUpdateOne {
	_u.mutation.ClearSentAtMs()
	return _u
}

// Mutation returns the PushUpdateMutation object of the builder.
func (_u *PushUpdateUpdateOne) Mutation() *PushUpdateMutation {
	return _u.mutation
}

// Where appends a list predicates to the PushUpdateUpdate builder.
func (_u *PushUpdateUpdateOne) Where(ps ...predicate.PushUpdate) *PushUpdateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PushUpdateUpdateOne) Select(field string, fields ...string) *PushUpdateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PushUpdate entity.
func (_u *PushUpdateUpdateOne) Save(ctx context.Context) (*PushUpdate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PushUpdateUpdateOne) SaveX(ctx context.Context) *PushUpdate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PushUpdateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PushUpdateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PushUpdateUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pushupdate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PushUpdate.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PushUpdateUpdateOne) sqlSave(ctx context.Context) (_node *PushUpdate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pushupdate.Table, pushupdate.Columns, sqlgraph.NewFieldSpec(pushupdate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PushUpdate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pushupdate.FieldID)
		for _, f := range fields {
			if !pushupdate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pushupdate.FieldID {
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
		_spec.SetField(pushupdate.FieldDeviceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(pushupdate.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(pushupdate.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(pushupdate.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SendKey(); ok {
		_spec.SetField(pushupdate.FieldSendKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(pushupdate.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pushupdate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAtMs(); ok {
		_spec.SetField(pushupdate.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCreatedAtMs(); ok {
		_spec.AddField(pushupdate.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SentAtMs(); ok {
		_spec.SetField(pushupdate.FieldSentAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSentAtMs(); ok {
		_spec.AddField(pushupdate.FieldSentAtMs, field.TypeInt64, value)
	}
	if _u.mutation.SentAtMsCleared() {
		_spec.ClearField(pushupdate.FieldSentAtMs, field.TypeInt64)
	}
	_node = &PushUpdate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pushupdate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
