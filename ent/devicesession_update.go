// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencane/edged/ent/devicesession"
	"github.com/opencane/edged/ent/predicate"
)

// DeviceSessionUpdate is the builder for updating DeviceSession entities.
type DeviceSessionUpdate struct {
	config
	hooks    []Hook
	mutation *DeviceSessionMutation
}

// Where appends a list predicates to the DeviceSessionUpdate builder.
func (_u *DeviceSessionUpdate) Where(ps ...predicate.DeviceSession) *DeviceSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDeviceID sets the "device_id" field.
func (_u *DeviceSessionUpdate) SetDeviceID(v string) *DeviceSessionUpdate {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *DeviceSessionUpdate) SetNillableDeviceID(v *string) *DeviceSessionUpdate {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *DeviceSessionUpdate) SetSessionID(v string) *DeviceSessionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DeviceSessionUpdate) SetNillableSessionID(v *string) *DeviceSessionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *DeviceSessionUpdate) SetState(v devicesession.State) *DeviceSessionUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *DeviceSessionUpdate) SetNillableState(v *devicesession.State) *DeviceSessionUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_u *DeviceSessionUpdate) SetCreatedAtMs(v int64) *DeviceSessionUpdate {
	_u.mutation.ResetCreatedAtMs()
	_u.mutation.SetCreatedAtMs(v)
	return _u
}

// SetNillableCreatedAtMs sets the "created_at_ms" field if the given value is not nil.
func (_u *DeviceSessionUpdate) SetNillableCreatedAtMs(v *int64) *DeviceSessionUpdate {
	if v != nil {
		_u.SetCreatedAtMs(*v)
	}
	return _u
}

// AddCreatedAtMs adds value to the "created_at_ms" field.
func (_u *DeviceSessionUpdate) AddCreatedAtMs(v int64) *DeviceSessionUpdate {
	_u.mutation.AddCreatedAtMs(v)
	return _u
}

// SetLastSeenMs sets the "last_seen_ms" field.
func (_u *DeviceSessionUpdate) SetLastSeenMs(v int64) *DeviceSessionUpdate {
	_u.mutation.ResetLastSeenMs()
	_u.mutation.SetLastSeenMs(v)
	return _u
}

// SetNillableLastSeenMs sets the "last_seen_ms" field if the given value is not nil.
func (_u *DeviceSessionUpdate) SetNillableLastSeenMs(v *int64) *DeviceSessionUpdate {
	if v != nil {
		_u.SetLastSeenMs(*v)
	}
	return _u
}

// AddLastSeenMs adds value to the "last_seen_ms" field.
func (_u *DeviceSessionUpdate) AddLastSeenMs(v int64) *DeviceSessionUpdate {
	_u.mutation.AddLastSeenMs(v)
	return _u
}

// SetLastInboundSeq sets the "last_inbound_seq" field.
func (_u *DeviceSessionUpdate) SetLastInboundSeq(v int64) *DeviceSessionUpdate {
	_u.mutation.ResetLastInboundSeq()
	_u.mutation.SetLastInboundSeq(v)
	return _u
}

// SetNillableLastInboundSeq sets the "last_inbound_seq" field if the given value is not nil.
func (_u *DeviceSessionUpdate) SetNillableLastInboundSeq(v *int64) *DeviceSessionUpdate {
	if v != nil {
		_u.SetLastInboundSeq(*v)
	}
	return _u
}

// AddLastInboundSeq adds value to the "last_inbound_seq" field.
func (_u *DeviceSessionUpdate) AddLastInboundSeq(v int64) *DeviceSessionUpdate {
	_u.mutation.AddLastInboundSeq(v)
	return _u
}

// SetLastOutboundSeq sets the "last_outbound_seq" field.
func (_u *DeviceSessionUpdate) SetLastOutboundSeq(v int64) *DeviceSessionUpdate {
	_u.mutation.ResetLastOutboundSeq()
	_u.mutation.SetLastOutboundSeq(v)
	return _u
}

// SetNillableLastOutboundSeq sets the "last_outbound_seq" field if the given value is not nil.
func (_u *DeviceSessionUpdate) SetNillableLastOutboundSeq(v *int64) *DeviceSessionUpdate {
	if v != nil {
		_u.SetLastOutboundSeq(*v)
	}
	return _u
}

// AddLastOutboundSeq adds value to the "last_outbound_seq" field.
func (_u *DeviceSessionUpdate) AddLastOutboundSeq(v int64) *DeviceSessionUpdate {
	_u.mutation.AddLastOutboundSeq(v)
	return _u
}

// SetClosedAtMs sets the "closed_at_ms" field.
func (_u *DeviceSessionUpdate) SetClosedAtMs(v int64) *DeviceSessionUpdate {
	_u.mutation.ResetClosedAtMs()
	_u.mutation.SetClosedAtMs(v)
	return _u
}

// SetNillableClosedAtMs sets the "closed_at_ms" field if the given value is not nil.
func (_u *DeviceSessionUpdate) SetNillableClosedAtMs(v *int64) *DeviceSessionUpdate {
	if v != nil {
		_u.SetClosedAtMs(*v)
	}
	return _u
}

// AddClosedAtMs adds value to the "closed_at_ms" field.
func (_u *DeviceSessionUpdate) AddClosedAtMs(v int64) *DeviceSessionUpdate {
	_u.mutation.AddClosedAtMs(v)
	return _u
}

// ClearClosedAtMs clears the value of the "closed_at_ms" field.
func (_u *DeviceSessionUpdate) ClearClosedAtMs() *DeviceSessionUpdate {
	_u.mutation.ClearClosedAtMs()
	return _u
}

// SetCloseReason sets the "close_reason" field.
func (_u *DeviceSessionUpdate) SetCloseReason(v string) *DeviceSessionUpdate {
	_u.mutation.SetCloseReason(v)
	return _u
}

// SetNillableCloseReason sets the "close_reason" field if the given value is not nil.
func (_u *DeviceSessionUpdate) SetNillableCloseReason(v *string) *DeviceSessionUpdate {
	if v != nil {
		_u.SetCloseReason(*v)
	}
	return _u
}

// ClearCloseReason clears the value of the "close_reason" field.
func (_u *DeviceSessionUpdate) ClearCloseReason() *DeviceSessionUpdate {
	_u.mutation.ClearCloseReason()
	return _u
}

// SetSessionMetadata sets the "session_metadata" field.
func (_u *DeviceSessionUpdate) SetSessionMetadata(v map[string]interface{}) *DeviceSessionUpdate {
	_u.mutation.SetSessionMetadata(v)
	return _u
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (_u *DeviceSessionUpdate) ClearSessionMetadata() *DeviceSessionUpdate {
	_u.mutation.ClearSessionMetadata()
	return _u
}

// SetTelemetry sets the "telemetry" field.
func (_u *DeviceSessionUpdate) SetTelemetry(v map[string]interface{}) *DeviceSessionUpdate {
	_u.mutation.SetTelemetry(v)
	return _u
}

// ClearTelemetry clears the value of the "telemetry" field.
func (_u *DeviceSessionUpdate) ClearTelemetry() *DeviceSessionUpdate {
	_u.mutation.ClearTelemetry()
	return _u
}

// SetUpdatedAtMs sets the "updated_at_ms" field.
func (_u *DeviceSessionUpdate) SetUpdatedAtMs(v int64) *DeviceSessionUpdate {
	_u.mutation.ResetUpdatedAtMs()
	_u.mutation.SetUpdatedAtMs(v)
	return _u
}

// SetNillableUpdatedAtMs sets the "updated_at_ms" field if the given value is not nil.
func (_u *DeviceSessionUpdate) SetNillableUpdatedAtMs(v *int64) *DeviceSessionUpdate {
	if v != nil {
		_u.SetUpdatedAtMs(*v)
	}
	return _u
}

// AddUpdatedAtMs adds value to the "updated_at_ms" field.
func (_u *DeviceSessionUpdate) AddUpdatedAtMs(v int64) *DeviceSessionUpdate {
	_u.mutation.AddUpdatedAtMs(v)
	return _u
}

// Mutation returns the DeviceSessionMutation object of the builder.
func (_u *DeviceSessionUpdate) Mutation() *DeviceSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeviceSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeviceSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeviceSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeviceSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeviceSessionUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := devicesession.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "DeviceSession.state": %w`, err)}
		}
	}
	return nil
}

func (_u *DeviceSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(devicesession.Table, devicesession.Columns, sqlgraph.NewFieldSpec(devicesession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DeviceID(); ok {
		_spec.SetField(devicesession.FieldDeviceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(devicesession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(devicesession.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAtMs(); ok {
		_spec.SetField(devicesession.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCreatedAtMs(); ok {
		_spec.AddField(devicesession.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastSeenMs(); ok {
		_spec.SetField(devicesession.FieldLastSeenMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastSeenMs(); ok {
		_spec.AddField(devicesession.FieldLastSeenMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastInboundSeq(); ok {
		_spec.SetField(devicesession.FieldLastInboundSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastInboundSeq(); ok {
		_spec.AddField(devicesession.FieldLastInboundSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastOutboundSeq(); ok {
		_spec.SetField(devicesession.FieldLastOutboundSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastOutboundSeq(); ok {
		_spec.AddField(devicesession.FieldLastOutboundSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ClosedAtMs(); ok {
		_spec.SetField(devicesession.FieldClosedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedClosedAtMs(); ok {
		_spec.AddField(devicesession.FieldClosedAtMs, field.TypeInt64, value)
	}
	if _u.mutation.ClosedAtMsCleared() {
		_spec.ClearField(devicesession.FieldClosedAtMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.CloseReason(); ok {
		_spec.SetField(devicesession.FieldCloseReason, field.TypeString, value)
	}
	if _u.mutation.CloseReasonCleared() {
		_spec.ClearField(devicesession.FieldCloseReason, field.TypeString)
	}
	if value, ok := _u.mutation.SessionMetadata(); ok {
		_spec.SetField(devicesession.FieldSessionMetadata, field.TypeJSON, value)
	}
	if _u.mutation.SessionMetadataCleared() {
		_spec.ClearField(devicesession.FieldSessionMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Telemetry(); ok {
		_spec.SetField(devicesession.FieldTelemetry, field.TypeJSON, value)
	}
	if _u.mutation.TelemetryCleared() {
		_spec.ClearField(devicesession.FieldTelemetry, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAtMs(); ok {
		_spec.SetField(devicesession.FieldUpdatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUpdatedAtMs(); ok {
		_spec.AddField(devicesession.FieldUpdatedAtMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{devicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeviceSessionUpdateOne is the builder for updating a single DeviceSession entity.
type DeviceSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeviceSessionMutation
}

// SetDeviceID sets the "device_id" field.
func (_u *DeviceSessionUpdateOne) SetDeviceID(v string) *DeviceSessionUpdateOne {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *DeviceSessionUpdateOne) SetNillableDeviceID(v *string) *DeviceSessionUpdateOne {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *DeviceSessionUpdateOne) SetSessionID(v string) *DeviceSessionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DeviceSessionUpdateOne) SetNillableSessionID(v *string) *DeviceSessionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *DeviceSessionUpdateOne) SetState(v devicesession.State) *DeviceSessionUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *DeviceSessionUpdateOne) SetNillableState(v *devicesession.State) *DeviceSessionUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_u *DeviceSessionUpdateOne) SetCreatedAtMs(v int64) *DeviceSessionUpdateOne {
	_u.mutation.ResetCreatedAtMs()
	_u.mutation.SetCreatedAtMs(v)
	return _u
}

// SetNillableCreatedAtMs sets the "created_at_ms" field if the given value is not nil.
func (_u *DeviceSessionUpdateOne) SetNillableCreatedAtMs(v *int64) *DeviceSessionUpdateOne {
	if v != nil {
		_u.SetCreatedAtMs(*v)
	}
	return _u
}

// AddCreatedAtMs adds value to the "created_at_ms" field.
func (_u *DeviceSessionUpdateOne) AddCreatedAtMs(v int64) *DeviceSessionUpdateOne {
	_u.mutation.AddCreatedAtMs(v)
	return _u
}

// SetLastSeenMs sets the "last_seen_ms" field.
func (_u *DeviceSessionUpdateOne) SetLastSeenMs(v int64) *DeviceSessionUpdateOne {
	_u.mutation.ResetLastSeenMs()
	_u.mutation.SetLastSeenMs(v)
	return _u
}

// SetNillableLastSeenMs sets the "last_seen_ms" field if the given value is not nil.
func (_u *DeviceSessionUpdateOne) SetNillableLastSeenMs(v *int64) *DeviceSessionUpdateOne {
	if v != nil {
		_u.SetLastSeenMs(*v)
	}
	return _u
}

// AddLastSeenMs adds value to the "last_seen_ms" field.
func (_u *DeviceSessionUpdateOne) AddLastSeenMs(v int64) *DeviceSessionUpdateOne {
	_u.mutation.AddLastSeenMs(v)
	return _u
}

// SetLastInboundSeq sets the "last_inbound_seq" field.
func (_u *DeviceSessionUpdateOne) SetLastInboundSeq(v int64) *DeviceSessionUpdateOne {
	_u.mutation.ResetLastInboundSeq()
	_u.mutation.SetLastInboundSeq(v)
	return _u
}

// SetNillableLastInboundSeq sets the "last_inbound_seq" field if the given value is not nil.
func (_u *DeviceSessionUpdateOne) SetNillableLastInboundSeq(v *int64) *DeviceSessionUpdateOne {
	if v != nil {
		_u.SetLastInboundSeq(*v)
	}
	return _u
}

// AddLastInboundSeq adds value to the "last_inbound_seq" field.
func (_u *DeviceSessionUpdateOne) AddLastInboundSeq(v int64) *DeviceSessionUpdateOne {
	_u.mutation.AddLastInboundSeq(v)
	return _u
}

// SetLastOutboundSeq sets the "last_outbound_seq" field.
func (_u *DeviceSessionUpdateOne) SetLastOutboundSeq(v int64) *DeviceSessionUpdateOne {
	_u.mutation.ResetLastOutboundSeq()
	_u.mutation.SetLastOutboundSeq(v)
	return _u
}

// SetNillableLastOutboundSeq sets the "last_outbound_seq" field if the given value is not nil.
func (_u *DeviceSessionUpdateOne) SetNillableLastOutboundSeq(v *int64) *DeviceSessionUpdateOne {
	if v != nil {
		_u.SetLastOutboundSeq(*v)
	}
	return _u
}

// AddLastOutboundSeq adds value to the "last_outbound_seq" field.
func (_u *DeviceSessionUpdateOne) AddLastOutboundSeq(v int64) *DeviceSessionUpdateOne {
	_u.mutation.AddLastOutboundSeq(v)
	return _u
}

// SetClosedAtMs sets the "closed_at_ms" field.
func (_u *DeviceSessionUpdateOne) SetClosedAtMs(v int64) *DeviceSessionUpdateOne {
	_u.mutation.ResetClosedAtMs()
	_u.mutation.SetClosedAtMs(v)
	return _u
}

// SetNillableClosedAtMs sets the "closed_at_ms" field if the given value is not nil.
func (_u *DeviceSessionUpdateOne) SetNillableClosedAtMs(v *int64) *DeviceSessionUpdateOne {
	if v != nil {
		_u.SetClosedAtMs(*v)
	}
	return _u
}

// AddClosedAtMs adds value to the "closed_at_ms" field.
func (_u *DeviceSessionUpdateOne) AddClosedAtMs(v int64) *DeviceSessionUpdateOne {
	_u.mutation.AddClosedAtMs(v)
	return _u
}

// ClearClosedAtMs clears the value of the "closed_at_ms" field.
func (_u *DeviceSessionUpdateOne) ClearClosedAtMs() *DeviceSessionUpdateOne {
	_u.mutation.ClearClosedAtMs()
	return _u
}

// SetCloseReason sets the "close_reason" field.
func (_u *DeviceSessionUpdateOne) SetCloseReason(v string) *DeviceSessionUpdateOne {
	_u.mutation.SetCloseReason(v)
	return _u
}

// SetNillableCloseReason sets the "close_reason" field if the given value is not nil.
func (_u *DeviceSessionUpdateOne) SetNillableCloseReason(v *string) *DeviceSessionUpdateOne {
	if v != nil {
		_u.SetCloseReason(*v)
	}
	return _u
}

// ClearCloseReason clears the value of the "close_reason" field.
func (_u *DeviceSessionUpdateOne) ClearCloseReason() *DeviceSessionUpdateOne {
	_u.mutation.ClearCloseReason()
	return _u
}

// SetSessionMetadata sets the "session_metadata" field.
func (_u *DeviceSessionUpdateOne) SetSessionMetadata(v map[string]interface{}) *DeviceSessionUpdateOne {
	_u.mutation.SetSessionMetadata(v)
	return _u
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (_u *DeviceSessionUpdateOne) ClearSessionMetadata() *DeviceSessionUpdateOne {
	_u.mutation.ClearSessionMetadata()
	return _u
}

// SetTelemetry sets the "telemetry" field.
func (_u *DeviceSessionUpdateOne) SetTelemetry(v map[string]interface{}) *DeviceSessionUpdateOne {
	_u.mutation.SetTelemetry(v)
	return _u
}

// ClearTelemetry clears the value of the "telemetry" field.
func (_u *DeviceSessionUpdateOne) ClearTelemetry() *DeviceSessionUpdateOne {
	_u.mutation.ClearTelemetry()
	return _u
}

// SetUpdatedAtMs sets the "updated_at_ms" field.
func (_u *DeviceSessionUpdateOne) SetUpdatedAtMs(v int64) *DeviceSessionUpdateOne {
	_u.mutation.ResetUpdatedAtMs()
	_u.mutation.SetUpdatedAtMs(v)
	return _u
}

// SetNillableUpdatedAtMs sets the "updated_at_ms" field if the given value is not nil.
func (_u *DeviceSessionUpdateOne) SetNillableUpdatedAtMs(v *int64) *DeviceSessionUpdateOne {
	if v != nil {
		_u.SetUpdatedAtMs(*v)
	}
	return _u
}

// AddUpdatedAtMs adds value to the "updated_at_ms" field.
func (_u *DeviceSessionUpdateOne) AddUpdatedAtMs(v int64) *DeviceSessionUpdateOne {
	_u.mutation.AddUpdatedAtMs(v)
	return _u
}

// Mutation returns the DeviceSessionMutation object of the builder.
func (_u *DeviceSessionUpdateOne) Mutation() *DeviceSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the DeviceSessionUpdate builder.
func (_u *DeviceSessionUpdateOne) Where(ps ...predicate.DeviceSession) *DeviceSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeviceSessionUpdateOne) Select(field string, fields ...string) *DeviceSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DeviceSession entity.
func (_u *DeviceSessionUpdateOne) Save(ctx context.Context) (*DeviceSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeviceSessionUpdateOne) SaveX(ctx context.Context) *DeviceSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeviceSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeviceSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeviceSessionUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := devicesession.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "DeviceSession.state": %w`, err)}
		}
	}
	return nil
}

func (_u *DeviceSessionUpdateOne) sqlSave(ctx context.Context) (_node *DeviceSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(devicesession.Table, devicesession.Columns, sqlgraph.NewFieldSpec(devicesession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DeviceSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, devicesession.FieldID)
		for _, f := range fields {
			if !devicesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != devicesession.FieldID {
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
		_spec.SetField(devicesession.FieldDeviceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(devicesession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(devicesession.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAtMs(); ok {
		_spec.SetField(devicesession.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCreatedAtMs(); ok {
		_spec.AddField(devicesession.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastSeenMs(); ok {
		_spec.SetField(devicesession.FieldLastSeenMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastSeenMs(); ok {
		_spec.AddField(devicesession.FieldLastSeenMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastInboundSeq(); ok {
		_spec.SetField(devicesession.FieldLastInboundSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastInboundSeq(); ok {
		_spec.AddField(devicesession.FieldLastInboundSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastOutboundSeq(); ok {
		_spec.SetField(devicesession.FieldLastOutboundSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastOutboundSeq(); ok {
		_spec.AddField(devicesession.FieldLastOutboundSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ClosedAtMs(); ok {
		_spec.SetField(devicesession.FieldClosedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedClosedAtMs(); ok {
		_spec.AddField(devicesession.FieldClosedAtMs, field.TypeInt64, value)
	}
	if _u.mutation.ClosedAtMsCleared() {
		_spec.ClearField(devicesession.FieldClosedAtMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.CloseReason(); ok {
		_spec.SetField(devicesession.FieldCloseReason, field.TypeString, value)
	}
	if _u.mutation.CloseReasonCleared() {
		_spec.ClearField(devicesession.FieldCloseReason, field.TypeString)
	}
	if value, ok := _u.mutation.SessionMetadata(); ok {
		_spec.SetField(devicesession.FieldSessionMetadata, field.TypeJSON, value)
	}
	if _u.mutation.SessionMetadataCleared() {
		_spec.ClearField(devicesession.FieldSessionMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Telemetry(); ok {
		_spec.SetField(devicesession.FieldTelemetry, field.TypeJSON, value)
	}
	if _u.mutation.TelemetryCleared() {
		_spec.ClearField(devicesession.FieldTelemetry, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAtMs(); ok {
		_spec.SetField(devicesession.FieldUpdatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUpdatedAtMs(); ok {
		_spec.AddField(devicesession.FieldUpdatedAtMs, field.TypeInt64, value)
	}
	_node = &DeviceSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{devicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
