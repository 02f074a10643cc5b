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
)

// DeviceSessionCreate is the builder for creating a DeviceSession entity.
type DeviceSessionCreate struct {
	config
	mutation *DeviceSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDeviceID sets the "device_id" field.
func (_c *DeviceSessionCreate) SetDeviceID(v string) *DeviceSessionCreate {
	_c.mutation.SetDeviceID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *DeviceSessionCreate) SetSessionID(v string) *DeviceSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetState sets the "state" field.
func (_c *DeviceSessionCreate) SetState(v devicesession.State) *DeviceSessionCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *DeviceSessionCreate) SetNillableState(v *devicesession.State) *DeviceSessionCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_c *DeviceSessionCreate) SetCreatedAtMs(v int64) *DeviceSessionCreate {
	_c.mutation.SetCreatedAtMs(v)
	return _c
}

// SetLastSeenMs sets the "last_seen_ms" field.
func (_c *DeviceSessionCreate) SetLastSeenMs(v int64) *DeviceSessionCreate {
	_c.mutation.SetLastSeenMs(v)
	return _c
}

// SetLastInboundSeq sets the "last_inbound_seq" field.
func (_c *DeviceSessionCreate) SetLastInboundSeq(v int64) *DeviceSessionCreate {
	_c.mutation.SetLastInboundSeq(v)
	return _c
}

// SetNillableLastInboundSeq sets the "last_inbound_seq" field if the given value is not nil.
func (_c *DeviceSessionCreate) SetNillableLastInboundSeq(v *int64) *DeviceSessionCreate {
	if v != nil {
		_c.SetLastInboundSeq(*v)
	}
	return _c
}

// SetLastOutboundSeq sets the "last_outbound_seq" field.
func (_c *DeviceSessionCreate) SetLastOutboundSeq(v int64) *DeviceSessionCreate {
	_c.mutation.SetLastOutboundSeq(v)
	return _c
}

// SetNillableLastOutboundSeq sets the "last_outbound_seq" field if the given value is not nil.
func (_c *DeviceSessionCreate) SetNillableLastOutboundSeq(v *int64) *DeviceSessionCreate {
	if v != nil {
		_c.SetLastOutboundSeq(*v)
	}
	return _c
}

// SetClosedAtMs sets the "closed_at_ms" field.
func (_c *DeviceSessionCreate) SetClosedAtMs(v int64) *DeviceSessionCreate {
	_c.mutation.SetClosedAtMs(v)
	return _c
}

// SetNillableClosedAtMs sets the "closed_at_ms" field if the given value is not nil.
func (_c *DeviceSessionCreate) SetNillableClosedAtMs(v *int64) *DeviceSessionCreate {
	if v != nil {
		_c.SetClosedAtMs(*v)
	}
	return _c
}

// SetCloseReason sets the "close_reason" field.
func (_c *DeviceSessionCreate) SetCloseReason(v string) *DeviceSessionCreate {
	_c.mutation.SetCloseReason(v)
	return _c
}

// SetNillableCloseReason sets the "close_reason" field if the given value is not nil.
func (_c *DeviceSessionCreate) SetNillableCloseReason(v *string) *DeviceSessionCreate {
	if v != nil {
		_c.SetCloseReason(*v)
	}
	return _c
}

// SetSessionMetadata sets the "session_metadata" field.
func (_c *DeviceSessionCreate) SetSessionMetadata(v map[string]interface{}) *DeviceSessionCreate {
	_c.mutation.SetSessionMetadata(v)
	return _c
}

// SetTelemetry sets the "telemetry" field.
func (_c *DeviceSessionCreate) SetTelemetry(v map[string]interface{}) *DeviceSessionCreate {
	_c.mutation.SetTelemetry(v)
	return _c
}

// SetUpdatedAtMs sets the "updated_at_ms" field.
func (_c *DeviceSessionCreate) SetUpdatedAtMs(v int64) *DeviceSessionCreate {
	_c.mutation.SetUpdatedAtMs(v)
	return _c
}

// Mutation returns the DeviceSessionMutation object of the builder.
func (_c *DeviceSessionCreate) Mutation() *DeviceSessionMutation {
	return _c.mutation
}

// Save creates the DeviceSession in the database.
func (_c *DeviceSessionCreate) Save(ctx context.Context) (*DeviceSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeviceSessionCreate) SaveX(ctx context.Context) *DeviceSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeviceSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeviceSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeviceSessionCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := devicesession.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.LastInboundSeq(); !ok {
		v := devicesession.DefaultLastInboundSeq
		_c.mutation.SetLastInboundSeq(v)
	}
	if _, ok := _c.mutation.LastOutboundSeq(); !ok {
		v := devicesession.DefaultLastOutboundSeq
		_c.mutation.SetLastOutboundSeq(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeviceSessionCreate) check() error {
	if _, ok := _c.mutation.DeviceID(); !ok {
		return &ValidationError{Name: "device_id", err: errors.New(`ent: missing required field "DeviceSession.device_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "DeviceSession.session_id"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "DeviceSession.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := devicesession.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "DeviceSession.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAtMs(); !ok {
		return &ValidationError{Name: "created_at_ms", err: errors.New(`ent: missing required field "DeviceSession.created_at_ms"`)}
	}
	if _, ok := _c.mutation.LastSeenMs(); !ok {
		return &ValidationError{Name: "last_seen_ms", err: errors.New(`ent: missing required field "DeviceSession.last_seen_ms"`)}
	}
	if _, ok := _c.mutation.LastInboundSeq(); !ok {
		return &ValidationError{Name: "last_inbound_seq", err: errors.New(`ent: missing required field "DeviceSession.last_inbound_seq"`)}
	}
	if _, ok := _c.mutation.LastOutboundSeq(); !ok {
		return &ValidationError{Name: "last_outbound_seq", err: errors.New(`ent: missing required field "DeviceSession.last_outbound_seq"`)}
	}
	if _, ok := _c.mutation.UpdatedAtMs(); !ok {
		return &ValidationError{Name: "updated_at_ms", err: errors.New(`ent: missing required field "DeviceSession.updated_at_ms"`)}
	}
	return nil
}

func (_c *DeviceSessionCreate) sqlSave(ctx context.Context) (*DeviceSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DeviceSessionCreate) createSpec() (*DeviceSession, *sqlgraph.CreateSpec) {
	var (
		_node = &DeviceSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(devicesession.Table, sqlgraph.NewFieldSpec(devicesession.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.DeviceID(); ok {
		_spec.SetField(devicesession.FieldDeviceID, field.TypeString, value)
		_node.DeviceID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(devicesession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(devicesession.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.CreatedAtMs(); ok {
		_spec.SetField(devicesession.FieldCreatedAtMs, field.TypeInt64, value)
		_node.CreatedAtMs = value
	}
	if value, ok := _c.mutation.LastSeenMs(); ok {
		_spec.SetField(devicesession.FieldLastSeenMs, field.TypeInt64, value)
		_node.LastSeenMs = value
	}
	if value, ok := _c.mutation.LastInboundSeq(); ok {
		_spec.SetField(devicesession.FieldLastInboundSeq, field.TypeInt64, value)
		_node.LastInboundSeq = value
	}
	if value, ok := _c.mutation.LastOutboundSeq(); ok {
		_spec.SetField(devicesession.FieldLastOutboundSeq, field.TypeInt64, value)
		_node.LastOutboundSeq = value
	}
	if value, ok := _c.mutation.ClosedAtMs(); ok {
		_spec.SetField(devicesession.FieldClosedAtMs, field.TypeInt64, value)
		_node.ClosedAtMs = value
	}
	if value, ok := _c.mutation.CloseReason(); ok {
		_spec.SetField(devicesession.FieldCloseReason, field.TypeString, value)
		_node.CloseReason = value
	}
	if value, ok := _c.mutation.SessionMetadata(); ok {
		_spec.SetField(devicesession.FieldSessionMetadata, field.TypeJSON, value)
		_node.SessionMetadata = value
	}
	if value, ok := _c.mutation.Telemetry(); ok {
		_spec.SetField(devicesession.FieldTelemetry, field.TypeJSON, value)
		_node.Telemetry = value
	}
	if value, ok := _c.mutation.UpdatedAtMs(); ok {
		_spec.SetField(devicesession.FieldUpdatedAtMs, field.TypeInt64, value)
		_node.UpdatedAtMs = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DeviceSession.Create().
//		SetDeviceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DeviceSessionUpsert) {
//			SetDeviceID(v+v).
//		}).
//		Exec(ctx)
func (_c *DeviceSessionCreate) OnConflict(opts ...sql.ConflictOption) *DeviceSessionUpsertOne {
	_c.conflict = opts
	return &DeviceSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DeviceSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DeviceSessionCreate) OnConflictColumns(columns ...string) *DeviceSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DeviceSessionUpsertOne{
		create: _c,
	}
}

type (
	// DeviceSessionUpsertOne is the builder for "upsert"-ing
	//  one DeviceSession node.
	DeviceSessionUpsertOne struct {
		create *DeviceSessionCreate
	}

	// DeviceSessionUpsert is the "OnConflict" setter.
	DeviceSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetDeviceID sets the "device_id" field.
func (u *DeviceSessionUpsert) SetDeviceID(v string) *DeviceSessionUpsert {
	u.Set(devicesession.FieldDeviceID, v)
	return u
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *DeviceSessionUpsert) UpdateDeviceID() *DeviceSessionUpsert {
	u.SetExcluded(devicesession.FieldDeviceID)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *DeviceSessionUpsert) SetSessionID(v string) *DeviceSessionUpsert {
	u.Set(devicesession.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *DeviceSessionUpsert) UpdateSessionID() *DeviceSessionUpsert {
	u.SetExcluded(devicesession.FieldSessionID)
	return u
}

// SetState sets the "state" field.
func (u *DeviceSessionUpsert) SetState(v devicesession.State) *DeviceSessionUpsert {
	u.Set(devicesession.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *DeviceSessionUpsert) UpdateState() *DeviceSessionUpsert {
	u.SetExcluded(devicesession.FieldState)
	return u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *DeviceSessionUpsert) SetCreatedAtMs(v int64) *DeviceSessionUpsert {
	u.Set(devicesession.FieldCreatedAtMs, v)
	return u
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *DeviceSessionUpsert) UpdateCreatedAtMs() *DeviceSessionUpsert {
	u.SetExcluded(devicesession.FieldCreatedAtMs)
	return u
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *DeviceSessionUpsert) AddCreatedAtMs(v int64) *DeviceSessionUpsert {
	u.Add(devicesession.FieldCreatedAtMs, v)
	return u
}

// SetLastSeenMs sets the "last_seen_ms" field.
func (u *DeviceSessionUpsert) SetLastSeenMs(v int64) *DeviceSessionUpsert {
	u.Set(devicesession.FieldLastSeenMs, v)
	return u
}

// UpdateLastSeenMs sets the "last_seen_ms" field to the value that was provided on create.
func (u *DeviceSessionUpsert) UpdateLastSeenMs() *DeviceSessionUpsert {
	u.SetExcluded(devicesession.FieldLastSeenMs)
	return u
}

// AddLastSeenMs adds v to the "last_seen_ms" field.
func (u *DeviceSessionUpsert) AddLastSeenMs(v int64) *DeviceSessionUpsert {
	u.Add(devicesession.FieldLastSeenMs, v)
	return u
}

// SetLastInboundSeq sets the "last_inbound_seq" field.
func (u *DeviceSessionUpsert) SetLastInboundSeq(v int64) *DeviceSessionUpsert {
	u.Set(devicesession.FieldLastInboundSeq, v)
	return u
}

// UpdateLastInboundSeq sets the "last_inbound_seq" field to the value that was provided on create.
func (u *DeviceSessionUpsert) UpdateLastInboundSeq() *DeviceSessionUpsert {
	u.SetExcluded(devicesession.FieldLastInboundSeq)
	return u
}

// AddLastInboundSeq adds v to the "last_inbound_seq" field.
func (u *DeviceSessionUpsert) AddLastInboundSeq(v int64) *DeviceSessionUpsert {
	u.Add(devicesession.FieldLastInboundSeq, v)
	return u
}

// SetLastOutboundSeq sets the "last_outbound_seq" field.
func (u *DeviceSessionUpsert) SetLastOutboundSeq(v int64) *DeviceSessionUpsert {
	u.Set(devicesession.FieldLastOutboundSeq, v)
	return u
}

// UpdateLastOutboundSeq sets the "last_outbound_seq" field to the value that was provided on create.
func (u *DeviceSessionUpsert) UpdateLastOutboundSeq() *DeviceSessionUpsert {
	u.SetExcluded(devicesession.FieldLastOutboundSeq)
	return u
}

// AddLastOutboundSeq adds v to the "last_outbound_seq" field.
func (u *DeviceSessionUpsert) AddLastOutboundSeq(v int64) *DeviceSessionUpsert {
	u.Add(devicesession.FieldLastOutboundSeq, v)
	return u
}

// SetClosedAtMs sets the "closed_at_ms" field.
func (u *DeviceSessionUpsert) SetClosedAtMs(v int64) *DeviceSessionUpsert {
	u.Set(devicesession.FieldClosedAtMs, v)
	return u
}

// UpdateClosedAtMs sets the "closed_at_ms" field to the value that was provided on create.
func (u *DeviceSessionUpsert) UpdateClosedAtMs() *DeviceSessionUpsert {
	u.SetExcluded(devicesession.FieldClosedAtMs)
	return u
}

// AddClosedAtMs adds v to the "closed_at_ms" field.
func (u *DeviceSessionUpsert) AddClosedAtMs(v int64) *DeviceSessionUpsert {
	u.Add(devicesession.FieldClosedAtMs, v)
	return u
}

// ClearClosedAtMs clears the value of the "closed_at_ms" field.
func (u *DeviceSessionUpsert) ClearClosedAtMs() *DeviceSessionUpsert {
	u.SetNull(devicesession.FieldClosedAtMs)
	return u
}

// SetCloseReason sets the "close_reason" field.
func (u *DeviceSessionUpsert) SetCloseReason(v string) *DeviceSessionUpsert {
	u.Set(devicesession.FieldCloseReason, v)
	return u
}

// UpdateCloseReason sets the "close_reason" field to the value that was provided on create.
func (u *DeviceSessionUpsert) UpdateCloseReason() *DeviceSessionUpsert {
	u.SetExcluded(devicesession.FieldCloseReason)
	return u
}

// ClearCloseReason clears the value of the "close_reason" field.
func (u *DeviceSessionUpsert) ClearCloseReason() *DeviceSessionUpsert {
	u.SetNull(devicesession.FieldCloseReason)
	return u
}

// SetSessionMetadata sets the "session_metadata" field.
func (u *DeviceSessionUpsert) SetSessionMetadata(v map[string]interface{}) *DeviceSessionUpsert {
	u.Set(devicesession.FieldSessionMetadata, v)
	return u
}

// UpdateSessionMetadata sets the "session_metadata" field to the value that was provided on create.
func (u *DeviceSessionUpsert) UpdateSessionMetadata() *DeviceSessionUpsert {
	u.SetExcluded(devicesession.FieldSessionMetadata)
	return u
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (u *DeviceSessionUpsert) ClearSessionMetadata() *DeviceSessionUpsert {
	u.SetNull(devicesession.FieldSessionMetadata)
	return u
}

// SetTelemetry sets the "telemetry" field.
func (u *DeviceSessionUpsert) SetTelemetry(v map[string]interface{}) *DeviceSessionUpsert {
	u.Set(devicesession.FieldTelemetry, v)
	return u
}

// UpdateTelemetry sets the "telemetry" field to the value that was provided on create.
func (u *DeviceSessionUpsert) UpdateTelemetry() *DeviceSessionUpsert {
	u.SetExcluded(devicesession.FieldTelemetry)
	return u
}

// ClearTelemetry clears the value of the "telemetry" field.
func (u *DeviceSessionUpsert) ClearTelemetry() *DeviceSessionUpsert {
	u.SetNull(devicesession.FieldTelemetry)
	return u
}

// SetUpdatedAtMs sets the "updated_at_ms" field.
func (u *DeviceSessionUpsert) SetUpdatedAtMs(v int64) *DeviceSessionUpsert {
	u.Set(devicesession.FieldUpdatedAtMs, v)
	return u
}

// UpdateUpdatedAtMs sets the "updated_at_ms" field to the value that was provided on create.
func (u *DeviceSessionUpsert) UpdateUpdatedAtMs() *DeviceSessionUpsert {
	u.SetExcluded(devicesession.FieldUpdatedAtMs)
	return u
}

// AddUpdatedAtMs adds v to the "updated_at_ms" field.
func (u *DeviceSessionUpsert) AddUpdatedAtMs(v int64) *DeviceSessionUpsert {
	u.Add(devicesession.FieldUpdatedAtMs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.DeviceSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DeviceSessionUpsertOne) UpdateNewValues() *DeviceSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DeviceSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DeviceSessionUpsertOne) Ignore() *DeviceSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DeviceSessionUpsertOne) DoNothing() *DeviceSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DeviceSessionCreate.OnConflict
// documentation for more info.
func (u *DeviceSessionUpsertOne) Update(set func(*DeviceSessionUpsert)) *DeviceSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DeviceSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetDeviceID sets the "device_id" field.
func (u *DeviceSessionUpsertOne) SetDeviceID(v string) *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.SetDeviceID(v)
	})
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *DeviceSessionUpsertOne) UpdateDeviceID() *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.UpdateDeviceID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *DeviceSessionUpsertOne) SetSessionID(v string) *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *DeviceSessionUpsertOne) UpdateSessionID() *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.UpdateSessionID()
	})
}

// SetState sets the "state" field.
func (u *DeviceSessionUpsertOne) SetState(v devicesession.State) *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *DeviceSessionUpsertOne) UpdateState() *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.UpdateState()
	})
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *DeviceSessionUpsertOne) SetCreatedAtMs(v int64) *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.SetCreatedAtMs(v)
	})
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *DeviceSessionUpsertOne) AddCreatedAtMs(v int64) *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.AddCreatedAtMs(v)
	})
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *DeviceSessionUpsertOne) UpdateCreatedAtMs() *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.UpdateCreatedAtMs()
	})
}

// SetLastSeenMs sets the "last_seen_ms" field.
func (u *DeviceSessionUpsertOne) SetLastSeenMs(v int64) *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.SetLastSeenMs(v)
	})
}

// AddLastSeenMs adds v to the "last_seen_ms" field.
func (u *DeviceSessionUpsertOne) AddLastSeenMs(v int64) *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.AddLastSeenMs(v)
	})
}

// UpdateLastSeenMs sets the "last_seen_ms" field to the value that was provided on create.
func (u *DeviceSessionUpsertOne) UpdateLastSeenMs() *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.UpdateLastSeenMs()
	})
}

// SetLastInboundSeq sets the "last_inbound_seq" field.
func (u *DeviceSessionUpsertOne) SetLastInboundSeq(v int64) *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.SetLastInboundSeq(v)
	})
}

// AddLastInboundSeq adds v to the "last_inbound_seq" field.
func (u *DeviceSessionUpsertOne) AddLastInboundSeq(v int64) *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.AddLastInboundSeq(v)
	})
}

// UpdateLastInboundSeq sets the "last_inbound_seq" field to the value that was provided on create.
func (u *DeviceSessionUpsertOne) UpdateLastInboundSeq() *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.UpdateLastInboundSeq()
	})
}

// SetLastOutboundSeq sets the "last_outbound_seq" field.
func (u *DeviceSessionUpsertOne) SetLastOutboundSeq(v int64) *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.SetLastOutboundSeq(v)
	})
}

// AddLastOutboundSeq adds v to the "last_outbound_seq" field.
func (u *DeviceSessionUpsertOne) AddLastOutboundSeq(v int64) *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.AddLastOutboundSeq(v)
	})
}

// UpdateLastOutboundSeq sets the "last_outbound_seq" field to the value that was provided on create.
func (u *DeviceSessionUpsertOne) UpdateLastOutboundSeq() *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.UpdateLastOutboundSeq()
	})
}

// SetClosedAtMs sets the "closed_at_ms" field.
func (u *DeviceSessionUpsertOne) SetClosedAtMs(v int64) *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.SetClosedAtMs(v)
	})
}

// AddClosedAtMs adds v to the "closed_at_ms" field.
func (u *DeviceSessionUpsertOne) AddClosedAtMs(v int64) *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.AddClosedAtMs(v)
	})
}

// UpdateClosedAtMs sets the "closed_at_ms" field to the value that was provided on create.
func (u *DeviceSessionUpsertOne) UpdateClosedAtMs() *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.UpdateClosedAtMs()
	})
}

// ClearClosedAtMs clears the value of the "closed_at_ms" field.
func (u *DeviceSessionUpsertOne) ClearClosedAtMs() *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.ClearClosedAtMs()
	})
}

// SetCloseReason sets the "close_reason" field.
func (u *DeviceSessionUpsertOne) SetCloseReason(v string) *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.SetCloseReason(v)
	})
}

// UpdateCloseReason sets the "close_reason" field to the value that was provided on create.
func (u *DeviceSessionUpsertOne) UpdateCloseReason() *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.UpdateCloseReason()
	})
}

// ClearCloseReason clears the value of the "close_reason" field.
func (u *DeviceSessionUpsertOne) ClearCloseReason() *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.ClearCloseReason()
	})
}

// SetSessionMetadata sets the "session_metadata" field.
func (u *DeviceSessionUpsertOne) SetSessionMetadata(v map[string]interface{}) *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.SetSessionMetadata(v)
	})
}

// UpdateSessionMetadata sets the "session_metadata" field to the value that was provided on create.
func (u *DeviceSessionUpsertOne) UpdateSessionMetadata() *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.UpdateSessionMetadata()
	})
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (u *DeviceSessionUpsertOne) ClearSessionMetadata() *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.ClearSessionMetadata()
	})
}

// SetTelemetry sets the "telemetry" field.
func (u *DeviceSessionUpsertOne) SetTelemetry(v map[string]interface{}) *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.SetTelemetry(v)
	})
}

// UpdateTelemetry sets the "telemetry" field to the value that was provided on create.
func (u *DeviceSessionUpsertOne) UpdateTelemetry() *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.UpdateTelemetry()
	})
}

// ClearTelemetry clears the value of the "telemetry" field.
func (u *DeviceSessionUpsertOne) ClearTelemetry() *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.ClearTelemetry()
	})
}

// SetUpdatedAtMs sets the "updated_at_ms" field.
func (u *DeviceSessionUpsertOne) SetUpdatedAtMs(v int64) *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.SetUpdatedAtMs(v)
	})
}

// AddUpdatedAtMs adds v to the "updated_at_ms" field.
func (u *DeviceSessionUpsertOne) AddUpdatedAtMs(v int64) *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.AddUpdatedAtMs(v)
	})
}

// UpdateUpdatedAtMs sets the "updated_at_ms" field to the value that was provided on create.
func (u *DeviceSessionUpsertOne) UpdateUpdatedAtMs() *DeviceSessionUpsertOne {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.UpdateUpdatedAtMs()
	})
}

// Exec executes the query.
func (u *DeviceSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DeviceSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DeviceSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DeviceSessionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DeviceSessionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DeviceSessionCreateBulk is the builder for creating many DeviceSession entities in bulk.
type DeviceSessionCreateBulk struct {
	config
	err      error
	builders []*DeviceSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the DeviceSession entities in the database.
func (_c *DeviceSessionCreateBulk) Save(ctx context.Context) ([]*DeviceSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeviceSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeviceSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DeviceSessionCreateBulk) SaveX(ctx context.Context) []*DeviceSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeviceSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeviceSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DeviceSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DeviceSessionUpsert) {
//			SetDeviceID(v+v).
//		}).
//		Exec(ctx)
func (_c *DeviceSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *DeviceSessionUpsertBulk {
	_c.conflict = opts
	return &DeviceSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DeviceSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DeviceSessionCreateBulk) OnConflictColumns(columns ...string) *DeviceSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DeviceSessionUpsertBulk{
		create: _c,
	}
}

// DeviceSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of DeviceSession nodes.
type DeviceSessionUpsertBulk struct {
	create *DeviceSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DeviceSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DeviceSessionUpsertBulk) UpdateNewValues() *DeviceSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DeviceSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DeviceSessionUpsertBulk) Ignore() *DeviceSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DeviceSessionUpsertBulk) DoNothing() *DeviceSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DeviceSessionCreateBulk.OnConflict
// documentation for more info.
func (u *DeviceSessionUpsertBulk) Update(set func(*DeviceSessionUpsert)) *DeviceSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DeviceSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetDeviceID sets the "device_id" field.
func (u *DeviceSessionUpsertBulk) SetDeviceID(v string) *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.SetDeviceID(v)
	})
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *DeviceSessionUpsertBulk) UpdateDeviceID() *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.UpdateDeviceID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *DeviceSessionUpsertBulk) SetSessionID(v string) *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *DeviceSessionUpsertBulk) UpdateSessionID() *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.UpdateSessionID()
	})
}

// SetState sets the "state" field.
func (u *DeviceSessionUpsertBulk) SetState(v devicesession.State) *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *DeviceSessionUpsertBulk) UpdateState() *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.UpdateState()
	})
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *DeviceSessionUpsertBulk) SetCreatedAtMs(v int64) *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.SetCreatedAtMs(v)
	})
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *DeviceSessionUpsertBulk) AddCreatedAtMs(v int64) *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.AddCreatedAtMs(v)
	})
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *DeviceSessionUpsertBulk) UpdateCreatedAtMs() *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.UpdateCreatedAtMs()
	})
}

// SetLastSeenMs sets the "last_seen_ms" field.
func (u *DeviceSessionUpsertBulk) SetLastSeenMs(v int64) *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.SetLastSeenMs(v)
	})
}

// AddLastSeenMs adds v to the "last_seen_ms" field.
func (u *DeviceSessionUpsertBulk) AddLastSeenMs(v int64) *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.AddLastSeenMs(v)
	})
}

// UpdateLastSeenMs sets the "last_seen_ms" field to the value that was provided on create.
func (u *DeviceSessionUpsertBulk) UpdateLastSeenMs() *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.UpdateLastSeenMs()
	})
}

// SetLastInboundSeq sets the "last_inbound_seq" field.
func (u *DeviceSessionUpsertBulk) SetLastInboundSeq(v int64) *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.SetLastInboundSeq(v)
	})
}

// AddLastInboundSeq adds v to the "last_inbound_seq" field.
func (u *DeviceSessionUpsertBulk) AddLastInboundSeq(v int64) *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.AddLastInboundSeq(v)
	})
}

// UpdateLastInboundSeq sets the "last_inbound_seq" field to the value that was provided on create.
func (u *DeviceSessionUpsertBulk) UpdateLastInboundSeq() *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.UpdateLastInboundSeq()
	})
}

// SetLastOutboundSeq sets the "last_outbound_seq" field.
func (u *DeviceSessionUpsertBulk) SetLastOutboundSeq(v int64) *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.SetLastOutboundSeq(v)
	})
}

// AddLastOutboundSeq adds v to the "last_outbound_seq" field.
func (u *DeviceSessionUpsertBulk) AddLastOutboundSeq(v int64) *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.AddLastOutboundSeq(v)
	})
}

// UpdateLastOutboundSeq sets the "last_outbound_seq" field to the value that was provided on create.
func (u *DeviceSessionUpsertBulk) UpdateLastOutboundSeq() *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.UpdateLastOutboundSeq()
	})
}

// SetClosedAtMs sets the "closed_at_ms" field.
func (u *DeviceSessionUpsertBulk) SetClosedAtMs(v int64) *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.SetClosedAtMs(v)
	})
}

// AddClosedAtMs adds v to the "closed_at_ms" field.
func (u *DeviceSessionUpsertBulk) AddClosedAtMs(v int64) *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.AddClosedAtMs(v)
	})
}

// UpdateClosedAtMs sets the "closed_at_ms" field to the value that was provided on create.
func (u *DeviceSessionUpsertBulk) UpdateClosedAtMs() *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.UpdateClosedAtMs()
	})
}

// ClearClosedAtMs clears the value of the "closed_at_ms" field.
func (u *DeviceSessionUpsertBulk) ClearClosedAtMs() *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.ClearClosedAtMs()
	})
}

// SetCloseReason sets the "close_reason" field.
func (u *DeviceSessionUpsertBulk) SetCloseReason(v string) *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.SetCloseReason(v)
	})
}

// UpdateCloseReason sets the "close_reason" field to the value that was provided on create.
func (u *DeviceSessionUpsertBulk) UpdateCloseReason() *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.UpdateCloseReason()
	})
}

// ClearCloseReason clears the value of the "close_reason" field.
func (u *DeviceSessionUpsertBulk) ClearCloseReason() *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.ClearCloseReason()
	})
}

// SetSessionMetadata sets the "session_metadata" field.
func (u *DeviceSessionUpsertBulk) SetSessionMetadata(v map[string]interface{}) *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.SetSessionMetadata(v)
	})
}

// UpdateSessionMetadata sets the "session_metadata" field to the value that was provided on create.
func (u *DeviceSessionUpsertBulk) UpdateSessionMetadata() *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.UpdateSessionMetadata()
	})
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (u *DeviceSessionUpsertBulk) ClearSessionMetadata() *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.ClearSessionMetadata()
	})
}

// SetTelemetry sets the "telemetry" field.
func (u *DeviceSessionUpsertBulk) SetTelemetry(v map[string]interface{}) *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.SetTelemetry(v)
	})
}

// UpdateTelemetry sets the "telemetry" field to the value that was provided on create.
func (u *DeviceSessionUpsertBulk) UpdateTelemetry() *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.UpdateTelemetry()
	})
}

// ClearTelemetry clears the value of the "telemetry" field.
func (u *DeviceSessionUpsertBulk) ClearTelemetry() *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.ClearTelemetry()
	})
}

// SetUpdatedAtMs sets the "updated_at_ms" field.
func (u *DeviceSessionUpsertBulk) SetUpdatedAtMs(v int64) *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.SetUpdatedAtMs(v)
	})
}

// AddUpdatedAtMs adds v to the "updated_at_ms" field.
func (u *DeviceSessionUpsertBulk) AddUpdatedAtMs(v int64) *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.AddUpdatedAtMs(v)
	})
}

// UpdateUpdatedAtMs sets the "updated_at_ms" field to the value that was provided on create.
func (u *DeviceSessionUpsertBulk) UpdateUpdatedAtMs() *DeviceSessionUpsertBulk {
	return u.Update(func(s *DeviceSessionUpsert) {
		s.UpdateUpdatedAtMs()
	})
}

// Exec executes the query.
func (u *DeviceSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DeviceSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DeviceSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DeviceSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
