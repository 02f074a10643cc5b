// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencane/edged/ent/deviceoperation"
)

// DeviceOperationCreate is the builder for creating a DeviceOperation entity.
type DeviceOperationCreate struct {
	config
	mutation *DeviceOperationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDeviceID sets the "device_id" field.
func (_c *DeviceOperationCreate) SetDeviceID(v string) *DeviceOperationCreate {
	_c.mutation.SetDeviceID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *DeviceOperationCreate) SetSessionID(v string) *DeviceOperationCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *DeviceOperationCreate) SetNillableSessionID(v *string) *DeviceOperationCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetOpType sets the "op_type" field.
func (_c *DeviceOperationCreate) SetOpType(v string) *DeviceOperationCreate {
	_c.mutation.SetOpType(v)
	return _c
}

// SetCommandType sets the "command_type" field.
func (_c *DeviceOperationCreate) SetCommandType(v string) *DeviceOperationCreate {
	_c.mutation.SetCommandType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DeviceOperationCreate) SetStatus(v deviceoperation.Status) *DeviceOperationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DeviceOperationCreate) SetNillableStatus(v *deviceoperation.Status) *DeviceOperationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *DeviceOperationCreate) SetPayload(v map[string]interface{}) *DeviceOperationCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *DeviceOperationCreate) SetResult(v map[string]interface{}) *DeviceOperationCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DeviceOperationCreate) SetErrorMessage(v string) *DeviceOperationCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DeviceOperationCreate) SetNillableErrorMessage(v *string) *DeviceOperationCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_c *DeviceOperationCreate) SetCreatedAtMs(v int64) *DeviceOperationCreate {
	_c.mutation.SetCreatedAtMs(v)
	return _c
}

// SetSentAtMs sets the "sent_at_ms" field.
func (_c *DeviceOperationCreate) SetSentAtMs(v int64) *DeviceOperationCreate {
	_c.mutation.SetSentAtMs(v)
	return _c
}

// SetNillableSentAtMs sets the "sent_at_ms" field if the given value is not nil.
func (_c *DeviceOperationCreate) SetNillableSentAtMs(v *int64) *DeviceOperationCreate {
	if v != nil {
		_c.SetSentAtMs(*v)
	}
	return _c
}

// SetAckedAtMs sets the "acked_at_ms" field.
func (_c *DeviceOperationCreate) SetAckedAtMs(v int64) *DeviceOperationCreate {
	_c.mutation.SetAckedAtMs(v)
	return _c
}

// SetNillableAckedAtMs sets the "acked_at_ms" field if the given value is not nil.
func (_c *DeviceOperationCreate) SetNillableAckedAtMs(v *int64) *DeviceOperationCreate {
	if v != nil {
		_c.SetAckedAtMs(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DeviceOperationCreate) SetID(v string) *DeviceOperationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DeviceOperationMutation object of the builder.
func (_c *DeviceOperationCreate) Mutation() *DeviceOperationMutation {
	return _c.mutation
}

// Save creates the DeviceOperation in the database.
func (_c *DeviceOperationCreate) Save(ctx context.Context) (*DeviceOperation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeviceOperationCreate) SaveX(ctx context.Context) *DeviceOperation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeviceOperationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeviceOperationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeviceOperationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := deviceoperation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeviceOperationCreate) check() error {
	if _, ok := _c.mutation.DeviceID(); !ok {
		return &ValidationError{Name: "device_id", err: errors.New(`ent: missing required field "DeviceOperation.device_id"`)}
	}
	if _, ok := _c.mutation.OpType(); !ok {
		return &ValidationError{Name: "op_type", err: errors.New(`ent: missing required field "DeviceOperation.op_type"`)}
	}
	if _, ok := _c.mutation.CommandType(); !ok {
		return &ValidationError{Name: "command_type", err: errors.New(`ent: missing required field "DeviceOperation.command_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DeviceOperation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := deviceoperation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DeviceOperation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAtMs(); !ok {
		return &ValidationError{Name: "created_at_ms", err: errors.New(`ent: missing required field "DeviceOperation.created_at_ms"`)}
	}
	return nil
}

func (_c *DeviceOperationCreate) sqlSave(ctx context.Context) (*DeviceOperation, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected DeviceOperation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DeviceOperationCreate) createSpec() (*DeviceOperation, *sqlgraph.CreateSpec) {
	var (
		_node = &DeviceOperation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deviceoperation.Table, sqlgraph.NewFieldSpec(deviceoperation.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DeviceID(); ok {
		_spec.SetField(deviceoperation.FieldDeviceID, field.TypeString, value)
		_node.DeviceID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(deviceoperation.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.OpType(); ok {
		_spec.SetField(deviceoperation.FieldOpType, field.TypeString, value)
		_node.OpType = value
	}
	if value, ok := _c.mutation.CommandType(); ok {
		_spec.SetField(deviceoperation.FieldCommandType, field.TypeString, value)
		_node.CommandType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(deviceoperation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(deviceoperation.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(deviceoperation.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(deviceoperation.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.CreatedAtMs(); ok {
		_spec.SetField(deviceoperation.FieldCreatedAtMs, field.TypeInt64, value)
		_node.CreatedAtMs = value
	}
	if value, ok := _c.mutation.SentAtMs(); ok {
		_spec.SetField(deviceoperation.FieldSentAtMs, field.TypeInt64, value)
		_node.SentAtMs = value
	}
	if value, ok := _c.mutation.AckedAtMs(); ok {
		_spec.SetField(deviceoperation.FieldAckedAtMs, field.TypeInt64, value)
		_node.AckedAtMs = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DeviceOperation.Create().
//		SetDeviceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DeviceOperationUpsert) {
//			SetDeviceID(v+v).
//		}).
//		Exec(ctx)
func (_c *DeviceOperationCreate) OnConflict(opts ...sql.ConflictOption) *DeviceOperationUpsertOne {
	_c.conflict = opts
	return &DeviceOperationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DeviceOperation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DeviceOperationCreate) OnConflictColumns(columns ...string) *DeviceOperationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DeviceOperationUpsertOne{
		create: _c,
	}
}

type (
	// DeviceOperationUpsertOne is the builder for "upsert"-ing
	//  one DeviceOperation node.
	DeviceOperationUpsertOne struct {
		create *DeviceOperationCreate
	}

	// DeviceOperationUpsert is the "OnConflict" setter.
	DeviceOperationUpsert struct {
		*sql.UpdateSet
	}
)

// SetDeviceID sets the "device_id" field.
func (u *DeviceOperationUpsert) SetDeviceID(v string) *DeviceOperationUpsert {
	u.Set(deviceoperation.FieldDeviceID, v)
	return u
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *DeviceOperationUpsert) UpdateDeviceID() *DeviceOperationUpsert {
	u.SetExcluded(deviceoperation.FieldDeviceID)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *DeviceOperationUpsert) SetSessionID(v string) *DeviceOperationUpsert {
	u.Set(deviceoperation.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *DeviceOperationUpsert) UpdateSessionID() *DeviceOperationUpsert {
	u.SetExcluded(deviceoperation.FieldSessionID)
	return u
}

// ClearSessionID clears the value of the "session_id" field.
func (u *DeviceOperationUpsert) ClearSessionID() *DeviceOperationUpsert {
	u.SetNull(deviceoperation.FieldSessionID)
	return u
}

// SetOpType sets the "op_type" field.
func (u *DeviceOperationUpsert) SetOpType(v string) *DeviceOperationUpsert {
	u.Set(deviceoperation.FieldOpType, v)
	return u
}

// UpdateOpType sets the "op_type" field to the value that was provided on create.
func (u *DeviceOperationUpsert) UpdateOpType() *DeviceOperationUpsert {
	u.SetExcluded(deviceoperation.FieldOpType)
	return u
}

// SetCommandType sets the "command_type" field.
func (u *DeviceOperationUpsert) SetCommandType(v string) *DeviceOperationUpsert {
	u.Set(deviceoperation.FieldCommandType, v)
	return u
}

// UpdateCommandType sets the "command_type" field to the value that was provided on create.
func (u *DeviceOperationUpsert) UpdateCommandType() *DeviceOperationUpsert {
	u.SetExcluded(deviceoperation.FieldCommandType)
	return u
}

// SetStatus sets the "status" field.
func (u *DeviceOperationUpsert) SetStatus(v deviceoperation.Status) *DeviceOperationUpsert {
	u.Set(deviceoperation.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DeviceOperationUpsert) UpdateStatus() *DeviceOperationUpsert {
	u.SetExcluded(deviceoperation.FieldStatus)
	return u
}

// SetPayload sets the "payload" field.
func (u *DeviceOperationUpsert) SetPayload(v map[string]interface{}) *DeviceOperationUpsert {
	u.Set(deviceoperation.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *DeviceOperationUpsert) UpdatePayload() *DeviceOperationUpsert {
	u.SetExcluded(deviceoperation.FieldPayload)
	return u
}

// ClearPayload clears the value of the "payload" field.
func (u *DeviceOperationUpsert) ClearPayload() *DeviceOperationUpsert {
	u.SetNull(deviceoperation.FieldPayload)
	return u
}

// SetResult sets the "result" field.
func (u *DeviceOperationUpsert) SetResult(v map[string]interface{}) *DeviceOperationUpsert {
	u.Set(deviceoperation.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *DeviceOperationUpsert) UpdateResult() *DeviceOperationUpsert {
	u.SetExcluded(deviceoperation.FieldResult)
	return u
}

// ClearResult clears the value of the "result" field.
func (u *DeviceOperationUpsert) ClearResult() *DeviceOperationUpsert {
	u.SetNull(deviceoperation.FieldResult)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *DeviceOperationUpsert) SetErrorMessage(v string) *DeviceOperationUpsert {
	u.Set(deviceoperation.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *DeviceOperationUpsert) UpdateErrorMessage() *DeviceOperationUpsert {
	u.SetExcluded(deviceoperation.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *DeviceOperationUpsert) ClearErrorMessage() *DeviceOperationUpsert {
	u.SetNull(deviceoperation.FieldErrorMessage)
	return u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *DeviceOperationUpsert) SetCreatedAtMs(v int64) *DeviceOperationUpsert {
	u.Set(deviceoperation.FieldCreatedAtMs, v)
	return u
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *DeviceOperationUpsert) UpdateCreatedAtMs() *DeviceOperationUpsert {
	u.SetExcluded(deviceoperation.FieldCreatedAtMs)
	return u
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *DeviceOperationUpsert) AddCreatedAtMs(v int64) *DeviceOperationUpsert {
	u.Add(deviceoperation.FieldCreatedAtMs, v)
	return u
}

// SetSentAtMs sets the "sent_at_ms" field.
func (u *DeviceOperationUpsert) SetSentAtMs(v int64) *DeviceOperationUpsert {
	u.Set(deviceoperation.FieldSentAtMs, v)
	return u
}

// UpdateSentAtMs sets the "sent_at_ms" field to the value that was provided on create.
func (u *DeviceOperationUpsert) UpdateSentAtMs() *DeviceOperationUpsert {
	u.SetExcluded(deviceoperation.FieldSentAtMs)
	return u
}

// AddSentAtMs adds v to the "sent_at_ms" field.
func (u *DeviceOperationUpsert) AddSentAtMs(v int64) *DeviceOperationUpsert {
	u.Add(deviceoperation.FieldSentAtMs, v)
	return u
}

// ClearSentAtMs clears the value of the "sent_at_ms" field.
func (u *DeviceOperationUpsert) ClearSentAtMs() *DeviceOperationUpsert {
	u.SetNull(deviceoperation.FieldSentAtMs)
	return u
}

// SetAckedAtMs sets the "acked_at_ms" field.
func (u *DeviceOperationUpsert) SetAckedAtMs(v int64) *DeviceOperationUpsert {
	u.Set(deviceoperation.FieldAckedAtMs, v)
	return u
}

// UpdateAckedAtMs sets the "acked_at_ms" field to the value that was provided on create.
func (u *DeviceOperationUpsert) UpdateAckedAtMs() *DeviceOperationUpsert {
	u.SetExcluded(deviceoperation.FieldAckedAtMs)
	return u
}

// AddAckedAtMs adds v to the "acked_at_ms" field.
func (u *DeviceOperationUpsert) AddAckedAtMs(v int64) *DeviceOperationUpsert {
	u.Add(deviceoperation.FieldAckedAtMs, v)
	return u
}

// ClearAckedAtMs clears the value of the "acked_at_ms" field.
func (u *DeviceOperationUpsert) ClearAckedAtMs() *DeviceOperationUpsert {
	u.SetNull(deviceoperation.FieldAckedAtMs)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DeviceOperation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(deviceoperation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DeviceOperationUpsertOne) UpdateNewValues() *DeviceOperationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(deviceoperation.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DeviceOperation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DeviceOperationUpsertOne) Ignore() *DeviceOperationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DeviceOperationUpsertOne) DoNothing() *DeviceOperationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DeviceOperationCreate.OnConflict
// documentation for more info.
func (u *DeviceOperationUpsertOne) Update(set func(*DeviceOperationUpsert)) *DeviceOperationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DeviceOperationUpsert{UpdateSet: update})
	}))
	return u
}

// SetDeviceID sets the "device_id" field.
func (u *DeviceOperationUpsertOne) SetDeviceID(v string) *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.SetDeviceID(v)
	})
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *DeviceOperationUpsertOne) UpdateDeviceID() *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.UpdateDeviceID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *DeviceOperationUpsertOne) SetSessionID(v string) *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *DeviceOperationUpsertOne) UpdateSessionID() *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *DeviceOperationUpsertOne) ClearSessionID() *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.ClearSessionID()
	})
}

// SetOpType sets the "op_type" field.
func (u *DeviceOperationUpsertOne) SetOpType(v string) *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.SetOpType(v)
	})
}

// UpdateOpType sets the "op_type" field to the value that was provided on create.
func (u *DeviceOperationUpsertOne) UpdateOpType() *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.UpdateOpType()
	})
}

// SetCommandType sets the "command_type" field.
func (u *DeviceOperationUpsertOne) SetCommandType(v string) *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.SetCommandType(v)
	})
}

// UpdateCommandType sets the "command_type" field to the value that was provided on create.
func (u *DeviceOperationUpsertOne) UpdateCommandType() *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.UpdateCommandType()
	})
}

// SetStatus sets the "status" field.
func (u *DeviceOperationUpsertOne) SetStatus(v deviceoperation.Status) *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DeviceOperationUpsertOne) UpdateStatus() *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.UpdateStatus()
	})
}

// SetPayload sets the "payload" field.
func (u *DeviceOperationUpsertOne) SetPayload(v map[string]interface{}) *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *DeviceOperationUpsertOne) UpdatePayload() *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *DeviceOperationUpsertOne) ClearPayload() *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.ClearPayload()
	})
}

// SetResult sets the "result" field.
func (u *DeviceOperationUpsertOne) SetResult(v map[string]interface{}) *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *DeviceOperationUpsertOne) UpdateResult() *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *DeviceOperationUpsertOne) ClearResult() *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.ClearResult()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *DeviceOperationUpsertOne) SetErrorMessage(v string) *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *DeviceOperationUpsertOne) UpdateErrorMessage() *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *DeviceOperationUpsertOne) ClearErrorMessage() *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *DeviceOperationUpsertOne) SetCreatedAtMs(v int64) *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.SetCreatedAtMs(v)
	})
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *DeviceOperationUpsertOne) AddCreatedAtMs(v int64) *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.AddCreatedAtMs(v)
	})
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *DeviceOperationUpsertOne) UpdateCreatedAtMs() *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.UpdateCreatedAtMs()
	})
}

// SetSentAtMs sets the "sent_at_ms" field.
func (u *DeviceOperationUpsertOne) SetSentAtMs(v int64) *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.SetSentAtMs(v)
	})
}

// AddSentAtMs adds v to the "sent_at_ms" field.
func (u *DeviceOperationUpsertOne) AddSentAtMs(v int64) *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.AddSentAtMs(v)
	})
}

// UpdateSentAtMs sets the "sent_at_ms" field to the value that was provided on create.
func (u *DeviceOperationUpsertOne) UpdateSentAtMs() *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.UpdateSentAtMs()
	})
}

// ClearSentAtMs clears the value of the "sent_at_ms" field.
func (u *DeviceOperationUpsertOne) ClearSentAtMs() *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.ClearSentAtMs()
	})
}

// SetAckedAtMs sets the "acked_at_ms" field.
func (u *DeviceOperationUpsertOne) SetAckedAtMs(v int64) *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.SetAckedAtMs(v)
	})
}

// AddAckedAtMs adds v to the "acked_at_ms" field.
func (u *DeviceOperationUpsertOne) AddAckedAtMs(v int64) *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.AddAckedAtMs(v)
	})
}

// UpdateAckedAtMs sets the "acked_at_ms" field to the value that was provided on create.
func (u *DeviceOperationUpsertOne) UpdateAckedAtMs() *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.UpdateAckedAtMs()
	})
}

// ClearAckedAtMs clears the value of the "acked_at_ms" field.
func (u *DeviceOperationUpsertOne) ClearAckedAtMs() *DeviceOperationUpsertOne {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.ClearAckedAtMs()
	})
}

// Exec executes the query.
func (u *DeviceOperationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DeviceOperationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DeviceOperationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DeviceOperationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DeviceOperationUpsertOne.ID is not supported by MySQL driver. Use DeviceOperationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DeviceOperationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DeviceOperationCreateBulk is the builder for creating many DeviceOperation entities in bulk.
type DeviceOperationCreateBulk struct {
	config
	err      error
	builders []*DeviceOperationCreate
	conflict []sql.ConflictOption
}

// Save creates the DeviceOperation entities in the database.
func (_c *DeviceOperationCreateBulk) Save(ctx context.Context) ([]*DeviceOperation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeviceOperation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeviceOperationMutation)
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
func (_c *DeviceOperationCreateBulk) SaveX(ctx context.Context) []*DeviceOperation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeviceOperationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeviceOperationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DeviceOperation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DeviceOperationUpsert) {
//			SetDeviceID(v+v).
//		}).
//		Exec(ctx)
func (_c *DeviceOperationCreateBulk) OnConflict(opts ...sql.ConflictOption) *DeviceOperationUpsertBulk {
	_c.conflict = opts
	return &DeviceOperationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DeviceOperation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DeviceOperationCreateBulk) OnConflictColumns(columns ...string) *DeviceOperationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DeviceOperationUpsertBulk{
		create: _c,
	}
}

// DeviceOperationUpsertBulk is the builder for "upsert"-ing
// a bulk of DeviceOperation nodes.
type DeviceOperationUpsertBulk struct {
	create *DeviceOperationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DeviceOperation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(deviceoperation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DeviceOperationUpsertBulk) UpdateNewValues() *DeviceOperationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(deviceoperation.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DeviceOperation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DeviceOperationUpsertBulk) Ignore() *DeviceOperationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DeviceOperationUpsertBulk) DoNothing() *DeviceOperationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DeviceOperationCreateBulk.OnConflict
// documentation for more info.
func (u *DeviceOperationUpsertBulk) Update(set func(*DeviceOperationUpsert)) *DeviceOperationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DeviceOperationUpsert{UpdateSet: update})
	}))
	return u
}

// SetDeviceID sets the "device_id" field.
func (u *DeviceOperationUpsertBulk) SetDeviceID(v string) *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.SetDeviceID(v)
	})
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *DeviceOperationUpsertBulk) UpdateDeviceID() *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.UpdateDeviceID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *DeviceOperationUpsertBulk) SetSessionID(v string) *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *DeviceOperationUpsertBulk) UpdateSessionID() *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *DeviceOperationUpsertBulk) ClearSessionID() *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.ClearSessionID()
	})
}

// SetOpType sets the "op_type" field.
func (u *DeviceOperationUpsertBulk) SetOpType(v string) *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.SetOpType(v)
	})
}

// UpdateOpType sets the "op_type" field to the value that was provided on create.
func (u *DeviceOperationUpsertBulk) UpdateOpType() *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.UpdateOpType()
	})
}

// SetCommandType sets the "command_type" field.
func (u *DeviceOperationUpsertBulk) SetCommandType(v string) *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.SetCommandType(v)
	})
}

// UpdateCommandType sets the "command_type" field to the value that was provided on create.
func (u *DeviceOperationUpsertBulk) UpdateCommandType() *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.UpdateCommandType()
	})
}

// SetStatus sets the "status" field.
func (u *DeviceOperationUpsertBulk) SetStatus(v deviceoperation.Status) *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DeviceOperationUpsertBulk) UpdateStatus() *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.UpdateStatus()
	})
}

// SetPayload sets the "payload" field.
func (u *DeviceOperationUpsertBulk) SetPayload(v map[string]interface{}) *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *DeviceOperationUpsertBulk) UpdatePayload() *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *DeviceOperationUpsertBulk) ClearPayload() *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.ClearPayload()
	})
}

// SetResult sets the "result" field.
func (u *DeviceOperationUpsertBulk) SetResult(v map[string]interface{}) *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *DeviceOperationUpsertBulk) UpdateResult() *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *DeviceOperationUpsertBulk) ClearResult() *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.ClearResult()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *DeviceOperationUpsertBulk) SetErrorMessage(v string) *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *DeviceOperationUpsertBulk) UpdateErrorMessage() *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *DeviceOperationUpsertBulk) ClearErrorMessage() *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *DeviceOperationUpsertBulk) SetCreatedAtMs(v int64) *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.SetCreatedAtMs(v)
	})
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *DeviceOperationUpsertBulk) AddCreatedAtMs(v int64) *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.AddCreatedAtMs(v)
	})
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *DeviceOperationUpsertBulk) UpdateCreatedAtMs() *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.UpdateCreatedAtMs()
	})
}

// SetSentAtMs sets the "sent_at_ms" field.
func (u *DeviceOperationUpsertBulk) SetSentAtMs(v int64) *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.SetSentAtMs(v)
	})
}

// AddSentAtMs adds v to the "sent_at_ms" field.
func (u *DeviceOperationUpsertBulk) AddSentAtMs(v int64) *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.AddSentAtMs(v)
	})
}

// UpdateSentAtMs sets the "sent_at_ms" field to the value that was provided on create.
func (u *DeviceOperationUpsertBulk) UpdateSentAtMs() *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.UpdateSentAtMs()
	})
}

// ClearSentAtMs clears the value of the "sent_at_ms" field.
func (u *DeviceOperationUpsertBulk) ClearSentAtMs() *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.ClearSentAtMs()
	})
}

// SetAckedAtMs sets the "acked_at_ms" field.
func (u *DeviceOperationUpsertBulk) SetAckedAtMs(v int64) *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.SetAckedAtMs(v)
	})
}

// AddAckedAtMs adds v to the "acked_at_ms" field.
func (u *DeviceOperationUpsertBulk) AddAckedAtMs(v int64) *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.AddAckedAtMs(v)
	})
}

// UpdateAckedAtMs sets the "acked_at_ms" field to the value that was provided on create.
func (u *DeviceOperationUpsertBulk) UpdateAckedAtMs() *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.UpdateAckedAtMs()
	})
}

// ClearAckedAtMs clears the value of the "acked_at_ms" field.
func (u *DeviceOperationUpsertBulk) ClearAckedAtMs() *DeviceOperationUpsertBulk {
	return u.Update(func(s *DeviceOperationUpsert) {
		s.ClearAckedAtMs()
	})
}

// Exec executes the query.
func (u *DeviceOperationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DeviceOperationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DeviceOperationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DeviceOperationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
