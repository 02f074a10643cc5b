// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencane/edged/ent/devicebinding"
)

// DeviceBindingCreate is the builder for creating a DeviceBinding entity.
type DeviceBindingCreate struct {
	config
	mutation *DeviceBindingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDeviceID sets the "device_id" field.
func (_c *DeviceBindingCreate) SetDeviceID(v string) *DeviceBindingCreate {
	_c.mutation.SetDeviceID(v)
	return _c
}

// SetDeviceTokenHash sets the "device_token_hash" field.
func (_c *DeviceBindingCreate) SetDeviceTokenHash(v string) *DeviceBindingCreate {
	_c.mutation.SetDeviceTokenHash(v)
	return _c
}

// SetNillableDeviceTokenHash sets the "device_token_hash" field if the given value is not nil.
func (_c *DeviceBindingCreate) SetNillableDeviceTokenHash(v *string) *DeviceBindingCreate {
	if v != nil {
		_c.SetDeviceTokenHash(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DeviceBindingCreate) SetStatus(v devicebinding.Status) *DeviceBindingCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DeviceBindingCreate) SetNillableStatus(v *devicebinding.Status) *DeviceBindingCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *DeviceBindingCreate) SetUserID(v string) *DeviceBindingCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *DeviceBindingCreate) SetNillableUserID(v *string) *DeviceBindingCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetBindingMetadata sets the "binding_metadata" field.
func (_c *DeviceBindingCreate) SetBindingMetadata(v map[string]interface{}) *DeviceBindingCreate {
	_c.mutation.SetBindingMetadata(v)
	return _c
}

// SetActivatedAtMs sets the "activated_at_ms" field.
func (_c *DeviceBindingCreate) SetActivatedAtMs(v int64) *DeviceBindingCreate {
	_c.mutation.SetActivatedAtMs(v)
	return _c
}

// SetNillableActivatedAtMs sets the "activated_at_ms" field if the given value is not nil.
func (_c *DeviceBindingCreate) SetNillableActivatedAtMs(v *int64) *DeviceBindingCreate {
	if v != nil {
		_c.SetActivatedAtMs(*v)
	}
	return _c
}

// SetRevokedAtMs sets the "revoked_at_ms" field.
func (_c *DeviceBindingCreate) SetRevokedAtMs(v int64) *DeviceBindingCreate {
	_c.mutation.SetRevokedAtMs(v)
	return _c
}

// SetNillableRevokedAtMs sets the "revoked_at_ms" field if the given value is not nil.
func (_c *DeviceBindingCreate) SetNillableRevokedAtMs(v *int64) *DeviceBindingCreate {
	if v != nil {
		_c.SetRevokedAtMs(*v)
	}
	return _c
}

// SetRevokeReason sets the "revoke_reason" field.
func (_c *DeviceBindingCreate) SetRevokeReason(v string) *DeviceBindingCreate {
	_c.mutation.SetRevokeReason(v)
	return _c
}

// SetNillableRevokeReason sets the "revoke_reason" field if the given value is not nil.
func (_c *DeviceBindingCreate) SetNillableRevokeReason(v *string) *DeviceBindingCreate {
	if v != nil {
		_c.SetRevokeReason(*v)
	}
	return _c
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_c *DeviceBindingCreate) SetCreatedAtMs(v int64) *DeviceBindingCreate {
	_c.mutation.SetCreatedAtMs(v)
	return _c
}

// SetUpdatedAtMs sets the "updated_at_ms" field.
func (_c *DeviceBindingCreate) SetUpdatedAtMs(v int64) *DeviceBindingCreate {
	_c.mutation.SetUpdatedAtMs(v)
	return _c
}

// Mutation returns the DeviceBindingMutation object of the builder.
func (_c *DeviceBindingCreate) Mutation() *DeviceBindingMutation {
	return _c.mutation
}

// Save creates the DeviceBinding in the database.
func (_c *DeviceBindingCreate) Save(ctx context.Context) (*DeviceBinding, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeviceBindingCreate) SaveX(ctx context.Context) *DeviceBinding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeviceBindingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeviceBindingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeviceBindingCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := devicebinding.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeviceBindingCreate) check() error {
	if _, ok := _c.mutation.DeviceID(); !ok {
		return &ValidationError{Name: "device_id", err: errors.New(`ent: missing required field "DeviceBinding.device_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DeviceBinding.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := devicebinding.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DeviceBinding.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAtMs(); !ok {
		return &ValidationError{Name: "created_at_ms", err: errors.New(`ent: missing required field "DeviceBinding.created_at_ms"`)}
	}
	if _, ok := _c.mutation.UpdatedAtMs(); !ok {
		return &ValidationError{Name: "updated_at_ms", err: errors.New(`ent: missing required field "DeviceBinding.updated_at_ms"`)}
	}
	return nil
}

func (_c *DeviceBindingCreate) sqlSave(ctx context.Context) (*DeviceBinding, error) {
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

func (_c *DeviceBindingCreate) createSpec() (*DeviceBinding, *sqlgraph.CreateSpec) {
	var (
		_node = &DeviceBinding{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(devicebinding.Table, sqlgraph.NewFieldSpec(devicebinding.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.DeviceID(); ok {
		_spec.SetField(devicebinding.FieldDeviceID, field.TypeString, value)
		_node.DeviceID = value
	}
	if value, ok := _c.mutation.DeviceTokenHash(); ok {
		_spec.SetField(devicebinding.FieldDeviceTokenHash, field.TypeString, value)
		_node.DeviceTokenHash = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(devicebinding.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(devicebinding.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.BindingMetadata(); ok {
		_spec.SetField(devicebinding.FieldBindingMetadata, field.TypeJSON, value)
		_node.BindingMetadata = value
	}
	if value, ok := _c.mutation.ActivatedAtMs(); ok {
		_spec.SetField(devicebinding.FieldActivatedAtMs, field.TypeInt64, value)
		_node.ActivatedAtMs = value
	}
	if value, ok := _c.mutation.RevokedAtMs(); ok {
		_spec.SetField(devicebinding.FieldRevokedAtMs, field.TypeInt64, value)
		_node.RevokedAtMs = value
	}
	if value, ok := _c.mutation.RevokeReason(); ok {
		_spec.SetField(devicebinding.FieldRevokeReason, field.TypeString, value)
		_node.RevokeReason = value
	}
	if value, ok := _c.mutation.CreatedAtMs(); ok {
		_spec.SetField(devicebinding.FieldCreatedAtMs, field.TypeInt64, value)
		_node.CreatedAtMs = value
	}
	if value, ok := _c.mutation.UpdatedAtMs(); ok {
		_spec.SetField(devicebinding.FieldUpdatedAtMs, field.TypeInt64, value)
		_node.UpdatedAtMs = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DeviceBinding.Create().
//		SetDeviceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DeviceBindingUpsert) {
//			SetDeviceID(v+v).
//		}).
//		Exec(ctx)
func (_c *DeviceBindingCreate) OnConflict(opts ...sql.ConflictOption) *DeviceBindingUpsertOne {
	_c.conflict = opts
	return &DeviceBindingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DeviceBinding.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DeviceBindingCreate) OnConflictColumns(columns ...string) *DeviceBindingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DeviceBindingUpsertOne{
		create: _c,
	}
}

type (
	// DeviceBindingUpsertOne is the builder for "upsert"-ing
	//  one DeviceBinding node.
	DeviceBindingUpsertOne struct {
		create *DeviceBindingCreate
	}

	// DeviceBindingUpsert is the "OnConflict" setter.
	DeviceBindingUpsert struct {
		*sql.UpdateSet
	}
)

// SetDeviceID sets the "device_id" field.
func (u *DeviceBindingUpsert) SetDeviceID(v string) *DeviceBindingUpsert {
	u.Set(devicebinding.FieldDeviceID, v)
	return u
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *DeviceBindingUpsert) UpdateDeviceID() *DeviceBindingUpsert {
	u.SetExcluded(devicebinding.FieldDeviceID)
	return u
}

// SetDeviceTokenHash sets the "device_token_hash" field.
func (u *DeviceBindingUpsert) SetDeviceTokenHash(v string) *DeviceBindingUpsert {
	u.Set(devicebinding.FieldDeviceTokenHash, v)
	return u
}

// UpdateDeviceTokenHash sets the "device_token_hash" field to the value that was provided on create.
func (u *DeviceBindingUpsert) UpdateDeviceTokenHash() *DeviceBindingUpsert {
	u.SetExcluded(devicebinding.FieldDeviceTokenHash)
	return u
}

// ClearDeviceTokenHash clears the value of the "device_token_hash" field.
func (u *DeviceBindingUpsert) ClearDeviceTokenHash() *DeviceBindingUpsert {
	u.SetNull(devicebinding.FieldDeviceTokenHash)
	return u
}

// SetStatus sets the "status" field.
func (u *DeviceBindingUpsert) SetStatus(v devicebinding.Status) *DeviceBindingUpsert {
	u.Set(devicebinding.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DeviceBindingUpsert) UpdateStatus() *DeviceBindingUpsert {
	u.SetExcluded(devicebinding.FieldStatus)
	return u
}

// SetUserID sets the "user_id" field.
func (u *DeviceBindingUpsert) SetUserID(v string) *DeviceBindingUpsert {
	u.Set(devicebinding.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DeviceBindingUpsert) UpdateUserID() *DeviceBindingUpsert {
	u.SetExcluded(devicebinding.FieldUserID)
	return u
}

// ClearUserID clears the value of the "user_id" field.
func (u *DeviceBindingUpsert) ClearUserID() *DeviceBindingUpsert {
	u.SetNull(devicebinding.FieldUserID)
	return u
}

// SetBindingMetadata sets the "binding_metadata" field.
func (u *DeviceBindingUpsert) SetBindingMetadata(v map[string]interface{}) *DeviceBindingUpsert {
	u.Set(devicebinding.FieldBindingMetadata, v)
	return u
}

// UpdateBindingMetadata sets the "binding_metadata" field to the value that was provided on create.
func (u *DeviceBindingUpsert) UpdateBindingMetadata() *DeviceBindingUpsert {
	u.SetExcluded(devicebinding.FieldBindingMetadata)
	return u
}

// ClearBindingMetadata clears the value of the "binding_metadata" field.
func (u *DeviceBindingUpsert) ClearBindingMetadata() *DeviceBindingUpsert {
	u.SetNull(devicebinding.FieldBindingMetadata)
	return u
}

// SetActivatedAtMs sets the "activated_at_ms" field.
func (u *DeviceBindingUpsert) SetActivatedAtMs(v int64) *DeviceBindingUpsert {
	u.Set(devicebinding.FieldActivatedAtMs, v)
	return u
}

// UpdateActivatedAtMs sets the "activated_at_ms" field to the value that was provided on create.
func (u *DeviceBindingUpsert) UpdateActivatedAtMs() *DeviceBindingUpsert {
	u.SetExcluded(devicebinding.FieldActivatedAtMs)
	return u
}

// AddActivatedAtMs adds v to the "activated_at_ms" field.
func (u *DeviceBindingUpsert) AddActivatedAtMs(v int64) *DeviceBindingUpsert {
	u.Add(devicebinding.FieldActivatedAtMs, v)
	return u
}

// ClearActivatedAtMs clears the value of the "activated_at_ms" field.
func (u *DeviceBindingUpsert) ClearActivatedAtMs() *DeviceBindingUpsert {
	u.SetNull(devicebinding.FieldActivatedAtMs)
	return u
}

// SetRevokedAtMs sets the "revoked_at_ms" field.
func (u *DeviceBindingUpsert) SetRevokedAtMs(v int64) *DeviceBindingUpsert {
	u.Set(devicebinding.FieldRevokedAtMs, v)
	return u
}

// UpdateRevokedAtMs sets the "revoked_at_ms" field to the value that was provided on create.
func (u *DeviceBindingUpsert) UpdateRevokedAtMs() *DeviceBindingUpsert {
	u.SetExcluded(devicebinding.FieldRevokedAtMs)
	return u
}

// AddRevokedAtMs adds v to the "revoked_at_ms" field.
func (u *DeviceBindingUpsert) AddRevokedAtMs(v int64) *DeviceBindingUpsert {
	u.Add(devicebinding.FieldRevokedAtMs, v)
	return u
}

// ClearRevokedAtMs clears the value of the "revoked_at_ms" field.
func (u *DeviceBindingUpsert) ClearRevokedAtMs() *DeviceBindingUpsert {
	u.SetNull(devicebinding.FieldRevokedAtMs)
	return u
}

// SetRevokeReason sets the "revoke_reason" field.
func (u *DeviceBindingUpsert) SetRevokeReason(v string) *DeviceBindingUpsert {
	u.Set(devicebinding.FieldRevokeReason, v)
	return u
}

// UpdateRevokeReason sets the "revoke_reason" field to the value that was provided on create.
func (u *DeviceBindingUpsert) UpdateRevokeReason() *DeviceBindingUpsert {
	u.SetExcluded(devicebinding.FieldRevokeReason)
	return u
}

// ClearRevokeReason clears the value of the "revoke_reason" field.
func (u *DeviceBindingUpsert) ClearRevokeReason() *DeviceBindingUpsert {
	u.SetNull(devicebinding.FieldRevokeReason)
	return u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *DeviceBindingUpsert) SetCreatedAtMs(v int64) *DeviceBindingUpsert {
	u.Set(devicebinding.FieldCreatedAtMs, v)
	return u
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *DeviceBindingUpsert) UpdateCreatedAtMs() *DeviceBindingUpsert {
	u.SetExcluded(devicebinding.FieldCreatedAtMs)
	return u
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *DeviceBindingUpsert) AddCreatedAtMs(v int64) *DeviceBindingUpsert {
	u.Add(devicebinding.FieldCreatedAtMs, v)
	return u
}

// SetUpdatedAtMs sets the "updated_at_ms" field.
func (u *DeviceBindingUpsert) SetUpdatedAtMs(v int64) *DeviceBindingUpsert {
	u.Set(devicebinding.FieldUpdatedAtMs, v)
	return u
}

// UpdateUpdatedAtMs sets the "updated_at_ms" field to the value that was provided on create.
func (u *DeviceBindingUpsert) UpdateUpdatedAtMs() *DeviceBindingUpsert {
	u.SetExcluded(devicebinding.FieldUpdatedAtMs)
	return u
}

// AddUpdatedAtMs adds v to the "updated_at_ms" field.
func (u *DeviceBindingUpsert) AddUpdatedAtMs(v int64) *DeviceBindingUpsert {
	u.Add(devicebinding.FieldUpdatedAtMs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.DeviceBinding.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DeviceBindingUpsertOne) UpdateNewValues() *DeviceBindingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DeviceBinding.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DeviceBindingUpsertOne) Ignore() *DeviceBindingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DeviceBindingUpsertOne) DoNothing() *DeviceBindingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DeviceBindingCreate.OnConflict
// documentation for more info.
func (u *DeviceBindingUpsertOne) Update(set func(*DeviceBindingUpsert)) *DeviceBindingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DeviceBindingUpsert{UpdateSet: update})
	}))
	return u
}

// SetDeviceID sets the "device_id" field.
func (u *DeviceBindingUpsertOne) SetDeviceID(v string) *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.SetDeviceID(v)
	})
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *DeviceBindingUpsertOne) UpdateDeviceID() *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.UpdateDeviceID()
	})
}

// SetDeviceTokenHash sets the "device_token_hash" field.
func (u *DeviceBindingUpsertOne) SetDeviceTokenHash(v string) *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.SetDeviceTokenHash(v)
	})
}

// UpdateDeviceTokenHash sets the "device_token_hash" field to the value that was provided on create.
func (u *DeviceBindingUpsertOne) UpdateDeviceTokenHash() *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.UpdateDeviceTokenHash()
	})
}

// ClearDeviceTokenHash clears the value of the "device_token_hash" field.
func (u *DeviceBindingUpsertOne) ClearDeviceTokenHash() *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.ClearDeviceTokenHash()
	})
}

// SetStatus sets the "status" field.
func (u *DeviceBindingUpsertOne) SetStatus(v devicebinding.Status) *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DeviceBindingUpsertOne) UpdateStatus() *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.UpdateStatus()
	})
}

// SetUserID sets the "user_id" field.
func (u *DeviceBindingUpsertOne) SetUserID(v string) *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DeviceBindingUpsertOne) UpdateUserID() *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *DeviceBindingUpsertOne) ClearUserID() *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.ClearUserID()
	})
}

// SetBindingMetadata sets the "binding_metadata" field.
func (u *DeviceBindingUpsertOne) SetBindingMetadata(v map[string]interface{}) *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.SetBindingMetadata(v)
	})
}

// UpdateBindingMetadata sets the "binding_metadata" field to the value that was provided on create.
func (u *DeviceBindingUpsertOne) UpdateBindingMetadata() *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.UpdateBindingMetadata()
	})
}

// ClearBindingMetadata clears the value of the "binding_metadata" field.
func (u *DeviceBindingUpsertOne) ClearBindingMetadata() *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.ClearBindingMetadata()
	})
}

// SetActivatedAtMs sets the "activated_at_ms" field.
func (u *DeviceBindingUpsertOne) SetActivatedAtMs(v int64) *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.SetActivatedAtMs(v)
	})
}

// AddActivatedAtMs adds v to the "activated_at_ms" field.
func (u *DeviceBindingUpsertOne) AddActivatedAtMs(v int64) *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.AddActivatedAtMs(v)
	})
}

// UpdateActivatedAtMs sets the "activated_at_ms" field to the value that was provided on create.
func (u *DeviceBindingUpsertOne) UpdateActivatedAtMs() *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.UpdateActivatedAtMs()
	})
}

// ClearActivatedAtMs clears the value of the "activated_at_ms" field.
func (u *DeviceBindingUpsertOne) ClearActivatedAtMs() *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.ClearActivatedAtMs()
	})
}

// SetRevokedAtMs sets the "revoked_at_ms" field.
func (u *DeviceBindingUpsertOne) SetRevokedAtMs(v int64) *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.SetRevokedAtMs(v)
	})
}

// AddRevokedAtMs adds v to the "revoked_at_ms" field.
func (u *DeviceBindingUpsertOne) AddRevokedAtMs(v int64) *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.AddRevokedAtMs(v)
	})
}

// UpdateRevokedAtMs sets the "revoked_at_ms" field to the value that was provided on create.
func (u *DeviceBindingUpsertOne) UpdateRevokedAtMs() *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.UpdateRevokedAtMs()
	})
}

// ClearRevokedAtMs clears the value of the "revoked_at_ms" field.
func (u *DeviceBindingUpsertOne) ClearRevokedAtMs() *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.ClearRevokedAtMs()
	})
}

// SetRevokeReason sets the "revoke_reason" field.
func (u *DeviceBindingUpsertOne) SetRevokeReason(v string) *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.SetRevokeReason(v)
	})
}

// UpdateRevokeReason sets the "revoke_reason" field to the value that was provided on create.
func (u *DeviceBindingUpsertOne) UpdateRevokeReason() *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.UpdateRevokeReason()
	})
}

// ClearRevokeReason clears the value of the "revoke_reason" field.
func (u *DeviceBindingUpsertOne) ClearRevokeReason() *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.ClearRevokeReason()
	})
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *DeviceBindingUpsertOne) SetCreatedAtMs(v int64) *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.SetCreatedAtMs(v)
	})
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *DeviceBindingUpsertOne) AddCreatedAtMs(v int64) *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.AddCreatedAtMs(v)
	})
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *DeviceBindingUpsertOne) UpdateCreatedAtMs() *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.UpdateCreatedAtMs()
	})
}

// SetUpdatedAtMs sets the "updated_at_ms" field.
func (u *DeviceBindingUpsertOne) SetUpdatedAtMs(v int64) *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.SetUpdatedAtMs(v)
	})
}

// AddUpdatedAtMs adds v to the "updated_at_ms" field.
func (u *DeviceBindingUpsertOne) AddUpdatedAtMs(v int64) *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.AddUpdatedAtMs(v)
	})
}

// UpdateUpdatedAtMs sets the "updated_at_ms" field to the value that was provided on create.
func (u *DeviceBindingUpsertOne) UpdateUpdatedAtMs() *DeviceBindingUpsertOne {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.UpdateUpdatedAtMs()
	})
}

// Exec executes the query.
func (u *DeviceBindingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DeviceBindingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DeviceBindingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DeviceBindingUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DeviceBindingUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DeviceBindingCreateBulk is the builder for creating many DeviceBinding entities in bulk.
type DeviceBindingCreateBulk struct {
	config
	err      error
	builders []*DeviceBindingCreate
	conflict []sql.ConflictOption
}

// Save creates the DeviceBinding entities in the database.
func (_c *DeviceBindingCreateBulk) Save(ctx context.Context) ([]*DeviceBinding, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeviceBinding, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeviceBindingMutation)
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
func (_c *DeviceBindingCreateBulk) SaveX(ctx context.Context) []*DeviceBinding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeviceBindingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeviceBindingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DeviceBinding.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DeviceBindingUpsert) {
//			SetDeviceID(v+v).
//		}).
//		Exec(ctx)
func (_c *DeviceBindingCreateBulk) OnConflict(opts ...sql.ConflictOption) *DeviceBindingUpsertBulk {
	_c.conflict = opts
	return &DeviceBindingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DeviceBinding.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DeviceBindingCreateBulk) OnConflictColumns(columns ...string) *DeviceBindingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DeviceBindingUpsertBulk{
		create: _c,
	}
}

// DeviceBindingUpsertBulk is the builder for "upsert"-ing
// a bulk of DeviceBinding nodes.
type DeviceBindingUpsertBulk struct {
	create *DeviceBindingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DeviceBinding.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DeviceBindingUpsertBulk) UpdateNewValues() *DeviceBindingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DeviceBinding.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DeviceBindingUpsertBulk) Ignore() *DeviceBindingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DeviceBindingUpsertBulk) DoNothing() *DeviceBindingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DeviceBindingCreateBulk.OnConflict
// documentation for more info.
func (u *DeviceBindingUpsertBulk) Update(set func(*DeviceBindingUpsert)) *DeviceBindingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DeviceBindingUpsert{UpdateSet: update})
	}))
	return u
}

// SetDeviceID sets the "device_id" field.
func (u *DeviceBindingUpsertBulk) SetDeviceID(v string) *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.SetDeviceID(v)
	})
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *DeviceBindingUpsertBulk) UpdateDeviceID() *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.UpdateDeviceID()
	})
}

// SetDeviceTokenHash sets the "device_token_hash" field.
func (u *DeviceBindingUpsertBulk) SetDeviceTokenHash(v string) *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.SetDeviceTokenHash(v)
	})
}

// UpdateDeviceTokenHash sets the "device_token_hash" field to the value that was provided on create.
func (u *DeviceBindingUpsertBulk) UpdateDeviceTokenHash() *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.UpdateDeviceTokenHash()
	})
}

// ClearDeviceTokenHash clears the value of the "device_token_hash" field.
func (u *DeviceBindingUpsertBulk) ClearDeviceTokenHash() *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.ClearDeviceTokenHash()
	})
}

// SetStatus sets the "status" field.
func (u *DeviceBindingUpsertBulk) SetStatus(v devicebinding.Status) *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DeviceBindingUpsertBulk) UpdateStatus() *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.UpdateStatus()
	})
}

// SetUserID sets the "user_id" field.
func (u *DeviceBindingUpsertBulk) SetUserID(v string) *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DeviceBindingUpsertBulk) UpdateUserID() *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *DeviceBindingUpsertBulk) ClearUserID() *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.ClearUserID()
	})
}

// SetBindingMetadata sets the "binding_metadata" field.
func (u *DeviceBindingUpsertBulk) SetBindingMetadata(v map[string]interface{}) *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.SetBindingMetadata(v)
	})
}

// UpdateBindingMetadata sets the "binding_metadata" field to the value that was provided on create.
func (u *DeviceBindingUpsertBulk) UpdateBindingMetadata() *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.UpdateBindingMetadata()
	})
}

// ClearBindingMetadata clears the value of the "binding_metadata" field.
func (u *DeviceBindingUpsertBulk) ClearBindingMetadata() *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.ClearBindingMetadata()
	})
}

// SetActivatedAtMs sets the "activated_at_ms" field.
func (u *DeviceBindingUpsertBulk) SetActivatedAtMs(v int64) *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.SetActivatedAtMs(v)
	})
}

// AddActivatedAtMs adds v to the "activated_at_ms" field.
func (u *DeviceBindingUpsertBulk) AddActivatedAtMs(v int64) *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.AddActivatedAtMs(v)
	})
}

// UpdateActivatedAtMs sets the "activated_at_ms" field to the value that was provided on create.
func (u *DeviceBindingUpsertBulk) UpdateActivatedAtMs() *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.UpdateActivatedAtMs()
	})
}

// ClearActivatedAtMs clears the value of the "activated_at_ms" field.
func (u *DeviceBindingUpsertBulk) ClearActivatedAtMs() *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.ClearActivatedAtMs()
	})
}

// SetRevokedAtMs sets the "revoked_at_ms" field.
func (u *DeviceBindingUpsertBulk) SetRevokedAtMs(v int64) *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.SetRevokedAtMs(v)
	})
}

// AddRevokedAtMs adds v to the "revoked_at_ms" field.
func (u *DeviceBindingUpsertBulk) AddRevokedAtMs(v int64) *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.AddRevokedAtMs(v)
	})
}

// UpdateRevokedAtMs sets the "revoked_at_ms" field to the value that was provided on create.
func (u *DeviceBindingUpsertBulk) UpdateRevokedAtMs() *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.UpdateRevokedAtMs()
	})
}

// ClearRevokedAtMs clears the value of the "revoked_at_ms" field.
func (u *DeviceBindingUpsertBulk) ClearRevokedAtMs() *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.ClearRevokedAtMs()
	})
}

// SetRevokeReason sets the "revoke_reason" field.
func (u *DeviceBindingUpsertBulk) SetRevokeReason(v string) *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.SetRevokeReason(v)
	})
}

// UpdateRevokeReason sets the "revoke_reason" field to the value that was provided on create.
func (u *DeviceBindingUpsertBulk) UpdateRevokeReason() *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.UpdateRevokeReason()
	})
}

// ClearRevokeReason clears the value of the "revoke_reason" field.
func (u *DeviceBindingUpsertBulk) ClearRevokeReason() *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.ClearRevokeReason()
	})
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *DeviceBindingUpsertBulk) SetCreatedAtMs(v int64) *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.SetCreatedAtMs(v)
	})
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *DeviceBindingUpsertBulk) AddCreatedAtMs(v int64) *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.AddCreatedAtMs(v)
	})
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *DeviceBindingUpsertBulk) UpdateCreatedAtMs() *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.UpdateCreatedAtMs()
	})
}

// SetUpdatedAtMs sets the "updated_at_ms" field.
func (u *DeviceBindingUpsertBulk) SetUpdatedAtMs(v int64) *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.SetUpdatedAtMs(v)
	})
}

// AddUpdatedAtMs adds v to the "updated_at_ms" field.
func (u *DeviceBindingUpsertBulk) AddUpdatedAtMs(v int64) *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.AddUpdatedAtMs(v)
	})
}

// UpdateUpdatedAtMs sets the "updated_at_ms" field to the value that was provided on create.
func (u *DeviceBindingUpsertBulk) UpdateUpdatedAtMs() *DeviceBindingUpsertBulk {
	return u.Update(func(s *DeviceBindingUpsert) {
		s.UpdateUpdatedAtMs()
	})
}

// Exec executes the query.
func (u *DeviceBindingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DeviceBindingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DeviceBindingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DeviceBindingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
