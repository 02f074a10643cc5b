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
	"github.com/opencane/edged/ent/predicate"
)

// DeviceBindingUpdate is the builder for updating DeviceBinding entities.
type DeviceBindingUpdate struct {
	config
	hooks    []Hook
	mutation *DeviceBindingMutation
}

// Where appends a list predicates to the DeviceBindingUpdate builder.
func (_u *DeviceBindingUpdate) Where(ps ...predicate.DeviceBinding) *DeviceBindingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDeviceID sets the "device_id" field.
func (_u *DeviceBindingUpdate) SetDeviceID(v string) *DeviceBindingUpdate {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *DeviceBindingUpdate) SetNillableDeviceID(v *string) *DeviceBindingUpdate {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// SetDeviceTokenHash sets the "device_token_hash" field.
func (_u *DeviceBindingUpdate) SetDeviceTokenHash(v string) *DeviceBindingUpdate {
	_u.mutation.SetDeviceTokenHash(v)
	return _u
}

// SetNillableDeviceTokenHash sets the "device_token_hash" field if the given value is not nil.
func (_u *DeviceBindingUpdate) SetNillableDeviceTokenHash(v *string) *DeviceBindingUpdate {
	if v != nil {
		_u.SetDeviceTokenHash(*v)
	}
	return _u
}

// ClearDeviceTokenHash clears the value of the "device_token_hash" field.
func (_u *DeviceBindingUpdate) ClearDeviceTokenHash() *DeviceBindingUpdate {
	_u.mutation.ClearDeviceTokenHash()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DeviceBindingUpdate) SetStatus(v devicebinding.Status) *DeviceBindingUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DeviceBindingUpdate) SetNillableStatus(v *devicebinding.Status) *DeviceBindingUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DeviceBindingUpdate) SetUserID(v string) *DeviceBindingUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DeviceBindingUpdate) SetNillableUserID(v *string) *DeviceBindingUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *DeviceBindingUpdate) ClearUserID() *DeviceBindingUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetBindingMetadata sets the "binding_metadata" field.
func (_u *DeviceBindingUpdate) SetBindingMetadata(v map[string]interface{}) *DeviceBindingUpdate {
	_u.mutation.SetBindingMetadata(v)
	return _u
}

// ClearBindingMetadata clears the value of the "binding_metadata" field.
func (_u *DeviceBindingUpdate) ClearBindingMetadata() *DeviceBindingUpdate {
	_u.mutation.ClearBindingMetadata()
	return _u
}

// SetActivatedAtMs sets the "activated_at_ms" field.
func (_u *DeviceBindingUpdate) SetActivatedAtMs(v int64) *DeviceBindingUpdate {
	_u.mutation.ResetActivatedAtMs()
	_u.mutation.SetActivatedAtMs(v)
	return _u
}

// SetNillableActivatedAtMs sets the "activated_at_ms" field if the given value is not nil.
func (_u *DeviceBindingUpdate) SetNillableActivatedAtMs(v *int64) *DeviceBindingUpdate {
	if v != nil {
		_u.SetActivatedAtMs(*v)
	}
	return _u
}

// AddActivatedAtMs adds value to the "activated_at_ms" field.
func (_u *DeviceBindingUpdate) AddActivatedAtMs(v int64) *DeviceBindingUpdate {
	_u.mutation.AddActivatedAtMs(v)
	return _u
}

// ClearActivatedAtMs clears the value of the "activated_at_ms" field.
func (_u *DeviceBindingUpdate) ClearActivatedAtMs() *DeviceBindingUpdate {
	_u.mutation.ClearActivatedAtMs()
	return _u
}

// SetRevokedAtMs sets the "revoked_at_ms" field.
func (_u *DeviceBindingUpdate) SetRevokedAtMs(v int64) *DeviceBindingUpdate {
	_u.mutation.ResetRevokedAtMs()
	_u.mutation.SetRevokedAtMs(v)
	return _u
}

// SetNillableRevokedAtMs sets the "revoked_at_ms" field if the given value is not nil.
func (_u *DeviceBindingUpdate) SetNillableRevokedAtMs(v *int64) *DeviceBindingUpdate {
	if v != nil {
		_u.SetRevokedAtMs(*v)
	}
	return _u
}

// AddRevokedAtMs adds value to the "revoked_at_ms" field.
func (_u *DeviceBindingUpdate) AddRevokedAtMs(v int64) *DeviceBindingUpdate {
	_u.mutation.AddRevokedAtMs(v)
	return _u
}

// ClearRevokedAtMs clears the value of the "revoked_at_ms" field.
func (_u *DeviceBindingUpdate) ClearRevokedAtMs() *DeviceBindingUpdate {
	_u.mutation.ClearRevokedAtMs()
	return _u
}

// SetRevokeReason sets the "revoke_reason" field.
func (_u *DeviceBindingUpdate) SetRevokeReason(v string) *DeviceBindingUpdate {
	_u.mutation.SetRevokeReason(v)
	return _u
}

// SetNillableRevokeReason sets the "revoke_reason" field if the given value is not nil.
func (_u *DeviceBindingUpdate) SetNillableRevokeReason(v *string) *DeviceBindingUpdate {
	if v != nil {
		_u.SetRevokeReason(*v)
	}
	return _u
}

// ClearRevokeReason clears the value of the "revoke_reason" field.
func (_u *DeviceBindingUpdate) ClearRevokeReason() *DeviceBindingUpdate {
	_u.mutation.ClearRevokeReason()
	return _u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_u *DeviceBindingUpdate) SetCreatedAtMs(v int64) *DeviceBindingUpdate {
	_u.mutation.ResetCreatedAtMs()
	_u.mutation.SetCreatedAtMs(v)
	return _u
}

// SetNillableCreatedAtMs sets the "created_at_ms" field if the given value is not nil.
func (_u *DeviceBindingUpdate) SetNillableCreatedAtMs(v *int64) *DeviceBindingUpdate {
	if v != nil {
		_u.SetCreatedAtMs(*v)
	}
	return _u
}

// AddCreatedAtMs adds value to the "created_at_ms" field.
func (_u *DeviceBindingUpdate) AddCreatedAtMs(v int64) *DeviceBindingUpdate {
	_u.mutation.AddCreatedAtMs(v)
	return _u
}

// SetUpdatedAtMs sets the "updated_at_ms" field.
func (_u *DeviceBindingUpdate) SetUpdatedAtMs(v int64) *DeviceBindingUpdate {
	_u.mutation.ResetUpdatedAtMs()
	_u.mutation.SetUpdatedAtMs(v)
	return _u
}

// SetNillableUpdatedAtMs sets the "updated_at_ms" field if the given value is not nil.
func (_u *DeviceBindingUpdate) SetNillableUpdatedAtMs(v *int64) *DeviceBindingUpdate {
	if v != nil {
		_u.SetUpdatedAtMs(*v)
	}
	return _u
}

// AddUpdatedAtMs adds value to the "updated_at_ms" field.
func (_u *DeviceBindingUpdate) AddUpdatedAtMs(v int64) *DeviceBindingUpdate {
	_u.mutation.AddUpdatedAtMs(v)
	return _u
}

// Mutation returns the DeviceBindingMutation object of the builder.
func (_u *DeviceBindingUpdate) Mutation() *DeviceBindingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeviceBindingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeviceBindingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeviceBindingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeviceBindingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeviceBindingUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := devicebinding.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DeviceBinding.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DeviceBindingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(devicebinding.Table, devicebinding.Columns, sqlgraph.NewFieldSpec(devicebinding.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DeviceID(); ok {
		_spec.SetField(devicebinding.FieldDeviceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeviceTokenHash(); ok {
		_spec.SetField(devicebinding.FieldDeviceTokenHash, field.TypeString, value)
	}
	if _u.mutation.DeviceTokenHashCleared() {
		_spec.ClearField(devicebinding.FieldDeviceTokenHash, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(devicebinding.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(devicebinding.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(devicebinding.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.BindingMetadata(); ok {
		_spec.SetField(devicebinding.FieldBindingMetadata, field.TypeJSON, value)
	}
	if _u.mutation.BindingMetadataCleared() {
		_spec.ClearField(devicebinding.FieldBindingMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.ActivatedAtMs(); ok {
		_spec.SetField(devicebinding.FieldActivatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedActivatedAtMs(); ok {
		_spec.AddField(devicebinding.FieldActivatedAtMs, field.TypeInt64, value)
	}
	if _u.mutation.ActivatedAtMsCleared() {
		_spec.ClearField(devicebinding.FieldActivatedAtMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.RevokedAtMs(); ok {
		_spec.SetField(devicebinding.FieldRevokedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRevokedAtMs(); ok {
		_spec.AddField(devicebinding.FieldRevokedAtMs, field.TypeInt64, value)
	}
	if _u.mutation.RevokedAtMsCleared() {
		_spec.ClearField(devicebinding.FieldRevokedAtMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.RevokeReason(); ok {
		_spec.SetField(devicebinding.FieldRevokeReason, field.TypeString, value)
	}
	if _u.mutation.RevokeReasonCleared() {
		_spec.ClearField(devicebinding.FieldRevokeReason, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAtMs(); ok {
		_spec.SetField(devicebinding.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCreatedAtMs(); ok {
		_spec.AddField(devicebinding.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAtMs(); ok {
		_spec.SetField(devicebinding.FieldUpdatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUpdatedAtMs(); ok {
		_spec.AddField(devicebinding.FieldUpdatedAtMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{devicebinding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeviceBindingUpdateOne is the builder for updating a single DeviceBinding entity.
type DeviceBindingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeviceBindingMutation
}

// SetDeviceID sets the "device_id" field.
func (_u *DeviceBindingUpdateOne) SetDeviceID(v string) *DeviceBindingUpdateOne {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *DeviceBindingUpdateOne) SetNillableDeviceID(v *string) *DeviceBindingUpdateOne {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// SetDeviceTokenHash sets the "device_token_hash" field.
func (_u *DeviceBindingUpdateOne) SetDeviceTokenHash(v string) *DeviceBindingUpdateOne {
	_u.mutation.SetDeviceTokenHash(v)
	return _u
}

// SetNillableDeviceTokenHash sets the "device_token_hash" field if the given value is not nil.
func (_u *DeviceBindingUpdateOne) SetNillableDeviceTokenHash(v *string) *DeviceBindingUpdateOne {
	if v != nil {
		_u.SetDeviceTokenHash(*v)
	}
	return _u
}

// ClearDeviceTokenHash clears the value of the "device_token_hash" field.
func (_u *DeviceBindingUpdateOne) ClearDeviceTokenHash() *DeviceBindingUpdateOne {
	_u.mutation.ClearDeviceTokenHash()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DeviceBindingUpdateOne) SetStatus(v devicebinding.Status) *DeviceBindingUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DeviceBindingUpdateOne) SetNillableStatus(v *devicebinding.Status) *DeviceBindingUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DeviceBindingUpdateOne) SetUserID(v string) *DeviceBindingUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DeviceBindingUpdateOne) SetNillableUserID(v *string) *DeviceBindingUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *DeviceBindingUpdateOne) ClearUserID() *DeviceBindingUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetBindingMetadata sets the "binding_metadata" field.
func (_u *DeviceBindingUpdateOne) SetBindingMetadata(v map[string]interface{}) *DeviceBindingUpdateOne {
	_u.mutation.SetBindingMetadata(v)
	return _u
}

// ClearBindingMetadata clears the value of the "binding_metadata" field.
func (_u *DeviceBindingUpdateOne) ClearBindingMetadata() *DeviceBindingUpdateOne {
	_u.mutation.ClearBindingMetadata()
	return _u
}

// SetActivatedAtMs sets the "activated_at_ms" field.
func (_u *DeviceBindingUpdateOne) SetActivatedAtMs(v int64) *DeviceBindingUpdateOne {
	_u.mutation.ResetActivatedAtMs()
	_u.mutation.SetActivatedAtMs(v)
	return _u
}

// SetNillableActivatedAtMs sets the "activated_at_ms" field if the given value is not nil.
func (_u *DeviceBindingUpdateOne) SetNillableActivatedAtMs(v *int64) *DeviceBindingUpdateOne {
	if v != nil {
		_u.SetActivatedAtMs(*v)
	}
	return _u
}

// AddActivatedAtMs adds value to the "activated_at_ms" field.
func (_u *DeviceBindingUpdateOne) AddActivatedAtMs(v int64) *DeviceBindingUpdateOne {
	_u.mutation.AddActivatedAtMs(v)
	return _u
}

// ClearActivatedAtMs clears the value of the "activated_at_ms" field.
func (_u *DeviceBindingUpdateOne) ClearActivatedAtMs() *DeviceBindingUpdateOne {
	_u.mutation.ClearActivatedAtMs()
	return _u
}

// SetRevokedAtMs sets the "revoked_at_ms" field.
func (_u *DeviceBindingUpdateOne) SetRevokedAtMs(v int64) *DeviceBindingUpdateOne {
	_u.mutation.ResetRevokedAtMs()
	_u.mutation.SetRevokedAtMs(v)
	return _u
}

// SetNillableRevokedAtMs sets the "revoked_at_ms" field if the given value is not nil.
func (_u *DeviceBindingUpdateOne) SetNillableRevokedAtMs(v *int64) *DeviceBindingUpdateOne {
	if v != nil {
		_u.SetRevokedAtMs(*v)
	}
	return _u
}

// AddRevokedAtMs adds value to the "revoked_at_ms" field.
func (_u *DeviceBindingUpdateOne) AddRevokedAtMs(v int64) *DeviceBindingUpdateOne {
	_u.mutation.AddRevokedAtMs(v)
	return _u
}

// ClearRevokedAtMs clears the value of the "revoked_at_ms" field.
func (_u *DeviceBindingUpdateOne) ClearRevokedAtMs() *DeviceBindingUpdateOne {
	_u.mutation.ClearRevokedAtMs()
	return _u
}

// SetRevokeReason sets the "revoke_reason" field.
func (_u *DeviceBindingUpdateOne) SetRevokeReason(v string) *DeviceBindingUpdateOne {
	_u.mutation.SetRevokeReason(v)
	return _u
}

// SetNillableRevokeReason sets the "revoke_reason" field if the given value is not nil.
func (_u *DeviceBindingUpdateOne) SetNillableRevokeReason(v *string) *DeviceBindingUpdateOne {
	if v != nil {
		_u.SetRevokeReason(*v)
	}
	return _u
}

// ClearRevokeReason clears the value of the "revoke_reason" field.
func (_u *DeviceBindingUpdateOne) ClearRevokeReason() *DeviceBindingUpdateOne {
	_u.mutation.ClearRevokeReason()
	return _u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_u *DeviceBindingUpdateOne) SetCreatedAtMs(v int64) *DeviceBindingUpdateOne {
	_u.mutation.ResetCreatedAtMs()
	_u.mutation.SetCreatedAtMs(v)
	return _u
}

// SetNillableCreatedAtMs sets the "created_at_ms" field if the given value is not nil.
func (_u *DeviceBindingUpdateOne) SetNillableCreatedAtMs(v *int64) *DeviceBindingUpdateOne {
	if v != nil {
		_u.SetCreatedAtMs(*v)
	}
	return _u
}

// AddCreatedAtMs adds value to the "created_at_ms" field.
func (_u *DeviceBindingUpdateOne) AddCreatedAtMs(v int64) *DeviceBindingUpdateOne {
	_u.mutation.AddCreatedAtMs(v)
	return _u
}

// SetUpdatedAtMs sets the "updated_at_ms" field.
func (_u *DeviceBindingUpdateOne) SetUpdatedAtMs(v int64) *DeviceBindingUpdateOne {
	_u.mutation.ResetUpdatedAtMs()
	_u.mutation.SetUpdatedAtMs(v)
	return _u
}

// SetNillableUpdatedAtMs sets the "updated_at_ms" field if the given value is not nil.
func (_u *DeviceBindingUpdateOne) SetNillableUpdatedAtMs(v *int64) *DeviceBindingUpdateOne {
	if v != nil {
		_u.SetUpdatedAtMs(*v)
	}
	return _u
}

// AddUpdatedAtMs adds value to the "updated_at_ms" field.
func (_u *DeviceBindingUpdateOne) AddUpdatedAtMs(v int64) *DeviceBindingUpdateOne {
	_u.mutation.AddUpdatedAtMs(v)
	return _u
}

// Mutation returns the DeviceBindingMutation object of the builder.
func (_u *DeviceBindingUpdateOne) Mutation() *DeviceBindingMutation {
	return _u.mutation
}

// Where appends a list predicates to the DeviceBindingUpdate builder.
func (_u *DeviceBindingUpdateOne) Where(ps ...predicate.DeviceBinding) *DeviceBindingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeviceBindingUpdateOne) Select(field string, fields ...string) *DeviceBindingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DeviceBinding entity.
func (_u *DeviceBindingUpdateOne) Save(ctx context.Context) (*DeviceBinding, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeviceBindingUpdateOne) SaveX(ctx context.Context) *DeviceBinding {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeviceBindingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeviceBindingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeviceBindingUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := devicebinding.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DeviceBinding.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DeviceBindingUpdateOne) sqlSave(ctx context.Context) (_node *DeviceBinding, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(devicebinding.Table, devicebinding.Columns, sqlgraph.NewFieldSpec(devicebinding.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DeviceBinding.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, devicebinding.FieldID)
		for _, f := range fields {
			if !devicebinding.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != devicebinding.FieldID {
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
		_spec.SetField(devicebinding.FieldDeviceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeviceTokenHash(); ok {
		_spec.SetField(devicebinding.FieldDeviceTokenHash, field.TypeString, value)
	}
	if _u.mutation.DeviceTokenHashCleared() {
		_spec.ClearField(devicebinding.FieldDeviceTokenHash, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(devicebinding.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(devicebinding.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(devicebinding.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.BindingMetadata(); ok {
		_spec.SetField(devicebinding.FieldBindingMetadata, field.TypeJSON, value)
	}
	if _u.mutation.BindingMetadataCleared() {
		_spec.ClearField(devicebinding.FieldBindingMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.ActivatedAtMs(); ok {
		_spec.SetField(devicebinding.FieldActivatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedActivatedAtMs(); ok {
		_spec.AddField(devicebinding.FieldActivatedAtMs, field.TypeInt64, value)
	}
	if _u.mutation.ActivatedAtMsCleared() {
		_spec.ClearField(devicebinding.FieldActivatedAtMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.RevokedAtMs(); ok {
		_spec.SetField(devicebinding.FieldRevokedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRevokedAtMs(); ok {
		_spec.AddField(devicebinding.FieldRevokedAtMs, field.TypeInt64, value)
	}
	if _u.mutation.RevokedAtMsCleared() {
		_spec.ClearField(devicebinding.FieldRevokedAtMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.RevokeReason(); ok {
		_spec.SetField(devicebinding.FieldRevokeReason, field.TypeString, value)
	}
	if _u.mutation.RevokeReasonCleared() {
		_spec.ClearField(devicebinding.FieldRevokeReason, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAtMs(); ok {
		_spec.SetField(devicebinding.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCreatedAtMs(); ok {
		_spec.AddField(devicebinding.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAtMs(); ok {
		_spec.SetField(devicebinding.FieldUpdatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUpdatedAtMs(); ok {
		_spec.AddField(devicebinding.FieldUpdatedAtMs, field.TypeInt64, value)
	}
	_node = &DeviceBinding{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{devicebinding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
