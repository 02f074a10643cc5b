// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/opencane/edged/ent/devicebinding"
	"github.com/opencane/edged/ent/deviceoperation"
	"github.com/opencane/edged/ent/devicesession"
	"github.com/opencane/edged/ent/digitaltask"
	"github.com/opencane/edged/ent/lifelogcontext"
	"github.com/opencane/edged/ent/lifelogevent"
	"github.com/opencane/edged/ent/lifelogimage"
	"github.com/opencane/edged/ent/observabilitysample"
	"github.com/opencane/edged/ent/predicate"
	"github.com/opencane/edged/ent/pushupdate"
	"github.com/opencane/edged/ent/telemetrysample"
	"github.com/opencane/edged/ent/thoughttrace"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDeviceBinding       = "DeviceBinding"
	TypeDeviceOperation     = "DeviceOperation"
	TypeDeviceSession       = "DeviceSession"
	TypeDigitalTask         = "DigitalTask"
	TypeLifelogContext      = "LifelogContext"
	TypeLifelogEvent        = "LifelogEvent"
	TypeLifelogImage        = "LifelogImage"
	TypeObservabilitySample = "ObservabilitySample"
	TypePushUpdate          = "PushUpdate"
	TypeTelemetrySample     = "TelemetrySample"
	TypeThoughtTrace        = "ThoughtTrace"
)

// DeviceBindingMutation represents an operation that mutates the DeviceBinding nodes in the graph.
type DeviceBindingMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	device_id          *string
	device_token_hash  *string
	status             *devicebinding.Status
	user_id            *string
	binding_metadata   *map[string]interface{}
	activated_at_ms    *int64
	addactivated_at_ms *int64
	revoked_at_ms      *int64
	addrevoked_at_ms   *int64
	revoke_reason      *string
	created_at_ms      *int64
	addcreated_at_ms   *int64
	updated_at_ms      *int64
	addupdated_at_ms   *int64
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*DeviceBinding, error)
	predicates         []predicate.DeviceBinding
}

var _ ent.Mutation = (*DeviceBindingMutation)(nil)

// devicebindingOption allows management of the mutation configuration using functional options.
type devicebindingOption func(*DeviceBindingMutation)

// newDeviceBindingMutation creates new mutation for the DeviceBinding entity.
func newDeviceBindingMutation(c config, op Op, opts ...devicebindingOption) *DeviceBindingMutation {
	m := &DeviceBindingMutation{
		config:        c,
		op:            op,
		typ:           TypeDeviceBinding,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeviceBindingID sets the ID field of the mutation.
func withDeviceBindingID(id int) devicebindingOption {
	return func(m *DeviceBindingMutation) {
		var (
			err   error
			once  sync.Once
			value *DeviceBinding
		)
		m.oldValue = func(ctx context.Context) (*DeviceBinding, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DeviceBinding.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeviceBinding sets the old DeviceBinding of the mutation.
func withDeviceBinding(node *DeviceBinding) devicebindingOption {
	return func(m *DeviceBindingMutation) {
		m.oldValue = func(context.Context) (*DeviceBinding, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeviceBindingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeviceBindingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeviceBindingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeviceBindingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DeviceBinding.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDeviceID sets the "device_id" field.
func (m *DeviceBindingMutation) SetDeviceID(s string) {
	m.device_id = &s
}

// DeviceID returns the value of the "device_id" field in the mutation.
func (m *DeviceBindingMutation) DeviceID() (r string, exists bool) {
	v := m.device_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceID returns the old "device_id" field's value of the DeviceBinding entity.
// If the DeviceBinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceBindingMutation) OldDeviceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceID: %w", err)
	}
	return oldValue.DeviceID, nil
}

// ResetDeviceID resets all changes to the "device_id" field.
func (m *DeviceBindingMutation) ResetDeviceID() {
	m.device_id = nil
}

// SetDeviceTokenHash sets the "device_token_hash" field.
func (m *DeviceBindingMutation) SetDeviceTokenHash(s string) {
	m.device_token_hash = &s
}

// DeviceTokenHash returns the value of the "device_token_hash" field in the mutation.
func (m *DeviceBindingMutation) DeviceTokenHash() (r string, exists bool) {
	v := m.device_token_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceTokenHash returns the old "device_token_hash" field's value of the DeviceBinding entity.
// If the DeviceBinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceBindingMutation) OldDeviceTokenHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceTokenHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceTokenHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceTokenHash: %w", err)
	}
	return oldValue.DeviceTokenHash, nil
}

// ClearDeviceTokenHash clears the value of the "device_token_hash" field.
func (m *DeviceBindingMutation) ClearDeviceTokenHash() {
	m.device_token_hash = nil
	m.clearedFields[devicebinding.FieldDeviceTokenHash] = struct{}{}
}

// DeviceTokenHashCleared returns if the "device_token_hash" field was cleared in this mutation.
func (m *DeviceBindingMutation) DeviceTokenHashCleared() bool {
	_, ok := m.clearedFields[devicebinding.FieldDeviceTokenHash]
	return ok
}

// ResetDeviceTokenHash resets all changes to the "device_token_hash" field.
func (m *DeviceBindingMutation) ResetDeviceTokenHash() {
	m.device_token_hash = nil
	delete(m.clearedFields, devicebinding.FieldDeviceTokenHash)
}

// SetStatus sets the "status" field.
func (m *DeviceBindingMutation) SetStatus(d devicebinding.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DeviceBindingMutation) Status() (r devicebinding.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DeviceBinding entity.
// If the DeviceBinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceBindingMutation) OldStatus(ctx context.Context) (v devicebinding.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DeviceBindingMutation) ResetStatus() {
	m.status = nil
}

// SetUserID sets the "user_id" field.
func (m *DeviceBindingMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *DeviceBindingMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the DeviceBinding entity.
// If the DeviceBinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceBindingMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *DeviceBindingMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[devicebinding.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *DeviceBindingMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[devicebinding.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *DeviceBindingMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, devicebinding.FieldUserID)
}

// SetBindingMetadata sets the "binding_metadata" field.
func (m *DeviceBindingMutation) SetBindingMetadata(value map[string]interface{}) {
	m.binding_metadata = &value
}

// BindingMetadata returns the value of the "binding_metadata" field in the mutation.
func (m *DeviceBindingMutation) BindingMetadata() (r map[string]interface{}, exists bool) {
	v := m.binding_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldBindingMetadata returns the old "binding_metadata" field's value of the DeviceBinding entity.
// If the DeviceBinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceBindingMutation) OldBindingMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBindingMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBindingMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBindingMetadata: %w", err)
	}
	return oldValue.BindingMetadata, nil
}

// ClearBindingMetadata clears the value of the "binding_metadata" field.
func (m *DeviceBindingMutation) ClearBindingMetadata() {
	m.binding_metadata = nil
	m.clearedFields[devicebinding.FieldBindingMetadata] = struct{}{}
}

// BindingMetadataCleared returns if the "binding_metadata" field was cleared in this mutation.
func (m *DeviceBindingMutation) BindingMetadataCleared() bool {
	_, ok := m.clearedFields[devicebinding.FieldBindingMetadata]
	return ok
}

// ResetBindingMetadata resets all changes to the "binding_metadata" field.
func (m *DeviceBindingMutation) ResetBindingMetadata() {
	m.binding_metadata = nil
	delete(m.clearedFields, devicebinding.FieldBindingMetadata)
}

// SetActivatedAtMs sets the "activated_at_ms" field.
func (m *DeviceBindingMutation) SetActivatedAtMs(i int64) {
	m.activated_at_ms = &i
	m.addactivated_at_ms = nil
}

// ActivatedAtMs returns the value of the "activated_at_ms" field in the mutation.
func (m *DeviceBindingMutation) ActivatedAtMs() (r int64, exists bool) {
	v := m.activated_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldActivatedAtMs returns the old "activated_at_ms" field's value of the DeviceBinding entity.
// If the DeviceBinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceBindingMutation) OldActivatedAtMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivatedAtMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivatedAtMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivatedAtMs: %w", err)
	}
	return oldValue.ActivatedAtMs, nil
}

// AddActivatedAtMs adds i to the "activated_at_ms" field.
func (m *DeviceBindingMutation) AddActivatedAtMs(i int64) {
	if m.addactivated_at_ms != nil {
		*m.addactivated_at_ms += i
	} else {
		m.addactivated_at_ms = &i
	}
}

// AddedActivatedAtMs returns the value that was added to the "activated_at_ms" field in this mutation.
func (m *DeviceBindingMutation) AddedActivatedAtMs() (r int64, exists bool) {
	v := m.addactivated_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearActivatedAtMs clears the value of the "activated_at_ms" field.
func (m *DeviceBindingMutation) ClearActivatedAtMs() {
	m.activated_at_ms = nil
	m.addactivated_at_ms = nil
	m.clearedFields[devicebinding.FieldActivatedAtMs] = struct{}{}
}

// ActivatedAtMsCleared returns if the "activated_at_ms" field was cleared in this mutation.
func (m *DeviceBindingMutation) ActivatedAtMsCleared() bool {
	_, ok := m.clearedFields[devicebinding.FieldActivatedAtMs]
	return ok
}

// ResetActivatedAtMs resets all changes to the "activated_at_ms" field.
func (m *DeviceBindingMutation) ResetActivatedAtMs() {
	m.activated_at_ms = nil
	m.addactivated_at_ms = nil
	delete(m.clearedFields, devicebinding.FieldActivatedAtMs)
}

// SetRevokedAtMs sets the "revoked_at_ms" field.
func (m *DeviceBindingMutation) SetRevokedAtMs(i int64) {
	m.revoked_at_ms = &i
	m.addrevoked_at_ms = nil
}

// RevokedAtMs returns the value of the "revoked_at_ms" field in the mutation.
func (m *DeviceBindingMutation) RevokedAtMs() (r int64, exists bool) {
	v := m.revoked_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAtMs returns the old "revoked_at_ms" field's value of the DeviceBinding entity.
// If the DeviceBinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceBindingMutation) OldRevokedAtMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAtMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAtMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAtMs: %w", err)
	}
	return oldValue.RevokedAtMs, nil
}

// AddRevokedAtMs adds i to the "revoked_at_ms" field.
func (m *DeviceBindingMutation) AddRevokedAtMs(i int64) {
	if m.addrevoked_at_ms != nil {
		*m.addrevoked_at_ms += i
	} else {
		m.addrevoked_at_ms = &i
	}
}

// AddedRevokedAtMs returns the value that was added to the "revoked_at_ms" field in this mutation.
func (m *DeviceBindingMutation) AddedRevokedAtMs() (r int64, exists bool) {
	v := m.addrevoked_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearRevokedAtMs clears the value of the "revoked_at_ms" field.
func (m *DeviceBindingMutation) ClearRevokedAtMs() {
	m.revoked_at_ms = nil
	m.addrevoked_at_ms = nil
	m.clearedFields[devicebinding.FieldRevokedAtMs] = struct{}{}
}

// RevokedAtMsCleared returns if the "revoked_at_ms" field was cleared in this mutation.
func (m *DeviceBindingMutation) RevokedAtMsCleared() bool {
	_, ok := m.clearedFields[devicebinding.FieldRevokedAtMs]
	return ok
}

// ResetRevokedAtMs resets all changes to the "revoked_at_ms" field.
func (m *DeviceBindingMutation) ResetRevokedAtMs() {
	m.revoked_at_ms = nil
	m.addrevoked_at_ms = nil
	delete(m.clearedFields, devicebinding.FieldRevokedAtMs)
}

// SetRevokeReason sets the "revoke_reason" field.
func (m *DeviceBindingMutation) SetRevokeReason(s string) {
	m.revoke_reason = &s
}

// RevokeReason returns the value of the "revoke_reason" field in the mutation.
func (m *DeviceBindingMutation) RevokeReason() (r string, exists bool) {
	v := m.revoke_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokeReason returns the old "revoke_reason" field's value of the DeviceBinding entity.
// If the DeviceBinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceBindingMutation) OldRevokeReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokeReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokeReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokeReason: %w", err)
	}
	return oldValue.RevokeReason, nil
}

// ClearRevokeReason clears the value of the "revoke_reason" field.
func (m *DeviceBindingMutation) ClearRevokeReason() {
	m.revoke_reason = nil
	m.clearedFields[devicebinding.FieldRevokeReason] = struct{}{}
}

// RevokeReasonCleared returns if the "revoke_reason" field was cleared in this mutation.
func (m *DeviceBindingMutation) RevokeReasonCleared() bool {
	_, ok := m.clearedFields[devicebinding.FieldRevokeReason]
	return ok
}

// ResetRevokeReason resets all changes to the "revoke_reason" field.
func (m *DeviceBindingMutation) ResetRevokeReason() {
	m.revoke_reason = nil
	delete(m.clearedFields, devicebinding.FieldRevokeReason)
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (m *DeviceBindingMutation) SetCreatedAtMs(i int64) {
	m.created_at_ms = &i
	m.addcreated_at_ms = nil
}

// CreatedAtMs returns the value of the "created_at_ms" field in the mutation.
func (m *DeviceBindingMutation) CreatedAtMs() (r int64, exists bool) {
	v := m.created_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAtMs returns the old "created_at_ms" field's value of the DeviceBinding entity.
// If the DeviceBinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceBindingMutation) OldCreatedAtMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAtMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAtMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAtMs: %w", err)
	}
	return oldValue.CreatedAtMs, nil
}

// AddCreatedAtMs adds i to the "created_at_ms" field.
func (m *DeviceBindingMutation) AddCreatedAtMs(i int64) {
	if m.addcreated_at_ms != nil {
		*m.addcreated_at_ms += i
	} else {
		m.addcreated_at_ms = &i
	}
}

// AddedCreatedAtMs returns the value that was added to the "created_at_ms" field in this mutation.
func (m *DeviceBindingMutation) AddedCreatedAtMs() (r int64, exists bool) {
	v := m.addcreated_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedAtMs resets all changes to the "created_at_ms" field.
func (m *DeviceBindingMutation) ResetCreatedAtMs() {
	m.created_at_ms = nil
	m.addcreated_at_ms = nil
}

// SetUpdatedAtMs sets the "updated_at_ms" field.
func (m *DeviceBindingMutation) SetUpdatedAtMs(i int64) {
	m.updated_at_ms = &i
	m.addupdated_at_ms = nil
}

// UpdatedAtMs returns the value of the "updated_at_ms" field in the mutation.
func (m *DeviceBindingMutation) UpdatedAtMs() (r int64, exists bool) {
	v := m.updated_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAtMs returns the old "updated_at_ms" field's value of the DeviceBinding entity.
// If the DeviceBinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceBindingMutation) OldUpdatedAtMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAtMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAtMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAtMs: %w", err)
	}
	return oldValue.UpdatedAtMs, nil
}

// AddUpdatedAtMs adds i to the "updated_at_ms" field.
func (m *DeviceBindingMutation) AddUpdatedAtMs(i int64) {
	if m.addupdated_at_ms != nil {
		*m.addupdated_at_ms += i
	} else {
		m.addupdated_at_ms = &i
	}
}

// AddedUpdatedAtMs returns the value that was added to the "updated_at_ms" field in this mutation.
func (m *DeviceBindingMutation) AddedUpdatedAtMs() (r int64, exists bool) {
	v := m.addupdated_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpdatedAtMs resets all changes to the "updated_at_ms" field.
func (m *DeviceBindingMutation) ResetUpdatedAtMs() {
	m.updated_at_ms = nil
	m.addupdated_at_ms = nil
}

// Where appends a list predicates to the DeviceBindingMutation builder.
func (m *DeviceBindingMutation) Where(ps ...predicate.DeviceBinding) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeviceBindingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeviceBindingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DeviceBinding, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeviceBindingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeviceBindingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DeviceBinding).
func (m *DeviceBindingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeviceBindingMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.device_id != nil {
		fields = append(fields, devicebinding.FieldDeviceID)
	}
	if m.device_token_hash != nil {
		fields = append(fields, devicebinding.FieldDeviceTokenHash)
	}
	if m.status != nil {
		fields = append(fields, devicebinding.FieldStatus)
	}
	if m.user_id != nil {
		fields = append(fields, devicebinding.FieldUserID)
	}
	if m.binding_metadata != nil {
		fields = append(fields, devicebinding.FieldBindingMetadata)
	}
	if m.activated_at_ms != nil {
		fields = append(fields, devicebinding.FieldActivatedAtMs)
	}
	if m.revoked_at_ms != nil {
		fields = append(fields, devicebinding.FieldRevokedAtMs)
	}
	if m.revoke_reason != nil {
		fields = append(fields, devicebinding.FieldRevokeReason)
	}
	if m.created_at_ms != nil {
		fields = append(fields, devicebinding.FieldCreatedAtMs)
	}
	if m.updated_at_ms != nil {
		fields = append(fields, devicebinding.FieldUpdatedAtMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeviceBindingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case devicebinding.FieldDeviceID:
		return m.DeviceID()
	case devicebinding.FieldDeviceTokenHash:
		return m.DeviceTokenHash()
	case devicebinding.FieldStatus:
		return m.Status()
	case devicebinding.FieldUserID:
		return m.UserID()
	case devicebinding.FieldBindingMetadata:
		return m.BindingMetadata()
	case devicebinding.FieldActivatedAtMs:
		return m.ActivatedAtMs()
	case devicebinding.FieldRevokedAtMs:
		return m.RevokedAtMs()
	case devicebinding.FieldRevokeReason:
		return m.RevokeReason()
	case devicebinding.FieldCreatedAtMs:
		return m.CreatedAtMs()
	case devicebinding.FieldUpdatedAtMs:
		return m.UpdatedAtMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeviceBindingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case devicebinding.FieldDeviceID:
		return m.OldDeviceID(ctx)
	case devicebinding.FieldDeviceTokenHash:
		return m.OldDeviceTokenHash(ctx)
	case devicebinding.FieldStatus:
		return m.OldStatus(ctx)
	case devicebinding.FieldUserID:
		return m.OldUserID(ctx)
	case devicebinding.FieldBindingMetadata:
		return m.OldBindingMetadata(ctx)
	case devicebinding.FieldActivatedAtMs:
		return m.OldActivatedAtMs(ctx)
	case devicebinding.FieldRevokedAtMs:
		return m.OldRevokedAtMs(ctx)
	case devicebinding.FieldRevokeReason:
		return m.OldRevokeReason(ctx)
	case devicebinding.FieldCreatedAtMs:
		return m.OldCreatedAtMs(ctx)
	case devicebinding.FieldUpdatedAtMs:
		return m.OldUpdatedAtMs(ctx)
	}
	return nil, fmt.Errorf("unknown DeviceBinding field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeviceBindingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case devicebinding.FieldDeviceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceID(v)
		return nil
	case devicebinding.FieldDeviceTokenHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceTokenHash(v)
		return nil
	case devicebinding.FieldStatus:
		v, ok := value.(devicebinding.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case devicebinding.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case devicebinding.FieldBindingMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBindingMetadata(v)
		return nil
	case devicebinding.FieldActivatedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivatedAtMs(v)
		return nil
	case devicebinding.FieldRevokedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAtMs(v)
		return nil
	case devicebinding.FieldRevokeReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokeReason(v)
		return nil
	case devicebinding.FieldCreatedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAtMs(v)
		return nil
	case devicebinding.FieldUpdatedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAtMs(v)
		return nil
	}
	return fmt.Errorf("unknown DeviceBinding field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeviceBindingMutation) AddedFields() []string {
	var fields []string
	if m.addactivated_at_ms != nil {
		fields = append(fields, devicebinding.FieldActivatedAtMs)
	}
	if m.addrevoked_at_ms != nil {
		fields = append(fields, devicebinding.FieldRevokedAtMs)
	}
	if m.addcreated_at_ms != nil {
		fields = append(fields, devicebinding.FieldCreatedAtMs)
	}
	if m.addupdated_at_ms != nil {
		fields = append(fields, devicebinding.FieldUpdatedAtMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeviceBindingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case devicebinding.FieldActivatedAtMs:
		return m.AddedActivatedAtMs()
	case devicebinding.FieldRevokedAtMs:
		return m.AddedRevokedAtMs()
	case devicebinding.FieldCreatedAtMs:
		return m.AddedCreatedAtMs()
	case devicebinding.FieldUpdatedAtMs:
		return m.AddedUpdatedAtMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeviceBindingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case devicebinding.FieldActivatedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActivatedAtMs(v)
		return nil
	case devicebinding.FieldRevokedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRevokedAtMs(v)
		return nil
	case devicebinding.FieldCreatedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedAtMs(v)
		return nil
	case devicebinding.FieldUpdatedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpdatedAtMs(v)
		return nil
	}
	return fmt.Errorf("unknown DeviceBinding numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeviceBindingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(devicebinding.FieldDeviceTokenHash) {
		fields = append(fields, devicebinding.FieldDeviceTokenHash)
	}
	if m.FieldCleared(devicebinding.FieldUserID) {
		fields = append(fields, devicebinding.FieldUserID)
	}
	if m.FieldCleared(devicebinding.FieldBindingMetadata) {
		fields = append(fields, devicebinding.FieldBindingMetadata)
	}
	if m.FieldCleared(devicebinding.FieldActivatedAtMs) {
		fields = append(fields, devicebinding.FieldActivatedAtMs)
	}
	if m.FieldCleared(devicebinding.FieldRevokedAtMs) {
		fields = append(fields, devicebinding.FieldRevokedAtMs)
	}
	if m.FieldCleared(devicebinding.FieldRevokeReason) {
		fields = append(fields, devicebinding.FieldRevokeReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeviceBindingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeviceBindingMutation) ClearField(name string) error {
	switch name {
	case devicebinding.FieldDeviceTokenHash:
		m.ClearDeviceTokenHash()
		return nil
	case devicebinding.FieldUserID:
		m.ClearUserID()
		return nil
	case devicebinding.FieldBindingMetadata:
		m.ClearBindingMetadata()
		return nil
	case devicebinding.FieldActivatedAtMs:
		m.ClearActivatedAtMs()
		return nil
	case devicebinding.FieldRevokedAtMs:
		m.ClearRevokedAtMs()
		return nil
	case devicebinding.FieldRevokeReason:
		m.ClearRevokeReason()
		return nil
	}
	return fmt.Errorf("unknown DeviceBinding nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeviceBindingMutation) ResetField(name string) error {
	switch name {
	case devicebinding.FieldDeviceID:
		m.ResetDeviceID()
		return nil
	case devicebinding.FieldDeviceTokenHash:
		m.ResetDeviceTokenHash()
		return nil
	case devicebinding.FieldStatus:
		m.ResetStatus()
		return nil
	case devicebinding.FieldUserID:
		m.ResetUserID()
		return nil
	case devicebinding.FieldBindingMetadata:
		m.ResetBindingMetadata()
		return nil
	case devicebinding.FieldActivatedAtMs:
		m.ResetActivatedAtMs()
		return nil
	case devicebinding.FieldRevokedAtMs:
		m.ResetRevokedAtMs()
		return nil
	case devicebinding.FieldRevokeReason:
		m.ResetRevokeReason()
		return nil
	case devicebinding.FieldCreatedAtMs:
		m.ResetCreatedAtMs()
		return nil
	case devicebinding.FieldUpdatedAtMs:
		m.ResetUpdatedAtMs()
		return nil
	}
	return fmt.Errorf("unknown DeviceBinding field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeviceBindingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeviceBindingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeviceBindingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeviceBindingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeviceBindingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeviceBindingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeviceBindingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DeviceBinding unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeviceBindingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DeviceBinding edge %s", name)
}

// DeviceOperationMutation represents an operation that mutates the DeviceOperation nodes in the graph.
type DeviceOperationMutation struct {
	config
	op               Op
	typ              string
	id               *string
	device_id        *string
	session_id       *string
	op_type          *string
	command_type     *string
	status           *deviceoperation.Status
	payload          *map[string]interface{}
	result           *map[string]interface{}
	error_message    *string
	created_at_ms    *int64
	addcreated_at_ms *int64
	sent_at_ms       *int64
	addsent_at_ms    *int64
	acked_at_ms      *int64
	addacked_at_ms   *int64
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*DeviceOperation, error)
	predicates       []predicate.DeviceOperation
}

var _ ent.Mutation = (*DeviceOperationMutation)(nil)

// deviceoperationOption allows management of the mutation configuration using functional options.
type deviceoperationOption func(*DeviceOperationMutation)

// newDeviceOperationMutation creates new mutation for the DeviceOperation entity.
func newDeviceOperationMutation(c config, op Op, opts ...deviceoperationOption) *DeviceOperationMutation {
	m := &DeviceOperationMutation{
		config:        c,
		op:            op,
		typ:           TypeDeviceOperation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeviceOperationID sets the ID field of the mutation.
func withDeviceOperationID(id string) deviceoperationOption {
	return func(m *DeviceOperationMutation) {
		var (
			err   error
			once  sync.Once
			value *DeviceOperation
		)
		m.oldValue = func(ctx context.Context) (*DeviceOperation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DeviceOperation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeviceOperation sets the old DeviceOperation of the mutation.
func withDeviceOperation(node *DeviceOperation) deviceoperationOption {
	return func(m *DeviceOperationMutation) {
		m.oldValue = func(context.Context) (*DeviceOperation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeviceOperationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeviceOperationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DeviceOperation entities.
func (m *DeviceOperationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeviceOperationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeviceOperationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DeviceOperation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDeviceID sets the "device_id" field.
func (m *DeviceOperationMutation) SetDeviceID(s string) {
	m.device_id = &s
}

// DeviceID returns the value of the "device_id" field in the mutation.
func (m *DeviceOperationMutation) DeviceID() (r string, exists bool) {
	v := m.device_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceID returns the old "device_id" field's value of the DeviceOperation entity.
// If the DeviceOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceOperationMutation) OldDeviceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceID: %w", err)
	}
	return oldValue.DeviceID, nil
}

// ResetDeviceID resets all changes to the "device_id" field.
func (m *DeviceOperationMutation) ResetDeviceID() {
	m.device_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *DeviceOperationMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *DeviceOperationMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the DeviceOperation entity.
// If the DeviceOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceOperationMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *DeviceOperationMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[deviceoperation.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *DeviceOperationMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[deviceoperation.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *DeviceOperationMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, deviceoperation.FieldSessionID)
}

// SetOpType sets the "op_type" field.
func (m *DeviceOperationMutation) SetOpType(s string) {
	m.op_type = &s
}

// OpType returns the value of the "op_type" field in the mutation.
func (m *DeviceOperationMutation) OpType() (r string, exists bool) {
	v := m.op_type
	if v == nil {
		return
	}
	return *v, true
}

// OldOpType returns the old "op_type" field's value of the DeviceOperation entity.
// If the DeviceOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceOperationMutation) OldOpType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpType: %w", err)
	}
	return oldValue.OpType, nil
}

// ResetOpType resets all changes to the "op_type" field.
func (m *DeviceOperationMutation) ResetOpType() {
	m.op_type = nil
}

// SetCommandType sets the "command_type" field.
func (m *DeviceOperationMutation) SetCommandType(s string) {
	m.command_type = &s
}

// CommandType returns the value of the "command_type" field in the mutation.
func (m *DeviceOperationMutation) CommandType() (r string, exists bool) {
	v := m.command_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCommandType returns the old "command_type" field's value of the DeviceOperation entity.
// If the DeviceOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceOperationMutation) OldCommandType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommandType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommandType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommandType: %w", err)
	}
	return oldValue.CommandType, nil
}

// ResetCommandType resets all changes to the "command_type" field.
func (m *DeviceOperationMutation) ResetCommandType() {
	m.command_type = nil
}

// SetStatus sets the "status" field.
func (m *DeviceOperationMutation) SetStatus(d deviceoperation.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DeviceOperationMutation) Status() (r deviceoperation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DeviceOperation entity.
// If the DeviceOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceOperationMutation) OldStatus(ctx context.Context) (v deviceoperation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DeviceOperationMutation) ResetStatus() {
	m.status = nil
}

// SetPayload sets the "payload" field.
func (m *DeviceOperationMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *DeviceOperationMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the DeviceOperation entity.
// If the DeviceOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceOperationMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *DeviceOperationMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[deviceoperation.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *DeviceOperationMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[deviceoperation.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *DeviceOperationMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, deviceoperation.FieldPayload)
}

// SetResult sets the "result" field.
func (m *DeviceOperationMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *DeviceOperationMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the DeviceOperation entity.
// If the DeviceOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceOperationMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *DeviceOperationMutation) ClearResult() {
	m.result = nil
	m.clearedFields[deviceoperation.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *DeviceOperationMutation) ResultCleared() bool {
	_, ok := m.clearedFields[deviceoperation.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *DeviceOperationMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, deviceoperation.FieldResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *DeviceOperationMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DeviceOperationMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the DeviceOperation entity.
// If the DeviceOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceOperationMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DeviceOperationMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[deviceoperation.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DeviceOperationMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[deviceoperation.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DeviceOperationMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, deviceoperation.FieldErrorMessage)
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (m *DeviceOperationMutation) SetCreatedAtMs(i int64) {
	m.created_at_ms = &i
	m.addcreated_at_ms = nil
}

// CreatedAtMs returns the value of the "created_at_ms" field in the mutation.
func (m *DeviceOperationMutation) CreatedAtMs() (r int64, exists bool) {
	v := m.created_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAtMs returns the old "created_at_ms" field's value of the DeviceOperation entity.
// If the DeviceOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceOperationMutation) OldCreatedAtMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAtMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAtMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAtMs: %w", err)
	}
	return oldValue.CreatedAtMs, nil
}

// AddCreatedAtMs adds i to the "created_at_ms" field.
func (m *DeviceOperationMutation) AddCreatedAtMs(i int64) {
	if m.addcreated_at_ms != nil {
		*m.addcreated_at_ms += i
	} else {
		m.addcreated_at_ms = &i
	}
}

// AddedCreatedAtMs returns the value that was added to the "created_at_ms" field in this mutation.
func (m *DeviceOperationMutation) AddedCreatedAtMs() (r int64, exists bool) {
	v := m.addcreated_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedAtMs resets all changes to the "created_at_ms" field.
func (m *DeviceOperationMutation) ResetCreatedAtMs() {
	m.created_at_ms = nil
	m.addcreated_at_ms = nil
}

// SetSentAtMs sets the "sent_at_ms" field.
func (m *DeviceOperationMutation) SetSentAtMs(i int64) {
	m.sent_at_ms = &i
	m.addsent_at_ms = nil
}

// SentAtMs returns the value of the "sent_at_ms" field in the mutation.
func (m *DeviceOperationMutation) SentAtMs() (r int64, exists bool) {
	v := m.sent_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAtMs returns the old "sent_at_ms" field's value of the DeviceOperation entity.
// If the DeviceOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceOperationMutation) OldSentAtMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAtMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAtMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAtMs: %w", err)
	}
	return oldValue.SentAtMs, nil
}

// AddSentAtMs adds i to the "sent_at_ms" field.
func (m *DeviceOperationMutation) AddSentAtMs(i int64) {
	if m.addsent_at_ms != nil {
		*m.addsent_at_ms += i
	} else {
		m.addsent_at_ms = &i
	}
}

// AddedSentAtMs returns the value that was added to the "sent_at_ms" field in this mutation.
func (m *DeviceOperationMutation) AddedSentAtMs() (r int64, exists bool) {
	v := m.addsent_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearSentAtMs clears the value of the "sent_at_ms" field.
func (m *DeviceOperationMutation) ClearSentAtMs() {
	m.sent_at_ms = nil
	m.addsent_at_ms = nil
	m.clearedFields[deviceoperation.FieldSentAtMs] = struct{}{}
}

// SentAtMsCleared returns if the "sent_at_ms" field was cleared in this mutation.
func (m *DeviceOperationMutation) SentAtMsCleared() bool {
	_, ok := m.clearedFields[deviceoperation.FieldSentAtMs]
	return ok
}

// ResetSentAtMs resets all changes to the "sent_at_ms" field.
func (m *DeviceOperationMutation) ResetSentAtMs() {
	m.sent_at_ms = nil
	m.addsent_at_ms = nil
	delete(m.clearedFields, deviceoperation.FieldSentAtMs)
}

// SetAckedAtMs sets the "acked_at_ms" field.
func (m *DeviceOperationMutation) SetAckedAtMs(i int64) {
	m.acked_at_ms = &i
	m.addacked_at_ms = nil
}

// AckedAtMs returns the value of the "acked_at_ms" field in the mutation.
func (m *DeviceOperationMutation) AckedAtMs() (r int64, exists bool) {
	v := m.acked_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldAckedAtMs returns the old "acked_at_ms" field's value of the DeviceOperation entity.
// If the DeviceOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceOperationMutation) OldAckedAtMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAckedAtMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAckedAtMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAckedAtMs: %w", err)
	}
	return oldValue.AckedAtMs, nil
}

// AddAckedAtMs adds i to the "acked_at_ms" field.
func (m *DeviceOperationMutation) AddAckedAtMs(i int64) {
	if m.addacked_at_ms != nil {
		*m.addacked_at_ms += i
	} else {
		m.addacked_at_ms = &i
	}
}

// AddedAckedAtMs returns the value that was added to the "acked_at_ms" field in this mutation.
func (m *DeviceOperationMutation) AddedAckedAtMs() (r int64, exists bool) {
	v := m.addacked_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearAckedAtMs clears the value of the "acked_at_ms" field.
func (m *DeviceOperationMutation) ClearAckedAtMs() {
	m.acked_at_ms = nil
	m.addacked_at_ms = nil
	m.clearedFields[deviceoperation.FieldAckedAtMs] = struct{}{}
}

// AckedAtMsCleared returns if the "acked_at_ms" field was cleared in this mutation.
func (m *DeviceOperationMutation) AckedAtMsCleared() bool {
	_, ok := m.clearedFields[deviceoperation.FieldAckedAtMs]
	return ok
}

// ResetAckedAtMs resets all changes to the "acked_at_ms" field.
func (m *DeviceOperationMutation) ResetAckedAtMs() {
	m.acked_at_ms = nil
	m.addacked_at_ms = nil
	delete(m.clearedFields, deviceoperation.FieldAckedAtMs)
}

// Where appends a list predicates to the DeviceOperationMutation builder.
func (m *DeviceOperationMutation) Where(ps ...predicate.DeviceOperation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeviceOperationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeviceOperationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DeviceOperation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeviceOperationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeviceOperationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DeviceOperation).
func (m *DeviceOperationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeviceOperationMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.device_id != nil {
		fields = append(fields, deviceoperation.FieldDeviceID)
	}
	if m.session_id != nil {
		fields = append(fields, deviceoperation.FieldSessionID)
	}
	if m.op_type != nil {
		fields = append(fields, deviceoperation.FieldOpType)
	}
	if m.command_type != nil {
		fields = append(fields, deviceoperation.FieldCommandType)
	}
	if m.status != nil {
		fields = append(fields, deviceoperation.FieldStatus)
	}
	if m.payload != nil {
		fields = append(fields, deviceoperation.FieldPayload)
	}
	if m.result != nil {
		fields = append(fields, deviceoperation.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, deviceoperation.FieldErrorMessage)
	}
	if m.created_at_ms != nil {
		fields = append(fields, deviceoperation.FieldCreatedAtMs)
	}
	if m.sent_at_ms != nil {
		fields = append(fields, deviceoperation.FieldSentAtMs)
	}
	if m.acked_at_ms != nil {
		fields = append(fields, deviceoperation.FieldAckedAtMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeviceOperationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deviceoperation.FieldDeviceID:
		return m.DeviceID()
	case deviceoperation.FieldSessionID:
		return m.SessionID()
	case deviceoperation.FieldOpType:
		return m.OpType()
	case deviceoperation.FieldCommandType:
		return m.CommandType()
	case deviceoperation.FieldStatus:
		return m.Status()
	case deviceoperation.FieldPayload:
		return m.Payload()
	case deviceoperation.FieldResult:
		return m.Result()
	case deviceoperation.FieldErrorMessage:
		return m.ErrorMessage()
	case deviceoperation.FieldCreatedAtMs:
		return m.CreatedAtMs()
	case deviceoperation.FieldSentAtMs:
		return m.SentAtMs()
	case deviceoperation.FieldAckedAtMs:
		return m.AckedAtMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeviceOperationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deviceoperation.FieldDeviceID:
		return m.OldDeviceID(ctx)
	case deviceoperation.FieldSessionID:
		return m.OldSessionID(ctx)
	case deviceoperation.FieldOpType:
		return m.OldOpType(ctx)
	case deviceoperation.FieldCommandType:
		return m.OldCommandType(ctx)
	case deviceoperation.FieldStatus:
		return m.OldStatus(ctx)
	case deviceoperation.FieldPayload:
		return m.OldPayload(ctx)
	case deviceoperation.FieldResult:
		return m.OldResult(ctx)
	case deviceoperation.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case deviceoperation.FieldCreatedAtMs:
		return m.OldCreatedAtMs(ctx)
	case deviceoperation.FieldSentAtMs:
		return m.OldSentAtMs(ctx)
	case deviceoperation.FieldAckedAtMs:
		return m.OldAckedAtMs(ctx)
	}
	return nil, fmt.Errorf("unknown DeviceOperation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeviceOperationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deviceoperation.FieldDeviceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceID(v)
		return nil
	case deviceoperation.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case deviceoperation.FieldOpType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpType(v)
		return nil
	case deviceoperation.FieldCommandType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommandType(v)
		return nil
	case deviceoperation.FieldStatus:
		v, ok := value.(deviceoperation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case deviceoperation.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case deviceoperation.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case deviceoperation.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case deviceoperation.FieldCreatedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAtMs(v)
		return nil
	case deviceoperation.FieldSentAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAtMs(v)
		return nil
	case deviceoperation.FieldAckedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAckedAtMs(v)
		return nil
	}
	return fmt.Errorf("unknown DeviceOperation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeviceOperationMutation) AddedFields() []string {
	var fields []string
	if m.addcreated_at_ms != nil {
		fields = append(fields, deviceoperation.FieldCreatedAtMs)
	}
	if m.addsent_at_ms != nil {
		fields = append(fields, deviceoperation.FieldSentAtMs)
	}
	if m.addacked_at_ms != nil {
		fields = append(fields, deviceoperation.FieldAckedAtMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeviceOperationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case deviceoperation.FieldCreatedAtMs:
		return m.AddedCreatedAtMs()
	case deviceoperation.FieldSentAtMs:
		return m.AddedSentAtMs()
	case deviceoperation.FieldAckedAtMs:
		return m.AddedAckedAtMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeviceOperationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case deviceoperation.FieldCreatedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedAtMs(v)
		return nil
	case deviceoperation.FieldSentAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSentAtMs(v)
		return nil
	case deviceoperation.FieldAckedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAckedAtMs(v)
		return nil
	}
	return fmt.Errorf("unknown DeviceOperation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeviceOperationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(deviceoperation.FieldSessionID) {
		fields = append(fields, deviceoperation.FieldSessionID)
	}
	if m.FieldCleared(deviceoperation.FieldPayload) {
		fields = append(fields, deviceoperation.FieldPayload)
	}
	if m.FieldCleared(deviceoperation.FieldResult) {
		fields = append(fields, deviceoperation.FieldResult)
	}
	if m.FieldCleared(deviceoperation.FieldErrorMessage) {
		fields = append(fields, deviceoperation.FieldErrorMessage)
	}
	if m.FieldCleared(deviceoperation.FieldSentAtMs) {
		fields = append(fields, deviceoperation.FieldSentAtMs)
	}
	if m.FieldCleared(deviceoperation.FieldAckedAtMs) {
		fields = append(fields, deviceoperation.FieldAckedAtMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeviceOperationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeviceOperationMutation) ClearField(name string) error {
	switch name {
	case deviceoperation.FieldSessionID:
		m.ClearSessionID()
		return nil
	case deviceoperation.FieldPayload:
		m.ClearPayload()
		return nil
	case deviceoperation.FieldResult:
		m.ClearResult()
		return nil
	case deviceoperation.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case deviceoperation.FieldSentAtMs:
		m.ClearSentAtMs()
		return nil
	case deviceoperation.FieldAckedAtMs:
		m.ClearAckedAtMs()
		return nil
	}
	return fmt.Errorf("unknown DeviceOperation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeviceOperationMutation) ResetField(name string) error {
	switch name {
	case deviceoperation.FieldDeviceID:
		m.ResetDeviceID()
		return nil
	case deviceoperation.FieldSessionID:
		m.ResetSessionID()
		return nil
	case deviceoperation.FieldOpType:
		m.ResetOpType()
		return nil
	case deviceoperation.FieldCommandType:
		m.ResetCommandType()
		return nil
	case deviceoperation.FieldStatus:
		m.ResetStatus()
		return nil
	case deviceoperation.FieldPayload:
		m.ResetPayload()
		return nil
	case deviceoperation.FieldResult:
		m.ResetResult()
		return nil
	case deviceoperation.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case deviceoperation.FieldCreatedAtMs:
		m.ResetCreatedAtMs()
		return nil
	case deviceoperation.FieldSentAtMs:
		m.ResetSentAtMs()
		return nil
	case deviceoperation.FieldAckedAtMs:
		m.ResetAckedAtMs()
		return nil
	}
	return fmt.Errorf("unknown DeviceOperation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeviceOperationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeviceOperationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeviceOperationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeviceOperationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeviceOperationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeviceOperationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeviceOperationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DeviceOperation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeviceOperationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DeviceOperation edge %s", name)
}

// DeviceSessionMutation represents an operation that mutates the DeviceSession nodes in the graph.
type DeviceSessionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	device_id            *string
	session_id           *string
	state                *devicesession.State
	created_at_ms        *int64
	addcreated_at_ms     *int64
	last_seen_ms         *int64
	addlast_seen_ms      *int64
	last_inbound_seq     *int64
	addlast_inbound_seq  *int64
	last_outbound_seq    *int64
	addlast_outbound_seq *int64
	closed_at_ms         *int64
	addclosed_at_ms      *int64
	close_reason         *string
	session_metadata     *map[string]interface{}
	telemetry            *map[string]interface{}
	updated_at_ms        *int64
	addupdated_at_ms     *int64
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*DeviceSession, error)
	predicates           []predicate.DeviceSession
}

var _ ent.Mutation = (*DeviceSessionMutation)(nil)

// devicesessionOption allows management of the mutation configuration using functional options.
type devicesessionOption func(*DeviceSessionMutation)

// newDeviceSessionMutation creates new mutation for the DeviceSession entity.
func newDeviceSessionMutation(c config, op Op, opts ...devicesessionOption) *DeviceSessionMutation {
	m := &DeviceSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeDeviceSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeviceSessionID sets the ID field of the mutation.
func withDeviceSessionID(id int) devicesessionOption {
	return func(m *DeviceSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *DeviceSession
		)
		m.oldValue = func(ctx context.Context) (*DeviceSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DeviceSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeviceSession sets the old DeviceSession of the mutation.
func withDeviceSession(node *DeviceSession) devicesessionOption {
	return func(m *DeviceSessionMutation) {
		m.oldValue = func(context.Context) (*DeviceSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeviceSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeviceSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeviceSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeviceSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DeviceSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDeviceID sets the "device_id" field.
func (m *DeviceSessionMutation) SetDeviceID(s string) {
	m.device_id = &s
}

// DeviceID returns the value of the "device_id" field in the mutation.
func (m *DeviceSessionMutation) DeviceID() (r string, exists bool) {
	v := m.device_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceID returns the old "device_id" field's value of the DeviceSession entity.
// If the DeviceSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceSessionMutation) OldDeviceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceID: %w", err)
	}
	return oldValue.DeviceID, nil
}

// ResetDeviceID resets all changes to the "device_id" field.
func (m *DeviceSessionMutation) ResetDeviceID() {
	m.device_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *DeviceSessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *DeviceSessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the DeviceSession entity.
// If the DeviceSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceSessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *DeviceSessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetState sets the "state" field.
func (m *DeviceSessionMutation) SetState(d devicesession.State) {
	m.state = &d
}

// State returns the value of the "state" field in the mutation.
func (m *DeviceSessionMutation) State() (r devicesession.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the DeviceSession entity.
// If the DeviceSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceSessionMutation) OldState(ctx context.Context) (v devicesession.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *DeviceSessionMutation) ResetState() {
	m.state = nil
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (m *DeviceSessionMutation) SetCreatedAtMs(i int64) {
	m.created_at_ms = &i
	m.addcreated_at_ms = nil
}

// CreatedAtMs returns the value of the "created_at_ms" field in the mutation.
func (m *DeviceSessionMutation) CreatedAtMs() (r int64, exists bool) {
	v := m.created_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAtMs returns the old "created_at_ms" field's value of the DeviceSession entity.
// If the DeviceSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceSessionMutation) OldCreatedAtMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAtMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAtMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAtMs: %w", err)
	}
	return oldValue.CreatedAtMs, nil
}

// AddCreatedAtMs adds i to the "created_at_ms" field.
func (m *DeviceSessionMutation) AddCreatedAtMs(i int64) {
	if m.addcreated_at_ms != nil {
		*m.addcreated_at_ms += i
	} else {
		m.addcreated_at_ms = &i
	}
}

// AddedCreatedAtMs returns the value that was added to the "created_at_ms" field in this mutation.
func (m *DeviceSessionMutation) AddedCreatedAtMs() (r int64, exists bool) {
	v := m.addcreated_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedAtMs resets all changes to the "created_at_ms" field.
func (m *DeviceSessionMutation) ResetCreatedAtMs() {
	m.created_at_ms = nil
	m.addcreated_at_ms = nil
}

// SetLastSeenMs sets the "last_seen_ms" field.
func (m *DeviceSessionMutation) SetLastSeenMs(i int64) {
	m.last_seen_ms = &i
	m.addlast_seen_ms = nil
}

// LastSeenMs returns the value of the "last_seen_ms" field in the mutation.
func (m *DeviceSessionMutation) LastSeenMs() (r int64, exists bool) {
	v := m.last_seen_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenMs returns the old "last_seen_ms" field's value of the DeviceSession entity.
// If the DeviceSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceSessionMutation) OldLastSeenMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenMs: %w", err)
	}
	return oldValue.LastSeenMs, nil
}

// AddLastSeenMs adds i to the "last_seen_ms" field.
func (m *DeviceSessionMutation) AddLastSeenMs(i int64) {
	if m.addlast_seen_ms != nil {
		*m.addlast_seen_ms += i
	} else {
		m.addlast_seen_ms = &i
	}
}

// AddedLastSeenMs returns the value that was added to the "last_seen_ms" field in this mutation.
func (m *DeviceSessionMutation) AddedLastSeenMs() (r int64, exists bool) {
	v := m.addlast_seen_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastSeenMs resets all changes to the "last_seen_ms" field.
func (m *DeviceSessionMutation) ResetLastSeenMs() {
	m.last_seen_ms = nil
	m.addlast_seen_ms = nil
}

// SetLastInboundSeq sets the "last_inbound_seq" field.
func (m *DeviceSessionMutation) SetLastInboundSeq(i int64) {
	m.last_inbound_seq = &i
	m.addlast_inbound_seq = nil
}

// LastInboundSeq returns the value of the "last_inbound_seq" field in the mutation.
func (m *DeviceSessionMutation) LastInboundSeq() (r int64, exists bool) {
	v := m.last_inbound_seq
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInboundSeq returns the old "last_inbound_seq" field's value of the DeviceSession entity.
// If the DeviceSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceSessionMutation) OldLastInboundSeq(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInboundSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInboundSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInboundSeq: %w", err)
	}
	return oldValue.LastInboundSeq, nil
}

// AddLastInboundSeq adds i to the "last_inbound_seq" field.
func (m *DeviceSessionMutation) AddLastInboundSeq(i int64) {
	if m.addlast_inbound_seq != nil {
		*m.addlast_inbound_seq += i
	} else {
		m.addlast_inbound_seq = &i
	}
}

// AddedLastInboundSeq returns the value that was added to the "last_inbound_seq" field in this mutation.
func (m *DeviceSessionMutation) AddedLastInboundSeq() (r int64, exists bool) {
	v := m.addlast_inbound_seq
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastInboundSeq resets all changes to the "last_inbound_seq" field.
func (m *DeviceSessionMutation) ResetLastInboundSeq() {
	m.last_inbound_seq = nil
	m.addlast_inbound_seq = nil
}

// SetLastOutboundSeq sets the "last_outbound_seq" field.
func (m *DeviceSessionMutation) SetLastOutboundSeq(i int64) {
	m.last_outbound_seq = &i
	m.addlast_outbound_seq = nil
}

// LastOutboundSeq returns the value of the "last_outbound_seq" field in the mutation.
func (m *DeviceSessionMutation) LastOutboundSeq() (r int64, exists bool) {
	v := m.last_outbound_seq
	if v == nil {
		return
	}
	return *v, true
}

// OldLastOutboundSeq returns the old "last_outbound_seq" field's value of the DeviceSession entity.
// If the DeviceSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceSessionMutation) OldLastOutboundSeq(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastOutboundSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastOutboundSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastOutboundSeq: %w", err)
	}
	return oldValue.LastOutboundSeq, nil
}

// AddLastOutboundSeq adds i to the "last_outbound_seq" field.
func (m *DeviceSessionMutation) AddLastOutboundSeq(i int64) {
	if m.addlast_outbound_seq != nil {
		*m.addlast_outbound_seq += i
	} else {
		m.addlast_outbound_seq = &i
	}
}

// AddedLastOutboundSeq returns the value that was added to the "last_outbound_seq" field in this mutation.
func (m *DeviceSessionMutation) AddedLastOutboundSeq() (r int64, exists bool) {
	v := m.addlast_outbound_seq
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastOutboundSeq resets all changes to the "last_outbound_seq" field.
func (m *DeviceSessionMutation) ResetLastOutboundSeq() {
	m.last_outbound_seq = nil
	m.addlast_outbound_seq = nil
}

// SetClosedAtMs sets the "closed_at_ms" field.
func (m *DeviceSessionMutation) SetClosedAtMs(i int64) {
	m.closed_at_ms = &i
	m.addclosed_at_ms = nil
}

// ClosedAtMs returns the value of the "closed_at_ms" field in the mutation.
func (m *DeviceSessionMutation) ClosedAtMs() (r int64, exists bool) {
	v := m.closed_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldClosedAtMs returns the old "closed_at_ms" field's value of the DeviceSession entity.
// If the DeviceSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceSessionMutation) OldClosedAtMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosedAtMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosedAtMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosedAtMs: %w", err)
	}
	return oldValue.ClosedAtMs, nil
}

// AddClosedAtMs adds i to the "closed_at_ms" field.
func (m *DeviceSessionMutation) AddClosedAtMs(i int64) {
	if m.addclosed_at_ms != nil {
		*m.addclosed_at_ms += i
	} else {
		m.addclosed_at_ms = &i
	}
}

// AddedClosedAtMs returns the value that was added to the "closed_at_ms" field in this mutation.
func (m *DeviceSessionMutation) AddedClosedAtMs() (r int64, exists bool) {
	v := m.addclosed_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearClosedAtMs clears the value of the "closed_at_ms" field.
func (m *DeviceSessionMutation) ClearClosedAtMs() {
	m.closed_at_ms = nil
	m.addclosed_at_ms = nil
	m.clearedFields[devicesession.FieldClosedAtMs] = struct{}{}
}

// ClosedAtMsCleared returns if the "closed_at_ms" field was cleared in this mutation.
func (m *DeviceSessionMutation) ClosedAtMsCleared() bool {
	_, ok := m.clearedFields[devicesession.FieldClosedAtMs]
	return ok
}

// ResetClosedAtMs resets all changes to the "closed_at_ms" field.
func (m *DeviceSessionMutation) ResetClosedAtMs() {
	m.closed_at_ms = nil
	m.addclosed_at_ms = nil
	delete(m.clearedFields, devicesession.FieldClosedAtMs)
}

// SetCloseReason sets the "close_reason" field.
func (m *DeviceSessionMutation) SetCloseReason(s string) {
	m.close_reason = &s
}

// CloseReason returns the value of the "close_reason" field in the mutation.
func (m *DeviceSessionMutation) CloseReason() (r string, exists bool) {
	v := m.close_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldCloseReason returns the old "close_reason" field's value of the DeviceSession entity.
// If the DeviceSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceSessionMutation) OldCloseReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCloseReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCloseReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCloseReason: %w", err)
	}
	return oldValue.CloseReason, nil
}

// ClearCloseReason clears the value of the "close_reason" field.
func (m *DeviceSessionMutation) ClearCloseReason() {
	m.close_reason = nil
	m.clearedFields[devicesession.FieldCloseReason] = struct{}{}
}

// CloseReasonCleared returns if the "close_reason" field was cleared in this mutation.
func (m *DeviceSessionMutation) CloseReasonCleared() bool {
	_, ok := m.clearedFields[devicesession.FieldCloseReason]
	return ok
}

// ResetCloseReason resets all changes to the "close_reason" field.
func (m *DeviceSessionMutation) ResetCloseReason() {
	m.close_reason = nil
	delete(m.clearedFields, devicesession.FieldCloseReason)
}

// SetSessionMetadata sets the "session_metadata" field.
func (m *DeviceSessionMutation) SetSessionMetadata(value map[string]interface{}) {
	m.session_metadata = &value
}

// SessionMetadata returns the value of the "session_metadata" field in the mutation.
func (m *DeviceSessionMutation) SessionMetadata() (r map[string]interface{}, exists bool) {
	v := m.session_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionMetadata returns the old "session_metadata" field's value of the DeviceSession entity.
// If the DeviceSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceSessionMutation) OldSessionMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionMetadata: %w", err)
	}
	return oldValue.SessionMetadata, nil
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (m *DeviceSessionMutation) ClearSessionMetadata() {
	m.session_metadata = nil
	m.clearedFields[devicesession.FieldSessionMetadata] = struct{}{}
}

// SessionMetadataCleared returns if the "session_metadata" field was cleared in this mutation.
func (m *DeviceSessionMutation) SessionMetadataCleared() bool {
	_, ok := m.clearedFields[devicesession.FieldSessionMetadata]
	return ok
}

// ResetSessionMetadata resets all changes to the "session_metadata" field.
func (m *DeviceSessionMutation) ResetSessionMetadata() {
	m.session_metadata = nil
	delete(m.clearedFields, devicesession.FieldSessionMetadata)
}

// SetTelemetry sets the "telemetry" field.
func (m *DeviceSessionMutation) SetTelemetry(value map[string]interface{}) {
	m.telemetry = &value
}

// Telemetry returns the value of the "telemetry" field in the mutation.
func (m *DeviceSessionMutation) Telemetry() (r map[string]interface{}, exists bool) {
	v := m.telemetry
	if v == nil {
		return
	}
	return *v, true
}

// OldTelemetry returns the old "telemetry" field's value of the DeviceSession entity.
// If the DeviceSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceSessionMutation) OldTelemetry(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTelemetry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTelemetry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTelemetry: %w", err)
	}
	return oldValue.Telemetry, nil
}

// ClearTelemetry clears the value of the "telemetry" field.
func (m *DeviceSessionMutation) ClearTelemetry() {
	m.telemetry = nil
	m.clearedFields[devicesession.FieldTelemetry] = struct{}{}
}

// TelemetryCleared returns if the "telemetry" field was cleared in this mutation.
func (m *DeviceSessionMutation) TelemetryCleared() bool {
	_, ok := m.clearedFields[devicesession.FieldTelemetry]
	return ok
}

// ResetTelemetry resets all changes to the "telemetry" field.
func (m *DeviceSessionMutation) ResetTelemetry() {
	m.telemetry = nil
	delete(m.clearedFields, devicesession.FieldTelemetry)
}

// SetUpdatedAtMs sets the "updated_at_ms" field.
func (m *DeviceSessionMutation) SetUpdatedAtMs(i int64) {
	m.updated_at_ms = &i
	m.addupdated_at_ms = nil
}

// UpdatedAtMs returns the value of the "updated_at_ms" field in the mutation.
func (m *DeviceSessionMutation) UpdatedAtMs() (r int64, exists bool) {
	v := m.updated_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAtMs returns the old "updated_at_ms" field's value of the DeviceSession entity.
// If the DeviceSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeviceSessionMutation) OldUpdatedAtMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAtMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAtMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAtMs: %w", err)
	}
	return oldValue.UpdatedAtMs, nil
}

// AddUpdatedAtMs adds i to the "updated_at_ms" field.
func (m *DeviceSessionMutation) AddUpdatedAtMs(i int64) {
	if m.addupdated_at_ms != nil {
		*m.addupdated_at_ms += i
	} else {
		m.addupdated_at_ms = &i
	}
}

// AddedUpdatedAtMs returns the value that was added to the "updated_at_ms" field in this mutation.
func (m *DeviceSessionMutation) AddedUpdatedAtMs() (r int64, exists bool) {
	v := m.addupdated_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpdatedAtMs resets all changes to the "updated_at_ms" field.
func (m *DeviceSessionMutation) ResetUpdatedAtMs() {
	m.updated_at_ms = nil
	m.addupdated_at_ms = nil
}

// Where appends a list predicates to the DeviceSessionMutation builder.
func (m *DeviceSessionMutation) Where(ps ...predicate.DeviceSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeviceSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeviceSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DeviceSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeviceSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeviceSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DeviceSession).
func (m *DeviceSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeviceSessionMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.device_id != nil {
		fields = append(fields, devicesession.FieldDeviceID)
	}
	if m.session_id != nil {
		fields = append(fields, devicesession.FieldSessionID)
	}
	if m.state != nil {
		fields = append(fields, devicesession.FieldState)
	}
	if m.created_at_ms != nil {
		fields = append(fields, devicesession.FieldCreatedAtMs)
	}
	if m.last_seen_ms != nil {
		fields = append(fields, devicesession.FieldLastSeenMs)
	}
	if m.last_inbound_seq != nil {
		fields = append(fields, devicesession.FieldLastInboundSeq)
	}
	if m.last_outbound_seq != nil {
		fields = append(fields, devicesession.FieldLastOutboundSeq)
	}
	if m.closed_at_ms != nil {
		fields = append(fields, devicesession.FieldClosedAtMs)
	}
	if m.close_reason != nil {
		fields = append(fields, devicesession.FieldCloseReason)
	}
	if m.session_metadata != nil {
		fields = append(fields, devicesession.FieldSessionMetadata)
	}
	if m.telemetry != nil {
		fields = append(fields, devicesession.FieldTelemetry)
	}
	if m.updated_at_ms != nil {
		fields = append(fields, devicesession.FieldUpdatedAtMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeviceSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case devicesession.FieldDeviceID:
		return m.DeviceID()
	case devicesession.FieldSessionID:
		return m.SessionID()
	case devicesession.FieldState:
		return m.State()
	case devicesession.FieldCreatedAtMs:
		return m.CreatedAtMs()
	case devicesession.FieldLastSeenMs:
		return m.LastSeenMs()
	case devicesession.FieldLastInboundSeq:
		return m.LastInboundSeq()
	case devicesession.FieldLastOutboundSeq:
		return m.LastOutboundSeq()
	case devicesession.FieldClosedAtMs:
		return m.ClosedAtMs()
	case devicesession.FieldCloseReason:
		return m.CloseReason()
	case devicesession.FieldSessionMetadata:
		return m.SessionMetadata()
	case devicesession.FieldTelemetry:
		return m.Telemetry()
	case devicesession.FieldUpdatedAtMs:
		return m.UpdatedAtMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeviceSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case devicesession.FieldDeviceID:
		return m.OldDeviceID(ctx)
	case devicesession.FieldSessionID:
		return m.OldSessionID(ctx)
	case devicesession.FieldState:
		return m.OldState(ctx)
	case devicesession.FieldCreatedAtMs:
		return m.OldCreatedAtMs(ctx)
	case devicesession.FieldLastSeenMs:
		return m.OldLastSeenMs(ctx)
	case devicesession.FieldLastInboundSeq:
		return m.OldLastInboundSeq(ctx)
	case devicesession.FieldLastOutboundSeq:
		return m.OldLastOutboundSeq(ctx)
	case devicesession.FieldClosedAtMs:
		return m.OldClosedAtMs(ctx)
	case devicesession.FieldCloseReason:
		return m.OldCloseReason(ctx)
	case devicesession.FieldSessionMetadata:
		return m.OldSessionMetadata(ctx)
	case devicesession.FieldTelemetry:
		return m.OldTelemetry(ctx)
	case devicesession.FieldUpdatedAtMs:
		return m.OldUpdatedAtMs(ctx)
	}
	return nil, fmt.Errorf("unknown DeviceSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeviceSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case devicesession.FieldDeviceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceID(v)
		return nil
	case devicesession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case devicesession.FieldState:
		v, ok := value.(devicesession.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case devicesession.FieldCreatedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAtMs(v)
		return nil
	case devicesession.FieldLastSeenMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenMs(v)
		return nil
	case devicesession.FieldLastInboundSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInboundSeq(v)
		return nil
	case devicesession.FieldLastOutboundSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastOutboundSeq(v)
		return nil
	case devicesession.FieldClosedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosedAtMs(v)
		return nil
	case devicesession.FieldCloseReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCloseReason(v)
		return nil
	case devicesession.FieldSessionMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionMetadata(v)
		return nil
	case devicesession.FieldTelemetry:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTelemetry(v)
		return nil
	case devicesession.FieldUpdatedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAtMs(v)
		return nil
	}
	return fmt.Errorf("unknown DeviceSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeviceSessionMutation) AddedFields() []string {
	var fields []string
	if m.addcreated_at_ms != nil {
		fields = append(fields, devicesession.FieldCreatedAtMs)
	}
	if m.addlast_seen_ms != nil {
		fields = append(fields, devicesession.FieldLastSeenMs)
	}
	if m.addlast_inbound_seq != nil {
		fields = append(fields, devicesession.FieldLastInboundSeq)
	}
	if m.addlast_outbound_seq != nil {
		fields = append(fields, devicesession.FieldLastOutboundSeq)
	}
	if m.addclosed_at_ms != nil {
		fields = append(fields, devicesession.FieldClosedAtMs)
	}
	if m.addupdated_at_ms != nil {
		fields = append(fields, devicesession.FieldUpdatedAtMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeviceSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case devicesession.FieldCreatedAtMs:
		return m.AddedCreatedAtMs()
	case devicesession.FieldLastSeenMs:
		return m.AddedLastSeenMs()
	case devicesession.FieldLastInboundSeq:
		return m.AddedLastInboundSeq()
	case devicesession.FieldLastOutboundSeq:
		return m.AddedLastOutboundSeq()
	case devicesession.FieldClosedAtMs:
		return m.AddedClosedAtMs()
	case devicesession.FieldUpdatedAtMs:
		return m.AddedUpdatedAtMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeviceSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case devicesession.FieldCreatedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedAtMs(v)
		return nil
	case devicesession.FieldLastSeenMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastSeenMs(v)
		return nil
	case devicesession.FieldLastInboundSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastInboundSeq(v)
		return nil
	case devicesession.FieldLastOutboundSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastOutboundSeq(v)
		return nil
	case devicesession.FieldClosedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClosedAtMs(v)
		return nil
	case devicesession.FieldUpdatedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpdatedAtMs(v)
		return nil
	}
	return fmt.Errorf("unknown DeviceSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeviceSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(devicesession.FieldClosedAtMs) {
		fields = append(fields, devicesession.FieldClosedAtMs)
	}
	if m.FieldCleared(devicesession.FieldCloseReason) {
		fields = append(fields, devicesession.FieldCloseReason)
	}
	if m.FieldCleared(devicesession.FieldSessionMetadata) {
		fields = append(fields, devicesession.FieldSessionMetadata)
	}
	if m.FieldCleared(devicesession.FieldTelemetry) {
		fields = append(fields, devicesession.FieldTelemetry)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeviceSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeviceSessionMutation) ClearField(name string) error {
	switch name {
	case devicesession.FieldClosedAtMs:
		m.ClearClosedAtMs()
		return nil
	case devicesession.FieldCloseReason:
		m.ClearCloseReason()
		return nil
	case devicesession.FieldSessionMetadata:
		m.ClearSessionMetadata()
		return nil
	case devicesession.FieldTelemetry:
		m.ClearTelemetry()
		return nil
	}
	return fmt.Errorf("unknown DeviceSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeviceSessionMutation) ResetField(name string) error {
	switch name {
	case devicesession.FieldDeviceID:
		m.ResetDeviceID()
		return nil
	case devicesession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case devicesession.FieldState:
		m.ResetState()
		return nil
	case devicesession.FieldCreatedAtMs:
		m.ResetCreatedAtMs()
		return nil
	case devicesession.FieldLastSeenMs:
		m.ResetLastSeenMs()
		return nil
	case devicesession.FieldLastInboundSeq:
		m.ResetLastInboundSeq()
		return nil
	case devicesession.FieldLastOutboundSeq:
		m.ResetLastOutboundSeq()
		return nil
	case devicesession.FieldClosedAtMs:
		m.ResetClosedAtMs()
		return nil
	case devicesession.FieldCloseReason:
		m.ResetCloseReason()
		return nil
	case devicesession.FieldSessionMetadata:
		m.ResetSessionMetadata()
		return nil
	case devicesession.FieldTelemetry:
		m.ResetTelemetry()
		return nil
	case devicesession.FieldUpdatedAtMs:
		m.ResetUpdatedAtMs()
		return nil
	}
	return fmt.Errorf("unknown DeviceSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeviceSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeviceSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeviceSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeviceSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeviceSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeviceSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeviceSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DeviceSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeviceSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DeviceSession edge %s", name)
}

// DigitalTaskMutation represents an operation that mutates the DigitalTask nodes in the graph.
type DigitalTaskMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	session_id         *string
	device_id          *string
	goal               *string
	status             *digitaltask.Status
	steps              *[]map[string]interface{}
	appendsteps        []map[string]interface{}
	result             *string
	error_message      *string
	timeout_seconds    *int
	addtimeout_seconds *int
	push_context       *map[string]interface{}
	created_at_ms      *int64
	addcreated_at_ms   *int64
	updated_at_ms      *int64
	addupdated_at_ms   *int64
	completed_at_ms    *int64
	addcompleted_at_ms *int64
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*DigitalTask, error)
	predicates         []predicate.DigitalTask
}

var _ ent.Mutation = (*DigitalTaskMutation)(nil)

// digitaltaskOption allows management of the mutation configuration using functional options.
type digitaltaskOption func(*DigitalTaskMutation)

// newDigitalTaskMutation creates new mutation for the DigitalTask entity.
func newDigitalTaskMutation(c config, op Op, opts ...digitaltaskOption) *DigitalTaskMutation {
	m := &DigitalTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeDigitalTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDigitalTaskID sets the ID field of the mutation.
func withDigitalTaskID(id string) digitaltaskOption {
	return func(m *DigitalTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *DigitalTask
		)
		m.oldValue = func(ctx context.Context) (*DigitalTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DigitalTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDigitalTask sets the old DigitalTask of the mutation.
func withDigitalTask(node *DigitalTask) digitaltaskOption {
	return func(m *DigitalTaskMutation) {
		m.oldValue = func(context.Context) (*DigitalTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DigitalTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DigitalTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DigitalTask entities.
func (m *DigitalTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DigitalTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DigitalTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DigitalTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *DigitalTaskMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *DigitalTaskMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the DigitalTask entity.
// If the DigitalTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigitalTaskMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *DigitalTaskMutation) ResetSessionID() {
	m.session_id = nil
}

// SetDeviceID sets the "device_id" field.
func (m *DigitalTaskMutation) SetDeviceID(s string) {
	m.device_id = &s
}

// DeviceID returns the value of the "device_id" field in the mutation.
func (m *DigitalTaskMutation) DeviceID() (r string, exists bool) {
	v := m.device_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceID returns the old "device_id" field's value of the DigitalTask entity.
// If the DigitalTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigitalTaskMutation) OldDeviceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceID: %w", err)
	}
	return oldValue.DeviceID, nil
}

// ClearDeviceID clears the value of the "device_id" field.
func (m *DigitalTaskMutation) ClearDeviceID() {
	m.device_id = nil
	m.clearedFields[digitaltask.FieldDeviceID] = struct{}{}
}

// DeviceIDCleared returns if the "device_id" field was cleared in this mutation.
func (m *DigitalTaskMutation) DeviceIDCleared() bool {
	_, ok := m.clearedFields[digitaltask.FieldDeviceID]
	return ok
}

// ResetDeviceID resets all changes to the "device_id" field.
func (m *DigitalTaskMutation) ResetDeviceID() {
	m.device_id = nil
	delete(m.clearedFields, digitaltask.FieldDeviceID)
}

// SetGoal sets the "goal" field.
func (m *DigitalTaskMutation) SetGoal(s string) {
	m.goal = &s
}

// Goal returns the value of the "goal" field in the mutation.
func (m *DigitalTaskMutation) Goal() (r string, exists bool) {
	v := m.goal
	if v == nil {
		return
	}
	return *v, true
}

// OldGoal returns the old "goal" field's value of the DigitalTask entity.
// If the DigitalTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigitalTaskMutation) OldGoal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoal: %w", err)
	}
	return oldValue.Goal, nil
}

// ResetGoal resets all changes to the "goal" field.
func (m *DigitalTaskMutation) ResetGoal() {
	m.goal = nil
}

// SetStatus sets the "status" field.
func (m *DigitalTaskMutation) SetStatus(d digitaltask.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DigitalTaskMutation) Status() (r digitaltask.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DigitalTask entity.
// If the DigitalTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigitalTaskMutation) OldStatus(ctx context.Context) (v digitaltask.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DigitalTaskMutation) ResetStatus() {
	m.status = nil
}

// SetSteps sets the "steps" field.
func (m *DigitalTaskMutation) SetSteps(value []map[string]interface{}) {
	m.steps = &value
	m.appendsteps = nil
}

// Steps returns the value of the "steps" field in the mutation.
func (m *DigitalTaskMutation) Steps() (r []map[string]interface{}, exists bool) {
	v := m.steps
	if v == nil {
		return
	}
	return *v, true
}

// OldSteps returns the old "steps" field's value of the DigitalTask entity.
// If the DigitalTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigitalTaskMutation) OldSteps(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSteps: %w", err)
	}
	return oldValue.Steps, nil
}

// AppendSteps adds value to the "steps" field.
func (m *DigitalTaskMutation) AppendSteps(value []map[string]interface{}) {
	m.appendsteps = append(m.appendsteps, value...)
}

// AppendedSteps returns the list of values that were appended to the "steps" field in this mutation.
func (m *DigitalTaskMutation) AppendedSteps() ([]map[string]interface{}, bool) {
	if len(m.appendsteps) == 0 {
		return nil, false
	}
	return m.appendsteps, true
}

// ClearSteps clears the value of the "steps" field.
func (m *DigitalTaskMutation) ClearSteps() {
	m.steps = nil
	m.appendsteps = nil
	m.clearedFields[digitaltask.FieldSteps] = struct{}{}
}

// StepsCleared returns if the "steps" field was cleared in this mutation.
func (m *DigitalTaskMutation) StepsCleared() bool {
	_, ok := m.clearedFields[digitaltask.FieldSteps]
	return ok
}

// ResetSteps resets all changes to the "steps" field.
func (m *DigitalTaskMutation) ResetSteps() {
	m.steps = nil
	m.appendsteps = nil
	delete(m.clearedFields, digitaltask.FieldSteps)
}

// SetResult sets the "result" field.
func (m *DigitalTaskMutation) SetResult(s string) {
	m.result = &s
}

// Result returns the value of the "result" field in the mutation.
func (m *DigitalTaskMutation) Result() (r string, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the DigitalTask entity.
// If the DigitalTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigitalTaskMutation) OldResult(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *DigitalTaskMutation) ClearResult() {
	m.result = nil
	m.clearedFields[digitaltask.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *DigitalTaskMutation) ResultCleared() bool {
	_, ok := m.clearedFields[digitaltask.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *DigitalTaskMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, digitaltask.FieldResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *DigitalTaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DigitalTaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the DigitalTask entity.
// If the DigitalTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigitalTaskMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DigitalTaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[digitaltask.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DigitalTaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[digitaltask.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DigitalTaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, digitaltask.FieldErrorMessage)
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (m *DigitalTaskMutation) SetTimeoutSeconds(i int) {
	m.timeout_seconds = &i
	m.addtimeout_seconds = nil
}

// TimeoutSeconds returns the value of the "timeout_seconds" field in the mutation.
func (m *DigitalTaskMutation) TimeoutSeconds() (r int, exists bool) {
	v := m.timeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutSeconds returns the old "timeout_seconds" field's value of the DigitalTask entity.
// If the DigitalTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigitalTaskMutation) OldTimeoutSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutSeconds: %w", err)
	}
	return oldValue.TimeoutSeconds, nil
}

// AddTimeoutSeconds adds i to the "timeout_seconds" field.
func (m *DigitalTaskMutation) AddTimeoutSeconds(i int) {
	if m.addtimeout_seconds != nil {
		*m.addtimeout_seconds += i
	} else {
		m.addtimeout_seconds = &i
	}
}

// AddedTimeoutSeconds returns the value that was added to the "timeout_seconds" field in this mutation.
func (m *DigitalTaskMutation) AddedTimeoutSeconds() (r int, exists bool) {
	v := m.addtimeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeoutSeconds resets all changes to the "timeout_seconds" field.
func (m *DigitalTaskMutation) ResetTimeoutSeconds() {
	m.timeout_seconds = nil
	m.addtimeout_seconds = nil
}

// SetPushContext sets the "push_context" field.
func (m *DigitalTaskMutation) SetPushContext(value map[string]interface{}) {
	m.push_context = &value
}

// PushContext returns the value of the "push_context" field in the mutation.
func (m *DigitalTaskMutation) PushContext() (r map[string]interface{}, exists bool) {
	v := m.push_context
	if v == nil {
		return
	}
	return *v, true
}

// OldPushContext returns the old "push_context" field's value of the DigitalTask entity.
// If the DigitalTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigitalTaskMutation) OldPushContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPushContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPushContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPushContext: %w", err)
	}
	return oldValue.PushContext, nil
}

// ClearPushContext clears the value of the "push_context" field.
func (m *DigitalTaskMutation) ClearPushContext() {
	m.push_context = nil
	m.clearedFields[digitaltask.FieldPushContext] = struct{}{}
}

// PushContextCleared returns if the "push_context" field was cleared in this mutation.
func (m *DigitalTaskMutation) PushContextCleared() bool {
	_, ok := m.clearedFields[digitaltask.FieldPushContext]
	return ok
}

// ResetPushContext resets all changes to the "push_context" field.
func (m *DigitalTaskMutation) ResetPushContext() {
	m.push_context = nil
	delete(m.clearedFields, digitaltask.FieldPushContext)
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (m *DigitalTaskMutation) SetCreatedAtMs(i int64) {
	m.created_at_ms = &i
	m.addcreated_at_ms = nil
}

// CreatedAtMs returns the value of the "created_at_ms" field in the mutation.
func (m *DigitalTaskMutation) CreatedAtMs() (r int64, exists bool) {
	v := m.created_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAtMs returns the old "created_at_ms" field's value of the DigitalTask entity.
// If the DigitalTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigitalTaskMutation) OldCreatedAtMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAtMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAtMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAtMs: %w", err)
	}
	return oldValue.CreatedAtMs, nil
}

// AddCreatedAtMs adds i to the "created_at_ms" field.
func (m *DigitalTaskMutation) AddCreatedAtMs(i int64) {
	if m.addcreated_at_ms != nil {
		*m.addcreated_at_ms += i
	} else {
		m.addcreated_at_ms = &i
	}
}

// AddedCreatedAtMs returns the value that was added to the "created_at_ms" field in this mutation.
func (m *DigitalTaskMutation) AddedCreatedAtMs() (r int64, exists bool) {
	v := m.addcreated_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedAtMs resets all changes to the "created_at_ms" field.
func (m *DigitalTaskMutation) ResetCreatedAtMs() {
	m.created_at_ms = nil
	m.addcreated_at_ms = nil
}

// SetUpdatedAtMs sets the "updated_at_ms" field.
func (m *DigitalTaskMutation) SetUpdatedAtMs(i int64) {
	m.updated_at_ms = &i
	m.addupdated_at_ms = nil
}

// UpdatedAtMs returns the value of the "updated_at_ms" field in the mutation.
func (m *DigitalTaskMutation) UpdatedAtMs() (r int64, exists bool) {
	v := m.updated_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAtMs returns the old "updated_at_ms" field's value of the DigitalTask entity.
// If the DigitalTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigitalTaskMutation) OldUpdatedAtMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAtMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAtMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAtMs: %w", err)
	}
	return oldValue.UpdatedAtMs, nil
}

// AddUpdatedAtMs adds i to the "updated_at_ms" field.
func (m *DigitalTaskMutation) AddUpdatedAtMs(i int64) {
	if m.addupdated_at_ms != nil {
		*m.addupdated_at_ms += i
	} else {
		m.addupdated_at_ms = &i
	}
}

// AddedUpdatedAtMs returns the value that was added to the "updated_at_ms" field in this mutation.
func (m *DigitalTaskMutation) AddedUpdatedAtMs() (r int64, exists bool) {
	v := m.addupdated_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpdatedAtMs resets all changes to the "updated_at_ms" field.
func (m *DigitalTaskMutation) ResetUpdatedAtMs() {
	m.updated_at_ms = nil
	m.addupdated_at_ms = nil
}

// SetCompletedAtMs sets the "completed_at_ms" field.
func (m *DigitalTaskMutation) SetCompletedAtMs(i int64) {
	m.completed_at_ms = &i
	m.addcompleted_at_ms = nil
}

// CompletedAtMs returns the value of the "completed_at_ms" field in the mutation.
func (m *DigitalTaskMutation) CompletedAtMs() (r int64, exists bool) {
	v := m.completed_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAtMs returns the old "completed_at_ms" field's value of the DigitalTask entity.
// If the DigitalTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigitalTaskMutation) OldCompletedAtMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAtMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAtMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAtMs: %w", err)
	}
	return oldValue.CompletedAtMs, nil
}

// AddCompletedAtMs adds i to the "completed_at_ms" field.
func (m *DigitalTaskMutation) AddCompletedAtMs(i int64) {
	if m.addcompleted_at_ms != nil {
		*m.addcompleted_at_ms += i
	} else {
		m.addcompleted_at_ms = &i
	}
}

// AddedCompletedAtMs returns the value that was added to the "completed_at_ms" field in this mutation.
func (m *DigitalTaskMutation) AddedCompletedAtMs() (r int64, exists bool) {
	v := m.addcompleted_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearCompletedAtMs clears the value of the "completed_at_ms" field.
func (m *DigitalTaskMutation) ClearCompletedAtMs() {
	m.completed_at_ms = nil
	m.addcompleted_at_ms = nil
	m.clearedFields[digitaltask.FieldCompletedAtMs] = struct{}{}
}

// CompletedAtMsCleared returns if the "completed_at_ms" field was cleared in this mutation.
func (m *DigitalTaskMutation) CompletedAtMsCleared() bool {
	_, ok := m.clearedFields[digitaltask.FieldCompletedAtMs]
	return ok
}

// ResetCompletedAtMs resets all changes to the "completed_at_ms" field.
func (m *DigitalTaskMutation) ResetCompletedAtMs() {
	m.completed_at_ms = nil
	m.addcompleted_at_ms = nil
	delete(m.clearedFields, digitaltask.FieldCompletedAtMs)
}

// Where appends a list predicates to the DigitalTaskMutation builder.
func (m *DigitalTaskMutation) Where(ps ...predicate.DigitalTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DigitalTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DigitalTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DigitalTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DigitalTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DigitalTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DigitalTask).
func (m *DigitalTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DigitalTaskMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.session_id != nil {
		fields = append(fields, digitaltask.FieldSessionID)
	}
	if m.device_id != nil {
		fields = append(fields, digitaltask.FieldDeviceID)
	}
	if m.goal != nil {
		fields = append(fields, digitaltask.FieldGoal)
	}
	if m.status != nil {
		fields = append(fields, digitaltask.FieldStatus)
	}
	if m.steps != nil {
		fields = append(fields, digitaltask.FieldSteps)
	}
	if m.result != nil {
		fields = append(fields, digitaltask.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, digitaltask.FieldErrorMessage)
	}
	if m.timeout_seconds != nil {
		fields = append(fields, digitaltask.FieldTimeoutSeconds)
	}
	if m.push_context != nil {
		fields = append(fields, digitaltask.FieldPushContext)
	}
	if m.created_at_ms != nil {
		fields = append(fields, digitaltask.FieldCreatedAtMs)
	}
	if m.updated_at_ms != nil {
		fields = append(fields, digitaltask.FieldUpdatedAtMs)
	}
	if m.completed_at_ms != nil {
		fields = append(fields, digitaltask.FieldCompletedAtMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DigitalTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case digitaltask.FieldSessionID:
		return m.SessionID()
	case digitaltask.FieldDeviceID:
		return m.DeviceID()
	case digitaltask.FieldGoal:
		return m.Goal()
	case digitaltask.FieldStatus:
		return m.Status()
	case digitaltask.FieldSteps:
		return m.Steps()
	case digitaltask.FieldResult:
		return m.Result()
	case digitaltask.FieldErrorMessage:
		return m.ErrorMessage()
	case digitaltask.FieldTimeoutSeconds:
		return m.TimeoutSeconds()
	case digitaltask.FieldPushContext:
		return m.PushContext()
	case digitaltask.FieldCreatedAtMs:
		return m.CreatedAtMs()
	case digitaltask.FieldUpdatedAtMs:
		return m.UpdatedAtMs()
	case digitaltask.FieldCompletedAtMs:
		return m.CompletedAtMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DigitalTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case digitaltask.FieldSessionID:
		return m.OldSessionID(ctx)
	case digitaltask.FieldDeviceID:
		return m.OldDeviceID(ctx)
	case digitaltask.FieldGoal:
		return m.OldGoal(ctx)
	case digitaltask.FieldStatus:
		return m.OldStatus(ctx)
	case digitaltask.FieldSteps:
		return m.OldSteps(ctx)
	case digitaltask.FieldResult:
		return m.OldResult(ctx)
	case digitaltask.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case digitaltask.FieldTimeoutSeconds:
		return m.OldTimeoutSeconds(ctx)
	case digitaltask.FieldPushContext:
		return m.OldPushContext(ctx)
	case digitaltask.FieldCreatedAtMs:
		return m.OldCreatedAtMs(ctx)
	case digitaltask.FieldUpdatedAtMs:
		return m.OldUpdatedAtMs(ctx)
	case digitaltask.FieldCompletedAtMs:
		return m.OldCompletedAtMs(ctx)
	}
	return nil, fmt.Errorf("unknown DigitalTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DigitalTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case digitaltask.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case digitaltask.FieldDeviceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceID(v)
		return nil
	case digitaltask.FieldGoal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoal(v)
		return nil
	case digitaltask.FieldStatus:
		v, ok := value.(digitaltask.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case digitaltask.FieldSteps:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSteps(v)
		return nil
	case digitaltask.FieldResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case digitaltask.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case digitaltask.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutSeconds(v)
		return nil
	case digitaltask.FieldPushContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPushContext(v)
		return nil
	case digitaltask.FieldCreatedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAtMs(v)
		return nil
	case digitaltask.FieldUpdatedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAtMs(v)
		return nil
	case digitaltask.FieldCompletedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAtMs(v)
		return nil
	}
	return fmt.Errorf("unknown DigitalTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DigitalTaskMutation) AddedFields() []string {
	var fields []string
	if m.addtimeout_seconds != nil {
		fields = append(fields, digitaltask.FieldTimeoutSeconds)
	}
	if m.addcreated_at_ms != nil {
		fields = append(fields, digitaltask.FieldCreatedAtMs)
	}
	if m.addupdated_at_ms != nil {
		fields = append(fields, digitaltask.FieldUpdatedAtMs)
	}
	if m.addcompleted_at_ms != nil {
		fields = append(fields, digitaltask.FieldCompletedAtMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DigitalTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case digitaltask.FieldTimeoutSeconds:
		return m.AddedTimeoutSeconds()
	case digitaltask.FieldCreatedAtMs:
		return m.AddedCreatedAtMs()
	case digitaltask.FieldUpdatedAtMs:
		return m.AddedUpdatedAtMs()
	case digitaltask.FieldCompletedAtMs:
		return m.AddedCompletedAtMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DigitalTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case digitaltask.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutSeconds(v)
		return nil
	case digitaltask.FieldCreatedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedAtMs(v)
		return nil
	case digitaltask.FieldUpdatedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpdatedAtMs(v)
		return nil
	case digitaltask.FieldCompletedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedAtMs(v)
		return nil
	}
	return fmt.Errorf("unknown DigitalTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DigitalTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(digitaltask.FieldDeviceID) {
		fields = append(fields, digitaltask.FieldDeviceID)
	}
	if m.FieldCleared(digitaltask.FieldSteps) {
		fields = append(fields, digitaltask.FieldSteps)
	}
	if m.FieldCleared(digitaltask.FieldResult) {
		fields = append(fields, digitaltask.FieldResult)
	}
	if m.FieldCleared(digitaltask.FieldErrorMessage) {
		fields = append(fields, digitaltask.FieldErrorMessage)
	}
	if m.FieldCleared(digitaltask.FieldPushContext) {
		fields = append(fields, digitaltask.FieldPushContext)
	}
	if m.FieldCleared(digitaltask.FieldCompletedAtMs) {
		fields = append(fields, digitaltask.FieldCompletedAtMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DigitalTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DigitalTaskMutation) ClearField(name string) error {
	switch name {
	case digitaltask.FieldDeviceID:
		m.ClearDeviceID()
		return nil
	case digitaltask.FieldSteps:
		m.ClearSteps()
		return nil
	case digitaltask.FieldResult:
		m.ClearResult()
		return nil
	case digitaltask.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case digitaltask.FieldPushContext:
		m.ClearPushContext()
		return nil
	case digitaltask.FieldCompletedAtMs:
		m.ClearCompletedAtMs()
		return nil
	}
	return fmt.Errorf("unknown DigitalTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DigitalTaskMutation) ResetField(name string) error {
	switch name {
	case digitaltask.FieldSessionID:
		m.ResetSessionID()
		return nil
	case digitaltask.FieldDeviceID:
		m.ResetDeviceID()
		return nil
	case digitaltask.FieldGoal:
		m.ResetGoal()
		return nil
	case digitaltask.FieldStatus:
		m.ResetStatus()
		return nil
	case digitaltask.FieldSteps:
		m.ResetSteps()
		return nil
	case digitaltask.FieldResult:
		m.ResetResult()
		return nil
	case digitaltask.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case digitaltask.FieldTimeoutSeconds:
		m.ResetTimeoutSeconds()
		return nil
	case digitaltask.FieldPushContext:
		m.ResetPushContext()
		return nil
	case digitaltask.FieldCreatedAtMs:
		m.ResetCreatedAtMs()
		return nil
	case digitaltask.FieldUpdatedAtMs:
		m.ResetUpdatedAtMs()
		return nil
	case digitaltask.FieldCompletedAtMs:
		m.ResetCompletedAtMs()
		return nil
	}
	return fmt.Errorf("unknown DigitalTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DigitalTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DigitalTaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DigitalTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DigitalTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DigitalTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DigitalTaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DigitalTaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DigitalTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DigitalTaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DigitalTask edge %s", name)
}

// LifelogContextMutation represents an operation that mutates the LifelogContext nodes in the graph.
type LifelogContextMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	image_id           *string
	session_id         *string
	semantic_title     *string
	semantic_summary   *string
	objects            *[]string
	appendobjects      []string
	ocr                *[]string
	appendocr          []string
	risk_hints         *[]string
	appendrisk_hints   []string
	actionable_summary *string
	risk_level         *string
	risk_score         *float64
	addrisk_score      *float64
	confidence         *float64
	addconfidence      *float64
	created_at_ms      *int64
	addcreated_at_ms   *int64
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*LifelogContext, error)
	predicates         []predicate.LifelogContext
}

var _ ent.Mutation = (*LifelogContextMutation)(nil)

// lifelogcontextOption allows management of the mutation configuration using functional options.
type lifelogcontextOption func(*LifelogContextMutation)

// newLifelogContextMutation creates new mutation for the LifelogContext entity.
func newLifelogContextMutation(c config, op Op, opts ...lifelogcontextOption) *LifelogContextMutation {
	m := &LifelogContextMutation{
		config:        c,
		op:            op,
		typ:           TypeLifelogContext,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLifelogContextID sets the ID field of the mutation.
func withLifelogContextID(id string) lifelogcontextOption {
	return func(m *LifelogContextMutation) {
		var (
			err   error
			once  sync.Once
			value *LifelogContext
		)
		m.oldValue = func(ctx context.Context) (*LifelogContext, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LifelogContext.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLifelogContext sets the old LifelogContext of the mutation.
func withLifelogContext(node *LifelogContext) lifelogcontextOption {
	return func(m *LifelogContextMutation) {
		m.oldValue = func(context.Context) (*LifelogContext, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LifelogContextMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LifelogContextMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LifelogContext entities.
func (m *LifelogContextMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LifelogContextMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LifelogContextMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LifelogContext.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetImageID sets the "image_id" field.
func (m *LifelogContextMutation) SetImageID(s string) {
	m.image_id = &s
}

// ImageID returns the value of the "image_id" field in the mutation.
func (m *LifelogContextMutation) ImageID() (r string, exists bool) {
	v := m.image_id
	if v == nil {
		return
	}
	return *v, true
}

// OldImageID returns the old "image_id" field's value of the LifelogContext entity.
// If the LifelogContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogContextMutation) OldImageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageID: %w", err)
	}
	return oldValue.ImageID, nil
}

// ResetImageID resets all changes to the "image_id" field.
func (m *LifelogContextMutation) ResetImageID() {
	m.image_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *LifelogContextMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *LifelogContextMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the LifelogContext entity.
// If the LifelogContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogContextMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *LifelogContextMutation) ResetSessionID() {
	m.session_id = nil
}

// SetSemanticTitle sets the "semantic_title" field.
func (m *LifelogContextMutation) SetSemanticTitle(s string) {
	m.semantic_title = &s
}

// SemanticTitle returns the value of the "semantic_title" field in the mutation.
func (m *LifelogContextMutation) SemanticTitle() (r string, exists bool) {
	v := m.semantic_title
	if v == nil {
		return
	}
	return *v, true
}

// OldSemanticTitle returns the old "semantic_title" field's value of the LifelogContext entity.
// If the LifelogContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogContextMutation) OldSemanticTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSemanticTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSemanticTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSemanticTitle: %w", err)
	}
	return oldValue.SemanticTitle, nil
}

// ClearSemanticTitle clears the value of the "semantic_title" field.
func (m *LifelogContextMutation) ClearSemanticTitle() {
	m.semantic_title = nil
	m.clearedFields[lifelogcontext.FieldSemanticTitle] = struct{}{}
}

// SemanticTitleCleared returns if the "semantic_title" field was cleared in this mutation.
func (m *LifelogContextMutation) SemanticTitleCleared() bool {
	_, ok := m.clearedFields[lifelogcontext.FieldSemanticTitle]
	return ok
}

// ResetSemanticTitle resets all changes to the "semantic_title" field.
func (m *LifelogContextMutation) ResetSemanticTitle() {
	m.semantic_title = nil
	delete(m.clearedFields, lifelogcontext.FieldSemanticTitle)
}

// SetSemanticSummary sets the "semantic_summary" field.
func (m *LifelogContextMutation) SetSemanticSummary(s string) {
	m.semantic_summary = &s
}

// SemanticSummary returns the value of the "semantic_summary" field in the mutation.
func (m *LifelogContextMutation) SemanticSummary() (r string, exists bool) {
	v := m.semantic_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSemanticSummary returns the old "semantic_summary" field's value of the LifelogContext entity.
// If the LifelogContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogContextMutation) OldSemanticSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSemanticSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSemanticSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSemanticSummary: %w", err)
	}
	return oldValue.SemanticSummary, nil
}

// ClearSemanticSummary clears the value of the "semantic_summary" field.
func (m *LifelogContextMutation) ClearSemanticSummary() {
	m.semantic_summary = nil
	m.clearedFields[lifelogcontext.FieldSemanticSummary] = struct{}{}
}

// SemanticSummaryCleared returns if the "semantic_summary" field was cleared in this mutation.
func (m *LifelogContextMutation) SemanticSummaryCleared() bool {
	_, ok := m.clearedFields[lifelogcontext.FieldSemanticSummary]
	return ok
}

// ResetSemanticSummary resets all changes to the "semantic_summary" field.
func (m *LifelogContextMutation) ResetSemanticSummary() {
	m.semantic_summary = nil
	delete(m.clearedFields, lifelogcontext.FieldSemanticSummary)
}

// SetObjects sets the "objects" field.
func (m *LifelogContextMutation) SetObjects(s []string) {
	m.objects = &s
	m.appendobjects = nil
}

// Objects returns the value of the "objects" field in the mutation.
func (m *LifelogContextMutation) Objects() (r []string, exists bool) {
	v := m.objects
	if v == nil {
		return
	}
	return *v, true
}

// OldObjects returns the old "objects" field's value of the LifelogContext entity.
// If the LifelogContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogContextMutation) OldObjects(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjects is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjects requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjects: %w", err)
	}
	return oldValue.Objects, nil
}

// AppendObjects adds s to the "objects" field.
func (m *LifelogContextMutation) AppendObjects(s []string) {
	m.appendobjects = append(m.appendobjects, s...)
}

// AppendedObjects returns the list of values that were appended to the "objects" field in this mutation.
func (m *LifelogContextMutation) AppendedObjects() ([]string, bool) {
	if len(m.appendobjects) == 0 {
		return nil, false
	}
	return m.appendobjects, true
}

// ClearObjects clears the value of the "objects" field.
func (m *LifelogContextMutation) ClearObjects() {
	m.objects = nil
	m.appendobjects = nil
	m.clearedFields[lifelogcontext.FieldObjects] = struct{}{}
}

// ObjectsCleared returns if the "objects" field was cleared in this mutation.
func (m *LifelogContextMutation) ObjectsCleared() bool {
	_, ok := m.clearedFields[lifelogcontext.FieldObjects]
	return ok
}

// ResetObjects resets all changes to the "objects" field.
func (m *LifelogContextMutation) ResetObjects() {
	m.objects = nil
	m.appendobjects = nil
	delete(m.clearedFields, lifelogcontext.FieldObjects)
}

// SetOcr sets the "ocr" field.
func (m *LifelogContextMutation) SetOcr(s []string) {
	m.ocr = &s
	m.appendocr = nil
}

// Ocr returns the value of the "ocr" field in the mutation.
func (m *LifelogContextMutation) Ocr() (r []string, exists bool) {
	v := m.ocr
	if v == nil {
		return
	}
	return *v, true
}

// OldOcr returns the old "ocr" field's value of the LifelogContext entity.
// If the LifelogContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogContextMutation) OldOcr(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcr: %w", err)
	}
	return oldValue.Ocr, nil
}

// AppendOcr adds s to the "ocr" field.
func (m *LifelogContextMutation) AppendOcr(s []string) {
	m.appendocr = append(m.appendocr, s...)
}

// AppendedOcr returns the list of values that were appended to the "ocr" field in this mutation.
func (m *LifelogContextMutation) AppendedOcr() ([]string, bool) {
	if len(m.appendocr) == 0 {
		return nil, false
	}
	return m.appendocr, true
}

// ClearOcr clears the value of the "ocr" field.
func (m *LifelogContextMutation) ClearOcr() {
	m.ocr = nil
	m.appendocr = nil
	m.clearedFields[lifelogcontext.FieldOcr] = struct{}{}
}

// OcrCleared returns if the "ocr" field was cleared in this mutation.
func (m *LifelogContextMutation) OcrCleared() bool {
	_, ok := m.clearedFields[lifelogcontext.FieldOcr]
	return ok
}

// ResetOcr resets all changes to the "ocr" field.
func (m *LifelogContextMutation) ResetOcr() {
	m.ocr = nil
	m.appendocr = nil
	delete(m.clearedFields, lifelogcontext.FieldOcr)
}

// SetRiskHints sets the "risk_hints" field.
func (m *LifelogContextMutation) SetRiskHints(s []string) {
	m.risk_hints = &s
	m.appendrisk_hints = nil
}

// RiskHints returns the value of the "risk_hints" field in the mutation.
func (m *LifelogContextMutation) RiskHints() (r []string, exists bool) {
	v := m.risk_hints
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskHints returns the old "risk_hints" field's value of the LifelogContext entity.
// If the LifelogContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogContextMutation) OldRiskHints(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskHints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskHints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskHints: %w", err)
	}
	return oldValue.RiskHints, nil
}

// AppendRiskHints adds s to the "risk_hints" field.
func (m *LifelogContextMutation) AppendRiskHints(s []string) {
	m.appendrisk_hints = append(m.appendrisk_hints, s...)
}

// AppendedRiskHints returns the list of values that were appended to the "risk_hints" field in this mutation.
func (m *LifelogContextMutation) AppendedRiskHints() ([]string, bool) {
	if len(m.appendrisk_hints) == 0 {
		return nil, false
	}
	return m.appendrisk_hints, true
}

// ClearRiskHints clears the value of the "risk_hints" field.
func (m *LifelogContextMutation) ClearRiskHints() {
	m.risk_hints = nil
	m.appendrisk_hints = nil
	m.clearedFields[lifelogcontext.FieldRiskHints] = struct{}{}
}

// RiskHintsCleared returns if the "risk_hints" field was cleared in this mutation.
func (m *LifelogContextMutation) RiskHintsCleared() bool {
	_, ok := m.clearedFields[lifelogcontext.FieldRiskHints]
	return ok
}

// ResetRiskHints resets all changes to the "risk_hints" field.
func (m *LifelogContextMutation) ResetRiskHints() {
	m.risk_hints = nil
	m.appendrisk_hints = nil
	delete(m.clearedFields, lifelogcontext.FieldRiskHints)
}

// SetActionableSummary sets the "actionable_summary" field.
func (m *LifelogContextMutation) SetActionableSummary(s string) {
	m.actionable_summary = &s
}

// ActionableSummary returns the value of the "actionable_summary" field in the mutation.
func (m *LifelogContextMutation) ActionableSummary() (r string, exists bool) {
	v := m.actionable_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldActionableSummary returns the old "actionable_summary" field's value of the LifelogContext entity.
// If the LifelogContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogContextMutation) OldActionableSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionableSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionableSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionableSummary: %w", err)
	}
	return oldValue.ActionableSummary, nil
}

// ClearActionableSummary clears the value of the "actionable_summary" field.
func (m *LifelogContextMutation) ClearActionableSummary() {
	m.actionable_summary = nil
	m.clearedFields[lifelogcontext.FieldActionableSummary] = struct{}{}
}

// ActionableSummaryCleared returns if the "actionable_summary" field was cleared in this mutation.
func (m *LifelogContextMutation) ActionableSummaryCleared() bool {
	_, ok := m.clearedFields[lifelogcontext.FieldActionableSummary]
	return ok
}

// ResetActionableSummary resets all changes to the "actionable_summary" field.
func (m *LifelogContextMutation) ResetActionableSummary() {
	m.actionable_summary = nil
	delete(m.clearedFields, lifelogcontext.FieldActionableSummary)
}

// SetRiskLevel sets the "risk_level" field.
func (m *LifelogContextMutation) SetRiskLevel(s string) {
	m.risk_level = &s
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *LifelogContextMutation) RiskLevel() (r string, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the LifelogContext entity.
// If the LifelogContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogContextMutation) OldRiskLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *LifelogContextMutation) ResetRiskLevel() {
	m.risk_level = nil
}

// SetRiskScore sets the "risk_score" field.
func (m *LifelogContextMutation) SetRiskScore(f float64) {
	m.risk_score = &f
	m.addrisk_score = nil
}

// RiskScore returns the value of the "risk_score" field in the mutation.
func (m *LifelogContextMutation) RiskScore() (r float64, exists bool) {
	v := m.risk_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskScore returns the old "risk_score" field's value of the LifelogContext entity.
// If the LifelogContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogContextMutation) OldRiskScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskScore: %w", err)
	}
	return oldValue.RiskScore, nil
}

// AddRiskScore adds f to the "risk_score" field.
func (m *LifelogContextMutation) AddRiskScore(f float64) {
	if m.addrisk_score != nil {
		*m.addrisk_score += f
	} else {
		m.addrisk_score = &f
	}
}

// AddedRiskScore returns the value that was added to the "risk_score" field in this mutation.
func (m *LifelogContextMutation) AddedRiskScore() (r float64, exists bool) {
	v := m.addrisk_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRiskScore resets all changes to the "risk_score" field.
func (m *LifelogContextMutation) ResetRiskScore() {
	m.risk_score = nil
	m.addrisk_score = nil
}

// SetConfidence sets the "confidence" field.
func (m *LifelogContextMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *LifelogContextMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the LifelogContext entity.
// If the LifelogContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogContextMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *LifelogContextMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *LifelogContextMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *LifelogContextMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (m *LifelogContextMutation) SetCreatedAtMs(i int64) {
	m.created_at_ms = &i
	m.addcreated_at_ms = nil
}

// CreatedAtMs returns the value of the "created_at_ms" field in the mutation.
func (m *LifelogContextMutation) CreatedAtMs() (r int64, exists bool) {
	v := m.created_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAtMs returns the old "created_at_ms" field's value of the LifelogContext entity.
// If the LifelogContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogContextMutation) OldCreatedAtMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAtMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAtMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAtMs: %w", err)
	}
	return oldValue.CreatedAtMs, nil
}

// AddCreatedAtMs adds i to the "created_at_ms" field.
func (m *LifelogContextMutation) AddCreatedAtMs(i int64) {
	if m.addcreated_at_ms != nil {
		*m.addcreated_at_ms += i
	} else {
		m.addcreated_at_ms = &i
	}
}

// AddedCreatedAtMs returns the value that was added to the "created_at_ms" field in this mutation.
func (m *LifelogContextMutation) AddedCreatedAtMs() (r int64, exists bool) {
	v := m.addcreated_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedAtMs resets all changes to the "created_at_ms" field.
func (m *LifelogContextMutation) ResetCreatedAtMs() {
	m.created_at_ms = nil
	m.addcreated_at_ms = nil
}

// Where appends a list predicates to the LifelogContextMutation builder.
func (m *LifelogContextMutation) Where(ps ...predicate.LifelogContext) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LifelogContextMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LifelogContextMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LifelogContext, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LifelogContextMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LifelogContextMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LifelogContext).
func (m *LifelogContextMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LifelogContextMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.image_id != nil {
		fields = append(fields, lifelogcontext.FieldImageID)
	}
	if m.session_id != nil {
		fields = append(fields, lifelogcontext.FieldSessionID)
	}
	if m.semantic_title != nil {
		fields = append(fields, lifelogcontext.FieldSemanticTitle)
	}
	if m.semantic_summary != nil {
		fields = append(fields, lifelogcontext.FieldSemanticSummary)
	}
	if m.objects != nil {
		fields = append(fields, lifelogcontext.FieldObjects)
	}
	if m.ocr != nil {
		fields = append(fields, lifelogcontext.FieldOcr)
	}
	if m.risk_hints != nil {
		fields = append(fields, lifelogcontext.FieldRiskHints)
	}
	if m.actionable_summary != nil {
		fields = append(fields, lifelogcontext.FieldActionableSummary)
	}
	if m.risk_level != nil {
		fields = append(fields, lifelogcontext.FieldRiskLevel)
	}
	if m.risk_score != nil {
		fields = append(fields, lifelogcontext.FieldRiskScore)
	}
	if m.confidence != nil {
		fields = append(fields, lifelogcontext.FieldConfidence)
	}
	if m.created_at_ms != nil {
		fields = append(fields, lifelogcontext.FieldCreatedAtMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LifelogContextMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lifelogcontext.FieldImageID:
		return m.ImageID()
	case lifelogcontext.FieldSessionID:
		return m.SessionID()
	case lifelogcontext.FieldSemanticTitle:
		return m.SemanticTitle()
	case lifelogcontext.FieldSemanticSummary:
		return m.SemanticSummary()
	case lifelogcontext.FieldObjects:
		return m.Objects()
	case lifelogcontext.FieldOcr:
		return m.Ocr()
	case lifelogcontext.FieldRiskHints:
		return m.RiskHints()
	case lifelogcontext.FieldActionableSummary:
		return m.ActionableSummary()
	case lifelogcontext.FieldRiskLevel:
		return m.RiskLevel()
	case lifelogcontext.FieldRiskScore:
		return m.RiskScore()
	case lifelogcontext.FieldConfidence:
		return m.Confidence()
	case lifelogcontext.FieldCreatedAtMs:
		return m.CreatedAtMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LifelogContextMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lifelogcontext.FieldImageID:
		return m.OldImageID(ctx)
	case lifelogcontext.FieldSessionID:
		return m.OldSessionID(ctx)
	case lifelogcontext.FieldSemanticTitle:
		return m.OldSemanticTitle(ctx)
	case lifelogcontext.FieldSemanticSummary:
		return m.OldSemanticSummary(ctx)
	case lifelogcontext.FieldObjects:
		return m.OldObjects(ctx)
	case lifelogcontext.FieldOcr:
		return m.OldOcr(ctx)
	case lifelogcontext.FieldRiskHints:
		return m.OldRiskHints(ctx)
	case lifelogcontext.FieldActionableSummary:
		return m.OldActionableSummary(ctx)
	case lifelogcontext.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case lifelogcontext.FieldRiskScore:
		return m.OldRiskScore(ctx)
	case lifelogcontext.FieldConfidence:
		return m.OldConfidence(ctx)
	case lifelogcontext.FieldCreatedAtMs:
		return m.OldCreatedAtMs(ctx)
	}
	return nil, fmt.Errorf("unknown LifelogContext field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LifelogContextMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lifelogcontext.FieldImageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageID(v)
		return nil
	case lifelogcontext.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case lifelogcontext.FieldSemanticTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSemanticTitle(v)
		return nil
	case lifelogcontext.FieldSemanticSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSemanticSummary(v)
		return nil
	case lifelogcontext.FieldObjects:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjects(v)
		return nil
	case lifelogcontext.FieldOcr:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcr(v)
		return nil
	case lifelogcontext.FieldRiskHints:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskHints(v)
		return nil
	case lifelogcontext.FieldActionableSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionableSummary(v)
		return nil
	case lifelogcontext.FieldRiskLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case lifelogcontext.FieldRiskScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskScore(v)
		return nil
	case lifelogcontext.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case lifelogcontext.FieldCreatedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAtMs(v)
		return nil
	}
	return fmt.Errorf("unknown LifelogContext field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LifelogContextMutation) AddedFields() []string {
	var fields []string
	if m.addrisk_score != nil {
		fields = append(fields, lifelogcontext.FieldRiskScore)
	}
	if m.addconfidence != nil {
		fields = append(fields, lifelogcontext.FieldConfidence)
	}
	if m.addcreated_at_ms != nil {
		fields = append(fields, lifelogcontext.FieldCreatedAtMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LifelogContextMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lifelogcontext.FieldRiskScore:
		return m.AddedRiskScore()
	case lifelogcontext.FieldConfidence:
		return m.AddedConfidence()
	case lifelogcontext.FieldCreatedAtMs:
		return m.AddedCreatedAtMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LifelogContextMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lifelogcontext.FieldRiskScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRiskScore(v)
		return nil
	case lifelogcontext.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case lifelogcontext.FieldCreatedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedAtMs(v)
		return nil
	}
	return fmt.Errorf("unknown LifelogContext numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LifelogContextMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lifelogcontext.FieldSemanticTitle) {
		fields = append(fields, lifelogcontext.FieldSemanticTitle)
	}
	if m.FieldCleared(lifelogcontext.FieldSemanticSummary) {
		fields = append(fields, lifelogcontext.FieldSemanticSummary)
	}
	if m.FieldCleared(lifelogcontext.FieldObjects) {
		fields = append(fields, lifelogcontext.FieldObjects)
	}
	if m.FieldCleared(lifelogcontext.FieldOcr) {
		fields = append(fields, lifelogcontext.FieldOcr)
	}
	if m.FieldCleared(lifelogcontext.FieldRiskHints) {
		fields = append(fields, lifelogcontext.FieldRiskHints)
	}
	if m.FieldCleared(lifelogcontext.FieldActionableSummary) {
		fields = append(fields, lifelogcontext.FieldActionableSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LifelogContextMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LifelogContextMutation) ClearField(name string) error {
	switch name {
	case lifelogcontext.FieldSemanticTitle:
		m.ClearSemanticTitle()
		return nil
	case lifelogcontext.FieldSemanticSummary:
		m.ClearSemanticSummary()
		return nil
	case lifelogcontext.FieldObjects:
		m.ClearObjects()
		return nil
	case lifelogcontext.FieldOcr:
		m.ClearOcr()
		return nil
	case lifelogcontext.FieldRiskHints:
		m.ClearRiskHints()
		return nil
	case lifelogcontext.FieldActionableSummary:
		m.ClearActionableSummary()
		return nil
	}
	return fmt.Errorf("unknown LifelogContext nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LifelogContextMutation) ResetField(name string) error {
	switch name {
	case lifelogcontext.FieldImageID:
		m.ResetImageID()
		return nil
	case lifelogcontext.FieldSessionID:
		m.ResetSessionID()
		return nil
	case lifelogcontext.FieldSemanticTitle:
		m.ResetSemanticTitle()
		return nil
	case lifelogcontext.FieldSemanticSummary:
		m.ResetSemanticSummary()
		return nil
	case lifelogcontext.FieldObjects:
		m.ResetObjects()
		return nil
	case lifelogcontext.FieldOcr:
		m.ResetOcr()
		return nil
	case lifelogcontext.FieldRiskHints:
		m.ResetRiskHints()
		return nil
	case lifelogcontext.FieldActionableSummary:
		m.ResetActionableSummary()
		return nil
	case lifelogcontext.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case lifelogcontext.FieldRiskScore:
		m.ResetRiskScore()
		return nil
	case lifelogcontext.FieldConfidence:
		m.ResetConfidence()
		return nil
	case lifelogcontext.FieldCreatedAtMs:
		m.ResetCreatedAtMs()
		return nil
	}
	return fmt.Errorf("unknown LifelogContext field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LifelogContextMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LifelogContextMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LifelogContextMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LifelogContextMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LifelogContextMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LifelogContextMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LifelogContextMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LifelogContext unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LifelogContextMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LifelogContext edge %s", name)
}

// LifelogEventMutation represents an operation that mutates the LifelogEvent nodes in the graph.
type LifelogEventMutation struct {
	config
	op               Op
	typ              string
	id               *string
	session_id       *string
	device_id        *string
	event_type       *string
	payload          *map[string]interface{}
	text             *string
	risk_level       *string
	confidence       *float64
	addconfidence    *float64
	ts_ms            *int64
	addts_ms         *int64
	created_at_ms    *int64
	addcreated_at_ms *int64
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LifelogEvent, error)
	predicates       []predicate.LifelogEvent
}

var _ ent.Mutation = (*LifelogEventMutation)(nil)

// lifelogeventOption allows management of the mutation configuration using functional options.
type lifelogeventOption func(*LifelogEventMutation)

// newLifelogEventMutation creates new mutation for the LifelogEvent entity.
func newLifelogEventMutation(c config, op Op, opts ...lifelogeventOption) *LifelogEventMutation {
	m := &LifelogEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLifelogEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLifelogEventID sets the ID field of the mutation.
func withLifelogEventID(id string) lifelogeventOption {
	return func(m *LifelogEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LifelogEvent
		)
		m.oldValue = func(ctx context.Context) (*LifelogEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LifelogEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLifelogEvent sets the old LifelogEvent of the mutation.
func withLifelogEvent(node *LifelogEvent) lifelogeventOption {
	return func(m *LifelogEventMutation) {
		m.oldValue = func(context.Context) (*LifelogEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LifelogEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LifelogEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LifelogEvent entities.
func (m *LifelogEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LifelogEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LifelogEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LifelogEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *LifelogEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *LifelogEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the LifelogEvent entity.
// If the LifelogEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *LifelogEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetDeviceID sets the "device_id" field.
func (m *LifelogEventMutation) SetDeviceID(s string) {
	m.device_id = &s
}

// DeviceID returns the value of the "device_id" field in the mutation.
func (m *LifelogEventMutation) DeviceID() (r string, exists bool) {
	v := m.device_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceID returns the old "device_id" field's value of the LifelogEvent entity.
// If the LifelogEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogEventMutation) OldDeviceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceID: %w", err)
	}
	return oldValue.DeviceID, nil
}

// ClearDeviceID clears the value of the "device_id" field.
func (m *LifelogEventMutation) ClearDeviceID() {
	m.device_id = nil
	m.clearedFields[lifelogevent.FieldDeviceID] = struct{}{}
}

// DeviceIDCleared returns if the "device_id" field was cleared in this mutation.
func (m *LifelogEventMutation) DeviceIDCleared() bool {
	_, ok := m.clearedFields[lifelogevent.FieldDeviceID]
	return ok
}

// ResetDeviceID resets all changes to the "device_id" field.
func (m *LifelogEventMutation) ResetDeviceID() {
	m.device_id = nil
	delete(m.clearedFields, lifelogevent.FieldDeviceID)
}

// SetEventType sets the "event_type" field.
func (m *LifelogEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *LifelogEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the LifelogEvent entity.
// If the LifelogEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *LifelogEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *LifelogEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *LifelogEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the LifelogEvent entity.
// If the LifelogEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *LifelogEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[lifelogevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *LifelogEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[lifelogevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *LifelogEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, lifelogevent.FieldPayload)
}

// SetText sets the "text" field.
func (m *LifelogEventMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *LifelogEventMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the LifelogEvent entity.
// If the LifelogEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogEventMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ClearText clears the value of the "text" field.
func (m *LifelogEventMutation) ClearText() {
	m.text = nil
	m.clearedFields[lifelogevent.FieldText] = struct{}{}
}

// TextCleared returns if the "text" field was cleared in this mutation.
func (m *LifelogEventMutation) TextCleared() bool {
	_, ok := m.clearedFields[lifelogevent.FieldText]
	return ok
}

// ResetText resets all changes to the "text" field.
func (m *LifelogEventMutation) ResetText() {
	m.text = nil
	delete(m.clearedFields, lifelogevent.FieldText)
}

// SetRiskLevel sets the "risk_level" field.
func (m *LifelogEventMutation) SetRiskLevel(s string) {
	m.risk_level = &s
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *LifelogEventMutation) RiskLevel() (r string, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the LifelogEvent entity.
// If the LifelogEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogEventMutation) OldRiskLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ClearRiskLevel clears the value of the "risk_level" field.
func (m *LifelogEventMutation) ClearRiskLevel() {
	m.risk_level = nil
	m.clearedFields[lifelogevent.FieldRiskLevel] = struct{}{}
}

// RiskLevelCleared returns if the "risk_level" field was cleared in this mutation.
func (m *LifelogEventMutation) RiskLevelCleared() bool {
	_, ok := m.clearedFields[lifelogevent.FieldRiskLevel]
	return ok
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *LifelogEventMutation) ResetRiskLevel() {
	m.risk_level = nil
	delete(m.clearedFields, lifelogevent.FieldRiskLevel)
}

// SetConfidence sets the "confidence" field.
func (m *LifelogEventMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *LifelogEventMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the LifelogEvent entity.
// If the LifelogEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogEventMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *LifelogEventMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *LifelogEventMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *LifelogEventMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetTsMs sets the "ts_ms" field.
func (m *LifelogEventMutation) SetTsMs(i int64) {
	m.ts_ms = &i
	m.addts_ms = nil
}

// TsMs returns the value of the "ts_ms" field in the mutation.
func (m *LifelogEventMutation) TsMs() (r int64, exists bool) {
	v := m.ts_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTsMs returns the old "ts_ms" field's value of the LifelogEvent entity.
// If the LifelogEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogEventMutation) OldTsMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTsMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTsMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTsMs: %w", err)
	}
	return oldValue.TsMs, nil
}

// AddTsMs adds i to the "ts_ms" field.
func (m *LifelogEventMutation) AddTsMs(i int64) {
	if m.addts_ms != nil {
		*m.addts_ms += i
	} else {
		m.addts_ms = &i
	}
}

// AddedTsMs returns the value that was added to the "ts_ms" field in this mutation.
func (m *LifelogEventMutation) AddedTsMs() (r int64, exists bool) {
	v := m.addts_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTsMs resets all changes to the "ts_ms" field.
func (m *LifelogEventMutation) ResetTsMs() {
	m.ts_ms = nil
	m.addts_ms = nil
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (m *LifelogEventMutation) SetCreatedAtMs(i int64) {
	m.created_at_ms = &i
	m.addcreated_at_ms = nil
}

// CreatedAtMs returns the value of the "created_at_ms" field in the mutation.
func (m *LifelogEventMutation) CreatedAtMs() (r int64, exists bool) {
	v := m.created_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAtMs returns the old "created_at_ms" field's value of the LifelogEvent entity.
// If the LifelogEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogEventMutation) OldCreatedAtMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAtMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAtMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAtMs: %w", err)
	}
	return oldValue.CreatedAtMs, nil
}

// AddCreatedAtMs adds i to the "created_at_ms" field.
func (m *LifelogEventMutation) AddCreatedAtMs(i int64) {
	if m.addcreated_at_ms != nil {
		*m.addcreated_at_ms += i
	} else {
		m.addcreated_at_ms = &i
	}
}

// AddedCreatedAtMs returns the value that was added to the "created_at_ms" field in this mutation.
func (m *LifelogEventMutation) AddedCreatedAtMs() (r int64, exists bool) {
	v := m.addcreated_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedAtMs resets all changes to the "created_at_ms" field.
func (m *LifelogEventMutation) ResetCreatedAtMs() {
	m.created_at_ms = nil
	m.addcreated_at_ms = nil
}

// Where appends a list predicates to the LifelogEventMutation builder.
func (m *LifelogEventMutation) Where(ps ...predicate.LifelogEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LifelogEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LifelogEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LifelogEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LifelogEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LifelogEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LifelogEvent).
func (m *LifelogEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LifelogEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.session_id != nil {
		fields = append(fields, lifelogevent.FieldSessionID)
	}
	if m.device_id != nil {
		fields = append(fields, lifelogevent.FieldDeviceID)
	}
	if m.event_type != nil {
		fields = append(fields, lifelogevent.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, lifelogevent.FieldPayload)
	}
	if m.text != nil {
		fields = append(fields, lifelogevent.FieldText)
	}
	if m.risk_level != nil {
		fields = append(fields, lifelogevent.FieldRiskLevel)
	}
	if m.confidence != nil {
		fields = append(fields, lifelogevent.FieldConfidence)
	}
	if m.ts_ms != nil {
		fields = append(fields, lifelogevent.FieldTsMs)
	}
	if m.created_at_ms != nil {
		fields = append(fields, lifelogevent.FieldCreatedAtMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LifelogEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lifelogevent.FieldSessionID:
		return m.SessionID()
	case lifelogevent.FieldDeviceID:
		return m.DeviceID()
	case lifelogevent.FieldEventType:
		return m.EventType()
	case lifelogevent.FieldPayload:
		return m.Payload()
	case lifelogevent.FieldText:
		return m.Text()
	case lifelogevent.FieldRiskLevel:
		return m.RiskLevel()
	case lifelogevent.FieldConfidence:
		return m.Confidence()
	case lifelogevent.FieldTsMs:
		return m.TsMs()
	case lifelogevent.FieldCreatedAtMs:
		return m.CreatedAtMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LifelogEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lifelogevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case lifelogevent.FieldDeviceID:
		return m.OldDeviceID(ctx)
	case lifelogevent.FieldEventType:
		return m.OldEventType(ctx)
	case lifelogevent.FieldPayload:
		return m.OldPayload(ctx)
	case lifelogevent.FieldText:
		return m.OldText(ctx)
	case lifelogevent.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case lifelogevent.FieldConfidence:
		return m.OldConfidence(ctx)
	case lifelogevent.FieldTsMs:
		return m.OldTsMs(ctx)
	case lifelogevent.FieldCreatedAtMs:
		return m.OldCreatedAtMs(ctx)
	}
	return nil, fmt.Errorf("unknown LifelogEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LifelogEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lifelogevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case lifelogevent.FieldDeviceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceID(v)
		return nil
	case lifelogevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case lifelogevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case lifelogevent.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case lifelogevent.FieldRiskLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case lifelogevent.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case lifelogevent.FieldTsMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTsMs(v)
		return nil
	case lifelogevent.FieldCreatedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAtMs(v)
		return nil
	}
	return fmt.Errorf("unknown LifelogEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LifelogEventMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, lifelogevent.FieldConfidence)
	}
	if m.addts_ms != nil {
		fields = append(fields, lifelogevent.FieldTsMs)
	}
	if m.addcreated_at_ms != nil {
		fields = append(fields, lifelogevent.FieldCreatedAtMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LifelogEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lifelogevent.FieldConfidence:
		return m.AddedConfidence()
	case lifelogevent.FieldTsMs:
		return m.AddedTsMs()
	case lifelogevent.FieldCreatedAtMs:
		return m.AddedCreatedAtMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LifelogEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lifelogevent.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case lifelogevent.FieldTsMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTsMs(v)
		return nil
	case lifelogevent.FieldCreatedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedAtMs(v)
		return nil
	}
	return fmt.Errorf("unknown LifelogEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LifelogEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lifelogevent.FieldDeviceID) {
		fields = append(fields, lifelogevent.FieldDeviceID)
	}
	if m.FieldCleared(lifelogevent.FieldPayload) {
		fields = append(fields, lifelogevent.FieldPayload)
	}
	if m.FieldCleared(lifelogevent.FieldText) {
		fields = append(fields, lifelogevent.FieldText)
	}
	if m.FieldCleared(lifelogevent.FieldRiskLevel) {
		fields = append(fields, lifelogevent.FieldRiskLevel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LifelogEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LifelogEventMutation) ClearField(name string) error {
	switch name {
	case lifelogevent.FieldDeviceID:
		m.ClearDeviceID()
		return nil
	case lifelogevent.FieldPayload:
		m.ClearPayload()
		return nil
	case lifelogevent.FieldText:
		m.ClearText()
		return nil
	case lifelogevent.FieldRiskLevel:
		m.ClearRiskLevel()
		return nil
	}
	return fmt.Errorf("unknown LifelogEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LifelogEventMutation) ResetField(name string) error {
	switch name {
	case lifelogevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case lifelogevent.FieldDeviceID:
		m.ResetDeviceID()
		return nil
	case lifelogevent.FieldEventType:
		m.ResetEventType()
		return nil
	case lifelogevent.FieldPayload:
		m.ResetPayload()
		return nil
	case lifelogevent.FieldText:
		m.ResetText()
		return nil
	case lifelogevent.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case lifelogevent.FieldConfidence:
		m.ResetConfidence()
		return nil
	case lifelogevent.FieldTsMs:
		m.ResetTsMs()
		return nil
	case lifelogevent.FieldCreatedAtMs:
		m.ResetCreatedAtMs()
		return nil
	}
	return fmt.Errorf("unknown LifelogEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LifelogEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LifelogEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LifelogEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LifelogEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LifelogEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LifelogEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LifelogEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LifelogEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LifelogEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LifelogEvent edge %s", name)
}

// LifelogImageMutation represents an operation that mutates the LifelogImage nodes in the graph.
type LifelogImageMutation struct {
	config
	op               Op
	typ              string
	id               *string
	session_id       *string
	device_id        *string
	image_uri        *string
	dhash            *string
	is_dedup         *bool
	content_type     *string
	size_bytes       *int
	addsize_bytes    *int
	ts_ms            *int64
	addts_ms         *int64
	created_at_ms    *int64
	addcreated_at_ms *int64
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LifelogImage, error)
	predicates       []predicate.LifelogImage
}

var _ ent.Mutation = (*LifelogImageMutation)(nil)

// lifelogimageOption allows management of the mutation configuration using functional options.
type lifelogimageOption func(*LifelogImageMutation)

// newLifelogImageMutation creates new mutation for the LifelogImage entity.
func newLifelogImageMutation(c config, op Op, opts ...lifelogimageOption) *LifelogImageMutation {
	m := &LifelogImageMutation{
		config:        c,
		op:            op,
		typ:           TypeLifelogImage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLifelogImageID sets the ID field of the mutation.
func withLifelogImageID(id string) lifelogimageOption {
	return func(m *LifelogImageMutation) {
		var (
			err   error
			once  sync.Once
			value *LifelogImage
		)
		m.oldValue = func(ctx context.Context) (*LifelogImage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LifelogImage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLifelogImage sets the old LifelogImage of the mutation.
func withLifelogImage(node *LifelogImage) lifelogimageOption {
	return func(m *LifelogImageMutation) {
		m.oldValue = func(context.Context) (*LifelogImage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LifelogImageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LifelogImageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LifelogImage entities.
func (m *LifelogImageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LifelogImageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LifelogImageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LifelogImage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *LifelogImageMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *LifelogImageMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the LifelogImage entity.
// If the LifelogImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogImageMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *LifelogImageMutation) ResetSessionID() {
	m.session_id = nil
}

// SetDeviceID sets the "device_id" field.
func (m *LifelogImageMutation) SetDeviceID(s string) {
	m.device_id = &s
}

// DeviceID returns the value of the "device_id" field in the mutation.
func (m *LifelogImageMutation) DeviceID() (r string, exists bool) {
	v := m.device_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceID returns the old "device_id" field's value of the LifelogImage entity.
// If the LifelogImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogImageMutation) OldDeviceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceID: %w", err)
	}
	return oldValue.DeviceID, nil
}

// ClearDeviceID clears the value of the "device_id" field.
func (m *LifelogImageMutation) ClearDeviceID() {
	m.device_id = nil
	m.clearedFields[lifelogimage.FieldDeviceID] = struct{}{}
}

// DeviceIDCleared returns if the "device_id" field was cleared in this mutation.
func (m *LifelogImageMutation) DeviceIDCleared() bool {
	_, ok := m.clearedFields[lifelogimage.FieldDeviceID]
	return ok
}

// ResetDeviceID resets all changes to the "device_id" field.
func (m *LifelogImageMutation) ResetDeviceID() {
	m.device_id = nil
	delete(m.clearedFields, lifelogimage.FieldDeviceID)
}

// SetImageURI sets the "image_uri" field.
func (m *LifelogImageMutation) SetImageURI(s string) {
	m.image_uri = &s
}

// ImageURI returns the value of the "image_uri" field in the mutation.
func (m *LifelogImageMutation) ImageURI() (r string, exists bool) {
	v := m.image_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldImageURI returns the old "image_uri" field's value of the LifelogImage entity.
// If the LifelogImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogImageMutation) OldImageURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageURI: %w", err)
	}
	return oldValue.ImageURI, nil
}

// ResetImageURI resets all changes to the "image_uri" field.
func (m *LifelogImageMutation) ResetImageURI() {
	m.image_uri = nil
}

// SetDhash sets the "dhash" field.
func (m *LifelogImageMutation) SetDhash(s string) {
	m.dhash = &s
}

// Dhash returns the value of the "dhash" field in the mutation.
func (m *LifelogImageMutation) Dhash() (r string, exists bool) {
	v := m.dhash
	if v == nil {
		return
	}
	return *v, true
}

// OldDhash returns the old "dhash" field's value of the LifelogImage entity.
// If the LifelogImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogImageMutation) OldDhash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDhash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDhash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDhash: %w", err)
	}
	return oldValue.Dhash, nil
}

// ResetDhash resets all changes to the "dhash" field.
func (m *LifelogImageMutation) ResetDhash() {
	m.dhash = nil
}

// SetIsDedup sets the "is_dedup" field.
func (m *LifelogImageMutation) SetIsDedup(b bool) {
	m.is_dedup = &b
}

// IsDedup returns the value of the "is_dedup" field in the mutation.
func (m *LifelogImageMutation) IsDedup() (r bool, exists bool) {
	v := m.is_dedup
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDedup returns the old "is_dedup" field's value of the LifelogImage entity.
// If the LifelogImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogImageMutation) OldIsDedup(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDedup is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDedup requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDedup: %w", err)
	}
	return oldValue.IsDedup, nil
}

// ResetIsDedup resets all changes to the "is_dedup" field.
func (m *LifelogImageMutation) ResetIsDedup() {
	m.is_dedup = nil
}

// SetContentType sets the "content_type" field.
func (m *LifelogImageMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *LifelogImageMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the LifelogImage entity.
// If the LifelogImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogImageMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *LifelogImageMutation) ResetContentType() {
	m.content_type = nil
}

// SetSizeBytes sets the "size_bytes" field.
func (m *LifelogImageMutation) SetSizeBytes(i int) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *LifelogImageMutation) SizeBytes() (r int, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the LifelogImage entity.
// If the LifelogImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogImageMutation) OldSizeBytes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *LifelogImageMutation) AddSizeBytes(i int) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *LifelogImageMutation) AddedSizeBytes() (r int, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *LifelogImageMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetTsMs sets the "ts_ms" field.
func (m *LifelogImageMutation) SetTsMs(i int64) {
	m.ts_ms = &i
	m.addts_ms = nil
}

// TsMs returns the value of the "ts_ms" field in the mutation.
func (m *LifelogImageMutation) TsMs() (r int64, exists bool) {
	v := m.ts_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTsMs returns the old "ts_ms" field's value of the LifelogImage entity.
// If the LifelogImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogImageMutation) OldTsMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTsMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTsMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTsMs: %w", err)
	}
	return oldValue.TsMs, nil
}

// AddTsMs adds i to the "ts_ms" field.
func (m *LifelogImageMutation) AddTsMs(i int64) {
	if m.addts_ms != nil {
		*m.addts_ms += i
	} else {
		m.addts_ms = &i
	}
}

// AddedTsMs returns the value that was added to the "ts_ms" field in this mutation.
func (m *LifelogImageMutation) AddedTsMs() (r int64, exists bool) {
	v := m.addts_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTsMs resets all changes to the "ts_ms" field.
func (m *LifelogImageMutation) ResetTsMs() {
	m.ts_ms = nil
	m.addts_ms = nil
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (m *LifelogImageMutation) SetCreatedAtMs(i int64) {
	m.created_at_ms = &i
	m.addcreated_at_ms = nil
}

// CreatedAtMs returns the value of the "created_at_ms" field in the mutation.
func (m *LifelogImageMutation) CreatedAtMs() (r int64, exists bool) {
	v := m.created_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAtMs returns the old "created_at_ms" field's value of the LifelogImage entity.
// If the LifelogImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifelogImageMutation) OldCreatedAtMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAtMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAtMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAtMs: %w", err)
	}
	return oldValue.CreatedAtMs, nil
}

// AddCreatedAtMs adds i to the "created_at_ms" field.
func (m *LifelogImageMutation) AddCreatedAtMs(i int64) {
	if m.addcreated_at_ms != nil {
		*m.addcreated_at_ms += i
	} else {
		m.addcreated_at_ms = &i
	}
}

// AddedCreatedAtMs returns the value that was added to the "created_at_ms" field in this mutation.
func (m *LifelogImageMutation) AddedCreatedAtMs() (r int64, exists bool) {
	v := m.addcreated_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedAtMs resets all changes to the "created_at_ms" field.
func (m *LifelogImageMutation) ResetCreatedAtMs() {
	m.created_at_ms = nil
	m.addcreated_at_ms = nil
}

// Where appends a list predicates to the LifelogImageMutation builder.
func (m *LifelogImageMutation) Where(ps ...predicate.LifelogImage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LifelogImageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LifelogImageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LifelogImage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LifelogImageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LifelogImageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LifelogImage).
func (m *LifelogImageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LifelogImageMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.session_id != nil {
		fields = append(fields, lifelogimage.FieldSessionID)
	}
	if m.device_id != nil {
		fields = append(fields, lifelogimage.FieldDeviceID)
	}
	if m.image_uri != nil {
		fields = append(fields, lifelogimage.FieldImageURI)
	}
	if m.dhash != nil {
		fields = append(fields, lifelogimage.FieldDhash)
	}
	if m.is_dedup != nil {
		fields = append(fields, lifelogimage.FieldIsDedup)
	}
	if m.content_type != nil {
		fields = append(fields, lifelogimage.FieldContentType)
	}
	if m.size_bytes != nil {
		fields = append(fields, lifelogimage.FieldSizeBytes)
	}
	if m.ts_ms != nil {
		fields = append(fields, lifelogimage.FieldTsMs)
	}
	if m.created_at_ms != nil {
		fields = append(fields, lifelogimage.FieldCreatedAtMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LifelogImageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lifelogimage.FieldSessionID:
		return m.SessionID()
	case lifelogimage.FieldDeviceID:
		return m.DeviceID()
	case lifelogimage.FieldImageURI:
		return m.ImageURI()
	case lifelogimage.FieldDhash:
		return m.Dhash()
	case lifelogimage.FieldIsDedup:
		return m.IsDedup()
	case lifelogimage.FieldContentType:
		return m.ContentType()
	case lifelogimage.FieldSizeBytes:
		return m.SizeBytes()
	case lifelogimage.FieldTsMs:
		return m.TsMs()
	case lifelogimage.FieldCreatedAtMs:
		return m.CreatedAtMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LifelogImageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lifelogimage.FieldSessionID:
		return m.OldSessionID(ctx)
	case lifelogimage.FieldDeviceID:
		return m.OldDeviceID(ctx)
	case lifelogimage.FieldImageURI:
		return m.OldImageURI(ctx)
	case lifelogimage.FieldDhash:
		return m.OldDhash(ctx)
	case lifelogimage.FieldIsDedup:
		return m.OldIsDedup(ctx)
	case lifelogimage.FieldContentType:
		return m.OldContentType(ctx)
	case lifelogimage.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case lifelogimage.FieldTsMs:
		return m.OldTsMs(ctx)
	case lifelogimage.FieldCreatedAtMs:
		return m.OldCreatedAtMs(ctx)
	}
	return nil, fmt.Errorf("unknown LifelogImage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LifelogImageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lifelogimage.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case lifelogimage.FieldDeviceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceID(v)
		return nil
	case lifelogimage.FieldImageURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageURI(v)
		return nil
	case lifelogimage.FieldDhash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDhash(v)
		return nil
	case lifelogimage.FieldIsDedup:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDedup(v)
		return nil
	case lifelogimage.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case lifelogimage.FieldSizeBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case lifelogimage.FieldTsMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTsMs(v)
		return nil
	case lifelogimage.FieldCreatedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAtMs(v)
		return nil
	}
	return fmt.Errorf("unknown LifelogImage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LifelogImageMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, lifelogimage.FieldSizeBytes)
	}
	if m.addts_ms != nil {
		fields = append(fields, lifelogimage.FieldTsMs)
	}
	if m.addcreated_at_ms != nil {
		fields = append(fields, lifelogimage.FieldCreatedAtMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LifelogImageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lifelogimage.FieldSizeBytes:
		return m.AddedSizeBytes()
	case lifelogimage.FieldTsMs:
		return m.AddedTsMs()
	case lifelogimage.FieldCreatedAtMs:
		return m.AddedCreatedAtMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LifelogImageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lifelogimage.FieldSizeBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	case lifelogimage.FieldTsMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTsMs(v)
		return nil
	case lifelogimage.FieldCreatedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedAtMs(v)
		return nil
	}
	return fmt.Errorf("unknown LifelogImage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LifelogImageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lifelogimage.FieldDeviceID) {
		fields = append(fields, lifelogimage.FieldDeviceID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LifelogImageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LifelogImageMutation) ClearField(name string) error {
	switch name {
	case lifelogimage.FieldDeviceID:
		m.ClearDeviceID()
		return nil
	}
	return fmt.Errorf("unknown LifelogImage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LifelogImageMutation) ResetField(name string) error {
	switch name {
	case lifelogimage.FieldSessionID:
		m.ResetSessionID()
		return nil
	case lifelogimage.FieldDeviceID:
		m.ResetDeviceID()
		return nil
	case lifelogimage.FieldImageURI:
		m.ResetImageURI()
		return nil
	case lifelogimage.FieldDhash:
		m.ResetDhash()
		return nil
	case lifelogimage.FieldIsDedup:
		m.ResetIsDedup()
		return nil
	case lifelogimage.FieldContentType:
		m.ResetContentType()
		return nil
	case lifelogimage.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case lifelogimage.FieldTsMs:
		m.ResetTsMs()
		return nil
	case lifelogimage.FieldCreatedAtMs:
		m.ResetCreatedAtMs()
		return nil
	}
	return fmt.Errorf("unknown LifelogImage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LifelogImageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LifelogImageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LifelogImageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LifelogImageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LifelogImageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LifelogImageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LifelogImageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LifelogImage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LifelogImageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LifelogImage edge %s", name)
}

// ObservabilitySampleMutation represents an operation that mutates the ObservabilitySample nodes in the graph.
type ObservabilitySampleMutation struct {
	config
	op            Op
	typ           string
	id            *int
	scope         *string
	counters      *map[string]interface{}
	ts_ms         *int64
	addts_ms      *int64
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ObservabilitySample, error)
	predicates    []predicate.ObservabilitySample
}

var _ ent.Mutation = (*ObservabilitySampleMutation)(nil)

// observabilitysampleOption allows management of the mutation configuration using functional options.
type observabilitysampleOption func(*ObservabilitySampleMutation)

// newObservabilitySampleMutation creates new mutation for the ObservabilitySample entity.
func newObservabilitySampleMutation(c config, op Op, opts ...observabilitysampleOption) *ObservabilitySampleMutation {
	m := &ObservabilitySampleMutation{
		config:        c,
		op:            op,
		typ:           TypeObservabilitySample,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withObservabilitySampleID sets the ID field of the mutation.
func withObservabilitySampleID(id int) observabilitysampleOption {
	return func(m *ObservabilitySampleMutation) {
		var (
			err   error
			once  sync.Once
			value *ObservabilitySample
		)
		m.oldValue = func(ctx context.Context) (*ObservabilitySample, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ObservabilitySample.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withObservabilitySample sets the old ObservabilitySample of the mutation.
func withObservabilitySample(node *ObservabilitySample) observabilitysampleOption {
	return func(m *ObservabilitySampleMutation) {
		m.oldValue = func(context.Context) (*ObservabilitySample, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ObservabilitySampleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ObservabilitySampleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ObservabilitySampleMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ObservabilitySampleMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ObservabilitySample.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScope sets the "scope" field.
func (m *ObservabilitySampleMutation) SetScope(s string) {
	m.scope = &s
}

// Scope returns the value of the "scope" field in the mutation.
func (m *ObservabilitySampleMutation) Scope() (r string, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the ObservabilitySample entity.
// If the ObservabilitySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservabilitySampleMutation) OldScope(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ResetScope resets all changes to the "scope" field.
func (m *ObservabilitySampleMutation) ResetScope() {
	m.scope = nil
}

// SetCounters sets the "counters" field.
func (m *ObservabilitySampleMutation) SetCounters(value map[string]interface{}) {
	m.counters = &value
}

// Counters returns the value of the "counters" field in the mutation.
func (m *ObservabilitySampleMutation) Counters() (r map[string]interface{}, exists bool) {
	v := m.counters
	if v == nil {
		return
	}
	return *v, true
}

// OldCounters returns the old "counters" field's value of the ObservabilitySample entity.
// If the ObservabilitySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservabilitySampleMutation) OldCounters(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCounters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCounters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCounters: %w", err)
	}
	return oldValue.Counters, nil
}

// ResetCounters resets all changes to the "counters" field.
func (m *ObservabilitySampleMutation) ResetCounters() {
	m.counters = nil
}

// SetTsMs sets the "ts_ms" field.
func (m *ObservabilitySampleMutation) SetTsMs(i int64) {
	m.ts_ms = &i
	m.addts_ms = nil
}

// TsMs returns the value of the "ts_ms" field in the mutation.
func (m *ObservabilitySampleMutation) TsMs() (r int64, exists bool) {
	v := m.ts_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTsMs returns the old "ts_ms" field's value of the ObservabilitySample entity.
// If the ObservabilitySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservabilitySampleMutation) OldTsMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTsMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTsMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTsMs: %w", err)
	}
	return oldValue.TsMs, nil
}

// AddTsMs adds i to the "ts_ms" field.
func (m *ObservabilitySampleMutation) AddTsMs(i int64) {
	if m.addts_ms != nil {
		*m.addts_ms += i
	} else {
		m.addts_ms = &i
	}
}

// AddedTsMs returns the value that was added to the "ts_ms" field in this mutation.
func (m *ObservabilitySampleMutation) AddedTsMs() (r int64, exists bool) {
	v := m.addts_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTsMs resets all changes to the "ts_ms" field.
func (m *ObservabilitySampleMutation) ResetTsMs() {
	m.ts_ms = nil
	m.addts_ms = nil
}

// Where appends a list predicates to the ObservabilitySampleMutation builder.
func (m *ObservabilitySampleMutation) Where(ps ...predicate.ObservabilitySample) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ObservabilitySampleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ObservabilitySampleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ObservabilitySample, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ObservabilitySampleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ObservabilitySampleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ObservabilitySample).
func (m *ObservabilitySampleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ObservabilitySampleMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.scope != nil {
		fields = append(fields, observabilitysample.FieldScope)
	}
	if m.counters != nil {
		fields = append(fields, observabilitysample.FieldCounters)
	}
	if m.ts_ms != nil {
		fields = append(fields, observabilitysample.FieldTsMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ObservabilitySampleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case observabilitysample.FieldScope:
		return m.Scope()
	case observabilitysample.FieldCounters:
		return m.Counters()
	case observabilitysample.FieldTsMs:
		return m.TsMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ObservabilitySampleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case observabilitysample.FieldScope:
		return m.OldScope(ctx)
	case observabilitysample.FieldCounters:
		return m.OldCounters(ctx)
	case observabilitysample.FieldTsMs:
		return m.OldTsMs(ctx)
	}
	return nil, fmt.Errorf("unknown ObservabilitySample field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ObservabilitySampleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case observabilitysample.FieldScope:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case observabilitysample.FieldCounters:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCounters(v)
		return nil
	case observabilitysample.FieldTsMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTsMs(v)
		return nil
	}
	return fmt.Errorf("unknown ObservabilitySample field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ObservabilitySampleMutation) AddedFields() []string {
	var fields []string
	if m.addts_ms != nil {
		fields = append(fields, observabilitysample.FieldTsMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ObservabilitySampleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case observabilitysample.FieldTsMs:
		return m.AddedTsMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ObservabilitySampleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case observabilitysample.FieldTsMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTsMs(v)
		return nil
	}
	return fmt.Errorf("unknown ObservabilitySample numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ObservabilitySampleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ObservabilitySampleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ObservabilitySampleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ObservabilitySample nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ObservabilitySampleMutation) ResetField(name string) error {
	switch name {
	case observabilitysample.FieldScope:
		m.ResetScope()
		return nil
	case observabilitysample.FieldCounters:
		m.ResetCounters()
		return nil
	case observabilitysample.FieldTsMs:
		m.ResetTsMs()
		return nil
	}
	return fmt.Errorf("unknown ObservabilitySample field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ObservabilitySampleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ObservabilitySampleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ObservabilitySampleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ObservabilitySampleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ObservabilitySampleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ObservabilitySampleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ObservabilitySampleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ObservabilitySample unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ObservabilitySampleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ObservabilitySample edge %s", name)
}

// PushUpdateMutation represents an operation that mutates the PushUpdate nodes in the graph.
type PushUpdateMutation struct {
	config
	op               Op
	typ              string
	id               *string
	device_id        *string
	session_id       *string
	task_id          *string
	send_key         *string
	payload          *map[string]interface{}
	status           *pushupdate.Status
	created_at_ms    *int64
	addcreated_at_ms *int64
	sent_at_ms       *int64
	addsent_at_ms    *int64
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*PushUpdate, error)
	predicates       []predicate.PushUpdate
}

var _ ent.Mutation = (*PushUpdateMutation)(nil)

// pushupdateOption allows management of the mutation configuration using functional options.
type pushupdateOption func(*PushUpdateMutation)

// newPushUpdateMutation creates new mutation for the PushUpdate entity.
func newPushUpdateMutation(c config, op Op, opts ...pushupdateOption) *PushUpdateMutation {
	m := &PushUpdateMutation{
		config:        c,
		op:            op,
		typ:           TypePushUpdate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPushUpdateID sets the ID field of the mutation.
func withPushUpdateID(id string) pushupdateOption {
	return func(m *PushUpdateMutation) {
		var (
			err   error
			once  sync.Once
			value *PushUpdate
		)
		m.oldValue = func(ctx context.Context) (*PushUpdate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PushUpdate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPushUpdate sets the old PushUpdate of the mutation.
func withPushUpdate(node *PushUpdate) pushupdateOption {
	return func(m *PushUpdateMutation) {
		m.oldValue = func(context.Context) (*PushUpdate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PushUpdateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PushUpdateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PushUpdate entities.
func (m *PushUpdateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PushUpdateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PushUpdateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PushUpdate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDeviceID sets the "device_id" field.
func (m *PushUpdateMutation) SetDeviceID(s string) {
	m.device_id = &s
}

// DeviceID returns the value of the "device_id" field in the mutation.
func (m *PushUpdateMutation) DeviceID() (r string, exists bool) {
	v := m.device_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceID returns the old "device_id" field's value of the PushUpdate entity.
// If the PushUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushUpdateMutation) OldDeviceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceID: %w", err)
	}
	return oldValue.DeviceID, nil
}

// ResetDeviceID resets all changes to the "device_id" field.
func (m *PushUpdateMutation) ResetDeviceID() {
	m.device_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *PushUpdateMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PushUpdateMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the PushUpdate entity.
// If the PushUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushUpdateMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *PushUpdateMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[pushupdate.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *PushUpdateMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[pushupdate.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PushUpdateMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, pushupdate.FieldSessionID)
}

// SetTaskID sets the "task_id" field.
func (m *PushUpdateMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *PushUpdateMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the PushUpdate entity.
// If the PushUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushUpdateMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *PushUpdateMutation) ResetTaskID() {
	m.task_id = nil
}

// SetSendKey sets the "send_key" field.
func (m *PushUpdateMutation) SetSendKey(s string) {
	m.send_key = &s
}

// SendKey returns the value of the "send_key" field in the mutation.
func (m *PushUpdateMutation) SendKey() (r string, exists bool) {
	v := m.send_key
	if v == nil {
		return
	}
	return *v, true
}

// OldSendKey returns the old "send_key" field's value of the PushUpdate entity.
// If the PushUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushUpdateMutation) OldSendKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSendKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSendKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSendKey: %w", err)
	}
	return oldValue.SendKey, nil
}

// ResetSendKey resets all changes to the "send_key" field.
func (m *PushUpdateMutation) ResetSendKey() {
	m.send_key = nil
}

// SetPayload sets the "payload" field.
func (m *PushUpdateMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *PushUpdateMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the PushUpdate entity.
// If the PushUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushUpdateMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *PushUpdateMutation) ResetPayload() {
	m.payload = nil
}

// SetStatus sets the "status" field.
func (m *PushUpdateMutation) SetStatus(pu pushupdate.Status) {
	m.status = &pu
}

// Status returns the value of the "status" field in the mutation.
func (m *PushUpdateMutation) Status() (r pushupdate.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PushUpdate entity.
// If the PushUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushUpdateMutation) OldStatus(ctx context.Context) (v pushupdate.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PushUpdateMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (m *PushUpdateMutation) SetCreatedAtMs(i int64) {
	m.created_at_ms = &i
	m.addcreated_at_ms = nil
}

// CreatedAtMs returns the value of the "created_at_ms" field in the mutation.
func (m *PushUpdateMutation) CreatedAtMs() (r int64, exists bool) {
	v := m.created_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAtMs returns the old "created_at_ms" field's value of the PushUpdate entity.
// If the PushUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushUpdateMutation) OldCreatedAtMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAtMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAtMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAtMs: %w", err)
	}
	return oldValue.CreatedAtMs, nil
}

// AddCreatedAtMs adds i to the "created_at_ms" field.
func (m *PushUpdateMutation) AddCreatedAtMs(i int64) {
	if m.addcreated_at_ms != nil {
		*m.addcreated_at_ms += i
	} else {
		m.addcreated_at_ms = &i
	}
}

// AddedCreatedAtMs returns the value that was added to the "created_at_ms" field in this mutation.
func (m *PushUpdateMutation) AddedCreatedAtMs() (r int64, exists bool) {
	v := m.addcreated_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedAtMs resets all changes to the "created_at_ms" field.
func (m *PushUpdateMutation) ResetCreatedAtMs() {
	m.created_at_ms = nil
	m.addcreated_at_ms = nil
}

// SetSentAtMs sets the "sent_at_ms" field.
func (m *PushUpdateMutation) SetSentAtMs(i int64) {
	m.sent_at_ms = &i
	m.addsent_at_ms = nil
}

// SentAtMs returns the value of the "sent_at_ms" field in the mutation.
func (m *PushUpdateMutation) SentAtMs() (r int64, exists bool) {
	v := m.sent_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAtMs returns the old "sent_at_ms" field's value of the PushUpdate entity.
// If the PushUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushUpdateMutation) OldSentAtMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAtMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAtMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAtMs: %w", err)
	}
	return oldValue.SentAtMs, nil
}

// AddSentAtMs adds i to the "sent_at_ms" field.
func (m *PushUpdateMutation) AddSentAtMs(i int64) {
	if m.addsent_at_ms != nil {
		*m.addsent_at_ms += i
	} else {
		m.addsent_at_ms = &i
	}
}

// AddedSentAtMs returns the value that was added to the "sent_at_ms" field in this mutation.
func (m *PushUpdateMutation) AddedSentAtMs() (r int64, exists bool) {
	v := m.addsent_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearSentAtMs clears the value of the "sent_at_ms" field.
func (m *PushUpdateMutation) ClearSentAtMs() {
	m.sent_at_ms = nil
	m.addsent_at_ms = nil
	m.clearedFields[pushupdate.FieldSentAtMs] = struct{}{}
}

// SentAtMsCleared returns if the "sent_at_ms" field was cleared in this mutation.
func (m *PushUpdateMutation) SentAtMsCleared() bool {
	_, ok := m.clearedFields[pushupdate.FieldSentAtMs]
	return ok
}

// ResetSentAtMs resets all changes to the "sent_at_ms" field.
func (m *PushUpdateMutation) ResetSentAtMs() {
	m.sent_at_ms = nil
	m.addsent_at_ms = nil
	delete(m.clearedFields, pushupdate.FieldSentAtMs)
}

// Where appends a list predicates to the PushUpdateMutation builder.
func (m *PushUpdateMutation) Where(ps ...predicate.PushUpdate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PushUpdateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PushUpdateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PushUpdate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PushUpdateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PushUpdateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PushUpdate).
func (m *PushUpdateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PushUpdateMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.device_id != nil {
		fields = append(fields, pushupdate.FieldDeviceID)
	}
	if m.session_id != nil {
		fields = append(fields, pushupdate.FieldSessionID)
	}
	if m.task_id != nil {
		fields = append(fields, pushupdate.FieldTaskID)
	}
	if m.send_key != nil {
		fields = append(fields, pushupdate.FieldSendKey)
	}
	if m.payload != nil {
		fields = append(fields, pushupdate.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, pushupdate.FieldStatus)
	}
	if m.created_at_ms != nil {
		fields = append(fields, pushupdate.FieldCreatedAtMs)
	}
	if m.sent_at_ms != nil {
		fields = append(fields, pushupdate.FieldSentAtMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PushUpdateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pushupdate.FieldDeviceID:
		return m.DeviceID()
	case pushupdate.FieldSessionID:
		return m.SessionID()
	case pushupdate.FieldTaskID:
		return m.TaskID()
	case pushupdate.FieldSendKey:
		return m.SendKey()
	case pushupdate.FieldPayload:
		return m.Payload()
	case pushupdate.FieldStatus:
		return m.Status()
	case pushupdate.FieldCreatedAtMs:
		return m.CreatedAtMs()
	case pushupdate.FieldSentAtMs:
		return m.SentAtMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PushUpdateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pushupdate.FieldDeviceID:
		return m.OldDeviceID(ctx)
	case pushupdate.FieldSessionID:
		return m.OldSessionID(ctx)
	case pushupdate.FieldTaskID:
		return m.OldTaskID(ctx)
	case pushupdate.FieldSendKey:
		return m.OldSendKey(ctx)
	case pushupdate.FieldPayload:
		return m.OldPayload(ctx)
	case pushupdate.FieldStatus:
		return m.OldStatus(ctx)
	case pushupdate.FieldCreatedAtMs:
		return m.OldCreatedAtMs(ctx)
	case pushupdate.FieldSentAtMs:
		return m.OldSentAtMs(ctx)
	}
	return nil, fmt.Errorf("unknown PushUpdate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PushUpdateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pushupdate.FieldDeviceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceID(v)
		return nil
	case pushupdate.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case pushupdate.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case pushupdate.FieldSendKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSendKey(v)
		return nil
	case pushupdate.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case pushupdate.FieldStatus:
		v, ok := value.(pushupdate.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pushupdate.FieldCreatedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAtMs(v)
		return nil
	case pushupdate.FieldSentAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAtMs(v)
		return nil
	}
	return fmt.Errorf("unknown PushUpdate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PushUpdateMutation) AddedFields() []string {
	var fields []string
	if m.addcreated_at_ms != nil {
		fields = append(fields, pushupdate.FieldCreatedAtMs)
	}
	if m.addsent_at_ms != nil {
		fields = append(fields, pushupdate.FieldSentAtMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PushUpdateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pushupdate.FieldCreatedAtMs:
		return m.AddedCreatedAtMs()
	case pushupdate.FieldSentAtMs:
		return m.AddedSentAtMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PushUpdateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pushupdate.FieldCreatedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedAtMs(v)
		return nil
	case pushupdate.FieldSentAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSentAtMs(v)
		return nil
	}
	return fmt.Errorf("unknown PushUpdate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PushUpdateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pushupdate.FieldSessionID) {
		fields = append(fields, pushupdate.FieldSessionID)
	}
	if m.FieldCleared(pushupdate.FieldSentAtMs) {
		fields = append(fields, pushupdate.FieldSentAtMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PushUpdateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PushUpdateMutation) ClearField(name string) error {
	switch name {
	case pushupdate.FieldSessionID:
		m.ClearSessionID()
		return nil
	case pushupdate.FieldSentAtMs:
		m.ClearSentAtMs()
		return nil
	}
	return fmt.Errorf("unknown PushUpdate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PushUpdateMutation) ResetField(name string) error {
	switch name {
	case pushupdate.FieldDeviceID:
		m.ResetDeviceID()
		return nil
	case pushupdate.FieldSessionID:
		m.ResetSessionID()
		return nil
	case pushupdate.FieldTaskID:
		m.ResetTaskID()
		return nil
	case pushupdate.FieldSendKey:
		m.ResetSendKey()
		return nil
	case pushupdate.FieldPayload:
		m.ResetPayload()
		return nil
	case pushupdate.FieldStatus:
		m.ResetStatus()
		return nil
	case pushupdate.FieldCreatedAtMs:
		m.ResetCreatedAtMs()
		return nil
	case pushupdate.FieldSentAtMs:
		m.ResetSentAtMs()
		return nil
	}
	return fmt.Errorf("unknown PushUpdate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PushUpdateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PushUpdateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PushUpdateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PushUpdateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PushUpdateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PushUpdateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PushUpdateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PushUpdate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PushUpdateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PushUpdate edge %s", name)
}

// TelemetrySampleMutation represents an operation that mutates the TelemetrySample nodes in the graph.
type TelemetrySampleMutation struct {
	config
	op               Op
	typ              string
	id               *int
	device_id        *string
	session_id       *string
	schema_version   *string
	battery          *map[string]interface{}
	network          *map[string]interface{}
	location         *map[string]interface{}
	imu              *map[string]interface{}
	temperature_c    *float64
	addtemperature_c *float64
	raw              *map[string]interface{}
	ts_ms            *int64
	addts_ms         *int64
	created_at_ms    *int64
	addcreated_at_ms *int64
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*TelemetrySample, error)
	predicates       []predicate.TelemetrySample
}

var _ ent.Mutation = (*TelemetrySampleMutation)(nil)

// telemetrysampleOption allows management of the mutation configuration using functional options.
type telemetrysampleOption func(*TelemetrySampleMutation)

// newTelemetrySampleMutation creates new mutation for the TelemetrySample entity.
func newTelemetrySampleMutation(c config, op Op, opts ...telemetrysampleOption) *TelemetrySampleMutation {
	m := &TelemetrySampleMutation{
		config:        c,
		op:            op,
		typ:           TypeTelemetrySample,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTelemetrySampleID sets the ID field of the mutation.
func withTelemetrySampleID(id int) telemetrysampleOption {
	return func(m *TelemetrySampleMutation) {
		var (
			err   error
			once  sync.Once
			value *TelemetrySample
		)
		m.oldValue = func(ctx context.Context) (*TelemetrySample, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TelemetrySample.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTelemetrySample sets the old TelemetrySample of the mutation.
func withTelemetrySample(node *TelemetrySample) telemetrysampleOption {
	return func(m *TelemetrySampleMutation) {
		m.oldValue = func(context.Context) (*TelemetrySample, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TelemetrySampleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TelemetrySampleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TelemetrySampleMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TelemetrySampleMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TelemetrySample.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDeviceID sets the "device_id" field.
func (m *TelemetrySampleMutation) SetDeviceID(s string) {
	m.device_id = &s
}

// DeviceID returns the value of the "device_id" field in the mutation.
func (m *TelemetrySampleMutation) DeviceID() (r string, exists bool) {
	v := m.device_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceID returns the old "device_id" field's value of the TelemetrySample entity.
// If the TelemetrySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetrySampleMutation) OldDeviceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceID: %w", err)
	}
	return oldValue.DeviceID, nil
}

// ResetDeviceID resets all changes to the "device_id" field.
func (m *TelemetrySampleMutation) ResetDeviceID() {
	m.device_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *TelemetrySampleMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *TelemetrySampleMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the TelemetrySample entity.
// If the TelemetrySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetrySampleMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *TelemetrySampleMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[telemetrysample.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *TelemetrySampleMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[telemetrysample.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *TelemetrySampleMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, telemetrysample.FieldSessionID)
}

// SetSchemaVersion sets the "schema_version" field.
func (m *TelemetrySampleMutation) SetSchemaVersion(s string) {
	m.schema_version = &s
}

// SchemaVersion returns the value of the "schema_version" field in the mutation.
func (m *TelemetrySampleMutation) SchemaVersion() (r string, exists bool) {
	v := m.schema_version
	if v == nil {
		return
	}
	return *v, true
}

// OldSchemaVersion returns the old "schema_version" field's value of the TelemetrySample entity.
// If the TelemetrySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetrySampleMutation) OldSchemaVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchemaVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchemaVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchemaVersion: %w", err)
	}
	return oldValue.SchemaVersion, nil
}

// ResetSchemaVersion resets all changes to the "schema_version" field.
func (m *TelemetrySampleMutation) ResetSchemaVersion() {
	m.schema_version = nil
}

// SetBattery sets the "battery" field.
func (m *TelemetrySampleMutation) SetBattery(value map[string]interface{}) {
	m.battery = &value
}

// Battery returns the value of the "battery" field in the mutation.
func (m *TelemetrySampleMutation) Battery() (r map[string]interface{}, exists bool) {
	v := m.battery
	if v == nil {
		return
	}
	return *v, true
}

// OldBattery returns the old "battery" field's value of the TelemetrySample entity.
// If the TelemetrySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetrySampleMutation) OldBattery(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBattery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBattery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBattery: %w", err)
	}
	return oldValue.Battery, nil
}

// ClearBattery clears the value of the "battery" field.
func (m *TelemetrySampleMutation) ClearBattery() {
	m.battery = nil
	m.clearedFields[telemetrysample.FieldBattery] = struct{}{}
}

// BatteryCleared returns if the "battery" field was cleared in this mutation.
func (m *TelemetrySampleMutation) BatteryCleared() bool {
	_, ok := m.clearedFields[telemetrysample.FieldBattery]
	return ok
}

// ResetBattery resets all changes to the "battery" field.
func (m *TelemetrySampleMutation) ResetBattery() {
	m.battery = nil
	delete(m.clearedFields, telemetrysample.FieldBattery)
}

// SetNetwork sets the "network" field.
func (m *TelemetrySampleMutation) SetNetwork(value map[string]interface{}) {
	m.network = &value
}

// Network returns the value of the "network" field in the mutation.
func (m *TelemetrySampleMutation) Network() (r map[string]interface{}, exists bool) {
	v := m.network
	if v == nil {
		return
	}
	return *v, true
}

// OldNetwork returns the old "network" field's value of the TelemetrySample entity.
// If the TelemetrySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetrySampleMutation) OldNetwork(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetwork is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetwork requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetwork: %w", err)
	}
	return oldValue.Network, nil
}

// ClearNetwork clears the value of the "network" field.
func (m *TelemetrySampleMutation) ClearNetwork() {
	m.network = nil
	m.clearedFields[telemetrysample.FieldNetwork] = struct{}{}
}

// NetworkCleared returns if the "network" field was cleared in this mutation.
func (m *TelemetrySampleMutation) NetworkCleared() bool {
	_, ok := m.clearedFields[telemetrysample.FieldNetwork]
	return ok
}

// ResetNetwork resets all changes to the "network" field.
func (m *TelemetrySampleMutation) ResetNetwork() {
	m.network = nil
	delete(m.clearedFields, telemetrysample.FieldNetwork)
}

// SetLocation sets the "location" field.
func (m *TelemetrySampleMutation) SetLocation(value map[string]interface{}) {
	m.location = &value
}

// Location returns the value of the "location" field in the mutation.
func (m *TelemetrySampleMutation) Location() (r map[string]interface{}, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the TelemetrySample entity.
// If the TelemetrySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetrySampleMutation) OldLocation(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ClearLocation clears the value of the "location" field.
func (m *TelemetrySampleMutation) ClearLocation() {
	m.location = nil
	m.clearedFields[telemetrysample.FieldLocation] = struct{}{}
}

// LocationCleared returns if the "location" field was cleared in this mutation.
func (m *TelemetrySampleMutation) LocationCleared() bool {
	_, ok := m.clearedFields[telemetrysample.FieldLocation]
	return ok
}

// ResetLocation resets all changes to the "location" field.
func (m *TelemetrySampleMutation) ResetLocation() {
	m.location = nil
	delete(m.clearedFields, telemetrysample.FieldLocation)
}

// SetImu sets the "imu" field.
func (m *TelemetrySampleMutation) SetImu(value map[string]interface{}) {
	m.imu = &value
}

// Imu returns the value of the "imu" field in the mutation.
func (m *TelemetrySampleMutation) Imu() (r map[string]interface{}, exists bool) {
	v := m.imu
	if v == nil {
		return
	}
	return *v, true
}

// OldImu returns the old "imu" field's value of the TelemetrySample entity.
// If the TelemetrySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetrySampleMutation) OldImu(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImu is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImu requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImu: %w", err)
	}
	return oldValue.Imu, nil
}

// ClearImu clears the value of the "imu" field.
func (m *TelemetrySampleMutation) ClearImu() {
	m.imu = nil
	m.clearedFields[telemetrysample.FieldImu] = struct{}{}
}

// ImuCleared returns if the "imu" field was cleared in this mutation.
func (m *TelemetrySampleMutation) ImuCleared() bool {
	_, ok := m.clearedFields[telemetrysample.FieldImu]
	return ok
}

// ResetImu resets all changes to the "imu" field.
func (m *TelemetrySampleMutation) ResetImu() {
	m.imu = nil
	delete(m.clearedFields, telemetrysample.FieldImu)
}

// SetTemperatureC sets the "temperature_c" field.
func (m *TelemetrySampleMutation) SetTemperatureC(f float64) {
	m.temperature_c = &f
	m.addtemperature_c = nil
}

// TemperatureC returns the value of the "temperature_c" field in the mutation.
func (m *TelemetrySampleMutation) TemperatureC() (r float64, exists bool) {
	v := m.temperature_c
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperatureC returns the old "temperature_c" field's value of the TelemetrySample entity.
// If the TelemetrySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetrySampleMutation) OldTemperatureC(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperatureC is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperatureC requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperatureC: %w", err)
	}
	return oldValue.TemperatureC, nil
}

// AddTemperatureC adds f to the "temperature_c" field.
func (m *TelemetrySampleMutation) AddTemperatureC(f float64) {
	if m.addtemperature_c != nil {
		*m.addtemperature_c += f
	} else {
		m.addtemperature_c = &f
	}
}

// AddedTemperatureC returns the value that was added to the "temperature_c" field in this mutation.
func (m *TelemetrySampleMutation) AddedTemperatureC() (r float64, exists bool) {
	v := m.addtemperature_c
	if v == nil {
		return
	}
	return *v, true
}

// ClearTemperatureC clears the value of the "temperature_c" field.
func (m *TelemetrySampleMutation) ClearTemperatureC() {
	m.temperature_c = nil
	m.addtemperature_c = nil
	m.clearedFields[telemetrysample.FieldTemperatureC] = struct{}{}
}

// TemperatureCCleared returns if the "temperature_c" field was cleared in this mutation.
func (m *TelemetrySampleMutation) TemperatureCCleared() bool {
	_, ok := m.clearedFields[telemetrysample.FieldTemperatureC]
	return ok
}

// ResetTemperatureC resets all changes to the "temperature_c" field.
func (m *TelemetrySampleMutation) ResetTemperatureC() {
	m.temperature_c = nil
	m.addtemperature_c = nil
	delete(m.clearedFields, telemetrysample.FieldTemperatureC)
}

// SetRaw sets the "raw" field.
func (m *TelemetrySampleMutation) SetRaw(value map[string]interface{}) {
	m.raw = &value
}

// Raw returns the value of the "raw" field in the mutation.
func (m *TelemetrySampleMutation) Raw() (r map[string]interface{}, exists bool) {
	v := m.raw
	if v == nil {
		return
	}
	return *v, true
}

// OldRaw returns the old "raw" field's value of the TelemetrySample entity.
// If the TelemetrySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetrySampleMutation) OldRaw(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRaw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRaw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRaw: %w", err)
	}
	return oldValue.Raw, nil
}

// ClearRaw clears the value of the "raw" field.
func (m *TelemetrySampleMutation) ClearRaw() {
	m.raw = nil
	m.clearedFields[telemetrysample.FieldRaw] = struct{}{}
}

// RawCleared returns if the "raw" field was cleared in this mutation.
func (m *TelemetrySampleMutation) RawCleared() bool {
	_, ok := m.clearedFields[telemetrysample.FieldRaw]
	return ok
}

// ResetRaw resets all changes to the "raw" field.
func (m *TelemetrySampleMutation) ResetRaw() {
	m.raw = nil
	delete(m.clearedFields, telemetrysample.FieldRaw)
}

// SetTsMs sets the "ts_ms" field.
func (m *TelemetrySampleMutation) SetTsMs(i int64) {
	m.ts_ms = &i
	m.addts_ms = nil
}

// TsMs returns the value of the "ts_ms" field in the mutation.
func (m *TelemetrySampleMutation) TsMs() (r int64, exists bool) {
	v := m.ts_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTsMs returns the old "ts_ms" field's value of the TelemetrySample entity.
// If the TelemetrySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetrySampleMutation) OldTsMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTsMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTsMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTsMs: %w", err)
	}
	return oldValue.TsMs, nil
}

// AddTsMs adds i to the "ts_ms" field.
func (m *TelemetrySampleMutation) AddTsMs(i int64) {
	if m.addts_ms != nil {
		*m.addts_ms += i
	} else {
		m.addts_ms = &i
	}
}

// AddedTsMs returns the value that was added to the "ts_ms" field in this mutation.
func (m *TelemetrySampleMutation) AddedTsMs() (r int64, exists bool) {
	v := m.addts_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTsMs resets all changes to the "ts_ms" field.
func (m *TelemetrySampleMutation) ResetTsMs() {
	m.ts_ms = nil
	m.addts_ms = nil
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (m *TelemetrySampleMutation) SetCreatedAtMs(i int64) {
	m.created_at_ms = &i
	m.addcreated_at_ms = nil
}

// CreatedAtMs returns the value of the "created_at_ms" field in the mutation.
func (m *TelemetrySampleMutation) CreatedAtMs() (r int64, exists bool) {
	v := m.created_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAtMs returns the old "created_at_ms" field's value of the TelemetrySample entity.
// If the TelemetrySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetrySampleMutation) OldCreatedAtMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAtMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAtMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAtMs: %w", err)
	}
	return oldValue.CreatedAtMs, nil
}

// AddCreatedAtMs adds i to the "created_at_ms" field.
func (m *TelemetrySampleMutation) AddCreatedAtMs(i int64) {
	if m.addcreated_at_ms != nil {
		*m.addcreated_at_ms += i
	} else {
		m.addcreated_at_ms = &i
	}
}

// AddedCreatedAtMs returns the value that was added to the "created_at_ms" field in this mutation.
func (m *TelemetrySampleMutation) AddedCreatedAtMs() (r int64, exists bool) {
	v := m.addcreated_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedAtMs resets all changes to the "created_at_ms" field.
func (m *TelemetrySampleMutation) ResetCreatedAtMs() {
	m.created_at_ms = nil
	m.addcreated_at_ms = nil
}

// Where appends a list predicates to the TelemetrySampleMutation builder.
func (m *TelemetrySampleMutation) Where(ps ...predicate.TelemetrySample) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TelemetrySampleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TelemetrySampleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TelemetrySample, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TelemetrySampleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TelemetrySampleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TelemetrySample).
func (m *TelemetrySampleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TelemetrySampleMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.device_id != nil {
		fields = append(fields, telemetrysample.FieldDeviceID)
	}
	if m.session_id != nil {
		fields = append(fields, telemetrysample.FieldSessionID)
	}
	if m.schema_version != nil {
		fields = append(fields, telemetrysample.FieldSchemaVersion)
	}
	if m.battery != nil {
		fields = append(fields, telemetrysample.FieldBattery)
	}
	if m.network != nil {
		fields = append(fields, telemetrysample.FieldNetwork)
	}
	if m.location != nil {
		fields = append(fields, telemetrysample.FieldLocation)
	}
	if m.imu != nil {
		fields = append(fields, telemetrysample.FieldImu)
	}
	if m.temperature_c != nil {
		fields = append(fields, telemetrysample.FieldTemperatureC)
	}
	if m.raw != nil {
		fields = append(fields, telemetrysample.FieldRaw)
	}
	if m.ts_ms != nil {
		fields = append(fields, telemetrysample.FieldTsMs)
	}
	if m.created_at_ms != nil {
		fields = append(fields, telemetrysample.FieldCreatedAtMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TelemetrySampleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case telemetrysample.FieldDeviceID:
		return m.DeviceID()
	case telemetrysample.FieldSessionID:
		return m.SessionID()
	case telemetrysample.FieldSchemaVersion:
		return m.SchemaVersion()
	case telemetrysample.FieldBattery:
		return m.Battery()
	case telemetrysample.FieldNetwork:
		return m.Network()
	case telemetrysample.FieldLocation:
		return m.Location()
	case telemetrysample.FieldImu:
		return m.Imu()
	case telemetrysample.FieldTemperatureC:
		return m.TemperatureC()
	case telemetrysample.FieldRaw:
		return m.Raw()
	case telemetrysample.FieldTsMs:
		return m.TsMs()
	case telemetrysample.FieldCreatedAtMs:
		return m.CreatedAtMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TelemetrySampleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case telemetrysample.FieldDeviceID:
		return m.OldDeviceID(ctx)
	case telemetrysample.FieldSessionID:
		return m.OldSessionID(ctx)
	case telemetrysample.FieldSchemaVersion:
		return m.OldSchemaVersion(ctx)
	case telemetrysample.FieldBattery:
		return m.OldBattery(ctx)
	case telemetrysample.FieldNetwork:
		return m.OldNetwork(ctx)
	case telemetrysample.FieldLocation:
		return m.OldLocation(ctx)
	case telemetrysample.FieldImu:
		return m.OldImu(ctx)
	case telemetrysample.FieldTemperatureC:
		return m.OldTemperatureC(ctx)
	case telemetrysample.FieldRaw:
		return m.OldRaw(ctx)
	case telemetrysample.FieldTsMs:
		return m.OldTsMs(ctx)
	case telemetrysample.FieldCreatedAtMs:
		return m.OldCreatedAtMs(ctx)
	}
	return nil, fmt.Errorf("unknown TelemetrySample field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TelemetrySampleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case telemetrysample.FieldDeviceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceID(v)
		return nil
	case telemetrysample.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case telemetrysample.FieldSchemaVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchemaVersion(v)
		return nil
	case telemetrysample.FieldBattery:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBattery(v)
		return nil
	case telemetrysample.FieldNetwork:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetwork(v)
		return nil
	case telemetrysample.FieldLocation:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case telemetrysample.FieldImu:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImu(v)
		return nil
	case telemetrysample.FieldTemperatureC:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperatureC(v)
		return nil
	case telemetrysample.FieldRaw:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRaw(v)
		return nil
	case telemetrysample.FieldTsMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTsMs(v)
		return nil
	case telemetrysample.FieldCreatedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAtMs(v)
		return nil
	}
	return fmt.Errorf("unknown TelemetrySample field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TelemetrySampleMutation) AddedFields() []string {
	var fields []string
	if m.addtemperature_c != nil {
		fields = append(fields, telemetrysample.FieldTemperatureC)
	}
	if m.addts_ms != nil {
		fields = append(fields, telemetrysample.FieldTsMs)
	}
	if m.addcreated_at_ms != nil {
		fields = append(fields, telemetrysample.FieldCreatedAtMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TelemetrySampleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case telemetrysample.FieldTemperatureC:
		return m.AddedTemperatureC()
	case telemetrysample.FieldTsMs:
		return m.AddedTsMs()
	case telemetrysample.FieldCreatedAtMs:
		return m.AddedCreatedAtMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TelemetrySampleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case telemetrysample.FieldTemperatureC:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperatureC(v)
		return nil
	case telemetrysample.FieldTsMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTsMs(v)
		return nil
	case telemetrysample.FieldCreatedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedAtMs(v)
		return nil
	}
	return fmt.Errorf("unknown TelemetrySample numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TelemetrySampleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(telemetrysample.FieldSessionID) {
		fields = append(fields, telemetrysample.FieldSessionID)
	}
	if m.FieldCleared(telemetrysample.FieldBattery) {
		fields = append(fields, telemetrysample.FieldBattery)
	}
	if m.FieldCleared(telemetrysample.FieldNetwork) {
		fields = append(fields, telemetrysample.FieldNetwork)
	}
	if m.FieldCleared(telemetrysample.FieldLocation) {
		fields = append(fields, telemetrysample.FieldLocation)
	}
	if m.FieldCleared(telemetrysample.FieldImu) {
		fields = append(fields, telemetrysample.FieldImu)
	}
	if m.FieldCleared(telemetrysample.FieldTemperatureC) {
		fields = append(fields, telemetrysample.FieldTemperatureC)
	}
	if m.FieldCleared(telemetrysample.FieldRaw) {
		fields = append(fields, telemetrysample.FieldRaw)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TelemetrySampleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TelemetrySampleMutation) ClearField(name string) error {
	switch name {
	case telemetrysample.FieldSessionID:
		m.ClearSessionID()
		return nil
	case telemetrysample.FieldBattery:
		m.ClearBattery()
		return nil
	case telemetrysample.FieldNetwork:
		m.ClearNetwork()
		return nil
	case telemetrysample.FieldLocation:
		m.ClearLocation()
		return nil
	case telemetrysample.FieldImu:
		m.ClearImu()
		return nil
	case telemetrysample.FieldTemperatureC:
		m.ClearTemperatureC()
		return nil
	case telemetrysample.FieldRaw:
		m.ClearRaw()
		return nil
	}
	return fmt.Errorf("unknown TelemetrySample nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TelemetrySampleMutation) ResetField(name string) error {
	switch name {
	case telemetrysample.FieldDeviceID:
		m.ResetDeviceID()
		return nil
	case telemetrysample.FieldSessionID:
		m.ResetSessionID()
		return nil
	case telemetrysample.FieldSchemaVersion:
		m.ResetSchemaVersion()
		return nil
	case telemetrysample.FieldBattery:
		m.ResetBattery()
		return nil
	case telemetrysample.FieldNetwork:
		m.ResetNetwork()
		return nil
	case telemetrysample.FieldLocation:
		m.ResetLocation()
		return nil
	case telemetrysample.FieldImu:
		m.ResetImu()
		return nil
	case telemetrysample.FieldTemperatureC:
		m.ResetTemperatureC()
		return nil
	case telemetrysample.FieldRaw:
		m.ResetRaw()
		return nil
	case telemetrysample.FieldTsMs:
		m.ResetTsMs()
		return nil
	case telemetrysample.FieldCreatedAtMs:
		m.ResetCreatedAtMs()
		return nil
	}
	return fmt.Errorf("unknown TelemetrySample field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TelemetrySampleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TelemetrySampleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TelemetrySampleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TelemetrySampleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TelemetrySampleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TelemetrySampleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TelemetrySampleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TelemetrySample unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TelemetrySampleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TelemetrySample edge %s", name)
}

// ThoughtTraceMutation represents an operation that mutates the ThoughtTrace nodes in the graph.
type ThoughtTraceMutation struct {
	config
	op            Op
	typ           string
	id            *int
	trace_id      *string
	session_id    *string
	source        *string
	stage         *string
	payload       *map[string]interface{}
	ts_ms         *int64
	addts_ms      *int64
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ThoughtTrace, error)
	predicates    []predicate.ThoughtTrace
}

var _ ent.Mutation = (*ThoughtTraceMutation)(nil)

// thoughttraceOption allows management of the mutation configuration using functional options.
type thoughttraceOption func(*ThoughtTraceMutation)

// newThoughtTraceMutation creates new mutation for the ThoughtTrace entity.
func newThoughtTraceMutation(c config, op Op, opts ...thoughttraceOption) *ThoughtTraceMutation {
	m := &ThoughtTraceMutation{
		config:        c,
		op:            op,
		typ:           TypeThoughtTrace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withThoughtTraceID sets the ID field of the mutation.
func withThoughtTraceID(id int) thoughttraceOption {
	return func(m *ThoughtTraceMutation) {
		var (
			err   error
			once  sync.Once
			value *ThoughtTrace
		)
		m.oldValue = func(ctx context.Context) (*ThoughtTrace, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ThoughtTrace.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withThoughtTrace sets the old ThoughtTrace of the mutation.
func withThoughtTrace(node *ThoughtTrace) thoughttraceOption {
	return func(m *ThoughtTraceMutation) {
		m.oldValue = func(context.Context) (*ThoughtTrace, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ThoughtTraceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ThoughtTraceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ThoughtTraceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ThoughtTraceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ThoughtTrace.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTraceID sets the "trace_id" field.
func (m *ThoughtTraceMutation) SetTraceID(s string) {
	m.trace_id = &s
}

// TraceID returns the value of the "trace_id" field in the mutation.
func (m *ThoughtTraceMutation) TraceID() (r string, exists bool) {
	v := m.trace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTraceID returns the old "trace_id" field's value of the ThoughtTrace entity.
// If the ThoughtTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThoughtTraceMutation) OldTraceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTraceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTraceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTraceID: %w", err)
	}
	return oldValue.TraceID, nil
}

// ResetTraceID resets all changes to the "trace_id" field.
func (m *ThoughtTraceMutation) ResetTraceID() {
	m.trace_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *ThoughtTraceMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ThoughtTraceMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ThoughtTrace entity.
// If the ThoughtTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThoughtTraceMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ThoughtTraceMutation) ResetSessionID() {
	m.session_id = nil
}

// SetSource sets the "source" field.
func (m *ThoughtTraceMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *ThoughtTraceMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the ThoughtTrace entity.
// If the ThoughtTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThoughtTraceMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ThoughtTraceMutation) ResetSource() {
	m.source = nil
}

// SetStage sets the "stage" field.
func (m *ThoughtTraceMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *ThoughtTraceMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the ThoughtTrace entity.
// If the ThoughtTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThoughtTraceMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *ThoughtTraceMutation) ResetStage() {
	m.stage = nil
}

// SetPayload sets the "payload" field.
func (m *ThoughtTraceMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *ThoughtTraceMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the ThoughtTrace entity.
// If the ThoughtTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThoughtTraceMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *ThoughtTraceMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[thoughttrace.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *ThoughtTraceMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[thoughttrace.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *ThoughtTraceMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, thoughttrace.FieldPayload)
}

// SetTsMs sets the "ts_ms" field.
func (m *ThoughtTraceMutation) SetTsMs(i int64) {
	m.ts_ms = &i
	m.addts_ms = nil
}

// TsMs returns the value of the "ts_ms" field in the mutation.
func (m *ThoughtTraceMutation) TsMs() (r int64, exists bool) {
	v := m.ts_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTsMs returns the old "ts_ms" field's value of the ThoughtTrace entity.
// If the ThoughtTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThoughtTraceMutation) OldTsMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTsMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTsMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTsMs: %w", err)
	}
	return oldValue.TsMs, nil
}

// AddTsMs adds i to the "ts_ms" field.
func (m *ThoughtTraceMutation) AddTsMs(i int64) {
	if m.addts_ms != nil {
		*m.addts_ms += i
	} else {
		m.addts_ms = &i
	}
}

// AddedTsMs returns the value that was added to the "ts_ms" field in this mutation.
func (m *ThoughtTraceMutation) AddedTsMs() (r int64, exists bool) {
	v := m.addts_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTsMs resets all changes to the "ts_ms" field.
func (m *ThoughtTraceMutation) ResetTsMs() {
	m.ts_ms = nil
	m.addts_ms = nil
}

// Where appends a list predicates to the ThoughtTraceMutation builder.
func (m *ThoughtTraceMutation) Where(ps ...predicate.ThoughtTrace) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ThoughtTraceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ThoughtTraceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ThoughtTrace, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ThoughtTraceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ThoughtTraceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ThoughtTrace).
func (m *ThoughtTraceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ThoughtTraceMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.trace_id != nil {
		fields = append(fields, thoughttrace.FieldTraceID)
	}
	if m.session_id != nil {
		fields = append(fields, thoughttrace.FieldSessionID)
	}
	if m.source != nil {
		fields = append(fields, thoughttrace.FieldSource)
	}
	if m.stage != nil {
		fields = append(fields, thoughttrace.FieldStage)
	}
	if m.payload != nil {
		fields = append(fields, thoughttrace.FieldPayload)
	}
	if m.ts_ms != nil {
		fields = append(fields, thoughttrace.FieldTsMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ThoughtTraceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case thoughttrace.FieldTraceID:
		return m.TraceID()
	case thoughttrace.FieldSessionID:
		return m.SessionID()
	case thoughttrace.FieldSource:
		return m.Source()
	case thoughttrace.FieldStage:
		return m.Stage()
	case thoughttrace.FieldPayload:
		return m.Payload()
	case thoughttrace.FieldTsMs:
		return m.TsMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ThoughtTraceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case thoughttrace.FieldTraceID:
		return m.OldTraceID(ctx)
	case thoughttrace.FieldSessionID:
		return m.OldSessionID(ctx)
	case thoughttrace.FieldSource:
		return m.OldSource(ctx)
	case thoughttrace.FieldStage:
		return m.OldStage(ctx)
	case thoughttrace.FieldPayload:
		return m.OldPayload(ctx)
	case thoughttrace.FieldTsMs:
		return m.OldTsMs(ctx)
	}
	return nil, fmt.Errorf("unknown ThoughtTrace field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThoughtTraceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case thoughttrace.FieldTraceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTraceID(v)
		return nil
	case thoughttrace.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case thoughttrace.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case thoughttrace.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case thoughttrace.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case thoughttrace.FieldTsMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTsMs(v)
		return nil
	}
	return fmt.Errorf("unknown ThoughtTrace field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ThoughtTraceMutation) AddedFields() []string {
	var fields []string
	if m.addts_ms != nil {
		fields = append(fields, thoughttrace.FieldTsMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ThoughtTraceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case thoughttrace.FieldTsMs:
		return m.AddedTsMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThoughtTraceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case thoughttrace.FieldTsMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTsMs(v)
		return nil
	}
	return fmt.Errorf("unknown ThoughtTrace numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ThoughtTraceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(thoughttrace.FieldPayload) {
		fields = append(fields, thoughttrace.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ThoughtTraceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ThoughtTraceMutation) ClearField(name string) error {
	switch name {
	case thoughttrace.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown ThoughtTrace nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ThoughtTraceMutation) ResetField(name string) error {
	switch name {
	case thoughttrace.FieldTraceID:
		m.ResetTraceID()
		return nil
	case thoughttrace.FieldSessionID:
		m.ResetSessionID()
		return nil
	case thoughttrace.FieldSource:
		m.ResetSource()
		return nil
	case thoughttrace.FieldStage:
		m.ResetStage()
		return nil
	case thoughttrace.FieldPayload:
		m.ResetPayload()
		return nil
	case thoughttrace.FieldTsMs:
		m.ResetTsMs()
		return nil
	}
	return fmt.Errorf("unknown ThoughtTrace field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ThoughtTraceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ThoughtTraceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ThoughtTraceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ThoughtTraceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ThoughtTraceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ThoughtTraceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ThoughtTraceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ThoughtTrace unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ThoughtTraceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ThoughtTrace edge %s", name)
}
