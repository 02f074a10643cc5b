// Code generated by ent, DO NOT EDIT.

package devicebinding

import (
	"entgo.io/ent/dialect/sql"
	"github.com/opencane/edged/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldLTE(FieldID, id))
}

// DeviceID applies equality check predicate on the "device_id" field. It's identical to DeviceIDEQ.
func DeviceID(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldEQ(FieldDeviceID, v))
}

// DeviceTokenHash applies equality check predicate on the "device_token_hash" field. It's identical to DeviceTokenHashEQ.
func DeviceTokenHash(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldEQ(FieldDeviceTokenHash, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldEQ(FieldUserID, v))
}

// ActivatedAtMs applies equality check predicate on the "activated_at_ms" field. It's identical to ActivatedAtMsEQ.
func ActivatedAtMs(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldEQ(FieldActivatedAtMs, v))
}

// RevokedAtMs applies equality check predicate on the "revoked_at_ms" field. It's identical to RevokedAtMsEQ.
func RevokedAtMs(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldEQ(FieldRevokedAtMs, v))
}

// RevokeReason applies equality check predicate on the "revoke_reason" field. It's identical to RevokeReasonEQ.
func RevokeReason(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldEQ(FieldRevokeReason, v))
}

// CreatedAtMs applies equality check predicate on the "created_at_ms" field. It's identical to CreatedAtMsEQ.
func CreatedAtMs(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldEQ(FieldCreatedAtMs, v))
}

// UpdatedAtMs applies equality check predicate on the "updated_at_ms" field. It's identical to UpdatedAtMsEQ.
func UpdatedAtMs(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldEQ(FieldUpdatedAtMs, v))
}

// DeviceIDEQ applies the EQ predicate on the "device_id" field.
func DeviceIDEQ(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldEQ(FieldDeviceID, v))
}

// DeviceIDNEQ applies the NEQ predicate on the "device_id" field.
func DeviceIDNEQ(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldNEQ(FieldDeviceID, v))
}

// DeviceIDIn applies the In predicate on the "device_id" field.
func DeviceIDIn(vs ...string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldIn(FieldDeviceID, vs...))
}

// DeviceIDNotIn applies the NotIn predicate on the "device_id" field.
func DeviceIDNotIn(vs ...string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldNotIn(FieldDeviceID, vs...))
}

// DeviceIDGT applies the GT predicate on the "device_id" field.
func DeviceIDGT(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldGT(FieldDeviceID, v))
}

// DeviceIDGTE applies the GTE predicate on the "device_id" field.
func DeviceIDGTE(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldGTE(FieldDeviceID, v))
}

// DeviceIDLT applies the LT predicate on the "device_id" field.
func DeviceIDLT(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldLT(FieldDeviceID, v))
}

// DeviceIDLTE applies the LTE predicate on the "device_id" field.
func DeviceIDLTE(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldLTE(FieldDeviceID, v))
}

// DeviceIDContains applies the Contains predicate on the "device_id" field.
func DeviceIDContains(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldContains(FieldDeviceID, v))
}

// DeviceIDHasPrefix applies the HasPrefix predicate on the "device_id" field.
func DeviceIDHasPrefix(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldHasPrefix(FieldDeviceID, v))
}

// DeviceIDHasSuffix applies the HasSuffix predicate on the "device_id" field.
func DeviceIDHasSuffix(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldHasSuffix(FieldDeviceID, v))
}

// DeviceIDEqualFold applies the EqualFold predicate on the "device_id" field.
func DeviceIDEqualFold(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldEqualFold(FieldDeviceID, v))
}

// DeviceIDContainsFold applies the ContainsFold predicate on the "device_id" field.
func DeviceIDContainsFold(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldContainsFold(FieldDeviceID, v))
}

// DeviceTokenHashEQ applies the EQ predicate on the "device_token_hash" field.
func DeviceTokenHashEQ(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldEQ(FieldDeviceTokenHash, v))
}

// DeviceTokenHashNEQ applies the NEQ predicate on the "device_token_hash" field.
func DeviceTokenHashNEQ(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldNEQ(FieldDeviceTokenHash, v))
}

// DeviceTokenHashIn applies the In predicate on the "device_token_hash" field.
func DeviceTokenHashIn(vs ...string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldIn(FieldDeviceTokenHash, vs...))
}

// DeviceTokenHashNotIn applies the NotIn predicate on the "device_token_hash" field.
func DeviceTokenHashNotIn(vs ...string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldNotIn(FieldDeviceTokenHash, vs...))
}

// DeviceTokenHashGT applies the GT predicate on the "device_token_hash" field.
func DeviceTokenHashGT(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldGT(FieldDeviceTokenHash, v))
}

// DeviceTokenHashGTE applies the GTE predicate on the "device_token_hash" field.
func DeviceTokenHashGTE(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldGTE(FieldDeviceTokenHash, v))
}

// DeviceTokenHashLT applies the LT predicate on the "device_token_hash" field.
func DeviceTokenHashLT(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldLT(FieldDeviceTokenHash, v))
}

// DeviceTokenHashLTE applies the LTE predicate on the "device_token_hash" field.
func DeviceTokenHashLTE(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldLTE(FieldDeviceTokenHash, v))
}

// DeviceTokenHashContains applies the Contains predicate on the "device_token_hash" field.
func DeviceTokenHashContains(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldContains(FieldDeviceTokenHash, v))
}

// DeviceTokenHashHasPrefix applies the HasPrefix predicate on the "device_token_hash" field.
func DeviceTokenHashHasPrefix(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldHasPrefix(FieldDeviceTokenHash, v))
}

// DeviceTokenHashHasSuffix applies the HasSuffix predicate on the "device_token_hash" field.
func DeviceTokenHashHasSuffix(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldHasSuffix(FieldDeviceTokenHash, v))
}

// DeviceTokenHashIsNil applies the IsNil predicate on the "device_token_hash" field.
func DeviceTokenHashIsNil() predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldIsNull(FieldDeviceTokenHash))
}

// DeviceTokenHashNotNil applies the NotNil predicate on the "device_token_hash" field.
func DeviceTokenHashNotNil() predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldNotNull(FieldDeviceTokenHash))
}

// DeviceTokenHashEqualFold applies the EqualFold predicate on the "device_token_hash" field.
func DeviceTokenHashEqualFold(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldEqualFold(FieldDeviceTokenHash, v))
}

// DeviceTokenHashContainsFold applies the ContainsFold predicate on the "device_token_hash" field.
func DeviceTokenHashContainsFold(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldContainsFold(FieldDeviceTokenHash, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldNotIn(FieldStatus, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldContainsFold(FieldUserID, v))
}

// BindingMetadataIsNil applies the IsNil predicate on the "binding_metadata" field.
func BindingMetadataIsNil() predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldIsNull(FieldBindingMetadata))
}

// BindingMetadataNotNil applies the NotNil predicate on the "binding_metadata" field.
func BindingMetadataNotNil() predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldNotNull(FieldBindingMetadata))
}

// ActivatedAtMsEQ applies the EQ predicate on the "activated_at_ms" field.
func ActivatedAtMsEQ(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldEQ(FieldActivatedAtMs, v))
}

// ActivatedAtMsNEQ applies the NEQ predicate on the "activated_at_ms" field.
func ActivatedAtMsNEQ(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldNEQ(FieldActivatedAtMs, v))
}

// ActivatedAtMsIn applies the In predicate on the "activated_at_ms" field.
func ActivatedAtMsIn(vs ...int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldIn(FieldActivatedAtMs, vs...))
}

// ActivatedAtMsNotIn applies the NotIn predicate on the "activated_at_ms" field.
func ActivatedAtMsNotIn(vs ...int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldNotIn(FieldActivatedAtMs, vs...))
}

// ActivatedAtMsGT applies the GT predicate on the "activated_at_ms" field.
func ActivatedAtMsGT(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldGT(FieldActivatedAtMs, v))
}

// ActivatedAtMsGTE applies the GTE predicate on the "activated_at_ms" field.
func ActivatedAtMsGTE(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldGTE(FieldActivatedAtMs, v))
}

// ActivatedAtMsLT applies the LT predicate on the "activated_at_ms" field.
func ActivatedAtMsLT(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldLT(FieldActivatedAtMs, v))
}

// ActivatedAtMsLTE applies the LTE predicate on the "activated_at_ms" field.
func ActivatedAtMsLTE(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldLTE(FieldActivatedAtMs, v))
}

// ActivatedAtMsIsNil applies the IsNil predicate on the "activated_at_ms" field.
func ActivatedAtMsIsNil() predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldIsNull(FieldActivatedAtMs))
}

// ActivatedAtMsNotNil applies the NotNil predicate on the "activated_at_ms" field.
func ActivatedAtMsNotNil() predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldNotNull(FieldActivatedAtMs))
}

// RevokedAtMsEQ applies the EQ predicate on the "revoked_at_ms" field.
func RevokedAtMsEQ(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldEQ(FieldRevokedAtMs, v))
}

// RevokedAtMsNEQ applies the NEQ predicate on the "revoked_at_ms" field.
func RevokedAtMsNEQ(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldNEQ(FieldRevokedAtMs, v))
}

// RevokedAtMsIn applies the In predicate on the "revoked_at_ms" field.
func RevokedAtMsIn(vs ...int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldIn(FieldRevokedAtMs, vs...))
}

// RevokedAtMsNotIn applies the NotIn predicate on the "revoked_at_ms" field.
func RevokedAtMsNotIn(vs ...int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldNotIn(FieldRevokedAtMs, vs...))
}

// RevokedAtMsGT applies the GT predicate on the "revoked_at_ms" field.
func RevokedAtMsGT(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldGT(FieldRevokedAtMs, v))
}

// RevokedAtMsGTE applies the GTE predicate on the "revoked_at_ms" field.
func RevokedAtMsGTE(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldGTE(FieldRevokedAtMs, v))
}

// RevokedAtMsLT applies the LT predicate on the "revoked_at_ms" field.
func RevokedAtMsLT(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldLT(FieldRevokedAtMs, v))
}

// RevokedAtMsLTE applies the LTE predicate on the "revoked_at_ms" field.
func RevokedAtMsLTE(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldLTE(FieldRevokedAtMs, v))
}

// RevokedAtMsIsNil applies the IsNil predicate on the "revoked_at_ms" field.
func RevokedAtMsIsNil() predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldIsNull(FieldRevokedAtMs))
}

// RevokedAtMsNotNil applies the NotNil predicate on the "revoked_at_ms" field.
func RevokedAtMsNotNil() predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldNotNull(FieldRevokedAtMs))
}

// RevokeReasonEQ applies the EQ predicate on the "revoke_reason" field.
func RevokeReasonEQ(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldEQ(FieldRevokeReason, v))
}

// RevokeReasonNEQ applies the NEQ predicate on the "revoke_reason" field.
func RevokeReasonNEQ(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldNEQ(FieldRevokeReason, v))
}

// RevokeReasonIn applies the In predicate on the "revoke_reason" field.
func RevokeReasonIn(vs ...string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldIn(FieldRevokeReason, vs...))
}

// RevokeReasonNotIn applies the NotIn predicate on the "revoke_reason" field.
func RevokeReasonNotIn(vs ...string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldNotIn(FieldRevokeReason, vs...))
}

// RevokeReasonGT applies the GT predicate on the "revoke_reason" field.
func RevokeReasonGT(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldGT(FieldRevokeReason, v))
}

// RevokeReasonGTE applies the GTE predicate on the "revoke_reason" field.
func RevokeReasonGTE(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldGTE(FieldRevokeReason, v))
}

// RevokeReasonLT applies the LT predicate on the "revoke_reason" field.
func RevokeReasonLT(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldLT(FieldRevokeReason, v))
}

// RevokeReasonLTE applies the LTE predicate on the "revoke_reason" field.
func RevokeReasonLTE(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldLTE(FieldRevokeReason, v))
}

// RevokeReasonContains applies the Contains predicate on the "revoke_reason" field.
func RevokeReasonContains(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldContains(FieldRevokeReason, v))
}

// RevokeReasonHasPrefix applies the HasPrefix predicate on the "revoke_reason" field.
func RevokeReasonHasPrefix(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldHasPrefix(FieldRevokeReason, v))
}

// RevokeReasonHasSuffix applies the HasSuffix predicate on the "revoke_reason" field.
func RevokeReasonHasSuffix(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldHasSuffix(FieldRevokeReason, v))
}

// RevokeReasonIsNil applies the IsNil predicate on the "revoke_reason" field.
func RevokeReasonIsNil() predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldIsNull(FieldRevokeReason))
}

// RevokeReasonNotNil applies the NotNil predicate on the "revoke_reason" field.
func RevokeReasonNotNil() predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldNotNull(FieldRevokeReason))
}

// RevokeReasonEqualFold applies the EqualFold predicate on the "revoke_reason" field.
func RevokeReasonEqualFold(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldEqualFold(FieldRevokeReason, v))
}

// RevokeReasonContainsFold applies the ContainsFold predicate on the "revoke_reason" field.
func RevokeReasonContainsFold(v string) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldContainsFold(FieldRevokeReason, v))
}

// CreatedAtMsEQ applies the EQ predicate on the "created_at_ms" field.
func CreatedAtMsEQ(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldEQ(FieldCreatedAtMs, v))
}

// CreatedAtMsNEQ applies the NEQ predicate on the "created_at_ms" field.
func CreatedAtMsNEQ(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldNEQ(FieldCreatedAtMs, v))
}

// CreatedAtMsIn applies the In predicate on the "created_at_ms" field.
func CreatedAtMsIn(vs ...int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldIn(FieldCreatedAtMs, vs...))
}

// CreatedAtMsNotIn applies the NotIn predicate on the "created_at_ms" field.
func CreatedAtMsNotIn(vs ...int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldNotIn(FieldCreatedAtMs, vs...))
}

// CreatedAtMsGT applies the GT predicate on the "created_at_ms" field.
func CreatedAtMsGT(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldGT(FieldCreatedAtMs, v))
}

// CreatedAtMsGTE applies the GTE predicate on the "created_at_ms" field.
func CreatedAtMsGTE(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldGTE(FieldCreatedAtMs, v))
}

// CreatedAtMsLT applies the LT predicate on the "created_at_ms" field.
func CreatedAtMsLT(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldLT(FieldCreatedAtMs, v))
}

// CreatedAtMsLTE applies the LTE predicate on the "created_at_ms" field.
func CreatedAtMsLTE(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldLTE(FieldCreatedAtMs, v))
}

// UpdatedAtMsEQ applies the EQ predicate on the "updated_at_ms" field.
func UpdatedAtMsEQ(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldEQ(FieldUpdatedAtMs, v))
}

// UpdatedAtMsNEQ applies the NEQ predicate on the "updated_at_ms" field.
func UpdatedAtMsNEQ(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldNEQ(FieldUpdatedAtMs, v))
}

// UpdatedAtMsIn applies the In predicate on the "updated_at_ms" field.
func UpdatedAtMsIn(vs ...int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldIn(FieldUpdatedAtMs, vs...))
}

// UpdatedAtMsNotIn applies the NotIn predicate on the "updated_at_ms" field.
func UpdatedAtMsNotIn(vs ...int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldNotIn(FieldUpdatedAtMs, vs...))
}

// UpdatedAtMsGT applies the GT predicate on the "updated_at_ms" field.
func UpdatedAtMsGT(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldGT(FieldUpdatedAtMs, v))
}

// UpdatedAtMsGTE applies the GTE predicate on the "updated_at_ms" field.
func UpdatedAtMsGTE(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldGTE(FieldUpdatedAtMs, v))
}

// UpdatedAtMsLT applies the LT predicate on the "updated_at_ms" field.
func UpdatedAtMsLT(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldLT(FieldUpdatedAtMs, v))
}

// UpdatedAtMsLTE applies the LTE predicate on the "updated_at_ms" field.
func UpdatedAtMsLTE(v int64) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.FieldLTE(FieldUpdatedAtMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DeviceBinding) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DeviceBinding) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DeviceBinding) predicate.DeviceBinding {
	return predicate.DeviceBinding(sql.NotPredicates(p))
}
