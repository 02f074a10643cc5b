// Code generated by ent, DO NOT EDIT.

package deviceoperation

import (
	"entgo.io/ent/dialect/sql"
	"github.com/opencane/edged/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldContainsFold(FieldID, id))
}

// DeviceID applies equality check predicate on the "device_id" field. It's identical to DeviceIDEQ.
func DeviceID(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldEQ(FieldDeviceID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldEQ(FieldSessionID, v))
}

// OpType applies equality check predicate on the "op_type" field. It's identical to OpTypeEQ.
func OpType(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldEQ(FieldOpType, v))
}

// CommandType applies equality check predicate on the "command_type" field. It's identical to CommandTypeEQ.
func CommandType(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldEQ(FieldCommandType, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAtMs applies equality check predicate on the "created_at_ms" field. It's identical to CreatedAtMsEQ.
func CreatedAtMs(v int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldEQ(FieldCreatedAtMs, v))
}

// SentAtMs applies equality check predicate on the "sent_at_ms" field. It's identical to SentAtMsEQ.
func SentAtMs(v int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldEQ(FieldSentAtMs, v))
}

// AckedAtMs applies equality check predicate on the "acked_at_ms" field. It's identical to AckedAtMsEQ.
func AckedAtMs(v int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldEQ(FieldAckedAtMs, v))
}

// DeviceIDEQ applies the EQ predicate on the "device_id" field.
func DeviceIDEQ(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldEQ(FieldDeviceID, v))
}

// DeviceIDNEQ applies the NEQ predicate on the "device_id" field.
func DeviceIDNEQ(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldNEQ(FieldDeviceID, v))
}

// DeviceIDIn applies the In predicate on the "device_id" field.
func DeviceIDIn(vs ...string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldIn(FieldDeviceID, vs...))
}

// DeviceIDNotIn applies the NotIn predicate on the "device_id" field.
func DeviceIDNotIn(vs ...string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldNotIn(FieldDeviceID, vs...))
}

// DeviceIDGT applies the GT predicate on the "device_id" field.
func DeviceIDGT(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldGT(FieldDeviceID, v))
}

// DeviceIDGTE applies the GTE predicate on the "device_id" field.
func DeviceIDGTE(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldGTE(FieldDeviceID, v))
}

// DeviceIDLT applies the LT predicate on the "device_id" field.
func DeviceIDLT(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldLT(FieldDeviceID, v))
}

// DeviceIDLTE applies the LTE predicate on the "device_id" field.
func DeviceIDLTE(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldLTE(FieldDeviceID, v))
}

// DeviceIDContains applies the Contains predicate on the "device_id" field.
func DeviceIDContains(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldContains(FieldDeviceID, v))
}

// DeviceIDHasPrefix applies the HasPrefix predicate on the "device_id" field.
func DeviceIDHasPrefix(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldHasPrefix(FieldDeviceID, v))
}

// DeviceIDHasSuffix applies the HasSuffix predicate on the "device_id" field.
func DeviceIDHasSuffix(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldHasSuffix(FieldDeviceID, v))
}

// DeviceIDEqualFold applies the EqualFold predicate on the "device_id" field.
func DeviceIDEqualFold(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldEqualFold(FieldDeviceID, v))
}

// DeviceIDContainsFold applies the ContainsFold predicate on the "device_id" field.
func DeviceIDContainsFold(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldContainsFold(FieldDeviceID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldContainsFold(FieldSessionID, v))
}

// OpTypeEQ applies the EQ predicate on the "op_type" field.
func OpTypeEQ(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldEQ(FieldOpType, v))
}

// OpTypeNEQ applies the NEQ predicate on the "op_type" field.
func OpTypeNEQ(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldNEQ(FieldOpType, v))
}

// OpTypeIn applies the In predicate on the "op_type" field.
func OpTypeIn(vs ...string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldIn(FieldOpType, vs...))
}

// OpTypeNotIn applies the NotIn predicate on the "op_type" field.
func OpTypeNotIn(vs ...string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldNotIn(FieldOpType, vs...))
}

// OpTypeGT applies the GT predicate on the "op_type" field.
func OpTypeGT(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldGT(FieldOpType, v))
}

// OpTypeGTE applies the GTE predicate on the "op_type" field.
func OpTypeGTE(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldGTE(FieldOpType, v))
}

// OpTypeLT applies the LT predicate on the "op_type" field.
func OpTypeLT(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldLT(FieldOpType, v))
}

// OpTypeLTE applies the LTE predicate on the "op_type" field.
func OpTypeLTE(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldLTE(FieldOpType, v))
}

// OpTypeContains applies the Contains predicate on the "op_type" field.
func OpTypeContains(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldContains(FieldOpType, v))
}

// OpTypeHasPrefix applies the HasPrefix predicate on the "op_type" field.
func OpTypeHasPrefix(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldHasPrefix(FieldOpType, v))
}

// OpTypeHasSuffix applies the HasSuffix predicate on the "op_type" field.
func OpTypeHasSuffix(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldHasSuffix(FieldOpType, v))
}

// OpTypeEqualFold applies the EqualFold predicate on the "op_type" field.
func OpTypeEqualFold(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldEqualFold(FieldOpType, v))
}

// OpTypeContainsFold applies the ContainsFold predicate on the "op_type" field.
func OpTypeContainsFold(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldContainsFold(FieldOpType, v))
}

// CommandTypeEQ applies the EQ predicate on the "command_type" field.
func CommandTypeEQ(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldEQ(FieldCommandType, v))
}

// CommandTypeNEQ applies the NEQ predicate on the "command_type" field.
func CommandTypeNEQ(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldNEQ(FieldCommandType, v))
}

// CommandTypeIn applies the In predicate on the "command_type" field.
func CommandTypeIn(vs ...string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldIn(FieldCommandType, vs...))
}

// CommandTypeNotIn applies the NotIn predicate on the "command_type" field.
func CommandTypeNotIn(vs ...string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldNotIn(FieldCommandType, vs...))
}

// CommandTypeGT applies the GT predicate on the "command_type" field.
func CommandTypeGT(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldGT(FieldCommandType, v))
}

// CommandTypeGTE applies the GTE predicate on the "command_type" field.
func CommandTypeGTE(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldGTE(FieldCommandType, v))
}

// CommandTypeLT applies the LT predicate on the "command_type" field.
func CommandTypeLT(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldLT(FieldCommandType, v))
}

// CommandTypeLTE applies the LTE predicate on the "command_type" field.
func CommandTypeLTE(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldLTE(FieldCommandType, v))
}

// CommandTypeContains applies the Contains predicate on the "command_type" field.
func CommandTypeContains(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldContains(FieldCommandType, v))
}

// CommandTypeHasPrefix applies the HasPrefix predicate on the "command_type" field.
func CommandTypeHasPrefix(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldHasPrefix(FieldCommandType, v))
}

// CommandTypeHasSuffix applies the HasSuffix predicate on the "command_type" field.
func CommandTypeHasSuffix(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldHasSuffix(FieldCommandType, v))
}

// CommandTypeEqualFold applies the EqualFold predicate on the "command_type" field.
func CommandTypeEqualFold(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldEqualFold(FieldCommandType, v))
}

// CommandTypeContainsFold applies the ContainsFold predicate on the "command_type" field.
func CommandTypeContainsFold(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldContainsFold(FieldCommandType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldNotIn(FieldStatus, vs...))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldNotNull(FieldPayload))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldNotNull(FieldResult))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtMsEQ applies the EQ predicate on the "created_at_ms" field.
func CreatedAtMsEQ(v int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldEQ(FieldCreatedAtMs, v))
}

// CreatedAtMsNEQ applies the NEQ predicate on the "created_at_ms" field.
func CreatedAtMsNEQ(v int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldNEQ(FieldCreatedAtMs, v))
}

// CreatedAtMsIn applies the In predicate on the "created_at_ms" field.
func CreatedAtMsIn(vs ...int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldIn(FieldCreatedAtMs, vs...))
}

// CreatedAtMsNotIn applies the NotIn predicate on the "created_at_ms" field.
func CreatedAtMsNotIn(vs ...int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldNotIn(FieldCreatedAtMs, vs...))
}

// CreatedAtMsGT applies the GT predicate on the "created_at_ms" field.
func CreatedAtMsGT(v int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldGT(FieldCreatedAtMs, v))
}

// CreatedAtMsGTE applies the GTE predicate on the "created_at_ms" field.
func CreatedAtMsGTE(v int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldGTE(FieldCreatedAtMs, v))
}

// CreatedAtMsLT applies the LT predicate on the "created_at_ms" field.
func CreatedAtMsLT(v int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldLT(FieldCreatedAtMs, v))
}

// CreatedAtMsLTE applies the LTE predicate on the "created_at_ms" field.
func CreatedAtMsLTE(v int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldLTE(FieldCreatedAtMs, v))
}

// SentAtMsEQ applies the EQ predicate on the "sent_at_ms" field.
func SentAtMsEQ(v int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldEQ(FieldSentAtMs, v))
}

// SentAtMsNEQ applies the NEQ predicate on the "sent_at_ms" field.
func SentAtMsNEQ(v int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldNEQ(FieldSentAtMs, v))
}

// SentAtMsIn applies the In predicate on the "sent_at_ms" field.
func SentAtMsIn(vs ...int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldIn(FieldSentAtMs, vs...))
}

// SentAtMsNotIn applies the NotIn predicate on the "sent_at_ms" field.
func SentAtMsNotIn(vs ...int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldNotIn(FieldSentAtMs, vs...))
}

// SentAtMsGT applies the GT predicate on the "sent_at_ms" field.
func SentAtMsGT(v int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldGT(FieldSentAtMs, v))
}

// SentAtMsGTE applies the GTE predicate on the "sent_at_ms" field.
func SentAtMsGTE(v int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldGTE(FieldSentAtMs, v))
}

// SentAtMsLT applies the LT predicate on the "sent_at_ms" field.
func SentAtMsLT(v int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldLT(FieldSentAtMs, v))
}

// SentAtMsLTE applies the LTE predicate on the "sent_at_ms" field.
func SentAtMsLTE(v int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldLTE(FieldSentAtMs, v))
}

// SentAtMsIsNil applies the IsNil predicate on the "sent_at_ms" field.
func SentAtMsIsNil() predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldIsNull(FieldSentAtMs))
}

// SentAtMsNotNil applies the NotNil predicate on the "sent_at_ms" field.
func SentAtMsNotNil() predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldNotNull(FieldSentAtMs))
}

// AckedAtMsEQ applies the EQ predicate on the "acked_at_ms" field.
func AckedAtMsEQ(v int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldEQ(FieldAckedAtMs, v))
}

// AckedAtMsNEQ applies the NEQ predicate on the "acked_at_ms" field.
func AckedAtMsNEQ(v int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldNEQ(FieldAckedAtMs, v))
}

// AckedAtMsIn applies the In predicate on the "acked_at_ms" field.
func AckedAtMsIn(vs ...int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldIn(FieldAckedAtMs, vs...))
}

// AckedAtMsNotIn applies the NotIn predicate on the "acked_at_ms" field.
func AckedAtMsNotIn(vs ...int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldNotIn(FieldAckedAtMs, vs...))
}

// AckedAtMsGT applies the GT predicate on the "acked_at_ms" field.
func AckedAtMsGT(v int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldGT(FieldAckedAtMs, v))
}

// AckedAtMsGTE applies the GTE predicate on the "acked_at_ms" field.
func AckedAtMsGTE(v int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldGTE(FieldAckedAtMs, v))
}

// AckedAtMsLT applies the LT predicate on the "acked_at_ms" field.
func AckedAtMsLT(v int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldLT(FieldAckedAtMs, v))
}

// AckedAtMsLTE applies the LTE predicate on the "acked_at_ms" field.
func AckedAtMsLTE(v int64) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldLTE(FieldAckedAtMs, v))
}

// AckedAtMsIsNil applies the IsNil predicate on the "acked_at_ms" field.
func AckedAtMsIsNil() predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldIsNull(FieldAckedAtMs))
}

// AckedAtMsNotNil applies the NotNil predicate on the "acked_at_ms" field.
func AckedAtMsNotNil() predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.FieldNotNull(FieldAckedAtMs))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DeviceOperation) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DeviceOperation) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DeviceOperation) predicate.DeviceOperation {
	return predicate.DeviceOperation(sql.NotPredicates(p))
}
