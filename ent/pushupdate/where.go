// Code generated by ent, DO NOT EDIT.

package pushupdate

import (
	"entgo.io/ent/dialect/sql"
	"github.com/opencane/edged/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldContainsFold(FieldID, id))
}

// DeviceID applies equality check predicate on the "device_id" field. It's identical to DeviceIDEQ.
func DeviceID(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldEQ(FieldDeviceID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldEQ(FieldSessionID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldEQ(FieldTaskID, v))
}

// SendKey applies equality check predicate on the "send_key" field. It's identical to SendKeyEQ.
func SendKey(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldEQ(FieldSendKey, v))
}

// CreatedAtMs applies equality check predicate on the "created_at_ms" field. It's identical to CreatedAtMsEQ.
func CreatedAtMs(v int64) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldEQ(FieldCreatedAtMs, v))
}

// SentAtMs applies equality check predicate on the "sent_at_ms" field. It's identical to SentAtMsEQ.
func SentAtMs(v int64) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldEQ(FieldSentAtMs, v))
}

// DeviceIDEQ applies the EQ predicate on the "device_id" field.
func DeviceIDEQ(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldEQ(FieldDeviceID, v))
}

// DeviceIDNEQ applies the NEQ predicate on the "device_id" field.
func DeviceIDNEQ(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldNEQ(FieldDeviceID, v))
}

// DeviceIDIn applies the In predicate on the "device_id" field.
func DeviceIDIn(vs ...string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldIn(FieldDeviceID, vs...))
}

// DeviceIDNotIn applies the NotIn predicate on the "device_id" field.
func DeviceIDNotIn(vs ...string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldNotIn(FieldDeviceID, vs...))
}

// DeviceIDGT applies the GT predicate on the "device_id" field.
func DeviceIDGT(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldGT(FieldDeviceID, v))
}

// DeviceIDGTE applies the GTE predicate on the "device_id" field.
func DeviceIDGTE(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldGTE(FieldDeviceID, v))
}

// DeviceIDLT applies the LT predicate on the "device_id" field.
func DeviceIDLT(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldLT(FieldDeviceID, v))
}

// DeviceIDLTE applies the LTE predicate on the "device_id" field.
func DeviceIDLTE(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldLTE(FieldDeviceID, v))
}

// DeviceIDContains applies the Contains predicate on the "device_id" field.
func DeviceIDContains(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldContains(FieldDeviceID, v))
}

// DeviceIDHasPrefix applies the HasPrefix predicate on the "device_id" field.
func DeviceIDHasPrefix(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldHasPrefix(FieldDeviceID, v))
}

// DeviceIDHasSuffix applies the HasSuffix predicate on the "device_id" field.
func DeviceIDHasSuffix(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldHasSuffix(FieldDeviceID, v))
}

// DeviceIDEqualFold applies the EqualFold predicate on the "device_id" field.
func DeviceIDEqualFold(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldEqualFold(FieldDeviceID, v))
}

// DeviceIDContainsFold applies the ContainsFold predicate on the "device_id" field.
func DeviceIDContainsFold(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldContainsFold(FieldDeviceID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldContainsFold(FieldSessionID, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldContainsFold(FieldTaskID, v))
}

// SendKeyEQ applies the EQ predicate on the "send_key" field.
func SendKeyEQ(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldEQ(FieldSendKey, v))
}

// SendKeyNEQ applies the NEQ predicate on the "send_key" field.
func SendKeyNEQ(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldNEQ(FieldSendKey, v))
}

// SendKeyIn applies the In predicate on the "send_key" field.
func SendKeyIn(vs ...string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldIn(FieldSendKey, vs...))
}

// SendKeyNotIn applies the NotIn predicate on the "send_key" field.
func SendKeyNotIn(vs ...string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldNotIn(FieldSendKey, vs...))
}

// SendKeyGT applies the GT predicate on the "send_key" field.
func SendKeyGT(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldGT(FieldSendKey, v))
}

// SendKeyGTE applies the GTE predicate on the "send_key" field.
func SendKeyGTE(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldGTE(FieldSendKey, v))
}

// SendKeyLT applies the LT predicate on the "send_key" field.
func SendKeyLT(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldLT(FieldSendKey, v))
}

// SendKeyLTE applies the LTE predicate on the "send_key" field.
func SendKeyLTE(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldLTE(FieldSendKey, v))
}

// SendKeyContains applies the Contains predicate on the "send_key" field.
func SendKeyContains(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldContains(FieldSendKey, v))
}

// SendKeyHasPrefix applies the HasPrefix predicate on the "send_key" field.
func SendKeyHasPrefix(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldHasPrefix(FieldSendKey, v))
}

// SendKeyHasSuffix applies the HasSuffix predicate on the "send_key" field.
func SendKeyHasSuffix(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldHasSuffix(FieldSendKey, v))
}

// SendKeyEqualFold applies the EqualFold predicate on the "send_key" field.
func SendKeyEqualFold(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldEqualFold(FieldSendKey, v))
}

// SendKeyContainsFold applies the ContainsFold predicate on the "send_key" field.
func SendKeyContainsFold(v string) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldContainsFold(FieldSendKey, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtMsEQ applies the EQ predicate on the "created_at_ms" field.
func CreatedAtMsEQ(v int64) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldEQ(FieldCreatedAtMs, v))
}

// CreatedAtMsNEQ applies the NEQ predicate on the "created_at_ms" field.
func CreatedAtMsNEQ(v int64) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldNEQ(FieldCreatedAtMs, v))
}

// CreatedAtMsIn applies the In predicate on the "created_at_ms" field.
func CreatedAtMsIn(vs ...int64) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldIn(FieldCreatedAtMs, vs...))
}

// CreatedAtMsNotIn applies the NotIn predicate on the "created_at_ms" field.
func CreatedAtMsNotIn(vs ...int64) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldNotIn(FieldCreatedAtMs, vs...))
}

// CreatedAtMsGT applies the GT predicate on the "created_at_ms" field.
func CreatedAtMsGT(v int64) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldGT(FieldCreatedAtMs, v))
}

// CreatedAtMsGTE applies the GTE predicate on the "created_at_ms" field.
func CreatedAtMsGTE(v int64) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldGTE(FieldCreatedAtMs, v))
}

// CreatedAtMsLT applies the LT predicate on the "created_at_ms" field.
func CreatedAtMsLT(v int64) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldLT(FieldCreatedAtMs, v))
}

// CreatedAtMsLTE applies the LTE predicate on the "created_at_ms" field.
func CreatedAtMsLTE(v int64) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldLTE(FieldCreatedAtMs, v))
}

// SentAtMsEQ applies the EQ predicate on the "sent_at_ms" field.
func SentAtMsEQ(v int64) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldEQ(FieldSentAtMs, v))
}

// SentAtMsNEQ applies the NEQ predicate on the "sent_at_ms" field.
func SentAtMsNEQ(v int64) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldNEQ(FieldSentAtMs, v))
}

// SentAtMsIn applies the In predicate on the "sent_at_ms" field.
func SentAtMsIn(vs ...int64) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldIn(FieldSentAtMs, vs...))
}

// SentAtMsNotIn applies the NotIn predicate on the "sent_at_ms" field.
func SentAtMsNotIn(vs ...int64) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldNotIn(FieldSentAtMs, vs...))
}

// SentAtMsGT applies the GT predicate on the "sent_at_ms" field.
func SentAtMsGT(v int64) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldGT(FieldSentAtMs, v))
}

// SentAtMsGTE applies the GTE predicate on the "sent_at_ms" field.
func SentAtMsGTE(v int64) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldGTE(FieldSentAtMs, v))
}

// SentAtMsLT applies the LT predicate on the "sent_at_ms" field.
func SentAtMsLT(v int64) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldLT(FieldSentAtMs, v))
}

// SentAtMsLTE applies the LTE predicate on the "sent_at_ms" field.
func SentAtMsLTE(v int64) predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldLTE(FieldSentAtMs, v))
}

// SentAtMsIsNil applies the IsNil predicate on the "sent_at_ms" field.
func SentAtMsIsNil() predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldIsNull(FieldSentAtMs))
}

// SentAtMsNotNil applies the NotNil predicate on the "sent_at_ms" field.
func SentAtMsNotNil() predicate.PushUpdate {
	return predicate.PushUpdate(sql.FieldNotNull(FieldSentAtMs))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PushUpdate) predicate.PushUpdate {
	return predicate.PushUpdate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PushUpdate) predicate.PushUpdate {
	return predicate.PushUpdate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PushUpdate) predicate.PushUpdate {
	return predicate.PushUpdate(sql.NotPredicates(p))
}
