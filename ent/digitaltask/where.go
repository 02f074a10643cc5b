// Code generated by ent, DO NOT EDIT.

package digitaltask

import (
	"entgo.io/ent/dialect/sql"
	"github.com/opencane/edged/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEQ(FieldSessionID, v))
}

// DeviceID applies equality check predicate on the "device_id" field. It's identical to DeviceIDEQ.
func DeviceID(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEQ(FieldDeviceID, v))
}

// Goal applies equality check predicate on the "goal" field. It's identical to GoalEQ.
func Goal(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEQ(FieldGoal, v))
}

// Result applies equality check predicate on the "result" field. It's identical to ResultEQ.
func Result(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEQ(FieldResult, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEQ(FieldErrorMessage, v))
}

// TimeoutSeconds applies equality check predicate on the "timeout_seconds" field. It's identical to TimeoutSecondsEQ.
func TimeoutSeconds(v int) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEQ(FieldTimeoutSeconds, v))
}

// CreatedAtMs applies equality check predicate on the "created_at_ms" field. It's identical to CreatedAtMsEQ.
func CreatedAtMs(v int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEQ(FieldCreatedAtMs, v))
}

// UpdatedAtMs applies equality check predicate on the "updated_at_ms" field. It's identical to UpdatedAtMsEQ.
func UpdatedAtMs(v int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEQ(FieldUpdatedAtMs, v))
}

// CompletedAtMs applies equality check predicate on the "completed_at_ms" field. It's identical to CompletedAtMsEQ.
func CompletedAtMs(v int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEQ(FieldCompletedAtMs, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldContainsFold(FieldSessionID, v))
}

// DeviceIDEQ applies the EQ predicate on the "device_id" field.
func DeviceIDEQ(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEQ(FieldDeviceID, v))
}

// DeviceIDNEQ applies the NEQ predicate on the "device_id" field.
func DeviceIDNEQ(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNEQ(FieldDeviceID, v))
}

// DeviceIDIn applies the In predicate on the "device_id" field.
func DeviceIDIn(vs ...string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldIn(FieldDeviceID, vs...))
}

// DeviceIDNotIn applies the NotIn predicate on the "device_id" field.
func DeviceIDNotIn(vs ...string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNotIn(FieldDeviceID, vs...))
}

// DeviceIDGT applies the GT predicate on the "device_id" field.
func DeviceIDGT(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldGT(FieldDeviceID, v))
}

// DeviceIDGTE applies the GTE predicate on the "device_id" field.
func DeviceIDGTE(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldGTE(FieldDeviceID, v))
}

// DeviceIDLT applies the LT predicate on the "device_id" field.
func DeviceIDLT(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldLT(FieldDeviceID, v))
}

// DeviceIDLTE applies the LTE predicate on the "device_id" field.
func DeviceIDLTE(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldLTE(FieldDeviceID, v))
}

// DeviceIDContains applies the Contains predicate on the "device_id" field.
func DeviceIDContains(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldContains(FieldDeviceID, v))
}

// DeviceIDHasPrefix applies the HasPrefix predicate on the "device_id" field.
func DeviceIDHasPrefix(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldHasPrefix(FieldDeviceID, v))
}

// DeviceIDHasSuffix applies the HasSuffix predicate on the "device_id" field.
func DeviceIDHasSuffix(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldHasSuffix(FieldDeviceID, v))
}

// DeviceIDIsNil applies the IsNil predicate on the "device_id" field.
func DeviceIDIsNil() predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldIsNull(FieldDeviceID))
}

// DeviceIDNotNil applies the NotNil predicate on the "device_id" field.
func DeviceIDNotNil() predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNotNull(FieldDeviceID))
}

// DeviceIDEqualFold applies the EqualFold predicate on the "device_id" field.
func DeviceIDEqualFold(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEqualFold(FieldDeviceID, v))
}

// DeviceIDContainsFold applies the ContainsFold predicate on the "device_id" field.
func DeviceIDContainsFold(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldContainsFold(FieldDeviceID, v))
}

// GoalEQ applies the EQ predicate on the "goal" field.
func GoalEQ(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEQ(FieldGoal, v))
}

// GoalNEQ applies the NEQ predicate on the "goal" field.
func GoalNEQ(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNEQ(FieldGoal, v))
}

// GoalIn applies the In predicate on the "goal" field.
func GoalIn(vs ...string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldIn(FieldGoal, vs...))
}

// GoalNotIn applies the NotIn predicate on the "goal" field.
func GoalNotIn(vs ...string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNotIn(FieldGoal, vs...))
}

// GoalGT applies the GT predicate on the "goal" field.
func GoalGT(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldGT(FieldGoal, v))
}

// GoalGTE applies the GTE predicate on the "goal" field.
func GoalGTE(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldGTE(FieldGoal, v))
}

// GoalLT applies the LT predicate on the "goal" field.
func GoalLT(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldLT(FieldGoal, v))
}

// GoalLTE applies the LTE predicate on the "goal" field.
func GoalLTE(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldLTE(FieldGoal, v))
}

// GoalContains applies the Contains predicate on the "goal" field.
func GoalContains(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldContains(FieldGoal, v))
}

// GoalHasPrefix applies the HasPrefix predicate on the "goal" field.
func GoalHasPrefix(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldHasPrefix(FieldGoal, v))
}

// GoalHasSuffix applies the HasSuffix predicate on the "goal" field.
func GoalHasSuffix(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldHasSuffix(FieldGoal, v))
}

// GoalEqualFold applies the EqualFold predicate on the "goal" field.
func GoalEqualFold(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEqualFold(FieldGoal, v))
}

// GoalContainsFold applies the ContainsFold predicate on the "goal" field.
func GoalContainsFold(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldContainsFold(FieldGoal, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNotIn(FieldStatus, vs...))
}

// StepsIsNil applies the IsNil predicate on the "steps" field.
func StepsIsNil() predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldIsNull(FieldSteps))
}

// StepsNotNil applies the NotNil predicate on the "steps" field.
func StepsNotNil() predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNotNull(FieldSteps))
}

// ResultEQ applies the EQ predicate on the "result" field.
func ResultEQ(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEQ(FieldResult, v))
}

// ResultNEQ applies the NEQ predicate on the "result" field.
func ResultNEQ(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNEQ(FieldResult, v))
}

// ResultIn applies the In predicate on the "result" field.
func ResultIn(vs ...string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldIn(FieldResult, vs...))
}

// ResultNotIn applies the NotIn predicate on the "result" field.
func ResultNotIn(vs ...string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNotIn(FieldResult, vs...))
}

// ResultGT applies the GT predicate on the "result" field.
func ResultGT(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldGT(FieldResult, v))
}

// ResultGTE applies the GTE predicate on the "result" field.
func ResultGTE(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldGTE(FieldResult, v))
}

// ResultLT applies the LT predicate on the "result" field.
func ResultLT(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldLT(FieldResult, v))
}

// ResultLTE applies the LTE predicate on the "result" field.
func ResultLTE(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldLTE(FieldResult, v))
}

// ResultContains applies the Contains predicate on the "result" field.
func ResultContains(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldContains(FieldResult, v))
}

// ResultHasPrefix applies the HasPrefix predicate on the "result" field.
func ResultHasPrefix(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldHasPrefix(FieldResult, v))
}

// ResultHasSuffix applies the HasSuffix predicate on the "result" field.
func ResultHasSuffix(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldHasSuffix(FieldResult, v))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNotNull(FieldResult))
}

// ResultEqualFold applies the EqualFold predicate on the "result" field.
func ResultEqualFold(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEqualFold(FieldResult, v))
}

// ResultContainsFold applies the ContainsFold predicate on the "result" field.
func ResultContainsFold(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldContainsFold(FieldResult, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldContainsFold(FieldErrorMessage, v))
}

// TimeoutSecondsEQ applies the EQ predicate on the "timeout_seconds" field.
func TimeoutSecondsEQ(v int) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEQ(FieldTimeoutSeconds, v))
}

// TimeoutSecondsNEQ applies the NEQ predicate on the "timeout_seconds" field.
func TimeoutSecondsNEQ(v int) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNEQ(FieldTimeoutSeconds, v))
}

// TimeoutSecondsIn applies the In predicate on the "timeout_seconds" field.
func TimeoutSecondsIn(vs ...int) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldIn(FieldTimeoutSeconds, vs...))
}

// TimeoutSecondsNotIn applies the NotIn predicate on the "timeout_seconds" field.
func TimeoutSecondsNotIn(vs ...int) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNotIn(FieldTimeoutSeconds, vs...))
}

// TimeoutSecondsGT applies the GT predicate on the "timeout_seconds" field.
func TimeoutSecondsGT(v int) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldGT(FieldTimeoutSeconds, v))
}

// TimeoutSecondsGTE applies the GTE predicate on the "timeout_seconds" field.
func TimeoutSecondsGTE(v int) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldGTE(FieldTimeoutSeconds, v))
}

// TimeoutSecondsLT applies the LT predicate on the "timeout_seconds" field.
func TimeoutSecondsLT(v int) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldLT(FieldTimeoutSeconds, v))
}

// TimeoutSecondsLTE applies the LTE predicate on the "timeout_seconds" field.
func TimeoutSecondsLTE(v int) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldLTE(FieldTimeoutSeconds, v))
}

// PushContextIsNil applies the IsNil predicate on the "push_context" field.
func PushContextIsNil() predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldIsNull(FieldPushContext))
}

// PushContextNotNil applies the NotNil predicate on the "push_context" field.
func PushContextNotNil() predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNotNull(FieldPushContext))
}

// CreatedAtMsEQ applies the EQ predicate on the "created_at_ms" field.
func CreatedAtMsEQ(v int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEQ(FieldCreatedAtMs, v))
}

// CreatedAtMsNEQ applies the NEQ predicate on the "created_at_ms" field.
func CreatedAtMsNEQ(v int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNEQ(FieldCreatedAtMs, v))
}

// CreatedAtMsIn applies the In predicate on the "created_at_ms" field.
func CreatedAtMsIn(vs ...int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldIn(FieldCreatedAtMs, vs...))
}

// CreatedAtMsNotIn applies the NotIn predicate on the "created_at_ms" field.
func CreatedAtMsNotIn(vs ...int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNotIn(FieldCreatedAtMs, vs...))
}

// CreatedAtMsGT applies the GT predicate on the "created_at_ms" field.
func CreatedAtMsGT(v int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldGT(FieldCreatedAtMs, v))
}

// CreatedAtMsGTE applies the GTE predicate on the "created_at_ms" field.
func CreatedAtMsGTE(v int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldGTE(FieldCreatedAtMs, v))
}

// CreatedAtMsLT applies the LT predicate on the "created_at_ms" field.
func CreatedAtMsLT(v int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldLT(FieldCreatedAtMs, v))
}

// CreatedAtMsLTE applies the LTE predicate on the "created_at_ms" field.
func CreatedAtMsLTE(v int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldLTE(FieldCreatedAtMs, v))
}

// UpdatedAtMsEQ applies the EQ predicate on the "updated_at_ms" field.
func UpdatedAtMsEQ(v int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEQ(FieldUpdatedAtMs, v))
}

// UpdatedAtMsNEQ applies the NEQ predicate on the "updated_at_ms" field.
func UpdatedAtMsNEQ(v int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNEQ(FieldUpdatedAtMs, v))
}

// UpdatedAtMsIn applies the In predicate on the "updated_at_ms" field.
func UpdatedAtMsIn(vs ...int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldIn(FieldUpdatedAtMs, vs...))
}

// UpdatedAtMsNotIn applies the NotIn predicate on the "updated_at_ms" field.
func UpdatedAtMsNotIn(vs ...int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNotIn(FieldUpdatedAtMs, vs...))
}

// UpdatedAtMsGT applies the GT predicate on the "updated_at_ms" field.
func UpdatedAtMsGT(v int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldGT(FieldUpdatedAtMs, v))
}

// UpdatedAtMsGTE applies the GTE predicate on the "updated_at_ms" field.
func UpdatedAtMsGTE(v int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldGTE(FieldUpdatedAtMs, v))
}

// UpdatedAtMsLT applies the LT predicate on the "updated_at_ms" field.
func UpdatedAtMsLT(v int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldLT(FieldUpdatedAtMs, v))
}

// UpdatedAtMsLTE applies the LTE predicate on the "updated_at_ms" field.
func UpdatedAtMsLTE(v int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldLTE(FieldUpdatedAtMs, v))
}

// CompletedAtMsEQ applies the EQ predicate on the "completed_at_ms" field.
func CompletedAtMsEQ(v int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldEQ(FieldCompletedAtMs, v))
}

// CompletedAtMsNEQ applies the NEQ predicate on the "completed_at_ms" field.
func CompletedAtMsNEQ(v int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNEQ(FieldCompletedAtMs, v))
}

// CompletedAtMsIn applies the In predicate on the "completed_at_ms" field.
func CompletedAtMsIn(vs ...int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldIn(FieldCompletedAtMs, vs...))
}

// CompletedAtMsNotIn applies the NotIn predicate on the "completed_at_ms" field.
func CompletedAtMsNotIn(vs ...int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNotIn(FieldCompletedAtMs, vs...))
}

// CompletedAtMsGT applies the GT predicate on the "completed_at_ms" field.
func CompletedAtMsGT(v int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldGT(FieldCompletedAtMs, v))
}

// CompletedAtMsGTE applies the GTE predicate on the "completed_at_ms" field.
func CompletedAtMsGTE(v int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldGTE(FieldCompletedAtMs, v))
}

// CompletedAtMsLT applies the LT predicate on the "completed_at_ms" field.
func CompletedAtMsLT(v int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldLT(FieldCompletedAtMs, v))
}

// CompletedAtMsLTE applies the LTE predicate on the "completed_at_ms" field.
func CompletedAtMsLTE(v int64) predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldLTE(FieldCompletedAtMs, v))
}

// CompletedAtMsIsNil applies the IsNil predicate on the "completed_at_ms" field.
func CompletedAtMsIsNil() predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldIsNull(FieldCompletedAtMs))
}

// CompletedAtMsNotNil applies the NotNil predicate on the "completed_at_ms" field.
func CompletedAtMsNotNil() predicate.DigitalTask {
	return predicate.DigitalTask(sql.FieldNotNull(FieldCompletedAtMs))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DigitalTask) predicate.DigitalTask {
	return predicate.DigitalTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DigitalTask) predicate.DigitalTask {
	return predicate.DigitalTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DigitalTask) predicate.DigitalTask {
	return predicate.DigitalTask(sql.NotPredicates(p))
}
