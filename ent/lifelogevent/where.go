// Code generated by ent, DO NOT EDIT.

package lifelogevent

import (
	"entgo.io/ent/dialect/sql"
	"github.com/opencane/edged/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldEQ(FieldSessionID, v))
}

// DeviceID applies equality check predicate on the "device_id" field. It's identical to DeviceIDEQ.
func DeviceID(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldEQ(FieldDeviceID, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldEQ(FieldEventType, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldEQ(FieldText, v))
}

// RiskLevel applies equality check predicate on the "risk_level" field. It's identical to RiskLevelEQ.
func RiskLevel(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldEQ(FieldRiskLevel, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldEQ(FieldConfidence, v))
}

// TsMs applies equality check predicate on the "ts_ms" field. It's identical to TsMsEQ.
func TsMs(v int64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldEQ(FieldTsMs, v))
}

// CreatedAtMs applies equality check predicate on the "created_at_ms" field. It's identical to CreatedAtMsEQ.
func CreatedAtMs(v int64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldEQ(FieldCreatedAtMs, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// DeviceIDEQ applies the EQ predicate on the "device_id" field.
func DeviceIDEQ(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldEQ(FieldDeviceID, v))
}

// DeviceIDNEQ applies the NEQ predicate on the "device_id" field.
func DeviceIDNEQ(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldNEQ(FieldDeviceID, v))
}

// DeviceIDIn applies the In predicate on the "device_id" field.
func DeviceIDIn(vs ...string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldIn(FieldDeviceID, vs...))
}

// DeviceIDNotIn applies the NotIn predicate on the "device_id" field.
func DeviceIDNotIn(vs ...string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldNotIn(FieldDeviceID, vs...))
}

// DeviceIDGT applies the GT predicate on the "device_id" field.
func DeviceIDGT(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldGT(FieldDeviceID, v))
}

// DeviceIDGTE applies the GTE predicate on the "device_id" field.
func DeviceIDGTE(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldGTE(FieldDeviceID, v))
}

// DeviceIDLT applies the LT predicate on the "device_id" field.
func DeviceIDLT(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldLT(FieldDeviceID, v))
}

// DeviceIDLTE applies the LTE predicate on the "device_id" field.
func DeviceIDLTE(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldLTE(FieldDeviceID, v))
}

// DeviceIDContains applies the Contains predicate on the "device_id" field.
func DeviceIDContains(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldContains(FieldDeviceID, v))
}

// DeviceIDHasPrefix applies the HasPrefix predicate on the "device_id" field.
func DeviceIDHasPrefix(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldHasPrefix(FieldDeviceID, v))
}

// DeviceIDHasSuffix applies the HasSuffix predicate on the "device_id" field.
func DeviceIDHasSuffix(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldHasSuffix(FieldDeviceID, v))
}

// DeviceIDIsNil applies the IsNil predicate on the "device_id" field.
func DeviceIDIsNil() predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldIsNull(FieldDeviceID))
}

// DeviceIDNotNil applies the NotNil predicate on the "device_id" field.
func DeviceIDNotNil() predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldNotNull(FieldDeviceID))
}

// DeviceIDEqualFold applies the EqualFold predicate on the "device_id" field.
func DeviceIDEqualFold(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldEqualFold(FieldDeviceID, v))
}

// DeviceIDContainsFold applies the ContainsFold predicate on the "device_id" field.
func DeviceIDContainsFold(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldContainsFold(FieldDeviceID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldContainsFold(FieldEventType, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldNotNull(FieldPayload))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldHasSuffix(FieldText, v))
}

// TextIsNil applies the IsNil predicate on the "text" field.
func TextIsNil() predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldIsNull(FieldText))
}

// TextNotNil applies the NotNil predicate on the "text" field.
func TextNotNil() predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldNotNull(FieldText))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldContainsFold(FieldText, v))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// RiskLevelGT applies the GT predicate on the "risk_level" field.
func RiskLevelGT(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldGT(FieldRiskLevel, v))
}

// RiskLevelGTE applies the GTE predicate on the "risk_level" field.
func RiskLevelGTE(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldGTE(FieldRiskLevel, v))
}

// RiskLevelLT applies the LT predicate on the "risk_level" field.
func RiskLevelLT(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldLT(FieldRiskLevel, v))
}

// RiskLevelLTE applies the LTE predicate on the "risk_level" field.
func RiskLevelLTE(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldLTE(FieldRiskLevel, v))
}

// RiskLevelContains applies the Contains predicate on the "risk_level" field.
func RiskLevelContains(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldContains(FieldRiskLevel, v))
}

// RiskLevelHasPrefix applies the HasPrefix predicate on the "risk_level" field.
func RiskLevelHasPrefix(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldHasPrefix(FieldRiskLevel, v))
}

// RiskLevelHasSuffix applies the HasSuffix predicate on the "risk_level" field.
func RiskLevelHasSuffix(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldHasSuffix(FieldRiskLevel, v))
}

// RiskLevelIsNil applies the IsNil predicate on the "risk_level" field.
func RiskLevelIsNil() predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldIsNull(FieldRiskLevel))
}

// RiskLevelNotNil applies the NotNil predicate on the "risk_level" field.
func RiskLevelNotNil() predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldNotNull(FieldRiskLevel))
}

// RiskLevelEqualFold applies the EqualFold predicate on the "risk_level" field.
func RiskLevelEqualFold(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldEqualFold(FieldRiskLevel, v))
}

// RiskLevelContainsFold applies the ContainsFold predicate on the "risk_level" field.
func RiskLevelContainsFold(v string) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldContainsFold(FieldRiskLevel, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldLTE(FieldConfidence, v))
}

// TsMsEQ applies the EQ predicate on the "ts_ms" field.
func TsMsEQ(v int64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldEQ(FieldTsMs, v))
}

// TsMsNEQ applies the NEQ predicate on the "ts_ms" field.
func TsMsNEQ(v int64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldNEQ(FieldTsMs, v))
}

// TsMsIn applies the In predicate on the "ts_ms" field.
func TsMsIn(vs ...int64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldIn(FieldTsMs, vs...))
}

// TsMsNotIn applies the NotIn predicate on the "ts_ms" field.
func TsMsNotIn(vs ...int64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldNotIn(FieldTsMs, vs...))
}

// TsMsGT applies the GT predicate on the "ts_ms" field.
func TsMsGT(v int64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldGT(FieldTsMs, v))
}

// TsMsGTE applies the GTE predicate on the "ts_ms" field.
func TsMsGTE(v int64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldGTE(FieldTsMs, v))
}

// TsMsLT applies the LT predicate on the "ts_ms" field.
func TsMsLT(v int64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldLT(FieldTsMs, v))
}

// TsMsLTE applies the LTE predicate on the "ts_ms" field.
func TsMsLTE(v int64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldLTE(FieldTsMs, v))
}

// CreatedAtMsEQ applies the EQ predicate on the "created_at_ms" field.
func CreatedAtMsEQ(v int64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldEQ(FieldCreatedAtMs, v))
}

// CreatedAtMsNEQ applies the NEQ predicate on the "created_at_ms" field.
func CreatedAtMsNEQ(v int64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldNEQ(FieldCreatedAtMs, v))
}

// CreatedAtMsIn applies the In predicate on the "created_at_ms" field.
func CreatedAtMsIn(vs ...int64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldIn(FieldCreatedAtMs, vs...))
}

// CreatedAtMsNotIn applies the NotIn predicate on the "created_at_ms" field.
func CreatedAtMsNotIn(vs ...int64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldNotIn(FieldCreatedAtMs, vs...))
}

// CreatedAtMsGT applies the GT predicate on the "created_at_ms" field.
func CreatedAtMsGT(v int64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldGT(FieldCreatedAtMs, v))
}

// CreatedAtMsGTE applies the GTE predicate on the "created_at_ms" field.
func CreatedAtMsGTE(v int64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldGTE(FieldCreatedAtMs, v))
}

// CreatedAtMsLT applies the LT predicate on the "created_at_ms" field.
func CreatedAtMsLT(v int64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldLT(FieldCreatedAtMs, v))
}

// CreatedAtMsLTE applies the LTE predicate on the "created_at_ms" field.
func CreatedAtMsLTE(v int64) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.FieldLTE(FieldCreatedAtMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LifelogEvent) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LifelogEvent) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LifelogEvent) predicate.LifelogEvent {
	return predicate.LifelogEvent(sql.NotPredicates(p))
}
