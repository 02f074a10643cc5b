// Code generated by ent, DO NOT EDIT.

package devicesession

import (
	"entgo.io/ent/dialect/sql"
	"github.com/opencane/edged/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldLTE(FieldID, id))
}

// DeviceID applies equality check predicate on the "device_id" field. It's identical to DeviceIDEQ.
func DeviceID(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldEQ(FieldDeviceID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldEQ(FieldSessionID, v))
}

// CreatedAtMs applies equality check predicate on the "created_at_ms" field. It's identical to CreatedAtMsEQ.
func CreatedAtMs(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldEQ(FieldCreatedAtMs, v))
}

// LastSeenMs applies equality check predicate on the "last_seen_ms" field. It's identical to LastSeenMsEQ.
func LastSeenMs(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldEQ(FieldLastSeenMs, v))
}

// LastInboundSeq applies equality check predicate on the "last_inbound_seq" field. It's identical to LastInboundSeqEQ.
func LastInboundSeq(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldEQ(FieldLastInboundSeq, v))
}

// LastOutboundSeq applies equality check predicate on the "last_outbound_seq" field. It's identical to LastOutboundSeqEQ.
func LastOutboundSeq(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldEQ(FieldLastOutboundSeq, v))
}

// ClosedAtMs applies equality check predicate on the "closed_at_ms" field. It's identical to ClosedAtMsEQ.
func ClosedAtMs(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldEQ(FieldClosedAtMs, v))
}

// CloseReason applies equality check predicate on the "close_reason" field. It's identical to CloseReasonEQ.
func CloseReason(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldEQ(FieldCloseReason, v))
}

// UpdatedAtMs applies equality check predicate on the "updated_at_ms" field. It's identical to UpdatedAtMsEQ.
func UpdatedAtMs(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldEQ(FieldUpdatedAtMs, v))
}

// DeviceIDEQ applies the EQ predicate on the "device_id" field.
func DeviceIDEQ(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldEQ(FieldDeviceID, v))
}

// DeviceIDNEQ applies the NEQ predicate on the "device_id" field.
func DeviceIDNEQ(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldNEQ(FieldDeviceID, v))
}

// DeviceIDIn applies the In predicate on the "device_id" field.
func DeviceIDIn(vs ...string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldIn(FieldDeviceID, vs...))
}

// DeviceIDNotIn applies the NotIn predicate on the "device_id" field.
func DeviceIDNotIn(vs ...string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldNotIn(FieldDeviceID, vs...))
}

// DeviceIDGT applies the GT predicate on the "device_id" field.
func DeviceIDGT(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldGT(FieldDeviceID, v))
}

// DeviceIDGTE applies the GTE predicate on the "device_id" field.
func DeviceIDGTE(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldGTE(FieldDeviceID, v))
}

// DeviceIDLT applies the LT predicate on the "device_id" field.
func DeviceIDLT(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldLT(FieldDeviceID, v))
}

// DeviceIDLTE applies the LTE predicate on the "device_id" field.
func DeviceIDLTE(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldLTE(FieldDeviceID, v))
}

// DeviceIDContains applies the Contains predicate on the "device_id" field.
func DeviceIDContains(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldContains(FieldDeviceID, v))
}

// DeviceIDHasPrefix applies the HasPrefix predicate on the "device_id" field.
func DeviceIDHasPrefix(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldHasPrefix(FieldDeviceID, v))
}

// DeviceIDHasSuffix applies the HasSuffix predicate on the "device_id" field.
func DeviceIDHasSuffix(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldHasSuffix(FieldDeviceID, v))
}

// DeviceIDEqualFold applies the EqualFold predicate on the "device_id" field.
func DeviceIDEqualFold(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldEqualFold(FieldDeviceID, v))
}

// DeviceIDContainsFold applies the ContainsFold predicate on the "device_id" field.
func DeviceIDContainsFold(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldContainsFold(FieldDeviceID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldContainsFold(FieldSessionID, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldNotIn(FieldState, vs...))
}

// CreatedAtMsEQ applies the EQ predicate on the "created_at_ms" field.
func CreatedAtMsEQ(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldEQ(FieldCreatedAtMs, v))
}

// CreatedAtMsNEQ applies the NEQ predicate on the "created_at_ms" field.
func CreatedAtMsNEQ(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldNEQ(FieldCreatedAtMs, v))
}

// CreatedAtMsIn applies the In predicate on the "created_at_ms" field.
func CreatedAtMsIn(vs ...int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldIn(FieldCreatedAtMs, vs...))
}

// CreatedAtMsNotIn applies the NotIn predicate on the "created_at_ms" field.
func CreatedAtMsNotIn(vs ...int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldNotIn(FieldCreatedAtMs, vs...))
}

// CreatedAtMsGT applies the GT predicate on the "created_at_ms" field.
func CreatedAtMsGT(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldGT(FieldCreatedAtMs, v))
}

// CreatedAtMsGTE applies the GTE predicate on the "created_at_ms" field.
func CreatedAtMsGTE(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldGTE(FieldCreatedAtMs, v))
}

// CreatedAtMsLT applies the LT predicate on the "created_at_ms" field.
func CreatedAtMsLT(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldLT(FieldCreatedAtMs, v))
}

// CreatedAtMsLTE applies the LTE predicate on the "created_at_ms" field.
func CreatedAtMsLTE(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldLTE(FieldCreatedAtMs, v))
}

// LastSeenMsEQ applies the EQ predicate on the "last_seen_ms" field.
func LastSeenMsEQ(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldEQ(FieldLastSeenMs, v))
}

// LastSeenMsNEQ applies the NEQ predicate on the "last_seen_ms" field.
func LastSeenMsNEQ(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldNEQ(FieldLastSeenMs, v))
}

// LastSeenMsIn applies the In predicate on the "last_seen_ms" field.
func LastSeenMsIn(vs ...int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldIn(FieldLastSeenMs, vs...))
}

// LastSeenMsNotIn applies the NotIn predicate on the "last_seen_ms" field.
func LastSeenMsNotIn(vs ...int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldNotIn(FieldLastSeenMs, vs...))
}

// LastSeenMsGT applies the GT predicate on the "last_seen_ms" field.
func LastSeenMsGT(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldGT(FieldLastSeenMs, v))
}

// LastSeenMsGTE applies the GTE predicate on the "last_seen_ms" field.
func LastSeenMsGTE(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldGTE(FieldLastSeenMs, v))
}

// LastSeenMsLT applies the LT predicate on the "last_seen_ms" field.
func LastSeenMsLT(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldLT(FieldLastSeenMs, v))
}

// LastSeenMsLTE applies the LTE predicate on the "last_seen_ms" field.
func LastSeenMsLTE(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldLTE(FieldLastSeenMs, v))
}

// LastInboundSeqEQ applies the EQ predicate on the "last_inbound_seq" field.
func LastInboundSeqEQ(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldEQ(FieldLastInboundSeq, v))
}

// LastInboundSeqNEQ applies the NEQ predicate on the "last_inbound_seq" field.
func LastInboundSeqNEQ(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldNEQ(FieldLastInboundSeq, v))
}

// LastInboundSeqIn applies the In predicate on the "last_inbound_seq" field.
func LastInboundSeqIn(vs ...int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldIn(FieldLastInboundSeq, vs...))
}

// LastInboundSeqNotIn applies the NotIn predicate on the "last_inbound_seq" field.
func LastInboundSeqNotIn(vs ...int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldNotIn(FieldLastInboundSeq, vs...))
}

// LastInboundSeqGT applies the GT predicate on the "last_inbound_seq" field.
func LastInboundSeqGT(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldGT(FieldLastInboundSeq, v))
}

// LastInboundSeqGTE applies the GTE predicate on the "last_inbound_seq" field.
func LastInboundSeqGTE(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldGTE(FieldLastInboundSeq, v))
}

// LastInboundSeqLT applies the LT predicate on the "last_inbound_seq" field.
func LastInboundSeqLT(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldLT(FieldLastInboundSeq, v))
}

// LastInboundSeqLTE applies the LTE predicate on the "last_inbound_seq" field.
func LastInboundSeqLTE(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldLTE(FieldLastInboundSeq, v))
}

// LastOutboundSeqEQ applies the EQ predicate on the "last_outbound_seq" field.
func LastOutboundSeqEQ(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldEQ(FieldLastOutboundSeq, v))
}

// LastOutboundSeqNEQ applies the NEQ predicate on the "last_outbound_seq" field.
func LastOutboundSeqNEQ(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldNEQ(FieldLastOutboundSeq, v))
}

// LastOutboundSeqIn applies the In predicate on the "last_outbound_seq" field.
func LastOutboundSeqIn(vs ...int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldIn(FieldLastOutboundSeq, vs...))
}

// LastOutboundSeqNotIn applies the NotIn predicate on the "last_outbound_seq" field.
func LastOutboundSeqNotIn(vs ...int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldNotIn(FieldLastOutboundSeq, vs...))
}

// LastOutboundSeqGT applies the GT predicate on the "last_outbound_seq" field.
func LastOutboundSeqGT(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldGT(FieldLastOutboundSeq, v))
}

// LastOutboundSeqGTE applies the GTE predicate on the "last_outbound_seq" field.
func LastOutboundSeqGTE(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldGTE(FieldLastOutboundSeq, v))
}

// LastOutboundSeqLT applies the LT predicate on the "last_outbound_seq" field.
func LastOutboundSeqLT(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldLT(FieldLastOutboundSeq, v))
}

// LastOutboundSeqLTE applies the LTE predicate on the "last_outbound_seq" field.
func LastOutboundSeqLTE(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldLTE(FieldLastOutboundSeq, v))
}

// ClosedAtMsEQ applies the EQ predicate on the "closed_at_ms" field.
func ClosedAtMsEQ(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldEQ(FieldClosedAtMs, v))
}

// ClosedAtMsNEQ applies the NEQ predicate on the "closed_at_ms" field.
func ClosedAtMsNEQ(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldNEQ(FieldClosedAtMs, v))
}

// ClosedAtMsIn applies the In predicate on the "closed_at_ms" field.
func ClosedAtMsIn(vs ...int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldIn(FieldClosedAtMs, vs...))
}

// ClosedAtMsNotIn applies the NotIn predicate on the "closed_at_ms" field.
func ClosedAtMsNotIn(vs ...int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldNotIn(FieldClosedAtMs, vs...))
}

// ClosedAtMsGT applies the GT predicate on the "closed_at_ms" field.
func ClosedAtMsGT(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldGT(FieldClosedAtMs, v))
}

// ClosedAtMsGTE applies the GTE predicate on the "closed_at_ms" field.
func ClosedAtMsGTE(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldGTE(FieldClosedAtMs, v))
}

// ClosedAtMsLT applies the LT predicate on the "closed_at_ms" field.
func ClosedAtMsLT(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldLT(FieldClosedAtMs, v))
}

// ClosedAtMsLTE applies the LTE predicate on the "closed_at_ms" field.
func ClosedAtMsLTE(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldLTE(FieldClosedAtMs, v))
}

// ClosedAtMsIsNil applies the IsNil predicate on the "closed_at_ms" field.
func ClosedAtMsIsNil() predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldIsNull(FieldClosedAtMs))
}

// ClosedAtMsNotNil applies the NotNil predicate on the "closed_at_ms" field.
func ClosedAtMsNotNil() predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldNotNull(FieldClosedAtMs))
}

// CloseReasonEQ applies the EQ predicate on the "close_reason" field.
func CloseReasonEQ(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldEQ(FieldCloseReason, v))
}

// CloseReasonNEQ applies the NEQ predicate on the "close_reason" field.
func CloseReasonNEQ(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldNEQ(FieldCloseReason, v))
}

// CloseReasonIn applies the In predicate on the "close_reason" field.
func CloseReasonIn(vs ...string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldIn(FieldCloseReason, vs...))
}

// CloseReasonNotIn applies the NotIn predicate on the "close_reason" field.
func CloseReasonNotIn(vs ...string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldNotIn(FieldCloseReason, vs...))
}

// CloseReasonGT applies the GT predicate on the "close_reason" field.
func CloseReasonGT(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldGT(FieldCloseReason, v))
}

// CloseReasonGTE applies the GTE predicate on the "close_reason" field.
func CloseReasonGTE(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldGTE(FieldCloseReason, v))
}

// CloseReasonLT applies the LT predicate on the "close_reason" field.
func CloseReasonLT(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldLT(FieldCloseReason, v))
}

// CloseReasonLTE applies the LTE predicate on the "close_reason" field.
func CloseReasonLTE(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldLTE(FieldCloseReason, v))
}

// CloseReasonContains applies the Contains predicate on the "close_reason" field.
func CloseReasonContains(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldContains(FieldCloseReason, v))
}

// CloseReasonHasPrefix applies the HasPrefix predicate on the "close_reason" field.
func CloseReasonHasPrefix(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldHasPrefix(FieldCloseReason, v))
}

// CloseReasonHasSuffix applies the HasSuffix predicate on the "close_reason" field.
func CloseReasonHasSuffix(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldHasSuffix(FieldCloseReason, v))
}

// CloseReasonIsNil applies the IsNil predicate on the "close_reason" field.
func CloseReasonIsNil() predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldIsNull(FieldCloseReason))
}

// CloseReasonNotNil applies the NotNil predicate on the "close_reason" field.
func CloseReasonNotNil() predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldNotNull(FieldCloseReason))
}

// CloseReasonEqualFold applies the EqualFold predicate on the "close_reason" field.
func CloseReasonEqualFold(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldEqualFold(FieldCloseReason, v))
}

// CloseReasonContainsFold applies the ContainsFold predicate on the "close_reason" field.
func CloseReasonContainsFold(v string) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldContainsFold(FieldCloseReason, v))
}

// SessionMetadataIsNil applies the IsNil predicate on the "session_metadata" field.
func SessionMetadataIsNil() predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldIsNull(FieldSessionMetadata))
}

// SessionMetadataNotNil applies the NotNil predicate on the "session_metadata" field.
func SessionMetadataNotNil() predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldNotNull(FieldSessionMetadata))
}

// TelemetryIsNil applies the IsNil predicate on the "telemetry" field.
func TelemetryIsNil() predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldIsNull(FieldTelemetry))
}

// TelemetryNotNil applies the NotNil predicate on the "telemetry" field.
func TelemetryNotNil() predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldNotNull(FieldTelemetry))
}

// UpdatedAtMsEQ applies the EQ predicate on the "updated_at_ms" field.
func UpdatedAtMsEQ(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldEQ(FieldUpdatedAtMs, v))
}

// UpdatedAtMsNEQ applies the NEQ predicate on the "updated_at_ms" field.
func UpdatedAtMsNEQ(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldNEQ(FieldUpdatedAtMs, v))
}

// UpdatedAtMsIn applies the In predicate on the "updated_at_ms" field.
func UpdatedAtMsIn(vs ...int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldIn(FieldUpdatedAtMs, vs...))
}

// UpdatedAtMsNotIn applies the NotIn predicate on the "updated_at_ms" field.
func UpdatedAtMsNotIn(vs ...int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldNotIn(FieldUpdatedAtMs, vs...))
}

// UpdatedAtMsGT applies the GT predicate on the "updated_at_ms" field.
func UpdatedAtMsGT(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldGT(FieldUpdatedAtMs, v))
}

// UpdatedAtMsGTE applies the GTE predicate on the "updated_at_ms" field.
func UpdatedAtMsGTE(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldGTE(FieldUpdatedAtMs, v))
}

// UpdatedAtMsLT applies the LT predicate on the "updated_at_ms" field.
func UpdatedAtMsLT(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldLT(FieldUpdatedAtMs, v))
}

// UpdatedAtMsLTE applies the LTE predicate on the "updated_at_ms" field.
func UpdatedAtMsLTE(v int64) predicate.DeviceSession {
	return predicate.DeviceSession(sql.FieldLTE(FieldUpdatedAtMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DeviceSession) predicate.DeviceSession {
	return predicate.DeviceSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DeviceSession) predicate.DeviceSession {
	return predicate.DeviceSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DeviceSession) predicate.DeviceSession {
	return predicate.DeviceSession(sql.NotPredicates(p))
}
