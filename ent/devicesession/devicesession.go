// Code generated by ent, DO NOT EDIT.

package devicesession

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the devicesession type in the database.
	Label = "device_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDeviceID holds the string denoting the device_id field in the database.
	FieldDeviceID = "device_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldCreatedAtMs holds the string denoting the created_at_ms field in the database.
	FieldCreatedAtMs = "created_at_ms"
	// FieldLastSeenMs holds the string denoting the last_seen_ms field in the database.
	FieldLastSeenMs = "last_seen_ms"
	// FieldLastInboundSeq holds the string denoting the last_inbound_seq field in the database.
	FieldLastInboundSeq = "last_inbound_seq"
	// FieldLastOutboundSeq holds the string denoting the last_outbound_seq field in the database.
	FieldLastOutboundSeq = "last_outbound_seq"
	// FieldClosedAtMs holds the string denoting the closed_at_ms field in the database.
	FieldClosedAtMs = "closed_at_ms"
	// FieldCloseReason holds the string denoting the close_reason field in the database.
	FieldCloseReason = "close_reason"
	// FieldSessionMetadata holds the string denoting the session_metadata field in the database.
	FieldSessionMetadata = "session_metadata"
	// FieldTelemetry holds the string denoting the telemetry field in the database.
	FieldTelemetry = "telemetry"
	// FieldUpdatedAtMs holds the string denoting the updated_at_ms field in the database.
	FieldUpdatedAtMs = "updated_at_ms"
	// Table holds the table name of the devicesession in the database.
	Table = "device_sessions"
)

// Columns holds all SQL columns for devicesession fields.
var Columns = []string{
	FieldID,
	FieldDeviceID,
	FieldSessionID,
	FieldState,
	FieldCreatedAtMs,
	FieldLastSeenMs,
	FieldLastInboundSeq,
	FieldLastOutboundSeq,
	FieldClosedAtMs,
	FieldCloseReason,
	FieldSessionMetadata,
	FieldTelemetry,
	FieldUpdatedAtMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultLastInboundSeq holds the default value on creation for the "last_inbound_seq" field.
	DefaultLastInboundSeq int64
	// DefaultLastOutboundSeq holds the default value on creation for the "last_outbound_seq" field.
	DefaultLastOutboundSeq int64
)

// State defines the type for the "state" enum field.
type State string

// StateConnecting is the default value of the State enum.
const DefaultState = StateConnecting

// State values.
const (
	StateConnecting State = "connecting"
	StateReady      State = "ready"
	StateListening  State = "listening"
	StateThinking   State = "thinking"
	StateSpeaking   State = "speaking"
	StateClosed     State = "closed"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateConnecting, StateReady, StateListening, StateThinking, StateSpeaking, StateClosed:
		return nil
	default:
		return fmt.Errorf("devicesession: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the DeviceSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDeviceID orders the results by the device_id field.
func ByDeviceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeviceID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByCreatedAtMs orders the results by the created_at_ms field.
func ByCreatedAtMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAtMs, opts...).ToFunc()
}

// ByLastSeenMs orders the results by the last_seen_ms field.
func ByLastSeenMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeenMs, opts...).ToFunc()
}

// ByLastInboundSeq orders the results by the last_inbound_seq field.
func ByLastInboundSeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastInboundSeq, opts...).ToFunc()
}

// ByLastOutboundSeq orders the results by the last_outbound_seq field.
func ByLastOutboundSeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastOutboundSeq, opts...).ToFunc()
}

// ByClosedAtMs orders the results by the closed_at_ms field.
func ByClosedAtMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClosedAtMs, opts...).ToFunc()
}

// ByCloseReason orders the results by the close_reason field.
func ByCloseReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCloseReason, opts...).ToFunc()
}

// ByUpdatedAtMs orders the results by the updated_at_ms field.
func ByUpdatedAtMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAtMs, opts...).ToFunc()
}
