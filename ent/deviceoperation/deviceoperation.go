// Code generated by ent, DO NOT EDIT.

package deviceoperation

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the deviceoperation type in the database.
	Label = "device_operation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "operation_id"
	// FieldDeviceID holds the string denoting the device_id field in the database.
	FieldDeviceID = "device_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldOpType holds the string denoting the op_type field in the database.
	FieldOpType = "op_type"
	// FieldCommandType holds the string denoting the command_type field in the database.
	FieldCommandType = "command_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAtMs holds the string denoting the created_at_ms field in the database.
	FieldCreatedAtMs = "created_at_ms"
	// FieldSentAtMs holds the string denoting the sent_at_ms field in the database.
	FieldSentAtMs = "sent_at_ms"
	// FieldAckedAtMs holds the string denoting the acked_at_ms field in the database.
	FieldAckedAtMs = "acked_at_ms"
	// Table holds the table name of the deviceoperation in the database.
	Table = "device_operations"
)

// Columns holds all SQL columns for deviceoperation fields.
var Columns = []string{
	FieldID,
	FieldDeviceID,
	FieldSessionID,
	FieldOpType,
	FieldCommandType,
	FieldStatus,
	FieldPayload,
	FieldResult,
	FieldErrorMessage,
	FieldCreatedAtMs,
	FieldSentAtMs,
	FieldAckedAtMs,
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

// Status defines the type for the "status" enum field.
type Status string

// StatusQueued is the default value of the Status enum.
const DefaultStatus = StatusQueued

// Status values.
const (
	StatusQueued   Status = "queued"
	StatusSent     Status = "sent"
	StatusAcked    Status = "acked"
	StatusFailed   Status = "failed"
	StatusCanceled Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQueued, StatusSent, StatusAcked, StatusFailed, StatusCanceled:
		return nil
	default:
		return fmt.Errorf("deviceoperation: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the DeviceOperation queries.
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

// ByOpType orders the results by the op_type field.
func ByOpType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpType, opts...).ToFunc()
}

// ByCommandType orders the results by the command_type field.
func ByCommandType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommandType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAtMs orders the results by the created_at_ms field.
func ByCreatedAtMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAtMs, opts...).ToFunc()
}

// BySentAtMs orders the results by the sent_at_ms field.
func BySentAtMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentAtMs, opts...).ToFunc()
}

// ByAckedAtMs orders the results by the acked_at_ms field.
func ByAckedAtMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAckedAtMs, opts...).ToFunc()
}
