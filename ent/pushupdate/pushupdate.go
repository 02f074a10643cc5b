// Code generated by ent, DO NOT EDIT.

package pushupdate

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pushupdate type in the database.
	Label = "push_update"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "update_id"
	// FieldDeviceID holds the string denoting the device_id field in the database.
	FieldDeviceID = "device_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldSendKey holds the string denoting the send_key field in the database.
	FieldSendKey = "send_key"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAtMs holds the string denoting the created_at_ms field in the database.
	FieldCreatedAtMs = "created_at_ms"
	// FieldSentAtMs holds the string denoting the sent_at_ms field in the database.
	FieldSentAtMs = "sent_at_ms"
	// Table holds the table name of the pushupdate in the database.
	Table = "push_updates"
)

// Columns holds all SQL columns for pushupdate fields.
var Columns = []string{
	FieldID,
	FieldDeviceID,
	FieldSessionID,
	FieldTaskID,
	FieldSendKey,
	FieldPayload,
	FieldStatus,
	FieldCreatedAtMs,
	FieldSentAtMs,
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

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusSent:
		return nil
	default:
		return fmt.Errorf("pushupdate: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the PushUpdate queries.
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

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// BySendKey orders the results by the send_key field.
func BySendKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSendKey, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAtMs orders the results by the created_at_ms field.
func ByCreatedAtMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAtMs, opts...).ToFunc()
}

// BySentAtMs orders the results by the sent_at_ms field.
func BySentAtMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentAtMs, opts...).ToFunc()
}
