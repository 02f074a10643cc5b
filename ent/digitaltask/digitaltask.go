// Code generated by ent, DO NOT EDIT.

package digitaltask

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the digitaltask type in the database.
	Label = "digital_task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldDeviceID holds the string denoting the device_id field in the database.
	FieldDeviceID = "device_id"
	// FieldGoal holds the string denoting the goal field in the database.
	FieldGoal = "goal"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSteps holds the string denoting the steps field in the database.
	FieldSteps = "steps"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldTimeoutSeconds holds the string denoting the timeout_seconds field in the database.
	FieldTimeoutSeconds = "timeout_seconds"
	// FieldPushContext holds the string denoting the push_context field in the database.
	FieldPushContext = "push_context"
	// FieldCreatedAtMs holds the string denoting the created_at_ms field in the database.
	FieldCreatedAtMs = "created_at_ms"
	// FieldUpdatedAtMs holds the string denoting the updated_at_ms field in the database.
	FieldUpdatedAtMs = "updated_at_ms"
	// FieldCompletedAtMs holds the string denoting the completed_at_ms field in the database.
	FieldCompletedAtMs = "completed_at_ms"
	// Table holds the table name of the digitaltask in the database.
	Table = "digital_tasks"
)

// Columns holds all SQL columns for digitaltask fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldDeviceID,
	FieldGoal,
	FieldStatus,
	FieldSteps,
	FieldResult,
	FieldErrorMessage,
	FieldTimeoutSeconds,
	FieldPushContext,
	FieldCreatedAtMs,
	FieldUpdatedAtMs,
	FieldCompletedAtMs,
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
	// DefaultTimeoutSeconds holds the default value on creation for the "timeout_seconds" field.
	DefaultTimeoutSeconds int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending  Status = "pending"
	StatusRunning  Status = "running"
	StatusSuccess  Status = "success"
	StatusFailed   Status = "failed"
	StatusTimeout  Status = "timeout"
	StatusCanceled Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusSuccess, StatusFailed, StatusTimeout, StatusCanceled:
		return nil
	default:
		return fmt.Errorf("digitaltask: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the DigitalTask queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByDeviceID orders the results by the device_id field.
func ByDeviceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeviceID, opts...).ToFunc()
}

// ByGoal orders the results by the goal field.
func ByGoal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoal, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByResult orders the results by the result field.
func ByResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResult, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByTimeoutSeconds orders the results by the timeout_seconds field.
func ByTimeoutSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeoutSeconds, opts...).ToFunc()
}

// ByCreatedAtMs orders the results by the created_at_ms field.
func ByCreatedAtMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAtMs, opts...).ToFunc()
}

// ByUpdatedAtMs orders the results by the updated_at_ms field.
func ByUpdatedAtMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAtMs, opts...).ToFunc()
}

// ByCompletedAtMs orders the results by the completed_at_ms field.
func ByCompletedAtMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAtMs, opts...).ToFunc()
}
