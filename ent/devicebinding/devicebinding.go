// Code generated by ent, DO NOT EDIT.

package devicebinding

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the devicebinding type in the database.
	Label = "device_binding"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDeviceID holds the string denoting the device_id field in the database.
	FieldDeviceID = "device_id"
	// FieldDeviceTokenHash holds the string denoting the device_token_hash field in the database.
	FieldDeviceTokenHash = "device_token_hash"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldBindingMetadata holds the string denoting the binding_metadata field in the database.
	FieldBindingMetadata = "binding_metadata"
	// FieldActivatedAtMs holds the string denoting the activated_at_ms field in the database.
	FieldActivatedAtMs = "activated_at_ms"
	// FieldRevokedAtMs holds the string denoting the revoked_at_ms field in the database.
	FieldRevokedAtMs = "revoked_at_ms"
	// FieldRevokeReason holds the string denoting the revoke_reason field in the database.
	FieldRevokeReason = "revoke_reason"
	// FieldCreatedAtMs holds the string denoting the created_at_ms field in the database.
	FieldCreatedAtMs = "created_at_ms"
	// FieldUpdatedAtMs holds the string denoting the updated_at_ms field in the database.
	FieldUpdatedAtMs = "updated_at_ms"
	// Table holds the table name of the devicebinding in the database.
	Table = "device_bindings"
)

// Columns holds all SQL columns for devicebinding fields.
var Columns = []string{
	FieldID,
	FieldDeviceID,
	FieldDeviceTokenHash,
	FieldStatus,
	FieldUserID,
	FieldBindingMetadata,
	FieldActivatedAtMs,
	FieldRevokedAtMs,
	FieldRevokeReason,
	FieldCreatedAtMs,
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

// Status defines the type for the "status" enum field.
type Status string

// StatusRegistered is the default value of the Status enum.
const DefaultStatus = StatusRegistered

// Status values.
const (
	StatusRegistered Status = "registered"
	StatusBound      Status = "bound"
	StatusActivated  Status = "activated"
	StatusRevoked    Status = "revoked"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRegistered, StatusBound, StatusActivated, StatusRevoked:
		return nil
	default:
		return fmt.Errorf("devicebinding: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the DeviceBinding queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDeviceID orders the results by the device_id field.
func ByDeviceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeviceID, opts...).ToFunc()
}

// ByDeviceTokenHash orders the results by the device_token_hash field.
func ByDeviceTokenHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeviceTokenHash, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByActivatedAtMs orders the results by the activated_at_ms field.
func ByActivatedAtMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivatedAtMs, opts...).ToFunc()
}

// ByRevokedAtMs orders the results by the revoked_at_ms field.
func ByRevokedAtMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevokedAtMs, opts...).ToFunc()
}

// ByRevokeReason orders the results by the revoke_reason field.
func ByRevokeReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevokeReason, opts...).ToFunc()
}

// ByCreatedAtMs orders the results by the created_at_ms field.
func ByCreatedAtMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAtMs, opts...).ToFunc()
}

// ByUpdatedAtMs orders the results by the updated_at_ms field.
func ByUpdatedAtMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAtMs, opts...).ToFunc()
}
