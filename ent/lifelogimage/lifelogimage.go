// Code generated by ent, DO NOT EDIT.

package lifelogimage

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lifelogimage type in the database.
	Label = "lifelog_image"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "image_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldDeviceID holds the string denoting the device_id field in the database.
	FieldDeviceID = "device_id"
	// FieldImageURI holds the string denoting the image_uri field in the database.
	FieldImageURI = "image_uri"
	// FieldDhash holds the string denoting the dhash field in the database.
	FieldDhash = "dhash"
	// FieldIsDedup holds the string denoting the is_dedup field in the database.
	FieldIsDedup = "is_dedup"
	// FieldContentType holds the string denoting the content_type field in the database.
	FieldContentType = "content_type"
	// FieldSizeBytes holds the string denoting the size_bytes field in the database.
	FieldSizeBytes = "size_bytes"
	// FieldTsMs holds the string denoting the ts_ms field in the database.
	FieldTsMs = "ts_ms"
	// FieldCreatedAtMs holds the string denoting the created_at_ms field in the database.
	FieldCreatedAtMs = "created_at_ms"
	// Table holds the table name of the lifelogimage in the database.
	Table = "lifelog_images"
)

// Columns holds all SQL columns for lifelogimage fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldDeviceID,
	FieldImageURI,
	FieldDhash,
	FieldIsDedup,
	FieldContentType,
	FieldSizeBytes,
	FieldTsMs,
	FieldCreatedAtMs,
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
	// DefaultIsDedup holds the default value on creation for the "is_dedup" field.
	DefaultIsDedup bool
	// DefaultContentType holds the default value on creation for the "content_type" field.
	DefaultContentType string
	// DefaultSizeBytes holds the default value on creation for the "size_bytes" field.
	DefaultSizeBytes int
)

// OrderOption defines the ordering options for the LifelogImage queries.
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

// ByImageURI orders the results by the image_uri field.
func ByImageURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageURI, opts...).ToFunc()
}

// ByDhash orders the results by the dhash field.
func ByDhash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDhash, opts...).ToFunc()
}

// ByIsDedup orders the results by the is_dedup field.
func ByIsDedup(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDedup, opts...).ToFunc()
}

// ByContentType orders the results by the content_type field.
func ByContentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentType, opts...).ToFunc()
}

// BySizeBytes orders the results by the size_bytes field.
func BySizeBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSizeBytes, opts...).ToFunc()
}

// ByTsMs orders the results by the ts_ms field.
func ByTsMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTsMs, opts...).ToFunc()
}

// ByCreatedAtMs orders the results by the created_at_ms field.
func ByCreatedAtMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAtMs, opts...).ToFunc()
}
