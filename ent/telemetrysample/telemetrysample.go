// Code generated by ent, DO NOT EDIT.

package telemetrysample

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the telemetrysample type in the database.
	Label = "telemetry_sample"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDeviceID holds the string denoting the device_id field in the database.
	FieldDeviceID = "device_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldSchemaVersion holds the string denoting the schema_version field in the database.
	FieldSchemaVersion = "schema_version"
	// FieldBattery holds the string denoting the battery field in the database.
	FieldBattery = "battery"
	// FieldNetwork holds the string denoting the network field in the database.
	FieldNetwork = "network"
	// FieldLocation holds the string denoting the location field in the database.
	FieldLocation = "location"
	// FieldImu holds the string denoting the imu field in the database.
	FieldImu = "imu"
	// FieldTemperatureC holds the string denoting the temperature_c field in the database.
	FieldTemperatureC = "temperature_c"
	// FieldRaw holds the string denoting the raw field in the database.
	FieldRaw = "raw"
	// FieldTsMs holds the string denoting the ts_ms field in the database.
	FieldTsMs = "ts_ms"
	// FieldCreatedAtMs holds the string denoting the created_at_ms field in the database.
	FieldCreatedAtMs = "created_at_ms"
	// Table holds the table name of the telemetrysample in the database.
	Table = "telemetry_samples"
)

// Columns holds all SQL columns for telemetrysample fields.
var Columns = []string{
	FieldID,
	FieldDeviceID,
	FieldSessionID,
	FieldSchemaVersion,
	FieldBattery,
	FieldNetwork,
	FieldLocation,
	FieldImu,
	FieldTemperatureC,
	FieldRaw,
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
	// DefaultSchemaVersion holds the default value on creation for the "schema_version" field.
	DefaultSchemaVersion string
)

// OrderOption defines the ordering options for the TelemetrySample queries.
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

// BySchemaVersion orders the results by the schema_version field.
func BySchemaVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchemaVersion, opts...).ToFunc()
}

// ByTemperatureC orders the results by the temperature_c field.
func ByTemperatureC(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemperatureC, opts...).ToFunc()
}

// ByTsMs orders the results by the ts_ms field.
func ByTsMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTsMs, opts...).ToFunc()
}

// ByCreatedAtMs orders the results by the created_at_ms field.
func ByCreatedAtMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAtMs, opts...).ToFunc()
}
