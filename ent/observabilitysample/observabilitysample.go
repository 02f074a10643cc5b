// Code generated by ent, DO NOT EDIT.

package observabilitysample

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the observabilitysample type in the database.
	Label = "observability_sample"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldScope holds the string denoting the scope field in the database.
	FieldScope = "scope"
	// FieldCounters holds the string denoting the counters field in the database.
	FieldCounters = "counters"
	// FieldTsMs holds the string denoting the ts_ms field in the database.
	FieldTsMs = "ts_ms"
	// Table holds the table name of the observabilitysample in the database.
	Table = "observability_samples"
)

// Columns holds all SQL columns for observabilitysample fields.
var Columns = []string{
	FieldID,
	FieldScope,
	FieldCounters,
	FieldTsMs,
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

// OrderOption defines the ordering options for the ObservabilitySample queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByScope orders the results by the scope field.
func ByScope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScope, opts...).ToFunc()
}

// ByTsMs orders the results by the ts_ms field.
func ByTsMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTsMs, opts...).ToFunc()
}
