// Code generated by ent, DO NOT EDIT.

package lifelogcontext

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lifelogcontext type in the database.
	Label = "lifelog_context"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "context_id"
	// FieldImageID holds the string denoting the image_id field in the database.
	FieldImageID = "image_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldSemanticTitle holds the string denoting the semantic_title field in the database.
	FieldSemanticTitle = "semantic_title"
	// FieldSemanticSummary holds the string denoting the semantic_summary field in the database.
	FieldSemanticSummary = "semantic_summary"
	// FieldObjects holds the string denoting the objects field in the database.
	FieldObjects = "objects"
	// FieldOcr holds the string denoting the ocr field in the database.
	FieldOcr = "ocr"
	// FieldRiskHints holds the string denoting the risk_hints field in the database.
	FieldRiskHints = "risk_hints"
	// FieldActionableSummary holds the string denoting the actionable_summary field in the database.
	FieldActionableSummary = "actionable_summary"
	// FieldRiskLevel holds the string denoting the risk_level field in the database.
	FieldRiskLevel = "risk_level"
	// FieldRiskScore holds the string denoting the risk_score field in the database.
	FieldRiskScore = "risk_score"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldCreatedAtMs holds the string denoting the created_at_ms field in the database.
	FieldCreatedAtMs = "created_at_ms"
	// Table holds the table name of the lifelogcontext in the database.
	Table = "lifelog_contexts"
)

// Columns holds all SQL columns for lifelogcontext fields.
var Columns = []string{
	FieldID,
	FieldImageID,
	FieldSessionID,
	FieldSemanticTitle,
	FieldSemanticSummary,
	FieldObjects,
	FieldOcr,
	FieldRiskHints,
	FieldActionableSummary,
	FieldRiskLevel,
	FieldRiskScore,
	FieldConfidence,
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
	// DefaultRiskLevel holds the default value on creation for the "risk_level" field.
	DefaultRiskLevel string
	// DefaultRiskScore holds the default value on creation for the "risk_score" field.
	DefaultRiskScore float64
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
)

// OrderOption defines the ordering options for the LifelogContext queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByImageID orders the results by the image_id field.
func ByImageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// BySemanticTitle orders the results by the semantic_title field.
func BySemanticTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSemanticTitle, opts...).ToFunc()
}

// BySemanticSummary orders the results by the semantic_summary field.
func BySemanticSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSemanticSummary, opts...).ToFunc()
}

// ByActionableSummary orders the results by the actionable_summary field.
func ByActionableSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionableSummary, opts...).ToFunc()
}

// ByRiskLevel orders the results by the risk_level field.
func ByRiskLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskLevel, opts...).ToFunc()
}

// ByRiskScore orders the results by the risk_score field.
func ByRiskScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskScore, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByCreatedAtMs orders the results by the created_at_ms field.
func ByCreatedAtMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAtMs, opts...).ToFunc()
}
