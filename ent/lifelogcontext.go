// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/opencane/edged/ent/lifelogcontext"
)

// LifelogContext is the model entity for the LifelogContext schema.
type LifelogContext struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ImageID holds the value of the "image_id" field.
	ImageID string `json:"image_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// SemanticTitle holds the value of the "semantic_title" field.
	SemanticTitle string `json:"semantic_title,omitempty"`
	// SemanticSummary holds the value of the "semantic_summary" field.
	SemanticSummary string `json:"semantic_summary,omitempty"`
	// Objects holds the value of the "objects" field.
	Objects []string `json:"objects,omitempty"`
	// Ocr holds the value of the "ocr" field.
	Ocr []string `json:"ocr,omitempty"`
	// RiskHints holds the value of the "risk_hints" field.
	RiskHints []string `json:"risk_hints,omitempty"`
	// ActionableSummary holds the value of the "actionable_summary" field.
	ActionableSummary string `json:"actionable_summary,omitempty"`
	// RiskLevel holds the value of the "risk_level" field.
	RiskLevel string `json:"risk_level,omitempty"`
	// RiskScore holds the value of the "risk_score" field.
	RiskScore float64 `json:"risk_score,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// CreatedAtMs holds the value of the "created_at_ms" field.
	CreatedAtMs  int64 `json:"created_at_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LifelogContext) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lifelogcontext.FieldObjects, lifelogcontext.FieldOcr, lifelogcontext.FieldRiskHints:
			values[i] = new([]byte)
		case lifelogcontext.FieldRiskScore, lifelogcontext.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case lifelogcontext.FieldCreatedAtMs:
			values[i] = new(sql.NullInt64)
		case lifelogcontext.FieldID, lifelogcontext.FieldImageID, lifelogcontext.FieldSessionID, lifelogcontext.FieldSemanticTitle, lifelogcontext.FieldSemanticSummary, lifelogcontext.FieldActionableSummary, lifelogcontext.FieldRiskLevel:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LifelogContext fields.
func (_m *LifelogContext) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lifelogcontext.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case lifelogcontext.FieldImageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_id", values[i])
			} else if value.Valid {
				_m.ImageID = value.String
			}
		case lifelogcontext.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case lifelogcontext.FieldSemanticTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field semantic_title", values[i])
			} else if value.Valid {
				_m.SemanticTitle = value.String
			}
		case lifelogcontext.FieldSemanticSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field semantic_summary", values[i])
			} else if value.Valid {
				_m.SemanticSummary = value.String
			}
		case lifelogcontext.FieldObjects:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field objects", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Objects); err != nil {
					return fmt.Errorf("unmarshal field objects: %w", err)
				}
			}
		case lifelogcontext.FieldOcr:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ocr", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Ocr); err != nil {
					return fmt.Errorf("unmarshal field ocr: %w", err)
				}
			}
		case lifelogcontext.FieldRiskHints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field risk_hints", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RiskHints); err != nil {
					return fmt.Errorf("unmarshal field risk_hints: %w", err)
				}
			}
		case lifelogcontext.FieldActionableSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actionable_summary", values[i])
			} else if value.Valid {
				_m.ActionableSummary = value.String
			}
		case lifelogcontext.FieldRiskLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_level", values[i])
			} else if value.Valid {
				_m.RiskLevel = value.String
			}
		case lifelogcontext.FieldRiskScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field risk_score", values[i])
			} else if value.Valid {
				_m.RiskScore = value.Float64
			}
		case lifelogcontext.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case lifelogcontext.FieldCreatedAtMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created_at_ms", values[i])
			} else if value.Valid {
				_m.CreatedAtMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LifelogContext.
// This includes values selected through modifiers, order, etc.
func (_m *LifelogContext) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LifelogContext.
// Note that you need to call LifelogContext.Unwrap() before calling this method if this LifelogContext
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LifelogContext) Update() *LifelogContextUpdateOne {
	return NewLifelogContextClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LifelogContext entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LifelogContext) Unwrap() *LifelogContext {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LifelogContext is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LifelogContext) String() string {
	var builder strings.Builder
	builder.WriteString("LifelogContext(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("image_id=")
	builder.WriteString(_m.ImageID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("semantic_title=")
	builder.WriteString(_m.SemanticTitle)
	builder.WriteString(", ")
	builder.WriteString("semantic_summary=")
	builder.WriteString(_m.SemanticSummary)
	builder.WriteString(", ")
	builder.WriteString("objects=")
	builder.WriteString(fmt.Sprintf("%v", _m.Objects))
	builder.WriteString(", ")
	builder.WriteString("ocr=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ocr))
	builder.WriteString(", ")
	builder.WriteString("risk_hints=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskHints))
	builder.WriteString(", ")
	builder.WriteString("actionable_summary=")
	builder.WriteString(_m.ActionableSummary)
	builder.WriteString(", ")
	builder.WriteString("risk_level=")
	builder.WriteString(_m.RiskLevel)
	builder.WriteString(", ")
	builder.WriteString("risk_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskScore))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("created_at_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedAtMs))
	builder.WriteByte(')')
	return builder.String()
}

// LifelogContexts is a parsable slice of LifelogContext.
type LifelogContexts []*LifelogContext
