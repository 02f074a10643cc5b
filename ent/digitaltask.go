// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/opencane/edged/ent/digitaltask"
)

// DigitalTask is the model entity for the DigitalTask schema.
type DigitalTask struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// DeviceID holds the value of the "device_id" field.
	DeviceID string `json:"device_id,omitempty"`
	// Verbatim user instruction
	Goal string `json:"goal,omitempty"`
	// Status holds the value of the "status" field.
	Status digitaltask.Status `json:"status,omitempty"`
	// Append-only stage log: accepted, running, <terminal>, recovered
	Steps []map[string]interface{} `json:"steps,omitempty"`
	// Result holds the value of the "result" field.
	Result string `json:"result,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// TimeoutSeconds holds the value of the "timeout_seconds" field.
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`
	// Device, notify/speak flags, interrupt-previous flag
	PushContext map[string]interface{} `json:"push_context,omitempty"`
	// CreatedAtMs holds the value of the "created_at_ms" field.
	CreatedAtMs int64 `json:"created_at_ms,omitempty"`
	// UpdatedAtMs holds the value of the "updated_at_ms" field.
	UpdatedAtMs int64 `json:"updated_at_ms,omitempty"`
	// CompletedAtMs holds the value of the "completed_at_ms" field.
	CompletedAtMs int64 `json:"completed_at_ms,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DigitalTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case digitaltask.FieldSteps, digitaltask.FieldPushContext:
			values[i] = new([]byte)
		case digitaltask.FieldTimeoutSeconds, digitaltask.FieldCreatedAtMs, digitaltask.FieldUpdatedAtMs, digitaltask.FieldCompletedAtMs:
			values[i] = new(sql.NullInt64)
		case digitaltask.FieldID, digitaltask.FieldSessionID, digitaltask.FieldDeviceID, digitaltask.FieldGoal, digitaltask.FieldStatus, digitaltask.FieldResult, digitaltask.FieldErrorMessage:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DigitalTask fields.
func (_m *DigitalTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case digitaltask.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case digitaltask.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case digitaltask.FieldDeviceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field device_id", values[i])
			} else if value.Valid {
				_m.DeviceID = value.String
			}
		case digitaltask.FieldGoal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal", values[i])
			} else if value.Valid {
				_m.Goal = value.String
			}
		case digitaltask.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = digitaltask.Status(value.String)
			}
		case digitaltask.FieldSteps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field steps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Steps); err != nil {
					return fmt.Errorf("unmarshal field steps: %w", err)
				}
			}
		case digitaltask.FieldResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value.Valid {
				_m.Result = value.String
			}
		case digitaltask.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case digitaltask.FieldTimeoutSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timeout_seconds", values[i])
			} else if value.Valid {
				_m.TimeoutSeconds = int(value.Int64)
			}
		case digitaltask.FieldPushContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field push_context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PushContext); err != nil {
					return fmt.Errorf("unmarshal field push_context: %w", err)
				}
			}
		case digitaltask.FieldCreatedAtMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created_at_ms", values[i])
			} else if value.Valid {
				_m.CreatedAtMs = value.Int64
			}
		case digitaltask.FieldUpdatedAtMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at_ms", values[i])
			} else if value.Valid {
				_m.UpdatedAtMs = value.Int64
			}
		case digitaltask.FieldCompletedAtMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at_ms", values[i])
			} else if value.Valid {
				_m.CompletedAtMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DigitalTask.
// This includes values selected through modifiers, order, etc.
func (_m *DigitalTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DigitalTask.
// Note that you need to call DigitalTask.Unwrap() before calling this method if this DigitalTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DigitalTask) Update() *DigitalTaskUpdateOne {
	return NewDigitalTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DigitalTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DigitalTask) Unwrap() *DigitalTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DigitalTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DigitalTask) String() string {
	var builder strings.Builder
	builder.WriteString("DigitalTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("device_id=")
	builder.WriteString(_m.DeviceID)
	builder.WriteString(", ")
	builder.WriteString("goal=")
	builder.WriteString(_m.Goal)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.Steps))
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(_m.Result)
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("timeout_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeoutSeconds))
	builder.WriteString(", ")
	builder.WriteString("push_context=")
	builder.WriteString(fmt.Sprintf("%v", _m.PushContext))
	builder.WriteString(", ")
	builder.WriteString("created_at_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedAtMs))
	builder.WriteString(", ")
	builder.WriteString("updated_at_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.UpdatedAtMs))
	builder.WriteString(", ")
	builder.WriteString("completed_at_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedAtMs))
	builder.WriteByte(')')
	return builder.String()
}

// DigitalTasks is a parsable slice of DigitalTask.
type DigitalTasks []*DigitalTask
