// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/opencane/edged/ent/pushupdate"
)

// PushUpdate is the model entity for the PushUpdate schema.
type PushUpdate struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DeviceID holds the value of the "device_id" field.
	DeviceID string `json:"device_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// Idempotent delivery key: task_id + status
	SendKey string `json:"send_key,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// Status holds the value of the "status" field.
	Status pushupdate.Status `json:"status,omitempty"`
	// CreatedAtMs holds the value of the "created_at_ms" field.
	CreatedAtMs int64 `json:"created_at_ms,omitempty"`
	// SentAtMs holds the value of the "sent_at_ms" field.
	SentAtMs     int64 `json:"sent_at_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PushUpdate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pushupdate.FieldPayload:
			values[i] = new([]byte)
		case pushupdate.FieldCreatedAtMs, pushupdate.FieldSentAtMs:
			values[i] = new(sql.NullInt64)
		case pushupdate.FieldID, pushupdate.FieldDeviceID, pushupdate.FieldSessionID, pushupdate.FieldTaskID, pushupdate.FieldSendKey, pushupdate.FieldStatus:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PushUpdate fields.
func (_m *PushUpdate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pushupdate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pushupdate.FieldDeviceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field device_id", values[i])
			} else if value.Valid {
				_m.DeviceID = value.String
			}
		case pushupdate.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case pushupdate.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case pushupdate.FieldSendKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field send_key", values[i])
			} else if value.Valid {
				_m.SendKey = value.String
			}
		case pushupdate.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case pushupdate.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = pushupdate.Status(value.String)
			}
		case pushupdate.FieldCreatedAtMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created_at_ms", values[i])
			} else if value.Valid {
				_m.CreatedAtMs = value.Int64
			}
		case pushupdate.FieldSentAtMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sent_at_ms", values[i])
			} else if value.Valid {
				_m.SentAtMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PushUpdate.
// This includes values selected through modifiers, order, etc.
func (_m *PushUpdate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PushUpdate.
// Note that you need to call PushUpdate.Unwrap() before calling this method if this PushUpdate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PushUpdate) Update() *PushUpdateUpdateOne {
	return NewPushUpdateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PushUpdate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PushUpdate) Unwrap() *PushUpdate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PushUpdate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PushUpdate) String() string {
	var builder strings.Builder
	builder.WriteString("PushUpdate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("device_id=")
	builder.WriteString(_m.DeviceID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("send_key=")
	builder.WriteString(_m.SendKey)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedAtMs))
	builder.WriteString(", ")
	builder.WriteString("sent_at_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.SentAtMs))
	builder.WriteByte(')')
	return builder.String()
}

// PushUpdates is a parsable slice of PushUpdate.
type PushUpdates []*PushUpdate
