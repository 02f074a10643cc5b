// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/opencane/edged/ent/deviceoperation"
)

// DeviceOperation is the model entity for the DeviceOperation schema.
type DeviceOperation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DeviceID holds the value of the "device_id" field.
	DeviceID string `json:"device_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// set_config | tool_call | ota_plan
	OpType string `json:"op_type,omitempty"`
	// Derived 1:1 from op_type
	CommandType string `json:"command_type,omitempty"`
	// Status holds the value of the "status" field.
	Status deviceoperation.Status `json:"status,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// Device tool_result payload
	Result map[string]interface{} `json:"result,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// CreatedAtMs holds the value of the "created_at_ms" field.
	CreatedAtMs int64 `json:"created_at_ms,omitempty"`
	// SentAtMs holds the value of the "sent_at_ms" field.
	SentAtMs int64 `json:"sent_at_ms,omitempty"`
	// AckedAtMs holds the value of the "acked_at_ms" field.
	AckedAtMs    int64 `json:"acked_at_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DeviceOperation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deviceoperation.FieldPayload, deviceoperation.FieldResult:
			values[i] = new([]byte)
		case deviceoperation.FieldCreatedAtMs, deviceoperation.FieldSentAtMs, deviceoperation.FieldAckedAtMs:
			values[i] = new(sql.NullInt64)
		case deviceoperation.FieldID, deviceoperation.FieldDeviceID, deviceoperation.FieldSessionID, deviceoperation.FieldOpType, deviceoperation.FieldCommandType, deviceoperation.FieldStatus, deviceoperation.FieldErrorMessage:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DeviceOperation fields.
func (_m *DeviceOperation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deviceoperation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case deviceoperation.FieldDeviceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field device_id", values[i])
			} else if value.Valid {
				_m.DeviceID = value.String
			}
		case deviceoperation.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case deviceoperation.FieldOpType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field op_type", values[i])
			} else if value.Valid {
				_m.OpType = value.String
			}
		case deviceoperation.FieldCommandType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field command_type", values[i])
			} else if value.Valid {
				_m.CommandType = value.String
			}
		case deviceoperation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = deviceoperation.Status(value.String)
			}
		case deviceoperation.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case deviceoperation.FieldResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Result); err != nil {
					return fmt.Errorf("unmarshal field result: %w", err)
				}
			}
		case deviceoperation.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case deviceoperation.FieldCreatedAtMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created_at_ms", values[i])
			} else if value.Valid {
				_m.CreatedAtMs = value.Int64
			}
		case deviceoperation.FieldSentAtMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sent_at_ms", values[i])
			} else if value.Valid {
				_m.SentAtMs = value.Int64
			}
		case deviceoperation.FieldAckedAtMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field acked_at_ms", values[i])
			} else if value.Valid {
				_m.AckedAtMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DeviceOperation.
// This includes values selected through modifiers, order, etc.
func (_m *DeviceOperation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DeviceOperation.
// Note that you need to call DeviceOperation.Unwrap() before calling this method if this DeviceOperation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DeviceOperation) Update() *DeviceOperationUpdateOne {
	return NewDeviceOperationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DeviceOperation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DeviceOperation) Unwrap() *DeviceOperation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DeviceOperation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DeviceOperation) String() string {
	var builder strings.Builder
	builder.WriteString("DeviceOperation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("device_id=")
	builder.WriteString(_m.DeviceID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("op_type=")
	builder.WriteString(_m.OpType)
	builder.WriteString(", ")
	builder.WriteString("command_type=")
	builder.WriteString(_m.CommandType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(fmt.Sprintf("%v", _m.Result))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("created_at_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedAtMs))
	builder.WriteString(", ")
	builder.WriteString("sent_at_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.SentAtMs))
	builder.WriteString(", ")
	builder.WriteString("acked_at_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.AckedAtMs))
	builder.WriteByte(')')
	return builder.String()
}

// DeviceOperations is a parsable slice of DeviceOperation.
type DeviceOperations []*DeviceOperation
