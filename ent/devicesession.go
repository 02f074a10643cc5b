// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/opencane/edged/ent/devicesession"
)

// DeviceSession is the model entity for the DeviceSession schema.
type DeviceSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DeviceID holds the value of the "device_id" field.
	DeviceID string `json:"device_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// State holds the value of the "state" field.
	State devicesession.State `json:"state,omitempty"`
	// CreatedAtMs holds the value of the "created_at_ms" field.
	CreatedAtMs int64 `json:"created_at_ms,omitempty"`
	// LastSeenMs holds the value of the "last_seen_ms" field.
	LastSeenMs int64 `json:"last_seen_ms,omitempty"`
	// LastInboundSeq holds the value of the "last_inbound_seq" field.
	LastInboundSeq int64 `json:"last_inbound_seq,omitempty"`
	// LastOutboundSeq holds the value of the "last_outbound_seq" field.
	LastOutboundSeq int64 `json:"last_outbound_seq,omitempty"`
	// ClosedAtMs holds the value of the "closed_at_ms" field.
	ClosedAtMs int64 `json:"closed_at_ms,omitempty"`
	// CloseReason holds the value of the "close_reason" field.
	CloseReason string `json:"close_reason,omitempty"`
	// SessionMetadata holds the value of the "session_metadata" field.
	SessionMetadata map[string]interface{} `json:"session_metadata,omitempty"`
	// Latest normalized telemetry snapshot
	Telemetry map[string]interface{} `json:"telemetry,omitempty"`
	// UpdatedAtMs holds the value of the "updated_at_ms" field.
	UpdatedAtMs  int64 `json:"updated_at_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DeviceSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case devicesession.FieldSessionMetadata, devicesession.FieldTelemetry:
			values[i] = new([]byte)
		case devicesession.FieldID, devicesession.FieldCreatedAtMs, devicesession.FieldLastSeenMs, devicesession.FieldLastInboundSeq, devicesession.FieldLastOutboundSeq, devicesession.FieldClosedAtMs, devicesession.FieldUpdatedAtMs:
			values[i] = new(sql.NullInt64)
		case devicesession.FieldDeviceID, devicesession.FieldSessionID, devicesession.FieldState, devicesession.FieldCloseReason:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DeviceSession fields.
func (_m *DeviceSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case devicesession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case devicesession.FieldDeviceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field device_id", values[i])
			} else if value.Valid {
				_m.DeviceID = value.String
			}
		case devicesession.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case devicesession.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = devicesession.State(value.String)
			}
		case devicesession.FieldCreatedAtMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created_at_ms", values[i])
			} else if value.Valid {
				_m.CreatedAtMs = value.Int64
			}
		case devicesession.FieldLastSeenMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_ms", values[i])
			} else if value.Valid {
				_m.LastSeenMs = value.Int64
			}
		case devicesession.FieldLastInboundSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_inbound_seq", values[i])
			} else if value.Valid {
				_m.LastInboundSeq = value.Int64
			}
		case devicesession.FieldLastOutboundSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_outbound_seq", values[i])
			} else if value.Valid {
				_m.LastOutboundSeq = value.Int64
			}
		case devicesession.FieldClosedAtMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field closed_at_ms", values[i])
			} else if value.Valid {
				_m.ClosedAtMs = value.Int64
			}
		case devicesession.FieldCloseReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field close_reason", values[i])
			} else if value.Valid {
				_m.CloseReason = value.String
			}
		case devicesession.FieldSessionMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field session_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SessionMetadata); err != nil {
					return fmt.Errorf("unmarshal field session_metadata: %w", err)
				}
			}
		case devicesession.FieldTelemetry:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field telemetry", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Telemetry); err != nil {
					return fmt.Errorf("unmarshal field telemetry: %w", err)
				}
			}
		case devicesession.FieldUpdatedAtMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at_ms", values[i])
			} else if value.Valid {
				_m.UpdatedAtMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DeviceSession.
// This includes values selected through modifiers, order, etc.
func (_m *DeviceSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DeviceSession.
// Note that you need to call DeviceSession.Unwrap() before calling this method if this DeviceSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DeviceSession) Update() *DeviceSessionUpdateOne {
	return NewDeviceSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DeviceSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DeviceSession) Unwrap() *DeviceSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DeviceSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DeviceSession) String() string {
	var builder strings.Builder
	builder.WriteString("DeviceSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("device_id=")
	builder.WriteString(_m.DeviceID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("created_at_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedAtMs))
	builder.WriteString(", ")
	builder.WriteString("last_seen_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastSeenMs))
	builder.WriteString(", ")
	builder.WriteString("last_inbound_seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastInboundSeq))
	builder.WriteString(", ")
	builder.WriteString("last_outbound_seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastOutboundSeq))
	builder.WriteString(", ")
	builder.WriteString("closed_at_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClosedAtMs))
	builder.WriteString(", ")
	builder.WriteString("close_reason=")
	builder.WriteString(_m.CloseReason)
	builder.WriteString(", ")
	builder.WriteString("session_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionMetadata))
	builder.WriteString(", ")
	builder.WriteString("telemetry=")
	builder.WriteString(fmt.Sprintf("%v", _m.Telemetry))
	builder.WriteString(", ")
	builder.WriteString("updated_at_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.UpdatedAtMs))
	builder.WriteByte(')')
	return builder.String()
}

// DeviceSessions is a parsable slice of DeviceSession.
type DeviceSessions []*DeviceSession
