// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/opencane/edged/ent/telemetrysample"
)

// TelemetrySample is the model entity for the TelemetrySample schema.
type TelemetrySample struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DeviceID holds the value of the "device_id" field.
	DeviceID string `json:"device_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// SchemaVersion holds the value of the "schema_version" field.
	SchemaVersion string `json:"schema_version,omitempty"`
	// Battery holds the value of the "battery" field.
	Battery map[string]interface{} `json:"battery,omitempty"`
	// Network holds the value of the "network" field.
	Network map[string]interface{} `json:"network,omitempty"`
	// Location holds the value of the "location" field.
	Location map[string]interface{} `json:"location,omitempty"`
	// Imu holds the value of the "imu" field.
	Imu map[string]interface{} `json:"imu,omitempty"`
	// TemperatureC holds the value of the "temperature_c" field.
	TemperatureC *float64 `json:"temperature_c,omitempty"`
	// Original payload before normalization
	Raw map[string]interface{} `json:"raw,omitempty"`
	// TsMs holds the value of the "ts_ms" field.
	TsMs int64 `json:"ts_ms,omitempty"`
	// CreatedAtMs holds the value of the "created_at_ms" field.
	CreatedAtMs  int64 `json:"created_at_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TelemetrySample) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case telemetrysample.FieldBattery, telemetrysample.FieldNetwork, telemetrysample.FieldLocation, telemetrysample.FieldImu, telemetrysample.FieldRaw:
			values[i] = new([]byte)
		case telemetrysample.FieldTemperatureC:
			values[i] = new(sql.NullFloat64)
		case telemetrysample.FieldID, telemetrysample.FieldTsMs, telemetrysample.FieldCreatedAtMs:
			values[i] = new(sql.NullInt64)
		case telemetrysample.FieldDeviceID, telemetrysample.FieldSessionID, telemetrysample.FieldSchemaVersion:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TelemetrySample fields.
func (_m *TelemetrySample) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case telemetrysample.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case telemetrysample.FieldDeviceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field device_id", values[i])
			} else if value.Valid {
				_m.DeviceID = value.String
			}
		case telemetrysample.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case telemetrysample.FieldSchemaVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field schema_version", values[i])
			} else if value.Valid {
				_m.SchemaVersion = value.String
			}
		case telemetrysample.FieldBattery:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field battery", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Battery); err != nil {
					return fmt.Errorf("unmarshal field battery: %w", err)
				}
			}
		case telemetrysample.FieldNetwork:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field network", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Network); err != nil {
					return fmt.Errorf("unmarshal field network: %w", err)
				}
			}
		case telemetrysample.FieldLocation:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Location); err != nil {
					return fmt.Errorf("unmarshal field location: %w", err)
				}
			}
		case telemetrysample.FieldImu:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field imu", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Imu); err != nil {
					return fmt.Errorf("unmarshal field imu: %w", err)
				}
			}
		case telemetrysample.FieldTemperatureC:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field temperature_c", values[i])
			} else if value.Valid {
				_m.TemperatureC = new(float64)
				*_m.TemperatureC = value.Float64
			}
		case telemetrysample.FieldRaw:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Raw); err != nil {
					return fmt.Errorf("unmarshal field raw: %w", err)
				}
			}
		case telemetrysample.FieldTsMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ts_ms", values[i])
			} else if value.Valid {
				_m.TsMs = value.Int64
			}
		case telemetrysample.FieldCreatedAtMs:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TelemetrySample.
// This includes values selected through modifiers, order, etc.
func (_m *TelemetrySample) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TelemetrySample.
// Note that you need to call TelemetrySample.Unwrap() before calling this method if this TelemetrySample
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TelemetrySample) Update() *TelemetrySampleUpdateOne {
	return NewTelemetrySampleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TelemetrySample entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TelemetrySample) Unwrap() *TelemetrySample {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TelemetrySample is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TelemetrySample) String() string {
	var builder strings.Builder
	builder.WriteString("TelemetrySample(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("device_id=")
	builder.WriteString(_m.DeviceID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("schema_version=")
	builder.WriteString(_m.SchemaVersion)
	builder.WriteString(", ")
	builder.WriteString("battery=")
	builder.WriteString(fmt.Sprintf("%v", _m.Battery))
	builder.WriteString(", ")
	builder.WriteString("network=")
	builder.WriteString(fmt.Sprintf("%v", _m.Network))
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(fmt.Sprintf("%v", _m.Location))
	builder.WriteString(", ")
	builder.WriteString("imu=")
	builder.WriteString(fmt.Sprintf("%v", _m.Imu))
	builder.WriteString(", ")
	if v := _m.TemperatureC; v != nil {
		builder.WriteString("temperature_c=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("raw=")
	builder.WriteString(fmt.Sprintf("%v", _m.Raw))
	builder.WriteString(", ")
	builder.WriteString("ts_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TsMs))
	builder.WriteString(", ")
	builder.WriteString("created_at_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedAtMs))
	builder.WriteByte(')')
	return builder.String()
}

// TelemetrySamples is a parsable slice of TelemetrySample.
type TelemetrySamples []*TelemetrySample
