// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/opencane/edged/ent/observabilitysample"
)

// ObservabilitySample is the model entity for the ObservabilitySample schema.
type ObservabilitySample struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// runtime | pipeline | adapter | tasks
	Scope string `json:"scope,omitempty"`
	// Counters holds the value of the "counters" field.
	Counters map[string]interface{} `json:"counters,omitempty"`
	// TsMs holds the value of the "ts_ms" field.
	TsMs         int64 `json:"ts_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ObservabilitySample) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case observabilitysample.FieldCounters:
			values[i] = new([]byte)
		case observabilitysample.FieldID, observabilitysample.FieldTsMs:
			values[i] = new(sql.NullInt64)
		case observabilitysample.FieldScope:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ObservabilitySample fields.
func (_m *ObservabilitySample) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case observabilitysample.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case observabilitysample.FieldScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope", values[i])
			} else if value.Valid {
				_m.Scope = value.String
			}
		case observabilitysample.FieldCounters:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field counters", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Counters); err != nil {
					return fmt.Errorf("unmarshal field counters: %w", err)
				}
			}
		case observabilitysample.FieldTsMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ts_ms", values[i])
			} else if value.Valid {
				_m.TsMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ObservabilitySample.
// This includes values selected through modifiers, order, etc.
func (_m *ObservabilitySample) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ObservabilitySample.
// Note that you need to call ObservabilitySample.Unwrap() before calling this method if this ObservabilitySample
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ObservabilitySample) Update() *ObservabilitySampleUpdateOne {
	return NewObservabilitySampleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ObservabilitySample entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ObservabilitySample) Unwrap() *ObservabilitySample {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ObservabilitySample is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ObservabilitySample) String() string {
	var builder strings.Builder
	builder.WriteString("ObservabilitySample(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("scope=")
	builder.WriteString(_m.Scope)
	builder.WriteString(", ")
	builder.WriteString("counters=")
	builder.WriteString(fmt.Sprintf("%v", _m.Counters))
	builder.WriteString(", ")
	builder.WriteString("ts_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TsMs))
	builder.WriteByte(')')
	return builder.String()
}

// ObservabilitySamples is a parsable slice of ObservabilitySample.
type ObservabilitySamples []*ObservabilitySample
