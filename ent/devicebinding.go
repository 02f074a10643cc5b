// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/opencane/edged/ent/devicebinding"
)

// DeviceBinding is the model entity for the DeviceBinding schema.
type DeviceBinding struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DeviceID holds the value of the "device_id" field.
	DeviceID string `json:"device_id,omitempty"`
	// SHA-256 of the per-device token
	DeviceTokenHash string `json:"-"`
	// Status holds the value of the "status" field.
	Status devicebinding.Status `json:"status,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// BindingMetadata holds the value of the "binding_metadata" field.
	BindingMetadata map[string]interface{} `json:"binding_metadata,omitempty"`
	// ActivatedAtMs holds the value of the "activated_at_ms" field.
	ActivatedAtMs int64 `json:"activated_at_ms,omitempty"`
	// RevokedAtMs holds the value of the "revoked_at_ms" field.
	RevokedAtMs int64 `json:"revoked_at_ms,omitempty"`
	// RevokeReason holds the value of the "revoke_reason" field.
	RevokeReason string `json:"revoke_reason,omitempty"`
	// CreatedAtMs holds the value of the "created_at_ms" field.
	CreatedAtMs int64 `json:"created_at_ms,omitempty"`
	// UpdatedAtMs holds the value of the "updated_at_ms" field.
	UpdatedAtMs  int64 `json:"updated_at_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DeviceBinding) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case devicebinding.FieldBindingMetadata:
			values[i] = new([]byte)
		case devicebinding.FieldID, devicebinding.FieldActivatedAtMs, devicebinding.FieldRevokedAtMs, devicebinding.FieldCreatedAtMs, devicebinding.FieldUpdatedAtMs:
			values[i] = new(sql.NullInt64)
		case devicebinding.FieldDeviceID, devicebinding.FieldDeviceTokenHash, devicebinding.FieldStatus, devicebinding.FieldUserID, devicebinding.FieldRevokeReason:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DeviceBinding fields.
func (_m *DeviceBinding) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case devicebinding.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case devicebinding.FieldDeviceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field device_id", values[i])
			} else if value.Valid {
				_m.DeviceID = value.String
			}
		case devicebinding.FieldDeviceTokenHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field device_token_hash", values[i])
			} else if value.Valid {
				_m.DeviceTokenHash = value.String
			}
		case devicebinding.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = devicebinding.Status(value.String)
			}
		case devicebinding.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case devicebinding.FieldBindingMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field binding_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BindingMetadata); err != nil {
					return fmt.Errorf("unmarshal field binding_metadata: %w", err)
				}
			}
		case devicebinding.FieldActivatedAtMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field activated_at_ms", values[i])
			} else if value.Valid {
				_m.ActivatedAtMs = value.Int64
			}
		case devicebinding.FieldRevokedAtMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field revoked_at_ms", values[i])
			} else if value.Valid {
				_m.RevokedAtMs = value.Int64
			}
		case devicebinding.FieldRevokeReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field revoke_reason", values[i])
			} else if value.Valid {
				_m.RevokeReason = value.String
			}
		case devicebinding.FieldCreatedAtMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created_at_ms", values[i])
			} else if value.Valid {
				_m.CreatedAtMs = value.Int64
			}
		case devicebinding.FieldUpdatedAtMs:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DeviceBinding.
// This includes values selected through modifiers, order, etc.
func (_m *DeviceBinding) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DeviceBinding.
// Note that you need to call DeviceBinding.Unwrap() before calling this method if this DeviceBinding
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DeviceBinding) Update() *DeviceBindingUpdateOne {
	return NewDeviceBindingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DeviceBinding entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DeviceBinding) Unwrap() *DeviceBinding {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DeviceBinding is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DeviceBinding) String() string {
	var builder strings.Builder
	builder.WriteString("DeviceBinding(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("device_id=")
	builder.WriteString(_m.DeviceID)
	builder.WriteString(", ")
	builder.WriteString("device_token_hash=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("binding_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.BindingMetadata))
	builder.WriteString(", ")
	builder.WriteString("activated_at_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActivatedAtMs))
	builder.WriteString(", ")
	builder.WriteString("revoked_at_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.RevokedAtMs))
	builder.WriteString(", ")
	builder.WriteString("revoke_reason=")
	builder.WriteString(_m.RevokeReason)
	builder.WriteString(", ")
	builder.WriteString("created_at_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedAtMs))
	builder.WriteString(", ")
	builder.WriteString("updated_at_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.UpdatedAtMs))
	builder.WriteByte(')')
	return builder.String()
}

// DeviceBindings is a parsable slice of DeviceBinding.
type DeviceBindings []*DeviceBinding
