// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/opencane/edged/ent/lifelogimage"
)

// LifelogImage is the model entity for the LifelogImage schema.
type LifelogImage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// DeviceID holds the value of the "device_id" field.
	DeviceID string `json:"device_id,omitempty"`
	// asset:// URI of the stored bytes
	ImageURI string `json:"image_uri,omitempty"`
	// Multi-hash key: dhash:<hex>;blake2:<hex>
	Dhash string `json:"dhash,omitempty"`
	// IsDedup holds the value of the "is_dedup" field.
	IsDedup bool `json:"is_dedup,omitempty"`
	// ContentType holds the value of the "content_type" field.
	ContentType string `json:"content_type,omitempty"`
	// SizeBytes holds the value of the "size_bytes" field.
	SizeBytes int `json:"size_bytes,omitempty"`
	// TsMs holds the value of the "ts_ms" field.
	TsMs int64 `json:"ts_ms,omitempty"`
	// CreatedAtMs holds the value of the "created_at_ms" field.
	CreatedAtMs  int64 `json:"created_at_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LifelogImage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lifelogimage.FieldIsDedup:
			values[i] = new(sql.NullBool)
		case lifelogimage.FieldSizeBytes, lifelogimage.FieldTsMs, lifelogimage.FieldCreatedAtMs:
			values[i] = new(sql.NullInt64)
		case lifelogimage.FieldID, lifelogimage.FieldSessionID, lifelogimage.FieldDeviceID, lifelogimage.FieldImageURI, lifelogimage.FieldDhash, lifelogimage.FieldContentType:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LifelogImage fields.
func (_m *LifelogImage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lifelogimage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case lifelogimage.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case lifelogimage.FieldDeviceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field device_id", values[i])
			} else if value.Valid {
				_m.DeviceID = value.String
			}
		case lifelogimage.FieldImageURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_uri", values[i])
			} else if value.Valid {
				_m.ImageURI = value.String
			}
		case lifelogimage.FieldDhash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dhash", values[i])
			} else if value.Valid {
				_m.Dhash = value.String
			}
		case lifelogimage.FieldIsDedup:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_dedup", values[i])
			} else if value.Valid {
				_m.IsDedup = value.Bool
			}
		case lifelogimage.FieldContentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_type", values[i])
			} else if value.Valid {
				_m.ContentType = value.String
			}
		case lifelogimage.FieldSizeBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field size_bytes", values[i])
			} else if value.Valid {
				_m.SizeBytes = int(value.Int64)
			}
		case lifelogimage.FieldTsMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ts_ms", values[i])
			} else if value.Valid {
				_m.TsMs = value.Int64
			}
		case lifelogimage.FieldCreatedAtMs:
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

// Value returns the ent.Value that was dynamically selected and assigned to the LifelogImage.
// This includes values selected through modifiers, order, etc.
func (_m *LifelogImage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LifelogImage.
// Note that you need to call LifelogImage.Unwrap() before calling this method if this LifelogImage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LifelogImage) Update() *LifelogImageUpdateOne {
	return NewLifelogImageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LifelogImage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LifelogImage) Unwrap() *LifelogImage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LifelogImage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LifelogImage) String() string {
	var builder strings.Builder
	builder.WriteString("LifelogImage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("device_id=")
	builder.WriteString(_m.DeviceID)
	builder.WriteString(", ")
	builder.WriteString("image_uri=")
	builder.WriteString(_m.ImageURI)
	builder.WriteString(", ")
	builder.WriteString("dhash=")
	builder.WriteString(_m.Dhash)
	builder.WriteString(", ")
	builder.WriteString("is_dedup=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDedup))
	builder.WriteString(", ")
	builder.WriteString("content_type=")
	builder.WriteString(_m.ContentType)
	builder.WriteString(", ")
	builder.WriteString("size_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.SizeBytes))
	builder.WriteString(", ")
	builder.WriteString("ts_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TsMs))
	builder.WriteString(", ")
	builder.WriteString("created_at_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedAtMs))
	builder.WriteByte(')')
	return builder.String()
}

// LifelogImages is a parsable slice of LifelogImage.
type LifelogImages []*LifelogImage
