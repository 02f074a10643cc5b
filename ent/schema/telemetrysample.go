package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TelemetrySample holds the schema definition for the TelemetrySample entity.
// Normalized telemetry in the opencane.telemetry.v1 shape; the raw payload
// is kept alongside for audit.
type TelemetrySample struct {
	ent.Schema
}

// Fields of the TelemetrySample.
func (TelemetrySample) Fields() []ent.Field {
	return []ent.Field{
		field.String("device_id"),
		field.String("session_id").
			Optional(),
		field.String("schema_version").
			Default("opencane.telemetry.v1"),
		field.JSON("battery", map[string]interface{}{}).
			Optional(),
		field.JSON("network", map[string]interface{}{}).
			Optional(),
		field.JSON("location", map[string]interface{}{}).
			Optional(),
		field.JSON("imu", map[string]interface{}{}).
			Optional(),
		field.Float("temperature_c").
			Optional().
			Nillable(),
		field.JSON("raw", map[string]interface{}{}).
			Optional().
			Comment("Original payload before normalization"),
		field.Int64("ts_ms"),
		field.Int64("created_at_ms"),
	}
}

// Indexes of the TelemetrySample.
func (TelemetrySample) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("device_id", "ts_ms"),
		index.Fields("session_id", "ts_ms"),
	}
}
