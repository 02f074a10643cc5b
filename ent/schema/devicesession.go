package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DeviceSession holds the schema definition for the DeviceSession entity.
// One row per (device_id, session_id); written through on every
// state-affecting change so session history survives restarts.
type DeviceSession struct {
	ent.Schema
}

// Fields of the DeviceSession.
func (DeviceSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("device_id"),
		field.String("session_id"),
		field.Enum("state").
			Values("connecting", "ready", "listening", "thinking", "speaking", "closed").
			Default("connecting"),
		field.Int64("created_at_ms"),
		field.Int64("last_seen_ms"),
		field.Int64("last_inbound_seq").
			Default(-1),
		field.Int64("last_outbound_seq").
			Default(0),
		field.Int64("closed_at_ms").
			Optional(),
		field.String("close_reason").
			Optional(),
		field.JSON("session_metadata", map[string]interface{}{}).
			Optional(),
		field.JSON("telemetry", map[string]interface{}{}).
			Optional().
			Comment("Latest normalized telemetry snapshot"),
		field.Int64("updated_at_ms"),
	}
}

// Indexes of the DeviceSession.
func (DeviceSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("device_id", "session_id").
			Unique(),
		index.Fields("device_id", "last_seen_ms"),
		index.Fields("state"),
	}
}
