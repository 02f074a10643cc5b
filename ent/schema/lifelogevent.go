package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LifelogEvent holds the schema definition for the LifelogEvent entity.
// Append-only timeline of everything worth remembering about a session:
// voice turns, vision captures, safety decisions, task outcomes.
type LifelogEvent struct {
	ent.Schema
}

// Fields of the LifelogEvent.
func (LifelogEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("session_id"),
		field.String("device_id").
			Optional(),
		field.String("event_type").
			Comment("voice_turn | image_ingested | safety_policy | device_error | ..."),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.Text("text").
			Optional().
			Comment("Human-readable event text (full-text searchable)"),
		field.String("risk_level").
			Optional().
			Comment("P0..P3, empty when not risk-scored"),
		field.Float("confidence").
			Default(1.0),
		field.Int64("ts_ms"),
		field.Int64("created_at_ms"),
	}
}

// Indexes of the LifelogEvent.
func (LifelogEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "ts_ms"),
		index.Fields("device_id", "ts_ms"),
		index.Fields("event_type", "ts_ms"),
		index.Fields("risk_level"),
	}
}
