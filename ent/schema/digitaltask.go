package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DigitalTask holds the schema definition for the DigitalTask entity.
// Long-running background tasks spoken into existence by the user. Status
// transitions are forward-only and compare-and-swap guarded; canceled wins
// over a concurrent success.
type DigitalTask struct {
	ent.Schema
}

// Fields of the DigitalTask.
func (DigitalTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("session_id"),
		field.String("device_id").
			Optional(),
		field.Text("goal").
			Comment("Verbatim user instruction"),
		field.Enum("status").
			Values("pending", "running", "success", "failed", "timeout", "canceled").
			Default("pending"),
		field.JSON("steps", []map[string]interface{}{}).
			Optional().
			Comment("Append-only stage log: accepted, running, <terminal>, recovered"),
		field.Text("result").
			Optional(),
		field.String("error_message").
			Optional(),
		field.Int("timeout_seconds").
			Default(120),
		field.JSON("push_context", map[string]interface{}{}).
			Optional().
			Comment("Device, notify/speak flags, interrupt-previous flag"),
		field.Int64("created_at_ms"),
		field.Int64("updated_at_ms"),
		field.Int64("completed_at_ms").
			Optional(),
	}
}

// Indexes of the DigitalTask.
func (DigitalTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("device_id", "created_at_ms"),
		index.Fields("session_id"),
		index.Fields("status"),
	}
}
