package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PushUpdate holds the schema definition for the PushUpdate entity.
// Task status updates whose callback delivery exhausted its retries; a later
// flush replays them in (device_id, created_at) order. send_key makes
// replays idempotent.
type PushUpdate struct {
	ent.Schema
}

// Fields of the PushUpdate.
func (PushUpdate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("update_id").
			Unique().
			Immutable(),
		field.String("device_id"),
		field.String("session_id").
			Optional(),
		field.String("task_id"),
		field.String("send_key").
			Unique().
			Comment("Idempotent delivery key: task_id + status"),
		field.JSON("payload", map[string]interface{}{}),
		field.Enum("status").
			Values("pending", "sent").
			Default("pending"),
		field.Int64("created_at_ms"),
		field.Int64("sent_at_ms").
			Optional(),
	}
}

// Indexes of the PushUpdate.
func (PushUpdate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("device_id", "status", "created_at_ms"),
	}
}
