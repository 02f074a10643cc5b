package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DeviceOperation holds the schema definition for the DeviceOperation entity.
// A durable command envelope enqueued by a control-plane caller, tracking
// the queued -> sent -> acked/failed/canceled lifecycle and the device's
// tool_result.
type DeviceOperation struct {
	ent.Schema
}

// Fields of the DeviceOperation.
func (DeviceOperation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("operation_id").
			Unique().
			Immutable(),
		field.String("device_id"),
		field.String("session_id").
			Optional(),
		field.String("op_type").
			Comment("set_config | tool_call | ota_plan"),
		field.String("command_type").
			Comment("Derived 1:1 from op_type"),
		field.Enum("status").
			Values("queued", "sent", "acked", "failed", "canceled").
			Default("queued"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.JSON("result", map[string]interface{}{}).
			Optional().
			Comment("Device tool_result payload"),
		field.String("error_message").
			Optional(),
		field.Int64("created_at_ms"),
		field.Int64("sent_at_ms").
			Optional(),
		field.Int64("acked_at_ms").
			Optional(),
	}
}

// Indexes of the DeviceOperation.
func (DeviceOperation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("device_id", "created_at_ms"),
		index.Fields("status"),
	}
}
