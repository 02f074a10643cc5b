package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DeviceBinding holds the schema definition for the DeviceBinding entity.
// Tracks the registered -> bound -> activated -> revoked lifecycle of a
// device credential. Only an activated binding with a matching token passes
// authentication when enforcement is on.
type DeviceBinding struct {
	ent.Schema
}

// Fields of the DeviceBinding.
func (DeviceBinding) Fields() []ent.Field {
	return []ent.Field{
		field.String("device_id").
			Unique(),
		field.String("device_token_hash").
			Optional().
			Sensitive().
			Comment("SHA-256 of the per-device token"),
		field.Enum("status").
			Values("registered", "bound", "activated", "revoked").
			Default("registered"),
		field.String("user_id").
			Optional(),
		field.JSON("binding_metadata", map[string]interface{}{}).
			Optional(),
		field.Int64("activated_at_ms").
			Optional(),
		field.Int64("revoked_at_ms").
			Optional(),
		field.String("revoke_reason").
			Optional(),
		field.Int64("created_at_ms"),
		field.Int64("updated_at_ms"),
	}
}

// Indexes of the DeviceBinding.
func (DeviceBinding) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("status"),
	}
}
