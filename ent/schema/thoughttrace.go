package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ThoughtTrace holds the schema definition for the ThoughtTrace entity.
// Append-only step rows addressable by trace_id for replay and auditing.
// Several rows share one trace_id, one per stage.
type ThoughtTrace struct {
	ent.Schema
}

// Fields of the ThoughtTrace.
func (ThoughtTrace) Fields() []ent.Field {
	return []ent.Field{
		field.String("trace_id"),
		field.String("session_id"),
		field.String("source").
			Comment("runtime | agent | task | vision | safety"),
		field.String("stage"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.Int64("ts_ms"),
	}
}

// Indexes of the ThoughtTrace.
func (ThoughtTrace) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("trace_id", "ts_ms"),
		index.Fields("session_id", "ts_ms"),
	}
}
