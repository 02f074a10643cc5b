package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ObservabilitySample holds the schema definition for the ObservabilitySample
// entity. Periodic counter snapshots from the runtime so operators can chart
// throughput and drop rates without an external metrics stack.
type ObservabilitySample struct {
	ent.Schema
}

// Fields of the ObservabilitySample.
func (ObservabilitySample) Fields() []ent.Field {
	return []ent.Field{
		field.String("scope").
			Comment("runtime | pipeline | adapter | tasks"),
		field.JSON("counters", map[string]interface{}{}),
		field.Int64("ts_ms"),
	}
}

// Indexes of the ObservabilitySample.
func (ObservabilitySample) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scope", "ts_ms"),
	}
}
