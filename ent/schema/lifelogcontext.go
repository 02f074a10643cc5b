package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LifelogContext holds the schema definition for the LifelogContext entity.
// Structured analyzer output joined to its image row. Deduplicated captures
// still get a placeholder context with is_dedup carried on the image.
type LifelogContext struct {
	ent.Schema
}

// Fields of the LifelogContext.
func (LifelogContext) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("context_id").
			Unique().
			Immutable(),
		field.String("image_id"),
		field.String("session_id"),
		field.String("semantic_title").
			Optional(),
		field.Text("semantic_summary").
			Optional(),
		field.JSON("objects", []string{}).
			Optional(),
		field.JSON("ocr", []string{}).
			Optional(),
		field.JSON("risk_hints", []string{}).
			Optional(),
		field.Text("actionable_summary").
			Optional(),
		field.String("risk_level").
			Default("P3"),
		field.Float("risk_score").
			Default(0),
		field.Float("confidence").
			Default(1.0),
		field.Int64("created_at_ms"),
	}
}

// Indexes of the LifelogContext.
func (LifelogContext) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("image_id"),
		index.Fields("session_id", "created_at_ms"),
		index.Fields("risk_level"),
	}
}
