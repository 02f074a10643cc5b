package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LifelogImage holds the schema definition for the LifelogImage entity.
// One row per ingested capture. The multi-hash key carries the perceptual
// and the content hash in one column (dhash:<hex>;blake2:<hex>).
type LifelogImage struct {
	ent.Schema
}

// Fields of the LifelogImage.
func (LifelogImage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("image_id").
			Unique().
			Immutable(),
		field.String("session_id"),
		field.String("device_id").
			Optional(),
		field.String("image_uri").
			Comment("asset:// URI of the stored bytes"),
		field.String("dhash").
			Comment("Multi-hash key: dhash:<hex>;blake2:<hex>"),
		field.Bool("is_dedup").
			Default(false),
		field.String("content_type").
			Default("image/jpeg"),
		field.Int("size_bytes").
			Default(0),
		field.Int64("ts_ms"),
		field.Int64("created_at_ms"),
	}
}

// Indexes of the LifelogImage.
func (LifelogImage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "ts_ms"),
		index.Fields("session_id", "dhash"),
	}
}
