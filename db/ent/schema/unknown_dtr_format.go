package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"dtr-engine/internal/entity"
)

// UnknownDtrFormat rows are a read-only audit trail: the only mutation is
// the single is_processed flip at approval time.
type UnknownDtrFormat struct{ ent.Schema }

func (UnknownDtrFormat) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "unknown_dtr_formats"},
	}
}

func (UnknownDtrFormat) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(entity.NewOrderedID).Immutable(),
		field.String("raw_text").NotEmpty().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bytes("image_data").Optional().Immutable(),
		field.UUID("company_id", uuid.UUID{}).Optional().Nillable().Immutable(),
		// best-effort partial extraction captured at intake time
		field.JSON("parsed_data", map[string]string{}).Optional().Immutable(),
		field.Bool("is_processed").Default(false),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (UnknownDtrFormat) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_processed", "created_at"),
	}
}
