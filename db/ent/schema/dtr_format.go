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

type DtrFormat struct{ ent.Schema }

func (DtrFormat) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "dtr_formats"},
	}
}

func (DtrFormat) Fields() []ent.Field {
	return []ent.Field{
		// v7 ids keep (created_at, id) ordering exact within a timestamp tick
		field.UUID("id", uuid.UUID{}).Default(entity.NewOrderedID).Immutable(),
		field.String("name").NotEmpty(),
		// nil means the format is usable across all companies
		field.UUID("company_id", uuid.UUID{}).Optional().Nillable(),
		field.String("pattern").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("extraction_rules", map[string]string{}),
		// sample text the format was authored from; audit only, never parsed
		field.String("example").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("is_active").Default(true),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (DtrFormat) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id", "is_active"),
		index.Fields("created_at"),
	}
}
