package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/docufill/docpipe/constants"
	"github.com/docufill/docpipe/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("client_id").NotEmpty(),
		field.String("source_path").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.String("content_hash").NotEmpty().MinLen(64).MaxLen(64).
			SchemaType(map[string]string{dialect.Postgres: "char(64)"}),
		field.Int("page_count").Default(0),
		field.Time("uploaded_at").Default(time.Now).Immutable(),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("jobs", PipelineJob.Type),
		edge.To("results", ExtractionResult.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		// the same bytes for the same client are ingested once
		index.Fields("client_id", "content_hash").Unique(),
		index.Fields("client_id", "uploaded_at"),
	}
}
