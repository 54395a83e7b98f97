package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type ExtractionResult struct{ ent.Schema }

func (ExtractionResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_results"},
	}
}

func (ExtractionResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}),
		field.UUID("job_id", uuid.UUID{}),
		field.Int("attempt").Default(1),
		field.JSON("fields", json.RawMessage{}).Optional(),
		field.Float("confidence").Default(0),
		field.Int("pages").Default(0),
		field.Ints("failed_pages").Optional(),
		field.String("model_name").Optional().Nillable(),
		field.Int64("elapsed_ms").Default(0),
		field.String("ocr_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (ExtractionResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("results").
			Field("document_id").
			Unique().
			Required(),
		edge.From("job", PipelineJob.Type).
			Ref("results").
			Field("job_id").
			Unique().
			Required(),
	}
}

func (ExtractionResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "created_at"),
		index.Fields("job_id"),
	}
}
