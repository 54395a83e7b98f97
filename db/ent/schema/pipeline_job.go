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

	"github.com/docufill/docpipe/constants"
	"github.com/docufill/docpipe/db/ent/schema/utils"
)

type PipelineJob struct{ ent.Schema }

func (PipelineJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "pipeline_jobs"},
	}
}

func (PipelineJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}),
		field.String("client_id").NotEmpty(),
		field.UUID("template_id", uuid.UUID{}).Optional().Nillable(),
		field.String("state").
			Default(string(constants.JobStateQueued)).
			Validate(utils.EnumValidator(constants.JobStatesAsStrings()...)),
		field.Int("attempt").Default(0),
		field.Int("max_attempts").Default(3),
		field.Int("progress").Default(0),
		field.JSON("classification", json.RawMessage{}).Optional(),
		field.JSON("mappings", json.RawMessage{}).Optional(),
		field.JSON("last_assessment", json.RawMessage{}).Optional(),
		field.String("error_code").Optional().Nillable(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (PipelineJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("jobs").
			Field("document_id").
			Unique().
			Required(),
		edge.From("template", FormTemplate.Type).
			Ref("jobs").
			Field("template_id").
			Unique(),
		edge.To("results", ExtractionResult.Type),
	}
}

func (PipelineJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_id", "state", "started_at"),
		index.Fields("document_id"),
		index.Fields("state"),
	}
}
