package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type ClientProfile struct{ ent.Schema }

func (ClientProfile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "client_profiles"},
	}
}

func (ClientProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("client_id").NotEmpty().Unique(),
		field.JSON("fields", json.RawMessage{}).Optional(),
		// bumped on every write; guards against lost updates
		field.Int("version").Default(1),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ClientProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_id").Unique(),
	}
}
