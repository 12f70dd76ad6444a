package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StageMapping holds the schema definition for the StageMapping entity.
type StageMapping struct {
	ent.Schema
}

// Fields of the StageMapping.
func (StageMapping) Fields() []ent.Field {
	return []ent.Field{
		field.Int("integration_id").
			Comment("Owning CRM integration"),
		field.String("proposal_status").
			NotEmpty().
			Comment("Internal proposal status value"),
		field.String("external_stage_id").
			NotEmpty().
			Comment("Provider pipeline stage identifier"),
		field.String("external_stage_name").
			Optional().
			Comment("Provider pipeline stage display name"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the StageMapping.
func (StageMapping) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("integration", CRMIntegration.Type).
			Ref("stage_mappings").
			Unique().
			Required().
			Field("integration_id").
			Comment("Parent CRM integration"),
	}
}

// Indexes of the StageMapping.
func (StageMapping) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("integration_id"),
		index.Fields("external_stage_id"),
		// Unique: at most one mapping per internal status per integration
		index.Fields("integration_id", "proposal_status").Unique(),
	}
}
