package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DealLink holds the schema definition for the DealLink entity.
type DealLink struct {
	ent.Schema
}

// Fields of the DealLink.
func (DealLink) Fields() []ent.Field {
	return []ent.Field{
		field.Int("integration_id").
			Comment("CRM integration this link belongs to"),
		field.Int("proposal_id").
			Comment("Linked proposal"),
		field.String("external_deal_id").
			NotEmpty().
			Comment("Deal identifier in the external CRM"),
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

// Edges of the DealLink.
func (DealLink) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("integration", CRMIntegration.Type).
			Ref("deal_links").
			Unique().
			Required().
			Field("integration_id").
			Comment("Parent CRM integration"),
		edge.From("proposal", Proposal.Type).
			Ref("deal_links").
			Unique().
			Required().
			Field("proposal_id").
			Comment("Linked proposal"),
	}
}

// Indexes of the DealLink.
func (DealLink) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("integration_id"),
		index.Fields("proposal_id"),
		index.Fields("external_deal_id"),
		// Unique: one deal per proposal per integration
		index.Fields("integration_id", "proposal_id").Unique(),
	}
}
