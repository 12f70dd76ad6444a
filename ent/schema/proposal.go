package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Proposal holds the schema definition for the Proposal entity.
type Proposal struct {
	ent.Schema
}

// Fields of the Proposal.
func (Proposal) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Comment("Proposal owner"),
		field.String("title").
			NotEmpty().
			Comment("Proposal title"),
		field.Float("amount").
			Default(0).
			Comment("Proposal value"),
		field.String("currency").
			Default("USD").
			Comment("ISO currency code"),
		field.Enum("status").
			Values("draft", "sent", "viewed", "approved", "rejected", "signed", "expired").
			Default("draft").
			Comment("Proposal lifecycle status"),
		field.String("signed_document_url").
			Optional().
			Comment("Location of the signed PDF, set once signed"),
		field.Time("status_changed_at").
			Default(time.Now).
			Comment("When status last changed"),
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

// Edges of the Proposal.
func (Proposal) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("proposals").
			Unique().
			Required().
			Field("user_id").
			Comment("Proposal owner"),
		edge.To("deal_links", DealLink.Type).
			Comment("External CRM deals linked to this proposal"),
	}
}

// Indexes of the Proposal.
func (Proposal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("status"),
	}
}
