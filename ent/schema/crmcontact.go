package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CRMContact holds the schema definition for the CRMContact entity.
// It is a local mirror of a provider-side contact, populated by the
// contact import flow and kept current by inbound webhook events.
type CRMContact struct {
	ent.Schema
}

// Fields of the CRMContact.
func (CRMContact) Fields() []ent.Field {
	return []ent.Field{
		field.Int("integration_id").
			Comment("CRM integration this contact was imported through"),
		field.String("external_contact_id").
			NotEmpty().
			Comment("Contact identifier in the external CRM"),
		field.String("email").
			Optional().
			Comment("Contact email"),
		field.String("first_name").
			Optional().
			Comment("Contact first name"),
		field.String("last_name").
			Optional().
			Comment("Contact last name"),
		field.String("company").
			Optional().
			Comment("Contact company name"),
		field.String("phone").
			Optional().
			Comment("Contact phone number"),
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

// Edges of the CRMContact.
func (CRMContact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("integration", CRMIntegration.Type).
			Ref("contacts").
			Unique().
			Required().
			Field("integration_id").
			Comment("Parent CRM integration"),
	}
}

// Indexes of the CRMContact.
func (CRMContact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("integration_id"),
		index.Fields("email"),
		// Unique: one mirror row per provider contact per integration
		index.Fields("integration_id", "external_contact_id").Unique(),
	}
}
