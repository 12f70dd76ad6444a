package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CRMIntegration holds the schema definition for the CRMIntegration entity.
type CRMIntegration struct {
	ent.Schema
}

// Fields of the CRMIntegration.
func (CRMIntegration) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Comment("User who owns this integration"),
		field.Enum("provider").
			Values("hubspot", "salesforce", "pipedrive", "zoho").
			Comment("CRM provider"),
		field.Bool("active").
			Default(true).
			Comment("Whether integration is connected and usable"),
		field.String("access_token").
			Sensitive().
			Comment("OAuth access token"),
		field.String("refresh_token").
			Optional().
			Sensitive().
			Comment("OAuth refresh token, cleared on disconnect"),
		field.Time("token_expires_at").
			Optional().
			Nillable().
			Comment("When access token expires"),
		field.String("account_id").
			Comment("Provider-side account identifier used to route inbound webhooks (portal id, org id, account domain)"),
		field.String("instance_url").
			Optional().
			Comment("CRM instance URL (Salesforce)"),
		field.String("api_domain").
			Optional().
			Comment("Tenant API domain (Pipedrive, Zoho)"),
		field.Enum("sync_direction").
			Values("bidirectional", "outbound", "inbound").
			Default("bidirectional").
			Comment("Which sync directions are permitted"),
		field.Bool("auto_sync_contacts").
			Default(false).
			Comment("Periodically import provider contacts"),
		field.JSON("status_sync_events", []string{}).
			Optional().
			Comment("Proposal lifecycle events that trigger an outbound push"),
		field.Time("last_sync_at").
			Optional().
			Nillable().
			Comment("Last successful sync timestamp"),
		field.String("last_sync_error").
			Optional().
			Comment("Last sync error message"),
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

// Edges of the CRMIntegration.
func (CRMIntegration) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("crm_integrations").
			Unique().
			Required().
			Field("user_id").
			Comment("Integration owner"),
		edge.To("stage_mappings", StageMapping.Type).
			Comment("Status-to-stage correspondences for this integration"),
		edge.To("deal_links", DealLink.Type).
			Comment("Proposal-to-deal associations under this integration"),
		edge.To("contacts", CRMContact.Type).
			Comment("Locally mirrored provider contacts"),
	}
}

// Indexes of the CRMIntegration.
func (CRMIntegration) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("provider"),
		index.Fields("active"),
		// Inbound events carry only the provider account identifier.
		index.Fields("provider", "account_id"),
		// Unique: one integration per user per provider
		index.Fields("user_id", "provider").Unique(),
	}
}
