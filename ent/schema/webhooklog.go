package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WebhookLog holds the schema definition for the WebhookLog entity.
// Append-only audit trail of inbound CRM webhook events. Rows are written
// once after an event finishes routing and never mutated afterwards.
type WebhookLog struct {
	ent.Schema
}

// Fields of the WebhookLog.
func (WebhookLog) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("provider").
			Values("hubspot", "salesforce", "pipedrive", "zoho").
			Comment("CRM provider that sent the event"),
		field.String("event_type").
			Comment("Provider event classification, e.g. deal.stage_changed"),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Comment("Raw event payload as received"),
		field.Bool("processed").
			Default(false).
			Comment("Whether routing completed without error"),
		field.String("processing_error").
			Optional().
			Comment("Error message when processing failed"),
		field.Int("integration_id").
			Optional().
			Comment("Resolved owning integration, when one was found"),
		field.Time("received_at").
			Default(time.Now).
			Immutable().
			Comment("When the event arrived"),
	}
}

// Indexes of the WebhookLog.
func (WebhookLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("event_type"),
		index.Fields("integration_id"),
		index.Fields("received_at"),
	}
}
