// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CrmContactsColumns holds the columns for the "crm_contacts" table.
	CrmContactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "external_contact_id", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Nullable: true},
		{Name: "last_name", Type: field.TypeString, Nullable: true},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "integration_id", Type: field.TypeInt},
	}
	// CrmContactsTable holds the schema information for the "crm_contacts" table.
	CrmContactsTable = &schema.Table{
		Name:       "crm_contacts",
		Columns:    CrmContactsColumns,
		PrimaryKey: []*schema.Column{CrmContactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "crm_contacts_crm_integrations_contacts",
				Columns:    []*schema.Column{CrmContactsColumns[9]},
				RefColumns: []*schema.Column{CrmIntegrationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "crmcontact_integration_id",
				Unique:  false,
				Columns: []*schema.Column{CrmContactsColumns[9]},
			},
			{
				Name:    "crmcontact_email",
				Unique:  false,
				Columns: []*schema.Column{CrmContactsColumns[2]},
			},
			{
				Name:    "crmcontact_integration_id_external_contact_id",
				Unique:  true,
				Columns: []*schema.Column{CrmContactsColumns[9], CrmContactsColumns[1]},
			},
		},
	}
	// CrmIntegrationsColumns holds the columns for the "crm_integrations" table.
	CrmIntegrationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeEnum, Enums: []string{"hubspot", "salesforce", "pipedrive", "zoho"}},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "access_token", Type: field.TypeString},
		{Name: "refresh_token", Type: field.TypeString, Nullable: true},
		{Name: "token_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "account_id", Type: field.TypeString},
		{Name: "instance_url", Type: field.TypeString, Nullable: true},
		{Name: "api_domain", Type: field.TypeString, Nullable: true},
		{Name: "sync_direction", Type: field.TypeEnum, Enums: []string{"bidirectional", "outbound", "inbound"}, Default: "bidirectional"},
		{Name: "auto_sync_contacts", Type: field.TypeBool, Default: false},
		{Name: "status_sync_events", Type: field.TypeJSON, Nullable: true},
		{Name: "last_sync_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_sync_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
	}
	// CrmIntegrationsTable holds the schema information for the "crm_integrations" table.
	CrmIntegrationsTable = &schema.Table{
		Name:       "crm_integrations",
		Columns:    CrmIntegrationsColumns,
		PrimaryKey: []*schema.Column{CrmIntegrationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "crm_integrations_users_crm_integrations",
				Columns:    []*schema.Column{CrmIntegrationsColumns[16]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "crmintegration_user_id",
				Unique:  false,
				Columns: []*schema.Column{CrmIntegrationsColumns[16]},
			},
			{
				Name:    "crmintegration_provider",
				Unique:  false,
				Columns: []*schema.Column{CrmIntegrationsColumns[1]},
			},
			{
				Name:    "crmintegration_active",
				Unique:  false,
				Columns: []*schema.Column{CrmIntegrationsColumns[2]},
			},
			{
				Name:    "crmintegration_provider_account_id",
				Unique:  false,
				Columns: []*schema.Column{CrmIntegrationsColumns[1], CrmIntegrationsColumns[6]},
			},
			{
				Name:    "crmintegration_user_id_provider",
				Unique:  true,
				Columns: []*schema.Column{CrmIntegrationsColumns[16], CrmIntegrationsColumns[1]},
			},
		},
	}
	// DealLinksColumns holds the columns for the "deal_links" table.
	DealLinksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "external_deal_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "integration_id", Type: field.TypeInt},
		{Name: "proposal_id", Type: field.TypeInt},
	}
	// DealLinksTable holds the schema information for the "deal_links" table.
	DealLinksTable = &schema.Table{
		Name:       "deal_links",
		Columns:    DealLinksColumns,
		PrimaryKey: []*schema.Column{DealLinksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "deal_links_crm_integrations_deal_links",
				Columns:    []*schema.Column{DealLinksColumns[4]},
				RefColumns: []*schema.Column{CrmIntegrationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "deal_links_proposals_deal_links",
				Columns:    []*schema.Column{DealLinksColumns[5]},
				RefColumns: []*schema.Column{ProposalsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "deallink_integration_id",
				Unique:  false,
				Columns: []*schema.Column{DealLinksColumns[4]},
			},
			{
				Name:    "deallink_proposal_id",
				Unique:  false,
				Columns: []*schema.Column{DealLinksColumns[5]},
			},
			{
				Name:    "deallink_external_deal_id",
				Unique:  false,
				Columns: []*schema.Column{DealLinksColumns[1]},
			},
			{
				Name:    "deallink_integration_id_proposal_id",
				Unique:  true,
				Columns: []*schema.Column{DealLinksColumns[4], DealLinksColumns[5]},
			},
		},
	}
	// ProposalsColumns holds the columns for the "proposals" table.
	ProposalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "amount", Type: field.TypeFloat64, Default: 0},
		{Name: "currency", Type: field.TypeString, Default: "USD"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "sent", "viewed", "approved", "rejected", "signed", "expired"}, Default: "draft"},
		{Name: "signed_document_url", Type: field.TypeString, Nullable: true},
		{Name: "status_changed_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
	}
	// ProposalsTable holds the schema information for the "proposals" table.
	ProposalsTable = &schema.Table{
		Name:       "proposals",
		Columns:    ProposalsColumns,
		PrimaryKey: []*schema.Column{ProposalsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "proposals_users_proposals",
				Columns:    []*schema.Column{ProposalsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "proposal_user_id",
				Unique:  false,
				Columns: []*schema.Column{ProposalsColumns[9]},
			},
			{
				Name:    "proposal_status",
				Unique:  false,
				Columns: []*schema.Column{ProposalsColumns[4]},
			},
		},
	}
	// StageMappingsColumns holds the columns for the "stage_mappings" table.
	StageMappingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "proposal_status", Type: field.TypeString},
		{Name: "external_stage_id", Type: field.TypeString},
		{Name: "external_stage_name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "integration_id", Type: field.TypeInt},
	}
	// StageMappingsTable holds the schema information for the "stage_mappings" table.
	StageMappingsTable = &schema.Table{
		Name:       "stage_mappings",
		Columns:    StageMappingsColumns,
		PrimaryKey: []*schema.Column{StageMappingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "stage_mappings_crm_integrations_stage_mappings",
				Columns:    []*schema.Column{StageMappingsColumns[6]},
				RefColumns: []*schema.Column{CrmIntegrationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stagemapping_integration_id",
				Unique:  false,
				Columns: []*schema.Column{StageMappingsColumns[6]},
			},
			{
				Name:    "stagemapping_external_stage_id",
				Unique:  false,
				Columns: []*schema.Column{StageMappingsColumns[2]},
			},
			{
				Name:    "stagemapping_integration_id_proposal_status",
				Unique:  true,
				Columns: []*schema.Column{StageMappingsColumns[6], StageMappingsColumns[1]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "email_verified", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// WebhookLogsColumns holds the columns for the "webhook_logs" table.
	WebhookLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeEnum, Enums: []string{"hubspot", "salesforce", "pipedrive", "zoho"}},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "processed", Type: field.TypeBool, Default: false},
		{Name: "processing_error", Type: field.TypeString, Nullable: true},
		{Name: "integration_id", Type: field.TypeInt, Nullable: true},
		{Name: "received_at", Type: field.TypeTime},
	}
	// WebhookLogsTable holds the schema information for the "webhook_logs" table.
	WebhookLogsTable = &schema.Table{
		Name:       "webhook_logs",
		Columns:    WebhookLogsColumns,
		PrimaryKey: []*schema.Column{WebhookLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "webhooklog_provider",
				Unique:  false,
				Columns: []*schema.Column{WebhookLogsColumns[1]},
			},
			{
				Name:    "webhooklog_event_type",
				Unique:  false,
				Columns: []*schema.Column{WebhookLogsColumns[2]},
			},
			{
				Name:    "webhooklog_integration_id",
				Unique:  false,
				Columns: []*schema.Column{WebhookLogsColumns[6]},
			},
			{
				Name:    "webhooklog_received_at",
				Unique:  false,
				Columns: []*schema.Column{WebhookLogsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CrmContactsTable,
		CrmIntegrationsTable,
		DealLinksTable,
		ProposalsTable,
		StageMappingsTable,
		UsersTable,
		WebhookLogsTable,
	}
)

func init() {
	CrmContactsTable.ForeignKeys[0].RefTable = CrmIntegrationsTable
	CrmIntegrationsTable.ForeignKeys[0].RefTable = UsersTable
	DealLinksTable.ForeignKeys[0].RefTable = CrmIntegrationsTable
	DealLinksTable.ForeignKeys[1].RefTable = ProposalsTable
	ProposalsTable.ForeignKeys[0].RefTable = UsersTable
	StageMappingsTable.ForeignKeys[0].RefTable = CrmIntegrationsTable
}
