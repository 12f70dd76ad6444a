// Code generated by ent, DO NOT EDIT.

package crmintegration

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the crmintegration type in the database.
	Label = "crm_integration"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldAccessToken holds the string denoting the access_token field in the database.
	FieldAccessToken = "access_token"
	// FieldRefreshToken holds the string denoting the refresh_token field in the database.
	FieldRefreshToken = "refresh_token"
	// FieldTokenExpiresAt holds the string denoting the token_expires_at field in the database.
	FieldTokenExpiresAt = "token_expires_at"
	// FieldAccountID holds the string denoting the account_id field in the database.
	FieldAccountID = "account_id"
	// FieldInstanceURL holds the string denoting the instance_url field in the database.
	FieldInstanceURL = "instance_url"
	// FieldAPIDomain holds the string denoting the api_domain field in the database.
	FieldAPIDomain = "api_domain"
	// FieldSyncDirection holds the string denoting the sync_direction field in the database.
	FieldSyncDirection = "sync_direction"
	// FieldAutoSyncContacts holds the string denoting the auto_sync_contacts field in the database.
	FieldAutoSyncContacts = "auto_sync_contacts"
	// FieldStatusSyncEvents holds the string denoting the status_sync_events field in the database.
	FieldStatusSyncEvents = "status_sync_events"
	// FieldLastSyncAt holds the string denoting the last_sync_at field in the database.
	FieldLastSyncAt = "last_sync_at"
	// FieldLastSyncError holds the string denoting the last_sync_error field in the database.
	FieldLastSyncError = "last_sync_error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeStageMappings holds the string denoting the stage_mappings edge name in mutations.
	EdgeStageMappings = "stage_mappings"
	// EdgeDealLinks holds the string denoting the deal_links edge name in mutations.
	EdgeDealLinks = "deal_links"
	// EdgeContacts holds the string denoting the contacts edge name in mutations.
	EdgeContacts = "contacts"
	// Table holds the table name of the crmintegration in the database.
	Table = "crm_integrations"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "crm_integrations"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// StageMappingsTable is the table that holds the stage_mappings relation/edge.
	StageMappingsTable = "stage_mappings"
	// StageMappingsInverseTable is the table name for the StageMapping entity.
	// It exists in this package in order to avoid circular dependency with the "stagemapping" package.
	StageMappingsInverseTable = "stage_mappings"
	// StageMappingsColumn is the table column denoting the stage_mappings relation/edge.
	StageMappingsColumn = "integration_id"
	// DealLinksTable is the table that holds the deal_links relation/edge.
	DealLinksTable = "deal_links"
	// DealLinksInverseTable is the table name for the DealLink entity.
	// It exists in this package in order to avoid circular dependency with the "deallink" package.
	DealLinksInverseTable = "deal_links"
	// DealLinksColumn is the table column denoting the deal_links relation/edge.
	DealLinksColumn = "integration_id"
	// ContactsTable is the table that holds the contacts relation/edge.
	ContactsTable = "crm_contacts"
	// ContactsInverseTable is the table name for the CRMContact entity.
	// It exists in this package in order to avoid circular dependency with the "crmcontact" package.
	ContactsInverseTable = "crm_contacts"
	// ContactsColumn is the table column denoting the contacts relation/edge.
	ContactsColumn = "integration_id"
)

// Columns holds all SQL columns for crmintegration fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldProvider,
	FieldActive,
	FieldAccessToken,
	FieldRefreshToken,
	FieldTokenExpiresAt,
	FieldAccountID,
	FieldInstanceURL,
	FieldAPIDomain,
	FieldSyncDirection,
	FieldAutoSyncContacts,
	FieldStatusSyncEvents,
	FieldLastSyncAt,
	FieldLastSyncError,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultAutoSyncContacts holds the default value on creation for the "auto_sync_contacts" field.
	DefaultAutoSyncContacts bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Provider defines the type for the "provider" enum field.
type Provider string

// Provider values.
const (
	ProviderHubspot    Provider = "hubspot"
	ProviderSalesforce Provider = "salesforce"
	ProviderPipedrive  Provider = "pipedrive"
	ProviderZoho       Provider = "zoho"
)

func (pr Provider) String() string {
	return string(pr)
}

// ProviderValidator is a validator for the "provider" field enum values. It is called by the builders before save.
func ProviderValidator(pr Provider) error {
	switch pr {
	case ProviderHubspot, ProviderSalesforce, ProviderPipedrive, ProviderZoho:
		return nil
	default:
		return fmt.Errorf("crmintegration: invalid enum value for provider field: %q", pr)
	}
}

// SyncDirection defines the type for the "sync_direction" enum field.
type SyncDirection string

// SyncDirectionBidirectional is the default value of the SyncDirection enum.
const DefaultSyncDirection = SyncDirectionBidirectional

// SyncDirection values.
const (
	SyncDirectionBidirectional SyncDirection = "bidirectional"
	SyncDirectionOutbound      SyncDirection = "outbound"
	SyncDirectionInbound       SyncDirection = "inbound"
)

func (sd SyncDirection) String() string {
	return string(sd)
}

// SyncDirectionValidator is a validator for the "sync_direction" field enum values. It is called by the builders before save.
func SyncDirectionValidator(sd SyncDirection) error {
	switch sd {
	case SyncDirectionBidirectional, SyncDirectionOutbound, SyncDirectionInbound:
		return nil
	default:
		return fmt.Errorf("crmintegration: invalid enum value for sync_direction field: %q", sd)
	}
}

// OrderOption defines the ordering options for the CRMIntegration queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByAccessToken orders the results by the access_token field.
func ByAccessToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccessToken, opts...).ToFunc()
}

// ByRefreshToken orders the results by the refresh_token field.
func ByRefreshToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRefreshToken, opts...).ToFunc()
}

// ByTokenExpiresAt orders the results by the token_expires_at field.
func ByTokenExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokenExpiresAt, opts...).ToFunc()
}

// ByAccountID orders the results by the account_id field.
func ByAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountID, opts...).ToFunc()
}

// ByInstanceURL orders the results by the instance_url field.
func ByInstanceURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstanceURL, opts...).ToFunc()
}

// ByAPIDomain orders the results by the api_domain field.
func ByAPIDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAPIDomain, opts...).ToFunc()
}

// BySyncDirection orders the results by the sync_direction field.
func BySyncDirection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSyncDirection, opts...).ToFunc()
}

// ByAutoSyncContacts orders the results by the auto_sync_contacts field.
func ByAutoSyncContacts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoSyncContacts, opts...).ToFunc()
}

// ByLastSyncAt orders the results by the last_sync_at field.
func ByLastSyncAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSyncAt, opts...).ToFunc()
}

// ByLastSyncError orders the results by the last_sync_error field.
func ByLastSyncError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSyncError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// ByStageMappingsCount orders the results by stage_mappings count.
func ByStageMappingsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStageMappingsStep(), opts...)
	}
}

// ByStageMappings orders the results by stage_mappings terms.
func ByStageMappings(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStageMappingsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDealLinksCount orders the results by deal_links count.
func ByDealLinksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDealLinksStep(), opts...)
	}
}

// ByDealLinks orders the results by deal_links terms.
func ByDealLinks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDealLinksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByContactsCount orders the results by contacts count.
func ByContactsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newContactsStep(), opts...)
	}
}

// ByContacts orders the results by contacts terms.
func ByContacts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContactsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
func newStageMappingsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StageMappingsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StageMappingsTable, StageMappingsColumn),
	)
}
func newDealLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DealLinksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DealLinksTable, DealLinksColumn),
	)
}
func newContactsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContactsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ContactsTable, ContactsColumn),
	)
}
