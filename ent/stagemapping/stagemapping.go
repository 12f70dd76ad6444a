// Code generated by ent, DO NOT EDIT.

package stagemapping

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the stagemapping type in the database.
	Label = "stage_mapping"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldIntegrationID holds the string denoting the integration_id field in the database.
	FieldIntegrationID = "integration_id"
	// FieldProposalStatus holds the string denoting the proposal_status field in the database.
	FieldProposalStatus = "proposal_status"
	// FieldExternalStageID holds the string denoting the external_stage_id field in the database.
	FieldExternalStageID = "external_stage_id"
	// FieldExternalStageName holds the string denoting the external_stage_name field in the database.
	FieldExternalStageName = "external_stage_name"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeIntegration holds the string denoting the integration edge name in mutations.
	EdgeIntegration = "integration"
	// Table holds the table name of the stagemapping in the database.
	Table = "stage_mappings"
	// IntegrationTable is the table that holds the integration relation/edge.
	IntegrationTable = "stage_mappings"
	// IntegrationInverseTable is the table name for the CRMIntegration entity.
	// It exists in this package in order to avoid circular dependency with the "crmintegration" package.
	IntegrationInverseTable = "crm_integrations"
	// IntegrationColumn is the table column denoting the integration relation/edge.
	IntegrationColumn = "integration_id"
)

// Columns holds all SQL columns for stagemapping fields.
var Columns = []string{
	FieldID,
	FieldIntegrationID,
	FieldProposalStatus,
	FieldExternalStageID,
	FieldExternalStageName,
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
	// ProposalStatusValidator is a validator for the "proposal_status" field. It is called by the builders before save.
	ProposalStatusValidator func(string) error
	// ExternalStageIDValidator is a validator for the "external_stage_id" field. It is called by the builders before save.
	ExternalStageIDValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the StageMapping queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByIntegrationID orders the results by the integration_id field.
func ByIntegrationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntegrationID, opts...).ToFunc()
}

// ByProposalStatus orders the results by the proposal_status field.
func ByProposalStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposalStatus, opts...).ToFunc()
}

// ByExternalStageID orders the results by the external_stage_id field.
func ByExternalStageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalStageID, opts...).ToFunc()
}

// ByExternalStageName orders the results by the external_stage_name field.
func ByExternalStageName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalStageName, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByIntegrationField orders the results by integration field.
func ByIntegrationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newIntegrationStep(), sql.OrderByField(field, opts...))
	}
}
func newIntegrationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IntegrationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, IntegrationTable, IntegrationColumn),
	)
}
