// Code generated by ent, DO NOT EDIT.

package stagemapping

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dealpage/dealpage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldLTE(FieldID, id))
}

// IntegrationID applies equality check predicate on the "integration_id" field. It's identical to IntegrationIDEQ.
func IntegrationID(v int) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldEQ(FieldIntegrationID, v))
}

// ProposalStatus applies equality check predicate on the "proposal_status" field. It's identical to ProposalStatusEQ.
func ProposalStatus(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldEQ(FieldProposalStatus, v))
}

// ExternalStageID applies equality check predicate on the "external_stage_id" field. It's identical to ExternalStageIDEQ.
func ExternalStageID(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldEQ(FieldExternalStageID, v))
}

// ExternalStageName applies equality check predicate on the "external_stage_name" field. It's identical to ExternalStageNameEQ.
func ExternalStageName(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldEQ(FieldExternalStageName, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldEQ(FieldUpdatedAt, v))
}

// IntegrationIDEQ applies the EQ predicate on the "integration_id" field.
func IntegrationIDEQ(v int) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldEQ(FieldIntegrationID, v))
}

// IntegrationIDNEQ applies the NEQ predicate on the "integration_id" field.
func IntegrationIDNEQ(v int) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldNEQ(FieldIntegrationID, v))
}

// IntegrationIDIn applies the In predicate on the "integration_id" field.
func IntegrationIDIn(vs ...int) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldIn(FieldIntegrationID, vs...))
}

// IntegrationIDNotIn applies the NotIn predicate on the "integration_id" field.
func IntegrationIDNotIn(vs ...int) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldNotIn(FieldIntegrationID, vs...))
}

// ProposalStatusEQ applies the EQ predicate on the "proposal_status" field.
func ProposalStatusEQ(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldEQ(FieldProposalStatus, v))
}

// ProposalStatusNEQ applies the NEQ predicate on the "proposal_status" field.
func ProposalStatusNEQ(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldNEQ(FieldProposalStatus, v))
}

// ProposalStatusIn applies the In predicate on the "proposal_status" field.
func ProposalStatusIn(vs ...string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldIn(FieldProposalStatus, vs...))
}

// ProposalStatusNotIn applies the NotIn predicate on the "proposal_status" field.
func ProposalStatusNotIn(vs ...string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldNotIn(FieldProposalStatus, vs...))
}

// ProposalStatusGT applies the GT predicate on the "proposal_status" field.
func ProposalStatusGT(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldGT(FieldProposalStatus, v))
}

// ProposalStatusGTE applies the GTE predicate on the "proposal_status" field.
func ProposalStatusGTE(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldGTE(FieldProposalStatus, v))
}

// ProposalStatusLT applies the LT predicate on the "proposal_status" field.
func ProposalStatusLT(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldLT(FieldProposalStatus, v))
}

// ProposalStatusLTE applies the LTE predicate on the "proposal_status" field.
func ProposalStatusLTE(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldLTE(FieldProposalStatus, v))
}

// ProposalStatusContains applies the Contains predicate on the "proposal_status" field.
func ProposalStatusContains(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldContains(FieldProposalStatus, v))
}

// ProposalStatusHasPrefix applies the HasPrefix predicate on the "proposal_status" field.
func ProposalStatusHasPrefix(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldHasPrefix(FieldProposalStatus, v))
}

// ProposalStatusHasSuffix applies the HasSuffix predicate on the "proposal_status" field.
func ProposalStatusHasSuffix(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldHasSuffix(FieldProposalStatus, v))
}

// ProposalStatusEqualFold applies the EqualFold predicate on the "proposal_status" field.
func ProposalStatusEqualFold(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldEqualFold(FieldProposalStatus, v))
}

// ProposalStatusContainsFold applies the ContainsFold predicate on the "proposal_status" field.
func ProposalStatusContainsFold(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldContainsFold(FieldProposalStatus, v))
}

// ExternalStageIDEQ applies the EQ predicate on the "external_stage_id" field.
func ExternalStageIDEQ(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldEQ(FieldExternalStageID, v))
}

// ExternalStageIDNEQ applies the NEQ predicate on the "external_stage_id" field.
func ExternalStageIDNEQ(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldNEQ(FieldExternalStageID, v))
}

// ExternalStageIDIn applies the In predicate on the "external_stage_id" field.
func ExternalStageIDIn(vs ...string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldIn(FieldExternalStageID, vs...))
}

// ExternalStageIDNotIn applies the NotIn predicate on the "external_stage_id" field.
func ExternalStageIDNotIn(vs ...string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldNotIn(FieldExternalStageID, vs...))
}

// ExternalStageIDGT applies the GT predicate on the "external_stage_id" field.
func ExternalStageIDGT(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldGT(FieldExternalStageID, v))
}

// ExternalStageIDGTE applies the GTE predicate on the "external_stage_id" field.
func ExternalStageIDGTE(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldGTE(FieldExternalStageID, v))
}

// ExternalStageIDLT applies the LT predicate on the "external_stage_id" field.
func ExternalStageIDLT(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldLT(FieldExternalStageID, v))
}

// ExternalStageIDLTE applies the LTE predicate on the "external_stage_id" field.
func ExternalStageIDLTE(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldLTE(FieldExternalStageID, v))
}

// ExternalStageIDContains applies the Contains predicate on the "external_stage_id" field.
func ExternalStageIDContains(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldContains(FieldExternalStageID, v))
}

// ExternalStageIDHasPrefix applies the HasPrefix predicate on the "external_stage_id" field.
func ExternalStageIDHasPrefix(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldHasPrefix(FieldExternalStageID, v))
}

// ExternalStageIDHasSuffix applies the HasSuffix predicate on the "external_stage_id" field.
func ExternalStageIDHasSuffix(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldHasSuffix(FieldExternalStageID, v))
}

// ExternalStageIDEqualFold applies the EqualFold predicate on the "external_stage_id" field.
func ExternalStageIDEqualFold(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldEqualFold(FieldExternalStageID, v))
}

// ExternalStageIDContainsFold applies the ContainsFold predicate on the "external_stage_id" field.
func ExternalStageIDContainsFold(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldContainsFold(FieldExternalStageID, v))
}

// ExternalStageNameEQ applies the EQ predicate on the "external_stage_name" field.
func ExternalStageNameEQ(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldEQ(FieldExternalStageName, v))
}

// ExternalStageNameNEQ applies the NEQ predicate on the "external_stage_name" field.
func ExternalStageNameNEQ(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldNEQ(FieldExternalStageName, v))
}

// ExternalStageNameIn applies the In predicate on the "external_stage_name" field.
func ExternalStageNameIn(vs ...string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldIn(FieldExternalStageName, vs...))
}

// ExternalStageNameNotIn applies the NotIn predicate on the "external_stage_name" field.
func ExternalStageNameNotIn(vs ...string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldNotIn(FieldExternalStageName, vs...))
}

// ExternalStageNameGT applies the GT predicate on the "external_stage_name" field.
func ExternalStageNameGT(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldGT(FieldExternalStageName, v))
}

// ExternalStageNameGTE applies the GTE predicate on the "external_stage_name" field.
func ExternalStageNameGTE(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldGTE(FieldExternalStageName, v))
}

// ExternalStageNameLT applies the LT predicate on the "external_stage_name" field.
func ExternalStageNameLT(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldLT(FieldExternalStageName, v))
}

// ExternalStageNameLTE applies the LTE predicate on the "external_stage_name" field.
func ExternalStageNameLTE(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldLTE(FieldExternalStageName, v))
}

// ExternalStageNameContains applies the Contains predicate on the "external_stage_name" field.
func ExternalStageNameContains(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldContains(FieldExternalStageName, v))
}

// ExternalStageNameHasPrefix applies the HasPrefix predicate on the "external_stage_name" field.
func ExternalStageNameHasPrefix(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldHasPrefix(FieldExternalStageName, v))
}

// ExternalStageNameHasSuffix applies the HasSuffix predicate on the "external_stage_name" field.
func ExternalStageNameHasSuffix(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldHasSuffix(FieldExternalStageName, v))
}

// ExternalStageNameIsNil applies the IsNil predicate on the "external_stage_name" field.
func ExternalStageNameIsNil() predicate.StageMapping {
	return predicate.StageMapping(sql.FieldIsNull(FieldExternalStageName))
}

// ExternalStageNameNotNil applies the NotNil predicate on the "external_stage_name" field.
func ExternalStageNameNotNil() predicate.StageMapping {
	return predicate.StageMapping(sql.FieldNotNull(FieldExternalStageName))
}

// ExternalStageNameEqualFold applies the EqualFold predicate on the "external_stage_name" field.
func ExternalStageNameEqualFold(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldEqualFold(FieldExternalStageName, v))
}

// ExternalStageNameContainsFold applies the ContainsFold predicate on the "external_stage_name" field.
func ExternalStageNameContainsFold(v string) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldContainsFold(FieldExternalStageName, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StageMapping {
	return predicate.StageMapping(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasIntegration applies the HasEdge predicate on the "integration" edge.
func HasIntegration() predicate.StageMapping {
	return predicate.StageMapping(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, IntegrationTable, IntegrationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIntegrationWith applies the HasEdge predicate on the "integration" edge with a given conditions (other predicates).
func HasIntegrationWith(preds ...predicate.CRMIntegration) predicate.StageMapping {
	return predicate.StageMapping(func(s *sql.Selector) {
		step := newIntegrationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StageMapping) predicate.StageMapping {
	return predicate.StageMapping(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StageMapping) predicate.StageMapping {
	return predicate.StageMapping(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StageMapping) predicate.StageMapping {
	return predicate.StageMapping(sql.NotPredicates(p))
}
