// Code generated by ent, DO NOT EDIT.

package deallink

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dealpage/dealpage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DealLink {
	return predicate.DealLink(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DealLink {
	return predicate.DealLink(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DealLink {
	return predicate.DealLink(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DealLink {
	return predicate.DealLink(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DealLink {
	return predicate.DealLink(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DealLink {
	return predicate.DealLink(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DealLink {
	return predicate.DealLink(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DealLink {
	return predicate.DealLink(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DealLink {
	return predicate.DealLink(sql.FieldLTE(FieldID, id))
}

// IntegrationID applies equality check predicate on the "integration_id" field. It's identical to IntegrationIDEQ.
func IntegrationID(v int) predicate.DealLink {
	return predicate.DealLink(sql.FieldEQ(FieldIntegrationID, v))
}

// ProposalID applies equality check predicate on the "proposal_id" field. It's identical to ProposalIDEQ.
func ProposalID(v int) predicate.DealLink {
	return predicate.DealLink(sql.FieldEQ(FieldProposalID, v))
}

// ExternalDealID applies equality check predicate on the "external_deal_id" field. It's identical to ExternalDealIDEQ.
func ExternalDealID(v string) predicate.DealLink {
	return predicate.DealLink(sql.FieldEQ(FieldExternalDealID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DealLink {
	return predicate.DealLink(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DealLink {
	return predicate.DealLink(sql.FieldEQ(FieldUpdatedAt, v))
}

// IntegrationIDEQ applies the EQ predicate on the "integration_id" field.
func IntegrationIDEQ(v int) predicate.DealLink {
	return predicate.DealLink(sql.FieldEQ(FieldIntegrationID, v))
}

// IntegrationIDNEQ applies the NEQ predicate on the "integration_id" field.
func IntegrationIDNEQ(v int) predicate.DealLink {
	return predicate.DealLink(sql.FieldNEQ(FieldIntegrationID, v))
}

// IntegrationIDIn applies the In predicate on the "integration_id" field.
func IntegrationIDIn(vs ...int) predicate.DealLink {
	return predicate.DealLink(sql.FieldIn(FieldIntegrationID, vs...))
}

// IntegrationIDNotIn applies the NotIn predicate on the "integration_id" field.
func IntegrationIDNotIn(vs ...int) predicate.DealLink {
	return predicate.DealLink(sql.FieldNotIn(FieldIntegrationID, vs...))
}

// ProposalIDEQ applies the EQ predicate on the "proposal_id" field.
func ProposalIDEQ(v int) predicate.DealLink {
	return predicate.DealLink(sql.FieldEQ(FieldProposalID, v))
}

// ProposalIDNEQ applies the NEQ predicate on the "proposal_id" field.
func ProposalIDNEQ(v int) predicate.DealLink {
	return predicate.DealLink(sql.FieldNEQ(FieldProposalID, v))
}

// ProposalIDIn applies the In predicate on the "proposal_id" field.
func ProposalIDIn(vs ...int) predicate.DealLink {
	return predicate.DealLink(sql.FieldIn(FieldProposalID, vs...))
}

// ProposalIDNotIn applies the NotIn predicate on the "proposal_id" field.
func ProposalIDNotIn(vs ...int) predicate.DealLink {
	return predicate.DealLink(sql.FieldNotIn(FieldProposalID, vs...))
}

// ExternalDealIDEQ applies the EQ predicate on the "external_deal_id" field.
func ExternalDealIDEQ(v string) predicate.DealLink {
	return predicate.DealLink(sql.FieldEQ(FieldExternalDealID, v))
}

// ExternalDealIDNEQ applies the NEQ predicate on the "external_deal_id" field.
func ExternalDealIDNEQ(v string) predicate.DealLink {
	return predicate.DealLink(sql.FieldNEQ(FieldExternalDealID, v))
}

// ExternalDealIDIn applies the In predicate on the "external_deal_id" field.
func ExternalDealIDIn(vs ...string) predicate.DealLink {
	return predicate.DealLink(sql.FieldIn(FieldExternalDealID, vs...))
}

// ExternalDealIDNotIn applies the NotIn predicate on the "external_deal_id" field.
func ExternalDealIDNotIn(vs ...string) predicate.DealLink {
	return predicate.DealLink(sql.FieldNotIn(FieldExternalDealID, vs...))
}

// ExternalDealIDGT applies the GT predicate on the "external_deal_id" field.
func ExternalDealIDGT(v string) predicate.DealLink {
	return predicate.DealLink(sql.FieldGT(FieldExternalDealID, v))
}

// ExternalDealIDGTE applies the GTE predicate on the "external_deal_id" field.
func ExternalDealIDGTE(v string) predicate.DealLink {
	return predicate.DealLink(sql.FieldGTE(FieldExternalDealID, v))
}

// ExternalDealIDLT applies the LT predicate on the "external_deal_id" field.
func ExternalDealIDLT(v string) predicate.DealLink {
	return predicate.DealLink(sql.FieldLT(FieldExternalDealID, v))
}

// ExternalDealIDLTE applies the LTE predicate on the "external_deal_id" field.
func ExternalDealIDLTE(v string) predicate.DealLink {
	return predicate.DealLink(sql.FieldLTE(FieldExternalDealID, v))
}

// ExternalDealIDContains applies the Contains predicate on the "external_deal_id" field.
func ExternalDealIDContains(v string) predicate.DealLink {
	return predicate.DealLink(sql.FieldContains(FieldExternalDealID, v))
}

// ExternalDealIDHasPrefix applies the HasPrefix predicate on the "external_deal_id" field.
func ExternalDealIDHasPrefix(v string) predicate.DealLink {
	return predicate.DealLink(sql.FieldHasPrefix(FieldExternalDealID, v))
}

// ExternalDealIDHasSuffix applies the HasSuffix predicate on the "external_deal_id" field.
func ExternalDealIDHasSuffix(v string) predicate.DealLink {
	return predicate.DealLink(sql.FieldHasSuffix(FieldExternalDealID, v))
}

// ExternalDealIDEqualFold applies the EqualFold predicate on the "external_deal_id" field.
func ExternalDealIDEqualFold(v string) predicate.DealLink {
	return predicate.DealLink(sql.FieldEqualFold(FieldExternalDealID, v))
}

// ExternalDealIDContainsFold applies the ContainsFold predicate on the "external_deal_id" field.
func ExternalDealIDContainsFold(v string) predicate.DealLink {
	return predicate.DealLink(sql.FieldContainsFold(FieldExternalDealID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DealLink {
	return predicate.DealLink(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DealLink {
	return predicate.DealLink(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DealLink {
	return predicate.DealLink(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DealLink {
	return predicate.DealLink(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DealLink {
	return predicate.DealLink(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DealLink {
	return predicate.DealLink(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DealLink {
	return predicate.DealLink(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DealLink {
	return predicate.DealLink(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DealLink {
	return predicate.DealLink(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DealLink {
	return predicate.DealLink(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DealLink {
	return predicate.DealLink(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DealLink {
	return predicate.DealLink(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DealLink {
	return predicate.DealLink(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DealLink {
	return predicate.DealLink(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DealLink {
	return predicate.DealLink(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DealLink {
	return predicate.DealLink(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasIntegration applies the HasEdge predicate on the "integration" edge.
func HasIntegration() predicate.DealLink {
	return predicate.DealLink(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, IntegrationTable, IntegrationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIntegrationWith applies the HasEdge predicate on the "integration" edge with a given conditions (other predicates).
func HasIntegrationWith(preds ...predicate.CRMIntegration) predicate.DealLink {
	return predicate.DealLink(func(s *sql.Selector) {
		step := newIntegrationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProposal applies the HasEdge predicate on the "proposal" edge.
func HasProposal() predicate.DealLink {
	return predicate.DealLink(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProposalTable, ProposalColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProposalWith applies the HasEdge predicate on the "proposal" edge with a given conditions (other predicates).
func HasProposalWith(preds ...predicate.Proposal) predicate.DealLink {
	return predicate.DealLink(func(s *sql.Selector) {
		step := newProposalStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DealLink) predicate.DealLink {
	return predicate.DealLink(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DealLink) predicate.DealLink {
	return predicate.DealLink(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DealLink) predicate.DealLink {
	return predicate.DealLink(sql.NotPredicates(p))
}
