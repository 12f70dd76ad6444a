// Code generated by ent, DO NOT EDIT.

package webhooklog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dealpage/dealpage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldLTE(FieldID, id))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldEQ(FieldEventType, v))
}

// Processed applies equality check predicate on the "processed" field. It's identical to ProcessedEQ.
func Processed(v bool) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldEQ(FieldProcessed, v))
}

// ProcessingError applies equality check predicate on the "processing_error" field. It's identical to ProcessingErrorEQ.
func ProcessingError(v string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldEQ(FieldProcessingError, v))
}

// IntegrationID applies equality check predicate on the "integration_id" field. It's identical to IntegrationIDEQ.
func IntegrationID(v int) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldEQ(FieldIntegrationID, v))
}

// ReceivedAt applies equality check predicate on the "received_at" field. It's identical to ReceivedAtEQ.
func ReceivedAt(v time.Time) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldEQ(FieldReceivedAt, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v Provider) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v Provider) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...Provider) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...Provider) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldNotIn(FieldProvider, vs...))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldContainsFold(FieldEventType, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldNotNull(FieldPayload))
}

// ProcessedEQ applies the EQ predicate on the "processed" field.
func ProcessedEQ(v bool) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldEQ(FieldProcessed, v))
}

// ProcessedNEQ applies the NEQ predicate on the "processed" field.
func ProcessedNEQ(v bool) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldNEQ(FieldProcessed, v))
}

// ProcessingErrorEQ applies the EQ predicate on the "processing_error" field.
func ProcessingErrorEQ(v string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldEQ(FieldProcessingError, v))
}

// ProcessingErrorNEQ applies the NEQ predicate on the "processing_error" field.
func ProcessingErrorNEQ(v string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldNEQ(FieldProcessingError, v))
}

// ProcessingErrorIn applies the In predicate on the "processing_error" field.
func ProcessingErrorIn(vs ...string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldIn(FieldProcessingError, vs...))
}

// ProcessingErrorNotIn applies the NotIn predicate on the "processing_error" field.
func ProcessingErrorNotIn(vs ...string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldNotIn(FieldProcessingError, vs...))
}

// ProcessingErrorGT applies the GT predicate on the "processing_error" field.
func ProcessingErrorGT(v string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldGT(FieldProcessingError, v))
}

// ProcessingErrorGTE applies the GTE predicate on the "processing_error" field.
func ProcessingErrorGTE(v string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldGTE(FieldProcessingError, v))
}

// ProcessingErrorLT applies the LT predicate on the "processing_error" field.
func ProcessingErrorLT(v string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldLT(FieldProcessingError, v))
}

// ProcessingErrorLTE applies the LTE predicate on the "processing_error" field.
func ProcessingErrorLTE(v string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldLTE(FieldProcessingError, v))
}

// ProcessingErrorContains applies the Contains predicate on the "processing_error" field.
func ProcessingErrorContains(v string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldContains(FieldProcessingError, v))
}

// ProcessingErrorHasPrefix applies the HasPrefix predicate on the "processing_error" field.
func ProcessingErrorHasPrefix(v string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldHasPrefix(FieldProcessingError, v))
}

// ProcessingErrorHasSuffix applies the HasSuffix predicate on the "processing_error" field.
func ProcessingErrorHasSuffix(v string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldHasSuffix(FieldProcessingError, v))
}

// ProcessingErrorIsNil applies the IsNil predicate on the "processing_error" field.
func ProcessingErrorIsNil() predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldIsNull(FieldProcessingError))
}

// ProcessingErrorNotNil applies the NotNil predicate on the "processing_error" field.
func ProcessingErrorNotNil() predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldNotNull(FieldProcessingError))
}

// ProcessingErrorEqualFold applies the EqualFold predicate on the "processing_error" field.
func ProcessingErrorEqualFold(v string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldEqualFold(FieldProcessingError, v))
}

// ProcessingErrorContainsFold applies the ContainsFold predicate on the "processing_error" field.
func ProcessingErrorContainsFold(v string) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldContainsFold(FieldProcessingError, v))
}

// IntegrationIDEQ applies the EQ predicate on the "integration_id" field.
func IntegrationIDEQ(v int) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldEQ(FieldIntegrationID, v))
}

// IntegrationIDNEQ applies the NEQ predicate on the "integration_id" field.
func IntegrationIDNEQ(v int) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldNEQ(FieldIntegrationID, v))
}

// IntegrationIDIn applies the In predicate on the "integration_id" field.
func IntegrationIDIn(vs ...int) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldIn(FieldIntegrationID, vs...))
}

// IntegrationIDNotIn applies the NotIn predicate on the "integration_id" field.
func IntegrationIDNotIn(vs ...int) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldNotIn(FieldIntegrationID, vs...))
}

// IntegrationIDGT applies the GT predicate on the "integration_id" field.
func IntegrationIDGT(v int) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldGT(FieldIntegrationID, v))
}

// IntegrationIDGTE applies the GTE predicate on the "integration_id" field.
func IntegrationIDGTE(v int) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldGTE(FieldIntegrationID, v))
}

// IntegrationIDLT applies the LT predicate on the "integration_id" field.
func IntegrationIDLT(v int) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldLT(FieldIntegrationID, v))
}

// IntegrationIDLTE applies the LTE predicate on the "integration_id" field.
func IntegrationIDLTE(v int) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldLTE(FieldIntegrationID, v))
}

// IntegrationIDIsNil applies the IsNil predicate on the "integration_id" field.
func IntegrationIDIsNil() predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldIsNull(FieldIntegrationID))
}

// IntegrationIDNotNil applies the NotNil predicate on the "integration_id" field.
func IntegrationIDNotNil() predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldNotNull(FieldIntegrationID))
}

// ReceivedAtEQ applies the EQ predicate on the "received_at" field.
func ReceivedAtEQ(v time.Time) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldEQ(FieldReceivedAt, v))
}

// ReceivedAtNEQ applies the NEQ predicate on the "received_at" field.
func ReceivedAtNEQ(v time.Time) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldNEQ(FieldReceivedAt, v))
}

// ReceivedAtIn applies the In predicate on the "received_at" field.
func ReceivedAtIn(vs ...time.Time) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldIn(FieldReceivedAt, vs...))
}

// ReceivedAtNotIn applies the NotIn predicate on the "received_at" field.
func ReceivedAtNotIn(vs ...time.Time) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldNotIn(FieldReceivedAt, vs...))
}

// ReceivedAtGT applies the GT predicate on the "received_at" field.
func ReceivedAtGT(v time.Time) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldGT(FieldReceivedAt, v))
}

// ReceivedAtGTE applies the GTE predicate on the "received_at" field.
func ReceivedAtGTE(v time.Time) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldGTE(FieldReceivedAt, v))
}

// ReceivedAtLT applies the LT predicate on the "received_at" field.
func ReceivedAtLT(v time.Time) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldLT(FieldReceivedAt, v))
}

// ReceivedAtLTE applies the LTE predicate on the "received_at" field.
func ReceivedAtLTE(v time.Time) predicate.WebhookLog {
	return predicate.WebhookLog(sql.FieldLTE(FieldReceivedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WebhookLog) predicate.WebhookLog {
	return predicate.WebhookLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WebhookLog) predicate.WebhookLog {
	return predicate.WebhookLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WebhookLog) predicate.WebhookLog {
	return predicate.WebhookLog(sql.NotPredicates(p))
}
