// Code generated by ent, DO NOT EDIT.

package crmcontact

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dealpage/dealpage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldLTE(FieldID, id))
}

// IntegrationID applies equality check predicate on the "integration_id" field. It's identical to IntegrationIDEQ.
func IntegrationID(v int) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldEQ(FieldIntegrationID, v))
}

// ExternalContactID applies equality check predicate on the "external_contact_id" field. It's identical to ExternalContactIDEQ.
func ExternalContactID(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldEQ(FieldExternalContactID, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldEQ(FieldEmail, v))
}

// FirstName applies equality check predicate on the "first_name" field. It's identical to FirstNameEQ.
func FirstName(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldEQ(FieldFirstName, v))
}

// LastName applies equality check predicate on the "last_name" field. It's identical to LastNameEQ.
func LastName(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldEQ(FieldLastName, v))
}

// Company applies equality check predicate on the "company" field. It's identical to CompanyEQ.
func Company(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldEQ(FieldCompany, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldEQ(FieldPhone, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldEQ(FieldUpdatedAt, v))
}

// IntegrationIDEQ applies the EQ predicate on the "integration_id" field.
func IntegrationIDEQ(v int) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldEQ(FieldIntegrationID, v))
}

// IntegrationIDNEQ applies the NEQ predicate on the "integration_id" field.
func IntegrationIDNEQ(v int) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldNEQ(FieldIntegrationID, v))
}

// IntegrationIDIn applies the In predicate on the "integration_id" field.
func IntegrationIDIn(vs ...int) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldIn(FieldIntegrationID, vs...))
}

// IntegrationIDNotIn applies the NotIn predicate on the "integration_id" field.
func IntegrationIDNotIn(vs ...int) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldNotIn(FieldIntegrationID, vs...))
}

// ExternalContactIDEQ applies the EQ predicate on the "external_contact_id" field.
func ExternalContactIDEQ(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldEQ(FieldExternalContactID, v))
}

// ExternalContactIDNEQ applies the NEQ predicate on the "external_contact_id" field.
func ExternalContactIDNEQ(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldNEQ(FieldExternalContactID, v))
}

// ExternalContactIDIn applies the In predicate on the "external_contact_id" field.
func ExternalContactIDIn(vs ...string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldIn(FieldExternalContactID, vs...))
}

// ExternalContactIDNotIn applies the NotIn predicate on the "external_contact_id" field.
func ExternalContactIDNotIn(vs ...string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldNotIn(FieldExternalContactID, vs...))
}

// ExternalContactIDGT applies the GT predicate on the "external_contact_id" field.
func ExternalContactIDGT(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldGT(FieldExternalContactID, v))
}

// ExternalContactIDGTE applies the GTE predicate on the "external_contact_id" field.
func ExternalContactIDGTE(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldGTE(FieldExternalContactID, v))
}

// ExternalContactIDLT applies the LT predicate on the "external_contact_id" field.
func ExternalContactIDLT(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldLT(FieldExternalContactID, v))
}

// ExternalContactIDLTE applies the LTE predicate on the "external_contact_id" field.
func ExternalContactIDLTE(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldLTE(FieldExternalContactID, v))
}

// ExternalContactIDContains applies the Contains predicate on the "external_contact_id" field.
func ExternalContactIDContains(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldContains(FieldExternalContactID, v))
}

// ExternalContactIDHasPrefix applies the HasPrefix predicate on the "external_contact_id" field.
func ExternalContactIDHasPrefix(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldHasPrefix(FieldExternalContactID, v))
}

// ExternalContactIDHasSuffix applies the HasSuffix predicate on the "external_contact_id" field.
func ExternalContactIDHasSuffix(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldHasSuffix(FieldExternalContactID, v))
}

// ExternalContactIDEqualFold applies the EqualFold predicate on the "external_contact_id" field.
func ExternalContactIDEqualFold(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldEqualFold(FieldExternalContactID, v))
}

// ExternalContactIDContainsFold applies the ContainsFold predicate on the "external_contact_id" field.
func ExternalContactIDContainsFold(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldContainsFold(FieldExternalContactID, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.CRMContact {
	return predicate.CRMContact(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.CRMContact {
	return predicate.CRMContact(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldContainsFold(FieldEmail, v))
}

// FirstNameEQ applies the EQ predicate on the "first_name" field.
func FirstNameEQ(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldEQ(FieldFirstName, v))
}

// FirstNameNEQ applies the NEQ predicate on the "first_name" field.
func FirstNameNEQ(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldNEQ(FieldFirstName, v))
}

// FirstNameIn applies the In predicate on the "first_name" field.
func FirstNameIn(vs ...string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldIn(FieldFirstName, vs...))
}

// FirstNameNotIn applies the NotIn predicate on the "first_name" field.
func FirstNameNotIn(vs ...string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldNotIn(FieldFirstName, vs...))
}

// FirstNameGT applies the GT predicate on the "first_name" field.
func FirstNameGT(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldGT(FieldFirstName, v))
}

// FirstNameGTE applies the GTE predicate on the "first_name" field.
func FirstNameGTE(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldGTE(FieldFirstName, v))
}

// FirstNameLT applies the LT predicate on the "first_name" field.
func FirstNameLT(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldLT(FieldFirstName, v))
}

// FirstNameLTE applies the LTE predicate on the "first_name" field.
func FirstNameLTE(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldLTE(FieldFirstName, v))
}

// FirstNameContains applies the Contains predicate on the "first_name" field.
func FirstNameContains(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldContains(FieldFirstName, v))
}

// FirstNameHasPrefix applies the HasPrefix predicate on the "first_name" field.
func FirstNameHasPrefix(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldHasPrefix(FieldFirstName, v))
}

// FirstNameHasSuffix applies the HasSuffix predicate on the "first_name" field.
func FirstNameHasSuffix(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldHasSuffix(FieldFirstName, v))
}

// FirstNameIsNil applies the IsNil predicate on the "first_name" field.
func FirstNameIsNil() predicate.CRMContact {
	return predicate.CRMContact(sql.FieldIsNull(FieldFirstName))
}

// FirstNameNotNil applies the NotNil predicate on the "first_name" field.
func FirstNameNotNil() predicate.CRMContact {
	return predicate.CRMContact(sql.FieldNotNull(FieldFirstName))
}

// FirstNameEqualFold applies the EqualFold predicate on the "first_name" field.
func FirstNameEqualFold(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldEqualFold(FieldFirstName, v))
}

// FirstNameContainsFold applies the ContainsFold predicate on the "first_name" field.
func FirstNameContainsFold(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldContainsFold(FieldFirstName, v))
}

// LastNameEQ applies the EQ predicate on the "last_name" field.
func LastNameEQ(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldEQ(FieldLastName, v))
}

// LastNameNEQ applies the NEQ predicate on the "last_name" field.
func LastNameNEQ(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldNEQ(FieldLastName, v))
}

// LastNameIn applies the In predicate on the "last_name" field.
func LastNameIn(vs ...string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldIn(FieldLastName, vs...))
}

// LastNameNotIn applies the NotIn predicate on the "last_name" field.
func LastNameNotIn(vs ...string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldNotIn(FieldLastName, vs...))
}

// LastNameGT applies the GT predicate on the "last_name" field.
func LastNameGT(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldGT(FieldLastName, v))
}

// LastNameGTE applies the GTE predicate on the "last_name" field.
func LastNameGTE(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldGTE(FieldLastName, v))
}

// LastNameLT applies the LT predicate on the "last_name" field.
func LastNameLT(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldLT(FieldLastName, v))
}

// LastNameLTE applies the LTE predicate on the "last_name" field.
func LastNameLTE(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldLTE(FieldLastName, v))
}

// LastNameContains applies the Contains predicate on the "last_name" field.
func LastNameContains(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldContains(FieldLastName, v))
}

// LastNameHasPrefix applies the HasPrefix predicate on the "last_name" field.
func LastNameHasPrefix(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldHasPrefix(FieldLastName, v))
}

// LastNameHasSuffix applies the HasSuffix predicate on the "last_name" field.
func LastNameHasSuffix(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldHasSuffix(FieldLastName, v))
}

// LastNameIsNil applies the IsNil predicate on the "last_name" field.
func LastNameIsNil() predicate.CRMContact {
	return predicate.CRMContact(sql.FieldIsNull(FieldLastName))
}

// LastNameNotNil applies the NotNil predicate on the "last_name" field.
func LastNameNotNil() predicate.CRMContact {
	return predicate.CRMContact(sql.FieldNotNull(FieldLastName))
}

// LastNameEqualFold applies the EqualFold predicate on the "last_name" field.
func LastNameEqualFold(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldEqualFold(FieldLastName, v))
}

// LastNameContainsFold applies the ContainsFold predicate on the "last_name" field.
func LastNameContainsFold(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldContainsFold(FieldLastName, v))
}

// CompanyEQ applies the EQ predicate on the "company" field.
func CompanyEQ(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldEQ(FieldCompany, v))
}

// CompanyNEQ applies the NEQ predicate on the "company" field.
func CompanyNEQ(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldNEQ(FieldCompany, v))
}

// CompanyIn applies the In predicate on the "company" field.
func CompanyIn(vs ...string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldIn(FieldCompany, vs...))
}

// CompanyNotIn applies the NotIn predicate on the "company" field.
func CompanyNotIn(vs ...string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldNotIn(FieldCompany, vs...))
}

// CompanyGT applies the GT predicate on the "company" field.
func CompanyGT(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldGT(FieldCompany, v))
}

// CompanyGTE applies the GTE predicate on the "company" field.
func CompanyGTE(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldGTE(FieldCompany, v))
}

// CompanyLT applies the LT predicate on the "company" field.
func CompanyLT(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldLT(FieldCompany, v))
}

// CompanyLTE applies the LTE predicate on the "company" field.
func CompanyLTE(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldLTE(FieldCompany, v))
}

// CompanyContains applies the Contains predicate on the "company" field.
func CompanyContains(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldContains(FieldCompany, v))
}

// CompanyHasPrefix applies the HasPrefix predicate on the "company" field.
func CompanyHasPrefix(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldHasPrefix(FieldCompany, v))
}

// CompanyHasSuffix applies the HasSuffix predicate on the "company" field.
func CompanyHasSuffix(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldHasSuffix(FieldCompany, v))
}

// CompanyIsNil applies the IsNil predicate on the "company" field.
func CompanyIsNil() predicate.CRMContact {
	return predicate.CRMContact(sql.FieldIsNull(FieldCompany))
}

// CompanyNotNil applies the NotNil predicate on the "company" field.
func CompanyNotNil() predicate.CRMContact {
	return predicate.CRMContact(sql.FieldNotNull(FieldCompany))
}

// CompanyEqualFold applies the EqualFold predicate on the "company" field.
func CompanyEqualFold(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldEqualFold(FieldCompany, v))
}

// CompanyContainsFold applies the ContainsFold predicate on the "company" field.
func CompanyContainsFold(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldContainsFold(FieldCompany, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.CRMContact {
	return predicate.CRMContact(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.CRMContact {
	return predicate.CRMContact(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldContainsFold(FieldPhone, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CRMContact {
	return predicate.CRMContact(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasIntegration applies the HasEdge predicate on the "integration" edge.
func HasIntegration() predicate.CRMContact {
	return predicate.CRMContact(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, IntegrationTable, IntegrationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIntegrationWith applies the HasEdge predicate on the "integration" edge with a given conditions (other predicates).
func HasIntegrationWith(preds ...predicate.CRMIntegration) predicate.CRMContact {
	return predicate.CRMContact(func(s *sql.Selector) {
		step := newIntegrationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CRMContact) predicate.CRMContact {
	return predicate.CRMContact(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CRMContact) predicate.CRMContact {
	return predicate.CRMContact(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CRMContact) predicate.CRMContact {
	return predicate.CRMContact(sql.NotPredicates(p))
}
