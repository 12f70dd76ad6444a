// Code generated by ent, DO NOT EDIT.

package crmintegration

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dealpage/dealpage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldUserID, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldActive, v))
}

// AccessToken applies equality check predicate on the "access_token" field. It's identical to AccessTokenEQ.
func AccessToken(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldAccessToken, v))
}

// RefreshToken applies equality check predicate on the "refresh_token" field. It's identical to RefreshTokenEQ.
func RefreshToken(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldRefreshToken, v))
}

// TokenExpiresAt applies equality check predicate on the "token_expires_at" field. It's identical to TokenExpiresAtEQ.
func TokenExpiresAt(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldTokenExpiresAt, v))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldAccountID, v))
}

// InstanceURL applies equality check predicate on the "instance_url" field. It's identical to InstanceURLEQ.
func InstanceURL(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldInstanceURL, v))
}

// APIDomain applies equality check predicate on the "api_domain" field. It's identical to APIDomainEQ.
func APIDomain(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldAPIDomain, v))
}

// AutoSyncContacts applies equality check predicate on the "auto_sync_contacts" field. It's identical to AutoSyncContactsEQ.
func AutoSyncContacts(v bool) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldAutoSyncContacts, v))
}

// LastSyncAt applies equality check predicate on the "last_sync_at" field. It's identical to LastSyncAtEQ.
func LastSyncAt(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldLastSyncAt, v))
}

// LastSyncError applies equality check predicate on the "last_sync_error" field. It's identical to LastSyncErrorEQ.
func LastSyncError(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldLastSyncError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNotIn(FieldUserID, vs...))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v Provider) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v Provider) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...Provider) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...Provider) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNotIn(FieldProvider, vs...))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNEQ(FieldActive, v))
}

// AccessTokenEQ applies the EQ predicate on the "access_token" field.
func AccessTokenEQ(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldAccessToken, v))
}

// AccessTokenNEQ applies the NEQ predicate on the "access_token" field.
func AccessTokenNEQ(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNEQ(FieldAccessToken, v))
}

// AccessTokenIn applies the In predicate on the "access_token" field.
func AccessTokenIn(vs ...string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldIn(FieldAccessToken, vs...))
}

// AccessTokenNotIn applies the NotIn predicate on the "access_token" field.
func AccessTokenNotIn(vs ...string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNotIn(FieldAccessToken, vs...))
}

// AccessTokenGT applies the GT predicate on the "access_token" field.
func AccessTokenGT(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldGT(FieldAccessToken, v))
}

// AccessTokenGTE applies the GTE predicate on the "access_token" field.
func AccessTokenGTE(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldGTE(FieldAccessToken, v))
}

// AccessTokenLT applies the LT predicate on the "access_token" field.
func AccessTokenLT(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldLT(FieldAccessToken, v))
}

// AccessTokenLTE applies the LTE predicate on the "access_token" field.
func AccessTokenLTE(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldLTE(FieldAccessToken, v))
}

// AccessTokenContains applies the Contains predicate on the "access_token" field.
func AccessTokenContains(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldContains(FieldAccessToken, v))
}

// AccessTokenHasPrefix applies the HasPrefix predicate on the "access_token" field.
func AccessTokenHasPrefix(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldHasPrefix(FieldAccessToken, v))
}

// AccessTokenHasSuffix applies the HasSuffix predicate on the "access_token" field.
func AccessTokenHasSuffix(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldHasSuffix(FieldAccessToken, v))
}

// AccessTokenEqualFold applies the EqualFold predicate on the "access_token" field.
func AccessTokenEqualFold(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEqualFold(FieldAccessToken, v))
}

// AccessTokenContainsFold applies the ContainsFold predicate on the "access_token" field.
func AccessTokenContainsFold(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldContainsFold(FieldAccessToken, v))
}

// RefreshTokenEQ applies the EQ predicate on the "refresh_token" field.
func RefreshTokenEQ(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldRefreshToken, v))
}

// RefreshTokenNEQ applies the NEQ predicate on the "refresh_token" field.
func RefreshTokenNEQ(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNEQ(FieldRefreshToken, v))
}

// RefreshTokenIn applies the In predicate on the "refresh_token" field.
func RefreshTokenIn(vs ...string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldIn(FieldRefreshToken, vs...))
}

// RefreshTokenNotIn applies the NotIn predicate on the "refresh_token" field.
func RefreshTokenNotIn(vs ...string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNotIn(FieldRefreshToken, vs...))
}

// RefreshTokenGT applies the GT predicate on the "refresh_token" field.
func RefreshTokenGT(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldGT(FieldRefreshToken, v))
}

// RefreshTokenGTE applies the GTE predicate on the "refresh_token" field.
func RefreshTokenGTE(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldGTE(FieldRefreshToken, v))
}

// RefreshTokenLT applies the LT predicate on the "refresh_token" field.
func RefreshTokenLT(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldLT(FieldRefreshToken, v))
}

// RefreshTokenLTE applies the LTE predicate on the "refresh_token" field.
func RefreshTokenLTE(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldLTE(FieldRefreshToken, v))
}

// RefreshTokenContains applies the Contains predicate on the "refresh_token" field.
func RefreshTokenContains(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldContains(FieldRefreshToken, v))
}

// RefreshTokenHasPrefix applies the HasPrefix predicate on the "refresh_token" field.
func RefreshTokenHasPrefix(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldHasPrefix(FieldRefreshToken, v))
}

// RefreshTokenHasSuffix applies the HasSuffix predicate on the "refresh_token" field.
func RefreshTokenHasSuffix(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldHasSuffix(FieldRefreshToken, v))
}

// RefreshTokenIsNil applies the IsNil predicate on the "refresh_token" field.
func RefreshTokenIsNil() predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldIsNull(FieldRefreshToken))
}

// RefreshTokenNotNil applies the NotNil predicate on the "refresh_token" field.
func RefreshTokenNotNil() predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNotNull(FieldRefreshToken))
}

// RefreshTokenEqualFold applies the EqualFold predicate on the "refresh_token" field.
func RefreshTokenEqualFold(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEqualFold(FieldRefreshToken, v))
}

// RefreshTokenContainsFold applies the ContainsFold predicate on the "refresh_token" field.
func RefreshTokenContainsFold(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldContainsFold(FieldRefreshToken, v))
}

// TokenExpiresAtEQ applies the EQ predicate on the "token_expires_at" field.
func TokenExpiresAtEQ(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldTokenExpiresAt, v))
}

// TokenExpiresAtNEQ applies the NEQ predicate on the "token_expires_at" field.
func TokenExpiresAtNEQ(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNEQ(FieldTokenExpiresAt, v))
}

// TokenExpiresAtIn applies the In predicate on the "token_expires_at" field.
func TokenExpiresAtIn(vs ...time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldIn(FieldTokenExpiresAt, vs...))
}

// TokenExpiresAtNotIn applies the NotIn predicate on the "token_expires_at" field.
func TokenExpiresAtNotIn(vs ...time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNotIn(FieldTokenExpiresAt, vs...))
}

// TokenExpiresAtGT applies the GT predicate on the "token_expires_at" field.
func TokenExpiresAtGT(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldGT(FieldTokenExpiresAt, v))
}

// TokenExpiresAtGTE applies the GTE predicate on the "token_expires_at" field.
func TokenExpiresAtGTE(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldGTE(FieldTokenExpiresAt, v))
}

// TokenExpiresAtLT applies the LT predicate on the "token_expires_at" field.
func TokenExpiresAtLT(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldLT(FieldTokenExpiresAt, v))
}

// TokenExpiresAtLTE applies the LTE predicate on the "token_expires_at" field.
func TokenExpiresAtLTE(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldLTE(FieldTokenExpiresAt, v))
}

// TokenExpiresAtIsNil applies the IsNil predicate on the "token_expires_at" field.
func TokenExpiresAtIsNil() predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldIsNull(FieldTokenExpiresAt))
}

// TokenExpiresAtNotNil applies the NotNil predicate on the "token_expires_at" field.
func TokenExpiresAtNotNil() predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNotNull(FieldTokenExpiresAt))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldLTE(FieldAccountID, v))
}

// AccountIDContains applies the Contains predicate on the "account_id" field.
func AccountIDContains(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldContains(FieldAccountID, v))
}

// AccountIDHasPrefix applies the HasPrefix predicate on the "account_id" field.
func AccountIDHasPrefix(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldHasPrefix(FieldAccountID, v))
}

// AccountIDHasSuffix applies the HasSuffix predicate on the "account_id" field.
func AccountIDHasSuffix(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldHasSuffix(FieldAccountID, v))
}

// AccountIDEqualFold applies the EqualFold predicate on the "account_id" field.
func AccountIDEqualFold(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEqualFold(FieldAccountID, v))
}

// AccountIDContainsFold applies the ContainsFold predicate on the "account_id" field.
func AccountIDContainsFold(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldContainsFold(FieldAccountID, v))
}

// InstanceURLEQ applies the EQ predicate on the "instance_url" field.
func InstanceURLEQ(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldInstanceURL, v))
}

// InstanceURLNEQ applies the NEQ predicate on the "instance_url" field.
func InstanceURLNEQ(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNEQ(FieldInstanceURL, v))
}

// InstanceURLIn applies the In predicate on the "instance_url" field.
func InstanceURLIn(vs ...string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldIn(FieldInstanceURL, vs...))
}

// InstanceURLNotIn applies the NotIn predicate on the "instance_url" field.
func InstanceURLNotIn(vs ...string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNotIn(FieldInstanceURL, vs...))
}

// InstanceURLGT applies the GT predicate on the "instance_url" field.
func InstanceURLGT(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldGT(FieldInstanceURL, v))
}

// InstanceURLGTE applies the GTE predicate on the "instance_url" field.
func InstanceURLGTE(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldGTE(FieldInstanceURL, v))
}

// InstanceURLLT applies the LT predicate on the "instance_url" field.
func InstanceURLLT(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldLT(FieldInstanceURL, v))
}

// InstanceURLLTE applies the LTE predicate on the "instance_url" field.
func InstanceURLLTE(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldLTE(FieldInstanceURL, v))
}

// InstanceURLContains applies the Contains predicate on the "instance_url" field.
func InstanceURLContains(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldContains(FieldInstanceURL, v))
}

// InstanceURLHasPrefix applies the HasPrefix predicate on the "instance_url" field.
func InstanceURLHasPrefix(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldHasPrefix(FieldInstanceURL, v))
}

// InstanceURLHasSuffix applies the HasSuffix predicate on the "instance_url" field.
func InstanceURLHasSuffix(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldHasSuffix(FieldInstanceURL, v))
}

// InstanceURLIsNil applies the IsNil predicate on the "instance_url" field.
func InstanceURLIsNil() predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldIsNull(FieldInstanceURL))
}

// InstanceURLNotNil applies the NotNil predicate on the "instance_url" field.
func InstanceURLNotNil() predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNotNull(FieldInstanceURL))
}

// InstanceURLEqualFold applies the EqualFold predicate on the "instance_url" field.
func InstanceURLEqualFold(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEqualFold(FieldInstanceURL, v))
}

// InstanceURLContainsFold applies the ContainsFold predicate on the "instance_url" field.
func InstanceURLContainsFold(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldContainsFold(FieldInstanceURL, v))
}

// APIDomainEQ applies the EQ predicate on the "api_domain" field.
func APIDomainEQ(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldAPIDomain, v))
}

// APIDomainNEQ applies the NEQ predicate on the "api_domain" field.
func APIDomainNEQ(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNEQ(FieldAPIDomain, v))
}

// APIDomainIn applies the In predicate on the "api_domain" field.
func APIDomainIn(vs ...string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldIn(FieldAPIDomain, vs...))
}

// APIDomainNotIn applies the NotIn predicate on the "api_domain" field.
func APIDomainNotIn(vs ...string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNotIn(FieldAPIDomain, vs...))
}

// APIDomainGT applies the GT predicate on the "api_domain" field.
func APIDomainGT(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldGT(FieldAPIDomain, v))
}

// APIDomainGTE applies the GTE predicate on the "api_domain" field.
func APIDomainGTE(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldGTE(FieldAPIDomain, v))
}

// APIDomainLT applies the LT predicate on the "api_domain" field.
func APIDomainLT(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldLT(FieldAPIDomain, v))
}

// APIDomainLTE applies the LTE predicate on the "api_domain" field.
func APIDomainLTE(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldLTE(FieldAPIDomain, v))
}

// APIDomainContains applies the Contains predicate on the "api_domain" field.
func APIDomainContains(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldContains(FieldAPIDomain, v))
}

// APIDomainHasPrefix applies the HasPrefix predicate on the "api_domain" field.
func APIDomainHasPrefix(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldHasPrefix(FieldAPIDomain, v))
}

// APIDomainHasSuffix applies the HasSuffix predicate on the "api_domain" field.
func APIDomainHasSuffix(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldHasSuffix(FieldAPIDomain, v))
}

// APIDomainIsNil applies the IsNil predicate on the "api_domain" field.
func APIDomainIsNil() predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldIsNull(FieldAPIDomain))
}

// APIDomainNotNil applies the NotNil predicate on the "api_domain" field.
func APIDomainNotNil() predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNotNull(FieldAPIDomain))
}

// APIDomainEqualFold applies the EqualFold predicate on the "api_domain" field.
func APIDomainEqualFold(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEqualFold(FieldAPIDomain, v))
}

// APIDomainContainsFold applies the ContainsFold predicate on the "api_domain" field.
func APIDomainContainsFold(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldContainsFold(FieldAPIDomain, v))
}

// SyncDirectionEQ applies the EQ predicate on the "sync_direction" field.
func SyncDirectionEQ(v SyncDirection) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldSyncDirection, v))
}

// SyncDirectionNEQ applies the NEQ predicate on the "sync_direction" field.
func SyncDirectionNEQ(v SyncDirection) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNEQ(FieldSyncDirection, v))
}

// SyncDirectionIn applies the In predicate on the "sync_direction" field.
func SyncDirectionIn(vs ...SyncDirection) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldIn(FieldSyncDirection, vs...))
}

// SyncDirectionNotIn applies the NotIn predicate on the "sync_direction" field.
func SyncDirectionNotIn(vs ...SyncDirection) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNotIn(FieldSyncDirection, vs...))
}

// AutoSyncContactsEQ applies the EQ predicate on the "auto_sync_contacts" field.
func AutoSyncContactsEQ(v bool) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldAutoSyncContacts, v))
}

// AutoSyncContactsNEQ applies the NEQ predicate on the "auto_sync_contacts" field.
func AutoSyncContactsNEQ(v bool) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNEQ(FieldAutoSyncContacts, v))
}

// StatusSyncEventsIsNil applies the IsNil predicate on the "status_sync_events" field.
func StatusSyncEventsIsNil() predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldIsNull(FieldStatusSyncEvents))
}

// StatusSyncEventsNotNil applies the NotNil predicate on the "status_sync_events" field.
func StatusSyncEventsNotNil() predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNotNull(FieldStatusSyncEvents))
}

// LastSyncAtEQ applies the EQ predicate on the "last_sync_at" field.
func LastSyncAtEQ(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldLastSyncAt, v))
}

// LastSyncAtNEQ applies the NEQ predicate on the "last_sync_at" field.
func LastSyncAtNEQ(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNEQ(FieldLastSyncAt, v))
}

// LastSyncAtIn applies the In predicate on the "last_sync_at" field.
func LastSyncAtIn(vs ...time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldIn(FieldLastSyncAt, vs...))
}

// LastSyncAtNotIn applies the NotIn predicate on the "last_sync_at" field.
func LastSyncAtNotIn(vs ...time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNotIn(FieldLastSyncAt, vs...))
}

// LastSyncAtGT applies the GT predicate on the "last_sync_at" field.
func LastSyncAtGT(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldGT(FieldLastSyncAt, v))
}

// LastSyncAtGTE applies the GTE predicate on the "last_sync_at" field.
func LastSyncAtGTE(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldGTE(FieldLastSyncAt, v))
}

// LastSyncAtLT applies the LT predicate on the "last_sync_at" field.
func LastSyncAtLT(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldLT(FieldLastSyncAt, v))
}

// LastSyncAtLTE applies the LTE predicate on the "last_sync_at" field.
func LastSyncAtLTE(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldLTE(FieldLastSyncAt, v))
}

// LastSyncAtIsNil applies the IsNil predicate on the "last_sync_at" field.
func LastSyncAtIsNil() predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldIsNull(FieldLastSyncAt))
}

// LastSyncAtNotNil applies the NotNil predicate on the "last_sync_at" field.
func LastSyncAtNotNil() predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNotNull(FieldLastSyncAt))
}

// LastSyncErrorEQ applies the EQ predicate on the "last_sync_error" field.
func LastSyncErrorEQ(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldLastSyncError, v))
}

// LastSyncErrorNEQ applies the NEQ predicate on the "last_sync_error" field.
func LastSyncErrorNEQ(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNEQ(FieldLastSyncError, v))
}

// LastSyncErrorIn applies the In predicate on the "last_sync_error" field.
func LastSyncErrorIn(vs ...string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldIn(FieldLastSyncError, vs...))
}

// LastSyncErrorNotIn applies the NotIn predicate on the "last_sync_error" field.
func LastSyncErrorNotIn(vs ...string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNotIn(FieldLastSyncError, vs...))
}

// LastSyncErrorGT applies the GT predicate on the "last_sync_error" field.
func LastSyncErrorGT(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldGT(FieldLastSyncError, v))
}

// LastSyncErrorGTE applies the GTE predicate on the "last_sync_error" field.
func LastSyncErrorGTE(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldGTE(FieldLastSyncError, v))
}

// LastSyncErrorLT applies the LT predicate on the "last_sync_error" field.
func LastSyncErrorLT(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldLT(FieldLastSyncError, v))
}

// LastSyncErrorLTE applies the LTE predicate on the "last_sync_error" field.
func LastSyncErrorLTE(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldLTE(FieldLastSyncError, v))
}

// LastSyncErrorContains applies the Contains predicate on the "last_sync_error" field.
func LastSyncErrorContains(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldContains(FieldLastSyncError, v))
}

// LastSyncErrorHasPrefix applies the HasPrefix predicate on the "last_sync_error" field.
func LastSyncErrorHasPrefix(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldHasPrefix(FieldLastSyncError, v))
}

// LastSyncErrorHasSuffix applies the HasSuffix predicate on the "last_sync_error" field.
func LastSyncErrorHasSuffix(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldHasSuffix(FieldLastSyncError, v))
}

// LastSyncErrorIsNil applies the IsNil predicate on the "last_sync_error" field.
func LastSyncErrorIsNil() predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldIsNull(FieldLastSyncError))
}

// LastSyncErrorNotNil applies the NotNil predicate on the "last_sync_error" field.
func LastSyncErrorNotNil() predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNotNull(FieldLastSyncError))
}

// LastSyncErrorEqualFold applies the EqualFold predicate on the "last_sync_error" field.
func LastSyncErrorEqualFold(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEqualFold(FieldLastSyncError, v))
}

// LastSyncErrorContainsFold applies the ContainsFold predicate on the "last_sync_error" field.
func LastSyncErrorContainsFold(v string) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldContainsFold(FieldLastSyncError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.CRMIntegration {
	return predicate.CRMIntegration(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.CRMIntegration {
	return predicate.CRMIntegration(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStageMappings applies the HasEdge predicate on the "stage_mappings" edge.
func HasStageMappings() predicate.CRMIntegration {
	return predicate.CRMIntegration(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StageMappingsTable, StageMappingsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStageMappingsWith applies the HasEdge predicate on the "stage_mappings" edge with a given conditions (other predicates).
func HasStageMappingsWith(preds ...predicate.StageMapping) predicate.CRMIntegration {
	return predicate.CRMIntegration(func(s *sql.Selector) {
		step := newStageMappingsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDealLinks applies the HasEdge predicate on the "deal_links" edge.
func HasDealLinks() predicate.CRMIntegration {
	return predicate.CRMIntegration(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DealLinksTable, DealLinksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDealLinksWith applies the HasEdge predicate on the "deal_links" edge with a given conditions (other predicates).
func HasDealLinksWith(preds ...predicate.DealLink) predicate.CRMIntegration {
	return predicate.CRMIntegration(func(s *sql.Selector) {
		step := newDealLinksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasContacts applies the HasEdge predicate on the "contacts" edge.
func HasContacts() predicate.CRMIntegration {
	return predicate.CRMIntegration(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ContactsTable, ContactsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContactsWith applies the HasEdge predicate on the "contacts" edge with a given conditions (other predicates).
func HasContactsWith(preds ...predicate.CRMContact) predicate.CRMIntegration {
	return predicate.CRMIntegration(func(s *sql.Selector) {
		step := newContactsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CRMIntegration) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CRMIntegration) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CRMIntegration) predicate.CRMIntegration {
	return predicate.CRMIntegration(sql.NotPredicates(p))
}
