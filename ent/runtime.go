// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dealpage/dealpage/ent/crmcontact"
	"github.com/dealpage/dealpage/ent/crmintegration"
	"github.com/dealpage/dealpage/ent/deallink"
	"github.com/dealpage/dealpage/ent/proposal"
	"github.com/dealpage/dealpage/ent/schema"
	"github.com/dealpage/dealpage/ent/stagemapping"
	"github.com/dealpage/dealpage/ent/user"
	"github.com/dealpage/dealpage/ent/webhooklog"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	crmcontactFields := schema.CRMContact{}.Fields()
	_ = crmcontactFields
	// crmcontactDescExternalContactID is the schema descriptor for external_contact_id field.
	crmcontactDescExternalContactID := crmcontactFields[1].Descriptor()
	// crmcontact.ExternalContactIDValidator is a validator for the "external_contact_id" field. It is called by the builders before save.
	crmcontact.ExternalContactIDValidator = crmcontactDescExternalContactID.Validators[0].(func(string) error)
	// crmcontactDescCreatedAt is the schema descriptor for created_at field.
	crmcontactDescCreatedAt := crmcontactFields[7].Descriptor()
	// crmcontact.DefaultCreatedAt holds the default value on creation for the created_at field.
	crmcontact.DefaultCreatedAt = crmcontactDescCreatedAt.Default.(func() time.Time)
	// crmcontactDescUpdatedAt is the schema descriptor for updated_at field.
	crmcontactDescUpdatedAt := crmcontactFields[8].Descriptor()
	// crmcontact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	crmcontact.DefaultUpdatedAt = crmcontactDescUpdatedAt.Default.(func() time.Time)
	// crmcontact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	crmcontact.UpdateDefaultUpdatedAt = crmcontactDescUpdatedAt.UpdateDefault.(func() time.Time)
	crmintegrationFields := schema.CRMIntegration{}.Fields()
	_ = crmintegrationFields
	// crmintegrationDescActive is the schema descriptor for active field.
	crmintegrationDescActive := crmintegrationFields[2].Descriptor()
	// crmintegration.DefaultActive holds the default value on creation for the active field.
	crmintegration.DefaultActive = crmintegrationDescActive.Default.(bool)
	// crmintegrationDescAutoSyncContacts is the schema descriptor for auto_sync_contacts field.
	crmintegrationDescAutoSyncContacts := crmintegrationFields[10].Descriptor()
	// crmintegration.DefaultAutoSyncContacts holds the default value on creation for the auto_sync_contacts field.
	crmintegration.DefaultAutoSyncContacts = crmintegrationDescAutoSyncContacts.Default.(bool)
	// crmintegrationDescCreatedAt is the schema descriptor for created_at field.
	crmintegrationDescCreatedAt := crmintegrationFields[14].Descriptor()
	// crmintegration.DefaultCreatedAt holds the default value on creation for the created_at field.
	crmintegration.DefaultCreatedAt = crmintegrationDescCreatedAt.Default.(func() time.Time)
	// crmintegrationDescUpdatedAt is the schema descriptor for updated_at field.
	crmintegrationDescUpdatedAt := crmintegrationFields[15].Descriptor()
	// crmintegration.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	crmintegration.DefaultUpdatedAt = crmintegrationDescUpdatedAt.Default.(func() time.Time)
	// crmintegration.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	crmintegration.UpdateDefaultUpdatedAt = crmintegrationDescUpdatedAt.UpdateDefault.(func() time.Time)
	deallinkFields := schema.DealLink{}.Fields()
	_ = deallinkFields
	// deallinkDescExternalDealID is the schema descriptor for external_deal_id field.
	deallinkDescExternalDealID := deallinkFields[2].Descriptor()
	// deallink.ExternalDealIDValidator is a validator for the "external_deal_id" field. It is called by the builders before save.
	deallink.ExternalDealIDValidator = deallinkDescExternalDealID.Validators[0].(func(string) error)
	// deallinkDescCreatedAt is the schema descriptor for created_at field.
	deallinkDescCreatedAt := deallinkFields[3].Descriptor()
	// deallink.DefaultCreatedAt holds the default value on creation for the created_at field.
	deallink.DefaultCreatedAt = deallinkDescCreatedAt.Default.(func() time.Time)
	// deallinkDescUpdatedAt is the schema descriptor for updated_at field.
	deallinkDescUpdatedAt := deallinkFields[4].Descriptor()
	// deallink.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	deallink.DefaultUpdatedAt = deallinkDescUpdatedAt.Default.(func() time.Time)
	// deallink.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	deallink.UpdateDefaultUpdatedAt = deallinkDescUpdatedAt.UpdateDefault.(func() time.Time)
	proposalFields := schema.Proposal{}.Fields()
	_ = proposalFields
	// proposalDescTitle is the schema descriptor for title field.
	proposalDescTitle := proposalFields[1].Descriptor()
	// proposal.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	proposal.TitleValidator = proposalDescTitle.Validators[0].(func(string) error)
	// proposalDescAmount is the schema descriptor for amount field.
	proposalDescAmount := proposalFields[2].Descriptor()
	// proposal.DefaultAmount holds the default value on creation for the amount field.
	proposal.DefaultAmount = proposalDescAmount.Default.(float64)
	// proposalDescCurrency is the schema descriptor for currency field.
	proposalDescCurrency := proposalFields[3].Descriptor()
	// proposal.DefaultCurrency holds the default value on creation for the currency field.
	proposal.DefaultCurrency = proposalDescCurrency.Default.(string)
	// proposalDescStatusChangedAt is the schema descriptor for status_changed_at field.
	proposalDescStatusChangedAt := proposalFields[6].Descriptor()
	// proposal.DefaultStatusChangedAt holds the default value on creation for the status_changed_at field.
	proposal.DefaultStatusChangedAt = proposalDescStatusChangedAt.Default.(func() time.Time)
	// proposalDescCreatedAt is the schema descriptor for created_at field.
	proposalDescCreatedAt := proposalFields[7].Descriptor()
	// proposal.DefaultCreatedAt holds the default value on creation for the created_at field.
	proposal.DefaultCreatedAt = proposalDescCreatedAt.Default.(func() time.Time)
	// proposalDescUpdatedAt is the schema descriptor for updated_at field.
	proposalDescUpdatedAt := proposalFields[8].Descriptor()
	// proposal.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	proposal.DefaultUpdatedAt = proposalDescUpdatedAt.Default.(func() time.Time)
	// proposal.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	proposal.UpdateDefaultUpdatedAt = proposalDescUpdatedAt.UpdateDefault.(func() time.Time)
	stagemappingFields := schema.StageMapping{}.Fields()
	_ = stagemappingFields
	// stagemappingDescProposalStatus is the schema descriptor for proposal_status field.
	stagemappingDescProposalStatus := stagemappingFields[1].Descriptor()
	// stagemapping.ProposalStatusValidator is a validator for the "proposal_status" field. It is called by the builders before save.
	stagemapping.ProposalStatusValidator = stagemappingDescProposalStatus.Validators[0].(func(string) error)
	// stagemappingDescExternalStageID is the schema descriptor for external_stage_id field.
	stagemappingDescExternalStageID := stagemappingFields[2].Descriptor()
	// stagemapping.ExternalStageIDValidator is a validator for the "external_stage_id" field. It is called by the builders before save.
	stagemapping.ExternalStageIDValidator = stagemappingDescExternalStageID.Validators[0].(func(string) error)
	// stagemappingDescCreatedAt is the schema descriptor for created_at field.
	stagemappingDescCreatedAt := stagemappingFields[4].Descriptor()
	// stagemapping.DefaultCreatedAt holds the default value on creation for the created_at field.
	stagemapping.DefaultCreatedAt = stagemappingDescCreatedAt.Default.(func() time.Time)
	// stagemappingDescUpdatedAt is the schema descriptor for updated_at field.
	stagemappingDescUpdatedAt := stagemappingFields[5].Descriptor()
	// stagemapping.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	stagemapping.DefaultUpdatedAt = stagemappingDescUpdatedAt.Default.(func() time.Time)
	// stagemapping.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	stagemapping.UpdateDefaultUpdatedAt = stagemappingDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[1].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescEmailVerified is the schema descriptor for email_verified field.
	userDescEmailVerified := userFields[3].Descriptor()
	// user.DefaultEmailVerified holds the default value on creation for the email_verified field.
	user.DefaultEmailVerified = userDescEmailVerified.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[5].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	webhooklogFields := schema.WebhookLog{}.Fields()
	_ = webhooklogFields
	// webhooklogDescProcessed is the schema descriptor for processed field.
	webhooklogDescProcessed := webhooklogFields[3].Descriptor()
	// webhooklog.DefaultProcessed holds the default value on creation for the processed field.
	webhooklog.DefaultProcessed = webhooklogDescProcessed.Default.(bool)
	// webhooklogDescReceivedAt is the schema descriptor for received_at field.
	webhooklogDescReceivedAt := webhooklogFields[6].Descriptor()
	// webhooklog.DefaultReceivedAt holds the default value on creation for the received_at field.
	webhooklog.DefaultReceivedAt = webhooklogDescReceivedAt.Default.(func() time.Time)
}
