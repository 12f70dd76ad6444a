// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CRMContact is the predicate function for crmcontact builders.
type CRMContact func(*sql.Selector)

// CRMIntegration is the predicate function for crmintegration builders.
type CRMIntegration func(*sql.Selector)

// DealLink is the predicate function for deallink builders.
type DealLink func(*sql.Selector)

// Proposal is the predicate function for proposal builders.
type Proposal func(*sql.Selector)

// StageMapping is the predicate function for stagemapping builders.
type StageMapping func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// WebhookLog is the predicate function for webhooklog builders.
type WebhookLog func(*sql.Selector)
