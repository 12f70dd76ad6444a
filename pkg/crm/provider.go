package crm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrUnknownProvider is returned when an unsupported provider is specified
	ErrUnknownProvider = errors.New("unknown CRM provider")
	// ErrUnauthenticated is returned when no usable credentials exist for an integration
	ErrUnauthenticated = errors.New("CRM integration is not authenticated")
	// ErrRefreshFailed is returned when the provider rejects the refresh token
	ErrRefreshFailed = errors.New("CRM token refresh rejected by provider")
	// ErrProviderUnavailable is returned on provider timeouts and 5xx responses
	ErrProviderUnavailable = errors.New("CRM provider unavailable")
	// ErrSignatureInvalid is returned when a webhook signature does not verify
	ErrSignatureInvalid = errors.New("webhook signature invalid")
	// ErrNotFound is returned when a provider object does not exist
	ErrNotFound = errors.New("CRM object not found")
)

// Provider identifies one of the supported CRM systems.
type Provider string

const (
	// ProviderHubSpot represents HubSpot CRM
	ProviderHubSpot Provider = "hubspot"
	// ProviderSalesforce represents Salesforce
	ProviderSalesforce Provider = "salesforce"
	// ProviderPipedrive represents Pipedrive
	ProviderPipedrive Provider = "pipedrive"
	// ProviderZoho represents Zoho CRM
	ProviderZoho Provider = "zoho"
)

// ParseProvider validates a provider name from user input or a URL segment.
func ParseProvider(s string) (Provider, error) {
	switch Provider(s) {
	case ProviderHubSpot, ProviderSalesforce, ProviderPipedrive, ProviderZoho:
		return Provider(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownProvider, s)
	}
}

// AccountMetadata is the provider-side routing information captured during the
// OAuth exchange. Inbound webhooks carry no internal user ids; AccountID is
// what lets an event find its way back to the owning integration.
type AccountMetadata struct {
	// AccountID is the provider account identifier: HubSpot portal id,
	// Salesforce organization id, Pipedrive company domain, Zoho org id.
	AccountID string
	// InstanceURL is the tenant REST base URL (Salesforce).
	InstanceURL string
	// APIDomain is the tenant API domain (Pipedrive, Zoho).
	APIDomain string
}

// TokenSet is the result of a code exchange or token refresh.
type TokenSet struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	Metadata     AccountMetadata
}

// Auth carries everything an adapter needs to call the provider API on
// behalf of one integration.
type Auth struct {
	AccessToken string
	AccountID   string
	InstanceURL string
	APIDomain   string
}

// Stage is one pipeline stage as reported by a provider.
type Stage struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Deal is the provider-neutral deal shape. Adapters own all translation
// between these fields and provider-specific property names.
type Deal struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Stage        string            `json:"stage"`
	Amount       float64           `json:"amount"`
	ContactID    string            `json:"contact_id,omitempty"`
	CustomFields map[string]string `json:"custom_fields,omitempty"`
}

// Contact is the provider-neutral contact shape.
type Contact struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Webhook event types shared across providers after classification.
const (
	EventDealStageChanged = "deal.stage_changed"
	EventDealDeleted      = "deal.deleted"
	EventContactChanged   = "contact.changed"
)

// WebhookEvent is one classified inbound event. Events the classifier does
// not recognize keep their provider-native type string and are discarded by
// the router. Raw carries the decoded provider payload for the audit log.
type WebhookEvent struct {
	Type      string
	ObjectID  string
	AccountID string
	StageID   string
	StageName string
	Contact   *Contact
	Raw       map[string]interface{}
}

// rawPayload decodes one delivery or batch entry into the generic map
// retained by the webhook audit log. The bytes already parsed once, so a
// decode failure here only costs the diagnostic payload.
func rawPayload(data []byte) map[string]interface{} {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	return m
}

// Adapter is the uniform capability interface implemented once per provider.
// All provider-specific endpoints, auth idioms and field names live behind it.
type Adapter interface {
	Provider() Provider

	// AuthorizationURL builds the consent URL. State is opaque to the
	// provider and round-trips the internal user id.
	AuthorizationURL(state string) string

	// ExchangeCode performs the one-time authorization code exchange. The
	// returned metadata must include the provider account identifier used
	// to route inbound webhooks.
	ExchangeCode(ctx context.Context, code string) (*TokenSet, error)

	// Refresh exchanges a refresh token for a new token set. A provider-side
	// rejection yields ErrRefreshFailed; callers disconnect rather than retry.
	// Outages and timeouts surface as ErrProviderUnavailable and must not be
	// treated as a rejection, the stored refresh token is still good.
	Refresh(ctx context.Context, refreshToken string, meta AccountMetadata) (*TokenSet, error)

	// ListStages returns pipeline stage metadata. Best-effort: callers treat
	// provider errors as an empty list, not a hard failure.
	ListStages(ctx context.Context, auth Auth) ([]Stage, error)

	CreateDeal(ctx context.Context, auth Auth, d Deal) (*Deal, error)
	UpdateDeal(ctx context.Context, auth Auth, d Deal) (*Deal, error)
	GetDeal(ctx context.Context, auth Auth, id string) (*Deal, error)
	ListDeals(ctx context.Context, auth Auth) ([]Deal, error)

	ListContacts(ctx context.Context, auth Auth) ([]Contact, error)
	GetContact(ctx context.Context, auth Auth, id string) (*Contact, error)
	CreateContact(ctx context.Context, auth Auth, ct Contact) (*Contact, error)
	UpdateContact(ctx context.Context, auth Auth, ct Contact) (*Contact, error)

	// CreateNote appends a note/activity to a deal.
	CreateNote(ctx context.Context, auth Auth, dealID, body string) error

	// UploadAttachment attaches a file to a deal.
	UploadAttachment(ctx context.Context, auth Auth, dealID, filename string, data []byte) error

	// Revoke invalidates tokens at the provider. Best-effort: failures are
	// logged by the caller, never propagated.
	Revoke(ctx context.Context, refreshToken string) error

	// VerifyWebhookSignature checks the provider signature over the raw body.
	// requestURL is the full externally visible delivery URL; HubSpot includes
	// it in the signed material.
	VerifyWebhookSignature(header http.Header, body []byte, requestURL string) error

	// ParseWebhook classifies a verified payload into neutral events.
	ParseWebhook(body []byte) ([]WebhookEvent, error)
}
