package crm

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dealpage/dealpage/config"
)

const salesforceAPIVersion = "v59.0"

// salesforceAdapter implements Adapter against the Salesforce REST API.
// Every data call goes through the tenant instance URL captured at connect
// time; only the OAuth endpoints use the login host.
type salesforceAdapter struct {
	creds       config.ProviderCredentials
	callbackURL string
	loginBase   string
	client      *apiClient
}

// NewSalesforceAdapter creates the Salesforce adapter.
func NewSalesforceAdapter(creds config.ProviderCredentials, callbackURL string) Adapter {
	return &salesforceAdapter{
		creds:       creds,
		callbackURL: callbackURL,
		loginBase:   "https://login.salesforce.com",
		client:      newAPIClient(),
	}
}

func (a *salesforceAdapter) Provider() Provider { return ProviderSalesforce }

func (a *salesforceAdapter) redirectURI() string { return a.callbackURL + "/salesforce" }

func (a *salesforceAdapter) AuthorizationURL(state string) string {
	params := url.Values{}
	params.Add("response_type", "code")
	params.Add("client_id", a.creds.ClientID)
	params.Add("redirect_uri", a.redirectURI())
	params.Add("scope", "api refresh_token")
	params.Add("state", state)
	return a.loginBase + "/services/oauth2/authorize?" + params.Encode()
}

type salesforceTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	InstanceURL  string `json:"instance_url"`
	ID           string `json:"id"` // identity URL: {login}/id/{orgId}/{userId}
}

// salesforceOrgID extracts the organization id from the identity URL.
func salesforceOrgID(identityURL string) string {
	parts := strings.Split(strings.TrimRight(identityURL, "/"), "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-2]
}

func (a *salesforceAdapter) ExchangeCode(ctx context.Context, code string) (*TokenSet, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("client_id", a.creds.ClientID)
	data.Set("client_secret", a.creds.ClientSecret)
	data.Set("redirect_uri", a.redirectURI())
	data.Set("code", code)

	var tok salesforceTokenResponse
	if err := a.client.postForm(ctx, a.loginBase+"/services/oauth2/token", data, &tok); err != nil {
		return nil, fmt.Errorf("salesforce code exchange failed: %w", err)
	}

	return &TokenSet{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		// Session lifetime is org policy; two hours is the platform default.
		ExpiresAt: time.Now().Add(2 * time.Hour),
		Metadata: AccountMetadata{
			AccountID:   salesforceOrgID(tok.ID),
			InstanceURL: tok.InstanceURL,
		},
	}, nil
}

func (a *salesforceAdapter) Refresh(ctx context.Context, refreshToken string, meta AccountMetadata) (*TokenSet, error) {
	data := url.Values{}
	data.Set("grant_type", "refresh_token")
	data.Set("client_id", a.creds.ClientID)
	data.Set("client_secret", a.creds.ClientSecret)
	data.Set("refresh_token", refreshToken)

	var tok salesforceTokenResponse
	if err := a.client.postForm(ctx, a.loginBase+"/services/oauth2/token", data, &tok); err != nil {
		return nil, refreshError(err)
	}

	if tok.InstanceURL != "" {
		meta.InstanceURL = tok.InstanceURL
	}
	// Salesforce does not rotate refresh tokens on refresh.
	return &TokenSet{
		AccessToken:  tok.AccessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(2 * time.Hour),
		Metadata:     meta,
	}, nil
}

func (a *salesforceAdapter) restURL(auth Auth, path string) string {
	return auth.InstanceURL + "/services/data/" + salesforceAPIVersion + path
}

func (a *salesforceAdapter) query(ctx context.Context, auth Auth, soql string, out interface{}) error {
	u := a.restURL(auth, "/query?q=") + url.QueryEscape(soql)
	return a.client.doJSON(ctx, http.MethodGet, u, auth.AccessToken, nil, out)
}

func (a *salesforceAdapter) ListStages(ctx context.Context, auth Auth) ([]Stage, error) {
	var resp struct {
		Records []struct {
			MasterLabel string `json:"MasterLabel"`
		} `json:"records"`
	}
	if err := a.query(ctx, auth, "SELECT MasterLabel FROM OpportunityStage ORDER BY SortOrder", &resp); err != nil {
		return nil, err
	}
	stages := make([]Stage, 0, len(resp.Records))
	for _, r := range resp.Records {
		// Opportunity.StageName is keyed by label, so id and name coincide.
		stages = append(stages, Stage{ID: r.MasterLabel, Name: r.MasterLabel})
	}
	return stages, nil
}

type salesforceOpportunity struct {
	ID        string  `json:"Id,omitempty"`
	Name      string  `json:"Name,omitempty"`
	StageName string  `json:"StageName,omitempty"`
	Amount    float64 `json:"Amount,omitempty"`
	CloseDate string  `json:"CloseDate,omitempty"`
}

func salesforceDeal(o salesforceOpportunity) Deal {
	return Deal{ID: o.ID, Name: o.Name, Stage: o.StageName, Amount: o.Amount}
}

func (a *salesforceAdapter) CreateDeal(ctx context.Context, auth Auth, d Deal) (*Deal, error) {
	body := salesforceOpportunity{
		Name:      d.Name,
		StageName: d.Stage,
		Amount:    d.Amount,
		// Opportunity requires a close date; 30 days out mirrors proposal expiry.
		CloseDate: time.Now().AddDate(0, 0, 30).Format("2006-01-02"),
	}
	var out struct {
		ID string `json:"id"`
	}
	if err := a.client.doJSON(ctx, http.MethodPost, a.restURL(auth, "/sobjects/Opportunity"), auth.AccessToken, body, &out); err != nil {
		return nil, fmt.Errorf("salesforce create opportunity failed: %w", err)
	}
	created := d
	created.ID = out.ID
	if d.ContactID != "" {
		role := map[string]string{
			"OpportunityId": out.ID,
			"ContactId":     d.ContactID,
			"Role":          "Decision Maker",
		}
		if err := a.client.doJSON(ctx, http.MethodPost, a.restURL(auth, "/sobjects/OpportunityContactRole"), auth.AccessToken, role, nil); err != nil {
			return &created, fmt.Errorf("salesforce contact role failed: %w", err)
		}
	}
	return &created, nil
}

func (a *salesforceAdapter) UpdateDeal(ctx context.Context, auth Auth, d Deal) (*Deal, error) {
	body := salesforceOpportunity{
		Name:      d.Name,
		StageName: d.Stage,
		Amount:    d.Amount,
	}
	// PATCH on sobjects returns 204 with no body.
	if err := a.client.doJSON(ctx, http.MethodPatch, a.restURL(auth, "/sobjects/Opportunity/"+d.ID), auth.AccessToken, body, nil); err != nil {
		return nil, fmt.Errorf("salesforce update opportunity failed: %w", err)
	}
	updated := d
	return &updated, nil
}

func (a *salesforceAdapter) GetDeal(ctx context.Context, auth Auth, id string) (*Deal, error) {
	var o salesforceOpportunity
	if err := a.client.doJSON(ctx, http.MethodGet, a.restURL(auth, "/sobjects/Opportunity/"+id), auth.AccessToken, nil, &o); err != nil {
		return nil, err
	}
	deal := salesforceDeal(o)
	return &deal, nil
}

func (a *salesforceAdapter) ListDeals(ctx context.Context, auth Auth) ([]Deal, error) {
	var resp struct {
		Records []salesforceOpportunity `json:"records"`
	}
	if err := a.query(ctx, auth, "SELECT Id, Name, StageName, Amount FROM Opportunity ORDER BY LastModifiedDate DESC LIMIT 100", &resp); err != nil {
		return nil, err
	}
	deals := make([]Deal, 0, len(resp.Records))
	for _, r := range resp.Records {
		deals = append(deals, salesforceDeal(r))
	}
	return deals, nil
}

type salesforceContact struct {
	ID        string `json:"Id,omitempty"`
	FirstName string `json:"FirstName,omitempty"`
	LastName  string `json:"LastName,omitempty"`
	Email     string `json:"Email,omitempty"`
	Phone     string `json:"Phone,omitempty"`
}

func (a *salesforceAdapter) ListContacts(ctx context.Context, auth Auth) ([]Contact, error) {
	var resp struct {
		Records []salesforceContact `json:"records"`
	}
	if err := a.query(ctx, auth, "SELECT Id, FirstName, LastName, Email, Phone FROM Contact ORDER BY LastModifiedDate DESC LIMIT 100", &resp); err != nil {
		return nil, err
	}
	contacts := make([]Contact, 0, len(resp.Records))
	for _, r := range resp.Records {
		contacts = append(contacts, Contact{ID: r.ID, FirstName: r.FirstName, LastName: r.LastName, Email: r.Email, Phone: r.Phone})
	}
	return contacts, nil
}

func (a *salesforceAdapter) GetContact(ctx context.Context, auth Auth, id string) (*Contact, error) {
	var r salesforceContact
	if err := a.client.doJSON(ctx, http.MethodGet, a.restURL(auth, "/sobjects/Contact/"+id), auth.AccessToken, nil, &r); err != nil {
		return nil, err
	}
	return &Contact{ID: r.ID, FirstName: r.FirstName, LastName: r.LastName, Email: r.Email, Phone: r.Phone}, nil
}

func (a *salesforceAdapter) CreateContact(ctx context.Context, auth Auth, ct Contact) (*Contact, error) {
	body := salesforceContact{
		FirstName: ct.FirstName,
		LastName:  ct.LastName,
		Email:     ct.Email,
		Phone:     ct.Phone,
	}
	if body.LastName == "" {
		body.LastName = "Unknown" // LastName is required on Contact
	}
	var out struct {
		ID string `json:"id"`
	}
	if err := a.client.doJSON(ctx, http.MethodPost, a.restURL(auth, "/sobjects/Contact"), auth.AccessToken, body, &out); err != nil {
		return nil, fmt.Errorf("salesforce create contact failed: %w", err)
	}
	created := ct
	created.ID = out.ID
	return &created, nil
}

func (a *salesforceAdapter) UpdateContact(ctx context.Context, auth Auth, ct Contact) (*Contact, error) {
	body := salesforceContact{
		FirstName: ct.FirstName,
		LastName:  ct.LastName,
		Email:     ct.Email,
		Phone:     ct.Phone,
	}
	if err := a.client.doJSON(ctx, http.MethodPatch, a.restURL(auth, "/sobjects/Contact/"+ct.ID), auth.AccessToken, body, nil); err != nil {
		return nil, fmt.Errorf("salesforce update contact failed: %w", err)
	}
	updated := ct
	return &updated, nil
}

func (a *salesforceAdapter) CreateNote(ctx context.Context, auth Auth, dealID, body string) error {
	note := map[string]string{
		"ParentId": dealID,
		"Title":    "DealPage proposal update",
		"Body":     body,
	}
	if err := a.client.doJSON(ctx, http.MethodPost, a.restURL(auth, "/sobjects/Note"), auth.AccessToken, note, nil); err != nil {
		return fmt.Errorf("salesforce create note failed: %w", err)
	}
	return nil
}

func (a *salesforceAdapter) UploadAttachment(ctx context.Context, auth Auth, dealID, filename string, data []byte) error {
	version := map[string]string{
		"Title":                  strings.TrimSuffix(filename, ".pdf"),
		"PathOnClient":           filename,
		"VersionData":            base64.StdEncoding.EncodeToString(data),
		"FirstPublishLocationId": dealID,
		"ReasonForChange":        "Signed proposal document",
	}
	if err := a.client.doJSON(ctx, http.MethodPost, a.restURL(auth, "/sobjects/ContentVersion"), auth.AccessToken, version, nil); err != nil {
		return fmt.Errorf("salesforce attachment upload failed: %w", err)
	}
	return nil
}

func (a *salesforceAdapter) Revoke(ctx context.Context, refreshToken string) error {
	data := url.Values{}
	data.Set("token", refreshToken)
	return a.client.postForm(ctx, a.loginBase+"/services/oauth2/revoke", data, nil)
}

// VerifyWebhookSignature checks the hex HMAC-SHA256 of the raw body carried
// in x-sfdc-signature.
func (a *salesforceAdapter) VerifyWebhookSignature(header http.Header, body []byte, requestURL string) error {
	signature := header.Get("x-sfdc-signature")
	if signature == "" {
		return ErrSignatureInvalid
	}
	mac := hmac.New(sha256.New, []byte(a.creds.WebhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return ErrSignatureInvalid
	}
	return nil
}

// salesforceWebhookPayload is the notification shape pushed by the DealPage
// managed package (an Apex trigger posting JSON to our endpoint).
type salesforceWebhookPayload struct {
	OrganizationID string            `json:"organizationId"`
	Events         []json.RawMessage `json:"events"`
}

type salesforceWebhookEvent struct {
	EventType string             `json:"eventType"`
	ObjectID  string             `json:"objectId"`
	StageName string             `json:"stageName,omitempty"`
	Contact   *salesforceContact `json:"contact,omitempty"`
}

func (a *salesforceAdapter) ParseWebhook(body []byte) ([]WebhookEvent, error) {
	var payload salesforceWebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("salesforce webhook payload malformed: %w", err)
	}

	events := make([]WebhookEvent, 0, len(payload.Events))
	for _, item := range payload.Events {
		var e salesforceWebhookEvent
		if err := json.Unmarshal(item, &e); err != nil {
			return nil, fmt.Errorf("salesforce webhook payload malformed: %w", err)
		}
		ev := WebhookEvent{
			Type:      e.EventType,
			ObjectID:  e.ObjectID,
			AccountID: payload.OrganizationID,
			Raw:       rawPayload(item),
		}
		switch e.EventType {
		case "opportunity.stage_changed":
			ev.Type = EventDealStageChanged
			ev.StageID = e.StageName
			ev.StageName = e.StageName
		case "opportunity.deleted":
			ev.Type = EventDealDeleted
		case "contact.updated":
			ev.Type = EventContactChanged
			if e.Contact != nil {
				ev.Contact = &Contact{
					ID:        e.Contact.ID,
					FirstName: e.Contact.FirstName,
					LastName:  e.Contact.LastName,
					Email:     e.Contact.Email,
					Phone:     e.Contact.Phone,
				}
			}
		}
		events = append(events, ev)
	}
	return events, nil
}
