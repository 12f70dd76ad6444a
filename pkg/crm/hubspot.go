package crm

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dealpage/dealpage/config"
)

// hubspotAdapter implements Adapter against the HubSpot v3 API.
type hubspotAdapter struct {
	creds       config.ProviderCredentials
	callbackURL string
	authBase    string
	apiBase     string
	client      *apiClient
}

// NewHubSpotAdapter creates the HubSpot adapter.
func NewHubSpotAdapter(creds config.ProviderCredentials, callbackURL string) Adapter {
	return &hubspotAdapter{
		creds:       creds,
		callbackURL: callbackURL,
		authBase:    "https://app.hubspot.com",
		apiBase:     "https://api.hubapi.com",
		client:      newAPIClient(),
	}
}

func (a *hubspotAdapter) Provider() Provider { return ProviderHubSpot }

func (a *hubspotAdapter) redirectURI() string { return a.callbackURL + "/hubspot" }

func (a *hubspotAdapter) AuthorizationURL(state string) string {
	params := url.Values{}
	params.Add("client_id", a.creds.ClientID)
	params.Add("redirect_uri", a.redirectURI())
	params.Add("scope", "crm.objects.deals.read crm.objects.deals.write crm.objects.contacts.read crm.objects.contacts.write files")
	params.Add("state", state)
	return a.authBase + "/oauth/authorize?" + params.Encode()
}

type hubspotTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

func (a *hubspotAdapter) ExchangeCode(ctx context.Context, code string) (*TokenSet, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("client_id", a.creds.ClientID)
	data.Set("client_secret", a.creds.ClientSecret)
	data.Set("redirect_uri", a.redirectURI())
	data.Set("code", code)

	var tok hubspotTokenResponse
	if err := a.client.postForm(ctx, a.apiBase+"/oauth/v1/token", data, &tok); err != nil {
		return nil, fmt.Errorf("hubspot code exchange failed: %w", err)
	}

	// The portal (hub) id routes inbound webhooks back to this integration.
	var info struct {
		HubID int `json:"hub_id"`
	}
	if err := a.client.doJSON(ctx, http.MethodGet, a.apiBase+"/oauth/v1/access-tokens/"+tok.AccessToken, "", nil, &info); err != nil {
		return nil, fmt.Errorf("hubspot token introspection failed: %w", err)
	}

	return &TokenSet{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second),
		Metadata:     AccountMetadata{AccountID: strconv.Itoa(info.HubID)},
	}, nil
}

func (a *hubspotAdapter) Refresh(ctx context.Context, refreshToken string, meta AccountMetadata) (*TokenSet, error) {
	data := url.Values{}
	data.Set("grant_type", "refresh_token")
	data.Set("client_id", a.creds.ClientID)
	data.Set("client_secret", a.creds.ClientSecret)
	data.Set("refresh_token", refreshToken)

	var tok hubspotTokenResponse
	if err := a.client.postForm(ctx, a.apiBase+"/oauth/v1/token", data, &tok); err != nil {
		return nil, refreshError(err)
	}

	// HubSpot rotates refresh tokens; persist the new one.
	return &TokenSet{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second),
		Metadata:     meta,
	}, nil
}

func (a *hubspotAdapter) ListStages(ctx context.Context, auth Auth) ([]Stage, error) {
	var resp struct {
		Results []struct {
			Stages []struct {
				ID    string `json:"id"`
				Label string `json:"label"`
			} `json:"stages"`
		} `json:"results"`
	}
	if err := a.client.doJSON(ctx, http.MethodGet, a.apiBase+"/crm/v3/pipelines/deals", auth.AccessToken, nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, nil
	}
	stages := make([]Stage, 0, len(resp.Results[0].Stages))
	for _, s := range resp.Results[0].Stages {
		stages = append(stages, Stage{ID: s.ID, Name: s.Label})
	}
	return stages, nil
}

type hubspotDealProperties struct {
	DealName  string `json:"dealname,omitempty"`
	DealStage string `json:"dealstage,omitempty"`
	Amount    string `json:"amount,omitempty"`
}

type hubspotObject struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
}

func hubspotDealFromObject(o hubspotObject) Deal {
	amount, _ := strconv.ParseFloat(o.Properties["amount"], 64)
	return Deal{
		ID:     o.ID,
		Name:   o.Properties["dealname"],
		Stage:  o.Properties["dealstage"],
		Amount: amount,
	}
}

func hubspotDealProps(d Deal) hubspotDealProperties {
	props := hubspotDealProperties{
		DealName:  d.Name,
		DealStage: d.Stage,
	}
	if d.Amount != 0 && !math.IsNaN(d.Amount) {
		props.Amount = strconv.FormatFloat(d.Amount, 'f', 2, 64)
	}
	return props
}

func (a *hubspotAdapter) CreateDeal(ctx context.Context, auth Auth, d Deal) (*Deal, error) {
	body := map[string]interface{}{"properties": hubspotDealProps(d)}
	if d.ContactID != "" {
		body["associations"] = []map[string]interface{}{{
			"to": map[string]string{"id": d.ContactID},
			"types": []map[string]interface{}{{
				"associationCategory": "HUBSPOT_DEFINED",
				"associationTypeId":   3, // deal-to-contact
			}},
		}}
	}
	var out hubspotObject
	if err := a.client.doJSON(ctx, http.MethodPost, a.apiBase+"/crm/v3/objects/deals", auth.AccessToken, body, &out); err != nil {
		return nil, fmt.Errorf("hubspot create deal failed: %w", err)
	}
	created := hubspotDealFromObject(out)
	return &created, nil
}

func (a *hubspotAdapter) UpdateDeal(ctx context.Context, auth Auth, d Deal) (*Deal, error) {
	body := map[string]interface{}{"properties": hubspotDealProps(d)}
	var out hubspotObject
	if err := a.client.doJSON(ctx, http.MethodPatch, a.apiBase+"/crm/v3/objects/deals/"+d.ID, auth.AccessToken, body, &out); err != nil {
		return nil, fmt.Errorf("hubspot update deal failed: %w", err)
	}
	updated := hubspotDealFromObject(out)
	return &updated, nil
}

func (a *hubspotAdapter) GetDeal(ctx context.Context, auth Auth, id string) (*Deal, error) {
	var out hubspotObject
	u := a.apiBase + "/crm/v3/objects/deals/" + id + "?properties=dealname,dealstage,amount"
	if err := a.client.doJSON(ctx, http.MethodGet, u, auth.AccessToken, nil, &out); err != nil {
		return nil, err
	}
	deal := hubspotDealFromObject(out)
	return &deal, nil
}

func (a *hubspotAdapter) ListDeals(ctx context.Context, auth Auth) ([]Deal, error) {
	var resp struct {
		Results []hubspotObject `json:"results"`
	}
	u := a.apiBase + "/crm/v3/objects/deals?limit=100&properties=dealname,dealstage,amount"
	if err := a.client.doJSON(ctx, http.MethodGet, u, auth.AccessToken, nil, &resp); err != nil {
		return nil, err
	}
	deals := make([]Deal, 0, len(resp.Results))
	for _, o := range resp.Results {
		deals = append(deals, hubspotDealFromObject(o))
	}
	return deals, nil
}

func hubspotContactFromObject(o hubspotObject) Contact {
	return Contact{
		ID:        o.ID,
		Email:     o.Properties["email"],
		FirstName: o.Properties["firstname"],
		LastName:  o.Properties["lastname"],
		Company:   o.Properties["company"],
		Phone:     o.Properties["phone"],
	}
}

func hubspotContactProps(ct Contact) map[string]string {
	props := map[string]string{}
	if ct.Email != "" {
		props["email"] = ct.Email
	}
	if ct.FirstName != "" {
		props["firstname"] = ct.FirstName
	}
	if ct.LastName != "" {
		props["lastname"] = ct.LastName
	}
	if ct.Company != "" {
		props["company"] = ct.Company
	}
	if ct.Phone != "" {
		props["phone"] = ct.Phone
	}
	return props
}

func (a *hubspotAdapter) ListContacts(ctx context.Context, auth Auth) ([]Contact, error) {
	var resp struct {
		Results []hubspotObject `json:"results"`
	}
	u := a.apiBase + "/crm/v3/objects/contacts?limit=100&properties=email,firstname,lastname,company,phone"
	if err := a.client.doJSON(ctx, http.MethodGet, u, auth.AccessToken, nil, &resp); err != nil {
		return nil, err
	}
	contacts := make([]Contact, 0, len(resp.Results))
	for _, o := range resp.Results {
		contacts = append(contacts, hubspotContactFromObject(o))
	}
	return contacts, nil
}

func (a *hubspotAdapter) GetContact(ctx context.Context, auth Auth, id string) (*Contact, error) {
	var out hubspotObject
	u := a.apiBase + "/crm/v3/objects/contacts/" + id + "?properties=email,firstname,lastname,company,phone"
	if err := a.client.doJSON(ctx, http.MethodGet, u, auth.AccessToken, nil, &out); err != nil {
		return nil, err
	}
	ct := hubspotContactFromObject(out)
	return &ct, nil
}

func (a *hubspotAdapter) CreateContact(ctx context.Context, auth Auth, ct Contact) (*Contact, error) {
	body := map[string]interface{}{"properties": hubspotContactProps(ct)}
	var out hubspotObject
	if err := a.client.doJSON(ctx, http.MethodPost, a.apiBase+"/crm/v3/objects/contacts", auth.AccessToken, body, &out); err != nil {
		return nil, fmt.Errorf("hubspot create contact failed: %w", err)
	}
	created := hubspotContactFromObject(out)
	return &created, nil
}

func (a *hubspotAdapter) UpdateContact(ctx context.Context, auth Auth, ct Contact) (*Contact, error) {
	body := map[string]interface{}{"properties": hubspotContactProps(ct)}
	var out hubspotObject
	if err := a.client.doJSON(ctx, http.MethodPatch, a.apiBase+"/crm/v3/objects/contacts/"+ct.ID, auth.AccessToken, body, &out); err != nil {
		return nil, fmt.Errorf("hubspot update contact failed: %w", err)
	}
	updated := hubspotContactFromObject(out)
	return &updated, nil
}

func (a *hubspotAdapter) CreateNote(ctx context.Context, auth Auth, dealID, body string) error {
	payload := map[string]interface{}{
		"properties": map[string]string{
			"hs_note_body": body,
			"hs_timestamp": strconv.FormatInt(time.Now().UnixMilli(), 10),
		},
		"associations": []map[string]interface{}{{
			"to": map[string]string{"id": dealID},
			"types": []map[string]interface{}{{
				"associationCategory": "HUBSPOT_DEFINED",
				"associationTypeId":   214, // note-to-deal
			}},
		}},
	}
	if err := a.client.doJSON(ctx, http.MethodPost, a.apiBase+"/crm/v3/objects/notes", auth.AccessToken, payload, nil); err != nil {
		return fmt.Errorf("hubspot create note failed: %w", err)
	}
	return nil
}

func (a *hubspotAdapter) UploadAttachment(ctx context.Context, auth Auth, dealID, filename string, data []byte) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := fw.Write(data); err != nil {
		return err
	}
	_ = mw.WriteField("folderPath", "/proposals")
	_ = mw.WriteField("options", `{"access":"PRIVATE"}`)
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.apiBase+"/files/v3/files", &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+auth.AccessToken)

	var uploaded struct {
		ID string `json:"id"`
	}
	if err := a.client.do(req, &uploaded); err != nil {
		return fmt.Errorf("hubspot file upload failed: %w", err)
	}

	// Surface the file on the deal timeline through a note.
	payload := map[string]interface{}{
		"properties": map[string]string{
			"hs_timestamp":      strconv.FormatInt(time.Now().UnixMilli(), 10),
			"hs_attachment_ids": uploaded.ID,
		},
		"associations": []map[string]interface{}{{
			"to": map[string]string{"id": dealID},
			"types": []map[string]interface{}{{
				"associationCategory": "HUBSPOT_DEFINED",
				"associationTypeId":   214,
			}},
		}},
	}
	if err := a.client.doJSON(ctx, http.MethodPost, a.apiBase+"/crm/v3/objects/notes", auth.AccessToken, payload, nil); err != nil {
		return fmt.Errorf("hubspot attach file failed: %w", err)
	}
	return nil
}

func (a *hubspotAdapter) Revoke(ctx context.Context, refreshToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, a.apiBase+"/oauth/v1/refresh-tokens/"+refreshToken, nil)
	if err != nil {
		return err
	}
	return a.client.do(req, nil)
}

// maxSignatureAge rejects replayed HubSpot webhooks.
const maxSignatureAge = 5 * time.Minute

// VerifyWebhookSignature implements HubSpot's v3 scheme: base64 HMAC-SHA256
// over method + full request URL + body + timestamp, keyed with the app
// client secret.
func (a *hubspotAdapter) VerifyWebhookSignature(header http.Header, body []byte, requestURL string) error {
	signature := header.Get("X-HubSpot-Signature-v3")
	timestamp := header.Get("X-HubSpot-Request-Timestamp")
	if signature == "" || timestamp == "" {
		return ErrSignatureInvalid
	}

	ms, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return ErrSignatureInvalid
	}
	age := time.Since(time.UnixMilli(ms))
	if age > maxSignatureAge || age < -maxSignatureAge {
		return ErrSignatureInvalid
	}

	mac := hmac.New(sha256.New, []byte(a.creds.ClientSecret))
	mac.Write([]byte(http.MethodPost))
	mac.Write([]byte(requestURL))
	mac.Write(body)
	mac.Write([]byte(timestamp))
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return ErrSignatureInvalid
	}
	return nil
}

// hubspotWebhookEvent is one entry of HubSpot's webhook batch payload.
type hubspotWebhookEvent struct {
	SubscriptionType string `json:"subscriptionType"`
	ObjectID         int64  `json:"objectId"`
	PortalID         int64  `json:"portalId"`
	PropertyName     string `json:"propertyName"`
	PropertyValue    string `json:"propertyValue"`
}

func (a *hubspotAdapter) ParseWebhook(body []byte) ([]WebhookEvent, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("hubspot webhook payload malformed: %w", err)
	}

	events := make([]WebhookEvent, 0, len(items))
	for _, item := range items {
		var e hubspotWebhookEvent
		if err := json.Unmarshal(item, &e); err != nil {
			return nil, fmt.Errorf("hubspot webhook payload malformed: %w", err)
		}
		ev := WebhookEvent{
			Type:      e.SubscriptionType,
			ObjectID:  strconv.FormatInt(e.ObjectID, 10),
			AccountID: strconv.FormatInt(e.PortalID, 10),
			Raw:       rawPayload(item),
		}
		switch {
		case e.SubscriptionType == "deal.propertyChange" && e.PropertyName == "dealstage":
			ev.Type = EventDealStageChanged
			ev.StageID = e.PropertyValue
		case e.SubscriptionType == "deal.deletion":
			ev.Type = EventDealDeleted
		case e.SubscriptionType == "contact.propertyChange":
			ev.Type = EventContactChanged
			ev.Contact = &Contact{ID: strconv.FormatInt(e.ObjectID, 10)}
			switch e.PropertyName {
			case "email":
				ev.Contact.Email = e.PropertyValue
			case "firstname":
				ev.Contact.FirstName = e.PropertyValue
			case "lastname":
				ev.Contact.LastName = e.PropertyValue
			case "phone":
				ev.Contact.Phone = e.PropertyValue
			case "company":
				ev.Contact.Company = e.PropertyValue
			}
		}
		events = append(events, ev)
	}
	return events, nil
}
