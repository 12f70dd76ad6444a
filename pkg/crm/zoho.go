package crm

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/dealpage/dealpage/config"
)

// zohoAdapter implements Adapter against the Zoho CRM v2 API. Zoho uses its
// own Authorization scheme ("Zoho-oauthtoken") and wraps every record list
// in a data envelope.
type zohoAdapter struct {
	creds        config.ProviderCredentials
	callbackURL  string
	accountsBase string
	client       *apiClient
}

// NewZohoAdapter creates the Zoho adapter.
func NewZohoAdapter(creds config.ProviderCredentials, callbackURL string) Adapter {
	return &zohoAdapter{
		creds:        creds,
		callbackURL:  callbackURL,
		accountsBase: "https://accounts.zoho.com",
		client:       newAPIClient(),
	}
}

func (a *zohoAdapter) Provider() Provider { return ProviderZoho }

func (a *zohoAdapter) redirectURI() string { return a.callbackURL + "/zoho" }

func (a *zohoAdapter) AuthorizationURL(state string) string {
	params := url.Values{}
	params.Add("scope", "ZohoCRM.modules.ALL,ZohoCRM.settings.READ,ZohoCRM.org.READ")
	params.Add("client_id", a.creds.ClientID)
	params.Add("response_type", "code")
	params.Add("access_type", "offline")
	params.Add("redirect_uri", a.redirectURI())
	params.Add("state", state)
	return a.accountsBase + "/oauth/v2/auth?" + params.Encode()
}

type zohoTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	APIDomain    string `json:"api_domain"`
	Error        string `json:"error"`
}

// request builds a Zoho API request with its non-Bearer auth header.
func (a *zohoAdapter) request(ctx context.Context, method, rawurl, token string, in interface{}) (*http.Request, error) {
	var body *bytes.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawurl, body)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Zoho-oauthtoken "+token)
	return req, nil
}

func (a *zohoAdapter) ExchangeCode(ctx context.Context, code string) (*TokenSet, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("client_id", a.creds.ClientID)
	data.Set("client_secret", a.creds.ClientSecret)
	data.Set("redirect_uri", a.redirectURI())
	data.Set("code", code)

	var tok zohoTokenResponse
	if err := a.client.postForm(ctx, a.accountsBase+"/oauth/v2/token", data, &tok); err != nil {
		return nil, fmt.Errorf("zoho code exchange failed: %w", err)
	}
	// Zoho reports grant errors inside a 200 response.
	if tok.Error != "" {
		return nil, fmt.Errorf("zoho code exchange rejected: %s", tok.Error)
	}

	// The org id routes inbound notifications back to this integration.
	req, err := a.request(ctx, http.MethodGet, tok.APIDomain+"/crm/v2/org", tok.AccessToken, nil)
	if err != nil {
		return nil, err
	}
	var orgResp struct {
		Org []struct {
			ZGID string `json:"zgid"`
		} `json:"org"`
	}
	if err := a.client.do(req, &orgResp); err != nil {
		return nil, fmt.Errorf("zoho org lookup failed: %w", err)
	}
	if len(orgResp.Org) == 0 {
		return nil, fmt.Errorf("zoho org lookup returned no organization")
	}

	return &TokenSet{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second),
		Metadata: AccountMetadata{
			AccountID: orgResp.Org[0].ZGID,
			APIDomain: tok.APIDomain,
		},
	}, nil
}

func (a *zohoAdapter) Refresh(ctx context.Context, refreshToken string, meta AccountMetadata) (*TokenSet, error) {
	data := url.Values{}
	data.Set("grant_type", "refresh_token")
	data.Set("client_id", a.creds.ClientID)
	data.Set("client_secret", a.creds.ClientSecret)
	data.Set("refresh_token", refreshToken)

	var tok zohoTokenResponse
	if err := a.client.postForm(ctx, a.accountsBase+"/oauth/v2/token", data, &tok); err != nil {
		return nil, refreshError(err)
	}
	if tok.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrRefreshFailed, tok.Error)
	}

	if tok.APIDomain != "" {
		meta.APIDomain = tok.APIDomain
	}
	// Zoho refresh tokens are long-lived and not rotated.
	return &TokenSet{
		AccessToken:  tok.AccessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second),
		Metadata:     meta,
	}, nil
}

func (a *zohoAdapter) ListStages(ctx context.Context, auth Auth) ([]Stage, error) {
	req, err := a.request(ctx, http.MethodGet, auth.APIDomain+"/crm/v2/settings/fields?module=Deals", auth.AccessToken, nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Fields []struct {
			APIName        string `json:"api_name"`
			PickListValues []struct {
				DisplayValue string `json:"display_value"`
				ActualValue  string `json:"actual_value"`
			} `json:"pick_list_values"`
		} `json:"fields"`
	}
	if err := a.client.do(req, &resp); err != nil {
		return nil, err
	}
	for _, f := range resp.Fields {
		if f.APIName != "Stage" {
			continue
		}
		stages := make([]Stage, 0, len(f.PickListValues))
		for _, v := range f.PickListValues {
			stages = append(stages, Stage{ID: v.ActualValue, Name: v.DisplayValue})
		}
		return stages, nil
	}
	return nil, nil
}

type zohoDeal struct {
	ID       string  `json:"id,omitempty"`
	DealName string  `json:"Deal_Name,omitempty"`
	Stage    string  `json:"Stage,omitempty"`
	Amount   float64 `json:"Amount,omitempty"`
}

func zohoDealToNeutral(d zohoDeal) Deal {
	return Deal{ID: d.ID, Name: d.DealName, Stage: d.Stage, Amount: d.Amount}
}

// writeRecord posts or puts a single record through Zoho's data envelope and
// returns the record id.
func (a *zohoAdapter) writeRecord(ctx context.Context, auth Auth, method, rawurl string, record interface{}) (string, error) {
	body := map[string]interface{}{"data": []interface{}{record}}
	req, err := a.request(ctx, method, rawurl, auth.AccessToken, body)
	if err != nil {
		return "", err
	}
	var resp struct {
		Data []struct {
			Details struct {
				ID string `json:"id"`
			} `json:"details"`
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := a.client.do(req, &resp); err != nil {
		return "", err
	}
	if len(resp.Data) == 0 || resp.Data[0].Status != "success" {
		return "", fmt.Errorf("zoho write rejected")
	}
	return resp.Data[0].Details.ID, nil
}

func (a *zohoAdapter) CreateDeal(ctx context.Context, auth Auth, d Deal) (*Deal, error) {
	record := zohoDeal{DealName: d.Name, Stage: d.Stage, Amount: d.Amount}
	id, err := a.writeRecord(ctx, auth, http.MethodPost, auth.APIDomain+"/crm/v2/Deals", record)
	if err != nil {
		return nil, fmt.Errorf("zoho create deal failed: %w", err)
	}
	created := d
	created.ID = id
	return &created, nil
}

func (a *zohoAdapter) UpdateDeal(ctx context.Context, auth Auth, d Deal) (*Deal, error) {
	record := zohoDeal{DealName: d.Name, Stage: d.Stage, Amount: d.Amount}
	if _, err := a.writeRecord(ctx, auth, http.MethodPut, auth.APIDomain+"/crm/v2/Deals/"+d.ID, record); err != nil {
		return nil, fmt.Errorf("zoho update deal failed: %w", err)
	}
	updated := d
	return &updated, nil
}

func (a *zohoAdapter) GetDeal(ctx context.Context, auth Auth, id string) (*Deal, error) {
	req, err := a.request(ctx, http.MethodGet, auth.APIDomain+"/crm/v2/Deals/"+id, auth.AccessToken, nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Data []zohoDeal `json:"data"`
	}
	if err := a.client.do(req, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, ErrNotFound
	}
	deal := zohoDealToNeutral(resp.Data[0])
	return &deal, nil
}

func (a *zohoAdapter) ListDeals(ctx context.Context, auth Auth) ([]Deal, error) {
	req, err := a.request(ctx, http.MethodGet, auth.APIDomain+"/crm/v2/Deals?per_page=100", auth.AccessToken, nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Data []zohoDeal `json:"data"`
	}
	if err := a.client.do(req, &resp); err != nil {
		return nil, err
	}
	deals := make([]Deal, 0, len(resp.Data))
	for _, d := range resp.Data {
		deals = append(deals, zohoDealToNeutral(d))
	}
	return deals, nil
}

type zohoContact struct {
	ID          string `json:"id,omitempty"`
	FirstName   string `json:"First_Name,omitempty"`
	LastName    string `json:"Last_Name,omitempty"`
	Email       string `json:"Email,omitempty"`
	Phone       string `json:"Phone,omitempty"`
	AccountName string `json:"Account_Name,omitempty"`
}

func zohoContactToNeutral(c zohoContact) Contact {
	return Contact{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.AccountName,
	}
}

func zohoContactRecord(ct Contact) zohoContact {
	record := zohoContact{
		FirstName:   ct.FirstName,
		LastName:    ct.LastName,
		Email:       ct.Email,
		Phone:       ct.Phone,
		AccountName: ct.Company,
	}
	if record.LastName == "" {
		record.LastName = "Unknown" // Last_Name is required on Contacts
	}
	return record
}

func (a *zohoAdapter) ListContacts(ctx context.Context, auth Auth) ([]Contact, error) {
	req, err := a.request(ctx, http.MethodGet, auth.APIDomain+"/crm/v2/Contacts?per_page=100", auth.AccessToken, nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Data []zohoContact `json:"data"`
	}
	if err := a.client.do(req, &resp); err != nil {
		return nil, err
	}
	contacts := make([]Contact, 0, len(resp.Data))
	for _, c := range resp.Data {
		contacts = append(contacts, zohoContactToNeutral(c))
	}
	return contacts, nil
}

func (a *zohoAdapter) GetContact(ctx context.Context, auth Auth, id string) (*Contact, error) {
	req, err := a.request(ctx, http.MethodGet, auth.APIDomain+"/crm/v2/Contacts/"+id, auth.AccessToken, nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Data []zohoContact `json:"data"`
	}
	if err := a.client.do(req, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, ErrNotFound
	}
	ct := zohoContactToNeutral(resp.Data[0])
	return &ct, nil
}

func (a *zohoAdapter) CreateContact(ctx context.Context, auth Auth, ct Contact) (*Contact, error) {
	id, err := a.writeRecord(ctx, auth, http.MethodPost, auth.APIDomain+"/crm/v2/Contacts", zohoContactRecord(ct))
	if err != nil {
		return nil, fmt.Errorf("zoho create contact failed: %w", err)
	}
	created := ct
	created.ID = id
	return &created, nil
}

func (a *zohoAdapter) UpdateContact(ctx context.Context, auth Auth, ct Contact) (*Contact, error) {
	if _, err := a.writeRecord(ctx, auth, http.MethodPut, auth.APIDomain+"/crm/v2/Contacts/"+ct.ID, zohoContactRecord(ct)); err != nil {
		return nil, fmt.Errorf("zoho update contact failed: %w", err)
	}
	updated := ct
	return &updated, nil
}

func (a *zohoAdapter) CreateNote(ctx context.Context, auth Auth, dealID, body string) error {
	record := map[string]string{
		"Note_Title":   "DealPage proposal update",
		"Note_Content": body,
	}
	if _, err := a.writeRecord(ctx, auth, http.MethodPost, auth.APIDomain+"/crm/v2/Deals/"+dealID+"/Notes", record); err != nil {
		return fmt.Errorf("zoho create note failed: %w", err)
	}
	return nil
}

func (a *zohoAdapter) UploadAttachment(ctx context.Context, auth Auth, dealID, filename string, data []byte) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := fw.Write(data); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, auth.APIDomain+"/crm/v2/Deals/"+dealID+"/Attachments", &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Zoho-oauthtoken "+auth.AccessToken)

	if err := a.client.do(req, nil); err != nil {
		return fmt.Errorf("zoho attachment upload failed: %w", err)
	}
	return nil
}

func (a *zohoAdapter) Revoke(ctx context.Context, refreshToken string) error {
	data := url.Values{}
	data.Set("token", refreshToken)
	return a.client.postForm(ctx, a.accountsBase+"/oauth/v2/token/revoke", data, nil)
}

// VerifyWebhookSignature checks the hex HMAC-SHA256 of the raw body carried
// in x-zoho-signature.
func (a *zohoAdapter) VerifyWebhookSignature(header http.Header, body []byte, requestURL string) error {
	signature := header.Get("x-zoho-signature")
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

// zohoWebhookPayload is the notification shape configured in Zoho's
// workflow rules for the DealPage connected app.
type zohoWebhookPayload struct {
	OrgID     string `json:"org_id"`
	Module    string `json:"module"` // "Deals" or "Contacts"
	Operation string `json:"operation"`
	Record    *struct {
		ID          string `json:"id"`
		Stage       string `json:"Stage"`
		FirstName   string `json:"First_Name"`
		LastName    string `json:"Last_Name"`
		Email       string `json:"Email"`
		Phone       string `json:"Phone"`
		AccountName string `json:"Account_Name"`
	} `json:"record"`
}

func (a *zohoAdapter) ParseWebhook(body []byte) ([]WebhookEvent, error) {
	var payload zohoWebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("zoho webhook payload malformed: %w", err)
	}
	if payload.Record == nil {
		return nil, fmt.Errorf("zoho webhook payload malformed: missing record")
	}

	ev := WebhookEvent{
		Type:      payload.Module + "." + payload.Operation,
		ObjectID:  payload.Record.ID,
		AccountID: payload.OrgID,
		Raw:       rawPayload(body),
	}
	switch {
	case payload.Module == "Deals" && payload.Operation == "update":
		ev.Type = EventDealStageChanged
		ev.StageID = payload.Record.Stage
		ev.StageName = payload.Record.Stage
	case payload.Module == "Deals" && payload.Operation == "delete":
		ev.Type = EventDealDeleted
	case payload.Module == "Contacts" && payload.Operation == "update":
		ev.Type = EventContactChanged
		ev.Contact = &Contact{
			ID:        payload.Record.ID,
			FirstName: payload.Record.FirstName,
			LastName:  payload.Record.LastName,
			Email:     payload.Record.Email,
			Phone:     payload.Record.Phone,
			Company:   payload.Record.AccountName,
		}
	}
	return []WebhookEvent{ev}, nil
}
