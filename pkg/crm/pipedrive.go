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
	"strconv"
	"strings"
	"time"

	"github.com/dealpage/dealpage/config"
)

// pipedriveAdapter implements Adapter against the Pipedrive v1 API. Data
// calls go through the tenant api_domain captured at connect time.
type pipedriveAdapter struct {
	creds       config.ProviderCredentials
	callbackURL string
	oauthBase   string
	client      *apiClient
}

// NewPipedriveAdapter creates the Pipedrive adapter.
func NewPipedriveAdapter(creds config.ProviderCredentials, callbackURL string) Adapter {
	return &pipedriveAdapter{
		creds:       creds,
		callbackURL: callbackURL,
		oauthBase:   "https://oauth.pipedrive.com",
		client:      newAPIClient(),
	}
}

func (a *pipedriveAdapter) Provider() Provider { return ProviderPipedrive }

func (a *pipedriveAdapter) redirectURI() string { return a.callbackURL + "/pipedrive" }

func (a *pipedriveAdapter) AuthorizationURL(state string) string {
	params := url.Values{}
	params.Add("client_id", a.creds.ClientID)
	params.Add("redirect_uri", a.redirectURI())
	params.Add("state", state)
	return a.oauthBase + "/oauth/authorize?" + params.Encode()
}

type pipedriveTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	APIDomain    string `json:"api_domain"`
}

// pipedriveAccountID normalizes the api_domain into the routing identifier
// that webhook meta.host reports.
func pipedriveAccountID(apiDomain string) string {
	return strings.TrimPrefix(strings.TrimPrefix(apiDomain, "https://"), "http://")
}

// tokenRequest posts to the OAuth token endpoint with client Basic auth,
// which is Pipedrive's scheme for both exchange and refresh.
func (a *pipedriveAdapter) tokenRequest(ctx context.Context, form url.Values) (*pipedriveTokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.oauthBase+"/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(a.creds.ClientID, a.creds.ClientSecret)

	var tok pipedriveTokenResponse
	if err := a.client.do(req, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}

func (a *pipedriveAdapter) ExchangeCode(ctx context.Context, code string) (*TokenSet, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", a.redirectURI())

	tok, err := a.tokenRequest(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("pipedrive code exchange failed: %w", err)
	}

	return &TokenSet{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second),
		Metadata: AccountMetadata{
			AccountID: pipedriveAccountID(tok.APIDomain),
			APIDomain: tok.APIDomain,
		},
	}, nil
}

func (a *pipedriveAdapter) Refresh(ctx context.Context, refreshToken string, meta AccountMetadata) (*TokenSet, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)

	tok, err := a.tokenRequest(ctx, form)
	if err != nil {
		return nil, refreshError(err)
	}

	if tok.APIDomain != "" {
		meta.APIDomain = tok.APIDomain
		meta.AccountID = pipedriveAccountID(tok.APIDomain)
	}
	// Pipedrive rotates refresh tokens; persist the new one.
	return &TokenSet{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second),
		Metadata:     meta,
	}, nil
}

func (a *pipedriveAdapter) apiURL(auth Auth, path string) string {
	return auth.APIDomain + "/api/v1" + path
}

func (a *pipedriveAdapter) ListStages(ctx context.Context, auth Auth) ([]Stage, error) {
	var resp struct {
		Data []struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := a.client.doJSON(ctx, http.MethodGet, a.apiURL(auth, "/stages"), auth.AccessToken, nil, &resp); err != nil {
		return nil, err
	}
	stages := make([]Stage, 0, len(resp.Data))
	for _, s := range resp.Data {
		stages = append(stages, Stage{ID: strconv.Itoa(s.ID), Name: s.Name})
	}
	return stages, nil
}

type pipedriveDeal struct {
	ID       int             `json:"id"`
	Title    string          `json:"title"`
	Value    json.Number     `json:"value"`
	StageID  int             `json:"stage_id"`
	Status   string          `json:"status"`
	PersonID json.RawMessage `json:"person_id"` // int on write, object on read
}

func pipedriveDealToNeutral(d pipedriveDeal) Deal {
	amount, _ := d.Value.Float64()
	deal := Deal{
		ID:     strconv.Itoa(d.ID),
		Name:   d.Title,
		Stage:  strconv.Itoa(d.StageID),
		Amount: amount,
	}
	if d.Status != "" {
		deal.CustomFields = map[string]string{"status": d.Status}
	}
	return deal
}

func pipedriveDealBody(d Deal) map[string]interface{} {
	body := map[string]interface{}{
		"title": d.Name,
		"value": d.Amount,
	}
	// "won" and "lost" are deal statuses in Pipedrive, not stages. Mapped
	// stage values of won/lost translate to a status change instead.
	switch d.Stage {
	case "won", "lost":
		body["status"] = d.Stage
	case "":
	default:
		if stageID, err := strconv.Atoi(d.Stage); err == nil {
			body["stage_id"] = stageID
		}
	}
	if d.ContactID != "" {
		if personID, err := strconv.Atoi(d.ContactID); err == nil {
			body["person_id"] = personID
		}
	}
	return body
}

func (a *pipedriveAdapter) CreateDeal(ctx context.Context, auth Auth, d Deal) (*Deal, error) {
	var resp struct {
		Data pipedriveDeal `json:"data"`
	}
	if err := a.client.doJSON(ctx, http.MethodPost, a.apiURL(auth, "/deals"), auth.AccessToken, pipedriveDealBody(d), &resp); err != nil {
		return nil, fmt.Errorf("pipedrive create deal failed: %w", err)
	}
	created := pipedriveDealToNeutral(resp.Data)
	return &created, nil
}

func (a *pipedriveAdapter) UpdateDeal(ctx context.Context, auth Auth, d Deal) (*Deal, error) {
	var resp struct {
		Data pipedriveDeal `json:"data"`
	}
	if err := a.client.doJSON(ctx, http.MethodPut, a.apiURL(auth, "/deals/"+d.ID), auth.AccessToken, pipedriveDealBody(d), &resp); err != nil {
		return nil, fmt.Errorf("pipedrive update deal failed: %w", err)
	}
	updated := pipedriveDealToNeutral(resp.Data)
	return &updated, nil
}

func (a *pipedriveAdapter) GetDeal(ctx context.Context, auth Auth, id string) (*Deal, error) {
	var resp struct {
		Data pipedriveDeal `json:"data"`
	}
	if err := a.client.doJSON(ctx, http.MethodGet, a.apiURL(auth, "/deals/"+id), auth.AccessToken, nil, &resp); err != nil {
		return nil, err
	}
	deal := pipedriveDealToNeutral(resp.Data)
	return &deal, nil
}

func (a *pipedriveAdapter) ListDeals(ctx context.Context, auth Auth) ([]Deal, error) {
	var resp struct {
		Data []pipedriveDeal `json:"data"`
	}
	if err := a.client.doJSON(ctx, http.MethodGet, a.apiURL(auth, "/deals?limit=100"), auth.AccessToken, nil, &resp); err != nil {
		return nil, err
	}
	deals := make([]Deal, 0, len(resp.Data))
	for _, d := range resp.Data {
		deals = append(deals, pipedriveDealToNeutral(d))
	}
	return deals, nil
}

type pipedrivePerson struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email []struct {
		Value   string `json:"value"`
		Primary bool   `json:"primary"`
	} `json:"email"`
	Phone []struct {
		Value   string `json:"value"`
		Primary bool   `json:"primary"`
	} `json:"phone"`
	OrgName string `json:"org_name"`
}

func pipedriveContact(p pipedrivePerson) Contact {
	ct := Contact{
		ID:      strconv.Itoa(p.ID),
		Company: p.OrgName,
	}
	first, last, found := strings.Cut(p.Name, " ")
	ct.FirstName = first
	if found {
		ct.LastName = last
	}
	for _, e := range p.Email {
		if e.Primary || ct.Email == "" {
			ct.Email = e.Value
		}
	}
	for _, ph := range p.Phone {
		if ph.Primary || ct.Phone == "" {
			ct.Phone = ph.Value
		}
	}
	return ct
}

func pipedrivePersonBody(ct Contact) map[string]interface{} {
	body := map[string]interface{}{
		"name": strings.TrimSpace(ct.FirstName + " " + ct.LastName),
	}
	if ct.Email != "" {
		body["email"] = []map[string]interface{}{{"value": ct.Email, "primary": true}}
	}
	if ct.Phone != "" {
		body["phone"] = []map[string]interface{}{{"value": ct.Phone, "primary": true}}
	}
	return body
}

func (a *pipedriveAdapter) ListContacts(ctx context.Context, auth Auth) ([]Contact, error) {
	var resp struct {
		Data []pipedrivePerson `json:"data"`
	}
	if err := a.client.doJSON(ctx, http.MethodGet, a.apiURL(auth, "/persons?limit=100"), auth.AccessToken, nil, &resp); err != nil {
		return nil, err
	}
	contacts := make([]Contact, 0, len(resp.Data))
	for _, p := range resp.Data {
		contacts = append(contacts, pipedriveContact(p))
	}
	return contacts, nil
}

func (a *pipedriveAdapter) GetContact(ctx context.Context, auth Auth, id string) (*Contact, error) {
	var resp struct {
		Data pipedrivePerson `json:"data"`
	}
	if err := a.client.doJSON(ctx, http.MethodGet, a.apiURL(auth, "/persons/"+id), auth.AccessToken, nil, &resp); err != nil {
		return nil, err
	}
	ct := pipedriveContact(resp.Data)
	return &ct, nil
}

func (a *pipedriveAdapter) CreateContact(ctx context.Context, auth Auth, ct Contact) (*Contact, error) {
	var resp struct {
		Data pipedrivePerson `json:"data"`
	}
	if err := a.client.doJSON(ctx, http.MethodPost, a.apiURL(auth, "/persons"), auth.AccessToken, pipedrivePersonBody(ct), &resp); err != nil {
		return nil, fmt.Errorf("pipedrive create person failed: %w", err)
	}
	created := pipedriveContact(resp.Data)
	return &created, nil
}

func (a *pipedriveAdapter) UpdateContact(ctx context.Context, auth Auth, ct Contact) (*Contact, error) {
	var resp struct {
		Data pipedrivePerson `json:"data"`
	}
	if err := a.client.doJSON(ctx, http.MethodPut, a.apiURL(auth, "/persons/"+ct.ID), auth.AccessToken, pipedrivePersonBody(ct), &resp); err != nil {
		return nil, fmt.Errorf("pipedrive update person failed: %w", err)
	}
	updated := pipedriveContact(resp.Data)
	return &updated, nil
}

func (a *pipedriveAdapter) CreateNote(ctx context.Context, auth Auth, dealID, body string) error {
	dealIDNum, err := strconv.Atoi(dealID)
	if err != nil {
		return fmt.Errorf("invalid pipedrive deal id %q: %w", dealID, err)
	}
	note := map[string]interface{}{
		"content": body,
		"deal_id": dealIDNum,
	}
	if err := a.client.doJSON(ctx, http.MethodPost, a.apiURL(auth, "/notes"), auth.AccessToken, note, nil); err != nil {
		return fmt.Errorf("pipedrive create note failed: %w", err)
	}
	return nil
}

func (a *pipedriveAdapter) UploadAttachment(ctx context.Context, auth Auth, dealID, filename string, data []byte) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := fw.Write(data); err != nil {
		return err
	}
	_ = mw.WriteField("deal_id", dealID)
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.apiURL(auth, "/files"), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+auth.AccessToken)

	if err := a.client.do(req, nil); err != nil {
		return fmt.Errorf("pipedrive file upload failed: %w", err)
	}
	return nil
}

func (a *pipedriveAdapter) Revoke(ctx context.Context, refreshToken string) error {
	form := url.Values{}
	form.Set("token", refreshToken)
	form.Set("token_type_hint", "refresh_token")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.oauthBase+"/oauth/revoke", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(a.creds.ClientID, a.creds.ClientSecret)
	return a.client.do(req, nil)
}

// VerifyWebhookSignature checks the hex HMAC-SHA256 of the raw body carried
// in x-pipedrive-signature.
func (a *pipedriveAdapter) VerifyWebhookSignature(header http.Header, body []byte, requestURL string) error {
	signature := header.Get("x-pipedrive-signature")
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

// pipedriveWebhookPayload is the standard Pipedrive webhook envelope.
type pipedriveWebhookPayload struct {
	Event   string `json:"event"` // e.g. "updated.deal"
	Current struct {
		ID      int    `json:"id"`
		StageID int    `json:"stage_id"`
		Status  string `json:"status"`
	} `json:"current"`
	Meta struct {
		Host   string `json:"host"`
		Object string `json:"object"`
		Action string `json:"action"`
		ID     int    `json:"id"`
	} `json:"meta"`
}

func (a *pipedriveAdapter) ParseWebhook(body []byte) ([]WebhookEvent, error) {
	var payload pipedriveWebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("pipedrive webhook payload malformed: %w", err)
	}
	if payload.Meta.Object == "" {
		return nil, fmt.Errorf("pipedrive webhook payload malformed: missing meta")
	}

	objectID := payload.Meta.ID
	if objectID == 0 {
		objectID = payload.Current.ID
	}

	ev := WebhookEvent{
		Type:      payload.Event,
		ObjectID:  strconv.Itoa(objectID),
		AccountID: payload.Meta.Host,
		Raw:       rawPayload(body),
	}
	switch {
	case payload.Meta.Object == "deal" && payload.Meta.Action == "updated":
		ev.Type = EventDealStageChanged
		// Won/lost land as a status flip rather than a stage move.
		if payload.Current.Status == "won" || payload.Current.Status == "lost" {
			ev.StageID = payload.Current.Status
		} else {
			ev.StageID = strconv.Itoa(payload.Current.StageID)
		}
	case payload.Meta.Object == "deal" && payload.Meta.Action == "deleted":
		ev.Type = EventDealDeleted
	case payload.Meta.Object == "person" && payload.Meta.Action == "updated":
		ev.Type = EventContactChanged
		ev.Contact = &Contact{ID: strconv.Itoa(objectID)}
	}
	return []WebhookEvent{ev}, nil
}
