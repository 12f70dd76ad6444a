package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealpage/dealpage/ent"
	"github.com/dealpage/dealpage/ent/crmintegration"
	"github.com/dealpage/dealpage/ent/proposal"
	"github.com/dealpage/dealpage/pkg/crm"
	"github.com/dealpage/dealpage/pkg/crmsync"
	"github.com/dealpage/dealpage/pkg/logger"
)

const testFrontendURL = "http://localhost:3000"

// webhookStubAdapter drives the unauthenticated surface without real
// provider traffic. Unimplemented adapter methods panic via the embedded
// nil interface.
type webhookStubAdapter struct {
	crm.Adapter
	provider   crm.Provider
	exchangeFn func(code string) (*crm.TokenSet, error)
	verifyErr  error
	events     []crm.WebhookEvent
	parseErr   error

	// management surface, used by the CRM handler tests
	authURL      string
	stagesFn     func() ([]crm.Stage, error)
	contactsFn   func() ([]crm.Contact, error)
	dealsFn      func() ([]crm.Deal, error)
	createDealFn func(d crm.Deal) (*crm.Deal, error)
	getDealFn    func(id string) (*crm.Deal, error)
	revokeCalled bool
}

func (a *webhookStubAdapter) Provider() crm.Provider { return a.provider }

func (a *webhookStubAdapter) ExchangeCode(ctx context.Context, code string) (*crm.TokenSet, error) {
	return a.exchangeFn(code)
}

func (a *webhookStubAdapter) VerifyWebhookSignature(header http.Header, body []byte, requestURL string) error {
	return a.verifyErr
}

func (a *webhookStubAdapter) ParseWebhook(body []byte) ([]crm.WebhookEvent, error) {
	if a.parseErr != nil {
		return nil, a.parseErr
	}
	return a.events, nil
}

type webhookFixture struct {
	db      *ent.Client
	user    *ent.User
	hubspot *webhookStubAdapter
	links   *crm.LinkRegistry
	stages  *crm.StageMappingStore
	handler *WebhookHandler
}

func newWebhookFixture(t *testing.T, client *ent.Client) *webhookFixture {
	t.Helper()
	user := createHandlerTestUser(t, client, t.Name()+"@example.com", "password123")

	hubspot := &webhookStubAdapter{provider: crm.ProviderHubSpot}
	registry := crm.NewRegistryWithAdapters(
		hubspot,
		&webhookStubAdapter{provider: crm.ProviderSalesforce},
		&webhookStubAdapter{provider: crm.ProviderPipedrive},
		&webhookStubAdapter{provider: crm.ProviderZoho},
	)

	testLog := logger.New("error")
	creds := crm.NewCredentialStore(client, registry, nil, nil, testLog)
	links := crm.NewLinkRegistry(client)
	stages := crm.NewStageMappingStore(client)
	service := crm.NewService(client, registry, creds, links, stages, nil, testLog)
	processor := crmsync.NewProcessor(client, registry, links, stages, nil, nil, testLog)

	return &webhookFixture{
		db:      client,
		user:    user,
		hubspot: hubspot,
		links:   links,
		stages:  stages,
		handler: NewWebhookHandler(service, processor, testFrontendURL, testLog),
	}
}

func (f *webhookFixture) callbackContext(provider, query string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/crm/callback/"+provider+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("provider")
	c.SetParamValues(provider)
	return c, rec
}

func (f *webhookFixture) webhookContext(provider, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/crm/"+provider, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("provider")
	c.SetParamValues(provider)
	return c, rec
}

func TestOAuthCallback(t *testing.T) {
	t.Run("Success - Exchanges code and redirects to settings", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newWebhookFixture(t, client)

		f.hubspot.exchangeFn = func(code string) (*crm.TokenSet, error) {
			assert.Equal(t, "auth-code-1", code)
			return &crm.TokenSet{
				AccessToken:  "access-token",
				RefreshToken: "refresh-token",
				ExpiresAt:    time.Now().Add(1 * time.Hour),
				Metadata:     crm.AccountMetadata{AccountID: "12345"},
			}, nil
		}

		c, rec := f.callbackContext("hubspot",
			"?code=auth-code-1&state="+strconv.Itoa(f.user.ID))
		require.NoError(t, f.handler.OAuthCallback(c))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, testFrontendURL+"/settings/integrations?connected=hubspot",
			rec.Header().Get(echo.HeaderLocation))

		integ, err := client.CRMIntegration.Query().
			Where(crmintegration.UserID(f.user.ID)).
			Only(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "12345", integ.AccountID)
		assert.True(t, integ.Active)
	})

	t.Run("Error - Unknown provider redirects with error", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newWebhookFixture(t, client)

		c, rec := f.callbackContext("dynamics", "?code=x&state=1")
		require.NoError(t, f.handler.OAuthCallback(c))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderLocation), "error=unknown_provider")
	})

	t.Run("Error - Missing code redirects with error", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newWebhookFixture(t, client)

		c, rec := f.callbackContext("hubspot", "?state=1")
		require.NoError(t, f.handler.OAuthCallback(c))

		assert.Contains(t, rec.Header().Get(echo.HeaderLocation), "error=missing_code")
	})

	t.Run("Error - Non-numeric state redirects with error", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newWebhookFixture(t, client)

		c, rec := f.callbackContext("hubspot", "?code=x&state=not-a-user")
		require.NoError(t, f.handler.OAuthCallback(c))

		assert.Contains(t, rec.Header().Get(echo.HeaderLocation), "error=invalid_state")
	})

	t.Run("Error - Failed exchange redirects and stores nothing", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newWebhookFixture(t, client)

		f.hubspot.exchangeFn = func(code string) (*crm.TokenSet, error) {
			return nil, crm.ErrUnauthenticated
		}

		c, rec := f.callbackContext("hubspot",
			"?code=bad-code&state="+strconv.Itoa(f.user.ID))
		require.NoError(t, f.handler.OAuthCallback(c))

		assert.Contains(t, rec.Header().Get(echo.HeaderLocation), "error=exchange_failed")

		count, err := client.CRMIntegration.Query().Count(context.Background())
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestWebhook(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Delivery updates linked proposal", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newWebhookFixture(t, client)

		integ, err := client.CRMIntegration.Create().
			SetUserID(f.user.ID).
			SetProvider(crmintegration.ProviderHubspot).
			SetAccessToken("access-token").
			SetRefreshToken("refresh-token").
			SetTokenExpiresAt(time.Now().Add(1 * time.Hour)).
			SetAccountID("777").
			Save(ctx)
		require.NoError(t, err)

		prop, err := client.Proposal.Create().
			SetUserID(f.user.ID).
			SetTitle("Webhook Deal").
			SetAmount(5000).
			SetStatus(proposal.StatusSent).
			Save(ctx)
		require.NoError(t, err)

		_, err = f.links.Link(ctx, integ.ID, prop.ID, "deal-9")
		require.NoError(t, err)
		require.NoError(t, f.stages.Replace(ctx, integ.ID, []crm.StageMappingInput{
			{ProposalStatus: "approved", ExternalStageID: "contractsent", ExternalStageName: "Contract Sent"},
		}))

		f.hubspot.events = []crm.WebhookEvent{{
			Type:      crm.EventDealStageChanged,
			ObjectID:  "deal-9",
			AccountID: "777",
			StageID:   "contractsent",
			Raw:       map[string]interface{}{"subscriptionType": "deal.propertyChange"},
		}}

		c, rec := f.webhookContext("hubspot", `[{"subscriptionType":"deal.propertyChange"}]`)
		require.NoError(t, f.handler.Webhook(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		updated, err := client.Proposal.Get(ctx, prop.ID)
		require.NoError(t, err)
		assert.Equal(t, proposal.StatusApproved, updated.Status)

		logs, err := client.WebhookLog.Query().All(ctx)
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.True(t, logs[0].Processed)
		assert.Equal(t, "deal.propertyChange", logs[0].Payload["subscriptionType"])
	})

	t.Run("Error - Bad signature still answers 200 with no audit row", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newWebhookFixture(t, client)
		f.hubspot.verifyErr = crm.ErrSignatureInvalid

		c, rec := f.webhookContext("hubspot", `[]`)
		require.NoError(t, f.handler.Webhook(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		count, err := client.WebhookLog.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("Error - Unknown provider answers 200", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newWebhookFixture(t, client)

		c, rec := f.webhookContext("dynamics", `{}`)
		require.NoError(t, f.handler.Webhook(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
