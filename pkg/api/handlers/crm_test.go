package handlers

import (
	"context"
	"encoding/json"
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
	"github.com/dealpage/dealpage/ent/crmcontact"
	"github.com/dealpage/dealpage/ent/crmintegration"
	"github.com/dealpage/dealpage/ent/deallink"
	"github.com/dealpage/dealpage/ent/proposal"
	"github.com/dealpage/dealpage/pkg/crm"
	"github.com/dealpage/dealpage/pkg/crmsync"
	"github.com/dealpage/dealpage/pkg/logger"
)

func (a *webhookStubAdapter) AuthorizationURL(state string) string {
	return a.authURL + "?state=" + state
}

func (a *webhookStubAdapter) ListStages(ctx context.Context, auth crm.Auth) ([]crm.Stage, error) {
	return a.stagesFn()
}

func (a *webhookStubAdapter) ListContacts(ctx context.Context, auth crm.Auth) ([]crm.Contact, error) {
	return a.contactsFn()
}

func (a *webhookStubAdapter) ListDeals(ctx context.Context, auth crm.Auth) ([]crm.Deal, error) {
	return a.dealsFn()
}

func (a *webhookStubAdapter) CreateDeal(ctx context.Context, auth crm.Auth, d crm.Deal) (*crm.Deal, error) {
	return a.createDealFn(d)
}

func (a *webhookStubAdapter) GetDeal(ctx context.Context, auth crm.Auth, id string) (*crm.Deal, error) {
	return a.getDealFn(id)
}

func (a *webhookStubAdapter) Revoke(ctx context.Context, refreshToken string) error {
	a.revokeCalled = true
	return nil
}

type crmFixture struct {
	db      *ent.Client
	user    *ent.User
	hubspot *webhookStubAdapter
	handler *CRMHandler
}

func newCRMFixture(t *testing.T, client *ent.Client) *crmFixture {
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
	syncer := crmsync.NewSyncer(client, registry, creds, links, stages, nil, nil, testFrontendURL, testLog)

	return &crmFixture{
		db:      client,
		user:    user,
		hubspot: hubspot,
		handler: NewCRMHandler(service, syncer),
	}
}

// authedContext builds an echo context carrying the authenticated user and
// optional path params, mirroring what the JWT middleware sets in production.
func (f *crmFixture) authedContext(method, path, body string, params map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", f.user.ID)

	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for k, v := range params {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}

func (f *crmFixture) integration(t *testing.T, provider crmintegration.Provider) *ent.CRMIntegration {
	t.Helper()
	integ, err := f.db.CRMIntegration.Create().
		SetUserID(f.user.ID).
		SetProvider(provider).
		SetAccessToken("access-token").
		SetRefreshToken("refresh-token").
		SetTokenExpiresAt(time.Now().Add(1 * time.Hour)).
		SetAccountID("acct-" + string(provider)).
		Save(context.Background())
	require.NoError(t, err)
	return integ
}

func TestListIntegrations(t *testing.T) {
	t.Run("Success - Returns integrations for all connected providers", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newCRMFixture(t, client)
		f.integration(t, crmintegration.ProviderHubspot)
		f.integration(t, crmintegration.ProviderPipedrive)

		c, rec := f.authedContext(http.MethodGet, "/crm/integrations", "", nil)
		require.NoError(t, f.handler.ListIntegrations(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var infos []crm.IntegrationInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &infos))
		require.Len(t, infos, 2)
		assert.Equal(t, "hubspot", infos[0].Provider)
		assert.Equal(t, "pipedrive", infos[1].Provider)
		assert.True(t, infos[0].Active)
	})

	t.Run("Error - Missing user context is unauthorized", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newCRMFixture(t, client)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/crm/integrations", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, f.handler.ListIntegrations(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthorizeURL(t *testing.T) {
	t.Run("Success - Builds consent URL with user id as state", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newCRMFixture(t, client)
		f.hubspot.authURL = "https://app.hubspot.com/oauth/authorize"

		c, rec := f.authedContext(http.MethodGet, "/crm/hubspot/authorize", "",
			map[string]string{"provider": "hubspot"})
		require.NoError(t, f.handler.AuthorizeURL(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, f.hubspot.authURL+"?state="+strconv.Itoa(f.user.ID), resp["url"])
	})

	t.Run("Error - Unknown provider is a validation error", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newCRMFixture(t, client)

		c, rec := f.authedContext(http.MethodGet, "/crm/dynamics/authorize", "",
			map[string]string{"provider": "dynamics"})
		require.NoError(t, f.handler.AuthorizeURL(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDisconnect(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Revokes, drops links and deactivates", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newCRMFixture(t, client)
		integ := f.integration(t, crmintegration.ProviderHubspot)

		prop, err := client.Proposal.Create().
			SetUserID(f.user.ID).
			SetTitle("Linked Proposal").
			SetAmount(1000).
			Save(ctx)
		require.NoError(t, err)
		_, err = client.DealLink.Create().
			SetIntegrationID(integ.ID).
			SetProposalID(prop.ID).
			SetExternalDealID("deal-1").
			Save(ctx)
		require.NoError(t, err)

		c, rec := f.authedContext(http.MethodDelete, "/crm/hubspot", "",
			map[string]string{"provider": "hubspot"})
		require.NoError(t, f.handler.Disconnect(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, f.hubspot.revokeCalled)

		reloaded, err := client.CRMIntegration.Get(ctx, integ.ID)
		require.NoError(t, err)
		assert.False(t, reloaded.Active)
		assert.Empty(t, reloaded.RefreshToken)

		remaining, err := client.DealLink.Query().
			Where(deallink.IntegrationID(integ.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, remaining)
	})

	t.Run("Error - No integration asks the user to reconnect", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newCRMFixture(t, client)

		c, rec := f.authedContext(http.MethodDelete, "/crm/hubspot", "",
			map[string]string{"provider": "hubspot"})
		require.NoError(t, f.handler.Disconnect(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "reconnect_required")
	})
}

func TestConfigureSync(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Updates direction and trigger events", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newCRMFixture(t, client)
		integ := f.integration(t, crmintegration.ProviderHubspot)

		body := `{"sync_direction":"outbound","auto_sync_contacts":true,"status_sync_events":["signed"]}`
		c, rec := f.authedContext(http.MethodPut, "/crm/hubspot/sync-config", body,
			map[string]string{"provider": "hubspot"})
		require.NoError(t, f.handler.ConfigureSync(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		reloaded, err := client.CRMIntegration.Get(ctx, integ.ID)
		require.NoError(t, err)
		assert.Equal(t, crmintegration.SyncDirectionOutbound, reloaded.SyncDirection)
		assert.True(t, reloaded.AutoSyncContacts)
		assert.Equal(t, []string{"signed"}, reloaded.StatusSyncEvents)
	})

	t.Run("Error - Rejects an unknown sync direction", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newCRMFixture(t, client)
		f.integration(t, crmintegration.ProviderHubspot)

		c, rec := f.authedContext(http.MethodPut, "/crm/hubspot/sync-config",
			`{"sync_direction":"sideways"}`,
			map[string]string{"provider": "hubspot"})
		require.NoError(t, f.handler.ConfigureSync(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Error - Rejects an unknown trigger event", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newCRMFixture(t, client)
		f.integration(t, crmintegration.ProviderHubspot)

		c, rec := f.authedContext(http.MethodPut, "/crm/hubspot/sync-config",
			`{"status_sync_events":["deleted"]}`,
			map[string]string{"provider": "hubspot"})
		require.NoError(t, f.handler.ConfigureSync(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestStageMappingEndpoints(t *testing.T) {
	t.Run("Success - Replaces and lists mappings", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newCRMFixture(t, client)
		f.integration(t, crmintegration.ProviderHubspot)

		body := `{"mappings":[
			{"proposal_status":"sent","external_stage_id":"presentationscheduled","external_stage_name":"Presentation Scheduled"},
			{"proposal_status":"signed","external_stage_id":"closedwon","external_stage_name":"Closed Won"}
		]}`
		c, rec := f.authedContext(http.MethodPut, "/crm/hubspot/stage-mappings", body,
			map[string]string{"provider": "hubspot"})
		require.NoError(t, f.handler.ConfigureStageMappings(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		c, rec = f.authedContext(http.MethodGet, "/crm/hubspot/stage-mappings", "",
			map[string]string{"provider": "hubspot"})
		require.NoError(t, f.handler.ListStageMappings(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var mappings []crm.StageMappingInput
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &mappings))
		require.Len(t, mappings, 2)
		statuses := []string{mappings[0].ProposalStatus, mappings[1].ProposalStatus}
		assert.Contains(t, statuses, "sent")
		assert.Contains(t, statuses, "signed")
	})

	t.Run("Error - Mapping without a stage id fails validation", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newCRMFixture(t, client)
		f.integration(t, crmintegration.ProviderHubspot)

		c, rec := f.authedContext(http.MethodPut, "/crm/hubspot/stage-mappings",
			`{"mappings":[{"proposal_status":"sent"}]}`,
			map[string]string{"provider": "hubspot"})
		require.NoError(t, f.handler.ConfigureStageMappings(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListStages(t *testing.T) {
	t.Run("Success - Returns provider stages", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newCRMFixture(t, client)
		f.integration(t, crmintegration.ProviderHubspot)
		f.hubspot.stagesFn = func() ([]crm.Stage, error) {
			return []crm.Stage{
				{ID: "appointmentscheduled", Name: "Appointment Scheduled"},
				{ID: "closedwon", Name: "Closed Won"},
			}, nil
		}

		c, rec := f.authedContext(http.MethodGet, "/crm/hubspot/stages", "",
			map[string]string{"provider": "hubspot"})
		require.NoError(t, f.handler.ListStages(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var stages []crm.Stage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stages))
		require.Len(t, stages, 2)
		assert.Equal(t, "appointmentscheduled", stages[0].ID)
	})

	t.Run("Error - Disconnected provider asks for a reconnect", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newCRMFixture(t, client)

		c, rec := f.authedContext(http.MethodGet, "/crm/hubspot/stages", "",
			map[string]string{"provider": "hubspot"})
		require.NoError(t, f.handler.ListStages(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "reconnect_required")
	})
}

func TestImportContacts(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Mirrors contacts and upserts on re-import", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newCRMFixture(t, client)
		integ := f.integration(t, crmintegration.ProviderHubspot)
		f.hubspot.contactsFn = func() ([]crm.Contact, error) {
			return []crm.Contact{
				{ID: "ct-1", Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"},
				{ID: "ct-2", Email: "alan@example.com", FirstName: "Alan", LastName: "Turing"},
			}, nil
		}

		c, rec := f.authedContext(http.MethodPost, "/crm/hubspot/contacts/import", "",
			map[string]string{"provider": "hubspot"})
		require.NoError(t, f.handler.ImportContacts(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"imported":2}`, rec.Body.String())

		// Second import with a changed email updates in place
		f.hubspot.contactsFn = func() ([]crm.Contact, error) {
			return []crm.Contact{
				{ID: "ct-1", Email: "ada.lovelace@example.com", FirstName: "Ada", LastName: "Lovelace"},
			}, nil
		}
		c, _ = f.authedContext(http.MethodPost, "/crm/hubspot/contacts/import", "",
			map[string]string{"provider": "hubspot"})
		require.NoError(t, f.handler.ImportContacts(c))

		count, err := client.CRMContact.Query().
			Where(crmcontact.IntegrationID(integ.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		updated, err := client.CRMContact.Query().
			Where(
				crmcontact.IntegrationID(integ.ID),
				crmcontact.ExternalContactID("ct-1"),
			).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "ada.lovelace@example.com", updated.Email)

		reloaded, err := client.CRMIntegration.Get(ctx, integ.ID)
		require.NoError(t, err)
		assert.NotNil(t, reloaded.LastSyncAt)
	})
}

func TestCreateDealFromProposal(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Creates deal at mapped stage and links it", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newCRMFixture(t, client)
		integ := f.integration(t, crmintegration.ProviderHubspot)

		require.NoError(t, crm.NewStageMappingStore(client).Replace(ctx, integ.ID, []crm.StageMappingInput{
			{ProposalStatus: "sent", ExternalStageID: "presentationscheduled"},
		}))

		prop, err := client.Proposal.Create().
			SetUserID(f.user.ID).
			SetTitle("Website Redesign").
			SetAmount(18000).
			SetStatus(proposal.StatusSent).
			Save(ctx)
		require.NoError(t, err)

		f.hubspot.createDealFn = func(d crm.Deal) (*crm.Deal, error) {
			assert.Equal(t, "Website Redesign", d.Name)
			assert.Equal(t, float64(18000), d.Amount)
			assert.Equal(t, "presentationscheduled", d.Stage)
			created := d
			created.ID = "deal-new"
			return &created, nil
		}

		c, rec := f.authedContext(http.MethodPost,
			"/crm/hubspot/proposals/"+strconv.Itoa(prop.ID)+"/deal", "",
			map[string]string{"provider": "hubspot", "id": strconv.Itoa(prop.ID)})
		require.NoError(t, f.handler.CreateDealFromProposal(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp DealLinkResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "deal-new", resp.ExternalDealID)
		assert.Equal(t, prop.ID, resp.ProposalID)
		assert.Equal(t, "hubspot", resp.Provider)

		link, err := client.DealLink.Query().
			Where(deallink.IntegrationID(integ.ID), deallink.ProposalID(prop.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "deal-new", link.ExternalDealID)
	})

	t.Run("Error - Non-numeric proposal id fails validation", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newCRMFixture(t, client)
		f.integration(t, crmintegration.ProviderHubspot)

		c, rec := f.authedContext(http.MethodPost, "/crm/hubspot/proposals/abc/deal", "",
			map[string]string{"provider": "hubspot", "id": "abc"})
		require.NoError(t, f.handler.CreateDealFromProposal(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLinkDeal(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Links proposal to a verified deal", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newCRMFixture(t, client)
		integ := f.integration(t, crmintegration.ProviderHubspot)

		prop, err := client.Proposal.Create().
			SetUserID(f.user.ID).
			SetTitle("Retainer").
			SetAmount(3000).
			Save(ctx)
		require.NoError(t, err)

		f.hubspot.getDealFn = func(id string) (*crm.Deal, error) {
			assert.Equal(t, "deal-42", id)
			return &crm.Deal{ID: id, Name: "Existing Deal"}, nil
		}

		c, rec := f.authedContext(http.MethodPost,
			"/crm/hubspot/proposals/"+strconv.Itoa(prop.ID)+"/link",
			`{"external_deal_id":"deal-42"}`,
			map[string]string{"provider": "hubspot", "id": strconv.Itoa(prop.ID)})
		require.NoError(t, f.handler.LinkDeal(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		exists, err := client.DealLink.Query().
			Where(
				deallink.IntegrationID(integ.ID),
				deallink.ProposalID(prop.ID),
				deallink.ExternalDealID("deal-42"),
			).
			Exist(ctx)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Error - Unreachable deal is not found", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newCRMFixture(t, client)
		f.integration(t, crmintegration.ProviderHubspot)

		prop, err := client.Proposal.Create().
			SetUserID(f.user.ID).
			SetTitle("Retainer").
			SetAmount(3000).
			Save(ctx)
		require.NoError(t, err)

		f.hubspot.getDealFn = func(id string) (*crm.Deal, error) {
			return nil, crm.ErrNotFound
		}

		c, rec := f.authedContext(http.MethodPost,
			"/crm/hubspot/proposals/"+strconv.Itoa(prop.ID)+"/link",
			`{"external_deal_id":"deal-gone"}`,
			map[string]string{"provider": "hubspot", "id": strconv.Itoa(prop.ID)})
		require.NoError(t, f.handler.LinkDeal(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Error - Missing deal id fails validation", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newCRMFixture(t, client)
		f.integration(t, crmintegration.ProviderHubspot)

		c, rec := f.authedContext(http.MethodPost, "/crm/hubspot/proposals/1/link",
			`{}`,
			map[string]string{"provider": "hubspot", "id": "1"})
		require.NoError(t, f.handler.LinkDeal(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSyncProposalEndpoint(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Unlinked proposal syncs to nothing", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newCRMFixture(t, client)

		prop, err := client.Proposal.Create().
			SetUserID(f.user.ID).
			SetTitle("Lonely Proposal").
			SetAmount(100).
			Save(ctx)
		require.NoError(t, err)

		c, rec := f.authedContext(http.MethodPost,
			"/crm/proposals/"+strconv.Itoa(prop.ID)+"/sync", "",
			map[string]string{"id": strconv.Itoa(prop.ID)})
		require.NoError(t, f.handler.SyncProposal(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var results []crmsync.SyncResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
		assert.Empty(t, results)
	})

	t.Run("Error - Unknown proposal is an internal error", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newCRMFixture(t, client)

		c, rec := f.authedContext(http.MethodPost, "/crm/proposals/99999/sync", "",
			map[string]string{"id": "99999"})
		require.NoError(t, f.handler.SyncProposal(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
