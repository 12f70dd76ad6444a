package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/dealpage/dealpage/ent"
	"github.com/dealpage/dealpage/ent/crmintegration"
	"github.com/dealpage/dealpage/ent/enttest"
	"github.com/dealpage/dealpage/ent/webhooklog"
	"github.com/dealpage/dealpage/pkg/crm"
	"github.com/dealpage/dealpage/pkg/logger"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func createTestUser(t *testing.T, client *ent.Client, email string) *ent.User {
	t.Helper()
	user, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash("$2a$10$abcdefghijklmnopqrstuv").
		SetName("Jobs Tester").
		Save(context.Background())
	require.NoError(t, err)
	return user
}

// refreshStubAdapter only supports Refresh. Everything else panics
// through the embedded nil interface.
type refreshStubAdapter struct {
	crm.Adapter
	provider crm.Provider
	err      error
}

func (s *refreshStubAdapter) Provider() crm.Provider { return s.provider }

func (s *refreshStubAdapter) Refresh(ctx context.Context, refreshToken string, meta crm.AccountMetadata) (*crm.TokenSet, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &crm.TokenSet{
		AccessToken:  "access-refreshed",
		RefreshToken: "refresh-rotated",
		ExpiresAt:    time.Now().Add(1 * time.Hour),
		Metadata:     meta,
	}, nil
}

func TestDetectExpiringTokens(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	monitor := NewSyncMonitor(client, nil, nil, nil)
	user := createTestUser(t, client, "expiring@example.com")

	// Expires within the sweep window.
	expiring, err := client.CRMIntegration.Create().
		SetUserID(user.ID).
		SetProvider(crmintegration.ProviderHubspot).
		SetAccessToken("a").
		SetRefreshToken("r").
		SetTokenExpiresAt(time.Now().Add(30 * time.Minute)).
		SetAccountID("acct-1").
		Save(ctx)
	require.NoError(t, err)

	// Expires far in the future.
	_, err = client.CRMIntegration.Create().
		SetUserID(user.ID).
		SetProvider(crmintegration.ProviderSalesforce).
		SetAccessToken("a").
		SetRefreshToken("r").
		SetTokenExpiresAt(time.Now().Add(48 * time.Hour)).
		SetAccountID("acct-2").
		Save(ctx)
	require.NoError(t, err)

	// Expiring but already disconnected.
	_, err = client.CRMIntegration.Create().
		SetUserID(user.ID).
		SetProvider(crmintegration.ProviderPipedrive).
		SetAccessToken("a").
		SetRefreshToken("r").
		SetTokenExpiresAt(time.Now().Add(30 * time.Minute)).
		SetAccountID("acct-3").
		SetActive(false).
		Save(ctx)
	require.NoError(t, err)

	// Expiring but nothing to refresh with.
	_, err = client.CRMIntegration.Create().
		SetUserID(user.ID).
		SetProvider(crmintegration.ProviderZoho).
		SetAccessToken("a").
		SetTokenExpiresAt(time.Now().Add(30 * time.Minute)).
		SetAccountID("acct-4").
		Save(ctx)
	require.NoError(t, err)

	found, err := monitor.DetectExpiringTokens(ctx, 2*time.Hour)

	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, expiring.ID, found[0].ID)
}

func TestRefreshTokenBatch(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	registry := crm.NewRegistryWithAdapters(
		&refreshStubAdapter{provider: crm.ProviderHubSpot},
		&refreshStubAdapter{provider: crm.ProviderSalesforce, err: crm.ErrRefreshFailed},
		&refreshStubAdapter{provider: crm.ProviderPipedrive},
		&refreshStubAdapter{provider: crm.ProviderZoho},
	)
	creds := crm.NewCredentialStore(client, registry, nil, nil, logger.New("error"))
	monitor := NewSyncMonitor(client, creds, nil, nil)

	user := createTestUser(t, client, "batch@example.com")

	hubspot, err := client.CRMIntegration.Create().
		SetUserID(user.ID).
		SetProvider(crmintegration.ProviderHubspot).
		SetAccessToken("stale").
		SetRefreshToken("r").
		SetTokenExpiresAt(time.Now().Add(-1 * time.Minute)).
		SetAccountID("acct-hs").
		Save(ctx)
	require.NoError(t, err)

	salesforce, err := client.CRMIntegration.Create().
		SetUserID(user.ID).
		SetProvider(crmintegration.ProviderSalesforce).
		SetAccessToken("stale").
		SetRefreshToken("r").
		SetTokenExpiresAt(time.Now().Add(-1 * time.Minute)).
		SetAccountID("acct-sf").
		Save(ctx)
	require.NoError(t, err)

	t.Run("Success - Batch refreshes and collects failures", func(t *testing.T) {
		err := monitor.RefreshTokenBatch(ctx, []*ent.CRMIntegration{hubspot, salesforce}, 3)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2 refreshes failed")

		// The successful refresh is persisted.
		reloaded, err := client.CRMIntegration.Get(ctx, hubspot.ID)
		require.NoError(t, err)
		assert.Equal(t, "access-refreshed", reloaded.AccessToken)

		// The rejected one got force-disconnected.
		reloaded, err = client.CRMIntegration.Get(ctx, salesforce.ID)
		require.NoError(t, err)
		assert.False(t, reloaded.Active)
	})

	t.Run("Success - Empty batch is a no-op", func(t *testing.T) {
		assert.NoError(t, monitor.RefreshTokenBatch(ctx, nil, 3))
	})
}

func TestDetectAutoSyncIntegrations(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	monitor := NewSyncMonitor(client, nil, nil, nil)
	user := createTestUser(t, client, "autosync@example.com")

	optedIn, err := client.CRMIntegration.Create().
		SetUserID(user.ID).
		SetProvider(crmintegration.ProviderHubspot).
		SetAccessToken("a").
		SetAccountID("acct-1").
		SetAutoSyncContacts(true).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.CRMIntegration.Create().
		SetUserID(user.ID).
		SetProvider(crmintegration.ProviderZoho).
		SetAccessToken("a").
		SetAccountID("acct-2").
		Save(ctx)
	require.NoError(t, err)

	found, err := monitor.DetectAutoSyncIntegrations(ctx)

	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, optedIn.ID, found[0].ID)
}

func TestGetSyncStats(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	monitor := NewSyncMonitor(client, nil, nil, nil)
	user := createTestUser(t, client, "stats@example.com")

	healthy, err := client.CRMIntegration.Create().
		SetUserID(user.ID).
		SetProvider(crmintegration.ProviderHubspot).
		SetAccessToken("a").
		SetAccountID("acct-1").
		SetLastSyncAt(time.Now().Add(-1 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.CRMIntegration.Create().
		SetUserID(user.ID).
		SetProvider(crmintegration.ProviderPipedrive).
		SetAccessToken("a").
		SetAccountID("acct-2").
		SetLastSyncAt(time.Now().Add(-10 * 24 * time.Hour)).
		SetLastSyncError("stage update: provider exploded").
		Save(ctx)
	require.NoError(t, err)

	prop, err := client.Proposal.Create().
		SetUserID(user.ID).
		SetTitle("Stats Proposal").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.DealLink.Create().
		SetIntegrationID(healthy.ID).
		SetProposalID(prop.ID).
		SetExternalDealID("deal-1").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.WebhookLog.Create().
		SetProvider(webhooklog.ProviderHubspot).
		SetEventType("deal.stage_changed").
		SetProcessed(true).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.WebhookLog.Create().
		SetProvider(webhooklog.ProviderHubspot).
		SetEventType("deal.creation").
		SetProcessed(false).
		SetProcessingError("event discarded: unrecognized event type deal.creation").
		Save(ctx)
	require.NoError(t, err)

	stats, err := monitor.GetSyncStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, stats["active_integrations"])
	assert.Equal(t, 1, stats["deal_links"])
	assert.Equal(t, 1, stats["webhooks_processed_24h"])
	assert.Equal(t, 1, stats["webhooks_unprocessed_24h"])
	assert.Equal(t, 1, stats["integrations_with_sync_errors"])
	assert.Equal(t, 1, stats["integrations_not_synced_7d"])
}
