package crm

import (
	"context"
	"testing"
	"time"

	"github.com/dealpage/dealpage/ent"
	"github.com/dealpage/dealpage/ent/crmintegration"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestIntegration(t *testing.T, client *ent.Client, userID int, provider crmintegration.Provider, accountID string) *ent.CRMIntegration {
	t.Helper()
	integ, err := client.CRMIntegration.Create().
		SetUserID(userID).
		SetProvider(provider).
		SetAccessToken("access-token").
		SetRefreshToken("refresh-token").
		SetTokenExpiresAt(time.Now().Add(1 * time.Hour)).
		SetAccountID(accountID).
		Save(context.Background())
	require.NoError(t, err)
	return integ
}

func TestStageMappingReplace(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewStageMappingStore(client)
	user := createTestUser(t, client, "mappings@example.com")
	integ := createTestIntegration(t, client, user.ID, crmintegration.ProviderHubspot, "portal-1")

	t.Run("Success - Replaces full mapping list", func(t *testing.T) {
		err := store.Replace(ctx, integ.ID, []StageMappingInput{
			{ProposalStatus: "sent", ExternalStageID: "appointmentscheduled", ExternalStageName: "Appointment Scheduled"},
			{ProposalStatus: "approved", ExternalStageID: "contractsent", ExternalStageName: "Contract Sent"},
		})
		require.NoError(t, err)

		mappings, err := store.List(ctx, integ.ID)
		require.NoError(t, err)
		require.Len(t, mappings, 2)

		err = store.Replace(ctx, integ.ID, []StageMappingInput{
			{ProposalStatus: "signed", ExternalStageID: "closedwon", ExternalStageName: "Closed Won"},
		})
		require.NoError(t, err)

		// Statuses absent from the new list lose their mapping.
		mappings, err = store.List(ctx, integ.ID)
		require.NoError(t, err)
		require.Len(t, mappings, 1)
		assert.Equal(t, "signed", mappings[0].ProposalStatus)
		assert.Equal(t, "closedwon", mappings[0].ExternalStageID)
	})

	t.Run("Success - Duplicate status is last write wins", func(t *testing.T) {
		err := store.Replace(ctx, integ.ID, []StageMappingInput{
			{ProposalStatus: "sent", ExternalStageID: "stage-a", ExternalStageName: "Stage A"},
			{ProposalStatus: "sent", ExternalStageID: "stage-b", ExternalStageName: "Stage B"},
		})
		require.NoError(t, err)

		mappings, err := store.List(ctx, integ.ID)
		require.NoError(t, err)
		require.Len(t, mappings, 1)
		assert.Equal(t, "stage-b", mappings[0].ExternalStageID)
	})

	t.Run("Success - Empty list clears all mappings", func(t *testing.T) {
		err := store.Replace(ctx, integ.ID, nil)
		require.NoError(t, err)

		mappings, err := store.List(ctx, integ.ID)
		require.NoError(t, err)
		assert.Empty(t, mappings)
	})
}

func TestStageForStatus(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewStageMappingStore(client)
	user := createTestUser(t, client, "stageforstatus@example.com")

	t.Run("Success - Explicit mapping wins", func(t *testing.T) {
		integ := createTestIntegration(t, client, user.ID, crmintegration.ProviderHubspot, "portal-2")
		err := store.Replace(ctx, integ.ID, []StageMappingInput{
			{ProposalStatus: "signed", ExternalStageID: "custom-won", ExternalStageName: "Custom Won"},
		})
		require.NoError(t, err)

		stage, err := store.StageForStatus(ctx, integ.ID, ProviderHubSpot, "signed")

		require.NoError(t, err)
		assert.Equal(t, "custom-won", stage.ID)
	})

	t.Run("Success - Signed falls back to closed won per provider", func(t *testing.T) {
		fallbackUser := createTestUser(t, client, "signedfallback@example.com")
		cases := map[Provider]string{
			ProviderHubSpot:    "closedwon",
			ProviderSalesforce: "Closed Won",
			ProviderPipedrive:  "won",
			ProviderZoho:       "Closed Won",
		}
		for provider, wantStageID := range cases {
			integ := createTestIntegration(t, client, fallbackUser.ID, crmintegration.Provider(provider), "acct-"+string(provider))

			stage, err := store.StageForStatus(ctx, integ.ID, provider, StatusSigned)

			require.NoError(t, err, "provider %s", provider)
			assert.Equal(t, wantStageID, stage.ID, "provider %s", provider)
		}
	})

	t.Run("Error - Unmapped non-signed status gets no fallback", func(t *testing.T) {
		unmappedUser := createTestUser(t, client, "unmapped@example.com")
		integ := createTestIntegration(t, client, unmappedUser.ID, crmintegration.ProviderHubspot, "portal-3")

		_, err := store.StageForStatus(ctx, integ.ID, ProviderHubSpot, "sent")

		assert.ErrorIs(t, err, ErrNoMapping)
	})
}

func TestStatusForStage(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewStageMappingStore(client)
	user := createTestUser(t, client, "statusforstage@example.com")
	integ := createTestIntegration(t, client, user.ID, crmintegration.ProviderPipedrive, "acme-domain")

	require.NoError(t, store.Replace(ctx, integ.ID, []StageMappingInput{
		{ProposalStatus: "approved", ExternalStageID: "5", ExternalStageName: "Negotiation"},
		{ProposalStatus: "signed", ExternalStageID: "won", ExternalStageName: "Won"},
	}))

	t.Run("Success - Resolves by stage id", func(t *testing.T) {
		status, err := store.StatusForStage(ctx, integ.ID, "5", "")

		require.NoError(t, err)
		assert.Equal(t, "approved", status)
	})

	t.Run("Success - Falls back to stage name", func(t *testing.T) {
		status, err := store.StatusForStage(ctx, integ.ID, "unknown-id", "Negotiation")

		require.NoError(t, err)
		assert.Equal(t, "approved", status)
	})

	t.Run("Error - No mapping for stage", func(t *testing.T) {
		_, err := store.StatusForStage(ctx, integ.ID, "99", "Qualification")

		assert.ErrorIs(t, err, ErrNoMapping)
	})
}
