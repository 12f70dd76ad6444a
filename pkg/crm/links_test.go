package crm

import (
	"context"
	"testing"

	"github.com/dealpage/dealpage/ent"
	"github.com/dealpage/dealpage/ent/crmintegration"
	"github.com/dealpage/dealpage/ent/deallink"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProposal(t *testing.T, client *ent.Client, userID int, title string) *ent.Proposal {
	t.Helper()
	prop, err := client.Proposal.Create().
		SetUserID(userID).
		SetTitle(title).
		SetAmount(5000).
		Save(context.Background())
	require.NoError(t, err)
	return prop
}

func TestLinkRegistry(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	registry := NewLinkRegistry(client)
	user := createTestUser(t, client, "links@example.com")
	hubspot := createTestIntegration(t, client, user.ID, crmintegration.ProviderHubspot, "portal-links")
	pipedrive := createTestIntegration(t, client, user.ID, crmintegration.ProviderPipedrive, "acme-links")

	t.Run("Success - Link creates association", func(t *testing.T) {
		prop := createTestProposal(t, client, user.ID, "Website Redesign")

		link, err := registry.Link(ctx, hubspot.ID, prop.ID, "deal-100")

		require.NoError(t, err)
		assert.Equal(t, "deal-100", link.ExternalDealID)
		assert.Equal(t, prop.ID, link.ProposalID)
	})

	t.Run("Success - Relink replaces existing deal id", func(t *testing.T) {
		prop := createTestProposal(t, client, user.ID, "SEO Retainer")

		_, err := registry.Link(ctx, hubspot.ID, prop.ID, "deal-200")
		require.NoError(t, err)
		_, err = registry.Link(ctx, hubspot.ID, prop.ID, "deal-201")
		require.NoError(t, err)

		// One active link per (integration, proposal) pair.
		count, err := client.DealLink.Query().
			Where(
				deallink.IntegrationID(hubspot.ID),
				deallink.ProposalID(prop.ID),
			).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		link, err := client.DealLink.Query().
			Where(deallink.ProposalID(prop.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "deal-201", link.ExternalDealID)
	})

	t.Run("Success - One proposal linked across providers", func(t *testing.T) {
		prop := createTestProposal(t, client, user.ID, "Annual Contract")

		_, err := registry.Link(ctx, hubspot.ID, prop.ID, "hs-deal-1")
		require.NoError(t, err)
		_, err = registry.Link(ctx, pipedrive.ID, prop.ID, "pd-deal-1")
		require.NoError(t, err)

		links, err := registry.FindByProposal(ctx, prop.ID)
		require.NoError(t, err)
		require.Len(t, links, 2)
		for _, l := range links {
			require.NotNil(t, l.Edges.Integration, "integration edge must be loaded")
		}
	})

	t.Run("Success - FindByExternalDeal scopes by provider", func(t *testing.T) {
		prop := createTestProposal(t, client, user.ID, "Support Plan")

		// Same external id under two providers must not cross-match.
		_, err := registry.Link(ctx, hubspot.ID, prop.ID, "deal-777")
		require.NoError(t, err)
		_, err = registry.Link(ctx, pipedrive.ID, prop.ID, "deal-777")
		require.NoError(t, err)

		link, err := registry.FindByExternalDeal(ctx, ProviderPipedrive, "deal-777")
		require.NoError(t, err)
		require.NotNil(t, link)
		assert.Equal(t, pipedrive.ID, link.IntegrationID)
	})

	t.Run("Success - FindByExternalDeal returns nil when unknown", func(t *testing.T) {
		link, err := registry.FindByExternalDeal(ctx, ProviderHubSpot, "no-such-deal")

		require.NoError(t, err)
		assert.Nil(t, link)
	})

	t.Run("Success - UnlinkExternal removes on deletion event", func(t *testing.T) {
		prop := createTestProposal(t, client, user.ID, "Doomed Deal")

		_, err := registry.Link(ctx, hubspot.ID, prop.ID, "deal-gone")
		require.NoError(t, err)

		require.NoError(t, registry.UnlinkExternal(ctx, hubspot.ID, "deal-gone"))

		link, err := registry.FindByExternalDeal(ctx, ProviderHubSpot, "deal-gone")
		require.NoError(t, err)
		assert.Nil(t, link)
	})

	t.Run("Success - UnlinkAll clears an integration", func(t *testing.T) {
		propA := createTestProposal(t, client, user.ID, "Bulk A")
		propB := createTestProposal(t, client, user.ID, "Bulk B")
		_, err := registry.Link(ctx, pipedrive.ID, propA.ID, "pd-a")
		require.NoError(t, err)
		_, err = registry.Link(ctx, pipedrive.ID, propB.ID, "pd-b")
		require.NoError(t, err)

		require.NoError(t, registry.UnlinkAll(ctx, pipedrive.ID))

		count, err := client.DealLink.Query().
			Where(deallink.IntegrationID(pipedrive.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}
