package crmsync

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/dealpage/dealpage/ent"
	"github.com/dealpage/dealpage/ent/crmintegration"
	"github.com/dealpage/dealpage/ent/proposal"
	"github.com/dealpage/dealpage/ent/webhooklog"
	"github.com/dealpage/dealpage/pkg/crm"
	"github.com/dealpage/dealpage/pkg/logger"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProposalNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (n *recordingProposalNotifier) NotifyStatusChanged(ctx context.Context, proposalID int, status string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, status)
}

func (n *recordingProposalNotifier) statuses() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.calls...)
}

// processorFixture wires a Processor against one controllable adapter in
// the hubspot slot.
type processorFixture struct {
	db        *ent.Client
	user      *ent.User
	adapter   *fakeAdapter
	links     *crm.LinkRegistry
	stages    *crm.StageMappingStore
	notifier  *recordingProposalNotifier
	processor *Processor
}

func newProcessorFixture(t *testing.T, client *ent.Client) *processorFixture {
	t.Helper()
	user, err := client.User.Create().
		SetEmail(t.Name() + "@example.com").
		SetPasswordHash("$2a$10$abcdefghijklmnopqrstuv").
		SetName("Webhook Tester").
		Save(context.Background())
	require.NoError(t, err)

	adapter := &fakeAdapter{provider: crm.ProviderHubSpot}
	registry := crm.NewRegistryWithAdapters(
		adapter,
		&fakeAdapter{provider: crm.ProviderSalesforce},
		&fakeAdapter{provider: crm.ProviderPipedrive},
		&fakeAdapter{provider: crm.ProviderZoho},
	)

	testLog := logger.New("error")
	links := crm.NewLinkRegistry(client)
	stages := crm.NewStageMappingStore(client)
	notifier := &recordingProposalNotifier{}

	return &processorFixture{
		db:        client,
		user:      user,
		adapter:   adapter,
		links:     links,
		stages:    stages,
		notifier:  notifier,
		processor: NewProcessor(client, registry, links, stages, notifier, nil, testLog),
	}
}

func (f *processorFixture) integration(t *testing.T, accountID string, opts func(*ent.CRMIntegrationCreate)) *ent.CRMIntegration {
	t.Helper()
	create := f.db.CRMIntegration.Create().
		SetUserID(f.user.ID).
		SetProvider(crmintegration.ProviderHubspot).
		SetAccessToken("access-token").
		SetRefreshToken("refresh-token").
		SetTokenExpiresAt(time.Now().Add(1 * time.Hour)).
		SetAccountID(accountID)
	if opts != nil {
		opts(create)
	}
	integ, err := create.Save(context.Background())
	require.NoError(t, err)
	return integ
}

func (f *processorFixture) proposal(t *testing.T, status proposal.Status, title string) *ent.Proposal {
	t.Helper()
	prop, err := f.db.Proposal.Create().
		SetUserID(f.user.ID).
		SetTitle(title).
		SetAmount(4200).
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return prop
}

func (f *processorFixture) process(ctx context.Context, events ...crm.WebhookEvent) error {
	f.adapter.events = events
	return f.processor.Process(ctx, crm.ProviderHubSpot, http.Header{}, []byte(`{}`), "/webhooks/crm/hubspot")
}

func webhookLogs(t *testing.T, client *ent.Client) []*ent.WebhookLog {
	t.Helper()
	logs, err := client.WebhookLog.Query().Order(ent.Asc(webhooklog.FieldID)).All(context.Background())
	require.NoError(t, err)
	return logs
}

func TestProcess(t *testing.T) {
	ctx := context.Background()

	t.Run("Error - Bad signature discards before any persistence", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newProcessorFixture(t, client)
		f.adapter.verifyErr = crm.ErrSignatureInvalid

		err := f.process(ctx, crm.WebhookEvent{Type: crm.EventDealStageChanged, AccountID: "acct-1"})

		require.ErrorIs(t, err, crm.ErrSignatureInvalid)
		assert.Empty(t, webhookLogs(t, client), "unverified payloads must leave no trace")
	})

	t.Run("Error - Unparseable payload leaves no log rows", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newProcessorFixture(t, client)
		f.adapter.parseErr = assert.AnError

		err := f.processor.Process(ctx, crm.ProviderHubSpot, http.Header{}, []byte(`garbage`), "/webhooks/crm/hubspot")

		require.Error(t, err)
		assert.Empty(t, webhookLogs(t, client))
	})

	t.Run("Success - Stage change updates the linked proposal", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newProcessorFixture(t, client)

		integ := f.integration(t, "12345", nil)
		prop := f.proposal(t, proposal.StatusSent, "Inbound Update")
		_, err := f.links.Link(ctx, integ.ID, prop.ID, "deal-55")
		require.NoError(t, err)
		require.NoError(t, f.stages.Replace(ctx, integ.ID, []crm.StageMappingInput{
			{ProposalStatus: "approved", ExternalStageID: "contractsent"},
		}))

		err = f.process(ctx, crm.WebhookEvent{
			Type:      crm.EventDealStageChanged,
			ObjectID:  "deal-55",
			AccountID: "12345",
			StageID:   "contractsent",
			Raw:       map[string]interface{}{"propertyValue": "contractsent"},
		})
		require.NoError(t, err)

		reloaded, err := client.Proposal.Get(ctx, prop.ID)
		require.NoError(t, err)
		assert.Equal(t, proposal.StatusApproved, reloaded.Status)
		assert.Equal(t, []string{"approved"}, f.notifier.statuses())

		logs := webhookLogs(t, client)
		require.Len(t, logs, 1)
		assert.True(t, logs[0].Processed)
		assert.Equal(t, integ.ID, logs[0].IntegrationID)
		assert.Empty(t, logs[0].ProcessingError)
		assert.Equal(t, "contractsent", logs[0].Payload["propertyValue"])
	})

	t.Run("Success - Echo of our own push is idempotent", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newProcessorFixture(t, client)

		integ := f.integration(t, "12345", nil)
		prop := f.proposal(t, proposal.StatusApproved, "Already There")
		_, err := f.links.Link(ctx, integ.ID, prop.ID, "deal-56")
		require.NoError(t, err)
		require.NoError(t, f.stages.Replace(ctx, integ.ID, []crm.StageMappingInput{
			{ProposalStatus: "approved", ExternalStageID: "contractsent"},
		}))

		statusChangedAt := time.Now().Add(-1 * time.Hour)
		require.NoError(t, prop.Update().SetStatusChangedAt(statusChangedAt).Exec(ctx))

		err = f.process(ctx, crm.WebhookEvent{
			Type:      crm.EventDealStageChanged,
			ObjectID:  "deal-56",
			AccountID: "12345",
			StageID:   "contractsent",
		})
		require.NoError(t, err)

		// Status unchanged, no notification, but the event still audits
		// as processed.
		reloaded, err := client.Proposal.Get(ctx, prop.ID)
		require.NoError(t, err)
		assert.Equal(t, proposal.StatusApproved, reloaded.Status)
		assert.WithinDuration(t, statusChangedAt, reloaded.StatusChangedAt, time.Second)
		assert.Empty(t, f.notifier.statuses())

		logs := webhookLogs(t, client)
		require.Len(t, logs, 1)
		assert.True(t, logs[0].Processed)
	})

	t.Run("Success - Unknown account is audited as discarded", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newProcessorFixture(t, client)

		err := f.process(ctx, crm.WebhookEvent{
			Type:      crm.EventDealStageChanged,
			ObjectID:  "deal-57",
			AccountID: "99999",
		})
		require.NoError(t, err)

		logs := webhookLogs(t, client)
		require.Len(t, logs, 1)
		assert.False(t, logs[0].Processed)
		assert.Contains(t, logs[0].ProcessingError, "no integration for account")
		assert.Zero(t, logs[0].IntegrationID)
	})

	t.Run("Success - Outbound only integration discards inbound events", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newProcessorFixture(t, client)

		f.integration(t, "12345", func(c *ent.CRMIntegrationCreate) {
			c.SetSyncDirection(crmintegration.SyncDirectionOutbound)
		})

		err := f.process(ctx, crm.WebhookEvent{
			Type:      crm.EventDealStageChanged,
			ObjectID:  "deal-58",
			AccountID: "12345",
		})
		require.NoError(t, err)

		logs := webhookLogs(t, client)
		require.Len(t, logs, 1)
		assert.False(t, logs[0].Processed)
		assert.Contains(t, logs[0].ProcessingError, "inbound sync disabled")
	})

	t.Run("Success - Unmapped stage is audited as discarded", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newProcessorFixture(t, client)

		integ := f.integration(t, "12345", nil)
		prop := f.proposal(t, proposal.StatusSent, "Unmapped Inbound")
		_, err := f.links.Link(ctx, integ.ID, prop.ID, "deal-59")
		require.NoError(t, err)

		err = f.process(ctx, crm.WebhookEvent{
			Type:      crm.EventDealStageChanged,
			ObjectID:  "deal-59",
			AccountID: "12345",
			StageID:   "mystery-stage",
		})
		require.NoError(t, err)

		reloaded, err := client.Proposal.Get(ctx, prop.ID)
		require.NoError(t, err)
		assert.Equal(t, proposal.StatusSent, reloaded.Status, "unmapped stages must not touch the proposal")

		logs := webhookLogs(t, client)
		require.Len(t, logs, 1)
		assert.False(t, logs[0].Processed)
		assert.Contains(t, logs[0].ProcessingError, "no status mapping")
	})

	t.Run("Success - Deal deletion removes the link", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newProcessorFixture(t, client)

		integ := f.integration(t, "12345", nil)
		prop := f.proposal(t, proposal.StatusSent, "Deleted Remotely")
		_, err := f.links.Link(ctx, integ.ID, prop.ID, "deal-60")
		require.NoError(t, err)

		err = f.process(ctx, crm.WebhookEvent{
			Type:      crm.EventDealDeleted,
			ObjectID:  "deal-60",
			AccountID: "12345",
		})
		require.NoError(t, err)

		link, err := f.links.FindByExternalDeal(ctx, crm.ProviderHubSpot, "deal-60")
		require.NoError(t, err)
		assert.Nil(t, link)

		// The proposal itself survives the unlink.
		_, err = client.Proposal.Get(ctx, prop.ID)
		require.NoError(t, err)

		logs := webhookLogs(t, client)
		require.Len(t, logs, 1)
		assert.True(t, logs[0].Processed)
	})

	t.Run("Success - Contact change updates the local mirror", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newProcessorFixture(t, client)

		integ := f.integration(t, "12345", nil)
		_, err := client.CRMContact.Create().
			SetIntegrationID(integ.ID).
			SetExternalContactID("contact-7").
			SetEmail("old@example.com").
			SetFirstName("Old").
			Save(ctx)
		require.NoError(t, err)

		err = f.process(ctx, crm.WebhookEvent{
			Type:      crm.EventContactChanged,
			ObjectID:  "contact-7",
			AccountID: "12345",
			Contact:   &crm.Contact{Email: "new@example.com"},
		})
		require.NoError(t, err)

		mirrored, err := client.CRMContact.Query().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", mirrored.Email)
		assert.Equal(t, "Old", mirrored.FirstName, "unset fields keep their value")
	})

	t.Run("Success - Unrecognized event type is discarded", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newProcessorFixture(t, client)

		f.integration(t, "12345", nil)

		err := f.process(ctx, crm.WebhookEvent{
			Type:      "deal.creation",
			ObjectID:  "deal-61",
			AccountID: "12345",
		})
		require.NoError(t, err)

		logs := webhookLogs(t, client)
		require.Len(t, logs, 1)
		assert.False(t, logs[0].Processed)
		assert.Contains(t, logs[0].ProcessingError, "unrecognized event type")
	})

	t.Run("Success - One bad event does not poison the batch", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newProcessorFixture(t, client)

		integ := f.integration(t, "12345", nil)
		prop := f.proposal(t, proposal.StatusSent, "Batch Survivor")
		_, err := f.links.Link(ctx, integ.ID, prop.ID, "deal-62")
		require.NoError(t, err)
		require.NoError(t, f.stages.Replace(ctx, integ.ID, []crm.StageMappingInput{
			{ProposalStatus: "approved", ExternalStageID: "contractsent"},
		}))

		err = f.process(ctx,
			crm.WebhookEvent{Type: "deal.creation", ObjectID: "deal-x", AccountID: "12345"},
			crm.WebhookEvent{Type: crm.EventDealStageChanged, ObjectID: "deal-62", AccountID: "12345", StageID: "contractsent"},
		)
		require.NoError(t, err)

		reloaded, err := client.Proposal.Get(ctx, prop.ID)
		require.NoError(t, err)
		assert.Equal(t, proposal.StatusApproved, reloaded.Status)

		logs := webhookLogs(t, client)
		require.Len(t, logs, 2)
		assert.False(t, logs[0].Processed)
		assert.True(t, logs[1].Processed)
	})
}
