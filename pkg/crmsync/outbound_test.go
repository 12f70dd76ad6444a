package crmsync

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/dealpage/dealpage/ent"
	"github.com/dealpage/dealpage/ent/crmintegration"
	"github.com/dealpage/dealpage/ent/enttest"
	"github.com/dealpage/dealpage/ent/proposal"
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

// fakeAdapter records calls and returns canned results. Methods without an
// override panic through the embedded nil interface.
type fakeAdapter struct {
	crm.Adapter
	provider crm.Provider

	mu    sync.Mutex
	calls []string

	updateDealErr error
	createNoteErr error
	uploadErr     error

	lastDeal     crm.Deal
	lastNoteBody string
	lastUpload   []byte

	verifyErr error
	events    []crm.WebhookEvent
	parseErr  error
}

func (f *fakeAdapter) Provider() crm.Provider { return f.provider }

func (f *fakeAdapter) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeAdapter) callLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAdapter) UpdateDeal(ctx context.Context, auth crm.Auth, d crm.Deal) (*crm.Deal, error) {
	f.record("UpdateDeal")
	if f.updateDealErr != nil {
		return nil, f.updateDealErr
	}
	f.mu.Lock()
	f.lastDeal = d
	f.mu.Unlock()
	return &d, nil
}

func (f *fakeAdapter) CreateNote(ctx context.Context, auth crm.Auth, dealID, body string) error {
	f.record("CreateNote")
	if f.createNoteErr != nil {
		return f.createNoteErr
	}
	f.mu.Lock()
	f.lastNoteBody = body
	f.mu.Unlock()
	return nil
}

func (f *fakeAdapter) UploadAttachment(ctx context.Context, auth crm.Auth, dealID, filename string, data []byte) error {
	f.record("UploadAttachment")
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.mu.Lock()
	f.lastUpload = data
	f.mu.Unlock()
	return nil
}

func (f *fakeAdapter) VerifyWebhookSignature(header http.Header, body []byte, requestURL string) error {
	return f.verifyErr
}

func (f *fakeAdapter) ParseWebhook(body []byte) ([]crm.WebhookEvent, error) {
	if f.parseErr != nil {
		return nil, f.parseErr
	}
	return f.events, nil
}

type stubDocFetcher struct {
	data     []byte
	filename string
	err      error
}

func (s *stubDocFetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	return s.data, s.filename, s.err
}

// syncFixture is the common wiring for outbound tests: one user, one
// adapter per provider slot, stores backed by the in-memory database.
type syncFixture struct {
	db      *ent.Client
	user    *ent.User
	hubspot *fakeAdapter
	pipedrv *fakeAdapter
	links   *crm.LinkRegistry
	stages  *crm.StageMappingStore
	syncer  *Syncer
}

func newSyncFixture(t *testing.T, client *ent.Client, docs DocumentFetcher) *syncFixture {
	t.Helper()
	user, err := client.User.Create().
		SetEmail(t.Name() + "@example.com").
		SetPasswordHash("$2a$10$abcdefghijklmnopqrstuv").
		SetName("Sync Tester").
		Save(context.Background())
	require.NoError(t, err)

	hubspot := &fakeAdapter{provider: crm.ProviderHubSpot}
	pipedrv := &fakeAdapter{provider: crm.ProviderPipedrive}
	registry := crm.NewRegistryWithAdapters(
		hubspot,
		&fakeAdapter{provider: crm.ProviderSalesforce},
		pipedrv,
		&fakeAdapter{provider: crm.ProviderZoho},
	)

	testLog := logger.New("error")
	creds := crm.NewCredentialStore(client, registry, nil, nil, testLog)
	links := crm.NewLinkRegistry(client)
	stages := crm.NewStageMappingStore(client)

	return &syncFixture{
		db:      client,
		user:    user,
		hubspot: hubspot,
		pipedrv: pipedrv,
		links:   links,
		stages:  stages,
		syncer:  NewSyncer(client, registry, creds, links, stages, docs, nil, "https://app.dealpage.com", testLog),
	}
}

func (f *syncFixture) integration(t *testing.T, provider crmintegration.Provider, opts func(*ent.CRMIntegrationCreate)) *ent.CRMIntegration {
	t.Helper()
	create := f.db.CRMIntegration.Create().
		SetUserID(f.user.ID).
		SetProvider(provider).
		SetAccessToken("access-token").
		SetRefreshToken("refresh-token").
		SetTokenExpiresAt(time.Now().Add(1 * time.Hour)).
		SetAccountID("acct-" + string(provider))
	if opts != nil {
		opts(create)
	}
	integ, err := create.Save(context.Background())
	require.NoError(t, err)
	return integ
}

func (f *syncFixture) proposal(t *testing.T, status proposal.Status, title string) *ent.Proposal {
	t.Helper()
	create := f.db.Proposal.Create().
		SetUserID(f.user.ID).
		SetTitle(title).
		SetAmount(9500).
		SetStatus(status)
	if status == proposal.StatusSigned {
		create.SetSignedDocumentURL("https://files.dealpage.com/signed/test.pdf")
	}
	prop, err := create.Save(context.Background())
	require.NoError(t, err)
	return prop
}

func TestTriggerOnEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Low signal statuses are a no-op", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newSyncFixture(t, client, nil)

		integ := f.integration(t, crmintegration.ProviderHubspot, nil)
		prop := f.proposal(t, proposal.StatusViewed, "Quiet Proposal")
		_, err := f.links.Link(ctx, integ.ID, prop.ID, "deal-1")
		require.NoError(t, err)

		for _, status := range []string{"draft", "viewed", "rejected", "expired"} {
			results, err := f.syncer.TriggerOnEvent(ctx, prop.ID, status)
			require.NoError(t, err)
			assert.Nil(t, results, "status %s must not sync", status)
		}
		assert.Empty(t, f.hubspot.callLog())
	})

	t.Run("Success - Stage update lands before the note", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newSyncFixture(t, client, nil)

		integ := f.integration(t, crmintegration.ProviderHubspot, nil)
		prop := f.proposal(t, proposal.StatusSent, "Website Redesign")
		_, err := f.links.Link(ctx, integ.ID, prop.ID, "deal-2")
		require.NoError(t, err)
		require.NoError(t, f.stages.Replace(ctx, integ.ID, []crm.StageMappingInput{
			{ProposalStatus: "sent", ExternalStageID: "appointmentscheduled"},
		}))

		results, err := f.syncer.TriggerOnEvent(ctx, prop.ID, "sent")

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.True(t, results[0].StageUpdated)
		assert.True(t, results[0].NoteAdded)
		assert.False(t, results[0].Failed())

		assert.Equal(t, []string{"UpdateDeal", "CreateNote"}, f.hubspot.callLog())
		assert.Equal(t, "appointmentscheduled", f.hubspot.lastDeal.Stage)
		assert.Equal(t, "deal-2", f.hubspot.lastDeal.ID)
		assert.Contains(t, f.hubspot.lastNoteBody, "Website Redesign")
		assert.Contains(t, f.hubspot.lastNoteBody, "https://app.dealpage.com/proposals/")
	})

	t.Run("Success - Missing mapping skips stage but keeps note", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newSyncFixture(t, client, nil)

		integ := f.integration(t, crmintegration.ProviderHubspot, nil)
		prop := f.proposal(t, proposal.StatusApproved, "Unmapped Proposal")
		_, err := f.links.Link(ctx, integ.ID, prop.ID, "deal-3")
		require.NoError(t, err)

		results, err := f.syncer.TriggerOnEvent(ctx, prop.ID, "approved")

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.False(t, results[0].StageUpdated)
		assert.True(t, results[0].NoteAdded)
		assert.False(t, results[0].Failed(), "a missing mapping is not an error")
		assert.Equal(t, []string{"CreateNote"}, f.hubspot.callLog())
	})

	t.Run("Success - Signed falls back to closed won", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newSyncFixture(t, client, &stubDocFetcher{data: []byte("%PDF-"), filename: "signed.pdf"})

		integ := f.integration(t, crmintegration.ProviderHubspot, nil)
		prop := f.proposal(t, proposal.StatusSigned, "Signed Proposal")
		_, err := f.links.Link(ctx, integ.ID, prop.ID, "deal-4")
		require.NoError(t, err)

		results, err := f.syncer.TriggerOnEvent(ctx, prop.ID, "signed")

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.True(t, results[0].StageUpdated)
		assert.True(t, results[0].NoteAdded)
		assert.True(t, results[0].AttachmentAdded)
		assert.Equal(t, "closedwon", f.hubspot.lastDeal.Stage)
		assert.Equal(t, []byte("%PDF-"), f.hubspot.lastUpload)
		assert.Equal(t, []string{"UpdateDeal", "CreateNote", "UploadAttachment"}, f.hubspot.callLog())
	})

	t.Run("Success - Partial failure keeps remaining actions", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newSyncFixture(t, client, nil)
		f.hubspot.updateDealErr = errors.New("provider exploded")

		integ := f.integration(t, crmintegration.ProviderHubspot, nil)
		prop := f.proposal(t, proposal.StatusSent, "Half Lucky")
		_, err := f.links.Link(ctx, integ.ID, prop.ID, "deal-5")
		require.NoError(t, err)
		require.NoError(t, f.stages.Replace(ctx, integ.ID, []crm.StageMappingInput{
			{ProposalStatus: "sent", ExternalStageID: "stage-x"},
		}))

		results, err := f.syncer.TriggerOnEvent(ctx, prop.ID, "sent")

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.False(t, results[0].StageUpdated)
		assert.True(t, results[0].NoteAdded, "note still lands when the stage update fails")
		assert.True(t, results[0].Failed())
		require.Len(t, results[0].Errors, 1)
		assert.Contains(t, results[0].Errors[0], "stage update")

		// Failures are stamped on the integration for the stats sweep.
		stamped, err := client.CRMIntegration.Get(ctx, integ.ID)
		require.NoError(t, err)
		assert.Contains(t, stamped.LastSyncError, "provider exploded")
		assert.NotNil(t, stamped.LastSyncAt)
	})

	t.Run("Success - One slow provider failing does not block the other", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newSyncFixture(t, client, nil)
		f.hubspot.createNoteErr = errors.New("hubspot down")

		hs := f.integration(t, crmintegration.ProviderHubspot, nil)
		pd := f.integration(t, crmintegration.ProviderPipedrive, nil)
		prop := f.proposal(t, proposal.StatusApproved, "Two Providers")
		_, err := f.links.Link(ctx, hs.ID, prop.ID, "hs-deal")
		require.NoError(t, err)
		_, err = f.links.Link(ctx, pd.ID, prop.ID, "pd-deal")
		require.NoError(t, err)

		results, err := f.syncer.TriggerOnEvent(ctx, prop.ID, "approved")

		require.NoError(t, err)
		require.Len(t, results, 2)
		byProvider := map[string]SyncResult{}
		for _, r := range results {
			byProvider[r.Provider] = r
		}
		assert.True(t, byProvider["hubspot"].Failed())
		assert.False(t, byProvider["pipedrive"].Failed())
		assert.True(t, byProvider["pipedrive"].NoteAdded)
	})

	t.Run("Success - Disconnected integration is skipped", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newSyncFixture(t, client, nil)

		integ := f.integration(t, crmintegration.ProviderHubspot, func(c *ent.CRMIntegrationCreate) {
			c.SetActive(false)
		})
		prop := f.proposal(t, proposal.StatusSent, "Disconnected")
		_, err := f.links.Link(ctx, integ.ID, prop.ID, "deal-6")
		require.NoError(t, err)

		results, err := f.syncer.TriggerOnEvent(ctx, prop.ID, "sent")

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.True(t, results[0].Skipped)
		assert.Equal(t, "integration disconnected", results[0].SkipReason)
		assert.Empty(t, f.hubspot.callLog())
	})

	t.Run("Success - Inbound only direction is skipped", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newSyncFixture(t, client, nil)

		integ := f.integration(t, crmintegration.ProviderHubspot, func(c *ent.CRMIntegrationCreate) {
			c.SetSyncDirection(crmintegration.SyncDirectionInbound)
		})
		prop := f.proposal(t, proposal.StatusSent, "Inbound Only")
		_, err := f.links.Link(ctx, integ.ID, prop.ID, "deal-7")
		require.NoError(t, err)

		results, err := f.syncer.TriggerOnEvent(ctx, prop.ID, "sent")

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.True(t, results[0].Skipped)
		assert.Empty(t, f.hubspot.callLog())
	})

	t.Run("Success - Per-integration event filter", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newSyncFixture(t, client, nil)

		integ := f.integration(t, crmintegration.ProviderHubspot, func(c *ent.CRMIntegrationCreate) {
			c.SetStatusSyncEvents([]string{"signed"})
		})
		prop := f.proposal(t, proposal.StatusSent, "Filtered")
		_, err := f.links.Link(ctx, integ.ID, prop.ID, "deal-8")
		require.NoError(t, err)

		results, err := f.syncer.TriggerOnEvent(ctx, prop.ID, "sent")

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.True(t, results[0].Skipped)
		assert.Contains(t, results[0].SkipReason, "not enabled")
	})

	t.Run("Success - No links is an empty result", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newSyncFixture(t, client, nil)

		prop := f.proposal(t, proposal.StatusSent, "Lonely")

		results, err := f.syncer.TriggerOnEvent(ctx, prop.ID, "sent")

		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestSyncProposal(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Manual sync bypasses the event filter", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newSyncFixture(t, client, nil)

		integ := f.integration(t, crmintegration.ProviderHubspot, func(c *ent.CRMIntegrationCreate) {
			c.SetStatusSyncEvents([]string{"signed"})
		})
		prop := f.proposal(t, proposal.StatusSent, "Manual Retry")
		_, err := f.links.Link(ctx, integ.ID, prop.ID, "deal-9")
		require.NoError(t, err)

		results, err := f.syncer.SyncProposal(ctx, prop.ID)

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.False(t, results[0].Skipped)
		assert.True(t, results[0].NoteAdded)
	})

	t.Run("Error - Unknown proposal", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		f := newSyncFixture(t, client, nil)

		_, err := f.syncer.SyncProposal(ctx, 424242)

		assert.Error(t, err)
	})
}
