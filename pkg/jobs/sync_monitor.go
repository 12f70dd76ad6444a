package jobs

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/dealpage/dealpage/ent"
	"github.com/dealpage/dealpage/ent/crmintegration"
	"github.com/dealpage/dealpage/ent/webhooklog"
	"github.com/dealpage/dealpage/pkg/crm"
)

// SyncMonitor runs maintenance work over CRM integrations: proactive token
// refreshes, scheduled contact imports and health statistics.
type SyncMonitor struct {
	db      *ent.Client
	creds   *crm.CredentialStore
	service *crm.Service
	logger  *log.Logger
}

// NewSyncMonitor creates a new sync monitor
func NewSyncMonitor(db *ent.Client, creds *crm.CredentialStore, service *crm.Service, logger *log.Logger) *SyncMonitor {
	if logger == nil {
		logger = log.Default()
	}

	return &SyncMonitor{
		db:      db,
		creds:   creds,
		service: service,
		logger:  logger,
	}
}

// DetectExpiringTokens finds active integrations whose access token expires
// within the given window and that hold a refresh token to renew it with.
func (sm *SyncMonitor) DetectExpiringTokens(ctx context.Context, within time.Duration) ([]*ent.CRMIntegration, error) {
	deadline := time.Now().Add(within)

	integrations, err := sm.db.CRMIntegration.Query().
		Where(
			crmintegration.Active(true),
			crmintegration.RefreshTokenNEQ(""),
			crmintegration.TokenExpiresAtNotNil(),
			crmintegration.TokenExpiresAtLT(deadline),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query expiring tokens: %w", err)
	}

	return integrations, nil
}

// RefreshTokenBatch refreshes tokens for the given integrations with bounded
// concurrency. GetValidToken does the actual refresh; a failure there either
// leaves the token for the next sweep or disconnects the integration when the
// refresh token was rejected.
func (sm *SyncMonitor) RefreshTokenBatch(ctx context.Context, integrations []*ent.CRMIntegration, maxConcurrent int) error {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	sem := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var failures []string

	for _, integ := range integrations {
		wg.Add(1)
		sem <- struct{}{}

		go func(integ *ent.CRMIntegration) {
			defer wg.Done()
			defer func() { <-sem }()

			sm.logger.Printf("Refreshing %s token for user %d...", integ.Provider, integ.UserID)

			_, err := sm.creds.GetValidToken(ctx, integ.UserID, crm.Provider(integ.Provider))
			if err != nil {
				sm.logger.Printf("⚠️ Failed to refresh %s token for user %d: %v", integ.Provider, integ.UserID, err)
				mu.Lock()
				failures = append(failures, fmt.Sprintf("%s/user %d: %v", integ.Provider, integ.UserID, err))
				mu.Unlock()
			}
		}(integ)
	}

	wg.Wait()

	if len(failures) > 0 {
		return fmt.Errorf("%d of %d refreshes failed: %v", len(failures), len(integrations), failures)
	}
	return nil
}

// DetectAutoSyncIntegrations finds active integrations that opted into
// scheduled contact imports.
func (sm *SyncMonitor) DetectAutoSyncIntegrations(ctx context.Context) ([]*ent.CRMIntegration, error) {
	integrations, err := sm.db.CRMIntegration.Query().
		Where(
			crmintegration.Active(true),
			crmintegration.AutoSyncContacts(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query auto-sync integrations: %w", err)
	}

	return integrations, nil
}

// ImportContactsBatch runs a contact import for each integration with bounded
// concurrency. Per-integration failures are logged and collected; one broken
// provider does not stop the rest of the batch.
func (sm *SyncMonitor) ImportContactsBatch(ctx context.Context, integrations []*ent.CRMIntegration, maxConcurrent int) error {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	sem := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var failures []string

	for _, integ := range integrations {
		wg.Add(1)
		sem <- struct{}{}

		go func(integ *ent.CRMIntegration) {
			defer wg.Done()
			defer func() { <-sem }()

			sm.logger.Printf("Importing %s contacts for user %d...", integ.Provider, integ.UserID)

			count, err := sm.service.ImportContacts(ctx, integ.UserID, crm.Provider(integ.Provider))
			if err != nil {
				sm.logger.Printf("⚠️ Contact import failed for %s/user %d: %v", integ.Provider, integ.UserID, err)
				mu.Lock()
				failures = append(failures, fmt.Sprintf("%s/user %d: %v", integ.Provider, integ.UserID, err))
				mu.Unlock()
				return
			}

			sm.logger.Printf("✅ Imported %d %s contacts for user %d", count, integ.Provider, integ.UserID)
		}(integ)
	}

	wg.Wait()

	if len(failures) > 0 {
		return fmt.Errorf("%d of %d imports failed: %v", len(failures), len(integrations), failures)
	}
	return nil
}

// GetSyncStats returns a snapshot of integration health for the daily report.
func (sm *SyncMonitor) GetSyncStats(ctx context.Context) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	activeIntegrations, err := sm.db.CRMIntegration.Query().
		Where(crmintegration.Active(true)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active integrations: %w", err)
	}
	stats["active_integrations"] = activeIntegrations

	totalLinks, err := sm.db.DealLink.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count deal links: %w", err)
	}
	stats["deal_links"] = totalLinks

	since := time.Now().Add(-24 * time.Hour)

	processed, err := sm.db.WebhookLog.Query().
		Where(
			webhooklog.ReceivedAtGTE(since),
			webhooklog.Processed(true),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count processed webhooks: %w", err)
	}
	stats["webhooks_processed_24h"] = processed

	unprocessed, err := sm.db.WebhookLog.Query().
		Where(
			webhooklog.ReceivedAtGTE(since),
			webhooklog.Processed(false),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count unprocessed webhooks: %w", err)
	}
	stats["webhooks_unprocessed_24h"] = unprocessed

	failing, err := sm.db.CRMIntegration.Query().
		Where(
			crmintegration.Active(true),
			crmintegration.LastSyncErrorNEQ(""),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count failing integrations: %w", err)
	}
	stats["integrations_with_sync_errors"] = failing

	stale, err := sm.db.CRMIntegration.Query().
		Where(
			crmintegration.Active(true),
			crmintegration.Or(
				crmintegration.LastSyncAtIsNil(),
				crmintegration.LastSyncAtLT(time.Now().Add(-7*24*time.Hour)),
			),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count stale integrations: %w", err)
	}
	stats["integrations_not_synced_7d"] = stale

	return stats, nil
}
