package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dealpage/dealpage/ent"
	"github.com/dealpage/dealpage/pkg/crm"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron    *cron.Cron
	monitor *SyncMonitor
	logger  *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(db *ent.Client, creds *crm.CredentialStore, service *crm.Service, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:    cron.New(),
		monitor: NewSyncMonitor(db, creds, service, logger),
		logger:  logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Hourly at :15: refresh access tokens expiring within the next 2 hours,
	// so syncs and webhook handling rarely pay refresh latency inline.
	_, err := cm.cron.AddFunc("15 * * * *", func() {
		cm.logger.Println("🕐 Running token refresh sweep...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		expiring, err := cm.monitor.DetectExpiringTokens(ctx, 2*time.Hour)
		if err != nil {
			cm.logger.Printf("❌ Failed to detect expiring tokens: %v", err)
			return
		}

		if len(expiring) == 0 {
			cm.logger.Println("✅ No expiring tokens found")
			return
		}

		cm.logger.Printf("Found %d integrations with expiring tokens", len(expiring))

		if err := cm.monitor.RefreshTokenBatch(ctx, expiring, 3); err != nil {
			cm.logger.Printf("⚠️ Token refresh sweep completed with errors: %v", err)
			return
		}

		cm.logger.Println("✅ Token refresh sweep completed")
	})

	if err != nil {
		return err
	}

	// Daily at 3 AM: import contacts for integrations with auto-sync enabled
	_, err = cm.cron.AddFunc("0 3 * * *", func() {
		cm.logger.Println("🕐 Running scheduled contact import...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		integrations, err := cm.monitor.DetectAutoSyncIntegrations(ctx)
		if err != nil {
			cm.logger.Printf("❌ Failed to detect auto-sync integrations: %v", err)
			return
		}

		if len(integrations) == 0 {
			cm.logger.Println("✅ No integrations with auto-sync enabled")
			return
		}

		cm.logger.Printf("Importing contacts for %d integrations...", len(integrations))

		if err := cm.monitor.ImportContactsBatch(ctx, integrations, 3); err != nil {
			cm.logger.Printf("⚠️ Contact import completed with errors: %v", err)
			return
		}

		cm.logger.Println("✅ Scheduled contact import completed")
	})

	if err != nil {
		return err
	}

	// Daily at 4 AM: log integration health statistics
	_, err = cm.cron.AddFunc("0 4 * * *", func() {
		cm.logger.Println("🕐 Logging sync statistics...")

		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		stats, err := cm.monitor.GetSyncStats(ctx)
		if err != nil {
			cm.logger.Printf("❌ Failed to get sync stats: %v", err)
			return
		}

		cm.logger.Printf("📊 Sync Statistics:")
		cm.logger.Printf("  Active integrations: %v", stats["active_integrations"])
		cm.logger.Printf("  Deal links: %v", stats["deal_links"])
		cm.logger.Printf("  Webhooks processed (24h): %v", stats["webhooks_processed_24h"])
		cm.logger.Printf("  Webhooks unprocessed (24h): %v", stats["webhooks_unprocessed_24h"])
		cm.logger.Printf("  Integrations with sync errors: %v", stats["integrations_with_sync_errors"])
		cm.logger.Printf("  Integrations not synced in 7d: %v", stats["integrations_not_synced_7d"])
	})

	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured successfully")
	cm.logger.Println("  - Hourly at :15: Refresh expiring CRM tokens")
	cm.logger.Println("  - Daily at 3 AM: Import contacts for auto-sync integrations")
	cm.logger.Println("  - Daily at 4 AM: Log sync statistics")

	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Println("🚀 Starting cron scheduler...")
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.logger.Println("🛑 Stopping cron scheduler...")
	cm.cron.Stop()
}

// GetMonitor returns the sync monitor (for manual triggers)
func (cm *CronManager) GetMonitor() *SyncMonitor {
	return cm.monitor
}
