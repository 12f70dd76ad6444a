package crmsync

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/dealpage/dealpage/ent"
	"github.com/dealpage/dealpage/pkg/crm"
	"github.com/dealpage/dealpage/pkg/logger"
	"github.com/dealpage/dealpage/pkg/metrics"
)

// Proposal lifecycle events that push to connected CRMs. Lower-signal
// events (viewed) are deliberately excluded to avoid burning provider rate
// limits on every page view.
var outboundEvents = map[string]bool{
	"sent":     true,
	"approved": true,
	"signed":   true,
}

// DocumentFetcher retrieves the signed document bytes for attachment
// upload. Implementations resolve http(s) and s3 URLs.
type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) (data []byte, filename string, err error)
}

// SyncResult reports the outcome of syncing one proposal to one linked
// deal. The three actions (stage, note, attachment) are independent, so a
// result can be partially successful.
type SyncResult struct {
	Provider        string   `json:"provider"`
	ExternalDealID  string   `json:"external_deal_id"`
	StageUpdated    bool     `json:"stage_updated"`
	NoteAdded       bool     `json:"note_added"`
	AttachmentAdded bool     `json:"attachment_added"`
	Skipped         bool     `json:"skipped,omitempty"`
	SkipReason      string   `json:"skip_reason,omitempty"`
	Errors          []string `json:"errors,omitempty"`
}

// Failed reports whether any action on this link errored.
func (r SyncResult) Failed() bool { return len(r.Errors) > 0 }

// Syncer pushes proposal state to every linked external deal.
type Syncer struct {
	db          *ent.Client
	registry    *crm.Registry
	creds       *crm.CredentialStore
	links       *crm.LinkRegistry
	stages      *crm.StageMappingStore
	docs        DocumentFetcher
	metrics     *metrics.Metrics
	frontendURL string
	log         logger.Logger
}

// NewSyncer creates the outbound coordinator. docs and m may be nil;
// attachment upload and metrics become no-ops.
func NewSyncer(db *ent.Client, registry *crm.Registry, creds *crm.CredentialStore, links *crm.LinkRegistry, stages *crm.StageMappingStore, docs DocumentFetcher, m *metrics.Metrics, frontendURL string, log logger.Logger) *Syncer {
	return &Syncer{
		db:          db,
		registry:    registry,
		creds:       creds,
		links:       links,
		stages:      stages,
		docs:        docs,
		metrics:     m,
		frontendURL: frontendURL,
		log:         log,
	}
}

// TriggerOnEvent runs a full sync when the proposal reaches a status worth
// pushing. Other statuses are a silent no-op.
func (s *Syncer) TriggerOnEvent(ctx context.Context, proposalID int, status string) ([]SyncResult, error) {
	if !outboundEvents[status] {
		return nil, nil
	}
	return s.sync(ctx, proposalID, status)
}

// SyncProposal pushes the proposal's current state to all linked deals,
// regardless of which event got it there. Used by the manual retry action.
func (s *Syncer) SyncProposal(ctx context.Context, proposalID int) ([]SyncResult, error) {
	return s.sync(ctx, proposalID, "")
}

// sync fans out one goroutine per link. A slow or down provider must not
// delay the others, and a failed link must not abort the rest. event is
// empty for manual syncs, which bypass the per-integration event filter.
func (s *Syncer) sync(ctx context.Context, proposalID int, event string) ([]SyncResult, error) {
	prop, err := s.db.Proposal.Get(ctx, proposalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load proposal %d: %w", proposalID, err)
	}

	links, err := s.links.FindByProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return []SyncResult{}, nil
	}

	results := make([]SyncResult, len(links))
	var wg sync.WaitGroup
	for i, link := range links {
		wg.Add(1)
		go func(i int, link *ent.DealLink) {
			defer wg.Done()
			results[i] = s.syncLink(ctx, prop, link, event)
		}(i, link)
	}
	wg.Wait()
	return results, nil
}

func (s *Syncer) syncLink(ctx context.Context, prop *ent.Proposal, link *ent.DealLink, event string) SyncResult {
	start := time.Now()
	integ := link.Edges.Integration
	result := SyncResult{
		Provider:       string(integ.Provider),
		ExternalDealID: link.ExternalDealID,
	}

	if skip := s.skipReason(integ, event); skip != "" {
		result.Skipped = true
		result.SkipReason = skip
		s.record(result, start)
		return result
	}

	provider := crm.Provider(integ.Provider)
	auth, err := s.creds.GetValidToken(ctx, integ.UserID, provider)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("token: %v", err))
		s.record(result, start)
		return result
	}
	adapter, err := s.registry.ForProvider(provider)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		s.record(result, start)
		return result
	}

	// Stage first so the CRM's core state reflects the new status even if
	// the auxiliary writes fail.
	status := string(prop.Status)
	stage, err := s.stages.StageForStatus(ctx, integ.ID, provider, status)
	switch {
	case errors.Is(err, crm.ErrNoMapping):
		s.log.Warn("no stage mapping, skipping stage update",
			"provider", provider, "proposal_id", prop.ID, "status", status)
	case err != nil:
		result.Errors = append(result.Errors, fmt.Sprintf("stage lookup: %v", err))
	default:
		_, err := adapter.UpdateDeal(ctx, auth, crm.Deal{
			ID:     link.ExternalDealID,
			Name:   prop.Title,
			Stage:  stage.ID,
			Amount: prop.Amount,
		})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("stage update: %v", err))
		} else {
			result.StageUpdated = true
		}
	}

	if err := adapter.CreateNote(ctx, auth, link.ExternalDealID, s.noteBody(prop, status)); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("note: %v", err))
	} else {
		result.NoteAdded = true
	}

	if status == crm.StatusSigned && prop.SignedDocumentURL != "" && s.docs != nil {
		if err := s.uploadSignedDocument(ctx, adapter, auth, link.ExternalDealID, prop); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("attachment: %v", err))
		} else {
			result.AttachmentAdded = true
		}
	}

	s.stamp(ctx, integ, result)
	s.record(result, start)
	return result
}

// skipReason returns a non-empty reason when the link must not sync.
func (s *Syncer) skipReason(integ *ent.CRMIntegration, event string) string {
	if !integ.Active {
		return "integration disconnected"
	}
	if integ.SyncDirection == "inbound" {
		return "sync direction is inbound only"
	}
	if event != "" && len(integ.StatusSyncEvents) > 0 {
		for _, e := range integ.StatusSyncEvents {
			if e == event {
				return ""
			}
		}
		return fmt.Sprintf("event %s not enabled for this integration", event)
	}
	return ""
}

func (s *Syncer) noteBody(prop *ent.Proposal, status string) string {
	return fmt.Sprintf("Proposal %q is now %s in DealPage: %s/proposals/%d",
		prop.Title, status, s.frontendURL, prop.ID)
}

func (s *Syncer) uploadSignedDocument(ctx context.Context, adapter crm.Adapter, auth crm.Auth, dealID string, prop *ent.Proposal) error {
	data, filename, err := s.docs.Fetch(ctx, prop.SignedDocumentURL)
	if err != nil {
		return fmt.Errorf("document fetch: %w", err)
	}
	if filename == "" {
		filename = path.Base(prop.SignedDocumentURL)
	}
	return adapter.UploadAttachment(ctx, auth, dealID, filename, data)
}

// stamp records the sync attempt on the integration. Best-effort.
func (s *Syncer) stamp(ctx context.Context, integ *ent.CRMIntegration, result SyncResult) {
	update := integ.Update().SetLastSyncAt(time.Now())
	if result.Failed() {
		update.SetLastSyncError(result.Errors[0])
	} else {
		update.ClearLastSyncError()
	}
	if err := update.Exec(ctx); err != nil {
		s.log.Warn("failed to stamp sync state",
			"integration_id", integ.ID, "error", err)
	}
}

func (s *Syncer) record(result SyncResult, start time.Time) {
	if s.metrics == nil {
		return
	}
	outcome := "success"
	switch {
	case result.Skipped:
		outcome = "skipped"
	case result.Failed():
		outcome = "failed"
	}
	s.metrics.RecordCRMSync(result.Provider, outcome, time.Since(start))
}
