package crm

import (
	"context"
	"errors"
	"fmt"

	"github.com/dealpage/dealpage/ent"
	"github.com/dealpage/dealpage/ent/stagemapping"
)

// ErrNoMapping is returned when no stage mapping covers a status or stage.
var ErrNoMapping = errors.New("no stage mapping configured")

// defaultSignedStage is the built-in fallback used only when a proposal
// reaches "signed" and the integration has no explicit mapping for it.
// Every provider has an unambiguous closed-won equivalent, which makes this
// one status safe to default; no other status gets a fallback.
var defaultSignedStage = map[Provider]Stage{
	ProviderHubSpot:    {ID: "closedwon", Name: "Closed Won"},
	ProviderSalesforce: {ID: "Closed Won", Name: "Closed Won"},
	ProviderPipedrive:  {ID: "won", Name: "Won"},
	ProviderZoho:       {ID: "Closed Won", Name: "Closed Won"},
}

// StatusSigned is the terminal proposal status.
const StatusSigned = "signed"

// StageMappingInput is one configured (status, stage) pair.
type StageMappingInput struct {
	ProposalStatus    string `json:"proposal_status" validate:"required"`
	ExternalStageID   string `json:"external_stage_id" validate:"required"`
	ExternalStageName string `json:"external_stage_name"`
}

// StageMappingStore persists the per-integration status/stage
// correspondences. Mappings are directionless data: outbound sync looks up
// by internal status, inbound by external stage id or name.
type StageMappingStore struct {
	db *ent.Client
}

// NewStageMappingStore creates a stage mapping store.
func NewStageMappingStore(db *ent.Client) *StageMappingStore {
	return &StageMappingStore{db: db}
}

// Replace reconfigures the mapping list for an integration. Per-status
// semantics are last write wins; statuses absent from the new list lose
// their mapping.
func (s *StageMappingStore) Replace(ctx context.Context, integrationID int, mappings []StageMappingInput) error {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	if _, err := tx.StageMapping.Delete().
		Where(stagemapping.IntegrationID(integrationID)).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to clear stage mappings: %w", err)
	}

	seen := make(map[string]bool, len(mappings))
	for _, m := range mappings {
		if seen[m.ProposalStatus] {
			// Last write wins within one request too.
			if _, err := tx.StageMapping.Update().
				Where(
					stagemapping.IntegrationID(integrationID),
					stagemapping.ProposalStatus(m.ProposalStatus),
				).
				SetExternalStageID(m.ExternalStageID).
				SetExternalStageName(m.ExternalStageName).
				Save(ctx); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("failed to update stage mapping: %w", err)
			}
			continue
		}
		seen[m.ProposalStatus] = true
		if _, err := tx.StageMapping.Create().
			SetIntegrationID(integrationID).
			SetProposalStatus(m.ProposalStatus).
			SetExternalStageID(m.ExternalStageID).
			SetExternalStageName(m.ExternalStageName).
			Save(ctx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to create stage mapping: %w", err)
		}
	}

	return tx.Commit()
}

// List returns all mappings configured for an integration.
func (s *StageMappingStore) List(ctx context.Context, integrationID int) ([]*ent.StageMapping, error) {
	mappings, err := s.db.StageMapping.Query().
		Where(stagemapping.IntegrationID(integrationID)).
		Order(ent.Asc(stagemapping.FieldProposalStatus)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stage mappings: %w", err)
	}
	return mappings, nil
}

// StageForStatus resolves the external stage for an internal status,
// applying the built-in signed fallback when no explicit mapping exists.
func (s *StageMappingStore) StageForStatus(ctx context.Context, integrationID int, provider Provider, status string) (Stage, error) {
	m, err := s.db.StageMapping.Query().
		Where(
			stagemapping.IntegrationID(integrationID),
			stagemapping.ProposalStatus(status),
		).
		Only(ctx)
	if err == nil {
		return Stage{ID: m.ExternalStageID, Name: m.ExternalStageName}, nil
	}
	if !ent.IsNotFound(err) {
		return Stage{}, fmt.Errorf("failed to query stage mapping: %w", err)
	}

	if status == StatusSigned {
		if stage, ok := defaultSignedStage[provider]; ok {
			return stage, nil
		}
	}
	return Stage{}, fmt.Errorf("%w: status %q", ErrNoMapping, status)
}

// StatusForStage resolves the internal status for an external stage,
// matching by stage id first and falling back to the display name, since
// some providers report one or the other depending on the event source.
func (s *StageMappingStore) StatusForStage(ctx context.Context, integrationID int, stageID, stageName string) (string, error) {
	if stageID != "" {
		m, err := s.db.StageMapping.Query().
			Where(
				stagemapping.IntegrationID(integrationID),
				stagemapping.ExternalStageID(stageID),
			).
			First(ctx)
		if err == nil {
			return m.ProposalStatus, nil
		}
		if !ent.IsNotFound(err) {
			return "", fmt.Errorf("failed to query stage mapping: %w", err)
		}
	}

	if stageName != "" {
		m, err := s.db.StageMapping.Query().
			Where(
				stagemapping.IntegrationID(integrationID),
				stagemapping.ExternalStageName(stageName),
			).
			First(ctx)
		if err == nil {
			return m.ProposalStatus, nil
		}
		if !ent.IsNotFound(err) {
			return "", fmt.Errorf("failed to query stage mapping: %w", err)
		}
	}

	return "", fmt.Errorf("%w: stage %q", ErrNoMapping, stageID)
}
