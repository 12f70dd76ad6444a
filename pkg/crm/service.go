package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/dealpage/dealpage/ent"
	"github.com/dealpage/dealpage/ent/crmcontact"
	"github.com/dealpage/dealpage/ent/crmintegration"
	"github.com/dealpage/dealpage/ent/proposal"
	"github.com/dealpage/dealpage/pkg/cache"
	"github.com/dealpage/dealpage/pkg/logger"
)

// stageCacheTTL bounds how long provider stage lists are served from redis.
// Stage metadata changes rarely and the mapping UI reads it often.
const stageCacheTTL = 5 * time.Minute

// IntegrationInfo is the management API view of one integration.
type IntegrationInfo struct {
	Provider         string     `json:"provider"`
	Active           bool       `json:"active"`
	AccountID        string     `json:"account_id"`
	SyncDirection    string     `json:"sync_direction"`
	AutoSyncContacts bool       `json:"auto_sync_contacts"`
	StatusSyncEvents []string   `json:"status_sync_events"`
	LastSyncAt       *time.Time `json:"last_sync_at,omitempty"`
	ConnectedAt      time.Time  `json:"connected_at"`
}

// SyncConfigInput reconfigures an integration's sync behavior.
type SyncConfigInput struct {
	SyncDirection    string   `json:"sync_direction" validate:"omitempty,oneof=bidirectional outbound inbound"`
	AutoSyncContacts *bool    `json:"auto_sync_contacts"`
	StatusSyncEvents []string `json:"status_sync_events" validate:"omitempty,dive,oneof=sent approved signed"`
}

// Service exposes the CRM management operations behind the authenticated
// API: connect/disconnect, configuration, stage and contact listings, and
// deal creation/linking.
type Service struct {
	db       *ent.Client
	registry *Registry
	creds    *CredentialStore
	links    *LinkRegistry
	stages   *StageMappingStore
	cache    *cache.Client
	log      logger.Logger
}

// NewService creates the CRM management service. cache may be nil, in which
// case stage lists are fetched from the provider on every call.
func NewService(db *ent.Client, registry *Registry, creds *CredentialStore, links *LinkRegistry, stages *StageMappingStore, cacheClient *cache.Client, log logger.Logger) *Service {
	return &Service{
		db:       db,
		registry: registry,
		creds:    creds,
		links:    links,
		stages:   stages,
		cache:    cacheClient,
		log:      log,
	}
}

// Registry exposes the adapter registry for collaborators wired at startup.
func (s *Service) Registry() *Registry { return s.registry }

// Credentials exposes the credential store.
func (s *Service) Credentials() *CredentialStore { return s.creds }

// Links exposes the deal link registry.
func (s *Service) Links() *LinkRegistry { return s.links }

// StageMappings exposes the stage mapping store.
func (s *Service) StageMappings() *StageMappingStore { return s.stages }

// ListIntegrations returns the user's integrations across all providers.
func (s *Service) ListIntegrations(ctx context.Context, userID int) ([]IntegrationInfo, error) {
	integrations, err := s.db.CRMIntegration.Query().
		Where(crmintegration.UserID(userID)).
		Order(ent.Asc(crmintegration.FieldProvider)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list integrations: %w", err)
	}

	infos := make([]IntegrationInfo, 0, len(integrations))
	for _, integ := range integrations {
		infos = append(infos, IntegrationInfo{
			Provider:         string(integ.Provider),
			Active:           integ.Active,
			AccountID:        integ.AccountID,
			SyncDirection:    string(integ.SyncDirection),
			AutoSyncContacts: integ.AutoSyncContacts,
			StatusSyncEvents: integ.StatusSyncEvents,
			LastSyncAt:       integ.LastSyncAt,
			ConnectedAt:      integ.CreatedAt,
		})
	}
	return infos, nil
}

// AuthorizationURL builds the provider consent URL with the user id carried
// as opaque state.
func (s *Service) AuthorizationURL(userID int, provider Provider) (string, error) {
	adapter, err := s.registry.ForProvider(provider)
	if err != nil {
		return "", err
	}
	return adapter.AuthorizationURL(strconv.Itoa(userID)), nil
}

// Connect completes the OAuth callback: it exchanges the code and persists
// the resulting integration.
func (s *Service) Connect(ctx context.Context, userID int, provider Provider, code string) (*ent.CRMIntegration, error) {
	adapter, err := s.registry.ForProvider(provider)
	if err != nil {
		return nil, err
	}

	tokens, err := adapter.ExchangeCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed for %s: %w", provider, err)
	}

	integ, err := s.creds.StoreTokens(ctx, userID, provider, tokens)
	if err != nil {
		return nil, err
	}

	s.log.Info("CRM integration connected",
		"user_id", userID, "provider", provider, "account_id", integ.AccountID)
	return integ, nil
}

// Disconnect revokes tokens at the provider (best-effort) and soft-disables
// the integration. Deal links are removed; stage mappings are kept for a
// future reconnect.
func (s *Service) Disconnect(ctx context.Context, userID int, provider Provider) error {
	integ, err := s.integration(ctx, userID, provider)
	if err != nil {
		return err
	}

	if integ.RefreshToken != "" {
		adapter, err := s.registry.ForProvider(provider)
		if err != nil {
			return err
		}
		// Revocation is a courtesy, not a precondition.
		if err := adapter.Revoke(ctx, integ.RefreshToken); err != nil {
			s.log.Warn("CRM token revocation failed",
				"user_id", userID, "provider", provider, "error", err)
		}
	}

	if err := s.links.UnlinkAll(ctx, integ.ID); err != nil {
		return err
	}
	return s.creds.MarkDisconnected(ctx, userID, provider)
}

// ConfigureSync updates direction, contact auto-sync and the outbound
// trigger event list.
func (s *Service) ConfigureSync(ctx context.Context, userID int, provider Provider, input SyncConfigInput) (*ent.CRMIntegration, error) {
	integ, err := s.integration(ctx, userID, provider)
	if err != nil {
		return nil, err
	}

	update := integ.Update()
	if input.SyncDirection != "" {
		update.SetSyncDirection(crmintegration.SyncDirection(input.SyncDirection))
	}
	if input.AutoSyncContacts != nil {
		update.SetAutoSyncContacts(*input.AutoSyncContacts)
	}
	if input.StatusSyncEvents != nil {
		update.SetStatusSyncEvents(input.StatusSyncEvents)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update sync config: %w", err)
	}
	return updated, nil
}

// ConfigureStageMappings replaces the integration's stage mapping list.
func (s *Service) ConfigureStageMappings(ctx context.Context, userID int, provider Provider, mappings []StageMappingInput) error {
	integ, err := s.integration(ctx, userID, provider)
	if err != nil {
		return err
	}
	return s.stages.Replace(ctx, integ.ID, mappings)
}

// ListStageMappings returns the configured mappings.
func (s *Service) ListStageMappings(ctx context.Context, userID int, provider Provider) ([]*ent.StageMapping, error) {
	integ, err := s.integration(ctx, userID, provider)
	if err != nil {
		return nil, err
	}
	return s.stages.List(ctx, integ.ID)
}

// ListStages returns the provider's pipeline stages. Best-effort: provider
// errors surface as an empty list so the mapping UI stays usable.
func (s *Service) ListStages(ctx context.Context, userID int, provider Provider) ([]Stage, error) {
	cacheKey := fmt.Sprintf("crm:stages:%d:%s", userID, provider)
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, cacheKey); err == nil {
			var stages []Stage
			if err := json.Unmarshal([]byte(raw), &stages); err == nil {
				return stages, nil
			}
		}
	}

	auth, err := s.creds.GetValidToken(ctx, userID, provider)
	if err != nil {
		return nil, err
	}
	adapter, err := s.registry.ForProvider(provider)
	if err != nil {
		return nil, err
	}

	stages, err := adapter.ListStages(ctx, auth)
	if err != nil {
		s.log.Warn("stage listing failed", "provider", provider, "error", err)
		return []Stage{}, nil
	}

	if s.cache != nil && len(stages) > 0 {
		if data, err := json.Marshal(stages); err == nil {
			_ = s.cache.Set(ctx, cacheKey, string(data), stageCacheTTL)
		}
	}
	return stages, nil
}

// ListDeals returns the provider's deals for the linking UI.
func (s *Service) ListDeals(ctx context.Context, userID int, provider Provider) ([]Deal, error) {
	auth, err := s.creds.GetValidToken(ctx, userID, provider)
	if err != nil {
		return nil, err
	}
	adapter, err := s.registry.ForProvider(provider)
	if err != nil {
		return nil, err
	}
	return adapter.ListDeals(ctx, auth)
}

// ListContacts returns the provider's contacts.
func (s *Service) ListContacts(ctx context.Context, userID int, provider Provider) ([]Contact, error) {
	auth, err := s.creds.GetValidToken(ctx, userID, provider)
	if err != nil {
		return nil, err
	}
	adapter, err := s.registry.ForProvider(provider)
	if err != nil {
		return nil, err
	}
	return adapter.ListContacts(ctx, auth)
}

// ImportContacts fetches provider contacts and mirrors them locally,
// upserting on (integration, external id). Returns the number imported.
func (s *Service) ImportContacts(ctx context.Context, userID int, provider Provider) (int, error) {
	integ, err := s.integration(ctx, userID, provider)
	if err != nil {
		return 0, err
	}
	contacts, err := s.ListContacts(ctx, userID, provider)
	if err != nil {
		return 0, err
	}

	imported := 0
	for _, ct := range contacts {
		if err := s.mirrorContact(ctx, integ.ID, ct); err != nil {
			s.log.Warn("contact mirror failed",
				"provider", provider, "contact_id", ct.ID, "error", err)
			continue
		}
		imported++
	}

	if _, err := integ.Update().SetLastSyncAt(time.Now()).Save(ctx); err != nil {
		s.log.Warn("failed to stamp last sync", "provider", provider, "error", err)
	}
	return imported, nil
}

func (s *Service) mirrorContact(ctx context.Context, integrationID int, ct Contact) error {
	existing, err := s.db.CRMContact.Query().
		Where(
			crmcontact.IntegrationID(integrationID),
			crmcontact.ExternalContactID(ct.ID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return err
	}

	if existing != nil {
		return existing.Update().
			SetEmail(ct.Email).
			SetFirstName(ct.FirstName).
			SetLastName(ct.LastName).
			SetCompany(ct.Company).
			SetPhone(ct.Phone).
			Exec(ctx)
	}

	return s.db.CRMContact.Create().
		SetIntegrationID(integrationID).
		SetExternalContactID(ct.ID).
		SetEmail(ct.Email).
		SetFirstName(ct.FirstName).
		SetLastName(ct.LastName).
		SetCompany(ct.Company).
		SetPhone(ct.Phone).
		Exec(ctx)
}

// CreateDealFromProposal creates a provider deal mirroring the proposal and
// links the two. The initial stage comes from the mapping for the
// proposal's current status when one exists.
func (s *Service) CreateDealFromProposal(ctx context.Context, userID int, provider Provider, proposalID int) (*ent.DealLink, *Deal, error) {
	prop, err := s.db.Proposal.Query().
		Where(proposal.ID(proposalID), proposal.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, fmt.Errorf("proposal %d not found", proposalID)
		}
		return nil, nil, fmt.Errorf("failed to load proposal: %w", err)
	}

	integ, err := s.integration(ctx, userID, provider)
	if err != nil {
		return nil, nil, err
	}

	auth, err := s.creds.GetValidToken(ctx, userID, provider)
	if err != nil {
		return nil, nil, err
	}
	adapter, err := s.registry.ForProvider(provider)
	if err != nil {
		return nil, nil, err
	}

	deal := Deal{
		Name:   prop.Title,
		Amount: prop.Amount,
	}
	if stage, err := s.stages.StageForStatus(ctx, integ.ID, provider, string(prop.Status)); err == nil {
		deal.Stage = stage.ID
	}

	created, err := adapter.CreateDeal(ctx, auth, deal)
	if err != nil {
		return nil, nil, fmt.Errorf("deal creation failed: %w", err)
	}

	link, err := s.links.Link(ctx, integ.ID, proposalID, created.ID)
	if err != nil {
		return nil, nil, err
	}
	return link, created, nil
}

// LinkDeal associates a proposal with an existing provider deal after
// verifying the deal exists.
func (s *Service) LinkDeal(ctx context.Context, userID int, provider Provider, proposalID int, externalDealID string) (*ent.DealLink, error) {
	exists, err := s.db.Proposal.Query().
		Where(proposal.ID(proposalID), proposal.UserID(userID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check proposal: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("proposal %d not found", proposalID)
	}

	integ, err := s.integration(ctx, userID, provider)
	if err != nil {
		return nil, err
	}

	auth, err := s.creds.GetValidToken(ctx, userID, provider)
	if err != nil {
		return nil, err
	}
	adapter, err := s.registry.ForProvider(provider)
	if err != nil {
		return nil, err
	}
	if _, err := adapter.GetDeal(ctx, auth, externalDealID); err != nil {
		return nil, fmt.Errorf("deal %s not reachable: %w", externalDealID, err)
	}

	return s.links.Link(ctx, integ.ID, proposalID, externalDealID)
}

func (s *Service) integration(ctx context.Context, userID int, provider Provider) (*ent.CRMIntegration, error) {
	integ, err := s.db.CRMIntegration.Query().
		Where(
			crmintegration.UserID(userID),
			crmintegration.ProviderEQ(crmintegration.Provider(provider)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: no %s integration", ErrUnauthenticated, provider)
		}
		return nil, fmt.Errorf("failed to query integration: %w", err)
	}
	return integ, nil
}
