package crm

import (
	"context"
	"fmt"

	"github.com/dealpage/dealpage/ent"
	"github.com/dealpage/dealpage/ent/crmintegration"
	"github.com/dealpage/dealpage/ent/deallink"
)

// LinkRegistry maintains the proposal-to-external-deal associations used by
// both sync directions. Writes enforce exactly one active link per
// (integration, proposal) pair.
type LinkRegistry struct {
	db *ent.Client
}

// NewLinkRegistry creates a link registry.
func NewLinkRegistry(db *ent.Client) *LinkRegistry {
	return &LinkRegistry{db: db}
}

// Link associates a proposal with an external deal, replacing any existing
// link for the same (integration, proposal) pair.
func (r *LinkRegistry) Link(ctx context.Context, integrationID, proposalID int, externalDealID string) (*ent.DealLink, error) {
	existing, err := r.db.DealLink.Query().
		Where(
			deallink.IntegrationID(integrationID),
			deallink.ProposalID(proposalID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query deal link: %w", err)
	}

	if existing != nil {
		updated, err := existing.Update().
			SetExternalDealID(externalDealID).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update deal link: %w", err)
		}
		return updated, nil
	}

	created, err := r.db.DealLink.Create().
		SetIntegrationID(integrationID).
		SetProposalID(proposalID).
		SetExternalDealID(externalDealID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create deal link: %w", err)
	}
	return created, nil
}

// FindByProposal returns all links for a proposal across providers, with
// the owning integration loaded.
func (r *LinkRegistry) FindByProposal(ctx context.Context, proposalID int) ([]*ent.DealLink, error) {
	links, err := r.db.DealLink.Query().
		Where(deallink.ProposalID(proposalID)).
		WithIntegration().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query deal links: %w", err)
	}
	return links, nil
}

// FindByExternalDeal resolves the link owning an external deal id under a
// provider, or nil when none exists.
func (r *LinkRegistry) FindByExternalDeal(ctx context.Context, provider Provider, externalDealID string) (*ent.DealLink, error) {
	link, err := r.db.DealLink.Query().
		Where(
			deallink.ExternalDealID(externalDealID),
			deallink.HasIntegrationWith(
				crmintegration.ProviderEQ(crmintegration.Provider(provider)),
			),
		).
		WithIntegration().
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query deal link: %w", err)
	}
	return link, nil
}

// Unlink removes the link for a (integration, proposal) pair.
func (r *LinkRegistry) Unlink(ctx context.Context, integrationID, proposalID int) error {
	_, err := r.db.DealLink.Delete().
		Where(
			deallink.IntegrationID(integrationID),
			deallink.ProposalID(proposalID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove deal link: %w", err)
	}
	return nil
}

// UnlinkExternal removes the link for an external deal id, used when a
// provider reports the deal deleted.
func (r *LinkRegistry) UnlinkExternal(ctx context.Context, integrationID int, externalDealID string) error {
	_, err := r.db.DealLink.Delete().
		Where(
			deallink.IntegrationID(integrationID),
			deallink.ExternalDealID(externalDealID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove deal link: %w", err)
	}
	return nil
}

// UnlinkAll removes every link under an integration.
func (r *LinkRegistry) UnlinkAll(ctx context.Context, integrationID int) error {
	_, err := r.db.DealLink.Delete().
		Where(deallink.IntegrationID(integrationID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove deal links: %w", err)
	}
	return nil
}
