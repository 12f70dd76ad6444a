package proposals

import (
	"context"
	"fmt"
	"time"

	"github.com/dealpage/dealpage/ent"
	"github.com/dealpage/dealpage/ent/proposal"
	"github.com/dealpage/dealpage/pkg/crmsync"
	"github.com/dealpage/dealpage/pkg/logger"
)

// Service handles proposal operations. Status changes feed the outbound
// CRM sync coordinator.
type Service struct {
	client *ent.Client
	syncer *crmsync.Syncer
	log    logger.Logger
}

// NewService creates a new proposal service. syncer may be nil when CRM
// sync is not wired (tests).
func NewService(client *ent.Client, syncer *crmsync.Syncer, log logger.Logger) *Service {
	return &Service{
		client: client,
		syncer: syncer,
		log:    log,
	}
}

// CreateProposalRequest represents a request to create a new proposal.
type CreateProposalRequest struct {
	Title    string  `json:"title" validate:"required,min=1,max=255"`
	Amount   float64 `json:"amount" validate:"gte=0"`
	Currency string  `json:"currency" validate:"omitempty,len=3"`
}

// UpdateProposalRequest represents a request to update a proposal.
type UpdateProposalRequest struct {
	Title  *string  `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Amount *float64 `json:"amount,omitempty" validate:"omitempty,gte=0"`
}

// UpdateStatusRequest represents a status transition request.
type UpdateStatusRequest struct {
	Status            string `json:"status" validate:"required,oneof=draft sent viewed approved rejected signed expired"`
	SignedDocumentURL string `json:"signed_document_url,omitempty" validate:"omitempty,max=2048"`
}

// ProposalResponse represents a proposal response.
type ProposalResponse struct {
	ID                int       `json:"id"`
	UserID            int       `json:"user_id"`
	Title             string    `json:"title"`
	Amount            float64   `json:"amount"`
	Currency          string    `json:"currency"`
	Status            string    `json:"status"`
	SignedDocumentURL string    `json:"signed_document_url,omitempty"`
	StatusChangedAt   time.Time `json:"status_changed_at"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func toResponse(p *ent.Proposal) *ProposalResponse {
	return &ProposalResponse{
		ID:                p.ID,
		UserID:            p.UserID,
		Title:             p.Title,
		Amount:            p.Amount,
		Currency:          p.Currency,
		Status:            string(p.Status),
		SignedDocumentURL: p.SignedDocumentURL,
		StatusChangedAt:   p.StatusChangedAt,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// CreateProposal creates a new draft proposal.
func (s *Service) CreateProposal(ctx context.Context, userID int, req CreateProposalRequest) (*ProposalResponse, error) {
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	p, err := s.client.Proposal.
		Create().
		SetUserID(userID).
		SetTitle(req.Title).
		SetAmount(req.Amount).
		SetCurrency(currency).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create proposal: %w", err)
	}
	return toResponse(p), nil
}

// GetProposal retrieves a proposal owned by the user.
func (s *Service) GetProposal(ctx context.Context, userID, proposalID int) (*ProposalResponse, error) {
	p, err := s.get(ctx, userID, proposalID)
	if err != nil {
		return nil, err
	}
	return toResponse(p), nil
}

// ListProposals retrieves the user's proposals, newest first.
func (s *Service) ListProposals(ctx context.Context, userID int) ([]*ProposalResponse, error) {
	props, err := s.client.Proposal.
		Query().
		Where(proposal.UserID(userID)).
		Order(ent.Desc(proposal.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}

	responses := make([]*ProposalResponse, len(props))
	for i, p := range props {
		responses[i] = toResponse(p)
	}
	return responses, nil
}

// UpdateProposal updates title and amount.
func (s *Service) UpdateProposal(ctx context.Context, userID, proposalID int, req UpdateProposalRequest) (*ProposalResponse, error) {
	p, err := s.get(ctx, userID, proposalID)
	if err != nil {
		return nil, err
	}

	update := p.Update()
	if req.Title != nil {
		update.SetTitle(*req.Title)
	}
	if req.Amount != nil {
		update.SetAmount(*req.Amount)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update proposal: %w", err)
	}
	return toResponse(updated), nil
}

// UpdateStatus transitions the proposal and pushes the change to linked
// CRM deals in the background. The caller gets the new state immediately;
// sync outcomes land on the integration record and in the audit log.
func (s *Service) UpdateStatus(ctx context.Context, userID, proposalID int, req UpdateStatusRequest) (*ProposalResponse, error) {
	p, err := s.get(ctx, userID, proposalID)
	if err != nil {
		return nil, err
	}

	update := p.Update().
		SetStatus(proposal.Status(req.Status)).
		SetStatusChangedAt(time.Now())
	if req.SignedDocumentURL != "" {
		update.SetSignedDocumentURL(req.SignedDocumentURL)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update proposal status: %w", err)
	}

	if s.syncer != nil {
		go func() {
			syncCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			results, err := s.syncer.TriggerOnEvent(syncCtx, updated.ID, req.Status)
			if err != nil {
				s.log.Error("CRM sync trigger failed",
					"proposal_id", updated.ID, "status", req.Status, "error", err)
				return
			}
			for _, r := range results {
				if r.Failed() {
					s.log.Warn("CRM sync partial failure",
						"proposal_id", updated.ID, "provider", r.Provider, "errors", r.Errors)
				}
			}
		}()
	}
	return toResponse(updated), nil
}

// DeleteProposal removes a proposal. Deal links cascade through the
// schema's foreign keys.
func (s *Service) DeleteProposal(ctx context.Context, userID, proposalID int) error {
	p, err := s.get(ctx, userID, proposalID)
	if err != nil {
		return err
	}
	if err := s.client.Proposal.DeleteOne(p).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete proposal: %w", err)
	}
	return nil
}

func (s *Service) get(ctx context.Context, userID, proposalID int) (*ent.Proposal, error) {
	p, err := s.client.Proposal.
		Query().
		Where(proposal.ID(proposalID), proposal.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("proposal not found")
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}
	return p, nil
}
