package notify

import (
	"context"

	"github.com/dealpage/dealpage/ent"
	"github.com/dealpage/dealpage/pkg/email"
	"github.com/dealpage/dealpage/pkg/logger"
	"github.com/dealpage/dealpage/pkg/slack"
)

var providerNames = map[string]string{
	"hubspot":    "HubSpot",
	"salesforce": "Salesforce",
	"pipedrive":  "Pipedrive",
	"zoho":       "Zoho CRM",
}

// Service turns sync engine events into user-facing emails and internal
// Slack alerts. All sends are best-effort; a delivery failure never
// propagates back into sync processing.
type Service struct {
	client *ent.Client
	mailer *email.Service
	slack  *slack.Service
	log    logger.Logger
}

// New creates the notification service. slackService may be nil.
func New(client *ent.Client, mailer *email.Service, slackService *slack.Service, log logger.Logger) *Service {
	if slackService == nil {
		slackService = slack.NewService(nil)
	}
	return &Service{
		client: client,
		mailer: mailer,
		slack:  slackService,
		log:    log,
	}
}

// NotifyReconnectRequired emails the user after their CRM integration got
// disconnected by a failed token refresh, and alerts the team channel.
func (s *Service) NotifyReconnectRequired(ctx context.Context, userID int, provider string) {
	user, err := s.client.User.Get(ctx, userID)
	if err != nil {
		s.log.Warn("reconnect notification skipped, user lookup failed",
			"user_id", userID, "error", err)
		return
	}

	name := providerNames[provider]
	if name == "" {
		name = provider
	}
	if err := s.mailer.SendCRMReconnectEmail(user.Email, user.Name, name); err != nil {
		s.log.Warn("reconnect notification failed",
			"user_id", userID, "provider", provider, "error", err)
	}

	if err := s.slack.NotifyIntegrationDisconnected(ctx, user.Email, provider, "refresh token rejected"); err != nil {
		s.log.Warn("slack disconnect alert failed", "provider", provider, "error", err)
	}
}

// NotifyStatusChanged emails the proposal owner after an inbound CRM event
// changed the proposal's status. Signed proposals also get a team alert.
func (s *Service) NotifyStatusChanged(ctx context.Context, proposalID int, status string) {
	prop, err := s.client.Proposal.Get(ctx, proposalID)
	if err != nil {
		s.log.Warn("status notification skipped, proposal lookup failed",
			"proposal_id", proposalID, "error", err)
		return
	}
	user, err := s.client.User.Get(ctx, prop.UserID)
	if err != nil {
		s.log.Warn("status notification skipped, user lookup failed",
			"user_id", prop.UserID, "error", err)
		return
	}

	if err := s.mailer.SendProposalStatusEmail(user.Email, user.Name, prop.Title, status, prop.ID); err != nil {
		s.log.Warn("status notification failed",
			"proposal_id", proposalID, "error", err)
	}

	if status == "signed" {
		if err := s.slack.NotifyProposalSigned(ctx, user.Email, prop.Title, prop.Amount, prop.Currency); err != nil {
			s.log.Warn("slack signed alert failed", "proposal_id", proposalID, "error", err)
		}
	}
}
