package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrSlackSendFailed indicates the Slack webhook rejected or never received
// the message.
var ErrSlackSendFailed = errors.New("failed to send Slack message")

// Message is a Slack incoming-webhook payload
type Message struct {
	Text string `json:"text"`
}

// Client sends messages to Slack
type Client interface {
	SendMessage(ctx context.Context, msg Message) error
}

// WebhookClient posts messages to a Slack incoming webhook URL
type WebhookClient struct {
	webhookURL string
	httpClient *http.Client
}

// NewWebhookClient creates a client for the given incoming webhook URL
func NewWebhookClient(webhookURL string) *WebhookClient {
	return &WebhookClient{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SendMessage posts the message to the configured webhook
func (c *WebhookClient) SendMessage(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return ErrSlackSendFailed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return ErrSlackSendFailed
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ErrSlackSendFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ErrSlackSendFailed
	}
	return nil
}

// Service sends internal team notifications about notable account and sync
// events. A nil client disables all notifications.
type Service struct {
	client Client
}

// NewService creates a new Slack notification service
func NewService(client Client) *Service {
	return &Service{client: client}
}

// IsEnabled reports whether notifications will actually be sent
func (s *Service) IsEnabled() bool {
	return s.client != nil
}

// NotifyNewUser announces a new user registration
func (s *Service) NotifyNewUser(ctx context.Context, name, email string) error {
	if !s.IsEnabled() {
		return nil
	}
	return s.client.SendMessage(ctx, Message{
		Text: fmt.Sprintf("🎉 New User: %s (%s) just registered", name, email),
	})
}

// NotifyProposalSigned announces a proposal reaching signed status
func (s *Service) NotifyProposalSigned(ctx context.Context, userEmail, proposalTitle string, amount float64, currency string) error {
	if !s.IsEnabled() {
		return nil
	}
	return s.client.SendMessage(ctx, Message{
		Text: fmt.Sprintf("✍️ Proposal Signed: %q (%s %.2f) by %s", proposalTitle, currency, amount, userEmail),
	})
}

// NotifyIntegrationConnected announces a new CRM connection
func (s *Service) NotifyIntegrationConnected(ctx context.Context, userEmail, provider string) error {
	if !s.IsEnabled() {
		return nil
	}
	return s.client.SendMessage(ctx, Message{
		Text: fmt.Sprintf("🔌 CRM Connected: %s connected %s", userEmail, provider),
	})
}

// NotifyIntegrationDisconnected announces an integration force-disconnect,
// with the reason when one is known.
func (s *Service) NotifyIntegrationDisconnected(ctx context.Context, userEmail, provider, reason string) error {
	if !s.IsEnabled() {
		return nil
	}
	text := fmt.Sprintf("⚠️ CRM Disconnected: %s lost its %s connection", userEmail, provider)
	if reason != "" {
		text += fmt.Sprintf(" Reason: %s", reason)
	}
	return s.client.SendMessage(ctx, Message{Text: text})
}

// NotifySyncFailure announces a proposal sync that failed outright
func (s *Service) NotifySyncFailure(ctx context.Context, provider string, proposalID int, errMsg string) error {
	if !s.IsEnabled() {
		return nil
	}
	return s.client.SendMessage(ctx, Message{
		Text: fmt.Sprintf("❌ Sync Failure: proposal %d failed to sync to %s: %s", proposalID, provider, errMsg),
	})
}
