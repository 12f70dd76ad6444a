package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewService_ConsoleMode(t *testing.T) {
	svc := NewService("from@example.com", "DealPage", "https://app.dealpage.com", "")
	assert.False(t, svc.useSendGrid)
	assert.Equal(t, "from@example.com", svc.fromEmail)
	assert.Equal(t, "DealPage", svc.fromName)
	assert.Equal(t, "https://app.dealpage.com", svc.baseURL)
}

func TestNewService_SendGridMode(t *testing.T) {
	svc := NewService("from@example.com", "DealPage", "https://app.dealpage.com", "SG.test-key")
	assert.True(t, svc.useSendGrid)
	assert.Equal(t, "SG.test-key", svc.sendGridKey)
}

func TestSendVerificationEmail_ConsoleMode(t *testing.T) {
	svc := NewService("from@example.com", "DealPage", "https://app.dealpage.com", "")

	err := svc.SendVerificationEmail("user@example.com", "Test User", "abc123token")
	assert.NoError(t, err, "Console mode should not error")
}

func TestSendPasswordResetEmail_ConsoleMode(t *testing.T) {
	svc := NewService("from@example.com", "DealPage", "https://app.dealpage.com", "")

	err := svc.SendPasswordResetEmail("user@example.com", "Test User", "reset-token-123")
	assert.NoError(t, err, "Console mode should not error")
}

func TestSendCRMReconnectEmail_ConsoleMode(t *testing.T) {
	svc := NewService("from@example.com", "DealPage", "https://app.dealpage.com", "")

	err := svc.SendCRMReconnectEmail("user@example.com", "Test User", "HubSpot")
	assert.NoError(t, err, "Console mode should not error")
}

func TestSendProposalStatusEmail_ConsoleMode(t *testing.T) {
	svc := NewService("from@example.com", "DealPage", "https://app.dealpage.com", "")

	err := svc.SendProposalStatusEmail("user@example.com", "Test User", "Acme Rollout", "signed", 42)
	assert.NoError(t, err, "Console mode should not error")
}
