package slack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockSlackClient simulates Slack webhook API
type MockSlackClient struct {
	shouldFail bool
	messages   []Message
}

func (m *MockSlackClient) SendMessage(ctx context.Context, msg Message) error {
	if m.shouldFail {
		return ErrSlackSendFailed
	}
	m.messages = append(m.messages, msg)
	return nil
}

func (m *MockSlackClient) GetMessages() []Message {
	return m.messages
}

func TestNewUserNotification(t *testing.T) {
	client := &MockSlackClient{}
	service := NewService(client)

	t.Run("Success - Send new user notification", func(t *testing.T) {
		err := service.NotifyNewUser(context.Background(), "John Doe", "john@example.com")

		require.NoError(t, err)
		assert.Len(t, client.messages, 1)

		msg := client.messages[0]
		assert.Contains(t, msg.Text, "New User")
		assert.Contains(t, msg.Text, "John Doe")
		assert.Contains(t, msg.Text, "john@example.com")
	})

	t.Run("Failure - Slack API error", func(t *testing.T) {
		failingClient := &MockSlackClient{shouldFail: true}
		failingService := NewService(failingClient)

		err := failingService.NotifyNewUser(context.Background(), "Test", "test@example.com")

		require.Error(t, err)
		assert.Equal(t, ErrSlackSendFailed, err)
	})
}

func TestProposalSignedNotification(t *testing.T) {
	client := &MockSlackClient{}
	service := NewService(client)

	t.Run("Success - Send proposal signed notification", func(t *testing.T) {
		err := service.NotifyProposalSigned(context.Background(), "user@example.com", "Website Redesign", 12500, "USD")

		require.NoError(t, err)
		assert.Len(t, client.messages, 1)

		msg := client.messages[0]
		assert.Contains(t, msg.Text, "Proposal Signed")
		assert.Contains(t, msg.Text, "Website Redesign")
		assert.Contains(t, msg.Text, "USD")
		assert.Contains(t, msg.Text, "12500")
		assert.Contains(t, msg.Text, "user@example.com")
	})
}

func TestIntegrationConnectedNotification(t *testing.T) {
	client := &MockSlackClient{}
	service := NewService(client)

	t.Run("Success - Send integration connected notification", func(t *testing.T) {
		err := service.NotifyIntegrationConnected(context.Background(), "user@example.com", "hubspot")

		require.NoError(t, err)
		assert.Len(t, client.messages, 1)

		msg := client.messages[0]
		assert.Contains(t, msg.Text, "CRM Connected")
		assert.Contains(t, msg.Text, "user@example.com")
		assert.Contains(t, msg.Text, "hubspot")
	})
}

func TestIntegrationDisconnectedNotification(t *testing.T) {
	client := &MockSlackClient{}
	service := NewService(client)

	t.Run("Success - Send disconnect notification with reason", func(t *testing.T) {
		err := service.NotifyIntegrationDisconnected(context.Background(), "user@example.com", "salesforce", "refresh token revoked")

		require.NoError(t, err)
		assert.Len(t, client.messages, 1)

		msg := client.messages[0]
		assert.Contains(t, msg.Text, "CRM Disconnected")
		assert.Contains(t, msg.Text, "user@example.com")
		assert.Contains(t, msg.Text, "salesforce")
		assert.Contains(t, msg.Text, "refresh token revoked")
	})

	t.Run("Success - Disconnect without reason", func(t *testing.T) {
		client := &MockSlackClient{}
		service := NewService(client)

		err := service.NotifyIntegrationDisconnected(context.Background(), "user@example.com", "zoho", "")

		require.NoError(t, err)
		assert.Len(t, client.messages, 1)

		msg := client.messages[0]
		assert.Contains(t, msg.Text, "CRM Disconnected")
		assert.NotContains(t, msg.Text, "Reason:")
	})
}

func TestSyncFailureNotification(t *testing.T) {
	client := &MockSlackClient{}
	service := NewService(client)

	t.Run("Success - Send sync failure notification", func(t *testing.T) {
		err := service.NotifySyncFailure(context.Background(), "pipedrive", 42, "stage update rejected")

		require.NoError(t, err)
		assert.Len(t, client.messages, 1)

		msg := client.messages[0]
		assert.Contains(t, msg.Text, "Sync Failure")
		assert.Contains(t, msg.Text, "pipedrive")
		assert.Contains(t, msg.Text, "42")
		assert.Contains(t, msg.Text, "stage update rejected")
	})
}

func TestIsEnabled(t *testing.T) {
	t.Run("Enabled when client is provided", func(t *testing.T) {
		client := &MockSlackClient{}
		service := NewService(client)

		assert.True(t, service.IsEnabled())
	})

	t.Run("Disabled when client is nil", func(t *testing.T) {
		service := NewService(nil)

		assert.False(t, service.IsEnabled())

		// All notifications become no-ops
		err := service.NotifyNewUser(context.Background(), "Test", "test@example.com")
		assert.NoError(t, err)
	})
}
