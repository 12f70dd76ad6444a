package proposals

import (
	"context"
	"testing"
	"time"

	"github.com/dealpage/dealpage/ent"
	"github.com/dealpage/dealpage/ent/enttest"
	"github.com/dealpage/dealpage/pkg/logger"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func createTestUser(t *testing.T, client *ent.Client, email string) *ent.User {
	t.Helper()
	user, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash("$2a$10$abcdefghijklmnopqrstuv").
		SetName("Proposal Tester").
		Save(context.Background())
	require.NoError(t, err)
	return user
}

func TestProposalLifecycle(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil, logger.New("error"))
	owner := createTestUser(t, client, "owner@example.com")
	stranger := createTestUser(t, client, "stranger@example.com")

	t.Run("Success - Create defaults to draft and USD", func(t *testing.T) {
		resp, err := service.CreateProposal(ctx, owner.ID, CreateProposalRequest{
			Title:  "Website Redesign",
			Amount: 15000,
		})

		require.NoError(t, err)
		assert.Equal(t, "draft", resp.Status)
		assert.Equal(t, "USD", resp.Currency)
		assert.Equal(t, 15000.0, resp.Amount)
	})

	t.Run("Success - Explicit currency kept", func(t *testing.T) {
		resp, err := service.CreateProposal(ctx, owner.ID, CreateProposalRequest{
			Title:    "EU Contract",
			Amount:   9000,
			Currency: "EUR",
		})

		require.NoError(t, err)
		assert.Equal(t, "EUR", resp.Currency)
	})

	t.Run("Success - List is newest first and owner scoped", func(t *testing.T) {
		_, err := service.CreateProposal(ctx, stranger.ID, CreateProposalRequest{Title: "Not Yours"})
		require.NoError(t, err)

		resp, err := service.ListProposals(ctx, owner.ID)

		require.NoError(t, err)
		require.Len(t, resp, 2)
		for _, p := range resp {
			assert.Equal(t, owner.ID, p.UserID)
		}
	})

	t.Run("Error - Get enforces ownership", func(t *testing.T) {
		created, err := service.CreateProposal(ctx, owner.ID, CreateProposalRequest{Title: "Private"})
		require.NoError(t, err)

		_, err = service.GetProposal(ctx, stranger.ID, created.ID)

		assert.Error(t, err)
	})

	t.Run("Success - Partial update", func(t *testing.T) {
		created, err := service.CreateProposal(ctx, owner.ID, CreateProposalRequest{
			Title:  "Before",
			Amount: 100,
		})
		require.NoError(t, err)

		newTitle := "After"
		updated, err := service.UpdateProposal(ctx, owner.ID, created.ID, UpdateProposalRequest{
			Title: &newTitle,
		})

		require.NoError(t, err)
		assert.Equal(t, "After", updated.Title)
		assert.Equal(t, 100.0, updated.Amount, "amount untouched by a title-only update")
	})

	t.Run("Success - Status transition stamps the change time", func(t *testing.T) {
		created, err := service.CreateProposal(ctx, owner.ID, CreateProposalRequest{Title: "Moving"})
		require.NoError(t, err)

		before := time.Now()
		updated, err := service.UpdateStatus(ctx, owner.ID, created.ID, UpdateStatusRequest{
			Status: "sent",
		})

		require.NoError(t, err)
		assert.Equal(t, "sent", updated.Status)
		assert.False(t, updated.StatusChangedAt.Before(before.Add(-time.Second)))
	})

	t.Run("Success - Signing records the document location", func(t *testing.T) {
		created, err := service.CreateProposal(ctx, owner.ID, CreateProposalRequest{Title: "Closing"})
		require.NoError(t, err)

		updated, err := service.UpdateStatus(ctx, owner.ID, created.ID, UpdateStatusRequest{
			Status:            "signed",
			SignedDocumentURL: "s3://dealpage-documents/signed/abc.pdf",
		})

		require.NoError(t, err)
		assert.Equal(t, "signed", updated.Status)
		assert.Equal(t, "s3://dealpage-documents/signed/abc.pdf", updated.SignedDocumentURL)
	})

	t.Run("Success - Delete removes the proposal", func(t *testing.T) {
		created, err := service.CreateProposal(ctx, owner.ID, CreateProposalRequest{Title: "Doomed"})
		require.NoError(t, err)

		require.NoError(t, service.DeleteProposal(ctx, owner.ID, created.ID))

		_, err = service.GetProposal(ctx, owner.ID, created.ID)
		assert.Error(t, err)
	})

	t.Run("Error - Delete enforces ownership", func(t *testing.T) {
		created, err := service.CreateProposal(ctx, owner.ID, CreateProposalRequest{Title: "Guarded"})
		require.NoError(t, err)

		err = service.DeleteProposal(ctx, stranger.ID, created.ID)
		assert.Error(t, err)

		_, err = service.GetProposal(ctx, owner.ID, created.ID)
		assert.NoError(t, err)
	})
}
