package crm

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dealpage/dealpage/ent"
	"github.com/dealpage/dealpage/ent/crmintegration"
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
	user, err := client.User.
		Create().
		SetEmail(email).
		SetPasswordHash("$2a$10$abcdefghijklmnopqrstuv").
		SetName("Test User").
		Save(context.Background())
	require.NoError(t, err)
	return user
}

// stubAdapter implements Adapter with overridable behavior. Calls to
// methods without an override panic through the embedded nil interface.
type stubAdapter struct {
	Adapter
	provider  Provider
	refreshFn func(ctx context.Context, refreshToken string, meta AccountMetadata) (*TokenSet, error)
}

func (s *stubAdapter) Provider() Provider { return s.provider }

func (s *stubAdapter) Refresh(ctx context.Context, refreshToken string, meta AccountMetadata) (*TokenSet, error) {
	return s.refreshFn(ctx, refreshToken, meta)
}

func stubRegistry(hubspot Adapter) *Registry {
	return NewRegistryWithAdapters(
		hubspot,
		&stubAdapter{provider: ProviderSalesforce},
		&stubAdapter{provider: ProviderPipedrive},
		&stubAdapter{provider: ProviderZoho},
	)
}

type recordingNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (n *recordingNotifier) NotifyReconnectRequired(ctx context.Context, userID int, provider string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, provider)
}

func TestGetValidToken(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	testLog := logger.New("error")

	t.Run("Success - Fresh token skips refresh", func(t *testing.T) {
		user := createTestUser(t, client, "fresh@example.com")

		var refreshed int32
		adapter := &stubAdapter{
			provider: ProviderHubSpot,
			refreshFn: func(ctx context.Context, refreshToken string, meta AccountMetadata) (*TokenSet, error) {
				atomic.AddInt32(&refreshed, 1)
				return nil, ErrRefreshFailed
			},
		}
		store := NewCredentialStore(client, stubRegistry(adapter), nil, nil, testLog)

		expiresAt := time.Now().Add(1 * time.Hour)
		_, err := client.CRMIntegration.Create().
			SetUserID(user.ID).
			SetProvider(crmintegration.ProviderHubspot).
			SetAccessToken("fresh-access").
			SetRefreshToken("refresh-1").
			SetTokenExpiresAt(expiresAt).
			SetAccountID("12345").
			Save(ctx)
		require.NoError(t, err)

		auth, err := store.GetValidToken(ctx, user.ID, ProviderHubSpot)

		require.NoError(t, err)
		assert.Equal(t, "fresh-access", auth.AccessToken)
		assert.Equal(t, "12345", auth.AccountID)
		assert.Equal(t, int32(0), atomic.LoadInt32(&refreshed))
	})

	t.Run("Success - Expired token refreshed and persisted", func(t *testing.T) {
		user := createTestUser(t, client, "expired@example.com")

		adapter := &stubAdapter{
			provider: ProviderHubSpot,
			refreshFn: func(ctx context.Context, refreshToken string, meta AccountMetadata) (*TokenSet, error) {
				assert.Equal(t, "refresh-old", refreshToken)
				return &TokenSet{
					AccessToken:  "access-new",
					RefreshToken: "refresh-rotated",
					ExpiresAt:    time.Now().Add(1 * time.Hour),
					Metadata:     meta,
				}, nil
			},
		}
		store := NewCredentialStore(client, stubRegistry(adapter), nil, nil, testLog)

		expired := time.Now().Add(-1 * time.Minute)
		_, err := client.CRMIntegration.Create().
			SetUserID(user.ID).
			SetProvider(crmintegration.ProviderHubspot).
			SetAccessToken("access-old").
			SetRefreshToken("refresh-old").
			SetTokenExpiresAt(expired).
			SetAccountID("67890").
			Save(ctx)
		require.NoError(t, err)

		auth, err := store.GetValidToken(ctx, user.ID, ProviderHubSpot)

		require.NoError(t, err)
		assert.Equal(t, "access-new", auth.AccessToken)

		// Rotated refresh token must be persisted or the next refresh
		// would use a dead one.
		integ, err := client.CRMIntegration.Query().
			Where(crmintegration.UserID(user.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "refresh-rotated", integ.RefreshToken)
		assert.Equal(t, "access-new", integ.AccessToken)
	})

	t.Run("Success - Token inside expiry skew triggers refresh", func(t *testing.T) {
		user := createTestUser(t, client, "skew@example.com")

		var refreshed int32
		adapter := &stubAdapter{
			provider: ProviderHubSpot,
			refreshFn: func(ctx context.Context, refreshToken string, meta AccountMetadata) (*TokenSet, error) {
				atomic.AddInt32(&refreshed, 1)
				return &TokenSet{
					AccessToken: "access-early",
					ExpiresAt:   time.Now().Add(1 * time.Hour),
					Metadata:    meta,
				}, nil
			},
		}
		store := NewCredentialStore(client, stubRegistry(adapter), nil, nil, testLog)

		// Expires in 2 minutes, inside the 5 minute skew window.
		_, err := client.CRMIntegration.Create().
			SetUserID(user.ID).
			SetProvider(crmintegration.ProviderHubspot).
			SetAccessToken("access-dying").
			SetRefreshToken("refresh-1").
			SetTokenExpiresAt(time.Now().Add(2 * time.Minute)).
			SetAccountID("11111").
			Save(ctx)
		require.NoError(t, err)

		auth, err := store.GetValidToken(ctx, user.ID, ProviderHubSpot)

		require.NoError(t, err)
		assert.Equal(t, "access-early", auth.AccessToken)
		assert.Equal(t, int32(1), atomic.LoadInt32(&refreshed))
	})

	t.Run("Success - Concurrent callers share one refresh", func(t *testing.T) {
		user := createTestUser(t, client, "concurrent@example.com")

		var refreshed int32
		adapter := &stubAdapter{
			provider: ProviderHubSpot,
			refreshFn: func(ctx context.Context, refreshToken string, meta AccountMetadata) (*TokenSet, error) {
				atomic.AddInt32(&refreshed, 1)
				time.Sleep(50 * time.Millisecond)
				return &TokenSet{
					AccessToken:  "access-shared",
					RefreshToken: "refresh-shared",
					ExpiresAt:    time.Now().Add(1 * time.Hour),
					Metadata:     meta,
				}, nil
			},
		}
		store := NewCredentialStore(client, stubRegistry(adapter), nil, nil, testLog)

		_, err := client.CRMIntegration.Create().
			SetUserID(user.ID).
			SetProvider(crmintegration.ProviderHubspot).
			SetAccessToken("access-old").
			SetRefreshToken("refresh-old").
			SetTokenExpiresAt(time.Now().Add(-1 * time.Minute)).
			SetAccountID("22222").
			Save(ctx)
		require.NoError(t, err)

		const callers = 10
		var wg sync.WaitGroup
		results := make([]Auth, callers)
		errs := make([]error, callers)
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], errs[i] = store.GetValidToken(ctx, user.ID, ProviderHubSpot)
			}(i)
		}
		wg.Wait()

		for i := 0; i < callers; i++ {
			require.NoError(t, errs[i])
			assert.Equal(t, "access-shared", results[i].AccessToken)
		}
		assert.Equal(t, int32(1), atomic.LoadInt32(&refreshed),
			"concurrent callers must share a single refresh")
	})

	t.Run("Error - Rejected refresh disconnects and notifies", func(t *testing.T) {
		user := createTestUser(t, client, "rejected@example.com")

		adapter := &stubAdapter{
			provider: ProviderHubSpot,
			refreshFn: func(ctx context.Context, refreshToken string, meta AccountMetadata) (*TokenSet, error) {
				return nil, ErrRefreshFailed
			},
		}
		notifier := &recordingNotifier{}
		store := NewCredentialStore(client, stubRegistry(adapter), notifier, nil, testLog)

		_, err := client.CRMIntegration.Create().
			SetUserID(user.ID).
			SetProvider(crmintegration.ProviderHubspot).
			SetAccessToken("access-old").
			SetRefreshToken("refresh-dead").
			SetTokenExpiresAt(time.Now().Add(-1 * time.Minute)).
			SetAccountID("33333").
			Save(ctx)
		require.NoError(t, err)

		_, err = store.GetValidToken(ctx, user.ID, ProviderHubSpot)

		require.ErrorIs(t, err, ErrRefreshFailed)
		assert.Equal(t, []string{"hubspot"}, notifier.calls)

		integ, err := client.CRMIntegration.Query().
			Where(crmintegration.UserID(user.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.False(t, integ.Active)
		assert.Empty(t, integ.RefreshToken)
	})

	t.Run("Error - Provider outage keeps the integration connected", func(t *testing.T) {
		user := createTestUser(t, client, "outage@example.com")

		adapter := &stubAdapter{
			provider: ProviderHubSpot,
			refreshFn: func(ctx context.Context, refreshToken string, meta AccountMetadata) (*TokenSet, error) {
				return nil, fmt.Errorf("%w: status 503", ErrProviderUnavailable)
			},
		}
		notifier := &recordingNotifier{}
		store := NewCredentialStore(client, stubRegistry(adapter), notifier, nil, testLog)

		_, err := client.CRMIntegration.Create().
			SetUserID(user.ID).
			SetProvider(crmintegration.ProviderHubspot).
			SetAccessToken("access-old").
			SetRefreshToken("refresh-still-good").
			SetTokenExpiresAt(time.Now().Add(-1 * time.Minute)).
			SetAccountID("66666").
			Save(ctx)
		require.NoError(t, err)

		_, err = store.GetValidToken(ctx, user.ID, ProviderHubSpot)

		require.ErrorIs(t, err, ErrProviderUnavailable)
		assert.Empty(t, notifier.calls)

		// The refresh token was never rejected; the next attempt must be
		// able to use it.
		integ, err := client.CRMIntegration.Query().
			Where(crmintegration.UserID(user.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.True(t, integ.Active)
		assert.Equal(t, "refresh-still-good", integ.RefreshToken)
	})

	t.Run("Error - No integration", func(t *testing.T) {
		user := createTestUser(t, client, "nointeg@example.com")
		store := NewCredentialStore(client, stubRegistry(&stubAdapter{provider: ProviderHubSpot}), nil, nil, testLog)

		_, err := store.GetValidToken(ctx, user.ID, ProviderHubSpot)

		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("Error - Disconnected integration", func(t *testing.T) {
		user := createTestUser(t, client, "disconnected@example.com")
		store := NewCredentialStore(client, stubRegistry(&stubAdapter{provider: ProviderHubSpot}), nil, nil, testLog)

		_, err := client.CRMIntegration.Create().
			SetUserID(user.ID).
			SetProvider(crmintegration.ProviderHubspot).
			SetAccessToken("access").
			SetAccountID("44444").
			SetActive(false).
			Save(ctx)
		require.NoError(t, err)

		_, err = store.GetValidToken(ctx, user.ID, ProviderHubSpot)

		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("Error - Expired token without refresh token", func(t *testing.T) {
		user := createTestUser(t, client, "norefresh@example.com")
		store := NewCredentialStore(client, stubRegistry(&stubAdapter{provider: ProviderHubSpot}), nil, nil, testLog)

		_, err := client.CRMIntegration.Create().
			SetUserID(user.ID).
			SetProvider(crmintegration.ProviderHubspot).
			SetAccessToken("access").
			SetTokenExpiresAt(time.Now().Add(-1 * time.Minute)).
			SetAccountID("55555").
			Save(ctx)
		require.NoError(t, err)

		_, err = store.GetValidToken(ctx, user.ID, ProviderHubSpot)

		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestStoreTokens(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewCredentialStore(client, stubRegistry(&stubAdapter{provider: ProviderHubSpot}), nil, nil, logger.New("error"))

	t.Run("Success - Creates integration on first connect", func(t *testing.T) {
		user := createTestUser(t, client, "first@example.com")

		integ, err := store.StoreTokens(ctx, user.ID, ProviderSalesforce, &TokenSet{
			AccessToken:  "sf-access",
			RefreshToken: "sf-refresh",
			ExpiresAt:    time.Now().Add(1 * time.Hour),
			Metadata: AccountMetadata{
				AccountID:   "00D000000000001",
				InstanceURL: "https://acme.my.salesforce.com",
			},
		})

		require.NoError(t, err)
		assert.True(t, integ.Active)
		assert.Equal(t, "00D000000000001", integ.AccountID)
		assert.Equal(t, "https://acme.my.salesforce.com", integ.InstanceURL)
	})

	t.Run("Success - Reconnect updates and reactivates", func(t *testing.T) {
		user := createTestUser(t, client, "reconnect@example.com")

		_, err := client.CRMIntegration.Create().
			SetUserID(user.ID).
			SetProvider(crmintegration.ProviderZoho).
			SetAccessToken("old").
			SetAccountID("zoho-org-1").
			SetActive(false).
			Save(ctx)
		require.NoError(t, err)

		integ, err := store.StoreTokens(ctx, user.ID, ProviderZoho, &TokenSet{
			AccessToken:  "zoho-new",
			RefreshToken: "zoho-refresh",
			ExpiresAt:    time.Now().Add(1 * time.Hour),
			Metadata: AccountMetadata{
				AccountID: "zoho-org-1",
				APIDomain: "https://www.zohoapis.com",
			},
		})

		require.NoError(t, err)
		assert.True(t, integ.Active)
		assert.Equal(t, "zoho-new", integ.AccessToken)

		// One row per (user, provider), never two.
		count, err := client.CRMIntegration.Query().
			Where(crmintegration.UserID(user.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestMarkDisconnected(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewCredentialStore(client, stubRegistry(&stubAdapter{provider: ProviderHubSpot}), nil, nil, logger.New("error"))

	t.Run("Success - Clears refresh token and deactivates", func(t *testing.T) {
		user := createTestUser(t, client, "markdc@example.com")

		_, err := client.CRMIntegration.Create().
			SetUserID(user.ID).
			SetProvider(crmintegration.ProviderPipedrive).
			SetAccessToken("access").
			SetRefreshToken("refresh").
			SetAccountID("acme-domain").
			Save(ctx)
		require.NoError(t, err)

		err = store.MarkDisconnected(ctx, user.ID, ProviderPipedrive)
		require.NoError(t, err)

		integ, err := client.CRMIntegration.Query().
			Where(crmintegration.UserID(user.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.False(t, integ.Active)
		assert.Empty(t, integ.RefreshToken)
	})

	t.Run("Error - No integration to disconnect", func(t *testing.T) {
		user := createTestUser(t, client, "markdc-none@example.com")

		err := store.MarkDisconnected(ctx, user.ID, ProviderHubSpot)

		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}
