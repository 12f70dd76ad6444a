package crm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dealpage/dealpage/ent"
	"github.com/dealpage/dealpage/ent/crmintegration"
	"github.com/dealpage/dealpage/pkg/logger"
	"github.com/dealpage/dealpage/pkg/metrics"
)

// expirySkew is subtracted from the stored expiry when deciding whether a
// token is still usable, so calls never go out with a token about to die
// mid-request.
const expirySkew = 5 * time.Minute

// DisconnectNotifier is told when a refresh failure force-disconnects an
// integration, so the owner can be asked to reconnect. Best-effort.
type DisconnectNotifier interface {
	NotifyReconnectRequired(ctx context.Context, userID int, provider string)
}

// CredentialStore is the sole mutator of integration token fields. Reads go
// through GetValidToken, which refreshes transparently; refresh is
// single-flighted per (user, provider) because several providers rotate
// refresh tokens and a concurrent second refresh would invalidate the first.
type CredentialStore struct {
	db       *ent.Client
	registry *Registry
	notifier DisconnectNotifier
	metrics  *metrics.Metrics
	log      logger.Logger
	group    singleflight.Group
}

// NewCredentialStore creates a credential store. notifier and m may be nil.
func NewCredentialStore(db *ent.Client, registry *Registry, notifier DisconnectNotifier, m *metrics.Metrics, log logger.Logger) *CredentialStore {
	return &CredentialStore{
		db:       db,
		registry: registry,
		notifier: notifier,
		metrics:  m,
		log:      log,
	}
}

// GetValidToken returns auth material for the user's integration with a
// provider, refreshing the access token first when it is expired or about
// to expire.
func (s *CredentialStore) GetValidToken(ctx context.Context, userID int, provider Provider) (Auth, error) {
	integ, err := s.activeIntegration(ctx, userID, provider)
	if err != nil {
		return Auth{}, err
	}

	if tokenUsable(integ) {
		return authFromIntegration(integ), nil
	}

	return s.refresh(ctx, userID, provider)
}

// refresh performs the single-flighted token refresh. Concurrent callers
// during an in-flight refresh wait for and share its result.
func (s *CredentialStore) refresh(ctx context.Context, userID int, provider Provider) (Auth, error) {
	key := fmt.Sprintf("%d:%s", userID, provider)
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		// Re-read inside the flight: a caller that waited may find the
		// winner already persisted a fresh token.
		integ, err := s.activeIntegration(ctx, userID, provider)
		if err != nil {
			return Auth{}, err
		}
		if tokenUsable(integ) {
			return authFromIntegration(integ), nil
		}
		if integ.RefreshToken == "" {
			return Auth{}, fmt.Errorf("%w: no refresh token for %s", ErrUnauthenticated, provider)
		}

		adapter, err := s.registry.ForProvider(provider)
		if err != nil {
			return Auth{}, err
		}

		tokens, err := adapter.Refresh(ctx, integ.RefreshToken, AccountMetadata{
			AccountID:   integ.AccountID,
			InstanceURL: integ.InstanceURL,
			APIDomain:   integ.APIDomain,
		})
		if s.metrics != nil {
			s.metrics.RecordCRMTokenRefresh(string(provider), err == nil)
		}
		if err != nil {
			if errors.Is(err, ErrRefreshFailed) {
				// A rejected refresh token is unrecoverable without the
				// user's consent; disconnect instead of retrying forever.
				s.log.Warn("CRM refresh rejected, disconnecting integration",
					"user_id", userID, "provider", provider, "error", err)
				if derr := s.MarkDisconnected(ctx, userID, provider); derr != nil {
					s.log.Error("failed to disconnect after refresh failure",
						"user_id", userID, "provider", provider, "error", derr)
				}
				if s.notifier != nil {
					s.notifier.NotifyReconnectRequired(ctx, userID, string(provider))
				}
			}
			return Auth{}, err
		}

		updated, err := s.persistTokens(ctx, integ, tokens)
		if err != nil {
			return Auth{}, err
		}
		return authFromIntegration(updated), nil
	})
	if err != nil {
		return Auth{}, err
	}
	return v.(Auth), nil
}

// StoreTokens upserts the integration record for a (user, provider) pair
// after a successful OAuth exchange.
func (s *CredentialStore) StoreTokens(ctx context.Context, userID int, provider Provider, tokens *TokenSet) (*ent.CRMIntegration, error) {
	existing, err := s.db.CRMIntegration.Query().
		Where(
			crmintegration.UserID(userID),
			crmintegration.ProviderEQ(crmintegration.Provider(provider)),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query integration: %w", err)
	}

	if existing != nil {
		updated, err := existing.Update().
			SetActive(true).
			SetAccessToken(tokens.AccessToken).
			SetRefreshToken(tokens.RefreshToken).
			SetTokenExpiresAt(tokens.ExpiresAt).
			SetAccountID(tokens.Metadata.AccountID).
			SetInstanceURL(tokens.Metadata.InstanceURL).
			SetAPIDomain(tokens.Metadata.APIDomain).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update integration: %w", err)
		}
		return updated, nil
	}

	created, err := s.db.CRMIntegration.Create().
		SetUserID(userID).
		SetProvider(crmintegration.Provider(provider)).
		SetAccessToken(tokens.AccessToken).
		SetRefreshToken(tokens.RefreshToken).
		SetTokenExpiresAt(tokens.ExpiresAt).
		SetAccountID(tokens.Metadata.AccountID).
		SetInstanceURL(tokens.Metadata.InstanceURL).
		SetAPIDomain(tokens.Metadata.APIDomain).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create integration: %w", err)
	}
	return created, nil
}

// MarkDisconnected soft-disables an integration: the refresh token is
// cleared and the active flag dropped. Deal links and stage mappings are
// kept; they become inert until the user reconnects.
func (s *CredentialStore) MarkDisconnected(ctx context.Context, userID int, provider Provider) error {
	n, err := s.db.CRMIntegration.Update().
		Where(
			crmintegration.UserID(userID),
			crmintegration.ProviderEQ(crmintegration.Provider(provider)),
		).
		SetActive(false).
		ClearRefreshToken().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to disconnect integration: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: no %s integration", ErrUnauthenticated, provider)
	}
	return nil
}

func (s *CredentialStore) activeIntegration(ctx context.Context, userID int, provider Provider) (*ent.CRMIntegration, error) {
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
	if !integ.Active {
		return nil, fmt.Errorf("%w: %s integration is disconnected", ErrUnauthenticated, provider)
	}
	return integ, nil
}

func (s *CredentialStore) persistTokens(ctx context.Context, integ *ent.CRMIntegration, tokens *TokenSet) (*ent.CRMIntegration, error) {
	update := integ.Update().
		SetAccessToken(tokens.AccessToken).
		SetTokenExpiresAt(tokens.ExpiresAt)
	if tokens.RefreshToken != "" {
		update.SetRefreshToken(tokens.RefreshToken)
	}
	if tokens.Metadata.InstanceURL != "" {
		update.SetInstanceURL(tokens.Metadata.InstanceURL)
	}
	if tokens.Metadata.APIDomain != "" {
		update.SetAPIDomain(tokens.Metadata.APIDomain)
	}
	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist refreshed tokens: %w", err)
	}
	return updated, nil
}

func tokenUsable(integ *ent.CRMIntegration) bool {
	if integ.AccessToken == "" {
		return false
	}
	if integ.TokenExpiresAt == nil {
		return true
	}
	return time.Now().Before(integ.TokenExpiresAt.Add(-expirySkew))
}

func authFromIntegration(integ *ent.CRMIntegration) Auth {
	return Auth{
		AccessToken: integ.AccessToken,
		AccountID:   integ.AccountID,
		InstanceURL: integ.InstanceURL,
		APIDomain:   integ.APIDomain,
	}
}
