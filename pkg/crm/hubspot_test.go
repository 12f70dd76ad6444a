package crm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealpage/dealpage/config"
)

func newHubSpotTestAdapter(t *testing.T, handler http.Handler) (*hubspotAdapter, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	adapter := NewHubSpotAdapter(config.ProviderCredentials{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
	}, testCallbackURL).(*hubspotAdapter)
	adapter.apiBase = srv.URL
	return adapter, srv
}

func TestHubSpotAuthorizationURL(t *testing.T) {
	adapter := NewHubSpotAdapter(config.ProviderCredentials{ClientID: "client-id"}, testCallbackURL)

	u := adapter.AuthorizationURL("state-42")

	assert.Contains(t, u, "https://app.hubspot.com/oauth/authorize")
	assert.Contains(t, u, "client_id=client-id")
	assert.Contains(t, u, "state=state-42")
	assert.Contains(t, u, "redirect_uri=")
}

func TestHubSpotDeals(t *testing.T) {
	ctx := context.Background()
	auth := Auth{AccessToken: "token-1"}

	t.Run("Success - Create deal translates properties", func(t *testing.T) {
		var gotBody map[string]interface{}
		adapter, _ := newHubSpotTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/crm/v3/objects/deals", r.URL.Path)
			require.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"id": "555",
				"properties": map[string]string{
					"dealname":  "Website Redesign",
					"dealstage": "appointmentscheduled",
					"amount":    "12000.00",
				},
			})
		}))

		created, err := adapter.CreateDeal(ctx, auth, Deal{
			Name:   "Website Redesign",
			Stage:  "appointmentscheduled",
			Amount: 12000,
		})

		require.NoError(t, err)
		assert.Equal(t, "555", created.ID)
		assert.Equal(t, "appointmentscheduled", created.Stage)
		assert.Equal(t, 12000.0, created.Amount)

		props, ok := gotBody["properties"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Website Redesign", props["dealname"])
		assert.Equal(t, "12000.00", props["amount"])
	})

	t.Run("Success - Update deal patches by id", func(t *testing.T) {
		adapter, _ := newHubSpotTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPatch, r.Method)
			require.Equal(t, "/crm/v3/objects/deals/555", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"id":         "555",
				"properties": map[string]string{"dealstage": "closedwon"},
			})
		}))

		updated, err := adapter.UpdateDeal(ctx, auth, Deal{ID: "555", Stage: "closedwon"})

		require.NoError(t, err)
		assert.Equal(t, "closedwon", updated.Stage)
	})

	t.Run("Success - List stages flattens the default pipeline", func(t *testing.T) {
		adapter, _ := newHubSpotTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/crm/v3/pipelines/deals", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"results": []map[string]interface{}{{
					"stages": []map[string]string{
						{"id": "appointmentscheduled", "label": "Appointment Scheduled"},
						{"id": "closedwon", "label": "Closed Won"},
					},
				}},
			})
		}))

		stages, err := adapter.ListStages(ctx, auth)

		require.NoError(t, err)
		require.Len(t, stages, 2)
		assert.Equal(t, Stage{ID: "closedwon", Name: "Closed Won"}, stages[1])
	})

	t.Run("Error - 401 maps to ErrUnauthenticated", func(t *testing.T) {
		adapter, _ := newHubSpotTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))

		_, err := adapter.GetDeal(ctx, auth, "555")

		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("Error - 404 maps to ErrNotFound", func(t *testing.T) {
		adapter, _ := newHubSpotTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		_, err := adapter.GetDeal(ctx, auth, "gone")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Error - 500 maps to ErrProviderUnavailable", func(t *testing.T) {
		adapter, _ := newHubSpotTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		_, err := adapter.ListDeals(ctx, auth)

		assert.ErrorIs(t, err, ErrProviderUnavailable)
	})
}

func TestHubSpotRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Rotates the refresh token", func(t *testing.T) {
		adapter, _ := newHubSpotTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/oauth/v1/token", r.URL.Path)
			require.NoError(t, r.ParseForm())
			require.Equal(t, "refresh_token", r.Form.Get("grant_type"))
			require.Equal(t, "refresh-old", r.Form.Get("refresh_token"))

			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"access_token":  "access-new",
				"refresh_token": "refresh-new",
				"expires_in":    1800,
			})
		}))

		tokens, err := adapter.Refresh(ctx, "refresh-old", AccountMetadata{AccountID: "12345"})

		require.NoError(t, err)
		assert.Equal(t, "access-new", tokens.AccessToken)
		assert.Equal(t, "refresh-new", tokens.RefreshToken)
		assert.Equal(t, "12345", tokens.Metadata.AccountID)
	})

	t.Run("Error - Provider rejection maps to ErrRefreshFailed", func(t *testing.T) {
		adapter, _ := newHubSpotTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"status":"error","message":"refresh token invalid"}`))
		}))

		_, err := adapter.Refresh(ctx, "refresh-dead", AccountMetadata{})

		assert.ErrorIs(t, err, ErrRefreshFailed)
	})

	t.Run("Error - Token endpoint outage is not a rejection", func(t *testing.T) {
		adapter, _ := newHubSpotTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))

		_, err := adapter.Refresh(ctx, "refresh-fine", AccountMetadata{})

		assert.ErrorIs(t, err, ErrProviderUnavailable)
		assert.NotErrorIs(t, err, ErrRefreshFailed)
	})
}

func TestParseProvider(t *testing.T) {
	t.Run("Success - All supported providers", func(t *testing.T) {
		for _, name := range []string{"hubspot", "salesforce", "pipedrive", "zoho"} {
			p, err := ParseProvider(name)
			require.NoError(t, err)
			assert.Equal(t, Provider(name), p)
		}
	})

	t.Run("Error - Unknown provider", func(t *testing.T) {
		_, err := ParseProvider("dynamics")

		assert.ErrorIs(t, err, ErrUnknownProvider)
	})
}
