package crm

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealpage/dealpage/config"
)

const testCallbackURL = "https://api.dealpage.com/crm/callback"

func hubspotSign(secret, uri string, body []byte, timestamp string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(http.MethodPost))
	mac.Write([]byte(uri))
	mac.Write(body)
	mac.Write([]byte(timestamp))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func hexSign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestHubSpotVerifyWebhookSignature(t *testing.T) {
	adapter := NewHubSpotAdapter(config.ProviderCredentials{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
	}, testCallbackURL)

	// HubSpot hashes the full delivery URL, not just the path.
	const uri = "https://api.dealpage.com/webhooks/crm/hubspot"
	body := []byte(`[{"subscriptionType":"deal.propertyChange"}]`)

	t.Run("Success - Valid v3 signature", func(t *testing.T) {
		timestamp := strconv.FormatInt(time.Now().UnixMilli(), 10)
		header := http.Header{}
		header.Set("X-HubSpot-Signature-v3", hubspotSign("client-secret", uri, body, timestamp))
		header.Set("X-HubSpot-Request-Timestamp", timestamp)

		assert.NoError(t, adapter.VerifyWebhookSignature(header, body, uri))
	})

	t.Run("Error - Tampered body", func(t *testing.T) {
		timestamp := strconv.FormatInt(time.Now().UnixMilli(), 10)
		header := http.Header{}
		header.Set("X-HubSpot-Signature-v3", hubspotSign("client-secret", uri, body, timestamp))
		header.Set("X-HubSpot-Request-Timestamp", timestamp)

		err := adapter.VerifyWebhookSignature(header, []byte(`[{"tampered":true}]`), uri)

		assert.ErrorIs(t, err, ErrSignatureInvalid)
	})

	t.Run("Error - Wrong secret", func(t *testing.T) {
		timestamp := strconv.FormatInt(time.Now().UnixMilli(), 10)
		header := http.Header{}
		header.Set("X-HubSpot-Signature-v3", hubspotSign("other-secret", uri, body, timestamp))
		header.Set("X-HubSpot-Request-Timestamp", timestamp)

		err := adapter.VerifyWebhookSignature(header, body, uri)

		assert.ErrorIs(t, err, ErrSignatureInvalid)
	})

	t.Run("Error - Replayed timestamp", func(t *testing.T) {
		stale := strconv.FormatInt(time.Now().Add(-10*time.Minute).UnixMilli(), 10)
		header := http.Header{}
		header.Set("X-HubSpot-Signature-v3", hubspotSign("client-secret", uri, body, stale))
		header.Set("X-HubSpot-Request-Timestamp", stale)

		err := adapter.VerifyWebhookSignature(header, body, uri)

		assert.ErrorIs(t, err, ErrSignatureInvalid)
	})

	t.Run("Error - Missing headers", func(t *testing.T) {
		err := adapter.VerifyWebhookSignature(http.Header{}, body, uri)

		assert.ErrorIs(t, err, ErrSignatureInvalid)
	})
}

func TestHubSpotParseWebhook(t *testing.T) {
	adapter := NewHubSpotAdapter(config.ProviderCredentials{ClientSecret: "secret"}, testCallbackURL)

	t.Run("Success - Classifies batch events", func(t *testing.T) {
		body := []byte(`[
			{"subscriptionType":"deal.propertyChange","objectId":901,"portalId":12345,"propertyName":"dealstage","propertyValue":"contractsent"},
			{"subscriptionType":"deal.deletion","objectId":902,"portalId":12345},
			{"subscriptionType":"contact.propertyChange","objectId":77,"portalId":12345,"propertyName":"email","propertyValue":"new@example.com"},
			{"subscriptionType":"deal.creation","objectId":903,"portalId":12345}
		]`)

		events, err := adapter.ParseWebhook(body)

		require.NoError(t, err)
		require.Len(t, events, 4)

		assert.Equal(t, EventDealStageChanged, events[0].Type)
		assert.Equal(t, "901", events[0].ObjectID)
		assert.Equal(t, "12345", events[0].AccountID)
		assert.Equal(t, "contractsent", events[0].StageID)

		// Each event keeps its own raw payload for the audit log.
		require.NotEmpty(t, events[0].Raw)
		assert.Equal(t, "contractsent", events[0].Raw["propertyValue"])
		assert.Equal(t, "deal.deletion", events[1].Raw["subscriptionType"])

		assert.Equal(t, EventDealDeleted, events[1].Type)
		assert.Equal(t, "902", events[1].ObjectID)

		assert.Equal(t, EventContactChanged, events[2].Type)
		require.NotNil(t, events[2].Contact)
		assert.Equal(t, "new@example.com", events[2].Contact.Email)

		// Unrecognized subscriptions keep the provider-native type and
		// fall through to the router's discard path.
		assert.Equal(t, "deal.creation", events[3].Type)
	})

	t.Run("Success - Non-stage deal property change stays native", func(t *testing.T) {
		body := []byte(`[{"subscriptionType":"deal.propertyChange","objectId":1,"portalId":2,"propertyName":"amount","propertyValue":"900"}]`)

		events, err := adapter.ParseWebhook(body)

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "deal.propertyChange", events[0].Type)
	})

	t.Run("Error - Malformed payload", func(t *testing.T) {
		_, err := adapter.ParseWebhook([]byte(`{"not":"an array"}`))

		assert.Error(t, err)
	})
}

func TestPipedriveWebhook(t *testing.T) {
	adapter := NewPipedriveAdapter(config.ProviderCredentials{WebhookSecret: "pd-secret"}, testCallbackURL)

	t.Run("Success - Valid signature", func(t *testing.T) {
		body := []byte(`{"event":"updated.deal","meta":{"object":"deal","action":"updated","id":5,"host":"acme.pipedrive.com"}}`)
		header := http.Header{}
		header.Set("x-pipedrive-signature", hexSign("pd-secret", body))

		assert.NoError(t, adapter.VerifyWebhookSignature(header, body, "/webhooks/crm/pipedrive"))
	})

	t.Run("Error - Invalid signature", func(t *testing.T) {
		body := []byte(`{}`)
		header := http.Header{}
		header.Set("x-pipedrive-signature", "deadbeef")

		err := adapter.VerifyWebhookSignature(header, body, "/webhooks/crm/pipedrive")

		assert.ErrorIs(t, err, ErrSignatureInvalid)
	})

	t.Run("Success - Stage move", func(t *testing.T) {
		body := []byte(`{"event":"updated.deal","current":{"id":42,"stage_id":7,"status":"open"},"meta":{"object":"deal","action":"updated","id":42,"host":"acme.pipedrive.com"}}`)

		events, err := adapter.ParseWebhook(body)

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, EventDealStageChanged, events[0].Type)
		assert.Equal(t, "42", events[0].ObjectID)
		assert.Equal(t, "acme.pipedrive.com", events[0].AccountID)
		assert.Equal(t, "7", events[0].StageID)
		require.NotEmpty(t, events[0].Raw)
		assert.Equal(t, "updated.deal", events[0].Raw["event"])
	})

	t.Run("Success - Won lands as status flip", func(t *testing.T) {
		body := []byte(`{"event":"updated.deal","current":{"id":42,"stage_id":7,"status":"won"},"meta":{"object":"deal","action":"updated","id":42,"host":"acme.pipedrive.com"}}`)

		events, err := adapter.ParseWebhook(body)

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "won", events[0].StageID)
	})

	t.Run("Success - Deal deletion", func(t *testing.T) {
		body := []byte(`{"event":"deleted.deal","meta":{"object":"deal","action":"deleted","id":42,"host":"acme.pipedrive.com"}}`)

		events, err := adapter.ParseWebhook(body)

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, EventDealDeleted, events[0].Type)
	})

	t.Run("Error - Missing meta", func(t *testing.T) {
		_, err := adapter.ParseWebhook([]byte(`{"event":"updated.deal"}`))

		assert.Error(t, err)
	})
}

func TestSalesforceParseWebhook(t *testing.T) {
	adapter := NewSalesforceAdapter(config.ProviderCredentials{WebhookSecret: "sf-secret"}, testCallbackURL)

	t.Run("Success - Stage change carries the stage name", func(t *testing.T) {
		body := []byte(`{"organizationId":"00D000000000001","events":[{"eventType":"opportunity.stage_changed","objectId":"006000000000001","stageName":"Negotiation/Review"}]}`)

		events, err := adapter.ParseWebhook(body)

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, EventDealStageChanged, events[0].Type)
		assert.Equal(t, "00D000000000001", events[0].AccountID)
		// Salesforce identifies stages by name; both lookup keys carry it.
		assert.Equal(t, "Negotiation/Review", events[0].StageID)
		assert.Equal(t, "Negotiation/Review", events[0].StageName)
		require.NotEmpty(t, events[0].Raw)
		assert.Equal(t, "Negotiation/Review", events[0].Raw["stageName"])
	})

	t.Run("Success - Opportunity deletion", func(t *testing.T) {
		body := []byte(`{"organizationId":"00D000000000001","events":[{"eventType":"opportunity.deleted","objectId":"006000000000002"}]}`)

		events, err := adapter.ParseWebhook(body)

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, EventDealDeleted, events[0].Type)
	})
}

func TestZohoParseWebhook(t *testing.T) {
	adapter := NewZohoAdapter(config.ProviderCredentials{WebhookSecret: "zoho-secret"}, testCallbackURL)

	t.Run("Success - Deal update", func(t *testing.T) {
		body := []byte(`{"org_id":"zorg-1","module":"Deals","operation":"update","record":{"id":"4876000000332001","Stage":"Closed Won"}}`)

		events, err := adapter.ParseWebhook(body)

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, EventDealStageChanged, events[0].Type)
		assert.Equal(t, "4876000000332001", events[0].ObjectID)
		assert.Equal(t, "zorg-1", events[0].AccountID)
		assert.Equal(t, "Closed Won", events[0].StageID)
		require.NotEmpty(t, events[0].Raw)
		assert.Equal(t, "Deals", events[0].Raw["module"])
	})

	t.Run("Success - Contact update", func(t *testing.T) {
		body := []byte(`{"org_id":"zorg-1","module":"Contacts","operation":"update","record":{"id":"4876000000999001","Email":"jane@acme.com","First_Name":"Jane"}}`)

		events, err := adapter.ParseWebhook(body)

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, EventContactChanged, events[0].Type)
		require.NotNil(t, events[0].Contact)
		assert.Equal(t, "jane@acme.com", events[0].Contact.Email)
	})

	t.Run("Error - Missing record", func(t *testing.T) {
		_, err := adapter.ParseWebhook([]byte(`{"org_id":"zorg-1","module":"Deals","operation":"update"}`))

		assert.Error(t, err)
	})
}
