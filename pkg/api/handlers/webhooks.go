package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dealpage/dealpage/pkg/crm"
	"github.com/dealpage/dealpage/pkg/crmsync"
	"github.com/dealpage/dealpage/pkg/logger"
)

// maxWebhookBody caps inbound payloads. Providers send batches but never
// anywhere near this size.
const maxWebhookBody = 2 << 20

// WebhookHandler handles the unauthenticated CRM surface: OAuth callbacks
// and provider webhook deliveries.
type WebhookHandler struct {
	service     *crm.Service
	processor   *crmsync.Processor
	frontendURL string
	log         logger.Logger
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(service *crm.Service, processor *crmsync.Processor, frontendURL string, log logger.Logger) *WebhookHandler {
	return &WebhookHandler{
		service:     service,
		processor:   processor,
		frontendURL: frontendURL,
		log:         log,
	}
}

// OAuthCallback completes the provider consent flow. The browser lands
// here, so failures redirect back to the settings page instead of
// returning JSON.
func (h *WebhookHandler) OAuthCallback(c echo.Context) error {
	provider, err := crm.ParseProvider(c.Param("provider"))
	if err != nil {
		return h.redirectError(c, "unknown_provider")
	}

	code := c.QueryParam("code")
	state := c.QueryParam("state")
	if code == "" || state == "" {
		h.log.Warn("OAuth callback missing code or state", "provider", provider)
		return h.redirectError(c, "missing_code")
	}

	// State round-trips the internal user id through the provider
	userID, err := strconv.Atoi(state)
	if err != nil || userID <= 0 {
		h.log.Warn("OAuth callback with bad state", "provider", provider, "state", state)
		return h.redirectError(c, "invalid_state")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	if _, err := h.service.Connect(ctx, userID, provider, code); err != nil {
		h.log.Error("OAuth code exchange failed",
			"provider", provider, "user_id", userID, "error", err)
		return h.redirectError(c, "exchange_failed")
	}

	return c.Redirect(http.StatusFound,
		fmt.Sprintf("%s/settings/integrations?connected=%s", h.frontendURL, provider))
}

// Webhook receives one provider delivery. Always responds 200: providers
// treat non-2xx as grounds for retry storms and endpoint disablement, so
// all failure handling stays internal.
func (h *WebhookHandler) Webhook(c echo.Context) error {
	provider, err := crm.ParseProvider(c.Param("provider"))
	if err != nil {
		return c.NoContent(http.StatusOK)
	}

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		h.log.Warn("failed to read webhook body", "provider", provider, "error", err)
		return c.NoContent(http.StatusOK)
	}

	// HubSpot signs the full delivery URL, scheme and host included, so the
	// path alone is not enough to verify.
	requestURL := c.Scheme() + "://" + c.Request().Host + c.Request().RequestURI

	if err := h.processor.Process(
		c.Request().Context(),
		provider,
		c.Request().Header,
		body,
		requestURL,
	); err != nil {
		// Already logged with context by the processor
		return c.NoContent(http.StatusOK)
	}
	return c.NoContent(http.StatusOK)
}

func (h *WebhookHandler) redirectError(c echo.Context, reason string) error {
	return c.Redirect(http.StatusFound,
		fmt.Sprintf("%s/settings/integrations?error=%s", h.frontendURL, reason))
}
