package handlers

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/dealpage/dealpage/ent"
	"github.com/dealpage/dealpage/pkg/api/errors"
	"github.com/dealpage/dealpage/pkg/crm"
	"github.com/dealpage/dealpage/pkg/crmsync"
	"github.com/dealpage/dealpage/pkg/models"
)

// CRMHandler handles CRM integration management endpoints
type CRMHandler struct {
	service   *crm.Service
	syncer    *crmsync.Syncer
	validator *validator.Validate
}

// NewCRMHandler creates a new CRM handler
func NewCRMHandler(service *crm.Service, syncer *crmsync.Syncer) *CRMHandler {
	return &CRMHandler{
		service:   service,
		syncer:    syncer,
		validator: validator.New(),
	}
}

// StageMappingsRequest carries the full replacement mapping list
type StageMappingsRequest struct {
	Mappings []crm.StageMappingInput `json:"mappings" validate:"required,dive"`
}

// LinkDealRequest links a proposal to an existing external deal
type LinkDealRequest struct {
	ExternalDealID string `json:"external_deal_id" validate:"required"`
}

// DealLinkResponse represents a proposal-deal association
type DealLinkResponse struct {
	ID             int    `json:"id"`
	ProposalID     int    `json:"proposal_id"`
	Provider       string `json:"provider"`
	ExternalDealID string `json:"external_deal_id"`
}

func toDealLinkResponse(link *ent.DealLink, provider string) DealLinkResponse {
	return DealLinkResponse{
		ID:             link.ID,
		ProposalID:     link.ProposalID,
		Provider:       provider,
		ExternalDealID: link.ExternalDealID,
	}
}

// ListIntegrations godoc
// @Summary List CRM integrations
// @Description List all CRM connections for the current user
// @Tags CRM
// @Produce json
// @Security BearerAuth
// @Success 200 {array} crm.IntegrationInfo
// @Failure 401 {object} models.ErrorResponse
// @Router /crm/integrations [get]
func (h *CRMHandler) ListIntegrations(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "no user in context")
	}

	infos, err := h.service.ListIntegrations(c.Request().Context(), userID)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	return c.JSON(http.StatusOK, infos)
}

// AuthorizeURL godoc
// @Summary Get OAuth authorization URL
// @Description Build the provider consent URL to start the OAuth flow
// @Tags CRM
// @Produce json
// @Security BearerAuth
// @Param provider path string true "CRM provider" Enums(hubspot, salesforce, pipedrive, zoho)
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Router /crm/{provider}/authorize-url [get]
func (h *CRMHandler) AuthorizeURL(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "no user in context")
	}
	provider, err := crm.ParseProvider(c.Param("provider"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	url, err := h.service.AuthorizationURL(userID, provider)
	if err != nil {
		return errors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"url": url})
}

// Disconnect godoc
// @Summary Disconnect a CRM integration
// @Description Revoke tokens (best-effort) and disable sync for a provider
// @Tags CRM
// @Produce json
// @Security BearerAuth
// @Param provider path string true "CRM provider"
// @Success 200 {object} models.SuccessResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /crm/{provider} [delete]
func (h *CRMHandler) Disconnect(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "no user in context")
	}
	provider, err := crm.ParseProvider(c.Param("provider"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.service.Disconnect(c.Request().Context(), userID, provider); err != nil {
		return h.crmError(c, err)
	}
	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Integration disconnected",
	})
}

// ConfigureSync godoc
// @Summary Configure sync behavior
// @Description Update sync direction, contact auto-sync and trigger events
// @Tags CRM
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param provider path string true "CRM provider"
// @Param request body crm.SyncConfigInput true "Sync configuration"
// @Success 200 {object} crm.IntegrationInfo
// @Failure 400 {object} models.ErrorResponse
// @Router /crm/{provider}/config [put]
func (h *CRMHandler) ConfigureSync(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "no user in context")
	}
	provider, err := crm.ParseProvider(c.Param("provider"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	var input crm.SyncConfigInput
	if err := c.Bind(&input); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(input); err != nil {
		return errors.ValidationError(c, err)
	}

	integ, err := h.service.ConfigureSync(c.Request().Context(), userID, provider, input)
	if err != nil {
		return h.crmError(c, err)
	}
	return c.JSON(http.StatusOK, crm.IntegrationInfo{
		Provider:         string(integ.Provider),
		Active:           integ.Active,
		AccountID:        integ.AccountID,
		SyncDirection:    string(integ.SyncDirection),
		AutoSyncContacts: integ.AutoSyncContacts,
		StatusSyncEvents: integ.StatusSyncEvents,
		LastSyncAt:       integ.LastSyncAt,
		ConnectedAt:      integ.CreatedAt,
	})
}

// ConfigureStageMappings godoc
// @Summary Replace stage mappings
// @Description Replace the full status-to-stage mapping list for a provider
// @Tags CRM
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param provider path string true "CRM provider"
// @Param request body StageMappingsRequest true "Stage mappings"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /crm/{provider}/stage-mappings [put]
func (h *CRMHandler) ConfigureStageMappings(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "no user in context")
	}
	provider, err := crm.ParseProvider(c.Param("provider"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	var req StageMappingsRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.service.ConfigureStageMappings(c.Request().Context(), userID, provider, req.Mappings); err != nil {
		return h.crmError(c, err)
	}
	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Stage mappings updated",
	})
}

// ListStageMappings returns the configured stage mappings for a provider
func (h *CRMHandler) ListStageMappings(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "no user in context")
	}
	provider, err := crm.ParseProvider(c.Param("provider"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	mappings, err := h.service.ListStageMappings(c.Request().Context(), userID, provider)
	if err != nil {
		return h.crmError(c, err)
	}

	out := make([]crm.StageMappingInput, len(mappings))
	for i, m := range mappings {
		out[i] = crm.StageMappingInput{
			ProposalStatus:    m.ProposalStatus,
			ExternalStageID:   m.ExternalStageID,
			ExternalStageName: m.ExternalStageName,
		}
	}
	return c.JSON(http.StatusOK, out)
}

// ListStages godoc
// @Summary List provider pipeline stages
// @Description Fetch stage metadata for the mapping UI (cached)
// @Tags CRM
// @Produce json
// @Security BearerAuth
// @Param provider path string true "CRM provider"
// @Success 200 {array} crm.Stage
// @Failure 401 {object} models.ErrorResponse
// @Router /crm/{provider}/stages [get]
func (h *CRMHandler) ListStages(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "no user in context")
	}
	provider, err := crm.ParseProvider(c.Param("provider"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	stages, err := h.service.ListStages(c.Request().Context(), userID, provider)
	if err != nil {
		return h.crmError(c, err)
	}
	return c.JSON(http.StatusOK, stages)
}

// ListDeals returns the provider's deals for the linking UI
func (h *CRMHandler) ListDeals(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "no user in context")
	}
	provider, err := crm.ParseProvider(c.Param("provider"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	deals, err := h.service.ListDeals(c.Request().Context(), userID, provider)
	if err != nil {
		return h.crmError(c, err)
	}
	return c.JSON(http.StatusOK, deals)
}

// ListContacts returns the provider's contacts
func (h *CRMHandler) ListContacts(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "no user in context")
	}
	provider, err := crm.ParseProvider(c.Param("provider"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	contacts, err := h.service.ListContacts(c.Request().Context(), userID, provider)
	if err != nil {
		return h.crmError(c, err)
	}
	return c.JSON(http.StatusOK, contacts)
}

// ImportContacts godoc
// @Summary Import provider contacts
// @Description Mirror the provider's contacts into DealPage
// @Tags CRM
// @Produce json
// @Security BearerAuth
// @Param provider path string true "CRM provider"
// @Success 200 {object} map[string]int
// @Failure 401 {object} models.ErrorResponse
// @Router /crm/{provider}/contacts/import [post]
func (h *CRMHandler) ImportContacts(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "no user in context")
	}
	provider, err := crm.ParseProvider(c.Param("provider"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	imported, err := h.service.ImportContacts(c.Request().Context(), userID, provider)
	if err != nil {
		return h.crmError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"imported": imported})
}

// CreateDealFromProposal godoc
// @Summary Create a CRM deal from a proposal
// @Description Create an external deal mirroring the proposal and link them
// @Tags CRM
// @Produce json
// @Security BearerAuth
// @Param provider path string true "CRM provider"
// @Param id path int true "Proposal ID"
// @Success 201 {object} DealLinkResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /crm/{provider}/proposals/{id}/deal [post]
func (h *CRMHandler) CreateDealFromProposal(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "no user in context")
	}
	provider, err := crm.ParseProvider(c.Param("provider"))
	if err != nil {
		return errors.ValidationError(c, err)
	}
	proposalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	link, _, err := h.service.CreateDealFromProposal(c.Request().Context(), userID, provider, proposalID)
	if err != nil {
		return h.crmError(c, err)
	}
	return c.JSON(http.StatusCreated, toDealLinkResponse(link, string(provider)))
}

// LinkDeal godoc
// @Summary Link a proposal to an existing deal
// @Description Verify the external deal exists and associate it with the proposal
// @Tags CRM
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param provider path string true "CRM provider"
// @Param id path int true "Proposal ID"
// @Param request body LinkDealRequest true "External deal id"
// @Success 201 {object} DealLinkResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /crm/{provider}/proposals/{id}/link [post]
func (h *CRMHandler) LinkDeal(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "no user in context")
	}
	provider, err := crm.ParseProvider(c.Param("provider"))
	if err != nil {
		return errors.ValidationError(c, err)
	}
	proposalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	var req LinkDealRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	link, err := h.service.LinkDeal(c.Request().Context(), userID, provider, proposalID, req.ExternalDealID)
	if err != nil {
		return h.crmError(c, err)
	}
	return c.JSON(http.StatusCreated, toDealLinkResponse(link, string(provider)))
}

// SyncProposal godoc
// @Summary Manually sync a proposal
// @Description Push the proposal's current state to every linked CRM deal
// @Tags CRM
// @Produce json
// @Security BearerAuth
// @Param id path int true "Proposal ID"
// @Success 200 {array} crmsync.SyncResult
// @Failure 404 {object} models.ErrorResponse
// @Router /crm/proposals/{id}/sync [post]
func (h *CRMHandler) SyncProposal(c echo.Context) error {
	if _, ok := c.Get("user_id").(int); !ok {
		return errors.UnauthorizedError(c, "no user in context")
	}
	proposalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	results, err := h.syncer.SyncProposal(c.Request().Context(), proposalID)
	if err != nil {
		return errors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, results)
}

// crmError maps sync engine sentinels to HTTP responses
func (h *CRMHandler) crmError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, crm.ErrUnknownProvider):
		return errors.ValidationError(c, err)
	case stderrors.Is(err, crm.ErrUnauthenticated), stderrors.Is(err, crm.ErrRefreshFailed):
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "reconnect_required",
			Message: "The CRM connection is no longer valid, please reconnect",
		})
	case stderrors.Is(err, crm.ErrNotFound):
		return errors.NotFoundError(c, err.Error())
	case stderrors.Is(err, crm.ErrProviderUnavailable):
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "provider_unavailable",
			Message: "The CRM provider is temporarily unavailable",
		})
	default:
		return errors.InternalError(c, err)
	}
}
