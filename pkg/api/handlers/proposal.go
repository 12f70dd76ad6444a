package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/dealpage/dealpage/pkg/api/errors"
	"github.com/dealpage/dealpage/pkg/proposals"
)

// ProposalHandler handles proposal-related HTTP requests
type ProposalHandler struct {
	service   *proposals.Service
	validator *validator.Validate
}

// NewProposalHandler creates a new proposal handler
func NewProposalHandler(service *proposals.Service) *ProposalHandler {
	return &ProposalHandler{
		service:   service,
		validator: validator.New(),
	}
}

// Create godoc
// @Summary Create a proposal
// @Description Create a new draft proposal
// @Tags Proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body proposals.CreateProposalRequest true "Proposal data"
// @Success 201 {object} proposals.ProposalResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /proposals [post]
func (h *ProposalHandler) Create(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "no user in context")
	}

	var req proposals.CreateProposalRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	resp, err := h.service.CreateProposal(c.Request().Context(), userID, req)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// List returns the user's proposals
func (h *ProposalHandler) List(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "no user in context")
	}

	resp, err := h.service.ListProposals(c.Request().Context(), userID)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Get returns one proposal
func (h *ProposalHandler) Get(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "no user in context")
	}
	proposalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	resp, err := h.service.GetProposal(c.Request().Context(), userID, proposalID)
	if err != nil {
		return errors.NotFoundError(c, "proposal")
	}
	return c.JSON(http.StatusOK, resp)
}

// Update modifies a proposal's title or amount
func (h *ProposalHandler) Update(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "no user in context")
	}
	proposalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	var req proposals.UpdateProposalRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	resp, err := h.service.UpdateProposal(c.Request().Context(), userID, proposalID, req)
	if err != nil {
		return errors.NotFoundError(c, "proposal")
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateStatus godoc
// @Summary Update proposal status
// @Description Transition the proposal's lifecycle status; linked CRM deals
// @Description are updated in the background
// @Tags Proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Proposal ID"
// @Param request body proposals.UpdateStatusRequest true "New status"
// @Success 200 {object} proposals.ProposalResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /proposals/{id}/status [put]
func (h *ProposalHandler) UpdateStatus(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "no user in context")
	}
	proposalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	var req proposals.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	resp, err := h.service.UpdateStatus(c.Request().Context(), userID, proposalID, req)
	if err != nil {
		return errors.NotFoundError(c, "proposal")
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete removes a proposal
func (h *ProposalHandler) Delete(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "no user in context")
	}
	proposalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.service.DeleteProposal(c.Request().Context(), userID, proposalID); err != nil {
		return errors.NotFoundError(c, "proposal")
	}
	return c.NoContent(http.StatusNoContent)
}
