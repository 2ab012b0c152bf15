package handlers

import (
	"net/http"

	portssvc "github.com/eventstaff/esa_backend/internal/core/ports/services"
	"github.com/eventstaff/esa_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// organizationHandler handles HTTP requests related to organizations.
type organizationHandler struct {
	organizationService portssvc.OrganizationSvcFacade
	personnelService    portssvc.PersonnelSvcFacade
}

func newOrganizationHandler(os portssvc.OrganizationSvcFacade, ps portssvc.PersonnelSvcFacade) *organizationHandler {
	return &organizationHandler{organizationService: os, personnelService: ps}
}

// registerOrganizationRoutes registers the top-level organization routes.
func registerOrganizationRoutes(rg *gin.RouterGroup, os portssvc.OrganizationSvcFacade, ps portssvc.PersonnelSvcFacade) {
	h := newOrganizationHandler(os, ps)

	organizations := rg.Group("/organizations")
	{
		organizations.POST("", h.createOrganization)
		organizations.GET("", h.listMyOrganizations)
		organizations.GET("/:organization_id", h.getOrganization)
		organizations.GET("/:organization_id/me", h.getMyMembership)
	}
}

// createOrganization godoc
// @Summary Create a new organization
// @Description Creates an organization and makes the caller its ADMIN staff member.
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body dto.CreateOrganizationRequest true "Organization details"
// @Success 201 {object} dto.OrganizationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations [post]
func (h *organizationHandler) createOrganization(c *gin.Context) {
	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	organization, err := h.organizationService.CreateOrganization(c.Request.Context(), userID, req.Name, req.Description)
	if err != nil {
		respondWithError(c, err, "Failed to create organization")
		return
	}
	c.JSON(http.StatusCreated, dto.ToOrganizationResponse(organization))
}

// listMyOrganizations godoc
// @Summary List organizations for current user
// @Description Returns the organizations the caller belongs to through a staff record.
// @Tags organizations
// @Produce json
// @Success 200 {object} dto.ListOrganizationsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations [get]
func (h *organizationHandler) listMyOrganizations(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	organizations, err := h.organizationService.ListOrganizationsByUser(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list organizations")
		return
	}
	c.JSON(http.StatusOK, dto.ToListOrganizationsResponse(organizations))
}

// getOrganization godoc
// @Summary Get an organization
// @Description Returns the organization. Members only.
// @Tags organizations
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id} [get]
func (h *organizationHandler) getOrganization(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	organizationID := c.Param("organization_id")

	// Membership gate; non-members get 404 from the staff lookup.
	if _, err := h.personnelService.GetPersonnelForUser(c.Request.Context(), userID, organizationID); err != nil {
		respondWithError(c, err, "Failed to load organization")
		return
	}

	organization, err := h.organizationService.GetOrganizationByID(c.Request.Context(), organizationID)
	if err != nil {
		respondWithError(c, err, "Failed to load organization")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationResponse(organization))
}

// getMyMembership godoc
// @Summary Get own staff record
// @Description Returns the caller's personnel record in the organization.
// @Tags organizations
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {object} dto.PersonnelResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/me [get]
func (h *organizationHandler) getMyMembership(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	organizationID := c.Param("organization_id")

	personnel, err := h.personnelService.GetPersonnelForUser(c.Request.Context(), userID, organizationID)
	if err != nil {
		respondWithError(c, err, "Failed to load membership")
		return
	}
	c.JSON(http.StatusOK, dto.ToPersonnelResponse(personnel))
}
