package handlers

import (
	"net/http"

	portssvc "github.com/eventstaff/esa_backend/internal/core/ports/services"
	"github.com/eventstaff/esa_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// personnelHandler handles HTTP requests for staff member records.
type personnelHandler struct {
	personnelService portssvc.PersonnelSvcFacade
}

func newPersonnelHandler(ps portssvc.PersonnelSvcFacade) *personnelHandler {
	return &personnelHandler{personnelService: ps}
}

// registerPersonnelRoutes registers personnel routes under one organization.
func registerPersonnelRoutes(rg *gin.RouterGroup, ps portssvc.PersonnelSvcFacade) {
	h := newPersonnelHandler(ps)

	personnel := rg.Group("/personnel")
	{
		personnel.POST("", h.createPersonnel)
		personnel.GET("", h.listPersonnel)
		personnel.GET("/:personnel_id", h.getPersonnel)
		personnel.PUT("/:personnel_id", h.updatePersonnel)
		personnel.DELETE("/:personnel_id", h.deactivatePersonnel)
		personnel.POST("/:personnel_id/user", h.provisionUser)
	}
}

// createPersonnel godoc
// @Summary Create a staff member
// @Description Creates a personnel record without a login user.
// @Tags personnel
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param personnel body dto.CreatePersonnelRequest true "Staff member details"
// @Success 201 {object} dto.PersonnelResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already in use"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/personnel [post]
func (h *personnelHandler) createPersonnel(c *gin.Context) {
	var req dto.CreatePersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	personnel, err := h.personnelService.CreatePersonnel(c.Request.Context(), userID, c.Param("organization_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to create personnel")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPersonnelResponse(personnel))
}

// listPersonnel godoc
// @Summary List staff members
// @Description Lists the organization's staff; pass includeInactive=true for deactivated ones too.
// @Tags personnel
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param includeInactive query bool false "Include deactivated staff"
// @Success 200 {object} dto.ListPersonnelResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/personnel [get]
func (h *personnelHandler) listPersonnel(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	includeInactive := c.Query("includeInactive") == "true"

	personnel, err := h.personnelService.ListPersonnel(c.Request.Context(), userID, c.Param("organization_id"), includeInactive)
	if err != nil {
		respondWithError(c, err, "Failed to list personnel")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPersonnelResponse(personnel))
}

// getPersonnel godoc
// @Summary Get a staff member
// @Tags personnel
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param personnel_id path string true "Personnel ID"
// @Success 200 {object} dto.PersonnelResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/personnel/{personnel_id} [get]
func (h *personnelHandler) getPersonnel(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	personnel, err := h.personnelService.GetPersonnelByID(c.Request.Context(), userID, c.Param("organization_id"), c.Param("personnel_id"))
	if err != nil {
		respondWithError(c, err, "Failed to load personnel")
		return
	}
	c.JSON(http.StatusOK, dto.ToPersonnelResponse(personnel))
}

// updatePersonnel godoc
// @Summary Update a staff member
// @Tags personnel
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param personnel_id path string true "Personnel ID"
// @Param personnel body dto.UpdatePersonnelRequest true "Fields to update"
// @Success 200 {object} dto.PersonnelResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/personnel/{personnel_id} [put]
func (h *personnelHandler) updatePersonnel(c *gin.Context) {
	var req dto.UpdatePersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	personnel, err := h.personnelService.UpdatePersonnel(c.Request.Context(), userID, c.Param("organization_id"), c.Param("personnel_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update personnel")
		return
	}
	c.JSON(http.StatusOK, dto.ToPersonnelResponse(personnel))
}

// deactivatePersonnel godoc
// @Summary Deactivate a staff member
// @Description Soft-deletes the record; history referencing it stays intact. ADMIN only.
// @Tags personnel
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param personnel_id path string true "Personnel ID"
// @Success 204 "No content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already deactivated"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/personnel/{personnel_id} [delete]
func (h *personnelHandler) deactivatePersonnel(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	if err := h.personnelService.DeactivatePersonnel(c.Request.Context(), userID, c.Param("organization_id"), c.Param("personnel_id")); err != nil {
		respondWithError(c, err, "Failed to deactivate personnel")
		return
	}
	c.Status(http.StatusNoContent)
}

// provisionUser godoc
// @Summary Provision a login for a staff member
// @Description Creates a user account with the staff member's email and links it. ADMIN only.
// @Tags personnel
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param personnel_id path string true "Personnel ID"
// @Param credentials body dto.ProvisionUserRequest true "Initial password"
// @Success 201 {object} dto.PersonnelResponse
// @Failure 400 {object} ErrorResponse "No email on record"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already linked or email taken"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/personnel/{personnel_id}/user [post]
func (h *personnelHandler) provisionUser(c *gin.Context) {
	var req dto.ProvisionUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	personnel, err := h.personnelService.ProvisionUser(c.Request.Context(), userID, c.Param("organization_id"), c.Param("personnel_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to provision user")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPersonnelResponse(personnel))
}
