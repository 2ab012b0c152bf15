package handlers

import (
	"net/http"

	portssvc "github.com/eventstaff/esa_backend/internal/core/ports/services"
	"github.com/eventstaff/esa_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// contractorHandler handles HTTP requests for client companies.
type contractorHandler struct {
	contractorService portssvc.ContractorSvcFacade
}

func newContractorHandler(cs portssvc.ContractorSvcFacade) *contractorHandler {
	return &contractorHandler{contractorService: cs}
}

// registerContractorRoutes registers contractor routes under one organization.
func registerContractorRoutes(rg *gin.RouterGroup, cs portssvc.ContractorSvcFacade) {
	h := newContractorHandler(cs)

	contractors := rg.Group("/contractors")
	{
		contractors.POST("", h.createContractor)
		contractors.GET("", h.listContractors)
		contractors.GET("/:contractor_id", h.getContractor)
		contractors.PUT("/:contractor_id", h.updateContractor)
		contractors.DELETE("/:contractor_id", h.deactivateContractor)
	}
}

// createContractor godoc
// @Summary Create a contractor
// @Description Registers a client company the agency staffs events for.
// @Tags contractors
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param contractor body dto.CreateContractorRequest true "Contractor details"
// @Success 201 {object} dto.ContractorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/contractors [post]
func (h *contractorHandler) createContractor(c *gin.Context) {
	var req dto.CreateContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	contractor, err := h.contractorService.CreateContractor(c.Request.Context(), userID, c.Param("organization_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to create contractor")
		return
	}
	c.JSON(http.StatusCreated, dto.ToContractorResponse(contractor))
}

// listContractors godoc
// @Summary List contractors
// @Tags contractors
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {object} dto.ListContractorsResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/contractors [get]
func (h *contractorHandler) listContractors(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	contractors, err := h.contractorService.ListContractors(c.Request.Context(), userID, c.Param("organization_id"))
	if err != nil {
		respondWithError(c, err, "Failed to list contractors")
		return
	}
	c.JSON(http.StatusOK, dto.ToListContractorsResponse(contractors))
}

// getContractor godoc
// @Summary Get a contractor
// @Tags contractors
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param contractor_id path string true "Contractor ID"
// @Success 200 {object} dto.ContractorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/contractors/{contractor_id} [get]
func (h *contractorHandler) getContractor(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	contractor, err := h.contractorService.GetContractorByID(c.Request.Context(), userID, c.Param("organization_id"), c.Param("contractor_id"))
	if err != nil {
		respondWithError(c, err, "Failed to load contractor")
		return
	}
	c.JSON(http.StatusOK, dto.ToContractorResponse(contractor))
}

// updateContractor godoc
// @Summary Update a contractor
// @Tags contractors
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param contractor_id path string true "Contractor ID"
// @Param contractor body dto.UpdateContractorRequest true "Fields to update"
// @Success 200 {object} dto.ContractorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/contractors/{contractor_id} [put]
func (h *contractorHandler) updateContractor(c *gin.Context) {
	var req dto.UpdateContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	contractor, err := h.contractorService.UpdateContractor(c.Request.Context(), userID, c.Param("organization_id"), c.Param("contractor_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update contractor")
		return
	}
	c.JSON(http.StatusOK, dto.ToContractorResponse(contractor))
}

// deactivateContractor godoc
// @Summary Deactivate a contractor
// @Description Soft-deletes the contractor. Existing contracts stay intact. ADMIN only.
// @Tags contractors
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param contractor_id path string true "Contractor ID"
// @Success 204 "No content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already deactivated"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/contractors/{contractor_id} [delete]
func (h *contractorHandler) deactivateContractor(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	if err := h.contractorService.DeactivateContractor(c.Request.Context(), userID, c.Param("organization_id"), c.Param("contractor_id")); err != nil {
		respondWithError(c, err, "Failed to deactivate contractor")
		return
	}
	c.Status(http.StatusNoContent)
}
