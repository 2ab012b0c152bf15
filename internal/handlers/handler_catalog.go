package handlers

import (
	"net/http"

	portssvc "github.com/eventstaff/esa_backend/internal/core/ports/services"
	"github.com/eventstaff/esa_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// catalogHandler handles HTTP requests for the contract-type and
// service-type catalogs.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func newCatalogHandler(cs portssvc.CatalogSvcFacade) *catalogHandler {
	return &catalogHandler{catalogService: cs}
}

// registerCatalogRoutes registers the catalog routes under one organization.
func registerCatalogRoutes(rg *gin.RouterGroup, cs portssvc.CatalogSvcFacade) {
	h := newCatalogHandler(cs)

	contractTypes := rg.Group("/contract-types")
	{
		contractTypes.POST("", h.createContractType)
		contractTypes.GET("", h.listContractTypes)
		contractTypes.GET("/:contract_type_id", h.getContractType)
		contractTypes.PUT("/:contract_type_id", h.updateContractType)
		contractTypes.DELETE("/:contract_type_id", h.deactivateContractType)
	}

	serviceTypes := rg.Group("/service-types")
	{
		serviceTypes.POST("", h.createServiceType)
		serviceTypes.GET("", h.listServiceTypes)
		serviceTypes.GET("/:service_type_id", h.getServiceType)
		serviceTypes.PUT("/:service_type_id", h.updateServiceType)
		serviceTypes.DELETE("/:service_type_id", h.deactivateServiceType)
	}
}

// createContractType godoc
// @Summary Create a contract type
// @Description Adds an event category with the income it bills to contractors.
// @Tags catalog
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param contractType body dto.CreateContractTypeRequest true "Contract type details"
// @Success 201 {object} dto.ContractTypeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/contract-types [post]
func (h *catalogHandler) createContractType(c *gin.Context) {
	var req dto.CreateContractTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	contractType, err := h.catalogService.CreateContractType(c.Request.Context(), userID, c.Param("organization_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to create contract type")
		return
	}
	c.JSON(http.StatusCreated, dto.ToContractTypeResponse(contractType))
}

// listContractTypes godoc
// @Summary List contract types
// @Tags catalog
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {object} dto.ListContractTypesResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/contract-types [get]
func (h *catalogHandler) listContractTypes(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	contractTypes, err := h.catalogService.ListContractTypes(c.Request.Context(), userID, c.Param("organization_id"))
	if err != nil {
		respondWithError(c, err, "Failed to list contract types")
		return
	}
	c.JSON(http.StatusOK, dto.ToListContractTypesResponse(contractTypes))
}

// getContractType godoc
// @Summary Get a contract type
// @Tags catalog
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param contract_type_id path string true "Contract type ID"
// @Success 200 {object} dto.ContractTypeResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/contract-types/{contract_type_id} [get]
func (h *catalogHandler) getContractType(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	contractType, err := h.catalogService.GetContractTypeByID(c.Request.Context(), userID, c.Param("organization_id"), c.Param("contract_type_id"))
	if err != nil {
		respondWithError(c, err, "Failed to load contract type")
		return
	}
	c.JSON(http.StatusOK, dto.ToContractTypeResponse(contractType))
}

// updateContractType godoc
// @Summary Update a contract type
// @Tags catalog
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param contract_type_id path string true "Contract type ID"
// @Param contractType body dto.UpdateContractTypeRequest true "Fields to update"
// @Success 200 {object} dto.ContractTypeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/contract-types/{contract_type_id} [put]
func (h *catalogHandler) updateContractType(c *gin.Context) {
	var req dto.UpdateContractTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	contractType, err := h.catalogService.UpdateContractType(c.Request.Context(), userID, c.Param("organization_id"), c.Param("contract_type_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update contract type")
		return
	}
	c.JSON(http.StatusOK, dto.ToContractTypeResponse(contractType))
}

// deactivateContractType godoc
// @Summary Deactivate a contract type
// @Tags catalog
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param contract_type_id path string true "Contract type ID"
// @Success 204 "No content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already deactivated"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/contract-types/{contract_type_id} [delete]
func (h *catalogHandler) deactivateContractType(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeactivateContractType(c.Request.Context(), userID, c.Param("organization_id"), c.Param("contract_type_id")); err != nil {
		respondWithError(c, err, "Failed to deactivate contract type")
		return
	}
	c.Status(http.StatusNoContent)
}

// createServiceType godoc
// @Summary Create a service type
// @Description Adds a payable role (waiter, DJ, security) with its default rate.
// @Tags catalog
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param serviceType body dto.CreateServiceTypeRequest true "Service type details"
// @Success 201 {object} dto.ServiceTypeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/service-types [post]
func (h *catalogHandler) createServiceType(c *gin.Context) {
	var req dto.CreateServiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	serviceType, err := h.catalogService.CreateServiceType(c.Request.Context(), userID, c.Param("organization_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to create service type")
		return
	}
	c.JSON(http.StatusCreated, dto.ToServiceTypeResponse(serviceType))
}

// listServiceTypes godoc
// @Summary List service types
// @Tags catalog
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {object} dto.ListServiceTypesResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/service-types [get]
func (h *catalogHandler) listServiceTypes(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	serviceTypes, err := h.catalogService.ListServiceTypes(c.Request.Context(), userID, c.Param("organization_id"))
	if err != nil {
		respondWithError(c, err, "Failed to list service types")
		return
	}
	c.JSON(http.StatusOK, dto.ToListServiceTypesResponse(serviceTypes))
}

// getServiceType godoc
// @Summary Get a service type
// @Tags catalog
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param service_type_id path string true "Service type ID"
// @Success 200 {object} dto.ServiceTypeResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/service-types/{service_type_id} [get]
func (h *catalogHandler) getServiceType(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	serviceType, err := h.catalogService.GetServiceTypeByID(c.Request.Context(), userID, c.Param("organization_id"), c.Param("service_type_id"))
	if err != nil {
		respondWithError(c, err, "Failed to load service type")
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceTypeResponse(serviceType))
}

// updateServiceType godoc
// @Summary Update a service type
// @Tags catalog
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param service_type_id path string true "Service type ID"
// @Param serviceType body dto.UpdateServiceTypeRequest true "Fields to update"
// @Success 200 {object} dto.ServiceTypeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/service-types/{service_type_id} [put]
func (h *catalogHandler) updateServiceType(c *gin.Context) {
	var req dto.UpdateServiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	serviceType, err := h.catalogService.UpdateServiceType(c.Request.Context(), userID, c.Param("organization_id"), c.Param("service_type_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update service type")
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceTypeResponse(serviceType))
}

// deactivateServiceType godoc
// @Summary Deactivate a service type
// @Tags catalog
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param service_type_id path string true "Service type ID"
// @Success 204 "No content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already deactivated"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/service-types/{service_type_id} [delete]
func (h *catalogHandler) deactivateServiceType(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeactivateServiceType(c.Request.Context(), userID, c.Param("organization_id"), c.Param("service_type_id")); err != nil {
		respondWithError(c, err, "Failed to deactivate service type")
		return
	}
	c.Status(http.StatusNoContent)
}
