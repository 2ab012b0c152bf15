package handlers

import (
	"net/http"

	portssvc "github.com/eventstaff/esa_backend/internal/core/ports/services"
	"github.com/eventstaff/esa_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// contractHandler handles HTTP requests for contracts, their event detail,
// participations and assigned services.
type contractHandler struct {
	contractService   portssvc.ContractSvcFacade
	attendanceService portssvc.AttendanceSvcFacade
}

func newContractHandler(cs portssvc.ContractSvcFacade, as portssvc.AttendanceSvcFacade) *contractHandler {
	return &contractHandler{contractService: cs, attendanceService: as}
}

// registerContractRoutes registers the contract routes under one organization.
func registerContractRoutes(rg *gin.RouterGroup, cs portssvc.ContractSvcFacade, as portssvc.AttendanceSvcFacade) {
	h := newContractHandler(cs, as)

	contracts := rg.Group("/contracts")
	{
		contracts.POST("", h.createContract)
		contracts.GET("", h.listContracts)
		contracts.GET("/:contract_id", h.getContract)
		contracts.PUT("/:contract_id", h.updateContract)
		contracts.POST("/:contract_id/complete", h.completeContract)
		contracts.GET("/:contract_id/event", h.getContractEvent)
		contracts.PUT("/:contract_id/event", h.updateContractEvent)
		contracts.GET("/:contract_id/participations", h.listParticipations)
		contracts.POST("/:contract_id/participations", h.addParticipation)
	}

	participations := rg.Group("/participations")
	{
		participations.DELETE("/:participation_id", h.removeParticipation)
		participations.PUT("/:participation_id/attendance", h.updateAttendance)
		participations.GET("/:participation_id/services", h.listAssignedServices)
		participations.POST("/:participation_id/services", h.addAssignedService)
	}

	services := rg.Group("/assigned-services")
	{
		services.PUT("/:assigned_service_id", h.updateAssignedService)
		services.DELETE("/:assigned_service_id", h.removeAssignedService)
	}
}

// createContract godoc
// @Summary Create a contract
// @Description Opens an ACTIVA contract for a contractor on a given event date.
// @Tags contracts
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param contract body dto.CreateContractRequest true "Contract details"
// @Success 201 {object} dto.ContractResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/contracts [post]
func (h *contractHandler) createContract(c *gin.Context) {
	var req dto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	contract, err := h.contractService.CreateContract(c.Request.Context(), userID, c.Param("organization_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to create contract")
		return
	}
	c.JSON(http.StatusCreated, dto.ToContractResponse(contract))
}

// listContracts godoc
// @Summary List contracts
// @Description Returns a page of contracts ordered by event date descending.
// @Tags contracts
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token"
// @Param status query string false "Filter by status" Enums(ACTIVA, COMPLETADO)
// @Success 200 {object} dto.ListContractsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/contracts [get]
func (h *contractHandler) listContracts(c *gin.Context) {
	var params dto.ListContractsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	resp, err := h.contractService.ListContracts(c.Request.Context(), userID, c.Param("organization_id"), params)
	if err != nil {
		respondWithError(c, err, "Failed to list contracts")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getContract godoc
// @Summary Get a contract
// @Tags contracts
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param contract_id path string true "Contract ID"
// @Success 200 {object} dto.ContractResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/contracts/{contract_id} [get]
func (h *contractHandler) getContract(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	contract, err := h.contractService.GetContractByID(c.Request.Context(), userID, c.Param("organization_id"), c.Param("contract_id"))
	if err != nil {
		respondWithError(c, err, "Failed to load contract")
		return
	}
	c.JSON(http.StatusOK, dto.ToContractResponse(contract))
}

// updateContract godoc
// @Summary Update a contract
// @Description Updates mutable fields while the contract is still ACTIVA.
// @Tags contracts
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param contract_id path string true "Contract ID"
// @Param contract body dto.UpdateContractRequest true "Fields to update"
// @Success 200 {object} dto.ContractResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Contract no longer ACTIVA"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/contracts/{contract_id} [put]
func (h *contractHandler) updateContract(c *gin.Context) {
	var req dto.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	contract, err := h.contractService.UpdateContract(c.Request.Context(), userID, c.Param("organization_id"), c.Param("contract_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update contract")
		return
	}
	c.JSON(http.StatusOK, dto.ToContractResponse(contract))
}

// completeContract godoc
// @Summary Complete a contract
// @Description Moves an ACTIVA contract to COMPLETADO. Fails while any
// @Description participation is still ASIGNADO without a recorded attendance.
// @Tags contracts
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param contract_id path string true "Contract ID"
// @Success 200 {object} dto.ContractResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Unsettled attendance"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/contracts/{contract_id}/complete [post]
func (h *contractHandler) completeContract(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	contract, err := h.contractService.CompleteContract(c.Request.Context(), userID, c.Param("organization_id"), c.Param("contract_id"))
	if err != nil {
		respondWithError(c, err, "Failed to complete contract")
		return
	}
	c.JSON(http.StatusOK, dto.ToContractResponse(contract))
}

// getContractEvent godoc
// @Summary Get the contract's event detail
// @Description Returns the event record, creating an empty one on first access.
// @Tags contracts
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param contract_id path string true "Contract ID"
// @Success 200 {object} dto.ContractEventResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/contracts/{contract_id}/event [get]
func (h *contractHandler) getContractEvent(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	event, err := h.contractService.GetContractEvent(c.Request.Context(), userID, c.Param("organization_id"), c.Param("contract_id"))
	if err != nil {
		respondWithError(c, err, "Failed to load contract event")
		return
	}
	c.JSON(http.StatusOK, dto.ToContractEventResponse(event))
}

// updateContractEvent godoc
// @Summary Update the contract's event detail
// @Description Records the event's actual start/end times and notes.
// @Tags contracts
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param contract_id path string true "Contract ID"
// @Param event body dto.UpdateContractEventRequest true "Event timing and notes"
// @Success 200 {object} dto.ContractEventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Contract no longer ACTIVA"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/contracts/{contract_id}/event [put]
func (h *contractHandler) updateContractEvent(c *gin.Context) {
	var req dto.UpdateContractEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	event, err := h.contractService.UpdateContractEvent(c.Request.Context(), userID, c.Param("organization_id"), c.Param("contract_id"), req.StartedAt, req.EndedAt, req.Notes)
	if err != nil {
		respondWithError(c, err, "Failed to update contract event")
		return
	}
	c.JSON(http.StatusOK, dto.ToContractEventResponse(event))
}

// listParticipations godoc
// @Summary List a contract's participations
// @Tags participations
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param contract_id path string true "Contract ID"
// @Success 200 {object} dto.ListParticipationsResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/contracts/{contract_id}/participations [get]
func (h *contractHandler) listParticipations(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	participations, err := h.contractService.ListParticipations(c.Request.Context(), userID, c.Param("organization_id"), c.Param("contract_id"))
	if err != nil {
		respondWithError(c, err, "Failed to list participations")
		return
	}
	c.JSON(http.StatusOK, dto.ToListParticipationsResponse(participations))
}

// addParticipation godoc
// @Summary Assign a staff member to a contract's event
// @Description The participation starts in ASIGNADO. A staff member can be
// @Description assigned at most once per event.
// @Tags participations
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param contract_id path string true "Contract ID"
// @Param participation body dto.CreateParticipationRequest true "Staff member to assign"
// @Success 201 {object} dto.ParticipationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already assigned or contract not ACTIVA"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/contracts/{contract_id}/participations [post]
func (h *contractHandler) addParticipation(c *gin.Context) {
	var req dto.CreateParticipationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	participation, err := h.contractService.AddParticipation(c.Request.Context(), userID, c.Param("organization_id"), c.Param("contract_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to add participation")
		return
	}
	c.JSON(http.StatusCreated, dto.ToParticipationResponse(participation))
}

// removeParticipation godoc
// @Summary Unassign a staff member from an event
// @Tags participations
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param participation_id path string true "Participation ID"
// @Success 204 "No content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Contract no longer ACTIVA"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/participations/{participation_id} [delete]
func (h *contractHandler) removeParticipation(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	if err := h.contractService.RemoveParticipation(c.Request.Context(), userID, c.Param("organization_id"), c.Param("participation_id")); err != nil {
		respondWithError(c, err, "Failed to remove participation")
		return
	}
	c.Status(http.StatusNoContent)
}

// updateAttendance godoc
// @Summary Record attendance for a participation
// @Description PUNTUAL and TARDE stamp an arrival time, ASIGNADO and AUSENTE
// @Description clear it. Only allowed while the contract is ACTIVA.
// @Tags participations
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param participation_id path string true "Participation ID"
// @Param attendance body dto.UpdateAttendanceRequest true "Attendance state"
// @Success 200 {object} dto.ParticipationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Contract no longer ACTIVA"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/participations/{participation_id}/attendance [put]
func (h *contractHandler) updateAttendance(c *gin.Context) {
	var req dto.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	participation, err := h.attendanceService.UpdateAttendance(c.Request.Context(), userID, c.Param("organization_id"), c.Param("participation_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update attendance")
		return
	}
	c.JSON(http.StatusOK, dto.ToParticipationResponse(participation))
}

// listAssignedServices godoc
// @Summary List the service lines of a participation
// @Tags participations
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param participation_id path string true "Participation ID"
// @Success 200 {object} dto.ListAssignedServicesResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/participations/{participation_id}/services [get]
func (h *contractHandler) listAssignedServices(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	services, err := h.contractService.ListAssignedServices(c.Request.Context(), userID, c.Param("organization_id"), c.Param("participation_id"))
	if err != nil {
		respondWithError(c, err, "Failed to list assigned services")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAssignedServicesResponse(services))
}

// addAssignedService godoc
// @Summary Add a service line under a participation
// @Description When agreedAmount is omitted, the service type's default rate
// @Description is used. The line starts in PENDIENTE.
// @Tags participations
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param participation_id path string true "Participation ID"
// @Param service body dto.CreateAssignedServiceRequest true "Service line"
// @Success 201 {object} dto.AssignedServiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Contract no longer ACTIVA"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/participations/{participation_id}/services [post]
func (h *contractHandler) addAssignedService(c *gin.Context) {
	var req dto.CreateAssignedServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	service, err := h.contractService.AddAssignedService(c.Request.Context(), userID, c.Param("organization_id"), c.Param("participation_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to add assigned service")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAssignedServiceResponse(service))
}

// updateAssignedService godoc
// @Summary Change the agreed amount of a service line
// @Description Only PENDIENTE lines outside any batch can be edited.
// @Tags participations
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param assigned_service_id path string true "Assigned service ID"
// @Param service body dto.UpdateAssignedServiceRequest true "New amount"
// @Success 200 {object} dto.AssignedServiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Line paid or frozen in a batch"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/assigned-services/{assigned_service_id} [put]
func (h *contractHandler) updateAssignedService(c *gin.Context) {
	var req dto.UpdateAssignedServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	service, err := h.contractService.UpdateAssignedService(c.Request.Context(), userID, c.Param("organization_id"), c.Param("assigned_service_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update assigned service")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssignedServiceResponse(service))
}

// removeAssignedService godoc
// @Summary Delete a service line
// @Description Only PENDIENTE lines outside any batch can be deleted.
// @Tags participations
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param assigned_service_id path string true "Assigned service ID"
// @Success 204 "No content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Line paid or frozen in a batch"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/assigned-services/{assigned_service_id} [delete]
func (h *contractHandler) removeAssignedService(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	if err := h.contractService.RemoveAssignedService(c.Request.Context(), userID, c.Param("organization_id"), c.Param("assigned_service_id")); err != nil {
		respondWithError(c, err, "Failed to remove assigned service")
		return
	}
	c.Status(http.StatusNoContent)
}
