package handlers

import (
	"errors"
	"io"
	"net/http"

	portssvc "github.com/eventstaff/esa_backend/internal/core/ports/services"
	"github.com/eventstaff/esa_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// payrollHandler handles HTTP requests for the payroll batching workflow.
type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

func newPayrollHandler(ps portssvc.PayrollSvcFacade) *payrollHandler {
	return &payrollHandler{payrollService: ps}
}

// registerPayrollRoutes registers the payroll routes under one organization.
func registerPayrollRoutes(rg *gin.RouterGroup, ps portssvc.PayrollSvcFacade) {
	h := newPayrollHandler(ps)

	payroll := rg.Group("/payroll")
	{
		payroll.GET("/pending-services", h.listPendingServices)
		payroll.GET("/my-payments", h.listMyPayments)
		payroll.POST("/batches", h.createBatch)
		payroll.GET("/batches", h.listBatches)
		payroll.GET("/batches/:batch_id", h.getBatch)
		payroll.PUT("/batches/:batch_id/collection/:personnel_id", h.toggleCollection)
		payroll.POST("/batches/:batch_id/finalize", h.finalizeBatch)
		payroll.POST("/batches/:batch_id/void", h.voidBatch)
		payroll.PUT("/batches/:batch_id/scheduled-date", h.updateScheduledDate)
		payroll.POST("/batches/:batch_id/approve", h.approveBatch)
		payroll.POST("/batches/:batch_id/claim", h.claimBatch)
	}
}

// listPendingServices godoc
// @Summary List pending services grouped per staff member
// @Description Aggregates every PENDIENTE service on COMPLETADO contracts
// @Description with advisory payable amounts after attendance discounts.
// @Tags payroll
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {object} dto.ListPendingServicesResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/payroll/pending-services [get]
func (h *payrollHandler) listPendingServices(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	resp, err := h.payrollService.ListPendingServices(c.Request.Context(), userID, c.Param("organization_id"))
	if err != nil {
		respondWithError(c, err, "Failed to list pending services")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listMyPayments godoc
// @Summary List the requester's own payments
// @Description Returns the requester's rollups across non-voided batches.
// @Tags payroll
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {object} dto.ListMyPaymentsResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Requester has no staff record"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/payroll/my-payments [get]
func (h *payrollHandler) listMyPayments(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	resp, err := h.payrollService.ListMyPayments(c.Request.Context(), userID, c.Param("organization_id"))
	if err != nil {
		respondWithError(c, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// createBatch godoc
// @Summary Create a payment batch
// @Description Freezes the selected pending services into a new
// @Description EN_PREPARACION batch, snapshotting amounts and discounts.
// @Tags payroll
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param batch body dto.CreateBatchRequest true "Batch name and service selection"
// @Success 201 {object} dto.BatchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "A selected service is no longer pending"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/payroll/batches [post]
func (h *payrollHandler) createBatch(c *gin.Context) {
	var req dto.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	batch, err := h.payrollService.CreateBatch(c.Request.Context(), userID, c.Param("organization_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to create batch")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBatchResponse(batch))
}

// listBatches godoc
// @Summary List payment batches
// @Tags payroll
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {object} dto.ListBatchesResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/payroll/batches [get]
func (h *payrollHandler) listBatches(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	batches, err := h.payrollService.ListBatches(c.Request.Context(), userID, c.Param("organization_id"))
	if err != nil {
		respondWithError(c, err, "Failed to list batches")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBatchesResponse(batches))
}

// getBatch godoc
// @Summary Get a payment batch
// @Description Returns the batch header with its frozen details and
// @Description per-person rollups.
// @Tags payroll
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param batch_id path string true "Batch ID"
// @Success 200 {object} dto.GetBatchResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/payroll/batches/{batch_id} [get]
func (h *payrollHandler) getBatch(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	resp, err := h.payrollService.GetBatch(c.Request.Context(), userID, c.Param("organization_id"), c.Param("batch_id"))
	if err != nil {
		respondWithError(c, err, "Failed to load batch")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// toggleCollection godoc
// @Summary Flip a staff member's collection flag
// @Description Only allowed while the batch is EN_PREPARACION. The flag
// @Description decides the paid/reverted partition at finalize.
// @Tags payroll
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param batch_id path string true "Batch ID"
// @Param personnel_id path string true "Personnel ID"
// @Param collection body dto.ToggleCollectionRequest true "New flag value"
// @Success 204 "No content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Batch left preparation"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/payroll/batches/{batch_id}/collection/{personnel_id} [put]
func (h *payrollHandler) toggleCollection(c *gin.Context) {
	var req dto.ToggleCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	err := h.payrollService.ToggleCollection(c.Request.Context(), userID, c.Param("organization_id"), c.Param("batch_id"), c.Param("personnel_id"), *req.CollectionDone)
	if err != nil {
		respondWithError(c, err, "Failed to toggle collection flag")
		return
	}
	c.Status(http.StatusNoContent)
}

// finalizeBatch godoc
// @Summary Finalize a payment batch
// @Description Settles an EN_PREPARACION batch: services of staff with
// @Description collection done become PAGADO, the rest revert to PENDIENTE
// @Description and leave the batch.
// @Tags payroll
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param batch_id path string true "Batch ID"
// @Param finalize body dto.FinalizeBatchRequest true "Optional scheduled date"
// @Success 200 {object} dto.FinalizeBatchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Batch not in preparation"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/payroll/batches/{batch_id}/finalize [post]
func (h *payrollHandler) finalizeBatch(c *gin.Context) {
	// The body is optional; finalize with no payload keeps the current date.
	var req dto.FinalizeBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		bindError(c, err)
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	resp, err := h.payrollService.FinalizeBatch(c.Request.Context(), userID, c.Param("organization_id"), c.Param("batch_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to finalize batch")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// voidBatch godoc
// @Summary Void a payment batch
// @Description Cancels the batch and releases every frozen service back to
// @Description PENDIENTE. Allowed from any status except ANULADO.
// @Tags payroll
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param batch_id path string true "Batch ID"
// @Success 204 "No content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Batch already voided"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/payroll/batches/{batch_id}/void [post]
func (h *payrollHandler) voidBatch(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	if err := h.payrollService.VoidBatch(c.Request.Context(), userID, c.Param("organization_id"), c.Param("batch_id")); err != nil {
		respondWithError(c, err, "Failed to void batch")
		return
	}
	c.Status(http.StatusNoContent)
}

// updateScheduledDate godoc
// @Summary Change a batch's scheduled payment date
// @Description Only allowed while the batch is EN_PREPARACION.
// @Tags payroll
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param batch_id path string true "Batch ID"
// @Param date body dto.UpdateBatchDateRequest true "New scheduled date"
// @Success 200 {object} dto.BatchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Date frozen in current status"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/payroll/batches/{batch_id}/scheduled-date [put]
func (h *payrollHandler) updateScheduledDate(c *gin.Context) {
	var req dto.UpdateBatchDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	batch, err := h.payrollService.UpdateScheduledDate(c.Request.Context(), userID, c.Param("organization_id"), c.Param("batch_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update scheduled date")
		return
	}
	c.JSON(http.StatusOK, dto.ToBatchResponse(batch))
}

// approveBatch godoc
// @Summary Advance a batch through approval
// @Description Moves FINALIZADO to PENDIENTE_APROBACION and
// @Description PENDIENTE_APROBACION to PAGADO.
// @Tags payroll
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param batch_id path string true "Batch ID"
// @Success 200 {object} dto.BatchResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Batch not approvable in current status"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/payroll/batches/{batch_id}/approve [post]
func (h *payrollHandler) approveBatch(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	batch, err := h.payrollService.ApproveBatch(c.Request.Context(), userID, c.Param("organization_id"), c.Param("batch_id"))
	if err != nil {
		respondWithError(c, err, "Failed to approve batch")
		return
	}
	c.JSON(http.StatusOK, dto.ToBatchResponse(batch))
}

// claimBatch godoc
// @Summary Dispute a batch
// @Description Flags a FINALIZADO or PENDIENTE_APROBACION batch as RECLAMADO.
// @Tags payroll
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param batch_id path string true "Batch ID"
// @Success 200 {object} dto.BatchResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Batch not claimable in current status"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/payroll/batches/{batch_id}/claim [post]
func (h *payrollHandler) claimBatch(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	batch, err := h.payrollService.ClaimBatch(c.Request.Context(), userID, c.Param("organization_id"), c.Param("batch_id"))
	if err != nil {
		respondWithError(c, err, "Failed to claim batch")
		return
	}
	c.JSON(http.StatusOK, dto.ToBatchResponse(batch))
}
