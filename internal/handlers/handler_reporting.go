package handlers

import (
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/eventstaff/esa_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

const reportDateLayout = "2006-01-02"

// reportingHandler handles HTTP requests for the admin reporting views.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the report routes under one organization.
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade) {
	h := newReportingHandler(rs)

	reports := rg.Group("/reports")
	{
		reports.GET("/monthly-balance", h.getMonthlyBalance)
		reports.GET("/daily-control", h.getDailyControl)
		reports.GET("/profitability", h.getContractProfitability)
	}
}

// getMonthlyBalance godoc
// @Summary Monthly balance report
// @Description Per-month income, payroll cost and margin for one year.
// @Tags reports
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param year query int true "Calendar year"
// @Success 200 {object} dto.MonthlyBalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/reports/monthly-balance [get]
func (h *reportingHandler) getMonthlyBalance(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid year parameter"})
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	resp, err := h.reportingService.GetMonthlyBalance(c.Request.Context(), userID, c.Param("organization_id"), year)
	if err != nil {
		respondWithError(c, err, "Failed to build monthly balance report")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getDailyControl godoc
// @Summary Daily control report
// @Description Contracts of one day with their staffing and attendance summary.
// @Tags reports
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param date query string true "Day to report (YYYY-MM-DD)"
// @Success 200 {object} dto.DailyControlResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/reports/daily-control [get]
func (h *reportingHandler) getDailyControl(c *gin.Context) {
	day, err := time.Parse(reportDateLayout, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date parameter, expected YYYY-MM-DD"})
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	resp, err := h.reportingService.GetDailyControl(c.Request.Context(), userID, c.Param("organization_id"), day)
	if err != nil {
		respondWithError(c, err, "Failed to build daily control report")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getContractProfitability godoc
// @Summary Contract profitability report
// @Description Per-contract income versus payroll cost over a date range.
// @Tags reports
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.ProfitabilityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/reports/profitability [get]
func (h *reportingHandler) getContractProfitability(c *gin.Context) {
	from, err := time.Parse(reportDateLayout, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid from parameter, expected YYYY-MM-DD"})
		return
	}
	to, err := time.Parse(reportDateLayout, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid to parameter, expected YYYY-MM-DD"})
		return
	}
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	resp, err := h.reportingService.GetContractProfitability(c.Request.Context(), userID, c.Param("organization_id"), from, to)
	if err != nil {
		respondWithError(c, err, "Failed to build profitability report")
		return
	}
	c.JSON(http.StatusOK, resp)
}
