package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/parishledger/parishledger/internal/core/ports/services"
	"github.com/parishledger/parishledger/internal/dto"
	"github.com/parishledger/parishledger/internal/middleware"
	"github.com/parishledger/parishledger/internal/types"
)

// reportingHandler handles HTTP requests for aggregate reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers reporting routes on a church-specific group.
func registerReportingRoutes(churchSpecific *gin.RouterGroup, rs portssvc.ReportingSvcFacade) {
	h := newReportingHandler(rs)

	churchSpecific.GET("/dashboard", h.dashboard)

	reports := churchSpecific.Group("/reports")
	{
		reports.GET("/summary", h.summary)
		reports.GET("/monthly", h.monthlySummary)
		reports.GET("/months", h.monthOptions)
		reports.GET("/charts", h.charts)
	}
}

// dashboard godoc
// @Summary Dashboard snapshot
// @Description Retrieves the landing-page snapshot: totals, net balance and recent activity.
// @Tags reports
// @Produce  json
// @Param   church_id path string true "Church ID"
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/dashboard [get]
func (h *reportingHandler) dashboard(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	churchID := c.Param("church_id")

	stats, err := h.reportingService.Dashboard(c.Request.Context(), userID, churchID)
	if err != nil {
		respondServiceError(c, err, "Failed to compute dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(*stats))
}

// summary godoc
// @Summary All-time financial summary
// @Description Retrieves all-time income, expense and tithe totals with the net balance.
// @Tags reports
// @Produce  json
// @Param   church_id path string true "Church ID"
// @Success 200 {object} dto.SummaryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/reports/summary [get]
func (h *reportingHandler) summary(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	churchID := c.Param("church_id")

	summary, err := h.reportingService.Summary(c.Request.Context(), userID, churchID)
	if err != nil {
		respondServiceError(c, err, "Failed to compute summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(*summary))
}

// monthlySummary godoc
// @Summary Monthly financial summary
// @Description Retrieves totals for one calendar month. Defaults to the current month.
// @Tags reports
// @Produce  json
// @Param   church_id path string true "Church ID"
// @Param   month query string false "Month in YYYY-MM format"
// @Success 200 {object} dto.MonthlySummaryResponse
// @Failure 400 {object} ErrorResponse "Invalid month format"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/reports/monthly [get]
func (h *reportingHandler) monthlySummary(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	churchID := c.Param("church_id")

	month := types.CurrentMonth()
	if raw := c.Query("month"); raw != "" {
		parsed, err := types.ParseMonth(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid month, expected YYYY-MM"})
			return
		}
		month = parsed
	}

	totals, err := h.reportingService.MonthlySummary(c.Request.Context(), userID, churchID, month)
	if err != nil {
		respondServiceError(c, err, "Failed to compute monthly summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(month, *totals))
}

// monthOptions godoc
// @Summary Months with activity
// @Description Lists the months that have recorded transactions, newest first.
// @Tags reports
// @Produce  json
// @Param   church_id path string true "Church ID"
// @Success 200 {object} dto.MonthOptionsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/reports/months [get]
func (h *reportingHandler) monthOptions(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	churchID := c.Param("church_id")

	months, err := h.reportingService.MonthOptions(c.Request.Context(), userID, churchID)
	if err != nil {
		respondServiceError(c, err, "Failed to list report months")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthOptionsResponse(months))
}

// charts godoc
// @Summary Report chart series
// @Description Retrieves the chart series for the reports page: tithes by month, income vs expenses, category breakdown and member growth.
// @Tags reports
// @Produce  json
// @Param   church_id path string true "Church ID"
// @Success 200 {object} dto.ChartsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/reports/charts [get]
func (h *reportingHandler) charts(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	churchID := c.Param("church_id")

	charts, err := h.reportingService.Charts(c.Request.Context(), userID, churchID)
	if err != nil {
		respondServiceError(c, err, "Failed to compute charts")
		return
	}

	c.JSON(http.StatusOK, dto.ToChartsResponse(*charts))
}
