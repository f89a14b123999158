package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/fintracker/personal_finance_app/internal/core/ports/services"
	"github.com/fintracker/personal_finance_app/internal/dto"
	"github.com/fintracker/personal_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for dashboard aggregates.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

// registerReportingRoutes registers the report routes.
func registerReportingRoutes(rg *gin.RouterGroup, svc portssvc.ReportingSvc) {
	h := &reportingHandler{reportingService: svc}

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
		reports.GET("/monthly", h.getMonthlyTotals)
		reports.GET("/categories", h.getCategoryTotals)
		reports.GET("/portfolio", h.getPortfolio)
	}
}

func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.GetLedgerSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get ledger summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerSummaryResponse(summary))
}

func (h *reportingHandler) getMonthlyTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	totals, err := h.reportingService.GetMonthlyExpenseTotals(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get monthly totals")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyTotalResponses(totals))
}

func (h *reportingHandler) getCategoryTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	// Default to the current month when none is given.
	month := c.DefaultQuery("month", time.Now().Format("2006-01"))

	totals, err := h.reportingService.GetCategoryTotals(c.Request.Context(), month)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get category totals")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryTotalResponses(totals))
}

func (h *reportingHandler) getPortfolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.GetPortfolioSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get portfolio summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToPortfolioSummaryResponse(summary))
}
