package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mgiraudo/club_payments_app/internal/core/domain"
	portssvc "github.com/mgiraudo/club_payments_app/internal/core/ports/services"
	"github.com/mgiraudo/club_payments_app/internal/dto"
	"github.com/mgiraudo/club_payments_app/internal/middleware"
)

// reportingHandler handles HTTP requests for the reporting projections.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the payment listing and the report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	rg.GET("/payments", h.listPayments)

	reports := rg.Group("/reports")
	{
		reports.GET("/years", h.listPaymentYears)
		reports.GET("/covered-years", h.listCoveredYears)
		reports.GET("/monthly-totals", h.getMonthlyTotals)
	}
}

// listPayments returns the filtered payment listing.
func (h *reportingHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListPayments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filter := domain.PaymentFilter{
		Name:  params.Name,
		Month: params.Month,
		Year:  params.Year,
	}

	rows, err := h.reportingService.ListPayments(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list payments from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}

	rowResponses := make([]dto.PaymentRowResponse, len(rows))
	for i, row := range rows {
		rowResponses[i] = dto.ToPaymentRowResponse(row)
	}

	logger.Info("Payments listed successfully", slog.Int("count", len(rowResponses)))
	c.JSON(http.StatusOK, rowResponses)
}

// listPaymentYears returns the distinct years payments were recorded in.
func (h *reportingHandler) listPaymentYears(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	years, err := h.reportingService.ListPaymentYears(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list payment years from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payment years"})
		return
	}

	c.JSON(http.StatusOK, years)
}

// listCoveredYears returns the distinct covered-period years.
func (h *reportingHandler) listCoveredYears(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	years, err := h.reportingService.ListCoveredYears(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list covered years from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list covered years"})
		return
	}

	c.JSON(http.StatusOK, years)
}

// getMonthlyTotals returns the per-month revenue sums for the requested year.
func (h *reportingHandler) getMonthlyTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing year"})
		return
	}

	logger = logger.With(slog.Int("year", year))
	logger.Info("Received request for monthly totals")

	totals, err := h.reportingService.MonthlyTotals(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to get monthly totals from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve monthly totals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyTotalsResponse(year, totals))
}
