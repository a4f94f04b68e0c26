package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/abhishekvarma12345/money-maven-goals/internal/core/ports/services"
	"github.com/abhishekvarma12345/money-maven-goals/internal/dto"
	"github.com/abhishekvarma12345/money-maven-goals/internal/middleware"
	"github.com/abhishekvarma12345/money-maven-goals/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// analyticsHandler handles the read-only aggregation endpoints.
type analyticsHandler struct {
	analyticsService portssvc.AnalyticsSvcFacade
	insightService   portssvc.InsightSvcFacade
	budgetService    portssvc.BudgetSvcFacade
	defaultMonths    int
}

// newAnalyticsHandler creates a new analyticsHandler.
func newAnalyticsHandler(as portssvc.AnalyticsSvcFacade, is portssvc.InsightSvcFacade, bs portssvc.BudgetSvcFacade, cfg *config.Config) *analyticsHandler {
	return &analyticsHandler{
		analyticsService: as,
		insightService:   is,
		budgetService:    bs,
		defaultMonths:    cfg.DefaultWindowMonths,
	}
}

// registerAnalyticsRoutes registers the aggregation and insight routes.
func registerAnalyticsRoutes(rg *gin.RouterGroup, cfg *config.Config, analyticsService portssvc.AnalyticsSvcFacade, insightService portssvc.InsightSvcFacade, budgetService portssvc.BudgetSvcFacade) {
	h := newAnalyticsHandler(analyticsService, insightService, budgetService, cfg)

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/summary", h.getSummary)
		analytics.GET("/budget", h.getBudgetReport)
		analytics.GET("/insights", h.getInsights)
		analytics.GET("/dashboard", h.getDashboard)
	}
}

// getSummary godoc
// @Summary Spending summary
// @Description Aggregates the window's expenses into category totals and a monthly series
// @Tags analytics
// @Produce  json
// @Param   months query int false "Window size in months (3, 6 or 12)"
// @Success 200 {object} dto.SpendingSummaryResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to compute summary"
// @Security BearerAuth
// @Router /analytics/summary [get]
func (h *analyticsHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	months, ok := parseMonthsQuery(c, h.defaultMonths)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "months must be 3, 6 or 12"})
		return
	}

	summary, err := h.analyticsService.SpendingSummary(c.Request.Context(), userID, months, time.Now())
	if err != nil {
		logger.Error("Failed to compute spending summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute spending summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSpendingSummaryResponse(summary))
}

// getBudgetReport godoc
// @Summary Budget report
// @Description Evaluates budget goals against the window's spending
// @Tags analytics
// @Produce  json
// @Param   months query int false "Window size in months (3, 6 or 12)"
// @Success 200 {object} dto.BudgetReportResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to evaluate budget"
// @Security BearerAuth
// @Router /analytics/budget [get]
func (h *analyticsHandler) getBudgetReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	months, ok := parseMonthsQuery(c, h.defaultMonths)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "months must be 3, 6 or 12"})
		return
	}

	report, err := h.budgetService.Evaluate(c.Request.Context(), userID, months, time.Now())
	if err != nil {
		logger.Error("Failed to evaluate budget", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to evaluate budget"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetReportResponse(report))
}

// getInsights godoc
// @Summary Spending insights
// @Description Derives top categories, trend classification and the savings opportunity
// @Tags analytics
// @Produce  json
// @Param   months query int false "Window size in months (3, 6 or 12)"
// @Success 200 {object} dto.InsightsResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to compute insights"
// @Security BearerAuth
// @Router /analytics/insights [get]
func (h *analyticsHandler) getInsights(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	months, ok := parseMonthsQuery(c, h.defaultMonths)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "months must be 3, 6 or 12"})
		return
	}

	insights, err := h.insightService.Insights(c.Request.Context(), userID, months, time.Now())
	if err != nil {
		logger.Error("Failed to compute insights", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute insights"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInsightsResponse(insights))
}

// getDashboard godoc
// @Summary Dashboard payload
// @Description Combines the spending summary, budget report and trend figures into one response
// @Tags analytics
// @Produce  json
// @Param   months query int false "Window size in months (3, 6 or 12)"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to compute dashboard"
// @Security BearerAuth
// @Router /analytics/dashboard [get]
func (h *analyticsHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	months, ok := parseMonthsQuery(c, h.defaultMonths)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "months must be 3, 6 or 12"})
		return
	}

	// The three reads share one reference time so their windows line up.
	now := time.Now()
	ctx := c.Request.Context()

	summary, err := h.analyticsService.SpendingSummary(ctx, userID, months, now)
	if err != nil {
		logger.Error("Failed to compute spending summary for dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute dashboard"})
		return
	}

	report, err := h.budgetService.Evaluate(ctx, userID, months, now)
	if err != nil {
		logger.Error("Failed to evaluate budget for dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute dashboard"})
		return
	}

	insights, err := h.insightService.Insights(ctx, userID, months, now)
	if err != nil {
		logger.Error("Failed to compute insights for dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute dashboard"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(summary, report, insights.MonthOverMonthChange))
}
