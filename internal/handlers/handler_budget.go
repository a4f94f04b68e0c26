package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/abhishekvarma12345/money-maven-goals/internal/apperrors"
	"github.com/abhishekvarma12345/money-maven-goals/internal/core/domain"
	portssvc "github.com/abhishekvarma12345/money-maven-goals/internal/core/ports/services"
	"github.com/abhishekvarma12345/money-maven-goals/internal/dto"
	"github.com/abhishekvarma12345/money-maven-goals/internal/middleware"
	"github.com/abhishekvarma12345/money-maven-goals/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests related to budget goals.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
	defaultMonths int
}

// newBudgetHandler creates a new budgetHandler.
func newBudgetHandler(bs portssvc.BudgetSvcFacade, cfg *config.Config) *budgetHandler {
	return &budgetHandler{
		budgetService: bs,
		defaultMonths: cfg.DefaultWindowMonths,
	}
}

// registerBudgetRoutes registers all budget-goal-related routes.
func registerBudgetRoutes(rg *gin.RouterGroup, cfg *config.Config, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService, cfg)

	budgets := rg.Group("/budget-goals")
	{
		budgets.POST("", h.createGoal)
		budgets.GET("", h.getReport)
		budgets.DELETE("/:id", h.deleteGoal)
	}
}

// createGoal godoc
// @Summary Create a budget goal
// @Description Creates a category spending ceiling for the authenticated user
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   goal body dto.CreateBudgetGoalRequest true "Goal details"
// @Success 201 {object} dto.BudgetGoalResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create goal"
// @Security BearerAuth
// @Router /budget-goals [post]
func (h *budgetHandler) createGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBudgetGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createGoal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	goal, err := h.budgetService.CreateGoal(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create budget goal", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create budget goal"})
		return
	}

	// A freshly created goal has no derived figures yet; report zero spend.
	resp := dto.BudgetGoalResponse{
		GoalID:       goal.GoalID,
		Category:     string(goal.Category),
		TargetAmount: goal.TargetAmount,
		Period:       string(goal.Period),
		Remaining:    goal.TargetAmount,
		Tier:         string(domain.TierForUsage(0)),
		CreatedAt:    goal.CreatedAt,
	}
	c.JSON(http.StatusCreated, resp)
}

// getReport godoc
// @Summary Evaluate budget goals
// @Description Returns the budget report for the window: totals, utilization and per-goal progress
// @Tags budgets
// @Produce  json
// @Param   months query int false "Window size in months (3, 6 or 12)"
// @Success 200 {object} dto.BudgetReportResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to evaluate budget"
// @Security BearerAuth
// @Router /budget-goals [get]
func (h *budgetHandler) getReport(c *gin.Context) {
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

// deleteGoal godoc
// @Summary Delete a budget goal
// @Description Removes a budget goal owned by the authenticated user
// @Tags budgets
// @Produce  json
// @Param   id path string true "Goal ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Goal not found"
// @Failure 500 {object} ErrorResponse "Failed to delete goal"
// @Security BearerAuth
// @Router /budget-goals/{id} [delete]
func (h *budgetHandler) deleteGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.budgetService.DeleteGoal(c.Request.Context(), userID, goalID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Budget goal not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Budget goal does not belong to the user"})
		default:
			logger.Error("Failed to delete budget goal", slog.String("goal_id", goalID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete budget goal"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// parseMonthsQuery reads the months query parameter and applies the
// configured default.
func parseMonthsQuery(c *gin.Context, fallback int) (int, bool) {
	raw := c.Query("months")
	if raw == "" {
		return fallback, true
	}
	months, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return resolveWindowMonths(months, fallback)
}
