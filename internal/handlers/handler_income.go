package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/abhishekvarma12345/money-maven-goals/internal/apperrors"
	portssvc "github.com/abhishekvarma12345/money-maven-goals/internal/core/ports/services"
	"github.com/abhishekvarma12345/money-maven-goals/internal/core/services"
	"github.com/abhishekvarma12345/money-maven-goals/internal/dto"
	"github.com/abhishekvarma12345/money-maven-goals/internal/middleware"
	"github.com/gin-gonic/gin"
)

// incomeHandler handles HTTP requests related to income streams.
type incomeHandler struct {
	incomeService portssvc.IncomeSvcFacade
}

// newIncomeHandler creates a new incomeHandler.
func newIncomeHandler(is portssvc.IncomeSvcFacade) *incomeHandler {
	return &incomeHandler{
		incomeService: is,
	}
}

// registerIncomeRoutes registers all income-stream-related routes.
func registerIncomeRoutes(rg *gin.RouterGroup, incomeService portssvc.IncomeSvcFacade) {
	h := newIncomeHandler(incomeService)

	income := rg.Group("/income-streams")
	{
		income.POST("", h.createStream)
		income.GET("", h.listStreams)
		income.DELETE("/:id", h.deleteStream)
	}
}

// createStream godoc
// @Summary Add an income stream
// @Description Creates a recurring income source for the authenticated user
// @Tags income
// @Accept  json
// @Produce  json
// @Param   stream body dto.CreateIncomeStreamRequest true "Income stream details"
// @Success 201 {object} dto.IncomeStreamResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create income stream"
// @Security BearerAuth
// @Router /income-streams [post]
func (h *incomeHandler) createStream(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateIncomeStreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createStream", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	stream, err := h.incomeService.CreateStream(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create income stream", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create income stream"})
		return
	}

	monthly, annual := services.NormalizeIncome(stream.Amount, stream.Frequency)
	c.JSON(http.StatusCreated, dto.ToIncomeStreamResponse(stream, monthly, annual))
}

// listStreams godoc
// @Summary List income streams
// @Description Lists the authenticated user's income streams with normalized totals
// @Tags income
// @Produce  json
// @Success 200 {object} dto.ListIncomeStreamsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list income streams"
// @Security BearerAuth
// @Router /income-streams [get]
func (h *incomeHandler) listStreams(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	streams, err := h.incomeService.ListStreams(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list income streams", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list income streams"})
		return
	}

	summary, err := h.incomeService.Summary(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to summarize income streams", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to summarize income streams"})
		return
	}

	responses := make([]dto.IncomeStreamResponse, len(streams))
	for i, s := range streams {
		monthly, annual := services.NormalizeIncome(s.Amount, s.Frequency)
		responses[i] = dto.ToIncomeStreamResponse(&s, monthly, annual)
	}

	c.JSON(http.StatusOK, dto.ListIncomeStreamsResponse{
		Streams:      responses,
		MonthlyTotal: summary.MonthlyTotal,
		AnnualTotal:  summary.AnnualTotal,
	})
}

// deleteStream godoc
// @Summary Delete an income stream
// @Description Removes an income stream owned by the authenticated user
// @Tags income
// @Produce  json
// @Param   id path string true "Stream ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Stream not found"
// @Failure 500 {object} ErrorResponse "Failed to delete income stream"
// @Security BearerAuth
// @Router /income-streams/{id} [delete]
func (h *incomeHandler) deleteStream(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	streamID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.incomeService.DeleteStream(c.Request.Context(), userID, streamID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Income stream not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Income stream does not belong to the user"})
		default:
			logger.Error("Failed to delete income stream", slog.String("stream_id", streamID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete income stream"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
