package handlers

import (
	"net/http"

	"github.com/abhishekvarma12345/money-maven-goals/internal/dto"
	"github.com/gin-gonic/gin"
)

// registerCategoryRoutes registers the fixed category metadata route.
func registerCategoryRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", getCategories)
}

// getCategories godoc
// @Summary List expense categories
// @Description Returns the fixed category set with display colors and icons
// @Tags categories
// @Produce  json
// @Success 200 {array} dto.CategoryInfoResponse
// @Security BearerAuth
// @Router /categories [get]
func getCategories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCategoryInfoResponses())
}
