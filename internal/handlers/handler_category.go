package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parishledger/parishledger/internal/core/domain"
	portssvc "github.com/parishledger/parishledger/internal/core/ports/services"
	"github.com/parishledger/parishledger/internal/dto"
	"github.com/parishledger/parishledger/internal/middleware"
)

// categoryHandler handles HTTP requests for transaction categories.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func newCategoryHandler(cs portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{categoryService: cs}
}

// registerCategoryRoutes registers category routes on a church-specific group.
func registerCategoryRoutes(churchSpecific *gin.RouterGroup, cs portssvc.CategorySvcFacade) {
	h := newCategoryHandler(cs)

	categories := churchSpecific.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.POST("", h.createCategory)
		categories.DELETE("/:category_id", h.deleteCategory)
	}
}

// listCategories godoc
// @Summary List categories
// @Description Retrieves the church's categories, optionally filtered by kind.
// @Tags categories
// @Produce  json
// @Param   church_id path string true "Church ID"
// @Param   kind query string false "Filter by kind" Enums(income, expense)
// @Success 200 {object} dto.ListCategoriesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	churchID := c.Param("church_id")

	var params dto.ListCategoriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	var kind *domain.CategoryKind
	if params.Kind != "" {
		k := domain.CategoryKind(params.Kind)
		kind = &k
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), userID, churchID, kind)
	if err != nil {
		respondServiceError(c, err, "Failed to list categories")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoriesResponse(categories))
}

// createCategory godoc
// @Summary Create a category
// @Description Adds a custom income or expense category.
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   church_id path string true "Church ID"
// @Param   category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Category already exists"
// @Security BearerAuth
// @Router /churches/{church_id}/categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	churchID := c.Param("church_id")

	category, err := h.categoryService.CreateCategory(c.Request.Context(), userID, churchID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Removes a category. Transactions recorded under it keep their category name.
// @Tags categories
// @Param   church_id path string true "Church ID"
// @Param   category_id path string true "Category ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/categories/{category_id} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	churchID := c.Param("church_id")
	categoryID := c.Param("category_id")

	if err := h.categoryService.DeleteCategory(c.Request.Context(), userID, churchID, categoryID); err != nil {
		respondServiceError(c, err, "Failed to delete category")
		return
	}

	c.Status(http.StatusNoContent)
}
