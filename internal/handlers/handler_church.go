package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/parishledger/parishledger/internal/core/ports/services"
	"github.com/parishledger/parishledger/internal/dto"
	"github.com/parishledger/parishledger/internal/middleware"
)

// churchHandler handles HTTP requests related to churches and their branches.
type churchHandler struct {
	churchService portssvc.ChurchSvcFacade
}

// newChurchHandler creates a new churchHandler.
func newChurchHandler(cs portssvc.ChurchSvcFacade) *churchHandler {
	return &churchHandler{
		churchService: cs,
	}
}

// registerChurchRoutes registers routes for churches and everything scoped
// under a single church: branches, members, categories, transactions, tithes
// and reports.
func registerChurchRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newChurchHandler(services.Church)

	churchSpecific := rg.Group("/churches/:church_id")
	{
		churchSpecific.GET("", h.getChurch)

		branches := churchSpecific.Group("/branches")
		{
			branches.GET("", h.listBranches)
			branches.POST("", h.createBranch)
			branches.DELETE("/:branch_id", h.deleteBranch)
		}

		registerMemberRoutes(churchSpecific, services.Member)
		registerCategoryRoutes(churchSpecific, services.Category)
		registerTransactionRoutes(churchSpecific, services.Transaction)
		registerTitheRoutes(churchSpecific, services.Tithe)
		registerReportingRoutes(churchSpecific, services.Reporting)
	}
}

// getChurch godoc
// @Summary Get church details
// @Description Retrieves the church the authenticated user belongs to.
// @Tags churches
// @Produce  json
// @Param   church_id path string true "Church ID"
// @Success 200 {object} dto.ChurchResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id} [get]
func (h *churchHandler) getChurch(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	churchID := c.Param("church_id")

	church, err := h.churchService.GetChurchByID(c.Request.Context(), userID, churchID)
	if err != nil {
		respondServiceError(c, err, "Failed to get church")
		return
	}

	c.JSON(http.StatusOK, dto.ToChurchResponse(church))
}

// listBranches godoc
// @Summary List branches
// @Description Retrieves all branches of the church.
// @Tags branches
// @Produce  json
// @Param   church_id path string true "Church ID"
// @Success 200 {object} dto.ListBranchesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/branches [get]
func (h *churchHandler) listBranches(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	churchID := c.Param("church_id")

	branches, err := h.churchService.ListBranches(c.Request.Context(), userID, churchID)
	if err != nil {
		respondServiceError(c, err, "Failed to list branches")
		return
	}

	c.JSON(http.StatusOK, dto.ToListBranchesResponse(branches))
}

// createBranch godoc
// @Summary Create a branch
// @Description Adds a branch to the church.
// @Tags branches
// @Accept  json
// @Produce  json
// @Param   church_id path string true "Church ID"
// @Param   branch body dto.CreateBranchRequest true "Branch details"
// @Success 201 {object} dto.BranchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Branch code already exists"
// @Security BearerAuth
// @Router /churches/{church_id}/branches [post]
func (h *churchHandler) createBranch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBranch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	churchID := c.Param("church_id")

	branch, err := h.churchService.CreateBranch(c.Request.Context(), userID, churchID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create branch")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBranchResponse(branch))
}

// deleteBranch godoc
// @Summary Delete a branch
// @Description Removes a branch from the church.
// @Tags branches
// @Param   church_id path string true "Church ID"
// @Param   branch_id path string true "Branch ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/branches/{branch_id} [delete]
func (h *churchHandler) deleteBranch(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	churchID := c.Param("church_id")
	branchID := c.Param("branch_id")

	if err := h.churchService.DeleteBranch(c.Request.Context(), userID, churchID, branchID); err != nil {
		respondServiceError(c, err, "Failed to delete branch")
		return
	}

	c.Status(http.StatusNoContent)
}
