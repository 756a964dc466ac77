package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/parishledger/parishledger/internal/core/ports/services"
	"github.com/parishledger/parishledger/internal/dto"
	"github.com/parishledger/parishledger/internal/middleware"
)

// titheHandler handles HTTP requests for tithe records.
type titheHandler struct {
	titheService portssvc.TitheSvcFacade
}

func newTitheHandler(ts portssvc.TitheSvcFacade) *titheHandler {
	return &titheHandler{titheService: ts}
}

// registerTitheRoutes registers tithe routes on a church-specific group.
func registerTitheRoutes(churchSpecific *gin.RouterGroup, ts portssvc.TitheSvcFacade) {
	h := newTitheHandler(ts)

	tithes := churchSpecific.Group("/tithes")
	{
		tithes.GET("", h.listTithes)
		tithes.POST("", h.createTithe)
		tithes.DELETE("/:tithe_id", h.deleteTithe)
	}
}

// listTithes godoc
// @Summary List tithes
// @Description Retrieves the church's tithe records, newest first, optionally filtered by the giver's name.
// @Tags tithes
// @Produce  json
// @Param   church_id path string true "Church ID"
// @Param   search query string false "Case-insensitive search over the giver's name"
// @Success 200 {object} dto.ListTithesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/tithes [get]
func (h *titheHandler) listTithes(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	churchID := c.Param("church_id")

	var params dto.ListTithesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	tithes, err := h.titheService.ListTithes(c.Request.Context(), userID, churchID, params.Search)
	if err != nil {
		respondServiceError(c, err, "Failed to list tithes")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTithesResponse(tithes))
}

// createTithe godoc
// @Summary Record a tithe
// @Description Records a tithe. Anonymous records never store a member identity.
// @Tags tithes
// @Accept  json
// @Produce  json
// @Param   church_id path string true "Church ID"
// @Param   tithe body dto.CreateTitheRequest true "Tithe details"
// @Success 201 {object} dto.TitheResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/tithes [post]
func (h *titheHandler) createTithe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTitheRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTithe", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	churchID := c.Param("church_id")

	tithe, err := h.titheService.CreateTithe(c.Request.Context(), userID, churchID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create tithe")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTitheResponse(tithe))
}

// deleteTithe godoc
// @Summary Delete a tithe
// @Description Removes a tithe record.
// @Tags tithes
// @Param   church_id path string true "Church ID"
// @Param   tithe_id path string true "Tithe ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/tithes/{tithe_id} [delete]
func (h *titheHandler) deleteTithe(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	churchID := c.Param("church_id")
	titheID := c.Param("tithe_id")

	if err := h.titheService.DeleteTithe(c.Request.Context(), userID, churchID, titheID); err != nil {
		respondServiceError(c, err, "Failed to delete tithe")
		return
	}

	c.Status(http.StatusNoContent)
}
