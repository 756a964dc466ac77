package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/parishledger/parishledger/internal/core/ports/services"
	"github.com/parishledger/parishledger/internal/dto"
	"github.com/parishledger/parishledger/internal/middleware"
)

// memberHandler handles HTTP requests for the member roster.
type memberHandler struct {
	memberService portssvc.MemberSvcFacade
}

func newMemberHandler(ms portssvc.MemberSvcFacade) *memberHandler {
	return &memberHandler{memberService: ms}
}

// registerMemberRoutes registers member routes on a church-specific group.
func registerMemberRoutes(churchSpecific *gin.RouterGroup, ms portssvc.MemberSvcFacade) {
	h := newMemberHandler(ms)

	members := churchSpecific.Group("/members")
	{
		members.GET("", h.listMembers)
		members.POST("", h.createMember)
		members.DELETE("/:member_id", h.deleteMember)
	}
}

// listMembers godoc
// @Summary List members
// @Description Retrieves the church's member roster, optionally filtered by a search term.
// @Tags members
// @Produce  json
// @Param   church_id path string true "Church ID"
// @Param   search query string false "Case-insensitive search over name, phone and email"
// @Success 200 {object} dto.ListMembersResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	churchID := c.Param("church_id")

	var params dto.ListMembersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	members, err := h.memberService.ListMembers(c.Request.Context(), userID, churchID, params.Search)
	if err != nil {
		respondServiceError(c, err, "Failed to list members")
		return
	}

	c.JSON(http.StatusOK, dto.ToListMembersResponse(members))
}

// createMember godoc
// @Summary Enroll a member
// @Description Adds a member to the church's roster.
// @Tags members
// @Accept  json
// @Produce  json
// @Param   church_id path string true "Church ID"
// @Param   member body dto.CreateMemberRequest true "Member details"
// @Success 201 {object} dto.MemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/members [post]
func (h *memberHandler) createMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateMember", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	churchID := c.Param("church_id")

	member, err := h.memberService.CreateMember(c.Request.Context(), userID, churchID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create member")
		return
	}

	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

// deleteMember godoc
// @Summary Remove a member
// @Description Removes a member from the roster. Tithe records keep the name copied at recording time.
// @Tags members
// @Param   church_id path string true "Church ID"
// @Param   member_id path string true "Member ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/members/{member_id} [delete]
func (h *memberHandler) deleteMember(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	churchID := c.Param("church_id")
	memberID := c.Param("member_id")

	if err := h.memberService.DeleteMember(c.Request.Context(), userID, churchID, memberID); err != nil {
		respondServiceError(c, err, "Failed to delete member")
		return
	}

	c.Status(http.StatusNoContent)
}
