package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/parishledger/parishledger/internal/core/ports/services"
	"github.com/parishledger/parishledger/internal/dto"
	"github.com/parishledger/parishledger/internal/middleware"
)

// transactionHandler handles HTTP requests for income and expense entries.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers transaction routes on a church-specific group.
func registerTransactionRoutes(churchSpecific *gin.RouterGroup, ts portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(ts)

	transactions := churchSpecific.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.createTransaction)
		transactions.DELETE("/:transaction_id", h.deleteTransaction)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Retrieves a page of the church's transactions, newest first. Kind and search filters disable pagination.
// @Tags transactions
// @Produce  json
// @Param   church_id path string true "Church ID"
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   pageToken query string false "Token from a previous page"
// @Param   kind query string false "Filter by kind" Enums(income, expense)
// @Param   search query string false "Case-insensitive search over category and description"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	churchID := c.Param("church_id")

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	transactions, nextPageToken, err := h.transactionService.ListTransactions(c.Request.Context(), userID, churchID, params)
	if err != nil {
		respondServiceError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(transactions, nextPageToken))
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Records an income or expense entry.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   church_id path string true "Church ID"
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	churchID := c.Param("church_id")

	transaction, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, churchID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(transaction))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes an income or expense entry.
// @Tags transactions
// @Param   church_id path string true "Church ID"
// @Param   transaction_id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/transactions/{transaction_id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	churchID := c.Param("church_id")
	transactionID := c.Param("transaction_id")

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, churchID, transactionID); err != nil {
		respondServiceError(c, err, "Failed to delete transaction")
		return
	}

	c.Status(http.StatusNoContent)
}
