package handlers

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/parishledger/parishledger/internal/apperrors"
	"github.com/parishledger/parishledger/internal/middleware"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondServiceError maps a service error to its HTTP status. Internal
// errors are logged and hidden behind a generic message; client errors keep
// their text.
func respondServiceError(c *gin.Context, err error, fallbackMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.StatusCode(err)

	if status >= 500 {
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: fallbackMsg})
		return
	}

	logger.Warn(fallbackMsg, slog.String("error", err.Error()))
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(status, ErrorResponse{Error: appErr.Message})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
