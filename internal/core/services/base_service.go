package services

import (
	"context"
	"log/slog"

	portssvc "github.com/parishledger/parishledger/internal/core/ports/services"
	"github.com/parishledger/parishledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	ChurchAuthorizer portssvc.ChurchAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// AuthorizeUser checks that the user belongs to the church before any
// tenant-scoped work happens.
func (s *BaseService) AuthorizeUser(ctx context.Context, userID, churchID string) error {
	if s.ChurchAuthorizer != nil {
		return s.ChurchAuthorizer.AuthorizeUserAccess(ctx, userID, churchID)
	}
	s.LogDebug(ctx, "No church authorizer provided, access granted by default",
		slog.String("user_id", userID),
		slog.String("church_id", churchID))
	return nil
}
