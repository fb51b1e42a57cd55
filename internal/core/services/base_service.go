package services

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/middleware"
	"github.com/rs/zerolog"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the request scoped logger from context, falling back to the
// default context logger.
func (s *BaseService) GetLogger(ctx context.Context) *zerolog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	s.GetLogger(ctx).Error().Err(err).Fields(keyvals).Msg(msg)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn().Fields(keyvals).Msg(msg)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info().Fields(keyvals).Msg(msg)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug().Fields(keyvals).Msg(msg)
}
