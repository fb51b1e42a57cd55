package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestIDHeader is echoed back on every response.
const RequestIDHeader = "X-Request-ID"

// StructuredLoggingMiddleware creates a Gin middleware handler that injects
// a request-scoped logger into the request context.
func StructuredLoggingMiddleware(baseLogger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		requestLogger := baseLogger.With().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Logger()

		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(requestLogger.WithContext(c.Request.Context()))

		c.Next()

		// Auth may have enriched the logger, so read it back from the context.
		logger := GetLoggerFromCtx(c.Request.Context())
		event := logger.Info()
		if c.Writer.Status() >= 500 {
			event = logger.Error()
		}
		event.
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("Request completed")
	}
}

// GetLoggerFromCtx returns the request-scoped logger, or the base logger
// registered by pkg/logger when the context carries none.
func GetLoggerFromCtx(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
