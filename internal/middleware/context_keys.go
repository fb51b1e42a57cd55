package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

type contextKey string

const (
	userIDKey    = contextKey("userID")
	companyIDKey = contextKey("companyID")
)

// WithIdentity stores the authenticated user and company in ctx.
func WithIdentity(ctx context.Context, userID, companyID string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, companyIDKey, companyID)
}

// UserIDFromCtx returns the authenticated user ID stored in ctx.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(userIDKey).(string)
	return v, ok && v != ""
}

// CompanyIDFromCtx returns the company the authenticated user acts for.
func CompanyIDFromCtx(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(companyIDKey).(string)
	return v, ok && v != ""
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin request.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return UserIDFromCtx(c.Request.Context())
}

// GetCompanyIDFromContext retrieves the authenticated company ID from the Gin request.
func GetCompanyIDFromContext(c *gin.Context) (string, bool) {
	return CompanyIDFromCtx(c.Request.Context())
}
