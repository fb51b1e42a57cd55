package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var tagNamesOnce sync.Once

// registerValidatorTagNames makes gin's validator report json field names,
// so 422 bags are keyed "rate_per_hour" rather than "RatePerHour".
func registerValidatorTagNames() {
	tagNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
}

// identity reads the caller from the auth middleware. It writes 401 and
// returns false when the token carried no company.
func identity(c *gin.Context) (companyID, userID string, ok bool) {
	companyID, okCompany := middleware.GetCompanyIDFromContext(c)
	userID, okUser := middleware.GetUserIDFromContext(c)
	if !okCompany || !okUser {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error().Msg("Identity not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return "", "", false
	}
	return companyID, userID, true
}

// bindJSON decodes the body. Validation failures become a 422 bag, malformed
// JSON a 400.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		if bag, ok := apperrors.AsValidationErrors(err); ok {
			logger.Warn().Err(err).Msg("Request failed validation")
			c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
				Message: apperrors.ValidationMessage,
				Errors:  bag,
			})
			return false
		}
		logger.Warn().Err(err).Msg("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return false
	}
	return true
}

// respondError maps service errors onto status codes. Unexpected errors are
// logged and reported with the generic message.
func respondError(c *gin.Context, err error, generic string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if bag, ok := apperrors.AsValidationErrors(err); ok {
		logger.Warn().Err(err).Msg("Validation error")
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
			Message: apperrors.ValidationMessage,
			Errors:  bag,
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn().Err(err).Msg("Entity not found")
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn().Err(err).Msg("Duplicate entity")
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
			Message: apperrors.ValidationMessage,
			Errors:  map[string][]string{},
		})
	default:
		logger.Error().Err(err).Msg(generic)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: generic})
	}
}
