package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type systemHandler struct {
	systemService portssvc.SystemSvcFacade
}

func registerSystemRoutes(rg *gin.RouterGroup, systemService portssvc.SystemSvcFacade) {
	h := &systemHandler{systemService: systemService}

	rg.GET("/health_check", h.healthCheck)
	rg.GET("/ping", h.ping)
	rg.POST("/refresh", h.refresh)
}

// healthCheck godoc
// @Summary System health
// @Description Database reachability, migration state and runtime details
// @Tags system
// @Produce json
// @Success 200 {object} domain.HealthStatus
// @Security BearerAuth
// @Router /health_check [get]
func (h *systemHandler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, h.systemService.HealthCheck(c.Request.Context()))
}

// ping godoc
// @Summary Ping, optionally clearing server caches
// @Tags system
// @Produce json
// @Param clear_cache query bool false "Empty in-process caches first"
// @Success 200 {object} dto.DataResponse[string]
// @Security BearerAuth
// @Router /ping [get]
func (h *systemHandler) ping(c *gin.Context) {
	if clear, _ := strconv.ParseBool(c.Query("clear_cache")); clear {
		h.systemService.ClearCaches(c.Request.Context())
	}
	c.JSON(http.StatusOK, dto.DataResponse[string]{Data: "pong"})
}

// refresh godoc
// @Summary Reload the caller's session data
// @Description With current_company=true the response includes the company and its settings
// @Tags system
// @Produce json
// @Param current_company query bool false "Include the current company"
// @Success 200 {object} dto.DataResponse[dto.RefreshResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /refresh [post]
func (h *systemHandler) refresh(c *gin.Context) {
	companyID, userID, ok := identity(c)
	if !ok {
		return
	}

	resp := dto.RefreshResponse{UserID: userID}
	if current, _ := strconv.ParseBool(c.Query("current_company")); current {
		company, err := h.systemService.Refresh(c.Request.Context(), companyID)
		if err != nil {
			respondError(c, err, "Failed to refresh")
			return
		}
		resp.Company = dto.ToCompanyResponse(company)
	}
	c.JSON(http.StatusOK, dto.DataResponse[dto.RefreshResponse]{Data: resp})
}
