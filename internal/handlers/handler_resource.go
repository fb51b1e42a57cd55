package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// resourceHandler handles HTTP requests related to resources.
type resourceHandler struct {
	resourceService portssvc.ResourceSvcFacade
}

// newResourceHandler creates a new resourceHandler.
func newResourceHandler(rs portssvc.ResourceSvcFacade) *resourceHandler {
	return &resourceHandler{
		resourceService: rs,
	}
}

// registerResourceRoutes registers routes related to resources.
func registerResourceRoutes(rg *gin.RouterGroup, resourceService portssvc.ResourceSvcFacade) {
	h := newResourceHandler(resourceService)

	resources := rg.Group("/resources")
	{
		resources.GET("", h.listResources)
		resources.POST("", h.createResource)
		resources.POST("/bulk", h.bulkResources)
		resources.GET("/:id", h.getResource)
		resources.PUT("/:id", h.updateResource)
	}
}

// listResources godoc
// @Summary List resources
// @Description Lists the company's resources, one page at a time
// @Tags resources
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(100)
// @Param status query string false "Comma separated states: active, archived, deleted, all"
// @Param filter query string false "Searches name and description"
// @Param sort query string false "column|asc or column|desc" default(name|asc)
// @Success 200 {object} dto.ListResponse[dto.ResourceResponse]
// @Failure 401 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /resources [get]
func (h *resourceHandler) listResources(c *gin.Context) {
	companyID, _, ok := identity(c)
	if !ok {
		return
	}

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn().Err(err).Msg("Failed to bind query params for ListResources")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	items, meta, err := h.resourceService.ListResources(c.Request.Context(), companyID, params)
	if err != nil {
		respondError(c, err, "Failed to list resources")
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(dto.ToListResourceResponse(items), meta))
}

// getResource godoc
// @Summary Get a resource
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} dto.DataResponse[dto.ResourceResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /resources/{id} [get]
func (h *resourceHandler) getResource(c *gin.Context) {
	companyID, _, ok := identity(c)
	if !ok {
		return
	}

	resource, err := h.resourceService.GetResource(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve resource")
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse[dto.ResourceResponse]{Data: dto.ToResourceResponse(resource)})
}

// createResource godoc
// @Summary Create a resource
// @Tags resources
// @Accept json
// @Produce json
// @Param resource body dto.CreateResourceRequest true "Resource details"
// @Success 201 {object} dto.DataResponse[dto.ResourceResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Security BearerAuth
// @Router /resources [post]
func (h *resourceHandler) createResource(c *gin.Context) {
	companyID, userID, ok := identity(c)
	if !ok {
		return
	}

	var req dto.CreateResourceRequest
	if !bindJSON(c, &req) {
		return
	}

	resource, err := h.resourceService.CreateResource(c.Request.Context(), companyID, userID, req)
	if err != nil {
		respondError(c, err, "Failed to create resource")
		return
	}
	c.JSON(http.StatusCreated, dto.DataResponse[dto.ResourceResponse]{Data: dto.ToResourceResponse(resource)})
}

// updateResource godoc
// @Summary Update a resource
// @Description Replaces every editable field of the resource
// @Tags resources
// @Accept json
// @Produce json
// @Param id path string true "Resource ID"
// @Param resource body dto.UpdateResourceRequest true "Resource details"
// @Success 200 {object} dto.DataResponse[dto.ResourceResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Security BearerAuth
// @Router /resources/{id} [put]
func (h *resourceHandler) updateResource(c *gin.Context) {
	companyID, userID, ok := identity(c)
	if !ok {
		return
	}

	var req dto.UpdateResourceRequest
	if !bindJSON(c, &req) {
		return
	}

	resource, err := h.resourceService.UpdateResource(c.Request.Context(), companyID, userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update resource")
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse[dto.ResourceResponse]{Data: dto.ToResourceResponse(resource)})
}

// bulkResources godoc
// @Summary Archive, restore or delete resources
// @Tags resources
// @Accept json
// @Produce json
// @Param request body dto.BulkActionRequest true "Action and resource ids"
// @Success 200 {object} dto.DataResponse[[]dto.ResourceResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Security BearerAuth
// @Router /resources/bulk [post]
func (h *resourceHandler) bulkResources(c *gin.Context) {
	companyID, userID, ok := identity(c)
	if !ok {
		return
	}

	var req dto.BulkActionRequest
	if !bindJSON(c, &req) {
		return
	}

	resources, err := h.resourceService.BulkResources(c.Request.Context(), companyID, userID, req)
	if err != nil {
		respondError(c, err, "Failed to apply bulk action")
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse[[]dto.ResourceResponse]{Data: dto.ToListResourceResponse(resources)})
}
