package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// employeeHandler handles HTTP requests related to employees.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

func newEmployeeHandler(es portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{employeeService: es}
}

// registerEmployeeRoutes registers routes related to employees.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(employeeService)

	employees := rg.Group("/employees")
	{
		employees.GET("", h.listEmployees)
		employees.POST("", h.createEmployee)
		employees.GET("/create", h.blankEmployee)
		employees.POST("/bulk", h.bulkEmployees)
		employees.GET("/:id", h.getEmployee)
		employees.PUT("/:id", h.updateEmployee)
	}
}

// listEmployees godoc
// @Summary List employees
// @Tags employees
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(100)
// @Param status query string false "Comma separated states: active, archived, deleted, all"
// @Param filter query string false "Searches name, emp_id and email"
// @Param sort query string false "column|asc or column|desc" default(name|asc)
// @Success 200 {object} dto.ListResponse[dto.EmployeeResponse]
// @Failure 422 {object} dto.ValidationErrorResponse
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	companyID, _, ok := identity(c)
	if !ok {
		return
	}

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn().Err(err).Msg("Failed to bind query params for ListEmployees")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	items, meta, err := h.employeeService.ListEmployees(c.Request.Context(), companyID, params)
	if err != nil {
		respondError(c, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(dto.ToListEmployeeResponse(items), meta))
}

// blankEmployee godoc
// @Summary Blank employee template
// @Description Returns the unsaved employee used to prefill the create form
// @Tags employees
// @Produce json
// @Success 200 {object} dto.DataResponse[dto.EmployeeResponse]
// @Security BearerAuth
// @Router /employees/create [get]
func (h *employeeHandler) blankEmployee(c *gin.Context) {
	companyID, userID, ok := identity(c)
	if !ok {
		return
	}

	blank := h.employeeService.BlankEmployee(c.Request.Context(), companyID, userID)
	c.JSON(http.StatusOK, dto.DataResponse[dto.EmployeeResponse]{Data: dto.ToEmployeeResponse(&blank)})
}

// getEmployee godoc
// @Summary Get an employee
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.DataResponse[dto.EmployeeResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	companyID, _, ok := identity(c)
	if !ok {
		return
	}

	employee, err := h.employeeService.GetEmployee(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve employee")
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse[dto.EmployeeResponse]{Data: dto.ToEmployeeResponse(employee)})
}

// createEmployee godoc
// @Summary Create an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.DataResponse[dto.EmployeeResponse]
// @Failure 409 {object} dto.ErrorResponse "emp_id already taken"
// @Failure 422 {object} dto.ValidationErrorResponse
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	companyID, userID, ok := identity(c)
	if !ok {
		return
	}

	var req dto.CreateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), companyID, userID, req)
	if err != nil {
		respondError(c, err, "Failed to create employee")
		return
	}
	c.JSON(http.StatusCreated, dto.DataResponse[dto.EmployeeResponse]{Data: dto.ToEmployeeResponse(employee)})
}

// updateEmployee godoc
// @Summary Update an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "Employee details"
// @Success 200 {object} dto.DataResponse[dto.EmployeeResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	companyID, userID, ok := identity(c)
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), companyID, userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update employee")
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse[dto.EmployeeResponse]{Data: dto.ToEmployeeResponse(employee)})
}

// bulkEmployees godoc
// @Summary Activate, deactivate, archive, restore or delete employees
// @Tags employees
// @Accept json
// @Produce json
// @Param request body dto.BulkActionRequest true "Action and employee ids"
// @Success 200 {object} dto.DataResponse[[]dto.EmployeeResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Security BearerAuth
// @Router /employees/bulk [post]
func (h *employeeHandler) bulkEmployees(c *gin.Context) {
	companyID, userID, ok := identity(c)
	if !ok {
		return
	}

	var req dto.BulkActionRequest
	if !bindJSON(c, &req) {
		return
	}

	employees, err := h.employeeService.BulkEmployees(c.Request.Context(), companyID, userID, req)
	if err != nil {
		respondError(c, err, "Failed to apply bulk action")
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse[[]dto.EmployeeResponse]{Data: dto.ToListEmployeeResponse(employees)})
}
