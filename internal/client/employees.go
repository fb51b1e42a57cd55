package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/dto"
)

const employeesRoute = "/employees"

func employeeRoute(id string) string {
	return employeesRoute + "/" + url.PathEscape(id)
}

var employeeKeys = []string{employeesRoute}

// GetEmployee loads one employee.
func (c *Client) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	out, err := fetch[dto.DataResponse[dto.EmployeeResponse]](ctx, c, employeeRoute(id), nil)
	if err != nil {
		return nil, err
	}
	e := out.Data.ToDomainEmployee()
	return &e, nil
}

// BlankEmployee loads the server template used to start a new employee.
func (c *Client) BlankEmployee(ctx context.Context) (*domain.Employee, error) {
	out, err := fetch[dto.DataResponse[dto.EmployeeResponse]](ctx, c, employeesRoute+"/create", nil)
	if err != nil {
		return nil, err
	}
	e := out.Data.ToDomainEmployee()
	return &e, nil
}

// EmployeePage is one page of employees.
type EmployeePage struct {
	Employees []domain.Employee
	Meta      dto.ListMeta
}

// ListEmployees loads one page of employees.
func (c *Client) ListEmployees(ctx context.Context, opts ListOptions) (*EmployeePage, error) {
	out, err := fetch[dto.ListResponse[dto.EmployeeResponse]](ctx, c, employeesRoute, opts.values())
	if err != nil {
		return nil, err
	}
	page := &EmployeePage{Employees: make([]domain.Employee, len(out.Data)), Meta: out.Meta}
	for i := range out.Data {
		page.Employees[i] = out.Data[i].ToDomainEmployee()
	}
	return page, nil
}

// CreateEmployee creates an employee.
func (c *Client) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	var out dto.DataResponse[dto.EmployeeResponse]
	err := c.mutate(ctx, mutation{
		method:     http.MethodPost,
		route:      employeesRoute,
		body:       req,
		successKey: "created_employee",
		invalidate: employeeKeys,
	}, &out)
	if err != nil {
		return nil, err
	}
	e := out.Data.ToDomainEmployee()
	return &e, nil
}

// UpdateEmployee replaces the editable fields of an employee.
func (c *Client) UpdateEmployee(ctx context.Context, id string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	var out dto.DataResponse[dto.EmployeeResponse]
	err := c.mutate(ctx, mutation{
		method:     http.MethodPut,
		route:      employeeRoute(id),
		body:       req,
		successKey: "updated_employee",
		invalidate: employeeKeys,
	}, &out)
	if err != nil {
		return nil, err
	}
	e := out.Data.ToDomainEmployee()
	return &e, nil
}

// BulkEmployees applies action to ids in a single request. Besides the
// resource actions, employees accept "activate" and "deactivate".
func (c *Client) BulkEmployees(ctx context.Context, action string, ids []string) ([]domain.Employee, error) {
	var out dto.DataResponse[[]dto.EmployeeResponse]
	err := c.mutate(ctx, mutation{
		method:     http.MethodPost,
		route:      employeesRoute + "/bulk",
		body:       bulkRequest(action, ids),
		successKey: pastTense(action) + "_employee",
		invalidate: employeeKeys,
	}, &out)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Employee, len(out.Data))
	for i := range out.Data {
		res[i] = out.Data[i].ToDomainEmployee()
	}
	return res, nil
}
