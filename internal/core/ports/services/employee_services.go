package services

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/utils/pagination"
)

// EmployeeReaderSvc defines read operations for employees
type EmployeeReaderSvc interface {
	// GetEmployee retrieves an employee of the company by its ID.
	GetEmployee(ctx context.Context, companyID, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves one page of the company's employees.
	ListEmployees(ctx context.Context, companyID string, params dto.ListParams) ([]domain.Employee, pagination.Meta, error)

	// BlankEmployee returns the template used by the create form.
	BlankEmployee(ctx context.Context, companyID, userID string) domain.Employee
}

// EmployeeWriterSvc defines write operations for employees
type EmployeeWriterSvc interface {
	// CreateEmployee persists a new employee.
	CreateEmployee(ctx context.Context, companyID, userID string, req dto.CreateEmployeeRequest) (*domain.Employee, error)

	// UpdateEmployee replaces the editable fields of an employee.
	UpdateEmployee(ctx context.Context, companyID, userID, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)

	// BulkEmployees applies a lifecycle action to several employees at once.
	BulkEmployees(ctx context.Context, companyID, userID string, req dto.BulkActionRequest) ([]domain.Employee, error)
}

// EmployeeSvcFacade combines all employee-related service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
}
