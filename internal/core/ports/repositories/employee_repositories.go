package repositories

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves an employee of a company by its ID.
	FindEmployeeByID(ctx context.Context, companyID, employeeID string) (*domain.Employee, error)

	// ListEmployees returns one page of employees and the total number of matches.
	ListEmployees(ctx context.Context, companyID string, query domain.ListQuery) ([]domain.Employee, int, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	// SaveEmployee persists a new employee.
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateEmployee replaces the editable fields of an existing employee.
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
}

// EmployeeBulkWriter defines the row locking operations used by bulk actions
type EmployeeBulkWriter interface {
	// FindEmployeesByIDsForUpdate locks and returns the given employees of a company.
	FindEmployeesByIDsForUpdate(ctx context.Context, tx pgx.Tx, companyID string, employeeIDs []string) ([]domain.Employee, error)

	// UpdateEmployeeLifecycleInTx stores the lifecycle markers of the given employees.
	UpdateEmployeeLifecycleInTx(ctx context.Context, tx pgx.Tx, employees []domain.Employee) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
	EmployeeBulkWriter
}

// EmployeeRepositoryWithTx extends EmployeeRepositoryFacade with transaction capabilities
type EmployeeRepositoryWithTx interface {
	EmployeeRepositoryFacade
	TransactionManager
}
