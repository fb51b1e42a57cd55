package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/core/lifecycle"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
)

// employeeService implements the EmployeeSvcFacade interface
type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryWithTx
	now          func() time.Time
}

// EmployeeServiceOption is a functional option for configuring the employee service
type EmployeeServiceOption func(*employeeService)

// WithEmployeeClock overrides time.Now, for tests.
func WithEmployeeClock(now func() time.Time) EmployeeServiceOption {
	return func(s *employeeService) {
		s.now = now
	}
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(repo portsrepo.EmployeeRepositoryWithTx, options ...EmployeeServiceOption) portssvc.EmployeeSvcFacade {
	svc := &employeeService{
		employeeRepo: repo,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure employeeService implements the portssvc.EmployeeSvcFacade interface
var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// GetEmployee retrieves an employee by ID.
func (s *employeeService) GetEmployee(ctx context.Context, companyID, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, companyID, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee", "employee_id", employeeID)
		}
		return nil, fmt.Errorf("failed to get employee %s: %w", employeeID, err)
	}
	return employee, nil
}

// ListEmployees retrieves one page of employees.
func (s *employeeService) ListEmployees(ctx context.Context, companyID string, params dto.ListParams) ([]domain.Employee, pagination.Meta, error) {
	query, page, err := buildListQuery(params, domain.EmployeeSortColumns)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	employees, total, err := s.employeeRepo.ListEmployees(ctx, companyID, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees", "company_id", companyID)
		return nil, pagination.Meta{}, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, pagination.NewMeta(page, total, len(employees)), nil
}

// BlankEmployee returns an unsaved, active employee owned by the caller.
func (s *employeeService) BlankEmployee(_ context.Context, companyID, userID string) domain.Employee {
	return domain.Employee{
		CompanyID:   companyID,
		AuditFields: domain.AuditFields{UserID: userID},
	}
}

// CreateEmployee persists a new employee.
func (s *employeeService) CreateEmployee(ctx context.Context, companyID, userID string, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	now := s.now().UTC()
	employee := domain.Employee{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		AuditFields: domain.AuditFields{
			UserID:    userID,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	applyEmployeeFields(&employee, dto.UpdateEmployeeRequest(req))

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save employee", "employee_name", req.Name)
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	s.LogInfo(ctx, "Employee created successfully", "employee_id", employee.ID)
	return &employee, nil
}

// UpdateEmployee replaces the editable fields of an employee.
func (s *employeeService) UpdateEmployee(ctx context.Context, companyID, userID, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, companyID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee %s: %w", employeeID, err)
	}

	applyEmployeeFields(employee, req)
	employee.UpdatedAt = s.now().UTC()

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to update employee", "employee_id", employeeID)
		}
		return nil, fmt.Errorf("failed to update employee %s: %w", employeeID, err)
	}

	s.LogInfo(ctx, "Employee updated successfully", "employee_id", employeeID, "user_id", userID)
	return employee, nil
}

// BulkEmployees applies a lifecycle action to every listed employee in one
// transaction. activate and deactivate are accepted as restore and archive.
func (s *employeeService) BulkEmployees(ctx context.Context, companyID, userID string, req dto.BulkActionRequest) ([]domain.Employee, error) {
	action := domain.BulkAction(strings.ToLower(req.Action))
	if !lifecycle.Supports(lifecycle.EmployeeActions, action) {
		bag := apperrors.NewValidationErrors()
		bag.Add("action", "The selected action is invalid.")
		return nil, bag
	}
	ids, positions := uniqueIDs(req.IDs)

	tx, err := s.employeeRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if rbErr := s.employeeRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back employee bulk action")
		}
	}()

	found, err := s.employeeRepo.FindEmployeesByIDsForUpdate(ctx, tx, companyID, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to lock employees for bulk action", "action", string(action))
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	byID := make(map[string]domain.Employee, len(found))
	for _, e := range found {
		byID[e.ID] = e
	}

	now := s.now().UTC()
	updated := make([]domain.Employee, 0, len(ids))
	bag := apperrors.NewValidationErrors()
	var merr *multierror.Error
	for i, id := range ids {
		employee, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("employee %s: %w", id, apperrors.ErrNotFound)
		}
		next, err := lifecycle.Transition(employee.State(), action)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("employee %s: %w", id, err))
			bag.Add(fmt.Sprintf("ids.%d", positions[i]), fmt.Sprintf("The employee cannot be %s.", pastTense(action)))
			continue
		}
		if next != employee.State() {
			employee.ApplyState(next, now)
			employee.UpdatedAt = now
		}
		updated = append(updated, employee)
	}
	if merr != nil {
		s.LogWarn(ctx, "Rejected employee bulk action", "action", string(action), "reason", merr.Error())
		return nil, bag
	}

	if err := s.employeeRepo.UpdateEmployeeLifecycleInTx(ctx, tx, updated); err != nil {
		s.LogError(ctx, err, "Failed to store employee lifecycle", "action", string(action))
		return nil, fmt.Errorf("failed to %s employees: %w", action, err)
	}
	if err := s.employeeRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Employee bulk action applied", "action", string(action), "count", len(updated), "user_id", userID)
	return updated, nil
}

func applyEmployeeFields(e *domain.Employee, req dto.UpdateEmployeeRequest) {
	e.Name = strings.TrimSpace(req.Name)
	e.EmpID = strings.TrimSpace(req.EmpID)
	e.Department = req.Department
	e.Designation = req.Designation
	e.Email = strings.TrimSpace(req.Email)
}
