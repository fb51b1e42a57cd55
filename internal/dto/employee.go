package dto

import (
	"time"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// CreateEmployeeRequest defines the data needed to create an employee.
type CreateEmployeeRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	EmpID       string `json:"emp_id" binding:"max=64"`
	Department  string `json:"department" binding:"max=255"`
	Designation string `json:"designation" binding:"max=255"`
	Email       string `json:"email" binding:"omitempty,email,max=255"`
}

// UpdateEmployeeRequest replaces every editable field of an employee.
type UpdateEmployeeRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	EmpID       string `json:"emp_id" binding:"max=64"`
	Department  string `json:"department" binding:"max=255"`
	Designation string `json:"designation" binding:"max=255"`
	Email       string `json:"email" binding:"omitempty,email,max=255"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	CompanyID   string `json:"company_id"`
	Name        string `json:"name"`
	EmpID       string `json:"emp_id"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	Email       string `json:"email"`
	Status      string `json:"status"`
	IsDeleted   bool   `json:"is_deleted"`
	ArchivedAt  *int64 `json:"archived_at"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO.
// A blank template has zero timestamps, reported as 0.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		CompanyID:   e.CompanyID,
		Name:        e.Name,
		EmpID:       e.EmpID,
		Department:  e.Department,
		Designation: e.Designation,
		Email:       e.Email,
		Status:      e.Status(),
		IsDeleted:   e.IsDeleted,
		ArchivedAt:  unixPtr(e.ArchivedAt),
		CreatedAt:   unixOrZero(e.CreatedAt),
		UpdatedAt:   unixOrZero(e.UpdatedAt),
	}
}

// ToListEmployeeResponse converts a slice of domain.Employee to response DTOs.
func ToListEmployeeResponse(employees []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = ToEmployeeResponse(&employees[i])
	}
	return res
}

// ToDomainEmployee converts a response back into the domain type.
func (e EmployeeResponse) ToDomainEmployee() domain.Employee {
	return domain.Employee{
		ID:          e.ID,
		CompanyID:   e.CompanyID,
		Name:        e.Name,
		EmpID:       e.EmpID,
		Department:  e.Department,
		Designation: e.Designation,
		Email:       e.Email,
		Lifecycle:   domain.Lifecycle{IsDeleted: e.IsDeleted, ArchivedAt: timePtr(e.ArchivedAt)},
		AuditFields: domain.AuditFields{
			UserID:    e.UserID,
			CreatedAt: time.Unix(e.CreatedAt, 0).UTC(),
			UpdatedAt: time.Unix(e.UpdatedAt, 0).UTC(),
		},
	}
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
