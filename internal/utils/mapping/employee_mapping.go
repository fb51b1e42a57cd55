package mapping

import (
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		ID:          d.ID,
		CompanyID:   d.CompanyID,
		Name:        d.Name,
		EmpID:       d.EmpID,
		Department:  d.Department,
		Designation: d.Designation,
		Email:       d.Email,
		Lifecycle:   ToModelLifecycle(d.Lifecycle),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		ID:          m.ID,
		CompanyID:   m.CompanyID,
		Name:        m.Name,
		EmpID:       m.EmpID,
		Department:  m.Department,
		Designation: m.Designation,
		Email:       m.Email,
		Lifecycle:   ToDomainLifecycle(m.Lifecycle),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEmployeeSlice converts a slice of model Employees to a slice of domain Employees
func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	ds := make([]domain.Employee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEmployee(m)
	}
	return ds
}
