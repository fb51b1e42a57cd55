package repositories

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// FindCompanyByID retrieves a company with its settings.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
}

// CompanyWriter defines write operations for company data
type CompanyWriter interface {
	// EnsureCompany inserts the company unless one with the same id exists.
	// It reports whether a row was inserted.
	EnsureCompany(ctx context.Context, company domain.Company) (bool, error)
}

// CompanyRepositoryFacade combines all company-related repository interfaces
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
