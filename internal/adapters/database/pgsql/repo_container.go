package pgsql

import (
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ResourceRepo: newPgxResourceRepository(dbPool),
		EmployeeRepo: newPgxEmployeeRepository(dbPool),
		CompanyRepo:  newPgxCompanyRepository(dbPool),
		SystemRepo:   newPgxSystemRepository(dbPool),
	}
}
