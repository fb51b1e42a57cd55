package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	"github.com/SscSPs/invoicing_app/internal/models"
	"github.com/SscSPs/invoicing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const employeeColumns = `id, company_id, name, emp_id, department, designation, email,
	is_deleted, archived_at, user_id, created_at, updated_at`

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for employee data.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryWithTx {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryWithTx = (*PgxEmployeeRepository)(nil)

// SaveEmployee inserts a new employee. emp_id is unique per company when set.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)

	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ID, m.CompanyID, m.Name, m.EmpID, m.Department, m.Designation, m.Email,
		m.IsDeleted, m.ArchivedAt, m.UserID, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if cerr := constraintError(err, "employee id "+m.EmpID+" is already taken"); cerr != nil {
			return cerr
		}
		return fmt.Errorf("failed to save employee %s: %w", m.ID, err)
	}
	return nil
}

// FindEmployeeByID retrieves an employee of a company by its ID.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, companyID, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE company_id = $1 AND id = $2;`

	rows, err := r.Pool.Query(ctx, query, companyID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee %s: %w", employeeID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Employee])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by ID %s: %w", employeeID, err)
	}

	d := mapping.ToDomainEmployee(m)
	return &d, nil
}

// ListEmployees retrieves one page of employees together with the number of matches.
func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, companyID string, q domain.ListQuery) ([]domain.Employee, int, error) {
	where, order, args := listClause(q, []string{"name", "emp_id", "email"}, domain.EmployeeSortColumns)
	args = append([]any{companyID}, args...)

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees for company %s: %w", companyID, err)
	}

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d;`,
		employeeColumns, where, order, len(args)+1, len(args)+2)
	rows, err := r.Pool.Query(ctx, query, append(args, q.Limit, q.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query employees for company %s: %w", companyID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Employee])
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan employees: %w", err)
	}
	return mapping.ToDomainEmployeeSlice(ms), total, nil
}

// UpdateEmployee stores the editable fields of an employee.
func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)

	query := `
		UPDATE employees
		SET name = $3, emp_id = $4, department = $5, designation = $6, email = $7, updated_at = $8
		WHERE company_id = $1 AND id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.CompanyID, m.ID, m.Name, m.EmpID, m.Department, m.Designation, m.Email, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: employee id %s is already taken", apperrors.ErrDuplicate, m.EmpID)
		}
		return fmt.Errorf("failed to execute update employee %s: %w", m.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindEmployeesByIDsForUpdate retrieves employees by IDs and locks the rows.
// Must be called within a transaction.
func (r *PgxEmployeeRepository) FindEmployeesByIDsForUpdate(ctx context.Context, tx pgx.Tx, companyID string, employeeIDs []string) ([]domain.Employee, error) {
	if len(employeeIDs) == 0 {
		return []domain.Employee{}, nil
	}

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE company_id = $1 AND id = ANY($2) FOR UPDATE;`
	rows, err := tx.Query(ctx, query, companyID, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees by IDs for update: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Employee])
	if err != nil {
		return nil, fmt.Errorf("failed to scan employees for update: %w", err)
	}
	return mapping.ToDomainEmployeeSlice(ms), nil
}

// UpdateEmployeeLifecycleInTx stores the lifecycle markers of the given employees.
func (r *PgxEmployeeRepository) UpdateEmployeeLifecycleInTx(ctx context.Context, tx pgx.Tx, employees []domain.Employee) error {
	if len(employees) == 0 {
		return nil
	}

	query := `
		UPDATE employees SET is_deleted = $3, archived_at = $4, updated_at = $5
		WHERE company_id = $1 AND id = $2;
	`
	batch := &pgx.Batch{}
	for _, e := range employees {
		batch.Queue(query, e.CompanyID, e.ID, e.IsDeleted, e.ArchivedAt, e.UpdatedAt)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()

	for _, e := range employees {
		cmdTag, err := br.Exec()
		if err != nil {
			return fmt.Errorf("failed to update lifecycle of employee %s: %w", e.ID, err)
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("employee %s: %w", e.ID, apperrors.ErrNotFound)
		}
	}
	return nil
}
