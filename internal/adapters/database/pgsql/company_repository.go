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

type PgxCompanyRepository struct {
	pool *pgxpool.Pool
}

func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{pool: pool}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

// FindCompanyByID retrieves a company. custom_fields and settings are JSONB.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `
		SELECT id, name, calculate_taxes, enabled_item_tax_rates, custom_fields, settings
		FROM companies
		WHERE id = $1;
	`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query company %s: %w", companyID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Company])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company by ID %s: %w", companyID, err)
	}

	d := mapping.ToDomainCompany(m)
	return &d, nil
}

// EnsureCompany inserts a company with default settings when it is missing.
func (r *PgxCompanyRepository) EnsureCompany(ctx context.Context, company domain.Company) (bool, error) {
	name := company.Name
	if name == "" {
		name = company.ID
	}
	query := `
		INSERT INTO companies (id, name, calculate_taxes, enabled_item_tax_rates)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING;
	`
	cmdTag, err := r.pool.Exec(ctx, query, company.ID, name, company.CalculateTaxes, company.EnabledItemTaxRates)
	if err != nil {
		return false, fmt.Errorf("failed to ensure company %s: %w", company.ID, err)
	}
	return cmdTag.RowsAffected() == 1, nil
}
