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

const resourceColumns = `id, company_id, assigned_user_id, name, description, rate, rate_per_hour, rate_per_day,
	rate_per_week, rate_per_month, custom_value1, custom_value2, custom_value3, custom_value4,
	is_deleted, archived_at, user_id, created_at, updated_at`

// PgxResourceRepository implements portsrepo.ResourceRepositoryWithTx using pgx.
type PgxResourceRepository struct {
	BaseRepository
}

// newPgxResourceRepository creates a new repository for resource data.
func newPgxResourceRepository(pool *pgxpool.Pool) portsrepo.ResourceRepositoryWithTx {
	return &PgxResourceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxResourceRepository implements portsrepo.ResourceRepositoryWithTx
var _ portsrepo.ResourceRepositoryWithTx = (*PgxResourceRepository)(nil)

// SaveResource inserts a new resource.
func (r *PgxResourceRepository) SaveResource(ctx context.Context, resource domain.Resource) error {
	m := mapping.ToModelResource(resource)

	query := `
		INSERT INTO resources (` + resourceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ID, m.CompanyID, m.AssignedUserID, m.Name, m.Description,
		m.Rate, m.RatePerHour, m.RatePerDay, m.RatePerWeek, m.RatePerMonth,
		m.CustomValue1, m.CustomValue2, m.CustomValue3, m.CustomValue4,
		m.IsDeleted, m.ArchivedAt, m.UserID, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if cerr := constraintError(err, "resource "+m.ID+" already exists"); cerr != nil {
			return cerr
		}
		return fmt.Errorf("failed to save resource %s: %w", m.ID, err)
	}
	return nil
}

// FindResourceByID retrieves a resource of a company by its ID.
func (r *PgxResourceRepository) FindResourceByID(ctx context.Context, companyID, resourceID string) (*domain.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE company_id = $1 AND id = $2;`

	rows, err := r.Pool.Query(ctx, query, companyID, resourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query resource %s: %w", resourceID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Resource])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find resource by ID %s: %w", resourceID, err)
	}

	d := mapping.ToDomainResource(m)
	return &d, nil
}

// ListResources retrieves one page of resources together with the number of matches.
func (r *PgxResourceRepository) ListResources(ctx context.Context, companyID string, q domain.ListQuery) ([]domain.Resource, int, error) {
	where, order, args := listClause(q, []string{"name", "description"}, domain.ResourceSortColumns)
	args = append([]any{companyID}, args...)

	var total int
	countQuery := `SELECT COUNT(*) FROM resources WHERE ` + where
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count resources for company %s: %w", companyID, err)
	}

	query := fmt.Sprintf(`SELECT %s FROM resources WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d;`,
		resourceColumns, where, order, len(args)+1, len(args)+2)
	rows, err := r.Pool.Query(ctx, query, append(args, q.Limit, q.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query resources for company %s: %w", companyID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Resource])
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan resources: %w", err)
	}
	return mapping.ToDomainResourceSlice(ms), total, nil
}

// UpdateResource stores the editable fields of a resource.
func (r *PgxResourceRepository) UpdateResource(ctx context.Context, resource domain.Resource) error {
	m := mapping.ToModelResource(resource)

	query := `
		UPDATE resources
		SET assigned_user_id = $3, name = $4, description = $5, rate = $6, rate_per_hour = $7,
			rate_per_day = $8, rate_per_week = $9, rate_per_month = $10, custom_value1 = $11,
			custom_value2 = $12, custom_value3 = $13, custom_value4 = $14, updated_at = $15
		WHERE company_id = $1 AND id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.CompanyID, m.ID, m.AssignedUserID, m.Name, m.Description,
		m.Rate, m.RatePerHour, m.RatePerDay, m.RatePerWeek, m.RatePerMonth,
		m.CustomValue1, m.CustomValue2, m.CustomValue3, m.CustomValue4, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update resource %s: %w", m.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindResourcesByIDsForUpdate retrieves resources by IDs and locks the rows.
// Must be called within a transaction.
func (r *PgxResourceRepository) FindResourcesByIDsForUpdate(ctx context.Context, tx pgx.Tx, companyID string, resourceIDs []string) ([]domain.Resource, error) {
	if len(resourceIDs) == 0 {
		return []domain.Resource{}, nil
	}

	query := `SELECT ` + resourceColumns + ` FROM resources WHERE company_id = $1 AND id = ANY($2) FOR UPDATE;`
	rows, err := tx.Query(ctx, query, companyID, resourceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query resources by IDs for update: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Resource])
	if err != nil {
		return nil, fmt.Errorf("failed to scan resources for update: %w", err)
	}
	return mapping.ToDomainResourceSlice(ms), nil
}

// UpdateResourceLifecycleInTx stores the lifecycle markers of the given resources in a single batch.
func (r *PgxResourceRepository) UpdateResourceLifecycleInTx(ctx context.Context, tx pgx.Tx, resources []domain.Resource) error {
	if len(resources) == 0 {
		return nil
	}

	query := `
		UPDATE resources SET is_deleted = $3, archived_at = $4, updated_at = $5
		WHERE company_id = $1 AND id = $2;
	`
	batch := &pgx.Batch{}
	for _, res := range resources {
		batch.Queue(query, res.CompanyID, res.ID, res.IsDeleted, res.ArchivedAt, res.UpdatedAt)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()

	for _, res := range resources {
		cmdTag, err := br.Exec()
		if err != nil {
			return fmt.Errorf("failed to update lifecycle of resource %s: %w", res.ID, err)
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("resource %s: %w", res.ID, apperrors.ErrNotFound)
		}
	}
	return nil
}
