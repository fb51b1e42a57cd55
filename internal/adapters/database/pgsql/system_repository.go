package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSystemRepository struct {
	pool *pgxpool.Pool
}

func newPgxSystemRepository(pool *pgxpool.Pool) portsrepo.SystemRepositoryFacade {
	return &PgxSystemRepository{pool: pool}
}

var _ portsrepo.SystemRepositoryFacade = (*PgxSystemRepository)(nil)

// Ping runs SELECT 1 on a pooled connection.
func (r *PgxSystemRepository) Ping(ctx context.Context) error {
	var one int
	if err := r.pool.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// MigrationStatus reads the golang-migrate bookkeeping table. An empty table
// reports version 0.
func (r *PgxSystemRepository) MigrationStatus(ctx context.Context) (domain.MigrationStatus, error) {
	var version int64
	var dirty bool
	err := r.pool.QueryRow(ctx, "SELECT version, dirty FROM schema_migrations LIMIT 1").Scan(&version, &dirty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.MigrationStatus{}, nil
		}
		return domain.MigrationStatus{}, fmt.Errorf("failed to read migration status: %w", err)
	}
	return domain.MigrationStatus{Version: uint(version), Dirty: dirty}, nil
}
