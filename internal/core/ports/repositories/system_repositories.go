package repositories

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// SystemRepositoryFacade exposes database level checks used by the health endpoint.
type SystemRepositoryFacade interface {
	// Ping runs a trivial query against the database.
	Ping(ctx context.Context) error

	// MigrationStatus reads the applied schema version.
	MigrationStatus(ctx context.Context) (domain.MigrationStatus, error)
}
