package repositories

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ResourceReader defines read operations for resource data
type ResourceReader interface {
	// FindResourceByID retrieves a resource of a company by its ID.
	FindResourceByID(ctx context.Context, companyID, resourceID string) (*domain.Resource, error)

	// ListResources returns one page of resources and the total number of matches.
	ListResources(ctx context.Context, companyID string, query domain.ListQuery) ([]domain.Resource, int, error)
}

// ResourceWriter defines write operations for resource data
type ResourceWriter interface {
	// SaveResource persists a new resource.
	SaveResource(ctx context.Context, resource domain.Resource) error

	// UpdateResource replaces the editable fields of an existing resource.
	UpdateResource(ctx context.Context, resource domain.Resource) error
}

// ResourceBulkWriter defines the row locking operations used by bulk actions
type ResourceBulkWriter interface {
	// FindResourcesByIDsForUpdate locks and returns the given resources of a company.
	FindResourcesByIDsForUpdate(ctx context.Context, tx pgx.Tx, companyID string, resourceIDs []string) ([]domain.Resource, error)

	// UpdateResourceLifecycleInTx stores the lifecycle markers of the given resources.
	UpdateResourceLifecycleInTx(ctx context.Context, tx pgx.Tx, resources []domain.Resource) error
}

// ResourceRepositoryFacade combines all resource-related repository interfaces
type ResourceRepositoryFacade interface {
	ResourceReader
	ResourceWriter
	ResourceBulkWriter
}

// ResourceRepositoryWithTx extends ResourceRepositoryFacade with transaction capabilities
type ResourceRepositoryWithTx interface {
	ResourceRepositoryFacade
	TransactionManager
}
