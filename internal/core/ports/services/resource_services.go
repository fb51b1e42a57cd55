package services

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/utils/pagination"
)

// ResourceReaderSvc defines read operations for resources
type ResourceReaderSvc interface {
	// GetResource retrieves a resource of the company by its ID.
	GetResource(ctx context.Context, companyID, resourceID string) (*domain.Resource, error)

	// ListResources retrieves one page of the company's resources.
	ListResources(ctx context.Context, companyID string, params dto.ListParams) ([]domain.Resource, pagination.Meta, error)
}

// ResourceWriterSvc defines write operations for resources
type ResourceWriterSvc interface {
	// CreateResource persists a new resource.
	CreateResource(ctx context.Context, companyID, userID string, req dto.CreateResourceRequest) (*domain.Resource, error)

	// UpdateResource replaces the editable fields of a resource.
	UpdateResource(ctx context.Context, companyID, userID, resourceID string, req dto.UpdateResourceRequest) (*domain.Resource, error)

	// BulkResources applies archive, restore or delete to several resources at once.
	BulkResources(ctx context.Context, companyID, userID string, req dto.BulkActionRequest) ([]domain.Resource, error)
}

// ResourceSvcFacade combines all resource-related service interfaces
type ResourceSvcFacade interface {
	ResourceReaderSvc
	ResourceWriterSvc
	CacheClearer
}
