package services

import (
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Resource = NewResourceService(
		repos.ResourceRepo,
		WithResourceCacheSize(cfg.CatalogCacheSize),
	)
	container.Employee = NewEmployeeService(repos.EmployeeRepo)

	// The resource cache is the only one ping?clear_cache has to empty.
	var caches []portssvc.CacheClearer
	if cfg.CatalogCacheSize > 0 {
		caches = append(caches, container.Resource)
	}
	container.System = NewSystemService(
		repos.SystemRepo,
		repos.CompanyRepo,
		WithCaches(caches...),
		WithAPIVersion(cfg.APIVersion),
		WithDBCheck(cfg.EnableDBCheck),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ResourceSvcFacade = (*resourceService)(nil)
	_ portssvc.EmployeeSvcFacade = (*employeeService)(nil)
	_ portssvc.SystemSvcFacade   = (*systemService)(nil)
)
