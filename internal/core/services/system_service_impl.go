package services

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

type systemService struct {
	BaseService
	systemRepo  portsrepo.SystemRepositoryFacade
	companyRepo portsrepo.CompanyRepositoryFacade
	caches      []portssvc.CacheClearer
	apiVersion  string
	dbCheck     bool
	dockerEnv   string
}

// SystemServiceOption is a functional option for configuring the system service
type SystemServiceOption func(*systemService)

// WithCaches registers caches emptied by ClearCaches.
func WithCaches(caches ...portssvc.CacheClearer) SystemServiceOption {
	return func(s *systemService) {
		s.caches = append(s.caches, caches...)
	}
}

// WithAPIVersion sets the version reported by the health check.
func WithAPIVersion(version string) SystemServiceOption {
	return func(s *systemService) {
		s.apiVersion = version
	}
}

// WithDBCheck toggles the database ping of the health check.
func WithDBCheck(enabled bool) SystemServiceOption {
	return func(s *systemService) {
		s.dbCheck = enabled
	}
}

// NewSystemService creates the service behind the system endpoints.
func NewSystemService(systemRepo portsrepo.SystemRepositoryFacade, companyRepo portsrepo.CompanyRepositoryFacade, options ...SystemServiceOption) portssvc.SystemSvcFacade {
	svc := &systemService{
		systemRepo:  systemRepo,
		companyRepo: companyRepo,
		dbCheck:     true,
		dockerEnv:   "/.dockerenv",
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.SystemSvcFacade = (*systemService)(nil)

// HealthCheck pings the database and reads the migration state. Failures are
// reported in the result, never returned.
func (s *systemService) HealthCheck(ctx context.Context) domain.HealthStatus {
	status := domain.HealthStatus{
		SimpleDBCheck: true,
		CacheEnabled:  len(s.caches) > 0,
		APIVersion:    s.apiVersion,
		GoVersion:     runtime.Version(),
		IsDocker:      fileExists(s.dockerEnv),
	}

	if s.dbCheck {
		if err := s.systemRepo.Ping(ctx); err != nil {
			s.LogError(ctx, err, "Database ping failed")
			status.SimpleDBCheck = false
		}
	}

	migrations, err := s.systemRepo.MigrationStatus(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read migration status")
	}
	status.Migrations = migrations
	status.SystemHealth = status.SimpleDBCheck && err == nil && !migrations.Dirty
	return status
}

// ClearCaches empties every registered cache.
func (s *systemService) ClearCaches(ctx context.Context) {
	for _, c := range s.caches {
		c.ClearCache()
	}
	s.LogInfo(ctx, "Caches cleared", "count", len(s.caches))
}

// Refresh reloads the caller's company.
func (s *systemService) Refresh(ctx context.Context, companyID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh company %s: %w", companyID, err)
	}
	return company, nil
}

// ProvisionCompany makes sure companyID exists so its resources and
// employees can be written, then returns it.
func (s *systemService) ProvisionCompany(ctx context.Context, companyID, name string) (*domain.Company, error) {
	if strings.TrimSpace(companyID) == "" {
		bag := apperrors.NewValidationErrors()
		bag.Add("company_id", "The company id field is required.")
		return nil, bag
	}

	created, err := s.companyRepo.EnsureCompany(ctx, domain.Company{ID: companyID, Name: strings.TrimSpace(name)})
	if err != nil {
		s.LogError(ctx, err, "Failed to provision company", "company_id", companyID)
		return nil, fmt.Errorf("failed to provision company %s: %w", companyID, err)
	}
	if created {
		s.LogInfo(ctx, "Company provisioned", "company_id", companyID)
	}
	return s.Refresh(ctx, companyID)
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
