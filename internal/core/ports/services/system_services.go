package services

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// SystemSvcFacade backs the health, ping and refresh endpoints.
type SystemSvcFacade interface {
	// HealthCheck reports database and cache status.
	HealthCheck(ctx context.Context) domain.HealthStatus

	// ClearCaches empties every registered in-process cache.
	ClearCaches(ctx context.Context)

	// Refresh reloads the company the caller acts for.
	Refresh(ctx context.Context, companyID string) (*domain.Company, error)

	// ProvisionCompany creates the company a token is issued for, if missing.
	ProvisionCompany(ctx context.Context, companyID, name string) (*domain.Company, error)
}
