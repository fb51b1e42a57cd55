package services_test

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type countingCache struct {
	cleared int
}

func (c *countingCache) ClearCache() {
	c.cleared++
}

func TestSystemService_HealthCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy", func(t *testing.T) {
		sysRepo := new(MockSystemRepository)
		sysRepo.On("Ping", ctx).Return(nil).Once()
		sysRepo.On("MigrationStatus", ctx).Return(domain.MigrationStatus{Version: 1}, nil).Once()

		svc := services.NewSystemService(sysRepo, new(MockCompanyRepository),
			services.WithAPIVersion("v1.2.3"),
			services.WithCaches(&countingCache{}),
		)
		status := svc.HealthCheck(ctx)

		assert.True(t, status.SystemHealth)
		assert.True(t, status.SimpleDBCheck)
		assert.True(t, status.CacheEnabled)
		assert.Equal(t, "v1.2.3", status.APIVersion)
		assert.Equal(t, runtime.Version(), status.GoVersion)
		assert.Equal(t, uint(1), status.Migrations.Version)
		sysRepo.AssertExpectations(t)
	})

	t.Run("database down", func(t *testing.T) {
		sysRepo := new(MockSystemRepository)
		sysRepo.On("Ping", ctx).Return(errors.New("connection refused")).Once()
		sysRepo.On("MigrationStatus", ctx).Return(domain.MigrationStatus{}, errors.New("connection refused")).Once()

		status := services.NewSystemService(sysRepo, new(MockCompanyRepository)).HealthCheck(ctx)

		assert.False(t, status.SystemHealth)
		assert.False(t, status.SimpleDBCheck)
		assert.False(t, status.CacheEnabled)
	})

	t.Run("dirty migrations", func(t *testing.T) {
		sysRepo := new(MockSystemRepository)
		sysRepo.On("MigrationStatus", ctx).Return(domain.MigrationStatus{Version: 2, Dirty: true}, nil).Once()

		status := services.NewSystemService(sysRepo, new(MockCompanyRepository), services.WithDBCheck(false)).HealthCheck(ctx)

		assert.True(t, status.SimpleDBCheck)
		assert.False(t, status.SystemHealth)
		sysRepo.AssertNotCalled(t, "Ping", ctx)
	})
}

func TestSystemService_ClearCaches(t *testing.T) {
	a, b := &countingCache{}, &countingCache{}
	svc := services.NewSystemService(new(MockSystemRepository), new(MockCompanyRepository), services.WithCaches(a, b))

	svc.ClearCaches(context.Background())

	assert.Equal(t, 1, a.cleared)
	assert.Equal(t, 1, b.cleared)
}

func TestSystemService_Refresh(t *testing.T) {
	ctx := context.Background()
	companyRepo := new(MockCompanyRepository)
	company := &domain.Company{ID: testCompanyID, Name: "Acme", EnabledItemTaxRates: 2}
	companyRepo.On("FindCompanyByID", ctx, testCompanyID).Return(company, nil).Once()
	companyRepo.On("FindCompanyByID", ctx, "gone").Return(nil, apperrors.ErrNotFound).Once()

	svc := services.NewSystemService(new(MockSystemRepository), companyRepo)

	got, err := svc.Refresh(ctx, testCompanyID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)

	_, err = svc.Refresh(ctx, "gone")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSystemService_ProvisionCompany(t *testing.T) {
	ctx := context.Background()

	t.Run("creates missing company", func(t *testing.T) {
		companyRepo := new(MockCompanyRepository)
		companyRepo.On("EnsureCompany", ctx, domain.Company{ID: "fresh", Name: "Fresh Co"}).Return(true, nil).Once()
		companyRepo.On("FindCompanyByID", ctx, "fresh").Return(&domain.Company{ID: "fresh", Name: "Fresh Co"}, nil).Once()
		svc := services.NewSystemService(new(MockSystemRepository), companyRepo)

		company, err := svc.ProvisionCompany(ctx, "fresh", " Fresh Co ")

		require.NoError(t, err)
		assert.Equal(t, "Fresh Co", company.Name)
		companyRepo.AssertExpectations(t)
	})

	t.Run("existing company is left alone", func(t *testing.T) {
		companyRepo := new(MockCompanyRepository)
		companyRepo.On("EnsureCompany", ctx, domain.Company{ID: testCompanyID}).Return(false, nil).Once()
		companyRepo.On("FindCompanyByID", ctx, testCompanyID).Return(&domain.Company{ID: testCompanyID, Name: "Acme"}, nil).Once()
		svc := services.NewSystemService(new(MockSystemRepository), companyRepo)

		company, err := svc.ProvisionCompany(ctx, testCompanyID, "")

		require.NoError(t, err)
		assert.Equal(t, "Acme", company.Name)
	})

	t.Run("blank id", func(t *testing.T) {
		companyRepo := new(MockCompanyRepository)
		svc := services.NewSystemService(new(MockSystemRepository), companyRepo)

		_, err := svc.ProvisionCompany(ctx, " ", "x")

		bag, ok := apperrors.AsValidationErrors(err)
		require.True(t, ok)
		assert.Contains(t, bag, "company_id")
		companyRepo.AssertNotCalled(t, "EnsureCompany", mock.Anything, mock.Anything)
	})
}
