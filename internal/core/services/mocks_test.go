package services_test

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// MockTxManager mocks the transaction half of the *WithTx repositories.
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockResourceRepository is a mock type for the ResourceRepositoryWithTx interface
type MockResourceRepository struct {
	MockTxManager
}

func (m *MockResourceRepository) FindResourceByID(ctx context.Context, companyID, resourceID string) (*domain.Resource, error) {
	args := m.Called(ctx, companyID, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}

func (m *MockResourceRepository) ListResources(ctx context.Context, companyID string, query domain.ListQuery) ([]domain.Resource, int, error) {
	args := m.Called(ctx, companyID, query)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Resource), args.Int(1), args.Error(2)
}

func (m *MockResourceRepository) SaveResource(ctx context.Context, resource domain.Resource) error {
	args := m.Called(ctx, resource)
	return args.Error(0)
}

func (m *MockResourceRepository) UpdateResource(ctx context.Context, resource domain.Resource) error {
	args := m.Called(ctx, resource)
	return args.Error(0)
}

func (m *MockResourceRepository) FindResourcesByIDsForUpdate(ctx context.Context, tx pgx.Tx, companyID string, resourceIDs []string) ([]domain.Resource, error) {
	args := m.Called(ctx, tx, companyID, resourceIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resource), args.Error(1)
}

func (m *MockResourceRepository) UpdateResourceLifecycleInTx(ctx context.Context, tx pgx.Tx, resources []domain.Resource) error {
	args := m.Called(ctx, tx, resources)
	return args.Error(0)
}

// MockEmployeeRepository is a mock type for the EmployeeRepositoryWithTx interface
type MockEmployeeRepository struct {
	MockTxManager
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, companyID, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, companyID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context, companyID string, query domain.ListQuery) ([]domain.Employee, int, error) {
	args := m.Called(ctx, companyID, query)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Employee), args.Int(1), args.Error(2)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) FindEmployeesByIDsForUpdate(ctx context.Context, tx pgx.Tx, companyID string, employeeIDs []string) ([]domain.Employee, error) {
	args := m.Called(ctx, tx, companyID, employeeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) UpdateEmployeeLifecycleInTx(ctx context.Context, tx pgx.Tx, employees []domain.Employee) error {
	args := m.Called(ctx, tx, employees)
	return args.Error(0)
}

// MockSystemRepository is a mock type for the SystemRepositoryFacade interface
type MockSystemRepository struct {
	mock.Mock
}

func (m *MockSystemRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSystemRepository) MigrationStatus(ctx context.Context) (domain.MigrationStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.MigrationStatus), args.Error(1)
}

// MockCompanyRepository is a mock type for the CompanyRepositoryFacade interface
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) EnsureCompany(ctx context.Context, company domain.Company) (bool, error) {
	args := m.Called(ctx, company)
	return args.Bool(0), args.Error(1)
}
