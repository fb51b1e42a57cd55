package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/handlers"
	"github.com/SscSPs/invoicing_app/internal/middleware"
	"github.com/SscSPs/invoicing_app/internal/platform/config"
	"github.com/SscSPs/invoicing_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testJWTSecret = "handler-test-secret-that-is-long-enough"
	testCompanyID = "company-1"
	testUserID    = "user-1"
)

// --- Mock services ---

type MockResourceService struct {
	mock.Mock
}

func (m *MockResourceService) GetResource(ctx context.Context, companyID, resourceID string) (*domain.Resource, error) {
	args := m.Called(ctx, companyID, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}

func (m *MockResourceService) ListResources(ctx context.Context, companyID string, params dto.ListParams) ([]domain.Resource, pagination.Meta, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, pagination.Meta{}, args.Error(2)
	}
	return args.Get(0).([]domain.Resource), args.Get(1).(pagination.Meta), args.Error(2)
}

func (m *MockResourceService) CreateResource(ctx context.Context, companyID, userID string, req dto.CreateResourceRequest) (*domain.Resource, error) {
	args := m.Called(ctx, companyID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}

func (m *MockResourceService) UpdateResource(ctx context.Context, companyID, userID, resourceID string, req dto.UpdateResourceRequest) (*domain.Resource, error) {
	args := m.Called(ctx, companyID, userID, resourceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}

func (m *MockResourceService) BulkResources(ctx context.Context, companyID, userID string, req dto.BulkActionRequest) ([]domain.Resource, error) {
	args := m.Called(ctx, companyID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resource), args.Error(1)
}

func (m *MockResourceService) ClearCache() {
	m.Called()
}

var _ portssvc.ResourceSvcFacade = (*MockResourceService)(nil)

type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) GetEmployee(ctx context.Context, companyID, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, companyID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) ListEmployees(ctx context.Context, companyID string, params dto.ListParams) ([]domain.Employee, pagination.Meta, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, pagination.Meta{}, args.Error(2)
	}
	return args.Get(0).([]domain.Employee), args.Get(1).(pagination.Meta), args.Error(2)
}

func (m *MockEmployeeService) BlankEmployee(ctx context.Context, companyID, userID string) domain.Employee {
	args := m.Called(ctx, companyID, userID)
	return args.Get(0).(domain.Employee)
}

func (m *MockEmployeeService) CreateEmployee(ctx context.Context, companyID, userID string, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, companyID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) UpdateEmployee(ctx context.Context, companyID, userID, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, companyID, userID, employeeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) BulkEmployees(ctx context.Context, companyID, userID string, req dto.BulkActionRequest) ([]domain.Employee, error) {
	args := m.Called(ctx, companyID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

var _ portssvc.EmployeeSvcFacade = (*MockEmployeeService)(nil)

type MockSystemService struct {
	mock.Mock
}

func (m *MockSystemService) HealthCheck(ctx context.Context) domain.HealthStatus {
	args := m.Called(ctx)
	return args.Get(0).(domain.HealthStatus)
}

func (m *MockSystemService) ClearCaches(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockSystemService) Refresh(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockSystemService) ProvisionCompany(ctx context.Context, companyID, name string) (*domain.Company, error) {
	args := m.Called(ctx, companyID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

var _ portssvc.SystemSvcFacade = (*MockSystemService)(nil)

// --- Helpers ---

type testServer struct {
	router    *gin.Engine
	resources *MockResourceService
	employees *MockEmployeeService
	system    *MockSystemService
	token     string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ts := &testServer{
		resources: new(MockResourceService),
		employees: new(MockEmployeeService),
		system:    new(MockSystemService),
		token:     generateTestToken(t, testUserID, testCompanyID),
	}

	cfg := &config.Config{JWTSecret: testJWTSecret, IsProduction: true}
	container := &portssvc.ServiceContainer{
		Resource: ts.resources,
		Employee: ts.employees,
		System:   ts.system,
	}

	ts.router = gin.New()
	ts.router.Use(middleware.StructuredLoggingMiddleware(zerolog.Nop()))
	handlers.RegisterRoutes(ts.router, cfg, container)
	return ts
}

func generateTestToken(t *testing.T, userID, companyID string) string {
	t.Helper()
	signed, err := middleware.IssueToken(testJWTSecret, "test", userID, companyID, time.Hour)
	require.NoError(t, err)
	return signed
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+ts.token)
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
