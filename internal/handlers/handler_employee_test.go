package handlers_test

import (
	"net/http"
	"testing"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEmployeeHandler_BlankTemplate(t *testing.T) {
	ts := newTestServer(t)
	ts.employees.On("BlankEmployee", mock.Anything, testCompanyID, testUserID).
		Return(domain.Employee{CompanyID: testCompanyID, AuditFields: domain.AuditFields{UserID: testUserID}}).Once()

	w := ts.do(t, http.MethodGet, "/api/v1/employees/create", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode[dto.DataResponse[dto.EmployeeResponse]](t, w)
	assert.Empty(t, body.Data.ID)
	assert.Equal(t, domain.EmployeeStatusActive, body.Data.Status)
	assert.Zero(t, body.Data.CreatedAt)
	ts.employees.AssertNotCalled(t, "GetEmployee", mock.Anything, mock.Anything, mock.Anything)
}

func TestEmployeeHandler_CreateValidation(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/v1/employees", map[string]any{"name": "Ada", "email": "not-an-email"})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode[dto.ValidationErrorResponse](t, w)
	assert.Equal(t, []string{"The email must be a valid email address."}, body.Errors["email"])
}

func TestEmployeeHandler_CreateDuplicate(t *testing.T) {
	ts := newTestServer(t)
	ts.employees.On("CreateEmployee", mock.Anything, testCompanyID, testUserID, dto.CreateEmployeeRequest{Name: "Ada", EmpID: "E-1"}).
		Return(nil, apperrors.ErrDuplicate).Once()

	w := ts.do(t, http.MethodPost, "/api/v1/employees", map[string]any{"name": "Ada", "emp_id": "E-1"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestEmployeeHandler_BulkDeactivate(t *testing.T) {
	ts := newTestServer(t)
	inactive := domain.Employee{ID: "e1", CompanyID: testCompanyID, Name: "Ada"}
	inactive.ApplyState(domain.StateArchived, inactive.CreatedAt)
	req := dto.BulkActionRequest{Action: "deactivate", IDs: []string{"e1"}}
	ts.employees.On("BulkEmployees", mock.Anything, testCompanyID, testUserID, req).
		Return([]domain.Employee{inactive}, nil).Once()

	w := ts.do(t, http.MethodPost, "/api/v1/employees/bulk", req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode[dto.DataResponse[[]dto.EmployeeResponse]](t, w)
	require.Len(t, body.Data, 1)
	assert.Equal(t, domain.EmployeeStatusInactive, body.Data[0].Status)
}

func TestEmployeeHandler_ListAndGet(t *testing.T) {
	ts := newTestServer(t)
	emp := domain.Employee{ID: "e1", CompanyID: testCompanyID, Name: "Ada", EmpID: "E-1"}
	ts.employees.On("ListEmployees", mock.Anything, testCompanyID, dto.ListParams{Filter: "ada"}).
		Return([]domain.Employee{}, paginationMeta(0), nil).Once()
	ts.employees.On("GetEmployee", mock.Anything, testCompanyID, "e1").Return(&emp, nil).Once()

	w := ts.do(t, http.MethodGet, "/api/v1/employees?filter=ada", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[],"meta":{"pagination":{"total":0,"count":0,"per_page":100,"current_page":1,"total_pages":0}}}`, w.Body.String())

	w = ts.do(t, http.MethodGet, "/api/v1/employees/e1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[dto.DataResponse[dto.EmployeeResponse]](t, w)
	assert.Equal(t, "E-1", body.Data.EmpID)
}
