package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/eventstaff/esa_backend/internal/apperrors"
	"github.com/eventstaff/esa_backend/internal/core/domain"
	portssvc "github.com/eventstaff/esa_backend/internal/core/ports/services"
	"github.com/eventstaff/esa_backend/internal/dto"
	"github.com/eventstaff/esa_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PayrollService ---
type MockPayrollService struct {
	mock.Mock
}

func (m *MockPayrollService) ListPendingServices(ctx context.Context, requesterUserID string, organizationID string) (*dto.ListPendingServicesResponse, error) {
	args := m.Called(ctx, requesterUserID, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListPendingServicesResponse), args.Error(1)
}
func (m *MockPayrollService) GetBatch(ctx context.Context, requesterUserID string, organizationID string, batchID string) (*dto.GetBatchResponse, error) {
	args := m.Called(ctx, requesterUserID, organizationID, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GetBatchResponse), args.Error(1)
}
func (m *MockPayrollService) ListBatches(ctx context.Context, requesterUserID string, organizationID string) ([]domain.PaymentBatch, error) {
	args := m.Called(ctx, requesterUserID, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentBatch), args.Error(1)
}
func (m *MockPayrollService) ListMyPayments(ctx context.Context, requesterUserID string, organizationID string) (*dto.ListMyPaymentsResponse, error) {
	args := m.Called(ctx, requesterUserID, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListMyPaymentsResponse), args.Error(1)
}
func (m *MockPayrollService) CreateBatch(ctx context.Context, requesterUserID string, organizationID string, req dto.CreateBatchRequest) (*domain.PaymentBatch, error) {
	args := m.Called(ctx, requesterUserID, organizationID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentBatch), args.Error(1)
}
func (m *MockPayrollService) ToggleCollection(ctx context.Context, requesterUserID string, organizationID string, batchID string, personnelID string, collectionDone bool) error {
	args := m.Called(ctx, requesterUserID, organizationID, batchID, personnelID, collectionDone)
	return args.Error(0)
}
func (m *MockPayrollService) FinalizeBatch(ctx context.Context, requesterUserID string, organizationID string, batchID string, req dto.FinalizeBatchRequest) (*dto.FinalizeBatchResponse, error) {
	args := m.Called(ctx, requesterUserID, organizationID, batchID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FinalizeBatchResponse), args.Error(1)
}
func (m *MockPayrollService) VoidBatch(ctx context.Context, requesterUserID string, organizationID string, batchID string) error {
	args := m.Called(ctx, requesterUserID, organizationID, batchID)
	return args.Error(0)
}
func (m *MockPayrollService) UpdateScheduledDate(ctx context.Context, requesterUserID string, organizationID string, batchID string, req dto.UpdateBatchDateRequest) (*domain.PaymentBatch, error) {
	args := m.Called(ctx, requesterUserID, organizationID, batchID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentBatch), args.Error(1)
}
func (m *MockPayrollService) ApproveBatch(ctx context.Context, requesterUserID string, organizationID string, batchID string) (*domain.PaymentBatch, error) {
	args := m.Called(ctx, requesterUserID, organizationID, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentBatch), args.Error(1)
}
func (m *MockPayrollService) ClaimBatch(ctx context.Context, requesterUserID string, organizationID string, batchID string) (*domain.PaymentBatch, error) {
	args := m.Called(ctx, requesterUserID, organizationID, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentBatch), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.PayrollSvcFacade = (*MockPayrollService)(nil)

// --- Test Suite ---
type PayrollHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockSvc   *MockPayrollService
	jwtSecret string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *PayrollHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "esa-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *PayrollHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockSvc = new(MockPayrollService)

	org := suite.router.Group("/api/v1/organizations/:organization_id")
	registerPayrollRoutes(org, suite.mockSvc)
}

func (suite *PayrollHandlerTestSuite) doRequest(method, url, token string, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *PayrollHandlerTestSuite) TestGetBatch_Success() {
	organizationID := uuid.NewString()
	batchID := uuid.NewString()
	userID := uuid.NewString()

	expected := &dto.GetBatchResponse{
		Batch: dto.BatchResponse{
			BatchID:     batchID,
			Name:        "Quincena agosto",
			Status:      domain.BatchInPreparation,
			TotalAmount: decimal.NewFromInt(1500),
		},
	}

	suite.mockSvc.On("GetBatch",
		mock.Anything, userID, organizationID, batchID,
	).Return(expected, nil).Once()

	url := fmt.Sprintf("/api/v1/organizations/%s/payroll/batches/%s", organizationID, batchID)
	w := suite.doRequest(http.MethodGet, url, suite.generateTestToken(userID), "")

	suite.Equal(http.StatusOK, w.Code)

	var got dto.GetBatchResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(batchID, got.Batch.BatchID)
	suite.Equal("Quincena agosto", got.Batch.Name)
	suite.True(got.Batch.TotalAmount.Equal(decimal.NewFromInt(1500)))

	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *PayrollHandlerTestSuite) TestGetBatch_NotFound() {
	organizationID := uuid.NewString()
	batchID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockSvc.On("GetBatch",
		mock.Anything, userID, organizationID, batchID,
	).Return(nil, fmt.Errorf("batch %s: %w", batchID, apperrors.ErrNotFound)).Once()

	url := fmt.Sprintf("/api/v1/organizations/%s/payroll/batches/%s", organizationID, batchID)
	w := suite.doRequest(http.MethodGet, url, suite.generateTestToken(userID), "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *PayrollHandlerTestSuite) TestGetBatch_MissingToken() {
	url := fmt.Sprintf("/api/v1/organizations/%s/payroll/batches/%s", uuid.NewString(), uuid.NewString())
	w := suite.doRequest(http.MethodGet, url, "", "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "GetBatch")
}

func (suite *PayrollHandlerTestSuite) TestCreateBatch_ConflictFromService() {
	organizationID := uuid.NewString()
	userID := uuid.NewString()
	serviceID := uuid.NewString()

	suite.mockSvc.On("CreateBatch",
		mock.Anything, userID, organizationID,
		mock.MatchedBy(func(req dto.CreateBatchRequest) bool {
			return req.Name == "Lote sabado" && len(req.Services) == 1 && req.Services[0].AssignedServiceID == serviceID
		}),
	).Return(nil, fmt.Errorf("1 of 1 selected services are no longer pending: %w", apperrors.ErrConflict)).Once()

	body := fmt.Sprintf(`{"name":"Lote sabado","services":[{"assignedServiceID":"%s"}]}`, serviceID)
	url := fmt.Sprintf("/api/v1/organizations/%s/payroll/batches", organizationID)
	w := suite.doRequest(http.MethodPost, url, suite.generateTestToken(userID), body)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *PayrollHandlerTestSuite) TestCreateBatch_RejectsEmptySelection() {
	organizationID := uuid.NewString()
	userID := uuid.NewString()

	body := `{"name":"Lote vacio","services":[]}`
	url := fmt.Sprintf("/api/v1/organizations/%s/payroll/batches", organizationID)
	w := suite.doRequest(http.MethodPost, url, suite.generateTestToken(userID), body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "CreateBatch")
}

func (suite *PayrollHandlerTestSuite) TestToggleCollection_RequiresFlag() {
	organizationID := uuid.NewString()
	userID := uuid.NewString()

	url := fmt.Sprintf("/api/v1/organizations/%s/payroll/batches/%s/collection/%s",
		organizationID, uuid.NewString(), uuid.NewString())
	w := suite.doRequest(http.MethodPut, url, suite.generateTestToken(userID), `{}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "ToggleCollection")
}

func (suite *PayrollHandlerTestSuite) TestFinalizeBatch_EmptyBodyAllowed() {
	organizationID := uuid.NewString()
	batchID := uuid.NewString()
	userID := uuid.NewString()

	expected := &dto.FinalizeBatchResponse{
		BatchID:     batchID,
		PaidIDs:     []string{uuid.NewString()},
		RevertedIDs: []string{},
	}
	suite.mockSvc.On("FinalizeBatch",
		mock.Anything, userID, organizationID, batchID,
		dto.FinalizeBatchRequest{},
	).Return(expected, nil).Once()

	url := fmt.Sprintf("/api/v1/organizations/%s/payroll/batches/%s/finalize", organizationID, batchID)
	w := suite.doRequest(http.MethodPost, url, suite.generateTestToken(userID), "")

	suite.Equal(http.StatusOK, w.Code)

	var got dto.FinalizeBatchResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Len(got.PaidIDs, 1)
	suite.Empty(got.RevertedIDs)

	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *PayrollHandlerTestSuite) TestVoidBatch_Conflict() {
	organizationID := uuid.NewString()
	batchID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockSvc.On("VoidBatch",
		mock.Anything, userID, organizationID, batchID,
	).Return(fmt.Errorf("batch %s is already voided: %w", batchID, apperrors.ErrConflict)).Once()

	url := fmt.Sprintf("/api/v1/organizations/%s/payroll/batches/%s/void", organizationID, batchID)
	w := suite.doRequest(http.MethodPost, url, suite.generateTestToken(userID), "")

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *PayrollHandlerTestSuite) TestVoidBatch_Success() {
	organizationID := uuid.NewString()
	batchID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockSvc.On("VoidBatch",
		mock.Anything, userID, organizationID, batchID,
	).Return(nil).Once()

	url := fmt.Sprintf("/api/v1/organizations/%s/payroll/batches/%s/void", organizationID, batchID)
	w := suite.doRequest(http.MethodPost, url, suite.generateTestToken(userID), "")

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestPayrollHandler(t *testing.T) {
	suite.Run(t, new(PayrollHandlerTestSuite))
}
