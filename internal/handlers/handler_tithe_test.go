package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/parishledger/parishledger/internal/core/domain"
	portssvc "github.com/parishledger/parishledger/internal/core/ports/services"
	"github.com/parishledger/parishledger/internal/dto"
	"github.com/parishledger/parishledger/internal/handlers"
	"github.com/parishledger/parishledger/internal/platform/config"
)

// --- Mock TitheService ---
type MockTitheService struct {
	mock.Mock
}

func (m *MockTitheService) ListTithes(ctx context.Context, userID, churchID, search string) ([]domain.TitheRecord, error) {
	args := m.Called(ctx, userID, churchID, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TitheRecord), args.Error(1)
}

func (m *MockTitheService) CreateTithe(ctx context.Context, userID, churchID string, req dto.CreateTitheRequest) (*domain.TitheRecord, error) {
	args := m.Called(ctx, userID, churchID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TitheRecord), args.Error(1)
}

func (m *MockTitheService) DeleteTithe(ctx context.Context, userID, churchID, titheID string) error {
	args := m.Called(ctx, userID, churchID, titheID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.TitheSvcFacade = (*MockTitheService)(nil)

// --- Test Suite ---
type TitheHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockTitheService *MockTitheService
	jwtSecret        string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *TitheHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "parishledger-test",
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

func (suite *TitheHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockTitheService = new(MockTitheService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // keeps swagger routes out of the test router
	}
	services := &portssvc.ServiceContainer{
		Tithe: suite.mockTitheService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

// --- Test Cases ---

func (suite *TitheHandlerTestSuite) TestListTithes_Success() {
	churchID := uuid.NewString()
	userID := uuid.NewString()
	name := "Chinedu Obi"
	records := []domain.TitheRecord{
		{TitheID: uuid.NewString(), ChurchID: churchID, MemberName: &name, Amount: decimal.NewFromInt(500), Date: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)},
		{TitheID: uuid.NewString(), ChurchID: churchID, IsAnonymous: true, Amount: decimal.NewFromInt(200), Date: time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)},
	}

	suite.mockTitheService.On("ListTithes", mock.Anything, userID, churchID, "").Return(records, nil).Once()

	url := fmt.Sprintf("/api/v1/churches/%s/tithes", churchID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ListTithesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Tithes, 2)
	suite.Equal("Chinedu Obi", resp.Tithes[0].DisplayName)
	suite.Equal("Anonymous", resp.Tithes[1].DisplayName)
	suite.mockTitheService.AssertExpectations(suite.T())
}

func (suite *TitheHandlerTestSuite) TestListTithes_SearchForwarded() {
	churchID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockTitheService.On("ListTithes", mock.Anything, userID, churchID, "obi").Return([]domain.TitheRecord{}, nil).Once()

	url := fmt.Sprintf("/api/v1/churches/%s/tithes?search=obi", churchID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTitheService.AssertExpectations(suite.T())
}

func (suite *TitheHandlerTestSuite) TestCreateTithe_Success() {
	churchID := uuid.NewString()
	userID := uuid.NewString()
	body := dto.CreateTitheRequest{
		Amount:      decimal.NewFromInt(500),
		Date:        "2025-03-02",
		IsAnonymous: true,
	}
	created := &domain.TitheRecord{
		TitheID:     uuid.NewString(),
		ChurchID:    churchID,
		Amount:      body.Amount,
		Date:        time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		IsAnonymous: true,
	}

	suite.mockTitheService.On("CreateTithe", mock.Anything, userID, churchID, mock.MatchedBy(func(r dto.CreateTitheRequest) bool {
		return r.IsAnonymous && r.Amount.Equal(body.Amount)
	})).Return(created, nil).Once()

	payload, _ := json.Marshal(body)
	url := fmt.Sprintf("/api/v1/churches/%s/tithes", churchID)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Require().Equal(http.StatusCreated, w.Code)
	var resp dto.TitheResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.TitheID, resp.TitheID)
	suite.Equal("Anonymous", resp.DisplayName)
	suite.mockTitheService.AssertExpectations(suite.T())
}

func (suite *TitheHandlerTestSuite) TestCreateTithe_BadDate() {
	churchID := uuid.NewString()
	userID := uuid.NewString()
	payload := []byte(`{"amount": "500", "date": "02/03/2025"}`)

	url := fmt.Sprintf("/api/v1/churches/%s/tithes", churchID)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTitheService.AssertNotCalled(suite.T(), "CreateTithe", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TitheHandlerTestSuite) TestListTithes_NoToken() {
	url := fmt.Sprintf("/api/v1/churches/%s/tithes", uuid.NewString())
	req, _ := http.NewRequest(http.MethodGet, url, nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *TitheHandlerTestSuite) TestDeleteTithe_Success() {
	churchID := uuid.NewString()
	userID := uuid.NewString()
	titheID := uuid.NewString()

	suite.mockTitheService.On("DeleteTithe", mock.Anything, userID, churchID, titheID).Return(nil).Once()

	url := fmt.Sprintf("/api/v1/churches/%s/tithes/%s", churchID, titheID)
	req, _ := http.NewRequest(http.MethodDelete, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockTitheService.AssertExpectations(suite.T())
}

// --- Run Suite ---

func TestTitheHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TitheHandlerTestSuite))
}
