package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/parishledger/parishledger/internal/apperrors"
	"github.com/parishledger/parishledger/internal/core/domain"
	portssvc "github.com/parishledger/parishledger/internal/core/ports/services"
	"github.com/parishledger/parishledger/internal/core/services"
	"github.com/parishledger/parishledger/internal/dto"
)

// MockTransactionRepository is a mock type for the TransactionRepository interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListTransactionsByChurchID(ctx context.Context, churchID string, limit int, pageToken string) ([]domain.Transaction, string, error) {
	args := m.Called(ctx, churchID, limit, pageToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.String(1), args.Error(2)
}

func (m *MockTransactionRepository) ListAllTransactionsByChurchID(ctx context.Context, churchID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, churchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListRecentTransactions(ctx context.Context, churchID string, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, churchID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, churchID, transactionID string) error {
	args := m.Called(ctx, churchID, transactionID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo    *MockTransactionRepository
	mockAuthorizer *MockChurchAuthorizer
	service        portssvc.TransactionSvcFacade

	userID   string
	churchID string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAuthorizer = new(MockChurchAuthorizer)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockAuthorizer)

	suite.userID = uuid.NewString()
	suite.churchID = uuid.NewString()
	suite.mockAuthorizer.On("AuthorizeUserAccess", mock.Anything, suite.userID, suite.churchID).Return(nil)
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	desc := "March electricity bill"
	req := dto.CreateTransactionRequest{
		Kind:        domain.KindExpense,
		Category:    "Utilities",
		Amount:      decimal.RequireFromString("125.50"),
		Date:        "2025-03-14",
		Description: &desc,
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, suite.churchID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(suite.churchID, txn.ChurchID)
	suite.Equal(domain.KindExpense, txn.Kind)
	suite.True(txn.Amount.Equal(req.Amount))
	suite.Equal(time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC), txn.Date)
	suite.Equal(suite.userID, txn.CreatedBy)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InvalidKind() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Kind:     domain.CategoryKind("transfer"),
		Category: "Misc",
		Amount:   decimal.NewFromInt(10),
		Date:     "2025-03-14",
	}

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, suite.churchID, req)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NegativeAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Kind:     domain.KindIncome,
		Category: "Offering",
		Amount:   decimal.NewFromInt(-10),
		Date:     "2025-03-14",
	}

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, suite.churchID, req)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_BlankCategory() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Kind:     domain.KindIncome,
		Category: "   ",
		Amount:   decimal.NewFromInt(10),
		Date:     "2025-03-14",
	}

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, suite.churchID, req)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_UnfilteredPages() {
	ctx := context.Background()
	params := dto.ListTransactionsParams{Limit: 20, PageToken: "sometoken"}
	page := []domain.Transaction{{TransactionID: uuid.NewString(), ChurchID: suite.churchID}}

	suite.mockTxnRepo.On("ListTransactionsByChurchID", ctx, suite.churchID, 20, "sometoken").Return(page, "nexttoken", nil).Once()

	txns, next, err := suite.service.ListTransactions(ctx, suite.userID, suite.churchID, params)

	suite.Require().NoError(err)
	suite.Equal(page, txns)
	suite.Equal("nexttoken", next)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListAllTransactionsByChurchID", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_KindFilter() {
	ctx := context.Background()
	params := dto.ListTransactionsParams{Limit: 20, Kind: "income"}
	all := []domain.Transaction{
		{TransactionID: uuid.NewString(), Kind: domain.KindIncome, Category: "Offering"},
		{TransactionID: uuid.NewString(), Kind: domain.KindExpense, Category: "Rent"},
		{TransactionID: uuid.NewString(), Kind: domain.KindIncome, Category: "Donation"},
	}

	suite.mockTxnRepo.On("ListAllTransactionsByChurchID", ctx, suite.churchID).Return(all, nil).Once()

	txns, next, err := suite.service.ListTransactions(ctx, suite.userID, suite.churchID, params)

	suite.Require().NoError(err)
	suite.Len(txns, 2)
	for _, t := range txns {
		suite.Equal(domain.KindIncome, t.Kind)
	}
	// Filtered listings scan the full set, so there is no next page.
	suite.Empty(next)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_SearchFilter() {
	ctx := context.Background()
	params := dto.ListTransactionsParams{Limit: 20, Search: "electric"}
	desc := "Electricity bill"
	all := []domain.Transaction{
		{TransactionID: uuid.NewString(), Kind: domain.KindExpense, Category: "Utilities", Description: &desc},
		{TransactionID: uuid.NewString(), Kind: domain.KindExpense, Category: "Rent"},
	}

	suite.mockTxnRepo.On("ListAllTransactionsByChurchID", ctx, suite.churchID).Return(all, nil).Once()

	txns, _, err := suite.service.ListTransactions(ctx, suite.userID, suite.churchID, params)

	suite.Require().NoError(err)
	suite.Require().Len(txns, 1)
	suite.Equal("Utilities", txns[0].Category)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Unauthorized() {
	ctx := context.Background()
	otherChurchID := uuid.NewString()
	suite.mockAuthorizer.On("AuthorizeUserAccess", mock.Anything, suite.userID, otherChurchID).Return(apperrors.ErrForbidden)

	err := suite.service.DeleteTransaction(ctx, suite.userID, otherChurchID, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Suite ---

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
