package services_test

import (
	"context"
	"testing"

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

// MockChurchAuthorizer is a mock type for the ChurchAuthorizerSvc interface
type MockChurchAuthorizer struct {
	mock.Mock
}

func (m *MockChurchAuthorizer) AuthorizeUserAccess(ctx context.Context, userID, churchID string) error {
	args := m.Called(ctx, userID, churchID)
	return args.Error(0)
}

// MockTitheRepository is a mock type for the TitheRepository interface
type MockTitheRepository struct {
	mock.Mock
}

func (m *MockTitheRepository) SaveTithe(ctx context.Context, tithe domain.TitheRecord) error {
	args := m.Called(ctx, tithe)
	return args.Error(0)
}

func (m *MockTitheRepository) ListTithesByChurchID(ctx context.Context, churchID string) ([]domain.TitheRecord, error) {
	args := m.Called(ctx, churchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TitheRecord), args.Error(1)
}

func (m *MockTitheRepository) ListRecentTithes(ctx context.Context, churchID string, limit int) ([]domain.TitheRecord, error) {
	args := m.Called(ctx, churchID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TitheRecord), args.Error(1)
}

func (m *MockTitheRepository) DeleteTithe(ctx context.Context, churchID, titheID string) error {
	args := m.Called(ctx, churchID, titheID)
	return args.Error(0)
}

// MockMemberRepository is a mock type for the MemberRepository interface
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) ListMembersByChurchID(ctx context.Context, churchID string) ([]domain.Member, error) {
	args := m.Called(ctx, churchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberRepository) CountMembersByChurchID(ctx context.Context, churchID string) (int, error) {
	args := m.Called(ctx, churchID)
	return args.Int(0), args.Error(1)
}

func (m *MockMemberRepository) DeleteMember(ctx context.Context, churchID, memberID string) error {
	args := m.Called(ctx, churchID, memberID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type TitheServiceTestSuite struct {
	suite.Suite
	mockTitheRepo  *MockTitheRepository
	mockMemberRepo *MockMemberRepository
	mockAuthorizer *MockChurchAuthorizer
	service        portssvc.TitheSvcFacade

	userID   string
	churchID string
}

func (suite *TitheServiceTestSuite) SetupTest() {
	suite.mockTitheRepo = new(MockTitheRepository)
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.mockAuthorizer = new(MockChurchAuthorizer)
	suite.service = services.NewTitheService(suite.mockTitheRepo, suite.mockMemberRepo, suite.mockAuthorizer)

	suite.userID = uuid.NewString()
	suite.churchID = uuid.NewString()
	suite.mockAuthorizer.On("AuthorizeUserAccess", mock.Anything, suite.userID, suite.churchID).Return(nil)
}

// --- Test Cases ---

func (suite *TitheServiceTestSuite) TestCreateTithe_AnonymousDropsIdentity() {
	ctx := context.Background()
	memberID := uuid.NewString()
	memberName := "Jordan Okafor"
	req := dto.CreateTitheRequest{
		Amount:      decimal.NewFromInt(5000),
		Date:        "2025-03-02",
		MemberID:    &memberID,
		MemberName:  &memberName,
		IsAnonymous: true,
	}

	var saved domain.TitheRecord
	suite.mockTitheRepo.On("SaveTithe", ctx, mock.AnythingOfType("domain.TitheRecord")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.TitheRecord)
	}).Return(nil).Once()

	tithe, err := suite.service.CreateTithe(ctx, suite.userID, suite.churchID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(tithe)
	suite.True(tithe.IsAnonymous)
	suite.Nil(tithe.MemberID)
	suite.Nil(tithe.MemberName)
	suite.Nil(saved.MemberID)
	suite.Nil(saved.MemberName)
	suite.Equal("Anonymous", tithe.DisplayName())
	// The member lookup must not run for anonymous records.
	suite.mockMemberRepo.AssertNotCalled(suite.T(), "ListMembersByChurchID", mock.Anything, mock.Anything)
}

func (suite *TitheServiceTestSuite) TestCreateTithe_CopiesRosterName() {
	ctx := context.Background()
	memberID := uuid.NewString()
	staleName := "Old Name"
	req := dto.CreateTitheRequest{
		Amount:     decimal.NewFromInt(1200),
		Date:       "2025-03-09",
		MemberID:   &memberID,
		MemberName: &staleName,
	}
	roster := []domain.Member{
		{MemberID: uuid.NewString(), ChurchID: suite.churchID, Name: "Ada Eze"},
		{MemberID: memberID, ChurchID: suite.churchID, Name: "Chinedu Obi"},
	}

	suite.mockMemberRepo.On("ListMembersByChurchID", ctx, suite.churchID).Return(roster, nil).Once()
	suite.mockTitheRepo.On("SaveTithe", ctx, mock.AnythingOfType("domain.TitheRecord")).Return(nil).Once()

	tithe, err := suite.service.CreateTithe(ctx, suite.userID, suite.churchID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(tithe.MemberName)
	suite.Equal("Chinedu Obi", *tithe.MemberName)
	suite.Equal("Chinedu Obi", tithe.DisplayName())
}

func (suite *TitheServiceTestSuite) TestCreateTithe_UnknownMember() {
	ctx := context.Background()
	memberID := uuid.NewString()
	req := dto.CreateTitheRequest{
		Amount:   decimal.NewFromInt(1200),
		Date:     "2025-03-09",
		MemberID: &memberID,
	}

	suite.mockMemberRepo.On("ListMembersByChurchID", ctx, suite.churchID).Return([]domain.Member{}, nil).Once()

	tithe, err := suite.service.CreateTithe(ctx, suite.userID, suite.churchID, req)

	suite.Nil(tithe)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTitheRepo.AssertNotCalled(suite.T(), "SaveTithe", mock.Anything, mock.Anything)
}

func (suite *TitheServiceTestSuite) TestCreateTithe_NegativeAmount() {
	ctx := context.Background()
	req := dto.CreateTitheRequest{
		Amount:      decimal.NewFromInt(-50),
		Date:        "2025-03-09",
		IsAnonymous: true,
	}

	tithe, err := suite.service.CreateTithe(ctx, suite.userID, suite.churchID, req)

	suite.Nil(tithe)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TitheServiceTestSuite) TestCreateTithe_NameOnlyGiver() {
	ctx := context.Background()
	name := "Visiting Guest"
	req := dto.CreateTitheRequest{
		Amount:     decimal.NewFromInt(300),
		Date:       "2025-03-16",
		MemberName: &name,
	}

	suite.mockTitheRepo.On("SaveTithe", ctx, mock.AnythingOfType("domain.TitheRecord")).Return(nil).Once()

	tithe, err := suite.service.CreateTithe(ctx, suite.userID, suite.churchID, req)

	suite.Require().NoError(err)
	suite.Nil(tithe.MemberID)
	suite.Require().NotNil(tithe.MemberName)
	suite.Equal(name, *tithe.MemberName)
	// No member ID, so the roster is never consulted.
	suite.mockMemberRepo.AssertNotCalled(suite.T(), "ListMembersByChurchID", mock.Anything, mock.Anything)
}

func (suite *TitheServiceTestSuite) TestListTithes_SearchByDisplayName() {
	ctx := context.Background()
	name := "Chinedu Obi"
	records := []domain.TitheRecord{
		{TitheID: uuid.NewString(), ChurchID: suite.churchID, MemberName: &name, Amount: decimal.NewFromInt(100)},
		{TitheID: uuid.NewString(), ChurchID: suite.churchID, IsAnonymous: true, Amount: decimal.NewFromInt(200)},
	}

	suite.mockTitheRepo.On("ListTithesByChurchID", ctx, suite.churchID).Return(records, nil).Twice()

	matched, err := suite.service.ListTithes(ctx, suite.userID, suite.churchID, "chinedu")
	suite.Require().NoError(err)
	suite.Require().Len(matched, 1)
	suite.Equal(records[0].TitheID, matched[0].TitheID)

	anonymous, err := suite.service.ListTithes(ctx, suite.userID, suite.churchID, "anonymous")
	suite.Require().NoError(err)
	suite.Require().Len(anonymous, 1)
	suite.Equal(records[1].TitheID, anonymous[0].TitheID)
}

func (suite *TitheServiceTestSuite) TestDeleteTithe_Unauthorized() {
	ctx := context.Background()
	otherChurchID := uuid.NewString()
	suite.mockAuthorizer.On("AuthorizeUserAccess", mock.Anything, suite.userID, otherChurchID).Return(apperrors.ErrForbidden)

	err := suite.service.DeleteTithe(ctx, suite.userID, otherChurchID, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTitheRepo.AssertNotCalled(suite.T(), "DeleteTithe", mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Suite ---

func TestTitheServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TitheServiceTestSuite))
}
