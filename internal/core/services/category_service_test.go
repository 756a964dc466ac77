package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/parishledger/parishledger/internal/core/domain"
	portssvc "github.com/parishledger/parishledger/internal/core/ports/services"
	"github.com/parishledger/parishledger/internal/core/services"
	"github.com/parishledger/parishledger/internal/dto"
)

// --- Test Suite Setup ---

type CategoryServiceTestSuite struct {
	suite.Suite
	mockCategoryRepo *MockCategoryRepository
	mockAuthorizer   *MockChurchAuthorizer
	service          portssvc.CategorySvcFacade

	userID   string
	churchID string
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockAuthorizer = new(MockChurchAuthorizer)
	suite.service = services.NewCategoryService(suite.mockCategoryRepo, suite.mockAuthorizer)

	suite.userID = uuid.NewString()
	suite.churchID = uuid.NewString()
	suite.mockAuthorizer.On("AuthorizeUserAccess", mock.Anything, suite.userID, suite.churchID).Return(nil)
}

// --- Test Cases ---

func (suite *CategoryServiceTestSuite) TestListCategories_KindFilter() {
	ctx := context.Background()
	all := []domain.Category{
		{CategoryID: uuid.NewString(), Name: "Tithe", Kind: domain.KindIncome},
		{CategoryID: uuid.NewString(), Name: "Rent", Kind: domain.KindExpense},
		{CategoryID: uuid.NewString(), Name: "Offering", Kind: domain.KindIncome},
	}

	suite.mockCategoryRepo.On("ListCategoriesByChurchID", ctx, suite.churchID).Return(all, nil).Twice()

	unfiltered, err := suite.service.ListCategories(ctx, suite.userID, suite.churchID, nil)
	suite.Require().NoError(err)
	suite.Len(unfiltered, 3)

	kind := domain.KindIncome
	income, err := suite.service.ListCategories(ctx, suite.userID, suite.churchID, &kind)
	suite.Require().NoError(err)
	suite.Require().Len(income, 2)
	for _, c := range income {
		suite.Equal(domain.KindIncome, c.Kind)
	}
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	req := dto.CreateCategoryRequest{Name: "Missions", Kind: domain.KindExpense}

	suite.mockCategoryRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.Category")).Return(nil).Once()

	category, err := suite.service.CreateCategory(ctx, suite.userID, suite.churchID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(category)
	suite.Equal(req.Name, category.Name)
	suite.Equal(req.Kind, category.Kind)
	suite.Equal(suite.churchID, category.ChurchID)
	suite.False(category.IsDefault)
	suite.Equal(suite.userID, category.CreatedBy)
}

func (suite *CategoryServiceTestSuite) TestEnsureDefaultCategories_SeedsWhenEmpty() {
	ctx := context.Background()
	actorID := uuid.NewString()

	var seeded []domain.Category
	suite.mockCategoryRepo.On("ListCategoriesByChurchID", ctx, suite.churchID).Return([]domain.Category{}, nil).Once()
	suite.mockCategoryRepo.On("SeedCategories", ctx, mock.Anything).Run(func(args mock.Arguments) {
		seeded = args.Get(1).([]domain.Category)
	}).Return(nil).Once()

	err := suite.service.EnsureDefaultCategories(ctx, suite.churchID, actorID)

	suite.Require().NoError(err)
	suite.Require().Len(seeded, len(domain.DefaultCategorySeeds))
	for i, c := range seeded {
		suite.Equal(domain.DefaultCategorySeeds[i].Name, c.Name)
		suite.Equal(domain.DefaultCategorySeeds[i].Kind, c.Kind)
		suite.True(c.IsDefault)
		suite.Equal(suite.churchID, c.ChurchID)
		suite.Equal(actorID, c.CreatedBy)
	}
}

func (suite *CategoryServiceTestSuite) TestEnsureDefaultCategories_SkipsWhenPresent() {
	ctx := context.Background()
	existing := []domain.Category{{CategoryID: uuid.NewString(), Name: "Tithe", Kind: domain.KindIncome}}

	suite.mockCategoryRepo.On("ListCategoriesByChurchID", ctx, suite.churchID).Return(existing, nil).Once()

	err := suite.service.EnsureDefaultCategories(ctx, suite.churchID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "SeedCategories", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_Success() {
	ctx := context.Background()
	categoryID := uuid.NewString()

	suite.mockCategoryRepo.On("DeleteCategory", ctx, suite.churchID, categoryID).Return(nil).Once()

	err := suite.service.DeleteCategory(ctx, suite.userID, suite.churchID, categoryID)

	suite.Require().NoError(err)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
