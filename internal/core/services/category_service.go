package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/parishledger/parishledger/internal/core/domain"
	portsrepo "github.com/parishledger/parishledger/internal/core/ports/repositories"
	portssvc "github.com/parishledger/parishledger/internal/core/ports/services"
	"github.com/parishledger/parishledger/internal/dto"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService creates a new instance of categoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository, authorizer portssvc.ChurchAuthorizerSvc) portssvc.CategorySvcFacade {
	return &categoryService{
		BaseService:  BaseService{ChurchAuthorizer: authorizer},
		categoryRepo: categoryRepo,
	}
}

// Ensure categoryService implements portssvc.CategorySvcFacade
var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) ListCategories(ctx context.Context, userID, churchID string, kind *domain.CategoryKind) ([]domain.Category, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID); err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.ListCategoriesByChurchID(ctx, churchID)
	if err != nil {
		return nil, err
	}

	if kind == nil {
		return categories, nil
	}
	filtered := make([]domain.Category, 0, len(categories))
	for _, c := range categories {
		if c.Kind == *kind {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, userID, churchID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID); err != nil {
		return nil, err
	}

	now := time.Now()
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		ChurchID:    churchID,
		Name:        req.Name,
		Kind:        req.Kind,
		AuditFields: domain.NewAuditFields(now, userID),
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Category created", "category_id", category.CategoryID, "church_id", churchID)
	return &category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, userID, churchID, categoryID string) error {
	if err := s.AuthorizeUser(ctx, userID, churchID); err != nil {
		return err
	}
	if err := s.categoryRepo.DeleteCategory(ctx, churchID, categoryID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Category deleted", "category_id", categoryID, "church_id", churchID)
	return nil
}

// EnsureDefaultCategories seeds the default set for a church whose category
// list is empty. Called during tenant bootstrap, before any membership check
// can exist, so it deliberately skips authorization.
func (s *categoryService) EnsureDefaultCategories(ctx context.Context, churchID, actorID string) error {
	existing, err := s.categoryRepo.ListCategoriesByChurchID(ctx, churchID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now()
	categories := make([]domain.Category, len(domain.DefaultCategorySeeds))
	for i, seed := range domain.DefaultCategorySeeds {
		categories[i] = domain.Category{
			CategoryID:  uuid.NewString(),
			ChurchID:    churchID,
			Name:        seed.Name,
			Kind:        seed.Kind,
			IsDefault:   true,
			AuditFields: domain.NewAuditFields(now, actorID),
		}
	}
	return s.categoryRepo.SeedCategories(ctx, categories)
}
