package services

import (
	"context"

	"github.com/parishledger/parishledger/internal/core/domain"
	"github.com/parishledger/parishledger/internal/dto"
)

// CategorySvcFacade defines operations on transaction categories.
type CategorySvcFacade interface {
	// ListCategories retrieves the church's categories, optionally filtered by kind.
	ListCategories(ctx context.Context, userID, churchID string, kind *domain.CategoryKind) ([]domain.Category, error)

	// CreateCategory adds a custom category.
	CreateCategory(ctx context.Context, userID, churchID string, req dto.CreateCategoryRequest) (*domain.Category, error)

	// DeleteCategory removes a category. Transactions recorded under it keep
	// their category name.
	DeleteCategory(ctx context.Context, userID, churchID, categoryID string) error

	// EnsureDefaultCategories seeds the default category set when the church
	// has no categories yet. Idempotent; used at tenant bootstrap, so it does
	// not check membership.
	EnsureDefaultCategories(ctx context.Context, churchID, actorID string) error
}
