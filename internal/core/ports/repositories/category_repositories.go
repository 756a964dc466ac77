package repositories

import (
	"context"

	"github.com/parishledger/parishledger/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	// SaveCategory persists a new category. Returns apperrors.ErrDuplicate when
	// the (church, name, kind) combination already exists.
	SaveCategory(ctx context.Context, category domain.Category) error

	// ListCategoriesByChurchID retrieves all categories of a church, ordered by
	// name. An empty tenant yields an empty slice, not an error.
	ListCategoriesByChurchID(ctx context.Context, churchID string) ([]domain.Category, error)

	// SeedCategories inserts the given categories, silently skipping any that
	// already exist. Concurrent seeding of the same church is therefore safe.
	SeedCategories(ctx context.Context, categories []domain.Category) error

	// DeleteCategory removes a category. Returns apperrors.ErrNotFound when no
	// row matches the (churchID, categoryID) pair.
	DeleteCategory(ctx context.Context, churchID, categoryID string) error
}
