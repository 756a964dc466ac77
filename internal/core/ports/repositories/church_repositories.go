package repositories

import (
	"context"

	"github.com/parishledger/parishledger/internal/core/domain"
)

// ChurchRepository defines persistence operations for churches (tenants).
type ChurchRepository interface {
	// SaveChurch persists a new church.
	SaveChurch(ctx context.Context, church domain.Church) error

	// FindChurchByID retrieves a church by ID.
	FindChurchByID(ctx context.Context, churchID string) (*domain.Church, error)
}

// BranchRepository defines persistence operations for branches.
type BranchRepository interface {
	// SaveBranch persists a new branch.
	SaveBranch(ctx context.Context, branch domain.Branch) error

	// ListBranchesByChurchID retrieves all branches of a church, ordered by name.
	ListBranchesByChurchID(ctx context.Context, churchID string) ([]domain.Branch, error)

	// DeleteBranch removes a branch. Returns apperrors.ErrNotFound when no row
	// matches the (churchID, branchID) pair.
	DeleteBranch(ctx context.Context, churchID, branchID string) error
}
