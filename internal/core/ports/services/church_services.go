package services

import (
	"context"

	"github.com/parishledger/parishledger/internal/core/domain"
	"github.com/parishledger/parishledger/internal/dto"
)

// ChurchAuthorizerSvc verifies that a user may act inside a church.
// Every tenant-scoped service consults this before touching data.
type ChurchAuthorizerSvc interface {
	// AuthorizeUserAccess returns nil when the user belongs to the church.
	// It returns apperrors.ErrTenantLink for users with no church at all and
	// apperrors.ErrForbidden for users of a different church.
	AuthorizeUserAccess(ctx context.Context, userID, churchID string) error
}

// ChurchReaderSvc defines read operations for churches and branches.
type ChurchReaderSvc interface {
	// GetChurchByID retrieves a church the user belongs to.
	GetChurchByID(ctx context.Context, userID, churchID string) (*domain.Church, error)

	// ListBranches retrieves all branches of the church.
	ListBranches(ctx context.Context, userID, churchID string) ([]domain.Branch, error)
}

// ChurchWriterSvc defines write operations for churches and branches.
type ChurchWriterSvc interface {
	// RegisterChurch creates a church with its first admin user, the main
	// branch, and the default category set.
	RegisterChurch(ctx context.Context, req dto.RegisterChurchRequest) (*domain.Church, *domain.User, error)

	// CreateBranch adds a branch to the church.
	CreateBranch(ctx context.Context, userID, churchID string, req dto.CreateBranchRequest) (*domain.Branch, error)

	// DeleteBranch removes a branch from the church.
	DeleteBranch(ctx context.Context, userID, churchID, branchID string) error
}

// ChurchBootstrapSvc prepares a tenant for use at login time.
type ChurchBootstrapSvc interface {
	// ResolveTenant loads the user's church, creates the main branch when the
	// church has none, and seeds default categories when it has none. Users
	// without a church get apperrors.ErrTenantLink.
	ResolveTenant(ctx context.Context, user *domain.User) (*domain.Church, *domain.Branch, error)
}

// ChurchSvcFacade combines all church-related service interfaces.
type ChurchSvcFacade interface {
	ChurchAuthorizerSvc
	ChurchReaderSvc
	ChurchWriterSvc
	ChurchBootstrapSvc
}
