package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/parishledger/parishledger/internal/apperrors"
	"github.com/parishledger/parishledger/internal/core/domain"
	portsrepo "github.com/parishledger/parishledger/internal/core/ports/repositories"
	portssvc "github.com/parishledger/parishledger/internal/core/ports/services"
	"github.com/parishledger/parishledger/internal/dto"
	"github.com/parishledger/parishledger/internal/utils"
)

const defaultChurchPlan = "free"

// churchService owns the tenant lifecycle: registration, membership checks,
// branch management and first-login bootstrap.
type churchService struct {
	BaseService
	churchRepo   portsrepo.ChurchRepository
	branchRepo   portsrepo.BranchRepository
	categoryRepo portsrepo.CategoryRepository
	userRepo     portsrepo.UserRepository
}

// NewChurchService creates a new instance of churchService.
func NewChurchService(
	churchRepo portsrepo.ChurchRepository,
	branchRepo portsrepo.BranchRepository,
	categoryRepo portsrepo.CategoryRepository,
	userRepo portsrepo.UserRepository,
) portssvc.ChurchSvcFacade {
	return &churchService{
		churchRepo:   churchRepo,
		branchRepo:   branchRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
	}
}

// Ensure churchService implements portssvc.ChurchSvcFacade
var _ portssvc.ChurchSvcFacade = (*churchService)(nil)

// AuthorizeUserAccess returns nil only when the user belongs to the church.
func (s *churchService) AuthorizeUserAccess(ctx context.Context, userID, churchID string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrUnauthorized
		}
		return err
	}
	if user.ChurchID == nil {
		return apperrors.ErrTenantLink
	}
	if *user.ChurchID != churchID {
		s.LogInfo(ctx, "User attempted to access another church", "user_id", userID, "church_id", churchID)
		return apperrors.ErrForbidden
	}
	return nil
}

// RegisterChurch creates the church, its first admin user, the main branch and
// the default category set. The admin's user ID is the audit author for all of
// them.
func (s *churchService) RegisterChurch(ctx context.Context, req dto.RegisterChurchRequest) (*domain.Church, *domain.User, error) {
	_, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err == nil {
		return nil, nil, apperrors.NewConflictError("email " + req.Email + " is already registered")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password during registration")
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	churchCode, err := utils.GenerateChurchCode(req.ChurchName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate church code: %w", err)
	}

	now := time.Now()
	adminUserID := uuid.NewString()
	churchID := uuid.NewString()

	church := domain.Church{
		ChurchID:    churchID,
		Name:        req.ChurchName,
		ChurchCode:  churchCode,
		Plan:        defaultChurchPlan,
		AuditFields: domain.NewAuditFields(now, adminUserID),
	}
	if err := s.churchRepo.SaveChurch(ctx, church); err != nil {
		return nil, nil, err
	}

	admin := domain.User{
		UserID:       adminUserID,
		Email:        req.Email,
		Role:         domain.RoleAdmin,
		ChurchID:     &churchID,
		PasswordHash: passwordHash,
		AuditFields:  domain.NewAuditFields(now, adminUserID),
	}
	if err := s.userRepo.SaveUser(ctx, admin); err != nil {
		return nil, nil, err
	}

	if _, err := s.ensureMainBranch(ctx, churchID, adminUserID); err != nil {
		return nil, nil, err
	}
	if err := s.seedDefaultCategories(ctx, churchID, adminUserID); err != nil {
		return nil, nil, err
	}

	s.LogInfo(ctx, "Church registered", "church_id", churchID, "church_code", churchCode)
	return &church, &admin, nil
}

func (s *churchService) GetChurchByID(ctx context.Context, userID, churchID string) (*domain.Church, error) {
	if err := s.AuthorizeUserAccess(ctx, userID, churchID); err != nil {
		return nil, err
	}
	return s.churchRepo.FindChurchByID(ctx, churchID)
}

// ResolveTenant loads the user's church and repairs missing bootstrap state:
// a church with no branches gets the main branch, one with no categories gets
// the default set. Safe to run on every login.
func (s *churchService) ResolveTenant(ctx context.Context, user *domain.User) (*domain.Church, *domain.Branch, error) {
	if user.ChurchID == nil {
		return nil, nil, apperrors.ErrTenantLink
	}

	church, err := s.churchRepo.FindChurchByID(ctx, *user.ChurchID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "User references a church that does not exist", "church_id", *user.ChurchID)
			return nil, nil, apperrors.ErrTenantLink
		}
		return nil, nil, err
	}

	branch, err := s.ensureMainBranch(ctx, church.ChurchID, user.UserID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.seedDefaultCategories(ctx, church.ChurchID, user.UserID); err != nil {
		return nil, nil, err
	}

	return church, branch, nil
}

func (s *churchService) ListBranches(ctx context.Context, userID, churchID string) ([]domain.Branch, error) {
	if err := s.AuthorizeUserAccess(ctx, userID, churchID); err != nil {
		return nil, err
	}
	return s.branchRepo.ListBranchesByChurchID(ctx, churchID)
}

func (s *churchService) CreateBranch(ctx context.Context, userID, churchID string, req dto.CreateBranchRequest) (*domain.Branch, error) {
	if err := s.AuthorizeUserAccess(ctx, userID, churchID); err != nil {
		return nil, err
	}

	now := time.Now()
	branch := domain.Branch{
		BranchID:    uuid.NewString(),
		ChurchID:    churchID,
		Name:        req.Name,
		Code:        req.Code,
		Address:     req.Address,
		AuditFields: domain.NewAuditFields(now, userID),
	}
	if err := s.branchRepo.SaveBranch(ctx, branch); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Branch created", "branch_id", branch.BranchID, "church_id", churchID)
	return &branch, nil
}

func (s *churchService) DeleteBranch(ctx context.Context, userID, churchID, branchID string) error {
	if err := s.AuthorizeUserAccess(ctx, userID, churchID); err != nil {
		return err
	}
	if err := s.branchRepo.DeleteBranch(ctx, churchID, branchID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Branch deleted", "branch_id", branchID, "church_id", churchID)
	return nil
}

// ensureMainBranch returns the church's main branch, creating it only when the
// church has no branches at all.
func (s *churchService) ensureMainBranch(ctx context.Context, churchID, actorID string) (*domain.Branch, error) {
	branches, err := s.branchRepo.ListBranchesByChurchID(ctx, churchID)
	if err != nil {
		return nil, err
	}
	if len(branches) > 0 {
		for i := range branches {
			if branches[i].Code == domain.MainBranchCode {
				return &branches[i], nil
			}
		}
		return &branches[0], nil
	}

	now := time.Now()
	branch := domain.Branch{
		BranchID:    uuid.NewString(),
		ChurchID:    churchID,
		Name:        domain.MainBranchName,
		Code:        domain.MainBranchCode,
		AuditFields: domain.NewAuditFields(now, actorID),
	}
	if err := s.branchRepo.SaveBranch(ctx, branch); err != nil {
		// A concurrent login may have created it between the list and the
		// insert; re-read rather than fail the login.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.ensureMainBranch(ctx, churchID, actorID)
		}
		return nil, err
	}

	s.LogInfo(ctx, "Main branch created", "church_id", churchID)
	return &branch, nil
}

// seedDefaultCategories inserts the default set only when the church has no
// categories. The repository skips rows that already exist, so concurrent
// seeding is harmless.
func (s *churchService) seedDefaultCategories(ctx context.Context, churchID, actorID string) error {
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
	if err := s.categoryRepo.SeedCategories(ctx, categories); err != nil {
		return err
	}

	s.LogInfo(ctx, "Default categories seeded", "church_id", churchID)
	return nil
}
