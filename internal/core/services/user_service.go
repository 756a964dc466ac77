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
	"github.com/parishledger/parishledger/internal/utils"
)

const googleAuthProvider = "google"

type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

// Ensure userService implements portssvc.UserSvcFacade
var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, email, password string, role domain.UserRole, churchID *string) (*domain.User, error) {
	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	newUserID := uuid.NewString()

	user := domain.User{
		UserID:       newUserID,
		Email:        email,
		Role:         role,
		ChurchID:     churchID,
		PasswordHash: passwordHash,
		AuditFields:  domain.NewAuditFields(now, newUserID),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "User created", "user_id", newUserID)
	return &user, nil
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	// OAuth-only users have no password to check against.
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

// FindOrCreateOAuthUser resolves a Google identity to a local user. An
// existing account with the same email is reused rather than duplicated.
func (s *userService) FindOrCreateOAuthUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error) {
	if info == nil || info.Email == "" {
		return nil, apperrors.NewValidationFailedError("google user info is missing an email")
	}

	user, err := s.userRepo.FindUserByProviderDetails(ctx, googleAuthProvider, info.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	user, err = s.userRepo.FindUserByEmail(ctx, info.Email)
	if err == nil {
		s.LogInfo(ctx, "OAuth sign-in matched existing account by email", "user_id", user.UserID)
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	newUserID := uuid.NewString()
	provider := googleAuthProvider
	providerUserID := info.ID

	newUser := domain.User{
		UserID:         newUserID,
		Email:          info.Email,
		Role:           domain.RoleAdmin,
		AuthProvider:   &provider,
		ProviderUserID: &providerUserID,
		AuditFields:    domain.NewAuditFields(now, newUserID),
	}

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "User created from Google sign-in", "user_id", newUserID)
	return &newUser, nil
}

func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.ClearRefreshToken(ctx, userID)
}
