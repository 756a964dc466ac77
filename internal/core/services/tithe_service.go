package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/parishledger/parishledger/internal/apperrors"
	"github.com/parishledger/parishledger/internal/core/domain"
	portsrepo "github.com/parishledger/parishledger/internal/core/ports/repositories"
	portssvc "github.com/parishledger/parishledger/internal/core/ports/services"
	"github.com/parishledger/parishledger/internal/core/reporting"
	"github.com/parishledger/parishledger/internal/dto"
)

type titheService struct {
	BaseService
	titheRepo  portsrepo.TitheRepository
	memberRepo portsrepo.MemberRepository
}

// NewTitheService creates a new instance of titheService.
func NewTitheService(titheRepo portsrepo.TitheRepository, memberRepo portsrepo.MemberRepository, authorizer portssvc.ChurchAuthorizerSvc) portssvc.TitheSvcFacade {
	return &titheService{
		BaseService: BaseService{ChurchAuthorizer: authorizer},
		titheRepo:   titheRepo,
		memberRepo:  memberRepo,
	}
}

// Ensure titheService implements portssvc.TitheSvcFacade
var _ portssvc.TitheSvcFacade = (*titheService)(nil)

func (s *titheService) ListTithes(ctx context.Context, userID, churchID, search string) ([]domain.TitheRecord, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID); err != nil {
		return nil, err
	}

	tithes, err := s.titheRepo.ListTithesByChurchID(ctx, churchID)
	if err != nil {
		return nil, err
	}

	if search == "" {
		return tithes, nil
	}
	return reporting.FilterBySearch(tithes, search, func(t domain.TitheRecord) []string {
		return []string{t.DisplayName()}
	}), nil
}

// CreateTithe records a tithe. An anonymous record never stores a member
// identity, whatever the request carried. A named record with a member ID
// copies the roster name so the record survives the member's deletion.
func (s *titheService) CreateTithe(ctx context.Context, userID, churchID string, req dto.CreateTitheRequest) (*domain.TitheRecord, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID); err != nil {
		return nil, err
	}

	if req.Amount.IsNegative() {
		return nil, apperrors.NewValidationFailedError("amount must not be negative")
	}

	memberID := req.MemberID
	memberName := req.MemberName
	if req.IsAnonymous {
		memberID = nil
		memberName = nil
	} else if memberID != nil {
		name, err := s.rosterName(ctx, churchID, *memberID)
		if err != nil {
			return nil, err
		}
		memberName = &name
	}

	now := time.Now()
	tithe := domain.TitheRecord{
		TitheID:     uuid.NewString(),
		ChurchID:    churchID,
		BranchID:    req.BranchID,
		MemberID:    memberID,
		MemberName:  memberName,
		Amount:      req.Amount,
		Date:        req.ParsedDate(),
		IsAnonymous: req.IsAnonymous,
		AuditFields: domain.NewAuditFields(now, userID),
	}
	if err := s.titheRepo.SaveTithe(ctx, tithe); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Tithe recorded", "tithe_id", tithe.TitheID, "church_id", churchID, "anonymous", tithe.IsAnonymous)
	return &tithe, nil
}

func (s *titheService) DeleteTithe(ctx context.Context, userID, churchID, titheID string) error {
	if err := s.AuthorizeUser(ctx, userID, churchID); err != nil {
		return err
	}
	if err := s.titheRepo.DeleteTithe(ctx, churchID, titheID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Tithe deleted", "tithe_id", titheID, "church_id", churchID)
	return nil
}

func (s *titheService) rosterName(ctx context.Context, churchID, memberID string) (string, error) {
	members, err := s.memberRepo.ListMembersByChurchID(ctx, churchID)
	if err != nil {
		return "", err
	}
	for _, m := range members {
		if m.MemberID == memberID {
			return m.Name, nil
		}
	}
	return "", apperrors.NewValidationFailedError("member " + memberID + " does not exist in this church")
}
