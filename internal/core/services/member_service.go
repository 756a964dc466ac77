package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/parishledger/parishledger/internal/core/domain"
	portsrepo "github.com/parishledger/parishledger/internal/core/ports/repositories"
	portssvc "github.com/parishledger/parishledger/internal/core/ports/services"
	"github.com/parishledger/parishledger/internal/core/reporting"
	"github.com/parishledger/parishledger/internal/dto"
)

type memberService struct {
	BaseService
	memberRepo portsrepo.MemberRepository
}

// NewMemberService creates a new instance of memberService.
func NewMemberService(memberRepo portsrepo.MemberRepository, authorizer portssvc.ChurchAuthorizerSvc) portssvc.MemberSvcFacade {
	return &memberService{
		BaseService: BaseService{ChurchAuthorizer: authorizer},
		memberRepo:  memberRepo,
	}
}

// Ensure memberService implements portssvc.MemberSvcFacade
var _ portssvc.MemberSvcFacade = (*memberService)(nil)

func (s *memberService) ListMembers(ctx context.Context, userID, churchID, search string) ([]domain.Member, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID); err != nil {
		return nil, err
	}

	members, err := s.memberRepo.ListMembersByChurchID(ctx, churchID)
	if err != nil {
		return nil, err
	}

	if search == "" {
		return members, nil
	}
	return reporting.FilterBySearch(members, search, func(m domain.Member) []string {
		fields := []string{m.Name}
		if m.Phone != nil {
			fields = append(fields, *m.Phone)
		}
		if m.Email != nil {
			fields = append(fields, *m.Email)
		}
		return fields
	}), nil
}

func (s *memberService) CreateMember(ctx context.Context, userID, churchID string, req dto.CreateMemberRequest) (*domain.Member, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID); err != nil {
		return nil, err
	}

	now := time.Now()
	member := domain.Member{
		MemberID:    uuid.NewString(),
		ChurchID:    churchID,
		BranchID:    req.BranchID,
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		AuditFields: domain.NewAuditFields(now, userID),
	}
	if err := s.memberRepo.SaveMember(ctx, member); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Member created", "member_id", member.MemberID, "church_id", churchID)
	return &member, nil
}

func (s *memberService) DeleteMember(ctx context.Context, userID, churchID, memberID string) error {
	if err := s.AuthorizeUser(ctx, userID, churchID); err != nil {
		return err
	}
	if err := s.memberRepo.DeleteMember(ctx, churchID, memberID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Member deleted", "member_id", memberID, "church_id", churchID)
	return nil
}
