package services

import (
	"context"

	"github.com/parishledger/parishledger/internal/core/domain"
	"github.com/parishledger/parishledger/internal/dto"
)

// MemberSvcFacade defines operations on the member roster.
type MemberSvcFacade interface {
	// ListMembers retrieves the church's members, optionally filtered by a
	// case-insensitive search over name, phone and email.
	ListMembers(ctx context.Context, userID, churchID, search string) ([]domain.Member, error)

	// CreateMember enrolls a new member.
	CreateMember(ctx context.Context, userID, churchID string, req dto.CreateMemberRequest) (*domain.Member, error)

	// DeleteMember removes a member from the roster. Existing tithe records
	// keep their copied member name.
	DeleteMember(ctx context.Context, userID, churchID, memberID string) error
}
