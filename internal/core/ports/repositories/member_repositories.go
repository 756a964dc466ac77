package repositories

import (
	"context"

	"github.com/parishledger/parishledger/internal/core/domain"
)

// MemberRepository defines persistence operations for members.
type MemberRepository interface {
	// SaveMember persists a new member.
	SaveMember(ctx context.Context, member domain.Member) error

	// ListMembersByChurchID retrieves all members of a church, ordered by name.
	ListMembersByChurchID(ctx context.Context, churchID string) ([]domain.Member, error)

	// CountMembersByChurchID returns the member count for a church.
	CountMembersByChurchID(ctx context.Context, churchID string) (int, error)

	// DeleteMember removes a member. Returns apperrors.ErrNotFound when no row
	// matches the (churchID, memberID) pair.
	DeleteMember(ctx context.Context, churchID, memberID string) error
}
