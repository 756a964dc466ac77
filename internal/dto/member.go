package dto

import (
	"time"

	"github.com/parishledger/parishledger/internal/core/domain"
)

// --- Member DTOs ---

// CreateMemberRequest defines data for enrolling a new member.
type CreateMemberRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=120"`
	BranchID *string `json:"branchID"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

// ListMembersParams defines query parameters for listing members.
type ListMembersParams struct {
	Search string `form:"search"`
}

// MemberResponse defines data returned for a member.
type MemberResponse struct {
	MemberID  string    `json:"memberID"`
	ChurchID  string    `json:"churchID"`
	BranchID  *string   `json:"branchID,omitempty"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToMemberResponse converts domain.Member to DTO.
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID:  m.MemberID,
		ChurchID:  m.ChurchID,
		BranchID:  m.BranchID,
		Name:      m.Name,
		Phone:     m.Phone,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
	}
}

// ListMembersResponse wraps a list of members.
type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

// ToListMembersResponse converts a slice of domain.Member to DTO.
func ToListMembersResponse(ms []domain.Member) ListMembersResponse {
	list := make([]MemberResponse, len(ms))
	for i, m := range ms {
		list[i] = ToMemberResponse(&m)
	}
	return ListMembersResponse{Members: list}
}
