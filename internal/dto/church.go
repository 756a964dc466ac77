package dto

import (
	"time"

	"github.com/parishledger/parishledger/internal/core/domain"
)

// --- Church DTOs ---

// ChurchResponse defines data returned for a church.
type ChurchResponse struct {
	ChurchID   string    `json:"churchID"`
	Name       string    `json:"name"`
	ChurchCode string    `json:"churchCode"`
	Plan       string    `json:"plan"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToChurchResponse converts domain.Church to DTO.
func ToChurchResponse(c *domain.Church) ChurchResponse {
	return ChurchResponse{
		ChurchID:   c.ChurchID,
		Name:       c.Name,
		ChurchCode: c.ChurchCode,
		Plan:       c.Plan,
		CreatedAt:  c.CreatedAt,
	}
}

// --- Branch DTOs ---

// CreateBranchRequest defines data for creating a new branch.
type CreateBranchRequest struct {
	Name    string  `json:"name" binding:"required,min=2,max=120"`
	Code    string  `json:"code" binding:"required,min=2,max=20"`
	Address *string `json:"address"`
}

// BranchResponse defines data returned for a branch.
type BranchResponse struct {
	BranchID  string    `json:"branchID"`
	ChurchID  string    `json:"churchID"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Address   *string   `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToBranchResponse converts domain.Branch to DTO.
func ToBranchResponse(b *domain.Branch) BranchResponse {
	return BranchResponse{
		BranchID:  b.BranchID,
		ChurchID:  b.ChurchID,
		Name:      b.Name,
		Code:      b.Code,
		Address:   b.Address,
		CreatedAt: b.CreatedAt,
	}
}

// ListBranchesResponse wraps a list of branches.
type ListBranchesResponse struct {
	Branches []BranchResponse `json:"branches"`
}

// ToListBranchesResponse converts a slice of domain.Branch to DTO.
func ToListBranchesResponse(bs []domain.Branch) ListBranchesResponse {
	list := make([]BranchResponse, len(bs))
	for i, b := range bs {
		list[i] = ToBranchResponse(&b)
	}
	return ListBranchesResponse{Branches: list}
}
