package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/parishledger/parishledger/internal/core/domain"
)

// --- Tithe DTOs ---

// CreateTitheRequest defines data for recording a tithe.
// MemberID and MemberName are ignored when IsAnonymous is true.
type CreateTitheRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	MemberID    *string         `json:"memberID"`
	MemberName  *string         `json:"memberName"`
	IsAnonymous bool            `json:"isAnonymous"`
	BranchID    *string         `json:"branchID"`
}

// ParsedDate returns the request date as a time.Time. Binding has already
// validated the layout.
func (r CreateTitheRequest) ParsedDate() time.Time {
	d, _ := time.Parse("2006-01-02", r.Date)
	return d
}

// ListTithesParams defines query parameters for listing tithes.
type ListTithesParams struct {
	Search string `form:"search"`
}

// TitheResponse defines data returned for a tithe record.
// DisplayName is "Anonymous" for anonymous records.
type TitheResponse struct {
	TitheID     string          `json:"titheID"`
	ChurchID    string          `json:"churchID"`
	BranchID    *string         `json:"branchID,omitempty"`
	MemberID    *string         `json:"memberID,omitempty"`
	DisplayName string          `json:"displayName"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Month       string          `json:"month"`
	IsAnonymous bool            `json:"isAnonymous"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
}

// ToTitheResponse converts domain.TitheRecord to DTO.
func ToTitheResponse(t *domain.TitheRecord) TitheResponse {
	return TitheResponse{
		TitheID:     t.TitheID,
		ChurchID:    t.ChurchID,
		BranchID:    t.BranchID,
		MemberID:    t.MemberID,
		DisplayName: t.DisplayName(),
		Amount:      t.Amount,
		Date:        t.Date.Format("2006-01-02"),
		Month:       t.Month().String(),
		IsAnonymous: t.IsAnonymous,
		CreatedAt:   t.CreatedAt,
		CreatedBy:   t.CreatedBy,
	}
}

// ListTithesResponse wraps a list of tithe records.
type ListTithesResponse struct {
	Tithes []TitheResponse `json:"tithes"`
}

// ToListTithesResponse converts a slice of domain.TitheRecord to DTO.
func ToListTithesResponse(ts []domain.TitheRecord) ListTithesResponse {
	list := make([]TitheResponse, len(ts))
	for i, t := range ts {
		list[i] = ToTitheResponse(&t)
	}
	return ListTithesResponse{Tithes: list}
}
