package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/parishledger/parishledger/internal/core/domain"
)

// --- Transaction DTOs ---

// CreateTransactionRequest defines data for recording an income or expense entry.
// Date is a calendar day in YYYY-MM-DD form.
type CreateTransactionRequest struct {
	Kind        domain.CategoryKind `json:"kind" binding:"required,oneof=income expense"`
	Category    string              `json:"category" binding:"required,min=1,max=80"`
	Amount      decimal.Decimal     `json:"amount" binding:"required"`
	Date        string              `json:"date" binding:"required,datetime=2006-01-02"`
	Description *string             `json:"description"`
	BranchID    *string             `json:"branchID"`
}

// ParsedDate returns the request date as a time.Time. Binding has already
// validated the layout.
func (r CreateTransactionRequest) ParsedDate() time.Time {
	d, _ := time.Parse("2006-01-02", r.Date)
	return d
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	PageToken string `form:"pageToken"`
	Kind      string `form:"kind" binding:"omitempty,oneof=income expense"`
	Search    string `form:"search"`
}

// TransactionResponse defines data returned for a transaction.
type TransactionResponse struct {
	TransactionID string              `json:"transactionID"`
	ChurchID      string              `json:"churchID"`
	BranchID      *string             `json:"branchID,omitempty"`
	Kind          domain.CategoryKind `json:"kind"`
	Category      string              `json:"category"`
	Amount        decimal.Decimal     `json:"amount"`
	Date          string              `json:"date"`
	Month         string              `json:"month"`
	Description   *string             `json:"description,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	CreatedBy     string              `json:"createdBy"`
}

// ToTransactionResponse converts domain.Transaction to DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		ChurchID:      t.ChurchID,
		BranchID:      t.BranchID,
		Kind:          t.Kind,
		Category:      t.Category,
		Amount:        t.Amount,
		Date:          t.Date.Format("2006-01-02"),
		Month:         t.Month().String(),
		Description:   t.Description,
		CreatedAt:     t.CreatedAt,
		CreatedBy:     t.CreatedBy,
	}
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions  []TransactionResponse `json:"transactions"`
	NextPageToken string                `json:"nextPageToken,omitempty"`
}

// ToListTransactionsResponse converts a slice of domain.Transaction to DTO.
func ToListTransactionsResponse(ts []domain.Transaction, nextPageToken string) ListTransactionsResponse {
	list := make([]TransactionResponse, len(ts))
	for i, t := range ts {
		list[i] = ToTransactionResponse(&t)
	}
	return ListTransactionsResponse{Transactions: list, NextPageToken: nextPageToken}
}
