package domain

import (
	"time"

	"github.com/parishledger/parishledger/internal/types"
	"github.com/shopspring/decimal"
)

// Transaction represents a single income or expense record.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	ChurchID      string          `json:"churchID"`      // FK -> churches.church_id
	BranchID      *string         `json:"branchID"`      // FK -> branches.branch_id, nullable
	Kind          CategoryKind    `json:"kind"`          // income or expense
	Category      string          `json:"category"`      // Category name as entered, not a FK
	Amount        decimal.Decimal `json:"amount"`        // Non-negative; precise decimal type
	Date          time.Time       `json:"date"`          // Date-only semantics
	Description   *string         `json:"description,omitempty"`
	AuditFields
}

// Month returns the calendar month the transaction's date falls in.
func (t Transaction) Month() types.Month {
	return types.MonthOf(t.Date)
}
