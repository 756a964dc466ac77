package domain

import (
	"time"

	"github.com/parishledger/parishledger/internal/types"
	"github.com/shopspring/decimal"
)

// TitheRecord represents a tithe or offering given by a member (or
// anonymously). When IsAnonymous is set, MemberID and MemberName are nil;
// the service enforces this regardless of what the form submitted.
type TitheRecord struct {
	TitheID     string          `json:"titheID"`  // Primary Key (UUID)
	ChurchID    string          `json:"churchID"` // FK -> churches.church_id
	BranchID    *string         `json:"branchID"` // FK -> branches.branch_id, nullable
	MemberID    *string         `json:"memberID"` // FK -> members.member_id, nullable
	MemberName  *string         `json:"memberName"`
	Amount      decimal.Decimal `json:"amount"` // Non-negative; precise decimal type
	Date        time.Time       `json:"date"`   // Date-only semantics
	IsAnonymous bool            `json:"isAnonymous"`
	AuditFields
}

// Month returns the calendar month the record's date falls in.
func (t TitheRecord) Month() types.Month {
	return types.MonthOf(t.Date)
}

// DisplayName returns the name shown for the giver in lists.
func (t TitheRecord) DisplayName() string {
	if t.IsAnonymous {
		return "Anonymous"
	}
	if t.MemberName != nil && *t.MemberName != "" {
		return *t.MemberName
	}
	return "Unknown"
}
