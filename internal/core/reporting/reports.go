package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/parishledger/parishledger/internal/core/domain"
)

// Summary is the all-time financial position of a church.
type Summary struct {
	Totals
	TitheTotal decimal.Decimal
}

// NetBalance is income plus tithes minus expenses.
func (s Summary) NetBalance() decimal.Decimal {
	return s.Income.Add(s.TitheTotal).Sub(s.Expenses)
}

// Charts bundles the chart series rendered on the reports page.
type Charts struct {
	TithesByMonth     []MonthValue
	IncomeVsExpenses  []MonthIncomeExpense
	CategoryBreakdown []CategoryAmount
	MemberGrowth      []MonthValue
}

// DashboardStats is the landing-page snapshot of a church.
type DashboardStats struct {
	TotalMembers       int
	TotalTithes        decimal.Decimal
	TotalIncome        decimal.Decimal
	TotalExpenses      decimal.Decimal
	NetBalance         decimal.Decimal
	RecentTithes       []domain.TitheRecord
	RecentTransactions []domain.Transaction
}
