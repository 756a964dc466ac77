package dto

import (
	"github.com/shopspring/decimal"

	"github.com/parishledger/parishledger/internal/core/reporting"
	"github.com/parishledger/parishledger/internal/types"
	"github.com/parishledger/parishledger/internal/utils"
)

// SummaryResponse represents the all-time financial summary report.
// Formatted fields carry display-ready Naira strings.
type SummaryResponse struct {
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalExpenses     decimal.Decimal `json:"totalExpenses"`
	TotalTithes       decimal.Decimal `json:"totalTithes"`
	NetBalance        decimal.Decimal `json:"netBalance"`
	FormattedIncome   string          `json:"formattedIncome"`
	FormattedExpenses string          `json:"formattedExpenses"`
	FormattedTithes   string          `json:"formattedTithes"`
	FormattedBalance  string          `json:"formattedBalance"`
}

// ToSummaryResponse converts a reporting.Summary to DTO.
func ToSummaryResponse(s reporting.Summary) SummaryResponse {
	return SummaryResponse{
		TotalIncome:       s.Income,
		TotalExpenses:     s.Expenses,
		TotalTithes:       s.TitheTotal,
		NetBalance:        s.NetBalance(),
		FormattedIncome:   utils.FormatNaira(s.Income),
		FormattedExpenses: utils.FormatNaira(s.Expenses),
		FormattedTithes:   utils.FormatNaira(s.TitheTotal),
		FormattedBalance:  utils.FormatNaira(s.NetBalance()),
	}
}

// MonthlySummaryResponse represents the per-month summary report.
type MonthlySummaryResponse struct {
	Month            string          `json:"month"`
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	NetBalance       decimal.Decimal `json:"netBalance"`
	TransactionCount int             `json:"transactionCount"`
}

// ToMonthlySummaryResponse converts a reporting.MonthTotals to DTO.
func ToMonthlySummaryResponse(month types.Month, mt reporting.MonthTotals) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Month:            month.String(),
		TotalIncome:      mt.Income,
		TotalExpenses:    mt.Expenses,
		NetBalance:       mt.Balance,
		TransactionCount: mt.Count,
	}
}

// MonthOptionsResponse lists the months that have at least one transaction,
// newest first.
type MonthOptionsResponse struct {
	Months []string `json:"months"`
}

// ToMonthOptionsResponse converts a slice of types.Month to DTO.
func ToMonthOptionsResponse(months []types.Month) MonthOptionsResponse {
	list := make([]string, len(months))
	for i, m := range months {
		list[i] = m.String()
	}
	return MonthOptionsResponse{Months: list}
}

// MonthValueResponse is a single point in a month-keyed series.
type MonthValueResponse struct {
	Month string          `json:"month"`
	Value decimal.Decimal `json:"value"`
}

// MonthIncomeExpenseResponse is a single point in the income-vs-expenses series.
type MonthIncomeExpenseResponse struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// CategoryAmountResponse is a slice of the category breakdown.
type CategoryAmountResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// ChartsResponse bundles the chart series for the reports page.
type ChartsResponse struct {
	TithesByMonth     []MonthValueResponse         `json:"tithesByMonth"`
	IncomeVsExpenses  []MonthIncomeExpenseResponse `json:"incomeVsExpenses"`
	CategoryBreakdown []CategoryAmountResponse     `json:"categoryBreakdown"`
	MemberGrowth      []MonthValueResponse         `json:"memberGrowth"`
}

// ToChartsResponse converts reporting.Charts to DTO.
func ToChartsResponse(c reporting.Charts) ChartsResponse {
	return ChartsResponse{
		TithesByMonth:     toMonthValueResponses(c.TithesByMonth),
		IncomeVsExpenses:  toMonthIncomeExpenseResponses(c.IncomeVsExpenses),
		CategoryBreakdown: toCategoryAmountResponses(c.CategoryBreakdown),
		MemberGrowth:      toMonthValueResponses(c.MemberGrowth),
	}
}

func toMonthValueResponses(points []reporting.MonthValue) []MonthValueResponse {
	list := make([]MonthValueResponse, len(points))
	for i, p := range points {
		list[i] = MonthValueResponse{Month: p.Month.String(), Value: p.Value}
	}
	return list
}

func toMonthIncomeExpenseResponses(points []reporting.MonthIncomeExpense) []MonthIncomeExpenseResponse {
	list := make([]MonthIncomeExpenseResponse, len(points))
	for i, p := range points {
		list[i] = MonthIncomeExpenseResponse{Month: p.Month.String(), Income: p.Income, Expenses: p.Expenses}
	}
	return list
}

func toCategoryAmountResponses(points []reporting.CategoryAmount) []CategoryAmountResponse {
	list := make([]CategoryAmountResponse, len(points))
	for i, p := range points {
		list[i] = CategoryAmountResponse{Category: p.Name, Amount: p.Amount}
	}
	return list
}

// DashboardResponse is the landing-page snapshot of a church.
type DashboardResponse struct {
	TotalMembers       int                   `json:"totalMembers"`
	TotalTithes        decimal.Decimal       `json:"totalTithes"`
	TotalIncome        decimal.Decimal       `json:"totalIncome"`
	TotalExpenses      decimal.Decimal       `json:"totalExpenses"`
	NetBalance         decimal.Decimal       `json:"netBalance"`
	FormattedBalance   string                `json:"formattedBalance"`
	RecentTithes       []TitheResponse       `json:"recentTithes"`
	RecentTransactions []TransactionResponse `json:"recentTransactions"`
}

// ToDashboardResponse converts reporting.DashboardStats to DTO.
func ToDashboardResponse(s reporting.DashboardStats) DashboardResponse {
	tithes := make([]TitheResponse, len(s.RecentTithes))
	for i, t := range s.RecentTithes {
		tithes[i] = ToTitheResponse(&t)
	}
	txns := make([]TransactionResponse, len(s.RecentTransactions))
	for i, t := range s.RecentTransactions {
		txns[i] = ToTransactionResponse(&t)
	}
	return DashboardResponse{
		TotalMembers:       s.TotalMembers,
		TotalTithes:        s.TotalTithes,
		TotalIncome:        s.TotalIncome,
		TotalExpenses:      s.TotalExpenses,
		NetBalance:         s.NetBalance,
		FormattedBalance:   utils.FormatNaira(s.NetBalance),
		RecentTithes:       tithes,
		RecentTransactions: txns,
	}
}
