package reporting_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/parishledger/parishledger/internal/core/domain"
	"github.com/parishledger/parishledger/internal/core/reporting"
	"github.com/parishledger/parishledger/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func newTxn(t *testing.T, kind domain.CategoryKind, category, amount, date string) domain.Transaction {
	t.Helper()
	return domain.Transaction{
		TransactionID: fmt.Sprintf("txn-%s-%s-%s", kind, category, date),
		ChurchID:      "church-1",
		Kind:          kind,
		Category:      category,
		Amount:        decimal.RequireFromString(amount),
		Date:          mustDate(t, date),
	}
}

func sampleTransactions(t *testing.T) []domain.Transaction {
	t.Helper()
	return []domain.Transaction{
		newTxn(t, domain.KindIncome, "Tithe", "1000", "2024-01-10"),
		newTxn(t, domain.KindExpense, "Rent", "400", "2024-01-15"),
		newTxn(t, domain.KindIncome, "Offering", "500", "2024-02-01"),
	}
}

func TestTransactionTotals(t *testing.T) {
	totals := reporting.TransactionTotals(sampleTransactions(t))

	assert.True(t, totals.Income.Equal(decimal.NewFromInt(1500)), "income: %s", totals.Income)
	assert.True(t, totals.Expenses.Equal(decimal.NewFromInt(400)), "expenses: %s", totals.Expenses)
	assert.True(t, totals.Balance.Equal(decimal.NewFromInt(1100)), "balance: %s", totals.Balance)
}

func TestTransactionTotalsEmpty(t *testing.T) {
	totals := reporting.TransactionTotals(nil)

	assert.True(t, totals.Income.IsZero())
	assert.True(t, totals.Expenses.IsZero())
	assert.True(t, totals.Balance.IsZero())
}

func TestTransactionTotalsBalanceIdentity(t *testing.T) {
	txns := sampleTransactions(t)
	txns = append(txns,
		newTxn(t, domain.KindIncome, "Donation", "0.10", "2024-03-03"),
		newTxn(t, domain.KindExpense, "Utilities", "0.20", "2024-03-04"),
	)

	totals := reporting.TransactionTotals(txns)
	assert.True(t, totals.Balance.Equal(totals.Income.Sub(totals.Expenses)))
}

func TestTransactionTotalsOrderInvariant(t *testing.T) {
	txns := sampleTransactions(t)
	reversed := make([]domain.Transaction, len(txns))
	for i, txn := range txns {
		reversed[len(txns)-1-i] = txn
	}

	forward := reporting.TransactionTotals(txns)
	backward := reporting.TransactionTotals(reversed)

	assert.True(t, forward.Income.Equal(backward.Income))
	assert.True(t, forward.Expenses.Equal(backward.Expenses))
	assert.True(t, forward.Balance.Equal(backward.Balance))
}

func TestTransactionTotalsFullPrecision(t *testing.T) {
	txns := []domain.Transaction{
		newTxn(t, domain.KindIncome, "Tithe", "0.1", "2024-01-01"),
		newTxn(t, domain.KindIncome, "Tithe", "0.2", "2024-01-02"),
	}

	totals := reporting.TransactionTotals(txns)
	assert.True(t, totals.Income.Equal(decimal.RequireFromString("0.3")), "income: %s", totals.Income)
}

func TestTotalsForMonth(t *testing.T) {
	txns := sampleTransactions(t)
	month, err := types.ParseMonth("2024-01")
	require.NoError(t, err)

	monthly := reporting.TotalsForMonth(txns, month)

	assert.True(t, monthly.Income.Equal(decimal.NewFromInt(1000)))
	assert.True(t, monthly.Expenses.Equal(decimal.NewFromInt(400)))
	assert.True(t, monthly.Balance.Equal(decimal.NewFromInt(600)))
	assert.Equal(t, 2, monthly.Count)
}

func TestTotalsForMonthDefaultsToCurrentMonth(t *testing.T) {
	now := time.Now()
	txns := []domain.Transaction{
		newTxn(t, domain.KindIncome, "Tithe", "250", now.Format("2006-01-02")),
		newTxn(t, domain.KindIncome, "Tithe", "99", "2001-01-01"),
	}

	monthly := reporting.TotalsForMonth(txns, types.Month{})

	assert.True(t, monthly.Income.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, 1, monthly.Count)
}

func TestTotalsForMonthIsSubsetOfTotals(t *testing.T) {
	txns := sampleTransactions(t)
	full := reporting.TransactionTotals(txns)

	for _, month := range reporting.MonthOptions(txns) {
		monthly := reporting.TotalsForMonth(txns, month)
		assert.True(t, monthly.Income.LessThanOrEqual(full.Income))
		assert.True(t, monthly.Expenses.LessThanOrEqual(full.Expenses))

		prefix := month.String()
		want := 0
		for _, txn := range txns {
			if txn.Date.Format("2006-01-02")[:7] == prefix {
				want++
			}
		}
		assert.Equal(t, want, monthly.Count, "count for %s", prefix)
	}
}

func TestMonthOptions(t *testing.T) {
	options := reporting.MonthOptions(sampleTransactions(t))

	require.Len(t, options, 2)
	assert.Equal(t, "2024-02", options[0].String())
	assert.Equal(t, "2024-01", options[1].String())
}

func TestMonthOptionsDeduplicates(t *testing.T) {
	txns := append(sampleTransactions(t), newTxn(t, domain.KindIncome, "Tithe", "5", "2024-01-31"))

	options := reporting.MonthOptions(txns)
	assert.Len(t, options, 2)
}

func TestGroupByMonthSumsAmounts(t *testing.T) {
	txns := sampleTransactions(t)

	series := reporting.GroupByMonth(txns,
		func(txn domain.Transaction) types.Month { return txn.Month() },
		func(txn domain.Transaction) decimal.Decimal { return txn.Amount },
	)

	require.Len(t, series, 2)
	assert.Equal(t, "2024-01", series[0].Month.String())
	assert.True(t, series[0].Value.Equal(decimal.NewFromInt(1400)))
	assert.Equal(t, "2024-02", series[1].Month.String())
	assert.True(t, series[1].Value.Equal(decimal.NewFromInt(500)))
}

func TestGroupByMonthUnitCount(t *testing.T) {
	members := []domain.Member{
		{MemberID: "m1", AuditFields: domain.AuditFields{CreatedAt: mustDate(t, "2024-01-05")}},
		{MemberID: "m2", AuditFields: domain.AuditFields{CreatedAt: mustDate(t, "2024-01-20")}},
		{MemberID: "m3", AuditFields: domain.AuditFields{CreatedAt: mustDate(t, "2024-03-01")}},
	}

	series := reporting.GroupByMonth(members,
		func(m domain.Member) types.Month { return types.MonthOf(m.CreatedAt) },
		reporting.UnitCount,
	)

	require.Len(t, series, 2)
	assert.True(t, series[0].Value.Equal(decimal.NewFromInt(2)))
	assert.True(t, series[1].Value.Equal(decimal.NewFromInt(1)))
}

func TestGroupByMonthKeepsMostRecentSixAscending(t *testing.T) {
	var txns []domain.Transaction
	for i := 0; i < 9; i++ {
		date := fmt.Sprintf("2023-%02d-10", i+1)
		txns = append(txns, newTxn(t, domain.KindIncome, "Tithe", "10", date))
	}

	series := reporting.GroupByMonth(txns,
		func(txn domain.Transaction) types.Month { return txn.Month() },
		func(txn domain.Transaction) decimal.Decimal { return txn.Amount },
	)

	require.Len(t, series, 6)
	assert.Equal(t, "2023-04", series[0].Month.String())
	assert.Equal(t, "2023-09", series[5].Month.String())
	for i := 1; i < len(series); i++ {
		assert.True(t, series[i-1].Month.Before(series[i].Month), "series must be ascending")
	}
}

func TestIncomeExpenseByMonth(t *testing.T) {
	txns := sampleTransactions(t)

	series := reporting.IncomeExpenseByMonth(txns)

	require.Len(t, series, 2)
	assert.Equal(t, "2024-01", series[0].Month.String())
	assert.True(t, series[0].Income.Equal(decimal.NewFromInt(1000)))
	assert.True(t, series[0].Expenses.Equal(decimal.NewFromInt(400)))
	assert.Equal(t, "2024-02", series[1].Month.String())
	assert.True(t, series[1].Income.Equal(decimal.NewFromInt(500)))
	assert.True(t, series[1].Expenses.IsZero())
}

func TestCategoryBreakdown(t *testing.T) {
	txns := []domain.Transaction{
		newTxn(t, domain.KindExpense, "Rent", "300", "2024-01-01"),
		newTxn(t, domain.KindExpense, "Rent", "200", "2024-02-01"),
		newTxn(t, domain.KindIncome, "Tithe", "450", "2024-01-02"),
		newTxn(t, domain.KindExpense, "Utilities", "450", "2024-01-03"),
	}

	breakdown := reporting.CategoryBreakdown(txns)

	require.Len(t, breakdown, 3)
	assert.Equal(t, "Rent", breakdown[0].Name)
	assert.True(t, breakdown[0].Amount.Equal(decimal.NewFromInt(500)))
	// Equal sums sort by name for a stable order.
	assert.Equal(t, "Tithe", breakdown[1].Name)
	assert.Equal(t, "Utilities", breakdown[2].Name)
}

func TestCategoryBreakdownTruncatesToSix(t *testing.T) {
	var txns []domain.Transaction
	for i := 0; i < 8; i++ {
		category := fmt.Sprintf("Category %d", i)
		amount := fmt.Sprintf("%d", (i+1)*100)
		txns = append(txns, newTxn(t, domain.KindExpense, category, amount, "2024-01-01"))
	}

	breakdown := reporting.CategoryBreakdown(txns)

	require.Len(t, breakdown, 6)
	assert.Equal(t, "Category 7", breakdown[0].Name)
	for i := 1; i < len(breakdown); i++ {
		assert.True(t, breakdown[i].Amount.LessThanOrEqual(breakdown[i-1].Amount), "breakdown must be descending")
	}
}

func TestTitheTotal(t *testing.T) {
	tithes := []domain.TitheRecord{
		{Amount: decimal.RequireFromString("100.50"), Date: mustDate(t, "2024-01-07")},
		{Amount: decimal.RequireFromString("99.50"), Date: mustDate(t, "2024-01-14")},
	}

	assert.True(t, reporting.TitheTotal(tithes).Equal(decimal.NewFromInt(200)))
	assert.True(t, reporting.TitheTotal(nil).IsZero())
}

func TestFilterBySearch(t *testing.T) {
	name := func(s string) *string { return &s }
	members := []domain.Member{
		{MemberID: "m1", Name: "Adaeze Obi", Phone: name("0803-111-2222")},
		{MemberID: "m2", Name: "Tunde Bakare", Email: name("tunde@example.org")},
		{MemberID: "m3", Name: "Grace Eze"},
	}
	fields := func(m domain.Member) []string {
		out := []string{m.Name}
		if m.Phone != nil {
			out = append(out, *m.Phone)
		}
		if m.Email != nil {
			out = append(out, *m.Email)
		}
		return out
	}

	t.Run("empty query matches all", func(t *testing.T) {
		assert.Len(t, reporting.FilterBySearch(members, "", fields), 3)
	})

	t.Run("case insensitive substring", func(t *testing.T) {
		matched := reporting.FilterBySearch(members, "ADAEZE", fields)
		require.Len(t, matched, 1)
		assert.Equal(t, "m1", matched[0].MemberID)
	})

	t.Run("matches secondary fields", func(t *testing.T) {
		matched := reporting.FilterBySearch(members, "example.org", fields)
		require.Len(t, matched, 1)
		assert.Equal(t, "m2", matched[0].MemberID)
	})

	t.Run("no match yields empty", func(t *testing.T) {
		assert.Empty(t, reporting.FilterBySearch(members, "zzz", fields))
	})
}
