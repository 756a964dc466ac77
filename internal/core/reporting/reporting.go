// Package reporting implements the pure aggregation functions behind the
// dashboard and report endpoints. Every function is stateless and
// deterministic: it folds already-loaded record slices into totals, month
// buckets and category breakdowns without touching I/O.
package reporting

import (
	"sort"
	"strings"

	"github.com/parishledger/parishledger/internal/core/domain"
	"github.com/parishledger/parishledger/internal/types"
	"github.com/shopspring/decimal"
)

// chartBuckets limits month series to the most recent buckets.
const chartBuckets = 6

// breakdownTop limits the category breakdown to the largest sums.
const breakdownTop = 6

// Totals holds the all-time sums over a transaction sequence.
// Balance is always Income minus Expenses.
type Totals struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// MonthTotals is Totals restricted to a single calendar month, plus the
// number of records that fell inside it.
type MonthTotals struct {
	Totals
	Count int `json:"count"`
}

// MonthValue is one bucket of a per-month series.
type MonthValue struct {
	Month types.Month     `json:"month"`
	Value decimal.Decimal `json:"value"`
}

// MonthIncomeExpense is one bucket of the merged income vs expenses series.
type MonthIncomeExpense struct {
	Month    types.Month     `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// CategoryAmount is one row of the category breakdown.
type CategoryAmount struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// TransactionTotals sums a transaction sequence into income, expenses and
// balance. Sums are computed at full decimal precision with no intermediate
// rounding; the result is invariant under reordering of the input.
func TransactionTotals(txns []domain.Transaction) Totals {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, t := range txns {
		switch t.Kind {
		case domain.KindIncome:
			income = income.Add(t.Amount)
		case domain.KindExpense:
			expenses = expenses.Add(t.Amount)
		}
	}
	return Totals{Income: income, Expenses: expenses, Balance: income.Sub(expenses)}
}

// TotalsForMonth computes Totals over the records whose date falls within the
// given month. A zero month means the current calendar month.
func TotalsForMonth(txns []domain.Transaction, month types.Month) MonthTotals {
	if month.IsZero() {
		month = types.CurrentMonth()
	}

	var scoped []domain.Transaction
	for _, t := range txns {
		if month.Contains(t.Date) {
			scoped = append(scoped, t)
		}
	}
	return MonthTotals{Totals: TransactionTotals(scoped), Count: len(scoped)}
}

// TitheTotal sums the amounts of a tithe record sequence.
func TitheTotal(tithes []domain.TitheRecord) decimal.Decimal {
	total := decimal.Zero
	for _, t := range tithes {
		total = total.Add(t.Amount)
	}
	return total
}

// MonthOptions returns the distinct months present across all transaction
// dates, most recent first.
func MonthOptions(txns []domain.Transaction) []types.Month {
	seen := make(map[string]types.Month)
	for _, t := range txns {
		m := t.Month()
		seen[m.String()] = m
	}

	months := make([]types.Month, 0, len(seen))
	for _, m := range seen {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].After(months[j]) })
	return months
}

// GroupByMonth buckets records by calendar month, summing valueOf per record.
// The result is sorted ascending by month and truncated to the most recent
// buckets. A valueOf that returns one per record yields unit counts.
func GroupByMonth[T any](records []T, monthOf func(T) types.Month, valueOf func(T) decimal.Decimal) []MonthValue {
	sums := make(map[string]MonthValue)
	for _, r := range records {
		m := monthOf(r)
		key := m.String()
		bucket, ok := sums[key]
		if !ok {
			bucket = MonthValue{Month: m, Value: decimal.Zero}
		}
		bucket.Value = bucket.Value.Add(valueOf(r))
		sums[key] = bucket
	}

	series := make([]MonthValue, 0, len(sums))
	for _, b := range sums {
		series = append(series, b)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Month.Before(series[j].Month) })

	if len(series) > chartBuckets {
		series = series[len(series)-chartBuckets:]
	}
	return series
}

// UnitCount is a GroupByMonth value selector that counts one per record.
func UnitCount[T any](T) decimal.Decimal {
	return decimal.NewFromInt(1)
}

// IncomeExpenseByMonth merges the income and expense month series of a
// transaction sequence into one ascending series. Each side is truncated to
// the most recent buckets before merging, mirroring the individual charts.
func IncomeExpenseByMonth(txns []domain.Transaction) []MonthIncomeExpense {
	var incomeTxns, expenseTxns []domain.Transaction
	for _, t := range txns {
		switch t.Kind {
		case domain.KindIncome:
			incomeTxns = append(incomeTxns, t)
		case domain.KindExpense:
			expenseTxns = append(expenseTxns, t)
		}
	}

	amount := func(t domain.Transaction) decimal.Decimal { return t.Amount }
	month := func(t domain.Transaction) types.Month { return t.Month() }
	incomeSeries := GroupByMonth(incomeTxns, month, amount)
	expenseSeries := GroupByMonth(expenseTxns, month, amount)

	merged := make(map[string]MonthIncomeExpense)
	for _, b := range incomeSeries {
		merged[b.Month.String()] = MonthIncomeExpense{Month: b.Month, Income: b.Value, Expenses: decimal.Zero}
	}
	for _, b := range expenseSeries {
		entry, ok := merged[b.Month.String()]
		if !ok {
			entry = MonthIncomeExpense{Month: b.Month, Income: decimal.Zero}
		}
		entry.Expenses = b.Value
		merged[b.Month.String()] = entry
	}

	series := make([]MonthIncomeExpense, 0, len(merged))
	for _, b := range merged {
		series = append(series, b)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Month.Before(series[j].Month) })
	return series
}

// CategoryBreakdown sums transaction amounts per category name, sorted
// descending by sum and truncated to the largest entries. Equal sums are
// ordered by name so the output is deterministic.
func CategoryBreakdown(txns []domain.Transaction) []CategoryAmount {
	sums := make(map[string]decimal.Decimal)
	for _, t := range txns {
		sums[t.Category] = sums[t.Category].Add(t.Amount)
	}

	breakdown := make([]CategoryAmount, 0, len(sums))
	for name, amount := range sums {
		breakdown = append(breakdown, CategoryAmount{Name: name, Amount: amount})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if c := breakdown[i].Amount.Cmp(breakdown[j].Amount); c != 0 {
			return c > 0
		}
		return breakdown[i].Name < breakdown[j].Name
	})

	if len(breakdown) > breakdownTop {
		breakdown = breakdown[:breakdownTop]
	}
	return breakdown
}

// FilterBySearch returns the records whose listed text fields contain the
// query, case-insensitively. An empty query matches everything.
func FilterBySearch[T any](records []T, query string, fields func(T) []string) []T {
	if query == "" {
		return records
	}
	query = strings.ToLower(query)

	var matched []T
	for _, r := range records {
		for _, f := range fields(r) {
			if strings.Contains(strings.ToLower(f), query) {
				matched = append(matched, r)
				break
			}
		}
	}
	return matched
}
