package services

import (
	"context"

	"github.com/parishledger/parishledger/internal/core/reporting"
	"github.com/parishledger/parishledger/internal/types"
)

// ReportingSvcFacade defines the read-only aggregate reports.
type ReportingSvcFacade interface {
	// Dashboard computes the landing-page snapshot.
	Dashboard(ctx context.Context, userID, churchID string) (*reporting.DashboardStats, error)

	// Summary computes the all-time totals.
	Summary(ctx context.Context, userID, churchID string) (*reporting.Summary, error)

	// MonthlySummary computes totals for one calendar month. A zero month
	// means the current one.
	MonthlySummary(ctx context.Context, userID, churchID string, month types.Month) (*reporting.MonthTotals, error)

	// MonthOptions lists the months that have transactions, newest first.
	MonthOptions(ctx context.Context, userID, churchID string) ([]types.Month, error)

	// Charts computes the chart series for the reports page.
	Charts(ctx context.Context, userID, churchID string) (*reporting.Charts, error)
}
