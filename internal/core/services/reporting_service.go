package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/parishledger/parishledger/internal/core/domain"
	portsrepo "github.com/parishledger/parishledger/internal/core/ports/repositories"
	portssvc "github.com/parishledger/parishledger/internal/core/ports/services"
	"github.com/parishledger/parishledger/internal/core/reporting"
	"github.com/parishledger/parishledger/internal/types"
)

const recentEntries = 5

// reportingService loads a church's records and folds them through the pure
// aggregation functions. It never writes anything.
type reportingService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	titheRepo       portsrepo.TitheRepository
	memberRepo      portsrepo.MemberRepository
}

// NewReportingService creates a new instance of reportingService.
func NewReportingService(
	transactionRepo portsrepo.TransactionRepository,
	titheRepo portsrepo.TitheRepository,
	memberRepo portsrepo.MemberRepository,
	authorizer portssvc.ChurchAuthorizerSvc,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		BaseService:     BaseService{ChurchAuthorizer: authorizer},
		transactionRepo: transactionRepo,
		titheRepo:       titheRepo,
		memberRepo:      memberRepo,
	}
}

// Ensure reportingService implements portssvc.ReportingSvcFacade
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) Dashboard(ctx context.Context, userID, churchID string) (*reporting.DashboardStats, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID); err != nil {
		return nil, err
	}

	txns, err := s.transactionRepo.ListAllTransactionsByChurchID(ctx, churchID)
	if err != nil {
		return nil, err
	}
	tithes, err := s.titheRepo.ListTithesByChurchID(ctx, churchID)
	if err != nil {
		return nil, err
	}
	memberCount, err := s.memberRepo.CountMembersByChurchID(ctx, churchID)
	if err != nil {
		return nil, err
	}
	recentTithes, err := s.titheRepo.ListRecentTithes(ctx, churchID, recentEntries)
	if err != nil {
		return nil, err
	}
	recentTxns, err := s.transactionRepo.ListRecentTransactions(ctx, churchID, recentEntries)
	if err != nil {
		return nil, err
	}

	totals := reporting.TransactionTotals(txns)
	titheTotal := reporting.TitheTotal(tithes)

	return &reporting.DashboardStats{
		TotalMembers:       memberCount,
		TotalTithes:        titheTotal,
		TotalIncome:        totals.Income,
		TotalExpenses:      totals.Expenses,
		NetBalance:         totals.Income.Add(titheTotal).Sub(totals.Expenses),
		RecentTithes:       recentTithes,
		RecentTransactions: recentTxns,
	}, nil
}

func (s *reportingService) Summary(ctx context.Context, userID, churchID string) (*reporting.Summary, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID); err != nil {
		return nil, err
	}

	txns, err := s.transactionRepo.ListAllTransactionsByChurchID(ctx, churchID)
	if err != nil {
		return nil, err
	}
	tithes, err := s.titheRepo.ListTithesByChurchID(ctx, churchID)
	if err != nil {
		return nil, err
	}

	return &reporting.Summary{
		Totals:     reporting.TransactionTotals(txns),
		TitheTotal: reporting.TitheTotal(tithes),
	}, nil
}

func (s *reportingService) MonthlySummary(ctx context.Context, userID, churchID string, month types.Month) (*reporting.MonthTotals, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID); err != nil {
		return nil, err
	}

	if month.IsZero() {
		month = types.CurrentMonth()
	}

	txns, err := s.transactionRepo.ListAllTransactionsByChurchID(ctx, churchID)
	if err != nil {
		return nil, err
	}

	totals := reporting.TotalsForMonth(txns, month)
	return &totals, nil
}

func (s *reportingService) MonthOptions(ctx context.Context, userID, churchID string) ([]types.Month, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID); err != nil {
		return nil, err
	}

	txns, err := s.transactionRepo.ListAllTransactionsByChurchID(ctx, churchID)
	if err != nil {
		return nil, err
	}
	return reporting.MonthOptions(txns), nil
}

func (s *reportingService) Charts(ctx context.Context, userID, churchID string) (*reporting.Charts, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID); err != nil {
		return nil, err
	}

	txns, err := s.transactionRepo.ListAllTransactionsByChurchID(ctx, churchID)
	if err != nil {
		return nil, err
	}
	tithes, err := s.titheRepo.ListTithesByChurchID(ctx, churchID)
	if err != nil {
		return nil, err
	}
	members, err := s.memberRepo.ListMembersByChurchID(ctx, churchID)
	if err != nil {
		return nil, err
	}

	return &reporting.Charts{
		TithesByMonth: reporting.GroupByMonth(tithes,
			func(t domain.TitheRecord) types.Month { return t.Month() },
			func(t domain.TitheRecord) decimal.Decimal { return t.Amount }),
		IncomeVsExpenses:  reporting.IncomeExpenseByMonth(txns),
		CategoryBreakdown: reporting.CategoryBreakdown(txns),
		MemberGrowth: reporting.GroupByMonth(members,
			func(m domain.Member) types.Month { return types.MonthOf(m.CreatedAt) },
			reporting.UnitCount),
	}, nil
}
