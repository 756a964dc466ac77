package repositories

import (
	"context"

	"github.com/parishledger/parishledger/internal/core/domain"
)

// TransactionRepository defines persistence operations for transactions.
type TransactionRepository interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// ListTransactionsByChurchID retrieves a page of transactions ordered by
	// date descending then creation time descending. pageToken is an opaque
	// keyset cursor; empty means the first page. It returns the page and the
	// token for the next one ("" when exhausted).
	ListTransactionsByChurchID(ctx context.Context, churchID string, limit int, pageToken string) ([]domain.Transaction, string, error)

	// ListAllTransactionsByChurchID retrieves every transaction of a church,
	// ordered by date descending. Used by reporting, which needs full input.
	ListAllTransactionsByChurchID(ctx context.Context, churchID string) ([]domain.Transaction, error)

	// ListRecentTransactions retrieves the most recently created transactions.
	ListRecentTransactions(ctx context.Context, churchID string, limit int) ([]domain.Transaction, error)

	// DeleteTransaction removes a transaction. Returns apperrors.ErrNotFound
	// when no row matches the (churchID, transactionID) pair.
	DeleteTransaction(ctx context.Context, churchID, transactionID string) error
}
