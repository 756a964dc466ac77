package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/parishledger/parishledger/internal/apperrors"
	"github.com/parishledger/parishledger/internal/core/domain"
	portsrepo "github.com/parishledger/parishledger/internal/core/ports/repositories"
	"github.com/parishledger/parishledger/internal/utils/pagination"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

var FULL_TRANSACTION_SELECT_QUERY = `
SELECT
	t.transaction_id, t.church_id, t.branch_id, t.kind, t.category,
	t.amount, t.date, t.description,
	t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
FROM transactions t
`

func (r *PgxTransactionRepository) getTransactions(ctx context.Context, filterQuery string, args ...any) ([]domain.Transaction, error) {
	query := FULL_TRANSACTION_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()
	domainTxns, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Transaction])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Transaction{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect transaction rows", err)
	}

	return domainTxns, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (
			transaction_id, church_id, branch_id, kind, category,
			amount, date, description,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.ChurchID,
		txn.BranchID,
		txn.Kind,
		txn.Category,
		txn.Amount,
		txn.Date,
		txn.Description,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)

	if err != nil {
		return apperrors.NewAppError(500, "failed to save transaction "+txn.TransactionID, err)
	}
	return nil
}

// ListTransactionsByChurchID pages with a keyset over (date, created_at), both
// descending, so inserts during paging never shift earlier pages.
func (r *PgxTransactionRepository) ListTransactionsByChurchID(ctx context.Context, churchID string, limit int, pageToken string) ([]domain.Transaction, string, error) {
	if limit <= 0 {
		limit = 20
	}

	filter := `WHERE t.church_id = $1`
	args := []any{churchID}
	if pageToken != "" {
		entryDate, createdAt, err := pagination.DecodeToken(pageToken)
		if err != nil {
			return nil, "", apperrors.NewValidationFailedError(fmt.Sprintf("invalid page token: %v", err))
		}
		filter += ` AND (t.date, t.created_at) < ($2, $3)`
		args = append(args, entryDate, createdAt)
	}
	// Fetch one extra row to know whether another page exists.
	filter += fmt.Sprintf(` ORDER BY t.date DESC, t.created_at DESC LIMIT %d`, limit+1)

	txns, err := r.getTransactions(ctx, filter, args...)
	if err != nil {
		return nil, "", err
	}

	nextToken := ""
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		nextToken = pagination.EncodeToken(last.Date, last.CreatedAt)
	}
	return txns, nextToken, nil
}

func (r *PgxTransactionRepository) ListAllTransactionsByChurchID(ctx context.Context, churchID string) ([]domain.Transaction, error) {
	query := `WHERE t.church_id = $1 ORDER BY t.date DESC, t.created_at DESC`
	return r.getTransactions(ctx, query, churchID)
}

func (r *PgxTransactionRepository) ListRecentTransactions(ctx context.Context, churchID string, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 5
	}
	query := fmt.Sprintf(`WHERE t.church_id = $1 ORDER BY t.created_at DESC LIMIT %d`, limit)
	return r.getTransactions(ctx, query, churchID)
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, churchID, transactionID string) error {
	query := `DELETE FROM transactions WHERE church_id = $1 AND transaction_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, churchID, transactionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction "+transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
