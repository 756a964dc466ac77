package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/parishledger/parishledger/internal/apperrors"
	"github.com/parishledger/parishledger/internal/core/domain"
	portsrepo "github.com/parishledger/parishledger/internal/core/ports/repositories"
)

type PgxBranchRepository struct {
	BaseRepository
}

// newPgxBranchRepository creates a new repository for branch data.
func newPgxBranchRepository(pool *pgxpool.Pool) portsrepo.BranchRepository {
	return &PgxBranchRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxBranchRepository implements portsrepo.BranchRepository
var _ portsrepo.BranchRepository = (*PgxBranchRepository)(nil)

var FULL_BRANCH_SELECT_QUERY = `
SELECT
	b.branch_id, b.church_id, b.name, b.code, b.address,
	b.created_at, b.created_by, b.last_updated_at, b.last_updated_by
FROM branches b
`

func (r *PgxBranchRepository) getBranches(ctx context.Context, filterQuery string, args ...any) ([]domain.Branch, error) {
	query := FULL_BRANCH_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query branches", err)
	}
	defer rows.Close()
	domainBranches, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Branch])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Branch{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect branch rows", err)
	}

	return domainBranches, nil
}

func (r *PgxBranchRepository) SaveBranch(ctx context.Context, branch domain.Branch) error {
	query := `
		INSERT INTO branches (
			branch_id, church_id, name, code, address,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		branch.BranchID,
		branch.ChurchID,
		branch.Name,
		branch.Code,
		branch.Address,
		branch.CreatedAt,
		branch.CreatedBy,
		branch.LastUpdatedAt,
		branch.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("branch code " + branch.Code + " already exists in this church")
		}
		return apperrors.NewAppError(500, "failed to save branch "+branch.BranchID, err)
	}
	return nil
}

func (r *PgxBranchRepository) ListBranchesByChurchID(ctx context.Context, churchID string) ([]domain.Branch, error) {
	query := `WHERE b.church_id = $1 ORDER BY b.name ASC`
	return r.getBranches(ctx, query, churchID)
}

func (r *PgxBranchRepository) DeleteBranch(ctx context.Context, churchID, branchID string) error {
	query := `DELETE FROM branches WHERE church_id = $1 AND branch_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, churchID, branchID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete branch "+branchID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
