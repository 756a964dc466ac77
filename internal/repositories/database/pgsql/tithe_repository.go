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
)

type PgxTitheRepository struct {
	BaseRepository
}

// newPgxTitheRepository creates a new repository for tithe data.
func newPgxTitheRepository(pool *pgxpool.Pool) portsrepo.TitheRepository {
	return &PgxTitheRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTitheRepository implements portsrepo.TitheRepository
var _ portsrepo.TitheRepository = (*PgxTitheRepository)(nil)

var FULL_TITHE_SELECT_QUERY = `
SELECT
	ti.tithe_id, ti.church_id, ti.branch_id, ti.member_id, ti.member_name,
	ti.amount, ti.date, ti.is_anonymous,
	ti.created_at, ti.created_by, ti.last_updated_at, ti.last_updated_by
FROM tithes ti
`

func (r *PgxTitheRepository) getTithes(ctx context.Context, filterQuery string, args ...any) ([]domain.TitheRecord, error) {
	query := FULL_TITHE_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tithes", err)
	}
	defer rows.Close()
	domainTithes, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.TitheRecord])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.TitheRecord{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect tithe rows", err)
	}

	return domainTithes, nil
}

func (r *PgxTitheRepository) SaveTithe(ctx context.Context, tithe domain.TitheRecord) error {
	query := `
		INSERT INTO tithes (
			tithe_id, church_id, branch_id, member_id, member_name,
			amount, date, is_anonymous,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		tithe.TitheID,
		tithe.ChurchID,
		tithe.BranchID,
		tithe.MemberID,
		tithe.MemberName,
		tithe.Amount,
		tithe.Date,
		tithe.IsAnonymous,
		tithe.CreatedAt,
		tithe.CreatedBy,
		tithe.LastUpdatedAt,
		tithe.LastUpdatedBy,
	)

	if err != nil {
		return apperrors.NewAppError(500, "failed to save tithe "+tithe.TitheID, err)
	}
	return nil
}

func (r *PgxTitheRepository) ListTithesByChurchID(ctx context.Context, churchID string) ([]domain.TitheRecord, error) {
	query := `WHERE ti.church_id = $1 ORDER BY ti.date DESC, ti.created_at DESC`
	return r.getTithes(ctx, query, churchID)
}

func (r *PgxTitheRepository) ListRecentTithes(ctx context.Context, churchID string, limit int) ([]domain.TitheRecord, error) {
	if limit <= 0 {
		limit = 5
	}
	query := fmt.Sprintf(`WHERE ti.church_id = $1 ORDER BY ti.created_at DESC LIMIT %d`, limit)
	return r.getTithes(ctx, query, churchID)
}

func (r *PgxTitheRepository) DeleteTithe(ctx context.Context, churchID, titheID string) error {
	query := `DELETE FROM tithes WHERE church_id = $1 AND tithe_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, churchID, titheID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete tithe "+titheID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
