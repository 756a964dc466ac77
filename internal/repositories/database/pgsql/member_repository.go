package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/parishledger/parishledger/internal/apperrors"
	"github.com/parishledger/parishledger/internal/core/domain"
	portsrepo "github.com/parishledger/parishledger/internal/core/ports/repositories"
)

type PgxMemberRepository struct {
	BaseRepository
}

// newPgxMemberRepository creates a new repository for member data.
func newPgxMemberRepository(pool *pgxpool.Pool) portsrepo.MemberRepository {
	return &PgxMemberRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxMemberRepository implements portsrepo.MemberRepository
var _ portsrepo.MemberRepository = (*PgxMemberRepository)(nil)

var FULL_MEMBER_SELECT_QUERY = `
SELECT
	m.member_id, m.church_id, m.branch_id, m.name, m.phone, m.email,
	m.created_at, m.created_by, m.last_updated_at, m.last_updated_by
FROM members m
`

func (r *PgxMemberRepository) getMembers(ctx context.Context, filterQuery string, args ...any) ([]domain.Member, error) {
	query := FULL_MEMBER_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query members", err)
	}
	defer rows.Close()
	domainMembers, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Member])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Member{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect member rows", err)
	}

	return domainMembers, nil
}

func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	query := `
		INSERT INTO members (
			member_id, church_id, branch_id, name, phone, email,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		member.MemberID,
		member.ChurchID,
		member.BranchID,
		member.Name,
		member.Phone,
		member.Email,
		member.CreatedAt,
		member.CreatedBy,
		member.LastUpdatedAt,
		member.LastUpdatedBy,
	)

	if err != nil {
		return apperrors.NewAppError(500, "failed to save member "+member.MemberID, err)
	}
	return nil
}

func (r *PgxMemberRepository) ListMembersByChurchID(ctx context.Context, churchID string) ([]domain.Member, error) {
	query := `WHERE m.church_id = $1 ORDER BY m.name ASC`
	return r.getMembers(ctx, query, churchID)
}

func (r *PgxMemberRepository) CountMembersByChurchID(ctx context.Context, churchID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT count(*) FROM members WHERE church_id = $1;`, churchID).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count members", err)
	}
	return count, nil
}

func (r *PgxMemberRepository) DeleteMember(ctx context.Context, churchID, memberID string) error {
	query := `DELETE FROM members WHERE church_id = $1 AND member_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, churchID, memberID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete member "+memberID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
