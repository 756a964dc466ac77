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

type PgxChurchRepository struct {
	BaseRepository
}

// newPgxChurchRepository creates a new repository for church data.
func newPgxChurchRepository(pool *pgxpool.Pool) portsrepo.ChurchRepository {
	return &PgxChurchRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxChurchRepository implements portsrepo.ChurchRepository
var _ portsrepo.ChurchRepository = (*PgxChurchRepository)(nil)

var FULL_CHURCH_SELECT_QUERY = `
SELECT
	c.church_id, c.name, c.church_code, c.plan,
	c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
FROM churches c
`

func (r *PgxChurchRepository) getChurches(ctx context.Context, filterQuery string, args ...any) ([]domain.Church, error) {
	query := FULL_CHURCH_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query churches", err)
	}
	defer rows.Close()
	domainChurches, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Church])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Church{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect church rows", err)
	}

	return domainChurches, nil
}

func (r *PgxChurchRepository) SaveChurch(ctx context.Context, church domain.Church) error {
	query := `
		INSERT INTO churches (
			church_id, name, church_code, plan,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		church.ChurchID,
		church.Name,
		church.ChurchCode,
		church.Plan,
		church.CreatedAt,
		church.CreatedBy,
		church.LastUpdatedAt,
		church.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("church code " + church.ChurchCode + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save church "+church.ChurchID, err)
	}
	return nil
}

func (r *PgxChurchRepository) FindChurchByID(ctx context.Context, churchID string) (*domain.Church, error) {
	query := `WHERE c.church_id = $1`
	churches, err := r.getChurches(ctx, query, churchID)
	if err != nil {
		return nil, err
	}
	if len(churches) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &churches[0], nil
}
