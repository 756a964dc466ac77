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

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxCategoryRepository implements portsrepo.CategoryRepository
var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

var FULL_CATEGORY_SELECT_QUERY = `
SELECT
	cat.category_id, cat.church_id, cat.name, cat.kind, cat.is_default,
	cat.created_at, cat.created_by, cat.last_updated_at, cat.last_updated_by
FROM categories cat
`

func (r *PgxCategoryRepository) getCategories(ctx context.Context, filterQuery string, args ...any) ([]domain.Category, error) {
	query := FULL_CATEGORY_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query categories", err)
	}
	defer rows.Close()
	domainCategories, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Category])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Category{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect category rows", err)
	}

	return domainCategories, nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `
		INSERT INTO categories (
			category_id, church_id, name, kind, is_default,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		category.CategoryID,
		category.ChurchID,
		category.Name,
		category.Kind,
		category.IsDefault,
		category.CreatedAt,
		category.CreatedBy,
		category.LastUpdatedAt,
		category.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("category " + category.Name + " already exists for this kind")
		}
		return apperrors.NewAppError(500, "failed to save category "+category.CategoryID, err)
	}
	return nil
}

func (r *PgxCategoryRepository) ListCategoriesByChurchID(ctx context.Context, churchID string) ([]domain.Category, error) {
	query := `WHERE cat.church_id = $1 ORDER BY cat.name ASC`
	return r.getCategories(ctx, query, churchID)
}

// SeedCategories inserts in one batch, skipping rows whose (church_id, name, kind)
// already exists. Two concurrent seeds of the same church both succeed.
func (r *PgxCategoryRepository) SeedCategories(ctx context.Context, categories []domain.Category) error {
	if len(categories) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO categories (
			category_id, church_id, name, kind, is_default,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (church_id, name, kind) DO NOTHING;
	`
	for _, category := range categories {
		_, err := tx.Exec(ctx, query,
			category.CategoryID,
			category.ChurchID,
			category.Name,
			category.Kind,
			category.IsDefault,
			category.CreatedAt,
			category.CreatedBy,
			category.LastUpdatedAt,
			category.LastUpdatedBy,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to seed category "+category.Name, err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, churchID, categoryID string) error {
	query := `DELETE FROM categories WHERE church_id = $1 AND category_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, churchID, categoryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete category "+categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
