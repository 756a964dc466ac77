package repositories

import (
	"context"

	"github.com/parishledger/parishledger/internal/core/domain"
)

// TitheRepository defines persistence operations for tithe records.
type TitheRepository interface {
	// SaveTithe persists a new tithe record.
	SaveTithe(ctx context.Context, tithe domain.TitheRecord) error

	// ListTithesByChurchID retrieves all tithe records of a church, ordered by
	// date descending.
	ListTithesByChurchID(ctx context.Context, churchID string) ([]domain.TitheRecord, error)

	// ListRecentTithes retrieves the most recently recorded tithes.
	ListRecentTithes(ctx context.Context, churchID string, limit int) ([]domain.TitheRecord, error)

	// DeleteTithe removes a tithe record. Returns apperrors.ErrNotFound when no
	// row matches the (churchID, titheID) pair.
	DeleteTithe(ctx context.Context, churchID, titheID string) error
}
