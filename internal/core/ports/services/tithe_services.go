package services

import (
	"context"

	"github.com/parishledger/parishledger/internal/core/domain"
	"github.com/parishledger/parishledger/internal/dto"
)

// TitheSvcFacade defines operations on tithe records.
type TitheSvcFacade interface {
	// ListTithes retrieves the church's tithe records, newest first, optionally
	// filtered by a case-insensitive search over the giver's name.
	ListTithes(ctx context.Context, userID, churchID, search string) ([]domain.TitheRecord, error)

	// CreateTithe records a tithe. Anonymous records never store a member
	// identity, whatever the request carries.
	CreateTithe(ctx context.Context, userID, churchID string, req dto.CreateTitheRequest) (*domain.TitheRecord, error)

	// DeleteTithe removes a tithe record.
	DeleteTithe(ctx context.Context, userID, churchID, titheID string) error
}
