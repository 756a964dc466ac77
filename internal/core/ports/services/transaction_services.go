package services

import (
	"context"

	"github.com/parishledger/parishledger/internal/core/domain"
	"github.com/parishledger/parishledger/internal/dto"
)

// TransactionSvcFacade defines operations on income and expense entries.
type TransactionSvcFacade interface {
	// ListTransactions retrieves a page of the church's transactions, newest
	// first, along with the token for the next page.
	ListTransactions(ctx context.Context, userID, churchID string, params dto.ListTransactionsParams) ([]domain.Transaction, string, error)

	// CreateTransaction records an income or expense entry.
	CreateTransaction(ctx context.Context, userID, churchID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes an entry.
	DeleteTransaction(ctx context.Context, userID, churchID, transactionID string) error
}
