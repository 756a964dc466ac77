package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/parishledger/parishledger/internal/apperrors"
	"github.com/parishledger/parishledger/internal/core/domain"
	portsrepo "github.com/parishledger/parishledger/internal/core/ports/repositories"
	portssvc "github.com/parishledger/parishledger/internal/core/ports/services"
	"github.com/parishledger/parishledger/internal/core/reporting"
	"github.com/parishledger/parishledger/internal/dto"
)

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
}

// NewTransactionService creates a new instance of transactionService.
func NewTransactionService(transactionRepo portsrepo.TransactionRepository, authorizer portssvc.ChurchAuthorizerSvc) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService:     BaseService{ChurchAuthorizer: authorizer},
		transactionRepo: transactionRepo,
	}
}

// Ensure transactionService implements portssvc.TransactionSvcFacade
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// ListTransactions pages by keyset when unfiltered. Kind and search filters
// operate on the full list, so a filtered response carries no next-page token.
func (s *transactionService) ListTransactions(ctx context.Context, userID, churchID string, params dto.ListTransactionsParams) ([]domain.Transaction, string, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID); err != nil {
		return nil, "", err
	}

	if params.Kind == "" && params.Search == "" {
		return s.transactionRepo.ListTransactionsByChurchID(ctx, churchID, params.Limit, params.PageToken)
	}

	txns, err := s.transactionRepo.ListAllTransactionsByChurchID(ctx, churchID)
	if err != nil {
		return nil, "", err
	}

	if params.Kind != "" {
		kind := domain.CategoryKind(params.Kind)
		filtered := make([]domain.Transaction, 0, len(txns))
		for _, t := range txns {
			if t.Kind == kind {
				filtered = append(filtered, t)
			}
		}
		txns = filtered
	}

	if params.Search != "" {
		txns = reporting.FilterBySearch(txns, params.Search, func(t domain.Transaction) []string {
			fields := []string{t.Category}
			if t.Description != nil {
				fields = append(fields, *t.Description)
			}
			return fields
		})
	}

	return txns, "", nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID, churchID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID); err != nil {
		return nil, err
	}

	if !req.Kind.Valid() {
		return nil, apperrors.NewValidationFailedError("kind must be income or expense")
	}
	if req.Amount.IsNegative() {
		return nil, apperrors.NewValidationFailedError("amount must not be negative")
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, apperrors.NewValidationFailedError("category is required")
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		ChurchID:      churchID,
		BranchID:      req.BranchID,
		Kind:          req.Kind,
		Category:      req.Category,
		Amount:        req.Amount,
		Date:          req.ParsedDate(),
		Description:   req.Description,
		AuditFields:   domain.NewAuditFields(now, userID),
	}
	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Transaction recorded", "transaction_id", txn.TransactionID, "church_id", churchID, "kind", string(txn.Kind))
	return &txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID, churchID, transactionID string) error {
	if err := s.AuthorizeUser(ctx, userID, churchID); err != nil {
		return err
	}
	if err := s.transactionRepo.DeleteTransaction(ctx, churchID, transactionID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", "transaction_id", transactionID, "church_id", churchID)
	return nil
}
