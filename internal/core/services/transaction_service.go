package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fintracker/personal_finance_app/internal/apperrors"
	"github.com/fintracker/personal_finance_app/internal/core/domain"
	portsrepo "github.com/fintracker/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/fintracker/personal_finance_app/internal/core/ports/services"
	"github.com/fintracker/personal_finance_app/internal/dto"
	"github.com/fintracker/personal_finance_app/internal/middleware"
)

const defaultTransactionPageSize = 50

// transactionService provides read access to the transaction log. There is no
// write side here: appends only happen inside ledger units.
type transactionService struct {
	repo portsrepo.TransactionReader
}

// NewTransactionService creates a new transaction read service.
func NewTransactionService(repo portsrepo.TransactionReader) portssvc.TransactionReaderSvc {
	return &transactionService{repo: repo}
}

var _ portssvc.TransactionReaderSvc = (*transactionService)(nil)

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.repo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transaction by ID in repository", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsRequest) (*dto.ListTransactionsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}

	var typeFilter *domain.TransactionType
	if params.Type != nil {
		t := domain.TransactionType(*params.Type)
		if !domain.ValidType(t) {
			return nil, ErrInvalidTransactionType
		}
		typeFilter = &t
	}

	txns, nextToken, err := s.repo.ListTransactions(ctx, typeFilter, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list transactions from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}
