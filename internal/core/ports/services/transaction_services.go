package services

import (
	"context"

	"github.com/fintracker/personal_finance_app/internal/core/domain"
	"github.com/fintracker/personal_finance_app/internal/dto"
)

// TransactionReaderSvc defines read operations over the transaction log
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction by its unique identifier.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a cursor-paginated page of transactions,
	// newest first, optionally filtered by type.
	ListTransactions(ctx context.Context, params dto.ListTransactionsRequest) (*dto.ListTransactionsResponse, error)
}
