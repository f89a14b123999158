package repositories

import (
	"context"

	"github.com/fintracker/personal_finance_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations for the append-only transaction log
type TransactionReader interface {
	// FindTransactionByID retrieves a single transaction.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of transactions ordered by
	// (created_at DESC, transaction_id DESC) using token-based pagination.
	// typeFilter narrows to income or expense when non-nil.
	ListTransactions(ctx context.Context, typeFilter *domain.TransactionType, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines the single write operation for the log. There is
// deliberately no update or delete: the log is the audit trail.
type TransactionWriter interface {
	// SaveTransaction appends a transaction row.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// SaveTransactionInTx appends a transaction row within an existing
	// transaction, so ledger operations can pair it with an entity update.
	SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines the transaction log interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
