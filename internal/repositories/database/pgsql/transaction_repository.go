package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintracker/personal_finance_app/internal/apperrors"
	"github.com/fintracker/personal_finance_app/internal/core/domain"
	portsrepo "github.com/fintracker/personal_finance_app/internal/core/ports/repositories"
	"github.com/fintracker/personal_finance_app/internal/models"
	"github.com/fintracker/personal_finance_app/internal/utils/mapping"
	"github.com/fintracker/personal_finance_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionInsertQuery = `
	INSERT INTO transactions (transaction_id, amount, type, source, category, asset_id, credit_card_id, bank_account_id, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
`

const transactionColumns = `transaction_id, amount, type, source, category, asset_id, credit_card_id, bank_account_id, created_at`

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// newPgxTransactionRepository creates a new repository for the transaction log.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{pool: pool}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func transactionInsertArgs(m models.Transaction) []any {
	return []any{
		m.TransactionID,
		m.Amount,
		m.Type,
		m.Source,
		m.Category,
		m.AssetID,
		m.CreditCardID,
		m.BankAccountID,
		m.CreatedAt,
	}
}

func mapTransactionInsertError(err error, transactionID string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // Unique violation
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, transactionID)
		case "23514": // Check violation (amount > 0, enum values)
			return fmt.Errorf("%w: transaction %s violates a table constraint", apperrors.ErrValidation, transactionID)
		}
	}
	return fmt.Errorf("failed to save transaction %s: %w", transactionID, err)
}

// SaveTransaction appends a transaction row.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	if _, err := r.pool.Exec(ctx, transactionInsertQuery, transactionInsertArgs(m)...); err != nil {
		return mapTransactionInsertError(err, m.TransactionID)
	}
	return nil
}

// SaveTransactionInTx appends a transaction row within an existing transaction.
func (r *PgxTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	if _, err := tx.Exec(ctx, transactionInsertQuery, transactionInsertArgs(m)...); err != nil {
		return mapTransactionInsertError(err, m.TransactionID)
	}
	return nil
}

// FindTransactionByID retrieves a single transaction.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	var m models.Transaction
	err := r.pool.QueryRow(ctx, query, transactionID).Scan(
		&m.TransactionID,
		&m.Amount,
		&m.Type,
		&m.Source,
		&m.Category,
		&m.AssetID,
		&m.CreditCardID,
		&m.BankAccountID,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// ListTransactions retrieves one page of the log, newest first, using a
// keyset cursor over (created_at, transaction_id). One extra row is fetched
// to decide whether another page exists.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, typeFilter *domain.TransactionType, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions`
	var args []any
	var conditions []string

	if typeFilter != nil {
		args = append(args, string(*typeFilter))
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)))
	}
	if nextToken != nil && *nextToken != "" {
		createdAt, transactionID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token: %v", apperrors.ErrValidation, err)
		}
		args = append(args, createdAt, transactionID)
		conditions = append(conditions, fmt.Sprintf("(created_at, transaction_id) < ($%d, $%d)", len(args)-1, len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY created_at DESC, transaction_id DESC LIMIT $%d;", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.Amount,
			&m.Type,
			&m.Source,
			&m.Category,
			&m.AssetID,
			&m.CreditCardID,
			&m.BankAccountID,
			&m.CreatedAt,
		); err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	var token *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		t := pagination.EncodeToken(last.CreatedAt, last.TransactionID)
		token = &t
	}

	return mapping.ToDomainTransactionSlice(ms), token, nil
}
