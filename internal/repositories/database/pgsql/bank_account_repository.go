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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBankAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxBankAccountRepository creates a new repository for bank account data.
func newPgxBankAccountRepository(pool *pgxpool.Pool) portsrepo.BankAccountRepositoryFacade {
	return &PgxBankAccountRepository{pool: pool}
}

var _ portsrepo.BankAccountRepositoryFacade = (*PgxBankAccountRepository)(nil)

// SaveBankAccount inserts a new bank account.
func (r *PgxBankAccountRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	m := mapping.ToModelBankAccount(account)

	query := `
		INSERT INTO bank_accounts (bank_account_id, name, account_type, notes, created_at, last_updated_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		m.BankAccountID,
		m.Name,
		m.AccountType,
		m.Notes,
		m.CreatedAt,
		m.LastUpdatedAt,
		m.Version,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: bank account with ID %s already exists", apperrors.ErrDuplicate, m.BankAccountID)
		}
		return fmt.Errorf("failed to save bank account %s: %w", m.BankAccountID, err)
	}
	return nil
}

// FindBankAccountByID retrieves a bank account by its ID.
func (r *PgxBankAccountRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	query := `
		SELECT bank_account_id, name, account_type, notes, created_at, last_updated_at, version
		FROM bank_accounts
		WHERE bank_account_id = $1;
	`
	var m models.BankAccount
	err := r.pool.QueryRow(ctx, query, bankAccountID).Scan(
		&m.BankAccountID,
		&m.Name,
		&m.AccountType,
		&m.Notes,
		&m.CreatedAt,
		&m.LastUpdatedAt,
		&m.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank account by ID %s: %w", bankAccountID, err)
	}

	d := mapping.ToDomainBankAccount(m)
	return &d, nil
}

// ListBankAccounts retrieves all bank accounts, newest first.
func (r *PgxBankAccountRepository) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	query := `
		SELECT bank_account_id, name, account_type, notes, created_at, last_updated_at, version
		FROM bank_accounts
		ORDER BY created_at DESC, bank_account_id DESC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank accounts: %w", err)
	}
	defer rows.Close()

	var ms []models.BankAccount
	for rows.Next() {
		var m models.BankAccount
		if err := rows.Scan(
			&m.BankAccountID,
			&m.Name,
			&m.AccountType,
			&m.Notes,
			&m.CreatedAt,
			&m.LastUpdatedAt,
			&m.Version,
		); err != nil {
			return nil, fmt.Errorf("failed to scan bank account row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank account rows: %w", err)
	}

	return mapping.ToDomainBankAccountSlice(ms), nil
}
