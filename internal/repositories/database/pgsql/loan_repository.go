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

const loanInsertQuery = `
	INSERT INTO loans (loan_id, name, principal, emi_amount, total_months, remaining_months, outstanding_amount, is_active, created_at, last_updated_at, version)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`

type PgxLoanRepository struct {
	pool *pgxpool.Pool
}

// newPgxLoanRepository creates a new repository for loan data.
func newPgxLoanRepository(pool *pgxpool.Pool) portsrepo.LoanRepositoryFacade {
	return &PgxLoanRepository{pool: pool}
}

var _ portsrepo.LoanRepositoryFacade = (*PgxLoanRepository)(nil)

func loanInsertArgs(m models.Loan) []any {
	return []any{
		m.LoanID,
		m.Name,
		m.Principal,
		m.EMIAmount,
		m.TotalMonths,
		m.RemainingMonths,
		m.OutstandingAmount,
		m.IsActive,
		m.CreatedAt,
		m.LastUpdatedAt,
		m.Version,
	}
}

func mapLoanInsertError(err error, loanID string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
		return fmt.Errorf("%w: loan with ID %s already exists", apperrors.ErrDuplicate, loanID)
	}
	return fmt.Errorf("failed to save loan %s: %w", loanID, err)
}

// SaveLoan inserts a new loan.
func (r *PgxLoanRepository) SaveLoan(ctx context.Context, loan domain.Loan) error {
	m := mapping.ToModelLoan(loan)
	if _, err := r.pool.Exec(ctx, loanInsertQuery, loanInsertArgs(m)...); err != nil {
		return mapLoanInsertError(err, m.LoanID)
	}
	return nil
}

// SaveLoanInTx inserts a new loan within an existing transaction. Used by the
// EMI conversion so the loan lands in the same unit as the card debit.
func (r *PgxLoanRepository) SaveLoanInTx(ctx context.Context, tx pgx.Tx, loan domain.Loan) error {
	m := mapping.ToModelLoan(loan)
	if _, err := tx.Exec(ctx, loanInsertQuery, loanInsertArgs(m)...); err != nil {
		return mapLoanInsertError(err, m.LoanID)
	}
	return nil
}

// FindLoanByID retrieves a loan by its ID.
func (r *PgxLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	query := `
		SELECT loan_id, name, principal, emi_amount, total_months, remaining_months, outstanding_amount, is_active, created_at, last_updated_at, version
		FROM loans
		WHERE loan_id = $1;
	`
	var m models.Loan
	err := r.pool.QueryRow(ctx, query, loanID).Scan(
		&m.LoanID,
		&m.Name,
		&m.Principal,
		&m.EMIAmount,
		&m.TotalMonths,
		&m.RemainingMonths,
		&m.OutstandingAmount,
		&m.IsActive,
		&m.CreatedAt,
		&m.LastUpdatedAt,
		&m.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find loan by ID %s: %w", loanID, err)
	}

	d := mapping.ToDomainLoan(m)
	return &d, nil
}

// ListLoans retrieves loans, newest first, optionally only active ones.
func (r *PgxLoanRepository) ListLoans(ctx context.Context, activeOnly bool) ([]domain.Loan, error) {
	query := `
		SELECT loan_id, name, principal, emi_amount, total_months, remaining_months, outstanding_amount, is_active, created_at, last_updated_at, version
		FROM loans
	`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY created_at DESC, loan_id DESC;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query loans: %w", err)
	}
	defer rows.Close()

	var ms []models.Loan
	for rows.Next() {
		var m models.Loan
		if err := rows.Scan(
			&m.LoanID,
			&m.Name,
			&m.Principal,
			&m.EMIAmount,
			&m.TotalMonths,
			&m.RemainingMonths,
			&m.OutstandingAmount,
			&m.IsActive,
			&m.CreatedAt,
			&m.LastUpdatedAt,
			&m.Version,
		); err != nil {
			return nil, fmt.Errorf("failed to scan loan row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loan rows: %w", err)
	}

	return mapping.ToDomainLoanSlice(ms), nil
}

// UpdateLoanScheduleInTx writes the loan's installment state within an
// existing transaction, guarded by the version the caller read.
func (r *PgxLoanRepository) UpdateLoanScheduleInTx(ctx context.Context, tx pgx.Tx, loan domain.Loan) error {
	query := `
		UPDATE loans
		SET remaining_months = $1, outstanding_amount = $2, is_active = $3, last_updated_at = $4, version = version + 1
		WHERE loan_id = $5 AND version = $6;
	`
	tag, err := tx.Exec(ctx, query,
		loan.RemainingMonths,
		loan.OutstandingAmount,
		loan.IsActive,
		loan.LastUpdatedAt,
		loan.LoanID,
		loan.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update loan %s: %w", loan.LoanID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewConflictError(fmt.Sprintf("loan %s was modified concurrently", loan.LoanID))
	}
	return nil
}
