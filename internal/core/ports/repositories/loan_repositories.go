package repositories

import (
	"context"

	"github.com/fintracker/personal_finance_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// LoanReader defines read operations for loan data
type LoanReader interface {
	// FindLoanByID retrieves a specific loan by its unique identifier.
	FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error)

	// ListLoans retrieves loans, newest first. When activeOnly is set, loans
	// with no remaining installments are filtered out.
	ListLoans(ctx context.Context, activeOnly bool) ([]domain.Loan, error)
}

// LoanWriter defines write operations for loan data
type LoanWriter interface {
	// SaveLoan persists a new loan.
	SaveLoan(ctx context.Context, loan domain.Loan) error
}

// LoanTransactionSupport defines conditional updates usable inside a DB transaction
type LoanTransactionSupport interface {
	// SaveLoanInTx persists a new loan within an existing transaction
	// (credit-card-to-EMI conversion creates the loan alongside the card update).
	SaveLoanInTx(ctx context.Context, tx pgx.Tx, loan domain.Loan) error

	// UpdateLoanScheduleInTx writes the loan's installment state, guarded by the
	// version the caller read. Returns apperrors.ErrConflict on version mismatch.
	UpdateLoanScheduleInTx(ctx context.Context, tx pgx.Tx, loan domain.Loan) error
}

// LoanRepositoryFacade combines all loan repository interfaces
type LoanRepositoryFacade interface {
	LoanReader
	LoanWriter
	LoanTransactionSupport
}
