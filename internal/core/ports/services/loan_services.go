package services

import (
	"context"

	"github.com/fintracker/personal_finance_app/internal/core/domain"
	"github.com/fintracker/personal_finance_app/internal/dto"
)

// LoanReaderSvc defines read operations for loan data
type LoanReaderSvc interface {
	// GetLoanByID retrieves a specific loan by its unique identifier.
	GetLoanByID(ctx context.Context, loanID string) (*domain.Loan, error)

	// ListLoans retrieves loans, optionally restricted to active ones.
	ListLoans(ctx context.Context, activeOnly bool) ([]domain.Loan, error)
}

// LoanWriterSvc defines write operations for loan data
type LoanWriterSvc interface {
	// CreateLoan persists a new loan with the full schedule remaining.
	CreateLoan(ctx context.Context, req dto.CreateLoanRequest) (*domain.Loan, error)
}

// LoanSvcFacade combines all loan-related service interfaces
type LoanSvcFacade interface {
	LoanReaderSvc
	LoanWriterSvc
}
