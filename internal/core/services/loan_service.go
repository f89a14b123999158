package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fintracker/personal_finance_app/internal/apperrors"
	"github.com/fintracker/personal_finance_app/internal/core/domain"
	portsrepo "github.com/fintracker/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/fintracker/personal_finance_app/internal/core/ports/services"
	"github.com/fintracker/personal_finance_app/internal/dto"
	"github.com/fintracker/personal_finance_app/internal/middleware"
)

var (
	ErrNonPositivePrincipal = fmt.Errorf("principal must be positive: %w", apperrors.ErrValidation)
	ErrNonPositiveEMI       = fmt.Errorf("emi amount must be positive: %w", apperrors.ErrValidation)
)

// loanService provides loan CRUD. Installment state is only moved by ledger
// operations (payLoanEmi) or created whole by the EMI conversion.
type loanService struct {
	repo portsrepo.LoanRepositoryFacade
}

// NewLoanService creates a new loan service.
func NewLoanService(repo portsrepo.LoanRepositoryFacade) portssvc.LoanSvcFacade {
	return &loanService{repo: repo}
}

var _ portssvc.LoanSvcFacade = (*loanService)(nil)

func (s *loanService) CreateLoan(ctx context.Context, req dto.CreateLoanRequest) (*domain.Loan, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Principal.IsPositive() {
		return nil, ErrNonPositivePrincipal
	}
	if !req.EMIAmount.IsPositive() {
		return nil, ErrNonPositiveEMI
	}

	now := time.Now()
	loan := domain.Loan{
		LoanID:            uuid.NewString(),
		Name:              req.Name,
		Principal:         req.Principal,
		EMIAmount:         req.EMIAmount,
		TotalMonths:       req.TotalMonths,
		RemainingMonths:   req.TotalMonths,
		OutstandingAmount: req.Principal,
		IsActive:          true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
		Versioned: domain.Versioned{Version: 1},
	}

	if err := s.repo.SaveLoan(ctx, loan); err != nil {
		logger.Error("Failed to save loan in repository", slog.String("error", err.Error()), slog.String("loan_id", loan.LoanID))
		return nil, err
	}

	logger.Info("Loan created", slog.String("loan_id", loan.LoanID))
	return &loan, nil
}

func (s *loanService) GetLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	loan, err := s.repo.FindLoanByID(ctx, loanID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find loan by ID in repository", slog.String("error", err.Error()), slog.String("loan_id", loanID))
		}
		return nil, err
	}
	return loan, nil
}

func (s *loanService) ListLoans(ctx context.Context, activeOnly bool) ([]domain.Loan, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	loans, err := s.repo.ListLoans(ctx, activeOnly)
	if err != nil {
		logger.Error("Failed to list loans from repository", slog.String("error", err.Error()), slog.Bool("active_only", activeOnly))
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	if loans == nil {
		return []domain.Loan{}, nil
	}
	return loans, nil
}
