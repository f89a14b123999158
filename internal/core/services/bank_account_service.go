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

// bankAccountService provides bank account CRUD on top of the repository.
type bankAccountService struct {
	repo portsrepo.BankAccountRepositoryFacade
}

// NewBankAccountService creates a new bank account service.
func NewBankAccountService(repo portsrepo.BankAccountRepositoryFacade) portssvc.BankAccountSvcFacade {
	return &bankAccountService{repo: repo}
}

var _ portssvc.BankAccountSvcFacade = (*bankAccountService)(nil)

func (s *bankAccountService) CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest) (*domain.BankAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	account := domain.BankAccount{
		BankAccountID: uuid.NewString(),
		Name:          req.Name,
		AccountType:   req.AccountType,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
		Versioned: domain.Versioned{Version: 1},
	}

	if err := s.repo.SaveBankAccount(ctx, account); err != nil {
		logger.Error("Failed to save bank account in repository", slog.String("error", err.Error()), slog.String("bank_account_id", account.BankAccountID))
		return nil, err
	}

	logger.Info("Bank account created", slog.String("bank_account_id", account.BankAccountID))
	return &account, nil
}

func (s *bankAccountService) GetBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.repo.FindBankAccountByID(ctx, bankAccountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find bank account by ID in repository", slog.String("error", err.Error()), slog.String("bank_account_id", bankAccountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *bankAccountService) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.repo.ListBankAccounts(ctx)
	if err != nil {
		logger.Error("Failed to list bank accounts from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}
	if accounts == nil {
		return []domain.BankAccount{}, nil
	}
	return accounts, nil
}
