package services

import (
	"context"

	"github.com/fintracker/personal_finance_app/internal/core/domain"
	"github.com/fintracker/personal_finance_app/internal/dto"
)

// BankAccountReaderSvc defines read operations for bank account data
type BankAccountReaderSvc interface {
	// GetBankAccountByID retrieves a specific bank account by its unique identifier.
	GetBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)

	// ListBankAccounts retrieves all bank accounts.
	ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error)
}

// BankAccountWriterSvc defines write operations for bank account data
type BankAccountWriterSvc interface {
	// CreateBankAccount persists a new bank account.
	CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest) (*domain.BankAccount, error)
}

// BankAccountSvcFacade combines all bank-account-related service interfaces
// This is a facade for clients that need access to all operations
type BankAccountSvcFacade interface {
	BankAccountReaderSvc
	BankAccountWriterSvc
}
