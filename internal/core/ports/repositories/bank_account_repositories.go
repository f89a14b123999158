package repositories

import (
	"context"

	"github.com/fintracker/personal_finance_app/internal/core/domain"
)

// BankAccountReader defines read operations for bank account data
type BankAccountReader interface {
	// FindBankAccountByID retrieves a specific bank account by its unique identifier.
	FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)

	// ListBankAccounts retrieves all bank accounts, newest first.
	ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error)
}

// BankAccountWriter defines write operations for bank account data
type BankAccountWriter interface {
	// SaveBankAccount persists a new bank account.
	SaveBankAccount(ctx context.Context, account domain.BankAccount) error
}

// BankAccountRepositoryFacade combines all bank-account repository interfaces
type BankAccountRepositoryFacade interface {
	BankAccountReader
	BankAccountWriter
}
