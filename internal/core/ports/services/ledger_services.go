package services

import (
	"context"

	"github.com/fintracker/personal_finance_app/internal/core/domain"
	"github.com/fintracker/personal_finance_app/internal/dto"
)

// LedgerSvc defines the atomic ledger operations. Every method validates its
// input, appends exactly one transaction, and applies at most one conditional
// entity update; either everything commits or nothing does.
type LedgerSvc interface {
	// RecordTransaction appends a plain income or expense entry. When the
	// source is a credit card and a card is referenced, the spend is routed
	// through the card so its used and due amounts move with the entry.
	RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// RecordCardSpend charges an expense to a credit card, raising its used
	// and due amounts together.
	RecordCardSpend(ctx context.Context, creditCardID string, req dto.RecordCardSpendRequest) (*domain.Transaction, *domain.CreditCard, error)

	// PayCreditCard pays down a card's due amount from a bank account.
	PayCreditCard(ctx context.Context, creditCardID string, req dto.PayCreditCardRequest) (*domain.Transaction, *domain.CreditCard, error)

	// ConvertCreditCardToEMI moves part of a card's due into a new loan,
	// blocking that slice of the limit until the loan is repaid.
	ConvertCreditCardToEMI(ctx context.Context, creditCardID string, req dto.ConvertToEMIRequest) (*domain.Transaction, *domain.CreditCard, *domain.Loan, error)

	// PayLoanEMI pays one installment of a loan from a bank account.
	PayLoanEMI(ctx context.Context, loanID string, req dto.PayLoanEMIRequest) (*domain.Transaction, *domain.Loan, error)

	// InvestInAsset moves money from a bank account into an asset, raising
	// both its invested amount and current value.
	InvestInAsset(ctx context.Context, assetID string, req dto.AssetInvestRequest) (*domain.Transaction, *domain.Asset, error)

	// WithdrawFromAsset realizes value out of an asset into a bank account.
	WithdrawFromAsset(ctx context.Context, assetID string, req dto.AssetWithdrawRequest) (*domain.Transaction, *domain.Asset, error)
}
