package repositories

import (
	"context"

	"github.com/fintracker/personal_finance_app/internal/core/domain"
)

// LedgerWriter executes the atomic units of the ledger core: one transaction
// append plus at most one conditional entity update (the EMI conversion also
// creates a loan), committed together or not at all. Each entity argument
// carries the new field values and the version read before validation; a
// concurrent writer surfaces as apperrors.ErrConflict and nothing is applied.
type LedgerWriter interface {
	// RecordTransaction appends a transaction with no entity side effect
	// (plain income/expense recording).
	RecordTransaction(ctx context.Context, txn domain.Transaction) error

	// RecordWithCreditCard appends a transaction and conditionally writes the
	// card's balance buckets (payment, card spend).
	RecordWithCreditCard(ctx context.Context, txn domain.Transaction, card domain.CreditCard) error

	// RecordWithLoan appends a transaction and conditionally writes the loan's
	// installment state (EMI payment).
	RecordWithLoan(ctx context.Context, txn domain.Transaction, loan domain.Loan) error

	// RecordWithAsset appends a transaction and conditionally writes the
	// asset's value fields (invest, withdraw).
	RecordWithAsset(ctx context.Context, txn domain.Transaction, asset domain.Asset) error

	// RecordConversion appends a transaction, creates the loan and
	// conditionally writes the card in one unit (credit-card-to-EMI).
	// No interleaving reader may observe the loan without the card debit.
	RecordConversion(ctx context.Context, txn domain.Transaction, card domain.CreditCard, loan domain.Loan) error
}

// LedgerRepositoryFacade is the persistence surface the ledger service
// depends on.
type LedgerRepositoryFacade interface {
	LedgerWriter
}
