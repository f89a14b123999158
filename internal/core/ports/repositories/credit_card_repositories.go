package repositories

import (
	"context"

	"github.com/fintracker/personal_finance_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// CreditCardReader defines read operations for credit card data
type CreditCardReader interface {
	// FindCreditCardByID retrieves a specific credit card by its unique identifier.
	FindCreditCardByID(ctx context.Context, creditCardID string) (*domain.CreditCard, error)

	// ListCreditCards retrieves all credit cards, newest first.
	ListCreditCards(ctx context.Context) ([]domain.CreditCard, error)
}

// CreditCardWriter defines write operations for credit card data
type CreditCardWriter interface {
	// SaveCreditCard persists a new credit card.
	SaveCreditCard(ctx context.Context, card domain.CreditCard) error
}

// CreditCardTransactionSupport defines conditional updates usable inside a DB transaction
type CreditCardTransactionSupport interface {
	// UpdateCreditCardBalancesInTx writes the card's balance buckets, guarded by
	// the version the caller read. Returns apperrors.ErrConflict when the row
	// version no longer matches.
	UpdateCreditCardBalancesInTx(ctx context.Context, tx pgx.Tx, card domain.CreditCard) error
}

// CreditCardRepositoryFacade combines all credit-card repository interfaces
type CreditCardRepositoryFacade interface {
	CreditCardReader
	CreditCardWriter
	CreditCardTransactionSupport
}
