package services

import (
	"context"

	"github.com/fintracker/personal_finance_app/internal/core/domain"
	"github.com/fintracker/personal_finance_app/internal/dto"
)

// CreditCardReaderSvc defines read operations for credit card data
type CreditCardReaderSvc interface {
	// GetCreditCardByID retrieves a specific credit card by its unique identifier.
	GetCreditCardByID(ctx context.Context, creditCardID string) (*domain.CreditCard, error)

	// ListCreditCards retrieves all credit cards.
	ListCreditCards(ctx context.Context) ([]domain.CreditCard, error)
}

// CreditCardWriterSvc defines write operations for credit card data
type CreditCardWriterSvc interface {
	// CreateCreditCard persists a new credit card with zeroed balances.
	// Balances are only ever changed by ledger operations.
	CreateCreditCard(ctx context.Context, req dto.CreateCreditCardRequest) (*domain.CreditCard, error)
}

// CreditCardSvcFacade combines all credit-card-related service interfaces
type CreditCardSvcFacade interface {
	CreditCardReaderSvc
	CreditCardWriterSvc
}
