package dto

import (
	"time"

	"github.com/fintracker/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCreditCardRequest defines the payload for adding a credit card.
// Balances start at zero; they only change through ledger operations.
type CreateCreditCardRequest struct {
	Name       string          `json:"name" binding:"required"`
	TotalLimit decimal.Decimal `json:"totalLimit" binding:"required,dpositive"`
}

// PayCreditCardRequest defines the payload for paying down a card's due amount.
type PayCreditCardRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required,dpositive"`
	BankAccountID string          `json:"bankAccountID" binding:"required"`
}

// ConvertToEMIRequest defines the payload for converting card due to a loan.
type ConvertToEMIRequest struct {
	Amount       decimal.Decimal `json:"amount" binding:"required,dpositive"`
	EMIAmount    decimal.Decimal `json:"emiAmount" binding:"required,dpositive"`
	TenureMonths int             `json:"tenureMonths" binding:"required,gt=0"`
}

// RecordCardSpendRequest defines the payload for a generic spend charged to a card.
type RecordCardSpendRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required,dpositive"`
	Category string          `json:"category" binding:"required"`
}

// CreditCardResponse defines the data returned for a credit card.
type CreditCardResponse struct {
	CreditCardID     string          `json:"creditCardID"`
	Name             string          `json:"name"`
	TotalLimit       decimal.Decimal `json:"totalLimit"`
	UsedAmount       decimal.Decimal `json:"usedAmount"`
	DueAmount        decimal.Decimal `json:"dueAmount"`
	EMIBlockedAmount decimal.Decimal `json:"emiBlockedAmount"`
	AvailableCredit  decimal.Decimal `json:"availableCredit"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ToCreditCardResponse converts a domain.CreditCard to CreditCardResponse DTO.
func ToCreditCardResponse(c *domain.CreditCard) CreditCardResponse {
	return CreditCardResponse{
		CreditCardID:     c.CreditCardID,
		Name:             c.Name,
		TotalLimit:       c.TotalLimit,
		UsedAmount:       c.UsedAmount,
		DueAmount:        c.DueAmount,
		EMIBlockedAmount: c.EMIBlockedAmount,
		AvailableCredit:  c.AvailableCredit(),
		CreatedAt:        c.CreatedAt,
	}
}

// ToCreditCardResponses converts a slice of domain.CreditCard to DTOs.
func ToCreditCardResponses(cards []domain.CreditCard) []CreditCardResponse {
	responses := make([]CreditCardResponse, len(cards))
	for i := range cards {
		responses[i] = ToCreditCardResponse(&cards[i])
	}
	return responses
}
