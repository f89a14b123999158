package dto

import (
	"time"

	"github.com/fintracker/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the payload for recording a plain
// income or expense entry. Ledger operations that move entity balances
// have their own endpoints and never come through this payload.
type CreateTransactionRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required,dpositive"`
	Type          string          `json:"type" binding:"required,oneof=income expense"`
	Source        string          `json:"source" binding:"required,oneof=cash bank credit_card"`
	Category      string          `json:"category" binding:"required"`
	BankAccountID *string         `json:"bankAccountID"`
	CreditCardID  *string         `json:"creditCardID"`
}

// ListTransactionsRequest defines query parameters for listing transactions.
type ListTransactionsRequest struct {
	Type      *string `form:"type" binding:"omitempty,oneof=income expense"`
	Limit     int     `form:"limit,default=50" binding:"omitempty,gt=0,lte=200"`
	NextToken *string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Source        string          `json:"source"`
	Category      string          `json:"category"`
	AssetID       *string         `json:"assetID,omitempty"`
	CreditCardID  *string         `json:"creditCardID,omitempty"`
	BankAccountID *string         `json:"bankAccountID,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListTransactionsResponse wraps a page of entries with the cursor for the next.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Amount:        t.Amount,
		Type:          string(t.Type),
		Source:        string(t.Source),
		Category:      t.Category,
		AssetID:       t.AssetID,
		CreditCardID:  t.CreditCardID,
		BankAccountID: t.BankAccountID,
		CreatedAt:     t.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to DTOs.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
