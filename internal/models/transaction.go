package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persistence model for the append-only transactions table.
type Transaction struct {
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
