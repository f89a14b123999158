package models

import "github.com/shopspring/decimal"

// CreditCard is the persistence model for the credit_cards table.
type CreditCard struct {
	CreditCardID     string          `json:"creditCardID"`
	Name             string          `json:"name"`
	TotalLimit       decimal.Decimal `json:"totalLimit"`
	UsedAmount       decimal.Decimal `json:"usedAmount"`
	DueAmount        decimal.Decimal `json:"dueAmount"`
	EMIBlockedAmount decimal.Decimal `json:"emiBlockedAmount"`
	AuditFields
	Version int64 `json:"version"`
}
