package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is money coming in or going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// TransactionSource identifies where the money moved from (or to).
type TransactionSource string

const (
	SourceCash       TransactionSource = "cash"
	SourceBank       TransactionSource = "bank"
	SourceCreditCard TransactionSource = "credit_card"
)

// Categories written by ledger operations. Generic income/expense categories
// are free text; these values are reserved for the operations that pair a
// transaction with an entity update.
const (
	CategoryCreditCardPayment = "credit_card_payment"
	CategoryCCToEMIConversion = "cc_to_emi_conversion"
	CategoryLoanEMI           = "loan_emi"
	CategoryAssetInvestment   = "asset_investment"
	CategoryAssetWithdrawal   = "asset_withdrawal"
)

// Transaction is one immutable row of the audit trail. It optionally
// back-references the credit card, asset or bank account it affected; the
// reference is informational, the transaction never owns the entity.
// Transactions are append-only: no update or delete path exists anywhere.
type Transaction struct {
	TransactionID string            `json:"transactionID"` // Primary Key (UUID)
	Amount        decimal.Decimal   `json:"amount"`        // Always positive
	Type          TransactionType   `json:"type"`
	Source        TransactionSource `json:"source"`
	Category      string            `json:"category"`
	AssetID       *string           `json:"assetID,omitempty"`
	CreditCardID  *string           `json:"creditCardID,omitempty"`
	BankAccountID *string           `json:"bankAccountID,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// ValidType reports whether t is one of the known transaction types.
func ValidType(t TransactionType) bool {
	return t == Income || t == Expense
}

// ValidSource reports whether s is one of the known transaction sources.
func ValidSource(s TransactionSource) bool {
	return s == SourceCash || s == SourceBank || s == SourceCreditCard
}
