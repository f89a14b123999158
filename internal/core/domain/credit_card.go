package domain

import "github.com/shopspring/decimal"

// CreditCard represents a credit card with denormalized balance buckets.
//
// UsedAmount tracks cumulative uncleared card spend, DueAmount the portion
// currently owed, and EMIBlockedAmount the spend converted to a loan: removed
// from revolving due but still counted against the limit. The buckets only
// change through ledger operations so the transaction log and the snapshot
// never diverge.
type CreditCard struct {
	CreditCardID     string          `json:"creditCardID"` // Primary Key (UUID)
	Name             string          `json:"name"`
	TotalLimit       decimal.Decimal `json:"totalLimit"`
	UsedAmount       decimal.Decimal `json:"usedAmount"`
	DueAmount        decimal.Decimal `json:"dueAmount"`
	EMIBlockedAmount decimal.Decimal `json:"emiBlockedAmount"`
	AuditFields
	Versioned
}

// AvailableCredit returns the credit still spendable on the card, floored at
// zero. Overspend beyond the limit is tolerated (soft target), so the derived
// value clamps instead of going negative.
func (c CreditCard) AvailableCredit() decimal.Decimal {
	available := c.TotalLimit.Sub(c.UsedAmount).Sub(c.EMIBlockedAmount)
	if available.IsNegative() {
		return decimal.Zero
	}
	return available
}
