package domain

import "github.com/shopspring/decimal"

// Loan represents an installment loan, either created directly or produced by
// a credit-card-to-EMI conversion. Interest is not modeled: an EMI payment
// decrements RemainingMonths and reduces OutstandingAmount by EMIAmount,
// floored at zero.
type Loan struct {
	LoanID            string          `json:"loanID"` // Primary Key (UUID)
	Name              string          `json:"name"`
	Principal         decimal.Decimal `json:"principal"`
	EMIAmount         decimal.Decimal `json:"emiAmount"`
	TotalMonths       int             `json:"totalMonths"`
	RemainingMonths   int             `json:"remainingMonths"`
	OutstandingAmount decimal.Decimal `json:"outstandingAmount"`
	IsActive          bool            `json:"isActive"` // Always RemainingMonths > 0
	AuditFields
	Versioned
}
