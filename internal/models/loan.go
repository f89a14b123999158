package models

import "github.com/shopspring/decimal"

// Loan is the persistence model for the loans table.
type Loan struct {
	LoanID            string          `json:"loanID"`
	Name              string          `json:"name"`
	Principal         decimal.Decimal `json:"principal"`
	EMIAmount         decimal.Decimal `json:"emiAmount"`
	TotalMonths       int             `json:"totalMonths"`
	RemainingMonths   int             `json:"remainingMonths"`
	OutstandingAmount decimal.Decimal `json:"outstandingAmount"`
	IsActive          bool            `json:"isActive"`
	AuditFields
	Version int64 `json:"version"`
}
