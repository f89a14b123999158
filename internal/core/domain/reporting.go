package domain

import "github.com/shopspring/decimal"

// LedgerSummary aggregates the whole transaction log for the dashboard.
type LedgerSummary struct {
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpense     decimal.Decimal `json:"totalExpense"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int64           `json:"transactionCount"`
}

// MonthlyTotal is the expense total for one calendar month.
type MonthlyTotal struct {
	Month string          `json:"month"` // "2006-01"
	Total decimal.Decimal `json:"total"`
}

// CategoryTotal is the expense total for one category within a month.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// PortfolioSummary aggregates assets and active loans for the overview pages.
type PortfolioSummary struct {
	TotalInvested     decimal.Decimal `json:"totalInvested"`
	TotalCurrentValue decimal.Decimal `json:"totalCurrentValue"`
	TotalMonthlyEMI   decimal.Decimal `json:"totalMonthlyEMI"`
	ActiveLoanCount   int64           `json:"activeLoanCount"`
}
