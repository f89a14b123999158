package dto

import (
	"github.com/fintracker/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerSummaryResponse defines the all-time income/expense roll-up.
type LedgerSummaryResponse struct {
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpense     decimal.Decimal `json:"totalExpense"`
	NetBalance       decimal.Decimal `json:"netBalance"`
	TransactionCount int64           `json:"transactionCount"`
}

// MonthlyTotalResponse defines one month's expense total.
type MonthlyTotalResponse struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// CategoryTotalResponse defines one category's expense total within a month.
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// PortfolioSummaryResponse defines the asset and loan position roll-up.
type PortfolioSummaryResponse struct {
	TotalInvested     decimal.Decimal `json:"totalInvested"`
	TotalCurrentValue decimal.Decimal `json:"totalCurrentValue"`
	TotalMonthlyEMI   decimal.Decimal `json:"totalMonthlyEMI"`
	ActiveLoanCount   int64           `json:"activeLoanCount"`
}

// ToLedgerSummaryResponse converts domain.LedgerSummary to its DTO.
func ToLedgerSummaryResponse(s *domain.LedgerSummary) LedgerSummaryResponse {
	return LedgerSummaryResponse{
		TotalIncome:      s.TotalIncome,
		TotalExpense:     s.TotalExpense,
		NetBalance:       s.Balance,
		TransactionCount: s.TransactionCount,
	}
}

// ToMonthlyTotalResponses converts a slice of domain.MonthlyTotal to DTOs.
func ToMonthlyTotalResponses(totals []domain.MonthlyTotal) []MonthlyTotalResponse {
	responses := make([]MonthlyTotalResponse, len(totals))
	for i, t := range totals {
		responses[i] = MonthlyTotalResponse{Month: t.Month, Total: t.Total}
	}
	return responses
}

// ToCategoryTotalResponses converts a slice of domain.CategoryTotal to DTOs.
func ToCategoryTotalResponses(totals []domain.CategoryTotal) []CategoryTotalResponse {
	responses := make([]CategoryTotalResponse, len(totals))
	for i, t := range totals {
		responses[i] = CategoryTotalResponse{Category: t.Category, Total: t.Total}
	}
	return responses
}

// ToPortfolioSummaryResponse converts domain.PortfolioSummary to its DTO.
func ToPortfolioSummaryResponse(s *domain.PortfolioSummary) PortfolioSummaryResponse {
	return PortfolioSummaryResponse{
		TotalInvested:     s.TotalInvested,
		TotalCurrentValue: s.TotalCurrentValue,
		TotalMonthlyEMI:   s.TotalMonthlyEMI,
		ActiveLoanCount:   s.ActiveLoanCount,
	}
}
