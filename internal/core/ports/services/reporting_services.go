package services

import (
	"context"

	"github.com/fintracker/personal_finance_app/internal/core/domain"
)

// ReportingSvc defines operations for generating financial reports
type ReportingSvc interface {
	// GetLedgerSummary returns the all-time income/expense roll-up.
	GetLedgerSummary(ctx context.Context) (*domain.LedgerSummary, error)

	// GetMonthlyExpenseTotals returns expense totals grouped by calendar month.
	GetMonthlyExpenseTotals(ctx context.Context) ([]domain.MonthlyTotal, error)

	// GetCategoryTotals returns per-category expense totals for one month ("2006-01").
	GetCategoryTotals(ctx context.Context, month string) ([]domain.CategoryTotal, error)

	// GetPortfolioSummary returns asset and active-loan aggregates.
	GetPortfolioSummary(ctx context.Context) (*domain.PortfolioSummary, error)
}
