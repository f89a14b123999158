package repositories

import (
	"context"

	"github.com/fintracker/personal_finance_app/internal/core/domain"
)

// ReportingRepository defines read-only aggregation over the ledger for
// dashboards and analytics. It never mutates state.
type ReportingRepository interface {
	// GetLedgerSummary returns total income, total expense and transaction count.
	GetLedgerSummary(ctx context.Context) (*domain.LedgerSummary, error)

	// GetMonthlyExpenseTotals returns expense totals grouped by calendar month.
	GetMonthlyExpenseTotals(ctx context.Context) ([]domain.MonthlyTotal, error)

	// GetCategoryTotals returns expense totals per category for one month ("2006-01").
	GetCategoryTotals(ctx context.Context, month string) ([]domain.CategoryTotal, error)

	// GetPortfolioSummary returns asset and active-loan aggregates.
	GetPortfolioSummary(ctx context.Context) (*domain.PortfolioSummary, error)
}
