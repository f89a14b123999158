package pgsql

import (
	"context"
	"fmt"

	"github.com/fintracker/personal_finance_app/internal/core/domain"
	portsrepo "github.com/fintracker/personal_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReportingRepository computes dashboard aggregates in SQL. It reads the
// transaction log and entity tables and never writes.
type PgxReportingRepository struct {
	pool *pgxpool.Pool
}

// newPgxReportingRepository creates a new reporting repository.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{pool: pool}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetLedgerSummary returns total income, total expense and transaction count
// over the whole log.
func (r *PgxReportingRepository) GetLedgerSummary(ctx context.Context) (*domain.LedgerSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0) AS total_income,
			COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0) AS total_expense,
			COUNT(*) AS transaction_count
		FROM transactions;
	`
	var summary domain.LedgerSummary
	err := r.pool.QueryRow(ctx, query).Scan(
		&summary.TotalIncome,
		&summary.TotalExpense,
		&summary.TransactionCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger summary: %w", err)
	}
	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	return &summary, nil
}

// GetMonthlyExpenseTotals returns expense totals per calendar month, oldest first.
func (r *PgxReportingRepository) GetMonthlyExpenseTotals(ctx context.Context) ([]domain.MonthlyTotal, error) {
	query := `
		SELECT to_char(created_at, 'YYYY-MM') AS month, SUM(amount) AS total
		FROM transactions
		WHERE type = 'expense'
		GROUP BY month
		ORDER BY month;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly expense totals: %w", err)
	}
	defer rows.Close()

	var totals []domain.MonthlyTotal
	for rows.Next() {
		var t domain.MonthlyTotal
		if err := rows.Scan(&t.Month, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan monthly total row: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly total rows: %w", err)
	}
	return totals, nil
}

// GetCategoryTotals returns per-category expense totals for one month,
// largest first.
func (r *PgxReportingRepository) GetCategoryTotals(ctx context.Context, month string) ([]domain.CategoryTotal, error) {
	query := `
		SELECT category, SUM(amount) AS total
		FROM transactions
		WHERE type = 'expense' AND to_char(created_at, 'YYYY-MM') = $1
		GROUP BY category
		ORDER BY total DESC, category;
	`
	rows, err := r.pool.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query category totals: %w", err)
	}
	defer rows.Close()

	var totals []domain.CategoryTotal
	for rows.Next() {
		var t domain.CategoryTotal
		if err := rows.Scan(&t.Category, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan category total row: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category total rows: %w", err)
	}
	return totals, nil
}

// GetPortfolioSummary returns asset totals plus the monthly EMI load and
// count of active loans.
func (r *PgxReportingRepository) GetPortfolioSummary(ctx context.Context) (*domain.PortfolioSummary, error) {
	var summary domain.PortfolioSummary

	assetQuery := `
		SELECT COALESCE(SUM(invested_amount), 0), COALESCE(SUM(current_value), 0)
		FROM assets;
	`
	if err := r.pool.QueryRow(ctx, assetQuery).Scan(&summary.TotalInvested, &summary.TotalCurrentValue); err != nil {
		return nil, fmt.Errorf("failed to query asset totals: %w", err)
	}

	loanQuery := `
		SELECT COALESCE(SUM(emi_amount), 0), COUNT(*)
		FROM loans
		WHERE is_active;
	`
	if err := r.pool.QueryRow(ctx, loanQuery).Scan(&summary.TotalMonthlyEMI, &summary.ActiveLoanCount); err != nil {
		return nil, fmt.Errorf("failed to query active loan totals: %w", err)
	}

	return &summary, nil
}
