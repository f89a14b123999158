package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintracker/personal_finance_app/internal/apperrors"
	"github.com/fintracker/personal_finance_app/internal/core/domain"
	portsrepo "github.com/fintracker/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/fintracker/personal_finance_app/internal/core/ports/services"
	"github.com/fintracker/personal_finance_app/internal/middleware"
)

// ErrInvalidMonth is returned when a month filter does not parse as "2006-01".
var ErrInvalidMonth = fmt.Errorf("month must be formatted as YYYY-MM: %w", apperrors.ErrValidation)

// reportingService produces dashboard aggregates straight from the
// repository; projections are computed in SQL, not in memory.
type reportingService struct {
	repo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingSvc {
	return &reportingService{repo: repo}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

func (s *reportingService) GetLedgerSummary(ctx context.Context) (*domain.LedgerSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	summary, err := s.repo.GetLedgerSummary(ctx)
	if err != nil {
		logger.Error("Failed to get ledger summary", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get ledger summary: %w", err)
	}
	return summary, nil
}

func (s *reportingService) GetMonthlyExpenseTotals(ctx context.Context) ([]domain.MonthlyTotal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	totals, err := s.repo.GetMonthlyExpenseTotals(ctx)
	if err != nil {
		logger.Error("Failed to get monthly expense totals", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get monthly expense totals: %w", err)
	}
	if totals == nil {
		return []domain.MonthlyTotal{}, nil
	}
	return totals, nil
}

func (s *reportingService) GetCategoryTotals(ctx context.Context, month string) ([]domain.CategoryTotal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, ErrInvalidMonth
	}

	totals, err := s.repo.GetCategoryTotals(ctx, month)
	if err != nil {
		logger.Error("Failed to get category totals", slog.String("error", err.Error()), slog.String("month", month))
		return nil, fmt.Errorf("failed to get category totals: %w", err)
	}
	if totals == nil {
		return []domain.CategoryTotal{}, nil
	}
	return totals, nil
}

func (s *reportingService) GetPortfolioSummary(ctx context.Context) (*domain.PortfolioSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	summary, err := s.repo.GetPortfolioSummary(ctx)
	if err != nil {
		logger.Error("Failed to get portfolio summary", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get portfolio summary: %w", err)
	}
	return summary, nil
}
