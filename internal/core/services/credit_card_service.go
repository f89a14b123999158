package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintracker/personal_finance_app/internal/apperrors"
	"github.com/fintracker/personal_finance_app/internal/core/domain"
	portsrepo "github.com/fintracker/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/fintracker/personal_finance_app/internal/core/ports/services"
	"github.com/fintracker/personal_finance_app/internal/dto"
	"github.com/fintracker/personal_finance_app/internal/middleware"
)

// ErrNonPositiveLimit is returned when a card is created with a limit <= 0.
var ErrNonPositiveLimit = fmt.Errorf("total limit must be positive: %w", apperrors.ErrValidation)

// creditCardService provides credit card CRUD. Balance buckets are never
// touched here; only ledger operations move them.
type creditCardService struct {
	repo portsrepo.CreditCardRepositoryFacade
}

// NewCreditCardService creates a new credit card service.
func NewCreditCardService(repo portsrepo.CreditCardRepositoryFacade) portssvc.CreditCardSvcFacade {
	return &creditCardService{repo: repo}
}

var _ portssvc.CreditCardSvcFacade = (*creditCardService)(nil)

func (s *creditCardService) CreateCreditCard(ctx context.Context, req dto.CreateCreditCardRequest) (*domain.CreditCard, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.TotalLimit.IsPositive() {
		return nil, ErrNonPositiveLimit
	}

	now := time.Now()
	card := domain.CreditCard{
		CreditCardID:     uuid.NewString(),
		Name:             req.Name,
		TotalLimit:       req.TotalLimit,
		UsedAmount:       decimal.Zero,
		DueAmount:        decimal.Zero,
		EMIBlockedAmount: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
		Versioned: domain.Versioned{Version: 1},
	}

	if err := s.repo.SaveCreditCard(ctx, card); err != nil {
		logger.Error("Failed to save credit card in repository", slog.String("error", err.Error()), slog.String("credit_card_id", card.CreditCardID))
		return nil, err
	}

	logger.Info("Credit card created", slog.String("credit_card_id", card.CreditCardID))
	return &card, nil
}

func (s *creditCardService) GetCreditCardByID(ctx context.Context, creditCardID string) (*domain.CreditCard, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	card, err := s.repo.FindCreditCardByID(ctx, creditCardID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find credit card by ID in repository", slog.String("error", err.Error()), slog.String("credit_card_id", creditCardID))
		}
		return nil, err
	}
	return card, nil
}

func (s *creditCardService) ListCreditCards(ctx context.Context) ([]domain.CreditCard, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	cards, err := s.repo.ListCreditCards(ctx)
	if err != nil {
		logger.Error("Failed to list credit cards from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list credit cards: %w", err)
	}
	if cards == nil {
		return []domain.CreditCard{}, nil
	}
	return cards, nil
}
