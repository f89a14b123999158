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

var (
	ErrNegativeAmount = fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
	ErrNegativeValue  = fmt.Errorf("current value must not be negative: %w", apperrors.ErrValidation)
)

// assetService provides asset CRUD and revaluation. Invest/withdraw go
// through the ledger service because they pair with a transaction.
type assetService struct {
	repo portsrepo.AssetRepositoryFacade
}

// NewAssetService creates a new asset service.
func NewAssetService(repo portsrepo.AssetRepositoryFacade) portssvc.AssetSvcFacade {
	return &assetService{repo: repo}
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

func (s *assetService) CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*domain.Asset, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.InvestedAmount.IsNegative() || req.CurrentValue.IsNegative() {
		return nil, ErrNegativeAmount
	}

	now := time.Now()
	asset := domain.Asset{
		AssetID:        uuid.NewString(),
		Name:           req.Name,
		Type:           req.Type,
		InvestedAmount: req.InvestedAmount,
		CurrentValue:   req.CurrentValue,
		Notes:          req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
		Versioned: domain.Versioned{Version: 1},
	}

	if err := s.repo.SaveAsset(ctx, asset); err != nil {
		logger.Error("Failed to save asset in repository", slog.String("error", err.Error()), slog.String("asset_id", asset.AssetID))
		return nil, err
	}

	logger.Info("Asset created", slog.String("asset_id", asset.AssetID))
	return &asset, nil
}

// RevalueAsset overwrites the asset's market value. No transaction is
// recorded: a revaluation is a valuation mark, not a cash movement, so the
// update goes straight to the entity row (still version-guarded).
func (s *assetService) RevalueAsset(ctx context.Context, assetID string, currentValue decimal.Decimal) (*domain.Asset, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if currentValue.IsNegative() {
		return nil, ErrNegativeValue
	}

	asset, err := s.repo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	asset.CurrentValue = currentValue
	asset.LastUpdatedAt = time.Now()

	if err := s.repo.UpdateAssetValue(ctx, *asset); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to revalue asset in repository", slog.String("error", err.Error()), slog.String("asset_id", assetID))
		}
		return nil, err
	}
	asset.Version++

	logger.Info("Asset revalued", slog.String("asset_id", assetID), slog.String("current_value", currentValue.String()))
	return asset, nil
}

func (s *assetService) GetAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	asset, err := s.repo.FindAssetByID(ctx, assetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find asset by ID in repository", slog.String("error", err.Error()), slog.String("asset_id", assetID))
		}
		return nil, err
	}
	return asset, nil
}

func (s *assetService) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	assets, err := s.repo.ListAssets(ctx)
	if err != nil {
		logger.Error("Failed to list assets from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	if assets == nil {
		return []domain.Asset{}, nil
	}
	return assets, nil
}
