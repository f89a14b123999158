package services

import (
	"context"

	"github.com/fintracker/personal_finance_app/internal/core/domain"
	"github.com/fintracker/personal_finance_app/internal/dto"
	"github.com/shopspring/decimal"
)

// AssetReaderSvc defines read operations for asset data
type AssetReaderSvc interface {
	// GetAssetByID retrieves a specific asset by its unique identifier.
	GetAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// ListAssets retrieves all assets.
	ListAssets(ctx context.Context) ([]domain.Asset, error)
}

// AssetWriterSvc defines write operations for asset data
type AssetWriterSvc interface {
	// CreateAsset persists a new asset.
	CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*domain.Asset, error)

	// RevalueAsset overwrites the asset's current market value. A revaluation
	// is a valuation mark, not a cash movement: no transaction is recorded.
	RevalueAsset(ctx context.Context, assetID string, currentValue decimal.Decimal) (*domain.Asset, error)
}

// AssetSvcFacade combines all asset-related service interfaces
type AssetSvcFacade interface {
	AssetReaderSvc
	AssetWriterSvc
}
