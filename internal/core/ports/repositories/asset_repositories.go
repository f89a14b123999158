package repositories

import (
	"context"

	"github.com/fintracker/personal_finance_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AssetReader defines read operations for asset data
type AssetReader interface {
	// FindAssetByID retrieves a specific asset by its unique identifier.
	FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// ListAssets retrieves all assets, newest first.
	ListAssets(ctx context.Context) ([]domain.Asset, error)
}

// AssetWriter defines write operations for asset data
type AssetWriter interface {
	// SaveAsset persists a new asset.
	SaveAsset(ctx context.Context, asset domain.Asset) error

	// UpdateAssetValue writes the asset's value fields, guarded by the version
	// the caller read. Used by revaluation, which pairs with no transaction row.
	UpdateAssetValue(ctx context.Context, asset domain.Asset) error
}

// AssetTransactionSupport defines conditional updates usable inside a DB transaction
type AssetTransactionSupport interface {
	// UpdateAssetValueInTx writes the asset's value fields within an existing
	// transaction, guarded by the version the caller read.
	UpdateAssetValueInTx(ctx context.Context, tx pgx.Tx, asset domain.Asset) error
}

// AssetRepositoryFacade combines all asset repository interfaces
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
	AssetTransactionSupport
}
