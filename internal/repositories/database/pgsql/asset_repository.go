package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintracker/personal_finance_app/internal/apperrors"
	"github.com/fintracker/personal_finance_app/internal/core/domain"
	portsrepo "github.com/fintracker/personal_finance_app/internal/core/ports/repositories"
	"github.com/fintracker/personal_finance_app/internal/models"
	"github.com/fintracker/personal_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const assetValueUpdateQuery = `
	UPDATE assets
	SET invested_amount = $1, current_value = $2, last_updated_at = $3, version = version + 1
	WHERE asset_id = $4 AND version = $5;
`

// rowExecutor is satisfied by both *pgxpool.Pool and pgx.Tx, so the
// version-guarded update can run standalone (revaluation) or inside a
// ledger unit (invest/withdraw).
type rowExecutor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PgxAssetRepository struct {
	pool *pgxpool.Pool
}

// newPgxAssetRepository creates a new repository for asset data.
func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepositoryFacade {
	return &PgxAssetRepository{pool: pool}
}

var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

// SaveAsset inserts a new asset.
func (r *PgxAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	m := mapping.ToModelAsset(asset)

	query := `
		INSERT INTO assets (asset_id, name, type, invested_amount, current_value, notes, created_at, last_updated_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.AssetID,
		m.Name,
		m.Type,
		m.InvestedAmount,
		m.CurrentValue,
		m.Notes,
		m.CreatedAt,
		m.LastUpdatedAt,
		m.Version,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: asset with ID %s already exists", apperrors.ErrDuplicate, m.AssetID)
		}
		return fmt.Errorf("failed to save asset %s: %w", m.AssetID, err)
	}
	return nil
}

// FindAssetByID retrieves an asset by its ID.
func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	query := `
		SELECT asset_id, name, type, invested_amount, current_value, notes, created_at, last_updated_at, version
		FROM assets
		WHERE asset_id = $1;
	`
	var m models.Asset
	err := r.pool.QueryRow(ctx, query, assetID).Scan(
		&m.AssetID,
		&m.Name,
		&m.Type,
		&m.InvestedAmount,
		&m.CurrentValue,
		&m.Notes,
		&m.CreatedAt,
		&m.LastUpdatedAt,
		&m.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset by ID %s: %w", assetID, err)
	}

	d := mapping.ToDomainAsset(m)
	return &d, nil
}

// ListAssets retrieves all assets, newest first.
func (r *PgxAssetRepository) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	query := `
		SELECT asset_id, name, type, invested_amount, current_value, notes, created_at, last_updated_at, version
		FROM assets
		ORDER BY created_at DESC, asset_id DESC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	var ms []models.Asset
	for rows.Next() {
		var m models.Asset
		if err := rows.Scan(
			&m.AssetID,
			&m.Name,
			&m.Type,
			&m.InvestedAmount,
			&m.CurrentValue,
			&m.Notes,
			&m.CreatedAt,
			&m.LastUpdatedAt,
			&m.Version,
		); err != nil {
			return nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset rows: %w", err)
	}

	return mapping.ToDomainAssetSlice(ms), nil
}

func (r *PgxAssetRepository) updateAssetValue(ctx context.Context, exec rowExecutor, asset domain.Asset) error {
	tag, err := exec.Exec(ctx, assetValueUpdateQuery,
		asset.InvestedAmount,
		asset.CurrentValue,
		asset.LastUpdatedAt,
		asset.AssetID,
		asset.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset %s: %w", asset.AssetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewConflictError(fmt.Sprintf("asset %s was modified concurrently", asset.AssetID))
	}
	return nil
}

// UpdateAssetValue writes the asset's value fields directly against the pool.
// Revaluation uses this: it pairs with no transaction row, so no unit is opened.
func (r *PgxAssetRepository) UpdateAssetValue(ctx context.Context, asset domain.Asset) error {
	return r.updateAssetValue(ctx, r.pool, asset)
}

// UpdateAssetValueInTx writes the asset's value fields within an existing
// transaction, guarded by the version the caller read.
func (r *PgxAssetRepository) UpdateAssetValueInTx(ctx context.Context, tx pgx.Tx, asset domain.Asset) error {
	return r.updateAssetValue(ctx, tx, asset)
}
