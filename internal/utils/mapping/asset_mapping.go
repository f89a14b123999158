package mapping

import (
	"github.com/fintracker/personal_finance_app/internal/core/domain"
	"github.com/fintracker/personal_finance_app/internal/models"
)

// ToModelAsset converts a domain Asset to a model Asset
func ToModelAsset(d domain.Asset) models.Asset {
	return models.Asset{
		AssetID:        d.AssetID,
		Name:           d.Name,
		Type:           d.Type,
		InvestedAmount: d.InvestedAmount,
		CurrentValue:   d.CurrentValue,
		Notes:          d.Notes,
		AuditFields:    ToModelAuditFields(d.AuditFields),
		Version:        d.Version,
	}
}

// ToDomainAsset converts a model Asset to a domain Asset
func ToDomainAsset(m models.Asset) domain.Asset {
	return domain.Asset{
		AssetID:        m.AssetID,
		Name:           m.Name,
		Type:           m.Type,
		InvestedAmount: m.InvestedAmount,
		CurrentValue:   m.CurrentValue,
		Notes:          m.Notes,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
		Versioned:      domain.Versioned{Version: m.Version},
	}
}

// ToDomainAssetSlice converts a slice of model Assets to domain Assets
func ToDomainAssetSlice(ms []models.Asset) []domain.Asset {
	ds := make([]domain.Asset, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAsset(m)
	}
	return ds
}
