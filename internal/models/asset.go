package models

import "github.com/shopspring/decimal"

// Asset is the persistence model for the assets table.
type Asset struct {
	AssetID        string          `json:"assetID"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	InvestedAmount decimal.Decimal `json:"investedAmount"`
	CurrentValue   decimal.Decimal `json:"currentValue"`
	Notes          string          `json:"notes"`
	AuditFields
	Version int64 `json:"version"`
}
