package domain

import "github.com/shopspring/decimal"

// DefaultAssetTypes are the asset types offered by the UI. The type field is
// free text; this list is only a convenience for clients.
var DefaultAssetTypes = []string{
	"Mutual Fund",
	"Fixed Deposit",
	"Stock",
	"Crypto",
	"Gold",
	"Land",
	"Other",
}

// Asset represents an investable asset. InvestedAmount is the cost basis and
// CurrentValue the market value; there is no hard relation between them, the
// value can fall below what was invested.
type Asset struct {
	AssetID        string          `json:"assetID"` // Primary Key (UUID)
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	InvestedAmount decimal.Decimal `json:"investedAmount"`
	CurrentValue   decimal.Decimal `json:"currentValue"`
	Notes          string          `json:"notes"`
	AuditFields
	Versioned
}
