package dto

import (
	"time"

	"github.com/fintracker/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAssetRequest defines the payload for adding an asset.
type CreateAssetRequest struct {
	Name           string          `json:"name" binding:"required"`
	Type           string          `json:"type" binding:"required"`
	InvestedAmount decimal.Decimal `json:"investedAmount"`
	CurrentValue   decimal.Decimal `json:"currentValue"`
	Notes          string          `json:"notes"`
}

// AssetInvestRequest defines the payload for investing fresh capital.
type AssetInvestRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required,dpositive"`
	BankAccountID string          `json:"bankAccountID" binding:"required"`
}

// AssetWithdrawRequest defines the payload for withdrawing realized value.
type AssetWithdrawRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required,dpositive"`
	BankAccountID string          `json:"bankAccountID" binding:"required"`
}

// RevalueAssetRequest defines the payload for a market revaluation. This is a
// valuation mark, not a cash movement: no transaction is recorded.
type RevalueAssetRequest struct {
	CurrentValue decimal.Decimal `json:"currentValue"`
}

// AssetResponse defines the data returned for an asset.
type AssetResponse struct {
	AssetID        string          `json:"assetID"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	InvestedAmount decimal.Decimal `json:"investedAmount"`
	CurrentValue   decimal.Decimal `json:"currentValue"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToAssetResponse converts a domain.Asset to AssetResponse DTO.
func ToAssetResponse(a *domain.Asset) AssetResponse {
	return AssetResponse{
		AssetID:        a.AssetID,
		Name:           a.Name,
		Type:           a.Type,
		InvestedAmount: a.InvestedAmount,
		CurrentValue:   a.CurrentValue,
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt,
	}
}

// ToAssetResponses converts a slice of domain.Asset to DTOs.
func ToAssetResponses(assets []domain.Asset) []AssetResponse {
	responses := make([]AssetResponse, len(assets))
	for i := range assets {
		responses[i] = ToAssetResponse(&assets[i])
	}
	return responses
}
