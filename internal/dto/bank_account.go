package dto

import (
	"time"

	"github.com/fintracker/personal_finance_app/internal/core/domain"
)

// CreateBankAccountRequest defines the payload for adding a bank account.
type CreateBankAccountRequest struct {
	Name        string `json:"name" binding:"required"`
	AccountType string `json:"accountType" binding:"required"`
	Notes       string `json:"notes"`
}

// BankAccountResponse defines the data returned for a bank account.
type BankAccountResponse struct {
	BankAccountID string    `json:"bankAccountID"`
	Name          string    `json:"name"`
	AccountType   string    `json:"accountType"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToBankAccountResponse converts a domain.BankAccount to BankAccountResponse DTO.
func ToBankAccountResponse(a *domain.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		BankAccountID: a.BankAccountID,
		Name:          a.Name,
		AccountType:   a.AccountType,
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt,
	}
}

// ToBankAccountResponses converts a slice of domain.BankAccount to DTOs.
func ToBankAccountResponses(accounts []domain.BankAccount) []BankAccountResponse {
	responses := make([]BankAccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToBankAccountResponse(&accounts[i])
	}
	return responses
}
