package dto

import (
	"time"

	"github.com/fintracker/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLoanRequest defines the payload for adding a loan directly.
// Remaining months start at total months, outstanding at principal.
type CreateLoanRequest struct {
	Name        string          `json:"name" binding:"required"`
	Principal   decimal.Decimal `json:"principal" binding:"required,dpositive"`
	EMIAmount   decimal.Decimal `json:"emiAmount" binding:"required,dpositive"`
	TotalMonths int             `json:"totalMonths" binding:"required,gt=0"`
}

// PayLoanEMIRequest defines the payload for paying one installment.
type PayLoanEMIRequest struct {
	BankAccountID string `json:"bankAccountID" binding:"required"`
}

// LoanResponse defines the data returned for a loan.
type LoanResponse struct {
	LoanID            string          `json:"loanID"`
	Name              string          `json:"name"`
	Principal         decimal.Decimal `json:"principal"`
	EMIAmount         decimal.Decimal `json:"emiAmount"`
	TotalMonths       int             `json:"totalMonths"`
	RemainingMonths   int             `json:"remainingMonths"`
	OutstandingAmount decimal.Decimal `json:"outstandingAmount"`
	IsActive          bool            `json:"isActive"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ToLoanResponse converts a domain.Loan to LoanResponse DTO.
func ToLoanResponse(l *domain.Loan) LoanResponse {
	return LoanResponse{
		LoanID:            l.LoanID,
		Name:              l.Name,
		Principal:         l.Principal,
		EMIAmount:         l.EMIAmount,
		TotalMonths:       l.TotalMonths,
		RemainingMonths:   l.RemainingMonths,
		OutstandingAmount: l.OutstandingAmount,
		IsActive:          l.IsActive,
		CreatedAt:         l.CreatedAt,
	}
}

// ToLoanResponses converts a slice of domain.Loan to DTOs.
func ToLoanResponses(loans []domain.Loan) []LoanResponse {
	responses := make([]LoanResponse, len(loans))
	for i := range loans {
		responses[i] = ToLoanResponse(&loans[i])
	}
	return responses
}
