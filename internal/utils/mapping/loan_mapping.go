package mapping

import (
	"github.com/fintracker/personal_finance_app/internal/core/domain"
	"github.com/fintracker/personal_finance_app/internal/models"
)

// ToModelLoan converts a domain Loan to a model Loan
func ToModelLoan(d domain.Loan) models.Loan {
	return models.Loan{
		LoanID:            d.LoanID,
		Name:              d.Name,
		Principal:         d.Principal,
		EMIAmount:         d.EMIAmount,
		TotalMonths:       d.TotalMonths,
		RemainingMonths:   d.RemainingMonths,
		OutstandingAmount: d.OutstandingAmount,
		IsActive:          d.IsActive,
		AuditFields:       ToModelAuditFields(d.AuditFields),
		Version:           d.Version,
	}
}

// ToDomainLoan converts a model Loan to a domain Loan
func ToDomainLoan(m models.Loan) domain.Loan {
	return domain.Loan{
		LoanID:            m.LoanID,
		Name:              m.Name,
		Principal:         m.Principal,
		EMIAmount:         m.EMIAmount,
		TotalMonths:       m.TotalMonths,
		RemainingMonths:   m.RemainingMonths,
		OutstandingAmount: m.OutstandingAmount,
		IsActive:          m.IsActive,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
		Versioned:         domain.Versioned{Version: m.Version},
	}
}

// ToDomainLoanSlice converts a slice of model Loans to domain Loans
func ToDomainLoanSlice(ms []models.Loan) []domain.Loan {
	ds := make([]domain.Loan, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLoan(m)
	}
	return ds
}
