package mapping

import (
	"github.com/fintracker/personal_finance_app/internal/core/domain"
	"github.com/fintracker/personal_finance_app/internal/models"
)

// ToModelBankAccount converts a domain BankAccount to a model BankAccount
func ToModelBankAccount(d domain.BankAccount) models.BankAccount {
	return models.BankAccount{
		BankAccountID: d.BankAccountID,
		Name:          d.Name,
		AccountType:   d.AccountType,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
		Version:       d.Version,
	}
}

// ToDomainBankAccount converts a model BankAccount to a domain BankAccount
func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		BankAccountID: m.BankAccountID,
		Name:          m.Name,
		AccountType:   m.AccountType,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
		Versioned:     domain.Versioned{Version: m.Version},
	}
}

// ToDomainBankAccountSlice converts a slice of model BankAccounts to domain BankAccounts
func ToDomainBankAccountSlice(ms []models.BankAccount) []domain.BankAccount {
	ds := make([]domain.BankAccount, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBankAccount(m)
	}
	return ds
}
