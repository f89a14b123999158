package mapping

import (
	"github.com/fintracker/personal_finance_app/internal/core/domain"
	"github.com/fintracker/personal_finance_app/internal/models"
)

// ToModelCreditCard converts a domain CreditCard to a model CreditCard
func ToModelCreditCard(d domain.CreditCard) models.CreditCard {
	return models.CreditCard{
		CreditCardID:     d.CreditCardID,
		Name:             d.Name,
		TotalLimit:       d.TotalLimit,
		UsedAmount:       d.UsedAmount,
		DueAmount:        d.DueAmount,
		EMIBlockedAmount: d.EMIBlockedAmount,
		AuditFields:      ToModelAuditFields(d.AuditFields),
		Version:          d.Version,
	}
}

// ToDomainCreditCard converts a model CreditCard to a domain CreditCard
func ToDomainCreditCard(m models.CreditCard) domain.CreditCard {
	return domain.CreditCard{
		CreditCardID:     m.CreditCardID,
		Name:             m.Name,
		TotalLimit:       m.TotalLimit,
		UsedAmount:       m.UsedAmount,
		DueAmount:        m.DueAmount,
		EMIBlockedAmount: m.EMIBlockedAmount,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
		Versioned:        domain.Versioned{Version: m.Version},
	}
}

// ToDomainCreditCardSlice converts a slice of model CreditCards to domain CreditCards
func ToDomainCreditCardSlice(ms []models.CreditCard) []domain.CreditCard {
	ds := make([]domain.CreditCard, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCreditCard(m)
	}
	return ds
}
