package mapping

import (
	"github.com/fintracker/personal_finance_app/internal/core/domain"
	"github.com/fintracker/personal_finance_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		Amount:        d.Amount,
		Type:          string(d.Type),
		Source:        string(d.Source),
		Category:      d.Category,
		AssetID:       d.AssetID,
		CreditCardID:  d.CreditCardID,
		BankAccountID: d.BankAccountID,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Amount:        m.Amount,
		Type:          domain.TransactionType(m.Type),
		Source:        domain.TransactionSource(m.Source),
		Category:      m.Category,
		AssetID:       m.AssetID,
		CreditCardID:  m.CreditCardID,
		BankAccountID: m.BankAccountID,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
