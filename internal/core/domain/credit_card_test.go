package domain_test

import (
	"testing"

	"github.com/fintracker/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAvailableCredit(t *testing.T) {
	card := domain.CreditCard{
		TotalLimit:       decimal.NewFromInt(100000),
		UsedAmount:       decimal.NewFromInt(20000),
		EMIBlockedAmount: decimal.NewFromInt(10000),
	}
	assert.True(t, card.AvailableCredit().Equal(decimal.NewFromInt(70000)))
}

func TestAvailableCreditClampsAtZero(t *testing.T) {
	// Overspend beyond the limit is tolerated; available credit never goes negative.
	card := domain.CreditCard{
		TotalLimit:       decimal.NewFromInt(50000),
		UsedAmount:       decimal.NewFromInt(45000),
		EMIBlockedAmount: decimal.NewFromInt(10000),
	}
	assert.True(t, card.AvailableCredit().IsZero())
}

func TestValidTypeAndSource(t *testing.T) {
	assert.True(t, domain.ValidType(domain.Income))
	assert.True(t, domain.ValidType(domain.Expense))
	assert.False(t, domain.ValidType(domain.TransactionType("transfer")))

	assert.True(t, domain.ValidSource(domain.SourceCash))
	assert.True(t, domain.ValidSource(domain.SourceBank))
	assert.True(t, domain.ValidSource(domain.SourceCreditCard))
	assert.False(t, domain.ValidSource(domain.TransactionSource("wallet")))
}
