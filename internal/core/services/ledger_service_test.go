package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintracker/personal_finance_app/internal/apperrors"
	"github.com/fintracker/personal_finance_app/internal/core/domain"
	portsrepo "github.com/fintracker/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/fintracker/personal_finance_app/internal/core/ports/services"
	"github.com/fintracker/personal_finance_app/internal/core/services"
	"github.com/fintracker/personal_finance_app/internal/dto"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) RecordTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockLedgerRepository) RecordWithCreditCard(ctx context.Context, txn domain.Transaction, card domain.CreditCard) error {
	args := m.Called(ctx, txn, card)
	return args.Error(0)
}

func (m *MockLedgerRepository) RecordWithLoan(ctx context.Context, txn domain.Transaction, loan domain.Loan) error {
	args := m.Called(ctx, txn, loan)
	return args.Error(0)
}

func (m *MockLedgerRepository) RecordWithAsset(ctx context.Context, txn domain.Transaction, asset domain.Asset) error {
	args := m.Called(ctx, txn, asset)
	return args.Error(0)
}

func (m *MockLedgerRepository) RecordConversion(ctx context.Context, txn domain.Transaction, card domain.CreditCard, loan domain.Loan) error {
	args := m.Called(ctx, txn, card, loan)
	return args.Error(0)
}

// --- Mock readers ---
type MockCreditCardReader struct {
	mock.Mock
}

var _ portsrepo.CreditCardReader = (*MockCreditCardReader)(nil)

func (m *MockCreditCardReader) FindCreditCardByID(ctx context.Context, creditCardID string) (*domain.CreditCard, error) {
	args := m.Called(ctx, creditCardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditCard), args.Error(1)
}

func (m *MockCreditCardReader) ListCreditCards(ctx context.Context) ([]domain.CreditCard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditCard), args.Error(1)
}

type MockLoanReader struct {
	mock.Mock
}

var _ portsrepo.LoanReader = (*MockLoanReader)(nil)

func (m *MockLoanReader) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanReader) ListLoans(ctx context.Context, activeOnly bool) ([]domain.Loan, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

type MockAssetReader struct {
	mock.Mock
}

var _ portsrepo.AssetReader = (*MockAssetReader)(nil)

func (m *MockAssetReader) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetReader) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

type MockBankAccountReader struct {
	mock.Mock
}

var _ portsrepo.BankAccountReader = (*MockBankAccountReader)(nil)

func (m *MockBankAccountReader) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountReader) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

// --- Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerRepository
	mockCardRepo   *MockCreditCardReader
	mockLoanRepo   *MockLoanReader
	mockAssetRepo  *MockAssetReader
	mockBankRepo   *MockBankAccountReader
	service        portssvc.LedgerSvc

	ctx         context.Context
	bankAccount domain.BankAccount
	card        domain.CreditCard
	asset       domain.Asset
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockCardRepo = new(MockCreditCardReader)
	suite.mockLoanRepo = new(MockLoanReader)
	suite.mockAssetRepo = new(MockAssetReader)
	suite.mockBankRepo = new(MockBankAccountReader)
	suite.service = services.NewLedgerService(
		suite.mockLedgerRepo,
		suite.mockCardRepo,
		suite.mockLoanRepo,
		suite.mockAssetRepo,
		suite.mockBankRepo,
	)

	suite.ctx = context.Background()

	suite.bankAccount = domain.BankAccount{
		BankAccountID: uuid.NewString(),
		Name:          "Salary Account",
		AccountType:   "Savings",
		Versioned:     domain.Versioned{Version: 1},
	}
	suite.card = domain.CreditCard{
		CreditCardID:     uuid.NewString(),
		Name:             "Regalia",
		TotalLimit:       decimal.NewFromInt(100000),
		UsedAmount:       decimal.NewFromInt(20000),
		DueAmount:        decimal.NewFromInt(20000),
		EMIBlockedAmount: decimal.Zero,
		Versioned:        domain.Versioned{Version: 3},
	}
	suite.asset = domain.Asset{
		AssetID:        uuid.NewString(),
		Name:           "Index Fund",
		Type:           "Mutual Fund",
		InvestedAmount: decimal.Zero,
		CurrentValue:   decimal.Zero,
		Versioned:      domain.Versioned{Version: 1},
	}
}

func (suite *LedgerServiceTestSuite) expectCard() {
	card := suite.card
	suite.mockCardRepo.On("FindCreditCardByID", suite.ctx, suite.card.CreditCardID).Return(&card, nil).Once()
}

func (suite *LedgerServiceTestSuite) expectBankAccount() {
	account := suite.bankAccount
	suite.mockBankRepo.On("FindBankAccountByID", suite.ctx, suite.bankAccount.BankAccountID).Return(&account, nil).Once()
}

func (suite *LedgerServiceTestSuite) expectAsset() {
	asset := suite.asset
	suite.mockAssetRepo.On("FindAssetByID", suite.ctx, suite.asset.AssetID).Return(&asset, nil).Once()
}

func (suite *LedgerServiceTestSuite) TestPayCreditCardReducesDueAndUsed() {
	suite.expectCard()
	suite.expectBankAccount()

	amount := decimal.NewFromInt(5000)
	suite.mockLedgerRepo.On("RecordWithCreditCard", suite.ctx,
		mock.MatchedBy(func(txn domain.Transaction) bool {
			return txn.Category == domain.CategoryCreditCardPayment &&
				txn.Type == domain.Expense &&
				txn.Source == domain.SourceBank &&
				txn.Amount.Equal(amount) &&
				txn.CreditCardID != nil && *txn.CreditCardID == suite.card.CreditCardID &&
				txn.BankAccountID != nil && *txn.BankAccountID == suite.bankAccount.BankAccountID
		}),
		mock.MatchedBy(func(card domain.CreditCard) bool {
			return card.DueAmount.Equal(decimal.NewFromInt(15000)) &&
				card.UsedAmount.Equal(decimal.NewFromInt(15000)) &&
				card.EMIBlockedAmount.IsZero() &&
				card.Version == 3
		}),
	).Return(nil).Once()

	txn, card, err := suite.service.PayCreditCard(suite.ctx, suite.card.CreditCardID, dto.PayCreditCardRequest{
		Amount:        amount,
		BankAccountID: suite.bankAccount.BankAccountID,
	})

	suite.NoError(err)
	suite.NotNil(txn)
	suite.True(card.DueAmount.Equal(decimal.NewFromInt(15000)))
	suite.Equal(int64(4), card.Version)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPayCreditCardRejectsAmountOverDue() {
	suite.expectCard()

	_, _, err := suite.service.PayCreditCard(suite.ctx, suite.card.CreditCardID, dto.PayCreditCardRequest{
		Amount:        decimal.NewFromInt(25000),
		BankAccountID: suite.bankAccount.BankAccountID,
	})

	suite.ErrorIs(err, services.ErrPaymentExceedsDue)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "RecordWithCreditCard", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPayCreditCardRejectsNonPositiveAmount() {
	_, _, err := suite.service.PayCreditCard(suite.ctx, suite.card.CreditCardID, dto.PayCreditCardRequest{
		Amount:        decimal.Zero,
		BankAccountID: suite.bankAccount.BankAccountID,
	})

	suite.ErrorIs(err, services.ErrNonPositiveAmount)
	suite.mockCardRepo.AssertNotCalled(suite.T(), "FindCreditCardByID", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestConvertToEMIMovesDueToBlocked() {
	suite.expectCard()

	convertAmount := decimal.NewFromInt(10000)
	emiAmount := decimal.NewFromInt(2000)

	suite.mockLedgerRepo.On("RecordConversion", suite.ctx,
		mock.MatchedBy(func(txn domain.Transaction) bool {
			return txn.Category == domain.CategoryCCToEMIConversion &&
				txn.Type == domain.Expense &&
				txn.Source == domain.SourceCreditCard &&
				txn.Amount.Equal(convertAmount)
		}),
		mock.MatchedBy(func(card domain.CreditCard) bool {
			return card.DueAmount.Equal(decimal.NewFromInt(10000)) &&
				card.EMIBlockedAmount.Equal(decimal.NewFromInt(10000)) &&
				card.UsedAmount.Equal(decimal.NewFromInt(20000))
		}),
		mock.MatchedBy(func(loan domain.Loan) bool {
			return loan.Name == "Regalia EMI" &&
				loan.Principal.Equal(convertAmount) &&
				loan.EMIAmount.Equal(emiAmount) &&
				loan.TotalMonths == 6 &&
				loan.RemainingMonths == 6 &&
				loan.OutstandingAmount.Equal(convertAmount) &&
				loan.IsActive
		}),
	).Return(nil).Once()

	txn, card, loan, err := suite.service.ConvertCreditCardToEMI(suite.ctx, suite.card.CreditCardID, dto.ConvertToEMIRequest{
		Amount:       convertAmount,
		EMIAmount:    emiAmount,
		TenureMonths: 6,
	})

	suite.NoError(err)
	suite.NotNil(txn)
	suite.True(card.DueAmount.Equal(decimal.NewFromInt(10000)))
	suite.True(card.EMIBlockedAmount.Equal(decimal.NewFromInt(10000)))
	suite.Equal(6, loan.RemainingMonths)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestConvertToEMIRejectsAmountOverDue() {
	suite.expectCard()

	_, _, _, err := suite.service.ConvertCreditCardToEMI(suite.ctx, suite.card.CreditCardID, dto.ConvertToEMIRequest{
		Amount:       decimal.NewFromInt(30000),
		EMIAmount:    decimal.NewFromInt(2000),
		TenureMonths: 6,
	})

	suite.ErrorIs(err, services.ErrConversionExceedsDue)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "RecordConversion", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPaymentThenConversionScenario() {
	// Pay 5000 against 20000 due, then convert 10000 of the remaining due.
	suite.expectCard()
	suite.expectBankAccount()
	suite.mockLedgerRepo.On("RecordWithCreditCard", suite.ctx, mock.Anything, mock.Anything).Return(nil).Once()

	_, cardAfterPay, err := suite.service.PayCreditCard(suite.ctx, suite.card.CreditCardID, dto.PayCreditCardRequest{
		Amount:        decimal.NewFromInt(5000),
		BankAccountID: suite.bankAccount.BankAccountID,
	})
	suite.NoError(err)
	suite.True(cardAfterPay.DueAmount.Equal(decimal.NewFromInt(15000)))

	suite.mockCardRepo.On("FindCreditCardByID", suite.ctx, suite.card.CreditCardID).Return(cardAfterPay, nil).Once()
	suite.mockLedgerRepo.On("RecordConversion", suite.ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	_, cardAfterConvert, loan, err := suite.service.ConvertCreditCardToEMI(suite.ctx, suite.card.CreditCardID, dto.ConvertToEMIRequest{
		Amount:       decimal.NewFromInt(10000),
		EMIAmount:    decimal.NewFromInt(2000),
		TenureMonths: 6,
	})
	suite.NoError(err)
	suite.True(cardAfterConvert.DueAmount.Equal(decimal.NewFromInt(5000)))
	suite.True(cardAfterConvert.EMIBlockedAmount.Equal(decimal.NewFromInt(10000)))
	suite.True(loan.OutstandingAmount.Equal(decimal.NewFromInt(10000)))
	suite.Equal(6, loan.RemainingMonths)
}

func (suite *LedgerServiceTestSuite) TestRecordCardSpendRaisesUsedAndDue() {
	suite.expectCard()

	amount := decimal.NewFromInt(3000)
	suite.mockLedgerRepo.On("RecordWithCreditCard", suite.ctx,
		mock.MatchedBy(func(txn domain.Transaction) bool {
			return txn.Category == "groceries" &&
				txn.Type == domain.Expense &&
				txn.Source == domain.SourceCreditCard
		}),
		mock.MatchedBy(func(card domain.CreditCard) bool {
			return card.UsedAmount.Equal(decimal.NewFromInt(23000)) &&
				card.DueAmount.Equal(decimal.NewFromInt(23000))
		}),
	).Return(nil).Once()

	_, card, err := suite.service.RecordCardSpend(suite.ctx, suite.card.CreditCardID, dto.RecordCardSpendRequest{
		Amount:   amount,
		Category: "groceries",
	})

	suite.NoError(err)
	suite.True(card.UsedAmount.Equal(decimal.NewFromInt(23000)))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPayLoanEMITermination() {
	loan := domain.Loan{
		LoanID:            uuid.NewString(),
		Name:              "Regalia EMI",
		Principal:         decimal.NewFromInt(6000),
		EMIAmount:         decimal.NewFromInt(2000),
		TotalMonths:       3,
		RemainingMonths:   3,
		OutstandingAmount: decimal.NewFromInt(6000),
		IsActive:          true,
		Versioned:         domain.Versioned{Version: 1},
	}

	current := loan
	for i := 0; i < loan.TotalMonths; i++ {
		snapshot := current
		suite.mockLoanRepo.On("FindLoanByID", suite.ctx, loan.LoanID).Return(&snapshot, nil).Once()
		suite.expectBankAccount()
		suite.mockLedgerRepo.On("RecordWithLoan", suite.ctx,
			mock.MatchedBy(func(txn domain.Transaction) bool {
				return txn.Category == domain.CategoryLoanEMI && txn.Amount.Equal(loan.EMIAmount)
			}),
			mock.Anything,
		).Return(nil).Once()

		_, updated, err := suite.service.PayLoanEMI(suite.ctx, loan.LoanID, dto.PayLoanEMIRequest{
			BankAccountID: suite.bankAccount.BankAccountID,
		})
		suite.NoError(err)
		current = *updated
	}

	suite.Equal(0, current.RemainingMonths)
	suite.False(current.IsActive)
	suite.True(current.OutstandingAmount.IsZero())

	// One more payment attempt fails and changes nothing.
	closed := current
	suite.mockLoanRepo.On("FindLoanByID", suite.ctx, loan.LoanID).Return(&closed, nil).Once()
	_, _, err := suite.service.PayLoanEMI(suite.ctx, loan.LoanID, dto.PayLoanEMIRequest{
		BankAccountID: suite.bankAccount.BankAccountID,
	})
	suite.ErrorIs(err, services.ErrNoRemainingInstallments)
	suite.mockLedgerRepo.AssertNumberOfCalls(suite.T(), "RecordWithLoan", loan.TotalMonths)
}

func (suite *LedgerServiceTestSuite) TestInvestInAssetRaisesBasisAndValue() {
	suite.expectAsset()
	suite.expectBankAccount()

	amount := decimal.NewFromInt(5000)
	suite.mockLedgerRepo.On("RecordWithAsset", suite.ctx,
		mock.MatchedBy(func(txn domain.Transaction) bool {
			return txn.Category == domain.CategoryAssetInvestment &&
				txn.Type == domain.Expense &&
				txn.Source == domain.SourceBank &&
				txn.AssetID != nil && *txn.AssetID == suite.asset.AssetID &&
				txn.BankAccountID != nil
		}),
		mock.MatchedBy(func(asset domain.Asset) bool {
			return asset.InvestedAmount.Equal(amount) && asset.CurrentValue.Equal(amount)
		}),
	).Return(nil).Once()

	_, asset, err := suite.service.InvestInAsset(suite.ctx, suite.asset.AssetID, dto.AssetInvestRequest{
		Amount:        amount,
		BankAccountID: suite.bankAccount.BankAccountID,
	})

	suite.NoError(err)
	suite.True(asset.InvestedAmount.Equal(amount))
	suite.True(asset.CurrentValue.Equal(amount))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestWithdrawReducesValueOnly() {
	suite.asset.InvestedAmount = decimal.NewFromInt(5000)
	suite.asset.CurrentValue = decimal.NewFromInt(6000)
	suite.expectAsset()
	suite.expectBankAccount()

	amount := decimal.NewFromInt(6000)
	suite.mockLedgerRepo.On("RecordWithAsset", suite.ctx,
		mock.MatchedBy(func(txn domain.Transaction) bool {
			return txn.Category == domain.CategoryAssetWithdrawal && txn.Type == domain.Income
		}),
		mock.MatchedBy(func(asset domain.Asset) bool {
			return asset.CurrentValue.IsZero() && asset.InvestedAmount.Equal(decimal.NewFromInt(5000))
		}),
	).Return(nil).Once()

	_, asset, err := suite.service.WithdrawFromAsset(suite.ctx, suite.asset.AssetID, dto.AssetWithdrawRequest{
		Amount:        amount,
		BankAccountID: suite.bankAccount.BankAccountID,
	})

	suite.NoError(err)
	suite.True(asset.CurrentValue.IsZero())
	suite.True(asset.InvestedAmount.Equal(decimal.NewFromInt(5000)))
}

func (suite *LedgerServiceTestSuite) TestWithdrawRejectionIsIdempotent() {
	suite.asset.CurrentValue = decimal.NewFromInt(1000)

	for i := 0; i < 3; i++ {
		suite.expectAsset()
		_, _, err := suite.service.WithdrawFromAsset(suite.ctx, suite.asset.AssetID, dto.AssetWithdrawRequest{
			Amount:        decimal.NewFromInt(2000),
			BankAccountID: suite.bankAccount.BankAccountID,
		})
		suite.ErrorIs(err, services.ErrWithdrawalExceedsValue)
	}

	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "RecordWithAsset", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestVersionConflictPropagates() {
	suite.expectCard()
	suite.expectBankAccount()

	conflict := apperrors.NewConflictError("credit card was modified concurrently")
	suite.mockLedgerRepo.On("RecordWithCreditCard", suite.ctx, mock.Anything, mock.Anything).Return(conflict).Once()

	_, _, err := suite.service.PayCreditCard(suite.ctx, suite.card.CreditCardID, dto.PayCreditCardRequest{
		Amount:        decimal.NewFromInt(5000),
		BankAccountID: suite.bankAccount.BankAccountID,
	})

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *LedgerServiceTestSuite) TestRecordTransactionRoutesCardSpend() {
	suite.expectCard()
	suite.mockLedgerRepo.On("RecordWithCreditCard", suite.ctx, mock.Anything, mock.Anything).Return(nil).Once()

	txn, err := suite.service.RecordTransaction(suite.ctx, dto.CreateTransactionRequest{
		Amount:       decimal.NewFromInt(1500),
		Type:         "expense",
		Source:       "credit_card",
		Category:     "dining",
		CreditCardID: &suite.card.CreditCardID,
	})

	suite.NoError(err)
	suite.Equal(domain.SourceCreditCard, txn.Source)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "RecordTransaction", mock.Anything, mock.Anything)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordTransactionPlainEntry() {
	suite.mockLedgerRepo.On("RecordTransaction", suite.ctx,
		mock.MatchedBy(func(txn domain.Transaction) bool {
			return txn.Type == domain.Income && txn.Source == domain.SourceCash && txn.Category == "salary"
		}),
	).Return(nil).Once()

	txn, err := suite.service.RecordTransaction(suite.ctx, dto.CreateTransactionRequest{
		Amount:   decimal.NewFromInt(50000),
		Type:     "income",
		Source:   "cash",
		Category: "salary",
	})

	suite.NoError(err)
	suite.NotEmpty(txn.TransactionID)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordTransactionRejectsBadInput() {
	_, err := suite.service.RecordTransaction(suite.ctx, dto.CreateTransactionRequest{
		Amount: decimal.NewFromInt(-5), Type: "expense", Source: "cash", Category: "misc",
	})
	suite.ErrorIs(err, services.ErrNonPositiveAmount)

	_, err = suite.service.RecordTransaction(suite.ctx, dto.CreateTransactionRequest{
		Amount: decimal.NewFromInt(5), Type: "transfer", Source: "cash", Category: "misc",
	})
	suite.ErrorIs(err, services.ErrInvalidTransactionType)

	_, err = suite.service.RecordTransaction(suite.ctx, dto.CreateTransactionRequest{
		Amount: decimal.NewFromInt(5), Type: "expense", Source: "wallet", Category: "misc",
	})
	suite.ErrorIs(err, services.ErrInvalidTransactionSource)

	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "RecordTransaction", mock.Anything, mock.Anything)
}

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
