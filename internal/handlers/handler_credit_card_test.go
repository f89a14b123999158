package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintracker/personal_finance_app/internal/apperrors"
	"github.com/fintracker/personal_finance_app/internal/core/domain"
	portssvc "github.com/fintracker/personal_finance_app/internal/core/ports/services"
	"github.com/fintracker/personal_finance_app/internal/core/services"
	"github.com/fintracker/personal_finance_app/internal/dto"
	"github.com/fintracker/personal_finance_app/internal/handlers"
)

// --- Mock CreditCardService ---
type MockCreditCardService struct {
	mock.Mock
}

func (m *MockCreditCardService) CreateCreditCard(ctx context.Context, req dto.CreateCreditCardRequest) (*domain.CreditCard, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditCard), args.Error(1)
}

func (m *MockCreditCardService) GetCreditCardByID(ctx context.Context, creditCardID string) (*domain.CreditCard, error) {
	args := m.Called(ctx, creditCardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditCard), args.Error(1)
}

func (m *MockCreditCardService) ListCreditCards(ctx context.Context) ([]domain.CreditCard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditCard), args.Error(1)
}

var _ portssvc.CreditCardSvcFacade = (*MockCreditCardService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) RecordCardSpend(ctx context.Context, creditCardID string, req dto.RecordCardSpendRequest) (*domain.Transaction, *domain.CreditCard, error) {
	args := m.Called(ctx, creditCardID, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).(*domain.CreditCard), args.Error(2)
}

func (m *MockLedgerService) PayCreditCard(ctx context.Context, creditCardID string, req dto.PayCreditCardRequest) (*domain.Transaction, *domain.CreditCard, error) {
	args := m.Called(ctx, creditCardID, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).(*domain.CreditCard), args.Error(2)
}

func (m *MockLedgerService) ConvertCreditCardToEMI(ctx context.Context, creditCardID string, req dto.ConvertToEMIRequest) (*domain.Transaction, *domain.CreditCard, *domain.Loan, error) {
	args := m.Called(ctx, creditCardID, req)
	if args.Get(0) == nil {
		return nil, nil, nil, args.Error(3)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).(*domain.CreditCard), args.Get(2).(*domain.Loan), args.Error(3)
}

func (m *MockLedgerService) PayLoanEMI(ctx context.Context, loanID string, req dto.PayLoanEMIRequest) (*domain.Transaction, *domain.Loan, error) {
	args := m.Called(ctx, loanID, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).(*domain.Loan), args.Error(2)
}

func (m *MockLedgerService) InvestInAsset(ctx context.Context, assetID string, req dto.AssetInvestRequest) (*domain.Transaction, *domain.Asset, error) {
	args := m.Called(ctx, assetID, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).(*domain.Asset), args.Error(2)
}

func (m *MockLedgerService) WithdrawFromAsset(ctx context.Context, assetID string, req dto.AssetWithdrawRequest) (*domain.Transaction, *domain.Asset, error) {
	args := m.Called(ctx, assetID, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).(*domain.Asset), args.Error(2)
}

var _ portssvc.LedgerSvc = (*MockLedgerService)(nil)

// --- Test Suite ---
type CreditCardHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCardService *MockCreditCardService
	mockLedger      *MockLedgerService
}

func (suite *CreditCardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterValidations())
	suite.router = gin.New()

	suite.mockCardService = new(MockCreditCardService)
	suite.mockLedger = new(MockLedgerService)

	// Only the card and ledger services are exercised by these routes.
	container := &portssvc.ServiceContainer{
		CreditCard: suite.mockCardService,
		Ledger:     suite.mockLedger,
	}
	handlers.RegisterRoutes(suite.router, nil, container)
}

func (suite *CreditCardHandlerTestSuite) postJSON(url string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CreditCardHandlerTestSuite) TestCreateCreditCard_Success() {
	expected := &domain.CreditCard{
		CreditCardID:     uuid.NewString(),
		Name:             "Regalia",
		TotalLimit:       decimal.NewFromInt(100000),
		UsedAmount:       decimal.Zero,
		DueAmount:        decimal.Zero,
		EMIBlockedAmount: decimal.Zero,
		AuditFields:      domain.AuditFields{CreatedAt: time.Now()},
		Versioned:        domain.Versioned{Version: 1},
	}

	suite.mockCardService.On("CreateCreditCard",
		mock.Anything,
		mock.MatchedBy(func(req dto.CreateCreditCardRequest) bool {
			return req.Name == "Regalia" && req.TotalLimit.Equal(decimal.NewFromInt(100000))
		}),
	).Return(expected, nil).Once()

	w := suite.postJSON("/api/v1/credit-cards", gin.H{
		"name":       "Regalia",
		"totalLimit": "100000",
	})

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.CreditCardResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(expected.CreditCardID, body.CreditCardID)
	suite.True(body.AvailableCredit.Equal(decimal.NewFromInt(100000)))
	suite.mockCardService.AssertExpectations(suite.T())
}

func (suite *CreditCardHandlerTestSuite) TestCreateCreditCard_MissingFields() {
	w := suite.postJSON("/api/v1/credit-cards", gin.H{"name": "Regalia"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCardService.AssertNotCalled(suite.T(), "CreateCreditCard", mock.Anything, mock.Anything)
}

func (suite *CreditCardHandlerTestSuite) TestPayCard_Success() {
	cardID := uuid.NewString()
	bankAccountID := uuid.NewString()
	txn := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Amount:        decimal.NewFromInt(5000),
		Type:          domain.Expense,
		Source:        domain.SourceBank,
		Category:      domain.CategoryCreditCardPayment,
		CreditCardID:  &cardID,
		BankAccountID: &bankAccountID,
		CreatedAt:     time.Now(),
	}
	card := &domain.CreditCard{
		CreditCardID:     cardID,
		Name:             "Regalia",
		TotalLimit:       decimal.NewFromInt(100000),
		UsedAmount:       decimal.NewFromInt(15000),
		DueAmount:        decimal.NewFromInt(15000),
		EMIBlockedAmount: decimal.Zero,
		Versioned:        domain.Versioned{Version: 4},
	}

	suite.mockLedger.On("PayCreditCard",
		mock.Anything,
		cardID,
		mock.MatchedBy(func(req dto.PayCreditCardRequest) bool {
			return req.Amount.Equal(decimal.NewFromInt(5000)) && req.BankAccountID == bankAccountID
		}),
	).Return(txn, card, nil).Once()

	w := suite.postJSON(fmt.Sprintf("/api/v1/credit-cards/%s/payments", cardID), gin.H{
		"amount":        "5000",
		"bankAccountID": bankAccountID,
	})

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.CardPaymentResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(txn.TransactionID, body.Transaction.TransactionID)
	suite.True(body.CreditCard.DueAmount.Equal(decimal.NewFromInt(15000)))
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *CreditCardHandlerTestSuite) TestPayCard_AmountOverDue() {
	cardID := uuid.NewString()
	suite.mockLedger.On("PayCreditCard", mock.Anything, cardID, mock.Anything).
		Return(nil, nil, services.ErrPaymentExceedsDue).Once()

	w := suite.postJSON(fmt.Sprintf("/api/v1/credit-cards/%s/payments", cardID), gin.H{
		"amount":        "25000",
		"bankAccountID": uuid.NewString(),
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *CreditCardHandlerTestSuite) TestPayCard_VersionConflict() {
	cardID := uuid.NewString()
	suite.mockLedger.On("PayCreditCard", mock.Anything, cardID, mock.Anything).
		Return(nil, nil, apperrors.NewConflictError("credit card was modified concurrently")).Once()

	w := suite.postJSON(fmt.Sprintf("/api/v1/credit-cards/%s/payments", cardID), gin.H{
		"amount":        "5000",
		"bankAccountID": uuid.NewString(),
	})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *CreditCardHandlerTestSuite) TestConvertToEMI_Success() {
	cardID := uuid.NewString()
	txn := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Amount:        decimal.NewFromInt(10000),
		Type:          domain.Expense,
		Source:        domain.SourceCreditCard,
		Category:      domain.CategoryCCToEMIConversion,
		CreditCardID:  &cardID,
		CreatedAt:     time.Now(),
	}
	card := &domain.CreditCard{
		CreditCardID:     cardID,
		Name:             "Regalia",
		TotalLimit:       decimal.NewFromInt(100000),
		UsedAmount:       decimal.NewFromInt(20000),
		DueAmount:        decimal.NewFromInt(10000),
		EMIBlockedAmount: decimal.NewFromInt(10000),
		Versioned:        domain.Versioned{Version: 5},
	}
	loan := &domain.Loan{
		LoanID:            uuid.NewString(),
		Name:              "Regalia EMI",
		Principal:         decimal.NewFromInt(10000),
		EMIAmount:         decimal.NewFromInt(2000),
		TotalMonths:       6,
		RemainingMonths:   6,
		OutstandingAmount: decimal.NewFromInt(10000),
		IsActive:          true,
		Versioned:         domain.Versioned{Version: 1},
	}

	suite.mockLedger.On("ConvertCreditCardToEMI", mock.Anything, cardID, mock.Anything).
		Return(txn, card, loan, nil).Once()

	w := suite.postJSON(fmt.Sprintf("/api/v1/credit-cards/%s/emi-conversions", cardID), gin.H{
		"amount":       "10000",
		"emiAmount":    "2000",
		"tenureMonths": 6,
	})

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.EMIConversionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(loan.LoanID, body.Loan.LoanID)
	suite.True(body.CreditCard.EMIBlockedAmount.Equal(decimal.NewFromInt(10000)))
	suite.Equal(6, body.Loan.RemainingMonths)
}

func (suite *CreditCardHandlerTestSuite) TestGetCreditCard_NotFound() {
	cardID := uuid.NewString()
	suite.mockCardService.On("GetCreditCardByID", mock.Anything, cardID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/credit-cards/"+cardID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestCreditCardHandler(t *testing.T) {
	suite.Run(t, new(CreditCardHandlerTestSuite))
}
