package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintracker/personal_finance_app/internal/apperrors"
	"github.com/fintracker/personal_finance_app/internal/core/domain"
	portsrepo "github.com/fintracker/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/fintracker/personal_finance_app/internal/core/ports/services"
	"github.com/fintracker/personal_finance_app/internal/dto"
	"github.com/fintracker/personal_finance_app/internal/middleware"
)

var (
	ErrNonPositiveAmount        = fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	ErrInvalidTransactionType   = fmt.Errorf("transaction type must be income or expense: %w", apperrors.ErrValidation)
	ErrInvalidTransactionSource = fmt.Errorf("transaction source must be cash, bank or credit_card: %w", apperrors.ErrValidation)
	ErrPaymentExceedsDue        = fmt.Errorf("payment amount exceeds the card's due amount: %w", apperrors.ErrValidation)
	ErrConversionExceedsDue     = fmt.Errorf("conversion amount exceeds the card's due amount: %w", apperrors.ErrValidation)
	ErrNoRemainingInstallments  = fmt.Errorf("loan has no remaining installments: %w", apperrors.ErrValidation)
	ErrWithdrawalExceedsValue   = fmt.Errorf("withdrawal amount exceeds the asset's current value: %w", apperrors.ErrValidation)
)

// ledgerService implements the atomic ledger operations. Every write path
// validates first, then hands the transaction plus the recomputed entity
// snapshot to the ledger repository, which commits them as one unit. A
// version conflict aborts the whole unit; the caller re-reads and retries,
// never this service.
type ledgerService struct {
	ledgerRepo portsrepo.LedgerRepositoryFacade
	cardRepo   portsrepo.CreditCardReader
	loanRepo   portsrepo.LoanReader
	assetRepo  portsrepo.AssetReader
	bankRepo   portsrepo.BankAccountReader
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	cardRepo portsrepo.CreditCardReader,
	loanRepo portsrepo.LoanReader,
	assetRepo portsrepo.AssetReader,
	bankRepo portsrepo.BankAccountReader,
) portssvc.LedgerSvc {
	return &ledgerService{
		ledgerRepo: ledgerRepo,
		cardRepo:   cardRepo,
		loanRepo:   loanRepo,
		assetRepo:  assetRepo,
		bankRepo:   bankRepo,
	}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

// floorZero clamps d at zero.
func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// newTransaction builds a log row with a fresh ID and timestamp.
func newTransaction(amount decimal.Decimal, txnType domain.TransactionType, source domain.TransactionSource, category string) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		Amount:        amount,
		Type:          txnType,
		Source:        source,
		Category:      category,
		CreatedAt:     time.Now(),
	}
}

// requireBankAccount verifies the funding account exists before the atomic
// unit opens. The account row itself is not mutated; bank balances are
// derived from the log.
func (s *ledgerService) requireBankAccount(ctx context.Context, bankAccountID string) error {
	_, err := s.bankRepo.FindBankAccountByID(ctx, bankAccountID)
	return err
}

// RecordTransaction appends a plain income/expense entry. A card-sourced
// expense that references a card is not plain: it must move the card's
// balance buckets, so it is routed through the card-spend unit.
func (s *ledgerService) RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	txnType := domain.TransactionType(req.Type)
	if !domain.ValidType(txnType) {
		return nil, ErrInvalidTransactionType
	}
	source := domain.TransactionSource(req.Source)
	if !domain.ValidSource(source) {
		return nil, ErrInvalidTransactionSource
	}

	if source == domain.SourceCreditCard && txnType == domain.Expense && req.CreditCardID != nil {
		txn, _, err := s.RecordCardSpend(ctx, *req.CreditCardID, dto.RecordCardSpendRequest{
			Amount:   req.Amount,
			Category: req.Category,
		})
		return txn, err
	}

	if req.BankAccountID != nil {
		if err := s.requireBankAccount(ctx, *req.BankAccountID); err != nil {
			return nil, err
		}
	}

	txn := newTransaction(req.Amount, txnType, source, req.Category)
	txn.BankAccountID = req.BankAccountID

	if err := s.ledgerRepo.RecordTransaction(ctx, txn); err != nil {
		logger.Error("Failed to record transaction", slog.String("error", err.Error()), slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	logger.Info("Transaction recorded", slog.String("transaction_id", txn.TransactionID), slog.String("category", txn.Category))
	return &txn, nil
}

// RecordCardSpend charges an expense to a card: used and due rise together,
// so the due bucket always accounts for every uncleared rupee of spend.
func (s *ledgerService) RecordCardSpend(ctx context.Context, creditCardID string, req dto.RecordCardSpendRequest) (*domain.Transaction, *domain.CreditCard, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, nil, ErrNonPositiveAmount
	}

	card, err := s.cardRepo.FindCreditCardByID(ctx, creditCardID)
	if err != nil {
		return nil, nil, err
	}

	card.UsedAmount = card.UsedAmount.Add(req.Amount)
	card.DueAmount = card.DueAmount.Add(req.Amount)
	card.LastUpdatedAt = time.Now()

	txn := newTransaction(req.Amount, domain.Expense, domain.SourceCreditCard, req.Category)
	txn.CreditCardID = &card.CreditCardID

	if err := s.ledgerRepo.RecordWithCreditCard(ctx, txn, *card); err != nil {
		s.logUnitFailure(logger, "card spend", err, slog.String("credit_card_id", creditCardID))
		return nil, nil, err
	}
	card.Version++

	logger.Info("Card spend recorded", slog.String("transaction_id", txn.TransactionID), slog.String("credit_card_id", creditCardID))
	return &txn, card, nil
}

// PayCreditCard pays down the card's due from a bank account. Due and used
// fall together; used is floored at zero in case historical spend predates
// the card's tracking.
func (s *ledgerService) PayCreditCard(ctx context.Context, creditCardID string, req dto.PayCreditCardRequest) (*domain.Transaction, *domain.CreditCard, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, nil, ErrNonPositiveAmount
	}

	card, err := s.cardRepo.FindCreditCardByID(ctx, creditCardID)
	if err != nil {
		return nil, nil, err
	}
	if req.Amount.GreaterThan(card.DueAmount) {
		return nil, nil, ErrPaymentExceedsDue
	}
	if err := s.requireBankAccount(ctx, req.BankAccountID); err != nil {
		return nil, nil, err
	}

	card.DueAmount = card.DueAmount.Sub(req.Amount)
	card.UsedAmount = floorZero(card.UsedAmount.Sub(req.Amount))
	card.LastUpdatedAt = time.Now()

	txn := newTransaction(req.Amount, domain.Expense, domain.SourceBank, domain.CategoryCreditCardPayment)
	txn.CreditCardID = &card.CreditCardID
	txn.BankAccountID = &req.BankAccountID

	if err := s.ledgerRepo.RecordWithCreditCard(ctx, txn, *card); err != nil {
		s.logUnitFailure(logger, "card payment", err, slog.String("credit_card_id", creditCardID))
		return nil, nil, err
	}
	card.Version++

	logger.Info("Credit card payment recorded", slog.String("transaction_id", txn.TransactionID), slog.String("credit_card_id", creditCardID), slog.String("amount", req.Amount.String()))
	return &txn, card, nil
}

// ConvertCreditCardToEMI moves part of the card's due into a new loan. The
// debt does not leave the books: it shifts from the revolving due bucket to
// the EMI-blocked bucket, which still counts against the limit until the
// loan is paid off.
func (s *ledgerService) ConvertCreditCardToEMI(ctx context.Context, creditCardID string, req dto.ConvertToEMIRequest) (*domain.Transaction, *domain.CreditCard, *domain.Loan, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() || !req.EMIAmount.IsPositive() {
		return nil, nil, nil, ErrNonPositiveAmount
	}
	if req.TenureMonths <= 0 {
		return nil, nil, nil, fmt.Errorf("tenure must be at least one month: %w", apperrors.ErrValidation)
	}

	card, err := s.cardRepo.FindCreditCardByID(ctx, creditCardID)
	if err != nil {
		return nil, nil, nil, err
	}
	if req.Amount.GreaterThan(card.DueAmount) {
		return nil, nil, nil, ErrConversionExceedsDue
	}

	now := time.Now()
	card.DueAmount = card.DueAmount.Sub(req.Amount)
	card.EMIBlockedAmount = card.EMIBlockedAmount.Add(req.Amount)
	card.LastUpdatedAt = now

	loan := domain.Loan{
		LoanID:            uuid.NewString(),
		Name:              card.Name + " EMI",
		Principal:         req.Amount,
		EMIAmount:         req.EMIAmount,
		TotalMonths:       req.TenureMonths,
		RemainingMonths:   req.TenureMonths,
		OutstandingAmount: req.Amount,
		IsActive:          true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
		Versioned: domain.Versioned{Version: 1},
	}

	txn := newTransaction(req.Amount, domain.Expense, domain.SourceCreditCard, domain.CategoryCCToEMIConversion)
	txn.CreditCardID = &card.CreditCardID

	if err := s.ledgerRepo.RecordConversion(ctx, txn, *card, loan); err != nil {
		s.logUnitFailure(logger, "emi conversion", err, slog.String("credit_card_id", creditCardID))
		return nil, nil, nil, err
	}
	card.Version++

	logger.Info("Card due converted to EMI", slog.String("transaction_id", txn.TransactionID), slog.String("credit_card_id", creditCardID), slog.String("loan_id", loan.LoanID))
	return &txn, card, &loan, nil
}

// PayLoanEMI pays one installment. Outstanding is reduced by the EMI amount
// and floored at zero; interest is not modeled, so a shortfall between
// principal and emi*months is accepted rather than corrected.
func (s *ledgerService) PayLoanEMI(ctx context.Context, loanID string, req dto.PayLoanEMIRequest) (*domain.Transaction, *domain.Loan, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		return nil, nil, err
	}
	if !loan.IsActive || loan.RemainingMonths <= 0 {
		return nil, nil, ErrNoRemainingInstallments
	}
	if err := s.requireBankAccount(ctx, req.BankAccountID); err != nil {
		return nil, nil, err
	}

	loan.RemainingMonths--
	loan.OutstandingAmount = floorZero(loan.OutstandingAmount.Sub(loan.EMIAmount))
	loan.IsActive = loan.RemainingMonths > 0
	loan.LastUpdatedAt = time.Now()

	txn := newTransaction(loan.EMIAmount, domain.Expense, domain.SourceBank, domain.CategoryLoanEMI)
	txn.BankAccountID = &req.BankAccountID

	if err := s.ledgerRepo.RecordWithLoan(ctx, txn, *loan); err != nil {
		s.logUnitFailure(logger, "emi payment", err, slog.String("loan_id", loanID))
		return nil, nil, err
	}
	loan.Version++

	logger.Info("Loan EMI paid", slog.String("transaction_id", txn.TransactionID), slog.String("loan_id", loanID), slog.Int("remaining_months", loan.RemainingMonths))
	return &txn, loan, nil
}

// InvestInAsset moves fresh capital into an asset: cost basis and market
// value rise equally at the moment of investing.
func (s *ledgerService) InvestInAsset(ctx context.Context, assetID string, req dto.AssetInvestRequest) (*domain.Transaction, *domain.Asset, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, nil, ErrNonPositiveAmount
	}

	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, nil, err
	}
	if err := s.requireBankAccount(ctx, req.BankAccountID); err != nil {
		return nil, nil, err
	}

	asset.InvestedAmount = asset.InvestedAmount.Add(req.Amount)
	asset.CurrentValue = asset.CurrentValue.Add(req.Amount)
	asset.LastUpdatedAt = time.Now()

	txn := newTransaction(req.Amount, domain.Expense, domain.SourceBank, domain.CategoryAssetInvestment)
	txn.AssetID = &asset.AssetID
	txn.BankAccountID = &req.BankAccountID

	if err := s.ledgerRepo.RecordWithAsset(ctx, txn, *asset); err != nil {
		s.logUnitFailure(logger, "asset investment", err, slog.String("asset_id", assetID))
		return nil, nil, err
	}
	asset.Version++

	logger.Info("Asset investment recorded", slog.String("transaction_id", txn.TransactionID), slog.String("asset_id", assetID), slog.String("amount", req.Amount.String()))
	return &txn, asset, nil
}

// WithdrawFromAsset realizes value out of an asset. Only the market value
// falls; the cost basis stays as the record of historical contributions.
func (s *ledgerService) WithdrawFromAsset(ctx context.Context, assetID string, req dto.AssetWithdrawRequest) (*domain.Transaction, *domain.Asset, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, nil, ErrNonPositiveAmount
	}

	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, nil, err
	}
	if req.Amount.GreaterThan(asset.CurrentValue) {
		return nil, nil, ErrWithdrawalExceedsValue
	}
	if err := s.requireBankAccount(ctx, req.BankAccountID); err != nil {
		return nil, nil, err
	}

	asset.CurrentValue = asset.CurrentValue.Sub(req.Amount)
	asset.LastUpdatedAt = time.Now()

	txn := newTransaction(req.Amount, domain.Income, domain.SourceBank, domain.CategoryAssetWithdrawal)
	txn.AssetID = &asset.AssetID
	txn.BankAccountID = &req.BankAccountID

	if err := s.ledgerRepo.RecordWithAsset(ctx, txn, *asset); err != nil {
		s.logUnitFailure(logger, "asset withdrawal", err, slog.String("asset_id", assetID))
		return nil, nil, err
	}
	asset.Version++

	logger.Info("Asset withdrawal recorded", slog.String("transaction_id", txn.TransactionID), slog.String("asset_id", assetID), slog.String("amount", req.Amount.String()))
	return &txn, asset, nil
}

// logUnitFailure logs a failed atomic unit. Conflicts are expected under
// concurrency and logged at warn; everything else is an error.
func (s *ledgerService) logUnitFailure(logger *slog.Logger, op string, err error, attrs ...any) {
	attrs = append(attrs, slog.String("error", err.Error()))
	if errors.Is(err, apperrors.ErrConflict) {
		logger.Warn("Ledger unit aborted on version conflict: "+op, attrs...)
		return
	}
	logger.Error("Ledger unit failed: "+op, attrs...)
}
