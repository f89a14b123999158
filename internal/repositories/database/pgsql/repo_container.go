package pgsql

import (
	portsrepo "github.com/fintracker/personal_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository against one pool. The
// ledger repository reuses the entity repositories' transaction support so
// all conditional-update SQL lives in exactly one place.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	bankAccountRepo := newPgxBankAccountRepository(dbPool)
	creditCardRepo := newPgxCreditCardRepository(dbPool)
	loanRepo := newPgxLoanRepository(dbPool)
	assetRepo := newPgxAssetRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool, transactionRepo, creditCardRepo, loanRepo, assetRepo)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		BankAccountRepo: bankAccountRepo,
		CreditCardRepo:  creditCardRepo,
		LoanRepo:        loanRepo,
		AssetRepo:       assetRepo,
		TransactionRepo: transactionRepo,
		LedgerRepo:      ledgerRepo,
		ReportingRepo:   reportingRepo,
	}
}
