package services

import (
	portsrepo "github.com/fintracker/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/fintracker/personal_finance_app/internal/core/ports/services"
)

// NewServiceContainer wires every service against the repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		BankAccount: NewBankAccountService(repos.BankAccountRepo),
		CreditCard:  NewCreditCardService(repos.CreditCardRepo),
		Loan:        NewLoanService(repos.LoanRepo),
		Asset:       NewAssetService(repos.AssetRepo),
		Ledger: NewLedgerService(
			repos.LedgerRepo,
			repos.CreditCardRepo,
			repos.LoanRepo,
			repos.AssetRepo,
			repos.BankAccountRepo,
		),
		Transaction: NewTransactionService(repos.TransactionRepo),
		Reporting:   NewReportingService(repos.ReportingRepo),
	}
}
