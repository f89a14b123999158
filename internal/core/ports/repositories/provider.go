package repositories

// RepositoryProvider bundles all repository facades the service layer needs.
// Constructed once by the persistence package and handed to service wiring.
type RepositoryProvider struct {
	BankAccountRepo BankAccountRepositoryFacade
	CreditCardRepo  CreditCardRepositoryFacade
	LoanRepo        LoanRepositoryFacade
	AssetRepo       AssetRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	LedgerRepo      LedgerRepositoryFacade
	ReportingRepo   ReportingRepository
}
