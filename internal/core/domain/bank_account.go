package domain

// BankAccount represents a bank account used to fund ledger operations.
// Cash/bank balances are implicit: they are derived from the transaction log,
// not stored on the account row.
type BankAccount struct {
	BankAccountID string `json:"bankAccountID"` // Primary Key (UUID)
	Name          string `json:"name"`          // Non-empty, user-defined
	AccountType   string `json:"accountType"`   // e.g. Savings, Current, Salary
	Notes         string `json:"notes"`         // Nullable
	AuditFields
	Versioned
}
