package models

// BankAccount is the persistence model for the bank_accounts table.
type BankAccount struct {
	BankAccountID string `json:"bankAccountID"`
	Name          string `json:"name"`
	AccountType   string `json:"accountType"`
	Notes         string `json:"notes"`
	AuditFields
	Version int64 `json:"version"`
}
