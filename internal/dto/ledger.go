package dto

// The ledger endpoints return the transaction that was appended together
// with the entity state the same atomic unit produced, so clients never
// have to re-fetch to see the post-operation balances.

// CardPaymentResponse is returned after paying down a credit card.
type CardPaymentResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	CreditCard  CreditCardResponse  `json:"creditCard"`
}

// CardSpendResponse is returned after charging a spend to a credit card.
type CardSpendResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	CreditCard  CreditCardResponse  `json:"creditCard"`
}

// EMIConversionResponse is returned after converting card due into a loan.
type EMIConversionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	CreditCard  CreditCardResponse  `json:"creditCard"`
	Loan        LoanResponse        `json:"loan"`
}

// EMIPaymentResponse is returned after paying one loan installment.
type EMIPaymentResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Loan        LoanResponse        `json:"loan"`
}

// AssetInvestmentResponse is returned after investing into an asset.
type AssetInvestmentResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Asset       AssetResponse       `json:"asset"`
}

// AssetWithdrawalResponse is returned after withdrawing from an asset.
type AssetWithdrawalResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Asset       AssetResponse       `json:"asset"`
}
