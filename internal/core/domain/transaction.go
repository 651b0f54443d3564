package domain

import "time"

// TransactionType classifies a balance mutation.
type TransactionType string

const (
	TransactionTypeCredit   TransactionType = "credit"
	TransactionTypeDebit    TransactionType = "debit"
	TransactionTypePurchase TransactionType = "purchase"
)

// Transaction is an immutable audit record of a balance mutation. One row is
// appended per mutating ledger operation, committed in the same database
// transaction as the balance update it records.
type Transaction struct {
	ID           int64           `json:"id"`
	MerchantID   string          `json:"merchant_id"`
	UserID       string          `json:"user_id"`
	Amount       int64           `json:"amount"` // always positive
	Type         TransactionType `json:"transaction_type"`
	BalanceAfter int64           `json:"balance_after"`
	CreatedAt    time.Time       `json:"created_at"`
}
