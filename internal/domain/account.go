package domain

import "time"

type AccountType string

const (
	AccountSavings  AccountType = "savings"
	AccountChecking AccountType = "checking"
)

type BankAccount struct {
	ID            string      `json:"id"`
	UserID        string      `json:"user_id"`
	BankName      string      `json:"bank_name"`
	AccountNumber string      `json:"account_number"`
	Currency      Currency    `json:"currency"`
	AccountType   AccountType `json:"account_type"`
	CreatedAt     time.Time   `json:"created_at"`
}

// FilterByCurrency keeps accounts held in c, preserving order.
func FilterByCurrency(accounts []BankAccount, c Currency) []BankAccount {
	out := make([]BankAccount, 0, len(accounts))
	for _, acc := range accounts {
		if acc.Currency == c {
			out = append(out, acc)
		}
	}
	return out
}
