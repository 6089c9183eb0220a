package models

import "github.com/shopspring/decimal"

// Wallet - custodial balance record held by the backend.
// The balance is authoritative server state, never computed here.
type Wallet struct {
	Balance decimal.Decimal `json:"balance"`
}

// WalletUpdate - signed balance adjustment: deposits are positive,
// withdrawals negative
type WalletUpdate struct {
	FundsDeposited decimal.Decimal `json:"fundsDeposited"`
}
