package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionParty - either side of a payment
type TransactionParty struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Transaction - a scheduled or settled payment between two users
type Transaction struct {
	ID                  string           `json:"_id"`
	FromUser            TransactionParty `json:"fromUser"`
	ToUser              TransactionParty `json:"toUser"`
	Amount              decimal.Decimal  `json:"amount"`
	ExpectedPaymentDate time.Time        `json:"expectedPaymentDate"`
	PaymentStatus       string           `json:"paymentStatus"`
	IsLoanRepayment     bool             `json:"isLoanRepayment"`
}
