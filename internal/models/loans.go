package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan request statuses known to the frontend
const (
	LoanStatusPending = "pending"
	LoanStatusFunded  = "funded"
	LoanStatusExpired = "expired"
)

// Borrower - the party behind a loan request, as embedded by the backend
type Borrower struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoanRequest - a borrower's open ask for funds
type LoanRequest struct {
	ID             string          `json:"_id"`
	Borrower       Borrower        `json:"borrower_id"`
	Amount         decimal.Decimal `json:"request_amount"`
	Cryptocurrency Cryptocurrency  `json:"cryptocurrency"`
	InterestTerm   InterestTerm    `json:"interest_term"`
	ExpiryDate     time.Time       `json:"expiry_date"`
	Status         string          `json:"status"`
}

// NewLoanRequest - payload for creating a loan request
type NewLoanRequest struct {
	Amount         decimal.Decimal `json:"request_amount"`
	Cryptocurrency string          `json:"cryptocurrency"`
	InterestTerm   string          `json:"interest_term"`
}

// NewDeal - payload for funding a loan
type NewDeal struct {
	LenderID    string `json:"lenderId"`
	LoanDetails string `json:"loanDetails"`
}

// Deal - an accepted loan request matched to a lender
type Deal struct {
	ID                     string          `json:"_id"`
	BorrowerEmail          string          `json:"borrowerEmail"`
	LenderEmail            string          `json:"lenderEmail"`
	Amount                 decimal.Decimal `json:"amount"`
	Status                 string          `json:"dealStatus"`
	ExpectedCompletionDate time.Time       `json:"expectedCompletionDate"`
	IsComplete             bool            `json:"isComplete"`
}
