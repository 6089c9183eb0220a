package models

import "github.com/shopspring/decimal"

// InterestTerm - a (duration, rate) pair a borrower selects for a loan
type InterestTerm struct {
	ID               string          `json:"_id"`
	LoanLengthMonths int             `json:"loan_length"`
	InterestRate     decimal.Decimal `json:"interest_rate"`
}

// Cryptocurrency - reference data for dropdowns and tables
type Cryptocurrency struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}
