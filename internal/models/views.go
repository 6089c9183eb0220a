package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Template view models. Amounts stay decimal until the template formats
// them; identity fields arrive pre-masked where the viewer is not a party.

// WalletView - the wallet page state
type WalletView struct {
	HasWallet bool
	Balance   decimal.Decimal
}

// LoanRow - one row of the loan browse table
type LoanRow struct {
	ID           string
	BorrowerName string
	Amount       decimal.Decimal
	Symbol       string
	LengthMonths int
	InterestRate decimal.Decimal
	ExpiryDate   time.Time
}

// LoanDetailsView - the loan detail / funding page
type LoanDetailsView struct {
	ID            string
	BorrowerName  string
	BorrowerEmail string
	Amount        decimal.Decimal
	Symbol        string
	LengthMonths  int
	InterestRate  decimal.Decimal
	ExpiryDate    time.Time
	Status        string
	IsPending     bool
	CanFund       bool
	// set when funding was rejected for insufficient funds, so the page
	// offers a jump to the wallet
	WalletShortcut bool
}

// LoanFormView - reference data backing the request-loan form
type LoanFormView struct {
	Terms   []InterestTerm
	Cryptos []Cryptocurrency
}

// RequestLoanView - the request-loan page: form data plus whatever the user
// already picked, so selections survive a round-trip.
type RequestLoanView struct {
	Form           LoanFormView
	Amount         string
	SelectedCrypto string
	SelectedTerm   string
}

// TransactionRow - one row of the transactions table, counterparty masked
type TransactionRow struct {
	Counterparty        string
	Amount              decimal.Decimal
	ExpectedPaymentDate time.Time
	PaymentStatus       string
	IsLoanRepayment     bool
}

// TransactionsView - transactions split by direction relative to the viewer
type TransactionsView struct {
	Incoming []TransactionRow
	Outgoing []TransactionRow
}

// AdminDashboardView - aggregate stats for administrators
type AdminDashboardView struct {
	CompleteCount       int
	IncompleteCount     int
	ActiveCount         int
	ActiveDeals         []Deal
	AverageInterestRate decimal.Decimal
	CollateralTotal     decimal.Decimal
	DemoData            bool
}

// CalculatorView - the interest calculator page
type CalculatorView struct {
	Terms          []InterestTerm
	Amount         decimal.Decimal
	SelectedTermID string
	Interest       decimal.Decimal
	TotalRepayable decimal.Decimal
	HasResult      bool
}
