package gateway

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/models"
)

//go:generate mockgen -source=gateway.go -destination=mocks/mock_gateway.go -package=mocks

// Gateway - everything the views need from the lending backend.
type Gateway interface {
	Login(ctx context.Context, creds models.Credentials) (string, error)
	Register(ctx context.Context, creds models.Credentials) error

	WalletBalance(ctx context.Context, token string) (*models.Wallet, error)
	CreateWallet(ctx context.Context, token string) error
	AdjustWallet(ctx context.Context, token string, delta decimal.Decimal) (*models.Wallet, error)
	DeleteWallet(ctx context.Context, token string) error

	InterestTerms(ctx context.Context, token string) ([]models.InterestTerm, error)
	Cryptocurrencies(ctx context.Context, token string) ([]models.Cryptocurrency, error)

	CreateLoanRequest(ctx context.Context, token string, request models.NewLoanRequest) error
	LoanRequests(ctx context.Context, token string) ([]models.LoanRequest, error)
	LoanRequest(ctx context.Context, token string, id string) (*models.LoanRequest, error)
	FundLoan(ctx context.Context, token string, deal models.NewDeal) error
	Deal(ctx context.Context, token string, id string) (*models.Deal, error)

	UserTransactions(ctx context.Context, token string, userID string) ([]models.Transaction, error)

	DealsComplete(ctx context.Context, token string) ([]models.Deal, error)
	DealsIncomplete(ctx context.Context, token string) ([]models.Deal, error)
	DealsActive(ctx context.Context, token string) ([]models.Deal, error)
	AverageInterestRate(ctx context.Context, token string) (decimal.Decimal, error)
	CollateralTotal(ctx context.Context, token string) (decimal.Decimal, error)
	AdminUsers(ctx context.Context, token string) ([]models.AdminUser, error)
	UpdateUser(ctx context.Context, token string, id string, update models.UserUpdate) error
	DeleteUser(ctx context.Context, token string, id string) error

	BitcoinPrice(ctx context.Context) (decimal.Decimal, error)
}
