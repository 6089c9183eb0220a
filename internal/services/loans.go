package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/gateway"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/logger"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/mask"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/models"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/session"
)

var ErrNotLoggedIn = errors.New("user not logged in")

// LoanRequestForm - the request-loan form as submitted.
type LoanRequestForm struct {
	Amount         string `validate:"required"`
	InterestTermID string `validate:"required"`
	CryptoID       string `validate:"required"`
}

type LoansService interface {
	Browse(ctx context.Context, token string) ([]models.LoanRow, error)
	Details(ctx context.Context, token string, id string, viewer *session.Identity) (*models.LoanDetailsView, error)
	Fund(ctx context.Context, token string, loanID string, viewer *session.Identity) (*models.LoanDetailsView, error)
	RequestForm(ctx context.Context, token string) (*models.LoanFormView, error)
	SubmitRequest(ctx context.Context, token string, form LoanRequestForm) error
}

type Loans struct {
	Gateway gateway.Gateway
}

func NewLoans(gw gateway.Gateway) LoansService {
	return &Loans{Gateway: gw}
}

// Browse - the open marketplace: only pending requests are shown and the
// borrower's identity is masked for other users.
func (s *Loans) Browse(ctx context.Context, token string) ([]models.LoanRow, error) {
	loans, err := s.Gateway.LoanRequests(ctx, token)
	if err != nil {
		logger.Error("Failed to list loan requests", err)
		return nil, err
	}

	rows := make([]models.LoanRow, 0, len(loans))
	for _, loan := range loans {
		if loan.Status != models.LoanStatusPending {
			continue
		}
		rows = append(rows, models.LoanRow{
			ID:           loan.ID,
			BorrowerName: mask.Name(loan.Borrower.Name),
			Amount:       loan.Amount,
			Symbol:       loan.Cryptocurrency.Symbol,
			LengthMonths: loan.InterestTerm.LoanLengthMonths,
			InterestRate: loan.InterestTerm.InterestRate,
			ExpiryDate:   loan.ExpiryDate,
		})
	}
	return rows, nil
}

// Details - fetches a single loan. A 404 propagates so the handler can
// render the not-found state instead of a generic error.
func (s *Loans) Details(ctx context.Context, token string, id string, viewer *session.Identity) (*models.LoanDetailsView, error) {
	loan, err := s.Gateway.LoanRequest(ctx, token, id)
	if err != nil {
		return nil, err
	}

	view := &models.LoanDetailsView{
		ID:            loan.ID,
		BorrowerName:  mask.Name(loan.Borrower.Name),
		BorrowerEmail: mask.Email(loan.Borrower.Email),
		Amount:        loan.Amount,
		Symbol:        loan.Cryptocurrency.Symbol,
		LengthMonths:  loan.InterestTerm.LoanLengthMonths,
		InterestRate:  loan.InterestTerm.InterestRate,
		ExpiryDate:    loan.ExpiryDate,
		Status:        loan.Status,
		IsPending:     loan.Status == models.LoanStatusPending,
	}
	if viewer != nil && viewer.UserID != "" && viewer.UserID != loan.Borrower.ID {
		view.CanFund = view.IsPending
	}
	return view, nil
}

// Fund - creates a deal for the loan on the viewer's behalf, then re-fetches
// the loan so the rendered status reflects the funding.
func (s *Loans) Fund(ctx context.Context, token string, loanID string, viewer *session.Identity) (*models.LoanDetailsView, error) {
	if viewer == nil || viewer.UserID == "" {
		return nil, ErrNotLoggedIn
	}

	deal := models.NewDeal{LenderID: viewer.UserID, LoanDetails: loanID}
	if err := s.Gateway.FundLoan(ctx, token, deal); err != nil {
		logger.Warn("Funding rejected", loanID, err)
		return nil, err
	}

	logger.Info("Loan funded", loanID, viewer.Email)
	return s.Details(ctx, token, loanID, viewer)
}

// RequestForm - loads both dropdown datasets concurrently; the form cannot
// render without either, so a failure in one aborts the other.
func (s *Loans) RequestForm(ctx context.Context, token string) (*models.LoanFormView, error) {
	var view models.LoanFormView

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		terms, err := s.Gateway.InterestTerms(ctx, token)
		if err == nil {
			view.Terms = terms
		}
		return err
	})
	g.Go(func() error {
		cryptos, err := s.Gateway.Cryptocurrencies(ctx, token)
		if err == nil {
			view.Cryptos = cryptos
		}
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("Failed to load loan form data", err)
		return nil, err
	}
	return &view, nil
}

// SubmitRequest - validates and submits a new loan request.
func (s *Loans) SubmitRequest(ctx context.Context, token string, form LoanRequestForm) error {
	if err := validate.Struct(form); err != nil {
		return err
	}
	amount, err := decimal.NewFromString(form.Amount)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	request := models.NewLoanRequest{
		Amount:         amount,
		Cryptocurrency: form.CryptoID,
		InterestTerm:   form.InterestTermID,
	}
	return s.Gateway.CreateLoanRequest(ctx, token, request)
}
