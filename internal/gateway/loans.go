package gateway

import (
	"context"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/models"
)

// InterestTerms - lists the available loan terms.
func (c *Client) InterestTerms(ctx context.Context, token string) ([]models.InterestTerm, error) {
	var terms []models.InterestTerm
	if err := c.get(ctx, "/interest-terms", token, &terms); err != nil {
		return nil, err
	}
	return terms, nil
}

// Cryptocurrencies - lists the supported cryptocurrencies.
func (c *Client) Cryptocurrencies(ctx context.Context, token string) ([]models.Cryptocurrency, error) {
	var cryptos []models.Cryptocurrency
	if err := c.get(ctx, "/crypto", token, &cryptos); err != nil {
		return nil, err
	}
	return cryptos, nil
}

// CreateLoanRequest - submits a borrower's ask for funds.
func (c *Client) CreateLoanRequest(ctx context.Context, token string, request models.NewLoanRequest) error {
	return c.do(ctx, "POST", "/loan-requests", token, request, nil)
}

// LoanRequests - lists loan requests of every status; views filter.
func (c *Client) LoanRequests(ctx context.Context, token string) ([]models.LoanRequest, error) {
	var loans []models.LoanRequest
	if err := c.get(ctx, "/loan-requests", token, &loans); err != nil {
		return nil, err
	}
	return loans, nil
}

// LoanRequest - fetches a single loan request by id.
func (c *Client) LoanRequest(ctx context.Context, token string, id string) (*models.LoanRequest, error) {
	var loan models.LoanRequest
	if err := c.get(ctx, "/loan-requests/"+id, token, &loan); err != nil {
		return nil, err
	}
	return &loan, nil
}

// FundLoan - creates a deal, i.e. funds a pending loan request.
// An insufficient-funds rejection comes back as ErrInsufficientFunds.
func (c *Client) FundLoan(ctx context.Context, token string, deal models.NewDeal) error {
	return c.do(ctx, "POST", "/deals", token, deal, nil)
}

// Deal - fetches a deal by id.
func (c *Client) Deal(ctx context.Context, token string, id string) (*models.Deal, error) {
	var deal models.Deal
	if err := c.get(ctx, "/deals/"+id, token, &deal); err != nil {
		return nil, err
	}
	return &deal, nil
}
