package gateway

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/models"
)

// DealsComplete - lists settled deals for the admin dashboard.
func (c *Client) DealsComplete(ctx context.Context, token string) ([]models.Deal, error) {
	var deals []models.Deal
	if err := c.get(ctx, "/admin/deals-complete", token, &deals); err != nil {
		return nil, err
	}
	return deals, nil
}

// DealsIncomplete - lists deals that fell through or are overdue.
func (c *Client) DealsIncomplete(ctx context.Context, token string) ([]models.Deal, error) {
	var deals []models.Deal
	if err := c.get(ctx, "/admin/deals-incomplete", token, &deals); err != nil {
		return nil, err
	}
	return deals, nil
}

// DealsActive - lists deals still being repaid.
func (c *Client) DealsActive(ctx context.Context, token string) ([]models.Deal, error) {
	var deals []models.Deal
	if err := c.get(ctx, "/admin/deals-active", token, &deals); err != nil {
		return nil, err
	}
	return deals, nil
}

type rateResponse struct {
	AverageInterestRate decimal.Decimal `json:"averageInterestRate"`
}

// AverageInterestRate - derived stat; callers treat a failure as a default
// value, not as a dashboard failure.
func (c *Client) AverageInterestRate(ctx context.Context, token string) (decimal.Decimal, error) {
	var resp rateResponse
	if err := c.get(ctx, "/admin/average-interest-rate", token, &resp); err != nil {
		return decimal.Zero, err
	}
	return resp.AverageInterestRate, nil
}

type collateralResponse struct {
	Total decimal.Decimal `json:"total"`
}

// CollateralTotal - derived stat, same degradation contract as the average
// interest rate.
func (c *Client) CollateralTotal(ctx context.Context, token string) (decimal.Decimal, error) {
	var resp collateralResponse
	if err := c.get(ctx, "/admin/collateral/total", token, &resp); err != nil {
		return decimal.Zero, err
	}
	return resp.Total, nil
}

// AdminUsers - lists every user account.
func (c *Client) AdminUsers(ctx context.Context, token string) ([]models.AdminUser, error) {
	var users []models.AdminUser
	if err := c.get(ctx, "/admin/users", token, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser - applies a partial user update (activate/deactivate).
func (c *Client) UpdateUser(ctx context.Context, token string, id string, update models.UserUpdate) error {
	return c.do(ctx, "PUT", "/users/"+id, token, update, nil)
}

// DeleteUser - removes a user account.
func (c *Client) DeleteUser(ctx context.Context, token string, id string) error {
	return c.do(ctx, "DELETE", "/users/"+id, token, nil, nil)
}
