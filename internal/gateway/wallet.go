package gateway

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/models"
)

// WalletBalance - fetches the caller's wallet. 404 means no wallet yet,
// which the views treat as a state of its own.
func (c *Client) WalletBalance(ctx context.Context, token string) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := c.get(ctx, "/wallet-balance", token, &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

// CreateWallet - requests a wallet for the caller. 409 means one exists.
func (c *Client) CreateWallet(ctx context.Context, token string) error {
	return c.do(ctx, "POST", "/wallets", token, nil, nil)
}

// AdjustWallet - moves the balance by a signed amount: deposits positive,
// withdrawals negative. The backend re-validates; the returned wallet is
// the authoritative balance.
func (c *Client) AdjustWallet(ctx context.Context, token string, delta decimal.Decimal) (*models.Wallet, error) {
	var wallet models.Wallet
	update := models.WalletUpdate{FundsDeposited: delta}
	if err := c.do(ctx, "PUT", "/wallets", token, update, &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

// DeleteWallet - removes the caller's wallet. 409 means funds are still
// present.
func (c *Client) DeleteWallet(ctx context.Context, token string) error {
	return c.do(ctx, "DELETE", "/wallets", token, nil, nil)
}
