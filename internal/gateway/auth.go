package gateway

import (
	"context"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/models"
)

// Login - exchanges credentials for a bearer token. Goes out without a
// bearer header.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (string, error) {
	var resp models.LoginResponse
	if err := c.do(ctx, "POST", "/login", "", creds, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Register - creates a new user account.
func (c *Client) Register(ctx context.Context, creds models.Credentials) error {
	return c.do(ctx, "POST", "/users", "", creds, nil)
}
