package gateway

import (
	"context"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/models"
)

// UserTransactions - lists a user's scheduled and settled payments.
func (c *Client) UserTransactions(ctx context.Context, token string, userID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := c.get(ctx, "/transactions/user/"+userID, token, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}
