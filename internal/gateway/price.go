package gateway

import (
	"context"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// priceResponse - shape of the public price feed:
// {"bitcoin":{"usd":64250.12}}
type priceResponse struct {
	Bitcoin struct {
		USD decimal.Decimal `json:"usd"`
	} `json:"bitcoin"`
}

// BitcoinPrice - fetches the current BTC/USD price from the configured
// feed. The feed is outside the backend origin, so it bypasses the breaker:
// a broken ticker must not poison backend calls.
func (c *Client) BitcoinPrice(ctx context.Context) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.priceURL, nil)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "build price request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "price feed unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, &Error{Kind: KindUnavailable, Status: resp.StatusCode, Message: "price feed error"}
	}

	var price priceResponse
	if err := json.NewDecoder(resp.Body).Decode(&price); err != nil {
		return decimal.Zero, errors.Wrap(err, "decode price response")
	}
	return price.Bitcoin.USD, nil
}
