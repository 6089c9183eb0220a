package handlers

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/logger"
)

// BTCPriceHandler - the cached ticker price for the in-page refresh script
func BTCPriceHandler(p *Pages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p.Prices == nil {
			http.Error(w, "price unavailable", http.StatusServiceUnavailable)
			return
		}
		price, at, ok := p.Prices.LastPrice()
		if !ok {
			http.Error(w, "price unavailable", http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(map[string]string{
			"price": price.StringFixed(2),
			"asOf":  at.UTC().Format(http.TimeFormat),
		})
		if err != nil {
			logger.Error("Failed to encode price response", err)
		}
	}
}
