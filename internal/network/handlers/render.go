package handlers

import (
	"net/http"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/gateway"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/logger"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/session"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/view"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/worker"
)

// Pages - shared rendering context handed to every handler: the template
// renderer plus the cached BTC price.
type Pages struct {
	Renderer *view.Renderer
	Prices   *worker.PriceWorker
}

func NewPages(renderer *view.Renderer, prices *worker.PriceWorker) *Pages {
	return &Pages{Renderer: renderer, Prices: prices}
}

// Flash message codes carried across POST-redirect-GET hops.
var noticeMessages = map[string]string{
	"deposited":         "Deposit received.",
	"withdrawn":         "Withdrawal submitted.",
	"wallet-created":    "Wallet created.",
	"wallet-closed":     "Wallet closed.",
	"funded":            "Loan funded. The deal is now active.",
	"user-updated":      "User updated.",
	"user-deleted":      "User deleted.",
	"under-development": "Flag/Ban is still under development.",
	"registered":        "Account created. You can log in now.",
}

var errorMessages = map[string]string{
	"invalid-amount":     "Enter an amount greater than zero.",
	"exceeds-balance":    "Withdrawal exceeds your available balance.",
	"wallet-exists":      "You already have a wallet.",
	"funds-remaining":    "Withdraw your remaining funds before closing the wallet.",
	"wallet-unsupported": "Wallet closure is not available yet.",
	"insufficient-funds": "You don't have sufficient funds to fund this loan.",
	"not-logged-in":      "User not logged in.",
	"expired":            "Your session has expired. Please log in again.",
}

// Page - builds the base page data for a request: identity, ticker price
// and any flash codes from the query string.
func (p *Pages) Page(r *http.Request, title string) view.Page {
	page := view.Page{
		Title:    title,
		Identity: session.FromRequest(r),
	}
	if p.Prices != nil {
		if price, _, ok := p.Prices.LastPrice(); ok {
			page.BTCPrice = price.StringFixed(2)
		}
	}
	if code := r.URL.Query().Get("notice"); code != "" {
		page.Notice = noticeMessages[code]
	}
	if code := r.URL.Query().Get("error"); code != "" {
		page.Error = errorMessages[code]
	}
	return page
}

// HandleGatewayError - the single error-to-state policy every view shares.
// Unauthorized clears the session and redirects to login exactly once; a
// missing resource renders the not-found page; anything else is the error
// page with the server-supplied reason when there is one.
func (p *Pages) HandleGatewayError(w http.ResponseWriter, r *http.Request, err error, page view.Page) {
	switch {
	case gateway.IsUnauthorized(err):
		session.Clear(w)
		http.Redirect(w, r, "/login?error=expired", http.StatusSeeOther)
	case gateway.IsNotFound(err):
		page.Title = "Not found"
		p.Renderer.Render(w, http.StatusNotFound, "not_found.html", page)
	default:
		logger.Error("View failed", r.RequestURI, err)
		page.Title = "Error"
		page.Data = gateway.Message(err)
		p.Renderer.Render(w, http.StatusBadGateway, "error.html", page)
	}
}
