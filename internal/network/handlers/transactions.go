package handlers

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/services"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/session"
)

// TransactionsHandler - the user's payments split by direction
func TransactionsHandler(p *Pages, s services.TransactionsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := p.Page(r, "Transactions")
		history, err := s.History(r.Context(), session.Token(r), page.Identity)
		if err != nil {
			if errors.Is(err, services.ErrNotLoggedIn) {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			p.HandleGatewayError(w, r, err, page)
			return
		}
		page.Data = history
		p.Renderer.Render(w, http.StatusOK, "transactions.html", page)
	}
}
