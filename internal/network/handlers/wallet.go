package handlers

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/gateway"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/services"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/session"
)

// DashboardHandler - balance summary plus navigation
func DashboardHandler(p *Pages, s services.WalletService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := p.Page(r, "Dashboard")
		overview, err := s.Overview(r.Context(), session.Token(r))
		if err != nil {
			p.HandleGatewayError(w, r, err, page)
			return
		}
		page.Data = overview
		p.Renderer.Render(w, http.StatusOK, "dashboard.html", page)
	}
}

// WalletHandler - the wallet page with balance and transfer forms
func WalletHandler(p *Pages, s services.WalletService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := p.Page(r, "Wallet")
		overview, err := s.Overview(r.Context(), session.Token(r))
		if err != nil {
			p.HandleGatewayError(w, r, err, page)
			return
		}
		page.Data = overview
		p.Renderer.Render(w, http.StatusOK, "wallet.html", page)
	}
}

// WalletDepositHandler - positive balance adjustment
func WalletDepositHandler(p *Pages, s services.WalletService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		amount, err := decimal.NewFromString(r.PostFormValue("amount"))
		if err != nil {
			http.Redirect(w, r, "/wallet?error=invalid-amount", http.StatusSeeOther)
			return
		}
		if err := s.Deposit(r.Context(), session.Token(r), amount); err != nil {
			redirectWalletError(p, w, r, err)
			return
		}
		http.Redirect(w, r, "/wallet?notice=deposited", http.StatusSeeOther)
	}
}

// WalletWithdrawHandler - negative balance adjustment with the local
// pre-check against the balance the form was rendered with
func WalletWithdrawHandler(p *Pages, s services.WalletService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		amount, err := decimal.NewFromString(r.PostFormValue("amount"))
		if err != nil {
			http.Redirect(w, r, "/wallet?error=invalid-amount", http.StatusSeeOther)
			return
		}
		lastBalance, err := decimal.NewFromString(r.PostFormValue("balance"))
		if err != nil {
			lastBalance = decimal.Zero
		}
		if err := s.Withdraw(r.Context(), session.Token(r), amount, lastBalance); err != nil {
			redirectWalletError(p, w, r, err)
			return
		}
		http.Redirect(w, r, "/wallet?notice=withdrawn", http.StatusSeeOther)
	}
}

// WalletCreateHandler - requests wallet creation
func WalletCreateHandler(p *Pages, s services.WalletService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Create(r.Context(), session.Token(r)); err != nil {
			if gateway.IsConflict(err) {
				http.Redirect(w, r, "/wallet?error=wallet-exists", http.StatusSeeOther)
				return
			}
			p.HandleGatewayError(w, r, err, p.Page(r, "Wallet"))
			return
		}
		http.Redirect(w, r, "/wallet?notice=wallet-created", http.StatusSeeOther)
	}
}

// WalletDeleteHandler - requests wallet closure; 409 means funds remain,
// 404 means the backend doesn't support closure yet
func WalletDeleteHandler(p *Pages, s services.WalletService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Delete(r.Context(), session.Token(r)); err != nil {
			switch {
			case gateway.IsConflict(err):
				http.Redirect(w, r, "/wallet?error=funds-remaining", http.StatusSeeOther)
			case gateway.IsNotFound(err):
				http.Redirect(w, r, "/wallet?error=wallet-unsupported", http.StatusSeeOther)
			default:
				p.HandleGatewayError(w, r, err, p.Page(r, "Wallet"))
			}
			return
		}
		http.Redirect(w, r, "/wallet?notice=wallet-closed", http.StatusSeeOther)
	}
}

// redirectWalletError - maps the wallet service's local rejections to flash
// codes; everything else goes through the shared policy.
func redirectWalletError(p *Pages, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidAmount):
		http.Redirect(w, r, "/wallet?error=invalid-amount", http.StatusSeeOther)
	case errors.Is(err, services.ErrExceedsBalance):
		http.Redirect(w, r, "/wallet?error=exceeds-balance", http.StatusSeeOther)
	default:
		p.HandleGatewayError(w, r, err, p.Page(r, "Wallet"))
	}
}
