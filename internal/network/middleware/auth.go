package middleware

import (
	"net/http"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/logger"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/session"
)

// RequireSession - gates views that need a stored token. No token means an
// immediate redirect to the login page; nothing further renders.
func RequireSession(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if session.Token(r) == "" {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// RequireAdmin - advisory gate on the decoded admin flag. Hides the admin
// views from regular users; the backend still authorizes every admin call
// on its own.
func RequireAdmin(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := session.FromRequest(r)
		if identity == nil || !identity.IsAdmin {
			logger.Warn("Non-admin request to admin route", r.RequestURI)
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		h.ServeHTTP(w, r)
	})
}
