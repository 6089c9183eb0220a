package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/gateway"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/services"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/session"
)

// LandingHandler - the public landing page
func LandingHandler(p *Pages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.Renderer.Render(w, http.StatusOK, "landing.html", p.Page(r, "Peer-to-peer crypto lending"))
	}
}

// LoginPageHandler - the login form
func LoginPageHandler(p *Pages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.Renderer.Render(w, http.StatusOK, "login.html", p.Page(r, "Log in"))
	}
}

// LoginHandler - exchanges the submitted credentials for a session
func LoginHandler(p *Pages, i services.IdentityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.PostFormValue("email")
		password := r.PostFormValue("password")

		token, identity, err := i.Login(r.Context(), email, password)
		if err != nil {
			page := p.Page(r, "Log in")
			var validationErr validator.ValidationErrors
			switch {
			case errors.As(err, &validationErr):
				page.Error = "Enter a valid email and a password of at least 8 characters."
			case gateway.IsUnauthorized(err), gateway.IsKind(err, gateway.KindInvalid):
				page.Error = "Invalid email or password."
			default:
				p.HandleGatewayError(w, r, err, page)
				return
			}
			p.Renderer.Render(w, http.StatusUnauthorized, "login.html", page)
			return
		}

		session.Save(w, token, identity)
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

// RegisterPageHandler - the registration form
func RegisterPageHandler(p *Pages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.Renderer.Render(w, http.StatusOK, "register.html", p.Page(r, "Register"))
	}
}

// RegisterHandler - creates an account and sends the user to the login form
func RegisterHandler(p *Pages, i services.IdentityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.PostFormValue("email")
		password := r.PostFormValue("password")

		if err := i.Register(r.Context(), email, password); err != nil {
			page := p.Page(r, "Register")
			var validationErr validator.ValidationErrors
			switch {
			case errors.As(err, &validationErr):
				page.Error = "Enter a valid email and a password of at least 8 characters."
			case gateway.IsConflict(err):
				page.Error = "An account with that email already exists."
			default:
				p.HandleGatewayError(w, r, err, page)
				return
			}
			p.Renderer.Render(w, http.StatusBadRequest, "register.html", page)
			return
		}

		http.Redirect(w, r, "/login?notice=registered", http.StatusSeeOther)
	}
}

// LogoutHandler - clears the session cookies and returns to the landing page
func LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session.Clear(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
