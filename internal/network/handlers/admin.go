package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/services"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/session"
)

// AdminDashboardHandler - deal aggregates and derived stats
func AdminDashboardHandler(p *Pages, s services.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := p.Page(r, "Admin dashboard")
		dashboard, err := s.Dashboard(r.Context(), session.Token(r))
		if err != nil {
			p.HandleGatewayError(w, r, err, page)
			return
		}
		page.Data = dashboard
		p.Renderer.Render(w, http.StatusOK, "admin_dashboard.html", page)
	}
}

// AdminUsersHandler - the user management table
func AdminUsersHandler(p *Pages, s services.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := p.Page(r, "Users")
		users, err := s.Users(r.Context(), session.Token(r))
		if err != nil {
			p.HandleGatewayError(w, r, err, page)
			return
		}
		page.Data = users
		p.Renderer.Render(w, http.StatusOK, "admin_users.html", page)
	}
}

// AdminUserToggleHandler - flips an account between active and inactive
func AdminUserToggleHandler(p *Pages, s services.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := session.Token(r)
		id := chi.URLParam(r, "id")

		users, err := s.Users(r.Context(), token)
		if err != nil {
			p.HandleGatewayError(w, r, err, p.Page(r, "Users"))
			return
		}
		for _, user := range users {
			if user.ID != id {
				continue
			}
			if err := s.SetUserActive(r.Context(), token, id, !user.IsActive); err != nil {
				p.HandleGatewayError(w, r, err, p.Page(r, "Users"))
				return
			}
			http.Redirect(w, r, "/admin/users?notice=user-updated", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
	}
}

// AdminUserDeleteHandler - removes an account
func AdminUserDeleteHandler(p *Pages, s services.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.RemoveUser(r.Context(), session.Token(r), chi.URLParam(r, "id")); err != nil {
			p.HandleGatewayError(w, r, err, p.Page(r, "Users"))
			return
		}
		http.Redirect(w, r, "/admin/users?notice=user-deleted", http.StatusSeeOther)
	}
}

// AdminUserFlagHandler - placeholder with no backend effect yet
func AdminUserFlagHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/admin/users?notice=under-development", http.StatusSeeOther)
	}
}

// DealDetailsHandler - a single deal, reshaped for display
func DealDetailsHandler(p *Pages, s services.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := p.Page(r, "Deal")
		deal, err := s.DealDetails(r.Context(), session.Token(r), chi.URLParam(r, "id"))
		if err != nil {
			p.HandleGatewayError(w, r, err, page)
			return
		}
		page.Data = deal
		p.Renderer.Render(w, http.StatusOK, "deal_details.html", page)
	}
}
