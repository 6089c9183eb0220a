package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/config"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/gateway"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/logger"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/session"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/view"
)

type stubIdentityService struct {
	token    string
	identity *session.Identity
	err      error
}

func (s *stubIdentityService) Login(ctx context.Context, email, password string) (string, *session.Identity, error) {
	return s.token, s.identity, s.err
}

func (s *stubIdentityService) Register(ctx context.Context, email, password string) error {
	return s.err
}

func testPages(t *testing.T) *Pages {
	t.Helper()

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		t.Fatalf("Failed to build renderer: '%v'", err)
	}
	return NewPages(renderer, nil)
}

func loginRequest(email, password string) *http.Request {
	form := url.Values{"email": {email}, "password": {password}}
	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestLoginHandler(t *testing.T) {
	pages := testPages(t)

	t.Run("Success. Session stored, redirect to dashboard #1", func(t *testing.T) {
		identity := &stubIdentityService{
			token:    "token-123",
			identity: &session.Identity{Email: "user@example.com", UserID: "user-1"},
		}

		w := httptest.NewRecorder()
		LoginHandler(pages, identity)(w, loginRequest("user@example.com", "password1"))

		if w.Code != http.StatusSeeOther {
			t.Fatalf("Expected 303, got: %d", w.Code)
		}
		if location := w.Header().Get("Location"); location != "/dashboard" {
			t.Errorf("Expected redirect to /dashboard, got: '%s'", location)
		}

		cookies := map[string]string{}
		for _, cookie := range w.Result().Cookies() {
			cookies[cookie.Name] = cookie.Value
		}
		if cookies[session.TokenCookie] != "token-123" {
			t.Errorf("Expected token cookie, got: '%s'", cookies[session.TokenCookie])
		}
		if cookies[session.EmailCookie] != "user@example.com" {
			t.Errorf("Expected email cookie, got: '%s'", cookies[session.EmailCookie])
		}
		if _, ok := cookies[session.AdminCookie]; ok {
			t.Errorf("Admin cookie must not be set for a regular user")
		}
	})

	t.Run("Error. Rejected credentials re-render the form #2", func(t *testing.T) {
		identity := &stubIdentityService{
			err: &gateway.Error{Kind: gateway.KindUnauthorized, Status: 401},
		}

		w := httptest.NewRecorder()
		LoginHandler(pages, identity)(w, loginRequest("user@example.com", "password1"))

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("Expected 401, got: %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Invalid email or password.") {
			t.Errorf("Expected the rejection message in the page")
		}
		if len(w.Result().Cookies()) != 0 {
			t.Errorf("Expected no session cookies on failure")
		}
	})
}

func TestRegisterHandler(t *testing.T) {
	pages := testPages(t)

	t.Run("Success. Redirect to login with notice #1", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/register",
			strings.NewReader(url.Values{"email": {"new@example.com"}, "password": {"password1"}}.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		RegisterHandler(pages, &stubIdentityService{})(w, r)

		if w.Code != http.StatusSeeOther {
			t.Fatalf("Expected 303, got: %d", w.Code)
		}
		if location := w.Header().Get("Location"); location != "/login?notice=registered" {
			t.Errorf("Expected redirect with notice, got: '%s'", location)
		}
	})

	t.Run("Error. Duplicate email #2", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/register",
			strings.NewReader(url.Values{"email": {"new@example.com"}, "password": {"password1"}}.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		identity := &stubIdentityService{err: &gateway.Error{Kind: gateway.KindConflict, Status: 409}}
		RegisterHandler(pages, identity)(w, r)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got: %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "already exists") {
			t.Errorf("Expected the duplicate-account message in the page")
		}
	})
}

func TestHandleGatewayError(t *testing.T) {
	pages := testPages(t)

	t.Run("Unauthorized clears the session and redirects once #1", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/wallet", nil)
		r.AddCookie(&http.Cookie{Name: session.TokenCookie, Value: "stale"})

		err := &gateway.Error{Kind: gateway.KindUnauthorized, Status: 401}
		pages.HandleGatewayError(w, r, err, pages.Page(r, "Wallet"))

		if w.Code != http.StatusSeeOther {
			t.Fatalf("Expected 303, got: %d", w.Code)
		}
		if location := w.Header().Get("Location"); location != "/login?error=expired" {
			t.Errorf("Expected redirect to expired login, got: '%s'", location)
		}
		expired := 0
		for _, cookie := range w.Result().Cookies() {
			if cookie.MaxAge < 0 {
				expired++
			}
		}
		if expired != 3 {
			t.Errorf("Expected all 3 session cookies expired, got %d", expired)
		}
	})

	t.Run("Not found renders the dedicated page #2", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/loans/missing", nil)

		err := &gateway.Error{Kind: gateway.KindNotFound, Status: 404}
		pages.HandleGatewayError(w, r, err, pages.Page(r, "Loan"))

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got: %d", w.Code)
		}
	})

	t.Run("Anything else is the error page with the server reason #3", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/wallet", nil)

		err := &gateway.Error{Kind: gateway.KindInvalid, Status: 400, Message: "Bad request"}
		pages.HandleGatewayError(w, r, err, pages.Page(r, "Wallet"))

		if w.Code != http.StatusBadGateway {
			t.Errorf("Expected 502, got: %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Bad request") {
			t.Errorf("Expected the server reason in the page")
		}
	})
}
