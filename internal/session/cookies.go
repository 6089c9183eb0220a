package session

import "net/http"

// Cookie names, the server-side analog of the old client's local storage keys.
const (
	TokenCookie = "sf_token"
	EmailCookie = "sf_email"
	AdminCookie = "sf_admin"
)

// Save - stores the session after a successful login.
// Lifecycle is login → logout/expiry; these cookies are the only state the
// frontend keeps.
func Save(w http.ResponseWriter, token string, identity *Identity) {
	setCookie(w, TokenCookie, token)
	setCookie(w, EmailCookie, identity.Email)
	if identity.IsAdmin {
		setCookie(w, AdminCookie, "true")
	}
}

// Clear - drops the session, used on logout and on any unauthorized response.
func Clear(w http.ResponseWriter) {
	expireCookie(w, TokenCookie)
	expireCookie(w, EmailCookie)
	expireCookie(w, AdminCookie)
}

// Token - reads the stored bearer token, empty when not logged in.
func Token(r *http.Request) string {
	cookie, err := r.Cookie(TokenCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// FromRequest - decodes the identity from the request's token cookie.
// A missing or malformed token yields nil: the caller renders as anonymous.
func FromRequest(r *http.Request) *Identity {
	token := Token(r)
	if token == "" {
		return nil
	}
	identity, err := Decode(token)
	if err != nil {
		return nil
	}
	return identity
}

func setCookie(w http.ResponseWriter, name string, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func expireCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
