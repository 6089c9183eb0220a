package session

import (
	"errors"

	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Identity - the advisory identity read from the stored bearer token.
// The token is decoded without signature verification and is used for
// display and navigation gating only; the backend authorizes every request
// on its own.
type Identity struct {
	Email   string
	UserID  string
	IsAdmin bool
}

var ErrMalformedToken = errors.New("malformed session token")

// Claim names the backend has used for the user id over time.
var userIDClaims = []string{"id", "_id", "userId"}

// Decode - extracts the identity from a bearer token payload.
// No signature or expiry check is performed: a stale token still renders,
// the backend rejects it on the next call.
func Decode(token string) (*Identity, error) {
	if token == "" {
		return nil, ErrMalformedToken
	}
	parsed, err := jwt.ParseInsecure([]byte(token))
	if err != nil {
		return nil, ErrMalformedToken
	}

	identity := &Identity{UserID: parsed.Subject()}
	if email, ok := parsed.Get("email"); ok {
		if s, ok := email.(string); ok {
			identity.Email = s
		}
	}
	for _, claim := range userIDClaims {
		if identity.UserID != "" {
			break
		}
		if id, ok := parsed.Get(claim); ok {
			if s, ok := id.(string); ok {
				identity.UserID = s
			}
		}
	}
	if isAdmin, ok := parsed.Get("isAdmin"); ok {
		if b, ok := isAdmin.(bool); ok {
			identity.IsAdmin = b
		}
	}
	return identity, nil
}
