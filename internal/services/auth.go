package services

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/gateway"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/logger"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/models"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/session"
)

// validate - shared form validator for every service in the package.
var validate = validator.New()

type IdentityService interface {
	Login(ctx context.Context, email string, password string) (string, *session.Identity, error)
	Register(ctx context.Context, email string, password string) error
}

type Identity struct {
	Gateway gateway.Gateway
}

func NewIdentity(gw gateway.Gateway) IdentityService {
	return &Identity{Gateway: gw}
}

// Login - authenticates against the backend and decodes the returned token
// for display purposes. A token that fails to decode still logs the user in;
// the identity falls back to the submitted email.
func (s *Identity) Login(ctx context.Context, email string, password string) (string, *session.Identity, error) {
	creds := models.Credentials{Email: email, Password: password}
	if err := validate.Struct(creds); err != nil {
		return "", nil, err
	}

	token, err := s.Gateway.Login(ctx, creds)
	if err != nil {
		logger.Warn("Login failed", email)
		return "", nil, err
	}

	identity, err := session.Decode(token)
	if err != nil {
		logger.Warn("Token decode failed, using submitted email", email)
		identity = &session.Identity{Email: email}
	}
	logger.Info("User authenticated", identity.Email)
	return token, identity, nil
}

// Register - creates a new account.
func (s *Identity) Register(ctx context.Context, email string, password string) error {
	creds := models.Credentials{Email: email, Password: password}
	if err := validate.Struct(creds); err != nil {
		return err
	}
	if err := s.Gateway.Register(ctx, creds); err != nil {
		logger.Warn("Registration failed", email)
		return err
	}
	logger.Info("User registered", email)
	return nil
}
