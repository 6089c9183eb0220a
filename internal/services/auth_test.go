package services

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"go.uber.org/mock/gomock"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/config"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/gateway"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/gateway/mocks"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/logger"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/models"
)

func TestIdentityLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockGateway := mocks.NewMockGateway(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}
	defer logger.Sync()

	t.Run("Success. Opaque token falls back to the submitted email #1", func(t *testing.T) {
		mockGateway.EXPECT().Login(gomock.Any(),
			models.Credentials{Email: "user@example.com", Password: "password1"}).Return("not-a-jwt", nil)

		service := NewIdentity(mockGateway)
		token, identity, err := service.Login(context.Background(), "user@example.com", "password1")
		if err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if token != "not-a-jwt" {
			t.Errorf("Expected token to pass through, got: '%s'", token)
		}
		if identity == nil || identity.Email != "user@example.com" {
			t.Errorf("Expected fallback identity with the submitted email, got: '%+v'", identity)
		}
		if identity != nil && identity.IsAdmin {
			t.Errorf("Fallback identity must never be an admin")
		}
	})

	t.Run("Error. Rejected credentials #2", func(t *testing.T) {
		mockGateway.EXPECT().Login(gomock.Any(), gomock.Any()).Return("",
			&gateway.Error{Kind: gateway.KindUnauthorized, Status: 401, Message: "Invalid credentials"})

		service := NewIdentity(mockGateway)
		_, _, err := service.Login(context.Background(), "user@example.com", "password1")
		if !gateway.IsUnauthorized(err) {
			t.Errorf("Expected unauthorized error, got: '%v'", err)
		}
	})

	t.Run("Error. Malformed email never reaches the backend #3", func(t *testing.T) {
		service := NewIdentity(mockGateway)
		_, _, err := service.Login(context.Background(), "not-an-email", "password1")

		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			t.Errorf("Expected validation errors, got: '%v'", err)
		}
	})

	t.Run("Error. Short password never reaches the backend #4", func(t *testing.T) {
		service := NewIdentity(mockGateway)
		if _, _, err := service.Login(context.Background(), "user@example.com", "short"); err == nil {
			t.Errorf("Expected validation error, got nil")
		}
	})
}

func TestIdentityRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockGateway := mocks.NewMockGateway(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}
	defer logger.Sync()

	t.Run("Success #1", func(t *testing.T) {
		mockGateway.EXPECT().Register(gomock.Any(),
			models.Credentials{Email: "new@example.com", Password: "password1"}).Return(nil)

		service := NewIdentity(mockGateway)
		if err := service.Register(context.Background(), "new@example.com", "password1"); err != nil {
			t.Errorf("Expected no error, got: '%v'", err)
		}
	})

	t.Run("Error. Duplicate account #2", func(t *testing.T) {
		mockGateway.EXPECT().Register(gomock.Any(), gomock.Any()).Return(
			&gateway.Error{Kind: gateway.KindConflict, Status: 409, Message: "Email already registered"})

		service := NewIdentity(mockGateway)
		err := service.Register(context.Background(), "new@example.com", "password1")
		if !gateway.IsConflict(err) {
			t.Errorf("Expected conflict error, got: '%v'", err)
		}
	})
}
