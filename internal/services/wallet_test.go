package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/config"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/gateway"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/gateway/mocks"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/logger"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/models"
)

func TestWalletOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockGateway := mocks.NewMockGateway(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}
	defer logger.Sync()

	testCases := []struct {
		TestName          string
		SetupMocks        func()
		ExpectedHasWallet bool
		ExpectedBalance   string
		ExpectedError     bool
	}{
		{
			TestName: "Success. Wallet exists #1",
			SetupMocks: func() {
				mockGateway.EXPECT().WalletBalance(gomock.Any(), "token").Return(
					&models.Wallet{Balance: decimal.RequireFromString("1.50000000")}, nil)
			},
			ExpectedHasWallet: true,
			ExpectedBalance:   "1.5",
		},
		{
			TestName: "Success. No wallet yet maps 404 to empty state #2",
			SetupMocks: func() {
				mockGateway.EXPECT().WalletBalance(gomock.Any(), "token").Return(
					nil, &gateway.Error{Kind: gateway.KindNotFound, Status: http.StatusNotFound})
			},
			ExpectedHasWallet: false,
			ExpectedBalance:   "0",
		},
		{
			TestName: "Error. Backend unavailable #3",
			SetupMocks: func() {
				mockGateway.EXPECT().WalletBalance(gomock.Any(), "token").Return(
					nil, &gateway.Error{Kind: gateway.KindUnavailable, Status: http.StatusBadGateway})
			},
			ExpectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			service := NewWallet(mockGateway)
			view, err := service.Overview(context.Background(), "token")

			if tc.ExpectedError {
				if err == nil {
					t.Errorf("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got: '%v'", err)
			}
			if view.HasWallet != tc.ExpectedHasWallet {
				t.Errorf("Expected HasWallet: '%v', got: '%v'", tc.ExpectedHasWallet, view.HasWallet)
			}
			if view.Balance.String() != tc.ExpectedBalance {
				t.Errorf("Expected balance: '%s', got: '%s'", tc.ExpectedBalance, view.Balance.String())
			}
		})
	}
}

func TestWalletDeposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockGateway := mocks.NewMockGateway(ctrl)

	testCases := []struct {
		TestName      string
		SetupMocks    func()
		Amount        string
		ExpectedError error
	}{
		{
			TestName: "Success. Positive amount #1",
			SetupMocks: func() {
				mockGateway.EXPECT().AdjustWallet(gomock.Any(), "token", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, delta decimal.Decimal) (*models.Wallet, error) {
						if !delta.Equal(decimal.RequireFromString("0.25")) {
							t.Errorf("Expected delta 0.25, got: '%s'", delta.String())
						}
						return &models.Wallet{Balance: delta}, nil
					})
			},
			Amount:        "0.25",
			ExpectedError: nil,
		},
		{
			TestName:      "Error. Zero amount never reaches the backend #2",
			SetupMocks:    func() {},
			Amount:        "0",
			ExpectedError: ErrInvalidAmount,
		},
		{
			TestName:      "Error. Negative amount never reaches the backend #3",
			SetupMocks:    func() {},
			Amount:        "-1",
			ExpectedError: ErrInvalidAmount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			service := NewWallet(mockGateway)
			err := service.Deposit(context.Background(), "token", decimal.RequireFromString(tc.Amount))

			if !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestWalletWithdraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockGateway := mocks.NewMockGateway(ctrl)

	testCases := []struct {
		TestName      string
		SetupMocks    func()
		Amount        string
		LastBalance   string
		ExpectedError error
	}{
		{
			TestName: "Success. Amount within balance goes out negated #1",
			SetupMocks: func() {
				mockGateway.EXPECT().AdjustWallet(gomock.Any(), "token", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, delta decimal.Decimal) (*models.Wallet, error) {
						if !delta.Equal(decimal.RequireFromString("-0.5")) {
							t.Errorf("Expected delta -0.5, got: '%s'", delta.String())
						}
						return &models.Wallet{}, nil
					})
			},
			Amount:        "0.5",
			LastBalance:   "2",
			ExpectedError: nil,
		},
		{
			TestName:      "Error. Exceeds balance, no backend call #2",
			SetupMocks:    func() {},
			Amount:        "3",
			LastBalance:   "2",
			ExpectedError: ErrExceedsBalance,
		},
		{
			TestName:      "Error. Zero amount #3",
			SetupMocks:    func() {},
			Amount:        "0",
			LastBalance:   "2",
			ExpectedError: ErrInvalidAmount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			service := NewWallet(mockGateway)
			err := service.Withdraw(context.Background(), "token",
				decimal.RequireFromString(tc.Amount), decimal.RequireFromString(tc.LastBalance))

			if !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}
