package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/gateway"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/logger"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/models"
)

var (
	ErrInvalidAmount  = errors.New("amount must be greater than zero")
	ErrExceedsBalance = errors.New("withdrawal exceeds available balance")
)

type WalletService interface {
	Overview(ctx context.Context, token string) (*models.WalletView, error)
	Deposit(ctx context.Context, token string, amount decimal.Decimal) error
	Withdraw(ctx context.Context, token string, amount decimal.Decimal, lastBalance decimal.Decimal) error
	Create(ctx context.Context, token string) error
	Delete(ctx context.Context, token string) error
}

type Wallet struct {
	Gateway gateway.Gateway
}

func NewWallet(gw gateway.Gateway) WalletService {
	return &Wallet{Gateway: gw}
}

// Overview - fetches the wallet; a 404 is the "no wallet yet" state rather
// than a failure.
func (s *Wallet) Overview(ctx context.Context, token string) (*models.WalletView, error) {
	wallet, err := s.Gateway.WalletBalance(ctx, token)
	if err != nil {
		if gateway.IsNotFound(err) {
			return &models.WalletView{HasWallet: false}, nil
		}
		logger.Error("Failed to get wallet balance", err)
		return nil, err
	}
	return &models.WalletView{HasWallet: true, Balance: wallet.Balance}, nil
}

// Deposit - sends a positive balance adjustment.
func (s *Wallet) Deposit(ctx context.Context, token string, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	_, err := s.Gateway.AdjustWallet(ctx, token, amount)
	return err
}

// Withdraw - sends a negative balance adjustment after the local pre-check
// against the last-rendered balance. The check is advisory, not atomic: the
// backend re-validates against the real balance.
func (s *Wallet) Withdraw(ctx context.Context, token string, amount decimal.Decimal, lastBalance decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(lastBalance) {
		return ErrExceedsBalance
	}
	_, err := s.Gateway.AdjustWallet(ctx, token, amount.Neg())
	return err
}

// Create - requests a wallet for the caller.
func (s *Wallet) Create(ctx context.Context, token string) error {
	return s.Gateway.CreateWallet(ctx, token)
}

// Delete - removes the caller's wallet.
func (s *Wallet) Delete(ctx context.Context, token string) error {
	return s.Gateway.DeleteWallet(ctx, token)
}
