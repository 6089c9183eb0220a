package services

import (
	"context"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/gateway"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/logger"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/mask"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/models"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/session"
)

type TransactionsService interface {
	History(ctx context.Context, token string, viewer *session.Identity) (*models.TransactionsView, error)
}

type Transactions struct {
	Gateway gateway.Gateway
}

func NewTransactions(gw gateway.Gateway) TransactionsService {
	return &Transactions{Gateway: gw}
}

// History - splits the user's payments into incoming and outgoing by
// comparing each side to the viewer's id. Counterparties are masked.
func (s *Transactions) History(ctx context.Context, token string, viewer *session.Identity) (*models.TransactionsView, error) {
	if viewer == nil || viewer.UserID == "" {
		return nil, ErrNotLoggedIn
	}

	transactions, err := s.Gateway.UserTransactions(ctx, token, viewer.UserID)
	if err != nil {
		logger.Error("Failed to list transactions", err)
		return nil, err
	}

	view := &models.TransactionsView{}
	for _, tx := range transactions {
		switch viewer.UserID {
		case tx.ToUser.ID:
			view.Incoming = append(view.Incoming, transactionRow(tx, tx.FromUser))
		case tx.FromUser.ID:
			view.Outgoing = append(view.Outgoing, transactionRow(tx, tx.ToUser))
		}
	}
	return view, nil
}

func transactionRow(tx models.Transaction, counterparty models.TransactionParty) models.TransactionRow {
	masked := mask.Name(counterparty.Name)
	if masked == "" {
		masked = mask.Email(counterparty.Email)
	}
	return models.TransactionRow{
		Counterparty:        masked,
		Amount:              tx.Amount,
		ExpectedPaymentDate: tx.ExpectedPaymentDate,
		PaymentStatus:       tx.PaymentStatus,
		IsLoanRepayment:     tx.IsLoanRepayment,
	}
}
