package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/gateway"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/logger"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/models"
)

var ErrUnknownTerm = errors.New("unknown interest term")

// CalculatorForm - the interest calculator as submitted.
type CalculatorForm struct {
	Amount string `validate:"required"`
	TermID string `validate:"required"`
}

type ReferenceService interface {
	Cryptocurrencies(ctx context.Context, token string) ([]models.Cryptocurrency, error)
	Terms(ctx context.Context, token string) ([]models.InterestTerm, error)
	Calculate(ctx context.Context, token string, form CalculatorForm) (*models.CalculatorView, error)
}

type Reference struct {
	Gateway gateway.Gateway
}

func NewReference(gw gateway.Gateway) ReferenceService {
	return &Reference{Gateway: gw}
}

// Cryptocurrencies - the supported-currencies table.
func (s *Reference) Cryptocurrencies(ctx context.Context, token string) ([]models.Cryptocurrency, error) {
	cryptos, err := s.Gateway.Cryptocurrencies(ctx, token)
	if err != nil {
		logger.Error("Failed to list cryptocurrencies", err)
		return nil, err
	}
	return cryptos, nil
}

// Terms - the interest-terms table, shared by the terms view and the
// calculator.
func (s *Reference) Terms(ctx context.Context, token string) ([]models.InterestTerm, error) {
	terms, err := s.Gateway.InterestTerms(ctx, token)
	if err != nil {
		logger.Error("Failed to list interest terms", err)
		return nil, err
	}
	return terms, nil
}

// Calculate - renders the calculator with a non-authoritative estimate for
// the selected term. The backend computes the real schedule at funding time.
func (s *Reference) Calculate(ctx context.Context, token string, form CalculatorForm) (*models.CalculatorView, error) {
	terms, err := s.Terms(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(form); err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(form.Amount)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	for _, term := range terms {
		if term.ID != form.TermID {
			continue
		}
		interest := Estimate(amount, term.InterestRate, term.LoanLengthMonths)
		return &models.CalculatorView{
			Terms:          terms,
			Amount:         amount,
			SelectedTermID: term.ID,
			Interest:       interest,
			TotalRepayable: amount.Add(interest),
			HasResult:      true,
		}, nil
	}
	return nil, ErrUnknownTerm
}
