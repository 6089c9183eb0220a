package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/models"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/services"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/session"
)

type stubLoansService struct {
	form      *models.LoanFormView
	submitErr error
}

func (s *stubLoansService) Browse(ctx context.Context, token string) ([]models.LoanRow, error) {
	return nil, nil
}

func (s *stubLoansService) Details(ctx context.Context, token string, id string, viewer *session.Identity) (*models.LoanDetailsView, error) {
	return &models.LoanDetailsView{ID: id}, nil
}

func (s *stubLoansService) Fund(ctx context.Context, token string, loanID string, viewer *session.Identity) (*models.LoanDetailsView, error) {
	return nil, s.submitErr
}

func (s *stubLoansService) RequestForm(ctx context.Context, token string) (*models.LoanFormView, error) {
	return s.form, nil
}

func (s *stubLoansService) SubmitRequest(ctx context.Context, token string, form services.LoanRequestForm) error {
	return s.submitErr
}

func requestLoanForm(amount string) *http.Request {
	form := url.Values{"amount": {amount}, "term": {"term-1"}, "crypto": {"crypto-1"}}
	r := httptest.NewRequest(http.MethodPost, "/request-loan", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestRequestLoanSubmitHandler(t *testing.T) {
	pages := testPages(t)

	refData := &models.LoanFormView{
		Terms:   []models.InterestTerm{{ID: "term-1", LoanLengthMonths: 12}},
		Cryptos: []models.Cryptocurrency{{ID: "crypto-1", Name: "Bitcoin", Symbol: "BTC"}},
	}

	t.Run("Success. Amount clears, selections survive #1", func(t *testing.T) {
		w := httptest.NewRecorder()
		RequestLoanSubmitHandler(pages, &stubLoansService{form: refData})(w, requestLoanForm("0.4"))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got: %d", w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, "Loan request submitted.") {
			t.Errorf("Expected the success banner")
		}
		if strings.Contains(body, `value="0.4"`) {
			t.Errorf("Expected the amount field to clear after success")
		}
		if !strings.Contains(body, `value="term-1" selected`) {
			t.Errorf("Expected the term selection to survive")
		}
		if !strings.Contains(body, `value="crypto-1" selected`) {
			t.Errorf("Expected the currency selection to survive")
		}
	})

	t.Run("Error. Bad amount re-renders with the input kept #2", func(t *testing.T) {
		w := httptest.NewRecorder()
		loans := &stubLoansService{form: refData, submitErr: services.ErrInvalidAmount}
		RequestLoanSubmitHandler(pages, loans)(w, requestLoanForm("-2"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got: %d", w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, `value="-2"`) {
			t.Errorf("Expected the rejected amount to stay in the field")
		}
		if !strings.Contains(body, "banner error") {
			t.Errorf("Expected an error banner")
		}
	})
}
