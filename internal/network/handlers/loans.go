package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/gateway"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/models"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/services"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/session"
)

// LoansHandler - the open loan marketplace
func LoansHandler(p *Pages, s services.LoansService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := p.Page(r, "Open loan requests")
		rows, err := s.Browse(r.Context(), session.Token(r))
		if err != nil {
			p.HandleGatewayError(w, r, err, page)
			return
		}
		page.Data = rows
		p.Renderer.Render(w, http.StatusOK, "loans.html", page)
	}
}

// LoanDetailsHandler - a single loan with the funding affordance
func LoanDetailsHandler(p *Pages, s services.LoansService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := p.Page(r, "Loan request")
		details, err := s.Details(r.Context(), session.Token(r), chi.URLParam(r, "id"), page.Identity)
		if err != nil {
			p.HandleGatewayError(w, r, err, page)
			return
		}
		if r.URL.Query().Get("error") == "insufficient-funds" {
			details.WalletShortcut = true
		}
		page.Data = details
		p.Renderer.Render(w, http.StatusOK, "loan_details.html", page)
	}
}

// FundLoanHandler - creates a deal on the viewer's behalf
func FundLoanHandler(p *Pages, s services.LoansService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := p.Page(r, "Loan request")
		loanID := chi.URLParam(r, "id")

		_, err := s.Fund(r.Context(), session.Token(r), loanID, page.Identity)
		if err != nil {
			switch {
			case errors.Is(err, gateway.ErrInsufficientFunds):
				http.Redirect(w, r, "/loans/"+loanID+"?error=insufficient-funds", http.StatusSeeOther)
			case errors.Is(err, services.ErrNotLoggedIn):
				http.Redirect(w, r, "/loans/"+loanID+"?error=not-logged-in", http.StatusSeeOther)
			default:
				p.HandleGatewayError(w, r, err, page)
			}
			return
		}
		http.Redirect(w, r, "/loans/"+loanID+"?notice=funded", http.StatusSeeOther)
	}
}

// RequestLoanHandler - the request-loan form with its reference data
func RequestLoanHandler(p *Pages, s services.LoansService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := p.Page(r, "Request a loan")
		form, err := s.RequestForm(r.Context(), session.Token(r))
		if err != nil {
			p.HandleGatewayError(w, r, err, page)
			return
		}
		page.Data = models.RequestLoanView{Form: *form}
		p.Renderer.Render(w, http.StatusOK, "request_loan.html", page)
	}
}

// RequestLoanSubmitHandler - submits the form. On success the amount field
// clears while the term and currency selections stay put.
func RequestLoanSubmitHandler(p *Pages, s services.LoansService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := p.Page(r, "Request a loan")
		token := session.Token(r)
		form := services.LoanRequestForm{
			Amount:         r.PostFormValue("amount"),
			InterestTermID: r.PostFormValue("term"),
			CryptoID:       r.PostFormValue("crypto"),
		}

		submitErr := s.SubmitRequest(r.Context(), token, form)
		if submitErr != nil && !isFormError(submitErr) {
			p.HandleGatewayError(w, r, submitErr, page)
			return
		}

		refData, err := s.RequestForm(r.Context(), token)
		if err != nil {
			p.HandleGatewayError(w, r, err, page)
			return
		}

		data := models.RequestLoanView{
			Form:           *refData,
			SelectedCrypto: form.CryptoID,
			SelectedTerm:   form.InterestTermID,
		}
		if submitErr != nil {
			data.Amount = form.Amount
			page.Error = "Enter an amount greater than zero and pick a term and currency."
			page.Data = data
			p.Renderer.Render(w, http.StatusBadRequest, "request_loan.html", page)
			return
		}

		page.Notice = "Loan request submitted."
		page.Data = data
		p.Renderer.Render(w, http.StatusOK, "request_loan.html", page)
	}
}

// isFormError - true for local validation failures that re-render the form.
func isFormError(err error) bool {
	var validationErr validator.ValidationErrors
	return errors.As(err, &validationErr) || errors.Is(err, services.ErrInvalidAmount)
}
