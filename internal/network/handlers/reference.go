package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/models"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/services"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/session"
)

// CryptocurrenciesHandler - the supported-currencies table
func CryptocurrenciesHandler(p *Pages, s services.ReferenceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := p.Page(r, "Cryptocurrencies")
		cryptos, err := s.Cryptocurrencies(r.Context(), session.Token(r))
		if err != nil {
			p.HandleGatewayError(w, r, err, page)
			return
		}
		page.Data = cryptos
		p.Renderer.Render(w, http.StatusOK, "cryptocurrencies.html", page)
	}
}

// InterestTermsHandler - the interest-terms table
func InterestTermsHandler(p *Pages, s services.ReferenceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := p.Page(r, "Interest terms")
		terms, err := s.Terms(r.Context(), session.Token(r))
		if err != nil {
			p.HandleGatewayError(w, r, err, page)
			return
		}
		page.Data = terms
		p.Renderer.Render(w, http.StatusOK, "interest_terms.html", page)
	}
}

// CalculatorHandler - the empty calculator form
func CalculatorHandler(p *Pages, s services.ReferenceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := p.Page(r, "Interest calculator")
		terms, err := s.Terms(r.Context(), session.Token(r))
		if err != nil {
			p.HandleGatewayError(w, r, err, page)
			return
		}
		page.Data = &models.CalculatorView{Terms: terms}
		p.Renderer.Render(w, http.StatusOK, "calculator.html", page)
	}
}

// CalculatorSubmitHandler - renders the estimate for the selected term
func CalculatorSubmitHandler(p *Pages, s services.ReferenceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := p.Page(r, "Interest calculator")
		token := session.Token(r)
		form := services.CalculatorForm{
			Amount: r.PostFormValue("amount"),
			TermID: r.PostFormValue("term"),
		}

		result, err := s.Calculate(r.Context(), token, form)
		if err != nil {
			var validationErr validator.ValidationErrors
			if errors.As(err, &validationErr) || errors.Is(err, services.ErrInvalidAmount) || errors.Is(err, services.ErrUnknownTerm) {
				terms, termsErr := s.Terms(r.Context(), token)
				if termsErr != nil {
					p.HandleGatewayError(w, r, termsErr, page)
					return
				}
				page.Error = "Enter an amount greater than zero and pick a term."
				page.Data = &models.CalculatorView{Terms: terms}
				p.Renderer.Render(w, http.StatusBadRequest, "calculator.html", page)
				return
			}
			p.HandleGatewayError(w, r, err, page)
			return
		}

		page.Data = result
		p.Renderer.Render(w, http.StatusOK, "calculator.html", page)
	}
}
