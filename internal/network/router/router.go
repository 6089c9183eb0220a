package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/config"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/gateway"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/network/handlers"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/network/middleware"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/services"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/view"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/worker"
)

type Router struct {
	Config       config.Config
	Pages        *handlers.Pages
	Identity     services.IdentityService
	Wallet       services.WalletService
	Loans        services.LoansService
	Transactions services.TransactionsService
	Reference    services.ReferenceService
	Admin        services.AdminService
}

func NewRouter(cfg config.Config, gw gateway.Gateway, renderer *view.Renderer, prices *worker.PriceWorker) *Router {
	return &Router{
		Config:       cfg,
		Pages:        handlers.NewPages(renderer, prices),
		Identity:     services.NewIdentity(gw),
		Wallet:       services.NewWallet(gw),
		Loans:        services.NewLoans(gw),
		Transactions: services.NewTransactions(gw),
		Reference:    services.NewReference(gw),
		Admin:        services.NewAdmin(gw, cfg.Backend.DemoMode),
	}
}

func (router *Router) HandleRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.LogHandle)

	// public pages
	r.Get("/", handlers.LandingHandler(router.Pages))
	r.Get("/login", handlers.LoginPageHandler(router.Pages))
	r.Post("/login", handlers.LoginHandler(router.Pages, router.Identity))
	r.Get("/register", handlers.RegisterPageHandler(router.Pages))
	r.Post("/register", handlers.RegisterHandler(router.Pages, router.Identity))
	r.Get("/logout", handlers.LogoutHandler())
	r.Get("/api/btc-price", handlers.BTCPriceHandler(router.Pages))

	// pages that need a stored token
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession)

		r.Get("/dashboard", handlers.DashboardHandler(router.Pages, router.Wallet))

		r.Get("/wallet", handlers.WalletHandler(router.Pages, router.Wallet))
		r.Post("/wallet/deposit", handlers.WalletDepositHandler(router.Pages, router.Wallet))
		r.Post("/wallet/withdraw", handlers.WalletWithdrawHandler(router.Pages, router.Wallet))
		r.Post("/wallet/create", handlers.WalletCreateHandler(router.Pages, router.Wallet))
		r.Post("/wallet/delete", handlers.WalletDeleteHandler(router.Pages, router.Wallet))

		r.Get("/loans", handlers.LoansHandler(router.Pages, router.Loans))
		r.Get("/loans/{id}", handlers.LoanDetailsHandler(router.Pages, router.Loans))
		r.Post("/loans/{id}/fund", handlers.FundLoanHandler(router.Pages, router.Loans))
		r.Get("/request-loan", handlers.RequestLoanHandler(router.Pages, router.Loans))
		r.Post("/request-loan", handlers.RequestLoanSubmitHandler(router.Pages, router.Loans))

		r.Get("/transactions", handlers.TransactionsHandler(router.Pages, router.Transactions))
		r.Get("/cryptocurrencies", handlers.CryptocurrenciesHandler(router.Pages, router.Reference))
		r.Get("/interest-terms", handlers.InterestTermsHandler(router.Pages, router.Reference))
		r.Get("/calculator", handlers.CalculatorHandler(router.Pages, router.Reference))
		r.Post("/calculator", handlers.CalculatorSubmitHandler(router.Pages, router.Reference))

		r.Get("/deals/{id}", handlers.DealDetailsHandler(router.Pages, router.Admin))

		// admin pages, gated on the decoded admin flag
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/admin", handlers.AdminDashboardHandler(router.Pages, router.Admin))
			r.Get("/admin/users", handlers.AdminUsersHandler(router.Pages, router.Admin))
			r.Post("/admin/users/{id}/toggle", handlers.AdminUserToggleHandler(router.Pages, router.Admin))
			r.Post("/admin/users/{id}/delete", handlers.AdminUserDeleteHandler(router.Pages, router.Admin))
			r.Post("/admin/users/{id}/flag", handlers.AdminUserFlagHandler())
		})
	})

	return r
}
