package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/models"
)

// Placeholder datasets served only when DEMO_MODE is on and a list fetch
// fails. The old client mixed these into production error paths silently;
// here they are opt-in and flagged on the rendered page.

func demoDeals() []models.Deal {
	due := time.Now().AddDate(0, 3, 0)
	return []models.Deal{
		{
			ID:                     "demo-deal-1",
			BorrowerEmail:          "borrower@example.com",
			LenderEmail:            "lender@example.com",
			Amount:                 decimal.RequireFromString("0.52000000"),
			Status:                 "active",
			ExpectedCompletionDate: due,
		},
		{
			ID:                     "demo-deal-2",
			BorrowerEmail:          "satoshi@example.com",
			LenderEmail:            "hal@example.com",
			Amount:                 decimal.RequireFromString("1.25000000"),
			Status:                 "active",
			ExpectedCompletionDate: due.AddDate(0, 3, 0),
		},
	}
}

func demoDashboard() *models.AdminDashboardView {
	deals := demoDeals()
	return &models.AdminDashboardView{
		CompleteCount:       12,
		IncompleteCount:     3,
		ActiveCount:         len(deals),
		ActiveDeals:         deals,
		AverageInterestRate: decimal.RequireFromString("6.8"),
		CollateralTotal:     decimal.RequireFromString("14.50000000"),
		DemoData:            true,
	}
}

func demoUsers() []models.AdminUser {
	return []models.AdminUser{
		{ID: "demo-user-1", Email: "borrower@example.com", IsActive: true},
		{ID: "demo-user-2", Email: "lender@example.com", IsActive: true},
		{ID: "demo-user-3", Email: "dormant@example.com", IsActive: false},
	}
}
