package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/gateway"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/logger"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/models"
)

type AdminService interface {
	Dashboard(ctx context.Context, token string) (*models.AdminDashboardView, error)
	Users(ctx context.Context, token string) ([]models.AdminUser, error)
	SetUserActive(ctx context.Context, token string, id string, active bool) error
	RemoveUser(ctx context.Context, token string, id string) error
	DealDetails(ctx context.Context, token string, id string) (*models.Deal, error)
}

type Admin struct {
	Gateway  gateway.Gateway
	DemoMode bool
}

func NewAdmin(gw gateway.Gateway, demoMode bool) AdminService {
	return &Admin{Gateway: gw, DemoMode: demoMode}
}

// Dashboard - the three deal lists are fetched concurrently and are
// required; the two derived stats are optional and degrade to zero on
// failure without failing the view.
func (s *Admin) Dashboard(ctx context.Context, token string) (*models.AdminDashboardView, error) {
	var (
		complete   []models.Deal
		incomplete []models.Deal
		active     []models.Deal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		complete, err = s.Gateway.DealsComplete(gctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		incomplete, err = s.Gateway.DealsIncomplete(gctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		active, err = s.Gateway.DealsActive(gctx, token)
		return err
	})
	if err := g.Wait(); err != nil {
		if s.DemoMode && gateway.IsUnavailable(err) {
			logger.Warn("Deal lists unavailable, serving demo data", err)
			return demoDashboard(), nil
		}
		logger.Error("Failed to load admin dashboard", err)
		return nil, err
	}

	view := &models.AdminDashboardView{
		CompleteCount:   len(complete),
		IncompleteCount: len(incomplete),
		ActiveCount:     len(active),
		ActiveDeals:     active,
	}

	// Optional stats, each guarded on its own: a failure here contributes
	// a default value and must not abort the dashboard.
	if rate, err := s.Gateway.AverageInterestRate(ctx, token); err != nil {
		logger.Warn("Average interest rate unavailable, using default", err)
	} else {
		view.AverageInterestRate = rate
	}
	if total, err := s.Gateway.CollateralTotal(ctx, token); err != nil {
		logger.Warn("Collateral total unavailable, using default", err)
	} else {
		view.CollateralTotal = total
	}

	return view, nil
}

// Users - lists every account; administrators see unmasked data.
func (s *Admin) Users(ctx context.Context, token string) ([]models.AdminUser, error) {
	users, err := s.Gateway.AdminUsers(ctx, token)
	if err != nil {
		if s.DemoMode && gateway.IsUnavailable(err) {
			logger.Warn("User list unavailable, serving demo data", err)
			return demoUsers(), nil
		}
		logger.Error("Failed to list users", err)
		return nil, err
	}
	return users, nil
}

// SetUserActive - activates or deactivates an account.
func (s *Admin) SetUserActive(ctx context.Context, token string, id string, active bool) error {
	update := models.UserUpdate{IsActive: &active}
	return s.Gateway.UpdateUser(ctx, token, id, update)
}

// RemoveUser - deletes an account.
func (s *Admin) RemoveUser(ctx context.Context, token string, id string) error {
	return s.Gateway.DeleteUser(ctx, token, id)
}

// DealDetails - fetches a single deal; a 404 propagates for the not-found
// page.
func (s *Admin) DealDetails(ctx context.Context, token string, id string) (*models.Deal, error) {
	return s.Gateway.Deal(ctx, token, id)
}
