package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/bankfront/internal/client/models"
)

// DefaultTransactionLimit is used when RecentTransactions is called with a
// non-positive limit.
const DefaultTransactionLimit = 10

// DashboardService reads the figures shown on the dashboard.
//
// Contract:
//   - Summary: totals and notification count.
//   - Balance: checking (and optional savings) funds.
//   - RecentTransactions: latest movements, newest first, at most limit.
//   - Investments, CreditCards: the user's products.
//
// Errors from the transport are returned wrapped; classify them with
// errors.Is against the api sentinels.
type DashboardService interface {
	Summary(ctx context.Context) (*models.DashboardSummary, error)
	Balance(ctx context.Context) (*models.Balance, error)
	RecentTransactions(ctx context.Context, limit int) ([]models.Transaction, error)
	Investments(ctx context.Context) ([]models.Investment, error)
	CreditCards(ctx context.Context) ([]models.CreditCard, error)
}

type dashboardService struct {
	r Requester
}

func NewDashboardService(r Requester) DashboardService {
	return &dashboardService{r: r}
}

func (s *dashboardService) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	return get[*models.DashboardSummary](ctx, s.r, "/dashboard/summary", nil)
}

func (s *dashboardService) Balance(ctx context.Context) (*models.Balance, error) {
	return get[*models.Balance](ctx, s.r, "/dashboard/balance", nil)
}

func (s *dashboardService) RecentTransactions(ctx context.Context, limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	return get[[]models.Transaction](ctx, s.r, "/dashboard/recent-transactions", q)
}

func (s *dashboardService) Investments(ctx context.Context) ([]models.Investment, error) {
	return get[[]models.Investment](ctx, s.r, "/investments", nil)
}

func (s *dashboardService) CreditCards(ctx context.Context) ([]models.CreditCard, error) {
	return get[[]models.CreditCard](ctx, s.r, "/user/cards", nil)
}
