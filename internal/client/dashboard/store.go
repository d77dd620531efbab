// Package dashboard caches the figures shown on the dashboard screen.
package dashboard

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/bankfront/internal/client/models"
	"github.com/dmitrijs2005/bankfront/internal/client/services"
	"github.com/dmitrijs2005/bankfront/internal/logging"
	"golang.org/x/sync/errgroup"
)

// Store is safe for concurrent use.
type Store struct {
	svc services.DashboardService
	log logging.Logger

	mu           sync.RWMutex
	summary      *models.DashboardSummary
	balance      *models.Balance
	transactions []models.Transaction
	investments  []models.Investment
	loading      bool
	lastErr      error
}

func NewStore(svc services.DashboardService, log logging.Logger) *Store {
	if log == nil {
		log = logging.Discard()
	}
	return &Store{svc: svc, log: log.With("component", "dashboard")}
}

// Fetch loads summary, balance and recent transactions in parallel. The
// cached data is replaced only when all three succeed.
func (s *Store) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.lastErr = nil
	s.mu.Unlock()

	var (
		summary      *models.DashboardSummary
		balance      *models.Balance
		transactions []models.Transaction
	)

	// Siblings are not cancelled when one request fails.
	var g errgroup.Group
	g.Go(func() (err error) {
		summary, err = s.svc.Summary(ctx)
		return err
	})
	g.Go(func() (err error) {
		balance, err = s.svc.Balance(ctx)
		return err
	})
	g.Go(func() (err error) {
		transactions, err = s.svc.RecentTransactions(ctx, services.DefaultTransactionLimit)
		return err
	})
	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastErr = err
		s.log.Error(ctx, "cannot load dashboard", "error", err)
		return err
	}
	s.summary = summary
	s.balance = balance
	s.transactions = transactions
	return nil
}

// FetchInvestments refreshes the investment list; on failure the previous
// list is kept.
func (s *Store) FetchInvestments(ctx context.Context) error {
	inv, err := s.svc.Investments(ctx)
	if err != nil {
		s.log.Error(ctx, "cannot load investments", "error", err)
		return err
	}
	s.mu.Lock()
	s.investments = inv
	s.mu.Unlock()
	return nil
}

// FetchCreditCards is not cached. It returns an empty slice on failure.
func (s *Store) FetchCreditCards(ctx context.Context) []models.CreditCard {
	cards, err := s.svc.CreditCards(ctx)
	if err != nil {
		s.log.Error(ctx, "cannot load credit cards", "error", err)
		return []models.CreditCard{}
	}
	if cards == nil {
		cards = []models.CreditCard{}
	}
	return cards
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summary = nil
	s.balance = nil
	s.transactions = nil
	s.investments = nil
	s.lastErr = nil
}

func (s *Store) TotalBalance() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.summary == nil {
		return 0
	}
	return s.summary.TotalBalance
}

func (s *Store) AvailableBalance() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.balance == nil {
		return 0
	}
	return s.balance.Checking.Available
}

func (s *Store) NotificationCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.summary == nil {
		return 0
	}
	return s.summary.Notifications
}

func (s *Store) HasNotifications() bool {
	return s.NotificationCount() > 0
}

func (s *Store) Summary() *models.DashboardSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.summary == nil {
		return nil
	}
	c := *s.summary
	return &c
}

func (s *Store) Balance() *models.Balance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.balance == nil {
		return nil
	}
	c := *s.balance
	return &c
}

func (s *Store) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Transaction(nil), s.transactions...)
}

func (s *Store) Investments() []models.Investment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Investment(nil), s.investments...)
}

func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err is the error of the last Fetch, if it failed.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}
