package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"github.com/dmitrijs2005/bankfront/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fake requester ----

// fakeRequester answers every call with Body decoded into out, or Err.
type fakeRequester struct {
	Body string
	Err  error

	LastMethod string
	LastPath   string
	LastQuery  url.Values
	LastBody   any
}

func (f *fakeRequester) Get(_ context.Context, path string, query url.Values, out any) error {
	f.LastMethod, f.LastPath, f.LastQuery = "GET", path, query
	return f.respond(out)
}

func (f *fakeRequester) Put(_ context.Context, path string, body, out any) error {
	f.LastMethod, f.LastPath, f.LastBody = "PUT", path, body
	return f.respond(out)
}

func (f *fakeRequester) respond(out any) error {
	if f.Err != nil {
		return f.Err
	}
	return json.Unmarshal([]byte(f.Body), out)
}

// ---- dashboard ----

func TestDashboardService_Endpoints(t *testing.T) {
	ctx := context.Background()

	t.Run("summary", func(t *testing.T) {
		r := &fakeRequester{Body: `{"success":true,"data":{"totalBalance":1500.5,"notifications":3}}`}
		got, err := NewDashboardService(r).Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, "/dashboard/summary", r.LastPath)
		assert.Equal(t, 1500.5, got.TotalBalance)
		assert.Equal(t, 3, got.Notifications)
	})

	t.Run("balance", func(t *testing.T) {
		r := &fakeRequester{Body: `{"success":true,"data":{"checking":{"available":900},"currency":"BRL"}}`}
		got, err := NewDashboardService(r).Balance(ctx)
		require.NoError(t, err)
		assert.Equal(t, "/dashboard/balance", r.LastPath)
		assert.Equal(t, 900.0, got.Checking.Available)
		assert.Nil(t, got.Savings)
	})

	t.Run("transactions default limit", func(t *testing.T) {
		r := &fakeRequester{Body: `{"success":true,"data":[{"id":"t1","amount":-20,"date":"2024-05-01"}]}`}
		got, err := NewDashboardService(r).RecentTransactions(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, "/dashboard/recent-transactions", r.LastPath)
		assert.Equal(t, "10", r.LastQuery.Get("limit"))
		require.Len(t, got, 1)
		assert.Equal(t, -20.0, got[0].Amount)
	})

	t.Run("transactions explicit limit", func(t *testing.T) {
		r := &fakeRequester{Body: `{"success":true,"data":[]}`}
		_, err := NewDashboardService(r).RecentTransactions(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "3", r.LastQuery.Get("limit"))
	})

	t.Run("investments", func(t *testing.T) {
		r := &fakeRequester{Body: `{"success":true,"data":[{"id":"i1","name":"CDB","amount":1000}]}`}
		got, err := NewDashboardService(r).Investments(ctx)
		require.NoError(t, err)
		assert.Equal(t, "/investments", r.LastPath)
		assert.Len(t, got, 1)
	})

	t.Run("cards", func(t *testing.T) {
		r := &fakeRequester{Body: `{"success":true,"data":[{"id":"c1","last4":"4242","limit":5000,"available":1200}]}`}
		got, err := NewDashboardService(r).CreditCards(ctx)
		require.NoError(t, err)
		assert.Equal(t, "/user/cards", r.LastPath)
		assert.Equal(t, "4242", got[0].Last4)
	})
}

func TestDashboardService_Errors(t *testing.T) {
	ctx := context.Background()

	transport := errors.New("boom")
	r := &fakeRequester{Err: transport}
	_, err := NewDashboardService(r).Summary(ctx)
	require.ErrorIs(t, err, transport)

	r = &fakeRequester{Body: `{"success":false,"message":"maintenance"}`}
	_, err = NewDashboardService(r).Balance(ctx)
	require.ErrorIs(t, err, ErrUnsuccessful)
	assert.Contains(t, err.Error(), "maintenance")

	r = &fakeRequester{Body: `{"success":true}`}
	cards, err := NewDashboardService(r).CreditCards(ctx)
	require.NoError(t, err)
	assert.Nil(t, cards)
}

// ---- user ----

func TestUserService(t *testing.T) {
	ctx := context.Background()

	r := &fakeRequester{Body: `{"success":true,"data":{"name":"Ana","tier":"gold"}}`}
	svc := NewUserService(r)

	p, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "GET", r.LastMethod)
	assert.Equal(t, "/user/profile", r.LastPath)
	assert.Equal(t, "gold", p.Tier)

	p, err = svc.UpdateProfile(ctx, models.UserProfile{Name: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, "PUT", r.LastMethod)
	assert.Equal(t, "/user/profile", r.LastPath)
	assert.Equal(t, models.UserProfile{Name: "Ana"}, r.LastBody)
	assert.Equal(t, "Ana", p.Name)

	r.Body = `{"success":true,"data":{"theme":"dark","notifications":true}}`
	prefs, err := svc.Preferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/user/preferences", r.LastPath)
	assert.Equal(t, "dark", prefs["theme"])

	prefs, err = svc.UpdatePreferences(ctx, models.Preferences{"theme": "light"})
	require.NoError(t, err)
	assert.Equal(t, "PUT", r.LastMethod)
	assert.Equal(t, models.Preferences{"theme": "light"}, r.LastBody)
	assert.Equal(t, true, prefs["notifications"])
}
