package navigation

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct{ has bool }

func (f *fakeSessions) HasSession(context.Context) bool { return f.has }

func TestGuard(t *testing.T) {
	tests := []struct {
		name         string
		route        Route
		hasSession   bool
		wantAllowed  bool
		wantRedirect string
	}{
		{name: "public without session", route: Route{Path: PathRegister}, wantAllowed: true},
		{name: "public with session", route: Route{Path: PathLogin}, hasSession: true, wantAllowed: true},
		{name: "protected with session", route: Route{Path: PathHome, RequiresAuth: true}, hasSession: true, wantAllowed: true},
		{name: "protected without session", route: Route{Path: PathHome, RequiresAuth: true}, wantRedirect: PathLogin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redirect, allowed := Guard(tt.route, tt.hasSession)
			assert.Equal(t, tt.wantAllowed, allowed)
			assert.Equal(t, tt.wantRedirect, redirect)
		})
	}
}

func TestNavigator_PushAppliesGuard(t *testing.T) {
	sessions := &fakeSessions{}
	n := NewNavigator(DefaultRoutes(), sessions)
	ctx := context.Background()

	assert.Equal(t, PathLogin, n.Current())

	got, err := n.Push(ctx, PathHome)
	require.NoError(t, err)
	assert.Equal(t, PathLogin, got)
	assert.Equal(t, PathLogin, n.Current())

	got, err = n.Push(ctx, "register")
	require.NoError(t, err)
	assert.Equal(t, PathRegister, got)

	sessions.has = true
	got, err = n.Push(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, PathHome, got)
}

func TestNavigator_PushUnknownRoute(t *testing.T) {
	n := NewNavigator(DefaultRoutes(), &fakeSessions{})

	_, err := n.Push(context.Background(), "/nowhere")
	require.ErrorIs(t, err, ErrUnknownRoute)
	assert.Equal(t, PathLogin, n.Current())
}

func TestNavigator_RedirectToLogin_SuppressedOnLoginSurface(t *testing.T) {
	n := NewNavigator(DefaultRoutes(), &fakeSessions{has: true})

	assert.False(t, n.RedirectToLogin())

	_, err := n.Push(context.Background(), PathHome)
	require.NoError(t, err)

	assert.True(t, n.RedirectToLogin())
	assert.Equal(t, PathLogin, n.Current())
	assert.False(t, n.RedirectToLogin())
}

func TestNavigator_RedirectToLogin_OnceUnderConcurrency(t *testing.T) {
	n := NewNavigator(DefaultRoutes(), &fakeSessions{has: true})
	_, err := n.Push(context.Background(), PathDashboard)
	require.NoError(t, err)

	var redirects atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if n.RedirectToLogin() {
				redirects.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), redirects.Load())
}

func TestNavigator_OnChange(t *testing.T) {
	n := NewNavigator(DefaultRoutes(), &fakeSessions{has: true})

	var changes [][2]string
	n.OnChange(func(from, to string) { changes = append(changes, [2]string{from, to}) })

	_, _ = n.Push(context.Background(), PathHome)
	_, _ = n.Push(context.Background(), PathHome)
	n.RedirectToLogin()

	assert.Equal(t, [][2]string{{PathLogin, PathHome}, {PathHome, PathLogin}}, changes)
}

func TestIsLoginSurface(t *testing.T) {
	assert.True(t, IsLoginSurface("/"))
	assert.True(t, IsLoginSurface("/login"))
	assert.False(t, IsLoginSurface("/home"))
}
