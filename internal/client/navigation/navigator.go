package navigation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

var ErrUnknownRoute = errors.New("unknown route")

// SessionChecker reports whether a persisted session exists.
type SessionChecker interface {
	HasSession(ctx context.Context) bool
}

// Navigator tracks the current route and applies Guard on every move.
// It is safe for concurrent use.
type Navigator struct {
	mu       sync.Mutex
	routes   map[string]Route
	current  string
	sessions SessionChecker
	onChange func(from, to string)
}

func NewNavigator(routes []Route, sessions SessionChecker) *Navigator {
	m := make(map[string]Route, len(routes))
	for _, r := range routes {
		m[r.Path] = r
	}
	return &Navigator{routes: m, current: PathLogin, sessions: sessions}
}

// OnChange registers a callback invoked after every route change.
func (n *Navigator) OnChange(fn func(from, to string)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onChange = fn
}

func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Lookup finds a route by path or by name.
func (n *Navigator) Lookup(target string) (Route, bool) {
	if r, ok := n.routes[target]; ok {
		return r, true
	}
	name := strings.TrimPrefix(target, "/")
	for _, r := range n.routes {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}

// Push navigates to target (a path or a route name) and returns the path
// actually reached, which differs from target when the guard redirected.
func (n *Navigator) Push(ctx context.Context, target string) (string, error) {
	to, ok := n.Lookup(target)
	if !ok {
		return n.Current(), fmt.Errorf("%w: %s", ErrUnknownRoute, target)
	}

	dest := to.Path
	if redirect, allowed := Guard(to, n.sessions.HasSession(ctx)); !allowed {
		dest = redirect
	}

	n.moveTo(dest)
	return dest, nil
}

// RedirectToLogin moves to the login route unless the user is already on
// the login surface. It reports whether a redirect happened, so concurrent
// callers see true at most once per visit to a protected route.
func (n *Navigator) RedirectToLogin() bool {
	n.mu.Lock()
	if IsLoginSurface(n.current) {
		n.mu.Unlock()
		return false
	}
	from := n.current
	n.current = PathLogin
	fn := n.onChange
	n.mu.Unlock()

	if fn != nil {
		fn(from, PathLogin)
	}
	return true
}

func (n *Navigator) moveTo(dest string) {
	n.mu.Lock()
	from := n.current
	n.current = dest
	fn := n.onChange
	n.mu.Unlock()

	if fn != nil && from != dest {
		fn(from, dest)
	}
}
