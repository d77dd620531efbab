// Package navigation holds the client's route table, the guard that keeps
// anonymous users out of protected routes, and the Navigator that tracks
// where the user currently is.
package navigation

const (
	PathLogin     = "/"
	PathRegister  = "/register"
	PathHome      = "/home"
	PathDashboard = "/dashboard"

	// pathLoginAlias is treated as the login surface when suppressing
	// redirects, matching links that still point at "/login".
	pathLoginAlias = "/login"
)

type Route struct {
	Path         string
	Name         string
	RequiresAuth bool
}

// DefaultRoutes is the static route table of the client.
func DefaultRoutes() []Route {
	return []Route{
		{Path: PathLogin, Name: "login"},
		{Path: PathRegister, Name: "register"},
		{Path: PathHome, Name: "home", RequiresAuth: true},
		{Path: PathDashboard, Name: "dashboard", RequiresAuth: true},
	}
}

// Guard decides whether navigation to route may proceed. When it may not,
// it returns the path to redirect to instead.
func Guard(to Route, hasSession bool) (redirect string, allowed bool) {
	if to.RequiresAuth && !hasSession {
		return PathLogin, false
	}
	return "", true
}

// IsLoginSurface reports whether path is one of the anonymous entry paths.
func IsLoginSurface(path string) bool {
	return path == PathLogin || path == pathLoginAlias
}
