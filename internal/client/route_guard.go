package client

import "nishlen_auth/internal/model"

// Routes the guard redirects to.
const (
	LoginRoute = "/login"
	HomeRoute  = "/"
)

// Decision is the navigation outcome for a guarded route.
type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectHome
)

// Guard decides whether a protected view may render. No required roles means
// any authenticated identity is enough. Missing or unparsable cached state
// sends the user to login; a role mismatch sends them to the public landing
// view. Advisory only.
func (s *Session) Guard(requiredRoles ...string) Decision {
	_, user, ok := s.Credentials()
	if !ok {
		return RedirectLogin
	}

	if len(requiredRoles) == 0 {
		return Allow
	}

	for _, role := range requiredRoles {
		if user.Role == role {
			return Allow
		}
	}
	return RedirectHome
}

// Redirect maps a guard decision to its target route; guarded views that are
// allowed have no redirect.
func Redirect(d Decision) (string, bool) {
	switch d {
	case RedirectLogin:
		return LoginRoute, true
	case RedirectHome:
		return HomeRoute, true
	}
	return "", false
}

// DashboardRoute demultiplexes an authenticated role into its dashboard view.
// Purely navigational; server-side authorization does not depend on it.
func DashboardRoute(role string) string {
	switch role {
	case model.RoleClient:
		return "/dashboard/client"
	case model.RoleMaster:
		return "/dashboard/master"
	case model.RoleSalonAdmin:
		return "/dashboard/salon"
	}
	return HomeRoute
}
