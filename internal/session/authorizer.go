package session

import "github.com/skillnest/skillnest/internal/api"

// Decision is the outcome of authorizing a route against the current session.
type Decision int

const (
	// ShowLoading means session state is not yet known; render a placeholder
	// rather than redirecting prematurely.
	ShowLoading Decision = iota

	// Render means the caller may show the requested surface.
	Render

	// RedirectLogin means the user must authenticate first.
	RedirectLogin

	// RedirectUnauthorized means the user is authenticated but lacks the
	// required role.
	RedirectUnauthorized

	// RedirectDashboard applies to public-only surfaces (login, register)
	// visited by an already-authenticated user.
	RedirectDashboard
)

func (d Decision) String() string {
	switch d {
	case ShowLoading:
		return "show-loading"
	case Render:
		return "render"
	case RedirectLogin:
		return "redirect-login"
	case RedirectUnauthorized:
		return "redirect-unauthorized"
	case RedirectDashboard:
		return "redirect-dashboard"
	default:
		return "unknown"
	}
}

// Authorize decides whether a session may access a surface gated by the given
// roles. The authentication check always precedes the role check: an
// unauthenticated user asking for an admin surface is sent to login, never to
// unauthorized. An empty role set requires authentication only.
func Authorize(s Session, required ...api.Role) Decision {
	if s.Loading {
		return ShowLoading
	}

	if !s.Authenticated {
		return RedirectLogin
	}

	if len(required) > 0 && !s.HasRole(required...) {
		return RedirectUnauthorized
	}

	return Render
}

// AuthorizePublic gates surfaces that only make sense for anonymous users,
// such as login and register.
func AuthorizePublic(s Session) Decision {
	if s.Loading {
		return ShowLoading
	}

	if s.Authenticated {
		return RedirectDashboard
	}

	return Render
}
