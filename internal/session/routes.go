package session

import "github.com/skillnest/skillnest/internal/api"

// Route describes one navigable surface and who may reach it.
type Route struct {
	Path       string
	Public     bool
	PublicOnly bool
	Roles      []api.Role
}

var (
	anyRole         = []api.Role{api.RoleStudent, api.RoleInstructor, api.RoleAdmin}
	instructorRoles = []api.Role{api.RoleInstructor, api.RoleAdmin}
	adminRoles      = []api.Role{api.RoleAdmin}
	studentRoles    = []api.Role{api.RoleStudent}
)

// Routes is the application route table: path, visibility, required roles.
var Routes = []Route{
	{Path: "/", Public: true},
	{Path: "/courses", Public: true},
	{Path: "/courses/:slug", Public: true},

	{Path: "/login", PublicOnly: true},
	{Path: "/register", PublicOnly: true},

	{Path: "/dashboard"},
	{Path: "/my-courses", Roles: studentRoles},

	{Path: "/profile", Roles: anyRole},
	{Path: "/change-password", Roles: anyRole},
	{Path: "/enrollments", Roles: anyRole},
	{Path: "/lessons/:courseId", Roles: anyRole},
	{Path: "/quizzes/:courseId", Roles: anyRole},
	{Path: "/reviews/:courseId", Roles: anyRole},
	{Path: "/discussions/:courseId", Roles: anyRole},
	{Path: "/notifications", Roles: anyRole},

	{Path: "/learn/:courseId", Roles: studentRoles},
	{Path: "/learn/:courseId/lesson/:lessonId", Roles: studentRoles},

	{Path: "/instructor/dashboard", Roles: instructorRoles},
	{Path: "/instructor/courses", Roles: instructorRoles},
	{Path: "/instructor/courses/create", Roles: instructorRoles},
	{Path: "/instructor/courses/:courseId/edit", Roles: instructorRoles},
	{Path: "/instructor/courses/:courseId/lessons", Roles: instructorRoles},
	{Path: "/instructor/courses/:courseId/progress", Roles: instructorRoles},
	{Path: "/instructor-stats", Roles: instructorRoles},

	{Path: "/admin/dashboard", Roles: adminRoles},
	{Path: "/admin/users", Roles: adminRoles},
	{Path: "/admin-stats", Roles: adminRoles},
}

// FindRoute looks a route up by path.
func FindRoute(path string) (Route, bool) {
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// AuthorizeRoute resolves a path against the route table and applies the
// matching policy. Unknown paths require authentication only.
func AuthorizeRoute(s Session, path string) Decision {
	route, ok := FindRoute(path)
	if !ok {
		return Authorize(s)
	}

	if route.Public {
		if s.Loading {
			return ShowLoading
		}
		return Render
	}

	if route.PublicOnly {
		return AuthorizePublic(s)
	}

	return Authorize(s, route.Roles...)
}
