package domain

import (
	"fmt"
	"strings"
)

// Role is the kind of actor a Session belongs to.
type Role string

const (
	RoleGuest   Role = "guest"
	RoleClient  Role = "client"
	RoleManager Role = "manager"
)

// Navigation targets signalled to the app. The app owns routing; the API
// only tells it where to go next.
const (
	RouteRoleSelect  = "/role-select"
	RouteGuestHome   = "/(tabs)/Index"
	RouteClientHome  = "/(client)/MyPlot"
	RouteManagerHome = "/(manager)/Tabs"
)

// Roles lists every selectable role in display order.
var Roles = []Role{RoleGuest, RoleClient, RoleManager}

// ParseRole validates s against the enumerated role set.
// Matching is exact; "Client" is not a role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.TrimSpace(s))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}

// Valid reports whether r is one of Roles.
func (r Role) Valid() bool {
	switch r {
	case RoleGuest, RoleClient, RoleManager:
		return true
	}
	return false
}

// HomeRoute is the screen the app must open after the role is selected.
func (r Role) HomeRoute() string {
	switch r {
	case RoleGuest:
		return RouteGuestHome
	case RoleClient:
		return RouteClientHome
	case RoleManager:
		return RouteManagerHome
	default:
		return RouteRoleSelect
	}
}

func (r Role) String() string { return string(r) }
