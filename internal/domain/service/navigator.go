package service

import "storefront/internal/domain/entity"

// Navigator is the routing host the session layer instructs on auth-state transitions.
type Navigator interface {
	// CurrentGroup returns the top-level route group currently displayed.
	CurrentGroup() entity.RouteGroup

	// Replace navigates to route without keeping the current screen in history.
	Replace(route entity.Route)
}
