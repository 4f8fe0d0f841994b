package cli

import (
	"strings"
	"sync"

	"storefront/internal/domain/entity"
)

// Navigator records the screen group a command runs in and the redirect the routing gate asks for.
type Navigator struct {
	mu       sync.Mutex
	group    entity.RouteGroup
	redirect entity.Route
}

// NewNavigator creates a Navigator positioned in the auth group.
func NewNavigator() *Navigator {
	return &Navigator{group: entity.GroupAuth}
}

// Enter moves to group and forgets any earlier redirect.
func (n *Navigator) Enter(group entity.RouteGroup) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.group = group
	n.redirect = ""
}

func (n *Navigator) CurrentGroup() entity.RouteGroup {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.group
}

func (n *Navigator) Replace(route entity.Route) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.redirect = route
	n.group = groupOf(route)
}

// Redirect returns the last route the gate replaced the current screen with.
func (n *Navigator) Redirect() (entity.Route, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.redirect, n.redirect != ""
}

// groupOf extracts "(auth)" from "/(auth)/login".
func groupOf(route entity.Route) entity.RouteGroup {
	segment, _, _ := strings.Cut(strings.TrimPrefix(string(route), "/"), "/")

	return entity.RouteGroup(segment)
}
